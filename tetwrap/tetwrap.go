package tetwrap

import (
	"gonum.org/v1/gonum/mat"

	"github.com/dtcc-platform/dtcc-wrapper-tetgen/kernel"
	"github.com/dtcc-platform/dtcc-wrapper-tetgen/switches"
	"github.com/dtcc-platform/dtcc-wrapper-tetgen/utils"
)

// TetrahedralizeCore runs one meshing call end to end: negotiate switches,
// assemble and validate the kernel input, invoke the kernel once, and
// post-process its raw arrays into a TetwrapIO.
//
// sw accepts a string, []byte, or []rune. When computeBoundaryFaces is set
// the neighbor and face output flags are appended if missing; if the kernel
// still produced no neighbor table, the boundary fields come back absent
// rather than failing.
func TetrahedralizeCore(k kernel.Tetrahedralizer, points *mat.Dense,
	meshFacets [][]int32, meshFacetMarkers []int32, boundaryFacets [][]int32,
	sw any, computeBoundaryFaces bool) (*TetwrapIO, error) {

	negotiated, err := switches.Negotiate(sw, computeBoundaryFaces)
	if err != nil {
		return nil, err
	}
	in, err := AssembleInput(points, meshFacets, meshFacetMarkers, boundaryFacets)
	if err != nil {
		return nil, err
	}
	out, err := kernel.Invoke(k, negotiated, in)
	if err != nil {
		return nil, err
	}
	return reconstruct(out, sw, computeBoundaryFaces)
}

// reconstruct projects the kernel's raw output into the result aggregate.
// Each optional field is present only if the kernel populated its buffer.
func reconstruct(out *kernel.Out, sw any, computeBoundaryFaces bool) (*TetwrapIO, error) {
	res := &TetwrapIO{
		Points:  utils.DenseFromFlat(out.PointList, out.NumberOfPoints, 3),
		Tets:    utils.RowsFromFlat(out.TetrahedronList, out.NumberOfTetrahedra, out.NumberOfCorners),
		Corners: out.NumberOfCorners,
	}
	if s, ok := sw.(string); ok {
		res.Switches = s
	}

	if out.NumberOfTrifaces > 0 && out.TrifaceList != nil {
		res.TriFaces = utils.RowsFromFlat(out.TrifaceList, out.NumberOfTrifaces, 3)
		res.TriMarkers = utils.I32FromFlat(out.TrifaceMarkerList, out.NumberOfTrifaces)
	}
	markerMap := trifaceMarkerMap(out.TrifaceList, out.TrifaceMarkerList, out.NumberOfTrifaces)

	if out.NumberOfEdges > 0 && out.EdgeList != nil {
		res.Edges = utils.RowsFromFlat(out.EdgeList, out.NumberOfEdges, 2)
		res.EdgeMarkers = utils.I32FromFlat(out.EdgeMarkerList, out.NumberOfEdges)
	}

	res.Neighbors = utils.RowsFromFlat(out.NeighborList, out.NumberOfTetrahedra, 4)

	if computeBoundaryFaces && res.Neighbors != nil {
		faces, err := BoundaryFaceTris(res.Tets, res.Neighbors)
		if err != nil {
			return nil, err
		}
		res.BoundaryTriFaces = faces
		if len(markerMap) > 0 {
			res.BoundaryTriMarkers = reattachMarkers(faces, markerMap)
		}
	}

	res.PointMarkers = utils.I32FromFlat(out.PointMarkerList, out.NumberOfPoints)
	res.TetAttr = utils.DenseFromFlat(out.TetrahedronAttributeList,
		out.NumberOfTetrahedra, out.NumberOfTetrahedronAttributes)
	res.TetVol = utils.VecFromFlat(out.TetrahedronVolumeList, out.NumberOfTetrahedra)
	return res, nil
}

// Config drives the high-level Tetrahedralize adapter.
type Config struct {
	// FaceMarkers labels each mesh facet; must match the facet count.
	FaceMarkers []int32

	// Switches is the named switch configuration; the Return flags below
	// toggle the corresponding output switches on top of it.
	Switches switches.Options

	ReturnFaces         bool // -f
	ReturnEdges         bool // -e
	ReturnNeighbors     bool // -n
	ReturnBoundaryFaces bool // -n -f plus boundary reconstruction

	// NormalizeMarkers rewrites output face markers from the kernel's
	// 1-based scheme back to caller labels, with zeros mapped to
	// InteriorDefault.
	NormalizeMarkers bool
	InteriorDefault  int32
}

// DefaultConfig returns the adapter defaults: PLC input, marker
// normalization on, interior faces labeled InteriorMarker.
func DefaultConfig() Config {
	return Config{
		Switches:         switches.DefaultOptions(),
		NormalizeMarkers: true,
		InteriorDefault:  InteriorMarker,
	}
}

// Tetrahedralize is the high-level entry point: it derives the switch string
// from the named configuration, runs the core, and normalizes markers.
func Tetrahedralize(k kernel.Tetrahedralizer, points *mat.Dense,
	meshFacets [][]int32, boundaryFacets [][]int32, cfg Config) (*TetwrapIO, error) {

	opts := cfg.Switches
	if cfg.ReturnFaces || cfg.ReturnBoundaryFaces {
		opts.OutputFaces = true
	}
	if cfg.ReturnEdges {
		opts.OutputEdges = true
	}
	if cfg.ReturnNeighbors || cfg.ReturnBoundaryFaces {
		opts.OutputNeighbors = true
	}
	sw, err := opts.Build()
	if err != nil {
		return nil, err
	}

	io, err := TetrahedralizeCore(k, points, meshFacets, cfg.FaceMarkers,
		boundaryFacets, sw, cfg.ReturnBoundaryFaces)
	if err != nil {
		return nil, err
	}
	if cfg.NormalizeMarkers {
		io.NormalizeMarkers(cfg.InteriorDefault)
	}
	return io, nil
}

// BuildVolumeMesh is the legacy entry point for callers uninterested in
// derived topology: it returns only the output points and tetrahedra.
func BuildVolumeMesh(k kernel.Tetrahedralizer, points *mat.Dense,
	meshFacets [][]int32, boundaryFacets [][]int32, sw any) (*mat.Dense, [][]int32, error) {

	io, err := TetrahedralizeCore(k, points, meshFacets, nil, boundaryFacets, sw, true)
	if err != nil {
		return nil, nil, err
	}
	return io.Points, io.Tets, nil
}
