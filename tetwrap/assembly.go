package tetwrap

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/dtcc-platform/dtcc-wrapper-tetgen/kernel"
)

// Marker encoding for assembled facets. The kernel reorders facets
// internally, so every facet gets a distinct sentinel range that survives the
// reordering: -1 for an unmarked mesh facet, k+1 for mesh-facet marker k, and
// -(i+2) for boundary polygon i. The encoding never leaves this package;
// callers only ever see the kernel's own output face markers.
func encodeMeshFacetMarker(raw int32) int32 {
	if raw < 0 {
		return -1
	}
	return raw + 1
}

func encodeBoundaryFacetMarker(polygon int) int32 {
	return -int32(polygon + 2)
}

// AssembleInput validates a surface mesh and constructs the kernel input:
// points with 0-based indexing, the M mesh triangles followed by the B
// boundary polygons as single-polygon facets, and the derived marker array.
// Validation fails fast; the kernel is never invoked on malformed input.
func AssembleInput(points *mat.Dense, meshFacets [][]int32,
	meshFacetMarkers []int32, boundaryFacets [][]int32) (*kernel.In, error) {

	if points == nil {
		return nil, fmt.Errorf("points must have shape (N,3)")
	}
	n, cols := points.Dims()
	if cols != 3 {
		return nil, fmt.Errorf("points must have shape (N,3), got %d columns", cols)
	}
	if n <= 0 {
		return nil, fmt.Errorf("points: N <= 0")
	}
	if len(boundaryFacets) < 1 {
		return nil, fmt.Errorf("boundary facets must contain at least one polygon")
	}
	m := len(meshFacets)
	if meshFacetMarkers != nil && len(meshFacetMarkers) != m {
		return nil, fmt.Errorf("mesh facet markers length %d must match number of mesh facets %d",
			len(meshFacetMarkers), m)
	}

	for i, row := range meshFacets {
		if len(row) != 3 {
			return nil, fmt.Errorf("mesh facets must have shape (M,3), got %d columns at row %d", len(row), i)
		}
		for _, vid := range row {
			if vid < 0 || int(vid) >= n {
				return nil, fmt.Errorf("mesh facet index out of range at row %d", i)
			}
		}
	}
	for bi, poly := range boundaryFacets {
		if len(poly) < 3 {
			return nil, fmt.Errorf("boundary facet has fewer than 3 vertices: polygon %d", bi)
		}
		for _, vid := range poly {
			if vid < 0 || int(vid) >= n {
				return nil, fmt.Errorf("boundary facet index out of range at polygon %d", bi)
			}
		}
	}

	in := &kernel.In{
		FirstNumber:    0,
		NumberOfPoints: n,
		PointList:      make([]float64, 3*n),
		Facets:         make([]kernel.Facet, 0, m+len(boundaryFacets)),
		FacetMarkers:   make([]int32, 0, m+len(boundaryFacets)),
	}
	for i := 0; i < n; i++ {
		copy(in.PointList[3*i:3*i+3], points.RawRowView(i))
	}

	for fi, row := range meshFacets {
		poly := make(kernel.Polygon, 3)
		copy(poly, row)
		in.Facets = append(in.Facets, kernel.Facet{Polygons: []kernel.Polygon{poly}})
		marker := int32(-1)
		if meshFacetMarkers != nil {
			marker = encodeMeshFacetMarker(meshFacetMarkers[fi])
		}
		in.FacetMarkers = append(in.FacetMarkers, marker)
	}
	for bi, loop := range boundaryFacets {
		poly := make(kernel.Polygon, len(loop))
		copy(poly, loop)
		in.Facets = append(in.Facets, kernel.Facet{Polygons: []kernel.Polygon{poly}})
		in.FacetMarkers = append(in.FacetMarkers, encodeBoundaryFacetMarker(bi))
	}
	return in, nil
}

// Canonical ordering for named boundary polygons on box-like domains. Named
// polygons are emitted in this order first, then any remaining names sorted.
var namedBoundaryOrder = []string{"top", "north", "east", "south", "west"}

// NormalizeNamedBoundaryFacets flattens a map of named boundary polygons into
// the positional list AssembleInput consumes. A named collection is expected
// to describe a box-like domain, so at least five polygons are required.
func NormalizeNamedBoundaryFacets(named map[string][]int32) ([][]int32, error) {
	if len(named) == 0 {
		return nil, fmt.Errorf("boundary facets are required (list of polygons or named polygons)")
	}
	out := make([][]int32, 0, len(named))
	emit := func(key string) error {
		poly := named[key]
		if len(poly) < 3 {
			return fmt.Errorf("boundary facet %q must have at least 3 vertices", key)
		}
		cp := make([]int32, len(poly))
		copy(cp, poly)
		out = append(out, cp)
		return nil
	}
	seen := make(map[string]bool, len(namedBoundaryOrder))
	for _, key := range namedBoundaryOrder {
		if _, ok := named[key]; ok {
			if err := emit(key); err != nil {
				return nil, err
			}
			seen[key] = true
		}
	}
	rest := make([]string, 0, len(named))
	for key := range named {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		if err := emit(key); err != nil {
			return nil, err
		}
	}
	if len(out) < 5 {
		return nil, fmt.Errorf("named boundary facets should include at least five polygons (e.g. top,north,east,south,west)")
	}
	return out, nil
}
