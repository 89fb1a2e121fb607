// Package switches builds and normalizes TetGen command-line switch strings.
//
// The builder maps descriptive option names to TetGen's single-character flag
// syntax. It knows nothing about flag semantics; unknown or conflicting
// combinations (beyond quiet/verbose) surface as kernel failures downstream.
package switches

import (
	"fmt"
	"strconv"
)

// Options describes a TetGen invocation in named form. The zero value of a
// pointer field means "not requested"; a pointer to the zero value requests
// the bare flag with no numeric argument.
type Options struct {
	// Core
	PLC                    bool `json:"plc" yaml:"plc"`                                           // -p
	PreserveSurface        bool `json:"preserve_surface" yaml:"preserve_surface"`                 // -Y
	Reconstruct            bool `json:"reconstruct" yaml:"reconstruct"`                           // -r
	Coarsen                bool `json:"coarsen" yaml:"coarsen"`                                   // -R
	AssignRegionAttributes bool `json:"assign_region_attributes" yaml:"assign_region_attributes"` // -A

	// Sizing / quality
	Quality           *float64 `json:"quality" yaml:"quality"`                       // -q{ratio}
	MinDihedralAngle  *float64 `json:"min_dihedral_angle" yaml:"min_dihedral_angle"` // -q{ratio}/{angle}
	MaxVolume         *float64 `json:"max_volume" yaml:"max_volume"`                 // -a{val}
	SizingFunction    *string  `json:"sizing_function" yaml:"sizing_function"`       // -m{token}
	InsertPoints      *string  `json:"insert_points" yaml:"insert_points"`           // -i{token}
	OptimizeLevel     *int     `json:"optimize_level" yaml:"optimize_level"`         // -O{int}
	MaxAddedPoints    *int     `json:"max_added_points" yaml:"max_added_points"`     // -S{int}
	CoplanarTolerance *float64 `json:"coplanar_tolerance" yaml:"coplanar_tolerance"` // -T{float}

	// Numerical / topology
	NoExactArithmetic       bool `json:"no_exact_arithmetic" yaml:"no_exact_arithmetic"`             // -X
	NoMergeCoplanar         bool `json:"no_merge_coplanar" yaml:"no_merge_coplanar"`                 // -M
	WeightedDelaunay        bool `json:"weighted_delaunay" yaml:"weighted_delaunay"`                 // -w
	KeepConvexHull          bool `json:"keep_convex_hull" yaml:"keep_convex_hull"`                   // -c
	DetectSelfIntersections bool `json:"detect_self_intersections" yaml:"detect_self_intersections"` // -d

	// Numbering / output control
	ZeroNumbering            bool `json:"zero_numbering" yaml:"zero_numbering"`                           // -z
	OutputFaces              bool `json:"output_faces" yaml:"output_faces"`                               // -f
	OutputEdges              bool `json:"output_edges" yaml:"output_edges"`                               // -e
	OutputNeighbors          bool `json:"output_neighbors" yaml:"output_neighbors"`                       // -n
	OutputVoronoi            bool `json:"output_voronoi" yaml:"output_voronoi"`                           // -v
	OutputMeditMesh          bool `json:"output_medit_mesh" yaml:"output_medit_mesh"`                     // -g
	OutputVTK                bool `json:"output_vtk" yaml:"output_vtk"`                                   // -k
	NoJettisonUnusedVertices bool `json:"no_jettison_unused_vertices" yaml:"no_jettison_unused_vertices"` // -J
	SuppressBoundaryOutput   bool `json:"suppress_boundary_output" yaml:"suppress_boundary_output"`       // -B
	SuppressNodeFile         bool `json:"suppress_node_file" yaml:"suppress_node_file"`                   // -N
	SuppressEleFile          bool `json:"suppress_ele_file" yaml:"suppress_ele_file"`                     // -E
	SuppressFaceEdgeFiles    bool `json:"suppress_face_edge_files" yaml:"suppress_face_edge_files"`       // -F
	SuppressIterationNumbers bool `json:"suppress_iteration_numbers" yaml:"suppress_iteration_numbers"`   // -I
	CheckMesh                bool `json:"check_mesh" yaml:"check_mesh"`                                   // -C

	// Verbosity
	Quiet   bool `json:"quiet" yaml:"quiet"`     // -Q
	Verbose bool `json:"verbose" yaml:"verbose"` // -V

	// Misc
	Help   bool   `json:"help" yaml:"help"`     // -h
	Extra  string `json:"extra" yaml:"extra"`   // appended verbatim
	Refine bool   `json:"refine" yaml:"refine"` // alias for a bare -q when Quality is unset
}

// DefaultOptions returns the standard starting configuration: a PLC input
// with everything else off. Each call returns a fresh value.
func DefaultOptions() Options {
	return Options{PLC: true}
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func (o Options) emitQuality() string {
	if o.Quality == nil && o.MinDihedralAngle == nil {
		if o.Refine {
			return "q"
		}
		return ""
	}
	s := "q"
	if o.Quality != nil {
		s += fmtFloat(*o.Quality)
	}
	if o.MinDihedralAngle != nil {
		s += "/" + fmtFloat(*o.MinDihedralAngle)
	}
	return s
}

// Build emits the switch string in a fixed flag order: boolean toggles first,
// then quality, sizing and numeric options, then Extra verbatim.
func (o Options) Build() (string, error) {
	if o.Quiet && o.Verbose {
		return "", fmt.Errorf("switches: quiet (-Q) and verbose (-V) are mutually exclusive")
	}

	toggles := []struct {
		on   bool
		flag string
	}{
		{o.PLC, "p"},
		{o.PreserveSurface, "Y"},
		{o.Reconstruct, "r"},
		{o.Coarsen, "R"},
		{o.AssignRegionAttributes, "A"},
		{o.NoExactArithmetic, "X"},
		{o.NoMergeCoplanar, "M"},
		{o.WeightedDelaunay, "w"},
		{o.KeepConvexHull, "c"},
		{o.DetectSelfIntersections, "d"},
		{o.ZeroNumbering, "z"},
		{o.OutputFaces, "f"},
		{o.OutputEdges, "e"},
		{o.OutputNeighbors, "n"},
		{o.OutputVoronoi, "v"},
		{o.OutputMeditMesh, "g"},
		{o.OutputVTK, "k"},
		{o.NoJettisonUnusedVertices, "J"},
		{o.SuppressBoundaryOutput, "B"},
		{o.SuppressNodeFile, "N"},
		{o.SuppressEleFile, "E"},
		{o.SuppressFaceEdgeFiles, "F"},
		{o.SuppressIterationNumbers, "I"},
		{o.CheckMesh, "C"},
		{o.Quiet, "Q"},
		{o.Verbose, "V"},
		{o.Help, "h"},
	}

	var s string
	for _, t := range toggles {
		if t.on {
			s += t.flag
		}
	}

	s += o.emitQuality()
	if o.MaxVolume != nil {
		s += "a" + fmtFloat(*o.MaxVolume)
	}
	if o.SizingFunction != nil {
		s += "m" + *o.SizingFunction
	}
	if o.InsertPoints != nil {
		s += "i" + *o.InsertPoints
	}
	if o.OptimizeLevel != nil {
		s += "O" + strconv.Itoa(*o.OptimizeLevel)
	}
	if o.MaxAddedPoints != nil {
		s += "S" + strconv.Itoa(*o.MaxAddedPoints)
	}
	if o.CoplanarTolerance != nil {
		s += "T" + fmtFloat(*o.CoplanarTolerance)
	}
	s += o.Extra

	return s, nil
}

// Convenience constructors for optional numeric fields.
func Float(x float64) *float64 { return &x }
func Int(x int) *int           { return &x }
func String(s string) *string  { return &s }
