// Package kernel defines the interface to the TetGen meshing kernel and the
// flat input/output representations it exchanges.
//
// The kernel is an opaque external service. It is not reentrant on shared
// global state: never invoke it from multiple goroutines in one process.
// Parallel meshing requires independent processes, not threads.
package kernel

import (
	"errors"
	"fmt"
)

// Polygon is an ordered vertex-index loop inside a facet.
type Polygon []int32

// Facet is one planar input facet, possibly made of several polygons with
// holes. The assembly layer only ever produces single-polygon facets without
// holes, but the representation mirrors the kernel's own facet record.
type Facet struct {
	Polygons []Polygon
	Holes    []float64 // x,y,z per hole point
}

// In is the kernel input: a PLC as flat buffers plus the indexing convention.
type In struct {
	FirstNumber    int // 0 or 1; assembly always declares 0-based indexing
	NumberOfPoints int
	PointList      []float64 // 3 per point, row-major
	Facets         []Facet
	FacetMarkers   []int32 // one per facet, kernel marker encoding
}

// Out is the kernel's raw result. Optional buffers the kernel did not
// populate are nil; counts are only meaningful alongside a non-nil buffer.
type Out struct {
	NumberOfPoints int
	PointList      []float64 // 3 per point

	NumberOfTetrahedra int
	NumberOfCorners    int // 4 linear, 10 quadratic
	TetrahedronList    []int32

	NumberOfTrifaces  int
	TrifaceList       []int32 // 3 per face
	TrifaceMarkerList []int32

	NumberOfEdges  int
	EdgeList       []int32 // 2 per edge
	EdgeMarkerList []int32

	NeighborList    []int32 // 4 per tetrahedron, negative = boundary
	PointMarkerList []int32

	NumberOfTetrahedronAttributes int
	TetrahedronAttributeList      []float64
	TetrahedronVolumeList         []float64
}

// Tetrahedralizer is the single entry point the meshing kernel exposes.
type Tetrahedralizer interface {
	Tetrahedralize(switches []byte, in *In) (*Out, error)
}

// ErrMeshingFailed is the uniform failure condition for any kernel fault.
var ErrMeshingFailed = errors.New("tetgen meshing failed")

const genericFailure = "this may be due to invalid input geometry or incompatible switches"

// Invoke runs the kernel exactly once. Meshing is deterministic for fixed
// input and switches, so a failure is never retried. Any fault the kernel
// raises, including panics from a binding, is normalized into an error
// wrapping ErrMeshingFailed with the kernel's message when one exists.
func Invoke(k Tetrahedralizer, switches []byte, in *In) (out *Out, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: %v", ErrMeshingFailed, r)
		}
	}()
	out, kerr := k.Tetrahedralize(switches, in)
	if kerr != nil {
		if kerr.Error() == "" {
			return nil, fmt.Errorf("%w: %s", ErrMeshingFailed, genericFailure)
		}
		return nil, fmt.Errorf("%w: %v", ErrMeshingFailed, kerr)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: kernel returned no output; %s", ErrMeshingFailed, genericFailure)
	}
	return out, nil
}

var registered Tetrahedralizer

// Register installs the process-wide kernel implementation. The cgo binding
// registers itself when the module is built with the tetgen build tag.
func Register(k Tetrahedralizer) {
	registered = k
}

// Default returns the registered kernel implementation.
func Default() (Tetrahedralizer, error) {
	if registered == nil {
		return nil, errors.New("no tetgen kernel compiled in (rebuild with -tags tetgen)")
	}
	return registered, nil
}
