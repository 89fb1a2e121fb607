// Package tetwrap converts surface meshes into tetrahedral volume meshes via
// the TetGen kernel, reconstructing the volume-mesh boundary and its markers
// from tetrahedron adjacency.
package tetwrap

import (
	"gonum.org/v1/gonum/mat"
)

// InteriorMarker is the default marker substituted for 0 ("interior") when
// normalizing kernel markers to caller-side labels.
const InteriorMarker = -10

// TetwrapIO is the full result of one meshing call. A nil field means the
// kernel did not compute that output; it is never zero-filled in place of
// absent data. The aggregate is built once and must be treated as read-only:
// every buffer is owned by the result, independent of the kernel's storage.
type TetwrapIO struct {
	Points *mat.Dense // (N,3)
	Tets   [][]int32  // (K,Corners)

	TriFaces   [][]int32 // (F,3), kernel face output (-f)
	TriMarkers []int32   // (F,)

	BoundaryTriFaces   [][]int32 // (B,3), reconstructed exterior boundary
	BoundaryTriMarkers []int32   // (B,)

	Edges       [][]int32 // (E,2), kernel edge output (-e)
	EdgeMarkers []int32   // (E,)

	Neighbors    [][]int32 // (K,4), negative entry = boundary face (-n)
	PointMarkers []int32   // (N,)

	TetAttr *mat.Dense    // (K,A), region attributes (-A)
	TetVol  *mat.VecDense // (K,)

	Corners  int    // point indices per tetrahedron row: 4 linear, 10 quadratic
	Switches string // echoed only when the switches were given as a string
}

// NormalizeMarkers rewrites the kernel's 1-based face markers into caller
// labels: zero ("interior") becomes interiorDefault and positive markers are
// decremented by one, undoing the +1 shift applied during input assembly.
// It touches only the two face-marker arrays and is applied at most once by
// the high-level adapter, never by the core.
func (io *TetwrapIO) NormalizeMarkers(interiorDefault int32) {
	normalizeMarkerArray(io.BoundaryTriMarkers, interiorDefault)
	normalizeMarkerArray(io.TriMarkers, interiorDefault)
}

func normalizeMarkerArray(markers []int32, interiorDefault int32) {
	for i, m := range markers {
		switch {
		case m == 0:
			markers[i] = interiorDefault
		case m > 0:
			markers[i] = m - 1
		}
	}
}
