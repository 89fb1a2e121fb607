package tetwrap

import (
	"fmt"
)

// localFaces[k] lists the local vertex indices of the tetrahedron face
// opposite corner k. The winding is fixed so reconstructed triangles keep a
// consistent orientation relative to the facets fed to the kernel, matching
// the kernel's own face output.
var localFaces = [4][3]int{
	{1, 2, 3}, // opposite 0
	{0, 3, 2}, // opposite 1
	{0, 1, 3}, // opposite 2
	{0, 2, 1}, // opposite 3
}

// BoundaryFaceTris reconstructs the exterior boundary of a volume mesh from
// tetrahedron adjacency alone: a face is on the boundary iff its neighbor
// entry is negative. Two passes over the same enumeration order, first to
// count, then to fill, so the result is sized exactly.
func BoundaryFaceTris(tets, neighbors [][]int32) ([][]int32, error) {
	for i, row := range tets {
		if len(row) != 4 {
			return nil, fmt.Errorf("tets must have shape (T,4), got %d columns at row %d", len(row), i)
		}
	}
	for i, row := range neighbors {
		if len(row) != 4 {
			return nil, fmt.Errorf("neighbors must have shape (T,4), got %d columns at row %d", len(row), i)
		}
	}
	if len(tets) != len(neighbors) {
		return nil, fmt.Errorf("tets and neighbors must have same length: %d vs %d", len(tets), len(neighbors))
	}

	count := 0
	for _, row := range neighbors {
		for _, nb := range row {
			if nb < 0 {
				count++
			}
		}
	}

	faces := make([][]int32, 0, count)
	for i, row := range neighbors {
		for lf, nb := range row {
			if nb < 0 {
				pat := localFaces[lf]
				faces = append(faces, []int32{
					tets[i][pat[0]],
					tets[i][pat[1]],
					tets[i][pat[2]],
				})
			}
		}
	}
	return faces, nil
}

// triKey is the unordered identity of a triangle: its vertex set, sorted.
type triKey [3]int32

func makeTriKey(a, b, c int32) triKey {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return triKey{a, b, c}
}

// trifaceMarkerMap indexes the kernel's output face markers by vertex set.
// The kernel emits faces in an unspecified order and winding, so matching by
// sorted triple is the only stable join between its labeled face list and
// the reconstructed boundary.
func trifaceMarkerMap(trifaces []int32, markers []int32, n int) map[triKey]int32 {
	if n <= 0 || trifaces == nil || markers == nil {
		return nil
	}
	m := make(map[triKey]int32, n)
	for i := 0; i < n; i++ {
		key := makeTriKey(trifaces[3*i], trifaces[3*i+1], trifaces[3*i+2])
		m[key] = markers[i]
	}
	return m
}

// reattachMarkers probes the marker map with each boundary face's vertex
// set. Faces the kernel never labeled get marker 0, the "computed but
// unmarked" sentinel for this step.
//
// Known limitation: if refinement ever produced two distinct input labels on
// a coincident vertex triple, the map keeps whichever the kernel listed
// last. Valid manifold input does not do this; degenerate or
// self-intersecting input may, silently.
func reattachMarkers(faces [][]int32, lookup map[triKey]int32) []int32 {
	markers := make([]int32, len(faces))
	for i, f := range faces {
		if m, ok := lookup[makeTriKey(f[0], f[1], f[2])]; ok {
			markers[i] = m
		}
	}
	return markers
}
