package tetwrap

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func tetPoints() *mat.Dense {
	return mat.NewDense(4, 3, []float64{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

func tetSurface() [][]int32 {
	return [][]int32{
		{0, 2, 1},
		{0, 1, 3},
		{0, 3, 2},
		{1, 2, 3},
	}
}

func TestAssembleInputBuildsFacets(t *testing.T) {
	in, err := AssembleInput(tetPoints(), tetSurface(), nil, [][]int32{{1, 2, 3}})
	if err != nil {
		t.Fatalf("AssembleInput failed: %v", err)
	}
	if in.FirstNumber != 0 {
		t.Errorf("expected 0-based indexing, got firstnumber %d", in.FirstNumber)
	}
	if in.NumberOfPoints != 4 {
		t.Errorf("expected 4 points, got %d", in.NumberOfPoints)
	}
	if len(in.PointList) != 12 {
		t.Errorf("expected 12 coordinates, got %d", len(in.PointList))
	}
	if len(in.Facets) != 5 {
		t.Fatalf("expected 4 mesh + 1 boundary facets, got %d", len(in.Facets))
	}
	for i, fac := range in.Facets {
		if len(fac.Polygons) != 1 {
			t.Errorf("facet %d: expected a single polygon, got %d", i, len(fac.Polygons))
		}
	}
	// Unmarked mesh facets collapse to -1; boundary polygon 0 gets -2.
	for i := 0; i < 4; i++ {
		if in.FacetMarkers[i] != -1 {
			t.Errorf("mesh facet %d: expected marker -1, got %d", i, in.FacetMarkers[i])
		}
	}
	if in.FacetMarkers[4] != -2 {
		t.Errorf("boundary facet: expected marker -2, got %d", in.FacetMarkers[4])
	}
}

func TestAssembleInputMarkerEncoding(t *testing.T) {
	markers := []int32{0, 7, -3, 2}
	in, err := AssembleInput(tetPoints(), tetSurface(), markers, [][]int32{{1, 2, 3}, {0, 1, 2}})
	if err != nil {
		t.Fatalf("AssembleInput failed: %v", err)
	}
	want := []int32{1, 8, -1, 3, -2, -3}
	for i, w := range want {
		if in.FacetMarkers[i] != w {
			t.Errorf("facet %d: expected marker %d, got %d", i, w, in.FacetMarkers[i])
		}
	}
}

func TestAssembleInputZeroMeshFacets(t *testing.T) {
	// Zero mesh facets is legal when boundary polygons supply the surface.
	in, err := AssembleInput(tetPoints(), nil, nil, [][]int32{
		{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3},
	})
	if err != nil {
		t.Fatalf("AssembleInput failed on boundary-only surface: %v", err)
	}
	if len(in.Facets) != 4 {
		t.Errorf("expected 4 facets, got %d", len(in.Facets))
	}
	want := []int32{-2, -3, -4, -5}
	for i, w := range want {
		if in.FacetMarkers[i] != w {
			t.Errorf("boundary facet %d: expected marker %d, got %d", i, w, in.FacetMarkers[i])
		}
	}
}

func TestAssembleInputValidation(t *testing.T) {
	boundary := [][]int32{{1, 2, 3}}
	cases := []struct {
		name     string
		points   *mat.Dense
		facets   [][]int32
		markers  []int32
		boundary [][]int32
		wantMsg  string
	}{
		{"nil points", nil, tetSurface(), nil, boundary, "(N,3)"},
		{"wrong point columns", mat.NewDense(2, 2, []float64{0, 0, 1, 1}), tetSurface(), nil, boundary, "(N,3)"},
		{"wrong facet columns", tetPoints(), [][]int32{{0, 1}}, nil, boundary, "(M,3)"},
		{"facet index out of range", tetPoints(), [][]int32{{0, 1, 4}}, nil, boundary, "row 0"},
		{"negative facet index", tetPoints(), [][]int32{{0, 1, 2}, {0, 1, -1}}, nil, boundary, "row 1"},
		{"no boundary polygons", tetPoints(), tetSurface(), nil, nil, "at least one polygon"},
		{"undersized boundary polygon", tetPoints(), tetSurface(), nil, [][]int32{{0, 1, 2}, {0, 1}}, "polygon 1"},
		{"boundary index out of range", tetPoints(), tetSurface(), nil, [][]int32{{0, 1, 99}}, "polygon 0"},
		{"marker length mismatch", tetPoints(), tetSurface(), []int32{1}, boundary, "match number of mesh facets"},
	}
	for _, tc := range cases {
		_, err := AssembleInput(tc.points, tc.facets, tc.markers, tc.boundary)
		if err == nil {
			t.Errorf("%s: expected validation error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.wantMsg) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.wantMsg)
		}
	}
}

func TestNormalizeNamedBoundaryFacets(t *testing.T) {
	named := map[string][]int32{
		"west":   {0, 4, 7, 3},
		"bottom": {0, 3, 2, 1},
		"top":    {4, 5, 6, 7},
		"north":  {2, 3, 7, 6},
		"east":   {1, 2, 6, 5},
		"south":  {0, 1, 5, 4},
	}
	out, err := NormalizeNamedBoundaryFacets(named)
	if err != nil {
		t.Fatalf("NormalizeNamedBoundaryFacets failed: %v", err)
	}
	if len(out) != 6 {
		t.Fatalf("expected 6 polygons, got %d", len(out))
	}
	// Canonical order first, then extras sorted by name.
	if out[0][0] != 4 { // top
		t.Errorf("expected top polygon first, got %v", out[0])
	}
	if out[5][0] != 0 || out[5][1] != 3 { // bottom comes last
		t.Errorf("expected bottom polygon last, got %v", out[5])
	}
}

func TestNormalizeNamedBoundaryFacetsErrors(t *testing.T) {
	if _, err := NormalizeNamedBoundaryFacets(nil); err == nil {
		t.Error("expected error for empty map")
	}
	if _, err := NormalizeNamedBoundaryFacets(map[string][]int32{
		"top": {0, 1}, "north": {0, 1, 2}, "east": {0, 1, 2},
		"south": {0, 1, 2}, "west": {0, 1, 2},
	}); err == nil || !strings.Contains(err.Error(), `"top"`) {
		t.Errorf("expected undersized polygon error naming top, got %v", err)
	}
	if _, err := NormalizeNamedBoundaryFacets(map[string][]int32{
		"top": {0, 1, 2},
	}); err == nil || !strings.Contains(err.Error(), "five polygons") {
		t.Errorf("expected too-few-polygons error, got %v", err)
	}
}
