package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/dtcc-platform/dtcc-wrapper-tetgen/switches"
)

// Parameters obtained from the YAML job file: a surface mesh plus the TetGen
// switch configuration to mesh it with.
type MeshJob struct {
	Title            string    `json:"Title" yaml:"Title"`
	Points           []float64 `json:"Points" yaml:"Points"`         // flat, 3 per point
	MeshFacets       []int32   `json:"MeshFacets" yaml:"MeshFacets"` // flat, 3 per facet
	MeshFacetMarkers []int32   `json:"MeshFacetMarkers" yaml:"MeshFacetMarkers"`

	// Boundary polygons, positional or named. Named polygons are ordered
	// top, north, east, south, west, then remaining names sorted.
	BoundaryFacets      [][]int32          `json:"BoundaryFacets" yaml:"BoundaryFacets"`
	NamedBoundaryFacets map[string][]int32 `json:"NamedBoundaryFacets" yaml:"NamedBoundaryFacets"`

	Switches switches.Options `json:"Switches" yaml:"Switches"`

	ReturnFaces         bool `json:"ReturnFaces" yaml:"ReturnFaces"`
	ReturnEdges         bool `json:"ReturnEdges" yaml:"ReturnEdges"`
	ReturnNeighbors     bool `json:"ReturnNeighbors" yaml:"ReturnNeighbors"`
	ReturnBoundaryFaces bool `json:"ReturnBoundaryFaces" yaml:"ReturnBoundaryFaces"`
}

func (mj *MeshJob) Parse(data []byte) error {
	mj.Switches = switches.DefaultOptions()
	if err := yaml.Unmarshal(data, mj); err != nil {
		return err
	}
	if len(mj.Points)%3 != 0 {
		return fmt.Errorf("Points length %d is not a multiple of 3", len(mj.Points))
	}
	if len(mj.MeshFacets)%3 != 0 {
		return fmt.Errorf("MeshFacets length %d is not a multiple of 3", len(mj.MeshFacets))
	}
	return nil
}

func (mj *MeshJob) NumPoints() int { return len(mj.Points) / 3 }
func (mj *MeshJob) NumFacets() int { return len(mj.MeshFacets) / 3 }

func (mj *MeshJob) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mj.Title)
	fmt.Printf("%d\t\t\t= Points\n", mj.NumPoints())
	fmt.Printf("%d\t\t\t= Mesh Facets\n", mj.NumFacets())
	fmt.Printf("%d\t\t\t= Boundary Facets\n", len(mj.BoundaryFacets)+len(mj.NamedBoundaryFacets))
	if sw, err := mj.Switches.Build(); err == nil {
		fmt.Printf("[%s]\t\t\t= Switches\n", sw)
	}
}
