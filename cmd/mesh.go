package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/dtcc-platform/dtcc-wrapper-tetgen/InputParameters"
	"github.com/dtcc-platform/dtcc-wrapper-tetgen/kernel"
	"github.com/dtcc-platform/dtcc-wrapper-tetgen/tetwrap"
	"github.com/dtcc-platform/dtcc-wrapper-tetgen/utils"
)

// MeshCmd runs one meshing job described by a YAML file.
var MeshCmd = &cobra.Command{
	Use:   "mesh [job.yaml]",
	Short: "Tetrahedralize a surface mesh described by a YAML job file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		validateOnly, _ := cmd.Flags().GetBool("validate-only")
		if err := runMeshJob(args[0], validateOnly); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(MeshCmd)
	MeshCmd.Flags().Bool("validate-only", false, "validate the job and assemble kernel input without meshing")
}

func runMeshJob(path string, validateOnly bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var mj InputParameters.MeshJob
	if err = mj.Parse(data); err != nil {
		return fmt.Errorf("unable to parse %s: %w", path, err)
	}
	mj.Print()

	points := utils.DenseFromFlat(mj.Points, mj.NumPoints(), 3)
	meshFacets := utils.RowsFromFlat(mj.MeshFacets, mj.NumFacets(), 3)

	boundary := mj.BoundaryFacets
	if len(mj.NamedBoundaryFacets) > 0 {
		boundary, err = tetwrap.NormalizeNamedBoundaryFacets(mj.NamedBoundaryFacets)
		if err != nil {
			return err
		}
	}

	if validateOnly {
		in, err := tetwrap.AssembleInput(points, meshFacets, mj.MeshFacetMarkers, boundary)
		if err != nil {
			return err
		}
		fmt.Printf("job is valid: %d points, %d facets assembled\n",
			in.NumberOfPoints, len(in.Facets))
		return nil
	}

	k, err := kernel.Default()
	if err != nil {
		return err
	}

	cfg := tetwrap.DefaultConfig()
	cfg.FaceMarkers = mj.MeshFacetMarkers
	cfg.Switches = mj.Switches
	cfg.ReturnFaces = mj.ReturnFaces
	cfg.ReturnEdges = mj.ReturnEdges
	cfg.ReturnNeighbors = mj.ReturnNeighbors
	cfg.ReturnBoundaryFaces = mj.ReturnBoundaryFaces

	io, err := tetwrap.Tetrahedralize(k, points, meshFacets, boundary, cfg)
	if err != nil {
		return err
	}
	printSummary(io)
	return nil
}

func printSummary(io *tetwrap.TetwrapIO) {
	nPts, _ := io.Points.Dims()
	fmt.Printf("%d\t\t\t= Output Points\n", nPts)
	fmt.Printf("%d\t\t\t= Tetrahedra (%d corners)\n", len(io.Tets), io.Corners)
	if io.TriFaces != nil {
		fmt.Printf("%d\t\t\t= Faces\n", len(io.TriFaces))
	}
	if io.BoundaryTriFaces != nil {
		fmt.Printf("%d\t\t\t= Boundary Faces\n", len(io.BoundaryTriFaces))
	}
	if io.Edges != nil {
		fmt.Printf("%d\t\t\t= Edges\n", len(io.Edges))
	}
	if io.Neighbors != nil {
		fmt.Printf("%d\t\t\t= Neighbor Rows\n", len(io.Neighbors))
	}
	if io.TetVol != nil {
		fmt.Printf("%8.5f\t\t= Total Volume\n", mat.Sum(io.TetVol))
	}
}
