//go:build tetgen

package kernel

/*
#cgo CXXFLAGS: -std=c++14 -O2 -I${SRCDIR}/tetgen
#cgo LDFLAGS: ${SRCDIR}/tetgen/libtetwrap.a -lstdc++ -lm
#include "tetgen/tetwrap_capi.h"
#include <stdlib.h>
*/
import "C"
import (
	"errors"
	"unsafe"
)

// tetgenKernel is the cgo binding to the vendored TetGen sources. Build the
// static shim library in kernel/tetgen first (see the Makefile there), then
// build the module with -tags tetgen.
type tetgenKernel struct{}

func init() {
	Register(tetgenKernel{})
}

func goF64(src *C.double, n int) []float64 {
	if src == nil || n <= 0 {
		return nil
	}
	cs := unsafe.Slice((*float64)(unsafe.Pointer(src)), n)
	out := make([]float64, n)
	copy(out, cs)
	return out
}

func goI32(src *C.int, n int) []int32 {
	if src == nil || n <= 0 {
		return nil
	}
	cs := unsafe.Slice((*int32)(unsafe.Pointer(src)), n)
	out := make([]int32, n)
	copy(out, cs)
	return out
}

func (tetgenKernel) Tetrahedralize(switches []byte, in *In) (*Out, error) {
	// The shim consumes one polygon list per facet, flattened with a size
	// prefix array. Holes are not supported by the assembly layer.
	polySizes := make([]int32, 0, len(in.Facets))
	polyVerts := make([]int32, 0, 3*len(in.Facets))
	for _, fac := range in.Facets {
		for _, poly := range fac.Polygons {
			polySizes = append(polySizes, int32(len(poly)))
			polyVerts = append(polyVerts, poly...)
		}
	}
	polyCounts := make([]int32, len(in.Facets))
	for i, fac := range in.Facets {
		polyCounts[i] = int32(len(fac.Polygons))
	}

	csw := C.CString(string(switches))
	defer C.free(unsafe.Pointer(csw))

	var cout C.tetwrap_out
	defer C.tetwrap_free_out(&cout)

	var (
		pts     *C.double
		sizes   *C.int
		counts  *C.int
		verts   *C.int
		markers *C.int
	)
	if len(in.PointList) > 0 {
		pts = (*C.double)(unsafe.Pointer(&in.PointList[0]))
	}
	if len(polySizes) > 0 {
		sizes = (*C.int)(unsafe.Pointer(&polySizes[0]))
	}
	if len(polyCounts) > 0 {
		counts = (*C.int)(unsafe.Pointer(&polyCounts[0]))
	}
	if len(polyVerts) > 0 {
		verts = (*C.int)(unsafe.Pointer(&polyVerts[0]))
	}
	if len(in.FacetMarkers) > 0 {
		markers = (*C.int)(unsafe.Pointer(&in.FacetMarkers[0]))
	}

	rc := C.tetwrap_tetrahedralize(csw,
		pts, C.int(in.NumberOfPoints),
		counts, sizes, verts, C.int(len(in.Facets)),
		markers, C.int(in.FirstNumber), &cout)
	if rc != 0 {
		if cout.error_message != nil {
			return nil, errors.New(C.GoString(cout.error_message))
		}
		return nil, errors.New("")
	}

	nPts := int(cout.number_of_points)
	nTets := int(cout.number_of_tetrahedra)
	corners := int(cout.number_of_corners)
	nTri := int(cout.number_of_trifaces)
	nEdges := int(cout.number_of_edges)
	nAttr := int(cout.number_of_tetrahedron_attributes)

	out := &Out{
		NumberOfPoints:                nPts,
		PointList:                     goF64(cout.point_list, 3*nPts),
		NumberOfTetrahedra:            nTets,
		NumberOfCorners:               corners,
		TetrahedronList:               goI32(cout.tetrahedron_list, nTets*corners),
		NumberOfTrifaces:              nTri,
		TrifaceList:                   goI32(cout.triface_list, 3*nTri),
		TrifaceMarkerList:             goI32(cout.triface_marker_list, nTri),
		NumberOfEdges:                 nEdges,
		EdgeList:                      goI32(cout.edge_list, 2*nEdges),
		EdgeMarkerList:                goI32(cout.edge_marker_list, nEdges),
		NeighborList:                  goI32(cout.neighbor_list, 4*nTets),
		PointMarkerList:               goI32(cout.point_marker_list, nPts),
		NumberOfTetrahedronAttributes: nAttr,
		TetrahedronAttributeList:      goF64(cout.tetrahedron_attribute_list, nTets*nAttr),
		TetrahedronVolumeList:         goF64(cout.tetrahedron_volume_list, nTets),
	}
	return out, nil
}
