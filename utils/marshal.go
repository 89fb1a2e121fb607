package utils

import (
	"gonum.org/v1/gonum/mat"
)

// Conversions between the flat row-major buffers used by the meshing kernel
// and the typed containers used everywhere else. Every conversion copies into
// freshly owned storage so a result never aliases kernel-owned memory.
//
// A nil source buffer or a non-positive dimension yields a nil container,
// which is the "absent" state for optional kernel output, not an error.

func DenseFromFlat(src []float64, n, m int) (M *mat.Dense) {
	if src == nil || n <= 0 || m <= 0 {
		return nil
	}
	var (
		d = make([]float64, n*m)
	)
	copy(d, src[:n*m])
	M = mat.NewDense(n, m, d)
	return
}

func VecFromFlat(src []float64, n int) (V *mat.VecDense) {
	if src == nil || n <= 0 {
		return nil
	}
	var (
		d = make([]float64, n)
	)
	copy(d, src[:n])
	V = mat.NewVecDense(n, d)
	return
}

func RowsFromFlat(src []int32, n, m int) (R [][]int32) {
	if src == nil || n <= 0 || m <= 0 {
		return nil
	}
	R = make([][]int32, n)
	for i := 0; i < n; i++ {
		row := make([]int32, m)
		copy(row, src[i*m:(i+1)*m])
		R[i] = row
	}
	return
}

func I32FromFlat(src []int32, n int) (V []int32) {
	if src == nil || n <= 0 {
		return nil
	}
	V = make([]int32, n)
	copy(V, src[:n])
	return
}

// FlattenDense is the reverse direction, used when assembling kernel input.
func FlattenDense(M *mat.Dense) (d []float64) {
	if M == nil {
		return nil
	}
	var (
		nr, nc = M.Dims()
	)
	d = make([]float64, nr*nc)
	for i := 0; i < nr; i++ {
		copy(d[i*nc:(i+1)*nc], M.RawRowView(i))
	}
	return
}

func FlattenRows(R [][]int32) (d []int32) {
	if len(R) == 0 {
		return nil
	}
	var (
		nc = len(R[0])
	)
	d = make([]int32, 0, len(R)*nc)
	for _, row := range R {
		d = append(d, row...)
	}
	return
}
