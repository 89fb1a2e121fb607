package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDenseFromFlat(t *testing.T) {
	src := []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}
	M := DenseFromFlat(src, 3, 3)
	nr, nc := M.Dims()
	assert.Equal(t, 3, nr)
	assert.Equal(t, 3, nc)
	assert.Equal(t, 1.0, M.At(1, 0))
	assert.Equal(t, 1.0, M.At(2, 1))

	// Conversion must copy, not alias.
	src[0] = 42
	assert.Equal(t, 0.0, M.At(0, 0))

	assert.Nil(t, DenseFromFlat(nil, 3, 3))
	assert.Nil(t, DenseFromFlat(src, 0, 3))
	assert.Nil(t, DenseFromFlat(src, 3, -1))
}

func TestRowsFromFlat(t *testing.T) {
	src := []int32{0, 1, 2, 3, 0, 1, 2, 3}
	R := RowsFromFlat(src, 2, 4)
	assert.Equal(t, 2, len(R))
	assert.Equal(t, []int32{0, 1, 2, 3}, R[0])

	src[4] = 9
	assert.Equal(t, int32(0), R[1][0])

	assert.Nil(t, RowsFromFlat(nil, 2, 4))
	assert.Nil(t, RowsFromFlat(src, -1, 4))
}

func TestVecAndI32FromFlat(t *testing.T) {
	V := VecFromFlat([]float64{1, 2, 3}, 3)
	assert.Equal(t, 3, V.Len())
	assert.Equal(t, 2.0, V.AtVec(1))
	assert.Nil(t, VecFromFlat(nil, 3))
	assert.Nil(t, VecFromFlat([]float64{1}, 0))

	I := I32FromFlat([]int32{4, 5}, 2)
	assert.Equal(t, []int32{4, 5}, I)
	assert.Nil(t, I32FromFlat(nil, 2))
}

func TestFlattenRoundTrip(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	M := DenseFromFlat(src, 2, 3)
	assert.Equal(t, src, FlattenDense(M))
	assert.Nil(t, FlattenDense(nil))

	rows := [][]int32{{0, 1, 2}, {1, 2, 3}}
	assert.Equal(t, []int32{0, 1, 2, 1, 2, 3}, FlattenRows(rows))
	assert.Nil(t, FlattenRows(nil))
}
