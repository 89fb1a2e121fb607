package kernel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeKernel struct {
	out   *Out
	err   error
	panic any
}

func (f fakeKernel) Tetrahedralize(switches []byte, in *In) (*Out, error) {
	if f.panic != nil {
		panic(f.panic)
	}
	return f.out, f.err
}

func TestInvokeSuccess(t *testing.T) {
	want := &Out{NumberOfPoints: 4}
	out, err := Invoke(fakeKernel{out: want}, []byte("p"), &In{})
	assert.NoError(t, err)
	assert.Same(t, want, out)
}

func TestInvokeWrapsKernelError(t *testing.T) {
	_, err := Invoke(fakeKernel{err: errors.New("self-intersection at facet 3")}, []byte("p"), &In{})
	assert.ErrorIs(t, err, ErrMeshingFailed)
	assert.Contains(t, err.Error(), "self-intersection at facet 3")
}

func TestInvokeRecoversPanic(t *testing.T) {
	_, err := Invoke(fakeKernel{panic: "terminatetetgen(1)"}, []byte("p"), &In{})
	assert.ErrorIs(t, err, ErrMeshingFailed)
	assert.Contains(t, err.Error(), "terminatetetgen(1)")
}

func TestInvokeNilOutputIsFailure(t *testing.T) {
	_, err := Invoke(fakeKernel{}, []byte("p"), &In{})
	assert.ErrorIs(t, err, ErrMeshingFailed)
	assert.Contains(t, err.Error(), "invalid input geometry or incompatible switches")
}

func TestDefaultWithoutRegistration(t *testing.T) {
	old := registered
	defer Register(old)
	Register(nil)
	_, err := Default()
	if err == nil {
		t.Fatal("expected error when no kernel is registered")
	}

	Register(fakeKernel{out: &Out{}})
	k, err := Default()
	assert.NoError(t, err)
	assert.NotNil(t, k)
}
