package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gantools/internal/autodiff"
	"github.com/born-ml/gantools/internal/backend/cpu"
	"github.com/born-ml/gantools/internal/tensor"
)

type testBackend = *autodiff.AutodiffBackend[*cpu.CPUBackend]

func newBackend() testBackend {
	return autodiff.New(cpu.New())
}

func TestAutodiffBackend_Metadata(t *testing.T) {
	backend := newBackend()
	assert.Equal(t, "Autodiff(CPU)", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
	assert.Equal(t, "CPU", backend.Inner().Name())
}

func TestTape_Recording(t *testing.T) {
	backend := newBackend()
	tape := backend.Tape()

	assert.False(t, tape.IsRecording())

	x := tensor.Ones(tensor.Shape{2}, backend)
	_ = x.Add(x)
	assert.Zero(t, tape.NumOps(), "nothing is recorded while the tape is off")

	tape.StartRecording()
	_ = x.Add(x).Mul(x)
	assert.Equal(t, 2, tape.NumOps())

	tape.Clear()
	assert.Zero(t, tape.NumOps())
	assert.True(t, tape.IsRecording(), "Clear keeps the recording state")

	tape.StopRecording()
	assert.False(t, tape.IsRecording())
}

func TestBackward_Square(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	x := tensor.MustFromSlice([]float32{2, -3}, tensor.Shape{2}, backend)
	y := x.Mul(x).Sum()

	grads := autodiff.Backward(y, backend)

	require.Contains(t, grads, x.Raw())
	assert.Equal(t, []float32{4, -6}, grads[x.Raw()].Data())
	assert.True(t, backend.Tape().IsRecording(), "Backward restores the recording state")
}

func TestBackward_NoOps(t *testing.T) {
	backend := newBackend()
	x := tensor.Scalar(1, backend)
	assert.Panics(t, func() { autodiff.Backward(x, backend) })
}

func TestBackward_Detach(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	x := tensor.MustFromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	w := tensor.MustFromSlice([]float32{3, 4}, tensor.Shape{2}, backend)

	h := x.Mul(w)
	y := h.Detach().Mul(w).Sum()

	grads := autodiff.Backward(y, backend)

	assert.NotContains(t, grads, x.Raw(), "no gradient crosses a detached tensor")
	require.Contains(t, grads, w.Raw())
	assert.Equal(t, []float32{3, 8}, grads[w.Raw()].Data())
}

// Two losses recorded on one tape are independent: seeding the first never
// visits operations recorded for the second.
func TestBackward_SeparateRoots(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	a := tensor.MustFromSlice([]float32{1}, tensor.Shape{1}, backend)
	b := tensor.MustFromSlice([]float32{5}, tensor.Shape{1}, backend)

	first := a.MulScalar(2).Sum()
	second := b.Mul(a).Sum()

	grads := autodiff.Backward(first, backend)
	assert.Equal(t, []float32{2}, grads[a.Raw()].Data())
	assert.NotContains(t, grads, b.Raw())

	grads = autodiff.Backward(second, backend)
	assert.Equal(t, []float32{5}, grads[a.Raw()].Data())
	assert.Equal(t, []float32{1}, grads[b.Raw()].Data())
}
