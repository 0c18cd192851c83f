package smooth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func TestNewBoxcar_InvalidLength(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := NewBoxcar(n)
		assert.Error(t, err, "n=%d", n)
	}
}

func TestProcessSample_RampUp(t *testing.T) {
	b, err := NewBoxcar(3)
	require.NoError(t, err)

	input := []float64{1, 1, 1, 1, 1}
	// y[0] = 1/3, y[1] = 2/3, y[2..4] = 1
	want := []float64{1.0 / 3, 2.0 / 3, 1, 1, 1}
	for i, x := range input {
		assert.InDelta(t, want[i], b.ProcessSample(x), eps, "sample %d", i)
	}
}

func TestMovingAverage_Step(t *testing.T) {
	src := make([]float64, 20)
	for i := 10; i < len(src); i++ {
		src[i] = 4
	}

	got, err := MovingAverage(src, 4)
	require.NoError(t, err)
	require.Len(t, got, len(src))

	for i := range 10 {
		assert.Zero(t, got[i], "index %d", i)
	}
	assert.InDelta(t, 1.0, got[10], eps)
	assert.InDelta(t, 2.0, got[11], eps)
	assert.InDelta(t, 3.0, got[12], eps)
	for i := 13; i < len(src); i++ {
		assert.InDelta(t, 4.0, got[i], eps, "index %d", i)
	}
}

func TestMovingAverage_WindowOfOneIsIdentity(t *testing.T) {
	src := []float64{3, -1, 7.5, 0, 2}
	got, err := MovingAverage(src, 1)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestMovingAverage_InfIsLocal(t *testing.T) {
	src := make([]float64, 12)
	src[2] = math.Inf(1)

	got, err := MovingAverage(src, 3)
	require.NoError(t, err)

	for i := 2; i <= 4; i++ {
		assert.True(t, math.IsInf(got[i], 1), "index %d should see the Inf", i)
	}
	for i := 5; i < len(got); i++ {
		assert.Zero(t, got[i], "index %d should have recovered", i)
	}
}

func TestReset(t *testing.T) {
	b, err := NewBoxcar(2)
	require.NoError(t, err)
	b.ProcessSample(10)
	b.ProcessSample(10)
	b.Reset()
	assert.InDelta(t, 0.5, b.ProcessSample(1), eps)
	assert.Equal(t, 2, b.Len())
}
