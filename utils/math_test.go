package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMath(t *testing.T) {
	for p := -10; p <= 10; p++ {
		assert.InDelta(t, math.Pow(1.3, float64(p)), POW(1.3, p), 1.e-12)
	}
	assert.Equal(t, 0., Sign(0))
	assert.Equal(t, -1., Sign(-1.e-300))
	assert.Equal(t, 1., Sign(3))
	assert.Equal(t, 1., Clamp(2, 0, 1))
	assert.Equal(t, 0., Clamp(-2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, -0.5, MinAbs(-0.5, 2))
	assert.Equal(t, 0.25, MinAbs(-0.5, 0.25))
	assert.True(t, IsNan([]float64{1, math.NaN()}))
	assert.False(t, IsNan([4]float64{1, 2, 3, 4}))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.True(t, IsFinite(1))
}
