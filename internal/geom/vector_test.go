package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagnitude(t *testing.T) {
	assert.Equal(t, float32(5), Vector2D{X: 3, Y: 4}.Magnitude())
	assert.Equal(t, float32(0), Vector2D{}.Magnitude())
	assert.Equal(t, float32(2), Vector2D{X: 0, Y: -2}.Magnitude())
}

func TestNormalize(t *testing.T) {
	n := Vector2D{X: 3, Y: 4}.Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-6)
	assert.InDelta(t, 0.8, n.Y, 1e-6)
	assert.InDelta(t, 1.0, n.Magnitude(), 1e-6)
}

func TestNormalizeZeroVector(t *testing.T) {
	n := Vector2D{}.Normalize()
	require.False(t, math.IsNaN(float64(n.X)))
	require.False(t, math.IsNaN(float64(n.Y)))
	assert.Equal(t, Vector2D{}, n)
}

func TestArithmetic(t *testing.T) {
	a := Vector2D{X: 1, Y: 2}
	b := Vector2D{X: 3, Y: -4}

	assert.Equal(t, Vector2D{X: 4, Y: -2}, a.Add(b))
	assert.Equal(t, Vector2D{X: -2, Y: 6}, a.Sub(b))
	assert.Equal(t, Vector2D{X: 2.5, Y: 5}, a.Scale(2.5))

	// operations leave the operands untouched
	assert.Equal(t, Vector2D{X: 1, Y: 2}, a)
	assert.Equal(t, Vector2D{X: 3, Y: -4}, b)
}
