package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gario/internal/geom"
)

func TestRadiusAfterEatConservesMass(t *testing.T) {
	cases := []struct {
		name   string
		r1, r2 float32
	}{
		{"equal", 10, 10},
		{"large eats small", 10, 2},
		{"fractional", 3.5, 5.75},
		{"zero partner", 14, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			merged := RadiusAfterEat(tc.r1, tc.r2)
			assert.InDelta(t, float64(Mass(tc.r1)+Mass(tc.r2)), float64(Mass(merged)), 0.05)
		})
	}
}

func TestRadiusAfterEatEqualStarters(t *testing.T) {
	// Two starting players merge to sqrt(2) times the start radius.
	assert.InDelta(t, 10*math.Sqrt2, float64(RadiusAfterEat(10, 10)), 1e-3)
}

func TestNewPlayerDefaults(t *testing.T) {
	p := NewPlayer(7, "blob")
	assert.Equal(t, uint32(7), p.ID)
	assert.Equal(t, "blob", p.Name)
	assert.Equal(t, float32(StartRadius), p.Radius)
	assert.Equal(t, geom.Vector2D{}, p.Position)
}

func TestMoveTowardsConvergesWithoutOvershoot(t *testing.T) {
	p := NewPlayer(1, "runner")
	target := geom.Vector2D{X: 1000, Y: 0}

	prevX := p.Position.X
	for i := 0; i < 2000; i++ {
		p.MoveTowards(target)
		require.GreaterOrEqual(t, p.Position.X, prevX)
		require.LessOrEqual(t, p.Position.X, float32(1000))
		prevX = p.Position.X
	}

	speed := moveSpeed / float32(math.Sqrt(float64(p.Mass())))
	assert.Less(t, target.Sub(p.Position).Magnitude(), speed)
	assert.Equal(t, float32(0), p.Position.Y)
}

func TestMoveTowardsArrivedIsNoOp(t *testing.T) {
	p := NewPlayer(1, "idler")
	p.Position = geom.Vector2D{X: 50, Y: 50}

	// Target closer than one step: the player waits instead of jittering.
	p.MoveTowards(geom.Vector2D{X: 50.5, Y: 50})
	assert.Equal(t, geom.Vector2D{X: 50, Y: 50}, p.Position)
}

func TestMoveTowardsSlowsWithSize(t *testing.T) {
	small := NewPlayer(1, "small")
	big := NewPlayer(2, "big")
	big.Radius = 40

	target := geom.Vector2D{X: 1000, Y: 0}
	small.MoveTowards(target)
	big.MoveTowards(target)

	assert.Greater(t, small.Position.X, big.Position.X)
	assert.Greater(t, big.Position.X, float32(0))
}
