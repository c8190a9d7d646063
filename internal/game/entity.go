package game

import (
	"math"

	"gario/internal/geom"
)

// Gameplay constants. These are part of the game rules rather than
// deployment tuning, so they live here instead of the config file.
const (
	// StartRadius is the radius every player spawns with.
	StartRadius = 10.0
	// moveSpeed scales per-tick movement; actual speed is moveSpeed/sqrt(mass).
	moveSpeed = 100.0
	// reapThreshold is the radius at or below which a player counts as dead.
	reapThreshold = 0.01
)

// Player is a live cell controlled by one connection.
type Player struct {
	ID       uint32        `json:"id" msgpack:"id"`
	Position geom.Vector2D `json:"position" msgpack:"position"`
	Radius   float32       `json:"radius" msgpack:"radius"`
	Name     string        `json:"name" msgpack:"name"`
}

// Food is an identity-less edible blob. It is matched by slice index only.
type Food struct {
	Position geom.Vector2D `json:"position" msgpack:"position"`
	Radius   float32       `json:"radius" msgpack:"radius"`
}

// NewPlayer creates a player at the origin with the starting radius.
func NewPlayer(id uint32, name string) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		Radius: StartRadius,
	}
}

// Mass converts a radius to mass. Mass, not radius, is the quantity
// conserved when one entity eats another.
func Mass(radius float32) float32 {
	return 2 * math.Pi * radius * radius
}

// Mass returns the player's current mass.
func (p *Player) Mass() float32 {
	return Mass(p.Radius)
}

// RadiusAfterEat returns the radius of the merged entity when two entities
// of the given radii combine. The merged mass is the sum of both masses.
func RadiusAfterEat(r1, r2 float32) float32 {
	combined := Mass(r1) + Mass(r2)
	return float32(math.Sqrt(float64(combined / (2 * math.Pi))))
}

// MoveTowards advances the player one step toward target. Heavier players
// move slower. When the target is closer than one step the player stays
// put instead of overshooting and jittering around it.
func (p *Player) MoveTowards(target geom.Vector2D) {
	speed := moveSpeed / float32(math.Sqrt(float64(p.Mass())))
	diff := target.Sub(p.Position)

	if diff.Magnitude() < speed {
		return
	}

	p.Position = p.Position.Add(diff.Normalize().Scale(speed))
}
