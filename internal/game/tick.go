package game

import (
	"math/rand"

	"gario/internal/geom"
)

// update advances the simulation one tick. The step order matters: food
// growth applies to post-collision radii, the reaper sees the combined
// result, and the food floor is restored last.
func (m *Manager) update() {
	m.resolvePlayerCollisions()
	m.resolveFoodCollisions()
	m.reapDeadPlayers()
	m.replenishFood()
}

// resolvePlayerCollisions scans every ordered pair of distinct players.
// Both orders of each pair are evaluated and resolutions cascade within
// the scan, so radii already changed this tick feed into every later pair.
// Gameplay outcomes depend on this exact ordering.
func (m *Manager) resolvePlayerCollisions() {
	for i := 0; i < len(m.players); i++ {
		for j := 0; j < len(m.players); j++ {
			player := m.players[i]
			other := m.players[j]
			if player.ID == other.ID {
				continue
			}

			distance := player.Position.Sub(other.Position).Magnitude()
			if distance >= player.Radius+other.Radius {
				continue
			}

			// On equal radii the player not strictly greater loses.
			merged := RadiusAfterEat(player.Radius, other.Radius)
			if player.Radius > other.Radius {
				player.Radius = merged
				other.Radius = 0
			} else {
				other.Radius = merged
				player.Radius = 0
			}
		}
	}
}

// resolveFoodCollisions grows players over any food they overlap. Both
// scans run in reverse index order so removing food mid-scan neither skips
// nor double-processes an item.
func (m *Manager) resolveFoodCollisions() {
	for i := len(m.players) - 1; i >= 0; i-- {
		player := m.players[i]
		for j := len(m.food) - 1; j >= 0; j-- {
			food := m.food[j]

			distance := player.Position.Sub(food.Position).Magnitude()
			if distance < player.Radius+food.Radius {
				player.Radius = RadiusAfterEat(player.Radius, food.Radius)
				m.food = append(m.food[:j], m.food[j+1:]...)
			}
		}
	}
}

// reapDeadPlayers schedules removal for every player at or below the death
// threshold. Removal goes through the intake rather than mutating the
// player slice mid-tick; the enqueue runs in its own goroutine because the
// consumer is busy executing this very tick.
func (m *Manager) reapDeadPlayers() {
	for _, player := range m.players {
		if player.Radius <= reapThreshold {
			id := player.ID
			go m.Enqueue(RemovePlayer{PlayerID: id})
		}
	}
}

// replenishFood tops the food population back up to the floor.
func (m *Manager) replenishFood() {
	if missing := m.settings.FoodFloor - len(m.food); missing > 0 {
		m.food = append(m.food, m.generateFood(missing)...)
	}
}

// generateFood creates n food items with random radii, placed inside the
// arena inset by their own radius.
func (m *Manager) generateFood(n int) []Food {
	food := make([]Food, 0, n)
	for i := 0; i < n; i++ {
		radius := m.settings.FoodRadiusMin +
			rand.Float32()*(m.settings.FoodRadiusMax-m.settings.FoodRadiusMin)
		x := radius + rand.Float32()*(m.settings.ArenaWidth-2*radius)
		y := radius + rand.Float32()*(m.settings.ArenaHeight-2*radius)

		food = append(food, Food{
			Position: geom.Vector2D{X: x, Y: y},
			Radius:   radius,
		})
	}
	return food
}
