package game

import "gario/internal/geom"

// Command is one unit of intake for the game manager. Player-sourced
// commands (Join, Move) carry the id the connection was assigned; the
// remaining commands are issued by the manager itself, except RemovePlayer,
// which the transport also enqueues when a connection drops.
type Command interface {
	isCommand()
}

// Join requests creation of a player for an existing connection. It is
// translated into AddPlayer so that player creation has a single code path.
type Join struct {
	PlayerID uint32
	Name     string
}

// Move sets the point a player is steering toward. Unknown ids are ignored.
type Move struct {
	PlayerID uint32
	Target   geom.Vector2D
}

// Update advances the simulation one tick and broadcasts a state snapshot.
type Update struct{}

// AddPlayer inserts a new player into the world.
type AddPlayer struct {
	PlayerID uint32
	Name     string
}

// RemovePlayer drops a player from the world, notifying it first.
// Enqueued by the reaper for dead players and by the transport on
// disconnect; removing an id that is not present is a no-op.
type RemovePlayer struct {
	PlayerID uint32
}

func (Join) isCommand()         {}
func (Move) isCommand()         {}
func (Update) isCommand()       {}
func (AddPlayer) isCommand()    {}
func (RemovePlayer) isCommand() {}
