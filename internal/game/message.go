package game

// Message types for server-to-client communication
const (
	MsgTypeJoinSuccess = "joinSuccess"
	MsgTypePlayerEaten = "playerEaten"
	MsgTypeState       = "state"
)

// Message is any payload the manager sends toward clients, either to a
// single player's sink or through the broadcaster.
type Message interface {
	isMessage()
}

// JoinSuccessMsg tells a player the id it was assigned. Sent directly to
// that player so it learns its identity before the next snapshot arrives.
type JoinSuccessMsg struct {
	Type string `json:"type" msgpack:"type"`
	ID   uint32 `json:"id" msgpack:"id"`
}

// PlayerEatenMsg tells a player it has been removed from the world.
type PlayerEatenMsg struct {
	Type string `json:"type" msgpack:"type"`
	ID   uint32 `json:"id" msgpack:"id"`
}

// StateMsg is the full world snapshot broadcast after every tick.
type StateMsg struct {
	Type    string   `json:"type" msgpack:"type"`
	Players []Player `json:"players" msgpack:"players"`
	Food    []Food   `json:"food" msgpack:"food"`
}

func (JoinSuccessMsg) isMessage() {}
func (PlayerEatenMsg) isMessage() {}
func (StateMsg) isMessage()       {}
