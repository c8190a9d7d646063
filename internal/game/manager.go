package game

import (
	"time"

	"github.com/rs/zerolog"

	"gario/internal/geom"
)

// Settings holds the tuning knobs for a game world.
type Settings struct {
	TickInterval    time.Duration
	ArenaWidth      float32
	ArenaHeight     float32
	FoodFloor       int
	FoodRadiusMin   float32
	FoodRadiusMax   float32
	CommandBuffer   int
	BroadcastBuffer int
}

// DefaultSettings returns the standard world tuning.
func DefaultSettings() Settings {
	return Settings{
		TickInterval:    10 * time.Millisecond,
		ArenaWidth:      800,
		ArenaHeight:     600,
		FoodFloor:       50,
		FoodRadiusMin:   2,
		FoodRadiusMax:   6,
		CommandBuffer:   100,
		BroadcastBuffer: 16,
	}
}

// Manager owns the authoritative world state. Players and food are reached
// only through the command channel, which is drained by exactly one
// goroutine; that single-consumer rule is what makes the mutable state safe
// without a lock around it.
type Manager struct {
	settings Settings

	players []*Player
	food    []Food

	commands  chan Command
	broadcast *Broadcaster
	sinks     *SinkTable
	quit      chan struct{}

	log zerolog.Logger
}

// NewManager creates a world seeded with a full population of food.
func NewManager(settings Settings, log zerolog.Logger) *Manager {
	m := &Manager{
		settings:  settings,
		commands:  make(chan Command, settings.CommandBuffer),
		broadcast: NewBroadcaster(settings.BroadcastBuffer),
		sinks:     NewSinkTable(),
		quit:      make(chan struct{}),
		log:       log,
	}
	m.food = m.generateFood(settings.FoodFloor)
	return m
}

// Broadcast returns the snapshot broadcaster the transport subscribes
// clients to.
func (m *Manager) Broadcast() *Broadcaster {
	return m.broadcast
}

// Sinks returns the table the transport registers per-player sinks in.
func (m *Manager) Sinks() *SinkTable {
	return m.sinks
}

// Start launches the tick producer and the command consumer.
func (m *Manager) Start() {
	go m.tickLoop()
	go m.Run()
	m.log.Info().
		Dur("tick", m.settings.TickInterval).
		Int("food", len(m.food)).
		Msg("game world started")
}

// Stop shuts down both loops.
func (m *Manager) Stop() {
	close(m.quit)
}

// Enqueue appends a command to the intake. It blocks while the intake is
// full, which is the backpressure producers see when the consumer falls
// behind.
func (m *Manager) Enqueue(cmd Command) {
	select {
	case m.commands <- cmd:
	case <-m.quit:
	}
}

// Run drains the command intake and applies each command in arrival order.
// It returns when the manager is stopped, or when the intake is closed,
// which is the one condition fatal to the simulation.
func (m *Manager) Run() {
	for {
		select {
		case <-m.quit:
			return
		case cmd, ok := <-m.commands:
			if !ok {
				m.log.Error().Msg("command intake closed, stopping simulation")
				return
			}
			m.apply(cmd)
		}
	}
}

// tickLoop enqueues an Update at the configured interval for the lifetime
// of the manager. It does not compensate for drift: under load Updates
// queue up and drain late rather than being skipped.
func (m *Manager) tickLoop() {
	ticker := time.NewTicker(m.settings.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.quit:
			return
		case <-ticker.C:
			m.Enqueue(Update{})
		}
	}
}

// apply performs one state transition. Only the Run goroutine calls it.
func (m *Manager) apply(cmd Command) {
	switch c := cmd.(type) {
	case Join:
		m.addPlayer(c.PlayerID, c.Name)
	case AddPlayer:
		m.addPlayer(c.PlayerID, c.Name)
	case Move:
		m.movePlayer(c.PlayerID, c.Target)
	case Update:
		m.update()
		m.broadcastState()
	case RemovePlayer:
		m.removePlayer(c.PlayerID)
	}
}

func (m *Manager) addPlayer(id uint32, name string) {
	m.sendToPlayer(id, JoinSuccessMsg{Type: MsgTypeJoinSuccess, ID: id})
	m.players = append(m.players, NewPlayer(id, name))
	m.log.Info().Uint32("id", id).Str("name", name).Msg("player joined")
}

// removePlayer notifies the player and then drops it from the world. The
// notify-then-remove order keeps the sink resolvable while the message is
// dispatched. Unknown ids are ignored, so a duplicate RemovePlayer (reaper
// plus disconnect, say) produces exactly one notification.
func (m *Manager) removePlayer(id uint32) {
	found := false
	kept := m.players[:0]
	for _, p := range m.players {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return
	}

	m.sendToPlayer(id, PlayerEatenMsg{Type: MsgTypePlayerEaten, ID: id})
	m.players = kept
	m.log.Info().Uint32("id", id).Msg("player removed")
}

func (m *Manager) movePlayer(id uint32, target geom.Vector2D) {
	for _, p := range m.players {
		if p.ID == id {
			p.MoveTowards(target)
			return
		}
	}
}

// sendToPlayer dispatches a direct message as a fire-and-forget goroutine
// so a slow or broken sink never blocks command processing. Failures are
// logged and dropped.
func (m *Manager) sendToPlayer(id uint32, msg Message) {
	sink, ok := m.sinks.Get(id)
	if !ok {
		m.log.Debug().Uint32("id", id).Msg("no sink registered for player")
		return
	}

	go func() {
		if err := sink.Send(msg); err != nil {
			m.log.Warn().Err(err).Uint32("id", id).Msg("dropping message to player")
		}
	}()
}

// broadcastState publishes a full snapshot of the world.
func (m *Manager) broadcastState() {
	players := make([]Player, len(m.players))
	for i, p := range m.players {
		players[i] = *p
	}
	food := make([]Food, len(m.food))
	copy(food, m.food)

	m.broadcast.Publish(StateMsg{Type: MsgTypeState, Players: players, Food: food})
}
