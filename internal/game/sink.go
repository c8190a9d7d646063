package game

import "sync"

// Sink accepts outbound messages addressed to a single player. The manager
// never sees the transport behind it; it only needs Send, which may fail.
type Sink interface {
	Send(msg Message) error
}

// SinkTable maps player ids to their outbound sinks. The lock covers entry
// insert, lookup and remove only; sending happens outside it, so concurrent
// sends to different players never contend here.
type SinkTable struct {
	mu    sync.RWMutex
	sinks map[uint32]Sink
}

// NewSinkTable creates an empty sink table.
func NewSinkTable() *SinkTable {
	return &SinkTable{sinks: make(map[uint32]Sink)}
}

// Register associates a sink with a player id, replacing any previous one.
func (t *SinkTable) Register(id uint32, sink Sink) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sinks[id] = sink
}

// Unregister removes the sink for a player id.
func (t *SinkTable) Unregister(id uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sinks, id)
}

// Get returns the sink for a player id, if one is registered.
func (t *SinkTable) Get(id uint32) (Sink, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	sink, ok := t.sinks[id]
	return sink, ok
}
