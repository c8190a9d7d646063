package game

import "sync"

// Broadcaster fans messages out to every subscriber. Publishing never
// blocks: a subscriber whose buffer is full misses that message, so a slow
// client can lag behind the snapshot stream but can never stall the tick
// loop.
type Broadcaster struct {
	mu      sync.Mutex
	subs    map[chan Message]struct{}
	bufSize int
}

// NewBroadcaster creates a broadcaster whose subscribers each get a buffer
// of bufSize messages.
func NewBroadcaster(bufSize int) *Broadcaster {
	if bufSize <= 0 {
		bufSize = 1
	}
	return &Broadcaster{
		subs:    make(map[chan Message]struct{}),
		bufSize: bufSize,
	}
}

// Subscribe registers a new subscriber and returns its message channel
// along with a cancel function. Cancel is idempotent and closes the
// channel.
func (b *Broadcaster) Subscribe() (<-chan Message, func()) {
	ch := make(chan Message, b.bufSize)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
	}
	return ch, cancel
}

// Publish delivers msg to every subscriber that has buffer room.
func (b *Broadcaster) Publish(msg Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		select {
		case ch <- msg:
		default:
			// Subscriber is lagging, drop this message for it.
		}
	}
}

// NumSubscribers returns the current subscriber count.
func (b *Broadcaster) NumSubscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
