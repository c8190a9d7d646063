package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastReachesAllSubscribers(t *testing.T) {
	b := NewBroadcaster(4)

	ch1, cancel1 := b.Subscribe()
	ch2, cancel2 := b.Subscribe()
	defer cancel1()
	defer cancel2()

	b.Publish(StateMsg{Type: MsgTypeState})

	for _, ch := range []<-chan Message{ch1, ch2} {
		select {
		case msg := <-ch:
			_, ok := msg.(StateMsg)
			assert.True(t, ok)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive the broadcast")
		}
	}
}

func TestPublishNeverBlocksOnLaggingSubscriber(t *testing.T) {
	b := NewBroadcaster(1)

	ch, cancel := b.Subscribe()
	defer cancel()

	// Nobody is draining; overflow frames are dropped, not queued.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			b.Publish(StateMsg{Type: MsgTypeState})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}

	// Only the buffered frame survived.
	require.Len(t, ch, 1)
}

func TestCancelClosesChannelAndIsIdempotent(t *testing.T) {
	b := NewBroadcaster(1)

	ch, cancel := b.Subscribe()
	require.Equal(t, 1, b.NumSubscribers())

	cancel()
	cancel() // second call must be harmless

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, b.NumSubscribers())

	// Publishing after cancel reaches nobody and does not panic.
	b.Publish(StateMsg{Type: MsgTypeState})
}
