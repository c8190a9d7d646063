package server

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"gario/internal/game"
	"gario/internal/geom"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// clientMessage is the JSON envelope for everything a client sends.
type clientMessage struct {
	Type     string        `json:"type"`
	Name     string        `json:"name"`
	Position geom.Vector2D `json:"position"`
}

// Client message types
const (
	msgTypeJoin = "join"
	msgTypeMove = "move"
)

// client owns one websocket connection. All writes to the socket go
// through the send channel and a single write pump; direct messages from
// the game and broadcast snapshots both funnel into it.
type client struct {
	id   uint32
	conn *websocket.Conn
	send chan []byte
	log  zerolog.Logger

	closeOnce sync.Once
	closed    chan struct{}
}

func newClient(id uint32, conn *websocket.Conn, sendBuffer int, log zerolog.Logger) *client {
	return &client{
		id:     id,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		log:    log.With().Uint32("id", id).Logger(),
		closed: make(chan struct{}),
	}
}

// close makes the write pump shut the connection down. Idempotent.
func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.closed)
	})
}

// Send implements game.Sink. The frame is encoded here and queued for the
// write pump; a full buffer means the client is too slow and the frame is
// dropped with an error rather than blocking the caller.
func (c *client) Send(msg game.Message) error {
	data, err := msgpack.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	select {
	case <-c.closed:
		return errors.New("connection closed")
	case c.send <- data:
		return nil
	default:
		return errors.New("send buffer full")
	}
}

// forwardBroadcast pushes every snapshot from the subscription into the
// send queue. Drops are logged at debug only; the next snapshot supersedes
// a missed one anyway.
func (c *client) forwardBroadcast(messages <-chan game.Message) {
	for msg := range messages {
		if err := c.Send(msg); err != nil {
			c.log.Debug().Err(err).Msg("dropped broadcast frame")
		}
	}
}

// writePump is the only goroutine that writes to the socket. It drains the
// send queue and keeps the connection alive with periodic pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.closed:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case data := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				c.log.Debug().Err(err).Msg("write error")
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
