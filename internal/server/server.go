package server

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"gario/internal/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow connections from any origin
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Server accepts websocket connections and bridges them to the game
// manager: inbound JSON becomes commands on the intake, outbound messages
// arrive through the player's sink and the broadcaster.
type Server struct {
	game       *game.Manager
	sendBuffer int
	nextID     atomic.Uint32
	log        zerolog.Logger
}

// New creates a server in front of the given game manager.
func New(manager *game.Manager, sendBuffer int, log zerolog.Logger) *Server {
	return &Server{
		game:       manager,
		sendBuffer: sendBuffer,
		log:        log,
	}
}

// Start launches the game loops and serves websocket upgrades on /ws.
func (s *Server) Start(addr string) error {
	s.game.Start()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)

	s.log.Info().Str("addr", addr).Msg("server listening")
	return http.ListenAndServe(addr, mux)
}

// handleWebSocket upgrades a connection, assigns it a fresh player id and
// wires it into the game: sink registration, broadcast subscription, and
// the read/write pumps.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	id := s.nextID.Add(1)
	client := newClient(id, conn, s.sendBuffer, s.log)

	s.game.Sinks().Register(id, client)
	messages, cancel := s.game.Broadcast().Subscribe()

	go client.writePump()
	go client.forwardBroadcast(messages)
	go s.readPump(client, cancel)

	s.log.Info().Uint32("id", id).Str("remote", r.RemoteAddr).Msg("client connected")
}

// readPump decodes client commands and feeds them to the game. A malformed
// message is discarded without disturbing the connection; a read error ends
// the session and enqueues the player's removal.
func (s *Server) readPump(c *client, cancel func()) {
	defer func() {
		cancel()
		s.game.Sinks().Unregister(c.id)
		c.close()
		s.game.Enqueue(game.RemovePlayer{PlayerID: c.id})
		s.log.Info().Uint32("id", c.id).Msg("client disconnected")
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.log.Warn().Err(err).Uint32("id", c.id).Msg("websocket error")
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.log.Warn().Err(err).Uint32("id", c.id).Msg("discarding malformed message")
			continue
		}

		switch msg.Type {
		case msgTypeJoin:
			s.game.Enqueue(game.Join{PlayerID: c.id, Name: msg.Name})
		case msgTypeMove:
			s.game.Enqueue(game.Move{PlayerID: c.id, Target: msg.Position})
		default:
			s.log.Debug().Str("type", msg.Type).Uint32("id", c.id).Msg("unknown message type")
		}
	}
}
