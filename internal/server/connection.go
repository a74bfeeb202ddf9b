// Package server exposes internal/engine over a websocket connection,
// grounded on the teacher's internal/delivery/websocket package: one
// Connection per socket, a read pump and a write pump running in their own
// goroutines, and a Hub that owns the registry of in-progress games.
package server

import (
	"context"
	"sync"
	"time"

	"pockettcg/internal/logger"
	"pockettcg/internal/message"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	writeWait  = 10 * time.Second
)

// Connection is one player's socket into a Game.
type Connection struct {
	ID     string
	Conn   *websocket.Conn
	Send   chan message.Status
	mu     sync.RWMutex
	Player int
	GameID string
	logger *zap.Logger
}

// NewConnection wraps an already-upgraded socket.
func NewConnection(id string, conn *websocket.Conn) *Connection {
	return &Connection{
		ID:     id,
		Conn:   conn,
		Send:   make(chan message.Status, 64),
		logger: logger.Get(),
	}
}

// Assign records which game and seat this connection plays.
func (c *Connection) Assign(gameID string, player int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.GameID = gameID
	c.Player = player
}

func (c *Connection) assignment() (gameID string, player int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.GameID, c.Player
}

// ReadPump decodes incoming Response messages and hands them to dispatch
// until the socket closes or ctx is cancelled.
func (c *Connection) ReadPump(ctx context.Context, hub *Hub) {
	defer func() {
		hub.unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		var resp message.Response
		if err := c.Conn.ReadJSON(&resp); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("websocket read error", zap.Error(err), zap.String("connection_id", c.ID))
			}
			return
		}

		gameID, player := c.assignment()
		if gameID == "" {
			c.Send <- message.Status{Kind: message.StatusRejected, RejectReason: "connection not assigned to a game"}
			continue
		}
		status, err := hub.Dispatch(ctx, gameID, player, resp)
		if err != nil {
			c.logger.Error("fatal engine error, closing game", zap.Error(err), zap.String("game_id", gameID))
			return
		}
		_ = status
	}
}

// WritePump drains Send to the socket, keeping the connection alive with
// periodic pings, until ctx is cancelled or the channel closes.
func (c *Connection) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case status, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteJSON(status); err != nil {
				c.logger.Error("websocket write error", zap.Error(err), zap.String("connection_id", c.ID))
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Notify pushes one status onto Send, dropping it (and logging a warning) if
// the client has fallen too far behind to keep up; the connection stays open.
func (c *Connection) Notify(status message.Status) {
	select {
	case c.Send <- status:
	default:
		c.logger.Warn("connection send buffer full, dropping", zap.String("connection_id", c.ID))
	}
}
