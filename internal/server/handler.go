package server

import (
	"context"
	"errors"
	"net/http"

	"pockettcg/internal/logger"
	"pockettcg/internal/state"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var errInvalidPlayerQuery = errors.New("player query parameter must be 0 or 1")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler wires Hub onto Gin routes: a REST endpoint to create a game and a
// websocket endpoint to join and play one.
type Handler struct {
	hub *Hub
}

// NewHandler builds a Handler around hub.
func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

type createGameRequest struct {
	DeckA []string `json:"deckA" binding:"required"`
	DeckB []string `json:"deckB" binding:"required"`
	Seed  int64    `json:"seed"`
}

// CreateGame handles POST /games: builds a fresh game and returns its id.
func (h *Handler) CreateGame(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	gameID, err := h.hub.CreateGame(req.DeckA, req.DeckB, state.DefaultParams(), req.Seed)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"gameId": gameID})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ServeWS handles GET /games/:id/ws?player=0|1: upgrades the connection,
// seats it, and starts its read/write pumps.
func (h *Handler) ServeWS(c *gin.Context) {
	gameID := c.Param("id")
	var player int
	if err := bindPlayerQuery(c, &player); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	connection := NewConnection(uuid.NewString(), conn)
	if err := h.hub.Join(gameID, player, connection); err != nil {
		conn.WriteJSON(gin.H{"error": err.Error()})
		conn.Close()
		return
	}

	ctx := context.Background()
	go connection.WritePump(ctx)
	go connection.ReadPump(ctx, h.hub)
}

func bindPlayerQuery(c *gin.Context, player *int) error {
	raw := c.Query("player")
	switch raw {
	case "0":
		*player = 0
	case "1":
		*player = 1
	default:
		return errInvalidPlayerQuery
	}
	return nil
}

