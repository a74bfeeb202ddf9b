package server

import (
	"context"
	"fmt"
	"sync"

	"pockettcg/internal/deckbuilder"
	"pockettcg/internal/engine"
	engerrors "pockettcg/internal/errors"
	"pockettcg/internal/message"
	"pockettcg/internal/model"
	"pockettcg/internal/repository"
	"pockettcg/internal/rng"
	"pockettcg/internal/state"
	"pockettcg/internal/turn"

	"github.com/google/uuid"
)

// Game pairs a running Engine with the two connections driving it.
type Game struct {
	Engine      *engine.Engine
	Connections [2]*Connection
}

// Hub owns every in-progress game and routes inbound Responses to the
// matching Engine, fanning its Status back out to both seats.
type Hub struct {
	repo repository.CardRepository

	mu    sync.RWMutex
	games map[string]*Game
}

// NewHub builds an empty game registry against the given card repository.
func NewHub(repo repository.CardRepository) *Hub {
	return &Hub{repo: repo, games: make(map[string]*Game)}
}

// CreateGame builds a fresh two-player GameState from deckA/deckB template
// ids, wires an Engine and Notifier around it, and registers the game under
// a new id.
func (h *Hub) CreateGame(deckA, deckB []string, params state.Params, seed int64) (string, error) {
	instancesA, err := deckbuilder.Build(h.repo, deckA)
	if err != nil {
		return "", err
	}
	instancesB, err := deckbuilder.Build(h.repo, deckB)
	if err != nil {
		return "", err
	}

	gs := state.New([2][]model.CardInstance{instancesA, instancesB}, params, rng.NewDefault(seed))
	for i := range gs.Players {
		p := &gs.Players[i]
		p.AvailableTypes = []model.EnergyType{model.EnergyFire, model.EnergyWater, model.EnergyGrass}
		for j := 0; j < 3 && len(p.Deck) > 0; j++ {
			p.Field = append(p.Field, model.CreatureStack{Forms: []model.CardInstance{p.Deck[0]}})
			p.Deck = p.Deck[1:]
		}
		for j := 0; j < 5 && len(p.Deck) > 0; j++ {
			p.Hand = append(p.Hand, p.Deck[0])
			p.Deck = p.Deck[1:]
		}
	}
	turn.Begin(gs)

	gameID := uuid.NewString()
	notifier := message.NewNotifier(4, 256)
	game := &Game{Engine: engine.New(gameID, gs, h.repo, notifier)}

	notifier.Subscribe(func(ctx context.Context, notifiedGameID string, status message.Status) error {
		h.mu.RLock()
		g, ok := h.games[notifiedGameID]
		h.mu.RUnlock()
		if !ok {
			return nil
		}
		for _, conn := range g.Connections {
			if conn != nil {
				conn.Notify(status)
			}
		}
		return nil
	})

	h.mu.Lock()
	h.games[gameID] = game
	h.mu.Unlock()

	return gameID, nil
}

// Join seats conn at player in gameID, returning an error if the seat is
// already taken or the game does not exist.
func (h *Hub) Join(gameID string, player int, conn *Connection) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	game, ok := h.games[gameID]
	if !ok {
		return fmt.Errorf("unknown game %q", gameID)
	}
	if player < 0 || player > 1 {
		return fmt.Errorf("player seat must be 0 or 1")
	}
	if game.Connections[player] != nil {
		return fmt.Errorf("seat %d is already taken", player)
	}
	game.Connections[player] = conn
	conn.Assign(gameID, player)
	return nil
}

// Dispatch submits resp to gameID's engine on behalf of player. A non-fatal
// error surfaces to the caller as a rejected Status (see Engine.Submit); a
// fatal error (NotFoundError, StateInvariantViolationError) is returned so
// the caller can terminate the connection. An unknown gameID is returned as
// a ValidationError with an empty Status.
func (h *Hub) Dispatch(ctx context.Context, gameID string, player int, resp message.Response) (message.Status, error) {
	h.mu.RLock()
	game, ok := h.games[gameID]
	h.mu.RUnlock()
	if !ok {
		return message.Status{}, &engerrors.ValidationError{Reason: fmt.Sprintf("unknown game %q", gameID)}
	}
	return game.Engine.Submit(ctx, player, resp)
}

func (h *Hub) unregister(conn *Connection) {
	gameID, player := conn.assignment()
	if gameID == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if game, ok := h.games[gameID]; ok {
		game.Connections[player] = nil
	}
}
