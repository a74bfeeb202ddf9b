// Package state holds the single mutable game-state record the rest of the
// engine operates on, grounded on the teacher's domain.GameState but
// restructured around the specification's data model (§3): zones, field
// stacks keyed by field-instance id, a passive-effect registry, and a
// single-slot pending selection.
package state

import (
	"pockettcg/internal/model"
	"pockettcg/internal/rng"
)

// Phase enumerates the turn-phase state machine's phases (specification §4.9).
type Phase string

const (
	PhaseSetup                Phase = "setup"
	PhaseStartOfGame          Phase = "start_of_game"
	PhaseGenerateEnergyAndDraw Phase = "generate_energy_and_draw"
	PhaseActionLoop           Phase = "action_loop"
	PhaseEndOfTurn            Phase = "end_of_turn"
	PhaseCheckup              Phase = "checkup"
	PhaseSelectNewActive      Phase = "select_new_active"
	PhaseGameOver             Phase = "game_over"
)

// Params holds the configurable options of specification §6.
type Params struct {
	MaxHandSize int
	MaxTurns    int
}

// DefaultParams returns the §6 defaults.
func DefaultParams() Params {
	return Params{MaxHandSize: 10, MaxTurns: 30}
}

// Scratch is the turn-local bookkeeping of specification §3, reset at the
// start of each player's turn.
type Scratch struct {
	SupporterPlayedThisTurn bool
	RetreatedThisTurn       bool
	EnergyAttachedThisTurn  bool
	EvolvedInstancesThisTurn map[string]bool
}

func newScratch() Scratch {
	return Scratch{EvolvedInstancesThisTurn: make(map[string]bool)}
}

// PendingEffect is one entry in the FIFO pending-effect queue (specification
// §4.7/§5): an effect awaiting its turn to be driven through the applier.
//
// @name PendingEffect
type PendingEffect struct {
	Effect  model.Effect
	Context model.EffectContext
}

// GameOverResult describes the terminal state of a finished game.
type GameOverResult struct {
	Winner int  // player index, or -1 for a tie
	Tie    bool
}

// GameState is the sole mutable root described by specification §3.
type GameState struct {
	TurnNumber        int
	ActivePlayerIndex int
	Phase             Phase
	AbsoluteFirstTurn bool

	Players [2]Player

	// Energy and Tools are keyed by field-instance id so attachments survive
	// evolution (the field-instance id is stable across the whole stack).
	Energy map[string]model.EnergyHistogram
	Tools  map[string]model.CardInstance

	// Status effects are keyed by field-instance id: the creature currently
	// carrying them, not the owning player, so that "retreating clears
	// status effects on the retreating creature" (specification §8) is a
	// single map delete.
	Status map[string][]StatusEntry

	// Damage tracks damage taken per field-instance id. Current HP is
	// max_hp (+ hp-bonus passives, queried live from Passives) minus
	// Damage[fieldInstanceID].
	Damage map[string]int

	Passives      []model.PassiveEffect
	nextPassiveID int64

	Params  Params
	Scratch Scratch

	PendingSelection *PendingSelection
	PendingEffects   []PendingEffect

	// ReturnPhase is the phase to resume once select_new_active completes
	// (a knockout can occur mid action-loop, from an attack, or mid
	// checkup, from a status tick — select_new_active must hand control
	// back to whichever one triggered it).
	ReturnPhase Phase

	// PendingContinuation and ContinuationPlayer record turn-phase work
	// left to finish once the pending-effect queue drains, for the case
	// where a start-of-turn/end-of-turn trigger itself suspended on a
	// player selection mid-phase-transition (specification §5: the state
	// machine halts until the selection is answered, then picks up exactly
	// where it left off).
	PendingContinuation string
	ContinuationPlayer  int

	GameOver *GameOverResult

	RNG rng.Source
}

// StatusEntry is one active status condition on a field-instance, with the
// turn it was applied (paralysis clears at the start of the next turn;
// tracking the turn lets checkup/start-of-turn compute that without a
// separate timer type).
//
// @name StatusEntry
type StatusEntry struct {
	Kind        model.StatusKind
	AppliedTurn int
}

// New builds an empty GameState with the given decks already placed (see
// deckbuilder), ready for the setup phase.
func New(decks [2][]model.CardInstance, params Params, source rng.Source) *GameState {
	gs := &GameState{
		Phase:  PhaseSetup,
		Energy: make(map[string]model.EnergyHistogram),
		Tools:  make(map[string]model.CardInstance),
		Status: make(map[string][]StatusEntry),
		Damage: make(map[string]int),
		Params: params,
		Scratch: newScratch(),
		RNG:    source,
	}
	for i := range gs.Players {
		gs.Players[i] = newPlayer(decks[i])
	}
	return gs
}

// Opponent returns the index of the player opposite playerIndex (the game
// has exactly two seats).
func Opponent(playerIndex int) int {
	return 1 - playerIndex
}

// ResolvePlayer turns a PlayerContext into a concrete index relative to
// sourcePlayer.
func ResolvePlayer(sourcePlayer int, ctx model.PlayerContext) int {
	if ctx == model.ContextOpponent {
		return Opponent(sourcePlayer)
	}
	return sourcePlayer
}

// NextPassiveID returns a fresh monotonically increasing passive-effect id.
func (gs *GameState) NextPassiveID() int64 {
	gs.nextPassiveID++
	return gs.nextPassiveID
}

// RegisterPassive appends a new entry to the registry (registration order is
// the enumeration order the matcher relies on).
func (gs *GameState) RegisterPassive(sourcePlayer int, displayName string, effect model.Effect, duration model.Duration) model.PassiveEffect {
	entry := model.PassiveEffect{
		ID:           gs.NextPassiveID(),
		SourcePlayer: sourcePlayer,
		DisplayName:  displayName,
		Effect:       effect,
		Duration:     duration,
		CreatedTurn:  gs.TurnNumber,
	}
	gs.Passives = append(gs.Passives, entry)
	return entry
}

// RemovePassivesWhere deletes every passive for which drop returns true,
// preserving registration order of the survivors.
func (gs *GameState) RemovePassivesWhere(drop func(model.PassiveEffect) bool) {
	kept := gs.Passives[:0]
	for _, p := range gs.Passives {
		if !drop(p) {
			kept = append(kept, p)
		}
	}
	gs.Passives = kept
}

// FieldInstanceAt returns the field-instance id at the given concrete
// position, or "" if the position is empty.
func (gs *GameState) FieldInstanceAt(f model.ConcreteField) string {
	p := &gs.Players[f.PlayerIndex]
	if f.FieldIndex < 0 || f.FieldIndex >= len(p.Field) {
		return ""
	}
	return p.Field[f.FieldIndex].FieldInstanceID()
}

// StackAt returns a pointer to the stack at the given position, or nil.
func (gs *GameState) StackAt(f model.ConcreteField) *model.CreatureStack {
	p := &gs.Players[f.PlayerIndex]
	if f.FieldIndex < 0 || f.FieldIndex >= len(p.Field) {
		return nil
	}
	return &p.Field[f.FieldIndex]
}
