// Package turn implements the turn-phase state machine of specification
// §4.9: setup, energy generation, the action loop, attack resolution,
// knockout handling, checkup, and game-over detection.
package turn

import (
	"pockettcg/internal/effect"
	"pockettcg/internal/model"
	"pockettcg/internal/passive"
	"pockettcg/internal/repository"
	"pockettcg/internal/state"
	"pockettcg/internal/trigger"
)

// Begin transitions a freshly-constructed GameState out of setup and starts
// turn 1 for player 0.
func Begin(gs *state.GameState) {
	gs.Phase = state.PhaseStartOfGame
	gs.TurnNumber = 1
	gs.ActivePlayerIndex = 0
	gs.AbsoluteFirstTurn = true
	gs.Phase = state.PhaseGenerateEnergyAndDraw
}

// GenerateEnergyAndDraw samples this turn's energy type, dispatches
// start-of-turn, clears paralysis that has now lasted a full turn, drains
// the pending-effect queue, and moves to the action loop. Specification
// §8: the absolute first turn generates no energy (nothing has been placed
// to attach to yet is irrelevant here — the rule is a flat skip).
func GenerateEnergyAndDraw(gs *state.GameState, repo repository.CardRepository) error {
	player := gs.ActivePlayerIndex
	p := &gs.Players[player]

	clearExpiredParalysis(gs, player)

	if !gs.AbsoluteFirstTurn && len(p.AvailableTypes) > 0 {
		idx := 0
		if len(p.AvailableTypes) > 1 && gs.RNG.CoinFlip() {
			idx = 1 % len(p.AvailableTypes)
		}
		t := p.AvailableTypes[idx]
		p.CurrentEnergy = &t
	}

	if !gs.AbsoluteFirstTurn {
		if len(p.Deck) == 0 {
			gs.GameOver = &state.GameOverResult{Winner: state.Opponent(player)}
			gs.Phase = state.PhaseGameOver
			return nil
		}
		if len(p.Hand) < gs.Params.MaxHandSize {
			p.Hand = append(p.Hand, p.Deck[0])
			p.Deck = p.Deck[1:]
		}
	}

	if err := trigger.Dispatch(gs, repo, model.TriggerStartOfTurn, player, nil, ""); err != nil {
		return err
	}
	if err := DrainPending(gs, repo); err != nil {
		return err
	}
	if gs.PendingSelection != nil {
		gs.PendingContinuation = ContinuationStartTurn
		return nil
	}

	gs.Phase = state.PhaseActionLoop
	return nil
}

// Continuation names a turn-phase transition left to complete once the
// pending-effect queue finishes draining (see Continue).
const (
	ContinuationStartTurn = "start-turn"
	ContinuationEndTurn   = "end-turn"
)

// EndTurn dispatches end-of-turn, drains the queue, expires
// until-end-of-turn passives, resets turn-local scratch, and hands the turn
// to the opponent. If an end-of-turn ability suspends on a player
// selection, the handover is stashed as a continuation and completed by
// Continue once the host answers it.
func EndTurn(gs *state.GameState, repo repository.CardRepository) error {
	player := gs.ActivePlayerIndex
	if err := trigger.Dispatch(gs, repo, model.TriggerEndOfTurn, player, nil, ""); err != nil {
		return err
	}
	if err := DrainPending(gs, repo); err != nil {
		return err
	}
	if gs.PendingSelection != nil {
		gs.PendingContinuation = ContinuationEndTurn
		gs.ContinuationPlayer = player
		return nil
	}
	return finishEndTurn(gs, player)
}

func finishEndTurn(gs *state.GameState, player int) error {
	passive.ExpireEndOfTurn(gs, gs.TurnNumber)

	gs.Scratch = state.Scratch{EvolvedInstancesThisTurn: map[string]bool{}}
	gs.ActivePlayerIndex = state.Opponent(player)
	gs.TurnNumber++
	gs.AbsoluteFirstTurn = false
	gs.Phase = state.PhaseCheckup
	return nil
}

// Continue completes whatever turn-phase continuation was stashed by
// GenerateEnergyAndDraw/EndTurn, once the pending-effect queue has fully
// drained (no selection in flight, no queued effects left). Safe to call
// unconditionally after answering any pending selection; it is a no-op
// when there is nothing to continue.
func Continue(gs *state.GameState, repo repository.CardRepository) error {
	if gs.PendingSelection != nil || len(gs.PendingEffects) > 0 {
		return nil
	}
	switch gs.PendingContinuation {
	case ContinuationStartTurn:
		gs.PendingContinuation = ""
		gs.Phase = state.PhaseActionLoop
		return nil
	case ContinuationEndTurn:
		player := gs.ContinuationPlayer
		gs.PendingContinuation = ""
		return finishEndTurn(gs, player)
	default:
		return nil
	}
}

// Checkup dispatches on-checkup, ticks poison/burn damage, resolves
// sleep/confusion coin flips, processes any knockouts the ticks caused, and
// either ends the game or returns to energy generation for the new active
// player.
func Checkup(gs *state.GameState, repo repository.CardRepository) error {
	if err := trigger.Dispatch(gs, repo, model.TriggerOnCheckup, gs.ActivePlayerIndex, nil, ""); err != nil {
		return err
	}
	if err := DrainPending(gs, repo); err != nil {
		return err
	}

	tickStatuses(gs)

	if err := CheckKnockouts(gs, repo); err != nil {
		return err
	}
	if gs.Phase == state.PhaseGameOver || gs.Phase == state.PhaseSelectNewActive {
		return nil
	}

	if CheckGameOver(gs) {
		return nil
	}

	gs.Phase = state.PhaseGenerateEnergyAndDraw
	return nil
}

// DrainPending applies queued effects in FIFO order until the queue empties
// or an effect suspends into a pending selection (specification §5: the
// state machine halts draining whenever PendingSelection becomes non-nil
// and resumes only once the host answers it).
func DrainPending(gs *state.GameState, repo repository.CardRepository) error {
	for len(gs.PendingEffects) > 0 {
		if gs.PendingSelection != nil {
			return nil
		}
		next := gs.PendingEffects[0]
		gs.PendingEffects = gs.PendingEffects[1:]
		if err := effect.Apply(gs, repo, next.Effect, next.Context); err != nil {
			return err
		}
	}
	return nil
}

func clearExpiredParalysis(gs *state.GameState, player int) {
	for _, stack := range gs.Players[player].Field {
		id := stack.FieldInstanceID()
		entries := gs.Status[id]
		kept := entries[:0]
		for _, s := range entries {
			if s.Kind == model.StatusParalysis && s.AppliedTurn < gs.TurnNumber {
				continue
			}
			kept = append(kept, s)
		}
		gs.Status[id] = kept
	}
}
