package passive

import (
	"pockettcg/internal/model"
	"pockettcg/internal/state"
)

// ExpireEndOfTurn removes every until-end-of-turn passive created this turn
// and every until-end-of-next-turn passive created last turn, per
// specification §4.9 "expire until-end-of-turn passives" and the duration
// semantics of §3.
func ExpireEndOfTurn(gs *state.GameState, turnNumber int) {
	gs.RemovePassivesWhere(func(p model.PassiveEffect) bool {
		switch p.Duration.Kind {
		case model.DurationUntilEndOfTurn:
			return p.CreatedTurn == turnNumber
		case model.DurationUntilEndOfNextTurn:
			return p.CreatedTurn == turnNumber-1
		default:
			return false
		}
	})
}

// RemoveForInstance enforces "a passive effect whose duration names an
// instance id is removed the instant that id leaves the field"
// (specification §3 invariants): call this whenever instanceID stops being a
// field-instance id (knockout, or the rare case of a full stack returning to
// hand/deck).
func RemoveForInstance(gs *state.GameState, instanceID string) {
	gs.RemovePassivesWhere(func(p model.PassiveEffect) bool {
		return p.Duration.Kind == model.DurationWhileInPlay && p.Duration.InstanceID == instanceID
	})
}

// RemoveForDetachedTool enforces the while-attached half of the same
// invariant: call whenever a tool is detached from a card.
func RemoveForDetachedTool(gs *state.GameState, toolInstanceID, cardInstanceID string) {
	gs.RemovePassivesWhere(func(p model.PassiveEffect) bool {
		return p.Duration.Kind == model.DurationWhileAttached &&
			p.Duration.ToolInstanceID == toolInstanceID &&
			p.Duration.CardInstanceID == cardInstanceID
	})
}
