package state

import "pockettcg/internal/model"

// PendingSelectionKind names which family of candidates a pending slot
// offers.
type PendingSelectionKind string

const (
	PendingField  PendingSelectionKind = "field"
	PendingEnergy PendingSelectionKind = "energy"
	PendingCard   PendingSelectionKind = "card"
)

// PendingSelection is the single-slot record of specification §3: "the core
// is waiting for a player to pick a target." Exactly one may be in flight;
// the applier refuses to start a new selection-inducing effect while this is
// set.
//
// @name PendingSelection
type PendingSelection struct {
	Kind     PendingSelectionKind
	Property model.RequiredProperty
	Chooser  int // resolved player index, not a PlayerContext

	// Effect and Context are the in-flight effect and its context,
	// functionally updated as earlier required properties resolve — never
	// the original, unresolved effect from the card's effect list.
	Effect  model.Effect
	Context model.EffectContext

	// Remaining holds the requirements not yet resolved, in declaration
	// order; Remaining[0] is the property this slot is currently waiting
	// on.
	Remaining []model.Requirement

	FieldCandidates  []model.ConcreteField
	EnergyCandidates []model.ConcreteField
	CardCandidates   []model.ConcreteCard

	// EnergyCriteria/EnergyCount carry the filter needed to validate and
	// apply an energy selection once a field position is chosen.
	EnergyCriteria []model.EnergyType
	EnergyCount    int
}

// Clear removes the pending slot, as if the in-flight effect had no valid
// targets (specification §5: cancellation discards the in-flight effect).
func (gs *GameState) Clear() {
	gs.PendingSelection = nil
}
