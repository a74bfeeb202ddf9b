package effect

import (
	engerrors "pockettcg/internal/errors"
	"pockettcg/internal/model"
	"pockettcg/internal/repository"
	"pockettcg/internal/resolver"
	"pockettcg/internal/state"
)

// ResumeField answers a PendingField selection with the player's chosen
// field positions and continues the effect's resolution chain
// (specification §4.7 step 5, "resume"). selected must be non-empty and
// every entry must be one of gs.PendingSelection.FieldCandidates; its size
// is not checked against the originating target's Count.
func ResumeField(gs *state.GameState, repo repository.CardRepository, selected []model.ConcreteField) error {
	ps := gs.PendingSelection
	if ps == nil || ps.Kind != state.PendingField {
		return &engerrors.StateInvariantViolationError{Invariant: "field selection response with no matching pending slot"}
	}
	if err := validateFieldChoice(ps.FieldCandidates, selected); err != nil {
		return err
	}

	e := ps.Effect
	switch ps.Property {
	case model.PropertyTarget:
		e.ResolvedTarget = selected
	case model.PropertyEnergyDest:
		e.ResolvedEnergyDest = selected
	default:
		return &engerrors.StateInvariantViolationError{Invariant: "field selection response for non-field property"}
	}

	gs.Clear()
	return resolveAndApply(gs, repo, e, ps.Context, ps.Remaining[1:])
}

// ResumeEnergy answers a PendingEnergy selection with the player's chosen
// field position; the energy-unit fill itself is deterministic and
// performed here, not by the player.
func ResumeEnergy(gs *state.GameState, repo repository.CardRepository, chosen model.ConcreteField) error {
	ps := gs.PendingSelection
	if ps == nil || ps.Kind != state.PendingEnergy {
		return &engerrors.StateInvariantViolationError{Invariant: "energy selection response with no matching pending slot"}
	}
	if !containsField(ps.EnergyCandidates, chosen) {
		return &engerrors.PendingSelectionMismatchError{Reason: "chosen field is not among the offered candidates"}
	}

	e := ps.Effect
	e.ResolvedEnergySource = []model.ConcreteEnergy{resolver.FillEnergy(gs, chosen, ps.EnergyCriteria, ps.EnergyCount)}

	gs.Clear()
	return resolveAndApply(gs, repo, e, ps.Context, ps.Remaining[1:])
}

// ResumeCard answers a PendingCard selection with the player's chosen cards.
func ResumeCard(gs *state.GameState, repo repository.CardRepository, selected []model.ConcreteCard) error {
	ps := gs.PendingSelection
	if ps == nil || ps.Kind != state.PendingCard {
		return &engerrors.StateInvariantViolationError{Invariant: "card selection response with no matching pending slot"}
	}
	if err := validateCardChoice(ps.CardCandidates, selected); err != nil {
		return err
	}

	e := ps.Effect
	e.ResolvedCardTarget = selected

	gs.Clear()
	return resolveAndApply(gs, repo, e, ps.Context, ps.Remaining[1:])
}

func validateFieldChoice(candidates, selected []model.ConcreteField) error {
	if len(selected) == 0 {
		return &engerrors.PendingSelectionMismatchError{Reason: "empty selection"}
	}
	for _, s := range selected {
		if !containsField(candidates, s) {
			return &engerrors.PendingSelectionMismatchError{Reason: "selected field is not among the offered candidates"}
		}
	}
	return nil
}

func validateCardChoice(candidates, selected []model.ConcreteCard) error {
	if len(selected) == 0 {
		return &engerrors.PendingSelectionMismatchError{Reason: "empty selection"}
	}
	for _, s := range selected {
		found := false
		for _, c := range candidates {
			if c == s {
				found = true
				break
			}
		}
		if !found {
			return &engerrors.PendingSelectionMismatchError{Reason: "selected card is not among the offered candidates"}
		}
	}
	return nil
}

func containsField(candidates []model.ConcreteField, f model.ConcreteField) bool {
	for _, c := range candidates {
		if c == f {
			return true
		}
	}
	return false
}
