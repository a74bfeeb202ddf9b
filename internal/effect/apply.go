package effect

import (
	engerrors "pockettcg/internal/errors"
	"pockettcg/internal/model"
	"pockettcg/internal/repository"
	"pockettcg/internal/resolver"
	"pockettcg/internal/state"
)

// Apply drives one effect through resolution and application (specification
// §4.7). If a required target needs player input it suspends into
// gs.PendingSelection and returns nil with no mutation beyond that; the
// caller (the turn-phase state machine) must stop draining the pending
// queue until the selection is answered via Resume.
func Apply(gs *state.GameState, repo repository.CardRepository, e model.Effect, ctx model.EffectContext) error {
	if gs.PendingSelection != nil {
		return &engerrors.StateInvariantViolationError{Invariant: "Apply called while a selection is already pending"}
	}
	return resolveAndApply(gs, repo, e, ctx, requirementsFor(e))
}

// resolveAndApply resolves remaining[0] (and so on) in order, splicing
// resolved targets into e as it goes, and applies e once every requirement
// clears. Dropping the effect because a required target has no candidates
// is not an error: it is a normal "fizzle" per specification §4.6.
func resolveAndApply(gs *state.GameState, repo repository.CardRepository, e model.Effect, ctx model.EffectContext, remaining []model.Requirement) error {
	for i, req := range remaining {
		resolved, suspend, fizzle, err := resolveOne(gs, repo, e, ctx, req)
		if err != nil {
			return err
		}
		if fizzle {
			return nil
		}
		if suspend != nil {
			gs.PendingSelection = suspend
			gs.PendingSelection.Effect = e
			gs.PendingSelection.Context = ctx
			gs.PendingSelection.Remaining = remaining[i:]
			return nil
		}
		e = resolved
	}
	return dispatch(gs, repo, e, ctx)
}

// resolveOne resolves a single requirement. It returns exactly one of:
// an updated effect (resolved/auto-resolved or a fizzled-but-optional
// target), a PendingSelection to suspend into, or fizzle=true meaning the
// whole effect is dropped.
func resolveOne(gs *state.GameState, repo repository.CardRepository, e model.Effect, ctx model.EffectContext, req model.Requirement) (model.Effect, *state.PendingSelection, bool, error) {
	switch req.Property {
	case model.PropertyTarget:
		res, err := resolver.Field(gs, repo, e.Target, ctx)
		if err != nil {
			return e, nil, false, err
		}
		switch res.Kind {
		case model.ResolutionResolved, model.ResolutionAutoResolved:
			e.ResolvedTarget = res.Targets
			return e, nil, false, nil
		case model.ResolutionNoValidTargets:
			return e, nil, req.Required, nil
		default:
			return e, &state.PendingSelection{
				Kind:            state.PendingField,
				Property:        req.Property,
				Chooser:         state.ResolvePlayer(ctx.SourcePlayer, e.Target.Chooser),
				FieldCandidates: res.Candidates,
			}, false, nil
		}

	case model.PropertyCardTarget:
		res, err := resolver.Card(gs, e.CardTarget, ctx)
		if err != nil {
			return e, nil, false, err
		}
		switch res.Kind {
		case model.ResolutionResolved, model.ResolutionAutoResolved:
			e.ResolvedCardTarget = res.Targets
			return e, nil, false, nil
		case model.ResolutionNoValidTargets:
			return e, nil, req.Required, nil
		default:
			return e, &state.PendingSelection{
				Kind:           state.PendingCard,
				Property:       req.Property,
				Chooser:        state.ResolvePlayer(ctx.SourcePlayer, e.CardTarget.Chooser),
				CardCandidates: res.Candidates,
			}, false, nil
		}

	case model.PropertyEnergySource:
		res, err := resolver.Energy(gs, repo, e.EnergySource, ctx)
		if err != nil {
			return e, nil, false, err
		}
		switch res.Kind {
		case model.ResolutionResolved, model.ResolutionAutoResolved:
			e.ResolvedEnergySource = res.Targets
			return e, nil, false, nil
		case model.ResolutionNoValidTargets:
			return e, nil, req.Required, nil
		default:
			return e, &state.PendingSelection{
				Kind:             state.PendingEnergy,
				Property:         req.Property,
				Chooser:          state.ResolvePlayer(ctx.SourcePlayer, e.EnergySource.Field.Chooser),
				EnergyCandidates: res.Candidates,
				EnergyCriteria:   e.EnergySource.EnergyTypes,
				EnergyCount:      e.EnergySource.Count,
			}, false, nil
		}

	case model.PropertyEnergyDest:
		res, err := resolver.Field(gs, repo, e.EnergyDest, ctx)
		if err != nil {
			return e, nil, false, err
		}
		switch res.Kind {
		case model.ResolutionResolved, model.ResolutionAutoResolved:
			e.ResolvedEnergyDest = res.Targets
			return e, nil, false, nil
		case model.ResolutionNoValidTargets:
			return e, nil, req.Required, nil
		default:
			return e, &state.PendingSelection{
				Kind:            state.PendingField,
				Property:        req.Property,
				Chooser:         state.ResolvePlayer(ctx.SourcePlayer, e.EnergyDest.Chooser),
				FieldCandidates: res.Candidates,
			}, false, nil
		}

	default:
		return e, nil, false, &engerrors.StateInvariantViolationError{Invariant: "unknown required property"}
	}
}
