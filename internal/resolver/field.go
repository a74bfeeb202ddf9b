// Package resolver implements the three coordinated target resolvers of
// specification §4.4: FieldTarget, EnergyTarget, and CardTarget. None of them
// mutate state; each returns one of resolved / auto-resolved /
// requires-selection / no-valid-targets.
package resolver

import (
	"pockettcg/internal/evaluator"
	"pockettcg/internal/model"
	"pockettcg/internal/repository"
	"pockettcg/internal/state"

	engerrors "pockettcg/internal/errors"
)

// Field resolves a FieldTarget. Whether a singleton candidate set still
// forces an explicit selection (specification §4.4's bench-damage rule) is
// entirely data-driven, via target.ForceExplicitSelection — card data for
// bench-damage effects sets it on the target itself.
func Field(gs *state.GameState, repo repository.CardRepository, target model.FieldTarget, ctx model.EffectContext) (model.FieldResolution, error) {
	switch target.Kind {
	case model.FieldResolved:
		return model.FieldResolution{Kind: model.ResolutionResolved, Targets: target.Targets}, nil

	case model.FieldFixed:
		player := state.ResolvePlayer(ctx.SourcePlayer, target.Player)
		switch target.Position {
		case model.PositionActive:
			if gs.Players[player].Active() == nil {
				return model.FieldResolution{Kind: model.ResolutionNoValidTargets}, nil
			}
			return model.FieldResolution{Kind: model.ResolutionResolved, Targets: []model.ConcreteField{{PlayerIndex: player, FieldIndex: 0}}}, nil
		case model.PositionBench:
			var targets []model.ConcreteField
			for i := 1; i < len(gs.Players[player].Field); i++ {
				targets = append(targets, model.ConcreteField{PlayerIndex: player, FieldIndex: i})
			}
			if len(targets) == 0 {
				return model.FieldResolution{Kind: model.ResolutionNoValidTargets}, nil
			}
			return model.FieldResolution{Kind: model.ResolutionResolved, Targets: targets}, nil
		case model.PositionSource:
			if ctx.Source == nil {
				return model.FieldResolution{}, &engerrors.ValidationError{Reason: "source position requested with no source in context"}
			}
			return model.FieldResolution{Kind: model.ResolutionResolved, Targets: []model.ConcreteField{*ctx.Source}}, nil
		default:
			return model.FieldResolution{Kind: model.ResolutionNoValidTargets}, nil
		}

	case model.FieldSingleChoice:
		candidates := candidatesFor(gs, repo, target, ctx)
		if len(candidates) == 0 {
			return model.FieldResolution{Kind: model.ResolutionNoValidTargets}, nil
		}
		if len(candidates) == 1 && !target.ForceExplicitSelection {
			return model.FieldResolution{Kind: model.ResolutionAutoResolved, Targets: candidates}, nil
		}
		return model.FieldResolution{Kind: model.ResolutionRequiresSelect, Candidates: candidates}, nil

	case model.FieldMultiChoice:
		candidates := candidatesFor(gs, repo, target, ctx)
		if len(candidates) == 0 {
			return model.FieldResolution{Kind: model.ResolutionNoValidTargets}, nil
		}
		return model.FieldResolution{Kind: model.ResolutionRequiresSelect, Candidates: candidates}, nil

	case model.FieldAllMatching:
		candidates := candidatesFor(gs, repo, target, ctx)
		if len(candidates) == 0 {
			return model.FieldResolution{Kind: model.ResolutionNoValidTargets}, nil
		}
		return model.FieldResolution{Kind: model.ResolutionResolved, Targets: candidates}, nil

	default:
		return model.FieldResolution{Kind: model.ResolutionNoValidTargets}, nil
	}
}

func candidatesFor(gs *state.GameState, repo repository.CardRepository, target model.FieldTarget, ctx model.EffectContext) []model.ConcreteField {
	player := state.ResolvePlayer(ctx.SourcePlayer, target.Player)
	var out []model.ConcreteField
	for i := range gs.Players[player].Field {
		candidate := model.ConcreteField{PlayerIndex: player, FieldIndex: i}
		if evaluator.MatchesCriteria(gs, repo, target.Criteria, candidate, ctx) {
			out = append(out, candidate)
		}
	}
	return out
}
