package resolver

import (
	"pockettcg/internal/model"
	"pockettcg/internal/state"
)

// Card resolves a CardTarget over a zone (hand/deck/discard/field) per
// specification §4.4. fixed returns every card at the zone; single-choice
// over exactly one candidate auto-resolves; otherwise a selection is
// required.
func Card(gs *state.GameState, target model.CardTarget, ctx model.EffectContext) (model.CardResolution, error) {
	player := state.ResolvePlayer(ctx.SourcePlayer, target.Player)
	candidates := cardCandidates(gs, player, target.Zone)

	switch target.Kind {
	case model.FieldResolved:
		return model.CardResolution{Kind: model.ResolutionResolved, Targets: target.Targets}, nil

	case model.FieldFixed, model.FieldAllMatching:
		if len(candidates) == 0 {
			return model.CardResolution{Kind: model.ResolutionNoValidTargets}, nil
		}
		return model.CardResolution{Kind: model.ResolutionResolved, Targets: candidates}, nil

	case model.FieldSingleChoice:
		if len(candidates) == 0 {
			return model.CardResolution{Kind: model.ResolutionNoValidTargets}, nil
		}
		if len(candidates) == 1 {
			return model.CardResolution{Kind: model.ResolutionAutoResolved, Targets: candidates}, nil
		}
		return model.CardResolution{Kind: model.ResolutionRequiresSelect, Candidates: candidates}, nil

	case model.FieldMultiChoice:
		if len(candidates) == 0 {
			return model.CardResolution{Kind: model.ResolutionNoValidTargets}, nil
		}
		return model.CardResolution{Kind: model.ResolutionRequiresSelect, Candidates: candidates}, nil

	default:
		return model.CardResolution{Kind: model.ResolutionNoValidTargets}, nil
	}
}

func cardCandidates(gs *state.GameState, player int, zone model.CardZone) []model.ConcreteCard {
	p := &gs.Players[player]
	var src []model.CardInstance
	switch zone {
	case model.ZoneHand:
		src = p.Hand
	case model.ZoneDeck:
		src = p.Deck
	case model.ZoneDiscard:
		src = p.Discard
	default:
		return nil
	}
	out := make([]model.ConcreteCard, 0, len(src))
	for _, c := range src {
		out = append(out, model.ConcreteCard{PlayerIndex: player, InstanceID: c.InstanceID})
	}
	return out
}
