package resolver

import (
	"pockettcg/internal/model"
	"pockettcg/internal/repository"
	"pockettcg/internal/state"
)

// Energy resolves an EnergyTarget: resolve the inner FieldTarget, then
// filter by attached energy matching EnergyTypes, then greedily select
// Count energy units (one of each available type first, then fill), per
// specification §4.4.
func Energy(gs *state.GameState, repo repository.CardRepository, target model.EnergyTarget, ctx model.EffectContext) (model.EnergyResolution, error) {
	fieldRes, err := Field(gs, repo, target.Field, ctx)
	if err != nil {
		return model.EnergyResolution{}, err
	}

	switch fieldRes.Kind {
	case model.ResolutionNoValidTargets:
		return model.EnergyResolution{Kind: model.ResolutionNoValidTargets}, nil

	case model.ResolutionRequiresSelect:
		filtered := filterHasEnergy(gs, fieldRes.Candidates, target)
		if len(filtered) == 0 {
			return model.EnergyResolution{Kind: model.ResolutionNoValidTargets}, nil
		}
		if len(filtered) == 1 {
			return model.EnergyResolution{Kind: model.ResolutionAutoResolved, Targets: []model.ConcreteEnergy{selectGreedy(gs, filtered[0], target)}}, nil
		}
		return model.EnergyResolution{Kind: model.ResolutionRequiresSelect, Candidates: filtered}, nil

	case model.ResolutionResolved, model.ResolutionAutoResolved:
		filtered := filterHasEnergy(gs, fieldRes.Targets, target)
		if len(filtered) == 0 {
			return model.EnergyResolution{Kind: model.ResolutionNoValidTargets}, nil
		}
		if len(filtered) == 1 {
			kind := model.ResolutionAutoResolved
			if fieldRes.Kind == model.ResolutionResolved && len(fieldRes.Targets) == 1 {
				kind = model.ResolutionResolved
			}
			return model.EnergyResolution{Kind: kind, Targets: []model.ConcreteEnergy{selectGreedy(gs, filtered[0], target)}}, nil
		}
		if len(fieldRes.Targets) > 1 {
			// came from all-matching: broadcast, resolve every candidate eagerly.
			var out []model.ConcreteEnergy
			for _, f := range filtered {
				out = append(out, selectGreedy(gs, f, target))
			}
			return model.EnergyResolution{Kind: model.ResolutionResolved, Targets: out}, nil
		}
		return model.EnergyResolution{Kind: model.ResolutionRequiresSelect, Candidates: filtered}, nil

	default:
		return model.EnergyResolution{Kind: model.ResolutionNoValidTargets}, nil
	}
}

// FillEnergy computes the greedy energy selection at a single,
// already-chosen field position. Used by the applier to complete an
// EnergyTarget resolution once a human has picked which field position to
// draw energy from.
func FillEnergy(gs *state.GameState, field model.ConcreteField, types []model.EnergyType, count int) model.ConcreteEnergy {
	return selectGreedy(gs, field, model.EnergyTarget{EnergyTypes: types, Count: count})
}

func filterHasEnergy(gs *state.GameState, candidates []model.ConcreteField, target model.EnergyTarget) []model.ConcreteField {
	var out []model.ConcreteField
	for _, c := range candidates {
		hist := gs.Energy[gs.FieldInstanceAt(c)]
		if matchingTotal(hist, target.EnergyTypes) > 0 {
			out = append(out, c)
		}
	}
	return out
}

func matchingTotal(hist model.EnergyHistogram, types []model.EnergyType) int {
	if len(types) == 0 {
		return hist.Total()
	}
	total := 0
	for _, t := range types {
		total += hist[t]
	}
	return total
}

// selectGreedy builds the concrete energy selection for one field position:
// one unit of each matching type first, then fill remaining slots from
// whatever types have units left, until Count is reached or energy runs out.
func selectGreedy(gs *state.GameState, field model.ConcreteField, target model.EnergyTarget) model.ConcreteEnergy {
	hist := gs.Energy[gs.FieldInstanceAt(field)]
	types := target.EnergyTypes
	if len(types) == 0 {
		types = model.AllEnergyTypes
	}

	remaining := make(model.EnergyHistogram, len(types))
	for _, t := range types {
		remaining[t] = hist[t]
	}

	selected := model.EnergyHistogram{}
	need := target.Count

	for _, t := range types {
		if need <= 0 {
			break
		}
		if remaining[t] > 0 {
			selected[t]++
			remaining[t]--
			need--
		}
	}
	for need > 0 {
		progressed := false
		for _, t := range types {
			if need <= 0 {
				break
			}
			if remaining[t] > 0 {
				selected[t]++
				remaining[t]--
				need--
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}

	return model.ConcreteEnergy{Field: field, Histogram: selected}
}
