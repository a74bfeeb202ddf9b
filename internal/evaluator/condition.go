// Package evaluator holds the two pure functions specification §4.2/§4.3
// describe: the value evaluator (declarative EffectValue trees -> integers)
// and the condition evaluator (declarative Condition -> bool). Neither
// mutates state; both are driven by resolver and passive alongside the
// effect handlers.
package evaluator

import (
	"pockettcg/internal/model"
	"pockettcg/internal/repository"
	"pockettcg/internal/state"
)

// CreatureDataAt returns the repository data for the current (topmost) form
// at a concrete field position.
func CreatureDataAt(gs *state.GameState, repo repository.CardRepository, f model.ConcreteField) (model.CreatureData, error) {
	stack := gs.StackAt(f)
	if stack == nil || len(stack.Forms) == 0 {
		return model.CreatureData{}, &repoNotFound{f}
	}
	return repo.GetCreature(stack.Top().TemplateID)
}

type repoNotFound struct{ f model.ConcreteField }

func (e *repoNotFound) Error() string { return "no creature at field position" }

// Condition evaluates a Condition against a concrete candidate field
// position. Unknown kinds evaluate false, per specification §4.3. Never
// mutates gs.
func Condition(gs *state.GameState, repo repository.CardRepository, cond model.Condition, candidate model.ConcreteField, ctx model.EffectContext) bool {
	switch cond.Kind {
	case model.ConditionHasEnergy:
		fieldID := gs.FieldInstanceAt(candidate)
		if fieldID == "" {
			return false
		}
		hist := gs.Energy[fieldID]
		for t, min := range cond.EnergyMinimums {
			if hist[t] < min {
				return false
			}
		}
		return true
	case model.ConditionHasDamage:
		fieldID := gs.FieldInstanceAt(candidate)
		if fieldID == "" {
			return false
		}
		d := gs.Damage[fieldID]
		return d > 0 && d >= cond.MinDamage
	case model.ConditionTargetType:
		data, err := CreatureDataAt(gs, repo, candidate)
		if err != nil {
			return false
		}
		return string(data.CreatureType) == cond.CreatureType
	case model.ConditionPosition:
		return matchesPosition(candidate, cond.Position, ctx)
	default:
		return false
	}
}

// matchesPosition reports whether candidate satisfies a position gate.
// PositionSource compares against the effect context's source position
// rather than active/bench.
func matchesPosition(candidate model.ConcreteField, want model.FieldPosition, ctx model.EffectContext) bool {
	switch want {
	case "":
		return true
	case model.PositionActive:
		return candidate.FieldIndex == 0
	case model.PositionBench:
		return candidate.FieldIndex != 0
	case model.PositionSource:
		return ctx.Source != nil && *ctx.Source == candidate
	default:
		return false
	}
}

// MatchesCriteria reports whether candidate satisfies FieldCriteria. Empty
// criteria matches any candidate, per specification §4.4.
func MatchesCriteria(gs *state.GameState, repo repository.CardRepository, criteria *model.FieldCriteria, candidate model.ConcreteField, ctx model.EffectContext) bool {
	if criteria == nil {
		return true
	}
	if criteria.Position != "" && !matchesPosition(candidate, criteria.Position, ctx) {
		return false
	}
	if criteria.CreatureType != "" {
		data, err := CreatureDataAt(gs, repo, candidate)
		if err != nil || string(data.CreatureType) != criteria.CreatureType {
			return false
		}
	}
	if criteria.Condition != nil && !Condition(gs, repo, *criteria.Condition, candidate, ctx) {
		return false
	}
	return true
}
