// Package passive is the passive-effect matcher of specification §4.5: pure
// queries over the registry for a given situation (damage, retreat, attack,
// energy attach). Every predicate here is pure over the (state, registry)
// pair — never mutates gs.
package passive

import (
	"pockettcg/internal/evaluator"
	"pockettcg/internal/model"
	"pockettcg/internal/repository"
	"pockettcg/internal/state"
)

// fieldMatchesEffectTarget resolves a registered passive's Effect.Target
// (almost always a `resolved` FieldTarget pinned to one concrete position at
// registration time, or criteria-based) against candidate.
func fieldMatchesEffectTarget(gs *state.GameState, repo repository.CardRepository, p model.PassiveEffect, candidate model.ConcreteField) bool {
	t := p.Effect.Target
	switch t.Kind {
	case model.FieldResolved:
		for _, rt := range t.Targets {
			if rt == candidate {
				return true
			}
		}
		return false
	case model.FieldFixed, model.FieldAllMatching, model.FieldSingleChoice, model.FieldMultiChoice:
		ctx := model.EffectContext{SourcePlayer: p.SourcePlayer}
		return evaluator.MatchesCriteria(gs, repo, t.Criteria, candidate, ctx)
	default:
		return false
	}
}

// IsRetreatPrevented reports whether any retreat-prevention passive targets
// the given field position.
func IsRetreatPrevented(gs *state.GameState, repo repository.CardRepository, candidate model.ConcreteField) bool {
	for _, p := range gs.Passives {
		if p.Effect.Type != model.EffectRetreatPrevention {
			continue
		}
		if fieldMatchesEffectTarget(gs, repo, p, candidate) {
			return true
		}
	}
	return false
}

// EffectiveRetreatCost adjusts base by every matching retreat-cost-
// modification passive, clamped at 0.
func EffectiveRetreatCost(gs *state.GameState, repo repository.CardRepository, candidate model.ConcreteField, base int) int {
	cost := base
	for _, p := range gs.Passives {
		if p.Effect.Type != model.EffectRetreatCostModification {
			continue
		}
		if fieldMatchesEffectTarget(gs, repo, p, candidate) {
			cost += p.Effect.RetreatDelta
		}
	}
	if cost < 0 {
		return 0
	}
	return cost
}

// IsDamagePreventedFrom reports whether any prevent-damage passive shields
// the defender from an attack originating at attacker.
func IsDamagePreventedFrom(gs *state.GameState, repo repository.CardRepository, defender, attacker model.ConcreteField) bool {
	for _, p := range gs.Passives {
		if p.Effect.Type != model.EffectPreventDamage {
			continue
		}
		if !fieldMatchesEffectTarget(gs, repo, p, defender) {
			continue
		}
		ctx := model.EffectContext{SourcePlayer: p.SourcePlayer}
		if evaluator.MatchesCriteria(gs, repo, p.Effect.DamageSource, attacker, ctx) {
			return true
		}
	}
	return false
}

// IsEnergyAttachmentPrevented reports whether any prevent-energy-attachment
// passive targets player.
func IsEnergyAttachmentPrevented(gs *state.GameState, player int) bool {
	for _, p := range gs.Passives {
		if p.Effect.Type != model.EffectPreventEnergyAttachment {
			continue
		}
		if roleResolvesTo(p.SourcePlayer, p.Effect.PreventTarget, player) {
			return true
		}
	}
	return false
}

// IsAttackPrevented reports whether any prevent-attack passive targets the
// given field position.
func IsAttackPrevented(gs *state.GameState, repo repository.CardRepository, candidate model.ConcreteField) bool {
	for _, p := range gs.Passives {
		if p.Effect.Type != model.EffectPreventAttack {
			continue
		}
		if fieldMatchesEffectTarget(gs, repo, p, candidate) {
			return true
		}
	}
	return false
}

// AttackEnergyCostModifier sums every matching attack-energy-cost-modifier
// passive's amount; the floor is applied by the caller (minimum cost 0).
func AttackEnergyCostModifier(gs *state.GameState, repo repository.CardRepository, candidate model.ConcreteField) int {
	total := 0
	for _, p := range gs.Passives {
		if p.Effect.Type != model.EffectAttackEnergyCostModifier {
			continue
		}
		if fieldMatchesEffectTarget(gs, repo, p, candidate) {
			total += p.Effect.Modifier
		}
	}
	return total
}

// EffectiveHPBonus sums every hp-bonus passive applicable to candidate.
func EffectiveHPBonus(gs *state.GameState, repo repository.CardRepository, candidate model.ConcreteField) int {
	total := 0
	for _, p := range gs.Passives {
		if p.Effect.Type != model.EffectHPBonus {
			continue
		}
		if fieldMatchesEffectTarget(gs, repo, p, candidate) {
			total += p.Effect.Modifier
		}
	}
	return total
}

// DamageModifier sums damage-boost passives and subtracts damage-reduction
// passives applicable when attacker deals damage to defender. The result may
// be negative; callers clamp the final damage at 0.
func DamageModifier(gs *state.GameState, repo repository.CardRepository, attacker, defender model.ConcreteField) int {
	delta := 0
	for _, p := range gs.Passives {
		switch p.Effect.Type {
		case model.EffectDamageBoost:
			if fieldMatchesEffectTarget(gs, repo, p, attacker) {
				delta += p.Effect.Modifier
			}
		case model.EffectDamageReduction:
			if fieldMatchesEffectTarget(gs, repo, p, defender) {
				delta -= p.Effect.Modifier
			}
		}
	}
	return delta
}

func roleResolvesTo(sourcePlayer int, role model.TargetRole, player int) bool {
	switch role {
	case model.RoleBoth:
		return true
	case model.RoleSelf:
		return player == sourcePlayer
	case model.RoleOpponent:
		return player == state.Opponent(sourcePlayer)
	default:
		return false
	}
}
