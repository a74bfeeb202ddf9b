package turn

import (
	"pockettcg/internal/model"
	"pockettcg/internal/passive"
	"pockettcg/internal/repository"
	"pockettcg/internal/state"
	"pockettcg/internal/trigger"
)

// Attack resolves the acting player's active creature using the named
// attack: energy-cost validation is the caller's job (internal/validate);
// this computes damage (base + weakness + passive modifiers, clamped at
// 0), applies it, enqueues the attack's own effects, dispatches damaged,
// and runs a knockout check. A self-inflicted confusion flip (heads: attack
// proceeds, tails: 10 self-damage and the attack fizzles) is resolved here
// since it is intrinsic to the act of attacking rather than a declared
// effect.
func Attack(gs *state.GameState, repo repository.CardRepository, attackerIndex int, attack model.Attack) error {
	attacker := model.ConcreteField{PlayerIndex: attackerIndex, FieldIndex: state.ActiveIndex}
	attackerID := gs.FieldInstanceAt(attacker)

	if hasStatus(gs, attackerID, model.StatusConfusion) {
		if !gs.RNG.CoinFlip() {
			gs.Damage[attackerID] += 10
			return CheckKnockouts(gs, repo)
		}
	}

	defenderIndex := state.Opponent(attackerIndex)
	defender := model.ConcreteField{PlayerIndex: defenderIndex, FieldIndex: state.ActiveIndex}
	defenderID := gs.FieldInstanceAt(defender)

	if !passive.IsDamagePreventedFrom(gs, repo, defender, attacker) {
		damage := attack.Damage
		damage += passive.DamageModifier(gs, repo, attacker, defender)

		attackerData, err := repo.GetCreature(gs.StackAt(attacker).Top().TemplateID)
		if err != nil {
			return err
		}
		defenderData, err := repo.GetCreature(gs.StackAt(defender).Top().TemplateID)
		if err != nil {
			return err
		}
		if defenderData.Weakness != nil && *defenderData.Weakness == attackerData.CreatureType {
			damage += 20
		}
		if damage < 0 {
			damage = 0
		}
		gs.Damage[defenderID] += damage
	}

	ctx := model.EffectContext{SourcePlayer: attackerIndex, Source: &attacker, Trigger: model.TriggerOnPlay}
	for _, e := range attack.Effects {
		gs.PendingEffects = append(gs.PendingEffects, state.PendingEffect{Effect: e, Context: ctx})
	}
	if err := DrainPending(gs, repo); err != nil {
		return err
	}
	if gs.PendingSelection != nil {
		return nil
	}

	if err := trigger.Dispatch(gs, repo, model.TriggerDamaged, defenderIndex, &defender, ""); err != nil {
		return err
	}
	if err := DrainPending(gs, repo); err != nil {
		return err
	}
	if gs.PendingSelection != nil {
		return nil
	}

	return CheckKnockouts(gs, repo)
}

func hasStatus(gs *state.GameState, instanceID string, kind model.StatusKind) bool {
	for _, s := range gs.Status[instanceID] {
		if s.Kind == kind {
			return true
		}
	}
	return false
}

// AttackEnergyCost returns an attack's energy cost after passive modifiers,
// floored at 0.
func AttackEnergyCost(gs *state.GameState, repo repository.CardRepository, attacker model.ConcreteField, attack model.Attack) model.EnergyHistogram {
	cost := attack.EnergyCost.Clone()
	modifier := passive.AttackEnergyCostModifier(gs, repo, attacker)
	if modifier == 0 {
		return cost
	}
	// A flat modifier is applied against the total: an increase is added to
	// the first type of AllEnergyTypes, a reduction is taken from the cost's
	// types in AllEnergyTypes order until it is used up.
	if modifier > 0 {
		cost[model.AllEnergyTypes[0]] += modifier
		return cost
	}
	remaining := -modifier
	for _, t := range model.AllEnergyTypes {
		for cost[t] > 0 && remaining > 0 {
			cost[t]--
			remaining--
		}
	}
	return cost
}
