// Package effect implements one handler per effect kind and the applier
// orchestrator of specification §4.7: resolution-requirements, resolve (or
// suspend into a pending selection), then apply.
package effect

import "pockettcg/internal/model"

// requirementsFor lists, in declaration order, which of an effect's targets
// must resolve before it can apply (specification §4.6 item 1). Effects with
// no external target (draw, shuffle, prevent-energy-attachment) return nil.
func requirementsFor(e model.Effect) []model.Requirement {
	switch e.Type {
	case model.EffectHeal, model.EffectDamage,
		model.EffectToolDiscard, model.EffectStatusEffect,
		model.EffectHPBonus, model.EffectDamageBoost, model.EffectDamageReduction,
		model.EffectRetreatCostModification, model.EffectRetreatPrevention,
		model.EffectPreventAttack, model.EffectPreventDamage,
		model.EffectAttackEnergyCostModifier:
		return []model.Requirement{{Property: model.PropertyTarget, Required: true}}

	case model.EffectSearch, model.EffectShuffleIntoDeck, model.EffectMoveToHand,
		model.EffectHandDiscard:
		return []model.Requirement{{Property: model.PropertyCardTarget, Required: true}}

	case model.EffectEnergyTransfer:
		return []model.Requirement{
			{Property: model.PropertyEnergySource, Required: true},
			{Property: model.PropertyEnergyDest, Required: true},
		}

	case model.EffectDraw, model.EffectShuffle, model.EffectPreventEnergyAttachment:
		return nil

	default:
		return nil
	}
}
