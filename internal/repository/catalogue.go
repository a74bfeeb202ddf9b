package repository

import "pockettcg/internal/model"

// DefaultCatalogue returns the bundled reference card data: a small roster
// whose cards carry heal, draw and hp-bonus effects only; the other effect
// kinds have no card here. Grounded on the teacher's one-file-per-card layout
// (internal/cards/power, internal/cards/science, ...), collapsed into data
// literals since card behavior here is declarative, not Go code per card.
func DefaultCatalogue() (map[string]model.CreatureData, map[string]model.ItemData, map[string]model.SupporterData, map[string]model.ToolData) {
	fire := model.EnergyFire
	water := model.EnergyWater
	grass := model.EnergyGrass

	creatures := map[string]model.CreatureData{
		"sproutling": {
			TemplateID: "sproutling", Name: "Sproutling", MaxHP: 60,
			CreatureType: model.EnergyGrass, RetreatCost: 1,
			Attacks: []model.Attack{
				{Name: "Vine Whip", Damage: 20, EnergyCost: model.EnergyHistogram{model.EnergyGrass: 1}},
			},
		},
		"emberpup": {
			TemplateID: "emberpup", Name: "Emberpup", MaxHP: 70,
			CreatureType: model.EnergyFire, Weakness: &water, RetreatCost: 1,
			Attacks: []model.Attack{
				{Name: "Ember", Damage: 30, EnergyCost: model.EnergyHistogram{model.EnergyFire: 1}},
			},
		},
		"emberfang": {
			TemplateID: "emberfang", Name: "Emberfang", MaxHP: 120,
			CreatureType: model.EnergyFire, Weakness: &water, RetreatCost: 2,
			EvolvesFrom: "Emberpup",
			Attacks: []model.Attack{
				{Name: "Flame Burst", Damage: 80, EnergyCost: model.EnergyHistogram{model.EnergyFire: 2}},
			},
		},
		"tidalpup": {
			TemplateID: "tidalpup", Name: "Tidalpup", MaxHP: 60,
			CreatureType: model.EnergyWater, Weakness: &grass, RetreatCost: 1,
			Attacks: []model.Attack{
				{Name: "Bubble", Damage: 20, EnergyCost: model.EnergyHistogram{model.EnergyWater: 1}},
			},
		},
		"crownstag": {
			TemplateID: "crownstag", Name: "Crownstag", MaxHP: 150,
			CreatureType: model.EnergyGrass, Weakness: &fire, RetreatCost: 3,
			EX: true,
			Attacks: []model.Attack{
				{Name: "Antler Slam", Damage: 100, EnergyCost: model.EnergyHistogram{model.EnergyGrass: 2, model.EnergyFighting: 1}},
			},
		},
	}

	items := map[string]model.ItemData{
		"potion": {
			TemplateID: "potion", Name: "Potion",
			Effects: []model.Effect{
				{
					Type:   model.EffectHeal,
					Amount: model.Const(20),
					Target: model.FieldTarget{Kind: model.FieldFixed, Player: model.ContextSelf, Position: model.PositionActive},
					DisplayName: "Potion heals 20 damage",
				},
			},
		},
	}

	supporters := map[string]model.SupporterData{
		"professors-notes": {
			TemplateID: "professors-notes", Name: "Professor's Notes",
			Effects: []model.Effect{
				{
					Type:        model.EffectDraw,
					AmountValue: model.Const(7),
					ForPlayer:   model.ContextSelf,
					DisplayName: "Draw 7 cards",
				},
			},
		},
		"herb-medicine": {
			TemplateID: "herb-medicine", Name: "Herb Medicine",
			Effects: []model.Effect{
				{
					Type: model.EffectHeal,
					Amount: model.EffectValue{
						Kind:          model.ValuePlayerContextResolved,
						Source:        model.SourceHandSize,
						PlayerContext: model.ContextSelf,
					},
					Target:      model.FieldTarget{Kind: model.FieldFixed, Player: model.ContextSelf, Position: model.PositionActive},
					DisplayName: "Heal damage equal to hand size",
				},
			},
		},
	}

	tools := map[string]model.ToolData{
		"vitality-band": {
			TemplateID: "vitality-band", Name: "Vitality Band",
			Effects: []model.Effect{
				{
					Type:     model.EffectHPBonus,
					Modifier: 30,
					Duration: model.Duration{Kind: model.DurationWhileAttached},
					DisplayName: "+30 max HP while attached",
				},
			},
		},
	}

	return creatures, items, supporters, tools
}
