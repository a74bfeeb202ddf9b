package passive_test

import (
	"testing"

	"pockettcg/internal/model"
	"pockettcg/internal/passive"
	"pockettcg/internal/repository"
	"pockettcg/internal/rng"
	"pockettcg/internal/state"

	"github.com/stretchr/testify/assert"
)

func newRepo() repository.CardRepository {
	creatures, items, supporters, tools := repository.DefaultCatalogue()
	return repository.NewInMemory(creatures, items, supporters, tools)
}

func newGS(t *testing.T) *state.GameState {
	t.Helper()
	decks := [2][]model.CardInstance{
		{{InstanceID: "a1", TemplateID: "emberpup", Kind: model.CardCreature}},
		{{InstanceID: "b1", TemplateID: "tidalpup", Kind: model.CardCreature}},
	}
	gs := state.New(decks, state.DefaultParams(), rng.NewDefault(1))
	gs.Players[0].Field = []model.CreatureStack{{Forms: []model.CardInstance{decks[0][0]}}}
	gs.Players[1].Field = []model.CreatureStack{{Forms: []model.CardInstance{decks[1][0]}}}
	return gs
}

func resolvedEffect(kind model.EffectKind, field model.ConcreteField, modifier int) model.Effect {
	return model.Effect{
		Type:     kind,
		Modifier: modifier,
		Target:   model.FieldTarget{Kind: model.FieldResolved, Targets: []model.ConcreteField{field}},
	}
}

func TestEffectiveRetreatCost_AppliesModifierAndClampsAtZero(t *testing.T) {
	gs := newGS(t)
	field := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}
	gs.RegisterPassive(0, "", resolvedEffectWithDelta(field, -5), model.Duration{Kind: model.DurationUntilEndOfTurn})

	got := passive.EffectiveRetreatCost(gs, newRepo(), field, 1)
	assert.Equal(t, 0, got)
}

func resolvedEffectWithDelta(field model.ConcreteField, delta int) model.Effect {
	return model.Effect{
		Type:         model.EffectRetreatCostModification,
		RetreatDelta: delta,
		Target:       model.FieldTarget{Kind: model.FieldResolved, Targets: []model.ConcreteField{field}},
	}
}

func TestIsRetreatPrevented_TrueOnlyForRegisteredField(t *testing.T) {
	gs := newGS(t)
	field := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}
	other := model.ConcreteField{PlayerIndex: 1, FieldIndex: 0}
	gs.RegisterPassive(0, "", model.Effect{
		Type:   model.EffectRetreatPrevention,
		Target: model.FieldTarget{Kind: model.FieldResolved, Targets: []model.ConcreteField{field}},
	}, model.Duration{Kind: model.DurationUntilEndOfTurn})

	assert.True(t, passive.IsRetreatPrevented(gs, newRepo(), field))
	assert.False(t, passive.IsRetreatPrevented(gs, newRepo(), other))
}

func TestDamageModifier_BoostAndReductionCombine(t *testing.T) {
	gs := newGS(t)
	attacker := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}
	defender := model.ConcreteField{PlayerIndex: 1, FieldIndex: 0}
	gs.RegisterPassive(0, "", resolvedEffect(model.EffectDamageBoost, attacker, 10), model.Duration{Kind: model.DurationUntilEndOfTurn})
	gs.RegisterPassive(1, "", resolvedEffect(model.EffectDamageReduction, defender, 3), model.Duration{Kind: model.DurationUntilEndOfTurn})

	got := passive.DamageModifier(gs, newRepo(), attacker, defender)
	assert.Equal(t, 7, got)
}

func TestEffectiveHPBonus_SumsMatchingBonus(t *testing.T) {
	gs := newGS(t)
	field := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}
	gs.RegisterPassive(0, "", resolvedEffect(model.EffectHPBonus, field, 20), model.Duration{Kind: model.DurationUntilEndOfTurn})

	assert.Equal(t, 20, passive.EffectiveHPBonus(gs, newRepo(), field))
}

func TestExpireEndOfTurn_RemovesOnlyThisTurnsPassives(t *testing.T) {
	gs := newGS(t)
	gs.TurnNumber = 3
	field := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}
	gs.RegisterPassive(0, "", resolvedEffect(model.EffectHPBonus, field, 20), model.Duration{Kind: model.DurationUntilEndOfTurn})
	gs.TurnNumber = 4
	gs.RegisterPassive(0, "", resolvedEffect(model.EffectDamageBoost, field, 10), model.Duration{Kind: model.DurationUntilEndOfTurn})

	passive.ExpireEndOfTurn(gs, 4)

	assert.Equal(t, 20, passive.EffectiveHPBonus(gs, newRepo(), field))
}

func TestRemoveForDetachedTool_RemovesWhileAttachedPassive(t *testing.T) {
	gs := newGS(t)
	field := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}
	gs.RegisterPassive(0, "", resolvedEffect(model.EffectHPBonus, field, 30), model.Duration{
		Kind:           model.DurationWhileAttached,
		ToolInstanceID: "tool1",
		CardInstanceID: "a1",
	})

	passive.RemoveForDetachedTool(gs, "tool1", "a1")

	assert.Equal(t, 0, passive.EffectiveHPBonus(gs, newRepo(), field))
}
