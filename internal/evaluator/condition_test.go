package evaluator_test

import (
	"testing"

	"pockettcg/internal/evaluator"
	"pockettcg/internal/model"
	"pockettcg/internal/repository"

	"github.com/stretchr/testify/assert"
)

func newRepo() repository.CardRepository {
	creatures, items, supporters, tools := repository.DefaultCatalogue()
	return repository.NewInMemory(creatures, items, supporters, tools)
}

func TestCondition_HasEnergyChecksEachMinimum(t *testing.T) {
	gs := newGameState(t)
	field := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}
	gs.Energy[gs.FieldInstanceAt(field)] = model.EnergyHistogram{model.EnergyFire: 2}

	cond := model.Condition{Kind: model.ConditionHasEnergy, EnergyMinimums: model.EnergyHistogram{model.EnergyFire: 2}}
	assert.True(t, evaluator.Condition(gs, newRepo(), cond, field, model.EffectContext{}))

	cond.EnergyMinimums = model.EnergyHistogram{model.EnergyFire: 3}
	assert.False(t, evaluator.Condition(gs, newRepo(), cond, field, model.EffectContext{}))
}

func TestCondition_HasDamageComparesMinimum(t *testing.T) {
	gs := newGameState(t)
	field := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}
	gs.Damage[gs.FieldInstanceAt(field)] = 30

	cond := model.Condition{Kind: model.ConditionHasDamage, MinDamage: 30}
	assert.True(t, evaluator.Condition(gs, newRepo(), cond, field, model.EffectContext{}))

	cond.MinDamage = 31
	assert.False(t, evaluator.Condition(gs, newRepo(), cond, field, model.EffectContext{}))
}

func TestCondition_TargetTypeMatchesCreatureType(t *testing.T) {
	gs := newGameState(t)
	field := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}

	cond := model.Condition{Kind: model.ConditionTargetType, CreatureType: string(model.EnergyGrass)}
	assert.True(t, evaluator.Condition(gs, newRepo(), cond, field, model.EffectContext{}))

	cond.CreatureType = string(model.EnergyFire)
	assert.False(t, evaluator.Condition(gs, newRepo(), cond, field, model.EffectContext{}))
}

func TestCondition_PositionSourceComparesContextSource(t *testing.T) {
	gs := newGameState(t)
	field := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}
	other := model.ConcreteField{PlayerIndex: 1, FieldIndex: 0}

	cond := model.Condition{Kind: model.ConditionPosition, Position: model.PositionSource}
	assert.True(t, evaluator.Condition(gs, newRepo(), cond, field, model.EffectContext{Source: &field}))
	assert.False(t, evaluator.Condition(gs, newRepo(), cond, other, model.EffectContext{Source: &field}))
}

func TestMatchesCriteria_NilCriteriaMatchesAnything(t *testing.T) {
	gs := newGameState(t)
	field := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}
	assert.True(t, evaluator.MatchesCriteria(gs, newRepo(), nil, field, model.EffectContext{}))
}

func TestMatchesCriteria_CombinesPositionAndCreatureType(t *testing.T) {
	gs := newGameState(t)
	field := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}

	criteria := &model.FieldCriteria{Position: model.PositionActive, CreatureType: string(model.EnergyGrass)}
	assert.True(t, evaluator.MatchesCriteria(gs, newRepo(), criteria, field, model.EffectContext{}))

	criteria.Position = model.PositionBench
	assert.False(t, evaluator.MatchesCriteria(gs, newRepo(), criteria, field, model.EffectContext{}))
}
