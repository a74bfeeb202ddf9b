package resolver_test

import (
	"testing"

	"pockettcg/internal/model"
	"pockettcg/internal/resolver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnergy_SelectGreedyOneOfEachTypeFirst(t *testing.T) {
	gs := newGS(t)
	field := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}
	id := gs.FieldInstanceAt(field)
	gs.Energy[id] = model.EnergyHistogram{model.EnergyFire: 2, model.EnergyWater: 1}

	got := resolver.FillEnergy(gs, field, []model.EnergyType{model.EnergyFire, model.EnergyWater}, 2)
	assert.Equal(t, 1, got.Histogram[model.EnergyFire])
	assert.Equal(t, 1, got.Histogram[model.EnergyWater])
}

func TestEnergy_SelectGreedyFillsFromRemainingWhenOneTypeExhausted(t *testing.T) {
	gs := newGS(t)
	field := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}
	id := gs.FieldInstanceAt(field)
	gs.Energy[id] = model.EnergyHistogram{model.EnergyFire: 2, model.EnergyWater: 1}

	got := resolver.FillEnergy(gs, field, []model.EnergyType{model.EnergyFire, model.EnergyWater}, 3)
	assert.Equal(t, 2, got.Histogram[model.EnergyFire])
	assert.Equal(t, 1, got.Histogram[model.EnergyWater])
}

func TestEnergy_NoValidTargetsWhenNoFieldHasMatchingType(t *testing.T) {
	gs := newGS(t)
	target := model.EnergyTarget{
		Field:       model.FieldTarget{Kind: model.FieldFixed, Player: model.ContextSelf, Position: model.PositionActive},
		EnergyTypes: []model.EnergyType{model.EnergyGrass},
		Count:       1,
	}
	res, err := resolver.Energy(gs, newRepo(), target, model.EffectContext{SourcePlayer: 0})
	require.NoError(t, err)
	assert.Equal(t, model.ResolutionNoValidTargets, res.Kind)
}

func TestEnergy_ResolvesAtFixedFieldWithMatchingType(t *testing.T) {
	gs := newGS(t)
	field := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}
	id := gs.FieldInstanceAt(field)
	gs.Energy[id] = model.EnergyHistogram{model.EnergyFire: 1}

	target := model.EnergyTarget{
		Field:       model.FieldTarget{Kind: model.FieldFixed, Player: model.ContextSelf, Position: model.PositionActive},
		EnergyTypes: []model.EnergyType{model.EnergyFire},
		Count:       1,
	}
	res, err := resolver.Energy(gs, newRepo(), target, model.EffectContext{SourcePlayer: 0})
	require.NoError(t, err)
	assert.Equal(t, model.ResolutionResolved, res.Kind)
	require.Len(t, res.Targets, 1)
	assert.Equal(t, 1, res.Targets[0].Histogram[model.EnergyFire])
}
