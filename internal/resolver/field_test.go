package resolver_test

import (
	"testing"

	"pockettcg/internal/model"
	"pockettcg/internal/repository"
	"pockettcg/internal/resolver"
	"pockettcg/internal/rng"
	"pockettcg/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestField_FixedActive(t *testing.T) {
	gs := newGS(t)
	target := model.FieldTarget{Kind: model.FieldFixed, Player: model.ContextSelf, Position: model.PositionActive}
	res, err := resolver.Field(gs, newRepo(), target, model.EffectContext{SourcePlayer: 0})
	require.NoError(t, err)
	assert.Equal(t, model.ResolutionResolved, res.Kind)
	assert.Equal(t, []model.ConcreteField{{PlayerIndex: 0, FieldIndex: 0}}, res.Targets)
}

func TestField_FixedBench_NoValidTargetsWhenEmpty(t *testing.T) {
	gs := newGS(t)
	target := model.FieldTarget{Kind: model.FieldFixed, Player: model.ContextSelf, Position: model.PositionBench}
	res, err := resolver.Field(gs, newRepo(), target, model.EffectContext{SourcePlayer: 0})
	require.NoError(t, err)
	assert.Equal(t, model.ResolutionNoValidTargets, res.Kind)
}

func TestField_SingleChoiceAutoResolvesOneCandidate(t *testing.T) {
	gs := newGS(t)
	target := model.FieldTarget{Kind: model.FieldSingleChoice, Chooser: model.ContextSelf, Player: model.ContextOpponent}
	res, err := resolver.Field(gs, newRepo(), target, model.EffectContext{SourcePlayer: 0})
	require.NoError(t, err)
	assert.Equal(t, model.ResolutionAutoResolved, res.Kind)
	assert.Equal(t, []model.ConcreteField{{PlayerIndex: 1, FieldIndex: 0}}, res.Targets)
}

func TestField_SingleChoiceForcesSelectionWhenFlagged(t *testing.T) {
	gs := newGS(t)
	target := model.FieldTarget{Kind: model.FieldSingleChoice, Chooser: model.ContextSelf, Player: model.ContextOpponent, ForceExplicitSelection: true}
	res, err := resolver.Field(gs, newRepo(), target, model.EffectContext{SourcePlayer: 0})
	require.NoError(t, err)
	assert.Equal(t, model.ResolutionRequiresSelect, res.Kind)
}
