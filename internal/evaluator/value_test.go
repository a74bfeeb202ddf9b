package evaluator_test

import (
	"testing"

	"pockettcg/internal/evaluator"
	"pockettcg/internal/model"
	"pockettcg/internal/rng"
	"pockettcg/internal/state"

	"github.com/stretchr/testify/assert"
)

func newGameState(t *testing.T) *state.GameState {
	t.Helper()
	decks := [2][]model.CardInstance{
		{{InstanceID: "a1", TemplateID: "sproutling", Kind: model.CardCreature}},
		{{InstanceID: "b1", TemplateID: "sproutling", Kind: model.CardCreature}},
	}
	gs := state.New(decks, state.DefaultParams(), rng.NewDefault(1))
	for i := range gs.Players {
		gs.Players[i].Field = []model.CreatureStack{{Forms: []model.CardInstance{decks[i][0]}}}
	}
	return gs
}

func TestValue_Constant(t *testing.T) {
	gs := newGameState(t)
	got := evaluator.Value(gs, nil, model.Const(20), model.EffectContext{SourcePlayer: 0}, evaluator.TargetScope{Player: -1})
	assert.Equal(t, 20, got)
}

// TestValue_HandSizeHeal grounds specification seed scenario 2: self hand
// size after the supporter is removed from it is read live from state, not
// cached at card-build time.
func TestValue_HandSizeHeal(t *testing.T) {
	gs := newGameState(t)
	gs.Players[0].Hand = []model.CardInstance{{InstanceID: "h1"}, {InstanceID: "h2"}, {InstanceID: "h3"}}

	v := model.EffectValue{Kind: model.ValuePlayerContextResolved, Source: model.SourceHandSize, PlayerContext: model.ContextSelf}
	got := evaluator.Value(gs, nil, v, model.EffectContext{SourcePlayer: 0}, evaluator.TargetScope{Player: -1})
	assert.Equal(t, 3, got)
}

// TestValue_Multiplication grounds specification seed scenario 3.
func TestValue_Multiplication(t *testing.T) {
	gs := newGameState(t)
	v := model.EffectValue{
		Kind:       model.ValueMultiplication,
		Multiplier: ptr(model.Const(10)),
		Base:       ptr(model.Const(2)),
	}
	got := evaluator.Value(gs, nil, v, model.EffectContext{SourcePlayer: 0}, evaluator.TargetScope{Player: -1})
	assert.Equal(t, 20, got)
}

func TestHeal_ClampsAtZero(t *testing.T) {
	assert.Equal(t, 0, evaluator.Heal(10, 20))
	assert.Equal(t, 10, evaluator.Heal(30, 20))
}

func TestValue_CoinFlipUsesInjectedRNG(t *testing.T) {
	decks := [2][]model.CardInstance{{{InstanceID: "a1", TemplateID: "sproutling"}}, {{InstanceID: "b1", TemplateID: "sproutling"}}}
	gs := state.New(decks, state.DefaultParams(), rng.NewPreloaded(true, false))

	v := model.EffectValue{Kind: model.ValueCoinFlip, HeadsValue: ptr(model.Const(1)), TailsValue: ptr(model.Const(2))}
	ctx := model.EffectContext{SourcePlayer: 0}
	assert.Equal(t, 1, evaluator.Value(gs, nil, v, ctx, evaluator.TargetScope{Player: -1}))
	assert.Equal(t, 2, evaluator.Value(gs, nil, v, ctx, evaluator.TargetScope{Player: -1}))
}

func TestValue_ResolvedDamageTaken(t *testing.T) {
	gs := newGameState(t)
	field := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}
	gs.Damage[gs.FieldInstanceAt(field)] = 30

	v := model.EffectValue{Kind: model.ValueResolved, ResolvedSource: model.ResolvedDamageTaken}
	got := evaluator.Value(gs, nil, v, model.EffectContext{SourcePlayer: 0}, evaluator.TargetScope{Player: 0, Field: &field})
	assert.Equal(t, 30, got)
}

func ptr(v model.EffectValue) *model.EffectValue { return &v }
