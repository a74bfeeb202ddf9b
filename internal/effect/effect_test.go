package effect_test

import (
	"testing"

	"pockettcg/internal/effect"
	"pockettcg/internal/model"
	"pockettcg/internal/repository"
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

// TestApply_HealResolvedTargetClampsAtZero grounds the heal-clamping
// invariant of the testable-properties list: healed damage never goes
// negative.
func TestApply_HealResolvedTargetClampsAtZero(t *testing.T) {
	gs := newGS(t)
	field := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}
	id := gs.FieldInstanceAt(field)
	gs.Damage[id] = 10

	e := model.Effect{
		Type:   model.EffectHeal,
		Amount: model.Const(30),
		Target: model.FieldTarget{Kind: model.FieldResolved, Targets: []model.ConcreteField{field}},
	}
	err := effect.Apply(gs, newRepo(), e, model.EffectContext{SourcePlayer: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, gs.Damage[id])
}

// TestApply_DrawRespectsHandCap grounds seed scenario 7: a draw effect never
// pushes a hand above MaxHandSize, even when asked to draw more.
func TestApply_DrawRespectsHandCap(t *testing.T) {
	gs := newGS(t)
	gs.Params.MaxHandSize = 10
	gs.Players[0].Hand = make([]model.CardInstance, 9)
	gs.Players[0].Deck = make([]model.CardInstance, 10)
	for i := range gs.Players[0].Deck {
		gs.Players[0].Deck[i] = model.CardInstance{InstanceID: "d" + string(rune('a'+i))}
	}

	e := model.Effect{Type: model.EffectDraw, AmountValue: model.Const(7)}
	err := effect.Apply(gs, newRepo(), e, model.EffectContext{SourcePlayer: 0})
	require.NoError(t, err)
	assert.Len(t, gs.Players[0].Hand, 10)
}

// TestApply_NoValidTargetsFizzlesSilently grounds the "no valid candidate
// skips the effect" universal invariant: applying a damage effect aimed at
// the opponent's bench when that bench is empty is a no-op, not an error.
func TestApply_NoValidTargetsFizzlesSilently(t *testing.T) {
	gs := newGS(t)
	e := model.Effect{
		Type:   model.EffectDamage,
		Amount: model.Const(10),
		Target: model.FieldTarget{Kind: model.FieldFixed, Player: model.ContextOpponent, Position: model.PositionBench},
	}
	err := effect.Apply(gs, newRepo(), e, model.EffectContext{SourcePlayer: 0})
	require.NoError(t, err)
	assert.Nil(t, gs.PendingSelection)
}

// TestApply_MultiChoiceTargetSuspendsThenResumes exercises the
// suspend-on-selection/resume cycle: a target with more than one candidate
// and no forced auto-resolution stops draining until ResumeField answers it.
func TestApply_MultiChoiceTargetSuspendsThenResumes(t *testing.T) {
	gs := newGS(t)
	gs.Players[0].Field = append(gs.Players[0].Field, model.CreatureStack{
		Forms: []model.CardInstance{{InstanceID: "bench1", TemplateID: "emberpup", Kind: model.CardCreature}},
	})
	other := model.ConcreteField{PlayerIndex: 0, FieldIndex: 1}
	id := gs.FieldInstanceAt(other)
	gs.Damage[id] = 10

	e := model.Effect{
		Type:   model.EffectHeal,
		Amount: model.Const(10),
		Target: model.FieldTarget{Kind: model.FieldMultiChoice, Player: model.ContextSelf},
	}
	err := effect.Apply(gs, newRepo(), e, model.EffectContext{SourcePlayer: 0})
	require.NoError(t, err)
	require.NotNil(t, gs.PendingSelection)
	assert.Equal(t, state.PendingField, gs.PendingSelection.Kind)

	err = effect.ResumeField(gs, newRepo(), []model.ConcreteField{other})
	require.NoError(t, err)
	assert.Nil(t, gs.PendingSelection)
	assert.Equal(t, 0, gs.Damage[id])
}
