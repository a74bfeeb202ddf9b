package engine_test

import (
	"context"
	"testing"

	"pockettcg/internal/engine"
	"pockettcg/internal/message"
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

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	decks := [2][]model.CardInstance{
		{{InstanceID: "a1", TemplateID: "emberpup", Kind: model.CardCreature}},
		{{InstanceID: "b1", TemplateID: "tidalpup", Kind: model.CardCreature}},
	}
	gs := state.New(decks, state.DefaultParams(), rng.NewDefault(1))
	gs.Players[0].Field = []model.CreatureStack{{Forms: []model.CardInstance{decks[0][0]}}}
	gs.Players[1].Field = []model.CreatureStack{{Forms: []model.CardInstance{decks[1][0]}}}
	gs.Phase = state.PhaseActionLoop
	return engine.New("test-game", gs, newRepo(), message.NewNotifier(1, 8))
}

func TestSubmit_RejectsActionFromWrongPlayer(t *testing.T) {
	e := newEngine(t)
	status, err := e.Submit(context.Background(), 1, message.Response{Kind: message.ResponseAction, Action: message.ActionEndTurn})
	require.NoError(t, err)
	assert.Equal(t, message.StatusRejected, status.Kind)
}

func TestSubmit_AttachEnergyAppliesAndReturnsActionApplied(t *testing.T) {
	e := newEngine(t)
	fire := model.EnergyFire
	e.GS.Players[0].CurrentEnergy = &fire
	active := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}

	status, err := e.Submit(context.Background(), 0, message.Response{
		Kind: message.ResponseAction, Action: message.ActionAttachEnergy, DestField: &active,
	})
	require.NoError(t, err)
	assert.Equal(t, message.StatusActionApplied, status.Kind)
	assert.Equal(t, 1, e.GS.Energy[e.GS.FieldInstanceAt(active)][model.EnergyFire])
	assert.Nil(t, e.GS.Players[0].CurrentEnergy)
}

func TestSubmit_PlayItemCardDiscardsAndAppliesEffect(t *testing.T) {
	e := newEngine(t)
	e.GS.Players[0].Hand = []model.CardInstance{{InstanceID: "item1", TemplateID: "potion", Kind: model.CardItem}}
	active := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}
	e.GS.Damage[e.GS.FieldInstanceAt(active)] = 30

	status, err := e.Submit(context.Background(), 0, message.Response{
		Kind: message.ResponseAction, Action: message.ActionPlayCard, HandInstanceID: "item1",
	})
	require.NoError(t, err)
	assert.Equal(t, message.StatusActionApplied, status.Kind)
	assert.Empty(t, e.GS.Players[0].Hand)
	require.Len(t, e.GS.Players[0].Discard, 1)
	assert.Equal(t, "item1", e.GS.Players[0].Discard[0].InstanceID)
	assert.Equal(t, 10, e.GS.Damage[e.GS.FieldInstanceAt(active)])
}

func TestSubmit_PlayToolCardAttachesAndRejectsSecondTool(t *testing.T) {
	e := newEngine(t)
	active := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}
	e.GS.Players[0].Hand = []model.CardInstance{
		{InstanceID: "tool1", TemplateID: "vitality-band", Kind: model.CardTool},
		{InstanceID: "tool2", TemplateID: "vitality-band", Kind: model.CardTool},
	}

	status, err := e.Submit(context.Background(), 0, message.Response{
		Kind: message.ResponseAction, Action: message.ActionPlayCard, HandInstanceID: "tool1", DestField: &active,
	})
	require.NoError(t, err)
	assert.Equal(t, message.StatusActionApplied, status.Kind)
	assert.Equal(t, "tool1", e.GS.Tools[e.GS.FieldInstanceAt(active)].InstanceID)

	status, err = e.Submit(context.Background(), 0, message.Response{
		Kind: message.ResponseAction, Action: message.ActionPlayCard, HandInstanceID: "tool2", DestField: &active,
	})
	require.NoError(t, err)
	assert.Equal(t, message.StatusRejected, status.Kind)
	require.Len(t, e.GS.Players[0].Hand, 1)
	assert.Equal(t, "tool2", e.GS.Players[0].Hand[0].InstanceID)
}

func TestSubmit_EndTurnOutsideActionLoopIsRejected(t *testing.T) {
	e := newEngine(t)
	e.GS.Phase = state.PhaseCheckup

	status, err := e.Submit(context.Background(), 0, message.Response{Kind: message.ResponseAction, Action: message.ActionEndTurn})
	require.NoError(t, err)
	assert.Equal(t, message.StatusRejected, status.Kind)
}
