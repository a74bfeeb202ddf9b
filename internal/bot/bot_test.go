package bot_test

import (
	"testing"

	"pockettcg/internal/bot"
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

func TestRespondToSelection_PicksFirstFieldCandidate(t *testing.T) {
	gs := newGS(t)
	candidates := []model.ConcreteField{{PlayerIndex: 1, FieldIndex: 0}, {PlayerIndex: 1, FieldIndex: 1}}
	gs.PendingSelection = &state.PendingSelection{Kind: state.PendingField, FieldCandidates: candidates}

	resp := bot.RespondToSelection(gs)
	assert.Equal(t, message.ResponseFieldSelection, resp.Kind)
	assert.Equal(t, candidates[:1], resp.FieldSelection)
}

func TestRespondToSelection_EmptyResponseWhenNothingPending(t *testing.T) {
	gs := newGS(t)
	resp := bot.RespondToSelection(gs)
	assert.Equal(t, message.Response{}, resp)
}

func TestAct_AttachesEnergyFirst(t *testing.T) {
	gs := newGS(t)
	fire := model.EnergyFire
	gs.Players[1].CurrentEnergy = &fire

	resp, err := bot.Act(gs, newRepo(), 1)
	require.NoError(t, err)
	assert.Equal(t, message.ActionAttachEnergy, resp.Action)
}

func TestAct_AttacksWhenAffordable(t *testing.T) {
	gs := newGS(t)
	active := model.ConcreteField{PlayerIndex: 0, FieldIndex: 0}
	gs.Energy[gs.FieldInstanceAt(active)] = model.EnergyHistogram{model.EnergyFire: 2}

	resp, err := bot.Act(gs, newRepo(), 0)
	require.NoError(t, err)
	assert.Equal(t, message.ActionUseAttack, resp.Action)
	assert.NotEmpty(t, resp.AttackName)
}

func TestAct_EndsTurnWhenNothingElseLegal(t *testing.T) {
	gs := newGS(t)
	resp, err := bot.Act(gs, newRepo(), 0)
	require.NoError(t, err)
	assert.Equal(t, message.ActionEndTurn, resp.Action)
}
