package resolver_test

import (
	"testing"

	"pockettcg/internal/model"
	"pockettcg/internal/resolver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCard_FixedZoneResolvesAllCandidates(t *testing.T) {
	gs := newGS(t)
	gs.Players[0].Hand = []model.CardInstance{{InstanceID: "h1"}, {InstanceID: "h2"}}

	target := model.CardTarget{Kind: model.FieldFixed, Player: model.ContextSelf, Zone: model.ZoneHand}
	res, err := resolver.Card(gs, target, model.EffectContext{SourcePlayer: 0})
	require.NoError(t, err)
	assert.Equal(t, model.ResolutionResolved, res.Kind)
	assert.Len(t, res.Targets, 2)
}

func TestCard_NoValidTargetsOnEmptyZone(t *testing.T) {
	gs := newGS(t)
	target := model.CardTarget{Kind: model.FieldSingleChoice, Player: model.ContextSelf, Zone: model.ZoneHand}
	res, err := resolver.Card(gs, target, model.EffectContext{SourcePlayer: 0})
	require.NoError(t, err)
	assert.Equal(t, model.ResolutionNoValidTargets, res.Kind)
}

func TestCard_SingleChoiceAutoResolvesOneCandidate(t *testing.T) {
	gs := newGS(t)
	gs.Players[0].Hand = []model.CardInstance{{InstanceID: "h1"}}

	target := model.CardTarget{Kind: model.FieldSingleChoice, Player: model.ContextSelf, Zone: model.ZoneHand}
	res, err := resolver.Card(gs, target, model.EffectContext{SourcePlayer: 0})
	require.NoError(t, err)
	assert.Equal(t, model.ResolutionAutoResolved, res.Kind)
	assert.Equal(t, "h1", res.Targets[0].InstanceID)
}

func TestCard_MultiChoiceAlwaysRequiresSelection(t *testing.T) {
	gs := newGS(t)
	gs.Players[0].Hand = []model.CardInstance{{InstanceID: "h1"}}

	target := model.CardTarget{Kind: model.FieldMultiChoice, Player: model.ContextSelf, Zone: model.ZoneHand}
	res, err := resolver.Card(gs, target, model.EffectContext{SourcePlayer: 0})
	require.NoError(t, err)
	assert.Equal(t, model.ResolutionRequiresSelect, res.Kind)
}
