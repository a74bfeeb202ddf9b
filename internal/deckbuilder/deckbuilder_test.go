package deckbuilder_test

import (
	"testing"

	"pockettcg/internal/deckbuilder"
	"pockettcg/internal/model"
	"pockettcg/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo() repository.CardRepository {
	creatures, items, supporters, tools := repository.DefaultCatalogue()
	return repository.NewInMemory(creatures, items, supporters, tools)
}

func TestBuild_TagsEachInstanceWithItsKind(t *testing.T) {
	instances, err := deckbuilder.Build(newRepo(), []string{"emberpup", "potion", "professors-notes", "vitality-band"})
	require.NoError(t, err)
	require.Len(t, instances, 4)
	assert.Equal(t, model.CardCreature, instances[0].Kind)
	assert.Equal(t, model.CardItem, instances[1].Kind)
	assert.Equal(t, model.CardSupporter, instances[2].Kind)
	assert.Equal(t, model.CardTool, instances[3].Kind)
}

func TestBuild_AssignsDistinctInstanceIDsForDuplicateTemplates(t *testing.T) {
	instances, err := deckbuilder.Build(newRepo(), []string{"emberpup", "emberpup"})
	require.NoError(t, err)
	require.Len(t, instances, 2)
	assert.NotEqual(t, instances[0].InstanceID, instances[1].InstanceID)
	assert.Equal(t, instances[0].TemplateID, instances[1].TemplateID)
}

func TestBuild_ErrorsOnUnknownTemplate(t *testing.T) {
	_, err := deckbuilder.Build(newRepo(), []string{"nonexistent"})
	assert.Error(t, err)
}
