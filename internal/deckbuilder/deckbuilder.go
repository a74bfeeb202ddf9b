// Package deckbuilder expands a deck list of template ids into fresh
// CardInstance values with stable instance ids, ready to seed a GameState.
package deckbuilder

import (
	"pockettcg/internal/model"
	"pockettcg/internal/repository"

	"github.com/google/uuid"
)

// Build assigns a fresh uuid-based instance id to every template id in
// templateIDs, looking each one up in repo to tag it with its CardKind.
func Build(repo repository.CardRepository, templateIDs []string) ([]model.CardInstance, error) {
	instances := make([]model.CardInstance, 0, len(templateIDs))
	for _, id := range templateIDs {
		kind, err := kindOf(repo, id)
		if err != nil {
			return nil, err
		}
		instances = append(instances, model.CardInstance{
			InstanceID: uuid.NewString(),
			TemplateID: id,
			Kind:       kind,
		})
	}
	return instances, nil
}

func kindOf(repo repository.CardRepository, templateID string) (model.CardKind, error) {
	if _, err := repo.GetCreature(templateID); err == nil {
		return model.CardCreature, nil
	}
	if _, err := repo.GetItem(templateID); err == nil {
		return model.CardItem, nil
	}
	if _, err := repo.GetSupporter(templateID); err == nil {
		return model.CardSupporter, nil
	}
	if _, err := repo.GetTool(templateID); err != nil {
		return "", err
	}
	return model.CardTool, nil
}
