// Package repository is the read-only card data port (specification §4.1).
// The engine never persists card definitions; it consults an injected
// oracle, grounded on the teacher's repository.CardRepository split between
// data access and in-process storage.
package repository

import (
	"pockettcg/internal/errors"
	"pockettcg/internal/model"
)

// CardRepository is the read-only lookup port.
type CardRepository interface {
	GetCreature(templateID string) (model.CreatureData, error)
	GetItem(templateID string) (model.ItemData, error)
	GetSupporter(templateID string) (model.SupporterData, error)
	GetTool(templateID string) (model.ToolData, error)
	AllCreatureIDs() []string
}

// InMemory is a CardRepository backed by Go-literal maps populated once at
// process start (see catalogue.go). It never mutates after construction.
type InMemory struct {
	creatures  map[string]model.CreatureData
	items      map[string]model.ItemData
	supporters map[string]model.SupporterData
	tools      map[string]model.ToolData
}

// NewInMemory builds a repository from already-loaded catalogues.
func NewInMemory(creatures map[string]model.CreatureData, items map[string]model.ItemData, supporters map[string]model.SupporterData, tools map[string]model.ToolData) *InMemory {
	return &InMemory{creatures: creatures, items: items, supporters: supporters, tools: tools}
}

func (r *InMemory) GetCreature(templateID string) (model.CreatureData, error) {
	c, ok := r.creatures[templateID]
	if !ok {
		return model.CreatureData{}, &errors.NotFoundError{Resource: "creature", ID: templateID}
	}
	return c, nil
}

func (r *InMemory) GetItem(templateID string) (model.ItemData, error) {
	c, ok := r.items[templateID]
	if !ok {
		return model.ItemData{}, &errors.NotFoundError{Resource: "item", ID: templateID}
	}
	return c, nil
}

func (r *InMemory) GetSupporter(templateID string) (model.SupporterData, error) {
	c, ok := r.supporters[templateID]
	if !ok {
		return model.SupporterData{}, &errors.NotFoundError{Resource: "supporter", ID: templateID}
	}
	return c, nil
}

func (r *InMemory) GetTool(templateID string) (model.ToolData, error) {
	c, ok := r.tools[templateID]
	if !ok {
		return model.ToolData{}, &errors.NotFoundError{Resource: "tool", ID: templateID}
	}
	return c, nil
}

func (r *InMemory) AllCreatureIDs() []string {
	ids := make([]string, 0, len(r.creatures))
	for id := range r.creatures {
		ids = append(ids, id)
	}
	return ids
}
