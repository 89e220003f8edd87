package data

import (
	"fmt"
	"sort"

	"github.com/udisondev/spirego/internal/model"
)

// GetCharacter returns the character template with id.
func GetCharacter(id string) (Character, error) {
	c, ok := characterTable[id]
	if !ok {
		return Character{}, fmt.Errorf("character %q: %w", id, model.ErrNotFound)
	}
	c.StartingDeck = append([]model.Card(nil), c.StartingDeck...)
	return c, nil
}

// GetCard returns a copy of the card template with id.
func GetCard(id string) (model.Card, error) {
	c, ok := cardTable[id]
	if !ok {
		return model.Card{}, fmt.Errorf("card %q: %w", id, model.ErrNotFound)
	}
	return c, nil
}

// GetEnemy returns a fresh copy of the enemy template with id.
func GetEnemy(id string) (model.Enemy, error) {
	e, ok := enemyTable[id]
	if !ok {
		return model.Enemy{}, fmt.Errorf("enemy %q: %w", id, model.ErrNotFound)
	}
	e = e.Clone()
	e.TemplateID = e.ID
	return e, nil
}

// GetEnemies resolves a list of enemy ids. Fails on the first unknown id.
func GetEnemies(ids []string) ([]model.Enemy, error) {
	out := make([]model.Enemy, 0, len(ids))
	for _, id := range ids {
		e, err := GetEnemy(id)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// GetRelic returns the relic with id.
func GetRelic(id string) (model.Relic, error) {
	r, ok := relicTable[id]
	if !ok {
		return model.Relic{}, fmt.Errorf("relic %q: %w", id, model.ErrNotFound)
	}
	return r, nil
}

// GetPotion returns the potion with id.
func GetPotion(id string) (model.Potion, error) {
	p, ok := potionTable[id]
	if !ok {
		return model.Potion{}, fmt.Errorf("potion %q: %w", id, model.ErrNotFound)
	}
	return p, nil
}

// Encounters returns the enemy groups available for a combat node in act.
// Returns nil for non-combat node types.
func Encounters(act int, nodeType model.NodeType) [][]string {
	pools, ok := encounterTable[nodeType]
	if !ok || len(pools) == 0 {
		return nil
	}
	idx := min(max(act-1, 0), len(pools)-1)
	return pools[idx]
}

// CardIDs returns all card ids in sorted order.
func CardIDs() []string {
	ids := make([]string, 0, len(cardTable))
	for id := range cardTable {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
