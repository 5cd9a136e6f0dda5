package services

import (
	"cmp"
	"context"
	"slices"

	"fleet-waitlist/backend/internal/models/entities"
)

type CharacterStore interface {
	GetByID(ctx context.Context, id int64) (*entities.Character, error)
	GetAlts(ctx context.Context, id int64) ([]entities.Character, error)
}

// CharacterGroupResolver expands a character into the characters linked to the same account.
type CharacterGroupResolver struct {
	characters CharacterStore
}

func NewCharacterGroupResolver(characters CharacterStore) *CharacterGroupResolver {
	return &CharacterGroupResolver{characters: characters}
}

// Resolve returns the target character first, followed by its directly linked alts ordered by
// name, then id. Links are followed one hop only. A character linked more than once appears once.
func (r *CharacterGroupResolver) Resolve(ctx context.Context, characterID int64) ([]entities.Character, error) {
	target, err := r.characters.GetByID(ctx, characterID)
	if err != nil {
		return nil, errStoreFailure(err)
	}
	if target == nil {
		return nil, errNotFound(characterID)
	}

	alts, err := r.characters.GetAlts(ctx, characterID)
	if err != nil {
		return nil, errStoreFailure(err)
	}

	group := make([]entities.Character, 0, len(alts)+1)
	group = append(group, *target)
	seen := map[int64]bool{target.ID: true}
	for _, alt := range alts {
		if seen[alt.ID] {
			continue
		}
		seen[alt.ID] = true
		group = append(group, alt)
	}

	slices.SortStableFunc(group[1:], func(a, b entities.Character) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return group, nil
}
