package services

import (
	"context"
	"errors"
	"fmt"

	"fleet-waitlist/backend/internal/models/entities"

	"github.com/ErikKalkoken/go-set"
)

var errStoreDown = errors.New("connection refused")

type mockAdminStore struct {
	getRoleFunc func(ctx context.Context, characterID int64) (*string, error)
	calls       int
}

func (m *mockAdminStore) GetRole(ctx context.Context, characterID int64) (*string, error) {
	m.calls++
	return m.getRoleFunc(ctx, characterID)
}

func rolesByID(roles map[int64]string) *mockAdminStore {
	return &mockAdminStore{
		getRoleFunc: func(_ context.Context, id int64) (*string, error) {
			role, ok := roles[id]
			if !ok {
				return nil, nil
			}
			return &role, nil
		},
	}
}

type mapExpander map[string][]string

func (m mapExpander) Expand(role string) (set.Set[string], error) {
	keys, ok := m[role]
	if !ok {
		return set.Set[string]{}, fmt.Errorf("unknown role %q", role)
	}
	return set.Of(keys...), nil
}

// panicStore fails the test if the profile service touches the store.
type panicStore struct{}

func (panicStore) GetByID(context.Context, int64) (*entities.Character, error) {
	panic("store must not be called")
}

func (panicStore) GetAlts(context.Context, int64) ([]entities.Character, error) {
	panic("store must not be called")
}
