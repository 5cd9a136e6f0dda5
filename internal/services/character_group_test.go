package services

import (
	"context"
	"testing"

	"fleet-waitlist/backend/internal/constants"
	"fleet-waitlist/backend/internal/db/repositories"
	"fleet-waitlist/backend/internal/models/entities"
	"fleet-waitlist/backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterGroupResolver_Resolve(t *testing.T) {
	gormDB, db := testutil.NewTestDB(t)
	testutil.NewSeeder(t, gormDB).
		Character(10, "Main").
		Character(11, "Yankee").
		Character(12, "Alpha").
		Character(13, "Mike").
		Alt(10, 11).
		Alt(12, 10).
		Alt(10, 13).
		Alt(13, 10).
		Alt(10, 10)
	resolver := NewCharacterGroupResolver(repositories.NewCharacterRepository(db, nil))

	group, err := resolver.Resolve(context.Background(), 10)
	require.NoError(t, err)

	ids := make([]int64, 0, len(group))
	for _, c := range group {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{10, 12, 13, 11}, ids)
}

func TestCharacterGroupResolver_FromAltSide(t *testing.T) {
	gormDB, db := testutil.NewTestDB(t)
	testutil.NewSeeder(t, gormDB).
		Character(10, "Main").
		Character(11, "Alt").
		Character(12, "Other alt").
		Alt(10, 11).
		Alt(10, 12)
	resolver := NewCharacterGroupResolver(repositories.NewCharacterRepository(db, nil))

	// One hop only: 12 is linked to 10, not to 11.
	group, err := resolver.Resolve(context.Background(), 11)
	require.NoError(t, err)
	require.Len(t, group, 2)
	assert.Equal(t, int64(11), group[0].ID)
	assert.Equal(t, int64(10), group[1].ID)
}

func TestCharacterGroupResolver_NoAlts(t *testing.T) {
	gormDB, db := testutil.NewTestDB(t)
	testutil.NewSeeder(t, gormDB).Character(1, "Solo")
	resolver := NewCharacterGroupResolver(repositories.NewCharacterRepository(db, nil))

	group, err := resolver.Resolve(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, group, 1)
	assert.Equal(t, "Solo", group[0].Name)
}

func TestCharacterGroupResolver_NotFound(t *testing.T) {
	_, db := testutil.NewTestDB(t)
	resolver := NewCharacterGroupResolver(repositories.NewCharacterRepository(db, nil))

	_, err := resolver.Resolve(context.Background(), 404)
	assert.Equal(t, constants.ErrCodeCharacterNotFound, ErrorCode(err))
	assert.Contains(t, err.Error(), "404")
}

func TestCharacterGroupResolver_StoreFailure(t *testing.T) {
	_, db := testutil.NewTestDB(t)
	require.NoError(t, db.Close())
	resolver := NewCharacterGroupResolver(repositories.NewCharacterRepository(db, nil))

	_, err := resolver.Resolve(context.Background(), 1)
	assert.Equal(t, constants.ErrCodeStoreFailure, ErrorCode(err))
}

type stubCharacterStore struct {
	target *entities.Character
	alts   []entities.Character
}

func (s stubCharacterStore) GetByID(context.Context, int64) (*entities.Character, error) {
	return s.target, nil
}

func (s stubCharacterStore) GetAlts(context.Context, int64) ([]entities.Character, error) {
	return s.alts, nil
}

func TestCharacterGroupResolver_SortsAltsRegardlessOfStoreOrder(t *testing.T) {
	store := stubCharacterStore{
		target: &entities.Character{ID: 1, Name: "Main"},
		alts: []entities.Character{
			{ID: 3, Name: "Zulu"},
			{ID: 7, Name: "alpha"},
			{ID: 5, Name: "Echo"},
			{ID: 2, Name: "Alpha"},
			{ID: 4, Name: "Echo"},
			{ID: 3, Name: "Zulu"},
		},
	}

	group, err := NewCharacterGroupResolver(store).Resolve(context.Background(), 1)
	require.NoError(t, err)

	ids := make([]int64, 0, len(group))
	for _, c := range group {
		ids = append(ids, c.ID)
	}
	// Byte-wise name order puts upper case before lower case; equal names fall back to id.
	assert.Equal(t, []int64{1, 2, 4, 5, 3, 7}, ids)
}
