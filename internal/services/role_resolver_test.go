package services

import (
	"context"
	"testing"

	"fleet-waitlist/backend/internal/access"
	"fleet-waitlist/backend/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleResolver_Resolve(t *testing.T) {
	expander := mapExpander{
		"Both":    {access.KeyTrainee, access.KeyHQFC},
		"HQ":      {access.KeyHQFC},
		"Trainee": {access.KeyTrainee},
		"Plain":   {"fleet-view"},
	}
	resolver := NewRoleResolver(rolesByID(map[int64]string{
		1: "Both",
		2: "HQ",
		3: "Trainee",
		4: "Plain",
	}), expander)

	cases := []struct {
		name string
		id   int64
		want *string
	}{
		{name: "hq-fc wins over trainee", id: 1, want: strPtr(RoleLabelHQFC)},
		{name: "hq-fc", id: 2, want: strPtr(RoleLabelHQFC)},
		{name: "trainee", id: 3, want: strPtr(RoleLabelTrainee)},
		{name: "role without rank tag", id: 4, want: nil},
		{name: "no admin record", id: 5, want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolver.Resolve(context.Background(), tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRoleResolver_UnknownRole(t *testing.T) {
	resolver := NewRoleResolver(rolesByID(map[int64]string{1: "Janitor"}), mapExpander{})

	_, err := resolver.Resolve(context.Background(), 1)
	assert.Equal(t, constants.ErrCodeDataIntegrity, ErrorCode(err))
}

func TestRoleResolver_StoreFailure(t *testing.T) {
	store := &mockAdminStore{getRoleFunc: func(context.Context, int64) (*string, error) {
		return nil, errStoreDown
	}}
	resolver := NewRoleResolver(store, mapExpander{})

	_, err := resolver.Resolve(context.Background(), 1)
	assert.Equal(t, constants.ErrCodeStoreFailure, ErrorCode(err))
	assert.ErrorIs(t, err, errStoreDown)
}

func TestRoleResolver_EmbeddedRoles(t *testing.T) {
	expander, err := access.New()
	require.NoError(t, err)
	resolver := NewRoleResolver(rolesByID(map[int64]string{1: "Council", 2: "Trainee", 3: "FC"}), expander)

	council, err := resolver.Resolve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, strPtr(RoleLabelHQFC), council)

	trainee, err := resolver.Resolve(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, strPtr(RoleLabelTrainee), trainee)

	fc, err := resolver.Resolve(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, fc)
}

func strPtr(s string) *string { return &s }
