package services

import (
	"context"

	"fleet-waitlist/backend/internal/access"

	"github.com/ErikKalkoken/go-set"
)

// Rank labels shown on a profile.
const (
	RoleLabelHQFC    = "HQ-FC"
	RoleLabelTrainee = "TRAINEE"
)

type AdminStore interface {
	GetRole(ctx context.Context, characterID int64) (*string, error)
}

type RoleExpander interface {
	Expand(role string) (set.Set[string], error)
}

// RoleResolver maps a character's admin role to the rank label shown on its profile.
type RoleResolver struct {
	admins AdminStore
	roles  RoleExpander
}

func NewRoleResolver(admins AdminStore, roles RoleExpander) *RoleResolver {
	return &RoleResolver{admins: admins, roles: roles}
}

// Resolve returns nil for characters without an admin record or without a rank tag.
func (r *RoleResolver) Resolve(ctx context.Context, characterID int64) (*string, error) {
	role, err := r.admins.GetRole(ctx, characterID)
	if err != nil {
		return nil, errStoreFailure(err)
	}
	if role == nil {
		return nil, nil
	}

	keys, err := r.roles.Expand(*role)
	if err != nil {
		return nil, errDataIntegrity(err)
	}
	return rankLabel(keys), nil
}

// rankLabel picks the label for a capability set. HQ-FC wins over TRAINEE.
func rankLabel(keys set.Set[string]) *string {
	var label string
	switch {
	case keys.Contains(access.KeyHQFC):
		label = RoleLabelHQFC
	case keys.Contains(access.KeyTrainee):
		label = RoleLabelTrainee
	default:
		return nil
	}
	return &label
}
