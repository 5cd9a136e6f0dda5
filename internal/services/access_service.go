package services

import (
	"context"
	"fmt"
	"time"

	"fleet-waitlist/backend/internal/common"
	"fleet-waitlist/backend/internal/constants"
	"fleet-waitlist/backend/internal/metrics"

	"github.com/ErikKalkoken/go-set"
)

// AccessService loads the capability keys of an authenticated caller. The caller's stored role
// is cached for ttl; an empty string marks a character without an admin record.
type AccessService struct {
	admins  AdminStore
	roles   RoleExpander
	cache   common.CacheInterface
	ttl     time.Duration
	metrics *metrics.MetricsRegistry
}

func NewAccessService(admins AdminStore, roles RoleExpander, cache common.CacheInterface, ttl time.Duration, metricsReg *metrics.MetricsRegistry) *AccessService {
	return &AccessService{
		admins:  admins,
		roles:   roles,
		cache:   cache,
		ttl:     ttl,
		metrics: metricsReg,
	}
}

func (s *AccessService) LoadAccessKeys(ctx context.Context, characterID int64) (set.Set[string], error) {
	role, err := s.cachedRole(ctx, characterID)
	if err != nil {
		return set.Set[string]{}, err
	}
	if role == "" {
		return set.Of[string](), nil
	}

	keys, err := s.roles.Expand(role)
	if err != nil {
		return set.Set[string]{}, errDataIntegrity(err)
	}
	return keys, nil
}

func (s *AccessService) cachedRole(ctx context.Context, characterID int64) (string, error) {
	key := fmt.Sprintf("%s%d", constants.CachePrefixAdminRole, characterID)

	loaded := false
	val, err := s.cache.GetOrSet(key, s.ttl, func() (any, error) {
		loaded = true
		stored, err := s.admins.GetRole(ctx, characterID)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			return "", nil
		}
		return *stored, nil
	})
	s.metrics.ObserveCache(string(constants.CachePrefixAdminRole), !loaded)
	if err != nil {
		return "", errStoreFailure(err)
	}

	role, ok := val.(string)
	if !ok {
		return "", errInternal(fmt.Errorf("cached role for character %d has type %T", characterID, val))
	}
	return role, nil
}
