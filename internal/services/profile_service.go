package services

import (
	"context"
	"fmt"
	"time"

	"fleet-waitlist/backend/internal/access"
	"fleet-waitlist/backend/internal/auth"
	"fleet-waitlist/backend/internal/constants"
	"fleet-waitlist/backend/internal/logging"
	"fleet-waitlist/backend/internal/metrics"
	"fleet-waitlist/backend/internal/models/dtos/responses"
	"fleet-waitlist/backend/internal/models/entities"

	"golang.org/x/sync/errgroup"
)

type BadgeStore interface {
	GetBadgeNames(ctx context.Context, characterID int64) ([]string, error)
}

type FleetActivityStore interface {
	GetSessions(ctx context.Context, characterID int64) ([]entities.FleetSession, error)
}

type ProfileService struct {
	groups      *CharacterGroupResolver
	roles       *RoleResolver
	badges      BadgeStore
	activity    FleetActivityStore
	types       TypeNames
	concurrency int
	metrics     *metrics.MetricsRegistry
}

func NewProfileService(
	characters CharacterStore,
	admins AdminStore,
	badges BadgeStore,
	activity FleetActivityStore,
	types TypeNames,
	roles RoleExpander,
	concurrency int,
	metricsReg *metrics.MetricsRegistry,
) *ProfileService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &ProfileService{
		groups:      NewCharacterGroupResolver(characters),
		roles:       NewRoleResolver(admins, roles),
		badges:      badges,
		activity:    activity,
		types:       types,
		concurrency: concurrency,
		metrics:     metricsReg,
	}
}

// CheckAccess allows callers to view their own profile. Everyone else needs HQ-FC.
func CheckAccess(caller auth.Account, characterID int64) error {
	if caller.ID() == characterID {
		return nil
	}
	if err := caller.RequireAccess(access.KeyHQFC); err != nil {
		return errForbidden(err)
	}
	return nil
}

// characterResult is the per-character work product. Hull times are merged into the account
// total only after every fetch has finished.
type characterResult struct {
	details   responses.CharacterDetails
	hullTimes HullTimes
}

// GetProfile builds the profile of characterID and its alts as seen by caller.
func (s *ProfileService) GetProfile(ctx context.Context, caller auth.Account, characterID int64) (*responses.ProfileData, error) {
	start := time.Now()
	profile, err := s.getProfile(ctx, caller, characterID)

	outcome := "ok"
	if err != nil {
		outcome = ErrorCode(err)
	}
	if s.metrics != nil {
		s.metrics.ProfilesServedTotal.WithLabelValues(outcome).Inc()
		s.metrics.ProfileBuildDuration.Observe(time.Since(start).Seconds())
	}
	return profile, err
}

func (s *ProfileService) getProfile(ctx context.Context, caller auth.Account, characterID int64) (*responses.ProfileData, error) {
	if err := CheckAccess(caller, characterID); err != nil {
		return nil, err
	}

	group, err := s.groups.Resolve(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.ProfileGroupSize.Observe(float64(len(group)))
	}
	logging.Debug("Resolved character group",
		"character_id", characterID,
		"caller_id", caller.ID(),
		"group_size", len(group),
	)

	results := make([]characterResult, len(group))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, c := range group {
		g.Go(func() error {
			r, err := s.buildCharacter(gctx, c)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var main *responses.CharacterDetails
	alts := []responses.CharacterDetails{}
	accountTimes := make(HullTimes)
	for i := range results {
		accountTimes.Merge(results[i].hullTimes)
		if results[i].details.ID == characterID {
			main = &results[i].details
		} else {
			alts = append(alts, results[i].details)
		}
	}
	if main == nil {
		return nil, errInternal(fmt.Errorf("character %d missing from its own group", characterID))
	}

	total, err := accountTimes.Ranked(s.types)
	if err != nil {
		return nil, errDataIntegrity(err)
	}

	return &responses.ProfileData{
		Main:           *main,
		Alts:           alts,
		TotalFleetTime: total,
	}, nil
}

func (s *ProfileService) buildCharacter(ctx context.Context, c entities.Character) (characterResult, error) {
	role, err := s.roles.Resolve(ctx, c.ID)
	if err != nil {
		return characterResult{}, err
	}

	badges, err := s.badges.GetBadgeNames(ctx, c.ID)
	if err != nil {
		return characterResult{}, errStoreFailure(err)
	}
	if badges == nil {
		badges = []string{}
	}

	sessions, err := s.activity.GetSessions(ctx, c.ID)
	if err != nil {
		return characterResult{}, errStoreFailure(err)
	}
	hullTimes, err := AggregateFleetTime(sessions, nil)
	if err != nil {
		return characterResult{}, errDataIntegrity(fmt.Errorf("character %d: %w", c.ID, err))
	}
	fleetTime, err := hullTimes.Ranked(s.types)
	if err != nil {
		return characterResult{}, errDataIntegrity(err)
	}

	return characterResult{
		details: responses.CharacterDetails{
			ID:        c.ID,
			Name:      c.Name,
			Role:      role,
			Badges:    badges,
			FleetTime: fleetTime,
		},
		hullTimes: hullTimes,
	}, nil
}

// IsClientError reports whether err is the caller's fault rather than a server fault.
func IsClientError(err error) bool {
	switch ErrorCode(err) {
	case constants.ErrCodeForbidden, constants.ErrCodeCharacterNotFound:
		return true
	}
	return false
}
