package api

import (
	"time"

	"fleet-waitlist/backend/internal/access"
	"fleet-waitlist/backend/internal/common"
	"fleet-waitlist/backend/internal/config"
	"fleet-waitlist/backend/internal/db/repositories"
	"fleet-waitlist/backend/internal/metrics"
	"fleet-waitlist/backend/internal/services"
	"fleet-waitlist/backend/internal/typedb"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type Repositories struct {
	Characters    *repositories.CharacterRepository
	FleetActivity *repositories.FleetActivityRepository
	Admins        *repositories.AdminRepository
	Badges        *repositories.BadgeRepository
}

type Services struct {
	Cache   common.CacheInterface
	Access  *services.AccessService
	Profile *services.ProfileService
}

type Dependencies struct {
	DB       *sqlx.DB
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
	UpSince  time.Time
}

// InitDependencies wires repositories and services on top of an open database pool.
func InitDependencies(
	cfg *config.Config,
	sqlDB *sqlx.DB,
	gormDB *gorm.DB,
	cache common.CacheInterface,
	types *typedb.TypeDB,
	roles *access.Expander,
	metricsReg *metrics.MetricsRegistry,
) *Dependencies {

	repos := &Repositories{
		Characters:    repositories.NewCharacterRepository(sqlDB, metricsReg),
		FleetActivity: repositories.NewFleetActivityRepository(sqlDB, metricsReg),
		Admins:        repositories.NewAdminRepository(gormDB, metricsReg),
		Badges:        repositories.NewBadgeRepository(gormDB, metricsReg),
	}

	svcs := &Services{
		Cache:  cache,
		Access: services.NewAccessService(repos.Admins, roles, cache, cfg.Auth.AccessCacheTTL, metricsReg),
		Profile: services.NewProfileService(
			repos.Characters,
			repos.Admins,
			repos.Badges,
			repos.FleetActivity,
			types,
			roles,
			cfg.Profile.FetchConcurrency,
			metricsReg,
		),
	}

	return &Dependencies{
		DB:       sqlDB,
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
		UpSince:  time.Now(),
	}
}
