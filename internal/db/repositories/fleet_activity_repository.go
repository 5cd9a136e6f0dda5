package repositories

import (
	"context"
	"fmt"
	"time"

	"fleet-waitlist/backend/internal/constants"
	"fleet-waitlist/backend/internal/metrics"
	"fleet-waitlist/backend/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type FleetActivityRepository struct {
	db      *sqlx.DB
	metrics *metrics.MetricsRegistry
}

func NewFleetActivityRepository(db *sqlx.DB, metricsReg *metrics.MetricsRegistry) *FleetActivityRepository {
	return &FleetActivityRepository{db: db, metrics: metricsReg}
}

// GetSessions returns the fleet sessions of a character, newest first.
func (r *FleetActivityRepository) GetSessions(ctx context.Context, characterID int64) ([]entities.FleetSession, error) {
	start := time.Now()
	sessions := []entities.FleetSession{}

	err := r.db.SelectContext(ctx, &sessions, r.db.Rebind(constants.GetFleetActivityByCharacter), characterID)
	r.metrics.ObserveQuery("fleet_activity", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fleet activity of character %d: %w", characterID, err)
	}

	return sessions, nil
}
