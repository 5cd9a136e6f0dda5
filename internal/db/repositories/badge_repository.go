package repositories

import (
	"context"
	"fmt"
	"time"

	"fleet-waitlist/backend/internal/metrics"
	models "fleet-waitlist/backend/internal/models/gorm"

	"gorm.io/gorm"
)

// BadgeRepository reads badge assignments with GORM
type BadgeRepository struct {
	db      *gorm.DB
	metrics *metrics.MetricsRegistry
}

func NewBadgeRepository(db *gorm.DB, metricsReg *metrics.MetricsRegistry) *BadgeRepository {
	return &BadgeRepository{db: db, metrics: metricsReg}
}

// GetBadgeNames returns the badge names assigned to a character in assignment order.
func (r *BadgeRepository) GetBadgeNames(ctx context.Context, characterID int64) ([]string, error) {
	start := time.Now()
	names := []string{}

	err := r.db.WithContext(ctx).
		Model(&models.BadgeAssignment{}).
		Joins("JOIN badge ON badge.id = badge_assignment.badge_id").
		Where("badge_assignment.character_id = ?", characterID).
		Order("badge_assignment.id ASC").
		Pluck("badge.name", &names).Error

	r.metrics.ObserveQuery("badge_names", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch badges of character %d: %w", characterID, err)
	}

	return names, nil
}
