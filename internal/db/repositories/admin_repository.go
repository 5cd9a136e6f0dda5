package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleet-waitlist/backend/internal/metrics"
	models "fleet-waitlist/backend/internal/models/gorm"

	"gorm.io/gorm"
)

// AdminRepository reads admin role assignments with GORM
type AdminRepository struct {
	db      *gorm.DB
	metrics *metrics.MetricsRegistry
}

func NewAdminRepository(db *gorm.DB, metricsReg *metrics.MetricsRegistry) *AdminRepository {
	return &AdminRepository{db: db, metrics: metricsReg}
}

// GetRole returns the stored role of a character, or nil when it has no admin record.
func (r *AdminRepository) GetRole(ctx context.Context, characterID int64) (*string, error) {
	start := time.Now()
	var admin models.Admin

	err := r.db.WithContext(ctx).
		Where("character_id = ?", characterID).
		Take(&admin).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.metrics.ObserveQuery("admin_role", start, nil)
		return nil, nil
	}
	r.metrics.ObserveQuery("admin_role", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admin role of character %d: %w", characterID, err)
	}

	return &admin.Role, nil
}
