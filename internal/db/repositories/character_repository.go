package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fleet-waitlist/backend/internal/constants"
	"fleet-waitlist/backend/internal/metrics"
	"fleet-waitlist/backend/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type CharacterRepository struct {
	db      *sqlx.DB
	metrics *metrics.MetricsRegistry
}

func NewCharacterRepository(db *sqlx.DB, metricsReg *metrics.MetricsRegistry) *CharacterRepository {
	return &CharacterRepository{db: db, metrics: metricsReg}
}

// GetByID returns nil without error when the character does not exist.
func (r *CharacterRepository) GetByID(ctx context.Context, id int64) (*entities.Character, error) {
	start := time.Now()
	var character entities.Character

	err := r.db.QueryRowxContext(ctx, r.db.Rebind(constants.GetCharacterByID), id).StructScan(&character)
	if errors.Is(err, sql.ErrNoRows) {
		r.metrics.ObserveQuery("character_by_id", start, nil)
		return nil, nil
	}
	r.metrics.ObserveQuery("character_by_id", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch character %d: %w", id, err)
	}

	return &character, nil
}

// GetAlts returns every character directly linked to id, ordered by name. The target itself is
// never included. Rows linked more than once are returned once per link.
func (r *CharacterRepository) GetAlts(ctx context.Context, id int64) ([]entities.Character, error) {
	start := time.Now()
	alts := []entities.Character{}

	err := r.db.SelectContext(ctx, &alts, r.db.Rebind(constants.GetAltCharacters), id, id, id)
	r.metrics.ObserveQuery("alt_characters", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch alts of character %d: %w", id, err)
	}

	return alts, nil
}
