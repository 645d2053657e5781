package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
)

var _ domain.WeightRepository = (*SQLWeightRepository)(nil)

type SQLWeightRepository struct {
	db *sqlx.DB
}

func NewSQLWeightRepository(db *sqlx.DB) *SQLWeightRepository {
	return &SQLWeightRepository{db: db}
}

// Upsert relies on the UNIQUE(date) constraint: a second sample for a date
// updates the existing row in the same statement, so concurrent writers can
// never leave two rows for one date. The stored row is read back into s.
func (r *SQLWeightRepository) Upsert(ctx context.Context, s *domain.WeightSample) error {
	upsert := r.db.Rebind(`
		INSERT INTO weight_samples (id, date, weight, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (date) DO UPDATE
		SET weight = excluded.weight,
		    updated_at = excluded.updated_at`)

	if _, err := r.db.ExecContext(ctx, upsert, s.ID, s.Date, s.Weight, s.CreatedAt, s.UpdatedAt); err != nil {
		return fmt.Errorf("upsert weight sample: %w", err)
	}

	query := r.db.Rebind(`SELECT id, date, weight, created_at, updated_at FROM weight_samples WHERE date = ?`)
	if err := r.db.GetContext(ctx, s, query, s.Date); err != nil {
		return fmt.Errorf("read weight sample: %w", err)
	}
	return nil
}

func (r *SQLWeightRepository) List(ctx context.Context) ([]domain.WeightSample, error) {
	samples := []domain.WeightSample{}

	query := `SELECT id, date, weight, created_at, updated_at FROM weight_samples ORDER BY date ASC`

	if err := r.db.SelectContext(ctx, &samples, query); err != nil {
		return nil, fmt.Errorf("list weight samples: %w", err)
	}
	return samples, nil
}
