package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
)

var _ domain.ProfileRepository = (*SQLProfileRepository)(nil)

type SQLProfileRepository struct {
	db *sqlx.DB
}

func NewSQLProfileRepository(db *sqlx.DB) *SQLProfileRepository {
	return &SQLProfileRepository{db: db}
}

func (r *SQLProfileRepository) Get(ctx context.Context) (*domain.Profile, error) {
	profile, err := r.get(ctx)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	insert := r.db.Rebind(`
		INSERT INTO profile (id, calorie_budget, protein_target, updated_at)
		VALUES (1, 0, 0, ?)
		ON CONFLICT (id) DO NOTHING`)

	if _, err := r.db.ExecContext(ctx, insert, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("create default profile: %w", err)
	}

	profile, err = r.get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

func (r *SQLProfileRepository) get(ctx context.Context) (*domain.Profile, error) {
	var p domain.Profile
	query := `SELECT calorie_budget, protein_target, updated_at FROM profile WHERE id = 1`
	if err := r.db.GetContext(ctx, &p, query); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLProfileRepository) Save(ctx context.Context, p *domain.Profile) error {
	query := r.db.Rebind(`
		INSERT INTO profile (id, calorie_budget, protein_target, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET calorie_budget = excluded.calorie_budget,
		    protein_target = excluded.protein_target,
		    updated_at = excluded.updated_at`)

	if _, err := r.db.ExecContext(ctx, query, p.CalorieBudget, p.ProteinTarget, p.UpdatedAt); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
