package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
)

var _ domain.PresetRepository = (*SQLPresetRepository)(nil)

type SQLPresetRepository struct {
	db *sqlx.DB
}

func NewSQLPresetRepository(db *sqlx.DB) *SQLPresetRepository {
	return &SQLPresetRepository{db: db}
}

const presetColumns = `id, name, default_portion, calories_in, protein, carbs, fat,
	vitamin_note, created_at, updated_at`

func (r *SQLPresetRepository) Create(ctx context.Context, p *domain.FoodPreset) error {
	query := `
		INSERT INTO food_presets (
			id, name, default_portion, calories_in, protein, carbs, fat,
			vitamin_note, created_at, updated_at
		) VALUES (
			:id, :name, :default_portion, :calories_in, :protein, :carbs, :fat,
			:vitamin_note, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert food preset: %w", err)
	}
	return nil
}

func (r *SQLPresetRepository) GetByID(ctx context.Context, id string) (*domain.FoodPreset, error) {
	var p domain.FoodPreset
	query := r.db.Rebind(`SELECT ` + presetColumns + ` FROM food_presets WHERE id = ?`)

	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPresetNotFound
		}
		return nil, fmt.Errorf("get food preset: %w", err)
	}
	return &p, nil
}

func (r *SQLPresetRepository) List(ctx context.Context) ([]domain.FoodPreset, error) {
	presets := []domain.FoodPreset{}

	query := `SELECT ` + presetColumns + ` FROM food_presets ORDER BY name ASC, id ASC`

	if err := r.db.SelectContext(ctx, &presets, query); err != nil {
		return nil, fmt.Errorf("list food presets: %w", err)
	}
	return presets, nil
}

func (r *SQLPresetRepository) Update(ctx context.Context, p *domain.FoodPreset) error {
	query := `
		UPDATE food_presets
		SET name = :name,
		    default_portion = :default_portion,
		    calories_in = :calories_in,
		    protein = :protein,
		    carbs = :carbs,
		    fat = :fat,
		    vitamin_note = :vitamin_note,
		    updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("update food preset: %w", err)
	}
	return requireRow(result, domain.ErrPresetNotFound)
}

func (r *SQLPresetRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM food_presets WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete food preset: %w", err)
	}
	return requireRow(result, domain.ErrPresetNotFound)
}

func requireRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
