package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-calories/internal/core/domain"
)

var _ domain.EntryRepository = (*SQLEntryRepository)(nil)

// SQLEntryRepository stores entries in postgres or sqlite; queries are written
// with ? placeholders and rebound for the driver in use.
type SQLEntryRepository struct {
	db *sqlx.DB
}

func NewSQLEntryRepository(db *sqlx.DB) *SQLEntryRepository {
	return &SQLEntryRepository{db: db}
}

const entryColumns = `id, date, kind, description, calories_in, calories_out,
	protein, carbs, fat, vitamin_note, explanation, created_at`

func (r *SQLEntryRepository) Create(ctx context.Context, entry *domain.LogEntry) error {
	query := `
		INSERT INTO log_entries (
			id, date, kind, description,
			calories_in, calories_out, protein, carbs, fat,
			vitamin_note, explanation, created_at
		) VALUES (
			:id, :date, :kind, :description,
			:calories_in, :calories_out, :protein, :carbs, :fat,
			:vitamin_note, :explanation, :created_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert log entry: %w", err)
	}
	return nil
}

func (r *SQLEntryRepository) List(ctx context.Context) ([]domain.LogEntry, error) {
	entries := []domain.LogEntry{}

	query := `SELECT ` + entryColumns + ` FROM log_entries ORDER BY date ASC, created_at ASC, id ASC`

	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	return entries, nil
}
