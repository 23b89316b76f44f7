package repositories

import (
	"context"
	"fmt"

	"database/sql"

	"github.com/google/uuid"

	"github.com/evn/budget_backendl/internal/models"
)

// PostgresEntryRepository держит доходы и расходы в одной таблице entries
// с колонкой kind (в документной реализации это две коллекции).
type PostgresEntryRepository struct {
	db *sql.DB
}

func NewPostgresEntryRepository(db *sql.DB) *PostgresEntryRepository {
	return &PostgresEntryRepository{db: db}
}

func (r *PostgresEntryRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	query := `INSERT INTO entries (id, kind, user_id, amount, currency)
		 VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, string(entry.Kind), entry.UserID, entry.Amount, string(entry.Currency))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entry, nil
}

func (r *PostgresEntryRepository) ListByUser(ctx context.Context, kind models.EntryKind, userID int) ([]models.Entry, error) {
	query := `SELECT id, kind, user_id, amount, currency FROM entries
		 WHERE kind = $1 AND user_id = $2`

	rows, err := r.db.QueryContext(ctx, query, string(kind), userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var entry models.Entry
		if err := rows.Scan(&entry.ID, &entry.Kind, &entry.UserID, &entry.Amount, &entry.Currency); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
