package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/example/ippo/internal/ports/secondary"
)

// PreferencesRepository implements secondary.PreferencesRepository with SQLite.
type PreferencesRepository struct {
	db *sql.DB
}

// NewPreferencesRepository creates a new SQLite preferences repository.
func NewPreferencesRepository(db *sql.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// Get returns the stored value for key and whether it was present.
func (r *PreferencesRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, secondary.NewStorageError("get preference", err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (r *PreferencesRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return secondary.NewStorageError("set preference", err)
	}
	return nil
}

// Ensure PreferencesRepository implements the interface
var _ secondary.PreferencesRepository = (*PreferencesRepository)(nil)
