package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// MetaKeySeasonName labels the roster-wide season displayed in the UI.
const MetaKeySeasonName = "season_name"

// MetaRepository is a small key-value store for roster-wide settings.
type MetaRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewMetaRepository(sqlDB *sql.DB, logger zerolog.Logger) *MetaRepository {
	return &MetaRepository{db: sqlDB, logger: logger}
}

// Get returns the stored value, or "" when the key was never set.
func (r *MetaRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get meta %q: %w", key, err)
	}
	return value, nil
}

func (r *MetaRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to set meta %q: %w", key, err)
	}
	return nil
}
