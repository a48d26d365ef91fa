package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PostgresStore keeps each collection as a JSONB document in a single
// key-value table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(ctx context.Context, db *sql.DB) (*PostgresStore, error) {
	query := `
		CREATE TABLE IF NOT EXISTS collections (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	if _, err := db.ExecContext(ctx, query); err != nil {
		return nil, fmt.Errorf("creating collections table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Load(ctx context.Context, key string, v any) (bool, error) {
	var data []byte

	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM collections WHERE key = $1`, key,
	).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}

		return false, fmt.Errorf("loading %s: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}

	return true, nil
}

func (s *PostgresStore) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	query := `
		INSERT INTO collections (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}

	return nil
}
