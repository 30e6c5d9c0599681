package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// PostgresStore keeps namespace payloads in a single key/value table,
// preserving the replace-all write contract of the store interface.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore returns a store backed by the given database and creates
// the namespaces table when absent.
func NewPostgresStore(db *sqlx.DB) (*PostgresStore, error) {
	const schema = `CREATE TABLE IF NOT EXISTS namespaces (
		key TEXT PRIMARY KEY,
		payload JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("ensure namespaces table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Load returns the stored payload for the namespace, reporting absence
// instead of an error when the key has never been written.
func (s *PostgresStore) Load(ctx context.Context, namespace string) ([]byte, bool, error) {
	const query = `SELECT payload FROM namespaces WHERE key = $1`
	var payload []byte
	if err := s.db.GetContext(ctx, &payload, query, namespace); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load namespace %s: %w", namespace, err)
	}
	return payload, true, nil
}

// Save upserts the namespace payload in one statement.
func (s *PostgresStore) Save(ctx context.Context, namespace string, payload []byte) error {
	const query = `INSERT INTO namespaces (key, payload, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	if _, err := s.db.ExecContext(ctx, query, namespace, payload, time.Now().UTC()); err != nil {
		return fmt.Errorf("save namespace %s: %w", namespace, err)
	}
	return nil
}
