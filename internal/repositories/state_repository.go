package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// StateRepository is the persistence adapter: named JSON-serializable
// values in an opaque key-value store. Each key is independently readable
// and writable; writers own the in-memory collection and mirror it here
// after every mutation.
type StateRepository interface {
	// Get decodes the value stored under key into dest. Returns ErrNotFound
	// when the key is absent.
	Get(key string, dest interface{}) error
	// Set encodes value as JSON and upserts it under key.
	Set(key string, value interface{}) error
	// Remove deletes the key. Removing an absent key is a no-op.
	Remove(key string) error
}

type postgresStateRepository struct {
	db *sql.DB
}

// NewPostgresStateRepository creates a StateRepository backed by the
// app_state table (one row per key, JSONB value).
func NewPostgresStateRepository(db *sql.DB) StateRepository {
	return &postgresStateRepository{db: db}
}

func (r *postgresStateRepository) Get(key string, dest interface{}) error {
	var raw []byte
	query := `SELECT value FROM app_state WHERE key = $1`
	err := r.db.QueryRow(query, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: reading state key %q: %v", ErrPersistence, key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: decoding state key %q: %v", ErrPersistence, key, err)
	}
	return nil
}

func (r *postgresStateRepository) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encoding state key %q: %v", ErrPersistence, key, err)
	}
	query := `INSERT INTO app_state (key, value, updated_at)
	          VALUES ($1, $2, NOW())
	          ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	if _, err := r.db.Exec(query, key, raw); err != nil {
		return fmt.Errorf("%w: writing state key %q: %v", ErrPersistence, key, err)
	}
	return nil
}

func (r *postgresStateRepository) Remove(key string) error {
	query := `DELETE FROM app_state WHERE key = $1`
	if _, err := r.db.Exec(query, key); err != nil {
		return fmt.Errorf("%w: removing state key %q: %v", ErrPersistence, key, err)
	}
	return nil
}
