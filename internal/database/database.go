package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq" // PostgreSQL driver
)

var DB *sql.DB

// InitDB initializes the database connection and bootstraps the state
// table the persistence adapter writes through.
func InitDB(host, port, user, password, dbname, sslmode string) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("Error opening database: %q", err)
	}

	if err = DB.Ping(); err != nil {
		log.Fatalf("Error connecting to database: %q", err)
	}

	if err = bootstrapStateTable(DB); err != nil {
		log.Fatalf("Error bootstrapping state table: %q", err)
	}
}

// bootstrapStateTable creates the key-value table all application state
// persists through: one row per named JSON value.
func bootstrapStateTable(db *sql.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS app_state (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating app_state table: %w", err)
	}
	return nil
}

// GetDB returns the database connection pool
func GetDB() *sql.DB {
	return DB
}
