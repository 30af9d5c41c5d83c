package config

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS devices (
		id BIGSERIAL PRIMARY KEY,
		device_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL DEFAULT '',
		last_seen TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS locations (
		id BIGSERIAL PRIMARY KEY,
		device_id TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		speed_kmh DOUBLE PRECISION,
		timestamp TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_locations_device_ts ON locations (device_id, timestamp DESC)`,
	`CREATE TABLE IF NOT EXISTS trips (
		id BIGSERIAL PRIMARY KEY,
		device_id TEXT NOT NULL,
		start_time TIMESTAMPTZ NOT NULL,
		end_time TIMESTAMPTZ NOT NULL,
		start_lat DOUBLE PRECISION NOT NULL,
		start_lon DOUBLE PRECISION NOT NULL,
		end_lat DOUBLE PRECISION NOT NULL,
		end_lon DOUBLE PRECISION NOT NULL,
		distance_m DOUBLE PRECISION NOT NULL,
		duration_s DOUBLE PRECISION NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_trips_start_time ON trips (start_time DESC)`,
}

func NewPostgres(cfg *Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the tables if they do not exist yet. Safe to run
// on every startup.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
