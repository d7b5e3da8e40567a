// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// TripStore is the device's single-value trip handle store, backed by a
// local sqlite file. It implements session.Store.
type TripStore struct {
	db *sql.DB
}

// Open opens (or creates) the store at path and ensures the schema exists.
func Open(path string) (*TripStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open device store: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping device store: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &TripStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *TripStore) Close() error {
	return s.db.Close()
}

// Get returns the saved trip id, or "" when no trip is open on this device.
func (s *TripStore) Get(ctx context.Context) (string, error) {
	var tripID string
	err := s.db.QueryRowContext(ctx, `SELECT trip_id FROM trip_session WHERE id = 1`).Scan(&tripID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read trip handle: %w", err)
	}
	return tripID, nil
}

// Save persists tripID as the device's current trip, replacing any
// previous value. The table holds at most one row.
func (s *TripStore) Save(ctx context.Context, tripID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO trip_session (id, trip_id, saved_at)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET trip_id = excluded.trip_id, saved_at = excluded.saved_at
	`, tripID, time.Now().UTC())

	if err != nil {
		return fmt.Errorf("save trip handle: %w", err)
	}
	return nil
}

// createSchema creates the store's tables. Safe to call multiple times -
// uses IF NOT EXISTS.
func createSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Single-row current trip handle
CREATE TABLE IF NOT EXISTS trip_session (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    trip_id TEXT NOT NULL,
    saved_at TIMESTAMP NOT NULL
);
`
