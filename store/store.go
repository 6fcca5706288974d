// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store persists palette configurations and their generated data
// in a SQLite database, keyed by palette id. The stored data of a palette
// is supplied back to the builder on the next edit for id correlation.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/palette/base/errors"
	"cogentcore.org/palette/palette"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store errors.
var (
	ErrNotFound      = errors.New("palette not found")
	ErrInvalidRecord = errors.New("invalid palette record")
)

const schema = `
CREATE TABLE IF NOT EXISTS palettes (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	config_json TEXT NOT NULL,
	data_json   TEXT,
	updated_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS palettes_updated_at ON palettes (updated_at);
`

// timeFormat is a fixed width time format, which sorts as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Record is a stored palette.
type Record struct {
	ID        string
	Name      string
	Config    *palette.Config
	Data      *palette.Data
	UpdatedAt time.Time
}

// Summary is the listing entry of a stored palette.
type Summary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store is a palette store backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens the store in the SQLite database file at the given path,
// creating it and its schema if needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}
	return initStore(db)
}

// OpenInMemory opens a store in a new in-memory database,
// which lasts until the store is closed.
func OpenInMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	return initStore(db)
}

func initStore(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts or replaces the record. A record without an id gets a new
// one, and a record without a name takes the name of its configuration.
func (s *Store) Save(ctx context.Context, rec *Record) error {
	if rec == nil || rec.Config == nil {
		return ErrInvalidRecord
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Name == "" {
		rec.Name = rec.Config.Name
	}
	rec.UpdatedAt = time.Now().UTC()

	configJSON, err := json.Marshal(rec.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	var dataJSON *string
	if rec.Data != nil {
		b, err := json.Marshal(rec.Data)
		if err != nil {
			return fmt.Errorf("failed to marshal data: %w", err)
		}
		str := string(b)
		dataJSON = &str
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO palettes (id, name, config_json, data_json, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			config_json = excluded.config_json,
			data_json = excluded.data_json,
			updated_at = excluded.updated_at
	`, rec.ID, rec.Name, string(configJSON), dataJSON, rec.UpdatedAt.Format(timeFormat))
	if err != nil {
		return fmt.Errorf("failed to save palette %s: %w", rec.ID, err)
	}
	slog.Debug("store: saved palette", "id", rec.ID, "name", rec.Name)
	return nil
}

// Get returns the record with the given id, or [ErrNotFound].
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, config_json, data_json, updated_at
		FROM palettes WHERE id = ?
	`, id)

	var (
		rec        Record
		configJSON string
		dataJSON   sql.NullString
		updatedAt  string
	)
	err := row.Scan(&rec.ID, &rec.Name, &configJSON, &dataJSON, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get palette %s: %w", id, err)
	}

	rec.Config = &palette.Config{}
	if err := json.Unmarshal([]byte(configJSON), rec.Config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config of palette %s: %w", id, err)
	}
	if dataJSON.Valid {
		rec.Data = &palette.Data{}
		if err := json.Unmarshal([]byte(dataJSON.String), rec.Data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal data of palette %s: %w", id, err)
		}
	}
	rec.UpdatedAt, err = time.Parse(timeFormat, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse update time of palette %s: %w", id, err)
	}
	return &rec, nil
}

// List returns the summaries of all palettes, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, updated_at FROM palettes
		ORDER BY updated_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list palettes: %w", err)
	}
	defer rows.Close()

	var res []Summary
	for rows.Next() {
		var sum Summary
		var updatedAt string
		if err := rows.Scan(&sum.ID, &sum.Name, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan palette: %w", err)
		}
		sum.UpdatedAt, err = time.Parse(timeFormat, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse update time of palette %s: %w", sum.ID, err)
		}
		res = append(res, sum)
	}
	return res, rows.Err()
}

// Delete removes the palette with the given id, or returns [ErrNotFound].
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM palettes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete palette %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete palette %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Previous returns the basis to build the next version of the palette with
// the given id on: its stored data, or [palette.Fresh] if there is none.
func (s *Store) Previous(ctx context.Context, id string) (palette.Basis, error) {
	rec, err := s.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return palette.Fresh(), nil
	}
	if err != nil {
		return nil, err
	}
	return palette.Correlated(rec.Data), nil
}

// Build builds the configuration correlated with the stored data of the
// palette with the given id and saves the result under that id. An empty
// id stores a new palette.
func (s *Store) Build(ctx context.Context, id string, cfg *palette.Config) (*Record, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	basis := palette.Fresh()
	if id != "" {
		var err error
		basis, err = s.Previous(ctx, id)
		if err != nil {
			return nil, err
		}
	}
	rec := &Record{ID: id, Config: cfg, Data: palette.Build(cfg, basis)}
	if err := s.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
