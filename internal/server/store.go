// Package server exposes generated dungeons over HTTP and keeps a small
// SQLite log of every generation it serves.
package server

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store handles SQLite database operations for generation logging.
type Store struct {
	db *sql.DB
}

// Generation is one logged generation pass.
type Generation struct {
	ID        string    `json:"id"`
	Seed      int64     `json:"seed"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Rooms     int       `json:"rooms"`
	Links     int       `json:"links"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStore opens (or creates) the database at path. Use ":memory:" for an
// ephemeral store.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A :memory: database exists per connection, so the pool must stay at
	// one connection for the schema to be visible everywhere.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS generations (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		rooms INTEGER NOT NULL,
		links INTEGER NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_generations_seed ON generations(seed);
	CREATE INDEX IF NOT EXISTS idx_generations_created ON generations(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordGeneration inserts one generation record. A missing ID is assigned.
func (s *Store) RecordGeneration(g Generation) (Generation, error) {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO generations (id, seed, width, height, rooms, links, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Seed, g.Width, g.Height, g.Rooms, g.Links, g.CreatedAt,
	)
	if err != nil {
		return Generation{}, fmt.Errorf("record generation: %w", err)
	}
	return g, nil
}

// RecentGenerations returns up to limit records, newest first.
func (s *Store) RecentGenerations(limit int) ([]Generation, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, seed, width, height, rooms, links, created_at
		 FROM generations ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query generations: %w", err)
	}
	defer rows.Close()

	var out []Generation
	for rows.Next() {
		var g Generation
		if err := rows.Scan(&g.ID, &g.Seed, &g.Width, &g.Height, &g.Rooms, &g.Links, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
