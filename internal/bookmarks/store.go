/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

// Package bookmarks stores pinned resource URIs and the command
// history for the browse client in a local SQLite database.
package bookmarks

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Pin is a bookmarked resource URI
type Pin struct {
	ID        string    `json:"id"`
	URI       string    `json:"uri"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryEntry is a single recorded browse command
type HistoryEntry struct {
	ID        int64     `json:"id"`
	Command   string    `json:"command"`
	CreatedAt time.Time `json:"created_at"`
}

// Store manages pin and history persistence using SQLite
type Store struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string
}

// NewStore creates a new bookmark store under dataDir
func NewStore(dataDir string) (*Store, error) {
	// Ensure data directory exists
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "linear-mcp-browse.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	store := &Store{
		db:   db,
		path: dbPath,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *Store) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS pins (
        id TEXT PRIMARY KEY,
        uri TEXT NOT NULL UNIQUE,
        label TEXT DEFAULT '',
        created_at DATETIME NOT NULL
    );

    CREATE INDEX IF NOT EXISTS idx_pins_created_at
        ON pins(created_at DESC);

    CREATE TABLE IF NOT EXISTS history (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        command TEXT NOT NULL,
        created_at DATETIME NOT NULL
    );

    CREATE INDEX IF NOT EXISTS idx_history_created_at
        ON history(created_at DESC);
    `

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// Migration: Add label column if it doesn't exist
	// SQLite doesn't support IF NOT EXISTS for ALTER TABLE, so we check first
	var count int
	err := s.db.QueryRow(`
        SELECT COUNT(*) FROM pragma_table_info('pins')
        WHERE name = 'label'
    `).Scan(&count)
	if err != nil {
		return err
	}

	if count == 0 {
		if _, err := s.db.Exec(`ALTER TABLE pins ADD COLUMN label TEXT DEFAULT ''`); err != nil {
			return fmt.Errorf("failed to add label column: %w", err)
		}
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// generateID creates a unique pin ID
func generateID() string {
	return fmt.Sprintf("pin_%d", time.Now().UnixNano())
}

// AddPin bookmarks a resource URI. Pinning an already-pinned URI
// updates its label.
func (s *Store) AddPin(uri, label string) (*Pin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, fmt.Errorf("uri is required")
	}

	// Update label in place if the URI is already pinned
	var existing Pin
	err := s.db.QueryRow(
		"SELECT id, uri, label, created_at FROM pins WHERE uri = ?", uri,
	).Scan(&existing.ID, &existing.URI, &existing.Label, &existing.CreatedAt)
	if err == nil {
		if label != "" && label != existing.Label {
			if _, err := s.db.Exec("UPDATE pins SET label = ? WHERE id = ?", label, existing.ID); err != nil {
				return nil, fmt.Errorf("failed to update pin: %w", err)
			}
			existing.Label = label
		}
		return &existing, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to query pin: %w", err)
	}

	pin := &Pin{
		ID:        generateID(),
		URI:       uri,
		Label:     label,
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.Exec(
		`INSERT INTO pins (id, uri, label, created_at) VALUES (?, ?, ?, ?)`,
		pin.ID, pin.URI, pin.Label, pin.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert pin: %w", err)
	}

	return pin, nil
}

// RemovePin removes a bookmark by pin ID or URI
func (s *Store) RemovePin(identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.Exec(
		"DELETE FROM pins WHERE id = ? OR uri = ?",
		identifier, identifier,
	)
	if err != nil {
		return fmt.Errorf("failed to delete pin: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("pin not found")
	}

	return nil
}

// ListPins returns all bookmarks, most recent first
func (s *Store) ListPins() ([]Pin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT id, uri, label, created_at FROM pins ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query pins: %w", err)
	}
	defer rows.Close()

	var pins []Pin
	for rows.Next() {
		var pin Pin
		if err := rows.Scan(&pin.ID, &pin.URI, &pin.Label, &pin.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		pins = append(pins, pin)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return pins, nil
}

// RecordCommand appends a command to the history
func (s *Store) RecordCommand(command string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	command = strings.TrimSpace(command)
	if command == "" {
		return nil
	}

	_, err := s.db.Exec(
		`INSERT INTO history (command, created_at) VALUES (?, ?)`,
		command, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record command: %w", err)
	}

	return nil
}

// History returns the most recent commands, newest first
func (s *Store) History(limit int) ([]HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}

	rows, err := s.db.Query(
		`SELECT id, command, created_at FROM history ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		if err := rows.Scan(&entry.ID, &entry.Command, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}

// ClearHistory deletes all recorded commands
func (s *Store) ClearHistory() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.Exec("DELETE FROM history")
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}

	return result.RowsAffected()
}
