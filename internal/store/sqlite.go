package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mkuiper/kraamlog/internal/ident"
)

// document key for the single AppData payload
const docKey = "appdata"

// SQLiteStore persists the document in a one-row key-value table.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens the SQLite-backed store in dataDir.
// The database is opened with:
// - WAL mode for concurrent reads
// - a single writer connection
// - foreign key constraints enabled
func Open(dataDir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "kraamlog.db")

	// Pure Go driver, no CGO
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support multiple writers
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON;"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000;"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS app_documents (
		doc_key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS installation (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load returns the stored document payload, or nil when none exists.
func (s *SQLiteStore) Load() ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(
		"SELECT payload FROM app_documents WHERE doc_key = ?", docKey,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	return payload, nil
}

// Save replaces the stored document payload.
func (s *SQLiteStore) Save(payload []byte) error {
	query := `
	INSERT INTO app_documents (doc_key, payload, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(doc_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(query, docKey, payload, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// InstallationID returns the installation UUID, creating it on first use.
// The id tags mirror requests so the remote side can scope documents per
// installation.
func (s *SQLiteStore) InstallationID() (string, error) {
	var id string
	err := s.db.QueryRow("SELECT id FROM installation LIMIT 1").Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("failed to read installation id: %w", err)
	}

	id = ident.NewInstallationID()
	if _, err := s.db.Exec(
		"INSERT INTO installation (id, created_at) VALUES (?, ?)",
		id, time.Now().Unix(),
	); err != nil {
		return "", fmt.Errorf("failed to store installation id: %w", err)
	}
	return id, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
