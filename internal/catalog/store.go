// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog keeps manuscripts the user chose to save in a local
// SQLite database. Lookups through pkg/arxiv never consult it; it is a
// user-managed collection, not a response cache.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/arxiv/pkg/arxiv"
	"github.com/pdiddy/arxiv/pkg/types"
)

// DefaultPath is used when CatalogConfig.Path is empty.
const DefaultPath = "arxiv.db"

// ErrNotFound reports a manuscript that is not in the catalog.
var ErrNotFound = errors.New("catalog: manuscript not found")

// Store manages the catalog SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the catalog database at cfg.Path and creates the
// schema if it does not exist.
func Open(cfg types.CatalogConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS manuscripts (
			versioned_id TEXT PRIMARY KEY,
			arxiv_id TEXT NOT NULL,
			version INTEGER NOT NULL,
			title TEXT NOT NULL,
			primary_category TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			saved_at TEXT NOT NULL,
			document TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_manuscripts_arxiv_id ON manuscripts(arxiv_id)`,
		`CREATE TABLE IF NOT EXISTS manuscript_categories (
			versioned_id TEXT NOT NULL REFERENCES manuscripts(versioned_id) ON DELETE CASCADE,
			abbreviation TEXT NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (versioned_id, abbreviation)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_categories_abbreviation ON manuscript_categories(abbreviation)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save upserts m. The updated return value reports whether a row for the
// same versioned id already existed.
func (s *Store) Save(ctx context.Context, m *arxiv.Manuscript) (updated bool, err error) {
	doc, err := json.Marshal(m)
	if err != nil {
		return false, fmt.Errorf("marshaling %s: %w", m.VersionedID, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var existing int
	if err := tx.QueryRowContext(ctx,
		`SELECT count(*) FROM manuscripts WHERE versioned_id = ?`, m.VersionedID,
	).Scan(&existing); err != nil {
		return false, fmt.Errorf("checking %s: %w", m.VersionedID, err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO manuscripts
			(versioned_id, arxiv_id, version, title, primary_category, created_at, updated_at, saved_at, document)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(versioned_id) DO UPDATE SET
			arxiv_id = excluded.arxiv_id,
			version = excluded.version,
			title = excluded.title,
			primary_category = excluded.primary_category,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			saved_at = excluded.saved_at,
			document = excluded.document`,
		m.VersionedID, m.ID, m.Version, m.Title, m.PrimaryCategory().Abbreviation,
		formatTime(m.CreatedAt), formatTime(m.UpdatedAt), formatTime(s.now()), string(doc),
	); err != nil {
		return false, fmt.Errorf("inserting %s: %w", m.VersionedID, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM manuscript_categories WHERE versioned_id = ?`, m.VersionedID,
	); err != nil {
		return false, fmt.Errorf("clearing categories for %s: %w", m.VersionedID, err)
	}
	for i, c := range m.Categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO manuscript_categories (versioned_id, abbreviation, position) VALUES (?, ?, ?)`,
			m.VersionedID, c.Abbreviation, i,
		); err != nil {
			return false, fmt.Errorf("inserting category %s for %s: %w", c.Abbreviation, m.VersionedID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing %s: %w", m.VersionedID, err)
	}
	return existing > 0, nil
}

// Get returns the saved manuscript for a versioned id, or the highest
// saved version when given an unversioned id.
func (s *Store) Get(ctx context.Context, id string) (*arxiv.Manuscript, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM manuscripts
		WHERE versioned_id = ? OR arxiv_id = ?
		ORDER BY (versioned_id = ?) DESC, version DESC
		LIMIT 1`, id, id, id,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", id, err)
	}
	return decodeDocument(doc)
}

// Delete removes a saved version.
func (s *Store) Delete(ctx context.Context, versionedID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM manuscripts WHERE versioned_id = ?`, versionedID)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", versionedID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, versionedID)
	}
	return nil
}

func decodeDocument(doc string) (*arxiv.Manuscript, error) {
	var m arxiv.Manuscript
	if err := json.Unmarshal([]byte(doc), &m); err != nil {
		return nil, fmt.Errorf("decoding stored manuscript: %w", err)
	}
	return &m, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
