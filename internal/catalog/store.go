// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog keeps the merged benchmark dataset in a local SQLite
// database for structured queries, statistics, and exports. Queries use
// exact filters only; ranking and full-text search are out of scope.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/benchmark-catalog/internal/dataset"
	"github.com/pdiddy/benchmark-catalog/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "catalog.db"
)

// Store manages the catalog SQLite database.
type Store struct {
	db         *sql.DB
	dataDir    string
	maxResults int
}

// NewStore opens or creates the catalog database at dataDir/index/catalog.db
// and creates the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.DataDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		dataDir:    cfg.DataDir,
		maxResults: maxResults,
	}

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
		`CREATE TABLE IF NOT EXISTS papers (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			conference TEXT NOT NULL,
			year INTEGER NOT NULL,
			domain TEXT NOT NULL,
			category TEXT,
			subcategory TEXT,
			url TEXT,
			abstract TEXT,
			matched_keywords TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_domain ON papers(domain)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_conference ON papers(conference, year)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_category ON papers(category)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Load replaces the catalog contents with the dataset at path, in one
// transaction. It returns the number of records loaded.
func (s *Store) Load(ctx context.Context, path string) (int, error) {
	records, err := dataset.Read(path)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM papers`); err != nil {
		return 0, fmt.Errorf("clearing catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (id, title, conference, year, domain, category,
			subcategory, url, abstract, matched_keywords)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		keywordsJSON, _ := json.Marshal(r.MatchedKeywords)
		_, err := stmt.ExecContext(ctx,
			r.ID, r.Title, r.Conference, r.Year, r.Domain,
			r.Category, r.Subcategory, r.URL, r.Abstract, string(keywordsJSON),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting paper %d: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing load: %w", err)
	}
	return len(records), nil
}
