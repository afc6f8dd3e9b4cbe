// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index builds an in-memory SQLite FTS5 index over paper titles
// and abstracts for ranked keyword search. The database lives in
// :memory:; nothing is written to disk.
package index

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paperscope/internal/dataset"
	"github.com/pdiddy/paperscope/pkg/types"
)

// Index holds the search database built from one cleaned table.
type Index struct {
	db         *sql.DB
	maxResults int
}

// New builds the index from the table. The table must already be cleaned;
// the index keeps its own copy of the searchable text, so later reads
// never touch the table.
func New(t *dataset.Table, cfg types.IndexConfig) (*Index, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	ix := &Index{db: db, maxResults: maxResults}
	if err := ix.populate(t); err != nil {
		db.Close()
		return nil, err
	}
	return ix, nil
}

// Close releases the database connection.
func (ix *Index) Close() error {
	return ix.db.Close()
}

func (ix *Index) populate(t *dataset.Table) error {
	statements := []string{
		`CREATE TABLE papers (
			row INTEGER PRIMARY KEY,
			title TEXT,
			journal TEXT,
			source TEXT,
			year INTEGER,
			has_full_text INTEGER
		)`,
		`CREATE VIRTUAL TABLE papers_fts USING fts5(title, abstract, content='')`,
	}
	for _, stmt := range statements {
		if _, err := ix.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	tx, err := ix.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	meta, err := tx.Prepare(
		`INSERT INTO papers (row, title, journal, source, year, has_full_text)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer meta.Close()

	text, err := tx.Prepare(
		`INSERT INTO papers_fts (rowid, title, abstract) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing FTS insert: %w", err)
	}
	defer text.Close()

	for i := range t.Papers {
		p := &t.Papers[i]
		fullText := 0
		if p.HasFullText {
			fullText = 1
		}
		if _, err := meta.Exec(i, p.Title, p.Journal, p.Source, p.PublishYear, fullText); err != nil {
			return fmt.Errorf("inserting row %d: %w", i, err)
		}
		if _, err := text.Exec(i, p.Title, p.Abstract); err != nil {
			return fmt.Errorf("indexing row %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// Match is one ranked search hit. Row is the record's position in the
// table, so callers can look up the full Paper.
type Match struct {
	Row     int     `json:"row" yaml:"row"`
	Title   string  `json:"title" yaml:"title"`
	Journal string  `json:"journal" yaml:"journal"`
	Year    int     `json:"year" yaml:"year"`
	Rank    float64 `json:"rank" yaml:"rank"`
}

// Search runs an FTS5 query over titles and abstracts and returns hits
// ranked by relevance. limit <= 0 uses the configured default.
func (ix *Index) Search(ctx context.Context, query string, limit int) ([]Match, error) {
	if query == "" {
		return nil, fmt.Errorf("search query is empty")
	}
	if limit <= 0 {
		limit = ix.maxResults
	}

	rows, err := ix.db.QueryContext(ctx,
		`SELECT p.row, p.title, p.journal, p.year, papers_fts.rank
		 FROM papers_fts
		 JOIN papers p ON p.row = papers_fts.rowid
		 WHERE papers_fts MATCH ?
		 ORDER BY papers_fts.rank
		 LIMIT ?`,
		query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.Row, &m.Title, &m.Journal, &m.Year, &m.Rank); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
