package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/ziadkadry99/azkar/internal/content"
	"github.com/ziadkadry99/azkar/internal/db"
	"github.com/ziadkadry99/azkar/internal/navigation"
)

// DefaultLimit caps results when the caller does not.
const DefaultLimit = 20

// Hit is one matching item.
type Hit struct {
	ID       string             `json:"id"`
	Text     string             `json:"text"`
	Source   string             `json:"source,omitempty"`
	Note     string             `json:"note,omitempty"`
	Repeat   int                `json:"repeat,omitempty"`
	Section  content.SectionID  `json:"section"`
	Category content.CategoryID `json:"category"`
	Path     string             `json:"path"`
}

// Index is an in-memory SQLite table of every item, built once from a store.
type Index struct {
	db *db.DB
}

// Build indexes every item in store.
func Build(ctx context.Context, store *content.Store) (*Index, error) {
	database, err := db.OpenMemory()
	if err != nil {
		return nil, err
	}

	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("starting index transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO items (
			id, section_id, category_id, section_rank, category_rank,
			position, text, normalized, source, note, repeat_count
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		database.Close()
		return nil, fmt.Errorf("preparing index insert: %w", err)
	}
	defer stmt.Close()

	for si, sec := range store.Sections() {
		for ci, cat := range sec.Categories {
			for pos, it := range cat.Items {
				if _, err := stmt.ExecContext(ctx,
					it.ID, string(sec.ID), string(cat.ID), si, ci,
					pos, it.Text, Normalize(it.Text), it.Source, it.Note, it.Repeat,
				); err != nil {
					tx.Rollback()
					database.Close()
					return nil, fmt.Errorf("indexing item %s: %w", it.ID, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		database.Close()
		return nil, fmt.Errorf("committing index: %w", err)
	}
	return &Index{db: database}, nil
}

// Search returns items whose normalised text contains every term of query,
// in presentation order. An empty query matches nothing.
func (ix *Index) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	terms := strings.Fields(Normalize(query))
	if len(terms) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var (
		clauses []string
		args    []any
	)
	for _, term := range terms {
		clauses = append(clauses, `normalized LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(term)+"%")
	}
	args = append(args, limit)

	q := "SELECT id, section_id, category_id, text, source, note, repeat_count FROM items WHERE " +
		strings.Join(clauses, " AND ") +
		" ORDER BY section_rank, category_rank, position LIMIT ?"

	rows, err := ix.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var (
			h            Hit
			section, cat string
		)
		if err := rows.Scan(&h.ID, &section, &cat, &h.Text, &h.Source, &h.Note, &h.Repeat); err != nil {
			return nil, fmt.Errorf("scanning hit: %w", err)
		}
		h.Section = content.SectionID(section)
		h.Category = content.CategoryID(cat)
		h.Path = navigation.CategoryRoute(h.Section, h.Category).Path()
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// Close releases the index.
func (ix *Index) Close() error {
	return ix.db.Close()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
