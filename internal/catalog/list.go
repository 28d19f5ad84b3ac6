// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const defaultMaxResults = 50

// ListOptions filters and limits List.
type ListOptions struct {
	// Category keeps manuscripts carrying this category code anywhere in
	// their category list.
	Category string

	// Query is a case-insensitive substring matched against the title.
	Query string

	// MaxResults limits the result count. Zero uses 50; negative means no limit.
	MaxResults int
}

// Entry summarizes one saved manuscript.
type Entry struct {
	VersionedID     string    `json:"versioned_id" yaml:"versioned_id"`
	ID              string    `json:"id" yaml:"id"`
	Version         int       `json:"version" yaml:"version"`
	Title           string    `json:"title" yaml:"title"`
	PrimaryCategory string    `json:"primary_category" yaml:"primary_category"`
	UpdatedAt       time.Time `json:"updated_at" yaml:"updated_at"`
	SavedAt         time.Time `json:"saved_at" yaml:"saved_at"`
}

// List returns saved manuscripts, most recently saved first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Entry, error) {
	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT m.versioned_id, m.arxiv_id, m.version, m.title, m.primary_category,
			m.updated_at, m.saved_at
		FROM manuscripts m
		WHERE 1=1`)

	if opts.Category != "" {
		qb.WriteString(` AND EXISTS (
			SELECT 1 FROM manuscript_categories c
			WHERE c.versioned_id = m.versioned_id AND c.abbreviation = ?)`)
		args = append(args, opts.Category)
	}
	if opts.Query != "" {
		qb.WriteString(` AND lower(m.title) LIKE ?`)
		args = append(args, "%"+strings.ToLower(opts.Query)+"%")
	}

	qb.WriteString(` ORDER BY m.saved_at DESC, m.versioned_id`)

	limit := opts.MaxResults
	if limit == 0 {
		limit = defaultMaxResults
	}
	if limit > 0 {
		qb.WriteString(` LIMIT ?`)
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                  Entry
			updatedAt, savedAt string
		)
		if err := rows.Scan(&e.VersionedID, &e.ID, &e.Version, &e.Title, &e.PrimaryCategory, &updatedAt, &savedAt); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		e.UpdatedAt = parseTime(updatedAt)
		e.SavedAt = parseTime(savedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
