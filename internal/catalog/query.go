// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/benchmark-catalog/pkg/types"
)

// QueryOptions holds exact-match filters for catalog queries. Zero values
// mean "no filter".
type QueryOptions struct {
	// Domain filters by domain label (e.g. "AI/ML").
	Domain string

	// Conference filters by uppercase conference token.
	Conference string

	// Year filters by conference year.
	Year int

	// Category filters by classification label. Uncategorized selects
	// records with an empty category instead.
	Category      string
	Uncategorized bool

	// Keyword filters by matched-keyword membership.
	Keyword string

	// MaxResults limits result count. Zero uses the store default;
	// negative means unlimited.
	MaxResults int
}

// IsEmpty reports whether no filters are set.
func (q QueryOptions) IsEmpty() bool {
	return q.Domain == "" && q.Conference == "" && q.Year == 0 &&
		q.Category == "" && !q.Uncategorized && q.Keyword == ""
}

// Query returns catalog records matching the filters, in canonical dataset
// order (domain, conference, year, title).
func (s *Store) Query(ctx context.Context, opts QueryOptions) ([]types.PaperRecord, error) {
	var (
		qb   strings.Builder
		args []any
	)

	qb.WriteString(
		`SELECT id, title, conference, year, domain, category,
			subcategory, url, abstract, matched_keywords
		FROM papers
		WHERE 1=1`)

	if opts.Domain != "" {
		qb.WriteString(` AND domain = ?`)
		args = append(args, opts.Domain)
	}
	if opts.Conference != "" {
		qb.WriteString(` AND conference = ?`)
		args = append(args, opts.Conference)
	}
	if opts.Year != 0 {
		qb.WriteString(` AND year = ?`)
		args = append(args, opts.Year)
	}
	if opts.Uncategorized {
		qb.WriteString(` AND (category = '' OR category IS NULL)`)
	} else if opts.Category != "" {
		qb.WriteString(` AND category = ?`)
		args = append(args, opts.Category)
	}
	if opts.Keyword != "" {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM json_each(matched_keywords) WHERE value = ?)`)
		args = append(args, opts.Keyword)
	}

	qb.WriteString(` ORDER BY domain, conference, year, title`)

	maxResults := opts.MaxResults
	if maxResults == 0 {
		maxResults = s.maxResults
	}
	if maxResults > 0 {
		qb.WriteString(` LIMIT ?`)
		args = append(args, maxResults)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []types.PaperRecord
	for rows.Next() {
		var r types.PaperRecord
		var keywordsJSON string
		if err := rows.Scan(&r.ID, &r.Title, &r.Conference, &r.Year, &r.Domain,
			&r.Category, &r.Subcategory, &r.URL, &r.Abstract, &keywordsJSON); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if keywordsJSON != "" && keywordsJSON != "null" {
			if err := json.Unmarshal([]byte(keywordsJSON), &r.MatchedKeywords); err != nil {
				return nil, fmt.Errorf("parsing keywords for paper %d: %w", r.ID, err)
			}
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Stats holds aggregate counts over the catalog.
type Stats struct {
	Total         int            `json:"total" yaml:"total"`
	ByDomain      map[string]int `json:"by_domain" yaml:"by_domain"`
	ByConference  map[string]int `json:"by_conference" yaml:"by_conference"`
	ByCategory    map[string]int `json:"by_category" yaml:"by_category"`
	Uncategorized int            `json:"uncategorized" yaml:"uncategorized"`
}

// Stats aggregates catalog counts by domain, conference, and category.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{
		ByDomain:     make(map[string]int),
		ByConference: make(map[string]int),
		ByCategory:   make(map[string]int),
	}

	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM papers`).Scan(&stats.Total); err != nil {
		return stats, fmt.Errorf("counting papers: %w", err)
	}

	groupings := []struct {
		query string
		dest  map[string]int
	}{
		{`SELECT domain, count(*) FROM papers GROUP BY domain`, stats.ByDomain},
		{`SELECT conference || '_' || year, count(*) FROM papers GROUP BY conference, year`, stats.ByConference},
		{`SELECT category, count(*) FROM papers WHERE category != '' GROUP BY category`, stats.ByCategory},
	}
	for _, g := range groupings {
		rows, err := s.db.QueryContext(ctx, g.query)
		if err != nil {
			return stats, fmt.Errorf("aggregating catalog: %w", err)
		}
		for rows.Next() {
			var key string
			var count int
			if err := rows.Scan(&key, &count); err != nil {
				rows.Close()
				return stats, fmt.Errorf("scanning aggregate: %w", err)
			}
			g.dest[key] = count
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return stats, err
		}
		rows.Close()
	}

	err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM papers WHERE category = '' OR category IS NULL`,
	).Scan(&stats.Uncategorized)
	if err != nil {
		return stats, fmt.Errorf("counting uncategorized: %w", err)
	}

	return stats, nil
}
