// Package catalog supplies search predictions for the search field.
//
// A Predictor turns a partial query into a short list of media titles. Memory
// serves a fixed title list and is what the application uses when no database
// is configured; Postgres queries a media table through a pgx pool; HTTP asks
// a remote prediction service and returns its answer as is.
//
// Memory and Postgres rank titles that start with the query ahead of titles that merely
// contain it, compare case-insensitively, and return at most limit results.
package catalog

import (
	"context"
	"errors"
	"slices"
	"strings"
)

// DefaultLimit is used when a caller passes a non-positive limit.
const DefaultLimit = 5

// ErrEmptyQuery is returned when Predict is called with a blank query.
var ErrEmptyQuery = errors.New("query is empty")

// Predictor returns titles matching a partial query.
type Predictor interface {
	Predict(ctx context.Context, query string, limit int) ([]string, error)
}

// Memory predicts from an in-memory title list.
type Memory struct {
	titles []string
}

// NewMemory returns a predictor over titles. Blank titles and titles differing
// only in case from an earlier one are dropped; the rest are sorted
// case-insensitively.
func NewMemory(titles []string) *Memory {
	seen := make(map[string]struct{}, len(titles))
	var clean []string
	for _, t := range titles {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		clean = append(clean, t)
	}
	slices.SortStableFunc(clean, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return &Memory{titles: clean}
}

// Len returns the number of titles.
func (m *Memory) Len() int {
	return len(m.titles)
}

// Predict implements Predictor.
func (m *Memory) Predict(ctx context.Context, query string, limit int) ([]string, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var prefix, contains []string
	for _, t := range m.titles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lower := strings.ToLower(t)
		switch {
		case strings.HasPrefix(lower, q):
			prefix = append(prefix, t)
		case strings.Contains(lower, q):
			contains = append(contains, t)
		}
	}

	out := append(prefix, contains...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
