package store

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/fluxview/internal/action"
)

// SearchState holds the search field query and its predictions.
type SearchState struct {
	Query       string
	Pending     bool
	Predictions []string
}

// SearchField owns the search query and the predictions shown under it.
type SearchField struct {
	*slice[SearchState]
}

func cloneSearch(s SearchState) SearchState {
	s.Predictions = slices.Clone(s.Predictions)
	return s
}

// NewSearchField creates the store and registers it with r.
func NewSearchField(r Registrar, log zerolog.Logger) (*SearchField, error) {
	s := &SearchField{newSlice("search_field", SearchState{}, cloneSearch, log)}
	if err := s.register(r, s.handle); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SearchField) handle(a action.Action) error {
	prev := s.Snapshot()
	var next SearchState
	switch v := a.(type) {
	case action.RequestPredictions:
		next = SearchState{
			Query:   v.Query,
			Pending: strings.TrimSpace(v.Query) != "",
		}
		if next.Query == prev.Query && next.Pending == prev.Pending && len(prev.Predictions) == 0 {
			return nil
		}
	case action.LoadPredictions:
		if s.rejectMalformed(v) {
			return nil
		}
		if v.Query != prev.Query {
			s.log.Debug().Str("query", v.Query).Str("current", prev.Query).Msg("dropping stale predictions")
			return nil
		}
		next = SearchState{
			Query:       prev.Query,
			Predictions: slices.Clone(v.Predictions),
		}
	default:
		return nil
	}
	s.commit(next)
	return nil
}
