package goclub

import (
	"slices"
	"time"

	"github.com/ukaji3/goclub-go/pkg/goclub/models"
	"github.com/ukaji3/goclub-go/pkg/goclub/query"
	"github.com/ukaji3/goclub-go/pkg/goclub/stats"
)

// Session holds the read-only base dataset and answers queries over it.
type Session struct {
	games []models.GameRecord
}

// NewSession creates a Session over games, which must already be merged.
// The slice is copied.
func NewSession(games []models.GameRecord) *Session {
	return &Session{games: slices.Clone(games)}
}

// Games returns a copy of the base dataset.
func (s *Session) Games() []models.GameRecord {
	return slices.Clone(s.games)
}

// Players returns the selectable players, ALL PLAYERS first.
func (s *Session) Players() []string {
	return query.Players(s.games)
}

// DateBounds returns the first and last game day.
func (s *Session) DateBounds() (first, last time.Time, ok bool) {
	return query.DateBounds(s.games)
}

// Query builds the working set for opts.
func (s *Session) Query(opts QueryOptions) (*models.WorkingSet, error) {
	first, last, _ := s.DateBounds()
	ws, err := query.Apply(s.games, opts.filter(first, last))
	if err != nil {
		return nil, &QueryError{Player: opts.Player, Err: err}
	}
	return ws, nil
}

// Report builds the working set for opts and computes every aggregate.
func (s *Session) Report(opts QueryOptions) (*models.Report, error) {
	ws, err := s.Query(opts)
	if err != nil {
		return nil, err
	}
	return stats.Build(ws), nil
}
