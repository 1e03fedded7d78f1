// Package goclub loads club Go seasons, merges them into one base dataset and
// answers filtered statistics queries over it.
package goclub

import (
	"time"

	"github.com/ukaji3/goclub-go/pkg/goclub/query"
	"github.com/ukaji3/goclub-go/pkg/goclub/source"
)

// Options configures loading.
type Options struct {
	// Sources lists the seasons in season order.
	Sources []source.Source
	// Loader runs the fallback chain. If nil, one is created with HTTPTimeout.
	Loader *source.Loader
	// HTTPTimeout bounds each download when Loader is nil.
	// If zero, source.DefaultHTTPTimeout is used.
	HTTPTimeout time.Duration
}

func (o Options) loader() *source.Loader {
	if o.Loader != nil {
		return o.Loader
	}
	return source.NewLoader(o.HTTPTimeout)
}

// QueryOptions selects the working set.
type QueryOptions struct {
	// Player is a player name or query.AllPlayers. Empty means all players.
	Player string
	// From is the first included day. If nil, defaults to the first game day.
	From *time.Time
	// To is the last included day. If nil, defaults to the last game day.
	To *time.Time
}

// filter resolves the nil bounds against the dataset's date range.
func (o QueryOptions) filter(first, last time.Time) query.Filter {
	f := query.Filter{Player: o.Player, From: first, To: last}
	if o.From != nil {
		f.From = *o.From
	}
	if o.To != nil {
		f.To = *o.To
	}
	return f
}
