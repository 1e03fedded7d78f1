package goclub

import (
	"errors"
	"fmt"

	"github.com/ukaji3/goclub-go/pkg/goclub/query"
)

// ErrNoData indicates that no season produced a single usable game.
var ErrNoData = errors.New("no game records available")

// Query errors, re-exported for callers that only import goclub.
var (
	ErrInvertedRange = query.ErrInvertedRange
	ErrUnknownPlayer = query.ErrUnknownPlayer
)

// QueryError represents a rejected query.
type QueryError struct {
	Player string
	Err    error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query for %q: %v", e.Player, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
