package source

import (
	"errors"
	"fmt"
)

// ErrNoSource indicates a source with nothing configured to read from.
var ErrNoSource = errors.New("no local, remote or backup location configured")

// ErrHTTPStatus indicates a non-2xx response from the remote spreadsheet.
var ErrHTTPStatus = errors.New("unexpected http status")

// SourceError is returned when every step of a season's fallback chain failed.
type SourceError struct {
	Season int
	Name   string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("season %d (%s): all sources failed: %v", e.Season, e.Name, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
