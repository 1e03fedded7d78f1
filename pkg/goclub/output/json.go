// Package output renders query results as JSON or CSV and exports the base
// dataset to SQLite.
package output

import (
	"io"

	json "github.com/goccy/go-json"
)

// WriteJSON encodes v to w, indented when pretty is set.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
