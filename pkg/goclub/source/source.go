// Package source obtains season workbooks from local files, remote
// spreadsheets, a refreshed cache or a bundled backup.
package source

import (
	"fmt"
	"time"

	"github.com/ukaji3/goclub-go/pkg/goclub/models"
	"github.com/ukaji3/goclub-go/pkg/goclub/parser"
)

// Source describes one season workbook and where it can be obtained.
type Source struct {
	// Season is the 1-based season number.
	Season int
	// Name is the display name of the season.
	Name string
	// LocalPath is the local copy; in refresh mode it is the cache file.
	LocalPath string
	// RemoteURL is the canonical spreadsheet export URL.
	RemoteURL string
	// MaxAge enables refresh mode: a cache older than MaxAge is re-downloaded.
	// Zero means the local file is used as is and the remote is only a fallback.
	MaxAge time.Duration
	// BackupPath is an optional on-disk last-resort workbook.
	BackupPath string
	// EmbeddedBackup enables the workbook bundled in the binary as last resort.
	EmbeddedBackup bool
	// Layout locates the game table inside the workbook.
	Layout parser.Layout
}

// Stage names the step of the fallback chain that failed.
type Stage string

const (
	StageLocal      Stage = "local"
	StageRemote     Stage = "remote"
	StageRefresh    Stage = "refresh"
	StageCacheWrite Stage = "cache-write"
	StageCache      Stage = "cache"
	StageBackup     Stage = "backup"
	// StageUnavailable is reported when every step failed.
	StageUnavailable Stage = "unavailable"
)

// Warning is a non-fatal failure that triggered a fallback.
type Warning struct {
	Season int
	Stage  Stage
	Err    error
}

func (w Warning) String() string {
	return fmt.Sprintf("season %d: %s failed: %v", w.Season, w.Stage, w.Err)
}

// Result is the outcome of loading one source.
type Result struct {
	// Sheet holds the raw selected cells below the header row.
	parser.Sheet
	// Origin tells which step produced Rows.
	Origin models.Origin
	// Warnings lists every fallback that was triggered, in order.
	Warnings []Warning
}

func (r *Result) lastErr() error {
	if len(r.Warnings) == 0 {
		return nil
	}
	return r.Warnings[len(r.Warnings)-1].Err
}
