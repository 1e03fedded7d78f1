package source

import (
	"context"
	_ "embed"
	"net/http"
	"time"

	"github.com/ukaji3/goclub-go/internal/telemetry"
	"github.com/ukaji3/goclub-go/pkg/goclub/models"
	"github.com/ukaji3/goclub-go/pkg/goclub/parser"
)

// DefaultHTTPTimeout bounds a single spreadsheet download.
const DefaultHTTPTimeout = 30 * time.Second

// embeddedBackup is the last-resort current-season workbook shipped with the binary.
//
//go:embed backup/goseason3.xlsx
var embeddedBackup []byte

// Loader runs the load-with-fallback chain for a Source.
type Loader struct {
	HTTP      *http.Client
	UserAgent string
	// Now is the clock used for cache freshness checks.
	Now func() time.Time
}

// NewLoader creates a Loader whose downloads time out after timeout.
func NewLoader(timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	return &Loader{
		HTTP:      &http.Client{Timeout: timeout},
		UserAgent: "goclub/1.0",
		Now:       time.Now,
	}
}

// Load obtains the raw rows of src. Each failed step is recorded as a
// Warning and logged; the next fallback is tried. A *SourceError is
// returned only when nothing could be read.
func (l *Loader) Load(ctx context.Context, src Source) (Result, error) {
	var res Result

	var ok bool
	if src.MaxAge > 0 {
		ok = l.loadRefreshed(ctx, src, &res)
	} else {
		ok = l.loadPlain(ctx, src, &res)
	}
	if ok || l.loadBackup(src, &res) {
		return res, nil
	}

	cause := res.lastErr()
	if cause == nil {
		cause = ErrNoSource
	}
	return Result{Origin: models.OriginNone, Warnings: res.Warnings}, &SourceError{Season: src.Season, Name: src.Name, Err: cause}
}

// loadPlain reads the local file and falls back to the remote spreadsheet.
func (l *Loader) loadPlain(ctx context.Context, src Source, res *Result) bool {
	if src.LocalPath != "" {
		sheet, err := parser.ReadFile(src.LocalPath, src.Layout)
		if err == nil {
			res.use(sheet, models.OriginLocal)
			return true
		}
		res.warn(src, StageLocal, err)
	}

	if src.RemoteURL != "" {
		sheet, err := l.readRemote(ctx, src)
		if err == nil {
			res.use(sheet, models.OriginRemote)
			return true
		}
		res.warn(src, StageRemote, err)
	}
	return false
}

// loadRefreshed keeps LocalPath as a cache of RemoteURL no older than MaxAge.
// The cache is only overwritten by a download that parses.
func (l *Loader) loadRefreshed(ctx context.Context, src Source, res *Result) bool {
	if src.RemoteURL != "" && isStale(src.LocalPath, src.MaxAge, l.now()) {
		telemetry.Infof("season %d: cache %s missing or older than %s, downloading", src.Season, src.LocalPath, src.MaxAge)

		data, err := l.fetch(ctx, src.RemoteURL)
		if err != nil {
			res.warn(src, StageRefresh, err)
		} else if sheet, err := parser.ReadBytes(data, src.Layout); err != nil {
			res.warn(src, StageRemote, err)
		} else {
			if err := writeCache(src.LocalPath, data); err != nil {
				res.warn(src, StageCacheWrite, err)
			}
			res.use(sheet, models.OriginRemote)
			return true
		}
	}

	sheet, err := parser.ReadFile(src.LocalPath, src.Layout)
	if err == nil {
		res.use(sheet, models.OriginCache)
		return true
	}
	res.warn(src, StageCache, err)
	return false
}

// loadBackup reads the on-disk backup, then the embedded one.
func (l *Loader) loadBackup(src Source, res *Result) bool {
	if src.BackupPath != "" {
		sheet, err := parser.ReadFile(src.BackupPath, src.Layout)
		if err == nil {
			res.use(sheet, models.OriginBackup)
			return true
		}
		res.warn(src, StageBackup, err)
	}

	if src.EmbeddedBackup {
		sheet, err := parser.ReadBytes(embeddedBackup, src.Layout)
		if err == nil {
			res.use(sheet, models.OriginBackup)
			return true
		}
		res.warn(src, StageBackup, err)
	}
	return false
}

func (l *Loader) readRemote(ctx context.Context, src Source) (parser.Sheet, error) {
	data, err := l.fetch(ctx, src.RemoteURL)
	if err != nil {
		return parser.Sheet{}, err
	}
	return parser.ReadBytes(data, src.Layout)
}

func (l *Loader) now() time.Time {
	if l.Now == nil {
		return time.Now()
	}
	return l.Now()
}

func (r *Result) use(sheet parser.Sheet, origin models.Origin) {
	r.Sheet = sheet
	r.Origin = origin
}

func (r *Result) warn(src Source, stage Stage, err error) {
	w := Warning{Season: src.Season, Stage: stage, Err: err}
	telemetry.Warnf("%s", w)
	r.Warnings = append(r.Warnings, w)
}
