package goclub

import (
	"context"
	"errors"

	"github.com/ukaji3/goclub-go/internal/telemetry"
	"github.com/ukaji3/goclub-go/pkg/goclub/models"
	"github.com/ukaji3/goclub-go/pkg/goclub/parser"
	"github.com/ukaji3/goclub-go/pkg/goclub/source"
)

// Dataset is the result of Load.
type Dataset struct {
	// Games is the merged base dataset.
	Games []models.GameRecord
	// Seasons holds each season as loaded, in Options.Sources order.
	Seasons []models.SeasonDataset
	// Warnings lists every fallback triggered while loading.
	Warnings []source.Warning
}

// Load acquires, normalizes and merges every configured season.
// A season whose sources all fail is kept as an empty dataset and reported
// in Warnings. ErrNoData is returned when no season yields a game.
func Load(ctx context.Context, opts Options) (*Dataset, error) {
	loader := opts.loader()
	ds := &Dataset{}

	for _, src := range opts.Sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := loader.Load(ctx, src)
		ds.Warnings = append(ds.Warnings, res.Warnings...)

		season := models.SeasonDataset{
			Season: src.Season,
			Name:   src.Name,
			Origin: res.Origin,
		}
		if err != nil {
			var srcErr *source.SourceError
			if !errors.As(err, &srcErr) {
				return nil, err
			}
			w := source.Warning{Season: src.Season, Stage: source.StageUnavailable, Err: err}
			telemetry.Errorf("%s", w)
			ds.Warnings = append(ds.Warnings, w)
			ds.Seasons = append(ds.Seasons, season)
			continue
		}

		season.Records, season.Dropped = parser.Normalize(src.Season, res.Sheet)
		if season.Dropped > 0 {
			telemetry.Debugf("season %d: dropped %d incomplete or malformed rows", src.Season, season.Dropped)
		}
		telemetry.Infof("season %d (%s): %d games from %s", src.Season, src.Name, len(season.Records), season.Origin)
		ds.Seasons = append(ds.Seasons, season)
	}

	ds.Games = Merge(ds.Seasons...)
	if len(ds.Games) == 0 {
		return ds, ErrNoData
	}
	return ds, nil
}
