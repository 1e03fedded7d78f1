package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/goclub-go/pkg/goclub/parser"
	"github.com/ukaji3/goclub-go/pkg/goclub/source"
)

//go:embed seasons.yaml
var defaultSeasons []byte

type Season struct {
	Season   int    `yaml:"season"`
	Name     string `yaml:"name"`
	File     string `yaml:"file"`
	URL      string `yaml:"url"`
	Sheet    string `yaml:"sheet"`
	Columns  string `yaml:"columns"`
	SkipRows int    `yaml:"skip_rows"`
	// Refresh keeps File as a cache of URL, re-downloaded when stale.
	Refresh bool `yaml:"refresh"`
	// Backup enables the backup workbooks as last resort.
	Backup bool `yaml:"backup"`
}

type Seasons struct {
	Seasons []Season `yaml:"seasons"`
}

// LoadSeasons reads a season layout file. An empty path selects the
// embedded default.
func LoadSeasons(path string) (Seasons, error) {
	data := defaultSeasons
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return Seasons{}, fmt.Errorf("read seasons: %w", err)
		}
	}

	var s Seasons
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Seasons{}, fmt.Errorf("parse seasons: %w", err)
	}
	if len(s.Seasons) == 0 {
		return Seasons{}, fmt.Errorf("parse seasons: no seasons defined")
	}
	return s, nil
}

// Sources resolves the configured seasons into loadable sources rooted in
// DataDir.
func (c *Config) Sources() ([]source.Source, error) {
	seasons, err := LoadSeasons(c.SeasonsFile)
	if err != nil {
		return nil, err
	}

	sources := make([]source.Source, 0, len(seasons.Seasons))
	for _, s := range seasons.Seasons {
		cols, err := parser.ParseColumnSpec(s.Columns)
		if err != nil {
			return nil, fmt.Errorf("season %d: %w", s.Season, err)
		}

		src := source.Source{
			Season:    s.Season,
			Name:      s.Name,
			RemoteURL: s.URL,
			Layout: parser.Layout{
				Sheet:    s.Sheet,
				Columns:  cols,
				SkipRows: s.SkipRows,
			},
		}
		if s.File != "" {
			src.LocalPath = filepath.Join(c.DataDir, s.File)
		}
		if s.Refresh {
			src.MaxAge = c.CacheMaxAge
		}
		if s.Backup {
			src.BackupPath = c.BackupPath
			src.EmbeddedBackup = true
		}
		sources = append(sources, src)
	}
	return sources, nil
}
