package output

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ukaji3/goclub-go/internal/telemetry"
	"github.com/ukaji3/goclub-go/pkg/goclub/models"

	_ "modernc.org/sqlite"
)

const gamesSchema = `CREATE TABLE games (
	id                       INTEGER PRIMARY KEY AUTOINCREMENT,
	season                   INTEGER NOT NULL,
	date                     TEXT    NOT NULL,
	stronger_player          TEXT    NOT NULL,
	weaker_player            TEXT    NOT NULL,
	handicap_stones          INTEGER NOT NULL,
	winner                   TEXT    NOT NULL,
	stronger_rating          REAL    NOT NULL,
	weaker_rating            REAL    NOT NULL,
	stronger_win_probability REAL    NOT NULL
)`

// ExportSQLite replaces the games table of the database at path with games.
func ExportSQLite(ctx context.Context, path string, games []models.GameRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DROP TABLE IF EXISTS games`,
		gamesSchema,
		`CREATE INDEX idx_games_date ON games(date)`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	insert, err := tx.PrepareContext(ctx, `INSERT INTO games (
		season, date, stronger_player, weaker_player, handicap_stones, winner,
		stronger_rating, weaker_rating, stronger_win_probability
	) VALUES (?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer insert.Close()

	for _, g := range games {
		if _, err := insert.ExecContext(ctx,
			g.Season, g.Date.Format(time.DateOnly), g.StrongerPlayer, g.WeakerPlayer,
			g.HandicapStones, g.Winner, g.StrongerRating, g.WeakerRating, g.StrongerWinProbability,
		); err != nil {
			return fmt.Errorf("insert game %s %s-%s: %w", g.Date.Format(time.DateOnly), g.StrongerPlayer, g.WeakerPlayer, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	telemetry.Infof("Exported %d games to %s", len(games), path)
	return nil
}
