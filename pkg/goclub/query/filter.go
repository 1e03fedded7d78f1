// Package query derives working sets from the merged base dataset.
package query

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ukaji3/goclub-go/pkg/goclub/models"
	"github.com/ukaji3/goclub-go/pkg/goclub/parser"
)

// AllPlayers selects every game; statistics then follow the favorite of each game.
const AllPlayers = models.AllPlayers

// ErrInvertedRange is returned when the range starts after it ends.
var ErrInvertedRange = errors.New("date range start is after its end")

// ErrUnknownPlayer is returned for a player that appears in no game.
var ErrUnknownPlayer = errors.New("unknown player")

// Filter selects a player and an inclusive day range.
type Filter struct {
	// Player is a player name or AllPlayers. Empty means AllPlayers.
	Player string
	From   time.Time
	To     time.Time
}

// Apply builds the WorkingSet for f. The base dataset is not modified and
// row order is preserved.
func Apply(base []models.GameRecord, f Filter) (*models.WorkingSet, error) {
	from, to := parser.Day(f.From), parser.Day(f.To)
	if from.After(to) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvertedRange, from.Format(time.DateOnly), to.Format(time.DateOnly))
	}

	player := parser.NormalizeName(f.Player)
	if player == "" {
		player = AllPlayers
	}
	all := player == AllPlayers
	if !all && !known(base, player) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, player)
	}

	ws := &models.WorkingSet{
		Player: player,
		From:   from,
		To:     to,
		Rows:   []models.WorkingRow{},
	}
	for _, g := range base {
		if g.Date.Before(from) || g.Date.After(to) {
			continue
		}
		if !all && !g.Involves(player) {
			continue
		}
		ws.Rows = append(ws.Rows, models.WorkingRow{
			GameRecord:                   g,
			Weekday:                      g.Date.Weekday().String(),
			SelectedPlayerWinProbability: winProbability(g, player),
		})
	}

	return ws, nil
}

// winProbability is the pre-game chance of player winning g. For AllPlayers
// the favorite is treated as the selected player.
func winProbability(g models.GameRecord, player string) float64 {
	if player == AllPlayers || g.StrongerPlayer == player {
		return g.StrongerWinProbability
	}
	return 1 - g.StrongerWinProbability
}

func known(base []models.GameRecord, player string) bool {
	for _, g := range base {
		if g.Involves(player) {
			return true
		}
	}
	return false
}

// Players returns the sorted unique player names, preceded by AllPlayers.
func Players(base []models.GameRecord) []string {
	seen := make(map[string]struct{})
	for _, g := range base {
		seen[g.StrongerPlayer] = struct{}{}
		seen[g.WeakerPlayer] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return append([]string{AllPlayers}, names...)
}

// DateBounds returns the first and last game day. ok is false for an empty dataset.
func DateBounds(base []models.GameRecord) (first, last time.Time, ok bool) {
	for i, g := range base {
		if i == 0 || g.Date.Before(first) {
			first = g.Date
		}
		if i == 0 || g.Date.After(last) {
			last = g.Date
		}
	}
	return first, last, len(base) > 0
}
