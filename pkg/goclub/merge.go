package goclub

import (
	"slices"
	"strings"

	"github.com/ukaji3/goclub-go/pkg/goclub/models"
)

// Merge concatenates the seasons into one base dataset ordered by
// (date, stronger player, weaker player). Duplicates are kept and ties keep
// their season order.
func Merge(seasons ...models.SeasonDataset) []models.GameRecord {
	n := 0
	for _, s := range seasons {
		n += len(s.Records)
	}

	games := make([]models.GameRecord, 0, n)
	for _, s := range seasons {
		games = append(games, s.Records...)
	}
	slices.SortStableFunc(games, compareGames)
	return games
}

func compareGames(a, b models.GameRecord) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	if c := strings.Compare(a.StrongerPlayer, b.StrongerPlayer); c != 0 {
		return c
	}
	return strings.Compare(a.WeakerPlayer, b.WeakerPlayer)
}
