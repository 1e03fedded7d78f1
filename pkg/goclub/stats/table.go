package stats

import (
	"slices"
	"time"

	"github.com/ukaji3/goclub-go/pkg/goclub/models"
)

// Table returns the game details rows, newest first. Games on the same day
// keep their base dataset order.
func Table(ws *models.WorkingSet) []models.TableRow {
	rows := slices.Clone(ws.Rows)
	slices.SortStableFunc(rows, func(a, b models.WorkingRow) int {
		return b.Date.Compare(a.Date)
	})

	table := make([]models.TableRow, 0, len(rows))
	for _, row := range rows {
		table = append(table, models.TableRow{
			Date:                   row.Date.Format(time.DateOnly),
			Weekday:                row.Weekday,
			StrongerPlayer:         row.StrongerPlayer,
			StrongerWinProbability: row.StrongerWinProbability,
			WeakerPlayer:           row.WeakerPlayer,
			StrongerRating:         row.StrongerRating,
			HandicapStones:         row.HandicapStones,
			WeakerRating:           row.WeakerRating,
			Winner:                 row.Winner,
		})
	}
	return table
}

// Build assembles every aggregate for the working set.
func Build(ws *models.WorkingSet) *models.Report {
	report := &models.Report{
		Player:   ws.Player,
		From:     ws.From,
		To:       ws.To,
		Games:    len(ws.Rows),
		WinLoss:  WinLoss(ws),
		Wins:     ExpectedVsActual(ws),
		Activity: Activity(ws),
		Table:    Table(ws),
	}
	if timeline, ok := RatingTimeline(ws); ok {
		report.Rating = timeline
	}
	return report
}
