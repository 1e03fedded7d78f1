// Package stats computes chart-ready aggregates over a working set.
//
// Every aggregate reads the selected player from the WorkingSet itself.
// When the selection is ALL PLAYERS, the favorite (stronger-rated player)
// of each game stands in for the selected player.
package stats

import "github.com/ukaji3/goclub-go/pkg/goclub/models"

// WinLoss counts the subject's wins and losses. For ALL PLAYERS a win is a
// game the favorite won.
func WinLoss(ws *models.WorkingSet) models.WinLoss {
	var out models.WinLoss
	for _, row := range ws.Rows {
		if ws.IsAll() {
			out.Total++
			if row.FavoriteWon() {
				out.Wins++
			}
			continue
		}
		if !row.Involves(ws.Player) {
			continue
		}
		out.Total++
		if row.Winner == ws.Player {
			out.Wins++
		}
	}
	out.Losses = out.Total - out.Wins
	return out
}

// ExpectedVsActual sums the subject's pre-game win probabilities and counts
// the games the subject actually won.
func ExpectedVsActual(ws *models.WorkingSet) models.ExpectedActual {
	var out models.ExpectedActual
	for _, row := range ws.Rows {
		if ws.IsAll() {
			out.Expected += row.StrongerWinProbability
			if row.FavoriteWon() {
				out.Actual++
			}
			continue
		}
		if !row.Involves(ws.Player) {
			continue
		}
		out.Expected += row.SelectedPlayerWinProbability
		if row.Winner == ws.Player {
			out.Actual++
		}
	}
	return out
}
