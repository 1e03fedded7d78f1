package stats

import (
	"fmt"
	"math"
	"slices"

	"github.com/ukaji3/goclub-go/pkg/goclub/models"
)

const (
	// danThreshold is the lowest rating shown as a dan rank.
	danThreshold = 2100
	axisPadding  = 0.1
	tickStep     = 100
)

// RankLabel maps a rating to its rank: ratings from 2100 up are dan ("3d"),
// lower ratings are kyu ("5k").
func RankLabel(rating float64) string {
	if rating >= danThreshold {
		return fmt.Sprintf("%dd", int(math.Floor((rating-2000)/100)))
	}
	return fmt.Sprintf("%dk", int(math.Floor((danThreshold-rating)/100)))
}

// RatingTimeline returns the selected player's rating per game, ascending by
// date, with a padded axis range and rank-labelled ticks. ok is false for
// ALL PLAYERS or when the player has no games in the working set.
func RatingTimeline(ws *models.WorkingSet) (timeline *models.RatingTimeline, ok bool) {
	if ws.IsAll() {
		return nil, false
	}

	points := []models.RatingPoint{}
	for _, row := range ws.Rows {
		if rating, ok := row.RatingOf(ws.Player); ok {
			points = append(points, models.RatingPoint{Date: row.Date, Rating: rating})
		}
	}
	if len(points) == 0 {
		return nil, false
	}

	slices.SortStableFunc(points, func(a, b models.RatingPoint) int {
		return a.Date.Compare(b.Date)
	})

	lo, hi := points[0].Rating, points[0].Rating
	for _, p := range points[1:] {
		lo = math.Min(lo, p.Rating)
		hi = math.Max(hi, p.Rating)
	}
	pad := (hi - lo) * axisPadding

	timeline = &models.RatingTimeline{
		Player:  ws.Player,
		Points:  points,
		AxisMin: lo - pad,
		AxisMax: hi + pad,
	}
	timeline.Ticks = rankTicks(timeline.AxisMin, timeline.AxisMax)
	return timeline, true
}

// rankTicks lists axis values every 100 points from the hundred at or below
// yMin up to, but excluding, the hundred above yMax.
func rankTicks(yMin, yMax float64) []models.RankTick {
	start := math.Floor(yMin/tickStep) * tickStep
	end := (math.Floor(yMax/tickStep) + 1) * tickStep

	var ticks []models.RankTick
	for v := start; v < end; v += tickStep {
		ticks = append(ticks, models.RankTick{Rating: v, Rank: RankLabel(v)})
	}
	return ticks
}
