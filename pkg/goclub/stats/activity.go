package stats

import (
	"slices"
	"strings"
	"time"

	"github.com/ukaji3/goclub-go/pkg/goclub/models"
)

type activityKey struct {
	day         int64
	counterpart string
}

// Activity counts games per (date, counterpart). For ALL PLAYERS both
// participants of a game are counterparts; otherwise the counterpart is
// the selected player's opponent. Buckets are sorted by date, then name.
func Activity(ws *models.WorkingSet) []models.ActivityBucket {
	index := make(map[activityKey]int)
	buckets := []models.ActivityBucket{}

	add := func(date time.Time, counterpart string) {
		key := activityKey{day: date.Unix(), counterpart: counterpart}
		if i, ok := index[key]; ok {
			buckets[i].Games++
			return
		}
		index[key] = len(buckets)
		buckets = append(buckets, models.ActivityBucket{Date: date, Counterpart: counterpart, Games: 1})
	}

	for _, row := range ws.Rows {
		if ws.IsAll() {
			add(row.Date, row.StrongerPlayer)
			add(row.Date, row.WeakerPlayer)
			continue
		}
		if opponent, ok := row.Opponent(ws.Player); ok {
			add(row.Date, opponent)
		}
	}

	slices.SortFunc(buckets, func(a, b models.ActivityBucket) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.Counterpart, b.Counterpart)
	})
	return buckets
}
