package models

import "time"

// WinLoss counts the subject's wins and losses.
type WinLoss struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	// Total is the number of games involving the subject.
	Total int `json:"total"`
}

// ExpectedActual compares the summed win probabilities with the real result.
type ExpectedActual struct {
	Expected float64 `json:"expected"`
	Actual   int     `json:"actual"`
}

// ActivityBucket counts games for one counterpart on one day.
type ActivityBucket struct {
	Date        time.Time `json:"date"`
	Counterpart string    `json:"counterpart"`
	Games       int       `json:"games"`
}

// RatingPoint is the rating a player held in a game on Date.
type RatingPoint struct {
	Date   time.Time `json:"date"`
	Rating float64   `json:"rating"`
}

// RankTick annotates a rating axis value with its dan/kyu rank.
type RankTick struct {
	Rating float64 `json:"rating"`
	Rank   string  `json:"rank"`
}

// RatingTimeline is a player's rating history with axis metadata.
type RatingTimeline struct {
	// Player is the player the series belongs to.
	Player string `json:"player"`
	// Points are sorted ascending by date.
	Points []RatingPoint `json:"points"`
	// AxisMin is the lowest rating minus 10% of the span.
	AxisMin float64 `json:"axis_min"`
	// AxisMax is the highest rating plus 10% of the span.
	AxisMax float64 `json:"axis_max"`
	// Ticks are axis values every 100 rating points with rank labels.
	Ticks []RankTick `json:"ticks"`
}

// TableRow is one line of the game details table.
type TableRow struct {
	Date                   string  `json:"date" csv:"date"`
	Weekday                string  `json:"weekday" csv:"weekday"`
	StrongerPlayer         string  `json:"stronger_player" csv:"stronger_player"`
	StrongerWinProbability float64 `json:"stronger_win_probability" csv:"stronger_win_probability"`
	WeakerPlayer           string  `json:"weaker_player" csv:"weaker_player"`
	StrongerRating         float64 `json:"stronger_rating" csv:"stronger_rating"`
	HandicapStones         int     `json:"handicap_stones" csv:"handicap_stones"`
	WeakerRating           float64 `json:"weaker_rating" csv:"weaker_rating"`
	Winner                 string  `json:"winner" csv:"winner"`
}

// Report bundles every aggregate for one selection.
type Report struct {
	Player   string           `json:"player"`
	From     time.Time        `json:"from"`
	To       time.Time        `json:"to"`
	Games    int              `json:"games"`
	WinLoss  WinLoss          `json:"win_loss"`
	Wins     ExpectedActual   `json:"wins"`
	Activity []ActivityBucket `json:"activity"`
	// Rating is nil for AllPlayers or a player without games in range.
	Rating *RatingTimeline `json:"rating,omitempty"`
	Table  []TableRow      `json:"table"`
}
