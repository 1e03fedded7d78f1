// Package models defines the records and aggregates produced by the goclub pipeline.
package models

import "time"

// AllPlayers is the selection that covers every player in the dataset.
const AllPlayers = "ALL PLAYERS"

// GameRecord represents one completed club match.
type GameRecord struct {
	// StrongerPlayer is the participant with the higher pre-game rating.
	StrongerPlayer string `json:"stronger_player"`
	// WeakerPlayer is the participant with the lower pre-game rating.
	WeakerPlayer string `json:"weaker_player"`
	// HandicapStones is the number of stones given to the weaker player.
	HandicapStones int `json:"handicap_stones"`
	// Winner is either StrongerPlayer or WeakerPlayer.
	Winner string `json:"winner"`
	// Date is the game day at midnight UTC.
	Date time.Time `json:"date"`
	// StrongerRating is the stronger player's rating at the time of the game.
	StrongerRating float64 `json:"stronger_rating"`
	// WeakerRating is the weaker player's rating at the time of the game.
	WeakerRating float64 `json:"weaker_rating"`
	// StrongerWinProbability is the pre-game estimate that the stronger player wins.
	StrongerWinProbability float64 `json:"stronger_win_probability"`
	// Season is the 1-based season the record was loaded from.
	Season int `json:"season"`
}

// Involves reports whether player took part in the game.
func (g GameRecord) Involves(player string) bool {
	return g.StrongerPlayer == player || g.WeakerPlayer == player
}

// FavoriteWon reports whether the stronger-rated player won.
func (g GameRecord) FavoriteWon() bool {
	return g.Winner == g.StrongerPlayer
}

// Opponent returns the other participant of a game player took part in.
func (g GameRecord) Opponent(player string) (string, bool) {
	switch player {
	case g.StrongerPlayer:
		return g.WeakerPlayer, true
	case g.WeakerPlayer:
		return g.StrongerPlayer, true
	}
	return "", false
}

// RatingOf returns the rating player held in the game.
func (g GameRecord) RatingOf(player string) (float64, bool) {
	switch player {
	case g.StrongerPlayer:
		return g.StrongerRating, true
	case g.WeakerPlayer:
		return g.WeakerRating, true
	}
	return 0, false
}

// Origin tells where a season's rows were read from.
type Origin string

const (
	OriginLocal  Origin = "local"
	OriginRemote Origin = "remote"
	OriginCache  Origin = "cache"
	OriginBackup Origin = "backup"
	// OriginNone marks a season that could not be obtained at all.
	OriginNone Origin = "none"
)

// SeasonDataset holds the normalized records of one season.
type SeasonDataset struct {
	// Season is the 1-based season number.
	Season int `json:"season"`
	// Name is the display name of the season.
	Name string `json:"name"`
	// Origin is the source the rows came from.
	Origin Origin `json:"origin"`
	// Records are the rows that survived normalization, in sheet order.
	Records []GameRecord `json:"records,omitempty"`
	// Dropped counts rows discarded as incomplete or malformed.
	Dropped int `json:"dropped"`
}
