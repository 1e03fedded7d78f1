package models

import "time"

// WorkingRow is a game in a WorkingSet together with its derived fields.
type WorkingRow struct {
	GameRecord
	// Weekday is the English day name of Date.
	Weekday string `json:"weekday"`
	// SelectedPlayerWinProbability is the selected player's pre-game chance to win.
	// For AllPlayers it equals StrongerWinProbability.
	SelectedPlayerWinProbability float64 `json:"selected_player_win_probability"`
}

// WorkingSet is the filtered view of the base dataset for one selection.
type WorkingSet struct {
	// Player is the selected player or AllPlayers.
	Player string `json:"player"`
	// From is the first day of the range (inclusive).
	From time.Time `json:"from"`
	// To is the last day of the range (inclusive).
	To time.Time `json:"to"`
	// Rows are the matching games in base dataset order.
	Rows []WorkingRow `json:"rows"`
}

// IsAll reports whether the set covers every player.
func (ws *WorkingSet) IsAll() bool {
	return ws.Player == AllPlayers
}
