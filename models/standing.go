package models

import "time"

// Standing is a derived, read-only row of the leaderboard. It is recomputed
// from scratch out of the match set on every request; nothing on Player or
// Match is ever mutated to produce it.
type Standing struct {
	Rank        int    `json:"rank"`
	PlayerID    int    `json:"player_id"`
	Name        string `json:"name"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Draws       int    `json:"draws"`
	MatchPoints int    `json:"match_points"`

	MatchWinPercentage                 float64 `json:"match_win_percentage"`
	OpponentMatchWinPercentage         float64 `json:"opponent_match_win_percentage"`
	OpponentOpponentMatchWinPercentage float64 `json:"opponent_opponent_match_win_percentage"`

	Dropped        bool `json:"dropped"`
	DroppedAtRound *int `json:"dropped_at_round,omitempty"`
}

// StandingSnapshot is a persisted copy of a final Standing, written once when
// a tournament is completed. Live standings are never persisted.
type StandingSnapshot struct {
	ID           int       `json:"id"`
	TournamentID int       `json:"tournament_id"`
	Standing
	CreatedAt time.Time `json:"created_at"`
}
