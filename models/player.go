package models

import "time"

type Player struct {
	ID          int       `json:"id"`
	WorkspaceID int       `json:"workspace_id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
}

// TournamentPlayer is one roster entry. Dropped players stay on the roster:
// dropping is informational metadata, it never removes a player from the
// standings or alters how their completed matches score.
type TournamentPlayer struct {
	TournamentID   int       `json:"tournament_id"`
	PlayerID       int       `json:"player_id"`
	Name           string    `json:"name"`
	Dropped        bool      `json:"dropped"`
	DroppedAtRound *int      `json:"dropped_at_round,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
