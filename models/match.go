package models

import "time"

type MatchStatus string

const (
	MatchStatusReady     MatchStatus = "ready"
	MatchStatusPending   MatchStatus = "pending"
	MatchStatusCompleted MatchStatus = "completed"
	MatchStatusBye       MatchStatus = "bye"
)

// Match is one pairing in one round. A nil Player2ID denotes a bye for
// Player1ID; a nil WinnerID with both players present denotes a draw.
// Only completed and bye matches feed the standings computation.
type Match struct {
	ID           int         `json:"id"`
	TournamentID int         `json:"tournament_id"`
	Round        int         `json:"round"`
	Player1ID    int         `json:"player1_id"`
	Player2ID    *int        `json:"player2_id,omitempty"`
	WinnerID     *int        `json:"winner_id,omitempty"`
	Status       MatchStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

// IsBye reports whether the match is a bye for Player1ID.
func (m *Match) IsBye() bool {
	return m.Player2ID == nil || m.Status == MatchStatusBye
}

// Eligible reports whether the match may feed the standings computation.
func (m *Match) Eligible() bool {
	return m.Status == MatchStatusCompleted || m.Status == MatchStatusBye
}
