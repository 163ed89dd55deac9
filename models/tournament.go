package models

import "time"

// TournamentStatus представляет статусы турнира, соответствующие ENUM в БД.
type TournamentStatus string

const (
	TournamentStatusDraft     TournamentStatus = "draft"
	TournamentStatusActive    TournamentStatus = "active"
	TournamentStatusCompleted TournamentStatus = "completed"
)

type Tournament struct {
	ID          int              `json:"id"`
	WorkspaceID int              `json:"workspace_id"`
	LeagueID    *int             `json:"league_id,omitempty"`
	Name        string           `json:"name"`
	Status      TournamentStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	LogoKey     *string          `json:"-"`
	LogoURL     *string          `json:"logo_url,omitempty"`

	// Опциональные связанные сущности (не мапятся напрямую)
	League  *League            `json:"league,omitempty"`
	Players []TournamentPlayer `json:"players,omitempty"`
	Matches []Match            `json:"matches,omitempty"`
}
