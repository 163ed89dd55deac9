package models

import "time"

// Workspace is the tenancy unit: players, leagues and tournaments all belong
// to exactly one workspace, and every request is scoped to one explicitly.
type Workspace struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	OwnerID   int       `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}
