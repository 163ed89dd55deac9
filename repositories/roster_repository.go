package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/models"
)

var (
	ErrRosterEntryNotFound = errors.New("tournament roster entry not found")
	ErrRosterEntryConflict = errors.New("player is already on the tournament roster")
	ErrRosterPlayerInvalid = errors.New("roster player conflict or invalid")
)

// RosterRepository manages tournament_players rows: which players are
// enrolled in a tournament, and their drop metadata.
type RosterRepository interface {
	Add(ctx context.Context, entry *models.TournamentPlayer) error
	Remove(ctx context.Context, tournamentID, playerID int) error
	ListByTournament(ctx context.Context, tournamentID int) ([]models.TournamentPlayer, error)
	MarkDropped(ctx context.Context, tournamentID, playerID int, droppedAtRound *int) error
}

type postgresRosterRepository struct {
	db *sql.DB
}

func NewPostgresRosterRepository(db *sql.DB) RosterRepository {
	return &postgresRosterRepository{db: db}
}

func (r *postgresRosterRepository) Add(ctx context.Context, entry *models.TournamentPlayer) error {
	query := `
		INSERT INTO tournament_players (tournament_id, player_id)
		VALUES ($1, $2)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, entry.TournamentID, entry.PlayerID).
		Scan(&entry.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				return ErrRosterEntryConflict
			case "23503":
				return ErrRosterPlayerInvalid
			}
		}
		return err
	}
	return nil
}

func (r *postgresRosterRepository) Remove(ctx context.Context, tournamentID, playerID int) error {
	query := `DELETE FROM tournament_players WHERE tournament_id = $1 AND player_id = $2`
	result, err := r.db.ExecContext(ctx, query, tournamentID, playerID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrRosterEntryNotFound)
}

// ListByTournament returns the full roster joined with player names, ordered
// by name then player id so roster listings are stable.
func (r *postgresRosterRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.TournamentPlayer, error) {
	query := `
		SELECT tp.tournament_id, tp.player_id, p.name, tp.dropped, tp.dropped_at_round, tp.created_at
		FROM tournament_players tp
		JOIN players p ON p.id = tp.player_id
		WHERE tp.tournament_id = $1
		ORDER BY p.name ASC, tp.player_id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	roster := make([]models.TournamentPlayer, 0)
	for rows.Next() {
		var entry models.TournamentPlayer
		if err := rows.Scan(
			&entry.TournamentID,
			&entry.PlayerID,
			&entry.Name,
			&entry.Dropped,
			&entry.DroppedAtRound,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}
		roster = append(roster, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return roster, nil
}

func (r *postgresRosterRepository) MarkDropped(ctx context.Context, tournamentID, playerID int, droppedAtRound *int) error {
	query := `
		UPDATE tournament_players
		SET dropped = TRUE, dropped_at_round = $1
		WHERE tournament_id = $2 AND player_id = $3`

	result, err := r.db.ExecContext(ctx, query, droppedAtRound, tournamentID, playerID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrRosterEntryNotFound)
}
