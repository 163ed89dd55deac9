package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/models"
)

var ErrStandingSnapshotNotFound = errors.New("standing snapshot not found")

// StandingSnapshotRepository persists the final leaderboard of a completed
// tournament. Live standings are recomputed on demand and never stored; only
// the freeze taken at completion lands here.
type StandingSnapshotRepository interface {
	BatchCreate(ctx context.Context, exec SQLExecutor, tournamentID int, standings []models.Standing) error
	ListByTournament(ctx context.Context, tournamentID int) ([]models.StandingSnapshot, error)
	DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error
}

type postgresStandingSnapshotRepository struct {
	db *sql.DB
}

func NewPostgresStandingSnapshotRepository(db *sql.DB) StandingSnapshotRepository {
	return &postgresStandingSnapshotRepository{db: db}
}

func (r *postgresStandingSnapshotRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresStandingSnapshotRepository) BatchCreate(ctx context.Context, exec SQLExecutor, tournamentID int, standings []models.Standing) error {
	if len(standings) == 0 {
		return nil
	}
	executor := r.getExecutor(exec)

	query := `
		INSERT INTO standing_snapshots
			(tournament_id, player_id, rank, wins, losses, draws, match_points,
			 match_win_pct, opponent_match_win_pct, opponent_opponent_match_win_pct,
			 dropped, dropped_at_round)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	for _, s := range standings {
		if _, err := executor.ExecContext(ctx, query,
			tournamentID,
			s.PlayerID,
			s.Rank,
			s.Wins,
			s.Losses,
			s.Draws,
			s.MatchPoints,
			s.MatchWinPercentage,
			s.OpponentMatchWinPercentage,
			s.OpponentOpponentMatchWinPercentage,
			s.Dropped,
			s.DroppedAtRound,
		); err != nil {
			return fmt.Errorf("failed to snapshot standing for player %d: %w", s.PlayerID, err)
		}
	}
	return nil
}

func (r *postgresStandingSnapshotRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.StandingSnapshot, error) {
	query := `
		SELECT ss.id, ss.tournament_id, ss.player_id, p.name, ss.rank,
		       ss.wins, ss.losses, ss.draws, ss.match_points,
		       ss.match_win_pct, ss.opponent_match_win_pct, ss.opponent_opponent_match_win_pct,
		       ss.dropped, ss.dropped_at_round, ss.created_at
		FROM standing_snapshots ss
		JOIN players p ON p.id = ss.player_id
		WHERE ss.tournament_id = $1
		ORDER BY ss.rank ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query standing snapshots for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	snapshots := make([]models.StandingSnapshot, 0)
	for rows.Next() {
		var s models.StandingSnapshot
		if err := rows.Scan(
			&s.ID,
			&s.TournamentID,
			&s.PlayerID,
			&s.Name,
			&s.Rank,
			&s.Wins,
			&s.Losses,
			&s.Draws,
			&s.MatchPoints,
			&s.MatchWinPercentage,
			&s.OpponentMatchWinPercentage,
			&s.OpponentOpponentMatchWinPercentage,
			&s.Dropped,
			&s.DroppedAtRound,
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan standing snapshot row: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (r *postgresStandingSnapshotRepository) DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error {
	executor := r.getExecutor(exec)
	_, err := executor.ExecContext(ctx, `DELETE FROM standing_snapshots WHERE tournament_id = $1`, tournamentID)
	return err
}
