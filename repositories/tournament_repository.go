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
	ErrTournamentNotFound         = errors.New("tournament not found")
	ErrTournamentNameConflict     = errors.New("tournament name conflict")
	ErrTournamentLeagueInvalid    = errors.New("tournament league conflict or invalid")
	ErrTournamentWorkspaceInvalid = errors.New("tournament workspace conflict or invalid")
)

type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	ListByWorkspace(ctx context.Context, workspaceID int, statusFilter *models.TournamentStatus) ([]*models.Tournament, error)
	Update(ctx context.Context, exec SQLExecutor, tournament *models.Tournament) error
	UpdateStatus(ctx context.Context, exec SQLExecutor, id int, status models.TournamentStatus) error
	UpdateLogoKey(ctx context.Context, id int, logoKey *string) error
	Delete(ctx context.Context, id int) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

func (r *postgresTournamentRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresTournamentRepository) handleTournamentError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			return ErrTournamentNameConflict
		case "23503":
			switch pqErr.Constraint {
			case "tournaments_league_id_fkey":
				return ErrTournamentLeagueInvalid
			case "tournaments_workspace_id_fkey":
				return ErrTournamentWorkspaceInvalid
			}
		}
	}
	return err
}

func (r *postgresTournamentRepository) Create(ctx context.Context, tournament *models.Tournament) error {
	query := `
		INSERT INTO tournaments (workspace_id, league_id, name, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		tournament.WorkspaceID,
		tournament.LeagueID,
		tournament.Name,
		tournament.Status,
	).Scan(&tournament.ID, &tournament.CreatedAt)

	return r.handleTournamentError(err)
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	query := `
		SELECT id, workspace_id, league_id, name, status, logo_key, created_at
		FROM tournaments
		WHERE id = $1`

	var t models.Tournament
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID,
		&t.WorkspaceID,
		&t.LeagueID,
		&t.Name,
		&t.Status,
		&t.LogoKey,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to scan tournament by id %d: %w", id, err)
	}
	return &t, nil
}

func (r *postgresTournamentRepository) ListByWorkspace(ctx context.Context, workspaceID int, statusFilter *models.TournamentStatus) ([]*models.Tournament, error) {
	query := `
		SELECT id, workspace_id, league_id, name, status, logo_key, created_at
		FROM tournaments
		WHERE workspace_id = $1`
	args := []interface{}{workspaceID}

	if statusFilter != nil {
		query += " AND status = $2"
		args = append(args, *statusFilter)
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tournaments for workspace %d: %w", workspaceID, err)
	}
	defer rows.Close()

	tournaments := make([]*models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if err := rows.Scan(&t.ID, &t.WorkspaceID, &t.LeagueID, &t.Name, &t.Status, &t.LogoKey, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tournament row: %w", err)
		}
		tournaments = append(tournaments, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *postgresTournamentRepository) Update(ctx context.Context, exec SQLExecutor, tournament *models.Tournament) error {
	executor := r.getExecutor(exec)
	query := `UPDATE tournaments SET name = $1, league_id = $2 WHERE id = $3`
	result, err := executor.ExecContext(ctx, query, tournament.Name, tournament.LeagueID, tournament.ID)
	if err != nil {
		return r.handleTournamentError(err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) UpdateStatus(ctx context.Context, exec SQLExecutor, id int, status models.TournamentStatus) error {
	executor := r.getExecutor(exec)
	result, err := executor.ExecContext(ctx, `UPDATE tournaments SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) UpdateLogoKey(ctx context.Context, id int, logoKey *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE tournaments SET logo_key = $1 WHERE id = $2`, logoKey, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tournaments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}
