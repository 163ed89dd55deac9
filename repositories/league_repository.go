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
	ErrLeagueNotFound         = errors.New("league not found")
	ErrLeagueNameConflict     = errors.New("league name conflict")
	ErrLeagueWorkspaceInvalid = errors.New("league workspace conflict or invalid")
)

type LeagueRepository interface {
	Create(ctx context.Context, league *models.League) error
	GetByID(ctx context.Context, id int) (*models.League, error)
	ListByWorkspace(ctx context.Context, workspaceID int) ([]*models.League, error)
	Update(ctx context.Context, league *models.League) error
	Delete(ctx context.Context, id int) error
}

type postgresLeagueRepository struct {
	db *sql.DB
}

func NewPostgresLeagueRepository(db *sql.DB) LeagueRepository {
	return &postgresLeagueRepository{db: db}
}

func (r *postgresLeagueRepository) Create(ctx context.Context, league *models.League) error {
	query := `
		INSERT INTO leagues (workspace_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, league.WorkspaceID, league.Name, league.Description).
		Scan(&league.ID, &league.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				return ErrLeagueNameConflict
			case "23503":
				return ErrLeagueWorkspaceInvalid
			}
		}
		return err
	}
	return nil
}

func (r *postgresLeagueRepository) GetByID(ctx context.Context, id int) (*models.League, error) {
	query := `
		SELECT id, workspace_id, name, description, created_at
		FROM leagues
		WHERE id = $1`

	var league models.League
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&league.ID,
		&league.WorkspaceID,
		&league.Name,
		&league.Description,
		&league.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to scan league by id %d: %w", id, err)
	}
	return &league, nil
}

func (r *postgresLeagueRepository) ListByWorkspace(ctx context.Context, workspaceID int) ([]*models.League, error) {
	query := `
		SELECT id, workspace_id, name, description, created_at
		FROM leagues
		WHERE workspace_id = $1
		ORDER BY name ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leagues for workspace %d: %w", workspaceID, err)
	}
	defer rows.Close()

	leagues := make([]*models.League, 0)
	for rows.Next() {
		var league models.League
		if err := rows.Scan(&league.ID, &league.WorkspaceID, &league.Name, &league.Description, &league.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan league row: %w", err)
		}
		leagues = append(leagues, &league)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return leagues, nil
}

func (r *postgresLeagueRepository) Update(ctx context.Context, league *models.League) error {
	query := `UPDATE leagues SET name = $1, description = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, league.Name, league.Description, league.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrLeagueNameConflict
		}
		return err
	}
	return checkAffectedRows(result, ErrLeagueNotFound)
}

func (r *postgresLeagueRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM leagues WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrLeagueNotFound)
}
