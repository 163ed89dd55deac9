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
	ErrPlayerNotFound         = errors.New("player not found")
	ErrPlayerNameConflict     = errors.New("player name conflict")
	ErrPlayerWorkspaceInvalid = errors.New("player workspace conflict or invalid")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	ListByWorkspace(ctx context.Context, workspaceID int) ([]*models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, id int) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (workspace_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, player.WorkspaceID, player.Name).
		Scan(&player.ID, &player.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				return ErrPlayerNameConflict
			case "23503":
				return ErrPlayerWorkspaceInvalid
			}
		}
		return err
	}
	return nil
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `
		SELECT id, workspace_id, name, created_at
		FROM players
		WHERE id = $1`

	var player models.Player
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&player.ID,
		&player.WorkspaceID,
		&player.Name,
		&player.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to scan player by id %d: %w", id, err)
	}
	return &player, nil
}

func (r *postgresPlayerRepository) ListByWorkspace(ctx context.Context, workspaceID int) ([]*models.Player, error) {
	query := `
		SELECT id, workspace_id, name, created_at
		FROM players
		WHERE workspace_id = $1
		ORDER BY name ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query players for workspace %d: %w", workspaceID, err)
	}
	defer rows.Close()

	players := make([]*models.Player, 0)
	for rows.Next() {
		var player models.Player
		if err := rows.Scan(&player.ID, &player.WorkspaceID, &player.Name, &player.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		players = append(players, &player)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *postgresPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	query := `UPDATE players SET name = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, player.Name, player.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrPlayerNameConflict
		}
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}
