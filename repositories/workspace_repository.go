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
	ErrWorkspaceNotFound     = errors.New("workspace not found")
	ErrWorkspaceNameConflict = errors.New("workspace name conflict")
	ErrWorkspaceOwnerInvalid = errors.New("workspace owner conflict or invalid")
)

type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *models.Workspace) error
	GetByID(ctx context.Context, id int) (*models.Workspace, error)
	ListByOwner(ctx context.Context, ownerID int) ([]*models.Workspace, error)
	Update(ctx context.Context, workspace *models.Workspace) error
	Delete(ctx context.Context, id int) error
}

type postgresWorkspaceRepository struct {
	db *sql.DB
}

func NewPostgresWorkspaceRepository(db *sql.DB) WorkspaceRepository {
	return &postgresWorkspaceRepository{db: db}
}

func (r *postgresWorkspaceRepository) Create(ctx context.Context, workspace *models.Workspace) error {
	query := `
		INSERT INTO workspaces (name, owner_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, workspace.Name, workspace.OwnerID).
		Scan(&workspace.ID, &workspace.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				return ErrWorkspaceNameConflict
			case "23503":
				return ErrWorkspaceOwnerInvalid
			}
		}
		return err
	}
	return nil
}

func (r *postgresWorkspaceRepository) GetByID(ctx context.Context, id int) (*models.Workspace, error) {
	query := `
		SELECT id, name, owner_id, created_at
		FROM workspaces
		WHERE id = $1`

	var ws models.Workspace
	err := r.db.QueryRowContext(ctx, query, id).Scan(&ws.ID, &ws.Name, &ws.OwnerID, &ws.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to scan workspace by id %d: %w", id, err)
	}
	return &ws, nil
}

func (r *postgresWorkspaceRepository) ListByOwner(ctx context.Context, ownerID int) ([]*models.Workspace, error) {
	query := `
		SELECT id, name, owner_id, created_at
		FROM workspaces
		WHERE owner_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query workspaces for owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	workspaces := make([]*models.Workspace, 0)
	for rows.Next() {
		var ws models.Workspace
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.OwnerID, &ws.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan workspace row: %w", err)
		}
		workspaces = append(workspaces, &ws)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return workspaces, nil
}

func (r *postgresWorkspaceRepository) Update(ctx context.Context, workspace *models.Workspace) error {
	query := `UPDATE workspaces SET name = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, workspace.Name, workspace.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrWorkspaceNameConflict
		}
		return err
	}
	return checkAffectedRows(result, ErrWorkspaceNotFound)
}

func (r *postgresWorkspaceRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM workspaces WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrWorkspaceNotFound)
}
