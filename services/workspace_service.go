package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/models"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/repositories"
)

// WorkspaceService владеет правилом доступа всего приложения: любой ресурс
// доступен только владельцу его workspace. Сервисы ниже по цепочке вызывают
// Authorize вместо собственных проверок.
type WorkspaceService interface {
	Create(ctx context.Context, currentUserID int, name string) (*models.Workspace, error)
	GetByID(ctx context.Context, currentUserID, workspaceID int) (*models.Workspace, error)
	ListMine(ctx context.Context, currentUserID int) ([]*models.Workspace, error)
	Rename(ctx context.Context, currentUserID, workspaceID int, name string) (*models.Workspace, error)
	Delete(ctx context.Context, currentUserID, workspaceID int) error

	// Authorize returns the workspace if currentUserID may act in it.
	Authorize(ctx context.Context, currentUserID, workspaceID int) (*models.Workspace, error)
}

type workspaceService struct {
	workspaceRepo repositories.WorkspaceRepository
}

func NewWorkspaceService(workspaceRepo repositories.WorkspaceRepository) WorkspaceService {
	return &workspaceService{workspaceRepo: workspaceRepo}
}

func (s *workspaceService) Create(ctx context.Context, currentUserID int, name string) (*models.Workspace, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	ws := &models.Workspace{Name: name, OwnerID: currentUserID}
	if err := s.workspaceRepo.Create(ctx, ws); err != nil {
		if errors.Is(err, repositories.ErrWorkspaceNameConflict) {
			return nil, ErrWorkspaceNameConflict
		}
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return ws, nil
}

func (s *workspaceService) GetByID(ctx context.Context, currentUserID, workspaceID int) (*models.Workspace, error) {
	return s.Authorize(ctx, currentUserID, workspaceID)
}

func (s *workspaceService) ListMine(ctx context.Context, currentUserID int) ([]*models.Workspace, error) {
	workspaces, err := s.workspaceRepo.ListByOwner(ctx, currentUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return workspaces, nil
}

func (s *workspaceService) Rename(ctx context.Context, currentUserID, workspaceID int, name string) (*models.Workspace, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	ws, err := s.Authorize(ctx, currentUserID, workspaceID)
	if err != nil {
		return nil, err
	}
	ws.Name = name
	if err := s.workspaceRepo.Update(ctx, ws); err != nil {
		if errors.Is(err, repositories.ErrWorkspaceNameConflict) {
			return nil, ErrWorkspaceNameConflict
		}
		return nil, fmt.Errorf("failed to rename workspace %d: %w", workspaceID, err)
	}
	return ws, nil
}

func (s *workspaceService) Delete(ctx context.Context, currentUserID, workspaceID int) error {
	if _, err := s.Authorize(ctx, currentUserID, workspaceID); err != nil {
		return err
	}
	if err := s.workspaceRepo.Delete(ctx, workspaceID); err != nil {
		if errors.Is(err, repositories.ErrWorkspaceNotFound) {
			return ErrWorkspaceNotFound
		}
		return fmt.Errorf("failed to delete workspace %d: %w", workspaceID, err)
	}
	return nil
}

func (s *workspaceService) Authorize(ctx context.Context, currentUserID, workspaceID int) (*models.Workspace, error) {
	ws, err := s.workspaceRepo.GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, repositories.ErrWorkspaceNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to load workspace %d: %w", workspaceID, err)
	}
	if ws.OwnerID != currentUserID {
		return nil, ErrForbiddenOperation
	}
	return ws, nil
}
