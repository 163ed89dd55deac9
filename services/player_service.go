package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/models"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/repositories"
)

type PlayerService interface {
	Create(ctx context.Context, currentUserID, workspaceID int, name string) (*models.Player, error)
	GetByID(ctx context.Context, currentUserID, playerID int) (*models.Player, error)
	ListByWorkspace(ctx context.Context, currentUserID, workspaceID int) ([]*models.Player, error)
	Rename(ctx context.Context, currentUserID, playerID int, name string) (*models.Player, error)
	Delete(ctx context.Context, currentUserID, playerID int) error
}

type playerService struct {
	playerRepo       repositories.PlayerRepository
	workspaceService WorkspaceService
}

func NewPlayerService(playerRepo repositories.PlayerRepository, workspaceService WorkspaceService) PlayerService {
	return &playerService{
		playerRepo:       playerRepo,
		workspaceService: workspaceService,
	}
}

func (s *playerService) Create(ctx context.Context, currentUserID, workspaceID int, name string) (*models.Player, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if _, err := s.workspaceService.Authorize(ctx, currentUserID, workspaceID); err != nil {
		return nil, err
	}

	player := &models.Player{WorkspaceID: workspaceID, Name: name}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerNameConflict) {
			return nil, ErrPlayerNameConflict
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return player, nil
}

func (s *playerService) GetByID(ctx context.Context, currentUserID, playerID int) (*models.Player, error) {
	return s.loadAuthorized(ctx, currentUserID, playerID)
}

func (s *playerService) ListByWorkspace(ctx context.Context, currentUserID, workspaceID int) ([]*models.Player, error) {
	if _, err := s.workspaceService.Authorize(ctx, currentUserID, workspaceID); err != nil {
		return nil, err
	}
	players, err := s.playerRepo.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players for workspace %d: %w", workspaceID, err)
	}
	return players, nil
}

func (s *playerService) Rename(ctx context.Context, currentUserID, playerID int, name string) (*models.Player, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	player, err := s.loadAuthorized(ctx, currentUserID, playerID)
	if err != nil {
		return nil, err
	}
	player.Name = name
	if err := s.playerRepo.Update(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerNameConflict) {
			return nil, ErrPlayerNameConflict
		}
		return nil, fmt.Errorf("failed to rename player %d: %w", playerID, err)
	}
	return player, nil
}

func (s *playerService) Delete(ctx context.Context, currentUserID, playerID int) error {
	if _, err := s.loadAuthorized(ctx, currentUserID, playerID); err != nil {
		return err
	}
	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("failed to delete player %d: %w", playerID, err)
	}
	return nil
}

func (s *playerService) loadAuthorized(ctx context.Context, currentUserID, playerID int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to load player %d: %w", playerID, err)
	}
	if _, err := s.workspaceService.Authorize(ctx, currentUserID, player.WorkspaceID); err != nil {
		return nil, err
	}
	return player, nil
}
