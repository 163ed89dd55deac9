package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/models"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/repositories"
)

type LeagueService interface {
	Create(ctx context.Context, currentUserID, workspaceID int, name string, description *string) (*models.League, error)
	GetByID(ctx context.Context, currentUserID, leagueID int) (*models.League, error)
	ListByWorkspace(ctx context.Context, currentUserID, workspaceID int) ([]*models.League, error)
	Update(ctx context.Context, currentUserID, leagueID int, name string, description *string) (*models.League, error)
	Delete(ctx context.Context, currentUserID, leagueID int) error
}

type leagueService struct {
	leagueRepo       repositories.LeagueRepository
	workspaceService WorkspaceService
}

func NewLeagueService(leagueRepo repositories.LeagueRepository, workspaceService WorkspaceService) LeagueService {
	return &leagueService{
		leagueRepo:       leagueRepo,
		workspaceService: workspaceService,
	}
}

func (s *leagueService) Create(ctx context.Context, currentUserID, workspaceID int, name string, description *string) (*models.League, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if _, err := s.workspaceService.Authorize(ctx, currentUserID, workspaceID); err != nil {
		return nil, err
	}

	league := &models.League{WorkspaceID: workspaceID, Name: name, Description: description}
	if err := s.leagueRepo.Create(ctx, league); err != nil {
		if errors.Is(err, repositories.ErrLeagueNameConflict) {
			return nil, ErrLeagueNameConflict
		}
		return nil, fmt.Errorf("failed to create league: %w", err)
	}
	return league, nil
}

func (s *leagueService) GetByID(ctx context.Context, currentUserID, leagueID int) (*models.League, error) {
	league, err := s.loadAuthorized(ctx, currentUserID, leagueID)
	if err != nil {
		return nil, err
	}
	return league, nil
}

func (s *leagueService) ListByWorkspace(ctx context.Context, currentUserID, workspaceID int) ([]*models.League, error) {
	if _, err := s.workspaceService.Authorize(ctx, currentUserID, workspaceID); err != nil {
		return nil, err
	}
	leagues, err := s.leagueRepo.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues for workspace %d: %w", workspaceID, err)
	}
	return leagues, nil
}

func (s *leagueService) Update(ctx context.Context, currentUserID, leagueID int, name string, description *string) (*models.League, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	league, err := s.loadAuthorized(ctx, currentUserID, leagueID)
	if err != nil {
		return nil, err
	}
	league.Name = name
	league.Description = description
	if err := s.leagueRepo.Update(ctx, league); err != nil {
		if errors.Is(err, repositories.ErrLeagueNameConflict) {
			return nil, ErrLeagueNameConflict
		}
		return nil, fmt.Errorf("failed to update league %d: %w", leagueID, err)
	}
	return league, nil
}

func (s *leagueService) Delete(ctx context.Context, currentUserID, leagueID int) error {
	if _, err := s.loadAuthorized(ctx, currentUserID, leagueID); err != nil {
		return err
	}
	if err := s.leagueRepo.Delete(ctx, leagueID); err != nil {
		return fmt.Errorf("failed to delete league %d: %w", leagueID, err)
	}
	return nil
}

func (s *leagueService) loadAuthorized(ctx context.Context, currentUserID, leagueID int) (*models.League, error) {
	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		if errors.Is(err, repositories.ErrLeagueNotFound) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to load league %d: %w", leagueID, err)
	}
	if _, err := s.workspaceService.Authorize(ctx, currentUserID, league.WorkspaceID); err != nil {
		return nil, err
	}
	return league, nil
}
