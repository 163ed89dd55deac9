package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/models"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/repositories"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/standings"
)

// StandingsService is the boundary between storage and the pure ranking
// engine: it materializes the roster and match history for one tournament and
// hands them to standings.Compute. The engine itself never touches the
// database, the current user or any other ambient state.
type StandingsService interface {
	GetStandings(ctx context.Context, currentUserID, tournamentID int) ([]models.Standing, error)
	GetFinalStandings(ctx context.Context, currentUserID, tournamentID int) ([]models.StandingSnapshot, error)

	// ComputeForTournament recomputes standings without an authorization
	// check. Callers must have already verified access to the tournament.
	ComputeForTournament(ctx context.Context, tournamentID int) ([]models.Standing, error)
}

type standingsService struct {
	tournamentRepo   repositories.TournamentRepository
	rosterRepo       repositories.RosterRepository
	matchRepo        repositories.MatchRepository
	snapshotRepo     repositories.StandingSnapshotRepository
	workspaceService WorkspaceService
	rules            standings.Rules
}

func NewStandingsService(
	tournamentRepo repositories.TournamentRepository,
	rosterRepo repositories.RosterRepository,
	matchRepo repositories.MatchRepository,
	snapshotRepo repositories.StandingSnapshotRepository,
	workspaceService WorkspaceService,
	rules standings.Rules,
) StandingsService {
	return &standingsService{
		tournamentRepo:   tournamentRepo,
		rosterRepo:       rosterRepo,
		matchRepo:        matchRepo,
		snapshotRepo:     snapshotRepo,
		workspaceService: workspaceService,
		rules:            rules,
	}
}

func (s *standingsService) GetStandings(ctx context.Context, currentUserID, tournamentID int) ([]models.Standing, error) {
	if err := s.authorize(ctx, currentUserID, tournamentID); err != nil {
		return nil, err
	}
	return s.ComputeForTournament(ctx, tournamentID)
}

func (s *standingsService) GetFinalStandings(ctx context.Context, currentUserID, tournamentID int) ([]models.StandingSnapshot, error) {
	if err := s.authorize(ctx, currentUserID, tournamentID); err != nil {
		return nil, err
	}
	snapshots, err := s.snapshotRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load final standings for tournament %d: %w", tournamentID, err)
	}
	if len(snapshots) == 0 {
		return nil, ErrNotFound
	}
	return snapshots, nil
}

func (s *standingsService) ComputeForTournament(ctx context.Context, tournamentID int) ([]models.Standing, error) {
	var (
		roster  []models.TournamentPlayer
		matches []models.Match
	)

	// Roster and match history are independent reads.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.rosterRepo.ListByTournament(gctx, tournamentID)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.ListByTournament(gctx, tournamentID, nil, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load data for standings of tournament %d: %w", tournamentID, err)
	}

	computed, err := standings.Compute(roster, matches, s.rules)
	if err != nil {
		// Integrity faults from the engine mean the stored match set is
		// corrupt; surface them as such rather than returning a partial
		// leaderboard.
		return nil, fmt.Errorf("%w: tournament %d: %w", ErrStandingsInconsistent, tournamentID, err)
	}
	return computed, nil
}

func (s *standingsService) authorize(ctx context.Context, currentUserID, tournamentID int) error {
	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to load tournament %d: %w", tournamentID, err)
	}
	_, err = s.workspaceService.Authorize(ctx, currentUserID, tournament.WorkspaceID)
	return err
}
