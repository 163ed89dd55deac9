package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/live"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/models"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/repositories"
)

type CreateMatchInput struct {
	TournamentID int  `json:"tournament_id"`
	Round        int  `json:"round"`
	Player1ID    int  `json:"player1_id"`
	Player2ID    *int `json:"player2_id,omitempty"`
}

type MatchService interface {
	Create(ctx context.Context, currentUserID int, input CreateMatchInput) (*models.Match, error)
	ListByTournament(ctx context.Context, currentUserID, tournamentID int, round *int, status *models.MatchStatus) ([]models.Match, error)
	ReportResult(ctx context.Context, currentUserID, matchID int, winnerID *int) (*models.Match, error)
	Delete(ctx context.Context, currentUserID, matchID int) error
}

type matchService struct {
	matchRepo        repositories.MatchRepository
	tournamentRepo   repositories.TournamentRepository
	rosterRepo       repositories.RosterRepository
	workspaceService WorkspaceService
	standingsService StandingsService
	hub              *live.Hub
	logger           *slog.Logger
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	tournamentRepo repositories.TournamentRepository,
	rosterRepo repositories.RosterRepository,
	workspaceService WorkspaceService,
	standingsService StandingsService,
	hub *live.Hub,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		matchRepo:        matchRepo,
		tournamentRepo:   tournamentRepo,
		rosterRepo:       rosterRepo,
		workspaceService: workspaceService,
		standingsService: standingsService,
		hub:              hub,
		logger:           logger,
	}
}

// Create records a pairing for a round. A missing second player means a bye:
// the match is stored already completed as a win for player one, since there
// is nothing left to play.
func (s *matchService) Create(ctx context.Context, currentUserID int, input CreateMatchInput) (*models.Match, error) {
	if input.Round <= 0 {
		return nil, ErrRoundInvalid
	}
	if input.Player2ID != nil && *input.Player2ID == input.Player1ID {
		return nil, ErrMatchPlayersIdentical
	}

	tournament, err := s.loadAuthorizedTournament(ctx, currentUserID, input.TournamentID)
	if err != nil {
		return nil, err
	}
	if tournament.Status != models.TournamentStatusActive {
		return nil, ErrTournamentNotActive
	}

	roster, err := s.rosterRepo.ListByTournament(ctx, input.TournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster for tournament %d: %w", input.TournamentID, err)
	}
	enrolled := make(map[int]bool, len(roster))
	for _, entry := range roster {
		enrolled[entry.PlayerID] = true
	}
	if !enrolled[input.Player1ID] {
		return nil, ErrPlayerNotOnRoster
	}
	if input.Player2ID != nil && !enrolled[*input.Player2ID] {
		return nil, ErrPlayerNotOnRoster
	}

	match := &models.Match{
		TournamentID: input.TournamentID,
		Round:        input.Round,
		Player1ID:    input.Player1ID,
		Player2ID:    input.Player2ID,
		Status:       models.MatchStatusReady,
	}
	if input.Player2ID == nil {
		match.Status = models.MatchStatusBye
		match.WinnerID = &match.Player1ID
	}

	if err := s.matchRepo.Create(ctx, nil, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	if match.Status == models.MatchStatusBye {
		s.broadcastStandings(ctx, input.TournamentID)
	}
	return match, nil
}

func (s *matchService) ListByTournament(ctx context.Context, currentUserID, tournamentID int, round *int, status *models.MatchStatus) ([]models.Match, error) {
	if _, err := s.loadAuthorizedTournament(ctx, currentUserID, tournamentID); err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID, round, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for tournament %d: %w", tournamentID, err)
	}
	return matches, nil
}

// ReportResult records the outcome of a playable match. A nil winner means a
// draw. Byes are immutable and completed matches stay completed.
func (s *matchService) ReportResult(ctx context.Context, currentUserID, matchID int, winnerID *int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to load match %d: %w", matchID, err)
	}
	if _, err := s.loadAuthorizedTournament(ctx, currentUserID, match.TournamentID); err != nil {
		return nil, err
	}

	if match.Status == models.MatchStatusCompleted || match.Status == models.MatchStatusBye {
		return nil, ErrMatchAlreadyCompleted
	}
	if winnerID != nil {
		isP1 := *winnerID == match.Player1ID
		isP2 := match.Player2ID != nil && *winnerID == *match.Player2ID
		if !isP1 && !isP2 {
			return nil, ErrWinnerNotInMatch
		}
	}

	if err := s.matchRepo.UpdateResult(ctx, matchID, winnerID, models.MatchStatusCompleted); err != nil {
		return nil, fmt.Errorf("failed to record result for match %d: %w", matchID, err)
	}
	match.WinnerID = winnerID
	match.Status = models.MatchStatusCompleted

	s.broadcastStandings(ctx, match.TournamentID)
	return match, nil
}

func (s *matchService) Delete(ctx context.Context, currentUserID, matchID int) error {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to load match %d: %w", matchID, err)
	}
	if _, err := s.loadAuthorizedTournament(ctx, currentUserID, match.TournamentID); err != nil {
		return err
	}
	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		return fmt.Errorf("failed to delete match %d: %w", matchID, err)
	}
	s.broadcastStandings(ctx, match.TournamentID)
	return nil
}

// broadcastStandings recomputes the leaderboard and pushes it to the
// tournament's websocket room. Failures are logged, never propagated: the
// result was already persisted, and subscribers will catch up on the next
// update or fetch.
func (s *matchService) broadcastStandings(ctx context.Context, tournamentID int) {
	computed, err := s.standingsService.ComputeForTournament(ctx, tournamentID)
	if err != nil {
		s.logger.Error("failed to recompute standings for broadcast",
			slog.Int("tournament_id", tournamentID), slog.Any("error", err))
		return
	}
	s.hub.BroadcastToRoom(live.RoomForTournament(tournamentID), live.Message{
		Type:    "STANDINGS_UPDATED",
		Payload: computed,
	})
}

func (s *matchService) loadAuthorizedTournament(ctx context.Context, currentUserID, tournamentID int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %d: %w", tournamentID, err)
	}
	if _, err := s.workspaceService.Authorize(ctx, currentUserID, tournament.WorkspaceID); err != nil {
		return nil, err
	}
	return tournament, nil
}
