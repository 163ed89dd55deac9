package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/live"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/models"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/repositories"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/storage"
)

type CreateTournamentInput struct {
	Name     string `json:"name"`
	LeagueID *int   `json:"league_id,omitempty"`
}

type UpdateTournamentInput struct {
	Name     string `json:"name"`
	LeagueID *int   `json:"league_id,omitempty"`
}

type TournamentService interface {
	Create(ctx context.Context, currentUserID, workspaceID int, input CreateTournamentInput) (*models.Tournament, error)
	GetByID(ctx context.Context, currentUserID, tournamentID int) (*models.Tournament, error)
	ListByWorkspace(ctx context.Context, currentUserID, workspaceID int, status *models.TournamentStatus) ([]*models.Tournament, error)
	Update(ctx context.Context, currentUserID, tournamentID int, input UpdateTournamentInput) (*models.Tournament, error)
	Delete(ctx context.Context, currentUserID, tournamentID int) error

	Start(ctx context.Context, currentUserID, tournamentID int) (*models.Tournament, error)
	Complete(ctx context.Context, currentUserID, tournamentID int) (*models.Tournament, error)

	AddPlayer(ctx context.Context, currentUserID, tournamentID, playerID int) (*models.TournamentPlayer, error)
	RemovePlayer(ctx context.Context, currentUserID, tournamentID, playerID int) error
	DropPlayer(ctx context.Context, currentUserID, tournamentID, playerID int, atRound *int) error

	UploadLogo(ctx context.Context, currentUserID, tournamentID int, contentType string, file io.Reader) (*models.Tournament, error)
}

type tournamentService struct {
	db               *sql.DB
	tournamentRepo   repositories.TournamentRepository
	leagueRepo       repositories.LeagueRepository
	playerRepo       repositories.PlayerRepository
	rosterRepo       repositories.RosterRepository
	matchRepo        repositories.MatchRepository
	snapshotRepo     repositories.StandingSnapshotRepository
	workspaceService WorkspaceService
	standingsService StandingsService
	uploader         storage.FileUploader
	hub              *live.Hub
	logger           *slog.Logger
}

func NewTournamentService(
	db *sql.DB,
	tournamentRepo repositories.TournamentRepository,
	leagueRepo repositories.LeagueRepository,
	playerRepo repositories.PlayerRepository,
	rosterRepo repositories.RosterRepository,
	matchRepo repositories.MatchRepository,
	snapshotRepo repositories.StandingSnapshotRepository,
	workspaceService WorkspaceService,
	standingsService StandingsService,
	uploader storage.FileUploader,
	hub *live.Hub,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		db:               db,
		tournamentRepo:   tournamentRepo,
		leagueRepo:       leagueRepo,
		playerRepo:       playerRepo,
		rosterRepo:       rosterRepo,
		matchRepo:        matchRepo,
		snapshotRepo:     snapshotRepo,
		workspaceService: workspaceService,
		standingsService: standingsService,
		uploader:         uploader,
		hub:              hub,
		logger:           logger,
	}
}

func (s *tournamentService) Create(ctx context.Context, currentUserID, workspaceID int, input CreateTournamentInput) (*models.Tournament, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if _, err := s.workspaceService.Authorize(ctx, currentUserID, workspaceID); err != nil {
		return nil, err
	}
	if input.LeagueID != nil {
		league, err := s.leagueRepo.GetByID(ctx, *input.LeagueID)
		if err != nil {
			if errors.Is(err, repositories.ErrLeagueNotFound) {
				return nil, ErrLeagueNotFound
			}
			return nil, fmt.Errorf("failed to load league %d: %w", *input.LeagueID, err)
		}
		if league.WorkspaceID != workspaceID {
			return nil, ErrLeagueNotInWorkspace
		}
	}

	tournament := &models.Tournament{
		WorkspaceID: workspaceID,
		LeagueID:    input.LeagueID,
		Name:        input.Name,
		Status:      models.TournamentStatusDraft,
	}
	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		if errors.Is(err, repositories.ErrTournamentNameConflict) {
			return nil, ErrTournamentNameConflict
		}
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	return tournament, nil
}

// GetByID returns the tournament enriched with its roster, match list and
// league, loaded in parallel.
func (s *tournamentService) GetByID(ctx context.Context, currentUserID, tournamentID int) (*models.Tournament, error) {
	tournament, err := s.loadAuthorized(ctx, currentUserID, tournamentID)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		roster, err := s.rosterRepo.ListByTournament(gctx, tournamentID)
		if err != nil {
			return err
		}
		tournament.Players = roster
		return nil
	})
	g.Go(func() error {
		matches, err := s.matchRepo.ListByTournament(gctx, tournamentID, nil, nil)
		if err != nil {
			return err
		}
		tournament.Matches = matches
		return nil
	})
	if tournament.LeagueID != nil {
		leagueID := *tournament.LeagueID
		g.Go(func() error {
			league, err := s.leagueRepo.GetByID(gctx, leagueID)
			if err != nil {
				return err
			}
			tournament.League = league
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load tournament %d details: %w", tournamentID, err)
	}

	s.attachLogoURL(tournament)
	return tournament, nil
}

func (s *tournamentService) ListByWorkspace(ctx context.Context, currentUserID, workspaceID int, status *models.TournamentStatus) ([]*models.Tournament, error) {
	if _, err := s.workspaceService.Authorize(ctx, currentUserID, workspaceID); err != nil {
		return nil, err
	}
	tournaments, err := s.tournamentRepo.ListByWorkspace(ctx, workspaceID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments for workspace %d: %w", workspaceID, err)
	}
	for _, t := range tournaments {
		s.attachLogoURL(t)
	}
	return tournaments, nil
}

func (s *tournamentService) Update(ctx context.Context, currentUserID, tournamentID int, input UpdateTournamentInput) (*models.Tournament, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	tournament, err := s.loadAuthorized(ctx, currentUserID, tournamentID)
	if err != nil {
		return nil, err
	}
	if input.LeagueID != nil {
		league, err := s.leagueRepo.GetByID(ctx, *input.LeagueID)
		if err != nil {
			if errors.Is(err, repositories.ErrLeagueNotFound) {
				return nil, ErrLeagueNotFound
			}
			return nil, fmt.Errorf("failed to load league %d: %w", *input.LeagueID, err)
		}
		if league.WorkspaceID != tournament.WorkspaceID {
			return nil, ErrLeagueNotInWorkspace
		}
	}

	tournament.Name = input.Name
	tournament.LeagueID = input.LeagueID
	if err := s.tournamentRepo.Update(ctx, nil, tournament); err != nil {
		if errors.Is(err, repositories.ErrTournamentNameConflict) {
			return nil, ErrTournamentNameConflict
		}
		return nil, fmt.Errorf("failed to update tournament %d: %w", tournamentID, err)
	}
	return tournament, nil
}

func (s *tournamentService) Delete(ctx context.Context, currentUserID, tournamentID int) error {
	tournament, err := s.loadAuthorized(ctx, currentUserID, tournamentID)
	if err != nil {
		return err
	}
	if err := s.tournamentRepo.Delete(ctx, tournamentID); err != nil {
		return fmt.Errorf("failed to delete tournament %d: %w", tournamentID, err)
	}
	if tournament.LogoKey != nil {
		if err := s.uploader.Delete(ctx, *tournament.LogoKey); err != nil {
			s.logger.Warn("failed to delete tournament logo from storage",
				slog.Int("tournament_id", tournamentID), slog.Any("error", err))
		}
	}
	return nil
}

func (s *tournamentService) Start(ctx context.Context, currentUserID, tournamentID int) (*models.Tournament, error) {
	tournament, err := s.loadAuthorized(ctx, currentUserID, tournamentID)
	if err != nil {
		return nil, err
	}
	if tournament.Status != models.TournamentStatusDraft {
		return nil, ErrTournamentNotDraft
	}
	if err := s.tournamentRepo.UpdateStatus(ctx, nil, tournamentID, models.TournamentStatusActive); err != nil {
		return nil, fmt.Errorf("failed to start tournament %d: %w", tournamentID, err)
	}
	tournament.Status = models.TournamentStatusActive
	return tournament, nil
}

// Complete freezes the event: the final leaderboard is computed once and
// snapshotted in the same transaction that flips the status, so a completed
// tournament always has exactly one stored final table.
func (s *tournamentService) Complete(ctx context.Context, currentUserID, tournamentID int) (*models.Tournament, error) {
	tournament, err := s.loadAuthorized(ctx, currentUserID, tournamentID)
	if err != nil {
		return nil, err
	}
	if tournament.Status == models.TournamentStatusCompleted {
		return nil, ErrTournamentCompleted
	}
	if tournament.Status != models.TournamentStatusActive {
		return nil, ErrTournamentNotActive
	}

	final, err := s.standingsService.ComputeForTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	var txErr error
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if txErr != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error("rollback failed after completion error",
					slog.Int("tournament_id", tournamentID), slog.Any("error", rbErr))
			}
		}
	}()

	if txErr = s.snapshotRepo.DeleteByTournament(ctx, tx, tournamentID); txErr != nil {
		return nil, fmt.Errorf("failed to clear stale snapshots for tournament %d: %w", tournamentID, txErr)
	}
	if txErr = s.snapshotRepo.BatchCreate(ctx, tx, tournamentID, final); txErr != nil {
		return nil, fmt.Errorf("failed to snapshot final standings for tournament %d: %w", tournamentID, txErr)
	}
	if txErr = s.tournamentRepo.UpdateStatus(ctx, tx, tournamentID, models.TournamentStatusCompleted); txErr != nil {
		return nil, fmt.Errorf("failed to complete tournament %d: %w", tournamentID, txErr)
	}
	if txErr = tx.Commit(); txErr != nil {
		return nil, fmt.Errorf("failed to commit tournament completion: %w", txErr)
	}

	tournament.Status = models.TournamentStatusCompleted
	s.hub.BroadcastToRoom(live.RoomForTournament(tournamentID), live.Message{
		Type:    "TOURNAMENT_COMPLETED",
		Payload: final,
	})
	return tournament, nil
}

func (s *tournamentService) AddPlayer(ctx context.Context, currentUserID, tournamentID, playerID int) (*models.TournamentPlayer, error) {
	tournament, err := s.loadAuthorized(ctx, currentUserID, tournamentID)
	if err != nil {
		return nil, err
	}
	if tournament.Status == models.TournamentStatusCompleted {
		return nil, ErrTournamentCompleted
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to load player %d: %w", playerID, err)
	}
	if player.WorkspaceID != tournament.WorkspaceID {
		return nil, ErrPlayerNotInWorkspace
	}

	entry := &models.TournamentPlayer{
		TournamentID: tournamentID,
		PlayerID:     playerID,
		Name:         player.Name,
	}
	if err := s.rosterRepo.Add(ctx, entry); err != nil {
		if errors.Is(err, repositories.ErrRosterEntryConflict) {
			return nil, ErrRosterConflict
		}
		return nil, fmt.Errorf("failed to enroll player %d in tournament %d: %w", playerID, tournamentID, err)
	}
	return entry, nil
}

// RemovePlayer takes a player off the roster entirely. Only allowed before
// the first round exists; once a player has history, use DropPlayer so their
// completed matches keep feeding opponents' tie-breaks.
func (s *tournamentService) RemovePlayer(ctx context.Context, currentUserID, tournamentID, playerID int) error {
	tournament, err := s.loadAuthorized(ctx, currentUserID, tournamentID)
	if err != nil {
		return err
	}
	if tournament.Status != models.TournamentStatusDraft {
		return ErrTournamentNotDraft
	}
	if err := s.rosterRepo.Remove(ctx, tournamentID, playerID); err != nil {
		if errors.Is(err, repositories.ErrRosterEntryNotFound) {
			return ErrPlayerNotOnRoster
		}
		return fmt.Errorf("failed to remove player %d from tournament %d: %w", playerID, tournamentID, err)
	}
	return nil
}

func (s *tournamentService) DropPlayer(ctx context.Context, currentUserID, tournamentID, playerID int, atRound *int) error {
	tournament, err := s.loadAuthorized(ctx, currentUserID, tournamentID)
	if err != nil {
		return err
	}
	if tournament.Status != models.TournamentStatusActive {
		return ErrTournamentNotActive
	}

	roster, err := s.rosterRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("failed to load roster for tournament %d: %w", tournamentID, err)
	}
	for _, entry := range roster {
		if entry.PlayerID != playerID {
			continue
		}
		if entry.Dropped {
			return ErrPlayerAlreadyDropped
		}
		if err := s.rosterRepo.MarkDropped(ctx, tournamentID, playerID, atRound); err != nil {
			return fmt.Errorf("failed to drop player %d from tournament %d: %w", playerID, tournamentID, err)
		}
		return nil
	}
	return ErrPlayerNotOnRoster
}

func (s *tournamentService) UploadLogo(ctx context.Context, currentUserID, tournamentID int, contentType string, file io.Reader) (*models.Tournament, error) {
	tournament, err := s.loadAuthorized(ctx, currentUserID, tournamentID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("tournaments/%d/logo_%d", tournamentID, time.Now().UnixNano())
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload logo for tournament %d: %w", tournamentID, err)
	}

	oldKey := tournament.LogoKey
	if err := s.tournamentRepo.UpdateLogoKey(ctx, tournamentID, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to persist logo key for tournament %d: %w", tournamentID, err)
	}
	if oldKey != nil && *oldKey != result.Key {
		if err := s.uploader.Delete(ctx, *oldKey); err != nil {
			s.logger.Warn("failed to delete previous tournament logo",
				slog.Int("tournament_id", tournamentID), slog.Any("error", err))
		}
	}

	tournament.LogoKey = &result.Key
	s.attachLogoURL(tournament)
	return tournament, nil
}

func (s *tournamentService) attachLogoURL(tournament *models.Tournament) {
	if tournament.LogoKey != nil {
		url := s.uploader.GetPublicURL(*tournament.LogoKey)
		if url != "" {
			tournament.LogoURL = &url
		}
	}
}

func (s *tournamentService) loadAuthorized(ctx context.Context, currentUserID, tournamentID int) (*models.Tournament, error) {
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
