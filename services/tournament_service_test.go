package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/live"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/models"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/repositories"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/standings"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/storage"
)

type fakePlayerRepo struct {
	players map[int]*models.Player
}

func (f *fakePlayerRepo) Create(ctx context.Context, player *models.Player) error {
	panic("not used in tests")
}

func (f *fakePlayerRepo) GetByID(ctx context.Context, id int) (*models.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return nil, repositories.ErrPlayerNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePlayerRepo) ListByWorkspace(ctx context.Context, workspaceID int) ([]*models.Player, error) {
	panic("not used in tests")
}

func (f *fakePlayerRepo) Update(ctx context.Context, player *models.Player) error {
	panic("not used in tests")
}

func (f *fakePlayerRepo) Delete(ctx context.Context, id int) error {
	panic("not used in tests")
}

type fakeLeagueRepo struct {
	leagues map[int]*models.League
}

func (f *fakeLeagueRepo) Create(ctx context.Context, league *models.League) error {
	panic("not used in tests")
}

func (f *fakeLeagueRepo) GetByID(ctx context.Context, id int) (*models.League, error) {
	l, ok := f.leagues[id]
	if !ok {
		return nil, repositories.ErrLeagueNotFound
	}
	copied := *l
	return &copied, nil
}

func (f *fakeLeagueRepo) ListByWorkspace(ctx context.Context, workspaceID int) ([]*models.League, error) {
	panic("not used in tests")
}

func (f *fakeLeagueRepo) Update(ctx context.Context, league *models.League) error {
	panic("not used in tests")
}

func (f *fakeLeagueRepo) Delete(ctx context.Context, id int) error {
	panic("not used in tests")
}

type fakeUploader struct{}

func (fakeUploader) Upload(ctx context.Context, key, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	return &storage.UploadResult{Key: key, Location: "https://cdn.example.com/" + key}, nil
}

func (fakeUploader) Delete(ctx context.Context, key string) error { return nil }

func (fakeUploader) GetPublicURL(key string) string { return "https://cdn.example.com/" + key }

type tournamentFixture struct {
	svc        TournamentService
	rosterRepo *fakeRosterRepo
	matchRepo  *fakeMatchRepo
}

func newTournamentFixture(t *testing.T, status models.TournamentStatus) tournamentFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	workspaceService := newFakeWorkspaceService(&models.Workspace{
		ID:      testWorkspaceID,
		Name:    "Club",
		OwnerID: testOwnerID,
	})
	tournamentRepo := newFakeTournamentRepo(&models.Tournament{
		ID:          testTournamentID,
		WorkspaceID: testWorkspaceID,
		Name:        "Tuesday Swiss",
		Status:      status,
	})
	rosterRepo := newFakeRosterRepo()
	matchRepo := newFakeMatchRepo()
	snapshotRepo := newFakeSnapshotRepo()
	playerRepo := &fakePlayerRepo{players: map[int]*models.Player{
		1: {ID: 1, WorkspaceID: testWorkspaceID, Name: "Ann"},
		2: {ID: 2, WorkspaceID: testWorkspaceID, Name: "Ben"},
		3: {ID: 3, WorkspaceID: 99, Name: "Stranger"},
	}}
	leagueRepo := &fakeLeagueRepo{leagues: map[int]*models.League{}}

	standingsService := NewStandingsService(tournamentRepo, rosterRepo, matchRepo, snapshotRepo, workspaceService, standings.DefaultRules())
	svc := NewTournamentService(
		nil, // no transactional paths are exercised here
		tournamentRepo,
		leagueRepo,
		playerRepo,
		rosterRepo,
		matchRepo,
		snapshotRepo,
		workspaceService,
		standingsService,
		fakeUploader{},
		live.NewHub(logger),
		logger,
	)
	return tournamentFixture{svc: svc, rosterRepo: rosterRepo, matchRepo: matchRepo}
}

func TestTournamentServiceStart(t *testing.T) {
	fx := newTournamentFixture(t, models.TournamentStatusDraft)
	ctx := context.Background()

	tournament, err := fx.svc.Start(ctx, testOwnerID, testTournamentID)
	require.NoError(t, err)
	require.Equal(t, models.TournamentStatusActive, tournament.Status)

	// Already active, cannot start twice.
	_, err = fx.svc.Start(ctx, testOwnerID, testTournamentID)
	require.ErrorIs(t, err, ErrTournamentNotDraft)
}

func TestTournamentServiceAddPlayer(t *testing.T) {
	fx := newTournamentFixture(t, models.TournamentStatusDraft)
	ctx := context.Background()

	entry, err := fx.svc.AddPlayer(ctx, testOwnerID, testTournamentID, 1)
	require.NoError(t, err)
	require.Equal(t, "Ann", entry.Name)

	_, err = fx.svc.AddPlayer(ctx, testOwnerID, testTournamentID, 1)
	require.ErrorIs(t, err, ErrRosterConflict)

	_, err = fx.svc.AddPlayer(ctx, testOwnerID, testTournamentID, 3)
	require.ErrorIs(t, err, ErrPlayerNotInWorkspace)

	_, err = fx.svc.AddPlayer(ctx, testOwnerID, testTournamentID, 42)
	require.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestTournamentServiceRemovePlayerOnlyInDraft(t *testing.T) {
	fx := newTournamentFixture(t, models.TournamentStatusDraft)
	ctx := context.Background()

	_, err := fx.svc.AddPlayer(ctx, testOwnerID, testTournamentID, 1)
	require.NoError(t, err)
	require.NoError(t, fx.svc.RemovePlayer(ctx, testOwnerID, testTournamentID, 1))
	require.ErrorIs(t, fx.svc.RemovePlayer(ctx, testOwnerID, testTournamentID, 1), ErrPlayerNotOnRoster)

	active := newTournamentFixture(t, models.TournamentStatusActive)
	_, err = active.svc.AddPlayer(ctx, testOwnerID, testTournamentID, 1)
	require.NoError(t, err)
	require.ErrorIs(t, active.svc.RemovePlayer(ctx, testOwnerID, testTournamentID, 1), ErrTournamentNotDraft)
}

func TestTournamentServiceDropPlayer(t *testing.T) {
	fx := newTournamentFixture(t, models.TournamentStatusActive)
	ctx := context.Background()

	_, err := fx.svc.AddPlayer(ctx, testOwnerID, testTournamentID, 1)
	require.NoError(t, err)

	round := 2
	require.NoError(t, fx.svc.DropPlayer(ctx, testOwnerID, testTournamentID, 1, &round))

	roster, err := fx.rosterRepo.ListByTournament(ctx, testTournamentID)
	require.NoError(t, err)
	require.True(t, roster[0].Dropped)
	require.Equal(t, 2, *roster[0].DroppedAtRound)

	require.ErrorIs(t, fx.svc.DropPlayer(ctx, testOwnerID, testTournamentID, 1, nil), ErrPlayerAlreadyDropped)
	require.ErrorIs(t, fx.svc.DropPlayer(ctx, testOwnerID, testTournamentID, 2, nil), ErrPlayerNotOnRoster)
}

func TestTournamentServiceDropRequiresActive(t *testing.T) {
	fx := newTournamentFixture(t, models.TournamentStatusDraft)
	ctx := context.Background()

	_, err := fx.svc.AddPlayer(ctx, testOwnerID, testTournamentID, 1)
	require.NoError(t, err)
	require.ErrorIs(t, fx.svc.DropPlayer(ctx, testOwnerID, testTournamentID, 1, nil), ErrTournamentNotActive)
}

func TestTournamentServiceEnrollmentClosedWhenCompleted(t *testing.T) {
	fx := newTournamentFixture(t, models.TournamentStatusCompleted)
	ctx := context.Background()

	_, err := fx.svc.AddPlayer(ctx, testOwnerID, testTournamentID, 1)
	require.ErrorIs(t, err, ErrTournamentCompleted)
}
