package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/models"
	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/standings"
)

const (
	testOwnerID      = 10
	testWorkspaceID  = 1
	testTournamentID = 100
)

func newStandingsFixture(t *testing.T, status models.TournamentStatus) (StandingsService, *fakeRosterRepo, *fakeMatchRepo, *fakeSnapshotRepo) {
	t.Helper()

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

	svc := NewStandingsService(tournamentRepo, rosterRepo, matchRepo, snapshotRepo, workspaceService, standings.DefaultRules())
	return svc, rosterRepo, matchRepo, snapshotRepo
}

func enroll(t *testing.T, rosterRepo *fakeRosterRepo, playerID int, name string) {
	t.Helper()
	err := rosterRepo.Add(context.Background(), &models.TournamentPlayer{
		TournamentID: testTournamentID,
		PlayerID:     playerID,
		Name:         name,
	})
	require.NoError(t, err)
}

func TestStandingsServiceGetStandings(t *testing.T) {
	svc, rosterRepo, matchRepo, _ := newStandingsFixture(t, models.TournamentStatusActive)
	ctx := context.Background()

	enroll(t, rosterRepo, 1, "Ann")
	enroll(t, rosterRepo, 2, "Ben")

	winner := 1
	require.NoError(t, matchRepo.Create(ctx, nil, &models.Match{
		TournamentID: testTournamentID,
		Round:        1,
		Player1ID:    1,
		Player2ID:    intRef(2),
		WinnerID:     &winner,
		Status:       models.MatchStatusCompleted,
	}))

	computed, err := svc.GetStandings(ctx, testOwnerID, testTournamentID)
	require.NoError(t, err)
	require.Len(t, computed, 2)

	require.Equal(t, 1, computed[0].Rank)
	require.Equal(t, "Ann", computed[0].Name)
	require.Equal(t, 3, computed[0].MatchPoints)
	require.Equal(t, 2, computed[1].Rank)
	require.Equal(t, "Ben", computed[1].Name)
	require.Equal(t, 0, computed[1].MatchPoints)
}

func TestStandingsServiceAuthorization(t *testing.T) {
	svc, _, _, _ := newStandingsFixture(t, models.TournamentStatusActive)
	ctx := context.Background()

	_, err := svc.GetStandings(ctx, 999, testTournamentID)
	require.ErrorIs(t, err, ErrForbiddenOperation)

	_, err = svc.GetStandings(ctx, testOwnerID, 12345)
	require.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestStandingsServiceCorruptMatchData(t *testing.T) {
	svc, rosterRepo, matchRepo, _ := newStandingsFixture(t, models.TournamentStatusActive)
	ctx := context.Background()

	enroll(t, rosterRepo, 1, "Ann")
	enroll(t, rosterRepo, 2, "Ben")

	// Winner id 99 belongs to neither participant.
	winner := 99
	require.NoError(t, matchRepo.Create(ctx, nil, &models.Match{
		TournamentID: testTournamentID,
		Round:        1,
		Player1ID:    1,
		Player2ID:    intRef(2),
		WinnerID:     &winner,
		Status:       models.MatchStatusCompleted,
	}))

	_, err := svc.GetStandings(ctx, testOwnerID, testTournamentID)
	require.ErrorIs(t, err, ErrStandingsInconsistent)
	require.ErrorIs(t, err, standings.ErrWinnerNotParticipant)
}

func TestStandingsServiceFinalStandings(t *testing.T) {
	svc, _, _, snapshotRepo := newStandingsFixture(t, models.TournamentStatusCompleted)
	ctx := context.Background()

	_, err := svc.GetFinalStandings(ctx, testOwnerID, testTournamentID)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, snapshotRepo.BatchCreate(ctx, nil, testTournamentID, []models.Standing{
		{Rank: 1, PlayerID: 1, Name: "Ann", MatchPoints: 9},
		{Rank: 2, PlayerID: 2, Name: "Ben", MatchPoints: 6},
	}))

	final, err := svc.GetFinalStandings(ctx, testOwnerID, testTournamentID)
	require.NoError(t, err)
	require.Len(t, final, 2)
	require.Equal(t, "Ann", final[0].Name)
	require.Equal(t, testTournamentID, final[0].TournamentID)
}

func intRef(v int) *int { return &v }
