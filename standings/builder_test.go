package standings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/models"
)

func intPtr(v int) *int { return &v }

func roster(names ...string) []models.TournamentPlayer {
	out := make([]models.TournamentPlayer, 0, len(names))
	for i, name := range names {
		out = append(out, models.TournamentPlayer{PlayerID: i + 1, Name: name})
	}
	return out
}

var matchSeq int

func completed(round, p1, p2 int, winner *int) models.Match {
	matchSeq++
	return models.Match{
		ID:        matchSeq,
		Round:     round,
		Player1ID: p1,
		Player2ID: intPtr(p2),
		WinnerID:  winner,
		Status:    models.MatchStatusCompleted,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(matchSeq) * time.Minute),
	}
}

func bye(round, p1 int) models.Match {
	matchSeq++
	return models.Match{
		ID:        matchSeq,
		Round:     round,
		Player1ID: p1,
		Status:    models.MatchStatusBye,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(matchSeq) * time.Minute),
	}
}

func TestBuildTallies_DecisiveDrawAndBye(t *testing.T) {
	players := roster("Alice", "Bob", "Cara")
	matches := []models.Match{
		completed(1, 1, 2, intPtr(1)), // Alice beats Bob
		completed(2, 2, 3, nil),       // Bob draws Cara
		bye(2, 1),                     // Alice sits out
	}

	tallies, err := buildTallies(players, matches, DefaultRules())
	require.NoError(t, err)

	alice := tallies[1]
	require.Equal(t, 2, alice.wins)
	require.Equal(t, 0, alice.losses)
	require.Equal(t, 2, alice.rounds)
	require.Equal(t, []int{2}, alice.opponents) // the bye adds no opponent
	require.Equal(t, 6, alice.matchPoints)

	bob := tallies[2]
	require.Equal(t, 0, bob.wins)
	require.Equal(t, 1, bob.losses)
	require.Equal(t, 1, bob.draws)
	require.Equal(t, 2, bob.rounds)
	require.Equal(t, []int{1, 3}, bob.opponents)
	require.Equal(t, 1, bob.matchPoints)

	cara := tallies[3]
	require.Equal(t, 1, cara.draws)
	require.Equal(t, 1, cara.rounds)
	require.Equal(t, 1, cara.matchPoints)
}

func TestBuildTallies_IgnoresUnplayedMatches(t *testing.T) {
	players := roster("Alice", "Bob")
	pending := completed(1, 1, 2, intPtr(1))
	pending.Status = models.MatchStatusPending
	ready := completed(2, 2, 1, nil)
	ready.Status = models.MatchStatusReady

	tallies, err := buildTallies(players, []models.Match{pending, ready}, DefaultRules())
	require.NoError(t, err)
	require.Equal(t, 0, tallies[1].rounds)
	require.Equal(t, 0, tallies[2].rounds)
	require.Equal(t, 0, tallies[1].matchPoints)
}

func TestBuildTallies_RosterPlayerWithoutMatches(t *testing.T) {
	players := roster("Alice", "Bob", "Zoe")
	matches := []models.Match{completed(1, 1, 2, intPtr(2))}

	tallies, err := buildTallies(players, matches, DefaultRules())
	require.NoError(t, err)
	zoe := tallies[3]
	require.Zero(t, zoe.wins)
	require.Zero(t, zoe.losses)
	require.Zero(t, zoe.draws)
	require.Zero(t, zoe.rounds)
	require.Empty(t, zoe.opponents)
}

func TestBuildTallies_TallyConservation(t *testing.T) {
	players := roster("A", "B", "C", "D")
	matches := []models.Match{
		completed(1, 1, 2, intPtr(1)),
		completed(1, 3, 4, intPtr(4)),
		completed(2, 1, 4, intPtr(1)),
		completed(2, 2, 3, intPtr(3)),
		bye(3, 1),
	}

	tallies, err := buildTallies(players, matches, DefaultRules())
	require.NoError(t, err)

	var wins, losses, draws int
	for _, tl := range tallies {
		wins += tl.wins
		losses += tl.losses
		draws += tl.draws
	}
	require.Equal(t, 5, wins) // 4 decisive + 1 bye
	require.Equal(t, 4, losses)
	require.Equal(t, 0, draws)
}

func TestBuildTallies_IntegrityFaults(t *testing.T) {
	players := roster("Alice", "Bob")

	tests := []struct {
		name    string
		match   models.Match
		wantErr error
	}{
		{
			name:    "winner not a participant",
			match:   completed(1, 1, 2, intPtr(99)),
			wantErr: ErrWinnerNotParticipant,
		},
		{
			name:    "player one missing from roster",
			match:   completed(1, 42, 2, intPtr(2)),
			wantErr: ErrPlayerNotInRoster,
		},
		{
			name:    "player two missing from roster",
			match:   completed(1, 1, 42, nil),
			wantErr: ErrPlayerNotInRoster,
		},
		{
			name: "bye status with a second player",
			match: func() models.Match {
				m := completed(1, 1, 2, nil)
				m.Status = models.MatchStatusBye
				return m
			}(),
			wantErr: ErrByeWithTwoPlayers,
		},
		{
			name: "bye with a foreign winner",
			match: func() models.Match {
				m := bye(1, 1)
				m.WinnerID = intPtr(2)
				return m
			}(),
			wantErr: ErrWinnerNotParticipant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildTallies(players, []models.Match{tt.match}, DefaultRules())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuildTallies_CompletedMatchWithoutSecondPlayerIsABye(t *testing.T) {
	players := roster("Alice")
	m := models.Match{
		ID:        1,
		Round:     1,
		Player1ID: 1,
		Status:    models.MatchStatusCompleted,
		CreatedAt: time.Now(),
	}

	tallies, err := buildTallies(players, []models.Match{m}, DefaultRules())
	require.NoError(t, err)
	require.Equal(t, 1, tallies[1].wins)
	require.Equal(t, 3, tallies[1].matchPoints)
	require.Empty(t, tallies[1].opponents)
}

func TestBuildTallies_CustomPointWeights(t *testing.T) {
	players := roster("Alice", "Bob")
	matches := []models.Match{
		completed(1, 1, 2, intPtr(1)),
		completed(2, 1, 2, nil),
	}

	rules := Rules{PointsPerWin: 2, PointsPerDraw: 1, TieBreakFloor: 0.25}
	tallies, err := buildTallies(players, matches, rules)
	require.NoError(t, err)
	require.Equal(t, 3, tallies[1].matchPoints) // 2*1 + 1*1
	require.Equal(t, 1, tallies[2].matchPoints)
}
