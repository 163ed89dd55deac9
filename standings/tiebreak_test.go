package standings

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/models"
)

const delta = 1e-12

func TestTieBreakers_ByeOnlyPlayerHasZeroOpponentMetrics(t *testing.T) {
	players := roster("Alice", "Bob")
	matches := []models.Match{
		bye(1, 1),
		bye(2, 1),
		bye(3, 1),
	}

	tallies, err := buildTallies(players, matches, DefaultRules())
	require.NoError(t, err)
	computeTieBreakers(tallies, DefaultRules())

	alice := tallies[1]
	require.InDelta(t, 1.0, alice.matchWin, delta) // byes are full wins on the own row
	require.Zero(t, alice.omw)
	require.Zero(t, alice.oomw)
}

func TestTieBreakers_ZeroMatchPlayerIsAllZero(t *testing.T) {
	players := roster("Alice")
	tallies, err := buildTallies(players, nil, DefaultRules())
	require.NoError(t, err)
	computeTieBreakers(tallies, DefaultRules())

	require.Zero(t, tallies[1].matchWin)
	require.Zero(t, tallies[1].omw)
	require.Zero(t, tallies[1].oomw)
}

func TestTieBreakers_FloorAppliesToBorrowedValuesOnly(t *testing.T) {
	players := roster("Alice", "Bob")
	// Bob loses both matches: his own row shows 0, but what he lends into
	// Alice's OMW% is floored at 1/3.
	matches := []models.Match{
		completed(1, 1, 2, intPtr(1)),
		completed(2, 2, 1, intPtr(1)),
	}

	tallies, err := buildTallies(players, matches, DefaultRules())
	require.NoError(t, err)
	computeTieBreakers(tallies, DefaultRules())

	require.Zero(t, tallies[2].matchWin)
	require.InDelta(t, 1.0/3.0, tallies[1].omw, delta)
	require.InDelta(t, 1.0, tallies[2].omw, delta) // Bob faced only Alice, who is at 100%
}

func TestTieBreakers_RepeatedOpponentCountsPerMatch(t *testing.T) {
	players := roster("Alice", "Bob", "Cara")
	// Alice plays Bob twice and Cara once. Bob's contribution enters her
	// OMW% average twice, so the weighting is per match, not per distinct
	// opponent.
	matches := []models.Match{
		completed(1, 1, 2, intPtr(1)),
		completed(2, 1, 2, intPtr(1)),
		completed(3, 1, 3, intPtr(3)),
		completed(1, 3, 2, intPtr(3)),
	}

	tallies, err := buildTallies(players, matches, DefaultRules())
	require.NoError(t, err)
	computeTieBreakers(tallies, DefaultRules())

	// Bob: 0-3, lends the 1/3 floor. Cara: 2-0, matchWin 1.0.
	wantAlice := (1.0/3.0 + 1.0/3.0 + 1.0) / 3.0
	require.InDelta(t, wantAlice, tallies[1].omw, delta)
}

func TestTieBreakers_OOMWAveragesFlooredOMW(t *testing.T) {
	players := roster("A", "B", "C", "D")
	matches := []models.Match{
		completed(1, 1, 2, intPtr(1)), // A beats B
		completed(1, 3, 4, nil),       // C draws D
		completed(2, 1, 3, intPtr(1)), // A beats C
		completed(2, 2, 4, intPtr(2)), // B beats D
		bye(3, 1),                     // A sits out
		completed(3, 2, 3, intPtr(2)), // B beats C
	}

	tallies, err := buildTallies(players, matches, DefaultRules())
	require.NoError(t, err)
	computeTieBreakers(tallies, DefaultRules())

	// Own match-win: A 9/9, B 6/9, C 1/9 (floored to 1/3 when lent),
	// D 1/6 (floored to 1/3 when lent).
	require.InDelta(t, 1.0, tallies[1].matchWin, delta)
	require.InDelta(t, 2.0/3.0, tallies[2].matchWin, delta)
	require.InDelta(t, 1.0/9.0, tallies[3].matchWin, delta)
	require.InDelta(t, 1.0/6.0, tallies[4].matchWin, delta)

	// OMW%
	require.InDelta(t, (2.0/3.0+1.0/3.0)/2.0, tallies[1].omw, delta)         // B, C
	require.InDelta(t, (1.0+1.0/3.0+1.0/3.0)/3.0, tallies[2].omw, delta)     // A, D, C
	require.InDelta(t, (1.0/3.0+1.0+2.0/3.0)/3.0, tallies[3].omw, delta)     // D, A, B
	require.InDelta(t, (1.0/3.0+2.0/3.0)/2.0, tallies[4].omw, delta)         // C, B

	// OOMW% borrows each opponent's OMW%, floored. All OMW% here sit above
	// the floor, so the averages pass through untouched.
	omwA, omwB, omwC, omwD := tallies[1].omw, tallies[2].omw, tallies[3].omw, tallies[4].omw
	require.InDelta(t, (omwB+omwC)/2.0, tallies[1].oomw, delta)
	require.InDelta(t, (omwA+omwD+omwC)/3.0, tallies[2].oomw, delta)
	require.InDelta(t, (omwD+omwA+omwB)/3.0, tallies[3].oomw, delta)
	require.InDelta(t, (omwC+omwB)/2.0, tallies[4].oomw, delta)
}

func TestTieBreakers_NoBorrowedValueBelowFloor(t *testing.T) {
	players := roster("A", "B", "C", "D", "E", "F")
	// Everyone except A loses everything they play, producing a pile of
	// zero-percentage opponents.
	matches := []models.Match{
		completed(1, 1, 2, intPtr(1)),
		completed(1, 3, 4, intPtr(3)),
		completed(1, 5, 6, intPtr(5)),
		completed(2, 1, 3, intPtr(1)),
		completed(2, 5, 4, intPtr(5)),
		completed(3, 1, 5, intPtr(1)),
	}

	rules := DefaultRules()
	tallies, err := buildTallies(players, matches, rules)
	require.NoError(t, err)
	computeTieBreakers(tallies, rules)

	for id, tl := range tallies {
		if len(tl.opponents) == 0 {
			continue
		}
		require.GreaterOrEqual(t, tl.omw, rules.TieBreakFloor, "player %d omw", id)
		require.GreaterOrEqual(t, tl.oomw, rules.TieBreakFloor, "player %d oomw", id)
	}
}
