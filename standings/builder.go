package standings

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/models"
)

var (
	ErrWinnerNotParticipant = errors.New("match winner is not one of its participants")
	ErrPlayerNotInRoster    = errors.New("match references a player missing from the roster")
	ErrByeWithTwoPlayers    = errors.New("bye match carries a second player")
)

// tally is the per-player aggregate built from the eligible match set.
type tally struct {
	wins   int
	losses int
	draws  int

	// opponents holds one entry per eligible non-bye match, so a rematch
	// counts the same opponent twice in the tie-break averages. Byes add
	// nothing here.
	opponents []int

	// rounds counts eligible matches played, byes included.
	rounds int

	matchPoints int
	matchWin    float64
	omw         float64
	oomw        float64
}

// buildTallies aggregates wins, losses, draws, match points and the opponent
// adjacency for every roster player. Players with no eligible matches keep an
// all-zero tally so the whole roster always appears in the output.
func buildTallies(roster []models.TournamentPlayer, matches []models.Match, rules Rules) (map[int]*tally, error) {
	tallies := make(map[int]*tally, len(roster))
	for _, p := range roster {
		tallies[p.PlayerID] = &tally{}
	}

	eligible := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if m.Eligible() {
			eligible = append(eligible, m)
		}
	}

	// Tally aggregation is commutative, but the opponent lists feed float
	// averaging later, so the iteration order is pinned to (round, createdAt,
	// id) to keep the output byte-identical for any permutation of the input.
	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].Round != eligible[j].Round {
			return eligible[i].Round < eligible[j].Round
		}
		if !eligible[i].CreatedAt.Equal(eligible[j].CreatedAt) {
			return eligible[i].CreatedAt.Before(eligible[j].CreatedAt)
		}
		return eligible[i].ID < eligible[j].ID
	})

	for _, m := range eligible {
		p1, ok := tallies[m.Player1ID]
		if !ok {
			return nil, fmt.Errorf("match %d: player %d: %w", m.ID, m.Player1ID, ErrPlayerNotInRoster)
		}

		if m.IsBye() {
			if m.Player2ID != nil {
				return nil, fmt.Errorf("match %d: %w", m.ID, ErrByeWithTwoPlayers)
			}
			if m.WinnerID != nil && *m.WinnerID != m.Player1ID {
				return nil, fmt.Errorf("match %d: winner %d: %w", m.ID, *m.WinnerID, ErrWinnerNotParticipant)
			}
			// A bye is a full win for player one and records no opponent in
			// anyone's graph.
			p1.wins++
			p1.rounds++
			continue
		}

		p2, ok := tallies[*m.Player2ID]
		if !ok {
			return nil, fmt.Errorf("match %d: player %d: %w", m.ID, *m.Player2ID, ErrPlayerNotInRoster)
		}

		switch {
		case m.WinnerID == nil:
			p1.draws++
			p2.draws++
		case *m.WinnerID == m.Player1ID:
			p1.wins++
			p2.losses++
		case *m.WinnerID == *m.Player2ID:
			p2.wins++
			p1.losses++
		default:
			return nil, fmt.Errorf("match %d: winner %d: %w", m.ID, *m.WinnerID, ErrWinnerNotParticipant)
		}

		p1.rounds++
		p2.rounds++
		p1.opponents = append(p1.opponents, *m.Player2ID)
		p2.opponents = append(p2.opponents, m.Player1ID)
	}

	for _, t := range tallies {
		t.matchPoints = rules.PointsPerWin*t.wins + rules.PointsPerDraw*t.draws
	}

	return tallies, nil
}
