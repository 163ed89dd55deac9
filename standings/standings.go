// Package standings turns a tournament's raw match history into an ordered,
// tie-broken leaderboard using the Swiss system ladder: match points first,
// then Opponents' Match-Win Percentage (OMW%), then Opponents'-Opponents'
// Match-Win Percentage (OOMW%).
//
// Compute is a pure function: it performs no I/O, mutates none of its inputs
// and holds no state between calls, so it is safe to invoke concurrently on
// independent snapshots. Standings are always recomputed from scratch.
package standings

import "github.com/Ashley-Bennett/tournamentOrganiser-sub002/models"

// Compute builds one Standing per roster entry from the eligible matches
// (completed or bye) of a single tournament. The caller is responsible for
// scoping roster and matches to one tournament; no filtering by tournament or
// workspace happens here.
//
// The computation is all-or-nothing: any data-integrity fault (a winner that
// is not a participant, a match referencing a player missing from the roster)
// aborts the whole call, because a silently skipped match would shift every
// downstream player's percentages.
func Compute(roster []models.TournamentPlayer, matches []models.Match, rules Rules) ([]models.Standing, error) {
	tallies, err := buildTallies(roster, matches, rules)
	if err != nil {
		return nil, err
	}
	computeTieBreakers(tallies, rules)

	out := make([]models.Standing, 0, len(roster))
	for _, p := range roster {
		t := tallies[p.PlayerID]
		out = append(out, models.Standing{
			PlayerID:                           p.PlayerID,
			Name:                               p.Name,
			Wins:                               t.wins,
			Losses:                             t.losses,
			Draws:                              t.draws,
			MatchPoints:                        t.matchPoints,
			MatchWinPercentage:                 t.matchWin,
			OpponentMatchWinPercentage:         t.omw,
			OpponentOpponentMatchWinPercentage: t.oomw,
			Dropped:                            p.Dropped,
			DroppedAtRound:                     p.DroppedAtRound,
		})
	}
	sortAndRank(out)
	return out, nil
}
