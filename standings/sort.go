package standings

import (
	"sort"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/models"
)

// sortAndRank orders standings by match points, then OMW%, then OOMW%, all
// descending. Name ascending and player id ascending break any remaining tie,
// so the order is strict and reproducible; no two rows ever compare equal.
// Ranks are assigned 1..N after the sort, dropped players included with no
// penalty.
func sortAndRank(standings []models.Standing) {
	sort.Slice(standings, func(i, j int) bool {
		a, b := &standings[i], &standings[j]
		if a.MatchPoints != b.MatchPoints {
			return a.MatchPoints > b.MatchPoints
		}
		if a.OpponentMatchWinPercentage != b.OpponentMatchWinPercentage {
			return a.OpponentMatchWinPercentage > b.OpponentMatchWinPercentage
		}
		if a.OpponentOpponentMatchWinPercentage != b.OpponentOpponentMatchWinPercentage {
			return a.OpponentOpponentMatchWinPercentage > b.OpponentOpponentMatchWinPercentage
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.PlayerID < b.PlayerID
	})

	for i := range standings {
		standings[i].Rank = i + 1
	}
}
