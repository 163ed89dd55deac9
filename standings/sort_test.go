package standings

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ashley-Bennett/tournamentOrganiser-sub002/models"
)

func TestSortAndRank_TieBreakLadder(t *testing.T) {
	rows := []models.Standing{
		{PlayerID: 1, Name: "Ann", MatchPoints: 6, OpponentMatchWinPercentage: 0.5, OpponentOpponentMatchWinPercentage: 0.5},
		{PlayerID: 2, Name: "Ben", MatchPoints: 9, OpponentMatchWinPercentage: 0.4, OpponentOpponentMatchWinPercentage: 0.4},
		{PlayerID: 3, Name: "Cleo", MatchPoints: 6, OpponentMatchWinPercentage: 0.6, OpponentOpponentMatchWinPercentage: 0.3},
		{PlayerID: 4, Name: "Dot", MatchPoints: 6, OpponentMatchWinPercentage: 0.5, OpponentOpponentMatchWinPercentage: 0.6},
	}

	sortAndRank(rows)

	var order []int
	for _, s := range rows {
		order = append(order, s.PlayerID)
	}
	// Points first (Ben), then OMW% (Cleo over the 0.5 pair), then OOMW%
	// (Dot over Ann).
	require.Equal(t, []int{2, 3, 4, 1}, order)
	for i, s := range rows {
		require.Equal(t, i+1, s.Rank)
	}
}

func TestSortAndRank_NameThenIDBreaksExactTies(t *testing.T) {
	rows := []models.Standing{
		{PlayerID: 7, Name: "Mia"},
		{PlayerID: 3, Name: "Mia"},
		{PlayerID: 5, Name: "Liam"},
	}

	sortAndRank(rows)

	require.Equal(t, "Liam", rows[0].Name)
	require.Equal(t, 3, rows[1].PlayerID)
	require.Equal(t, 7, rows[2].PlayerID)
}
