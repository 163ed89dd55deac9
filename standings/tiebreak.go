package standings

// computeTieBreakers fills the own match-win percentage, OMW% and OOMW% on
// every tally. Own match-win percentage is matchPoints over the maximum
// attainable (rounds played times the win weight); players with no eligible
// matches stay at zero.
func computeTieBreakers(tallies map[int]*tally, rules Rules) {
	for _, t := range tallies {
		if t.rounds > 0 {
			t.matchWin = float64(t.matchPoints) / float64(t.rounds*rules.PointsPerWin)
		}
	}

	// OMW% averages the opponents' own match-win percentages; OOMW% averages
	// the opponents' OMW%. Both passes floor each borrowed value, and the
	// second pass must run after every OMW% is known.
	for _, t := range tallies {
		t.omw = averageOverOpponents(tallies, t.opponents, rules.TieBreakFloor, ownMatchWin)
	}
	for _, t := range tallies {
		t.oomw = averageOverOpponents(tallies, t.opponents, rules.TieBreakFloor, opponentMatchWin)
	}
}

func ownMatchWin(t *tally) float64      { return t.matchWin }
func opponentMatchWin(t *tally) float64 { return t.omw }

// averageOverOpponents averages metric over the opponent list, flooring each
// borrowed value so a single bye-heavy or winless opponent cannot drag the
// average down unfairly. A player who faced no real opponents (byes only, or
// never paired) gets zero; that is a defined edge case, not an error.
func averageOverOpponents(tallies map[int]*tally, opponents []int, floor float64, metric func(*tally) float64) float64 {
	if len(opponents) == 0 {
		return 0
	}
	var sum float64
	for _, id := range opponents {
		v := metric(tallies[id])
		if v < floor {
			v = floor
		}
		sum += v
	}
	return sum / float64(len(opponents))
}
