package standings

// Rules is the scoring policy applied by Compute. The standard Swiss values
// are the defaults, but the weights and the tie-break floor are policy, not
// structural constants, so events with house rules can supply their own.
type Rules struct {
	PointsPerWin  int
	PointsPerDraw int

	// TieBreakFloor is the minimum value an opponent's percentage contributes
	// when averaged into another player's OMW% or OOMW%. It never raises the
	// percentage shown on the opponent's own row.
	TieBreakFloor float64
}

// DefaultRules returns the standard Swiss policy: 3 points per win, 1 per
// draw, losses worth nothing, and a 1/3 tie-break floor.
func DefaultRules() Rules {
	return Rules{
		PointsPerWin:  3,
		PointsPerDraw: 1,
		TieBreakFloor: 1.0 / 3.0,
	}
}
