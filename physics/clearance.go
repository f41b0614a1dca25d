package physics

// clearanceBracket is one row of the voltage/span clearance reference
// table: the minimum ground clearance required once voltage and span
// both meet or exceed this row's thresholds.
type clearanceBracket struct {
	voltageKV float64
	spanM     float64
	minClearM float64
}

// clearanceTable mirrors the original design tool's reference clearance
// table: rows are matched independently on voltage and span, and the
// bracketing is "highest threshold not exceeding the input," the same
// rule VoltageMinHeight uses for tower height.
var clearanceTable = []clearanceBracket{
	{voltageKV: 132, spanM: 0, minClearM: 6.1},
	{voltageKV: 132, spanM: 350, minClearM: 6.4},
	{voltageKV: 220, spanM: 0, minClearM: 7.0},
	{voltageKV: 220, spanM: 350, minClearM: 7.3},
	{voltageKV: 400, spanM: 0, minClearM: 8.8},
	{voltageKV: 400, spanM: 350, minClearM: 9.1},
	{voltageKV: 765, spanM: 0, minClearM: 12.2},
	{voltageKV: 765, spanM: 350, minClearM: 12.8},
}

// RequiredClearance returns the minimum conductor-to-ground clearance in
// meters for voltageKV at spanM, bracketed from the reference table
// (spec.md C2). Voltages below the table's lowest entry get that entry's
// clearance; the function never extrapolates below the floor.
//
// Complexity: O(n) over the (small, fixed) bracket table.
func RequiredClearance(voltageKV, spanM float64) float64 {
	best := clearanceTable[0].minClearM
	bestV, bestS := -1.0, -1.0
	for _, b := range clearanceTable {
		if voltageKV >= b.voltageKV && spanM >= b.spanM {
			if b.voltageKV > bestV || (b.voltageKV == bestV && b.spanM > bestS) {
				bestV, bestS = b.voltageKV, b.spanM
				best = b.minClearM
			}
		}
	}

	return best
}
