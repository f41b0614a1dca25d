package cost

import "github.com/katalvlaran/translineopt/route"

// CostPerKM is the sizer's optimisation objective (spec.md §4.4):
// cost_per_tower amortised to a per-kilometre basis by the `1000 /
// span_length` factor, plus the flat corridor rate. Minimising
// cost_per_tower alone — without the `1/span` factor — is forbidden:
// it biases the swarm toward short, cheap towers at ruinous line cost,
// since LandCost itself grows with span.
//
// Complexity: O(1).
func CostPerKM(g route.TowerGeometry, rowMode route.RowMode, rates Rates) float64 {
	perTower := SteelCost(g, rates) + FoundationCost(g, rates) + ErectionCost(g, rates) + LandCost(g.SpanLength, rowMode, rates)
	return perTower*(1000.0/g.SpanLength) + rates.CorridorPerKM
}
