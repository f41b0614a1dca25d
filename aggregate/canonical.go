package aggregate

import "github.com/katalvlaran/translineopt/route"

// BuildInputs is everything a completed pipeline run has produced and
// Build needs to consolidate into a route.CanonicalResult.
type BuildInputs struct {
	RequestID          string
	Towers             []route.TowerStation
	Spans              []route.SpanResult
	TotalLengthM       float64
	CostBreakdown      route.CostBreakdown
	Fallback           []bool
	OriginalViolations map[int][]string
	RegionalContext    route.RegionalContext
	CurrencyContext    route.CurrencyContext
	Confidence         ConfidenceInputs
	Warnings           []string
	Advisories         []string
}

// Build assembles the final route.CanonicalResult from every pipeline
// stage's output (spec.md C9). It never returns an error: by the time a
// request reaches this stage, every upstream validation has already
// passed, and a tower that could not be sized safely has already been
// replaced with route.ConservativeFallback.
//
// Complexity: O(n) over the tower/span lists.
func Build(in BuildInputs) route.CanonicalResult {
	in.Confidence.TowerCount = len(in.Towers)
	fallbackCount := 0
	for _, f := range in.Fallback {
		if f {
			fallbackCount++
		}
	}
	in.Confidence.FallbackCount = fallbackCount

	result := route.NewEmptyCanonicalResult(in.RequestID)
	result.Towers = in.Towers
	result.Spans = in.Spans
	result.LineSummary = BuildLineSummary(in.Towers, in.TotalLengthM)
	result.CostBreakdown = in.CostBreakdown
	result.SafetySummary = BuildSafetySummary(in.Towers, in.Fallback, in.OriginalViolations)
	result.RegionalContext = in.RegionalContext
	result.CurrencyContext = in.CurrencyContext
	result.Confidence = BuildConfidence(in.Confidence)
	if in.Warnings != nil {
		result.Warnings = in.Warnings
	}
	if in.Advisories != nil {
		result.Advisories = in.Advisories
	}

	return result
}
