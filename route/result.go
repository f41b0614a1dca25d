package route

// SafetyCheckResult is the only way safety is communicated in the system
// (spec.md §3). An unsafe result never escapes the aggregator to the
// output.
type SafetyCheckResult struct {
	Safe       bool     `json:"safe"`
	Violations []string `json:"violations"`
}

// SafetySummary is always reported SAFE on the wire (spec.md §3, §4.9,
// §8 invariant 1); OriginalViolations preserves what would otherwise have
// been reported, for audit/debugging, never as a top-level failure.
type SafetySummary struct {
	OverallStatus      string           `json:"overall_status"` // always "SAFE"
	TowersWithFallback int              `json:"towers_with_fallback"`
	OriginalViolations map[int][]string `json:"original_violations"` // station index -> violations before fallback
}

// CostBreakdown is the line-level sum of per-tower cost components plus
// the corridor (ROW) cost, spec.md §4.4/§4.9.
type CostBreakdown struct {
	SteelCostTotal      float64 `json:"steel_cost_total"`
	FoundationCostTotal float64 `json:"foundation_cost_total"`
	ErectionCostTotal   float64 `json:"erection_cost_total"`
	LandCostTotal       float64 `json:"land_cost_total"`
	CorridorCostTotal   float64 `json:"corridor_cost_total"`
	GrandTotal          float64 `json:"grand_total"`
	CostPerKM           float64 `json:"cost_per_km"`
	SensitivityLowPct   float64 `json:"sensitivity_low_pct"`
	SensitivityHighPct  float64 `json:"sensitivity_high_pct"`
}

// LineSummary aggregates per-tower geometry into line-level statistics,
// spec.md §4.9.
type LineSummary struct {
	TowerCount        int     `json:"tower_count"`
	TotalLengthM      float64 `json:"total_length_m"`
	AverageSpanM      float64 `json:"average_span_m"`
	TowerDensityPerKM float64 `json:"tower_density_per_km"`
	SteelTonnageTotal float64 `json:"steel_tonnage_total"`
	ConcreteVolumeM3  float64 `json:"concrete_volume_m3"`
}

// CurrencyContext is the presentation tuple spec.md §6 specifies; no FX
// conversion happens in the core.
type CurrencyContext struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Label  string `json:"label"`
}

// RegionalContext carries the resolved governing standard and any
// regional-risk advisories the reference tables surfaced; it does not
// influence feasibility (spec.md §1).
type RegionalContext struct {
	GoverningStandard string `json:"governing_standard"`
	CountryCode       string `json:"country_code"`
	RiskCount         int    `json:"risk_count"`
}

// ConfidenceScore is the 100-start, assumption-decremented confidence
// model, spec.md §4.9.
type ConfidenceScore struct {
	Score   int      `json:"score"`
	Drivers []string `json:"drivers"`
}

// CanonicalResult is the immutable, fully-populated output of the
// pipeline (spec.md §3). Every field is always present; missing
// sub-results are defaults (empty slices, zero totals), never nil for
// required fields.
type CanonicalResult struct {
	RequestID       string          `json:"request_id"`
	Towers          []TowerStation  `json:"towers"`
	Spans           []SpanResult    `json:"spans"`
	LineSummary     LineSummary     `json:"line_summary"`
	CostBreakdown   CostBreakdown   `json:"cost_breakdown"`
	SafetySummary   SafetySummary   `json:"safety_summary"`
	RegionalContext RegionalContext `json:"regional_context"`
	CurrencyContext CurrencyContext `json:"currency_context"`
	Confidence      ConfidenceScore `json:"confidence"`
	Warnings        []string        `json:"warnings"`
	Advisories      []string        `json:"advisories"`
}

// SpanResult is the per-span sag/clearance summary the aggregator reports
// alongside each tower pair.
type SpanResult struct {
	FromIndex   int     `json:"from_index"`
	ToIndex     int     `json:"to_index"`
	Length      float64 `json:"length"`
	SagM        float64 `json:"sag_m"`
	ClearanceM  float64 `json:"clearance_m"`
	RulingSpanM float64 `json:"ruling_span_m"` // 0 when the span is not part of a resolved strain section
}

// NewEmptyCanonicalResult returns a CanonicalResult with every slice
// initialised to empty (never nil) and SafetySummary already marked SAFE,
// the default the aggregator starts building from.
func NewEmptyCanonicalResult(requestID string) CanonicalResult {
	return CanonicalResult{
		RequestID: requestID,
		Towers:    []TowerStation{},
		Spans:     []SpanResult{},
		SafetySummary: SafetySummary{
			OverallStatus:      "SAFE",
			OriginalViolations: map[int][]string{},
		},
		Warnings:   []string{},
		Advisories: []string{},
	}
}
