package route

// TowerType classifies a tower by the load it is built to carry.
type TowerType string

const (
	Suspension TowerType = "suspension"
	Angle      TowerType = "angle"
	Tension    TowerType = "tension"
	DeadEnd    TowerType = "dead_end"
)

// IsAnchor reports whether t can hold full longitudinal conductor tension.
// Dead-end and tension towers are anchors; suspension and angle are not.
func (t TowerType) IsAnchor() bool {
	return t == DeadEnd || t == Tension
}

// BaseWidthRatio returns the minimum base-width-to-height ratio for t, per
// spec.md §3's ratio(type) table.
func (t TowerType) BaseWidthRatio() float64 {
	switch t {
	case Suspension:
		return 0.25
	case Angle:
		return 0.28
	case Tension:
		return 0.32
	case DeadEnd:
		return 0.35
	default:
		return 0.25
	}
}

// FoundationType enumerates the shallow-foundation styles this system
// supports. Pile foundations are out of scope (spec.md §1 Non-goals).
type FoundationType string

const (
	PadFooting     FoundationType = "pad_footing"
	ChimneyFooting FoundationType = "chimney_footing"
)

// Hard geometry bounds, spec.md §3.
const (
	MinSpanLength     = 250.0
	MaxSpanLength     = 450.0
	MaxTowerHeight    = 60.0
	MinFootingLength  = 3.0
	MaxFootingLength  = 8.0
	MinFootingWidth   = 3.0
	MaxFootingWidth   = 8.0
	MinFootingDepth   = 2.0
	MaxFootingDepth   = 6.0
	MaxBaseWidthRatio = 0.40

	// MinSpan is the absolute physical-spacing floor between stations
	// (spec.md §3, §4.6), independent of MinSpanLength which bounds a
	// single tower's designed span.
	MinSpan = 30.0
)

// VoltageMinHeight returns the voltage-dependent floor for tower_height,
// spec.md §3/§4.3. Values follow the original optimizer's voltage_min_heights
// table (pso_optimizer.py) as a step lookup: a voltage between two
// entries takes the floor of the highest entry not above it, and any
// voltage below 132 kV gets 15 m.
func VoltageMinHeight(voltageKV float64) float64 {
	type step struct {
		v, h float64
	}
	table := []step{
		{132, 15.0},
		{220, 18.0},
		{400, 25.0},
		{765, 50.0},
		{900, 55.0},
	}
	min := 15.0
	for _, s := range table {
		if voltageKV >= s.v {
			min = s.h
		}
	}
	return min
}

// TowerGeometry is a candidate or finalised tower design.
type TowerGeometry struct {
	Type           TowerType      `json:"type"`
	TotalHeight    float64        `json:"total_height"`
	BaseWidth      float64        `json:"base_width"`
	SpanLength     float64        `json:"span_length"`
	FoundationType FoundationType `json:"foundation_type"`
	FootingLength  float64        `json:"footing_length"`
	FootingWidth   float64        `json:"footing_width"`
	FootingDepth   float64        `json:"footing_depth"`
}

// WithinHardBounds reports whether g satisfies spec.md §3's hard bounds,
// independent of any code-standard check (codestd handles the code-specific
// feasibility and safety rules on top of these).
func (g TowerGeometry) WithinHardBounds(voltageKV float64) bool {
	minHeight := VoltageMinHeight(voltageKV)
	if g.TotalHeight < minHeight || g.TotalHeight > MaxTowerHeight {
		return false
	}
	if g.SpanLength < MinSpanLength || g.SpanLength > MaxSpanLength {
		return false
	}
	if g.FootingLength < MinFootingLength || g.FootingLength > MaxFootingLength {
		return false
	}
	if g.FootingWidth < MinFootingWidth || g.FootingWidth > MaxFootingWidth {
		return false
	}
	if g.FootingDepth < MinFootingDepth || g.FootingDepth > MaxFootingDepth {
		return false
	}
	minBase := g.Type.BaseWidthRatio() * g.TotalHeight
	maxBase := MaxBaseWidthRatio * g.TotalHeight
	if g.BaseWidth < minBase || g.BaseWidth > maxBase {
		return false
	}
	return true
}

// Clamp returns a copy of g with every field clamped into the hard bounds
// for voltageKV. This is the "bounds enforcement on decode" step sizer.PSO
// requires after every particle update (spec.md §4.8).
func (g TowerGeometry) Clamp(voltageKV float64) TowerGeometry {
	minHeight := VoltageMinHeight(voltageKV)
	out := g
	out.TotalHeight = clampf(g.TotalHeight, minHeight, MaxTowerHeight)
	minBase := g.Type.BaseWidthRatio() * out.TotalHeight
	maxBase := MaxBaseWidthRatio * out.TotalHeight
	out.BaseWidth = clampf(g.BaseWidth, minBase, maxBase)
	out.SpanLength = clampf(g.SpanLength, MinSpanLength, MaxSpanLength)
	out.FootingLength = clampf(g.FootingLength, MinFootingLength, MaxFootingLength)
	out.FootingWidth = clampf(g.FootingWidth, MinFootingWidth, MaxFootingWidth)
	out.FootingDepth = clampf(g.FootingDepth, MinFootingDepth, MaxFootingDepth)
	if out.FoundationType == "" {
		out.FoundationType = PadFooting
	}
	return out
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ConservativeFallback returns the deterministic safe geometry substituted
// when no sub-sentinel geometry was found by the optimiser (spec.md §4.8,
// §4.9): height clamped up to the voltage floor, foundation enlarged, span
// clamped in-range.
func ConservativeFallback(t TowerType, voltageKV float64) TowerGeometry {
	h := VoltageMinHeight(voltageKV)
	baseWidthRatio := t.BaseWidthRatio()
	if baseWidthRatio < 0.30 {
		baseWidthRatio = 0.30
	}
	return TowerGeometry{
		Type:           t,
		TotalHeight:    h,
		BaseWidth:      baseWidthRatio * h,
		SpanLength:     MinSpanLength + 50.0,
		FoundationType: PadFooting,
		FootingLength:  MinFootingLength + 1.5,
		FootingWidth:   MinFootingWidth + 1.5,
		FootingDepth:   MinFootingDepth + 2.0,
	}
}
