package engine

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/translineopt/aggregate"
	"github.com/katalvlaran/translineopt/codestd"
	"github.com/katalvlaran/translineopt/cost"
	"github.com/katalvlaran/translineopt/reference"
	"github.com/katalvlaran/translineopt/route"
	"github.com/katalvlaran/translineopt/spotter"
)

// fallbackRates is used when the resolved country has no reference entry
// (spec.md §6's "unresolved" case): a conservative, regionally-neutral
// table wide enough not to systematically under- or over-price a line.
var fallbackRates = cost.Rates{
	SteelPerTon:          1400.0,
	ConcretePerM3:        130.0,
	ErectionBasePerTower: 9000.0,
	LandPerM2:            18.0,
	CorridorPerKM:        6000.0,
}

var fallbackCurrency = route.CurrencyContext{Code: "USD", Symbol: "$", Label: "US Dollar (fallback)"}

// Engine is a configured pipeline instance. It holds no per-request
// state; a single Engine can be reused across many Run calls, and each
// Run builds its own per-request state (including its random source).
type Engine struct {
	opts Options
}

// New builds an Engine from opts. Zero-valued fields are left as given;
// callers wanting the spec-mandated defaults should start from
// DefaultOptions and override only what they need.
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = defaultLogger()
	}
	return &Engine{opts: opts}
}

// Run executes the full C5-C9 pipeline for one request (spec.md §2, §5).
// Only inbound failures are returned as errors: a nil request, a failed
// req.Validate(), or a route that cannot be built from the request's
// points (e.g. non-monotone distances). Every later failure degrades to
// a conservative result instead of propagating.
func (e *Engine) Run(ctx context.Context, req *route.Request) (route.CanonicalResult, error) {
	if req == nil {
		return route.CanonicalResult{}, ErrNilRequest
	}
	if err := req.Validate(); err != nil {
		return route.CanonicalResult{}, err
	}

	requestID := uuid.NewString()
	log := e.opts.Logger.WithField("request_id", requestID)

	resolved, err := resolveRoute(req)
	if err != nil {
		return route.CanonicalResult{}, err
	}
	log.WithField("stations_in", len(resolved.route.Points())).Info("route resolved")

	obstacles, degraded := e.buildObstacleMap(ctx, resolved.route, resolved.terrain, log)
	log.WithField("degraded", degraded).Info("obstacle map built")

	standardName := reference.GoverningStandard(e.opts.Snapshot, countryCodeOf(req))
	std, err := codestd.Resolve(standardName)
	if err != nil {
		log.WithField("standard", standardName).Warn("governing standard not recognised, falling back to IEC")
		std, _ = codestd.Resolve("IEC")
		standardName = "IEC"
	}

	countryCode := countryCodeOf(req)
	rates, currencyCtx, riskCount, advisories := e.resolveEconomics(countryCode, log)
	conductor := effectiveConductor(e.opts.Conductor, req.Flags.IncludeIceLoad)

	spanCtx := spotter.SpanContext{
		VoltageKV:      req.VoltageKV,
		WindZone:       escalateWindZone(req.WindZone, req.Flags.DesignForHigherWind),
		Soil:           req.Soil,
		IncludeIceLoad: req.Flags.IncludeIceLoad,
		Terrain:        req.Terrain,
		Conductor:      conductor,
		Standard:       std,
		Rates:          rates,
		RowMode:        req.RowMode,
	}
	distances, nudges, spotViolations := placeStations(resolved.route, obstacles, resolved.terrain, spanCtx, log)
	log.WithField("station_count", len(distances)).Info("stations placed")

	points := resolved.route.Points()
	towerTypes, deviationAngles := classifyStations(points, distances)
	advisories = append(advisories, towerPreferenceAdvisory(req.TowerPreference, towerTypes)...)

	lineLengthKM := resolved.route.Length() / 1000.0
	rng := rand.New(rand.NewSource(e.opts.RandSeed))

	towers := make([]route.TowerStation, len(distances))
	fallbackFlags := make([]bool, len(distances))
	originalViolations := map[int][]string{}

	for i, d := range distances {
		spanOut := nextSpan(distances, i)
		outcome := e.sizeStation(ctx, std, towerTypes[i], req, spanOut, rates, rng)

		violations := append([]string{}, spotViolations[i]...)
		if outcome.usedFallback && len(outcome.violations) > 0 {
			originalViolations[i] = outcome.violations
			violations = append(violations, outcome.violations...)
		}

		geometry := outcome.geometry
		station := route.TowerStation{
			Index:             i,
			Distance:          d,
			Elevation:         interpolateElevation(points, d),
			SelectedSpan:      spanOut,
			Type:              towerTypes[i],
			DeviationAngleDeg: deviationAngles[i],
			Geometry:          &geometry,
			SafetyViolations:  violations,
			Optimization:      &outcome.optimization,
		}
		if lat, lon := interpolateLatLon(points, d); lat != nil {
			station.Lat, station.Lon = lat, lon
		}
		if n, ok := nudges[i]; ok {
			station.Nudge = &n
		}
		if outcome.usedFallback {
			fallbackFlags[i] = true
			station.GoverningLoadCase = outcome.governingLoadCase
		}

		towers[i] = station
	}

	spans := buildSpanResults(towers, conductor)

	totalInfeasible := false
	breakdown, err := cost.TotalCost(towers, req.RowMode, rates, lineLengthKM, totalInfeasible)
	if err != nil {
		log.WithError(err).Warn("line-level cost computation failed, reporting zeroed breakdown")
		breakdown = route.CostBreakdown{}
	}
	lowPct, highPct := cost.WidenSensitivity(breakdown.SensitivityLowPct, breakdown.SensitivityHighPct, req.Terrain, req.Soil, req.WindZone, req.VoltageKV, riskCount)
	breakdown.SensitivityLowPct, breakdown.SensitivityHighPct = lowPct, highPct

	result := aggregate.Build(aggregate.BuildInputs{
		RequestID:          requestID,
		Towers:             towers,
		Spans:              spans,
		TotalLengthM:       resolved.route.Length(),
		CostBreakdown:      breakdown,
		Fallback:           fallbackFlags,
		OriginalViolations: originalViolations,
		RegionalContext: route.RegionalContext{
			GoverningStandard: standardName,
			CountryCode:       countryCode,
			RiskCount:         riskCount,
		},
		CurrencyContext: currencyCtx,
		Confidence: aggregate.ConfidenceInputs{
			ObstacleDataDegraded: degraded,
			UsedDefaultElevation: resolved.usedDefaultElevation,
			UsedDefaultDistance:  resolved.usedDefaultDistance,
		},
		Advisories: advisories,
	})

	log.WithField("tower_count", len(towers)).Info("pipeline complete")
	return result, nil
}

// nextSpan returns the outgoing span length for station i, 0 for the
// last station (spec.md stations.go TowerStation doc).
func nextSpan(distances []float64, i int) float64 {
	if i >= len(distances)-1 {
		return 0
	}
	return distances[i+1] - distances[i]
}

// towerPreferenceAdvisory reports how often the request's advisory
// tower_preference (spec.md §6) disagrees with the geometry-driven
// classification. Preference never overrides classification: endpoint
// and bend-angle assignment is a safety-relevant, deterministic function
// of the route's own geometry (spec.md §4.7), not a client hint.
func towerPreferenceAdvisory(preferred route.TowerType, actual []route.TowerType) []string {
	if preferred == "" {
		return nil
	}
	mismatches := 0
	for _, t := range actual {
		if t != preferred {
			mismatches++
		}
	}
	if mismatches == 0 {
		return nil
	}
	return []string{fmt.Sprintf("tower_preference %q requested but geometry-driven classification differs at %d of %d stations: classification is authoritative", preferred, mismatches, len(actual))}
}

func countryCodeOf(req *route.Request) string {
	if req.GeoContext == nil || req.GeoContext.CountryCode == nil {
		return ""
	}
	return *req.GeoContext.CountryCode
}

// resolveEconomics resolves the cost-rate table, currency, and risk
// count for countryCode, falling back to a neutral table plus an
// advisory when the snapshot has no entry (spec.md §6's "unresolved"
// clause).
func (e *Engine) resolveEconomics(countryCode string, log *logrus.Entry) (cost.Rates, route.CurrencyContext, int, []string) {
	if countryCode == "" {
		return fallbackRates, fallbackCurrency, 0, []string{"no country code supplied: using fallback reference rates"}
	}

	rateTable, err := reference.ResolveRates(e.opts.Snapshot, countryCode)
	if err != nil {
		log.WithField("country", countryCode).Warn("no reference rates for country, using fallback")
		return fallbackRates, fallbackCurrency, 0, []string{"unresolved country code " + countryCode + ": using fallback reference rates"}
	}

	currency, err := reference.ResolveCurrency(e.opts.Snapshot, countryCode)
	currencyCtx := fallbackCurrency
	if err == nil {
		currencyCtx = route.CurrencyContext{Code: currency.Code, Symbol: currency.Symbol, Label: currency.Label}
	}

	riskCount, err := reference.ResolveRegionalRisk(e.opts.Snapshot, countryCode)
	if err != nil {
		riskCount = 0
	}

	rates := cost.Rates{
		SteelPerTon:          rateTable.SteelPerTon,
		ConcretePerM3:        rateTable.ConcretePerM3,
		ErectionBasePerTower: rateTable.ErectionBasePerTower,
		LandPerM2:            rateTable.LandPerM2,
		CorridorPerKM:        rateTable.CorridorPerKM,
	}
	return rates, currencyCtx, riskCount, nil
}
