// api.go - thin public entry-points for the codestd package.
//
// Design contract (strict):
//   - One orchestrator: RunChecks(std, geometry, ctx). Resolves the
//     standard's battery and runs each Check in order.
//   - Every Standard's battery covers the same core concerns (height
//     floor, base-width ratio, footing bounds, span bounds, electrical
//     clearance) with its own thresholds; IEC and EUROCODE add an
//     ice-load footing check that IS and ASCE do not run.
//   - Safety: a Check never panics; it returns the violation strings it
//     found (nil/empty when the geometry passes).
package codestd

import (
	"strings"

	"github.com/katalvlaran/translineopt/route"
)

// Check evaluates one concern of the battery against a candidate
// geometry and returns the violation descriptions it found; a passing
// check returns nil.
type Check func(g route.TowerGeometry, ctx CheckContext) []string

// Standard is one national/regional design code's safety-check engine.
type Standard interface {
	// Name returns the standard's short identifier, e.g. "IS", "IEC".
	Name() string
	// Battery returns the ordered list of checks this standard runs.
	Battery() []Check
}

// RunChecks runs every check in std's battery against g under ctx and
// returns the aggregated SafetyCheckResult (spec.md C3). Violations from
// every check are concatenated in battery order; a geometry with zero
// violations across the whole battery is Safe.
//
// Complexity: O(k) where k is the battery length (fixed per standard).
func RunChecks(std Standard, g route.TowerGeometry, ctx CheckContext) route.SafetyCheckResult {
	var violations []string
	for _, check := range std.Battery() {
		violations = append(violations, check(g, ctx)...)
	}

	return route.SafetyCheckResult{
		Safe:       len(violations) == 0,
		Violations: violations,
	}
}

// IsClearanceViolation reports whether msg is the one critical violation
// class spec.md §4.8 names: a clearance violation. Callers driving the
// PSO fitness sentinel (the 10^10 cost) should sentinel on this, and on
// nothing else — non-clearance violations are trusted to be caught by
// the final battery pass after the swarm converges.
func IsClearanceViolation(msg string) bool {
	return strings.HasPrefix(msg, clearanceViolationPrefix)
}

// HasClearanceViolation reports whether any violation in msgs is a
// clearance violation.
func HasClearanceViolation(msgs []string) bool {
	for _, m := range msgs {
		if IsClearanceViolation(m) {
			return true
		}
	}
	return false
}
