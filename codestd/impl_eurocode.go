// impl_eurocode.go - Eurocode (EN 50341) battery.
//
// Contract:
//   - Footing depth carries a 15% margin: Eurocode's partial-factor
//     method applies a material safety factor directly to foundation
//     sizing rather than to the applied load alone.
//   - Ice load is modeled with the largest extra-depth margin in the
//     registry, reflecting EN 50341's Northern/Alpine design annexes.
//   - Clearance and span checks are otherwise unmodified from the shared
//     battery baseline.
package codestd

// Eurocode implements Standard for the EN 50341 overhead-line code.
type Eurocode struct{}

// Name returns "EUROCODE".
func (Eurocode) Name() string { return "EUROCODE" }

// Battery returns EN 50341's ordered check battery.
func (Eurocode) Battery() []Check {
	return []Check{
		checkHeightFloor(1.0),
		checkBaseWidthRatio(1.0),
		checkFootingDepth(1.15),
		checkSpanBounds(),
		checkElectricalClearance(0.2),
		checkIceLoadFooting(0.8),
	}
}
