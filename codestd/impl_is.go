// impl_is.go - IS (Indian Standard, IS 802) battery.
//
// Contract:
//   - No margin inflation on height/base-width (IS's own tables are
//     already the floor this system's constants are derived from).
//   - Footing depth uses the soil factor at face value.
//   - Electrical clearance carries no extra margin beyond the reference
//     table (IS 5613/IS 802 clearances are used directly as the table).
//   - Ice load is out of scope for IS (sub-tropical design basis).
package codestd

// IS implements Standard for India's IS 802 transmission-tower code.
type IS struct{}

// Name returns "IS".
func (IS) Name() string { return "IS" }

// Battery returns IS 802's ordered check battery.
func (IS) Battery() []Check {
	return []Check{
		checkHeightFloor(1.0),
		checkBaseWidthRatio(1.0),
		checkFootingDepth(1.0),
		checkSpanBounds(),
		checkElectricalClearance(0.0),
	}
}
