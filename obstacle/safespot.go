package obstacle

// SafeSpot returns the nearest distance to target, in the search step
// increments, that m.IsForbidden reports clear, searching at most
// maxShift meters in each direction (spec.md C5/§4.5/§4.6). Both
// directions are probed at each increasing shift so the nearer of the
// two safe candidates always wins ties are broken in favor of the
// forward (increasing-distance) direction, matching the simple adaptive
// algorithm's forward-scan convention.
//
// Complexity: O(maxShift/step).
func SafeSpot(m *Map, target, maxShift, step float64) (float64, error) {
	if maxShift < 0 {
		return 0, ErrNegativeMaxShift
	}
	if step <= 0 {
		step = 5.0
	}
	if forbidden, _ := m.IsForbidden(target); !forbidden {
		return target, nil
	}
	for shift := step; shift <= maxShift; shift += step {
		if forbidden, _ := m.IsForbidden(target + shift); !forbidden {
			return target + shift, nil
		}
		if forbidden, _ := m.IsForbidden(target - shift); !forbidden {
			return target - shift, nil
		}
	}

	return 0, ErrNoSafeSpot
}
