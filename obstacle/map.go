package obstacle

import (
	"sort"

	"github.com/katalvlaran/translineopt/route"
)

// Map is a sorted, same-kind-merged collection of route.ForbiddenZone.
// Zones of different kinds are never merged even when they overlap:
// spec.md C5 treats a waterway crossing a highway as two independent
// obstacles, each still individually forbidden.
type Map struct {
	zones []route.ForbiddenZone
}

// NewMap validates every input zone, merges overlapping same-kind zones,
// and returns an immutable, distance-sorted Map.
//
// Complexity: O(n log n).
func NewMap(zones []route.ForbiddenZone) (*Map, error) {
	cp := make([]route.ForbiddenZone, len(zones))
	copy(cp, zones)
	for _, z := range cp {
		if err := z.Validate(); err != nil {
			return nil, err
		}
	}
	sort.Slice(cp, func(i, j int) bool {
		if cp[i].Kind != cp[j].Kind {
			return cp[i].Kind < cp[j].Kind
		}
		return cp[i].Start < cp[j].Start
	})

	merged := make([]route.ForbiddenZone, 0, len(cp))
	for _, z := range cp {
		if n := len(merged); n > 0 && merged[n-1].Kind == z.Kind && z.Start <= merged[n-1].End {
			if z.End > merged[n-1].End {
				merged[n-1].End = z.End
			}
			if merged[n-1].Name == "" {
				merged[n-1].Name = z.Name
			}
			continue
		}
		merged = append(merged, z)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Start < merged[j].Start })

	return &Map{zones: merged}, nil
}

// Zones returns a read-only copy of the map's merged zones.
func (m *Map) Zones() []route.ForbiddenZone {
	cp := make([]route.ForbiddenZone, len(m.zones))
	copy(cp, m.zones)
	return cp
}

// IsForbidden reports whether d falls within any zone, and returns the
// first such zone in start order.
//
// Complexity: O(n) over the merged zones; zones of different kinds may
// overlap, so their ends are not sorted and every zone is checked.
func (m *Map) IsForbidden(d float64) (bool, route.ForbiddenZone) {
	for _, z := range m.zones {
		if z.Contains(d) {
			return true, z
		}
	}
	return false, route.ForbiddenZone{}
}
