package reference

import (
	"io"

	"gopkg.in/yaml.v3"
)

// standardValidator reports whether a standard name is known (e.g. a
// wrapper around codestd.Resolve); it is injected rather
// than imported directly so this leaf package never depends on codestd.
type standardValidator func(name string) bool

// LoadSnapshot decodes a YAML document into a Snapshot and validates that
// every country's Standard is one knownStandards recognizes. Passing a
// nil knownStandards skips that check, which is useful for tests that
// only care about the YAML shape.
func LoadSnapshot(r io.Reader, knownStandards standardValidator) (*Snapshot, error) {
	var snap Snapshot
	if err := yaml.NewDecoder(r).Decode(&snap); err != nil {
		return nil, err
	}
	if len(snap.Countries) == 0 {
		return nil, ErrInvalidSnapshot
	}
	if knownStandards != nil {
		for _, entry := range snap.Countries {
			if entry.Standard == "" || !knownStandards(entry.Standard) {
				return nil, ErrInvalidSnapshot
			}
		}
	}
	return &snap, nil
}
