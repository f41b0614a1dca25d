// Package reference loads and queries the regional reference-data
// snapshot: which code standard governs a country, its currency
// presentation tuple, its cost rate table, and a coarse regional-risk
// count (spec.md §6). The snapshot is plain YAML, the same
// configuration-by-data-file convention the teacher corpus uses for its
// own reference tables, parsed with gopkg.in/yaml.v3.
//
// DefaultSnapshot returns a built-in table covering the countries this
// system ships reference data for; LoadSnapshot lets a caller override it
// from an external file without a code change.
package reference
