// Package towertype classifies a station's structural role from the
// route's geometry (spec.md C7): how sharply the line bends at that
// point, and whether the station sits at a line end or a strain-section
// boundary, together determine whether it must be built as a
// suspension, angle, tension, or dead-end tower.
//
// What:
//
//   - DeviationAngle: the horizontal bend angle at a station, derived
//     from the bearings of its incoming and outgoing spans.
//   - Classify: maps (deviation angle, line-end, section-boundary) to a
//     route.TowerType, the same three-state-plus-endpoints classification
//     every transmission-line design code uses.
//
// Why:
//
//   - A station's structural role is fixed by geometry before any
//     sizing happens: sizer.PSO receives the type as a constraint, not a
//     decision variable.
package towertype
