// Package codestd implements the pluggable code-standard safety-check
// engine (spec.md C3): every Standard runs the same core battery of
// structural checks, each implementation supplying its own thresholds
// and derivations, matching how its national design code actually
// differs from the others; IEC and EUROCODE also run an ice-load check.
//
// Every Standard implementation lives in its own impl_*.go file as one
// stateless type.
// RunChecks drives any Standard through the shared battery order so a
// caller never has to know which implementation it holds.
package codestd
