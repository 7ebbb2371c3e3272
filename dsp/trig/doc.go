// Package trig provides fixed-point trigonometry on the wrapped int32 phase
// convention of package phase.
//
// [CosSin] evaluates cosine and sine from a 128-entry first-octant table with
// linear interpolation. The table is computed exactly once at package
// initialization and is read-only afterwards, so CosSin may be called from
// any number of goroutines. [Atan2] is the inverse, mapping a fixed-point
// (y, x) pair back to a wrapped phase.
//
// Both functions are stateless, allocation-free and have data-independent
// cost apart from the fixed octant selects.
package trig
