// Package lock characterizes phase-locked loops on a synthetic wrapped
// phase ramp.
//
// [Step] drives a pll.Tracker with a constant frequency, an optional phase
// step and an optional dropout of missing samples, and reports when the
// loop settles together with its residual and dropout errors.
package lock
