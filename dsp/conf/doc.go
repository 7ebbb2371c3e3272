// Package conf publishes kernel configurations to a running sample loop.
//
// A [Setting] holds one configuration value, such as an iir.IIR. The
// sample loop calls Load once per cycle: a lock-free atomic read of an
// immutable snapshot. Writers stage a copy, validate it and publish it
// atomically, so a rejected value never reaches the loop and the last
// good value stays live.
//
// A [Tree] names settings by '/'-separated paths and moves them to and
// from JSON for a management interface. Each setting is an atomic leaf:
// its whole value is decoded, validated and published together.
package conf
