// Package spur measures the spectral purity of a single-tone signal.
//
// [Analyze] windows the signal with a 4-term Blackman-Harris window,
// transforms it and reports the spurious-free dynamic range (SFDR) and the
// signal to noise and distortion ratio (SINAD). [CosSin] synthesizes the
// cosine output of trig.CosSin for a constant phase increment, the usual
// input when characterizing the oscillator.
package spur
