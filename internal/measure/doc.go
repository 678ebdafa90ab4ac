// Package measure converts Roman units of length, weight and capacity to
// SI units and to each other.
//
// The unit table lives in units.cue. It is compiled and validated against
// its CUE schema once per process (see Default) and is read-only after
// that, so a *Registry can be shared freely between goroutines.
//
// Conversions are plain float64 arithmetic through the SI base unit of the
// category and are approximate, with one exception: libra and uncia convert
// with the exact ratio 12.
package measure
