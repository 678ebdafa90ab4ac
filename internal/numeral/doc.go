// Package numeral converts between Roman numerals and decimal values.
//
// The integer part covers 0 to 3999 using the classical symbols
// I V X L C D M. The fractional part is counted in twelfths (unciae):
// S is six twelfths and each middle dot (·, U+00B7) one twelfth, so a
// numeral carries at most S followed by five dots (11/12).
//
// Parsing is strict: the accepted language is exactly the canonical form
// produced by Encode, so Encode(Decode(s)) == s for every accepted s.
// Leniency (lower case, look-alike dots) belongs to callers via Normalize.
//
// The package has no internal dependencies and never logs.
package numeral
