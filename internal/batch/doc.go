// Package batch runs files of numeral and unit conversions with optional
// expectations, for bulk conversion and for checking the codec against a
// hand-written table.
//
// A batch file is YAML:
//
//	name: ledger
//	steps:
//	  - op: decode
//	    input: "XII·"
//	    expect: {value: 12.083333333333334}
//	  - op: encode
//	    value: 12.5
//	    expect: {numeral: "XIIS"}
//	  - op: convert
//	    amount: 1
//	    from: stadium
//	    to: passus
//	    expect: {value: 125, unit: passus}
//	  - op: decode
//	    input: IIII
//	    expect: {error: INVALID_NUMERAL}
//
// Inputs are normalized the way the CLI normalizes them, so "xii." and
// "Mille Passus" are accepted. Steps run in order; a failing conversion
// fails its step unless the step expects that error.
package batch
