// Package render formats conversion results for people and for records.
package render

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/roach88/romano/internal/measure"
	"github.com/roach88/romano/internal/numeral"
)

// Float formats v. A non-negative precision gives that many decimals.
// A negative precision gives the shortest representation that round-trips,
// keeping a trailing ".0" on integral values (125 prints as "125.0") and
// switching to exponent form below 1e-4 and from 1e16 up.
func Float(v float64, precision int) string {
	if precision >= 0 {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ErrorCode returns the domain code carried by err ("INVALID_NUMERAL",
// "UNKNOWN_UNIT", ...), "ERROR" for other errors, and "" for nil.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var ne *numeral.Error
	if errors.As(err, &ne) {
		return string(ne.Code)
	}

	var me *measure.Error
	if errors.As(err, &me) {
		return string(me.Code)
	}

	return "ERROR"
}
