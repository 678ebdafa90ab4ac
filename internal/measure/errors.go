package measure

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode categorizes registry and conversion errors.
type ErrorCode string

const (
	// ErrCodeUnknownUnit indicates a unit name absent from the registry.
	ErrCodeUnknownUnit ErrorCode = "UNKNOWN_UNIT"

	// ErrCodeIncompatibleUnits indicates a conversion across categories.
	ErrCodeIncompatibleUnits ErrorCode = "INCOMPATIBLE_UNITS"

	// ErrCodeInvalidAmount indicates a negative, NaN or infinite amount.
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"

	// ErrCodeZeroFactor indicates a unit with a zero factor reached the
	// arithmetic. The registry rejects such units at load time.
	ErrCodeZeroFactor ErrorCode = "ZERO_FACTOR"

	// ErrCodeInvalidRegistry indicates a unit table that failed to load.
	ErrCodeInvalidRegistry ErrorCode = "INVALID_REGISTRY"
)

// Error is returned by every failing registry operation.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Unit is the offending unit name, if any.
	Unit string

	// Other is the second unit of a failed unit-to-unit conversion.
	Other string

	// Known lists the valid unit names for UNKNOWN_UNIT.
	Known []string

	// Err is the underlying cause (INVALID_REGISTRY only).
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Code, e.Message)
	switch {
	case e.Unit != "" && e.Other != "":
		fmt.Fprintf(&b, " (%s, %s)", e.Unit, e.Other)
	case e.Unit != "":
		fmt.Fprintf(&b, " %q", e.Unit)
	}
	if len(e.Known) > 0 {
		fmt.Fprintf(&b, "; valid units: %s", strings.Join(e.Known, ", "))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsUnknownUnit reports whether err is, or wraps, an UNKNOWN_UNIT error.
func IsUnknownUnit(err error) bool {
	return hasCode(err, ErrCodeUnknownUnit)
}

// IsIncompatibleUnits reports whether err is, or wraps, an INCOMPATIBLE_UNITS error.
func IsIncompatibleUnits(err error) bool {
	return hasCode(err, ErrCodeIncompatibleUnits)
}

// IsInvalidAmount reports whether err is, or wraps, an INVALID_AMOUNT error.
func IsInvalidAmount(err error) bool {
	return hasCode(err, ErrCodeInvalidAmount)
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func hasCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

func unknownUnit(name string, known []string) *Error {
	return &Error{
		Code:    ErrCodeUnknownUnit,
		Message: "unknown unit",
		Unit:    name,
		Known:   known,
	}
}

func incompatibleUnits(from, to Unit) *Error {
	return &Error{
		Code:    ErrCodeIncompatibleUnits,
		Message: fmt.Sprintf("cannot convert %s to %s", from.Category, to.Category),
		Unit:    from.Name,
		Other:   to.Name,
	}
}

func invalidAmount(amount float64) *Error {
	return &Error{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("amount must be a finite non-negative number, got %g", amount),
	}
}

func invalidRegistry(message string, err error) *Error {
	return &Error{
		Code:    ErrCodeInvalidRegistry,
		Message: message,
		Err:     err,
	}
}
