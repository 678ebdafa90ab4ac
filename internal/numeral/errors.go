package numeral

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes codec errors.
type ErrorCode string

const (
	// ErrCodeInvalidNumeral indicates malformed numeral text.
	ErrCodeInvalidNumeral ErrorCode = "INVALID_NUMERAL"

	// ErrCodeOutOfRange indicates a decimal value that cannot be written as a numeral.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
)

// Error is returned by every failing codec operation.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Input is the full text or value the caller passed in.
	Input string

	// Offending is the substring (or value) that made the input invalid.
	Offending string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Offending != "" && e.Offending != e.Input {
		return fmt.Sprintf("%s: %s: %q in %q", e.Code, e.Message, e.Offending, e.Input)
	}
	if e.Input != "" {
		return fmt.Sprintf("%s: %s: %q", e.Code, e.Message, e.Input)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidNumeral reports whether err is, or wraps, an INVALID_NUMERAL error.
func IsInvalidNumeral(err error) bool {
	return hasCode(err, ErrCodeInvalidNumeral)
}

// IsOutOfRange reports whether err is, or wraps, an OUT_OF_RANGE error.
func IsOutOfRange(err error) bool {
	return hasCode(err, ErrCodeOutOfRange)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func invalidNumeral(input, offending, message string) *Error {
	return &Error{
		Code:      ErrCodeInvalidNumeral,
		Message:   message,
		Input:     input,
		Offending: offending,
	}
}

func outOfRange(v float64) *Error {
	s := fmt.Sprintf("%g", v)
	return &Error{
		Code:      ErrCodeOutOfRange,
		Message:   fmt.Sprintf("value must be between 0 and %d 11/12", MaxWhole),
		Input:     s,
		Offending: s,
	}
}
