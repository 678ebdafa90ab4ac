package cli

import (
	"errors"
	"fmt"

	"github.com/roach88/romano/internal/measure"
	"github.com/roach88/romano/internal/numeral"
	"github.com/roach88/romano/internal/render"
)

// CLI error codes.
const (
	ErrCodeGeneric         = "E001" // Generic/unknown error
	ErrCodeInvalidArgument = "E002" // Argument is not a number, etc.
	ErrCodeBatchFile       = "E003" // Batch file missing or invalid
	ErrCodeConfig          = "E004" // Config file or flag invalid
	ErrCodeJournal         = "E005" // Journal missing or unusable

	ErrCodeInvalidNumeral    = "E201" // numeral.ErrCodeInvalidNumeral
	ErrCodeOutOfRange        = "E202" // numeral.ErrCodeOutOfRange
	ErrCodeUnknownUnit       = "E203" // measure.ErrCodeUnknownUnit
	ErrCodeIncompatibleUnits = "E204" // measure.ErrCodeIncompatibleUnits
	ErrCodeInvalidAmount     = "E205" // measure.ErrCodeInvalidAmount
	ErrCodeRegistry          = "E206" // measure.ErrCodeZeroFactor, measure.ErrCodeInvalidRegistry
)

var domainCodes = map[string]string{
	string(numeral.ErrCodeInvalidNumeral):    ErrCodeInvalidNumeral,
	string(numeral.ErrCodeOutOfRange):        ErrCodeOutOfRange,
	string(measure.ErrCodeUnknownUnit):       ErrCodeUnknownUnit,
	string(measure.ErrCodeIncompatibleUnits): ErrCodeIncompatibleUnits,
	string(measure.ErrCodeInvalidAmount):     ErrCodeInvalidAmount,
	string(measure.ErrCodeZeroFactor):        ErrCodeRegistry,
	string(measure.ErrCodeInvalidRegistry):   ErrCodeRegistry,
}

// domainErrorDetails is the structured detail attached to domain errors.
type domainErrorDetails struct {
	Kind      string   `json:"kind" yaml:"kind"`
	Offending string   `json:"offending,omitempty" yaml:"offending,omitempty"`
	Units     []string `json:"units,omitempty" yaml:"units,omitempty"`
}

// outputDomainError reports a codec or registry error and returns the
// matching ExitError. Registry errors are command errors (exit 2); every
// other domain error is a conversion failure (exit 1).
func outputDomainError(f *OutputFormatter, err error) error {
	kind := render.ErrorCode(err)
	code, ok := domainCodes[kind]
	if !ok {
		code = ErrCodeGeneric
	}

	details := domainErrorDetails{Kind: kind}
	var ne *numeral.Error
	if errors.As(err, &ne) {
		details.Offending = ne.Offending
	}
	var me *measure.Error
	if errors.As(err, &me) {
		details.Offending = me.Unit
		details.Units = me.Known
	}

	_ = f.Error(code, err.Error(), details)

	exit := ExitFailure
	if code == ErrCodeRegistry || code == ErrCodeGeneric {
		exit = ExitCommandError
	}
	return WrapExitError(exit, code, err)
}

// outputCommandError reports a non-domain error (arguments, files, config)
// and returns an ExitError with ExitCommandError.
func outputCommandError(f *OutputFormatter, code string, err error) error {
	_ = f.Error(code, err.Error(), nil)
	return WrapExitError(ExitCommandError, code, err)
}

func invalidNumberArg(name, value string) error {
	return fmt.Errorf("%s must be a number, got %q", name, value)
}
