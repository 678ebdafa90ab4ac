package batch

import (
	"fmt"
	"io"
)

// StepResult is the outcome of one step.
type StepResult struct {
	Index     int     `json:"index" yaml:"index"`
	Op        string  `json:"op" yaml:"op"`
	Input     string  `json:"input" yaml:"input"`
	Output    string  `json:"output,omitempty" yaml:"output,omitempty"`
	Value     float64 `json:"value" yaml:"value"`
	Numeral   string  `json:"numeral,omitempty" yaml:"numeral,omitempty"`
	Unit      string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	ErrorCode string  `json:"error_code,omitempty" yaml:"error_code,omitempty"`
	Error     string  `json:"error,omitempty" yaml:"error,omitempty"`
	Pass      bool    `json:"pass" yaml:"pass"`
	Mismatch  string  `json:"mismatch,omitempty" yaml:"mismatch,omitempty"`
}

// Report is the outcome of a batch run.
type Report struct {
	Name   string       `json:"name" yaml:"name"`
	Steps  []StepResult `json:"steps" yaml:"steps"`
	Passed int          `json:"passed" yaml:"passed"`
	Failed int          `json:"failed" yaml:"failed"`
}

// OK reports whether every step passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// WriteText writes one line per step and a summary line:
//
//	batch ledger
//	  1 ok    decode XII· -> 12.083333333333334
//	  2 FAIL  encode 12.5 -> XIIS: expected numeral "XIII", got "XIIS"
//	1 passed, 1 failed
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "batch %s\n", r.Name); err != nil {
		return err
	}

	for _, s := range r.Steps {
		status := "ok"
		if !s.Pass {
			status = "FAIL"
		}

		result := s.Output
		if s.ErrorCode != "" {
			result = "error " + s.ErrorCode
		}

		line := fmt.Sprintf("%3d %-5s %s %s -> %s", s.Index, status, s.Op, s.Input, result)
		if s.Mismatch != "" {
			line += ": " + s.Mismatch
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d passed, %d failed\n", r.Passed, r.Failed)
	return err
}
