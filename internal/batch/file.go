package batch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Step operations.
const (
	OpDecode  = "decode"
	OpEncode  = "encode"
	OpConvert = "convert"
)

// File is a parsed batch file.
type File struct {
	// Name identifies the batch in reports.
	Name string `yaml:"name"`

	// Description is free text.
	Description string `yaml:"description,omitempty"`

	// Steps run in order.
	Steps []Step `yaml:"steps"`
}

// Step is one conversion.
type Step struct {
	// Op is decode, encode or convert.
	Op string `yaml:"op"`

	// Input is the numeral text (decode).
	Input string `yaml:"input,omitempty"`

	// Value is the decimal to encode (encode).
	Value *float64 `yaml:"value,omitempty"`

	// Amount, From and To describe a conversion (convert).
	// To may be "modern" for the SI base unit.
	Amount *float64 `yaml:"amount,omitempty"`
	From   string   `yaml:"from,omitempty"`
	To     string   `yaml:"to,omitempty"`

	// Expect is optional. Without it the step only has to succeed.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect states what a step should produce. Only set fields are checked.
type Expect struct {
	// Numeral is the expected canonical numeral (encode). "Nihil" means zero.
	Numeral *string `yaml:"numeral,omitempty"`

	// Value is the expected decimal result (decode, convert).
	Value *float64 `yaml:"value,omitempty"`

	// Tolerance is the allowed absolute difference for Value. Zero means exact.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	// Unit is the expected result label (convert).
	Unit string `yaml:"unit,omitempty"`

	// Error is the expected error code, e.g. INVALID_NUMERAL.
	Error string `yaml:"error,omitempty"`
}

// LoadError reports a batch file that cannot be used.
type LoadError struct {
	Path  string
	Field string
	Msg   string
	Err   error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("batch")
	if e.Path != "" {
		fmt.Fprintf(&b, " %s", e.Path)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": %s", e.Field)
	}
	fmt.Fprintf(&b, ": %s", e.Msg)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads and validates a batch file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Msg: "cannot read file", Err: err}
	}
	f, err := Parse(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return f, nil
}

// Parse decodes and validates batch YAML. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Msg: "file is empty"}
		}
		return nil, &LoadError{Msg: "invalid YAML", Err: err}
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks that every step carries the fields its op needs.
func (f *File) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &LoadError{Field: "name", Msg: "batch name is required"}
	}
	if len(f.Steps) == 0 {
		return &LoadError{Field: "steps", Msg: "at least one step is required"}
	}

	for i, s := range f.Steps {
		field := fmt.Sprintf("steps[%d]", i)
		switch s.Op {
		case OpDecode:
			// An empty input is zero.
		case OpEncode:
			if s.Value == nil {
				return &LoadError{Field: field + ".value", Msg: "value is required for encode"}
			}
		case OpConvert:
			if s.Amount == nil {
				return &LoadError{Field: field + ".amount", Msg: "amount is required for convert"}
			}
			if strings.TrimSpace(s.From) == "" {
				return &LoadError{Field: field + ".from", Msg: "from is required for convert"}
			}
			if strings.TrimSpace(s.To) == "" {
				return &LoadError{Field: field + ".to", Msg: "to is required for convert"}
			}
		case "":
			return &LoadError{Field: field + ".op", Msg: "op is required"}
		default:
			return &LoadError{Field: field + ".op", Msg: fmt.Sprintf("unknown op %q (want decode, encode or convert)", s.Op)}
		}

		if s.Expect != nil && s.Expect.Tolerance < 0 {
			return &LoadError{Field: field + ".expect.tolerance", Msg: "tolerance must not be negative"}
		}
	}

	return nil
}
