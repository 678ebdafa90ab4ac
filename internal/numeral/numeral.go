package numeral

import (
	"math"
	"strings"
)

const (
	// MaxWhole is the largest integer part a numeral can carry (MMMCMXCIX).
	MaxWhole = 3999

	// TwelfthsPerUnit is the fraction denominator: one uncia is 1/12.
	TwelfthsPerUnit = 12

	// MaxDots is the largest run of uncia dots; six dots are written as S.
	MaxDots = 5

	// Semis is the symbol for one half (6/12).
	Semis = 'S'

	// Dot is the uncia symbol (1/12), MIDDLE DOT U+00B7.
	Dot = '·'
)

// maxTwelfths is MaxWhole + 11/12 expressed in twelfths.
const maxTwelfths = MaxWhole*TwelfthsPerUnit + TwelfthsPerUnit - 1

// wholeTable drives greedy encoding, largest value first.
var wholeTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Numeral is a non-negative value expressible in Roman notation:
// an integer part plus a count of twelfths.
//
// The zero value is zero, written as the empty string.
type Numeral struct {
	// Whole is the integer part, 0 to MaxWhole.
	Whole int

	// Twelfths is the fractional part in twelfths, 0 to 11.
	Twelfths int
}

// Value returns the decimal value Whole + Twelfths/12.
func (n Numeral) Value() float64 {
	return float64(n.Whole) + float64(n.Twelfths)/TwelfthsPerUnit
}

// IsZero reports whether n is zero.
func (n Numeral) IsZero() bool {
	return n.Whole == 0 && n.Twelfths == 0
}

// String returns the canonical numeral, e.g. "XIIS·" for 12 7/12.
// Zero is the empty string.
func (n Numeral) String() string {
	var b strings.Builder

	remaining := n.Whole
	for _, entry := range wholeTable {
		for remaining >= entry.value {
			b.WriteString(entry.symbol)
			remaining -= entry.value
		}
	}

	t := n.Twelfths
	if t >= TwelfthsPerUnit/2 {
		b.WriteRune(Semis)
		t -= TwelfthsPerUnit / 2
	}
	for i := 0; i < t; i++ {
		b.WriteRune(Dot)
	}

	return b.String()
}

// Parse validates text and returns the numeral it spells.
// The empty string is zero.
func Parse(text string) (Numeral, error) {
	runes := []rune(text)

	for _, r := range runes {
		if !isSymbol(r) {
			return Numeral{}, invalidNumeral(text, string(r), "unknown symbol")
		}
	}

	split := len(runes)
	for i, r := range runes {
		if r == Semis || r == Dot {
			split = i
			break
		}
	}

	whole, err := parseWhole(text, runes[:split])
	if err != nil {
		return Numeral{}, err
	}

	twelfths, err := parseFraction(text, runes[split:])
	if err != nil {
		return Numeral{}, err
	}

	return Numeral{Whole: whole, Twelfths: twelfths}, nil
}

// Decode converts numeral text to its decimal value.
//
//	Decode("XII·")      // 12.083333333333334
//	Decode("MMMCMXCIX") // 3999
func Decode(text string) (float64, error) {
	n, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return n.Value(), nil
}

// FromFloat rounds v to the nearest twelfth and returns the numeral for it.
//
// Ties round half up (0.375 is 4.5 twelfths and becomes 5/12). A remainder
// that rounds to 12/12 carries into the integer part. Negative, NaN and
// infinite values, and values that round above 3999 11/12, are OUT_OF_RANGE.
func FromFloat(v float64) (Numeral, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return Numeral{}, outOfRange(v)
	}

	// The explicit conversion keeps the multiply from fusing with the add.
	total := math.Floor(float64(v*TwelfthsPerUnit) + 0.5)
	if total > maxTwelfths {
		return Numeral{}, outOfRange(v)
	}

	t := int(total)
	return Numeral{Whole: t / TwelfthsPerUnit, Twelfths: t % TwelfthsPerUnit}, nil
}

// Encode converts a decimal value to its canonical numeral.
//
//	Encode(2023) // "MMXXIII"
//	Encode(12.5) // "XIIS"
func Encode(v float64) (string, error) {
	n, err := FromFloat(v)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

func isSymbol(r rune) bool {
	switch r {
	case 'I', 'V', 'X', 'L', 'C', 'D', 'M', Semis, Dot:
		return true
	}
	return false
}

// parseFraction reads the suffix S?·{0,5}. An empty suffix is zero.
func parseFraction(text string, suffix []rune) (int, error) {
	if len(suffix) == 0 {
		return 0, nil
	}

	twelfths := 0
	rest := suffix
	if rest[0] == Semis {
		twelfths = TwelfthsPerUnit / 2
		rest = rest[1:]
	}

	for _, r := range rest {
		if r != Dot {
			return 0, invalidNumeral(text, string(suffix), "fraction must be S followed by up to five dots and come last")
		}
	}
	if len(rest) > MaxDots {
		return 0, invalidNumeral(text, string(suffix), "at most five uncia dots are allowed")
	}

	return twelfths + len(rest), nil
}
