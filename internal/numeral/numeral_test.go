package numeral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeKnownValues(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"", 0},
		{"I", 1},
		{"IV", 4},
		{"IX", 9},
		{"XIV", 14},
		{"XL", 40},
		{"XC", 90},
		{"CD", 400},
		{"CM", 900},
		{"MCMXCIV", 1994},
		{"MMXXIII", 2023},
		{"MMMCMXCIX", 3999},
		{"S", 0.5},
		{"·", 1.0 / 12},
		{"·····", 5.0 / 12},
		{"S·····", 11.0 / 12},
		{"XIIS", 12.5},
		{"XII·", 12 + 1.0/12},
		{"MMMCMXCIXS·····", 3999 + 11.0/12},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Decode(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeXIIDot(t *testing.T) {
	got, err := Decode("XII·")
	require.NoError(t, err)
	assert.InDelta(t, 12.0833333, got, 1e-6)
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		text      string
		offending string
	}{
		{"IIII", "IIII"},
		{"XIIII", "IIII"},
		{"VV", "VV"},
		{"XXXX", "XXXX"},
		{"LL", "LL"},
		{"DD", "DD"},
		{"MMMM", "MMMM"},
		{"IC", "IC"},
		{"IL", "IL"},
		{"XM", "XM"},
		{"VX", "VX"},
		{"IIV", "IIV"},
		{"IXI", "IXI"},
		{"IXIX", "IXI"},
		{"VIV", "VIV"},
		{"CMC", "CMC"},
		{"XCX", "XCX"},
		{"CMM", "CMM"},
		{"MCMC", "CMC"},
		{"A", "A"},
		{"xii", "x"},
		{"XII ", " "},
		{"SI", "SI"},
		{"·I", "·I"},
		{"S·S", "S·S"},
		{"··S", "··S"},
		{"······", "······"},
		{"XS······", "S······"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := Decode(tt.text)
			require.Error(t, err)
			assert.True(t, IsInvalidNumeral(err), "expected INVALID_NUMERAL, got %v", err)

			var codecErr *Error
			require.ErrorAs(t, err, &codecErr)
			assert.Equal(t, tt.offending, codecErr.Offending)
			assert.Equal(t, tt.text, codecErr.Input)
		})
	}
}

func TestEncodeKnownValues(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, ""},
		{1, "I"},
		{4, "IV"},
		{1994, "MCMXCIV"},
		{2023, "MMXXIII"},
		{3999, "MMMCMXCIX"},
		{12.5, "XIIS"},
		{12 + 1.0/12, "XII·"},
		{12 + 7.0/12, "XIIS·"},
		{3999 + 11.0/12, "MMMCMXCIXS·····"},
	}

	for _, tt := range tests {
		got, err := Encode(tt.value)
		require.NoError(t, err, "Encode(%v)", tt.value)
		assert.Equal(t, tt.want, got, "Encode(%v)", tt.value)
	}
}

func TestEncodeRoundsToNearestTwelfthHalfUp(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{12.53, "XIIS"},      // 150.36 twelfths
		{0.0417, "·"},        // 0.5004 twelfths
		{0.375, "·····"},     // 4.5 twelfths, tie goes up
		{10.375, "X·····"},   // 124.5 twelfths
		{0.625, "S··"},       // 7.5 twelfths
		{0.02, ""},           // 0.24 twelfths
		{12.99, "XIII"},      // 155.88 twelfths carries into the integer
		{3999.95, "MMMCMXCIXS·····"},
	}

	for _, tt := range tests {
		got, err := Encode(tt.value)
		require.NoError(t, err, "Encode(%v)", tt.value)
		assert.Equal(t, tt.want, got, "Encode(%v)", tt.value)
	}
}

func TestEncodeOutOfRange(t *testing.T) {
	values := []float64{
		-1,
		-0.01,
		4000,
		3999.96, // rounds to 4000
		1e9,
		math.NaN(),
		math.Inf(1),
		math.Inf(-1),
	}

	for _, v := range values {
		_, err := Encode(v)
		require.Error(t, err, "Encode(%v)", v)
		assert.True(t, IsOutOfRange(err), "Encode(%v): %v", v, err)
		assert.False(t, IsInvalidNumeral(err))
	}
}

func TestRoundTripIntegers(t *testing.T) {
	for n := 0; n <= MaxWhole; n++ {
		s, err := Encode(float64(n))
		require.NoError(t, err)

		got, err := Decode(s)
		require.NoError(t, err, "Decode(%q)", s)
		require.Equal(t, float64(n), got, "n=%d s=%q", n, s)
	}
}

func TestRoundTripTwelfths(t *testing.T) {
	for n := 0; n <= MaxWhole; n++ {
		for f := 0; f < TwelfthsPerUnit; f++ {
			v := float64(n) + float64(f)/TwelfthsPerUnit

			s, err := Encode(v)
			require.NoError(t, err, "Encode(%v)", v)

			got, err := Decode(s)
			require.NoError(t, err, "Decode(%q)", s)
			require.Equal(t, v, got, "n=%d f=%d s=%q", n, f, s)

			// Canonical forms are exactly the accepted language.
			back, err := Encode(got)
			require.NoError(t, err)
			require.Equal(t, s, back)
		}
	}
}

func TestNumeralString(t *testing.T) {
	assert.Equal(t, "", Numeral{}.String())
	assert.Equal(t, "S", Numeral{Twelfths: 6}.String())
	assert.Equal(t, "MMXXIIIS··", Numeral{Whole: 2023, Twelfths: 8}.String())
	assert.True(t, Numeral{}.IsZero())
	assert.False(t, Numeral{Twelfths: 1}.IsZero())
}

func TestParseReturnsParts(t *testing.T) {
	n, err := Parse("XLIIS···")
	require.NoError(t, err)
	assert.Equal(t, Numeral{Whole: 42, Twelfths: 9}, n)
	assert.Equal(t, 42.75, n.Value())
}
