package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalCommand(t *testing.T) {
	isolate(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"integer", "MCMXCIV", "1994.0"},
		{"max", "MMMCMXCIX", "3999.0"},
		{"dot fraction", "XII·", "12.083333333333334"},
		{"semis and dot", "XIIS·", "12.583333333333334"},
		{"lowercase with ascii dot", "xiis.", "12.583333333333334"},
		{"nihil", "nihil", "0.0"},
		{"fraction only", "S", "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, "a_decimal", tt.input)
			require.Equal(t, ExitSuccess, res.code, res.stderr)
			assert.Equal(t, tt.want+"\n", res.stdout)
		})
	}
}

func TestDecimalCommand_Alias(t *testing.T) {
	isolate(t)

	res := execute(t, "to-decimal", "IV")
	require.Equal(t, ExitSuccess, res.code)
	assert.Equal(t, "4.0\n", res.stdout)
}

func TestDecimalCommand_Invalid(t *testing.T) {
	isolate(t)

	for _, input := range []string{"IIII", "IC", "VV", "XIIA", "S·S"} {
		t.Run(input, func(t *testing.T) {
			res := execute(t, "a_decimal", input)
			assert.Equal(t, ExitFailure, res.code)
			assert.Empty(t, res.stdout)
			assert.True(t, strings.HasPrefix(res.stderr, "Error [E201]: INVALID_NUMERAL"), res.stderr)
		})
	}
}

func TestDecimalCommand_JSONError(t *testing.T) {
	isolate(t)

	res := execute(t, "--format", "json", "a_decimal", "IIII")
	assert.Equal(t, ExitFailure, res.code)

	var resp struct {
		Status string `json:"status"`
		Error  struct {
			Code    string             `json:"code"`
			Details domainErrorDetails `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "E201", resp.Error.Code)
	assert.Equal(t, "INVALID_NUMERAL", resp.Error.Details.Kind)
	assert.NotEmpty(t, resp.Error.Details.Offending)
}

func TestRomanCommand(t *testing.T) {
	isolate(t)

	tests := []struct {
		input string
		want  string
	}{
		{"1994", "MCMXCIV"},
		{"2023", "MMXXIII"},
		{"12.5", "XIIS"},
		{"12.083333333333334", "XII·"},
		{"0.375", "·····"},
		{"12.99", "XIII"},
		{"0", "Nihil"},
		{"3999.9166666666665", "MMMCMXCIXS·····"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := execute(t, "a_romano", tt.input)
			require.Equal(t, ExitSuccess, res.code, res.stderr)
			assert.Equal(t, tt.want+"\n", res.stdout)
		})
	}
}

func TestRomanCommand_Errors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"too large", []string{"a_romano", "4000"}, ExitFailure, "Error [E202]: OUT_OF_RANGE"},
		{"rounds past max", []string{"a_romano", "3999.96"}, ExitFailure, "Error [E202]"},
		{"negative", []string{"a_romano", "--", "-1"}, ExitFailure, "Error [E202]"},
		{"not a number", []string{"a_romano", "doce"}, ExitCommandError, `Error [E002]: value must be a number, got "doce"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, tt.args...)
			assert.Equal(t, tt.code, res.code)
			assert.Contains(t, res.stderr, tt.want)
		})
	}
}

func TestRomanCommand_JSON(t *testing.T) {
	isolate(t)

	res := execute(t, "--format", "json", "to-roman", "12.5")
	require.Equal(t, ExitSuccess, res.code)

	var resp struct {
		Status string      `json:"status"`
		Data   RomanResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, RomanResult{Value: 12.5, Numeral: "XIIS", Whole: 12, Twelfths: 6}, resp.Data)
}

func TestConvertCommand(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"stadium to passus", []string{"1", "stadium", "passus"}, "125.0"},
		{"libra to uncia", []string{"1", "libra", "uncia"}, "12.0"},
		{"uncia to libra", []string{"6", "uncia", "libra"}, "0.5"},
		{"passus to modern", []string{"2", "passus", "modern"}, "2.96"},
		{"pes to passus", []string{"10", "pes", "passus"}, "2.0"},
		{"same unit", []string{"3", "amphora", "amphora"}, "3.0"},
		{"spaced name", []string{"1", "Mille Passus", "MODERN"}, "1480.0"},
		{"hyphenated name", []string{"2", "mille-passus", "stadium"}, "16.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, append([]string{"conversion_unidades"}, tt.args...)...)
			require.Equal(t, ExitSuccess, res.code, res.stderr)
			assert.Equal(t, tt.want+"\n", res.stdout)
		})
	}
}

func TestConvertCommand_JSON(t *testing.T) {
	isolate(t)

	res := execute(t, "--format", "json", "convert", "2", "passus", "modern")
	require.Equal(t, ExitSuccess, res.code)

	var resp struct {
		Data ConvertResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, "meter", resp.Data.Unit)
	assert.Equal(t, "passus", resp.Data.From)
	assert.InDelta(t, 2.96, resp.Data.Value, 1e-12)
}

func TestConvertCommand_Errors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"unknown unit", []string{"1", "cubitus", "modern"}, ExitFailure, "Error [E203]: UNKNOWN_UNIT"},
		{"unknown target", []string{"1", "pes", "cubitus"}, ExitFailure, "Error [E203]"},
		{"incompatible", []string{"1", "pes", "libra"}, ExitFailure, "Error [E204]: INCOMPATIBLE_UNITS"},
		{"negative amount", []string{"--", "-1", "pes", "modern"}, ExitFailure, "Error [E205]: INVALID_AMOUNT"},
		{"not a number", []string{"unus", "pes", "modern"}, ExitCommandError, "Error [E002]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, append([]string{"conversion_unidades"}, tt.args...)...)
			assert.Equal(t, tt.code, res.code)
			assert.Contains(t, res.stderr, tt.want)
		})
	}
}

func TestUnitsCommand_Golden(t *testing.T) {
	isolate(t)

	res := execute(t, "--precision", "6", "unidades")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "units", []byte(res.stdout))
}

func TestUnitsCommand_YAML(t *testing.T) {
	isolate(t)

	res := execute(t, "--format", "yaml", "units")
	require.Equal(t, ExitSuccess, res.code)
	assert.Contains(t, res.stdout, "- name: pes\n")
	assert.Contains(t, res.stdout, "base: kg\n")
	assert.Contains(t, res.stdout, "category: capacity\n")
}

const passingBatch = `name: quick
steps:
  - op: decode
    input: XII
    expect: {value: 12}
  - op: encode
    value: 12.5
    expect: {numeral: XIIS}
  - op: convert
    amount: 1
    from: stadium
    to: passus
    expect: {value: 125, unit: passus}
`

const failingBatch = `name: wrong
steps:
  - op: encode
    value: 12.5
    expect: {numeral: XIII}
`

func TestBatchCommand(t *testing.T) {
	isolate(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "quick.yaml"), passingBatch)

	res := execute(t, "batch", path)
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, `batch quick
  1 ok    decode XII -> 12.0
  2 ok    encode 12.5 -> XIIS
  3 ok    convert 1.0 stadium passus -> 125.0 passus
3 passed, 0 failed
`, res.stdout)
}

func TestBatchCommand_Failure(t *testing.T) {
	isolate(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "wrong.yaml"), failingBatch)

	res := execute(t, "--format", "json", "batch", path)
	assert.Equal(t, ExitFailure, res.code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Passed int `json:"passed"`
			Failed int `json:"failed"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 0, resp.Data.Passed)
	assert.Equal(t, 1, resp.Data.Failed)
}

func TestBatchCommand_BadFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	res := execute(t, "batch", filepath.Join(dir, "absent.yaml"))
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.stderr, "Error [E003]")

	path := writeFile(t, filepath.Join(dir, "bad.yaml"), "name: bad\nsteps:\n  - op: multiply\n")
	res = execute(t, "batch", path)
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.stderr, "steps[0].op")
}

func TestHistoryCommand(t *testing.T) {
	isolate(t)
	db := filepath.Join(t.TempDir(), "journal.db")

	require.Equal(t, ExitSuccess, execute(t, "--journal", db, "a_decimal", "XII").code)
	require.Equal(t, ExitFailure, execute(t, "--journal", db, "a_romano", "4000").code)
	require.Equal(t, ExitSuccess, execute(t, "--journal", db, "convert", "2", "passus", "modern").code)

	res := execute(t, "--journal", db, "history")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, `SEQ  COMMAND              INPUT            RESULT
1    a_decimal            XII              12.0
2    a_romano             4000             error OUT_OF_RANGE
3    conversion_unidades  2 passus modern  2.96 meter
`, res.stdout)
}

func TestHistoryCommand_Filters(t *testing.T) {
	isolate(t)
	db := filepath.Join(t.TempDir(), "journal.db")
	t.Setenv("ROMANO_JOURNAL", db)

	for _, n := range []string{"I", "II", "III"} {
		require.Equal(t, ExitSuccess, execute(t, "a_decimal", n).code)
	}
	require.Equal(t, ExitSuccess, execute(t, "a_romano", "4").code)

	res := execute(t, "--format", "json", "history", "--command", "a_decimal", "--limit", "2")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	var resp struct {
		Data []struct {
			Seq     int64  `json:"seq"`
			Command string `json:"command"`
			Input   string `json:"input"`
			ID      string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "II", resp.Data[0].Input)
	assert.Equal(t, "III", resp.Data[1].Input)
	assert.Less(t, resp.Data[0].Seq, resp.Data[1].Seq)
	assert.Len(t, resp.Data[0].ID, 36)
}

func TestHistoryCommand_Empty(t *testing.T) {
	isolate(t)

	res := execute(t, "--journal", filepath.Join(t.TempDir(), "journal.db"), "history")
	require.Equal(t, ExitSuccess, res.code)
	assert.Equal(t, "no entries\n", res.stdout)
}

func TestHistoryCommand_NoJournal(t *testing.T) {
	isolate(t)

	res := execute(t, "history")
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.stderr, "Error [E005]")
}

func TestJournalFailureDoesNotFailConversion(t *testing.T) {
	isolate(t)
	db := filepath.Join(t.TempDir(), "missing", "dir", "journal.db")

	res := execute(t, "--journal", db, "a_romano", "12")
	require.Equal(t, ExitSuccess, res.code)
	assert.Equal(t, "XII\n", res.stdout)
	assert.Contains(t, res.stderr, "journal unavailable")
}
