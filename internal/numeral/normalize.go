package numeral

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Zero is how zero is spoken; Normalize maps it to the empty numeral.
const Zero = "Nihil"

// dotLookalikes maps characters commonly typed in place of the middle dot.
// GREEK ANO TELEIA (U+0387) needs no entry: NFC folds it to U+00B7.
var dotLookalikes = strings.NewReplacer(
	".", string(Dot),
	"•", string(Dot), // BULLET
	"⋅", string(Dot), // DOT OPERATOR
	"∙", string(Dot), // BULLET OPERATOR
)

// Normalize prepares user input for Parse: it trims space, applies NFC,
// upper-cases, and replaces look-alike dots with U+00B7. "Nihil" in any
// case becomes the empty string. Parse itself stays strict.
func Normalize(text string) string {
	s := norm.NFC.String(strings.TrimSpace(text))
	if strings.EqualFold(s, Zero) {
		return ""
	}
	s = cases.Upper(language.Und).String(s)
	return dotLookalikes.Replace(s)
}

// Display renders n for people: the canonical numeral, or "Nihil" for zero.
func Display(n Numeral) string {
	if n.IsZero() {
		return Zero
	}
	return n.String()
}
