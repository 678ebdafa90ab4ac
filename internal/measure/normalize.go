package measure

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nameSeparators = strings.NewReplacer(" ", "_", "-", "_")

// NormalizeName maps user input to registry spelling: "Mille Passus" and
// "mille-passus" both become "mille_passus". Lookup itself is exact.
func NormalizeName(text string) string {
	s := cases.Lower(language.Und).String(strings.TrimSpace(text))
	return nameSeparators.Replace(s)
}
