package veekun

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Veekun identifiers are lowercase kebab-case. NoLower keeps any cased rune
// outside the first position untouched, so conversion never destroys input.
var titleCaser = cases.Title(language.English, cases.NoLower)

// PascalName converts a veekun identifier to PascalCase:
// "master-ball" becomes "MasterBall".
func PascalName(identifier string) string {
	return strings.ReplaceAll(titleCaser.String(identifier), "-", "")
}

// DisplayName converts a veekun identifier to a spaced display name:
// "master-ball" becomes "Master Ball".
func DisplayName(identifier string) string {
	return titleCaser.String(strings.ReplaceAll(identifier, "-", " "))
}
