package utils

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase upper-cases the first letter of each word and lower-cases the rest,
// e.g. "new YORK" becomes "New York".
func TitleCase(s string) string {
	// A Caser is stateful, so one is built per call.
	return cases.Title(language.Und).String(s)
}
