package languageutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var EnglishLower = cases.Lower(language.English)
var FrenchLower = cases.Lower(language.French)
var ArabicLower = cases.Lower(language.Arabic)
var EnglishTitle = cases.Title(language.English)

// LowerFor lowercases a value with the casing rules of the given language
// code. Arabic has no case so the caser is effectively a no-op there.
func LowerFor(languageCode string, value string) string {
	switch languageCode {
	case "fr":
		return FrenchLower.String(value)
	case "ar":
		return ArabicLower.String(value)
	default:
		return EnglishLower.String(value)
	}
}

// HashtagToken strips all whitespace from a value so it can be glued after a
// '#'. "All Seasons" becomes "AllSeasons".
func HashtagToken(value string) string {
	return strings.Join(strings.Fields(value), "")
}
