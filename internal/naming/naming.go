// Package naming converts ASL sidecar field names into human-readable
// display labels for text output.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser title-cases words while leaving existing uppercase runs
// (acronyms like "ASL", "M0", "PCASL") alone.
var titleCaser = cases.Title(language.English, cases.NoLower)

// HumanLabel converts a CamelCase sidecar field name into a display label.
// Example: "PostLabelingDelay" -> "Post Labeling Delay"
// Example: "ArterialSpinLabelingType" -> "Arterial Spin Labeling Type"
// Acronym runs are kept intact: "PCASLType" -> "PCASL Type"
func HumanLabel(field string) string {
	words := splitCamel(field)
	for i, w := range words {
		words[i] = titleCaser.String(w)
	}
	return strings.Join(words, " ")
}

// splitCamel splits a CamelCase identifier into its words.
// An uppercase run followed by a lowercase letter keeps the last uppercase
// letter with the following word: "PCASLType" -> ["PCASL", "Type"].
// Digits stick to the preceding word: "M0Type" -> ["M0", "Type"].
func splitCamel(s string) []string {
	if s == "" {
		return nil
	}

	var words []string
	runes := []rune(s)
	start := 0

	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]

		switch {
		case unicode.IsUpper(cur) && !unicode.IsUpper(prev) && !unicode.IsDigit(prev):
			// lower->Upper boundary: "Post|Labeling"
			words = append(words, string(runes[start:i]))
			start = i
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			// end of an uppercase run: "PCASL|Type"
			words = append(words, string(runes[start:i]))
			start = i
		case unicode.IsDigit(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			// digit-terminated word: "M0|Type"
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))
	return words
}
