package graph

import (
	"fmt"
	"regexp"
	"strings"
)

// luceneSpecialChars are stripped from user input before it is embedded in a
// full-text query, since they carry meaning in Lucene query syntax.
var luceneSpecialChars = regexp.MustCompile(`[-+&|!(){}\[\]\^"~*?:\\]`)

// RemoveSpecialChars replaces Lucene special characters with spaces and trims
// the result.
func RemoveSpecialChars(input string) string {
	return strings.TrimSpace(luceneSpecialChars.ReplaceAllString(input, " "))
}

// FullTextQuery builds a tolerant Lucene query from free-text input: each
// word gets a per-word similarity threshold and the words are ANDed, so
// "Ursula v. d. Leyn" still matches the indexed "Ursula von der Leyen".
// Returns "" when the input contains no usable words.
func FullTextQuery(input string, threshold float64) string {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultFuzziness
	}
	words := strings.Fields(RemoveSpecialChars(input))
	if len(words) == 0 {
		return ""
	}
	suffix := fmt.Sprintf("~%g", threshold)
	return strings.Join(words, suffix+" AND ") + suffix
}
