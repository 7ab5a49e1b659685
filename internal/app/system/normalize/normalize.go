// Package normalize provides canonical forms for user-entered values.
package normalize

import (
	"strings"
	"unicode"
)

// Email trims whitespace and lower-cases an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Initials derives avatar initials from a full name: the first rune of
// each whitespace-separated token, upper-cased and concatenated.
// "Jane Q Public" -> "JQP", "madonna" -> "M".
func Initials(fullName string) string {
	var b strings.Builder
	for _, token := range strings.Fields(fullName) {
		r := []rune(token)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Skills splits a comma-separated skills string into trimmed tokens,
// dropping empties. Used for tag display.
func Skills(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
