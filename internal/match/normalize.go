package match

import (
	"strings"
	"unicode"
)

// markers are trailing tokens that tell little about what a field holds.
// Longer markers come first so "ids" is not cut down to "s".
var markers = []string{"ids", "id", "ptr"}

// Normalize lowercases an identifier and drops its underscores, so that
// "customer_id", "CustomerID" and "customerId" compare equal.
func Normalize(ident string) string {
	return strings.Join(Tokens(ident), "")
}

// StripMarker is Normalize without a trailing marker token such as "ID". An
// identifier made of the marker alone is kept.
func StripMarker(ident string) string {
	tokens := Tokens(ident)
	if len(tokens) < 2 {
		return strings.Join(tokens, "")
	}

	last := tokens[len(tokens)-1]
	for _, m := range markers {
		if last == m {
			return strings.Join(tokens[:len(tokens)-1], "")
		}
	}

	return strings.Join(tokens, "")
}

// Tokens splits an identifier at underscores and case changes and lowercases
// the parts: "rawHTTPBody" gives "raw", "http" and "body".
func Tokens(ident string) []string {
	var (
		tokens  []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(ident)
	for i, r := range runes {
		if r == '_' {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current = append(current, r)
	}

	flush()

	return tokens
}

// startsToken reports whether runes[i] begins a new camel case word: an upper
// case letter after a lower case one or a digit, or the last capital of an
// acronym followed by lower case.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
