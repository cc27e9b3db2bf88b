package common

import (
	"strings"
	"unicode"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// SnakeCase converts a Go identifier to snake_case, keeping acronyms together
// (e.g. "SpeciesID" -> "species_id", "HTTPStatus" -> "http_status").
func SnakeCase(name string) string {
	runes := []rune(name)

	var sb strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					sb.WriteByte('_')
				}
			}

			sb.WriteRune(unicode.ToLower(r))

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

// Lines splits a doc string into lines, dropping trailing blank lines.
func Lines(text string) []string {
	text = strings.TrimRight(text, " \t\n")
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}
