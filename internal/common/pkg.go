package common

import (
	"path/filepath"
	"strings"
	"unicode"
)

// PkgNameFromDir derives a package name from the last element of dir.
// Characters that cannot appear in a package name are dropped and the
// result is lower-cased; it returns "main" when nothing usable remains.
func PkgNameFromDir(dir string) string {
	base := filepath.Base(filepath.Clean(dir))

	var sb strings.Builder
	for _, r := range base {
		if unicode.IsLetter(r) || r == '_' || (unicode.IsDigit(r) && sb.Len() > 0) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}

	if sb.Len() == 0 {
		return "main"
	}

	return sb.String()
}
