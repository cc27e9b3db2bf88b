package gen

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// UnformattedName returns the sidecar name used for source that failed to
// format, e.g. "color_consttable.unformatted.go".
func UnformattedName(filename string) string {
	return strings.TrimSuffix(filename, ".go") + ".unformatted.go"
}

// writeDebugUnformatted writes unformatted code next to the intended
// output and returns the sidecar path.
func writeDebugUnformatted(outDir, filename string, content []byte) (string, error) {
	path := filepath.Join(outDir, UnformattedName(filename))
	return path, os.WriteFile(path, content, filePerm)
}

// removeDebugUnformatted deletes a sidecar left by an earlier failed run.
// The sidecar is a .go file in the package directory, so a stale one
// breaks the build of the package.
func removeDebugUnformatted(outDir, filename string) error {
	err := os.Remove(filepath.Join(outDir, UnformattedName(filename)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}
