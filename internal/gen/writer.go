package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory, creating
// it if needed, and returns the written paths in order. Unformatted files
// go to their sidecar and leave any existing output in place; formatted
// ones replace the output and remove a sidecar left by an earlier run.
func WriteFiles(files []GeneratedFile, outputDir string) ([]string, error) {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	paths := make([]string, 0, len(files))

	for _, file := range files {
		if file.Unformatted {
			path, err := writeDebugUnformatted(outputDir, file.Filename, file.Content)
			if err != nil {
				return paths, fmt.Errorf("writing unformatted %s: %w", file.Filename, err)
			}

			paths = append(paths, path)

			continue
		}

		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return paths, fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		if err := removeDebugUnformatted(outputDir, file.Filename); err != nil {
			return paths, fmt.Errorf("removing stale %s: %w", UnformattedName(file.Filename), err)
		}

		paths = append(paths, outputPath)
	}

	return paths, nil
}
