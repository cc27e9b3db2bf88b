// Command consttable generates Go enumerations backed by constant value
// tables from YAML declaration files.
//
// Typical use is a go:generate line next to the declaration:
//
//	//go:generate go run consttable/cmd/consttable gen -f species.yaml -o .
package main

import (
	"os"

	"consttable/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
