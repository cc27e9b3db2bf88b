package analyze

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"consttable/internal/diagnostic"
)

// CodeTypecheckFailed is reported for every error found while loading or
// type-checking the output package.
const CodeTypecheckFailed = "typecheck_failed"

// LoadMode specifies what information to load for type checking.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// PackageName returns the name of the Go package in dir. It returns "" when
// dir does not exist or holds no Go files.
func PackageName(dir string) (string, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err == nil && len(pkgs) == 1 && pkgs[0].Name != "" {
		return pkgs[0].Name, nil
	}

	// go list refuses directories outside a module; the package clause is
	// enough to name the package.
	return packageClause(dir)
}

// packageClause reads the package name from the first non-test Go file.
func packageClause(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", dir, err)
	}

	fset := token.NewFileSet()

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.PackageClauseOnly)
		if err != nil {
			continue
		}

		return f.Name.Name, nil
	}

	return "", nil
}

// TypeCheck loads the package in dir and reports its load, parse and type
// errors as diagnostics. The returned error is set only when the package
// could not be loaded at all.
func TypeCheck(dir string) (diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return diags, fmt.Errorf("failed to load packages: %w", err)
	}

	for _, pkg := range pkgs {
		for _, e := range packageErrors(pkg) {
			diags.AddError(CodeTypecheckFailed, e.Msg, parsePos(e.Pos), pkg.Name)
		}
	}

	return diags, nil
}

// packageErrors returns the errors of pkg, dropping list errors that only
// repeat a parse or type error. go list prints compile failures as
// "# pkg\n./file.go:5:21: msg" without a position of its own.
func packageErrors(pkg *packages.Package) []packages.Error {
	var positioned []string

	for _, e := range pkg.Errors {
		if e.Kind != packages.ListError {
			positioned = append(positioned, e.Msg)
		}
	}

	result := make([]packages.Error, 0, len(pkg.Errors))

	for _, e := range pkg.Errors {
		if e.Kind == packages.ListError && repeats(e.Msg, positioned) {
			continue
		}

		result = append(result, e)
	}

	return result
}

func repeats(msg string, others []string) bool {
	for _, other := range others {
		if other != "" && strings.Contains(msg, other) {
			return true
		}
	}

	return false
}

// parsePos converts a "file:line:col" position as reported by go/packages.
func parsePos(pos string) diagnostic.Location {
	if pos == "" || pos == "-" {
		return diagnostic.Location{}
	}

	loc := diagnostic.Location{File: pos}

	nums := make([]int, 0, 2)
	rest := pos

	for range 2 {
		i := strings.LastIndexByte(rest, ':')
		if i < 0 {
			break
		}

		n, err := strconv.Atoi(rest[i+1:])
		if err != nil {
			break
		}

		nums = append(nums, n)
		rest = rest[:i]
	}

	switch len(nums) {
	case 2:
		loc = diagnostic.Location{File: rest, Line: nums[1], Column: nums[0]}
	case 1:
		loc = diagnostic.Location{File: rest, Line: nums[0]}
	}

	return loc
}
