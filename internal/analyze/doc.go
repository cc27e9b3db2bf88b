// Package analyze inspects the Go package that generated files are written
// into.
//
// It uses golang.org/x/tools/go/packages to discover the package name of an
// output directory and to type-check the package once generated files are
// in place, so that broken initializers surface as diagnostics pointing at
// the generated file.
package analyze
