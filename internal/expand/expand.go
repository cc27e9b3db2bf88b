// Package expand runs the whole declaration-to-source pipeline as a pure
// function: validate, extract, render.
package expand

import (
	"fmt"

	"consttable/internal/decl"
	"consttable/internal/diagnostic"
	"consttable/internal/gen"
	"consttable/internal/plan"
)

// CodeFormatFailed is reported when rendered source cannot be formatted.
const CodeFormatFailed = "format_failed"

// Config groups the configuration of every pipeline stage.
type Config struct {
	Resolution plan.ResolutionConfig
	Generator  gen.GeneratorConfig
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		Resolution: plan.DefaultConfig(),
		Generator:  gen.DefaultGeneratorConfig(),
	}
}

// Result is the outcome of an expansion. Files may be present alongside
// error diagnostics: only fatal problems suppress an item's file.
type Result struct {
	Files       []gen.GeneratedFile
	Diagnostics diagnostic.Diagnostics
	Plan        *plan.ResolvedPlan
}

// OK reports whether the expansion produced no error diagnostics.
func (r *Result) OK() bool {
	return r.Diagnostics.IsValid()
}

// Item expands a single declaration item.
func Item(file string, item *decl.Item, cfg Config) *Result {
	doc := &decl.Document{File: file, Items: []decl.Item{*item}}
	return Document(doc, cfg)
}

// Document expands every item of a declaration document. A package name
// declared by the document wins over cfg.Generator.PackageName.
func Document(doc *decl.Document, cfg Config) *Result {
	result := &Result{}

	resolved, err := plan.NewResolver(doc, cfg.Resolution).Resolve()
	if err != nil {
		result.Diagnostics.AddError("invalid_document", err.Error(), diagnostic.Location{}, "")
		return result
	}

	result.Plan = resolved
	result.Diagnostics.Merge(resolved.Diagnostics)

	genCfg := cfg.Generator
	if resolved.Package != "" {
		genCfg.PackageName = resolved.Package
	}

	generator := gen.NewGenerator(genCfg)

	for _, table := range resolved.Tables {
		file, err := generator.GenerateTable(table)
		if err != nil {
			result.Diagnostics.AddError(CodeFormatFailed,
				fmt.Sprintf("generated source for %s does not format: %v", table.Name, err),
				diagnostic.Location{File: doc.File, Line: table.Pos.Line, Column: table.Pos.Column},
				table.Name)
		}

		if file != nil {
			result.Files = append(result.Files, *file)
		}
	}

	return result
}
