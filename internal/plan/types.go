package plan

import (
	"go/ast"

	"consttable/internal/decl"
	"consttable/internal/diagnostic"
)

// ResolvedPlan is the final output of resolution. It contains everything
// needed for code generation.
type ResolvedPlan struct {
	// Package is the Go package declared by the document, if any.
	Package string
	// File is the declaration file the plan was resolved from.
	File string
	// Tables holds one entry per item that could be resolved, in file order.
	Tables []*Table
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// Table is a validated enumeration with its value table.
type Table struct {
	// Name of the enumeration type.
	Name string
	// Doc is the enumeration doc comment text.
	Doc string
	// Directives are comment directives placed above the enumeration type.
	Directives []string
	// Width backs the enumeration.
	Width Width
	// Capabilities are the requested optional capabilities, in request
	// order. Reserved capabilities are never listed here.
	Capabilities []Capability
	// Layout describes the record type.
	Layout *LayoutCase
	// Cases are the table rows in declaration order. Cases[i].Ordinal == i.
	Cases []*DataCase
	// Names are the identifiers generated alongside the enumeration.
	Names GeneratedNames
	// Pos is where the item was declared.
	Pos decl.Pos
}

// Count returns the number of cases.
func (t *Table) Count() int {
	return len(t.Cases)
}

// Has reports whether an optional capability was requested.
func (t *Table) Has(c Capability) bool {
	for _, have := range t.Capabilities {
		if have == c {
			return true
		}
	}

	return false
}

// AllCases returns the layout followed by the data cases.
func (t *Table) AllCases() []Case {
	result := make([]Case, 0, 1+len(t.Cases))
	result = append(result, t.Layout)

	for _, c := range t.Cases {
		result = append(result, c)
	}

	return result
}

// Case is either a *LayoutCase or a *DataCase.
type Case interface {
	CaseName() string
	isCase()
}

// LayoutCase is the first case of a declaration. It defines the record type.
type LayoutCase struct {
	// Name of the record type.
	Name string
	// Doc is the record doc comment text.
	Doc string
	// Directives are comment directives placed above the record type.
	Directives []string
	// Fields of the record in declaration order.
	Fields []Field
}

// CaseName returns the record type name.
func (c *LayoutCase) CaseName() string { return c.Name }

func (*LayoutCase) isCase() {}

// Field is one record field.
type Field struct {
	Name string
	Type ast.Expr
	Tag  string
	Doc  string
}

// DataCase is one row of the value table.
type DataCase struct {
	// Name of the enumeration constant.
	Name string
	// Ordinal is the zero-based position among data cases. It is both the
	// constant's value and its table index.
	Ordinal int
	// Doc is the constant doc comment text.
	Doc string
	// Directives are emitted above the constant, after Doc.
	Directives []string
	// Value is the record initializer.
	Value ast.Expr
	// Placeholder is set when Value was substituted for a missing or
	// invalid initializer.
	Placeholder bool
}

// CaseName returns the constant name.
func (c *DataCase) CaseName() string { return c.Name }

func (*DataCase) isCase() {}

// GeneratedNames are the identifiers emitted next to the enumeration type.
type GeneratedNames struct {
	Count      string
	Values     string
	Backward   string
	RangeError string
	From       string
	Table      string
	Names      string
}

// GeneratedNamesFor returns the generated identifiers for an enumeration.
func GeneratedNamesFor(enum string, width Width) GeneratedNames {
	return GeneratedNames{
		Count:      enum + "Count",
		Values:     enum + "Values",
		Backward:   enum + "ValuesBackward",
		RangeError: enum + "RangeError",
		From:       enum + "From" + width.FuncSuffix(),
		Table:      "_" + enum + "Table",
		Names:      "_" + enum + "Names",
	}
}

// All returns the exported generated identifiers.
func (n GeneratedNames) All() []string {
	return []string{n.Count, n.Values, n.Backward, n.RangeError, n.From}
}
