package decl

import (
	"fmt"
)

// ItemKindEnum is the only item kind the generator accepts.
const ItemKindEnum = "enum"

// Pos is a 1-based line and column in the declaration file.
type Pos struct {
	Line   int
	Column int
}

// IsValid reports whether the position is known.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// String returns "line:col".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Scalar is a YAML scalar together with where it was written.
type Scalar struct {
	Text string
	Pos  Pos
}

// String returns the scalar text.
func (s Scalar) String() string {
	return s.Text
}

// Document is the root of a declaration file.
type Document struct {
	// Version of the declaration schema.
	Version string `yaml:"version,omitempty"`

	// Package is the Go package the generated files belong to (optional).
	Package string `yaml:"package,omitempty"`

	// Items are the declarations, in file order.
	Items []Item `yaml:"items"`

	// File is the path the document was read from, if any.
	File string `yaml:"-"`
}

// Item is one declaration. Only enum items can be expanded; the field set
// is permissive so that malformed declarations still decode and can be
// diagnosed precisely.
type Item struct {
	// Kind of the declaration ("enum" when omitted).
	Kind Scalar `yaml:"kind,omitempty"`

	// Name of the enumeration type.
	Name Scalar `yaml:"name"`

	// Doc is copied to the generated enum type.
	Doc string `yaml:"doc,omitempty"`

	// TypeParams are generic type parameters. They are not supported and
	// must be empty.
	TypeParams ScalarList `yaml:"type_params,omitempty"`

	// Repr is the unsigned integer type backing the enumeration.
	Repr *Scalar `yaml:"repr,omitempty"`

	// Derive lists requested capabilities.
	Derive ScalarList `yaml:"derive,omitempty"`

	// Directives are comment directives (e.g. "//nolint:revive") copied
	// above the generated enum type.
	Directives ScalarList `yaml:"directives,omitempty"`

	// Variants are the cases in declaration order.
	Variants []Variant `yaml:"cases"`

	// Pos is where the item starts.
	Pos Pos `yaml:"-"`
}

// IsEnum reports whether the item is enumeration-shaped. An item without
// a kind is an enum.
func (i *Item) IsEnum() bool {
	return i.Kind.Text == ItemKindEnum || i.Kind.Text == ""
}

// FieldShape describes how a variant declares fields.
type FieldShape int

const (
	// ShapeNone means the variant has no field list at all.
	ShapeNone FieldShape = iota
	// ShapeNamed means every field has a name and a type.
	ShapeNamed
	// ShapePositional means at least one field is a bare type.
	ShapePositional
)

// String returns a human-readable shape name.
func (s FieldShape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeNamed:
		return "named"
	case ShapePositional:
		return "positional"
	default:
		return fmt.Sprintf("FieldShape(%d)", int(s))
	}
}

// Variant is one case as written. The first variant of a valid table has
// named fields and no value; every other variant has a value and no fields.
type Variant struct {
	// Name of the case.
	Name Scalar `yaml:"name"`

	// Doc is copied to the generated constant (or record type for the
	// layout variant).
	Doc string `yaml:"doc,omitempty"`

	// Directives are copied above the generated record type for the layout
	// variant and above the generated constant for the others.
	Directives ScalarList `yaml:"directives,omitempty"`

	// Fields declared on the variant.
	Fields Fields `yaml:"fields,omitempty"`

	// Value is the Go initializer expression of the record type.
	Value *Scalar `yaml:"value,omitempty"`

	// Pos is where the variant starts.
	Pos Pos `yaml:"-"`
}

// HasFields reports whether the variant declares a field list.
func (v *Variant) HasFields() bool {
	return v.Fields.Shape != ShapeNone
}

// Fields is a variant's field list.
type Fields struct {
	Shape FieldShape
	List  []Field
	Pos   Pos
}

// Len returns the number of declared fields.
func (f Fields) Len() int {
	return len(f.List)
}

// Field is one field of a variant. Positional fields have an empty Name.
type Field struct {
	// Name of the field.
	Name Scalar `yaml:"name"`

	// Type is the Go type expression.
	Type Scalar `yaml:"type"`

	// Tag is the struct tag, without backquotes.
	Tag string `yaml:"tag,omitempty"`

	// Doc is copied above the generated field.
	Doc string `yaml:"doc,omitempty"`

	// Pos is where the field starts.
	Pos Pos `yaml:"-"`
}
