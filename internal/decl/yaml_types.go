package decl

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func posOf(node *yaml.Node) Pos {
	return Pos{Line: node.Line, Column: node.Column}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

// UnmarshalYAML keeps the raw scalar text, so that "128" and "uint128" are
// both preserved for the planner to diagnose.
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}

	s.Pos = posOf(node)
	if isNull(node) {
		s.Text = ""
		return nil
	}

	s.Text = node.Value

	return nil
}

// ScalarList is a list of scalars that can be unmarshaled from either a
// single scalar or a sequence.
type ScalarList []Scalar

// Texts returns the scalar texts.
func (l ScalarList) Texts() []string {
	result := make([]string, len(l))
	for i, s := range l {
		result[i] = s.Text
	}

	return result
}

// UnmarshalYAML implements custom YAML unmarshaling for ScalarList.
// Accepts either a single scalar or a sequence of scalars.
func (l *ScalarList) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.ScalarNode:
		if isNull(node) || node.Value == "" {
			*l = ScalarList{}
			return nil
		}

		*l = ScalarList{{Text: node.Value, Pos: posOf(node)}}

		return nil

	case yaml.SequenceNode:
		list := make(ScalarList, 0, len(node.Content))
		for _, elem := range node.Content {
			var s Scalar
			if err := s.UnmarshalYAML(elem); err != nil {
				return err
			}

			list = append(list, s)
		}

		*l = list

		return nil

	default:
		return fmt.Errorf("line %d: expected a scalar or a sequence of scalars", node.Line)
	}
}

// UnmarshalYAML records the item position.
func (i *Item) UnmarshalYAML(node *yaml.Node) error {
	type plain Item

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*i = Item(p)
	i.Pos = posOf(node)

	return nil
}

// UnmarshalYAML records the variant position.
func (v *Variant) UnmarshalYAML(node *yaml.Node) error {
	type plain Variant

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*v = Variant(p)
	v.Pos = posOf(node)

	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Fields.
// Accepts:
//   - null: no field list
//   - a sequence of mappings: named fields ({name: Mass, type: float64})
//   - a sequence containing bare types: positional fields ([float64, float64])
func (f *Fields) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if isNull(node) {
		*f = Fields{}
		return nil
	}

	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: fields must be a sequence", node.Line)
	}

	result := Fields{Shape: ShapeNamed, Pos: posOf(node)}
	for _, elem := range node.Content {
		var field Field
		if err := field.UnmarshalYAML(elem); err != nil {
			return err
		}

		if field.Name.Text == "" {
			result.Shape = ShapePositional
		}

		result.List = append(result.List, field)
	}

	*f = result

	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Field.
// A bare scalar is a positional field holding only a type.
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.ScalarNode:
		*f = Field{Type: Scalar{Text: node.Value, Pos: posOf(node)}, Pos: posOf(node)}
		return nil

	case yaml.MappingNode:
		type plain Field

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*f = Field(p)
		f.Pos = posOf(node)

		return nil

	default:
		return fmt.Errorf("line %d: a field must be a type or a {name, type} mapping", node.Line)
	}
}
