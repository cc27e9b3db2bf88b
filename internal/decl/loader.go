package decl

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the declaration schema version written by default.
const CurrentVersion = "1"

// LoadFile loads and parses a YAML declaration file from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) {
			schemaErr.File = path
			return nil, schemaErr
		}

		return nil, fmt.Errorf("%s: %w", path, err)
	}

	doc.File = path

	return doc, nil
}

// Parse parses YAML data into a Document. The document shape is checked
// against the embedded schema first; a mismatch is reported as a
// *SchemaError listing every offending location.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node

	err := yaml.Unmarshal(data, &root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	if root.Kind == 0 {
		return nil, errors.New("declaration file is empty")
	}

	if err := validateShape(&root); err != nil {
		return nil, err
	}

	var doc Document
	if err := root.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode declaration: %w", err)
	}

	applyDefaults(&doc)

	return &doc, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if doc.Version == "" {
		doc.Version = CurrentVersion
	}

	for i := range doc.Items {
		item := &doc.Items[i]
		if item.Kind.Text == "" {
			item.Kind = Scalar{Text: ItemKindEnum, Pos: item.Pos}
		}
	}
}
