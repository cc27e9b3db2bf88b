package decl

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "declaration.schema.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("decode declaration schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add declaration schema: %w", err)
	}

	return c.Compile(schemaURL)
})

// SchemaError reports a declaration document whose shape does not match
// the declaration schema.
type SchemaError struct {
	// File is the declaration file path, when known.
	File string
	// Issues are the individual mismatches, ordered by position.
	Issues []SchemaIssue
}

// SchemaIssue is one schema mismatch.
type SchemaIssue struct {
	// Path is the JSON pointer of the offending value (e.g. "/items/0/cases").
	Path string
	// Pos is the position of the offending value.
	Pos Pos
	// Message describes the mismatch.
	Message string
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s: %s", issue.Pos, issue.Path, issue.Message))
	}

	prefix := "invalid declaration"
	if e.File != "" {
		prefix = e.File + ": " + prefix
	}

	return prefix + ": " + strings.Join(parts, "; ")
}

// validateShape checks the decoded YAML tree against the declaration schema.
func validateShape(root *yaml.Node) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	var raw any
	if err := root.Decode(&raw); err != nil {
		return fmt.Errorf("failed to decode declaration: %w", err)
	}

	// The schema validator works on JSON values; round-trip through JSON so
	// that YAML-specific Go types never reach it.
	data, err := json.Marshal(jsonCompatible(raw))
	if err != nil {
		return fmt.Errorf("declaration is not representable as JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("declaration is not representable as JSON: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validate declaration: %w", err)
	}

	return newSchemaError(root, ve)
}

func newSchemaError(root *yaml.Node, ve *jsonschema.ValidationError) *SchemaError {
	printer := message.NewPrinter(language.English)

	var leaves []*jsonschema.ValidationError
	collectLeaves(ve, &leaves)

	result := &SchemaError{}
	seen := make(map[string]struct{})

	for _, leaf := range leaves {
		issue := SchemaIssue{
			Path:    "/" + strings.Join(leaf.InstanceLocation, "/"),
			Pos:     posOf(nodeAt(root, leaf.InstanceLocation)),
			Message: leaf.ErrorKind.LocalizedString(printer),
		}

		key := issue.Path + "\x00" + issue.Message
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		result.Issues = append(result.Issues, issue)
	}

	sort.SliceStable(result.Issues, func(i, j int) bool {
		a, b := result.Issues[i], result.Issues[j]
		if a.Pos.Line != b.Pos.Line {
			return a.Pos.Line < b.Pos.Line
		}

		if a.Pos.Column != b.Pos.Column {
			return a.Pos.Column < b.Pos.Column
		}

		return a.Message < b.Message
	})

	return result
}

func collectLeaves(ve *jsonschema.ValidationError, out *[]*jsonschema.ValidationError) {
	if len(ve.Causes) == 0 {
		*out = append(*out, ve)
		return
	}

	for _, cause := range ve.Causes {
		collectLeaves(cause, out)
	}
}

// nodeAt follows a JSON pointer through a YAML tree and returns the deepest
// node it reaches.
func nodeAt(root *yaml.Node, tokens []string) *yaml.Node {
	node := root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	for _, token := range tokens {
		node = resolveAlias(node)

		next := childOf(node, token)
		if next == nil {
			break
		}

		node = next
	}

	return node
}

func childOf(node *yaml.Node, token string) *yaml.Node {
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == token {
				return node.Content[i+1]
			}
		}

	case yaml.SequenceNode:
		idx, err := strconv.Atoi(token)
		if err == nil && idx >= 0 && idx < len(node.Content) {
			return node.Content[idx]
		}
	}

	return nil
}

// jsonCompatible converts the map[any]any values yaml.v3 produces for
// non-string keys into map[string]any.
func jsonCompatible(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, elem := range t {
			t[k] = jsonCompatible(elem)
		}

		return t

	case map[any]any:
		m := make(map[string]any, len(t))
		for k, elem := range t {
			m[fmt.Sprint(k)] = jsonCompatible(elem)
		}

		return m

	case []any:
		for i, elem := range t {
			t[i] = jsonCompatible(elem)
		}

		return t

	default:
		return v
	}
}
