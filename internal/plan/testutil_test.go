package plan

import (
	"bytes"
	"go/format"
	"go/token"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"consttable/internal/decl"
)

// parseItem decodes a single-item declaration.
func parseItem(t *testing.T, src string) *decl.Item {
	t.Helper()

	doc, err := decl.Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, doc.Items, 1)

	return &doc.Items[0]
}

// countedItem builds an enum item with n data cases.
func countedItem(n int, repr string) *decl.Item {
	item := &decl.Item{
		Kind: decl.Scalar{Text: decl.ItemKindEnum},
		Name: decl.Scalar{Text: "Code"},
		Variants: []decl.Variant{{
			Name: decl.Scalar{Text: "CodeInfo"},
			Fields: decl.Fields{
				Shape: decl.ShapeNamed,
				List:  []decl.Field{{Name: decl.Scalar{Text: "N"}, Type: decl.Scalar{Text: "int"}}},
			},
		}},
	}

	if repr != "" {
		item.Repr = &decl.Scalar{Text: repr}
	}

	for i := range n {
		item.Variants = append(item.Variants, decl.Variant{
			Name:  decl.Scalar{Text: "C" + strconv.Itoa(i)},
			Value: &decl.Scalar{Text: "CodeInfo{N: " + strconv.Itoa(i) + "}"},
		})
	}

	return item
}

func exprString(t *testing.T, node any) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, format.Node(&buf, token.NewFileSet(), node))

	return buf.String()
}
