package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consttable/internal/decl"
	"consttable/internal/plan"
)

func species(dogValue string) *decl.Item {
	item := &decl.Item{
		Kind: decl.Scalar{Text: decl.ItemKindEnum},
		Name: decl.Scalar{Text: "SpeciesID"},
		Variants: []decl.Variant{
			{
				Name: decl.Scalar{Text: "SpeciesInfo"},
				Fields: decl.Fields{Shape: decl.ShapeNamed, List: []decl.Field{
					{Name: decl.Scalar{Text: "Sound"}, Type: decl.Scalar{Text: "string"}},
					{Name: decl.Scalar{Text: "Legs"}, Type: decl.Scalar{Text: "uint64"}},
				}},
			},
			{Name: decl.Scalar{Text: "Cat"}, Value: &decl.Scalar{Text: `SpeciesInfo{Sound: "Meow!", Legs: 4}`}},
			{Name: decl.Scalar{Text: "Dog"}},
			{Name: decl.Scalar{Text: "Human"}, Value: &decl.Scalar{Text: `SpeciesInfo{Sound: "Hello, World", Legs: 2}`}},
		},
	}

	if dogValue != "" {
		item.Variants[2].Value = &decl.Scalar{Text: dogValue}
	}

	return item
}

func TestItem_ValidTable(t *testing.T) {
	result := Item("species.yaml", species(`SpeciesInfo{Sound: "Woof!", Legs: 4}`), DefaultConfig())

	assert.True(t, result.OK())
	assert.Zero(t, result.Diagnostics.Len())
	require.Len(t, result.Files, 1)

	content := string(result.Files[0].Content)
	assert.Equal(t, "species_id_consttable.go", result.Files[0].Filename)
	assert.Contains(t, content, "package main\n")
	assert.Contains(t, content, "type SpeciesID uint32\n")
	assert.Contains(t, content, "const SpeciesIDCount = 3\n")
	assert.Contains(t, content, "func SpeciesIDFromUint32(v uint32) (SpeciesID, error) {")

	require.NotNil(t, result.Plan)
	assert.Equal(t, 3, result.Plan.Tables[0].Count())
}

func TestItem_OnlyLayoutYieldsNoFile(t *testing.T) {
	item := species("")
	item.Variants = item.Variants[:1]

	result := Item("", item, DefaultConfig())

	assert.False(t, result.OK())
	assert.Empty(t, result.Files)
	assert.Equal(t, []string{plan.CodeMissingDataCases}, result.Diagnostics.Codes())
}

func TestItem_UnsupportedWidthFallsBack(t *testing.T) {
	item := species(`SpeciesInfo{Sound: "Woof!", Legs: 4}`)
	item.Repr = &decl.Scalar{Text: "128"}

	result := Item("", item, DefaultConfig())

	assert.Equal(t, []string{plan.CodeUnsupportedWidth}, result.Diagnostics.Codes())
	require.Len(t, result.Files, 1)

	content := string(result.Files[0].Content)
	assert.Contains(t, content, "type SpeciesID uint32\n")
	assert.Contains(t, content, "func SpeciesIDFromUint32(")
}

func TestItem_MissingInitializerKeepsArtifact(t *testing.T) {
	result := Item("species.yaml", species(""), DefaultConfig())

	require.Len(t, result.Diagnostics.Errors, 1)
	d := result.Diagnostics.Errors[0]
	assert.Equal(t, plan.CodeMissingInitializer, d.Code)
	assert.Equal(t, "SpeciesID.Dog", d.Item)
	assert.Equal(t, "species.yaml", d.Location.File)

	require.Len(t, result.Files, 1)
	content := string(result.Files[0].Content)
	assert.Contains(t, content, "\tDog:   SpeciesInfo{},\n")
	assert.Contains(t, content, "const SpeciesIDCount = 3\n")
}

func TestItem_NotAnEnum(t *testing.T) {
	item := species("")
	item.Kind.Text = "struct"

	result := Item("", item, DefaultConfig())

	assert.Empty(t, result.Files)
	assert.Equal(t, []string{plan.CodeUnsupportedItem}, result.Diagnostics.Codes())
	assert.Equal(t, plan.MsgUnsupportedItem, result.Diagnostics.Errors[0].Message)
}

func TestItem_FormatFailure(t *testing.T) {
	item := species(`SpeciesInfo{Sound: "Woof!", Legs: 4}`)
	item.Variants[1].Name.Text = "func"

	result := Item("", item, DefaultConfig())

	assert.Equal(t, []string{plan.CodeInvalidIdentifier, CodeFormatFailed}, result.Diagnostics.Codes())
	require.Len(t, result.Files, 1)
}

func TestDocument_PackageFromDocument(t *testing.T) {
	doc := &decl.Document{
		Package: "zoo",
		Items:   []decl.Item{*species(`SpeciesInfo{}`)},
	}

	cfg := DefaultConfig()
	cfg.Generator.PackageName = "ignored"

	result := Document(doc, cfg)
	require.Len(t, result.Files, 1)
	assert.Contains(t, string(result.Files[0].Content), "package zoo\n")
}

func TestDocument_Deterministic(t *testing.T) {
	doc := &decl.Document{Items: []decl.Item{*species("")}}

	first := Document(doc, DefaultConfig())
	second := Document(doc, DefaultConfig())

	assert.Equal(t, first.Diagnostics, second.Diagnostics)
	require.Len(t, first.Files, 1)
	assert.Equal(t, first.Files, second.Files)
}

func TestDocument_Nil(t *testing.T) {
	result := Document(nil, DefaultConfig())

	assert.Equal(t, []string{"invalid_document"}, result.Diagnostics.Codes())
	assert.Nil(t, result.Plan)
}
