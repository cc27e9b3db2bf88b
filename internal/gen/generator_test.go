package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consttable/internal/decl"
	"consttable/internal/plan"
)

const speciesDecl = `
items:
  - name: SpeciesID
    doc: SpeciesID identifies all recognized species.
    cases:
      - name: SpeciesInfo
        doc: SpeciesInfo bundles the attributes of a species.
        fields:
          - {name: Sound, type: string}
          - {name: Legs, type: uint64}
      - name: Cat
        value: 'SpeciesInfo{Sound: "Meow!", Legs: 4}'
      - name: Dog
        value: 'SpeciesInfo{Sound: "Woof!", Legs: 4}'
      - name: Human
        value: 'SpeciesInfo{Sound: "Hello, World", Legs: 2}'
`

const planetDecl = `
items:
  - name: Planet
    doc: Planet is a body of the solar system.
    repr: uint8
    derive: [Text]
    directives: ["//nolint:recvcheck"]
    cases:
      - name: PlanetInfo
        directives: [nolint:govet]
        fields:
          - {name: Mass, type: float64, tag: 'json:"mass"', doc: Mass in kilograms.}
          - {name: Radius, type: float64, tag: 'json:"radius"'}
      - name: Mercury
        doc: Mercury is the closest planet to the sun.
        value: 'PlanetInfo{Mass: 3.303e+23, Radius: 2.4397e6}'
      - name: Venus
      - name: Earth
        value: 'PlanetInfo{Mass: 5.976e+24, Radius: 6.37814e6}'
`

func resolveTable(t *testing.T, src string) *plan.Table {
	t.Helper()

	doc, err := decl.Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, doc.Items, 1)

	table, _ := plan.ResolveItem("", &doc.Items[0], plan.DefaultConfig())
	require.NotNil(t, table)

	return table
}

func newGolden(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestGenerateTable_Golden(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		pkg      string
		comments bool
		filename string
	}{
		{name: "species", src: speciesDecl, pkg: "species", comments: true, filename: "species_id_consttable.go"},
		{name: "planet", src: planetDecl, pkg: "planets", comments: false, filename: "planet_consttable.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGeneratorConfig()
			cfg.PackageName = tt.pkg
			cfg.GenerateComments = tt.comments

			file, err := NewGenerator(cfg).GenerateTable(resolveTable(t, tt.src))
			require.NoError(t, err)

			assert.Equal(t, tt.filename, file.Filename)
			newGolden(t).Assert(t, tt.name, file.Content)
		})
	}
}

func TestGenerateTable_ParsesAsGo(t *testing.T) {
	file, err := NewGenerator(DefaultGeneratorConfig()).GenerateTable(resolveTable(t, planetDecl))
	require.NoError(t, err)

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, file.Filename, file.Content, parser.ParseComments)
	require.NoError(t, err)

	assert.Equal(t, "main", f.Name.Name)

	var funcs []string
	for _, d := range f.Decls {
		if fn, ok := d.(*ast.FuncDecl); ok {
			funcs = append(funcs, fn.Name.Name)
		}
	}

	assert.Equal(t, []string{
		"Info", "IsValid", "String", "Clone", "Equal", "Hash",
		"PlanetValues", "PlanetValuesBackward", "Error", "PlanetFromUint8",
		"MarshalText", "UnmarshalText",
	}, funcs)
}

func TestGenerate_OneFilePerTable(t *testing.T) {
	p := &plan.ResolvedPlan{
		Tables: []*plan.Table{resolveTable(t, speciesDecl), resolveTable(t, planetDecl)},
	}

	cfg := DefaultGeneratorConfig()
	cfg.FileSuffix = "_gen.go"

	files, err := NewGenerator(cfg).Generate(p)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "species_id_gen.go", files[0].Filename)
	assert.Equal(t, "planet_gen.go", files[1].Filename)
}

func TestGenerateTable_FormatFailureKeepsSource(t *testing.T) {
	table := resolveTable(t, speciesDecl)
	table.Cases[0].Name = "func"

	file, err := NewGenerator(DefaultGeneratorConfig()).GenerateTable(table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formatting code")

	require.NotNil(t, file)
	assert.True(t, file.Unformatted)
	assert.Equal(t, "species_id_consttable.go", file.Filename)
	assert.Contains(t, string(file.Content), "func SpeciesID = iota")
}

func TestGenerateTable_CaseDirectives(t *testing.T) {
	table := resolveTable(t, `
items:
  - name: Color
    cases:
      - name: ColorInfo
        fields: [{name: Hex, type: string}]
      - name: Red
        doc: Red is red.
        directives: ["nolint:revive"]
        value: 'ColorInfo{Hex: "#f00"}'
      - name: Green
        directives: ["//lint:ignore U1000 kept for parity"]
        value: 'ColorInfo{Hex: "#0f0"}'
`)

	cfg := DefaultGeneratorConfig()
	cfg.PackageName = "colors"

	file, err := NewGenerator(cfg).GenerateTable(table)
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "\t// Red is red.\n\t//\n\t//nolint:revive\n\tRed Color = iota\n")
	assert.Contains(t, content, "\t//lint:ignore U1000 kept for parity\n\tGreen\n")
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := WriteFiles([]GeneratedFile{
		{Filename: "a_consttable.go", Content: []byte("package a\n")},
		{Filename: "b_consttable.go", Content: []byte("package a\n")},
	}, dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a_consttable.go"),
		filepath.Join(dir, "b_consttable.go"),
	}, paths)

	content, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(content))
}

func TestWriteFiles_UnformattedGoesToSidecar(t *testing.T) {
	dir := t.TempDir()
	previous := filepath.Join(dir, "a_consttable.go")
	require.NoError(t, os.WriteFile(previous, []byte("package a\n"), 0o644))

	paths, err := WriteFiles([]GeneratedFile{
		{Filename: "a_consttable.go", Content: []byte("package a\nfunc"), Unformatted: true},
	}, dir)
	require.NoError(t, err)

	sidecar := filepath.Join(dir, "a_consttable.unformatted.go")
	assert.Equal(t, []string{sidecar}, paths)

	content, err := os.ReadFile(sidecar)
	require.NoError(t, err)
	assert.Equal(t, "package a\nfunc", string(content))

	content, err = os.ReadFile(previous)
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(content))
}

func TestWriteFiles_RemovesStaleSidecar(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "a_consttable.unformatted.go")
	require.NoError(t, os.WriteFile(stale, []byte("package a\nfunc"), 0o644))

	_, err := WriteFiles([]GeneratedFile{
		{Filename: "a_consttable.go", Content: []byte("package a\n")},
	}, dir)
	require.NoError(t, err)

	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(dir, "a_consttable.go"))
}

func TestCommentLines(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		directives []string
		want       []string
	}{
		{name: "empty"},
		{name: "doc", doc: "Color is a color.\n", want: []string{"// Color is a color."}},
		{
			name: "paragraphs",
			doc:  "Color is a color.\n\nIt has a hex code.",
			want: []string{"// Color is a color.", "//", "// It has a hex code."},
		},
		{name: "directive only", directives: []string{"//nolint:revive"}, want: []string{"//nolint:revive"}},
		{
			name:       "doc and directive",
			doc:        "Color is a color.",
			directives: []string{"//go:generate true"},
			want:       []string{"// Color is a color.", "//", "//go:generate true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commentLines(tt.doc, tt.directives))
		})
	}
}

func TestStructTag(t *testing.T) {
	assert.Empty(t, structTag(""))
	assert.Equal(t, "`json:\"mass\"`", structTag(`json:"mass"`))
	assert.Equal(t, "\"a`b\"", structTag("a`b"))
}

func TestExprString_SingleLine(t *testing.T) {
	expr, err := parser.ParseExpr("Info{\n\tA: 1,\n\tB: []int{\n\t\t2,\n\t},\n}")
	require.NoError(t, err)

	s, err := exprString(expr)
	require.NoError(t, err)
	assert.Equal(t, "Info{A: 1, B: []int{2}}", s)
}
