package gen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"slices"
	"strconv"
	"strings"

	"consttable/internal/common"
	"consttable/internal/plan"
)

// DefaultFileSuffix is appended to the snake_case enum name to form the
// generated file name.
const DefaultFileSuffix = "_consttable.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// GenerateComments adds doc comments to generated declarations.
	GenerateComments bool
	// FileSuffix is appended to the file name of each table.
	FileSuffix string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "main",
		GenerateComments: true,
		FileSuffix:       DefaultFileSuffix,
	}
}

// Generator generates Go code from a resolved plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.FileSuffix == "" {
		config.FileSuffix = DefaultFileSuffix
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "species_id_consttable.go").
	Filename string
	// Content is the formatted Go source code, or the raw template output
	// when Unformatted is set.
	Content []byte
	// Unformatted marks source that go/format rejected. WriteFiles puts it
	// in a sidecar instead of Filename.
	Unformatted bool
}

// Generate renders one file per table of the plan, in plan order.
func (g *Generator) Generate(p *plan.ResolvedPlan) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(p.Tables))

	for _, table := range p.Tables {
		file, err := g.GenerateTable(table)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", table.Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// GenerateTable renders a single table. When formatting fails the
// unformatted source is returned together with the error.
func (g *Generator) GenerateTable(table *plan.Table) (*GeneratedFile, error) {
	data, err := g.buildTableData(table)
	if err != nil {
		return nil, err
	}

	filename := common.SnakeCase(table.Name) + g.config.FileSuffix

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return &GeneratedFile{
			Filename:    filename,
			Content:     buf.Bytes(),
			Unformatted: true,
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

// tableData is the template view of a plan.Table.
type tableData struct {
	PackageName      string
	GenerateComments bool
	Imports          []string
	Name             string
	Underlying       string
	Comments         []string
	Cases            []caseData
	Record           recordData
	Names            plan.GeneratedNames
	Text             bool
}

type caseData struct {
	Name     string
	Ordinal  int
	Value    string
	Comments []string
}

type recordData struct {
	Name     string
	Comments []string
	Fields   []fieldData
}

type fieldData struct {
	Name     string
	Type     string
	Tag      string
	Comments []string
}

func (g *Generator) buildTableData(table *plan.Table) (*tableData, error) {
	data := &tableData{
		PackageName:      g.config.PackageName,
		GenerateComments: g.config.GenerateComments,
		Imports:          []string{"iter", "strconv"},
		Name:             table.Name,
		Underlying:       table.Width.GoType(),
		Comments:         commentLines(table.Doc, table.Directives),
		Names:            table.Names,
		Text:             table.Has(plan.CapabilityText),
		Record: recordData{
			Name:     table.Layout.Name,
			Comments: commentLines(table.Layout.Doc, table.Layout.Directives),
		},
	}

	if data.Text {
		data.Imports = append(data.Imports, "errors")
	}

	slices.Sort(data.Imports)

	for _, f := range table.Layout.Fields {
		typ, err := exprString(f.Type)
		if err != nil {
			return nil, fmt.Errorf("printing type of field %s: %w", f.Name, err)
		}

		data.Record.Fields = append(data.Record.Fields, fieldData{
			Name:     f.Name,
			Type:     typ,
			Tag:      structTag(f.Tag),
			Comments: commentLines(f.Doc, nil),
		})
	}

	for _, c := range table.Cases {
		value, err := exprString(c.Value)
		if err != nil {
			return nil, fmt.Errorf("printing initializer of %s: %w", c.Name, err)
		}

		data.Cases = append(data.Cases, caseData{
			Name:     c.Name,
			Ordinal:  c.Ordinal,
			Value:    value,
			Comments: commentLines(c.Doc, c.Directives),
		})
	}

	return data, nil
}

// exprString prints an expression on a single line. The node positions
// belong to another file set, so the printer sees no line information.
func exprString(expr ast.Expr) (string, error) {
	var buf bytes.Buffer
	if err := format.Node(&buf, token.NewFileSet(), expr); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// commentLines renders doc text followed by directives as line comments.
func commentLines(doc string, directives []string) []string {
	var lines []string

	for _, line := range common.Lines(doc) {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			lines = append(lines, "//")
			continue
		}

		lines = append(lines, "// "+line)
	}

	if len(lines) > 0 && len(directives) > 0 {
		lines = append(lines, "//")
	}

	return append(lines, directives...)
}

// structTag renders a tag as a raw string literal when possible.
func structTag(tag string) string {
	if tag == "" {
		return ""
	}

	if strings.ContainsAny(tag, "`\r\n") {
		return strconv.Quote(tag)
	}

	return "`" + tag + "`"
}
