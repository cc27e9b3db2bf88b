package plan

import (
	"errors"
	"fmt"
	"strings"

	"consttable/internal/common"
	"consttable/internal/decl"
	"consttable/internal/diagnostic"
	"consttable/internal/match"
)

// maxSuggestions bounds the "did you mean" candidates per diagnostic.
const maxSuggestions = 2

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// DefaultWidth is used when an item has no repr or an unsupported one.
	DefaultWidth Width
	// CheckWidthCapacity reports items with more cases than their width
	// can number.
	CheckWidthCapacity bool
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		DefaultWidth:       DefaultWidth,
		CheckWidthCapacity: true,
	}
}

// Resolver resolves every item of a declaration document.
type Resolver struct {
	doc    *decl.Document
	config ResolutionConfig
}

// NewResolver creates a new Resolver.
func NewResolver(doc *decl.Document, config ResolutionConfig) *Resolver {
	if !config.DefaultWidth.IsValid() {
		config.DefaultWidth = DefaultWidth
	}

	return &Resolver{doc: doc, config: config}
}

// Resolve runs the resolution pipeline over all items. Items that fail
// fatally contribute diagnostics but no Table.
func (r *Resolver) Resolve() (*ResolvedPlan, error) {
	if r.doc == nil {
		return nil, errors.New("declaration document is required")
	}

	plan := &ResolvedPlan{
		Package:     r.doc.Package,
		File:        r.doc.File,
		Diagnostics: diagnostic.Diagnostics{},
	}

	scope := newNameScope()

	for i := range r.doc.Items {
		table, diags := ResolveItem(r.doc.File, &r.doc.Items[i], r.config)
		plan.Diagnostics.Merge(diags)

		if table == nil {
			continue
		}

		r.declarePackageNames(scope, table, &plan.Diagnostics)
		plan.Tables = append(plan.Tables, table)
	}

	return plan, nil
}

// declarePackageNames reports package-level identifiers of table that an
// earlier item already declared.
func (r *Resolver) declarePackageNames(scope *nameScope, table *Table, diags *diagnostic.Diagnostics) {
	names := append([]string{table.Name, table.Layout.Name}, table.Names.All()...)
	for _, c := range table.Cases {
		names = append(names, c.Name)
	}

	for _, name := range names {
		if prev, dup := scope.declare(name, table.Name); dup && prev != table.Name {
			diags.AddError(CodeDuplicateName,
				fmt.Sprintf(msgDuplicateNameFmt, name, "by "+prev),
				locate(r.doc.File, table.Pos), table.Name)
		}
	}
}

// ResolveItem validates one declaration item and extracts its Table. The
// Table is nil when a fatal problem was found; diagnostics are returned
// either way.
func ResolveItem(file string, item *decl.Item, config ResolutionConfig) (*Table, diagnostic.Diagnostics) {
	if !config.DefaultWidth.IsValid() {
		config.DefaultWidth = DefaultWidth
	}

	r := &itemResolver{
		file:   file,
		item:   item,
		config: config,
		name:   normalizeName(item.Name.Text),
	}

	table := r.resolve()

	return table, r.diags
}

// itemResolver carries the state of one ResolveItem call.
type itemResolver struct {
	file   string
	item   *decl.Item
	config ResolutionConfig
	name   string
	diags  diagnostic.Diagnostics
}

func (r *itemResolver) errorf(code string, pos decl.Pos, subject, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	r.diags.AddError(code, msg, locate(r.file, pos), subject)
}

// warnf reports a problem that does not stop generation.
func (r *itemResolver) warnf(code string, pos decl.Pos, subject, format string, args ...any) {
	r.diags.AddWarning(code, fmt.Sprintf(format, args...), locate(r.file, pos), subject)
}

// suggestf is errorf for problems caused by a misspelled name: known names
// close to got are attached as suggestions.
func (r *itemResolver) suggestf(code string, pos decl.Pos, subject, got string, known []string, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	r.diags.AddErrorWithSuggestions(code, msg, locate(r.file, pos), subject,
		match.Suggest(got, known, maxSuggestions))
}

// caseSubject names a case in diagnostics as "Enum.Case".
func (r *itemResolver) caseSubject(name string) string {
	if name == "" {
		return r.name
	}

	return r.name + "." + name
}

func (r *itemResolver) resolve() *Table {
	item := r.item

	if !item.IsEnum() {
		r.suggestf(CodeUnsupportedItem, item.Kind.Pos, r.name,
			item.Kind.Text, []string{decl.ItemKindEnum}, MsgUnsupportedItem)
		return nil
	}

	if !isIdentifier(r.name) {
		r.errorf(CodeInvalidIdentifier, item.Name.Pos, r.name, msgInvalidIdentifierFmt, "enum name", r.name)
	}

	if len(item.TypeParams) > 0 {
		r.errorf(CodeGenericEnum, item.TypeParams[0].Pos, r.name, MsgGenericEnum)
	}

	width := r.selectWidth()
	capabilities := r.checkCapabilities()

	var layoutName string
	if layout, ok := common.First(item.Variants); ok {
		layoutName = normalizeName(layout.Name.Text)
	}

	cases := r.extractCases(layoutName)
	if len(cases) == 0 {
		r.errorf(CodeMissingDataCases, item.Pos, r.name, MsgMissingDataCases)
		return nil
	}

	first := &item.Variants[0]
	if first.Fields.Shape != decl.ShapeNamed {
		r.errorf(CodeLayoutNotNamed, first.Pos, r.caseSubject(layoutName), MsgLayoutNotNamed)
		return nil
	}

	table := &Table{
		Name:         r.name,
		Doc:          strings.TrimSpace(item.Doc),
		Directives:   normalizeDirectives(item.Directives),
		Width:        width,
		Capabilities: capabilities,
		Layout:       r.extractLayout(first),
		Cases:        cases,
		Names:        GeneratedNamesFor(r.name, width),
		Pos:          item.Pos,
	}

	r.checkNames(table)

	if r.config.CheckWidthCapacity && !width.Holds(table.Count()) {
		pos := item.Pos
		if item.Repr != nil {
			pos = item.Repr.Pos
		}

		r.errorf(CodeWidthOverflow, pos, r.name, msgWidthOverflowFmt, table.Count(), width)
	}

	return table
}

// selectWidth reads the repr hint, falling back to the configured default.
func (r *itemResolver) selectWidth() Width {
	repr := r.item.Repr
	if repr == nil || strings.TrimSpace(repr.Text) == "" {
		return r.config.DefaultWidth
	}

	w, ok := ParseWidth(repr.Text)
	if !ok {
		r.suggestf(CodeUnsupportedWidth, repr.Pos, r.name, repr.Text, WidthNames(), MsgUnsupportedWidth)
		return r.config.DefaultWidth
	}

	return w
}

// checkCapabilities drops requests for capabilities the generator always
// supplies and returns the optional ones in request order. Each reserved
// capability is reported once, at its first request. Repeated optional
// requests are warned about and kept once.
func (r *itemResolver) checkCapabilities() []Capability {
	var (
		result   []Capability
		reported = make(map[Capability]bool)
	)

	for _, req := range r.item.Derive {
		name := strings.TrimSpace(req.Text)
		if name == "" {
			continue
		}

		c, ok := ParseCapability(name)
		if !ok {
			r.suggestf(CodeUnknownCapability, req.Pos, r.name, name, CapabilityNames(),
				msgUnknownCapabilityFmt, name)
			continue
		}

		if c.IsReserved() {
			if !reported[c] {
				reported[c] = true
				r.errorf(CodeReservedCapability, req.Pos, r.name, msgReservedCapabilityFmt, capabilityLabel(name, c))
			}

			continue
		}

		if reported[c] {
			r.warnf(CodeDuplicateCapability, req.Pos, r.name, msgDuplicateCapabilityFmt, name)
			continue
		}

		reported[c] = true

		result = append(result, c)
	}

	return result
}

// capabilityLabel names a capability as requested, adding the canonical
// name when an alias was used: "Debug (String)".
func capabilityLabel(requested string, c Capability) string {
	if requested == c.String() {
		return requested
	}

	return requested + " (" + c.String() + ")"
}

// checkNames validates identifiers and reports names declared twice among
// the enumeration, its record, its cases and the generated helpers.
func (r *itemResolver) checkNames(table *Table) {
	item := r.item
	scope := newNameScope()

	scope.declare(table.Name, "the enum")

	for _, name := range table.Names.All() {
		scope.declare(name, "a generated identifier")
	}

	for i, c := range table.AllCases() {
		name := c.CaseName()
		pos := item.Variants[i].Name.Pos

		if _, layout := c.(*LayoutCase); layout {
			r.declare(scope, name, "the record type", "record type", pos, name)
		} else {
			r.declare(scope, name, "case "+name, "case name", pos, name)
		}
	}

	fields := newNameScope()
	fieldsPos := item.Variants[0].Fields.List

	for i, f := range table.Layout.Fields {
		pos := fieldsPos[i].Name.Pos
		if !isIdentifier(f.Name) {
			r.errorf(CodeInvalidIdentifier, pos, r.caseSubject(table.Layout.Name),
				msgInvalidIdentifierFmt, "field name", f.Name)

			continue
		}

		if _, dup := fields.declare(f.Name, f.Name); dup {
			r.errorf(CodeDuplicateField, pos, r.caseSubject(table.Layout.Name),
				msgDuplicateFieldFmt, f.Name, table.Layout.Name)
		}
	}
}

func (r *itemResolver) declare(scope *nameScope, name, owner, what string, pos decl.Pos, subject string) {
	if !isIdentifier(name) {
		r.errorf(CodeInvalidIdentifier, pos, r.caseSubject(subject), msgInvalidIdentifierFmt, what, name)
		return
	}

	if prev, dup := scope.declare(name, owner); dup {
		r.errorf(CodeDuplicateName, pos, r.caseSubject(subject), msgDuplicateNameFmt, name, prev)
	}
}
