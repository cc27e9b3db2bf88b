package plan

import (
	"go/ast"
	"strings"

	"consttable/internal/common"
	"consttable/internal/decl"
)

// extractCases turns every variant after the first into a table row,
// preserving declaration order. Problems are reported and patched with a
// zero record so each case keeps its ordinal.
func (r *itemResolver) extractCases(layoutName string) []*DataCase {
	rows := common.Rest(r.item.Variants)
	if common.IsEmpty(rows) {
		return nil
	}

	cases := make([]*DataCase, 0, len(rows))

	for i := range rows {
		v := &rows[i]
		name := normalizeName(v.Name.Text)
		subject := r.caseSubject(name)

		if v.HasFields() {
			r.errorf(CodeDataCaseFields, v.Fields.Pos, subject, MsgDataCaseFields)
		}

		c := &DataCase{
			Name:       name,
			Ordinal:    i,
			Doc:        strings.TrimSpace(v.Doc),
			Directives: normalizeDirectives(v.Directives),
		}

		switch {
		case v.Value == nil || strings.TrimSpace(v.Value.Text) == "":
			r.errorf(CodeMissingInitializer, v.Pos, subject, MsgMissingInitializer)

			c.Value, c.Placeholder = zeroRecord(layoutName), true

		default:
			expr, err := parseValue(v.Value.Text)
			if err != nil {
				r.errorf(CodeInvalidExpression, v.Value.Pos, subject, msgInvalidValueFmt, name, err)

				c.Value, c.Placeholder = zeroRecord(layoutName), true
			} else {
				c.Value = expr
			}
		}

		cases = append(cases, c)
	}

	return cases
}

// extractLayout builds the record description from the first variant.
func (r *itemResolver) extractLayout(v *decl.Variant) *LayoutCase {
	layout := &LayoutCase{
		Name:       normalizeName(v.Name.Text),
		Doc:        strings.TrimSpace(v.Doc),
		Directives: normalizeDirectives(v.Directives),
		Fields:     make([]Field, 0, v.Fields.Len()),
	}

	for _, f := range v.Fields.List {
		name := normalizeName(f.Name.Text)

		typ, err := parseType(f.Type.Text)
		if err != nil {
			r.errorf(CodeInvalidExpression, f.Type.Pos, r.caseSubject(layout.Name),
				msgInvalidTypeFmt, name, f.Type.Text)

			typ = ast.NewIdent("any")
		}

		layout.Fields = append(layout.Fields, Field{
			Name: name,
			Type: typ,
			Tag:  strings.TrimSpace(f.Tag),
			Doc:  strings.TrimSpace(f.Doc),
		})
	}

	return layout
}

// zeroRecord is the stand-in initializer Record{}.
func zeroRecord(layoutName string) ast.Expr {
	return &ast.CompositeLit{Type: ast.NewIdent(layoutName)}
}
