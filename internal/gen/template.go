package gen

import "text/template"

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by consttable. DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)

{{range .Comments}}{{.}}
{{end}}type {{.Name}} {{.Underlying}}

const (
{{- range .Cases}}
{{- range .Comments}}
	{{.}}
{{- end}}
	{{.Name}}{{if eq .Ordinal 0}} {{$.Name}} = iota{{end}}
{{- end}}
)

{{range .Record.Comments}}{{.}}
{{end}}type {{.Record.Name}} struct {{if .Record.Fields}}{
{{- range .Record.Fields}}
{{- range .Comments}}
	{{.}}
{{- end}}
	{{.Name}} {{.Type}}{{with .Tag}} {{.}}{{end}}
{{- end}}
}{{else}}{}{{end}}
{{if .GenerateComments}}
// {{.Names.Count}} is the number of {{.Name}} values.{{end}}
const {{.Names.Count}} = {{len .Cases}}

var {{.Names.Table}} = [{{.Names.Count}}]{{.Record.Name}}{
{{- range .Cases}}
	{{.Name}}: {{.Value}},
{{- end}}
}

var {{.Names.Names}} = [{{.Names.Count}}]string{
{{- range .Cases}}
	{{.Name}}: {{printf "%q" .Name}},
{{- end}}
}
{{if .GenerateComments}}
// Info returns the {{.Record.Name}} of x.
// It panics if x is not a valid {{.Name}}.{{end}}
func (x {{.Name}}) Info() {{.Record.Name}} {
	return {{.Names.Table}}[x]
}
{{if .GenerateComments}}
// IsValid reports whether x is one of the declared {{.Name}} values.{{end}}
func (x {{.Name}}) IsValid() bool {
	return uint64(x) < {{.Names.Count}}
}
{{if .GenerateComments}}
// String returns the name of x.{{end}}
func (x {{.Name}}) String() string {
	if !x.IsValid() {
		return "{{.Name}}(" + strconv.FormatUint(uint64(x), 10) + ")"
	}

	return {{.Names.Names}}[x]
}
{{if .GenerateComments}}
// Clone returns a copy of x.{{end}}
func (x {{.Name}}) Clone() {{.Name}} {
	return x
}
{{if .GenerateComments}}
// Equal reports whether x and y are the same {{.Name}}.{{end}}
func (x {{.Name}}) Equal(y {{.Name}}) bool {
	return x == y
}
{{if .GenerateComments}}
// Hash returns a hash of x for use in hash tables.{{end}}
func (x {{.Name}}) Hash() uint64 {
	return uint64(x)
}
{{if .GenerateComments}}
// {{.Names.Values}} returns an iterator over all {{.Name}} values in
// declaration order.{{end}}
func {{.Names.Values}}() iter.Seq[{{.Name}}] {
	return func(yield func({{.Name}}) bool) {
		for i := range {{.Names.Count}} {
			if !yield({{.Name}}(i)) {
				return
			}
		}
	}
}
{{if .GenerateComments}}
// {{.Names.Backward}} returns an iterator over all {{.Name}} values in
// reverse declaration order.{{end}}
func {{.Names.Backward}}() iter.Seq[{{.Name}}] {
	return func(yield func({{.Name}}) bool) {
		for i := {{.Names.Count}} - 1; i >= 0; i-- {
			if !yield({{.Name}}(i)) {
				return
			}
		}
	}
}
{{if .GenerateComments}}
// {{.Names.RangeError}} is returned when a raw value does not name a
// {{.Name}}.{{end}}
type {{.Names.RangeError}} struct {
	Value {{.Underlying}}
}

func (e *{{.Names.RangeError}}) Error() string {
	return "{{.Name}}: invalid value " + strconv.FormatUint(uint64(e.Value), 10)
}
{{if .GenerateComments}}
// {{.Names.From}} returns the {{.Name}} with ordinal v, or a
// *{{.Names.RangeError}} if v is not less than {{.Names.Count}}.{{end}}
func {{.Names.From}}(v {{.Underlying}}) ({{.Name}}, error) {
	if uint64(v) >= {{.Names.Count}} {
		return 0, &{{.Names.RangeError}}{Value: v}
	}

	return {{.Name}}(v), nil
}
{{- if .Text}}
{{if .GenerateComments}}
// MarshalText implements encoding.TextMarshaler.{{end}}
func (x {{.Name}}) MarshalText() ([]byte, error) {
	if !x.IsValid() {
		return nil, &{{.Names.RangeError}}{Value: {{.Underlying}}(x)}
	}

	return []byte({{.Names.Names}}[x]), nil
}
{{if .GenerateComments}}
// UnmarshalText implements encoding.TextUnmarshaler.{{end}}
func (x *{{.Name}}) UnmarshalText(text []byte) error {
	for i, name := range {{.Names.Names}} {
		if name == string(text) {
			*x = {{.Name}}(i)
			return nil
		}
	}

	return errors.New("{{.Name}}: unknown name " + strconv.Quote(string(text)))
}
{{- end}}
`))
