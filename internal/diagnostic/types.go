package diagnostic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"consttable/internal/common"
)

// Diagnostics holds all diagnostic information from one pass.
type Diagnostics struct {
	Errors   []Diagnostic `json:"errors,omitempty"`
	Warnings []Diagnostic `json:"warnings,omitempty"`
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity `json:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `json:"code"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Location is the source span the diagnostic points at (if known).
	Location Location `json:"location"`
	// Item names the declaration this relates to (if any).
	Item string `json:"item,omitempty"`
	// Suggestions are potential fixes or alternatives.
	Suggestions []string `json:"suggestions,omitempty"`
}

// Location is a position in a declaration file.
type Location struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// IsValid reports whether the location carries a line number.
func (l Location) IsValid() bool {
	return l.Line > 0
}

// String returns "file:line:col", omitting the parts that are unknown.
func (l Location) String() string {
	var sb strings.Builder
	sb.WriteString(l.File)

	if l.IsValid() {
		if sb.Len() > 0 {
			sb.WriteByte(':')
		}

		fmt.Fprintf(&sb, "%d", l.Line)

		if l.Column > 0 {
			fmt.Fprintf(&sb, ":%d", l.Column)
		}
	}

	return sb.String()
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// MarshalText encodes the severity by name.
func (s DiagnosticSeverity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, at Location, item string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Location: at,
		Item:     item,
	})
}

// AddErrorWithSuggestions adds an error diagnostic that offers possible
// replacements for the offending text.
func (d *Diagnostics) AddErrorWithSuggestions(code, message string, at Location, item string, suggestions []string) {
	d.AddError(code, message, at, item)
	d.Errors[len(d.Errors)-1].Suggestions = suggestions
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, at Location, item string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Location: at,
		Item:     item,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the total number of diagnostics of every severity.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns errors, then warnings, each in the order they were reported.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, d.Len())
	all = append(all, d.Errors...)

	return append(all, d.Warnings...)
}

// Codes returns the codes of all error diagnostics in order.
func (d *Diagnostics) Codes() []string {
	codes := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		codes = append(codes, e.Code)
	}

	return codes
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		quoted := make([]string, 0, len(d.Suggestions))
		for _, s := range d.Suggestions {
			quoted = append(quoted, strconv.Quote(s))
		}

		msg += " (did you mean " + strings.Join(quoted, " or ") + "?)"
	}

	if loc := d.Location.String(); loc != "" {
		return loc + ": " + msg
	}

	return msg
}
