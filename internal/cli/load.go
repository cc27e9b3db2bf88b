package cli

import (
	"errors"

	"consttable/internal/decl"
	"consttable/internal/diagnostic"
)

// CodeInvalidDocument is reported for declaration files whose shape does
// not match the declaration schema.
const CodeInvalidDocument = "invalid_document"

// loadDeclaration reads a declaration file. Schema mismatches come back as
// diagnostics so they are reported like any other declaration problem;
// every other failure is returned as an error.
func loadDeclaration(path string) (*decl.Document, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	doc, err := decl.LoadFile(path)
	if err == nil {
		return doc, diags, nil
	}

	var schemaErr *decl.SchemaError
	if !errors.As(err, &schemaErr) {
		return nil, diags, err
	}

	for _, issue := range schemaErr.Issues {
		diags.AddError(CodeInvalidDocument, issue.Path+": "+issue.Message,
			diagnostic.Location{File: path, Line: issue.Pos.Line, Column: issue.Pos.Column}, "")
	}

	return nil, diags, nil
}
