package plan

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"golang.org/x/text/unicode/norm"

	"consttable/internal/decl"
	"consttable/internal/diagnostic"
)

// normalizeName trims and NFC-normalizes an identifier, so that names typed
// with combining marks compare equal to their precomposed spelling.
func normalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// isIdentifier reports whether name can be declared in Go.
func isIdentifier(name string) bool {
	return name != "_" && token.IsIdentifier(name)
}

// parseValue parses an initializer expression.
func parseValue(text string) (ast.Expr, error) {
	return parser.ParseExpr(text)
}

// parseType parses a field type expression and rejects expressions that
// cannot denote a type.
func parseType(text string) (ast.Expr, error) {
	expr, err := parser.ParseExpr(text)
	if err != nil {
		return nil, err
	}

	if !isTypeExpr(expr) {
		return nil, fmt.Errorf("%T is not a type expression", expr)
	}

	return expr, nil
}

func isTypeExpr(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := e.X.(*ast.Ident)
		return ok
	case *ast.StarExpr:
		return isTypeExpr(e.X)
	case *ast.ParenExpr:
		return isTypeExpr(e.X)
	case *ast.IndexExpr:
		return isTypeExpr(e.X) && isTypeExpr(e.Index)
	case *ast.IndexListExpr:
		if !isTypeExpr(e.X) {
			return false
		}

		for _, idx := range e.Indices {
			if !isTypeExpr(idx) {
				return false
			}
		}

		return true
	case *ast.ArrayType, *ast.MapType, *ast.ChanType, *ast.FuncType,
		*ast.InterfaceType, *ast.StructType:
		return true
	default:
		return false
	}
}

// normalizeDirective makes sure a directive is a line comment.
func normalizeDirective(text string) string {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "//") {
		return text
	}

	return "//" + text
}

func normalizeDirectives(list decl.ScalarList) []string {
	var result []string

	for _, text := range list.Texts() {
		if d := normalizeDirective(text); d != "" {
			result = append(result, d)
		}
	}

	return result
}

// nameScope detects names declared more than once in one package scope.
type nameScope struct {
	seen map[string]string
}

func newNameScope() *nameScope {
	return &nameScope{seen: make(map[string]string)}
}

// declare records name as declared by owner and returns the previous owner
// when the name is already taken.
func (s *nameScope) declare(name, owner string) (string, bool) {
	key := norm.NFC.String(name)
	if prev, ok := s.seen[key]; ok {
		return prev, true
	}

	s.seen[key] = owner

	return "", false
}

func locate(file string, pos decl.Pos) diagnostic.Location {
	return diagnostic.Location{File: file, Line: pos.Line, Column: pos.Column}
}
