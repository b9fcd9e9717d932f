// Package filter parses AIP-160 filter expressions against a declared
// field set and evaluates them in memory over catalog records.
package filter

import (
	"strings"

	apperrors "github.com/louisbranch/everyday.space/internal/platform/errors"
	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// FieldType describes a supported filter field type.
type FieldType string

const (
	FieldString FieldType = "string"
	FieldInt    FieldType = "int"
	FieldBool   FieldType = "bool"
)

// Fields declares the filterable fields and their types.
type Fields map[string]FieldType

// Parse parses an AIP-160 filter expression for the declared fields. An
// empty expression parses to nil, which Evaluate treats as match-all.
func Parse(filterStr string, fields Fields) (*expr.Expr, error) {
	if strings.TrimSpace(filterStr) == "" {
		return nil, nil
	}

	decls, err := declarations(fields)
	if err != nil {
		return nil, err
	}

	parsed, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalogInvalidFilter, "parse filter", err)
	}
	return parsed.CheckedExpr.Expr, nil
}

func declarations(fields Fields) (*filtering.Declarations, error) {
	opts := []filtering.DeclarationOption{filtering.DeclareStandardFunctions()}
	hasBool := false
	for name, kind := range fields {
		var declType *expr.Type
		switch kind {
		case FieldString:
			declType = filtering.TypeString
		case FieldInt:
			declType = filtering.TypeInt
		case FieldBool:
			declType = filtering.TypeBool
			hasBool = true
		default:
			return nil, apperrors.WithMetadata(apperrors.CodeCatalogInvalidFilter,
				"unsupported field type", map[string]string{"field": name, "type": string(kind)})
		}
		opts = append(opts, filtering.DeclareIdent(name, declType))
	}
	if hasBool {
		// The grammar treats true/false as plain identifiers; they must be
		// declared for boolean comparisons to type-check.
		opts = append(opts,
			filtering.DeclareIdent("true", filtering.TypeBool),
			filtering.DeclareIdent("false", filtering.TypeBool),
		)
	}
	return filtering.NewDeclarations(opts...)
}
