package filter

import (
	"fmt"

	apperrors "github.com/louisbranch/everyday.space/internal/platform/errors"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Resolver returns the value of a field for the record under test.
type Resolver func(name string) (any, bool)

// Evaluate evaluates a parsed filter expression against a resolver. A
// nil expression matches everything.
func Evaluate(e *expr.Expr, resolve Resolver) (bool, error) {
	if e == nil {
		return true, nil
	}

	call, ok := e.ExprKind.(*expr.Expr_CallExpr)
	if !ok {
		return false, evalError("unsupported expression type %T", e.ExprKind)
	}
	return evalCall(call.CallExpr, resolve)
}

func evalCall(call *expr.Expr_Call, resolve Resolver) (bool, error) {
	switch call.Function {
	case "_&&_", "AND":
		return evalLogical(call.Args, resolve, true)
	case "_||_", "OR":
		return evalLogical(call.Args, resolve, false)
	}

	op, ok := comparators[call.Function]
	if !ok {
		return false, evalError("unsupported function %s", call.Function)
	}
	return evalComparison(call.Args, resolve, op)
}

// evalLogical short-circuits: AND stops on the first false, OR on the
// first true.
func evalLogical(args []*expr.Expr, resolve Resolver, isAnd bool) (bool, error) {
	if len(args) != 2 {
		return false, evalError("logical operator requires 2 arguments, got %d", len(args))
	}
	left, err := Evaluate(args[0], resolve)
	if err != nil {
		return false, err
	}
	if left != isAnd {
		return left, nil
	}
	return Evaluate(args[1], resolve)
}

// comparators maps CEL operator names (and their textual aliases) to a
// predicate over the three-way comparison result.
var comparators = map[string]func(cmp int) bool{
	"_==_": func(cmp int) bool { return cmp == 0 },
	"=":    func(cmp int) bool { return cmp == 0 },
	"_!=_": func(cmp int) bool { return cmp != 0 },
	"!=":   func(cmp int) bool { return cmp != 0 },
	"_<_":  func(cmp int) bool { return cmp < 0 },
	"<":    func(cmp int) bool { return cmp < 0 },
	"_<=_": func(cmp int) bool { return cmp <= 0 },
	"<=":   func(cmp int) bool { return cmp <= 0 },
	"_>_":  func(cmp int) bool { return cmp > 0 },
	">":    func(cmp int) bool { return cmp > 0 },
	"_>=_": func(cmp int) bool { return cmp >= 0 },
	">=":   func(cmp int) bool { return cmp >= 0 },
}

func evalComparison(args []*expr.Expr, resolve Resolver, op func(int) bool) (bool, error) {
	if len(args) != 2 {
		return false, evalError("comparison requires 2 arguments, got %d", len(args))
	}

	ident, ok := args[0].ExprKind.(*expr.Expr_IdentExpr)
	if !ok {
		return false, evalError("expected identifier, got %T", args[0].ExprKind)
	}

	left, ok := resolve(ident.IdentExpr.Name)
	if !ok {
		return false, evalError("unknown field %s", ident.IdentExpr.Name)
	}

	right, err := constValue(args[1])
	if err != nil {
		return false, err
	}

	cmp, err := compare(left, right)
	if err != nil {
		return false, err
	}
	return op(cmp), nil
}

func constValue(e *expr.Expr) (any, error) {
	// Boolean literals survive parsing as identifiers, not constants.
	if ident, ok := e.ExprKind.(*expr.Expr_IdentExpr); ok {
		switch ident.IdentExpr.Name {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return nil, evalError("expected constant, got identifier %s", ident.IdentExpr.Name)
		}
	}

	c, ok := e.ExprKind.(*expr.Expr_ConstExpr)
	if !ok {
		return nil, evalError("expected constant, got %T", e.ExprKind)
	}
	switch kind := c.ConstExpr.ConstantKind.(type) {
	case *expr.Constant_StringValue:
		return kind.StringValue, nil
	case *expr.Constant_Int64Value:
		return kind.Int64Value, nil
	case *expr.Constant_Uint64Value:
		return kind.Uint64Value, nil
	case *expr.Constant_DoubleValue:
		return kind.DoubleValue, nil
	case *expr.Constant_BoolValue:
		return kind.BoolValue, nil
	default:
		return nil, evalError("unsupported constant type %T", kind)
	}
}

// compare returns -1, 0, or 1 for ordered types. Numeric operands
// compare through float64 regardless of width.
func compare(left, right any) (int, error) {
	if l, ok := toFloat(left); ok {
		r, ok := toFloat(right)
		if !ok {
			return 0, evalError("type mismatch: number vs %T", right)
		}
		switch {
		case l < r:
			return -1, nil
		case l > r:
			return 1, nil
		default:
			return 0, nil
		}
	}

	switch l := left.(type) {
	case string:
		r, ok := right.(string)
		if !ok {
			return 0, evalError("type mismatch: string vs %T", right)
		}
		switch {
		case l < r:
			return -1, nil
		case l > r:
			return 1, nil
		default:
			return 0, nil
		}
	case bool:
		r, ok := right.(bool)
		if !ok {
			return 0, evalError("type mismatch: bool vs %T", right)
		}
		if l == r {
			return 0, nil
		}
		if !l {
			return -1, nil
		}
		return 1, nil
	default:
		return 0, evalError("unsupported value type %T", left)
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func evalError(format string, args ...any) error {
	return apperrors.New(apperrors.CodeCatalogInvalidFilter, fmt.Sprintf(format, args...))
}
