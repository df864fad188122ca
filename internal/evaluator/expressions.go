package evaluator

import (
	"math"
	"strconv"
	"strings"

	"github.com/SlashZ6/Pseudocode-Interpreter/internal/ast"
	cerrors "github.com/SlashZ6/Pseudocode-Interpreter/internal/errors"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/runtime"
)

func (e *Evaluator) evalExpression(expr ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch ex := expr.(type) {
	case *ast.NumberLiteral:
		return evalNumberLiteral(ex)
	case *ast.StringLiteral:
		return runtime.NewString(ex.Value), nil
	case *ast.Identifier:
		slot := env.Lookup(ex.Name)
		if slot == nil {
			return runtime.Value{}, cerrors.New(cerrors.SemanticError, ex.Line(), "undeclared identifier %q", ex.Name)
		}
		return slot.Value, nil
	case *ast.ArrayLiteral:
		elements := make([]runtime.Value, len(ex.Elements))
		for i, el := range ex.Elements {
			v, err := e.evalExpression(el, env)
			if err != nil {
				return runtime.Value{}, err
			}
			elements[i] = v
		}
		return runtime.NewArray(elements), nil
	case *ast.ArrayAccess:
		return e.evalArrayAccess(ex, env)
	case *ast.Grouping:
		return e.evalExpression(ex.Inner, env)
	case *ast.Unary:
		return e.evalUnary(ex, env)
	case *ast.Binary:
		return e.evalBinary(ex, env)
	case *ast.FunctionCall:
		return e.evalFunctionCall(ex, env)
	default:
		return runtime.Value{}, cerrors.New(cerrors.SemanticError, expr.Line(), "unsupported expression")
	}
}

func evalNumberLiteral(lit *ast.NumberLiteral) (runtime.Value, error) {
	if strings.Contains(lit.Text, ".") {
		f, err := strconv.ParseFloat(lit.Text, 64)
		if err != nil {
			return runtime.Value{}, cerrors.New(cerrors.SyntaxError, lit.Line(), "invalid number literal %q", lit.Text)
		}
		return runtime.NewReal(f), nil
	}
	n, err := strconv.ParseInt(lit.Text, 10, 64)
	if err != nil {
		return runtime.Value{}, cerrors.New(cerrors.SyntaxError, lit.Line(), "invalid number literal %q", lit.Text)
	}
	return runtime.NewInteger(n), nil
}

func (e *Evaluator) evalArrayAccess(ex *ast.ArrayAccess, env *runtime.Environment) (runtime.Value, error) {
	arrVal, err := e.evalExpression(ex.Array, env)
	if err != nil {
		return runtime.Value{}, err
	}
	if arrVal.Kind != runtime.ArrayKind {
		return runtime.Value{}, cerrors.New(cerrors.TypeError, ex.Line(), "cannot index a %s value", arrVal.TypeName())
	}
	idxVal, err := e.evalExpression(ex.Index, env)
	if err != nil {
		return runtime.Value{}, err
	}
	if idxVal.Kind != runtime.IntegerKind {
		return runtime.Value{}, cerrors.New(cerrors.TypeError, ex.Line(), "array index must be an integer")
	}
	idx := int(idxVal.I)
	if idx < 0 || idx >= len(arrVal.A) {
		return runtime.Value{}, cerrors.New(cerrors.RangeError, ex.Line(), "array index %d out of bounds", idx)
	}
	return arrVal.A[idx], nil
}

func (e *Evaluator) evalUnary(ex *ast.Unary, env *runtime.Environment) (runtime.Value, error) {
	right, err := e.evalExpression(ex.Right, env)
	if err != nil {
		return runtime.Value{}, err
	}
	switch ex.Op {
	case ast.UnaryNegate:
		if !right.IsNumeric() {
			return runtime.Value{}, cerrors.New(cerrors.TypeError, ex.Line(), "unary '-' requires a numeric operand")
		}
		if right.Kind == runtime.IntegerKind {
			return runtime.NewInteger(-right.I), nil
		}
		return runtime.NewReal(-right.R), nil
	case ast.UnaryNot:
		return runtime.NewBool(!right.Truthy()), nil
	default:
		return runtime.Value{}, cerrors.New(cerrors.SemanticError, ex.Line(), "unsupported unary operator")
	}
}

func (e *Evaluator) evalBinary(ex *ast.Binary, env *runtime.Environment) (runtime.Value, error) {
	if ex.Op == ast.BinAnd {
		left, err := e.evalExpression(ex.Left, env)
		if err != nil {
			return runtime.Value{}, err
		}
		if !left.Truthy() {
			return runtime.NewBool(false), nil
		}
		right, err := e.evalExpression(ex.Right, env)
		if err != nil {
			return runtime.Value{}, err
		}
		return runtime.NewBool(right.Truthy()), nil
	}
	if ex.Op == ast.BinOr {
		left, err := e.evalExpression(ex.Left, env)
		if err != nil {
			return runtime.Value{}, err
		}
		if left.Truthy() {
			return runtime.NewBool(true), nil
		}
		right, err := e.evalExpression(ex.Right, env)
		if err != nil {
			return runtime.Value{}, err
		}
		return runtime.NewBool(right.Truthy()), nil
	}

	left, err := e.evalExpression(ex.Left, env)
	if err != nil {
		return runtime.Value{}, err
	}
	right, err := e.evalExpression(ex.Right, env)
	if err != nil {
		return runtime.Value{}, err
	}

	switch ex.Op {
	case ast.BinAdd:
		if left.Kind == runtime.StringKind && right.Kind == runtime.StringKind {
			return runtime.NewString(left.S + right.S), nil
		}
		return numericBinary(ex.Line(), left, right, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
	case ast.BinSub:
		return numericBinary(ex.Line(), left, right, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	case ast.BinMul:
		return numericBinary(ex.Line(), left, right, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
	case ast.BinDiv:
		if !left.IsNumeric() || !right.IsNumeric() {
			return runtime.Value{}, cerrors.New(cerrors.TypeError, ex.Line(), "'/' requires numeric operands")
		}
		if right.AsFloat() == 0 {
			return runtime.Value{}, cerrors.New(cerrors.DivisionByZero, ex.Line(), "division by zero")
		}
		return runtime.NewReal(left.AsFloat() / right.AsFloat()), nil
	case ast.BinMod:
		if !left.IsNumeric() || !right.IsNumeric() {
			return runtime.Value{}, cerrors.New(cerrors.TypeError, ex.Line(), "'mod' requires numeric operands")
		}
		if right.AsFloat() == 0 {
			return runtime.Value{}, cerrors.New(cerrors.DivisionByZero, ex.Line(), "division by zero")
		}
		if left.Kind == runtime.IntegerKind && right.Kind == runtime.IntegerKind {
			return runtime.NewInteger(left.I % right.I), nil
		}
		return runtime.NewReal(math.Remainder(left.AsFloat(), right.AsFloat())), nil
	case ast.BinEqual:
		return runtime.NewBool(valuesEqual(left, right)), nil
	case ast.BinNotEqual:
		return runtime.NewBool(!valuesEqual(left, right)), nil
	case ast.BinLess, ast.BinLessEqual, ast.BinGreater, ast.BinGreaterEqual:
		return compareValues(ex.Line(), ex.Op, left, right)
	default:
		return runtime.Value{}, cerrors.New(cerrors.SemanticError, ex.Line(), "unsupported binary operator")
	}
}

func numericBinary(line int, left, right runtime.Value, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (runtime.Value, error) {
	if !left.IsNumeric() || !right.IsNumeric() {
		return runtime.Value{}, cerrors.New(cerrors.TypeError, line, "operator requires numeric operands")
	}
	if left.Kind == runtime.IntegerKind && right.Kind == runtime.IntegerKind {
		return runtime.NewInteger(intOp(left.I, right.I)), nil
	}
	return runtime.NewReal(floatOp(left.AsFloat(), right.AsFloat())), nil
}

func valuesEqual(left, right runtime.Value) bool {
	if left.IsNumeric() && right.IsNumeric() {
		return left.AsFloat() == right.AsFloat()
	}
	if left.Kind != right.Kind {
		return false
	}
	switch left.Kind {
	case runtime.StringKind:
		return left.S == right.S
	case runtime.Null:
		return true
	default:
		return false
	}
}

func compareValues(line int, op ast.BinaryOp, left, right runtime.Value) (runtime.Value, error) {
	var cmp int
	switch {
	case left.IsNumeric() && right.IsNumeric():
		lf, rf := left.AsFloat(), right.AsFloat()
		switch {
		case lf < rf:
			cmp = -1
		case lf > rf:
			cmp = 1
		default:
			cmp = 0
		}
	case left.Kind == runtime.StringKind && right.Kind == runtime.StringKind:
		cmp = strings.Compare(left.S, right.S)
	default:
		return runtime.Value{}, cerrors.New(cerrors.TypeError, line, "cannot compare %s and %s", left.TypeName(), right.TypeName())
	}

	switch op {
	case ast.BinLess:
		return runtime.NewBool(cmp < 0), nil
	case ast.BinLessEqual:
		return runtime.NewBool(cmp <= 0), nil
	case ast.BinGreater:
		return runtime.NewBool(cmp > 0), nil
	default:
		return runtime.NewBool(cmp >= 0), nil
	}
}

func (e *Evaluator) evalFunctionCall(ex *ast.FunctionCall, env *runtime.Environment) (runtime.Value, error) {
	if b, ok := lookupBuiltin(ex.Callee); ok {
		args := make([]runtime.Value, len(ex.Args))
		for i, a := range ex.Args {
			v, err := e.evalExpression(a, env)
			if err != nil {
				return runtime.Value{}, err
			}
			args[i] = v
		}
		if err := checkArity(ex.Callee, ex.Line(), args, b); err != nil {
			return runtime.Value{}, err
		}
		return b.fn(ex.Line(), args)
	}

	fn, ok := e.functions.Get(ex.Callee)
	if !ok {
		return runtime.Value{}, cerrors.New(cerrors.SemanticError, ex.Line(), "undeclared function %q", ex.Callee)
	}
	return e.invokeFunction(fn, ex.Args, env, ex.Line())
}
