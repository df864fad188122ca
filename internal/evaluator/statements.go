package evaluator

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/SlashZ6/Pseudocode-Interpreter/internal/ast"
	cerrors "github.com/SlashZ6/Pseudocode-Interpreter/internal/errors"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/runtime"
)

var integerPattern = regexp.MustCompile(`^-?\d+$`)
var realPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

func (e *Evaluator) execBlock(stmts []ast.Statement, env *runtime.Environment) error {
	for _, stmt := range stmts {
		if err := e.execStatement(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

// execBlockInNewScope runs stmts in a freshly pushed, then popped, scope
// nested under env — the shape every if-branch, loop body, and for-loop
// iteration executes in.
func (e *Evaluator) execBlockInNewScope(stmts []ast.Statement, env *runtime.Environment) error {
	env.Push()
	defer env.Pop()
	return e.execBlock(stmts, env)
}

func (e *Evaluator) execStatement(stmt ast.Statement, env *runtime.Environment) error {
	if err := e.beforeStatement(stmt.Line(), env); err != nil {
		return err
	}

	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		return e.execVariableDeclaration(s, env)
	case *ast.Assignment:
		return e.execAssignment(s, env)
	case *ast.DisplayStatement:
		return e.execDisplay(s, env)
	case *ast.InputStatement:
		return e.execInput(s, env)
	case *ast.IfStatement:
		return e.execIf(s, env)
	case *ast.WhileStatement:
		return e.execWhile(s, env)
	case *ast.DoWhileStatement:
		return e.execDoWhile(s, env)
	case *ast.DoUntilStatement:
		return e.execDoUntil(s, env)
	case *ast.ForStatement:
		return e.execFor(s, env)
	case *ast.CallStatement:
		return e.execCall(s, env)
	case *ast.ReturnStatement:
		return e.execReturn(s, env)
	case *ast.ModuleDeclaration, *ast.FunctionDeclaration:
		// Declarations are registered up front; encountering one during
		// sequential top-level execution is a no-op.
		return nil
	default:
		return cerrors.New(cerrors.SemanticError, stmt.Line(), "unsupported statement")
	}
}

func (e *Evaluator) execVariableDeclaration(s *ast.VariableDeclaration, env *runtime.Environment) error {
	for _, decl := range s.Declarators {
		value, err := e.evalDeclaratorValue(s, decl, env)
		if err != nil {
			return err
		}
		if !env.Define(decl.Identifier, s.IsConstant, s.DataType, value) {
			return cerrors.New(cerrors.SemanticError, s.Line(), "%q is already declared in this scope", decl.Identifier)
		}
	}
	return nil
}

func (e *Evaluator) evalDeclaratorValue(s *ast.VariableDeclaration, decl ast.Declarator, env *runtime.Environment) (runtime.Value, error) {
	if decl.Size != nil {
		sizeVal, err := e.evalExpression(decl.Size, env)
		if err != nil {
			return runtime.Value{}, err
		}
		if sizeVal.Kind != runtime.IntegerKind || sizeVal.I < 0 {
			return runtime.Value{}, cerrors.New(cerrors.RangeError, s.Line(), "array size must be a non-negative integer")
		}
		size := int(sizeVal.I)
		elements := make([]runtime.Value, size)
		for i := range elements {
			elements[i] = runtime.NewNull()
		}
		if decl.Initializer != nil {
			lit, ok := decl.Initializer.(*ast.ArrayLiteral)
			if !ok {
				return runtime.Value{}, cerrors.New(cerrors.TypeError, s.Line(), "array initializer must be a list of values")
			}
			if len(lit.Elements) > size {
				return runtime.Value{}, cerrors.New(cerrors.RangeError, s.Line(), "too many initializers for array of size %d", size)
			}
			for i, elExpr := range lit.Elements {
				val, err := e.evalExpression(elExpr, env)
				if err != nil {
					return runtime.Value{}, err
				}
				elements[i] = val
			}
		}
		return runtime.NewArray(elements), nil
	}

	if decl.Initializer == nil {
		return runtime.NewNull(), nil
	}
	return e.evalExpression(decl.Initializer, env)
}

func (e *Evaluator) execAssignment(s *ast.Assignment, env *runtime.Environment) error {
	value, err := e.evalExpression(s.RHS, env)
	if err != nil {
		return err
	}
	switch lv := s.LValue.(type) {
	case *ast.Identifier:
		slot := env.Lookup(lv.Name)
		if slot == nil {
			return cerrors.New(cerrors.SemanticError, s.Line(), "undeclared identifier %q", lv.Name)
		}
		if slot.IsConstant {
			return cerrors.New(cerrors.SemanticError, s.Line(), "cannot assign to constant %q", lv.Name)
		}
		slot.Value = value
		return nil
	case *ast.ArrayAccess:
		arrSlot, index, err := e.resolveArrayTarget(lv, env)
		if err != nil {
			return err
		}
		arrSlot.Value.A[index] = value
		return nil
	default:
		return cerrors.New(cerrors.SemanticError, s.Line(), "invalid assignment target")
	}
}

// resolveArrayTarget evaluates an ArrayAccess lvalue down to the owning
// *Slot (which must hold an Array) and a validated in-bounds index.
func (e *Evaluator) resolveArrayTarget(aa *ast.ArrayAccess, env *runtime.Environment) (*runtime.Slot, int, error) {
	ident, ok := aa.Array.(*ast.Identifier)
	if !ok {
		return nil, 0, cerrors.New(cerrors.SemanticError, aa.Line(), "invalid assignment target")
	}
	slot := env.Lookup(ident.Name)
	if slot == nil {
		return nil, 0, cerrors.New(cerrors.SemanticError, aa.Line(), "undeclared identifier %q", ident.Name)
	}
	if slot.Value.Kind != runtime.ArrayKind {
		return nil, 0, cerrors.New(cerrors.TypeError, aa.Line(), "%q is not an array", ident.Name)
	}
	indexVal, err := e.evalExpression(aa.Index, env)
	if err != nil {
		return nil, 0, err
	}
	if indexVal.Kind != runtime.IntegerKind {
		return nil, 0, cerrors.New(cerrors.TypeError, aa.Line(), "array index must be an integer")
	}
	idx := int(indexVal.I)
	if idx < 0 || idx >= len(slot.Value.A) {
		return nil, 0, cerrors.New(cerrors.RangeError, aa.Line(), "array index %d out of bounds", idx)
	}
	return slot, idx, nil
}

func (e *Evaluator) execDisplay(s *ast.DisplayStatement, env *runtime.Environment) error {
	var sb strings.Builder
	for _, item := range s.Items {
		if item.IsTap {
			sb.WriteString("    ")
			continue
		}
		val, err := e.evalExpression(item.Expr, env)
		if err != nil {
			return err
		}
		sb.WriteString(displayString(val))
	}
	e.host.Display([]runtime.Value{runtime.NewString(sb.String())})
	return nil
}

// displayString renders a Value for a Display line: non-integer Real
// values are rounded to 2 decimal places for the line's text, and
// whole-valued Reals print without a fractional part; Value.String()
// elsewhere (e.g. debug scope snapshots) keeps full precision.
func displayString(v runtime.Value) string {
	if v.Kind == runtime.RealKind && v.R != math.Trunc(v.R) {
		return strconv.FormatFloat(v.R, 'f', 2, 64)
	}
	return v.String()
}

const (
	reinputMessage = "Invalid input, please try again."
	cancelMessage  = "Input cancelled."
)

func (e *Evaluator) execInput(s *ast.InputStatement, env *runtime.Environment) error {
	slot := env.Lookup(s.Identifier)
	if slot == nil {
		return cerrors.New(cerrors.SemanticError, s.Line(), "undeclared identifier %q", s.Identifier)
	}

	for {
		if e.host.ShouldStop() {
			return errStopped
		}
		text, ok := e.host.Input("")
		if !ok {
			e.host.Display([]runtime.Value{runtime.NewString(cancelMessage)})
			return nil
		}

		switch slot.DataType {
		case ast.IntegerType:
			if !integerPattern.MatchString(strings.TrimSpace(text)) {
				e.host.Display([]runtime.Value{runtime.NewString(reinputMessage)})
				continue
			}
			n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
			if err != nil {
				e.host.Display([]runtime.Value{runtime.NewString(reinputMessage)})
				continue
			}
			slot.Value = runtime.NewInteger(n)
			return nil
		case ast.RealType:
			if !realPattern.MatchString(strings.TrimSpace(text)) {
				e.host.Display([]runtime.Value{runtime.NewString(reinputMessage)})
				continue
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
			if err != nil {
				e.host.Display([]runtime.Value{runtime.NewString(reinputMessage)})
				continue
			}
			slot.Value = runtime.NewReal(f)
			return nil
		default:
			slot.Value = runtime.NewString(text)
			return nil
		}
	}
}

func (e *Evaluator) execIf(s *ast.IfStatement, env *runtime.Environment) error {
	cond, err := e.evalExpression(s.Condition, env)
	if err != nil {
		return err
	}
	if cond.Truthy() {
		return e.execBlockInNewScope(s.ThenBody, env)
	}
	if s.ElseBody != nil {
		return e.execBlockInNewScope(s.ElseBody, env)
	}
	return nil
}

func (e *Evaluator) execWhile(s *ast.WhileStatement, env *runtime.Environment) error {
	for {
		cond, err := e.evalExpression(s.Condition, env)
		if err != nil {
			return err
		}
		if !cond.Truthy() {
			return nil
		}
		if err := e.execBlockInNewScope(s.Body, env); err != nil {
			return err
		}
	}
}

func (e *Evaluator) execDoWhile(s *ast.DoWhileStatement, env *runtime.Environment) error {
	for {
		if err := e.execBlockInNewScope(s.Body, env); err != nil {
			return err
		}
		cond, err := e.evalExpression(s.Condition, env)
		if err != nil {
			return err
		}
		if !cond.Truthy() {
			return nil
		}
	}
}

func (e *Evaluator) execDoUntil(s *ast.DoUntilStatement, env *runtime.Environment) error {
	for {
		if err := e.execBlockInNewScope(s.Body, env); err != nil {
			return err
		}
		cond, err := e.evalExpression(s.Condition, env)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return nil
		}
	}
}

func (e *Evaluator) execFor(s *ast.ForStatement, env *runtime.Environment) error {
	startVal, err := e.evalExpression(s.Start, env)
	if err != nil {
		return err
	}
	endVal, err := e.evalExpression(s.End, env)
	if err != nil {
		return err
	}
	if !startVal.IsNumeric() || !endVal.IsNumeric() {
		return cerrors.New(cerrors.TypeError, s.Line(), "For loop bounds must be numeric")
	}

	env.Push()
	defer env.Pop()
	env.Define(s.Counter, false, ast.RealType, runtime.NewReal(startVal.AsFloat()))
	counterSlot := env.Lookup(s.Counter)

	end := endVal.AsFloat()
	for counterSlot.Value.AsFloat() <= end {
		if err := e.execBlockInNewScope(s.Body, env); err != nil {
			return err
		}
		counterSlot.Value = runtime.NewReal(counterSlot.Value.AsFloat() + 1)
	}
	return nil
}

func (e *Evaluator) execCall(s *ast.CallStatement, env *runtime.Environment) error {
	mod, ok := e.modules.Get(s.Name)
	if !ok {
		return cerrors.New(cerrors.SemanticError, s.Line(), "undeclared module %q", s.Name)
	}
	return e.invokeModule(mod, s.Args, env, s.Line())
}

func (e *Evaluator) execReturn(s *ast.ReturnStatement, env *runtime.Environment) error {
	value, err := e.evalExpression(s.Expr, env)
	if err != nil {
		return err
	}
	return &returnSignal{value: value}
}
