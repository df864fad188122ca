package evaluator

import (
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/ast"
	cerrors "github.com/SlashZ6/Pseudocode-Interpreter/internal/errors"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/ident"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/runtime"
)

// Evaluator tree-walks an ast.Program against a Host. A single Evaluator
// value is used for exactly one Run or Debug call; construct a fresh one
// (via New) per execution so that no state leaks between runs.
type Evaluator struct {
	modules   *ident.Map[*ast.ModuleDeclaration]
	functions *ident.Map[*ast.FunctionDeclaration]
	host      Host
	callDepth int
	callStack cerrors.StackTrace

	// stepSink, when non-nil, is invoked before every statement executed
	// at callDepth 0 (top-level statements and the body of main) and
	// blocks until the driver asks for the next step. Run mode leaves
	// this nil.
	stepSink func(line int, env *runtime.Environment) *cerrors.CompilerError
}

// New creates an Evaluator bound to host. Declarations are registered by
// Run/Debug once the program to execute is known.
func New(host Host) *Evaluator {
	return &Evaluator{
		modules:   ident.NewMap[*ast.ModuleDeclaration](),
		functions: ident.NewMap[*ast.FunctionDeclaration](),
		host:      host,
	}
}

func (e *Evaluator) register(prog *ast.Program) {
	for _, decl := range prog.Declarations {
		switch d := decl.(type) {
		case *ast.ModuleDeclaration:
			e.modules.Set(d.Name, d)
		case *ast.FunctionDeclaration:
			e.functions.Set(d.Name, d)
		}
	}
}

// Run executes prog to completion against the Host supplied at
// construction, returning the first error encountered (or nil on success).
func Run(prog *ast.Program, host Host) *cerrors.CompilerError {
	e := New(host)
	return e.run(prog)
}

func (e *Evaluator) run(prog *ast.Program) *cerrors.CompilerError {
	e.register(prog)
	env := runtime.NewEnvironment()

	if e.modules.Len() > 0 {
		if err := e.execTopLevelVarDecls(prog, env); err != nil {
			return toCompilerError(err)
		}
		mainModule, ok := e.modules.Get("main")
		if !ok {
			return cerrors.New(cerrors.SemanticError, 0, "a 'main' module is required when modules are declared")
		}
		// main's body is the program's top level for stepping: invoking it
		// from depth -1 leaves its own statements at callDepth 0, so they
		// emit step points while calls made from it are stepped over.
		e.callDepth = -1
		if err := e.invokeModule(mainModule, nil, env, mainModule.Line()); err != nil {
			return toCompilerError(err)
		}
		return nil
	}

	for _, decl := range prog.Declarations {
		if _, isFn := decl.(*ast.FunctionDeclaration); isFn {
			continue
		}
		if err := e.execStatement(decl, env); err != nil {
			return toCompilerError(err)
		}
	}
	return nil
}

func (e *Evaluator) execTopLevelVarDecls(prog *ast.Program, env *runtime.Environment) error {
	for _, decl := range prog.Declarations {
		if _, ok := decl.(*ast.VariableDeclaration); ok {
			if err := e.execStatement(decl, env); err != nil {
				return err
			}
		}
	}
	return nil
}

// toCompilerError converts an internal control-flow/runtime error into the
// driver-facing *cerrors.CompilerError. A leaked returnSignal (Return
// outside any function) is a semantic error; stoppedSignal becomes Stopped.
func toCompilerError(err error) *cerrors.CompilerError {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*cerrors.CompilerError); ok {
		return ce
	}
	if _, ok := err.(*stoppedSignal); ok {
		return &cerrors.CompilerError{Kind: cerrors.Stopped}
	}
	if _, ok := err.(*returnSignal); ok {
		return cerrors.New(cerrors.SemanticError, 0, "Return used outside of a function")
	}
	return cerrors.New(cerrors.SemanticError, 0, "%v", err)
}

// beforeStatement implements the shared step-point/stop-poll contract: it
// is called immediately before executing any statement.
func (e *Evaluator) beforeStatement(line int, env *runtime.Environment) error {
	if e.host.ShouldStop() {
		return errStopped
	}
	if e.stepSink != nil && e.callDepth == 0 {
		if err := e.stepSink(line, env); err != nil {
			return err
		}
	}
	return nil
}

// invokeModule binds args to m's parameters in a fresh scope rooted at the
// global environment (never the caller's scope) and executes its body.
// Statements of a called module do not emit step points ("step over");
// main's body, invoked from run, is the exception.
func (e *Evaluator) invokeModule(m *ast.ModuleDeclaration, args []ast.Expression, callerEnv *runtime.Environment, callLine int) error {
	calleeEnv := runtime.NewCallEnvironment(callerEnv.Global())

	if err := e.bindParameters(m.Params, args, callerEnv, calleeEnv); err != nil {
		return e.attachTrace(err)
	}

	e.callDepth++
	e.callStack = e.callStack.Push(cerrors.StackFrame{FunctionName: m.Name, Line: callLine})
	defer func() {
		e.callDepth--
		e.callStack = e.callStack[:len(e.callStack)-1]
	}()
	return e.attachTrace(e.execBlock(m.Body, calleeEnv))
}

// invokeFunction is like invokeModule but intercepts the returnSignal
// control-flow error and yields its value; a body that falls off the end
// without Return is a MissingReturn error.
func (e *Evaluator) invokeFunction(f *ast.FunctionDeclaration, args []ast.Expression, callerEnv *runtime.Environment, line int) (runtime.Value, error) {
	calleeEnv := runtime.NewCallEnvironment(callerEnv.Global())

	if err := e.bindParameters(f.Params, args, callerEnv, calleeEnv); err != nil {
		return runtime.Value{}, e.attachTrace(err)
	}

	e.callDepth++
	e.callStack = e.callStack.Push(cerrors.StackFrame{FunctionName: f.Name, Line: line})
	defer func() {
		e.callDepth--
		e.callStack = e.callStack[:len(e.callStack)-1]
	}()

	err := e.execBlock(f.Body, calleeEnv)
	if ret, ok := err.(*returnSignal); ok {
		return ret.value, nil
	}
	if err != nil {
		return runtime.Value{}, e.attachTrace(err)
	}
	return runtime.Value{}, e.attachTrace(cerrors.New(cerrors.MissingReturn, line,
		"function %q completed without returning a value", f.Name))
}

// attachTrace records the call stack active at the moment a CompilerError
// first bubbles through a call boundary, so the driver can show "called
// from" context. Control-flow signals (Return, Stopped) and errors that
// already carry a trace (from a deeper call boundary) pass through
// unchanged.
func (e *Evaluator) attachTrace(err error) error {
	if err == nil {
		return nil
	}
	ce, ok := err.(*cerrors.CompilerError)
	if !ok || len(ce.Trace) > 0 || len(e.callStack) == 0 {
		return err
	}
	return ce.WithTrace(append(cerrors.StackTrace{}, e.callStack...))
}

// bindParameters implements the by-reference/by-value binding rule from
// the parameter-binding contract.
func (e *Evaluator) bindParameters(params []ast.Parameter, args []ast.Expression, callerEnv, calleeEnv *runtime.Environment) error {
	if len(params) != len(args) {
		line := 0
		if len(args) > 0 {
			line = args[0].Line()
		}
		return cerrors.New(cerrors.SemanticError, line,
			"expected %d argument(s) but got %d", len(params), len(args))
	}

	for i, param := range params {
		arg := args[i]
		if param.IsReference {
			identExpr, ok := arg.(*ast.Identifier)
			if !ok {
				return cerrors.New(cerrors.SemanticError, arg.Line(),
					"by-reference parameter %q requires a variable argument", param.Name)
			}
			slot := callerEnv.Lookup(identExpr.Name)
			if slot == nil {
				return cerrors.New(cerrors.SemanticError, arg.Line(), "undeclared identifier %q", identExpr.Name)
			}
			calleeEnv.DefineAlias(param.Name, slot)
			continue
		}

		value, err := e.evalExpression(arg, callerEnv)
		if err != nil {
			return err
		}
		dataType := param.DataType
		if dataType == ast.AutoType {
			if identExpr, ok := arg.(*ast.Identifier); ok {
				if slot := callerEnv.Lookup(identExpr.Name); slot != nil {
					dataType = slot.DataType
				}
			}
		}
		calleeEnv.Define(param.Name, false, dataType, value)
	}
	return nil
}
