package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SlashZ6/Pseudocode-Interpreter/internal/ast"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/parser"
)

func TestParseHelloModule(t *testing.T) {
	prog, err := parser.Parse(`Module main() Display "Hello, World!" End Module`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Declarations) != 1 {
		t.Fatalf("expected one declaration, got %d", len(prog.Declarations))
	}
	mod, ok := prog.Declarations[0].(*ast.ModuleDeclaration)
	if !ok {
		t.Fatalf("expected *ast.ModuleDeclaration, got %T", prog.Declarations[0])
	}
	if mod.Name != "main" || len(mod.Body) != 1 {
		t.Fatalf("got module %+v", mod)
	}
	if _, ok := mod.Body[0].(*ast.DisplayStatement); !ok {
		t.Fatalf("expected DisplayStatement body, got %T", mod.Body[0])
	}
}

func TestParseElseIfChain(t *testing.T) {
	src := `
Module main()
	Declare Integer x = 2
	If x == 1 Then
		Display "one"
	Else If x == 2 Then
		Display "two"
	Else
		Display "other"
	End If
End Module`
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mod := prog.Declarations[0].(*ast.ModuleDeclaration)
	ifStmt := mod.Body[1].(*ast.IfStatement)
	if len(ifStmt.ElseBody) != 1 {
		t.Fatalf("expected else-if nested as single statement, got %d", len(ifStmt.ElseBody))
	}
	if _, ok := ifStmt.ElseBody[0].(*ast.IfStatement); !ok {
		t.Fatalf("expected nested IfStatement for else-if, got %T", ifStmt.ElseBody[0])
	}
}

func TestParseForLoop(t *testing.T) {
	src := `
Declare Integer s = 0, i
For i = 1 To 5
	Set s = s + i
End For
Display s`
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	forStmt, ok := prog.Declarations[1].(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected ForStatement, got %T", prog.Declarations[1])
	}
	if forStmt.Counter != "i" {
		t.Fatalf("counter = %q", forStmt.Counter)
	}
}

func TestParseRefParameter(t *testing.T) {
	src := `Module swap(Ref Integer x, Ref Integer y) Declare Integer t Set t = x Set x = y Set y = t End Module`
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mod := prog.Declarations[0].(*ast.ModuleDeclaration)
	want := []ast.Parameter{
		{Name: "x", DataType: ast.IntegerType, IsReference: true},
		{Name: "y", DataType: ast.IntegerType, IsReference: true},
	}
	if diff := cmp.Diff(want, mod.Params); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestParseExpressionPrecedence(t *testing.T) {
	src := `Display 1 + 2 * 3 == 7 And Not False`
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	disp := prog.Declarations[0].(*ast.DisplayStatement)
	top, ok := disp.Items[0].Expr.(*ast.Binary)
	if !ok || top.Op != ast.BinAnd {
		t.Fatalf("expected top-level And, got %#v", disp.Items[0].Expr)
	}
}

func TestParsePowerTokenIsSyntaxError(t *testing.T) {
	_, err := parser.Parse(`Display 2 ^ 3`)
	if err == nil {
		t.Fatalf("expected a syntax error for '^'")
	}
}

func TestParseConstantWithoutInitializerIsError(t *testing.T) {
	_, err := parser.Parse(`Constant Integer x`)
	if err == nil {
		t.Fatalf("expected an error: constants require an initializer")
	}
}

func TestParseArrayDeclaratorWithInitializer(t *testing.T) {
	prog, err := parser.Parse(`Declare Integer nums[3] = 1, 2, 3`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decl := prog.Declarations[0].(*ast.VariableDeclaration)
	lit, ok := decl.Declarators[0].Initializer.(*ast.ArrayLiteral)
	if !ok || len(lit.Elements) != 3 {
		t.Fatalf("expected a 3-element array literal, got %#v", decl.Declarators[0].Initializer)
	}
}

func TestParseFunctionWithReturn(t *testing.T) {
	src := `Function Integer f(Integer n) If n == 0 Then Return 1 Else Return n * f(n-1) End If End Function`
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn := prog.Declarations[0].(*ast.FunctionDeclaration)
	if fn.Name != "f" || fn.ReturnType != ast.IntegerType {
		t.Fatalf("got %+v", fn)
	}
}
