package evaluator_test

import (
	"testing"

	"github.com/SlashZ6/Pseudocode-Interpreter/internal/evaluator"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/parser"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/runtime"
)

// fakeHost is an in-memory evaluator.Host for tests: it queues canned
// inputs, records every Display call, and never requests a stop.
type fakeHost struct {
	displayed []string
	inputs    []string
	stop      bool
}

func (h *fakeHost) Display(values []runtime.Value) {
	for _, v := range values {
		h.displayed = append(h.displayed, v.String())
	}
}

func (h *fakeHost) Input(prompt string) (string, bool) {
	if len(h.inputs) == 0 {
		return "", false
	}
	next := h.inputs[0]
	h.inputs = h.inputs[1:]
	return next, true
}

func (h *fakeHost) ShouldStop() bool { return h.stop }

func runProgram(t *testing.T, src string) *fakeHost {
	t.Helper()
	prog, perr := parser.Parse(src)
	if perr != nil {
		t.Fatalf("parse error: %v", perr)
	}
	host := &fakeHost{}
	if err := evaluator.Run(prog, host); err != nil {
		t.Fatalf("run error: %v", err)
	}
	return host
}

func TestHelloWorld(t *testing.T) {
	host := runProgram(t, `Module main() Display "Hello, World!" End Module`)
	if len(host.displayed) != 1 || host.displayed[0] != "Hello, World!" {
		t.Fatalf("displayed = %v", host.displayed)
	}
}

func TestForLoopAccumulation(t *testing.T) {
	host := runProgram(t, `Declare Integer s = 0, i
For i = 1 To 5
	Set s = s + i
End For
Display s`)
	if len(host.displayed) != 1 || host.displayed[0] != "15" {
		t.Fatalf("displayed = %v", host.displayed)
	}
}

func TestRecursiveFactorial(t *testing.T) {
	host := runProgram(t, `
Function Integer f(Integer n)
	If n == 0 Then
		Return 1
	Else
		Return n * f(n - 1)
	End If
End Function

Module main()
	Display f(4)
End Module`)
	if len(host.displayed) != 1 || host.displayed[0] != "24" {
		t.Fatalf("displayed = %v", host.displayed)
	}
}

func TestInputValidationReprompts(t *testing.T) {
	prog, perr := parser.Parse(`Declare Integer x
Input x
Display x`)
	if perr != nil {
		t.Fatalf("parse error: %v", perr)
	}
	host := &fakeHost{inputs: []string{"abc", "7"}}
	if err := evaluator.Run(prog, host); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if len(host.displayed) != 2 {
		t.Fatalf("expected one reprompt then the final display, got %v", host.displayed)
	}
	if host.displayed[1] != "7" {
		t.Fatalf("final display = %q, want 7", host.displayed[1])
	}
}

func TestByReferenceSwap(t *testing.T) {
	host := runProgram(t, `
Module swap(Ref Integer x, Ref Integer y)
	Declare Integer t
	Set t = x
	Set x = y
	Set y = t
End Module

Module main()
	Declare Integer a = 1, b = 2
	Call swap(a, b)
	Display a, " ", b
End Module`)
	if len(host.displayed) != 1 || host.displayed[0] != "2 1" {
		t.Fatalf("displayed = %v", host.displayed)
	}
}

func TestDebugStepCount(t *testing.T) {
	prog, perr := parser.Parse(`
Module main()
	Declare Integer x = 1
	Set x = x + 1
	Set x = x * 2
	Display x
End Module`)
	if perr != nil {
		t.Fatalf("parse error: %v", perr)
	}
	host := &fakeHost{}
	it := evaluator.Debug(prog, host)

	var steps []evaluator.Step
	for {
		step, ok := it.Next()
		if !ok {
			break
		}
		steps = append(steps, step)
		it.Resume()
	}
	if err := it.Err(); err != nil {
		t.Fatalf("debug run error: %v", err)
	}
	if len(steps) != 4 {
		t.Fatalf("expected 4 step events, got %d", len(steps))
	}
	// Each step is reported before its statement runs, so the snapshot
	// taken after the third statement is the fourth step's.
	if v := steps[3].Scope["x"]; v.String() != "4" {
		t.Fatalf("scope snapshot after third step x=%v, want 4", v)
	}
	if host.displayed[0] != "4" {
		t.Fatalf("final display = %v", host.displayed)
	}
}

func TestDivisionByZeroIsError(t *testing.T) {
	prog, perr := parser.Parse(`Display 1 / 0`)
	if perr != nil {
		t.Fatalf("parse error: %v", perr)
	}
	if err := evaluator.Run(prog, &fakeHost{}); err == nil {
		t.Fatalf("expected a division-by-zero error")
	}
}

func TestUndeclaredIdentifierIsSemanticError(t *testing.T) {
	prog, perr := parser.Parse(`Display x`)
	if perr != nil {
		t.Fatalf("parse error: %v", perr)
	}
	if err := evaluator.Run(prog, &fakeHost{}); err == nil {
		t.Fatalf("expected an undeclared-identifier error")
	}
}

func TestArrayOutOfBoundsIsRangeError(t *testing.T) {
	prog, perr := parser.Parse(`Declare Integer nums[3]
Display nums[5]`)
	if perr != nil {
		t.Fatalf("parse error: %v", perr)
	}
	if err := evaluator.Run(prog, &fakeHost{}); err == nil {
		t.Fatalf("expected a range error")
	}
}

func TestCaseInsensitiveIdentifiersAndKeywords(t *testing.T) {
	host := runProgram(t, `DECLARE integer Count = 3
display COUNT`)
	if len(host.displayed) != 1 || host.displayed[0] != "3" {
		t.Fatalf("displayed = %v", host.displayed)
	}
}
