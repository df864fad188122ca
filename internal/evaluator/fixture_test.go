package evaluator_test

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/SlashZ6/Pseudocode-Interpreter/internal/evaluator"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/parser"
)

// TestMain lets go-snaps clean up obsolete snapshot entries after the
// package's tests finish, the same fixture-harness shape the teacher's
// interpreter package uses for its own snapshot tests.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	_ = v
}

var fixtures = []struct {
	name string
	src  string
}{
	{
		name: "for_loop_and_display",
		src: `Declare Integer total = 0, i
For i = 1 To 10
	Set total = total + i
End For
Display "Total: ", total`,
	},
	{
		name: "nested_if_else_chain",
		src: `Declare Integer grade = 82
If grade >= 90 Then
	Display "A"
Else If grade >= 80 Then
	Display "B"
Else If grade >= 70 Then
	Display "C"
Else
	Display "F"
End If`,
	},
	{
		name: "do_until_countdown",
		src: `Declare Integer n = 3
Do
	Display n
	Set n = n - 1
Until n == 0`,
	},
	{
		name: "string_builtins",
		src: `Declare String s = "Hello"
Display toupper(s), tap, length(s), tap, contains(s, "ell")`,
	},
}

func TestEvaluatorFixtures(t *testing.T) {
	for _, fx := range fixtures {
		fx := fx
		t.Run(fx.name, func(t *testing.T) {
			prog, perr := parser.Parse(fx.src)
			if perr != nil {
				t.Fatalf("parse error: %v", perr)
			}
			host := &fakeHost{}
			if err := evaluator.Run(prog, host); err != nil {
				t.Fatalf("run error: %v", err)
			}
			snaps.MatchSnapshot(t, strings.Join(host.displayed, "\n"))
		})
	}
}
