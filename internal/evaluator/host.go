// Package evaluator walks an ast.Program, maintaining variable
// environments and producing Display/Input effects and debug step events
// through a driver-supplied Host.
package evaluator

import "github.com/SlashZ6/Pseudocode-Interpreter/internal/runtime"

// Host is the set of callbacks the evaluator uses to talk to its driver.
// It is the only way the evaluator performs I/O or observes cancellation.
type Host interface {
	// Display delivers one rendered line's worth of values, concatenated
	// by the evaluator before the call.
	Display(values []runtime.Value)

	// Input requests a line of text for the given prompt. ok is false
	// when the driver cancels the read (the language-level "null"
	// resolution); the evaluator treats that as an input cancellation,
	// not an error.
	Input(prompt string) (value string, ok bool)

	// ShouldStop is polled before every statement and before every Input
	// resolution so the driver can cooperatively cancel a run.
	ShouldStop() bool
}

// Step is the snapshot delivered to a debug driver between two statements:
// the line about to execute and a flattened view of every visible
// variable, keyed by its declared display name.
type Step struct {
	Line  int
	Scope map[string]runtime.Value
}
