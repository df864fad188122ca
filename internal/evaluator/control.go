package evaluator

import "github.com/SlashZ6/Pseudocode-Interpreter/internal/runtime"

// returnSignal unwinds a function body up to the call site that invoked
// it. It is not a program error and must never reach the driver boundary.
type returnSignal struct {
	value runtime.Value
}

func (r *returnSignal) Error() string { return "return outside of a function call" }

// stoppedSignal unwinds the entire evaluation up to the driver boundary
// once the host's ShouldStop predicate reports true.
type stoppedSignal struct{}

func (s *stoppedSignal) Error() string { return "Program stopped by user." }

var errStopped = &stoppedSignal{}
