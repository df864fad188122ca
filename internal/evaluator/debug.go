package evaluator

import (
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/ast"
	cerrors "github.com/SlashZ6/Pseudocode-Interpreter/internal/errors"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/runtime"
)

// StepIterator drives stepwise execution of a program: one call to Next
// runs exactly one statement boundary forward and reports the Step that
// was about to execute. The underlying program runs on its own goroutine
// and blocks between statements until Next is called again, giving a
// precise rendezvous the driver controls.
type StepIterator struct {
	steps  chan Step
	resume chan struct{}
	done   chan *cerrors.CompilerError
	err    *cerrors.CompilerError
	closed bool
}

// Debug prepares prog for stepwise execution. Call Next repeatedly to
// advance; draining the iterator to exhaustion produces the same Display
// sequence as Run.
func Debug(prog *ast.Program, host Host) *StepIterator {
	e := New(host)
	it := &StepIterator{
		steps:  make(chan Step),
		resume: make(chan struct{}),
		done:   make(chan *cerrors.CompilerError, 1),
	}
	e.stepSink = func(line int, env *runtime.Environment) *cerrors.CompilerError {
		it.steps <- Step{Line: line, Scope: env.Serialize()}
		<-it.resume
		return nil
	}
	go func() {
		it.done <- e.run(prog)
		close(it.steps)
	}()
	return it
}

// Next blocks until the next step point is reached (returning it) or the
// program finishes (ok=false, with Err holding any execution error).
func (it *StepIterator) Next() (step Step, ok bool) {
	if it.closed {
		return Step{}, false
	}
	step, ok = <-it.steps
	if !ok {
		it.closed = true
		it.err = <-it.done
		return Step{}, false
	}
	return step, true
}

// Resume lets the paused program proceed to its next step point; call
// this after consuming the Step returned by Next.
func (it *StepIterator) Resume() {
	if !it.closed {
		it.resume <- struct{}{}
	}
}

// Err returns the execution error, if any, once the iterator is exhausted
// (Next returned ok=false).
func (it *StepIterator) Err() *cerrors.CompilerError {
	return it.err
}

// Drain runs the program to completion by repeatedly calling Next/Resume,
// discarding intermediate steps, and returns the final error.
func (it *StepIterator) Drain() *cerrors.CompilerError {
	for {
		if _, ok := it.Next(); !ok {
			return it.Err()
		}
		it.Resume()
	}
}
