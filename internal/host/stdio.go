// Package host provides a concrete evaluator.Host backed by process
// stdio, wired to SIGINT for cooperative cancellation.
package host

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/SlashZ6/Pseudocode-Interpreter/internal/runtime"
)

// Stdio is an evaluator.Host that writes Display lines to Out, reads Input
// lines from a buffered In, and reports ShouldStop once Cancel has been
// called (typically from a SIGINT handler).
type Stdio struct {
	In      *bufio.Reader
	Out     io.Writer
	stopped atomic.Bool
}

// NewStdio builds a Stdio host over os.Stdin/os.Stdout.
func NewStdio() *Stdio {
	return &Stdio{In: bufio.NewReader(os.Stdin), Out: os.Stdout}
}

// Cancel requests cooperative cancellation; the evaluator observes it at
// its next ShouldStop poll.
func (s *Stdio) Cancel() {
	s.stopped.Store(true)
}

// Display writes each already-rendered line the evaluator built.
func (s *Stdio) Display(values []runtime.Value) {
	for _, v := range values {
		fmt.Fprintln(s.Out, v.String())
	}
}

// Input reads one line from In. ok is false on EOF or after Cancel.
func (s *Stdio) Input(prompt string) (string, bool) {
	if s.stopped.Load() {
		return "", false
	}
	if prompt != "" {
		fmt.Fprint(s.Out, prompt)
	}
	line, err := s.In.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return trimNewline(line), true
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// ShouldStop reports whether Cancel has been called.
func (s *Stdio) ShouldStop() bool {
	return s.stopped.Load()
}
