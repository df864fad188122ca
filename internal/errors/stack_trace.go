package errors

import (
	"fmt"
	"strings"
)

// StackFrame is a single call-stack entry: the subroutine being executed
// and the line it was entered from.
type StackFrame struct {
	FunctionName string
	Line         int
}

func (sf StackFrame) String() string {
	if sf.Line == 0 {
		return sf.FunctionName
	}
	return fmt.Sprintf("%s [line %d]", sf.FunctionName, sf.Line)
}

// StackTrace is a call stack, ordered oldest (bottom) to newest (top).
type StackTrace []StackFrame

// String renders the trace most-recent-call-first, one frame per line.
func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(st) - 1; i >= 0; i-- {
		sb.WriteString(st[i].String())
		if i > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Push returns a new trace with frame appended on top.
func (st StackTrace) Push(frame StackFrame) StackTrace {
	next := make(StackTrace, len(st)+1)
	copy(next, st)
	next[len(st)] = frame
	return next
}

// Top returns the most recent frame, or nil if the trace is empty.
func (st StackTrace) Top() *StackFrame {
	if len(st) == 0 {
		return nil
	}
	return &st[len(st)-1]
}

// Depth returns the number of frames.
func (st StackTrace) Depth() int {
	return len(st)
}
