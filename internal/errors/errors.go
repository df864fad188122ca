// Package errors models the closed error taxonomy the toolchain can raise,
// and formats them with source-line context the way a diagnostic-minded
// compiler front-end does.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Kind is the closed set of error categories a program can fail with.
type Kind int

const (
	SyntaxError Kind = iota
	SemanticError
	TypeError
	RangeError
	DivisionByZero
	MissingReturn
	Stopped
)

func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case SemanticError:
		return "SemanticError"
	case TypeError:
		return "TypeError"
	case RangeError:
		return "RangeError"
	case DivisionByZero:
		return "DivisionByZero"
	case MissingReturn:
		return "MissingReturn"
	case Stopped:
		return "Stopped"
	default:
		return "Error"
	}
}

// CompilerError is the single error type every package in this module
// raises. It always carries the offending source line; Source/File are
// optional and only populated when the caller wants caret-pointing context.
type CompilerError struct {
	Kind    Kind
	Line    int
	Message string
	Source  string // full source text, for Format's caret context
	File    string
	Trace   StackTrace // call stack active when the error was raised, if any
}

func New(kind Kind, line int, format string, args ...any) *CompilerError {
	return &CompilerError{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}

// WithTrace attaches the call stack active when e was raised and returns e
// for chaining.
func (e *CompilerError) WithTrace(trace StackTrace) *CompilerError {
	e.Trace = trace
	return e
}

func (e *CompilerError) Error() string {
	if e.Kind == Stopped {
		return "Program stopped by user."
	}
	return fmt.Sprintf("Error on line %d: %s", e.Line, e.Message)
}

// WithSource attaches the full source text (for Format's context line) and
// returns e for chaining.
func (e *CompilerError) WithSource(file, source string) *CompilerError {
	e.File = file
	e.Source = source
	return e
}

// Format renders the error as the driver-facing single line required by
// the error-handling contract ("Error on line N: message"), optionally
// followed by a source-context line and a caret, colored when useColor is
// true.
func (e *CompilerError) Format(useColor bool) string {
	var sb strings.Builder
	header := e.Error()
	if useColor && e.Kind != Stopped {
		header = color.New(color.FgRed, color.Bold).Sprint(header)
	}
	sb.WriteString(header)

	if e.Source != "" && e.Line > 0 {
		lines := strings.Split(e.Source, "\n")
		if e.Line-1 < len(lines) {
			srcLine := lines[e.Line-1]
			sb.WriteString("\n  ")
			sb.WriteString(srcLine)
			sb.WriteString("\n  ")
			caret := strings.Repeat(" ", leadingSpaces(srcLine)) + "^"
			if useColor {
				caret = color.New(color.FgYellow).Sprint(caret)
			}
			sb.WriteString(caret)
		}
	}
	if len(e.Trace) > 0 {
		sb.WriteString("\n")
		sb.WriteString(e.Trace.String())
	}
	return sb.String()
}

func leadingSpaces(s string) int {
	n := 0
	for _, r := range s {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}

// FormatErrors joins the Format of each error with a blank line between.
func FormatErrors(errs []*CompilerError, useColor bool) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Format(useColor)
	}
	return strings.Join(parts, "\n\n")
}
