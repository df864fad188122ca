// Package repl provides an interactive accumulate-then-run driver for the
// pseudocode language: a learner enters lines of source, and a blank line
// parses and runs everything entered so far.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	cerrors "github.com/SlashZ6/Pseudocode-Interpreter/internal/errors"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/evaluator"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/host"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/parser"
)

// Run starts the interactive loop on stdio, reading until EOF (Ctrl-D) or
// an explicit ":quit".
func Run(out io.Writer, useColor bool) error {
	rl, err := readline.New("gaddis> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	stdioHost := host.NewStdio()
	stdioHost.Out = out

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return nil
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == ":quit" {
			return nil
		}
		if trimmed == "" {
			source := buf.String()
			buf.Reset()
			if strings.TrimSpace(source) == "" {
				continue
			}
			runSnippet(out, source, stdioHost, useColor)
			continue
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
}

func runSnippet(out io.Writer, source string, h *host.Stdio, useColor bool) {
	prog, perr := parser.Parse(source)
	if perr != nil {
		fmt.Fprintln(out, perr.WithSource("", source).Format(useColor))
		return
	}
	if err := evaluator.Run(prog, h); err != nil {
		printErr(out, err, useColor)
	}
}

func printErr(out io.Writer, err *cerrors.CompilerError, useColor bool) {
	fmt.Fprintln(out, err.Format(useColor))
}
