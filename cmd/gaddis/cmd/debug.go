package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SlashZ6/Pseudocode-Interpreter/internal/evaluator"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/host"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/parser"
)

var debugAuto bool

var debugCmd = &cobra.Command{
	Use:   "debug [file]",
	Short: "Step through a pseudocode program one statement at a time",
	Long: `Run a pseudocode program under the debugger: before each statement
the active line and the flattened variable scope are printed, then the
command waits for Enter before advancing to the next step.

With --auto, every step is printed without waiting, which drains the
debug iterator the same way a driver would to confirm it reproduces the
run mode's Display sequence.`,
	Args: cobra.ExactArgs(1),
	RunE: runDebug,
}

func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.Flags().BoolVar(&debugAuto, "auto", false, "advance through every step without pausing")
}

func runDebug(cmd *cobra.Command, args []string) error {
	source, name, err := readSource(args)
	if err != nil {
		return err
	}

	prog, perr := parser.Parse(source)
	if perr != nil {
		fmt.Fprintln(os.Stderr, perr.WithSource(name, source).Format(useColor(cmd)))
		return fmt.Errorf("parsing failed")
	}

	stdioHost := host.NewStdio()
	cancelOnInterrupt(stdioHost)

	it := evaluator.Debug(prog, stdioHost)
	for {
		step, ok := it.Next()
		if !ok {
			break
		}
		printStep(step)
		if !debugAuto {
			fmt.Fprint(os.Stderr, "-- press Enter to step --")
			_, _ = stdioHost.In.ReadString('\n')
		}
		it.Resume()
	}

	if err := it.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err.WithSource(name, source).Format(useColor(cmd)))
		return fmt.Errorf("execution failed")
	}
	return nil
}

func printStep(step evaluator.Step) {
	fmt.Fprintf(os.Stderr, "line %d:", step.Line)
	for name, v := range step.Scope {
		fmt.Fprintf(os.Stderr, " %s=%s", name, v.String())
	}
	fmt.Fprintln(os.Stderr)
}
