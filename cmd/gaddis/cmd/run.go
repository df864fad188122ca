package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SlashZ6/Pseudocode-Interpreter/internal/evaluator"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/host"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/parser"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a pseudocode program to completion",
	Long: `Execute a pseudocode program from a file, exchanging Display/Input
with the terminal until the program finishes or is interrupted (Ctrl-C).

Examples:
  gaddis run hello.pseudo
  gaddis run --no-color hello.pseudo`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
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

	if err := evaluator.Run(prog, stdioHost); err != nil {
		fmt.Fprintln(os.Stderr, err.WithSource(name, source).Format(useColor(cmd)))
		return fmt.Errorf("execution failed")
	}
	return nil
}
