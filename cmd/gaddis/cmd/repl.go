package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/SlashZ6/Pseudocode-Interpreter/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Long: `Start an interactive session: enter lines of pseudocode, then an
empty line parses and runs everything entered so far against a fresh
global environment.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.Run(os.Stdout, useColor(cmd))
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
