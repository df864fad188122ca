package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gaddis",
	Short: "Gaddis-style pseudocode interpreter",
	Long: `gaddis is a toolchain for the small Gaddis-style pseudocode language
used to teach introductory programming: Modules, Functions, Declare/Constant,
Display/Input, If/While/Do/For, and a handful of built-in functions.

It can run a program to completion, step through it statement by statement
under debugger control, reindent its source, dump its token stream, or
extract a flowchart graph.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored diagnostics")
}

func useColor(cmd *cobra.Command) bool {
	noColor, _ := cmd.Flags().GetBool("no-color")
	return !noColor
}

func readSource(args []string) (source, name string, err error) {
	if len(args) == 0 {
		return "", "", fmt.Errorf("a source file is required")
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	return string(content), args[0], nil
}
