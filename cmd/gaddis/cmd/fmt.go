package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SlashZ6/Pseudocode-Interpreter/internal/format"
)

var (
	fmtWrite bool
	fmtList  bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Reindent a pseudocode source file by its structural keywords",
	Long: `Format reindents pseudocode source line by line: each trimmed line is
re-prefixed with indentLevel * 3 spaces, stepping the level at every
Module/Function/If/Do/While/For/Else/End keyword.

By default the formatted text is written to standard output.

Examples:
  gaddis fmt hello.pseudo
  gaddis fmt -w hello.pseudo
  gaddis fmt -l hello.pseudo`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write the formatted result back to the file")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list the file if formatting would change it")
}

func runFmt(cmd *cobra.Command, args []string) error {
	source, name, err := readSource(args)
	if err != nil {
		return err
	}

	formatted := format.Format(source)

	switch {
	case fmtList:
		if formatted != source {
			fmt.Println(name)
		}
	case fmtWrite:
		if formatted != source {
			if err := os.WriteFile(name, []byte(formatted), 0o644); err != nil {
				return fmt.Errorf("error writing file: %w", err)
			}
		}
	default:
		fmt.Print(formatted)
	}
	return nil
}
