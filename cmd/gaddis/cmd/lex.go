package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SlashZ6/Pseudocode-Interpreter/internal/lexer"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/token"
)

var lexShowLine bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a pseudocode file and print the resulting tokens",
	Long: `Tokenize (lex) a pseudocode program and print the resulting token
stream. Useful for debugging the lexer and understanding how multi-word
keywords and case folding are scanned.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&lexShowLine, "show-line", false, "show the source line each token started on")
}

func runLex(cmd *cobra.Command, args []string) error {
	source, name, err := readSource(args)
	if err != nil {
		return err
	}

	toks, lexErr := lexer.Tokenize(source)
	for _, tok := range toks {
		printToken(tok)
		if tok.Type == token.EOF {
			break
		}
	}
	if lexErr != nil {
		fmt.Fprintln(os.Stderr, lexErr.WithSource(name, source).Format(useColor(cmd)))
		return fmt.Errorf("lexing failed")
	}
	return nil
}

func printToken(tok token.Token) {
	if lexShowLine {
		fmt.Printf("[%-12s] %-20q @%d\n", tok.Type, tok.Lexeme, tok.Line)
		return
	}
	fmt.Printf("[%-12s] %q\n", tok.Type, tok.Lexeme)
}
