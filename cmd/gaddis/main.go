// Command gaddis is the command-line front-end for the pseudocode
// toolchain: it runs, debugs, formats, tokenizes, and extracts flowcharts
// from programs written in the language.
package main

import (
	"os"

	"github.com/SlashZ6/Pseudocode-Interpreter/cmd/gaddis/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
