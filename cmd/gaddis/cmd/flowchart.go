package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SlashZ6/Pseudocode-Interpreter/internal/flowchart"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/parser"
)

var flowchartCmd = &cobra.Command{
	Use:   "flowchart [file]",
	Short: "Extract a flowchart node/edge graph from a pseudocode program",
	Long: `Parse a pseudocode program and emit its flowchart graph as JSON:
shape-typed nodes (start, end, process, io, decision) and the edges
connecting them, one independent subgraph per Module or Function.

Geometry/layout is not part of this toolchain; the output is the graph
topology an external layout engine would consume.`,
	Args: cobra.ExactArgs(1),
	RunE: runFlowchart,
}

func init() {
	rootCmd.AddCommand(flowchartCmd)
}

func runFlowchart(cmd *cobra.Command, args []string) error {
	source, name, err := readSource(args)
	if err != nil {
		return err
	}

	prog, perr := parser.Parse(source)
	if perr != nil {
		fmt.Fprintln(os.Stderr, perr.WithSource(name, source).Format(useColor(cmd)))
		return fmt.Errorf("parsing failed")
	}

	graph := flowchart.Build(prog)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(graph)
}
