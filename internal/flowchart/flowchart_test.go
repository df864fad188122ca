package flowchart_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SlashZ6/Pseudocode-Interpreter/internal/flowchart"
	"github.com/SlashZ6/Pseudocode-Interpreter/internal/parser"
)

func countKinds(g *flowchart.Graph) map[flowchart.NodeKind]int {
	counts := make(map[flowchart.NodeKind]int)
	for _, n := range g.Nodes {
		counts[n.Kind]++
	}
	return counts
}

func TestFlowchartHelloModuleHasStartEndAndIO(t *testing.T) {
	prog, err := parser.Parse(`Module main() Display "Hello, World!" End Module`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	g := flowchart.Build(prog)
	counts := countKinds(g)
	if counts[flowchart.Start] != 1 || counts[flowchart.End] != 1 || counts[flowchart.IO] != 1 {
		t.Fatalf("counts = %v", counts)
	}
}

func TestFlowchartHelloModuleGraphShape(t *testing.T) {
	prog, err := parser.Parse(`Module main() Display "Hello, World!" End Module`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	got := flowchart.Build(prog)
	want := &flowchart.Graph{
		Nodes: []flowchart.Node{
			{ID: "n1", Kind: flowchart.Start, Label: "Start main", WidthHint: 100, HeightHint: 50},
			{ID: "n2", Kind: flowchart.End, Label: "End main", WidthHint: 100, HeightHint: 50},
			{ID: "n3", Kind: flowchart.IO, Label: `Display "Hello, World!"`, WidthHint: 130, HeightHint: 60},
		},
		Edges: []flowchart.Edge{
			{From: "n1", To: "n3"},
			{From: "n3", To: "n2"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("graph mismatch (-want +got):\n%s", diff)
	}
}

func TestFlowchartIfProducesDecisionAndMerge(t *testing.T) {
	prog, err := parser.Parse(`
Module main()
	Declare Integer x = 1
	If x > 0 Then
		Display "pos"
	Else
		Display "nonpos"
	End If
End Module`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	g := flowchart.Build(prog)
	counts := countKinds(g)
	if counts[flowchart.Decision] != 1 {
		t.Fatalf("expected exactly one decision node, got %d", counts[flowchart.Decision])
	}

	var trueEdges, falseEdges int
	for _, e := range g.Edges {
		switch e.Label {
		case "true":
			trueEdges++
		case "false":
			falseEdges++
		}
	}
	if trueEdges != 1 || falseEdges != 1 {
		t.Fatalf("expected one true and one false edge out of the decision, got true=%d false=%d", trueEdges, falseEdges)
	}
}

func TestFlowchartFunctionReturnConnectsToEnd(t *testing.T) {
	prog, err := parser.Parse(`Function Integer f(Integer n) Return n End Function`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	g := flowchart.Build(prog)

	var endID string
	for _, n := range g.Nodes {
		if n.Kind == flowchart.End {
			endID = n.ID
		}
	}
	if endID == "" {
		t.Fatalf("expected an End node")
	}
	found := false
	for _, e := range g.Edges {
		if e.To == endID {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an edge into the End node from the Return's process node")
	}
}

func TestFlowchartForLoopBacksEdgeToDecision(t *testing.T) {
	prog, err := parser.Parse(`
Module main()
	Declare Integer i
	For i = 1 To 3
		Display i
	End For
End Module`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	g := flowchart.Build(prog)
	counts := countKinds(g)
	if counts[flowchart.Decision] != 1 {
		t.Fatalf("expected one decision node for the loop test, got %d", counts[flowchart.Decision])
	}

	var decisionID, incrID string
	for _, n := range g.Nodes {
		switch {
		case n.Kind == flowchart.Decision:
			decisionID = n.ID
		case n.Label == "Set i = i + 1":
			incrID = n.ID
		}
	}
	backEdge := false
	for _, e := range g.Edges {
		if e.From == incrID && e.To == decisionID {
			backEdge = true
		}
	}
	if incrID == "" || !backEdge {
		t.Fatalf("expected an edge from the increment node back to the decision, edges: %v", g.Edges)
	}
}
