// Package flowchart walks a parsed program and extracts a shape-typed
// node/edge graph suitable for external graphical layout.
package flowchart

import (
	"fmt"
	"strings"

	"github.com/SlashZ6/Pseudocode-Interpreter/internal/ast"
)

// NodeKind is the shape a flowchart node is rendered with.
type NodeKind int

const (
	Start NodeKind = iota
	End
	Process
	IO
	Decision
)

func (k NodeKind) String() string {
	switch k {
	case Start:
		return "start"
	case End:
		return "end"
	case Process:
		return "process"
	case IO:
		return "io"
	case Decision:
		return "decision"
	default:
		return "unknown"
	}
}

// Node is one shape in the flowchart graph, with advisory sizing hints
// for an external layout engine.
type Node struct {
	ID        string
	Kind      NodeKind
	Label     string
	WidthHint int
	HeightHint int
}

// Edge connects two nodes, with an optional label (e.g. "true"/"false").
type Edge struct {
	From  string
	To    string
	Label string
}

// Graph is the full extracted flowchart.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Extractor builds a Graph from an ast.Program by walking it once.
type Extractor struct {
	graph      Graph
	nextID     int
	currentEnd string // the node a Return statement should connect to
}

// Build extracts the flowchart graph for prog: each module and function
// produces its own independent Start/End subgraph.
func Build(prog *ast.Program) *Graph {
	ex := &Extractor{}
	for _, decl := range prog.Declarations {
		switch d := decl.(type) {
		case *ast.ModuleDeclaration:
			ex.buildSubroutine("", d.Name, d.Body)
		case *ast.FunctionDeclaration:
			ex.buildSubroutine("Function ", d.Name, d.Body)
		}
	}
	if top := topLevelNonDeclarations(prog); len(top) > 0 {
		ex.buildSubroutine("", "Program", top)
	}
	return &ex.graph
}

// topLevelNonDeclarations collects any top-level statements that are not
// module or function declarations, for module-free scripts.
func topLevelNonDeclarations(prog *ast.Program) []ast.Statement {
	var stmts []ast.Statement
	for _, decl := range prog.Declarations {
		switch decl.(type) {
		case *ast.ModuleDeclaration, *ast.FunctionDeclaration:
			continue
		default:
			stmts = append(stmts, decl)
		}
	}
	return stmts
}

func (ex *Extractor) newID() string {
	ex.nextID++
	return fmt.Sprintf("n%d", ex.nextID)
}

func (ex *Extractor) addNode(kind NodeKind, label string) string {
	id := ex.newID()
	w, h := 120, 60
	switch kind {
	case Decision:
		w, h = 140, 90
	case IO:
		w, h = 130, 60
	case Start, End:
		w, h = 100, 50
	}
	ex.graph.Nodes = append(ex.graph.Nodes, Node{ID: id, Kind: kind, Label: label, WidthHint: w, HeightHint: h})
	return id
}

// addDummyNode adds a near-zero-size process node used purely to merge
// control-flow branches back into a single successor, preserving graph
// topology without implying a visible shape.
func (ex *Extractor) addDummyNode() string {
	id := ex.newID()
	ex.graph.Nodes = append(ex.graph.Nodes, Node{ID: id, Kind: Process, Label: "", WidthHint: 0, HeightHint: 0})
	return id
}

func (ex *Extractor) addEdge(from, to, label string) {
	ex.graph.Edges = append(ex.graph.Edges, Edge{From: from, To: to, Label: label})
}

func (ex *Extractor) buildSubroutine(prefix, name string, body []ast.Statement) {
	startID := ex.addNode(Start, "Start "+prefix+name)
	endID := ex.addNode(End, "End "+prefix+name)

	prevEnd := ex.currentEnd
	ex.currentEnd = endID
	defer func() { ex.currentEnd = prevEnd }()

	last := ex.buildBlock(startID, body)
	ex.addEdge(last, endID, "")
}

// buildBlock wires each statement in stmts in sequence, starting from the
// given entry node, and returns the node that should connect to whatever
// follows the block.
func (ex *Extractor) buildBlock(entry string, stmts []ast.Statement) string {
	current := entry
	for _, stmt := range stmts {
		current = ex.buildStatement(current, stmt)
	}
	return current
}

func (ex *Extractor) buildStatement(entry string, stmt ast.Statement) string {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		return ex.process(entry, declLabel(s))
	case *ast.Assignment:
		return ex.process(entry, renderExpr(s.LValue)+" = "+renderExpr(s.RHS))
	case *ast.CallStatement:
		return ex.process(entry, "Call "+s.Name+"("+renderArgs(s.Args)+")")
	case *ast.DisplayStatement:
		return ex.io(entry, "Display "+renderDisplayItems(s.Items))
	case *ast.InputStatement:
		return ex.io(entry, "Input "+s.Identifier)
	case *ast.IfStatement:
		return ex.buildIf(entry, s)
	case *ast.WhileStatement:
		return ex.buildWhile(entry, s)
	case *ast.DoWhileStatement:
		return ex.buildDoLoop(entry, s.Body, s.Condition, true)
	case *ast.DoUntilStatement:
		return ex.buildDoLoop(entry, s.Body, s.Condition, false)
	case *ast.ForStatement:
		return ex.buildFor(entry, s)
	case *ast.ReturnStatement:
		retID := ex.addNode(Process, "Return "+renderExpr(s.Expr))
		ex.addEdge(entry, retID, "")
		ex.addEdge(retID, ex.currentEnd, "")
		deadEnd := ex.addDummyNode()
		return deadEnd
	default:
		return entry
	}
}

func (ex *Extractor) process(entry, label string) string {
	id := ex.addNode(Process, label)
	ex.addEdge(entry, id, "")
	return id
}

func (ex *Extractor) io(entry, label string) string {
	id := ex.addNode(IO, label)
	ex.addEdge(entry, id, "")
	return id
}

func (ex *Extractor) buildIf(entry string, s *ast.IfStatement) string {
	decision := ex.addNode(Decision, renderExpr(s.Condition))
	ex.addEdge(entry, decision, "")

	merge := ex.addDummyNode()

	thenEnd := ex.buildBlock(decision, s.ThenBody)
	ex.labelLastEdgeFrom(decision, "true")
	ex.addEdge(thenEnd, merge, "")

	if len(s.ElseBody) > 0 {
		elseEnd := ex.buildBlock(decision, s.ElseBody)
		ex.labelLastEdgeFrom(decision, "false")
		ex.addEdge(elseEnd, merge, "")
	} else {
		ex.addEdge(decision, merge, "false")
	}
	return merge
}

func (ex *Extractor) buildWhile(entry string, s *ast.WhileStatement) string {
	decision := ex.addNode(Decision, renderExpr(s.Condition))
	ex.addEdge(entry, decision, "")

	bodyEnd := ex.buildBlock(decision, s.Body)
	ex.labelLastEdgeFrom(decision, "true")
	ex.addEdge(bodyEnd, decision, "")

	exitNode := ex.addDummyNode()
	ex.addEdge(decision, exitNode, "false")
	return exitNode
}

func (ex *Extractor) buildDoLoop(entry string, body []ast.Statement, cond ast.Expression, isWhile bool) string {
	dummyStart := ex.addDummyNode()
	ex.addEdge(entry, dummyStart, "")

	bodyEnd := ex.buildBlock(dummyStart, body)
	decision := ex.addNode(Decision, renderExpr(cond))
	ex.addEdge(bodyEnd, decision, "")

	repeatLabel, exitLabel := "true", "false"
	if !isWhile {
		repeatLabel, exitLabel = "false", "true"
	}
	ex.addEdge(decision, dummyStart, repeatLabel)
	exitNode := ex.addDummyNode()
	ex.addEdge(decision, exitNode, exitLabel)
	return exitNode
}

func (ex *Extractor) buildFor(entry string, s *ast.ForStatement) string {
	initID := ex.addNode(Process, fmt.Sprintf("Set %s = %s", s.Counter, renderExpr(s.Start)))
	ex.addEdge(entry, initID, "")

	decision := ex.addNode(Decision, fmt.Sprintf("%s <= %s", s.Counter, renderExpr(s.End)))
	ex.addEdge(initID, decision, "")

	bodyEnd := ex.buildBlock(decision, s.Body)
	ex.labelLastEdgeFrom(decision, "true")

	incrID := ex.addNode(Process, fmt.Sprintf("Set %s = %s + 1", s.Counter, s.Counter))
	ex.addEdge(bodyEnd, incrID, "")
	ex.addEdge(incrID, decision, "")

	exitNode := ex.addDummyNode()
	ex.addEdge(decision, exitNode, "false")
	return exitNode
}

func (ex *Extractor) labelLastEdgeFrom(from, label string) {
	for i := len(ex.graph.Edges) - 1; i >= 0; i-- {
		if ex.graph.Edges[i].From == from {
			ex.graph.Edges[i].Label = label
			return
		}
	}
}

func declLabel(s *ast.VariableDeclaration) string {
	kind := "Declare"
	if s.IsConstant {
		kind = "Constant"
	}
	names := make([]string, len(s.Declarators))
	for i, d := range s.Declarators {
		names[i] = d.Identifier
	}
	return kind + " " + s.DataType.String() + " " + strings.Join(names, ", ")
}

func renderArgs(args []ast.Expression) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = renderExpr(a)
	}
	return strings.Join(parts, ", ")
}

func renderDisplayItems(items []ast.DisplayItem) string {
	parts := make([]string, len(items))
	for i, it := range items {
		if it.IsTap {
			parts[i] = "Tap"
		} else {
			parts[i] = renderExpr(it.Expr)
		}
	}
	return strings.Join(parts, ", ")
}

// renderExpr mirrors the source syntax closely enough for a readable
// flowchart label: infix operators, call syntax, bracketed indexing.
func renderExpr(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return e.Text
	case *ast.StringLiteral:
		return `"` + e.Value + `"`
	case *ast.Identifier:
		return e.Name
	case *ast.ArrayLiteral:
		return renderArgs(e.Elements)
	case *ast.ArrayAccess:
		return renderExpr(e.Array) + "[" + renderExpr(e.Index) + "]"
	case *ast.Grouping:
		return "(" + renderExpr(e.Inner) + ")"
	case *ast.Unary:
		return unaryOpText(e.Op) + renderExpr(e.Right)
	case *ast.Binary:
		return renderExpr(e.Left) + " " + binaryOpText(e.Op) + " " + renderExpr(e.Right)
	case *ast.FunctionCall:
		return e.Callee + "(" + renderArgs(e.Args) + ")"
	default:
		return ""
	}
}

func unaryOpText(op ast.UnaryOp) string {
	if op == ast.UnaryNot {
		return "Not "
	}
	return "-"
}

func binaryOpText(op ast.BinaryOp) string {
	switch op {
	case ast.BinAdd:
		return "+"
	case ast.BinSub:
		return "-"
	case ast.BinMul:
		return "*"
	case ast.BinDiv:
		return "/"
	case ast.BinMod:
		return "Mod"
	case ast.BinEqual:
		return "=="
	case ast.BinNotEqual:
		return "!="
	case ast.BinLess:
		return "<"
	case ast.BinLessEqual:
		return "<="
	case ast.BinGreater:
		return ">"
	case ast.BinGreaterEqual:
		return ">="
	case ast.BinAnd:
		return "And"
	default:
		return "Or"
	}
}
