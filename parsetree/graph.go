package parsetree

import (
	"fmt"
	"strings"

	"github.com/reusee/minic/tokens"
)

const RootLabel = "Program"

type NodeID string

type Node struct {
	ID    NodeID
	Label string
}

type Edge struct {
	From NodeID
	To   NodeID
}

// Graph is the flat token-stream tree: one root with one child per token.
type Graph struct {
	Direction Direction
	Root      NodeID
	Nodes     []Node
	Edges     []Edge

	nextID int
}

type Direction string

const (
	TopDown   Direction = "TD"
	LeftRight Direction = "LR"
	BottomUp  Direction = "BT"
	RightLeft Direction = "RL"
)

func (d Direction) Valid() bool {
	switch d {
	case TopDown, LeftRight, BottomUp, RightLeft:
		return true
	}
	return false
}

func (g *Graph) newNode(label string) NodeID {
	id := NodeID(fmt.Sprintf("N%d", g.nextID))
	g.nextID++
	g.Nodes = append(g.Nodes, Node{
		ID:    id,
		Label: label,
	})
	return id
}

// Export builds the graph for toks. Node ids are N0 for the root then N1.. in token order.
func Export(toks []tokens.Token) *Graph {
	g := &Graph{
		Direction: TopDown,
	}
	g.Root = g.newNode(RootLabel)
	for _, tok := range toks {
		child := g.newNode(tok.Text)
		g.Edges = append(g.Edges, Edge{
			From: g.Root,
			To:   child,
		})
	}
	return g
}

// Children returns the nodes with an edge from id, in edge order.
func (g *Graph) Children(id NodeID) []Node {
	byID := make(map[NodeID]Node, len(g.Nodes))
	for _, node := range g.Nodes {
		byID[node.ID] = node
	}
	var ret []Node
	for _, edge := range g.Edges {
		if edge.From == id {
			ret = append(ret, byID[edge.To])
		}
	}
	return ret
}

// String renders a mermaid flowchart. Labels are quoted so delimiter lexemes stay literal.
func (g *Graph) String() string {
	var b strings.Builder
	direction := g.Direction
	if !direction.Valid() {
		direction = TopDown
	}
	fmt.Fprintf(&b, "graph %s\n", direction)

	labels := make(map[NodeID]string, len(g.Nodes))
	for _, node := range g.Nodes {
		labels[node.ID] = node.Label
	}
	fmt.Fprintf(&b, "%s[%q]\n", g.Root, labels[g.Root])
	for _, edge := range g.Edges {
		fmt.Fprintf(&b, "%s[%q]\n", edge.To, labels[edge.To])
		fmt.Fprintf(&b, "%s --> %s\n", edge.From, edge.To)
	}
	return b.String()
}
