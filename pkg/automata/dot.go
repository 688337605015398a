/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dot.go
Description: Graphviz DOT export for finite automata. Produces text only; turning the
graph into an image is left to the dot tool.
*/

package automata

import (
	"fmt"
	"io"
	"strings"

	"github.com/kleascm/chomsky-toolkit/pkg/symbols"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type dotGraph struct {
	nodes []string
	edges []string
}

func (g *dotGraph) addNode(id State, start, accept bool) {
	shape := "circle"
	if accept {
		shape = "doublecircle"
	}
	g.nodes = append(g.nodes, fmt.Sprintf("\ts%d [shape=%s];\n", id, shape))
	if start {
		g.nodes = append(g.nodes, fmt.Sprintf("\tstart -> s%d;\n", id))
	}
}

func (g *dotGraph) addEdge(from, to State, label string) {
	g.edges = append(g.edges, fmt.Sprintf("\ts%d -> s%d [label=\"%s\"];\n", from, to, label))
}

func (g *dotGraph) write(dst io.Writer, name, title string) error {
	if _, err := fmt.Fprintf(dst, "digraph %s {\n\trankdir=LR;\n\tstart [shape=point];\n", name); err != nil {
		return err
	}
	for _, s := range g.nodes {
		if _, err := fmt.Fprint(dst, s); err != nil {
			return err
		}
	}
	for _, s := range g.edges {
		if _, err := fmt.Fprint(dst, s); err != nil {
			return err
		}
	}
	title = strings.ReplaceAll(title, `\`, `\\`)
	title = strings.ReplaceAll(title, `"`, `\"`)
	_, err := fmt.Fprintf(dst, "\tlabelloc=\"t\";\n\tlabel=\"%s\";\n}\n", title)
	return err
}

// WriteDFADOT writes d as a Graphviz digraph
func WriteDFADOT(dst io.Writer, d *DFA, title string) error {
	g := &dotGraph{}
	for _, s := range d.States() {
		g.addNode(s, s == d.Start, d.IsAccepting(s))
	}
	for _, t := range d.Transitions() {
		g.addEdge(t.From, t.To, t.Symbol.String())
	}
	return g.write(dst, "DFA", title)
}

// WriteNFADOT writes n as a Graphviz digraph; epsilon edges are labelled ε
func WriteNFADOT(dst io.Writer, n *NFA, title string) error {
	g := &dotGraph{}
	for i := 0; i < n.NumStates(); i++ {
		s := State(i)
		g.addNode(s, s == n.Start, n.IsAccepting(s))
	}
	froms := maps.Keys(n.edges)
	slices.Sort(froms)
	for _, from := range froms {
		labels := maps.Keys(n.edges[from])
		slices.SortFunc(labels, symbols.Less)
		for _, label := range labels {
			for _, to := range n.edges[from][label] {
				g.addEdge(from, to, label.String())
			}
		}
	}
	return g.write(dst, "NFA", title)
}
