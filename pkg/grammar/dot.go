/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dot.go
Description: Graphviz DOT export for grammars. Right-linear alternatives become labelled
edges between nonterminals; anything else is drawn as an edge to a shared ACCEPT node
carrying the whole alternative as its label.
*/

package grammar

import (
	"fmt"
	"io"
	"strings"
)

// WriteDOT writes g as a Graphviz digraph
func WriteDOT(dst io.Writer, g *Grammar, title string) error {
	var b strings.Builder
	b.WriteString("digraph Grammar {\n\trankdir=LR;\n\tnode [shape=circle];\n\tACCEPT [shape=doublecircle];\n")
	fmt.Fprintf(&b, "\tstart [shape=point];\n\tstart -> %q;\n", g.Start.String())
	for _, p := range g.Productions {
		from := p.LHS.String()
		fmt.Fprintf(&b, "\t%q;\n", from)
		for _, alt := range p.Alternatives {
			n := len(alt)
			switch {
			case alt.IsEmpty():
				fmt.Fprintf(&b, "\t%q -> ACCEPT [label=%q];\n", from, "ε")
			case alt[n-1].IsNonterminal():
				label := alt[:n-1].String()
				fmt.Fprintf(&b, "\t%q -> %q [label=%q];\n", from, alt[n-1].String(), label)
			default:
				fmt.Fprintf(&b, "\t%q -> ACCEPT [label=%q];\n", from, alt.String())
			}
		}
	}
	fmt.Fprintf(&b, "\tlabelloc=\"t\";\n\tlabel=%q;\n}\n", title)
	_, err := io.WriteString(dst, b.String())
	return err
}
