/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: synthesis.go
Description: Right-linear grammar synthesis from a DFA. Each state q becomes nonterminal
A<q>, each transition (s, a) -> t becomes A<s> -> a A<t>, and each accepting state gains
A<q> -> ε. The grammar generates exactly the language the DFA accepts.
*/

package synthesis

import (
	"fmt"

	"github.com/kleascm/chomsky-toolkit/pkg/automata"
	"github.com/kleascm/chomsky-toolkit/pkg/grammar"
	"github.com/kleascm/chomsky-toolkit/pkg/symbols"
)

// NameFunc names the nonterminal standing for a DFA state
type NameFunc func(automata.State) string

// DefaultName names state q "A<q>"
func DefaultName(q automata.State) string {
	return fmt.Sprintf("A%d", q)
}

// FromDFA synthesizes the right-linear grammar of d using DefaultName
func FromDFA(d *automata.DFA) *grammar.Grammar {
	return FromDFAWithNames(d, DefaultName)
}

// FromDFAWithNames synthesizes the right-linear grammar of d. Productions are emitted
// state by state in ascending order; within a state, transitions follow the sorted
// alphabet and the epsilon alternative comes last.
func FromDFAWithNames(d *automata.DFA, name NameFunc) *grammar.Grammar {
	nt := func(q automata.State) symbols.Symbol {
		return symbols.Nonterminal(name(q))
	}

	b := grammar.NewBuilder()
	b.SetStart(nt(d.Start))

	// the start state's production comes first so the text form re-parses
	// with the same start symbol
	order := []automata.State{d.Start}
	for _, q := range d.States() {
		if q != d.Start {
			order = append(order, q)
		}
	}

	for _, q := range order {
		lhs := symbols.Sequence{nt(q)}
		for _, sym := range d.Alphabet {
			if t, ok := d.Next(q, sym); ok {
				b.Add(lhs, symbols.Sequence{sym, nt(t)})
			}
		}
		if d.IsAccepting(q) {
			b.Add(lhs, symbols.Sequence{symbols.Epsilon})
		}
	}

	g, err := b.Build()
	if err != nil {
		// only possible for a DFA whose start state neither accepts nor moves
		return &grammar.Grammar{Start: nt(d.Start)}
	}
	return g
}
