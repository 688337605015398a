/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: nfa.go
Description: Nondeterministic finite automata for the Chomsky toolkit. Provides the state
allocator threaded through every construction, an incremental builder, and the frozen NFA
value with epsilon-closure and move primitives used by subset construction.
*/

package automata

import (
	"strconv"
	"strings"

	"github.com/kleascm/chomsky-toolkit/pkg/symbols"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// State is an opaque identifier, unique within one construction session
type State int

// Allocator hands out state identifiers in allocation order. One allocator belongs to
// one construction; two compilations never share one.
type Allocator struct {
	next State
}

// NewAllocator creates an allocator whose first state is 0
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns a fresh state
func (a *Allocator) Next() State {
	s := a.next
	a.next++
	return s
}

// Count returns how many states have been allocated
func (a *Allocator) Count() int {
	return int(a.next)
}

// NFABuilder accumulates transitions while an NFA is under construction
type NFABuilder struct {
	alloc *Allocator
	edges map[State]map[symbols.Symbol]map[State]struct{}
}

// NewNFABuilder creates a builder drawing states from alloc
func NewNFABuilder(alloc *Allocator) *NFABuilder {
	return &NFABuilder{
		alloc: alloc,
		edges: make(map[State]map[symbols.Symbol]map[State]struct{}),
	}
}

// NewState allocates a state
func (b *NFABuilder) NewState() State {
	return b.alloc.Next()
}

// AddEdge records from --label--> to. label must be a terminal or epsilon.
func (b *NFABuilder) AddEdge(from State, label symbols.Symbol, to State) {
	byLabel, ok := b.edges[from]
	if !ok {
		byLabel = make(map[symbols.Symbol]map[State]struct{})
		b.edges[from] = byLabel
	}
	targets, ok := byLabel[label]
	if !ok {
		targets = make(map[State]struct{})
		byLabel[label] = targets
	}
	targets[to] = struct{}{}
}

// AddEpsilon records an epsilon edge
func (b *NFABuilder) AddEpsilon(from, to State) {
	b.AddEdge(from, symbols.Epsilon, to)
}

// Build freezes the builder into an NFA. The builder must not be used afterwards.
func (b *NFABuilder) Build(start State, accepts ...State) *NFA {
	n := &NFA{
		Start:   start,
		accepts: make(map[State]bool, len(accepts)),
		edges:   make(map[State]map[symbols.Symbol][]State, len(b.edges)),
		states:  b.alloc.Count(),
	}
	for _, a := range accepts {
		n.accepts[a] = true
	}
	for from, byLabel := range b.edges {
		frozen := make(map[symbols.Symbol][]State, len(byLabel))
		for label, targets := range byLabel {
			list := maps.Keys(targets)
			slices.Sort(list)
			frozen[label] = list
		}
		n.edges[from] = frozen
	}
	b.edges = nil
	return n
}

// NFA is an immutable nondeterministic automaton. Transitions may fan out and
// epsilon edges are allowed.
type NFA struct {
	Start   State
	accepts map[State]bool
	edges   map[State]map[symbols.Symbol][]State
	states  int
}

// NumStates returns the number of states allocated while building the automaton
func (n *NFA) NumStates() int {
	return n.states
}

// Accepts returns the accepting states in ascending order
func (n *NFA) Accepts() []State {
	out := maps.Keys(n.accepts)
	slices.Sort(out)
	return out
}

// IsAccepting reports whether s is an accepting state
func (n *NFA) IsAccepting(s State) bool {
	return n.accepts[s]
}

// Targets returns the states reachable from s over label, in ascending order
func (n *NFA) Targets(s State, label symbols.Symbol) []State {
	return n.edges[s][label]
}

// Alphabet returns the non-epsilon labels used by the automaton, sorted
func (n *NFA) Alphabet() []symbols.Symbol {
	seen := make(map[symbols.Symbol]struct{})
	for _, byLabel := range n.edges {
		for label := range byLabel {
			if !label.IsEpsilon() {
				seen[label] = struct{}{}
			}
		}
	}
	out := maps.Keys(seen)
	slices.SortFunc(out, symbols.Less)
	return out
}

// Closure returns the epsilon-closure of set, sorted and deduplicated
func (n *NFA) Closure(set []State) []State {
	in := make(map[State]bool, len(set))
	stack := make([]State, 0, len(set))
	for _, s := range set {
		if !in[s] {
			in[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.edges[top][symbols.Epsilon] {
			if !in[t] {
				in[t] = true
				stack = append(stack, t)
			}
		}
	}
	out := maps.Keys(in)
	slices.Sort(out)
	return out
}

// Move returns the states reachable from set by exactly one edge labelled sym
func (n *NFA) Move(set []State, sym symbols.Symbol) []State {
	seen := make(map[State]bool)
	for _, s := range set {
		for _, t := range n.edges[s][sym] {
			seen[t] = true
		}
	}
	out := maps.Keys(seen)
	slices.Sort(out)
	return out
}

// AcceptsWord simulates the automaton on word, one rune per terminal
func (n *NFA) AcceptsWord(word string) bool {
	current := n.Closure([]State{n.Start})
	for _, r := range word {
		current = n.Closure(n.Move(current, symbols.TerminalRune(r)))
		if len(current) == 0 {
			return false
		}
	}
	for _, s := range current {
		if n.accepts[s] {
			return true
		}
	}
	return false
}

// String renders every transition, one per line, in state then label order
func (n *NFA) String() string {
	var b strings.Builder
	b.WriteString("start " + strconv.Itoa(int(n.Start)) + "\n")
	b.WriteString("accept " + joinStates(n.Accepts()) + "\n")
	froms := maps.Keys(n.edges)
	slices.Sort(froms)
	for _, from := range froms {
		labels := maps.Keys(n.edges[from])
		slices.SortFunc(labels, symbols.Less)
		for _, label := range labels {
			b.WriteString(strconv.Itoa(int(from)) + " " + label.String() + " -> " + joinStates(n.edges[from][label]) + "\n")
		}
	}
	return b.String()
}

// joinStates renders a sorted state set as a canonical key, e.g. "0,3,5"
func joinStates(set []State) string {
	parts := make([]string, len(set))
	for i, s := range set {
		parts[i] = strconv.Itoa(int(s))
	}
	return strings.Join(parts, ",")
}
