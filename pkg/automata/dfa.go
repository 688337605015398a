/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dfa.go
Description: Deterministic finite automata and subset construction. Every DFA state stands
for a non-empty epsilon-closed set of NFA states; sets are deduplicated through a canonical
sorted key so identical subsets always map to the same state.
*/

package automata

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/dchest/siphash"
	"github.com/kleascm/chomsky-toolkit/pkg/symbols"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// fingerprint keys, fixed so fingerprints are stable across runs
const (
	fingerprintK0 = 0x63686f6d736b7931
	fingerprintK1 = 0x746f6f6c6b697431
)

// DFA is an immutable deterministic automaton. There is at most one transition per
// state and symbol; a missing transition rejects.
type DFA struct {
	Start    State
	Alphabet []symbols.Symbol
	accepts  map[State]bool
	trans    map[State]map[symbols.Symbol]State
	states   int
}

// DFABuilder assembles a DFA from explicit transitions
type DFABuilder struct {
	alloc    *Allocator
	alphabet map[symbols.Symbol]struct{}
	accepts  map[State]bool
	trans    map[State]map[symbols.Symbol]State
}

// NewDFABuilder creates a builder drawing states from alloc
func NewDFABuilder(alloc *Allocator) *DFABuilder {
	return &DFABuilder{
		alloc:    alloc,
		alphabet: make(map[symbols.Symbol]struct{}),
		accepts:  make(map[State]bool),
		trans:    make(map[State]map[symbols.Symbol]State),
	}
}

// NewState allocates a state
func (b *DFABuilder) NewState() State {
	return b.alloc.Next()
}

// AddSymbol extends the alphabet without adding a transition
func (b *DFABuilder) AddSymbol(sym symbols.Symbol) {
	b.alphabet[sym] = struct{}{}
}

// SetAccepting marks s as accepting
func (b *DFABuilder) SetAccepting(s State) {
	b.accepts[s] = true
}

// SetTransition records from --sym--> to, replacing any earlier target
func (b *DFABuilder) SetTransition(from State, sym symbols.Symbol, to State) {
	b.alphabet[sym] = struct{}{}
	row, ok := b.trans[from]
	if !ok {
		row = make(map[symbols.Symbol]State)
		b.trans[from] = row
	}
	row[sym] = to
}

// Build freezes the builder
func (b *DFABuilder) Build(start State) *DFA {
	alphabet := maps.Keys(b.alphabet)
	slices.SortFunc(alphabet, symbols.Less)
	return &DFA{
		Start:    start,
		Alphabet: alphabet,
		accepts:  b.accepts,
		trans:    b.trans,
		states:   b.alloc.Count(),
	}
}

// Determinize converts nfa into an equivalent DFA by subset construction. DFA states
// are numbered from 0 in breadth-first discovery order and symbols are tried in sorted
// order, so the result is identical for identical input. Empty target subsets produce
// no transition rather than a dead state.
func Determinize(nfa *NFA) *DFA {
	alphabet := nfa.Alphabet()
	b := NewDFABuilder(NewAllocator())
	for _, sym := range alphabet {
		b.AddSymbol(sym)
	}

	ids := make(map[string]State)
	var queue [][]State

	startSet := nfa.Closure([]State{nfa.Start})
	start := b.NewState()
	ids[joinStates(startSet)] = start
	queue = append(queue, startSet)

	for len(queue) > 0 {
		set := queue[0]
		queue = queue[1:]
		from := ids[joinStates(set)]

		for _, s := range set {
			if nfa.IsAccepting(s) {
				b.SetAccepting(from)
				break
			}
		}

		for _, sym := range alphabet {
			target := nfa.Closure(nfa.Move(set, sym))
			if len(target) == 0 {
				continue
			}
			key := joinStates(target)
			to, seen := ids[key]
			if !seen {
				to = b.NewState()
				ids[key] = to
				queue = append(queue, target)
			}
			b.SetTransition(from, sym, to)
		}
	}

	return b.Build(start)
}

// NumStates returns the number of DFA states
func (d *DFA) NumStates() int {
	return d.states
}

// States returns every state in ascending order
func (d *DFA) States() []State {
	out := make([]State, d.states)
	for i := range out {
		out[i] = State(i)
	}
	return out
}

// Accepts returns the accepting states in ascending order
func (d *DFA) Accepts() []State {
	out := maps.Keys(d.accepts)
	slices.Sort(out)
	return out
}

// IsAccepting reports whether s is accepting
func (d *DFA) IsAccepting(s State) bool {
	return d.accepts[s]
}

// Next returns the target of s over sym
func (d *DFA) Next(s State, sym symbols.Symbol) (State, bool) {
	t, ok := d.trans[s][sym]
	return t, ok
}

// Transition is one edge of a DFA
type Transition struct {
	From   State
	Symbol symbols.Symbol
	To     State
}

// Transitions lists every edge ordered by source state, then symbol
func (d *DFA) Transitions() []Transition {
	froms := maps.Keys(d.trans)
	slices.Sort(froms)
	var out []Transition
	for _, from := range froms {
		row := d.trans[from]
		syms := maps.Keys(row)
		slices.SortFunc(syms, symbols.Less)
		for _, sym := range syms {
			out = append(out, Transition{From: from, Symbol: sym, To: row[sym]})
		}
	}
	return out
}

// AcceptsWord runs the automaton on word, one rune per symbol
func (d *DFA) AcceptsWord(word string) bool {
	s := d.Start
	for _, r := range word {
		next, ok := d.Next(s, symbols.TerminalRune(r))
		if !ok {
			return false
		}
		s = next
	}
	return d.accepts[s]
}

// String renders the automaton canonically
func (d *DFA) String() string {
	var b strings.Builder
	alpha := make([]string, len(d.Alphabet))
	for i, sym := range d.Alphabet {
		alpha[i] = sym.String()
	}
	b.WriteString("alphabet " + strings.Join(alpha, ",") + "\n")
	b.WriteString("start " + strconv.Itoa(int(d.Start)) + "\n")
	b.WriteString("accept " + joinStates(d.Accepts()) + "\n")
	for _, t := range d.Transitions() {
		b.WriteString(strconv.Itoa(int(t.From)) + " " + t.Symbol.String() + " -> " + strconv.Itoa(int(t.To)) + "\n")
	}
	return b.String()
}

// Fingerprint hashes the canonical rendering; equal automata give equal fingerprints
func (d *DFA) Fingerprint() uint64 {
	return siphash.Hash(fingerprintK0, fingerprintK1, []byte(d.String()))
}

// FingerprintHex is Fingerprint as a fixed-width hex string
func (d *DFA) FingerprintHex() string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], d.Fingerprint())
	return hex.EncodeToString(buf[:])
}
