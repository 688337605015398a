/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: grammar.go
Description: Production grammars for the Chomsky toolkit. A Grammar keeps its productions
in declaration order, merges repeated left-hand sides, and renders back to the text format
accepted by Parse.
*/

package grammar

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/dchest/siphash"
	"github.com/kleascm/chomsky-toolkit/pkg/symbols"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrEmptyGrammar is returned when a grammar has no productions
var ErrEmptyGrammar = errors.New("grammar has no productions")

const (
	fingerprintK0 = 0x6772616d6d617231
	fingerprintK1 = 0x63686f6d736b7932
)

// Production holds every alternative declared for one left-hand side
type Production struct {
	LHS          symbols.Sequence
	Alternatives []symbols.Sequence
}

// Rule renders the production restricted to one alternative, e.g. "S -> aSb"
func (p Production) Rule(alt int) string {
	return p.LHS.String() + " -> " + p.Alternatives[alt].String()
}

// String renders "LHS -> alt1 | alt2"
func (p Production) String() string {
	alts := make([]string, len(p.Alternatives))
	for i, a := range p.Alternatives {
		alts[i] = a.String()
	}
	return p.LHS.String() + " -> " + strings.Join(alts, " | ")
}

// Grammar is an ordered set of productions with a start symbol
type Grammar struct {
	Start       symbols.Symbol
	Productions []Production
}

// Builder accumulates productions, merging alternatives for equal left-hand sides
type Builder struct {
	start    symbols.Symbol
	hasStart bool
	prods    []Production
	index    map[string]int
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// SetStart fixes the start symbol; otherwise the first nonterminal of the first
// left-hand side added is used.
func (b *Builder) SetStart(s symbols.Symbol) {
	b.start = s
	b.hasStart = true
}

// Add appends alternatives to lhs, creating the production on first use
func (b *Builder) Add(lhs symbols.Sequence, alts ...symbols.Sequence) {
	key := lhs.String()
	i, ok := b.index[key]
	if !ok {
		if !b.hasStart {
			for _, s := range lhs {
				if s.IsNonterminal() {
					b.SetStart(s)
					break
				}
			}
		}
		i = len(b.prods)
		b.index[key] = i
		b.prods = append(b.prods, Production{LHS: lhs})
	}
	b.prods[i].Alternatives = append(b.prods[i].Alternatives, alts...)
}

// Len returns the number of distinct left-hand sides added so far
func (b *Builder) Len() int {
	return len(b.prods)
}

// Build returns the grammar; it fails with ErrEmptyGrammar when nothing was added
func (b *Builder) Build() (*Grammar, error) {
	if len(b.prods) == 0 {
		return nil, ErrEmptyGrammar
	}
	return &Grammar{Start: b.start, Productions: b.prods}, nil
}

// Lookup returns the alternatives for a single-nonterminal left-hand side
func (g *Grammar) Lookup(nt symbols.Symbol) []symbols.Sequence {
	for _, p := range g.Productions {
		if p.LHS.IsSingleNonterminal() && p.LHS[0] == nt {
			return p.Alternatives
		}
	}
	return nil
}

// OccursOnRHS reports whether sym appears in any alternative
func (g *Grammar) OccursOnRHS(sym symbols.Symbol) bool {
	for _, p := range g.Productions {
		for _, alt := range p.Alternatives {
			if alt.Contains(sym) {
				return true
			}
		}
	}
	return false
}

// Nonterminals returns every nonterminal of the grammar, sorted
func (g *Grammar) Nonterminals() []symbols.Symbol {
	return g.collect(symbols.Symbol.IsNonterminal)
}

// Terminals returns every terminal of the grammar, sorted
func (g *Grammar) Terminals() []symbols.Symbol {
	return g.collect(symbols.Symbol.IsTerminal)
}

func (g *Grammar) collect(keep func(symbols.Symbol) bool) []symbols.Symbol {
	seen := make(map[symbols.Symbol]struct{})
	add := func(q symbols.Sequence) {
		for _, s := range q {
			if keep(s) {
				seen[s] = struct{}{}
			}
		}
	}
	for _, p := range g.Productions {
		add(p.LHS)
		for _, alt := range p.Alternatives {
			add(alt)
		}
	}
	out := maps.Keys(seen)
	slices.SortFunc(out, symbols.Less)
	return out
}

// String renders one line per production in declaration order
func (g *Grammar) String() string {
	var b strings.Builder
	for _, p := range g.Productions {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Fingerprint hashes the rendered grammar text
func (g *Grammar) Fingerprint() uint64 {
	return siphash.Hash(fingerprintK0, fingerprintK1, []byte(g.Start.String()+"\n"+g.String()))
}

// FingerprintHex is Fingerprint as a fixed-width hex string
func (g *Grammar) FingerprintHex() string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], g.Fingerprint())
	return hex.EncodeToString(buf[:])
}
