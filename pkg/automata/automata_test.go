/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: automata_test.go
Description: Tests for NFA construction, epsilon closure, subset construction and DOT export.
*/

package automata_test

import (
	"bytes"
	"testing"

	"github.com/kleascm/chomsky-toolkit/pkg/automata"
	"github.com/kleascm/chomsky-toolkit/pkg/symbols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	symA = symbols.Terminal("a")
	symB = symbols.Terminal("b")
)

// buildAorAB builds an NFA for {a, ab} with a nondeterministic fan-out on a
func buildAorAB() *automata.NFA {
	b := automata.NewNFABuilder(automata.NewAllocator())
	s0, s1, s2, s3 := b.NewState(), b.NewState(), b.NewState(), b.NewState()
	b.AddEdge(s0, symA, s1)
	b.AddEdge(s0, symA, s2)
	b.AddEdge(s1, symB, s3)
	b.AddEpsilon(s2, s3)
	return b.Build(s0, s3)
}

func TestNFABasics(t *testing.T) {
	n := buildAorAB()

	assert.Equal(t, 4, n.NumStates())
	assert.Equal(t, automata.State(0), n.Start)
	assert.Equal(t, []automata.State{3}, n.Accepts())
	assert.Equal(t, []symbols.Symbol{symA, symB}, n.Alphabet())
	assert.Equal(t, []automata.State{1, 2}, n.Targets(0, symA))
	assert.Empty(t, n.Targets(0, symB))
}

func TestNFAClosureAndMove(t *testing.T) {
	n := buildAorAB()

	assert.Equal(t, []automata.State{0}, n.Closure([]automata.State{0}))
	assert.Equal(t, []automata.State{2, 3}, n.Closure([]automata.State{2}))
	assert.Equal(t, []automata.State{1, 2, 3}, n.Closure(n.Move([]automata.State{0}, symA)))
	assert.Empty(t, n.Move([]automata.State{0}, symB))
	assert.Empty(t, n.Closure(nil))
}

func TestNFAAcceptsWord(t *testing.T) {
	n := buildAorAB()

	assert.True(t, n.AcceptsWord("a"))
	assert.True(t, n.AcceptsWord("ab"))
	assert.False(t, n.AcceptsWord(""))
	assert.False(t, n.AcceptsWord("b"))
	assert.False(t, n.AcceptsWord("abb"))
}

func TestAllocatorSharedAcrossBuilders(t *testing.T) {
	alloc := automata.NewAllocator()
	first := automata.NewNFABuilder(alloc)
	s := first.NewState()
	second := automata.NewNFABuilder(alloc)
	u := second.NewState()

	assert.Equal(t, automata.State(0), s)
	assert.Equal(t, automata.State(1), u)
	assert.Equal(t, 2, alloc.Count())
}

func TestDeterminize(t *testing.T) {
	d := automata.Determinize(buildAorAB())

	assert.Equal(t, 3, d.NumStates())
	assert.Equal(t, automata.State(0), d.Start)
	assert.Equal(t, []automata.State{1, 2}, d.Accepts())
	assert.Equal(t, []symbols.Symbol{symA, symB}, d.Alphabet)

	to, ok := d.Next(0, symA)
	require.True(t, ok)
	assert.Equal(t, automata.State(1), to)

	// empty target subsets produce no transition
	_, ok = d.Next(0, symB)
	assert.False(t, ok)

	assert.Equal(t, "alphabet a,b\nstart 0\naccept 1,2\n0 a -> 1\n1 b -> 2\n", d.String())
}

func TestDeterminizeIsDeterministic(t *testing.T) {
	first := automata.Determinize(buildAorAB())
	second := automata.Determinize(buildAorAB())

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, first.Fingerprint(), second.Fingerprint())
	assert.Len(t, first.FingerprintHex(), 16)
}

func TestDeterminizePreservesLanguage(t *testing.T) {
	n := buildAorAB()
	d := automata.Determinize(n)

	for _, w := range []string{"", "a", "b", "ab", "ba", "aa", "abb", "aab"} {
		assert.Equal(t, n.AcceptsWord(w), d.AcceptsWord(w), "word %q", w)
	}
}

func TestDFATransitionsAreSorted(t *testing.T) {
	b := automata.NewDFABuilder(automata.NewAllocator())
	s0, s1 := b.NewState(), b.NewState()
	b.SetTransition(s1, symB, s0)
	b.SetTransition(s0, symB, s1)
	b.SetTransition(s0, symA, s0)
	b.SetAccepting(s1)
	d := b.Build(s0)

	assert.Equal(t, []automata.Transition{
		{From: 0, Symbol: symA, To: 0},
		{From: 0, Symbol: symB, To: 1},
		{From: 1, Symbol: symB, To: 0},
	}, d.Transitions())
	assert.True(t, d.AcceptsWord("ab"))
	assert.True(t, d.AcceptsWord("aaab"))
	assert.False(t, d.AcceptsWord("abb"))
}

func TestDOTExport(t *testing.T) {
	n := buildAorAB()
	d := automata.Determinize(n)

	var nfaOut bytes.Buffer
	require.NoError(t, automata.WriteNFADOT(&nfaOut, n, "a|ab"))
	assert.Contains(t, nfaOut.String(), "digraph NFA {")
	assert.Contains(t, nfaOut.String(), "s2 -> s3 [label=\"ε\"];")
	assert.Contains(t, nfaOut.String(), "s3 [shape=doublecircle];")

	var dfaOut bytes.Buffer
	require.NoError(t, automata.WriteDFADOT(&dfaOut, d, `say "hi"`))
	assert.Contains(t, dfaOut.String(), "digraph DFA {")
	assert.Contains(t, dfaOut.String(), "start -> s0;")
	assert.Contains(t, dfaOut.String(), "s0 -> s1 [label=\"a\"];")
	assert.Contains(t, dfaOut.String(), `label="say \"hi\"";`)
}
