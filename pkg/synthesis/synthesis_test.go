/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: synthesis_test.go
Description: Tests for right-linear grammar synthesis from DFAs.
*/

package synthesis_test

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/kleascm/chomsky-toolkit/pkg/automata"
	"github.com/kleascm/chomsky-toolkit/pkg/classifier"
	"github.com/kleascm/chomsky-toolkit/pkg/grammar"
	"github.com/kleascm/chomsky-toolkit/pkg/regex"
	"github.com/kleascm/chomsky-toolkit/pkg/sampler"
	"github.com/kleascm/chomsky-toolkit/pkg/symbols"
	"github.com/kleascm/chomsky-toolkit/pkg/synthesis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileDFA(t *testing.T, expr string) *automata.DFA {
	t.Helper()
	nfa, err := regex.Compile(expr)
	require.NoError(t, err)
	return automata.Determinize(nfa)
}

func TestFromDFAClassicExample(t *testing.T) {
	g := synthesis.FromDFA(compileDFA(t, "(a|b)*abb"))

	assert.Equal(t, symbols.Nonterminal("A0"), g.Start)
	assert.Equal(t, "<A0> -> a<A1> | b<A2>\n"+
		"<A1> -> a<A1> | b<A3>\n"+
		"<A2> -> a<A1> | b<A2>\n"+
		"<A3> -> a<A1> | b<A4>\n"+
		"<A4> -> a<A1> | b<A2> | ε\n", g.String())
}

func TestFromDFAIsRegular(t *testing.T) {
	for _, expr := range []string{"a", "a*", "(a|b)*abb", "(ab)+c?", "a?", "x(y|z)*"} {
		g := synthesis.FromDFA(compileDFA(t, expr))
		res, err := classifier.Classify(g)
		require.NoError(t, err, expr)
		assert.Equal(t, classifier.Regular, res.Level, expr)
	}
}

func TestFromDFAPreservesLanguage(t *testing.T) {
	const maxLen = 5
	bounds := sampler.Bounds{MaxLen: maxLen, MaxSteps: 100000}

	for _, expr := range []string{"(a|b)*abb", "a(b|c)*", "(ab)*", "a?b+", "(a|b)(a|b)?"} {
		t.Run(expr, func(t *testing.T) {
			dfa := compileDFA(t, expr)
			g := synthesis.FromDFA(dfa)
			sample := sampler.Sample(g, bounds)
			require.False(t, sample.Truncated)

			oracle := regexp.MustCompile("^(?:" + expr + ")$")
			var all []string
			collect(&all, "", "abc", maxLen)
			for _, w := range all {
				want := oracle.MatchString(w)
				assert.Equal(t, want, dfa.AcceptsWord(w), "DFA on %q", w)
				assert.Equal(t, want, sample.Contains(w), "sample on %q", w)
			}
		})
	}
}

func collect(out *[]string, prefix, alphabet string, n int) {
	*out = append(*out, prefix)
	if n == 0 {
		return
	}
	for _, r := range alphabet {
		collect(out, prefix+string(r), alphabet, n-1)
	}
}

func TestFromDFATextRoundTrip(t *testing.T) {
	g := synthesis.FromDFA(compileDFA(t, "(A|b)*1"))
	again, err := grammar.Parse(g.String())
	require.NoError(t, err)
	assert.Equal(t, g.String(), again.String())
	assert.Equal(t, g.Start, again.Start)
}

func TestFromDFATextRoundTripKeepsLanguage(t *testing.T) {
	bounds := sampler.Bounds{MaxLen: 4, MaxSteps: 10000}
	for _, expr := range []string{"(A|b)*1", "Ze?", "e", "(e|E)0"} {
		t.Run(expr, func(t *testing.T) {
			g := synthesis.FromDFA(compileDFA(t, expr))
			again, err := grammar.Parse(g.String())
			require.NoError(t, err)
			assert.Equal(t, sampler.Sample(g, bounds).Words, sampler.Sample(again, bounds).Words)
		})
	}
}

func TestFromDFAWithNames(t *testing.T) {
	name := func(q automata.State) string {
		return fmt.Sprintf("Q%d", q)
	}
	g := synthesis.FromDFAWithNames(compileDFA(t, "ab"), name)

	assert.Equal(t, symbols.Nonterminal("Q0"), g.Start)
	assert.Equal(t, "<Q0> -> a<Q1>\n<Q1> -> b<Q2>\n<Q2> -> ε\n", g.String())
}

func TestFromDFAStartStateFirst(t *testing.T) {
	b := automata.NewDFABuilder(automata.NewAllocator())
	s0, s1 := b.NewState(), b.NewState()
	b.SetTransition(s1, symbols.Terminal("a"), s0)
	b.SetAccepting(s0)
	d := b.Build(s1)

	g := synthesis.FromDFA(d)
	assert.Equal(t, symbols.Nonterminal("A1"), g.Start)
	assert.Equal(t, "<A1> -> a<A0>\n<A0> -> ε\n", g.String())
}
