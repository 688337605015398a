/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: parser_test.go
Description: Tests for the grammar text parser: arrows, separators, comments, epsilon
markers, merged left-hand sides and error reporting.
*/

package grammar_test

import (
	"errors"
	"testing"

	"github.com/kleascm/chomsky-toolkit/pkg/grammar"
	"github.com/kleascm/chomsky-toolkit/pkg/symbols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tA = symbols.Terminal("a")
	tB = symbols.Terminal("b")
	nS = symbols.Nonterminal("S")
	nA = symbols.Nonterminal("A")
	nB = symbols.Nonterminal("B")
)

func TestParseSimpleGrammar(t *testing.T) {
	g, err := grammar.Parse("S -> aA | b\nA -> aS | b\n")
	require.NoError(t, err)

	assert.Equal(t, nS, g.Start)
	require.Len(t, g.Productions, 2)
	assert.Equal(t, symbols.Sequence{nS}, g.Productions[0].LHS)
	assert.Equal(t, []symbols.Sequence{{tA, nA}, {tB}}, g.Productions[0].Alternatives)
	assert.Equal(t, []symbols.Sequence{{tA, nS}, {tB}}, g.Lookup(nA))
}

func TestParseArrowsAndSeparators(t *testing.T) {
	texts := []string{
		"S -> aB | b\nB -> b",
		"S → aB ; b\nB → b",
		"S ⇒ aB|b\nB ⇒ b",
		"S : aB | b\nB : b",
		"S->aB\nS->b\nB->b",
	}
	want := grammar.MustParse(texts[0]).String()
	for _, text := range texts {
		g, err := grammar.Parse(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, g.String(), text)
	}
}

func TestParseCommentsAndBlankLines(t *testing.T) {
	g, err := grammar.Parse("# balanced\n\n  S -> aSb | ab   # recursive\n\n")
	require.NoError(t, err)
	require.Len(t, g.Productions, 1)
	assert.Equal(t, "S -> aSb | ab\n", g.String())
}

func TestParseEpsilonMarkers(t *testing.T) {
	g, err := grammar.Parse("S -> aS | e | ε |")
	require.NoError(t, err)

	alts := g.Lookup(nS)
	require.Len(t, alts, 4)
	for _, alt := range alts[1:] {
		assert.True(t, alt.IsEmpty())
	}

	// inside a longer alternative e is a terminal and ε is dropped
	g, err = grammar.Parse("S -> eS | aεb")
	require.NoError(t, err)
	alts = g.Lookup(nS)
	assert.Equal(t, symbols.Sequence{symbols.Terminal("e"), nS}, alts[0])
	assert.Equal(t, symbols.Sequence{tA, tB}, alts[1])
}

func TestParseNamedAndQuotedSymbols(t *testing.T) {
	g, err := grammar.Parse("<expr> -> <term>'+'<expr> | <term>\n<term> -> 'X'1")
	require.NoError(t, err)

	expr, term := symbols.Nonterminal("expr"), symbols.Nonterminal("term")
	assert.Equal(t, expr, g.Start)
	assert.Equal(t, symbols.Sequence{term, symbols.Terminal("+"), expr}, g.Lookup(expr)[0])
	assert.Equal(t, symbols.Sequence{symbols.Terminal("X"), symbols.Terminal("1")}, g.Lookup(term)[0])
}

func TestParseSpansHideCommentAndArrowMarks(t *testing.T) {
	g, err := grammar.Parse("S -> '#'S | ':' # hash or colon\n<a:b> -> c")
	require.NoError(t, err)

	hash, colon := symbols.Terminal("#"), symbols.Terminal(":")
	assert.Equal(t, []symbols.Sequence{{hash, nS}, {colon}}, g.Lookup(nS))

	named := symbols.Nonterminal("a:b")
	require.Len(t, g.Productions, 2)
	assert.Equal(t, symbols.Sequence{named}, g.Productions[1].LHS)
	assert.Equal(t, []symbols.Sequence{{symbols.Terminal("c")}}, g.Lookup(named))

	again, err := grammar.Parse(g.String())
	require.NoError(t, err)
	assert.Equal(t, g.String(), again.String())
}

func TestParseMultiSymbolLHS(t *testing.T) {
	g, err := grammar.Parse("S -> aSBc | abc\ncB -> Bc\nbB -> bb")
	require.NoError(t, err)

	assert.Equal(t, nS, g.Start)
	require.Len(t, g.Productions, 3)
	assert.Equal(t, symbols.Sequence{symbols.Terminal("c"), nB}, g.Productions[1].LHS)
	assert.Nil(t, g.Lookup(nB))
}

func TestParseStartIsFirstNonterminal(t *testing.T) {
	g, err := grammar.Parse("aB -> ab\nB -> b")
	require.NoError(t, err)
	assert.Equal(t, nB, g.Start)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"empty":              "",
		"only comments":      "# nothing\n\n",
		"missing arrow":      "S aB",
		"empty lhs":          " -> a",
		"epsilon lhs":        "ε -> a",
		"terminal start":     "ab -> S",
		"bad token":          "S -> a$b",
		"unterminated":       "S -> <A",
		"empty name":         "S -> <>",
		"unterminated quote": "S -> 'a",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := grammar.Parse(text)
			require.Error(t, err)
			assert.ErrorIs(t, err, grammar.ErrMalformedGrammar)
		})
	}
}

func TestParseErrorLine(t *testing.T) {
	_, err := grammar.Parse("S -> aA\nA -> a?\n")
	var syntaxErr *grammar.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, 2, syntaxErr.Line)

	_, err = grammar.Parse("")
	assert.ErrorIs(t, err, grammar.ErrEmptyGrammar)
}

func TestStringRoundTrip(t *testing.T) {
	texts := []string{
		"S -> aA | b\nA -> bA | b | ε\n",
		"S -> aSBc | abc\ncB -> Bc\nbB -> bb\n",
		"<A0> -> a<A1> | 'B'<A0>\n<A1> -> ε\n",
	}
	for _, text := range texts {
		g := grammar.MustParse(text)
		assert.Equal(t, text, g.String())
		again := grammar.MustParse(g.String())
		assert.Equal(t, g, again)
	}
}

func TestGrammarQueries(t *testing.T) {
	g := grammar.MustParse("S -> aSb | A\nA -> b")

	assert.True(t, g.OccursOnRHS(nS))
	assert.True(t, g.OccursOnRHS(nA))
	assert.False(t, g.OccursOnRHS(nB))
	assert.Equal(t, []symbols.Symbol{nA, nS}, g.Nonterminals())
	assert.Equal(t, []symbols.Symbol{tA, tB}, g.Terminals())
	assert.Equal(t, "S -> A", g.Productions[0].Rule(1))
}

func TestFingerprint(t *testing.T) {
	g1 := grammar.MustParse("S -> aS | b")
	g2 := grammar.MustParse("S → aS ; b   # same grammar")
	g3 := grammar.MustParse("S -> bS | a")

	assert.Equal(t, g1.Fingerprint(), g2.Fingerprint())
	assert.NotEqual(t, g1.Fingerprint(), g3.Fingerprint())
	assert.Len(t, g1.FingerprintHex(), 16)
}

func TestBuilderMergesLeftHandSides(t *testing.T) {
	b := grammar.NewBuilder()
	b.Add(symbols.Sequence{nS}, symbols.Sequence{tA})
	b.Add(symbols.Sequence{nA}, symbols.Sequence{tB})
	b.Add(symbols.Sequence{nS}, symbols.Sequence{tB})
	assert.Equal(t, 2, b.Len())

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, nS, g.Start)
	assert.Equal(t, "S -> a | b\nA -> b\n", g.String())

	_, err = grammar.NewBuilder().Build()
	assert.ErrorIs(t, err, grammar.ErrEmptyGrammar)
}
