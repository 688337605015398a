/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: symbols_test.go
Description: Tests for grammar symbols and sequences.
*/

package symbols_test

import (
	"testing"

	"github.com/kleascm/chomsky-toolkit/pkg/symbols"
	"github.com/stretchr/testify/assert"
)

func TestSymbolString(t *testing.T) {
	assert.Equal(t, "a", symbols.Terminal("a").String())
	assert.Equal(t, "S", symbols.Nonterminal("S").String())
	assert.Equal(t, "<A0>", symbols.Nonterminal("A0").String())
	assert.Equal(t, "<expr>", symbols.Nonterminal("expr").String())
	assert.Equal(t, "ε", symbols.Epsilon.String())
	assert.Equal(t, "'A'", symbols.Terminal("A").String())
	assert.Equal(t, "'ε'", symbols.Terminal("ε").String())
	assert.Equal(t, "'é'", symbols.Terminal("é").String())
}

func TestSymbolKinds(t *testing.T) {
	assert.True(t, symbols.TerminalRune('x').IsTerminal())
	assert.True(t, symbols.Nonterminal("A").IsNonterminal())
	assert.True(t, symbols.Epsilon.IsEpsilon())
	assert.Equal(t, symbols.Terminal("x"), symbols.TerminalRune('x'))
	assert.NotEqual(t, symbols.Terminal("a"), symbols.Nonterminal("a"))
}

func TestLessOrdersByKindThenValue(t *testing.T) {
	assert.True(t, symbols.Less(symbols.Terminal("a"), symbols.Terminal("b")))
	assert.False(t, symbols.Less(symbols.Terminal("b"), symbols.Terminal("a")))
	assert.True(t, symbols.Less(symbols.Terminal("z"), symbols.Nonterminal("A")))
	assert.True(t, symbols.Less(symbols.Nonterminal("Z"), symbols.Epsilon))
}

func TestSequenceLength(t *testing.T) {
	a, s := symbols.Terminal("a"), symbols.Nonterminal("S")

	assert.Equal(t, 0, symbols.Sequence{symbols.Epsilon}.Len())
	assert.True(t, symbols.Sequence{symbols.Epsilon}.IsEmpty())
	assert.True(t, symbols.Sequence{}.IsEmpty())
	assert.Equal(t, 3, symbols.Sequence{a, s, a}.Len())
	assert.Equal(t, 2, symbols.Sequence{a, symbols.Epsilon, s}.Len())
}

func TestSequenceQueries(t *testing.T) {
	a, b, s := symbols.Terminal("a"), symbols.Terminal("b"), symbols.Nonterminal("S")
	q := symbols.Sequence{a, s, b}

	assert.True(t, q.Contains(s))
	assert.False(t, q.Contains(symbols.Nonterminal("A")))
	assert.False(t, q.AllTerminal())
	assert.True(t, symbols.Sequence{a, b}.AllTerminal())
	assert.True(t, symbols.Sequence{s}.IsSingleNonterminal())
	assert.False(t, symbols.Sequence{s, s}.IsSingleNonterminal())
	assert.False(t, symbols.Sequence{a}.IsSingleNonterminal())
	assert.True(t, q.Equal(symbols.Sequence{a, s, b}))
	assert.False(t, q.Equal(symbols.Sequence{a, s}))
}

func TestSequenceRendering(t *testing.T) {
	a, b := symbols.Terminal("a"), symbols.Terminal("b")
	q := symbols.Sequence{a, symbols.Nonterminal("S"), b}

	assert.Equal(t, "aSb", q.String())
	assert.Equal(t, "ab", q.Word())
	assert.Equal(t, "ε", symbols.Sequence{}.String())
	assert.Equal(t, "ε", symbols.Sequence{symbols.Epsilon}.String())
	assert.Equal(t, "a<A1>", symbols.Sequence{a, symbols.Nonterminal("A1")}.String())
	assert.Equal(t, "'e'", symbols.Sequence{symbols.Terminal("e")}.String())
	assert.Equal(t, "eS", symbols.Sequence{symbols.Terminal("e"), symbols.Nonterminal("S")}.String())
	assert.Equal(t, "", symbols.Sequence{symbols.Epsilon}.Word())
}
