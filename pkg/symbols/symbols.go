/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: symbols.go
Description: Shared symbol vocabulary for the Chomsky toolkit. Terminals, nonterminals and
epsilon are classified once, when text is parsed, and every later stage works on the typed
values instead of re-inspecting raw characters.
*/

package symbols

import (
	"strings"
	"unicode"
)

// Kind tags the variant held by a Symbol
type Kind int

const (
	KindTerminal Kind = iota
	KindNonterminal
	KindEpsilon
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindNonterminal:
		return "nonterminal"
	case KindEpsilon:
		return "epsilon"
	default:
		return "unknown"
	}
}

// EpsilonMark is the canonical printed form of the empty string
const EpsilonMark = "ε"

// Symbol is a tagged value: Terminal(char), Nonterminal(name) or Epsilon.
// Symbols are comparable and may be used as map keys.
type Symbol struct {
	Kind  Kind
	Value string
}

// Epsilon is the distinguished empty-string symbol
var Epsilon = Symbol{Kind: KindEpsilon}

// Terminal builds a terminal symbol
func Terminal(char string) Symbol {
	return Symbol{Kind: KindTerminal, Value: char}
}

// TerminalRune builds a terminal symbol from a single rune
func TerminalRune(r rune) Symbol {
	return Symbol{Kind: KindTerminal, Value: string(r)}
}

// Nonterminal builds a nonterminal symbol
func Nonterminal(name string) Symbol {
	return Symbol{Kind: KindNonterminal, Value: name}
}

func (s Symbol) IsTerminal() bool    { return s.Kind == KindTerminal }
func (s Symbol) IsNonterminal() bool { return s.Kind == KindNonterminal }
func (s Symbol) IsEpsilon() bool     { return s.Kind == KindEpsilon }

// String renders the symbol in grammar text notation so that the output parses back
// to the same symbol. Nonterminals whose name is a single uppercase letter print bare,
// other names are wrapped in angle brackets. Terminals other than an ASCII lowercase
// letter or digit are quoted, e.g. 'A' or 'ε'.
func (s Symbol) String() string {
	switch s.Kind {
	case KindEpsilon:
		return EpsilonMark
	case KindNonterminal:
		if isSingleUpper(s.Value) {
			return s.Value
		}
		return "<" + s.Value + ">"
	default:
		if isBareTerminal(s.Value) {
			return s.Value
		}
		return "'" + s.Value + "'"
	}
}

// Less orders symbols by kind, then by value
func Less(a, b Symbol) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.Value < b.Value
}

func isSingleUpper(name string) bool {
	r := []rune(name)
	return len(r) == 1 && unicode.IsUpper(r[0])
}

func isBareTerminal(value string) bool {
	if len(value) != 1 {
		return false
	}
	c := value[0]
	return ('a' <= c && c <= 'z') || ('0' <= c && c <= '9')
}

// Sequence is an ordered run of symbols, the body of one side of a production
type Sequence []Symbol

// Len is the token count used by the non-contracting check. A sequence holding only
// epsilon has length zero.
func (q Sequence) Len() int {
	n := 0
	for _, s := range q {
		if !s.IsEpsilon() {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the sequence derives only the empty string
func (q Sequence) IsEmpty() bool {
	return q.Len() == 0
}

// Equal compares two sequences symbol by symbol
func (q Sequence) Equal(o Sequence) bool {
	if len(q) != len(o) {
		return false
	}
	for i := range q {
		if q[i] != o[i] {
			return false
		}
	}
	return true
}

// Contains reports whether sym occurs in the sequence
func (q Sequence) Contains(sym Symbol) bool {
	for _, s := range q {
		if s == sym {
			return true
		}
	}
	return false
}

// IsSingleNonterminal reports whether the sequence is exactly one nonterminal
func (q Sequence) IsSingleNonterminal() bool {
	return len(q) == 1 && q[0].IsNonterminal()
}

// AllTerminal reports whether no nonterminal remains in the sequence
func (q Sequence) AllTerminal() bool {
	for _, s := range q {
		if s.IsNonterminal() {
			return false
		}
	}
	return true
}

// Word concatenates the terminal values, skipping epsilon
func (q Sequence) Word() string {
	var b strings.Builder
	for _, s := range q {
		if s.IsTerminal() {
			b.WriteString(s.Value)
		}
	}
	return b.String()
}

// String renders the sequence; an empty sequence prints as ε
func (q Sequence) String() string {
	if q.IsEmpty() {
		return EpsilonMark
	}
	var b strings.Builder
	n := 0
	for _, s := range q {
		if s.IsEpsilon() {
			continue
		}
		b.WriteString(s.String())
		n++
	}
	// a lone e would read back as the empty string
	if out := b.String(); n == 1 && out == "e" {
		return "'e'"
	}
	return b.String()
}
