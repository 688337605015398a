/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: parser.go
Description: Text parser for production grammars. Accepts one "LHS -> RHS1 | RHS2" declaration
per line with several arrow and separator spellings, "#" comments and the usual epsilon
markers, and classifies every token into a typed symbol exactly once.
*/

package grammar

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/kleascm/chomsky-toolkit/pkg/symbols"
)

// ErrMalformedGrammar is wrapped by every parse failure
var ErrMalformedGrammar = errors.New("malformed grammar")

// SyntaxError reports the offending line of a grammar text
type SyntaxError struct {
	Line int
	Text string
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: line %d: %s: %q", ErrMalformedGrammar, e.Line, e.Msg, e.Text)
}

func (e *SyntaxError) Unwrap() error {
	return ErrMalformedGrammar
}

// arrows lists the accepted arrow spellings
var arrows = []string{"->", "→", "⇒", ":"}

// epsilonMarks are the alternatives that denote the empty string
var epsilonMarks = map[string]bool{"": true, "e": true, "ε": true}

// Parse reads a grammar from text. The start symbol is the first nonterminal of the
// first left-hand side; lines sharing a left-hand side accumulate alternatives.
func Parse(text string) (*Grammar, error) {
	b := NewBuilder()
	for i, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(stripComment(raw))
		if line == "" {
			continue
		}

		lhsText, rhsText, ok := splitArrow(line)
		if !ok {
			return nil, &SyntaxError{Line: lineNo, Text: line, Msg: "missing arrow"}
		}
		lhsText = strings.TrimSpace(lhsText)
		if lhsText == "" {
			return nil, &SyntaxError{Line: lineNo, Text: line, Msg: "empty left-hand side"}
		}
		lhs, err := tokenize(lhsText)
		if err != nil {
			return nil, &SyntaxError{Line: lineNo, Text: line, Msg: err.Error()}
		}
		if lhs.IsEmpty() {
			return nil, &SyntaxError{Line: lineNo, Text: line, Msg: "left-hand side derives the empty string"}
		}
		if b.Len() == 0 && !hasNonterminal(lhs) {
			return nil, &SyntaxError{Line: lineNo, Text: line, Msg: "first left-hand side has no nonterminal to start from"}
		}

		var alts []symbols.Sequence
		for _, altText := range strings.Split(strings.ReplaceAll(rhsText, ";", "|"), "|") {
			alt, err := parseAlternative(altText)
			if err != nil {
				return nil, &SyntaxError{Line: lineNo, Text: line, Msg: err.Error()}
			}
			alts = append(alts, alt)
		}
		b.Add(lhs, alts...)
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedGrammar, err)
	}
	return g, nil
}

// MustParse is Parse for grammars known to be valid; it panics on error
func MustParse(text string) *Grammar {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// literalMask marks the bytes of line that lie outside 'quoted' terminals and
// <named> nonterminals. An unterminated span runs to the end of the line.
func literalMask(line string) []bool {
	mask := make([]bool, len(line))
	var closer rune
	for i, r := range line {
		switch {
		case closer != 0:
			if r == closer {
				closer = 0
			}
		case r == '\'':
			closer = '\''
		case r == '<':
			closer = '>'
		default:
			mask[i] = true
		}
	}
	return mask
}

// stripComment drops everything from the first # outside a quoted or named span
func stripComment(line string) string {
	mask := literalMask(line)
	for i := 0; i < len(line); i++ {
		if line[i] == '#' && mask[i] {
			return line[:i]
		}
	}
	return line
}

// splitArrow splits at the earliest arrow spelling found outside quoted or named spans
func splitArrow(line string) (string, string, bool) {
	mask := literalMask(line)
	best, bestLen := -1, 0
	for _, a := range arrows {
		for from := 0; from < len(line); {
			idx := strings.Index(line[from:], a)
			if idx < 0 {
				break
			}
			idx += from
			if mask[idx] {
				if best < 0 || idx < best {
					best, bestLen = idx, len(a)
				}
				break
			}
			from = idx + 1
		}
	}
	if best < 0 {
		return "", "", false
	}
	return line[:best], line[best+bestLen:], true
}

func hasNonterminal(q symbols.Sequence) bool {
	for _, s := range q {
		if s.IsNonterminal() {
			return true
		}
	}
	return false
}

func parseAlternative(text string) (symbols.Sequence, error) {
	trimmed := strings.TrimSpace(text)
	if epsilonMarks[trimmed] {
		return symbols.Sequence{symbols.Epsilon}, nil
	}
	return tokenize(trimmed)
}

// tokenize classifies the characters of one side of a production. Uppercase letters
// and <names> are nonterminals, lowercase letters, digits and 'quoted' runes are
// terminals, and ε inside a longer sequence is dropped.
func tokenize(text string) (symbols.Sequence, error) {
	var out symbols.Sequence
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case unicode.IsSpace(r), r == 'ε':
			continue
		case r == '\'':
			j := i + 1
			for j < len(runes) && runes[j] != '\'' {
				j++
			}
			if j == len(runes) {
				return nil, fmt.Errorf("unterminated quoted terminal starting at %q", string(runes[i:]))
			}
			if j == i+1 {
				return nil, fmt.Errorf("empty quoted terminal")
			}
			for _, q := range runes[i+1 : j] {
				out = append(out, symbols.TerminalRune(q))
			}
			i = j
		case r == '<':
			j := i + 1
			for j < len(runes) && runes[j] != '>' {
				j++
			}
			if j == len(runes) {
				return nil, fmt.Errorf("unterminated nonterminal name starting at %q", string(runes[i:]))
			}
			name := strings.TrimSpace(string(runes[i+1 : j]))
			if name == "" {
				return nil, fmt.Errorf("empty nonterminal name")
			}
			out = append(out, symbols.Nonterminal(name))
			i = j
		case unicode.IsUpper(r):
			out = append(out, symbols.Nonterminal(string(r)))
		case unicode.IsLower(r), unicode.IsDigit(r):
			out = append(out, symbols.TerminalRune(r))
		default:
			return nil, fmt.Errorf("unparseable token %q", r)
		}
	}
	if len(out) == 0 {
		out = symbols.Sequence{symbols.Epsilon}
	}
	return out, nil
}
