/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: regex.go
Description: Regular expression compiler for the Chomsky toolkit. Scans the expression into
tokens, makes concatenation explicit, converts to postfix with the shunting-yard algorithm
and evaluates the postfix stream into an NFA by Thompson construction.
*/

package regex

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/kleascm/chomsky-toolkit/pkg/automata"
)

// ErrMalformedRegex is wrapped by every compilation failure
var ErrMalformedRegex = errors.New("malformed regex")

// SyntaxError locates a compilation failure in the whitespace-stripped expression
type SyntaxError struct {
	Expr string
	Pos  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%s: %s in %q", ErrMalformedRegex, e.Msg, e.Expr)
	}
	return fmt.Sprintf("%s: %s at position %d in %q", ErrMalformedRegex, e.Msg, e.Pos, e.Expr)
}

func (e *SyntaxError) Unwrap() error {
	return ErrMalformedRegex
}

// tokenKind classifies one regex token
type tokenKind int

const (
	tokSymbol tokenKind = iota
	tokUnion
	tokConcat
	tokStar
	tokPlus
	tokOptional
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	char rune
	pos  int
}

func (t token) String() string {
	switch t.kind {
	case tokSymbol:
		return string(t.char)
	case tokUnion:
		return "|"
	case tokConcat:
		return "."
	case tokStar:
		return "*"
	case tokPlus:
		return "+"
	case tokOptional:
		return "?"
	case tokLParen:
		return "("
	default:
		return ")"
	}
}

func (t token) isPostfix() bool {
	return t.kind == tokStar || t.kind == tokPlus || t.kind == tokOptional
}

// canEnd reports whether an expression may end right after t
func (t token) canEnd() bool {
	return t.kind == tokSymbol || t.kind == tokRParen || t.isPostfix()
}

// canStart reports whether an expression may start at t
func (t token) canStart() bool {
	return t.kind == tokSymbol || t.kind == tokLParen
}

// precedence: postfix operators > concatenation > union
func precedence(k tokenKind) int {
	switch k {
	case tokStar, tokPlus, tokOptional:
		return 3
	case tokConcat:
		return 2
	case tokUnion:
		return 1
	default:
		return 0
	}
}

// Expr is a validated expression in postfix form, ready for Thompson construction
type Expr struct {
	source  string
	postfix []token
}

// Parse strips whitespace from expr, validates it and converts it to postfix
func Parse(expr string) (*Expr, error) {
	clean := stripSpace(expr)
	tokens, err := tokenize(clean)
	if err != nil {
		return nil, err
	}
	postfix, err := toPostfix(clean, tokens)
	if err != nil {
		return nil, err
	}
	return &Expr{source: clean, postfix: postfix}, nil
}

// String returns the whitespace-stripped source
func (e *Expr) String() string {
	return e.source
}

// Postfix renders the postfix token stream with "." for concatenation,
// e.g. "(a|b)*abb" becomes "ab|*a.b.b.".
func (e *Expr) Postfix() string {
	var b strings.Builder
	for _, t := range e.postfix {
		b.WriteString(t.String())
	}
	return b.String()
}

// Compile builds the NFA of e drawing states from alloc
func (e *Expr) Compile(alloc *automata.Allocator) (*automata.NFA, error) {
	return thompson(e.source, e.postfix, alloc)
}

// Compile builds an NFA for expr. State identifiers start at 0 and are allocated
// left to right through the postfix stream.
func Compile(expr string) (*automata.NFA, error) {
	return CompileWith(expr, automata.NewAllocator())
}

// CompileWith builds an NFA drawing states from alloc
func CompileWith(expr string, alloc *automata.Allocator) (*automata.NFA, error) {
	e, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return e.Compile(alloc)
}

// Postfix returns the rendered postfix form of expr
func Postfix(expr string) (string, error) {
	e, err := Parse(expr)
	if err != nil {
		return "", err
	}
	return e.Postfix(), nil
}

// isLiteral accepts the ASCII alphanumerics a-z, A-Z and 0-9
func isLiteral(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

func stripSpace(expr string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expr)
}

// tokenize scans expr, validates operator placement and inserts explicit
// concatenation between every token that can end an expression and the
// following token that can start one.
func tokenize(expr string) ([]token, error) {
	if expr == "" {
		return nil, &SyntaxError{Expr: expr, Pos: -1, Msg: "empty expression"}
	}
	var out []token
	var prev token
	hasPrev := false
	pos := 0
	for _, r := range expr {
		t := token{char: r, pos: pos}
		switch {
		case r == '|':
			t.kind = tokUnion
		case r == '*':
			t.kind = tokStar
		case r == '+':
			t.kind = tokPlus
		case r == '?':
			t.kind = tokOptional
		case r == '(':
			t.kind = tokLParen
		case r == ')':
			t.kind = tokRParen
		case isLiteral(r):
			t.kind = tokSymbol
		default:
			return nil, &SyntaxError{Expr: expr, Pos: pos, Msg: fmt.Sprintf("invalid character %q", r)}
		}

		switch {
		case t.isPostfix() && (!hasPrev || !prev.canEnd()):
			return nil, &SyntaxError{Expr: expr, Pos: pos, Msg: fmt.Sprintf("operator %q has no operand", r)}
		case t.kind == tokUnion && (!hasPrev || !prev.canEnd()):
			return nil, &SyntaxError{Expr: expr, Pos: pos, Msg: "union has no left operand"}
		case t.kind == tokRParen && hasPrev && (prev.kind == tokLParen || prev.kind == tokUnion):
			return nil, &SyntaxError{Expr: expr, Pos: pos, Msg: "empty group or union operand"}
		}

		if hasPrev && prev.canEnd() && t.canStart() {
			out = append(out, token{kind: tokConcat, pos: pos})
		}
		out = append(out, t)
		prev, hasPrev = t, true
		pos++
	}
	if prev.kind == tokUnion {
		return nil, &SyntaxError{Expr: expr, Pos: prev.pos, Msg: "union has no right operand"}
	}
	return out, nil
}

// toPostfix runs the shunting-yard algorithm. Postfix operators bind tightest and
// go straight to the output.
func toPostfix(expr string, tokens []token) ([]token, error) {
	var output, ops []token
	for _, t := range tokens {
		switch {
		case t.kind == tokSymbol:
			output = append(output, t)
		case t.isPostfix():
			output = append(output, t)
		case t.kind == tokLParen:
			ops = append(ops, t)
		case t.kind == tokRParen:
			for len(ops) > 0 && ops[len(ops)-1].kind != tokLParen {
				output = append(output, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return nil, &SyntaxError{Expr: expr, Pos: t.pos, Msg: "unbalanced parentheses"}
			}
			ops = ops[:len(ops)-1]
		default:
			for len(ops) > 0 && ops[len(ops)-1].kind != tokLParen &&
				precedence(ops[len(ops)-1].kind) >= precedence(t.kind) {
				output = append(output, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind == tokLParen {
			return nil, &SyntaxError{Expr: expr, Pos: top.pos, Msg: "unbalanced parentheses"}
		}
		output = append(output, top)
	}
	return output, nil
}
