/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: thompson.go
Description: Thompson construction over a postfix token stream. Each fragment has one
start and one accept state; operators combine fragments with epsilon edges.
*/

package regex

import (
	"fmt"

	"github.com/kleascm/chomsky-toolkit/pkg/automata"
	"github.com/kleascm/chomsky-toolkit/pkg/symbols"
)

type fragment struct {
	start  automata.State
	accept automata.State
}

func thompson(expr string, postfix []token, alloc *automata.Allocator) (*automata.NFA, error) {
	if len(postfix) == 0 {
		return nil, &SyntaxError{Expr: expr, Pos: -1, Msg: "empty expression"}
	}

	b := automata.NewNFABuilder(alloc)
	var stack []fragment

	pop := func(t token) (fragment, error) {
		if len(stack) == 0 {
			return fragment{}, &SyntaxError{Expr: expr, Pos: t.pos, Msg: fmt.Sprintf("operator %q is missing an operand", t.String())}
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, nil
	}

	for _, t := range postfix {
		switch t.kind {
		case tokSymbol:
			s, f := b.NewState(), b.NewState()
			b.AddEdge(s, symbols.TerminalRune(t.char), f)
			stack = append(stack, fragment{s, f})

		case tokConcat:
			right, err := pop(t)
			if err != nil {
				return nil, err
			}
			left, err := pop(t)
			if err != nil {
				return nil, err
			}
			b.AddEpsilon(left.accept, right.start)
			stack = append(stack, fragment{left.start, right.accept})

		case tokUnion:
			right, err := pop(t)
			if err != nil {
				return nil, err
			}
			left, err := pop(t)
			if err != nil {
				return nil, err
			}
			s, f := b.NewState(), b.NewState()
			b.AddEpsilon(s, left.start)
			b.AddEpsilon(s, right.start)
			b.AddEpsilon(left.accept, f)
			b.AddEpsilon(right.accept, f)
			stack = append(stack, fragment{s, f})

		case tokStar, tokPlus, tokOptional:
			inner, err := pop(t)
			if err != nil {
				return nil, err
			}
			s, f := b.NewState(), b.NewState()
			b.AddEpsilon(s, inner.start)
			b.AddEpsilon(inner.accept, f)
			if t.kind != tokOptional {
				// repeat
				b.AddEpsilon(inner.accept, inner.start)
			}
			if t.kind != tokPlus {
				// skip
				b.AddEpsilon(s, f)
			}
			stack = append(stack, fragment{s, f})

		default:
			return nil, &SyntaxError{Expr: expr, Pos: t.pos, Msg: fmt.Sprintf("unexpected token %q", t.String())}
		}
	}

	if len(stack) != 1 {
		return nil, &SyntaxError{Expr: expr, Pos: -1, Msg: fmt.Sprintf("evaluation left %d fragments", len(stack))}
	}
	return b.Build(stack[0].start, stack[0].accept), nil
}
