/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: level.go
Description: Levels of the Chomsky hierarchy and the automaton kinds that recognise them.
*/

package classifier

import (
	"fmt"

	"github.com/kleascm/chomsky-toolkit/pkg/automata"
)

// Level is an ordinal of the hierarchy: 3 is the most restricted, 0 the least
type Level int

const (
	Unrestricted     Level = 0
	ContextSensitive Level = 1
	ContextFree      Level = 2
	Regular          Level = 3
)

// Name returns the family name of the level
func (l Level) Name() string {
	switch l {
	case Regular:
		return "regular"
	case ContextFree:
		return "context-free"
	case ContextSensitive:
		return "context-sensitive"
	case Unrestricted:
		return "unrestricted"
	default:
		return "unknown"
	}
}

// String renders e.g. "Type 2 (context-free)"
func (l Level) String() string {
	return fmt.Sprintf("Type %d (%s)", int(l), l.Name())
}

// Recognizer names the machine model that accepts languages of the level
func (l Level) Recognizer() string {
	switch l {
	case Regular:
		return "finite automaton (DFA/NFA)"
	case ContextFree:
		return "pushdown automaton (PDA)"
	case ContextSensitive:
		return "linear bounded automaton (LBA)"
	default:
		return "Turing machine (TM)"
	}
}

// LevelOf maps an automaton kind onto the level of the languages it recognises
func LevelOf(kind automata.Kind) (Level, error) {
	switch kind {
	case automata.KindDFA, automata.KindNFA:
		return Regular, nil
	case automata.KindPDA:
		return ContextFree, nil
	case automata.KindLBA:
		return ContextSensitive, nil
	case automata.KindTM:
		return Unrestricted, nil
	default:
		return 0, fmt.Errorf("%w: unknown type %q", automata.ErrMalformedAutomaton, kind)
	}
}
