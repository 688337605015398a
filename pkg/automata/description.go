/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: description.go
Description: Loader for automaton descriptions supplied as JSON or YAML. Resolves the
automaton kind (with tolerated synonyms) and, for DFAs, rebuilds a DFA value from the
state/alphabet/transition tables. Malformed input and unknown kinds are reported as
errors, never guessed.
*/

package automata

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kleascm/chomsky-toolkit/pkg/symbols"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// ErrMalformedAutomaton is wrapped by every description loading failure
var ErrMalformedAutomaton = errors.New("malformed automaton description")

// Kind is a machine model of the Chomsky hierarchy
type Kind string

const (
	KindDFA Kind = "DFA"
	KindNFA Kind = "NFA"
	KindPDA Kind = "PDA"
	KindLBA Kind = "LBA"
	KindTM  Kind = "TM"
)

// kindSynonyms maps accepted spellings onto canonical kinds
var kindSynonyms = map[string]Kind{
	"DFA":                      KindDFA,
	"NFA":                      KindNFA,
	"PDA":                      KindPDA,
	"LBA":                      KindLBA,
	"TM":                       KindTM,
	"FINITE":                   KindDFA,
	"FINITE_AUTOMATON":         KindDFA,
	"AP":                       KindPDA,
	"TURING":                   KindTM,
	"TURINGMACHINE":            KindTM,
	"MT":                       KindTM,
	"LINEARBOUNDED":            KindLBA,
	"LINEAR_BOUNDED_AUTOMATON": KindLBA,
}

// ParseKind resolves a type tag, case-insensitively
func ParseKind(tag string) (Kind, error) {
	key := strings.ToUpper(strings.TrimSpace(tag))
	if key == "" {
		return "", fmt.Errorf("%w: missing required field \"type\"", ErrMalformedAutomaton)
	}
	kind, ok := kindSynonyms[key]
	if !ok {
		return "", fmt.Errorf("%w: unknown type %q (use DFA, NFA, PDA, LBA or TM)", ErrMalformedAutomaton, tag)
	}
	return kind, nil
}

// Description is a decoded automaton description
type Description struct {
	Kind Kind
	// DFA is set only when Kind is KindDFA
	DFA *DFA
	// StateNames maps DFA state ids back to the names used in the source
	StateNames []string
	// Raw keeps every decoded field, for kinds the toolkit does not simulate
	Raw map[string]interface{}
}

type rawDescription struct {
	Type        string                       `json:"type" yaml:"type"`
	States      []string                     `json:"states" yaml:"states"`
	Alphabet    []string                     `json:"alphabet" yaml:"alphabet"`
	Start       *string                      `json:"start" yaml:"start"`
	Accepts     []string                     `json:"accepts" yaml:"accepts"`
	Transitions map[string]map[string]string `json:"transitions" yaml:"transitions"`
}

// ParseDescription decodes a JSON automaton description
func ParseDescription(data []byte) (*Description, error) {
	var raw rawDescription
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrMalformedAutomaton, err)
	}
	var all map[string]interface{}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrMalformedAutomaton, err)
	}
	return buildDescription(&raw, all)
}

// ParseDescriptionYAML decodes a YAML automaton description with the same schema
func ParseDescriptionYAML(data []byte) (*Description, error) {
	var raw rawDescription
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: invalid YAML: %v", ErrMalformedAutomaton, err)
	}
	var all map[string]interface{}
	if err := yaml.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("%w: invalid YAML: %v", ErrMalformedAutomaton, err)
	}
	return buildDescription(&raw, all)
}

func buildDescription(raw *rawDescription, all map[string]interface{}) (*Description, error) {
	kind, err := ParseKind(raw.Type)
	if err != nil {
		return nil, err
	}
	desc := &Description{Kind: kind, Raw: all}
	if kind != KindDFA {
		return desc, nil
	}
	dfa, names, err := buildDFA(raw)
	if err != nil {
		return nil, err
	}
	desc.DFA = dfa
	desc.StateNames = names
	return desc, nil
}

// buildDFA numbers states in the order they are listed under "states"
func buildDFA(raw *rawDescription) (*DFA, []string, error) {
	switch {
	case raw.States == nil:
		return nil, nil, missingField("states")
	case raw.Alphabet == nil:
		return nil, nil, missingField("alphabet")
	case raw.Start == nil:
		return nil, nil, missingField("start")
	case raw.Accepts == nil:
		return nil, nil, missingField("accepts")
	case raw.Transitions == nil:
		return nil, nil, missingField("transitions")
	}

	b := NewDFABuilder(NewAllocator())
	ids := make(map[string]State, len(raw.States))
	for _, name := range raw.States {
		if _, dup := ids[name]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate state %q", ErrMalformedAutomaton, name)
		}
		ids[name] = b.NewState()
	}
	lookup := func(name, role string) (State, error) {
		id, ok := ids[name]
		if !ok {
			return 0, fmt.Errorf("%w: %s state %q is not declared in states", ErrMalformedAutomaton, role, name)
		}
		return id, nil
	}

	alphabet := make(map[string]bool, len(raw.Alphabet))
	for _, a := range raw.Alphabet {
		if a == "" {
			return nil, nil, fmt.Errorf("%w: empty alphabet symbol", ErrMalformedAutomaton)
		}
		alphabet[a] = true
		b.AddSymbol(symbols.Terminal(a))
	}

	start, err := lookup(*raw.Start, "start")
	if err != nil {
		return nil, nil, err
	}
	for _, name := range raw.Accepts {
		id, err := lookup(name, "accepting")
		if err != nil {
			return nil, nil, err
		}
		b.SetAccepting(id)
	}

	froms := maps.Keys(raw.Transitions)
	slices.Sort(froms)
	for _, fromName := range froms {
		from, err := lookup(fromName, "source")
		if err != nil {
			return nil, nil, err
		}
		edges := raw.Transitions[fromName]
		syms := maps.Keys(edges)
		slices.Sort(syms)
		for _, sym := range syms {
			if !alphabet[sym] {
				return nil, nil, fmt.Errorf("%w: symbol %q on state %q is not in the alphabet", ErrMalformedAutomaton, sym, fromName)
			}
			to, err := lookup(edges[sym], "target")
			if err != nil {
				return nil, nil, err
			}
			b.SetTransition(from, symbols.Terminal(sym), to)
		}
	}

	return b.Build(start), raw.States, nil
}

func missingField(name string) error {
	return fmt.Errorf("%w: missing required field %q", ErrMalformedAutomaton, name)
}
