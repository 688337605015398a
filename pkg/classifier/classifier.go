/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: classifier.go
Description: Chomsky hierarchy classifier. Runs a layered decision procedure over a parsed
grammar (right-linear shape, single-nonterminal left-hand sides, non-contracting rules)
and records one finding per layer examined, ending with a summary line. The trace is part
of the result, not logging: reports and front ends print it verbatim.
*/

package classifier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kleascm/chomsky-toolkit/pkg/automata"
	"github.com/kleascm/chomsky-toolkit/pkg/grammar"
	"github.com/kleascm/chomsky-toolkit/pkg/symbols"
)

// ErrEmptyGrammar is returned for a grammar without productions
var ErrEmptyGrammar = errors.New("cannot classify an empty grammar")

// Step is one finding of the trace
type Step struct {
	Layer  Level  `json:"layer"`
	Rule   string `json:"rule"`
	Passed bool   `json:"passed"`
	// Offending is the first production that broke the rule, as "LHS -> alternative"
	Offending string `json:"offending,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// String renders the step as one trace line
func (s Step) String() string {
	mark := "PASS"
	if !s.Passed {
		mark = "FAIL"
	}
	line := fmt.Sprintf("[%s] %s: %s", mark, s.Layer, s.Rule)
	if !s.Passed {
		line += fmt.Sprintf("; %s in %s", s.Reason, s.Offending)
	}
	return line
}

// Result is the outcome of a classification
type Result struct {
	Level Level  `json:"level"`
	Steps []Step `json:"steps"`
}

// Summary is the closing line of the trace
func (r *Result) Summary() string {
	return "Classification: " + r.Level.String()
}

// Lines returns the trace, one line per layer examined followed by the summary
func (r *Result) Lines() []string {
	out := make([]string, 0, len(r.Steps)+1)
	for _, s := range r.Steps {
		out = append(out, s.String())
	}
	return append(out, r.Summary())
}

// String joins Lines with newlines
func (r *Result) String() string {
	return strings.Join(r.Lines(), "\n") + "\n"
}

// rule texts
const (
	ruleRegular          = "every production has the form A -> aB, A -> a or A -> ε"
	ruleContextFree      = "every left-hand side is a single nonterminal"
	ruleContextSensitive = "every production satisfies |lhs| <= |rhs|, with S -> ε allowed only when the start symbol S never occurs on a right-hand side"
	ruleUnrestricted     = "no structural restriction applies"
)

// violation locates the first production breaking a layer
type violation struct {
	prod   grammar.Production
	alt    int
	reason string
}

func (v *violation) rule() string {
	if v.alt < 0 {
		return v.prod.String()
	}
	return v.prod.Rule(v.alt)
}

// Classify places g in the hierarchy. Layers are tried from the most restricted;
// the first layer that holds decides the level, with level 0 as the fallback.
func Classify(g *grammar.Grammar) (*Result, error) {
	if g == nil || len(g.Productions) == 0 {
		return nil, ErrEmptyGrammar
	}

	res := &Result{}
	layers := []struct {
		level Level
		rule  string
		check func(*grammar.Grammar) *violation
	}{
		{Regular, ruleRegular, checkRightLinear},
		{ContextFree, ruleContextFree, checkSingleNonterminalLHS},
		{ContextSensitive, ruleContextSensitive, checkNonContracting},
	}

	for _, layer := range layers {
		v := layer.check(g)
		step := Step{Layer: layer.level, Rule: layer.rule, Passed: v == nil}
		if v != nil {
			step.Offending = v.rule()
			step.Reason = v.reason
		}
		res.Steps = append(res.Steps, step)
		if v == nil {
			res.Level = layer.level
			return res, nil
		}
	}

	res.Steps = append(res.Steps, Step{Layer: Unrestricted, Rule: ruleUnrestricted, Passed: true})
	res.Level = Unrestricted
	return res, nil
}

// checkRightLinear accepts only single-nonterminal left-hand sides with alternatives
// shaped ε, a or aB. Left-linear alternatives (Ba) are rejected.
func checkRightLinear(g *grammar.Grammar) *violation {
	for _, p := range g.Productions {
		if !p.LHS.IsSingleNonterminal() {
			return &violation{prod: p, alt: -1, reason: fmt.Sprintf("left-hand side %s is not a single nonterminal", p.LHS)}
		}
		for i, alt := range p.Alternatives {
			if !isRightLinear(alt) {
				return &violation{prod: p, alt: i, reason: fmt.Sprintf("right-hand side %s is not of the form aB, a or ε", alt)}
			}
		}
	}
	return nil
}

func isRightLinear(alt symbols.Sequence) bool {
	body := withoutEpsilon(alt)
	switch len(body) {
	case 0:
		return true
	case 1:
		return body[0].IsTerminal()
	case 2:
		return body[0].IsTerminal() && body[1].IsNonterminal()
	default:
		return false
	}
}

func checkSingleNonterminalLHS(g *grammar.Grammar) *violation {
	for _, p := range g.Productions {
		if !p.LHS.IsSingleNonterminal() {
			return &violation{prod: p, alt: -1, reason: fmt.Sprintf("left-hand side %s has %d symbols", p.LHS, p.LHS.Len())}
		}
	}
	return nil
}

// checkNonContracting is a necessary condition for context-sensitivity only; it is
// deliberately not a decision procedure.
func checkNonContracting(g *grammar.Grammar) *violation {
	startOnRHS := g.OccursOnRHS(g.Start)
	for _, p := range g.Productions {
		lhsLen := p.LHS.Len()
		for i, alt := range p.Alternatives {
			if alt.IsEmpty() {
				isStart := p.LHS.IsSingleNonterminal() && p.LHS[0] == g.Start
				switch {
				case !isStart:
					return &violation{prod: p, alt: i, reason: fmt.Sprintf("ε-production on %s, which is not the start symbol", p.LHS)}
				case startOnRHS:
					return &violation{prod: p, alt: i, reason: fmt.Sprintf("ε-production on start symbol %s, which occurs on a right-hand side", g.Start)}
				}
				continue
			}
			if rhsLen := alt.Len(); rhsLen < lhsLen {
				return &violation{prod: p, alt: i, reason: fmt.Sprintf("right-hand side is shorter than left-hand side (%d < %d)", rhsLen, lhsLen)}
			}
		}
	}
	return nil
}

func withoutEpsilon(q symbols.Sequence) symbols.Sequence {
	out := make(symbols.Sequence, 0, len(q))
	for _, s := range q {
		if !s.IsEpsilon() {
			out = append(out, s)
		}
	}
	return out
}

// ClassifyAutomaton maps a decoded automaton description onto the hierarchy. The
// trace holds a single step naming the machine model.
func ClassifyAutomaton(desc *automata.Description) (*Result, error) {
	level, err := LevelOf(desc.Kind)
	if err != nil {
		return nil, err
	}
	return &Result{
		Level: level,
		Steps: []Step{{
			Layer:  level,
			Rule:   fmt.Sprintf("a %s recognises %s languages", level.Recognizer(), level.Name()),
			Passed: true,
		}},
	}, nil
}
