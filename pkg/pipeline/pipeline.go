/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pipeline.go
Description: Toolkit ties the stages together: regex compilation, subset construction, grammar
synthesis, parsing, classification, sampling and comparison. Each stage is timed and logged
through the structured logger so a run can be followed end to end.
*/

package pipeline

import (
	"fmt"
	"time"

	"github.com/kleascm/chomsky-toolkit/pkg/automata"
	"github.com/kleascm/chomsky-toolkit/pkg/classifier"
	"github.com/kleascm/chomsky-toolkit/pkg/grammar"
	"github.com/kleascm/chomsky-toolkit/pkg/logging"
	"github.com/kleascm/chomsky-toolkit/pkg/regex"
	"github.com/kleascm/chomsky-toolkit/pkg/sampler"
	"github.com/kleascm/chomsky-toolkit/pkg/synthesis"
)

// Toolkit runs the toolkit stages with shared bounds and logging
type Toolkit struct {
	logger        *logging.Logger
	bounds        sampler.Bounds
	compareBounds sampler.Bounds
}

// Options configures a Toolkit
type Options struct {
	Bounds        sampler.Bounds
	CompareBounds sampler.Bounds
}

// DefaultOptions uses the sampler defaults for both bounds
func DefaultOptions() Options {
	return Options{
		Bounds:        sampler.DefaultBounds(),
		CompareBounds: sampler.DefaultBounds(),
	}
}

// New creates a Toolkit. A nil logger gets the default configuration.
func New(logger *logging.Logger, opts Options) (*Toolkit, error) {
	if logger == nil {
		l, err := logging.NewLogger(nil)
		if err != nil {
			return nil, err
		}
		logger = l
	}
	return &Toolkit{
		logger:        logger,
		bounds:        opts.Bounds,
		compareBounds: opts.CompareBounds,
	}, nil
}

// Bounds returns the sampling bounds in use
func (t *Toolkit) Bounds() sampler.Bounds {
	return t.bounds
}

// Logger returns the toolkit logger
func (t *Toolkit) Logger() *logging.Logger {
	return t.logger
}

// Conversion holds every intermediate of a regex to grammar run
type Conversion struct {
	Regex   string
	Postfix string
	NFA     *automata.NFA
	DFA     *automata.DFA
	Grammar *grammar.Grammar
}

// RegexToGrammar compiles expr to an NFA, determinizes it and synthesizes a right-linear grammar
func (t *Toolkit) RegexToGrammar(expr string) (*Conversion, error) {
	started := time.Now()
	parsed, err := regex.Parse(expr)
	if err != nil {
		t.logger.LogFailure(logging.StageRegex, err, map[string]interface{}{"regex": expr})
		return nil, err
	}
	postfix := parsed.Postfix()
	nfa, err := parsed.Compile(automata.NewAllocator())
	if err != nil {
		t.logger.LogFailure(logging.StageRegex, err, map[string]interface{}{"regex": expr})
		return nil, err
	}
	t.logger.LogStage(logging.StageRegex, time.Since(started), map[string]interface{}{
		"regex":      expr,
		"postfix":    postfix,
		"nfa_states": nfa.NumStates(),
	})

	started = time.Now()
	dfa := automata.Determinize(nfa)
	t.logger.LogStage(logging.StageDFA, time.Since(started), map[string]interface{}{
		"dfa_states": dfa.NumStates(),
		"accepting":  len(dfa.Accepts()),
		"alphabet":   len(dfa.Alphabet),
		"dfa":        dfa.FingerprintHex(),
	})

	started = time.Now()
	g := synthesis.FromDFA(dfa)
	t.logger.LogStage(logging.StageSynth, time.Since(started), map[string]interface{}{
		"productions": len(g.Productions),
		"grammar":     g.FingerprintHex(),
	})

	return &Conversion{
		Regex:   expr,
		Postfix: postfix,
		NFA:     nfa,
		DFA:     dfa,
		Grammar: g,
	}, nil
}

// ParseGrammar parses grammar text
func (t *Toolkit) ParseGrammar(text string) (*grammar.Grammar, error) {
	started := time.Now()
	g, err := grammar.Parse(text)
	if err != nil {
		t.logger.LogFailure(logging.StageParse, err, nil)
		return nil, err
	}
	t.logger.LogStage(logging.StageParse, time.Since(started), map[string]interface{}{
		"productions":  len(g.Productions),
		"start":        g.Start.String(),
		"nonterminals": len(g.Nonterminals()),
		"terminals":    len(g.Terminals()),
	})
	return g, nil
}

// Classify classifies a parsed grammar
func (t *Toolkit) Classify(g *grammar.Grammar) (*classifier.Result, error) {
	res, err := classifier.Classify(g)
	if err != nil {
		t.logger.LogFailure(logging.StageClassify, err, nil)
		return nil, err
	}
	t.logger.LogClassification(g.FingerprintHex(), int(res.Level), len(res.Steps), nil)
	return res, nil
}

// ClassifyText parses and classifies grammar text
func (t *Toolkit) ClassifyText(text string) (*grammar.Grammar, *classifier.Result, error) {
	g, err := t.ParseGrammar(text)
	if err != nil {
		return nil, nil, err
	}
	res, err := t.Classify(g)
	if err != nil {
		return g, nil, err
	}
	return g, res, nil
}

// ClassifyAutomaton maps an automaton description to its level
func (t *Toolkit) ClassifyAutomaton(desc *automata.Description) (*classifier.Result, error) {
	res, err := classifier.ClassifyAutomaton(desc)
	if err != nil {
		t.logger.LogFailure(logging.StageClassify, err, nil)
		return nil, err
	}
	t.logger.Info("Automaton classified", map[string]interface{}{
		"stage":           logging.StageClassify,
		"kind":            string(desc.Kind),
		"hierarchy_level": int(res.Level),
	})
	return res, nil
}

// Sample samples g with the toolkit bounds
func (t *Toolkit) Sample(g *grammar.Grammar) *sampler.Result {
	return t.SampleWith(g, t.bounds)
}

// SampleWith samples g with explicit bounds
func (t *Toolkit) SampleWith(g *grammar.Grammar, b sampler.Bounds) *sampler.Result {
	res := sampler.Sample(g, b)
	t.logger.LogSample(len(res.Words), res.Steps, res.Truncated, map[string]interface{}{
		"max_len":   b.MaxLen,
		"max_steps": b.MaxSteps,
	})
	return res
}

// SampleText parses grammar text and samples it
func (t *Toolkit) SampleText(text string) (*sampler.Result, error) {
	g, err := t.ParseGrammar(text)
	if err != nil {
		return nil, err
	}
	return t.Sample(g), nil
}

// Compare compares two grammars over the comparison bounds
func (t *Toolkit) Compare(left, right *grammar.Grammar) *sampler.Comparison {
	started := time.Now()
	cmp := sampler.Compare(left, right, t.compareBounds)
	t.logger.LogStage(logging.StageCompare, time.Since(started), map[string]interface{}{
		"similarity": cmp.Similarity,
		"union":      cmp.Union,
		"common":     cmp.Intersection,
		"truncated":  cmp.Truncated,
	})
	return cmp
}

// CompareTexts parses both grammars and compares them
func (t *Toolkit) CompareTexts(left, right string) (*sampler.Comparison, error) {
	lg, err := t.ParseGrammar(left)
	if err != nil {
		return nil, fmt.Errorf("left grammar: %w", err)
	}
	rg, err := t.ParseGrammar(right)
	if err != nil {
		return nil, fmt.Errorf("right grammar: %w", err)
	}
	return t.Compare(lg, rg), nil
}
