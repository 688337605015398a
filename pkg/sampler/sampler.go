/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sampler.go
Description: Bounded language sampler. Explores sentential forms breadth-first with leftmost
derivations, keeping every terminal word up to a length bound. The step cap makes the search
terminate on any grammar; the result is an under-approximation of the language, never a
membership oracle.
*/

package sampler

import (
	"strings"

	"github.com/kleascm/chomsky-toolkit/pkg/grammar"
	"github.com/kleascm/chomsky-toolkit/pkg/symbols"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Defaults for the two bounds
const (
	DefaultMaxLen   = 5
	DefaultMaxSteps = 2000
)

// Bounds caps the exploration
type Bounds struct {
	MaxLen   int `json:"max_len" mapstructure:"max_len"`
	MaxSteps int `json:"max_steps" mapstructure:"max_steps"`
}

// DefaultBounds returns the default bounds
func DefaultBounds() Bounds {
	return Bounds{MaxLen: DefaultMaxLen, MaxSteps: DefaultMaxSteps}
}

// Result is the sampled fragment of a language
type Result struct {
	// Words holds the sampled strings in ascending order; "" is the empty word
	Words []string `json:"words"`
	// Steps counts the sentential forms expanded
	Steps int `json:"steps"`
	// Truncated is set when the step cap stopped the search with work left
	Truncated bool `json:"truncated"`

	set map[string]bool
}

// Contains reports whether word was sampled
func (r *Result) Contains(word string) bool {
	return r.set[word]
}

// Set returns the sampled words as a set
func (r *Result) Set() map[string]bool {
	return r.set
}

// Sample derives words of g no longer than b.MaxLen, expanding at most b.MaxSteps
// sentential forms. Only productions whose left-hand side is a single nonterminal
// take part in the derivation. Sample never fails; it returns what it found.
func Sample(g *grammar.Grammar, b Bounds) *Result {
	res := &Result{set: make(map[string]bool)}
	if g == nil || len(g.Productions) == 0 || b.MaxLen < 0 || b.MaxSteps <= 0 {
		return res
	}

	rules := make(map[symbols.Symbol][]symbols.Sequence)
	for _, p := range g.Productions {
		if p.LHS.IsSingleNonterminal() {
			rules[p.LHS[0]] = append(rules[p.LHS[0]], p.Alternatives...)
		}
	}

	start := symbols.Sequence{g.Start}
	queue := []symbols.Sequence{start}
	seen := map[string]bool{formKey(start): true}

	for len(queue) > 0 && res.Steps < b.MaxSteps {
		form := queue[0]
		queue = queue[1:]
		res.Steps++

		i := leftmostNonterminal(form)
		if i < 0 {
			if w := form.Word(); len([]rune(w)) <= b.MaxLen {
				res.set[w] = true
			}
			continue
		}

		for _, alt := range rules[form[i]] {
			next := substitute(form, i, alt)
			// terminals are never rewritten, so a form over the bound stays over it
			if terminalCount(next) > b.MaxLen {
				continue
			}
			key := formKey(next)
			if seen[key] {
				continue
			}
			seen[key] = true
			queue = append(queue, next)
		}
	}

	res.Truncated = len(queue) > 0
	res.Words = maps.Keys(res.set)
	slices.Sort(res.Words)
	return res
}

func leftmostNonterminal(form symbols.Sequence) int {
	for i, s := range form {
		if s.IsNonterminal() {
			return i
		}
	}
	return -1
}

// substitute replaces form[i] with alt, dropping epsilon
func substitute(form symbols.Sequence, i int, alt symbols.Sequence) symbols.Sequence {
	out := make(symbols.Sequence, 0, len(form)+len(alt))
	out = append(out, form[:i]...)
	for _, s := range alt {
		if !s.IsEpsilon() {
			out = append(out, s)
		}
	}
	return append(out, form[i+1:]...)
}

func terminalCount(form symbols.Sequence) int {
	n := 0
	for _, s := range form {
		if s.IsTerminal() {
			n += len([]rune(s.Value))
		}
	}
	return n
}

func formKey(form symbols.Sequence) string {
	var b strings.Builder
	for _, s := range form {
		b.WriteString(s.String())
		b.WriteByte(0)
	}
	return b.String()
}
