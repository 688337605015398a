/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: compare.go
Description: Approximate grammar comparison by Jaccard similarity of sampled languages.
*/

package sampler

import (
	"fmt"

	"github.com/kleascm/chomsky-toolkit/pkg/grammar"
	"golang.org/x/exp/slices"
)

// maxListed caps the difference lists kept in a Comparison
const maxListed = 20

// Comparison summarises two sampled languages at a shared bound. Similarity is an
// estimate; 1.0 does not prove equivalence and less than 1.0 does not prove the
// opposite when a sample was truncated.
type Comparison struct {
	Bounds       Bounds   `json:"bounds"`
	Similarity   float64  `json:"similarity"`
	Intersection int      `json:"intersection"`
	Union        int      `json:"union"`
	OnlyLeft     []string `json:"only_left"`
	OnlyRight    []string `json:"only_right"`
	Truncated    bool     `json:"truncated"`
}

// SameSample reports whether both samples hold exactly the same words
func (c *Comparison) SameSample() bool {
	return c.Intersection == c.Union
}

// String renders the comparison notes
func (c *Comparison) String() string {
	return fmt.Sprintf("similarity=%.3f |L1∩L2|=%d |L1∪L2|=%d\nL1-L2: %q\nL2-L1: %q\n",
		c.Similarity, c.Intersection, c.Union, c.OnlyLeft, c.OnlyRight)
}

// Compare samples both grammars with b and measures their overlap. Two empty
// samples count as identical.
func Compare(left, right *grammar.Grammar, b Bounds) *Comparison {
	l := Sample(left, b)
	r := Sample(right, b)
	return compareResults(l, r, b)
}

func compareResults(l, r *Result, b Bounds) *Comparison {
	c := &Comparison{Bounds: b, Truncated: l.Truncated || r.Truncated}
	for _, w := range l.Words {
		if r.Contains(w) {
			c.Intersection++
		} else {
			c.OnlyLeft = append(c.OnlyLeft, w)
		}
	}
	for _, w := range r.Words {
		if !l.Contains(w) {
			c.OnlyRight = append(c.OnlyRight, w)
		}
	}
	c.Union = c.Intersection + len(c.OnlyLeft) + len(c.OnlyRight)
	if c.Union == 0 {
		c.Similarity = 1.0
	} else {
		c.Similarity = float64(c.Intersection) / float64(c.Union)
	}
	slices.Sort(c.OnlyLeft)
	slices.Sort(c.OnlyRight)
	if len(c.OnlyLeft) > maxListed {
		c.OnlyLeft = c.OnlyLeft[:maxListed]
	}
	if len(c.OnlyRight) > maxListed {
		c.OnlyRight = c.OnlyRight[:maxListed]
	}
	return c
}
