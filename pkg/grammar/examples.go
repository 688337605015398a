/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: examples.go
Description: Embedded catalog of sample grammars covering every level of the hierarchy.
*/

package grammar

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed examples.yaml
var examplesYAML []byte

// Example is one catalog entry
type Example struct {
	Name        string `yaml:"name"`
	Level       int    `yaml:"level"`
	Description string `yaml:"description"`
	Text        string `yaml:"grammar"`
}

// Grammar parses the example text
func (e Example) Grammar() (*Grammar, error) {
	return Parse(e.Text)
}

// Examples decodes the embedded catalog
func Examples() ([]Example, error) {
	var out []Example
	if err := yaml.Unmarshal(examplesYAML, &out); err != nil {
		return nil, fmt.Errorf("failed to decode example catalog: %w", err)
	}
	return out, nil
}

// ExamplesForLevel returns the catalog entries expected at level
func ExamplesForLevel(level int) ([]Example, error) {
	all, err := Examples()
	if err != nil {
		return nil, err
	}
	var out []Example
	for _, e := range all {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out, nil
}
