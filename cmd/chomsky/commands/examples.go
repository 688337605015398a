/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: examples.go
Description: examples command. Lists the built-in grammar catalog, optionally classifying
each entry to show the classifier agreeing with the catalog.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/kleascm/chomsky-toolkit/pkg/classifier"
	"github.com/kleascm/chomsky-toolkit/pkg/grammar"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ListExamples prints the example catalog
func ListExamples(cmd *cobra.Command, v *viper.Viper, args []string) error {
	e, err := setup(cmd, v)
	if err != nil {
		return err
	}
	defer e.logger.Close()

	level, _ := cmd.Flags().GetInt("level")
	withClassify, _ := cmd.Flags().GetBool("classify")

	var examples []grammar.Example
	if level < 0 {
		examples, err = grammar.Examples()
	} else {
		examples, err = grammar.ExamplesForLevel(level)
	}
	if err != nil {
		return err
	}

	for i, ex := range examples {
		if i > 0 {
			fmt.Fprintln(e.out)
		}
		fmt.Fprintf(e.out, "%s - %s\n", ex.Name, classifier.Level(ex.Level))
		fmt.Fprintf(e.out, "  %s\n", ex.Description)
		for _, line := range strings.Split(strings.TrimSpace(ex.Text), "\n") {
			fmt.Fprintf(e.out, "    %s\n", strings.TrimSpace(line))
		}
		if !withClassify {
			continue
		}
		g, err := ex.Grammar()
		if err != nil {
			return fmt.Errorf("example %s: %w", ex.Name, err)
		}
		res, err := e.toolkit.Classify(g)
		if err != nil {
			return fmt.Errorf("example %s: %w", ex.Name, err)
		}
		fmt.Fprintf(e.out, "  %s\n", res.Summary())
	}
	return nil
}
