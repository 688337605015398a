/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sample.go
Description: Sampling commands. sample lists the words of one grammar up to a length bound;
compare estimates the overlap of two grammars' languages.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Sample prints the sampled words of the grammar in args[0], one per line
func Sample(cmd *cobra.Command, v *viper.Viper, args []string) error {
	e, err := setup(cmd, v)
	if err != nil {
		return err
	}
	defer e.logger.Close()

	text, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}
	res, err := e.toolkit.SampleText(string(text))
	if err != nil {
		return err
	}

	for _, w := range res.Words {
		fmt.Fprintln(e.out, displayWord(w))
	}
	b := e.toolkit.Bounds()
	summary := fmt.Sprintf("# %d words, length <= %d, %d steps", len(res.Words), b.MaxLen, res.Steps)
	if res.Truncated {
		summary += fmt.Sprintf(" (stopped at the %d step limit)", b.MaxSteps)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), summary)
	return nil
}

// Compare prints the similarity of the grammars in args[0] and args[1]
func Compare(cmd *cobra.Command, v *viper.Viper, args []string) error {
	e, err := setup(cmd, v)
	if err != nil {
		return err
	}
	defer e.logger.Close()

	left, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}
	right, err := readInput(cmd, args[1])
	if err != nil {
		return err
	}

	cmp, err := e.toolkit.CompareTexts(string(left), string(right))
	if err != nil {
		return err
	}
	fmt.Fprint(e.out, cmp.String())
	if cmp.Truncated {
		fmt.Fprintln(e.out, "note: a sample hit the step limit; the estimate may be low")
	}
	return nil
}
