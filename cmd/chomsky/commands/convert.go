/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: convert.go
Description: regex-to-grammar command. Runs the regex → NFA → DFA → grammar pipeline and
writes the synthesized grammar, with optional DOT exports of both automata.
*/

package commands

import (
	"fmt"
	"io"

	"github.com/kleascm/chomsky-toolkit/pkg/automata"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RegexToGrammar converts the regular expression in args[0]
func RegexToGrammar(cmd *cobra.Command, v *viper.Viper, args []string) error {
	e, err := setup(cmd, v)
	if err != nil {
		return err
	}
	defer e.logger.Close()

	conv, err := e.toolkit.RegexToGrammar(args[0])
	if err != nil {
		return err
	}

	if nfaDot, _ := cmd.Flags().GetString("nfa-dot"); nfaDot != "" {
		err := writeFile(nfaDot, func(w io.Writer) error {
			return automata.WriteNFADOT(w, conv.NFA, args[0])
		})
		if err != nil {
			return err
		}
	}
	if dfaDot, _ := cmd.Flags().GetString("dot"); dfaDot != "" {
		err := writeFile(dfaDot, func(w io.Writer) error {
			return automata.WriteDFADOT(w, conv.DFA, args[0])
		})
		if err != nil {
			return err
		}
	}

	if show, _ := cmd.Flags().GetBool("show-dfa"); show {
		fmt.Fprintf(e.out, "# postfix: %s\n", conv.Postfix)
		fmt.Fprint(e.out, conv.DFA.String())
		fmt.Fprintln(e.out)
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		err := writeFile(out, func(w io.Writer) error {
			_, err := io.WriteString(w, conv.Grammar.String())
			return err
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(e.out, "Grammar written to %s\n", out)
		return nil
	}

	fmt.Fprint(e.out, conv.Grammar.String())
	return nil
}
