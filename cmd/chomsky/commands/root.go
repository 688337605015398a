/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: root.go
Description: Root command for the Chomsky toolkit CLI. Declares the persistent flags shared by
every subcommand, binds them into viper and registers the classification, conversion,
sampling and catalog commands.
*/

package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand builds the command tree with its own viper instance
func NewRootCommand() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "chomsky",
		Short: "Chomsky toolkit - regular expressions, automata and grammar classification",
		Long: `The Chomsky toolkit converts regular expressions into finite automata and
right-linear grammars, parses arbitrary phrase-structure grammars, places them in the
Chomsky hierarchy with a step-by-step trace, samples their languages up to a length
bound and estimates how similar two grammars are.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags
	rootCmd.PersistentFlags().String("config", "", "Configuration file path (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().String("log-dir", "", "Write log files to this directory")

	v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	v.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	v.BindPFlag("log.output_dir", rootCmd.PersistentFlags().Lookup("log-dir"))

	// classify-grammar
	classifyGrammarCmd := &cobra.Command{
		Use:   "classify-grammar FILE",
		Short: "Classify a grammar in the Chomsky hierarchy",
		Long: `Parse a grammar (one production per line, alternatives separated by | or ;,
arrows ->, →, ⇒ or :) and classify it. Prints the layered decision trace followed by
the resulting level. Use - to read the grammar from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ClassifyGrammar(cmd, v, args)
		},
	}
	classifyGrammarCmd.Flags().String("report", "", "Write a classification report into this directory")
	classifyGrammarCmd.Flags().Bool("save-report", false, "Write a classification report into report.output_dir")
	classifyGrammarCmd.Flags().String("report-format", "", "Report format (html, md)")
	classifyGrammarCmd.Flags().String("dot", "", "Write the grammar dependency graph in DOT format to this file")
	classifyGrammarCmd.Flags().Bool("sample", false, "Include a bounded language sample in the report")
	classifyGrammarCmd.Flags().Int("max-len", 0, "Maximum sampled word length")
	classifyGrammarCmd.Flags().Int("max-steps", 0, "Maximum sentential forms expanded while sampling")
	classifyGrammarCmd.Flags().String("json", "", "Write the classification as JSON into this directory")
	rootCmd.AddCommand(classifyGrammarCmd)

	// classify-batch
	batchCmd := &cobra.Command{
		Use:   "classify-batch FILE...",
		Short: "Classify many grammar files concurrently",
		Long: `Classify every grammar file given, using a bounded pool of workers. Prints one
line per file in argument order. Files that fail to parse are reported and the
command exits with an error once every file has been processed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ClassifyBatch(cmd, v, args)
		},
	}
	batchCmd.Flags().Int("workers", 0, "Number of concurrent workers (default: number of CPUs)")
	batchCmd.Flags().String("json", "", "Write the batch results as JSON into this directory")
	rootCmd.AddCommand(batchCmd)

	// classify-automaton
	rootCmd.AddCommand(&cobra.Command{
		Use:   "classify-automaton FILE",
		Short: "Classify an automaton description by its recognizer type",
		Long: `Read an automaton description (JSON, or YAML for .yaml/.yml files) and report the
hierarchy level of its recognizer type: DFA/NFA → 3, PDA → 2, LBA → 1, TM → 0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ClassifyAutomaton(cmd, v, args)
		},
	})

	// regex-to-grammar
	regexCmd := &cobra.Command{
		Use:   "regex-to-grammar REGEX",
		Short: "Convert a regular expression into a right-linear grammar",
		Long: `Compile a regular expression (literals a-z A-Z 0-9, |, *, +, ?, parentheses)
with Thompson's construction, determinize it with the subset construction and
emit the equivalent right-linear grammar.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RegexToGrammar(cmd, v, args)
		},
	}
	regexCmd.Flags().String("out", "", "Write the grammar to this file instead of stdout")
	regexCmd.Flags().String("dot", "", "Write the DFA in DOT format to this file")
	regexCmd.Flags().String("nfa-dot", "", "Write the NFA in DOT format to this file")
	regexCmd.Flags().Bool("show-dfa", false, "Print the DFA transition table before the grammar")
	rootCmd.AddCommand(regexCmd)

	// sample
	sampleCmd := &cobra.Command{
		Use:   "sample FILE",
		Short: "List the words of a grammar up to a length bound",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Sample(cmd, v, args)
		},
	}
	sampleCmd.Flags().Int("max-len", 0, "Maximum word length")
	sampleCmd.Flags().Int("max-steps", 0, "Maximum sentential forms expanded")
	rootCmd.AddCommand(sampleCmd)

	// compare
	compareCmd := &cobra.Command{
		Use:   "compare FILE1 FILE2",
		Short: "Estimate the similarity of two grammars",
		Long: `Sample both grammars to a shared length bound and report the Jaccard similarity
of the samples together with the words found in only one of them. The result is an
estimate, not an equivalence proof.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Compare(cmd, v, args)
		},
	}
	compareCmd.Flags().Int("bound", 0, "Maximum word length for both samples")
	compareCmd.Flags().Int("max-steps", 0, "Maximum sentential forms expanded per grammar")
	rootCmd.AddCommand(compareCmd)

	// examples
	examplesCmd := &cobra.Command{
		Use:   "examples",
		Short: "List the built-in example grammars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ListExamples(cmd, v, args)
		},
	}
	examplesCmd.Flags().Int("level", -1, "Only list examples of this hierarchy level")
	examplesCmd.Flags().Bool("classify", false, "Classify every listed example")
	rootCmd.AddCommand(examplesCmd)

	return rootCmd
}
