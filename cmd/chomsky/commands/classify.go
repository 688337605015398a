/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: classify.go
Description: Classification commands. classify-grammar prints the layered trace for a grammar
and optionally writes a report and a DOT graph; classify-automaton maps an automaton
description to its hierarchy level.
*/

package commands

import (
	"fmt"
	"io"

	"github.com/kleascm/chomsky-toolkit/pkg/automata"
	"github.com/kleascm/chomsky-toolkit/pkg/grammar"
	"github.com/kleascm/chomsky-toolkit/pkg/pipeline"
	"github.com/kleascm/chomsky-toolkit/pkg/reporting"
	"github.com/kleascm/chomsky-toolkit/pkg/sampler"
	"github.com/kleascm/chomsky-toolkit/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ClassifyGrammar classifies the grammar in args[0]
func ClassifyGrammar(cmd *cobra.Command, v *viper.Viper, args []string) error {
	e, err := setup(cmd, v)
	if err != nil {
		return err
	}
	defer e.logger.Close()

	text, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}
	g, res, err := e.toolkit.ClassifyText(string(text))
	if err != nil {
		return err
	}

	for _, line := range res.Lines() {
		fmt.Fprintln(e.out, line)
	}

	if dot, _ := cmd.Flags().GetString("dot"); dot != "" {
		err := writeFile(dot, func(w io.Writer) error {
			return grammar.WriteDOT(w, g, args[0])
		})
		if err != nil {
			return err
		}
	}

	if jsonDir, _ := cmd.Flags().GetString("json"); jsonDir != "" {
		path, err := utils.WriteResult(jsonDir, "classify", reporting.Version, pipeline.NewFileResult(args[0], g, res))
		if err != nil {
			return err
		}
		fmt.Fprintf(e.out, "Result: %s\n", path)
	}

	reportDir, _ := cmd.Flags().GetString("report")
	if save, _ := cmd.Flags().GetBool("save-report"); save && reportDir == "" {
		reportDir = e.cfg.Report.OutputDir
	}
	if reportDir == "" {
		return nil
	}
	formatName, _ := cmd.Flags().GetString("report-format")
	if formatName == "" {
		formatName = e.cfg.Report.Format
	}
	format, err := reporting.ParseFormat(formatName)
	if err != nil {
		return err
	}

	var sample *sampler.Result
	if withSample, _ := cmd.Flags().GetBool("sample"); withSample {
		sample = e.toolkit.Sample(g)
	}
	data := reporting.NewReportData(e.cfg.Report.Title, args[0], g, res, sample, e.toolkit.Bounds())
	path, err := reporting.NewReportGenerator(reportDir, e.logger.GetLogger()).Generate(data, format)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Report: %s\n", path)
	return nil
}

// ClassifyAutomaton classifies the automaton description in args[0]
func ClassifyAutomaton(cmd *cobra.Command, v *viper.Viper, args []string) error {
	e, err := setup(cmd, v)
	if err != nil {
		return err
	}
	defer e.logger.Close()

	data, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	var desc *automata.Description
	if isYAML(args[0]) {
		desc, err = automata.ParseDescriptionYAML(data)
	} else {
		desc, err = automata.ParseDescription(data)
	}
	if err != nil {
		return err
	}

	res, err := e.toolkit.ClassifyAutomaton(desc)
	if err != nil {
		return err
	}
	for _, line := range res.Lines() {
		fmt.Fprintln(e.out, line)
	}
	return nil
}
