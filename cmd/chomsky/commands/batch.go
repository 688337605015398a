/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: batch.go
Description: classify-batch command. Classifies many grammar files on a worker pool and
prints one outcome per file.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/chomsky-toolkit/pkg/pipeline"
	"github.com/kleascm/chomsky-toolkit/pkg/reporting"
	"github.com/kleascm/chomsky-toolkit/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// batchSummary is the JSON document written by --json
type batchSummary struct {
	Workers int                   `json:"workers"`
	Failed  int                   `json:"failed"`
	Results []pipeline.FileResult `json:"results"`
}

// ClassifyBatch classifies every file in args
func ClassifyBatch(cmd *cobra.Command, v *viper.Viper, args []string) error {
	e, err := setup(cmd, v)
	if err != nil {
		return err
	}
	defer e.logger.Close()

	results, err := e.toolkit.ClassifyFiles(cmd.Context(), args, e.cfg.Batch.Workers)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
		fmt.Fprintln(e.out, r.String())
	}

	if jsonDir, _ := cmd.Flags().GetString("json"); jsonDir != "" {
		summary := batchSummary{Workers: e.cfg.Batch.Workers, Failed: failed, Results: results}
		path, err := utils.WriteResult(jsonDir, "batch", reporting.Version, summary)
		if err != nil {
			return err
		}
		fmt.Fprintf(e.out, "Result: %s\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d grammars could not be classified", failed, len(results))
	}
	return nil
}
