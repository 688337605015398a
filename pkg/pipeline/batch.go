/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: batch.go
Description: Batch classification. Grammar files are read and classified by a bounded set of
goroutines; each file keeps its own outcome so one malformed grammar never stops the batch.
*/

package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kleascm/chomsky-toolkit/pkg/classifier"
	"github.com/kleascm/chomsky-toolkit/pkg/grammar"
	"github.com/kleascm/chomsky-toolkit/pkg/logging"
	"golang.org/x/sync/errgroup"
)

// FileResult is the classification of one grammar file
type FileResult struct {
	Path        string             `json:"path"`
	Grammar     string             `json:"grammar,omitempty"`
	Fingerprint string             `json:"fingerprint,omitempty"`
	Level       int                `json:"hierarchy_level"`
	LevelName   string             `json:"level_name,omitempty"`
	Result      *classifier.Result `json:"result,omitempty"`
	Error       string             `json:"error,omitempty"`

	Err error `json:"-"`
}

// NewFileResult records a successful classification of the grammar read from path
func NewFileResult(path string, g *grammar.Grammar, res *classifier.Result) FileResult {
	return FileResult{
		Path:        path,
		Grammar:     g.String(),
		Fingerprint: g.FingerprintHex(),
		Level:       int(res.Level),
		LevelName:   res.Level.Name(),
		Result:      res,
	}
}

func failedFileResult(path string, err error) FileResult {
	return FileResult{Path: path, Level: -1, Error: err.Error(), Err: err}
}

// Failed reports whether the file could not be classified
func (r FileResult) Failed() bool {
	return r.Err != nil
}

// String renders the outcome as one line
func (r FileResult) String() string {
	if r.Failed() {
		return fmt.Sprintf("%s: error: %v", r.Path, r.Err)
	}
	return fmt.Sprintf("%s: %s", r.Path, r.Result.Level)
}

// ClassifyFiles classifies every file in paths using at most workers goroutines.
// Results follow the order of paths. The returned error is non-nil only when ctx
// is cancelled; per-file failures are carried in the results.
func (t *Toolkit) ClassifyFiles(ctx context.Context, paths []string, workers int) ([]FileResult, error) {
	if workers <= 0 {
		workers = 1
	}
	started := time.Now()
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = t.classifyFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.logger.LogFailure(logging.StageBatch, err, map[string]interface{}{"files": len(paths)})
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	t.logger.LogStage(logging.StageBatch, time.Since(started), map[string]interface{}{
		"files":   len(paths),
		"failed":  failed,
		"workers": workers,
	})
	return results, nil
}

func (t *Toolkit) classifyFile(path string) FileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return failedFileResult(path, fmt.Errorf("failed to read %s: %w", path, err))
	}
	g, res, err := t.ClassifyText(string(data))
	if err != nil {
		return failedFileResult(path, err)
	}
	return NewFileResult(path, g, res)
}
