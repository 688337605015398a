/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: batch_test.go
Description: Tests for concurrent batch classification of grammar files.
*/

package pipeline_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/kleascm/chomsky-toolkit/pkg/classifier"
	"github.com/kleascm/chomsky-toolkit/pkg/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGrammars(t *testing.T, texts ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(texts))
	for i, text := range texts {
		paths[i] = filepath.Join(dir, fmt.Sprintf("g%02d.txt", i))
		require.NoError(t, os.WriteFile(paths[i], []byte(text), 0644))
	}
	return paths
}

func TestClassifyFiles(t *testing.T) {
	tk, logs := newToolkit(t)
	paths := writeGrammars(t,
		"S -> aS | b",
		"S -> aSb | ab",
		"S aSb",
		"AB -> BA\nS -> aA",
		"S -> ABC\nAB -> a",
	)
	paths = append(paths, filepath.Join(t.TempDir(), "missing.txt"))

	results, err := tk.ClassifyFiles(context.Background(), paths, 3)
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
	}

	assert.Equal(t, classifier.Regular, results[0].Result.Level)
	assert.Equal(t, classifier.ContextFree, results[1].Result.Level)
	assert.True(t, results[2].Failed())
	assert.ErrorIs(t, results[2].Err, grammar.ErrMalformedGrammar)
	assert.Equal(t, -1, results[2].Level)
	assert.Equal(t, classifier.ContextSensitive, results[3].Result.Level)
	assert.Equal(t, 0, results[4].Level)
	assert.Equal(t, "unrestricted", results[4].LevelName)
	assert.True(t, results[5].Failed())

	assert.Equal(t, paths[1]+": Type 2 (context-free)", results[1].String())
	assert.Contains(t, logs.String(), "[BATCH]")
}

func TestClassifyFilesMatchesSequentialRun(t *testing.T) {
	tk, _ := newToolkit(t)
	var texts []string
	for i := 0; i < 12; i++ {
		texts = append(texts, fmt.Sprintf("S -> a%sS | b", string(rune('a'+i))))
	}
	paths := writeGrammars(t, texts...)

	parallel, err := tk.ClassifyFiles(context.Background(), paths, 4)
	require.NoError(t, err)
	sequential, err := tk.ClassifyFiles(context.Background(), paths, 1)
	require.NoError(t, err)

	for i := range paths {
		assert.Equal(t, sequential[i].Fingerprint, parallel[i].Fingerprint)
		assert.Equal(t, sequential[i].Result.String(), parallel[i].Result.String())
	}
}

func TestClassifyFilesCancelled(t *testing.T) {
	tk, _ := newToolkit(t)
	paths := writeGrammars(t, "S -> a", "S -> b")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := tk.ClassifyFiles(ctx, paths, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}
