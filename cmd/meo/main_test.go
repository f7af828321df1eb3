package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestExecute_RandomAlgorithmEndToEnd drives the full pipeline over
// spec.md §8 scenario S1: a single edge between a source and a
// target. The edge has no opposing path, so conflict detection fixes
// it in the path's direction, Random has no conflict edge to orient,
// and the single path ends up satisfied.
func TestExecute_RandomAlgorithmEndToEnd(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		return path
	}

	edgesFile := write("edges.txt", "A (pp) B = 0.9\n")
	sourcesFile := write("sources.txt", "A\n")
	targetsFile := write("targets.txt", "B\n")
	pathOut := filepath.Join(dir, "paths.out")
	edgeOut := filepath.Join(dir, "edges.out")

	propsFile := write("meo.properties", strings.Join([]string{
		"edges.file=" + edgesFile,
		"sources.file=" + sourcesFile,
		"targets.file=" + targetsFile,
		"path.output.file=" + pathOut,
		"edge.output.file=" + edgeOut,
		"local.search=No",
	}, "\n")+"\n")

	require.NoError(t, execute(propsFile, zap.NewNop()))

	pathBody, err := os.ReadFile(pathOut)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(pathBody), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "A:B\ttrue\t0.9", lines[1])

	edgeBody, err := os.ReadFile(edgeOut)
	require.NoError(t, err)
	assert.Contains(t, string(edgeBody), "A\tpp\tB\ttrue\t0.9")
}
