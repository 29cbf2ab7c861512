package iotext

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReader_Load_ParsesEdgesAndLabels(t *testing.T) {
	edges := writeTemp(t, "edges.txt", "0 1\n# a comment line\n1 2 // trailing comment\n\n2 2\n")
	labels := writeTemp(t, "labels.txt", "0 10\n1 20\n// skip this\n2 30\n")

	g, err := NewReader().Load(edges, labels)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	l0, _ := g.Label(0)
	assert.Equal(t, 10, l0)
	assert.ElementsMatch(t, []int{1}, g.Neighbors(0))
	assert.ElementsMatch(t, []int{0, 2}, g.Neighbors(1))
	// "2 2" is a self-loop and must be skipped, leaving node 2's only edge
	// the one from "1 2".
	assert.ElementsMatch(t, []int{1}, g.Neighbors(2))
}

func TestReader_Load_MissingLabelDefaultsToZero(t *testing.T) {
	edges := writeTemp(t, "edges.txt", "0 1\n")
	labels := writeTemp(t, "labels.txt", "0 5\n")

	g, err := NewReader().Load(edges, labels)
	require.NoError(t, err)
	l1, ok := g.Label(1)
	require.True(t, ok)
	assert.Equal(t, 0, l1)
}

func TestReader_Load_MalformedLineFails(t *testing.T) {
	edges := writeTemp(t, "edges.txt", "0 one\n")
	labels := writeTemp(t, "labels.txt", "")

	_, err := NewReader().Load(edges, labels)
	require.True(t, errors.Is(err, ErrIOFailure))
}

func TestReader_Load_MissingFileFails(t *testing.T) {
	_, err := NewReader().Load(filepath.Join(t.TempDir(), "absent.txt"), filepath.Join(t.TempDir(), "absent2.txt"))
	require.True(t, errors.Is(err, ErrIOFailure))
}
