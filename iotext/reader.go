package iotext

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphwfc/graphcore"
)

// Reader loads a training graph from the edges/labels text format.
type Reader struct{}

// NewReader returns a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Load reads edgesPath and labelsPath into a fresh graphcore.Graph. Each
// non-empty, non-comment edges-file line holds two whitespace-separated
// integer ids, interpreted as an undirected edge; self-loops are skipped.
// Each non-empty, non-comment labels-file line holds an integer id then an
// integer label. A node with no labels-file entry keeps its implicit label
// of 0 (graphcore.Graph's default for a newly created node).
func (r *Reader) Load(edgesPath, labelsPath string) (*graphcore.Graph, error) {
	g := graphcore.NewGraph()

	if err := r.loadEdges(g, edgesPath); err != nil {
		return nil, err
	}
	if err := r.loadLabels(g, labelsPath); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *Reader) loadEdges(g *graphcore.Graph, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("iotext: opening edges file %q: %w: %v", path, ErrIOFailure, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := stripComment(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("iotext: %s:%d: expected two ids, got %q: %w", path, lineNo, line, ErrIOFailure)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("iotext: %s:%d: invalid id %q: %w", path, lineNo, fields[0], ErrIOFailure)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("iotext: %s:%d: invalid id %q: %w", path, lineNo, fields[1], ErrIOFailure)
		}
		g.AddEdge(u, v)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("iotext: reading %s: %w: %v", path, ErrIOFailure, err)
	}
	return nil
}

func (r *Reader) loadLabels(g *graphcore.Graph, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("iotext: opening labels file %q: %w: %v", path, ErrIOFailure, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := stripComment(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("iotext: %s:%d: expected id and label, got %q: %w", path, lineNo, line, ErrIOFailure)
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("iotext: %s:%d: invalid id %q: %w", path, lineNo, fields[0], ErrIOFailure)
		}
		label, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("iotext: %s:%d: invalid label %q: %w", path, lineNo, fields[1], ErrIOFailure)
		}
		g.SetLabel(id, label)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("iotext: reading %s: %w: %v", path, ErrIOFailure, err)
	}
	return nil
}
