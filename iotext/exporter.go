package iotext

import (
	"bufio"
	"fmt"
	"os"

	"github.com/katalvlaran/graphwfc/wfc"
)

// Exporter writes a generated graph to the edges/labels text format.
type Exporter struct{}

// NewExporter returns an Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes order (every settled cell, in final settled order) and
// arena's adjacency to edgesPath/labelsPath. Output node indices are
// zero-based, assigned by order's position. Edges are written once each,
// with the lower index first. Export fails with wfc.ErrIllegalState if any
// cell in order is not collapsed.
func (e *Exporter) Export(order []wfc.CellID, arena *wfc.Arena, edgesPath, labelsPath string) error {
	index := make(map[wfc.CellID]int, len(order))
	labels := make([]int, len(order))
	for i, id := range order {
		cell := arena.Cell(id)
		label, ok := cell.CenterLabel()
		if !ok {
			return fmt.Errorf("iotext: export: cell %d is not collapsed: %w", id, wfc.ErrIllegalState)
		}
		index[id] = i
		labels[i] = label
	}

	if err := e.writeLabels(labelsPath, labels); err != nil {
		return err
	}
	return e.writeEdges(edgesPath, order, arena, index)
}

func (e *Exporter) writeLabels(path string, labels []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("iotext: creating labels file %q: %w: %v", path, ErrIOFailure, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, label := range labels {
		if _, err := fmt.Fprintf(w, "%d %d\n", i, label); err != nil {
			return fmt.Errorf("iotext: writing %s: %w: %v", path, ErrIOFailure, err)
		}
	}
	return flushOrFail(w, path)
}

func (e *Exporter) writeEdges(path string, order []wfc.CellID, arena *wfc.Arena, index map[wfc.CellID]int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("iotext: creating edges file %q: %w: %v", path, ErrIOFailure, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	written := make(map[[2]int]struct{})
	for _, id := range order {
		u := index[id]
		for _, nbr := range arena.Neighbors(id) {
			v, ok := index[nbr]
			if !ok {
				continue
			}
			a, b := u, v
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if _, seen := written[key]; seen {
				continue
			}
			written[key] = struct{}{}
			if _, err := fmt.Fprintf(w, "%d %d\n", a, b); err != nil {
				return fmt.Errorf("iotext: writing %s: %w: %v", path, ErrIOFailure, err)
			}
		}
	}
	return flushOrFail(w, path)
}

func flushOrFail(w *bufio.Writer, path string) error {
	if err := w.Flush(); err != nil {
		return fmt.Errorf("iotext: flushing %s: %w: %v", path, ErrIOFailure, err)
	}
	return nil
}
