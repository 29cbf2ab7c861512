package graphwfc

import (
	"io"

	"github.com/katalvlaran/graphwfc/compat"
	"github.com/katalvlaran/graphwfc/genconfig"
	"github.com/katalvlaran/graphwfc/graphcore"
	"github.com/katalvlaran/graphwfc/pattern"
	"github.com/katalvlaran/graphwfc/wfc"
)

// ExtractPatterns extracts every distinct radius-hop ego-network pattern
// from g, returning them in first-seen order alongside their training-graph
// occurrence frequencies.
func ExtractPatterns(g *graphcore.Graph, radius int) ([]*pattern.Pattern, map[pattern.PID]int, error) {
	return pattern.Extract(g, radius)
}

// BuildCompatibility builds a compatibility table over patterns for every
// radius 1..maxRadius, via outward label-path intersection. patterns must
// come from a single ExtractPatterns call at radius >= maxRadius, since
// table radii beyond that extraction's depth can never find a path.
func BuildCompatibility(patterns []*pattern.Pattern, maxRadius int) (*compat.Table, error) {
	return compat.Build(patterns, maxRadius)
}

// RunGeneration runs one generation pass over trainingGraph under cfg,
// writing structured, run-tagged progress and a final summary line to
// logWriter, and returns the settled cells in collapse order plus the
// output adjacency between them.
func RunGeneration(trainingGraph *graphcore.Graph, cfg *genconfig.Config, logWriter io.Writer) ([]wfc.CellID, map[wfc.CellID][]wfc.CellID, error) {
	gen, err := wfc.NewGenerator(trainingGraph, cfg, logWriter)
	if err != nil {
		return nil, nil, err
	}
	return gen.Run()
}
