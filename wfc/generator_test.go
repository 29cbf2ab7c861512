package wfc

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwfc/genconfig"
	"github.com/katalvlaran/graphwfc/graphcore"
)

func twoNodeLineGraph() *graphcore.Graph {
	g := graphcore.NewGraph()
	g.SetLabel(0, 1)
	g.SetLabel(1, 2)
	g.AddEdge(0, 1)
	return g
}

func triangleGraph() *graphcore.Graph {
	g := graphcore.NewGraph()
	g.SetLabel(0, 1)
	g.SetLabel(1, 2)
	g.SetLabel(2, 3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	return g
}

func smallGenConfig(seed int64) *genconfig.Config {
	return &genconfig.Config{
		Radius:              1,
		SizeFactor:          2,
		LowerCap:            0.9,
		UpperCap:            1.2,
		ExpansionPercentile: 0.9,
		ExpansionSlack:      1.0,
		RNGSeed:             seed,
	}
}

func TestNewGenerator_RejectsEmptyTrainingGraph(t *testing.T) {
	_, err := NewGenerator(graphcore.NewGraph(), smallGenConfig(1), io.Discard)
	require.True(t, errors.Is(err, ErrInvalidInput))
}

func TestNewGenerator_RejectsInvalidConfig(t *testing.T) {
	cfg := smallGenConfig(1)
	cfg.Radius = 0
	_, err := NewGenerator(twoNodeLineGraph(), cfg, io.Discard)
	require.True(t, errors.Is(err, genconfig.ErrInvalidInput))
}

func TestGenerator_Run_SettlesWithinHardUpper(t *testing.T) {
	gen, err := NewGenerator(triangleGraph(), smallGenConfig(42), io.Discard)
	require.NoError(t, err)

	cells, adjacency, err := gen.Run()
	require.NoError(t, err)
	require.NotEmpty(t, cells)
	// target_size = 2*3 = 6, hard_upper = ceil(6*1.2) = ceil(7.2) = 8.
	assert.LessOrEqual(t, len(cells), 8)
	assert.Len(t, adjacency, len(cells))

	for _, id := range cells {
		assert.True(t, gen.Arena().Cell(id).IsCollapsed())
	}
}

func TestGenerator_Run_DeterministicUnderFixedSeed(t *testing.T) {
	run := func() []int {
		gen, err := NewGenerator(triangleGraph(), smallGenConfig(42), io.Discard)
		require.NoError(t, err)
		cells, _, err := gen.Run()
		require.NoError(t, err)
		labels := make([]int, len(cells))
		for i, id := range cells {
			label, ok := gen.Arena().Cell(id).CenterLabel()
			require.True(t, ok)
			labels[i] = label
		}
		return labels
	}
	assert.Equal(t, run(), run())
}

func TestGenerator_Run_LogsRequiredSummaryLine(t *testing.T) {
	var buf bytes.Buffer
	gen, err := NewGenerator(twoNodeLineGraph(), smallGenConfig(7), &buf)
	require.NoError(t, err)

	_, _, err = gen.Run()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "open_stubs_remaining=")
	assert.Contains(t, out, "all_collapsed=")
	assert.Contains(t, out, "run_id="+gen.run.ID())
}

func TestDecay_Boundaries(t *testing.T) {
	assert.Equal(t, 1.0, decay(0.5, 1.1))
	assert.Equal(t, 1.0, decay(1.0, 1.1))
	assert.Equal(t, 0.0, decay(1.1, 1.1))
	assert.InDelta(t, 0.5, decay(1.05, 1.1), 1e-9)
}
