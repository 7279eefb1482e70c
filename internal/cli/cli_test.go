package cli

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/proximity/advanced"
	"github.com/osuushi/proximity/internal/config"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const housePoints = `# the house
0 0
0 1.5
2 3
4 1
4 0
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestEnv(cfg config.Config) (*Env, *bytes.Buffer, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	stdout := &bytes.Buffer{}
	return NewEnv(cfg, zap.New(core), stdout, false), stdout, logs
}

func TestGraph_Summary(t *testing.T) {
	cfg := config.Default()
	cfg.Graphs.Compute = []string{config.Delaunay, config.Gabriel, config.SteppingStone, config.ShortestPath}
	env, stdout, logs := newTestEnv(cfg)

	require.NoError(t, env.Graph(context.Background(), writeInput(t, housePoints), GraphOutputs{}))
	assert.Equal(t, "Delaunay: 7 edges\n"+
		"Gabriel: 5 edges\n"+
		"Stepping-stone (d=2): 5 edges\n"+
		"Shortest-path (t=2): 5 edges\n", stdout.String())
	assert.Equal(t, 4, logs.FilterMessage("graph computed").Len())
	assert.Equal(t, 1, logs.FilterMessage("triangulation built").Len())
}

func TestGraph_ListEdges(t *testing.T) {
	cfg := config.Default()
	cfg.Graphs.D = math.Inf(1)
	cfg.Graphs.Compute = []string{config.SteppingStone}
	env, stdout, _ := newTestEnv(cfg)

	require.NoError(t, env.Graph(context.Background(), writeInput(t, housePoints), GraphOutputs{ListEdges: true}))
	assert.Equal(t, "Stepping-stone (d=inf): 4 edges\n"+
		"  (0, 0)-(0, 1.5)\n"+
		"  (0, 1.5)-(2, 3)\n"+
		"  (2, 3)-(4, 1)\n"+
		"  (4, 0)-(4, 1)\n", stdout.String())
}

func TestGraph_Outputs(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Width, cfg.Render.Height = 200, 200
	env, _, logs := newTestEnv(cfg)

	dir := t.TempDir()
	out := GraphOutputs{
		PNG:  filepath.Join(dir, "graphs.png"),
		HTML: filepath.Join(dir, "graphs.html"),
		DOT:  filepath.Join(dir, "graph.dot"),
	}
	require.NoError(t, env.Graph(context.Background(), writeInput(t, housePoints), out))

	for _, path := range []string{out.PNG, out.HTML, out.DOT} {
		info, err := os.Stat(path)
		require.NoError(t, err, path)
		assert.Positive(t, info.Size(), path)
	}

	dot, err := os.ReadFile(out.DOT)
	require.NoError(t, err)
	assert.Contains(t, string(dot), `"0,0" -- "4,0"`)

	written := logs.FilterMessage("wrote dot").All()
	require.Len(t, written, 1)
	assert.Equal(t, "Shortest-path (t=2)", written[0].ContextMap()["graph"])
}

func TestGraph_Errors(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		env, _, _ := newTestEnv(config.Default())
		err := env.Graph(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), GraphOutputs{})
		assert.Error(t, err)
	})

	t.Run("collinear input", func(t *testing.T) {
		env, _, _ := newTestEnv(config.Default())
		err := env.Graph(context.Background(), writeInput(t, "0 0\n1 1\n2 2\n"), GraphOutputs{})
		assert.True(t, errors.Is(err, advanced.ErrCollinearPoints))
	})

	t.Run("nothing to compute", func(t *testing.T) {
		cfg := config.Default()
		cfg.Graphs.Compute = nil
		env, _, _ := newTestEnv(cfg)
		err := env.Graph(context.Background(), writeInput(t, housePoints), GraphOutputs{})
		assert.EqualError(t, err, "no graphs to compute")
	})
}

func TestSpectrum(t *testing.T) {
	cfg := config.Default()
	cfg.Spectrum = config.Spectrum{From: 2, To: 8, Steps: 4}
	env, stdout, _ := newTestEnv(cfg)

	html := filepath.Join(t.TempDir(), "spectrum.html")
	require.NoError(t, env.Spectrum(context.Background(), writeInput(t, housePoints), html))

	output := stdout.String()
	assert.Contains(t, output, "stepping-stone")
	assert.Contains(t, output, "\n2          ")
	assert.Contains(t, output, "\ninf        ")
	assert.Contains(t, output, "finite D-values: 3 of 7 edges\n")
	assert.Contains(t, output, "  1.67894\n")
	assert.Contains(t, output, "  6.67645\n")

	info, err := os.Stat(html)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSampleSpectrum(t *testing.T) {
	triangulation, err := advanced.Build([]advanced.Point{{0, 0}, {0, 1.5}, {2, 3}, {4, 1}, {4, 0}})
	require.NoError(t, err)
	steppingStone := advanced.NewSteppingStone(triangulation)

	samples, err := sampleSpectrum(triangulation, steppingStone, config.Spectrum{From: 2, To: 8, Steps: 4})
	require.NoError(t, err)
	require.Len(t, samples, 5)

	ds := make([]float64, len(samples))
	counts := make([]int, len(samples))
	for i, sample := range samples {
		ds[i] = sample.D
		counts[i] = sample.SteppingStone
	}
	assert.Equal(t, []float64{2, 4, 6, 8, math.Inf(1)}, ds)
	assert.Equal(t, []int{5, 5, 5, 4, 4}, counts)
}
