package render

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/proximity/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var house = []advanced.Point{{0, 0}, {0, 1.5}, {2, 3}, {4, 1}, {4, 0}}

func houseLayers(t *testing.T) []Layer {
	t.Helper()
	triangulation, err := advanced.Build(house)
	require.NoError(t, err)
	return []Layer{
		{Name: "Delaunay", Edges: triangulation.Edges(), Color: Palette[0]},
		{Name: "Gabriel", Edges: advanced.GabrielGraph(triangulation), Color: Palette[1], Width: 3},
	}
}

func TestPNG(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 200
	opts.Height = 100

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, house, houseLayers(t), opts))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	// The corner is background, and the bottom left point is drawn at the
	// padding offset
	assert.Equal(t, color.RGBAModel.Convert(color.Black), color.RGBAModel.Convert(img.At(0, 0)))
	x, y := int(opts.Padding), 100-int(opts.Padding)
	assert.NotEqual(t, color.RGBAModel.Convert(color.Black), color.RGBAModel.Convert(img.At(x, y-1)))
}

func TestPNG_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, PNG(&buf, nil, nil, DefaultOptions()))

	opts := DefaultOptions()
	opts.Width = 0
	assert.Error(t, PNG(&buf, house, nil, opts))

	opts = DefaultOptions()
	opts.Padding = 500
	assert.Error(t, PNG(&buf, house, nil, opts))
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "house.png")
	require.NoError(t, SavePNG(path, house, houseLayers(t), DefaultOptions()))
	var buf bytes.Buffer
	assert.NoError(t, Preview(path, &buf))
	assert.Error(t, Preview(filepath.Join(t.TempDir(), "missing.png"), &buf))
}

func TestSpectrumChart(t *testing.T) {
	var buf bytes.Buffer
	err := SpectrumChart(&buf, "Spectrum", []SpectrumSample{
		{D: 2, SteppingStone: 5, Diversion: 5},
		{D: 7, SteppingStone: 4, Diversion: 5},
	})
	require.NoError(t, err)
	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "Stepping-stone")
	assert.Contains(t, html, "Diversion")
}

func TestGraphChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GraphChart(&buf, "House", house, houseLayers(t)))
	html := buf.String()
	assert.Contains(t, html, "Points")
	assert.Contains(t, html, "Gabriel")
}

func TestDOT(t *testing.T) {
	triangulation, err := advanced.Build(house)
	require.NoError(t, err)
	dot := DOT(house, advanced.GabrielGraph(triangulation))

	assert.True(t, strings.HasPrefix(dot, "graph G {\n"))
	assert.Contains(t, dot, `"0,1.5" [pos="0,1.5!"];`)
	assert.Contains(t, dot, `"0,0" -- "0,1.5";`)
	assert.Equal(t, 5, strings.Count(dot, " -- "))
}

func TestSVG(t *testing.T) {
	triangulation, err := advanced.Build(house)
	require.NoError(t, err)
	svg, err := SVG(context.Background(), DOT(house, triangulation.Edges()))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}
