package config

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/osuushi/proximity/advanced"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, AllGraphs, cfg.Graphs.Compute)
	assert.Equal(t, advanced.DefaultMaxFlips, cfg.Graphs.MaxFlips)

	loaded, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		cfg, err := Load(filepath.Join("testdata", "full.toml"))
		require.NoError(t, err)
		assert.True(t, math.IsInf(cfg.Graphs.D, 1))
		assert.Equal(t, 3.5, cfg.Graphs.T)
		assert.Equal(t, []string{Gabriel, SteppingStone, ShortestPath}, cfg.Graphs.Compute)
		assert.Equal(t, 8, cfg.Graphs.MaxFlips)
		assert.Equal(t, Spectrum{From: 2, To: 6, Steps: 5}, cfg.Spectrum)
		assert.Equal(t, Render{Width: 400, Height: 300, Padding: 10, LineWidth: 1.5, Imgcat: true}, cfg.Render)
		assert.True(t, cfg.Computes(Gabriel))
		assert.False(t, cfg.Computes(Diversion))
	})

	t.Run("partial keeps defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join("testdata", "partial.toml"))
		require.NoError(t, err)
		expected := Default()
		expected.Render.Width = 1024
		assert.Equal(t, expected, cfg)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "typo.toml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "graphs.dd")
	})

	t.Run("bad exponent", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "bad_exponent.toml"))
		assert.True(t, errors.Is(err, advanced.ErrInvalidExponent))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "missing.toml"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
	}{
		{"NaN d", func(c *Config) { c.Graphs.D = math.NaN() }},
		{"unknown graph", func(c *Config) { c.Graphs.Compute = []string{"voronoi"} }},
		{"negative flips", func(c *Config) { c.Graphs.MaxFlips = -1 }},
		{"spectrum backwards", func(c *Config) { c.Spectrum.To = 1 }},
		{"infinite spectrum", func(c *Config) { c.Spectrum.To = math.Inf(1) }},
		{"one step", func(c *Config) { c.Spectrum.Steps = 1 }},
		{"zero width", func(c *Config) { c.Render.Width = 0 }},
		{"huge padding", func(c *Config) { c.Render.Padding = 400 }},
		{"zero line width", func(c *Config) { c.Render.LineWidth = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Default()
			c.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseGraphs(t *testing.T) {
	assert.Equal(t, []string{Gabriel, SteppingStone, ShortestPath}, ParseGraphs("gabriel, Stepping-Stone,,shortest_path"))
	assert.Empty(t, ParseGraphs(""))
}
