// Package config loads the TOML configuration of the proximity command.
package config

import (
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/osuushi/proximity/advanced"
	"github.com/pkg/errors"
)

// Graph names accepted in graphs.compute and on the command line.
const (
	Delaunay      = "delaunay"
	Gabriel       = "gabriel"
	SteppingStone = "steppingstone"
	Diversion     = "diversion"
	ShortestPath  = "shortestpath"
)

var AllGraphs = []string{Delaunay, Gabriel, SteppingStone, Diversion, ShortestPath}

type Config struct {
	Graphs   Graphs   `toml:"graphs"`
	Spectrum Spectrum `toml:"spectrum"`
	Render   Render   `toml:"render"`
}

type Graphs struct {
	// Exponent for the stepping-stone and diversion graphs.
	D float64 `toml:"d"`
	// Exponent for the shortest-path graph.
	T        float64  `toml:"t"`
	Compute  []string `toml:"compute"`
	MaxFlips int      `toml:"max_flips"`
}

// Spectrum samples d evenly over [From, To].
type Spectrum struct {
	From  float64 `toml:"from"`
	To    float64 `toml:"to"`
	Steps int     `toml:"steps"`
}

type Render struct {
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Padding   float64 `toml:"padding"`
	LineWidth float64 `toml:"line_width"`
	// Print PNG output to the terminal with the iTerm2 image protocol.
	Imgcat bool `toml:"imgcat"`
}

func Default() Config {
	return Config{
		Graphs: Graphs{
			D:        2,
			T:        2,
			Compute:  []string{Delaunay, Gabriel, SteppingStone, Diversion, ShortestPath},
			MaxFlips: advanced.DefaultMaxFlips,
		},
		Spectrum: Spectrum{
			From:  2,
			To:    10,
			Steps: 17,
		},
		Render: Render{
			Width:     800,
			Height:    800,
			Padding:   40,
			LineWidth: 2,
		},
	}
}

// Load reads a TOML file over the defaults. An empty path gives the defaults.
// Unknown keys are an error, so typos don't go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "loading config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Config{}, errors.Errorf("unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}
	cfg.Graphs.Compute = normalizeNames(cfg.Graphs.Compute)
	return cfg, cfg.Validate()
}

func normalizeNames(names []string) []string {
	result := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		name = strings.NewReplacer("-", "", "_", "").Replace(name)
		if name != "" {
			result = append(result, name)
		}
	}
	return result
}

// ParseGraphs splits a comma separated list of graph names.
func ParseGraphs(list string) []string {
	return normalizeNames(strings.Split(list, ","))
}

func (c Config) Validate() error {
	if err := checkExponent("graphs.d", c.Graphs.D); err != nil {
		return err
	}
	if err := checkExponent("graphs.t", c.Graphs.T); err != nil {
		return err
	}
	for _, name := range c.Graphs.Compute {
		if !isGraph(name) {
			return errors.Errorf("unknown graph %q, expected one of %s", name, strings.Join(AllGraphs, ", "))
		}
	}
	if c.Graphs.MaxFlips < 0 {
		return errors.Errorf("graphs.max_flips must not be negative, got %d", c.Graphs.MaxFlips)
	}

	if err := checkExponent("spectrum.from", c.Spectrum.From); err != nil {
		return err
	}
	if math.IsInf(c.Spectrum.To, 0) || math.IsNaN(c.Spectrum.To) || c.Spectrum.To < c.Spectrum.From {
		return errors.Errorf("spectrum.to must be finite and at least spectrum.from, got %v", c.Spectrum.To)
	}
	if c.Spectrum.Steps < 2 {
		return errors.Errorf("spectrum.steps must be at least 2, got %d", c.Spectrum.Steps)
	}

	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return errors.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.Padding < 0 || 2*c.Render.Padding >= float64(min(c.Render.Width, c.Render.Height)) {
		return errors.Errorf("render.padding %g does not fit a %dx%d image", c.Render.Padding, c.Render.Width, c.Render.Height)
	}
	if !(c.Render.LineWidth > 0) {
		return errors.Errorf("render.line_width must be positive, got %g", c.Render.LineWidth)
	}
	return nil
}

func (c Config) Computes(name string) bool {
	for _, n := range c.Graphs.Compute {
		if n == name {
			return true
		}
	}
	return false
}

func isGraph(name string) bool {
	for _, n := range AllGraphs {
		if n == name {
			return true
		}
	}
	return false
}

func checkExponent(name string, value float64) error {
	if math.IsNaN(value) || value < 2 {
		return errors.Wrapf(advanced.ErrInvalidExponent, "%s = %v", name, value)
	}
	return nil
}
