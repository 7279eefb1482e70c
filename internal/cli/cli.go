// Package cli implements the commands of the proximity tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/proximity/advanced"
	"github.com/osuushi/proximity/internal/config"
	"github.com/osuushi/proximity/pointset"
	"github.com/osuushi/proximity/render"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Env is what every command runs against.
type Env struct {
	Config config.Config
	Logger *zap.Logger
	Stdout io.Writer
	Color  aurora.Aurora
}

func NewEnv(cfg config.Config, logger *zap.Logger, stdout io.Writer, color bool) *Env {
	return &Env{
		Config: cfg,
		Logger: logger,
		Stdout: stdout,
		Color:  aurora.NewAurora(color),
	}
}

// Files to write. Empty paths are skipped.
type GraphOutputs struct {
	PNG  string
	HTML string
	// DOT and SVG hold a single graph: the last one computed.
	DOT string
	SVG string
	// Print every edge of every graph, not just the counts.
	ListEdges bool
}

func (e *Env) build(input string) (*advanced.Triangulation, error) {
	points, err := pointset.Load(input)
	if err != nil {
		return nil, err
	}
	e.Logger.Debug("points loaded", zap.String("input", input), zap.Int("points", len(points)))
	return advanced.Build(points,
		advanced.WithLogger(e.Logger),
		advanced.WithMaxFlips(e.Config.Graphs.MaxFlips),
	)
}

// Graph triangulates the input and computes the configured graphs.
func (e *Env) Graph(ctx context.Context, input string, out GraphOutputs) error {
	t, err := e.build(input)
	if err != nil {
		return err
	}

	layers, err := e.layers(t)
	if err != nil {
		return err
	}
	if len(layers) == 0 {
		return errors.New("no graphs to compute")
	}

	for _, layer := range layers {
		fmt.Fprintf(e.Stdout, "%s: %d edges\n", e.Color.Bold(layer.Name), e.Color.Cyan(len(layer.Edges)))
		if out.ListEdges {
			for _, edge := range layer.Edges {
				fmt.Fprintf(e.Stdout, "  %s\n", edge.Key())
			}
		}
	}

	if out.PNG != "" {
		if err := render.SavePNG(out.PNG, t.Points(), layers, e.renderOptions()); err != nil {
			return err
		}
		e.Logger.Info("wrote png", zap.String("path", out.PNG))
		if e.Config.Render.Imgcat {
			if err := render.Preview(out.PNG, e.Stdout); err != nil {
				return err
			}
		}
	}

	if out.HTML != "" {
		err := writeFile(out.HTML, func(w io.Writer) error {
			return render.GraphChart(w, input, t.Points(), layers)
		})
		if err != nil {
			return err
		}
		e.Logger.Info("wrote chart", zap.String("path", out.HTML))
	}

	last := layers[len(layers)-1]
	dot := render.DOT(t.Points(), last.Edges)
	if out.DOT != "" {
		if err := os.WriteFile(out.DOT, []byte(dot), 0o644); err != nil {
			return errors.Wrap(err, "writing dot")
		}
		e.Logger.Info("wrote dot", zap.String("path", out.DOT), zap.String("graph", last.Name))
	}
	if out.SVG != "" {
		svg, err := render.SVG(ctx, dot)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out.SVG, svg, 0o644); err != nil {
			return errors.Wrap(err, "writing svg")
		}
		e.Logger.Info("wrote svg", zap.String("path", out.SVG), zap.String("graph", last.Name))
	}
	return nil
}

// One layer per configured graph, in the order of config.AllGraphs.
func (e *Env) layers(t *advanced.Triangulation) ([]render.Layer, error) {
	d, tExponent := e.Config.Graphs.D, e.Config.Graphs.T
	var layers []render.Layer
	add := func(name string, edges []*advanced.Edge, started time.Time) {
		e.Logger.Debug("graph computed",
			zap.String("graph", name),
			zap.Int("edges", len(edges)),
			zap.Duration("elapsed", time.Since(started)),
		)
		layers = append(layers, render.Layer{
			Name:  name,
			Edges: edges,
			Color: render.Palette[len(layers)%len(render.Palette)],
		})
	}

	for _, name := range config.AllGraphs {
		if !e.Config.Computes(name) {
			continue
		}
		started := time.Now()
		switch name {
		case config.Delaunay:
			add("Delaunay", t.Edges(), started)
		case config.Gabriel:
			add("Gabriel", advanced.GabrielGraph(t), started)
		case config.SteppingStone:
			edges, err := advanced.NewSteppingStone(t).Graph(d)
			if err != nil {
				return nil, err
			}
			add(fmt.Sprintf("Stepping-stone (d=%s)", formatExponent(d)), edges, started)
		case config.Diversion:
			edges, err := advanced.DiversionGraph(t, d)
			if err != nil {
				return nil, err
			}
			add(fmt.Sprintf("Diversion (d=%s)", formatExponent(d)), edges, started)
		case config.ShortestPath:
			edges, err := advanced.NewShortestPath(t).Graph(tExponent)
			if err != nil {
				return nil, err
			}
			add(fmt.Sprintf("Shortest-path (t=%s)", formatExponent(tExponent)), edges, started)
		}
	}
	return layers, nil
}

// Spectrum prints the size of the stepping-stone and diversion graphs over
// the configured range of d, followed by the D-values at which the
// stepping-stone graph changes.
func (e *Env) Spectrum(ctx context.Context, input string, html string) error {
	t, err := e.build(input)
	if err != nil {
		return err
	}
	steppingStone := advanced.NewSteppingStone(t)

	samples, err := sampleSpectrum(t, steppingStone, e.Config.Spectrum)
	if err != nil {
		return err
	}

	fmt.Fprintf(e.Stdout, "%s\n", e.Color.Bold(fmt.Sprintf("%-10s %14s %10s", "d", "stepping-stone", "diversion")))
	for _, sample := range samples {
		fmt.Fprintf(e.Stdout, "%-10s %14d %10d\n", formatExponent(sample.D), sample.SteppingStone, sample.Diversion)
	}

	thresholds := steppingStone.Thresholds()
	fmt.Fprintf(e.Stdout, "%s %d of %d edges\n", e.Color.Bold("finite D-values:"), len(thresholds), t.EdgeCount())
	for _, threshold := range thresholds {
		fmt.Fprintf(e.Stdout, "  %s\n", e.Color.Yellow(formatExponent(threshold)))
	}

	if html != "" {
		err := writeFile(html, func(w io.Writer) error {
			return render.SpectrumChart(w, input, samples)
		})
		if err != nil {
			return err
		}
		e.Logger.Info("wrote chart", zap.String("path", html))
	}
	return nil
}

// Evenly spaced samples over [From, To], then one at +Inf.
func sampleSpectrum(t *advanced.Triangulation, steppingStone *advanced.SteppingStone, spectrum config.Spectrum) ([]render.SpectrumSample, error) {
	ds := make([]float64, 0, spectrum.Steps+1)
	step := (spectrum.To - spectrum.From) / float64(spectrum.Steps-1)
	for i := 0; i < spectrum.Steps; i++ {
		ds = append(ds, spectrum.From+float64(i)*step)
	}
	ds = append(ds, math.Inf(1))

	samples := make([]render.SpectrumSample, 0, len(ds))
	for _, d := range ds {
		ss, err := steppingStone.Graph(d)
		if err != nil {
			return nil, err
		}
		diversion, err := advanced.DiversionGraph(t, d)
		if err != nil {
			return nil, err
		}
		samples = append(samples, render.SpectrumSample{D: d, SteppingStone: len(ss), Diversion: len(diversion)})
	}
	return samples, nil
}

func (e *Env) renderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.Width = e.Config.Render.Width
	opts.Height = e.Config.Render.Height
	opts.Padding = e.Config.Render.Padding
	opts.LineWidth = e.Config.Render.LineWidth
	return opts
}

func formatExponent(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return errors.Wrapf(file.Close(), "closing %s", path)
}
