// Command proximity triangulates a point set and derives proximity graphs
// from it.
//
// Points are read from a text file with one "x y" or "x,y" pair per line, or
// from an SVG file whose circles, ellipses, polygons and polylines supply the
// points. Pass "-" (the default) to read text from stdin.
package main

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/proximity/internal/cli"
	"github.com/osuushi/proximity/internal/config"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("proximity", "Delaunay triangulation and proximity graphs.")
	configPath = app.Flag("config", "TOML configuration file.").Short('c').String()
	verbose    = app.Flag("verbose", "Log build diagnostics.").Short('v').Bool()
	color      = app.Flag("color", "Colorize the summary.").Default("true").Bool()

	graphCmd    = app.Command("graph", "Compute proximity graphs.").Default()
	graphInput  = graphCmd.Arg("input", "Point file, or - for stdin.").Default("-").String()
	graphD      = graphCmd.Flag("d", "Stepping-stone and diversion exponent, at least 2 or inf.").String()
	graphT      = graphCmd.Flag("t", "Shortest-path exponent, at least 2 or inf.").String()
	graphList   = graphCmd.Flag("graphs", "Comma separated graphs to compute: "+strings.Join(config.AllGraphs, ",")+".").String()
	graphPNG    = graphCmd.Flag("png", "Draw every graph as a layer of a PNG.").String()
	graphHTML   = graphCmd.Flag("html", "Write an interactive chart of every graph.").String()
	graphDOT    = graphCmd.Flag("dot", "Write the last graph computed as Graphviz DOT.").String()
	graphSVG    = graphCmd.Flag("svg", "Lay out the last graph computed with Graphviz and write SVG.").String()
	graphImgcat = graphCmd.Flag("imgcat", "Show the PNG in the terminal.").Bool()
	graphEdges  = graphCmd.Flag("edges", "List the edges of every graph.").Bool()

	spectrumCmd   = app.Command("spectrum", "Count stepping-stone and diversion edges over a range of d.")
	spectrumInput = spectrumCmd.Arg("input", "Point file, or - for stdin.").Default("-").String()
	spectrumHTML  = spectrumCmd.Flag("html", "Write a chart of the counts.").String()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	app.FatalIfError(err, "")

	logger := cli.NewLogger(os.Stderr, *verbose)
	defer logger.Sync()

	ctx := context.Background()
	switch command {
	case graphCmd.FullCommand():
		app.FatalIfError(applyGraphFlags(&cfg), "")
		env := cli.NewEnv(cfg, logger, os.Stdout, *color)
		app.FatalIfError(env.Graph(ctx, *graphInput, cli.GraphOutputs{
			PNG:       *graphPNG,
			HTML:      *graphHTML,
			DOT:       *graphDOT,
			SVG:       *graphSVG,
			ListEdges: *graphEdges,
		}), "graph")

	case spectrumCmd.FullCommand():
		env := cli.NewEnv(cfg, logger, os.Stdout, *color)
		app.FatalIfError(env.Spectrum(ctx, *spectrumInput, *spectrumHTML), "spectrum")
	}
}

// Command line flags override the config file.
func applyGraphFlags(cfg *config.Config) error {
	if *graphD != "" {
		d, err := parseExponent(*graphD)
		if err != nil {
			return errors.Wrap(err, "--d")
		}
		cfg.Graphs.D = d
	}
	if *graphT != "" {
		t, err := parseExponent(*graphT)
		if err != nil {
			return errors.Wrap(err, "--t")
		}
		cfg.Graphs.T = t
	}
	if *graphList != "" {
		cfg.Graphs.Compute = config.ParseGraphs(*graphList)
	}
	if *graphImgcat {
		cfg.Render.Imgcat = true
	}
	return cfg.Validate()
}

// strconv.ParseFloat already understands "inf".
func parseExponent(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
