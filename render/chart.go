package render

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/osuushi/proximity/advanced"
)

// A SpectrumSample is the size of each parameterized graph at one value of d.
type SpectrumSample struct {
	D             float64
	SteppingStone int
	Diversion     int
}

// SpectrumChart writes an HTML line chart of graph sizes against d.
func SpectrumChart(w io.Writer, title string, samples []SpectrumSample) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
			Left:  "10%",
		}),
		charts.WithLegendOpts(opts.Legend{
			Right: "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "d",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "edges",
		}),
	)

	steppingStone := make([]opts.LineData, 0, len(samples))
	diversion := make([]opts.LineData, 0, len(samples))
	for _, sample := range samples {
		steppingStone = append(steppingStone, opts.LineData{Value: []float64{sample.D, float64(sample.SteppingStone)}})
		diversion = append(diversion, opts.LineData{Value: []float64{sample.D, float64(sample.Diversion)}})
	}
	line.AddSeries("Stepping-stone", steppingStone)
	line.AddSeries("Diversion", diversion)
	return line.Render(w)
}

// GraphChart writes an interactive HTML chart of the points, with each layer
// drawn as line segments over them.
func GraphChart(w io.Writer, title string, points []advanced.Point, layers []Layer) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "800px",
			Width:  "800px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
			Left:  "10%",
		}),
		charts.WithLegendOpts(opts.Legend{
			Right: "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)

	data := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		data = append(data, opts.ScatterData{
			Value: []float64{p.X, p.Y},
		})
	}
	scatter.AddSeries("Points", data)

	// One line per edge, all sharing the layer's series name so the legend
	// toggles the whole layer.
	for _, layer := range layers {
		for _, e := range layer.Edges {
			line := charts.NewLine()
			line.AddSeries(layer.Name, []opts.LineData{
				{Value: []float64{e.Start.X, e.Start.Y}},
				{Value: []float64{e.End.X, e.End.Y}},
			}).SetSeriesOptions(
				charts.WithLineStyleOpts(opts.LineStyle{
					Width: 2,
				}),
			)
			scatter.Overlap(line)
		}
	}
	return scatter.Render(w)
}
