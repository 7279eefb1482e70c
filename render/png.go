// Package render draws triangulations and proximity graphs as PNG images,
// HTML charts and Graphviz documents.
package render

import (
	"image/color"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/osuushi/proximity/advanced"
	"github.com/pkg/errors"
)

// A Layer is a set of edges drawn in one style. Layers are drawn in order, so
// later layers are drawn on top.
type Layer struct {
	Name  string
	Edges []*advanced.Edge
	Color color.Color
	// Line width in pixels. Zero uses Options.LineWidth.
	Width float64
}

type Options struct {
	Width, Height int
	// Pixels between the outermost points and the image border.
	Padding     float64
	LineWidth   float64
	PointRadius float64
	Background  color.Color
	PointColor  color.Color
}

func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      800,
		Padding:     40,
		LineWidth:   2,
		PointRadius: 3,
		Background:  color.Black,
		PointColor:  color.White,
	}
}

// Palette for layers, in the order the command line tool assigns them.
var Palette = []color.Color{
	color.RGBA{0x40, 0x40, 0x40, 0xff},
	color.RGBA{0x00, 0xbf, 0xbf, 0xff},
	color.RGBA{0x00, 0xbf, 0x00, 0xff},
	color.RGBA{0xff, 0xbf, 0x00, 0xff},
	color.RGBA{0xff, 0x40, 0x40, 0xff},
}

// Draw the points and layers, scaled uniformly to fit the image, with the
// origin at the bottom left.
func Draw(points []advanced.Point, layers []Layer, opts Options) (*gg.Context, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}
	if len(points) == 0 {
		return nil, errors.New("nothing to draw")
	}

	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := float64(opts.Width)
	height := float64(opts.Height)
	scale := math.Min(
		(width-2*opts.Padding)/math.Max(maxX-minX, advanced.Tolerance),
		(height-2*opts.Padding)/math.Max(maxY-minY, advanced.Tolerance),
	)
	if !(scale > 0) {
		return nil, errors.Errorf("padding %g leaves no room in a %dx%d image", opts.Padding, opts.Width, opts.Height)
	}

	c := gg.NewContext(opts.Width, opts.Height)
	c.SetColor(opts.Background)
	c.DrawRectangle(0, 0, width, height)
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, height)
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(opts.Padding, opts.Padding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	for _, layer := range layers {
		lineWidth := layer.Width
		if lineWidth == 0 {
			lineWidth = opts.LineWidth
		}
		// Line widths are in user space, so undo the scale
		c.SetLineWidth(lineWidth / scale)
		c.SetColor(layer.Color)
		for _, e := range layer.Edges {
			c.DrawLine(e.Start.X, e.Start.Y, e.End.X, e.End.Y)
		}
		c.Stroke()
	}

	c.SetColor(opts.PointColor)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, opts.PointRadius/scale)
	}
	c.Fill()
	return c, nil
}

// PNG draws the points and layers and writes them as a PNG image.
func PNG(w io.Writer, points []advanced.Point, layers []Layer, opts Options) error {
	c, err := Draw(points, layers, opts)
	if err != nil {
		return err
	}
	return errors.Wrap(c.EncodePNG(w), "encoding png")
}

func SavePNG(path string, points []advanced.Point, layers []Layer, opts Options) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating png")
	}
	if err := PNG(file, points, layers, opts); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "closing png")
}
