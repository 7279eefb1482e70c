// Package pointset reads point sets from plain text and SVG documents.
package pointset

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/proximity/advanced"
	"github.com/pkg/errors"
)

// Read parses one point per line, as "x y" or "x,y". Blank lines and lines
// starting with # are skipped.
func Read(r io.Reader) ([]advanced.Point, error) {
	var points []advanced.Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(s string) (advanced.Point, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("invalid point %q", s)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return advanced.Point{X: x, Y: y}, nil
}

// ReadSVG collects points from an SVG document, in document order: the
// centers of circle and ellipse elements, and the vertices of polygon and
// polyline elements. Transforms are ignored, and SVG's y axis (pointing down)
// is kept as is.
func ReadSVG(r io.Reader) ([]advanced.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	var points []advanced.Point
	if err := collectSVG(root, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func collectSVG(element *svgparser.Element, points *[]advanced.Point) error {
	switch element.Name {
	case "circle", "ellipse":
		point, err := parsePoint(element.Attributes["cx"] + " " + element.Attributes["cy"])
		if err != nil {
			return errors.Wrapf(err, "%s element", element.Name)
		}
		*points = append(*points, point)
	case "polygon", "polyline":
		vertices, err := parsePointList(element.Attributes["points"])
		if err != nil {
			return errors.Wrapf(err, "%s element", element.Name)
		}
		*points = append(*points, vertices...)
	}
	for _, child := range element.Children {
		if err := collectSVG(child, points); err != nil {
			return err
		}
	}
	return nil
}

// SVG point lists are numbers separated by whitespace and/or commas, taken
// in pairs.
func parsePointList(s string) ([]advanced.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]advanced.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		point, err := parsePoint(fields[i] + " " + fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}

// Load reads a point file, choosing the format by extension. The path "-"
// reads text from stdin.
func Load(path string) ([]advanced.Point, error) {
	if path == "-" {
		return Read(os.Stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening point file")
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return ReadSVG(file)
	}
	return Read(file)
}
