package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"
	"github.com/osuushi/proximity/advanced"
	"github.com/pkg/errors"
)

// DOT converts points and edges to an undirected Graphviz graph. Every node
// is pinned at its coordinates, so the neato layout draws the graph as is.
func DOT(points []advanced.Point, edges []*advanced.Edge) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=point, width=0.08];\n")
	buf.WriteString("\n")

	for _, p := range points {
		fmt.Fprintf(&buf, "  %q [pos=\"%s,%s!\"];\n", nodeID(p), formatFloat(p.X), formatFloat(p.Y))
	}

	buf.WriteString("\n")
	for _, e := range edges {
		key := e.Key()
		fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(key.A), nodeID(key.B))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(p advanced.Point) string {
	return formatFloat(p.X) + "," + formatFloat(p.Y)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// SVG lays out a DOT graph with neato and renders it to SVG.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(err, "render")
	}
	return buf.Bytes(), nil
}
