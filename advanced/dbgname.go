package advanced

import (
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/proximity/dbg"
)

// Readable name for debug logs. Degenerate triangles are red, triangles on
// the hull are cyan, and interior triangles are green.
func (t *Triangulation) dbgName(triangle *Triangle) string {
	name := dbg.Name(triangle)
	if _, radius := triangle.Circumcircle(); math.IsInf(radius, 1) {
		return aurora.Red(name).String()
	}
	for i := 0; i < 3; i++ {
		if e, ok := t.edges[triangle.Edge(i)]; ok && e.IsHull() {
			return aurora.Cyan(name).String()
		}
	}
	return aurora.Green(name).String()
}
