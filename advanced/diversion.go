package advanced

import "math"

// DiversionGraph drops every edge AB for which some bordering triangle's far
// vertex C satisfies AB^d >= AC^d + BC^d, with the lengths normalized by the
// shortest side. This is the stepping-stone test applied to the immediate
// neighbours only, without walking the fan.
//
// At d = +Inf the test becomes "AB is strictly the longest side", which is
// the limit of the finite test: an isosceles triangle whose two longest sides
// tie never satisfies it for any finite d.
func DiversionGraph(t *Triangulation, d float64) ([]*Edge, error) {
	if err := checkExponent("d", d); err != nil {
		return nil, err
	}

	var result []*Edge
	for _, e := range t.Edges() {
		if !t.diverted(e, d) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (t *Triangulation) diverted(e *Edge, d float64) bool {
	for _, triangle := range t.bordering(e) {
		c, ok := triangle.Opposite(e.Key())
		if !ok {
			fatalf("triangle %s does not border edge %s", triangle, e)
		}
		ab, ac, bc := e.Length, e.Start.Distance(c), e.End.Distance(c)
		if math.IsInf(d, 1) {
			if ab > ac && ab > bc {
				return true
			}
			continue
		}
		sides := normalize(ab, ac, bc)
		if math.Pow(sides[0], d) >= math.Pow(sides[1], d)+math.Pow(sides[2], d) {
			return true
		}
	}
	return false
}
