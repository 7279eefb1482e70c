package proximity

import (
	"math"
	"testing"

	"github.com/osuushi/proximity/advanced"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// Smoke test. The internals are already tested.
func TestProximity(t *testing.T) {
	points := []Point{
		{0, 0},
		{0, 1.5},
		{2, 3},
		{4, 1},
		{4, 0},
	}

	triangles, err := Triangulate(points)
	assert.NoError(t, err)
	assert.Len(t, triangles, 3)

	edges, err := Gabriel(points)
	assert.NoError(t, err)
	assert.Len(t, edges, 5)

	edges, err = SteppingStone(points, math.Inf(1))
	assert.NoError(t, err)
	assert.Len(t, edges, 4)

	edges, err = Diversion(points, math.Inf(1))
	assert.NoError(t, err)
	assert.Len(t, edges, 5)

	edges, err = ShortestPath(points, math.Inf(1))
	assert.NoError(t, err)
	assert.Len(t, edges, 4)
}

func TestProximity_Errors(t *testing.T) {
	_, err := Triangulate([]Point{{0, 0}, {1, 1}})
	assert.True(t, errors.Is(err, advanced.ErrInsufficientPoints))

	_, err = Gabriel([]Point{{0, 0}, {1, 1}, {2, 2}})
	assert.True(t, errors.Is(err, advanced.ErrCollinearPoints))

	_, err = SteppingStone([]Point{{0, 0}, {1, 0}, {0, 1}}, 1)
	assert.True(t, errors.Is(err, advanced.ErrInvalidExponent))

	_, err = ShortestPath([]Point{{0, 0}, {1, 0}, {0, 1}}, math.NaN())
	assert.True(t, errors.Is(err, advanced.ErrInvalidExponent))
}
