package advanced

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleTriangulatePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleTriangulatePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("edge %s vanished", NewEdgeKey(Point{0, 0}, Point{1, 1}))
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "edge (0, 0)-(1, 1) vanished")
		var triangulateError TriangulateError
		assert.True(t, errors.As(err, &triangulateError))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestRecoverInto(t *testing.T) {
	build := func(shouldThrow bool) (result []int, err error) {
		defer RecoverInto(&result, &err)
		result = []int{1, 2, 3}
		if shouldThrow {
			fatalf("broken after %d", len(result))
		}
		return result, nil
	}

	result, err := build(true)
	assert.Nil(t, result)
	assert.EqualError(t, err, "broken after 3")

	result, err = build(false)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, result)

	assert.Panics(t, func() {
		var result *Triangulation
		var err error
		func() {
			defer RecoverInto(&result, &err)
			panic("true panic")
		}()
	})
}

func TestValidate_DetectsCorruption(t *testing.T) {
	t.Run("broken back-reference", func(t *testing.T) {
		triangulation := mustBuild(t, house)
		e, ok := triangulation.Edge(Point{0, 0}, Point{4, 0})
		require.True(t, ok)
		e.Triangles = [2]int{-1, -1}
		assert.True(t, errors.Is(triangulation.Validate(), ErrInvalidTriangulation))
	})

	t.Run("counterclockwise triangle", func(t *testing.T) {
		triangulation := mustBuild(t, lonelyTriangle)
		triangle := triangulation.Triangle(0)
		triangle.Vertices[0], triangle.Vertices[1] = triangle.Vertices[1], triangle.Vertices[0]
		assert.True(t, errors.Is(triangulation.Validate(), ErrInvalidTriangulation))
	})

	t.Run("point inside circumcircle", func(t *testing.T) {
		triangulation, err := Build(scattered, WithMaxFlips(0))
		require.NoError(t, err)
		assert.NoError(t, triangulation.Validate())
		// Pretend legalization finished normally
		triangulation.stats.SkippedFlips = 0
		err = triangulation.Validate()
		assert.True(t, errors.Is(err, ErrInvalidTriangulation))
		assert.Contains(t, err.Error(), "circumcircle")
	})
}
