package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveForD(t *testing.T) {
	t.Run("right triangle", func(t *testing.T) {
		assert.InDelta(t, 2, SolveForD(math.Sqrt2, 1, 1), Tolerance)
		// 3-4-5, normalized
		assert.InDelta(t, 2, SolveForD(5.0/3, 4.0/3, 1), Tolerance)
	})

	t.Run("obtuse triangle", func(t *testing.T) {
		d := SolveForD(1.5, 1, 1)
		assert.InDelta(t, 1.7095112913514545, d, Tolerance)
		assert.InDelta(t, math.Pow(1.5, d), 2, Tolerance)
	})

	t.Run("acute triangle", func(t *testing.T) {
		d := SolveForD(1.3, 1, 1.2)
		assert.Greater(t, d, 2.0)
		assert.InDelta(t, math.Pow(1.3, d), 1+math.Pow(1.2, d), 1e-6*math.Pow(1.3, d))
	})

	t.Run("equilateral never crosses", func(t *testing.T) {
		assert.True(t, math.IsInf(SolveForD(1, 1, 1), 1))
	})

	t.Run("nearly equilateral is large but finite", func(t *testing.T) {
		d := SolveForD(1.0000001, 1, 1)
		assert.False(t, math.IsInf(d, 1))
		assert.Greater(t, d, 1e6)
	})
}
