package distmat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/toursim/internal/geom"
)

func square() geom.PointSet {
	return geom.PointSet{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 10, Y: 0},
		{ID: 2, X: 10, Y: 10},
		{ID: 3, X: 0, Y: 10},
	}
}

func TestComputeDiagonalInfinite(t *testing.T) {
	m := Compute(square(), 1, 99)
	require.Equal(t, 4, m.Size())
	for i := 0; i < m.Size(); i++ {
		assert.True(t, math.IsInf(m.At(i, i), 1), "diagonal %d", i)
	}
}

func TestComputeSymmetricAndBounded(t *testing.T) {
	m := Compute(square(), 1, 99)
	for i := 0; i < m.Size(); i++ {
		for j := 0; j < m.Size(); j++ {
			if i == j {
				continue
			}
			assert.Equal(t, m.At(i, j), m.At(j, i), "entry %d,%d", i, j)
			assert.GreaterOrEqual(t, m.At(i, j), 0.0)
			assert.LessOrEqual(t, m.At(i, j), 99.0)
		}
	}
}

func TestComputeScaleAndCap(t *testing.T) {
	m := Compute(square(), 2, 25)
	// Side length 10 scaled by 2 is 20, under the cap.
	assert.InDelta(t, 20.0, m.At(0, 1), 1e-9)
	// Diagonal length 10*sqrt(2) scaled by 2 exceeds the cap of 25.
	assert.InDelta(t, 25.0, m.At(0, 2), 1e-9)
}

func TestComputeDeterministic(t *testing.T) {
	a := Compute(square(), 0.5, 99)
	b := Compute(square(), 0.5, 99)
	for i := 0; i < a.Size(); i++ {
		for j := 0; j < a.Size(); j++ {
			if i == j {
				continue
			}
			assert.Equal(t, a.At(i, j), b.At(i, j))
		}
	}
}

func TestComputeEmpty(t *testing.T) {
	m := Compute(nil, 1, 99)
	assert.Equal(t, 0, m.Size())
}
