// Package distmat derives the dense distance table a tour is built over.
package distmat

import (
	"math"

	"github.com/san-kum/toursim/internal/geom"
)

// Matrix is an n×n table of scaled, capped Euclidean distances indexed by
// point id. The diagonal is +Inf: a city has no edge to itself.
type Matrix struct {
	n     int
	cells [][]float64
}

// Compute builds the matrix for a point set. Off-diagonal entries are
// min(euclid*scale, limit); the computation is pure, so the matrix must be
// rebuilt whenever the point set changes.
func Compute(ps geom.PointSet, scale, limit float64) Matrix {
	n := len(ps)
	cells := make([][]float64, n)
	for i := range cells {
		cells[i] = make([]float64, n)
		for j := range cells[i] {
			if i == j {
				cells[i][j] = math.Inf(1)
				continue
			}
			cells[i][j] = math.Min(geom.Dist(ps[i], ps[j])*scale, limit)
		}
	}
	return Matrix{n: n, cells: cells}
}

// Size returns the number of points the matrix covers.
func (m Matrix) Size() int { return m.n }

// At returns the entry for the edge i→j.
func (m Matrix) At(i, j int) float64 { return m.cells[i][j] }
