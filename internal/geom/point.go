package geom

import "math"

// Point is one city on the plane. ID is the 0-based insertion index and
// stays stable for the lifetime of the point set.
type Point struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// PointSet is an ordered sequence of points; index equals Point.ID.
type PointSet []Point

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// MinSeparation returns the smallest pairwise distance in the set, or
// +Inf for sets with fewer than two points.
func (ps PointSet) MinSeparation() float64 {
	min := math.Inf(1)
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			if d := Dist(ps[i], ps[j]); d < min {
				min = d
			}
		}
	}
	return min
}

// Clone returns a copy of the set.
func (ps PointSet) Clone() PointSet {
	c := make(PointSet, len(ps))
	copy(c, ps)
	return c
}
