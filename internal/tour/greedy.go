// Package tour builds nearest-neighbor tours over a distance matrix and
// records the construction trace the animator replays.
//
// The heuristic repeatedly extends the path with the cheapest edge from
// the current city to an unvisited one, then closes back to the start.
// It is deterministic and makes no optimality claim.
package tour

import (
	"fmt"
	"math"

	"github.com/san-kum/toursim/internal/distmat"
)

// Build runs the nearest-neighbor heuristic from the given start id.
//
// The unvisited scan goes over indices in ascending order with a strict
// less-than comparison, so the lowest id wins among equal minima. A
// single-city instance returns cost 0, path [start] and no steps: the
// closing edge would be the infinite self-loop.
//
// Identical inputs always produce identical results. O(n²).
func Build(m distmat.Matrix, start int) (Result, error) {
	n := m.Size()
	if n == 0 {
		return Result{}, ErrEmptyMatrix
	}
	if start < 0 || start >= n {
		return Result{}, fmt.Errorf("%w: %d not in [0, %d)", ErrStartOutOfRange, start, n)
	}
	if n == 1 {
		return Result{Path: []int{start}, Steps: []Step{}}, nil
	}

	visited := make([]bool, n)
	visited[start] = true
	path := make([]int, 1, n+1)
	path[0] = start
	steps := make([]Step, 0, n)
	total := 0.0
	cur := start

	for placed := 1; placed < n; placed++ {
		next := -1
		best := math.Inf(1)
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if d := m.At(cur, j); d < best {
				best = d
				next = j
			}
		}

		steps = append(steps, Step{
			From:      cur,
			To:        next,
			PathSoFar: clonePath(path),
			Cost:      best,
		})
		path = append(path, next)
		visited[next] = true
		total += best
		cur = next
	}

	closing := m.At(cur, start)
	steps = append(steps, Step{
		From:      cur,
		To:        start,
		PathSoFar: clonePath(path),
		Cost:      closing,
	})
	path = append(path, start)
	total += closing

	return Result{TotalCost: total, Path: path, Steps: steps}, nil
}

func clonePath(p []int) []int {
	c := make([]int, len(p))
	copy(c, p)
	return c
}
