// Package metrics summarizes a finished tour's step trace.
package metrics

import (
	"math"

	"github.com/san-kum/toursim/internal/tour"
)

// Summary aggregates edge costs over one construction trace.
type Summary struct {
	Edges    int     `json:"edges"`
	Total    float64 `json:"total"`
	MeanEdge float64 `json:"mean_edge"`
	MinEdge  float64 `json:"min_edge"`
	MaxEdge  float64 `json:"max_edge"`
}

// Summarize computes the edge-cost summary for a trace. An empty trace
// (single-city tour) yields the zero Summary.
func Summarize(steps []tour.Step) Summary {
	if len(steps) == 0 {
		return Summary{}
	}

	s := Summary{
		Edges:   len(steps),
		MinEdge: math.Inf(1),
		MaxEdge: math.Inf(-1),
	}
	for _, st := range steps {
		s.Total += st.Cost
		s.MinEdge = math.Min(s.MinEdge, st.Cost)
		s.MaxEdge = math.Max(s.MaxEdge, st.Cost)
	}
	s.MeanEdge = s.Total / float64(len(steps))
	return s
}
