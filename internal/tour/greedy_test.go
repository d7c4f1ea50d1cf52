package tour_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/toursim/internal/distmat"
	"github.com/san-kum/toursim/internal/geom"
	"github.com/san-kum/toursim/internal/tour"
)

func squareMatrix() distmat.Matrix {
	ps := geom.PointSet{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 10, Y: 0},
		{ID: 2, X: 10, Y: 10},
		{ID: 3, X: 0, Y: 10},
	}
	return distmat.Compute(ps, 1, 99)
}

var _ = Describe("Build", func() {
	Context("on the unit square scenario", func() {
		It("visits 0→1→2→3→0 with total cost 40", func() {
			res, err := tour.Build(squareMatrix(), 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Path).To(Equal([]int{0, 1, 2, 3, 0}))
			Expect(res.TotalCost).To(BeNumerically("~", 40, 1e-9))
		})

		It("records one step per city including the closing edge", func() {
			res, err := tour.Build(squareMatrix(), 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Steps).To(HaveLen(4))
			last := res.Steps[3]
			Expect(last.From).To(Equal(3))
			Expect(last.To).To(Equal(0))
		})

		It("captures the path before each step, ending at the step's origin", func() {
			res, err := tour.Build(squareMatrix(), 0)
			Expect(err).NotTo(HaveOccurred())
			for i, st := range res.Steps {
				Expect(st.PathSoFar).To(HaveLen(i + 1))
				Expect(st.PathSoFar[len(st.PathSoFar)-1]).To(Equal(st.From))
			}
		})
	})

	Context("tie-breaking", func() {
		It("prefers the lowest id among equal minima", func() {
			// From 0 both 1 and 3 sit exactly 10 away; the ascending scan
			// with strict < must pick 1.
			res, err := tour.Build(squareMatrix(), 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Steps[0].To).To(Equal(1))
		})
	})

	Context("tour invariants", func() {
		It("closes the tour and visits every city exactly once", func() {
			for start := 0; start < 4; start++ {
				res, err := tour.Build(squareMatrix(), start)
				Expect(err).NotTo(HaveOccurred())
				Expect(res.Path).To(HaveLen(5))
				Expect(res.Path[0]).To(Equal(start))
				Expect(res.Path[4]).To(Equal(start))
				Expect(res.Path[:4]).To(ConsistOf(0, 1, 2, 3))
			}
		})

		It("reports a total equal to the sum over the trace", func() {
			res, err := tour.Build(squareMatrix(), 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.TotalCost).To(BeNumerically("~", tour.PrefixCost(res.Steps, len(res.Steps)-1), 1e-9))
		})

		It("is deterministic", func() {
			a, err := tour.Build(squareMatrix(), 1)
			Expect(err).NotTo(HaveOccurred())
			b, err := tour.Build(squareMatrix(), 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(b))
		})
	})

	Context("degenerate instances", func() {
		It("rejects an empty matrix", func() {
			_, err := tour.Build(distmat.Compute(nil, 1, 99), 0)
			Expect(err).To(MatchError(tour.ErrEmptyMatrix))
		})

		It("rejects a start id out of range", func() {
			_, err := tour.Build(squareMatrix(), 4)
			Expect(err).To(MatchError(tour.ErrStartOutOfRange))
			_, err = tour.Build(squareMatrix(), -1)
			Expect(err).To(MatchError(tour.ErrStartOutOfRange))
		})

		It("returns a trivial tour for a single city", func() {
			one := distmat.Compute(geom.PointSet{{ID: 0, X: 5, Y: 5}}, 1, 99)
			res, err := tour.Build(one, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.TotalCost).To(BeZero())
			Expect(res.Path).To(Equal([]int{0}))
			Expect(res.Steps).To(BeEmpty())
		})
	})
})

var _ = Describe("PrefixCost", func() {
	steps := []tour.Step{{Cost: 3}, {Cost: 5}, {Cost: 2}}

	It("sums costs through the given index", func() {
		Expect(tour.PrefixCost(steps, 0)).To(Equal(3.0))
		Expect(tour.PrefixCost(steps, 1)).To(Equal(8.0))
		Expect(tour.PrefixCost(steps, 2)).To(Equal(10.0))
	})

	It("clamps out-of-range indices", func() {
		Expect(tour.PrefixCost(steps, -1)).To(BeZero())
		Expect(tour.PrefixCost(steps, 10)).To(Equal(10.0))
	})
})
