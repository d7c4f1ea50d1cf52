package geom

import "math/rand"

// SamplerConfig bounds the placement area and the acceptance constraint.
type SamplerConfig struct {
	Width         float64
	Height        float64
	Padding       float64
	MinSeparation float64
	MaxAttempts   int
	MinPoints     int
	MaxPoints     int
}

// Sampler draws point sets with a minimum pairwise separation.
type Sampler struct {
	cfg SamplerConfig
	rng *rand.Rand
}

func NewSampler(cfg SamplerConfig, seed int64) *Sampler {
	return &Sampler{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Generate draws a new point set. The intended size is uniform in
// [MinPoints, MaxPoints]. Each point gets up to MaxAttempts uniform draws
// inside the padded rectangle; the first draw at least MinSeparation away
// from every accepted point wins. If no attempt clears, generation stops
// and the short set is returned as-is.
func (s *Sampler) Generate() PointSet {
	n := s.cfg.MinPoints
	if span := s.cfg.MaxPoints - s.cfg.MinPoints; span > 0 {
		n += s.rng.Intn(span + 1)
	}

	pts := make(PointSet, 0, n)
	for i := 0; i < n; i++ {
		p, ok := s.place(pts)
		if !ok {
			break
		}
		p.ID = len(pts)
		pts = append(pts, p)
	}
	return pts
}

func (s *Sampler) place(accepted PointSet) (Point, bool) {
	minX := s.cfg.Padding
	minY := s.cfg.Padding
	spanX := s.cfg.Width - 2*s.cfg.Padding
	spanY := s.cfg.Height - 2*s.cfg.Padding

	for a := 0; a < s.cfg.MaxAttempts; a++ {
		cand := Point{
			X: minX + s.rng.Float64()*spanX,
			Y: minY + s.rng.Float64()*spanY,
		}
		if s.clears(cand, accepted) {
			return cand, true
		}
	}
	return Point{}, false
}

func (s *Sampler) clears(cand Point, accepted PointSet) bool {
	for _, p := range accepted {
		if Dist(cand, p) < s.cfg.MinSeparation {
			return false
		}
	}
	return true
}
