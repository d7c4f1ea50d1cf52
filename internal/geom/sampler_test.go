package geom

import (
	"math"
	"testing"
)

func testConfig() SamplerConfig {
	return SamplerConfig{
		Width:         640,
		Height:        480,
		Padding:       20,
		MinSeparation: 60,
		MaxAttempts:   50,
		MinPoints:     3,
		MaxPoints:     9,
	}
}

func TestGenerateSeparation(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		s := NewSampler(testConfig(), seed)
		ps := s.Generate()
		if sep := ps.MinSeparation(); sep < 60 {
			t.Errorf("seed %d: pairwise separation %.2f < 60", seed, sep)
		}
	}
}

func TestGenerateBounds(t *testing.T) {
	cfg := testConfig()
	s := NewSampler(cfg, 7)
	ps := s.Generate()
	for _, p := range ps {
		if p.X < cfg.Padding || p.X > cfg.Width-cfg.Padding {
			t.Errorf("point %d x=%.2f outside padded range", p.ID, p.X)
		}
		if p.Y < cfg.Padding || p.Y > cfg.Height-cfg.Padding {
			t.Errorf("point %d y=%.2f outside padded range", p.ID, p.Y)
		}
	}
}

func TestGenerateCountAndIDs(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		s := NewSampler(testConfig(), seed)
		ps := s.Generate()
		if len(ps) < 3 || len(ps) > 9 {
			t.Errorf("seed %d: got %d points, want 3..9", seed, len(ps))
		}
		for i, p := range ps {
			if p.ID != i {
				t.Errorf("seed %d: point at index %d has id %d", seed, i, p.ID)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := NewSampler(testConfig(), 42).Generate()
	b := NewSampler(testConfig(), 42).Generate()
	if len(a) != len(b) {
		t.Fatalf("sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("point %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateTruncatesOnExhaustion(t *testing.T) {
	// A 60x60 usable area cannot hold 9 points 50 apart; the sampler must
	// stop early without error rather than relax the constraint.
	cfg := SamplerConfig{
		Width:         100,
		Height:        100,
		Padding:       20,
		MinSeparation: 50,
		MaxAttempts:   30,
		MinPoints:     9,
		MaxPoints:     9,
	}
	s := NewSampler(cfg, 1)
	ps := s.Generate()
	if len(ps) >= 9 {
		t.Fatalf("expected truncated set, got %d points", len(ps))
	}
	if len(ps) == 0 {
		t.Fatal("expected at least the first point to place")
	}
	if sep := ps.MinSeparation(); len(ps) > 1 && sep < 50 {
		t.Errorf("truncated set still violates separation: %.2f", sep)
	}
}

func TestMinSeparationDegenerate(t *testing.T) {
	if sep := (PointSet{}).MinSeparation(); !math.IsInf(sep, 1) {
		t.Errorf("empty set separation = %.2f, want +Inf", sep)
	}
	one := PointSet{{ID: 0, X: 1, Y: 1}}
	if sep := one.MinSeparation(); !math.IsInf(sep, 1) {
		t.Errorf("single point separation = %.2f, want +Inf", sep)
	}
}
