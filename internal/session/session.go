// Package session ties the sampler, distance matrix, tour builder and
// animator into the surface a host renders against.
//
// The session owns the current point set and matrix; regenerating
// replaces both and invalidates any running replay. Hosts subscribe via
// [Hooks] and drive replay ticks through [Session.Advance] — the session
// never schedules time itself. Hooks fire synchronously during a call and
// must not call back into the session.
package session

import (
	"errors"
	"sync"

	"github.com/san-kum/toursim/internal/anim"
	"github.com/san-kum/toursim/internal/config"
	"github.com/san-kum/toursim/internal/distmat"
	"github.com/san-kum/toursim/internal/geom"
	"github.com/san-kum/toursim/internal/tour"
)

// ErrNoPoints indicates point activation before any generate.
var ErrNoPoints = errors.New("session: no point set generated")

// State is everything a renderer needs for one draw. Frame is nil
// outside a replay tick.
type State struct {
	Points geom.PointSet
	Matrix distmat.Matrix
	Frame  *anim.Frame
}

// Hooks are the session's notifications to its host. Weight is nil when
// no completed tour cost is on display. Nil hooks are skipped.
type Hooks struct {
	Draw             func(State)
	WeightChanged    func(weight *float64)
	AnimatingChanged func(animating bool)
}

type Session struct {
	mu      sync.Mutex
	cfg     *config.Config
	sampler *geom.Sampler
	hooks   Hooks

	points geom.PointSet
	matrix distmat.Matrix
	result *tour.Result
	replay *anim.Animator
}

func New(cfg *config.Config, seed int64, hooks Hooks) *Session {
	s := &Session{
		cfg:     cfg,
		sampler: geom.NewSampler(cfg.SamplerConfig(), seed),
		hooks:   hooks,
	}
	s.replay = anim.New(anim.Hooks{
		OnFrame: func(f anim.Frame) {
			s.draw(State{Points: s.points, Matrix: s.matrix, Frame: &f})
		},
		OnComplete: func(total float64) {
			s.emitWeight(&total)
			s.emitAnimating(false)
		},
		OnCanceled: func() {
			s.emitAnimating(false)
		},
	})
	return s
}

// Generate replaces the point set and matrix, invalidating any running
// replay and resetting the displayed weight. Returns the new pair.
func (s *Session) Generate() (geom.PointSet, distmat.Matrix) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replay.Cancel()
	s.points = s.sampler.Generate()
	s.matrix = distmat.Compute(s.points, s.cfg.Scale, s.cfg.Cap)
	s.result = nil

	s.emitWeight(nil)
	s.emitAnimating(false)
	s.draw(State{Points: s.points, Matrix: s.matrix})
	return s.points, s.matrix
}

// ActivatePoint builds the tour from the given start id and begins its
// replay. While a replay is running the call is ignored, by contract.
func (s *Session) ActivatePoint(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.replay.Status() == anim.Running {
		return nil
	}
	if len(s.points) == 0 {
		return ErrNoPoints
	}

	res, err := tour.Build(s.matrix, id)
	if err != nil {
		return err
	}
	s.result = &res

	s.emitAnimating(true)
	s.replay.Start(res.Steps)
	return nil
}

// Advance plays one replay tick. False means nothing further is
// scheduled.
func (s *Session) Advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replay.Advance()
}

// CancelReplay stops a running replay at the next tick boundary.
func (s *Session) CancelReplay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replay.Cancel()
}

func (s *Session) Animating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replay.Status() == anim.Running
}

// Points returns the current point set; read-only for callers.
func (s *Session) Points() geom.PointSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.points
}

func (s *Session) Matrix() distmat.Matrix {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matrix
}

// Result returns the most recently built tour, nil before the first
// activation or after a generate.
func (s *Session) Result() *tour.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

func (s *Session) draw(st State) {
	if s.hooks.Draw != nil {
		s.hooks.Draw(st)
	}
}

func (s *Session) emitWeight(w *float64) {
	if s.hooks.WeightChanged != nil {
		s.hooks.WeightChanged(w)
	}
}

func (s *Session) emitAnimating(on bool) {
	if s.hooks.AnimatingChanged != nil {
		s.hooks.AnimatingChanged(on)
	}
}
