// Package anim replays a tour construction trace one step per tick.
//
// The animator is an explicit state machine (Idle → Running → Completed or
// Canceled) advanced by whoever owns the clock: the TUI feeds it bubbletea
// ticks, the websocket server a time.Ticker, and tests call Advance
// directly. The animator itself never sleeps.
package anim

import "github.com/san-kum/toursim/internal/tour"

// Status is the replay lifecycle state.
type Status int

const (
	Idle Status = iota
	Running
	Completed
	Canceled
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Canceled:
		return "canceled"
	}
	return "unknown"
}

// Frame is the render state for one tick: the partial path up to the
// step's origin, the highlighted edge, and the cumulative cost through
// this step.
type Frame struct {
	StepIndex int     `json:"step"`
	Path      []int   `json:"path"`
	EdgeFrom  int     `json:"edge_from"`
	EdgeTo    int     `json:"edge_to"`
	Cost      float64 `json:"cost"`
}

// Hooks receive replay events. Nil hooks are skipped. Exactly one of
// OnComplete or OnCanceled fires per replay, after the last OnFrame.
type Hooks struct {
	OnFrame    func(Frame)
	OnComplete func(total float64)
	OnCanceled func()
}

// Animator replays at most one trace at a time.
type Animator struct {
	hooks  Hooks
	steps  []tour.Step
	next   int
	status Status
}

func New(hooks Hooks) *Animator {
	return &Animator{hooks: hooks}
}

func (a *Animator) Status() Status { return a.status }

// Start begins replaying a trace. A replay already running is canceled
// first, so at most one is ever active.
func (a *Animator) Start(steps []tour.Step) {
	if a.status == Running {
		a.Cancel()
	}
	a.steps = steps
	a.next = 0
	a.status = Running
}

// Advance plays one tick. While steps remain it emits the frame for the
// next step; once the trace is exhausted it transitions to Completed and
// emits the total cost. Returns false when no further ticks should be
// scheduled. Calling Advance outside Running is a no-op.
func (a *Animator) Advance() bool {
	if a.status != Running {
		return false
	}

	if a.next == len(a.steps) {
		a.status = Completed
		if a.hooks.OnComplete != nil {
			a.hooks.OnComplete(tour.PrefixCost(a.steps, len(a.steps)-1))
		}
		return false
	}

	st := a.steps[a.next]
	frame := Frame{
		StepIndex: a.next,
		Path:      append([]int(nil), st.PathSoFar...),
		EdgeFrom:  st.From,
		EdgeTo:    st.To,
		Cost:      tour.PrefixCost(a.steps, a.next),
	}
	a.next++

	if a.hooks.OnFrame != nil {
		a.hooks.OnFrame(frame)
	}
	return true
}

// Cancel stops a running replay at the current tick boundary. No
// completion event follows.
func (a *Animator) Cancel() {
	if a.status != Running {
		return
	}
	a.status = Canceled
	if a.hooks.OnCanceled != nil {
		a.hooks.OnCanceled()
	}
}
