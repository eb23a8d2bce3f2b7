// Package submit implements the submission lifecycle shared by the booking
// and review forms: a small state machine that validates a payload, holds it
// through a simulated round-trip, and signals when the form should close.
//
// Timing is owned by the caller. Submit returns a generation token; the
// caller schedules the resolve and auto-close delays however it likes (the
// TUI uses tea.Tick) and passes the token back to Resolve/Finish. Cancel
// bumps the generation, so a timer firing after cancellation carries a stale
// token and applies nothing.
package submit

import (
	"log"
	"sync/atomic"
	"time"
)

// Delays for the simulated backend. The pending window is long enough that
// the disabled submit control and progress indicator are observable.
const (
	ResolveDelay   = 1500 * time.Millisecond // simulated network round-trip
	AutoCloseDelay = 2 * time.Second         // success panel dwell before close
)

// State is the submission lifecycle phase.
type State int

const (
	StateIdle State = iota
	StatePending
	StateSucceeded
	StateFailed // validation rejection; the simulated backend never fails
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// Generation tokens are issued from a process-wide counter so a timer
// scheduled by one form can never match a token issued to a later form.
var genCounter atomic.Int64

func nextGen() int { return int(genCounter.Add(1)) }

// Controller drives one open form's submission. The zero value is ready to
// use and starts in StateIdle.
type Controller struct {
	state   State
	payload Payload
	reason  string
	gen     int
}

// State reports the current lifecycle phase.
func (c *Controller) State() State { return c.state }

// Payload returns the request accepted by the last successful Submit.
func (c *Controller) Payload() Payload { return c.payload }

// Reason returns the validation message when in StateFailed.
func (c *Controller) Reason() string { return c.reason }

// Gen returns the current generation token.
func (c *Controller) Gen() int { return c.gen }

// Submit validates p and moves Idle or Failed to Pending, returning the
// generation token the caller should schedule the resolve delay under.
// While Pending, Succeeded, or Closed, Submit is a no-op. A validation
// failure is synchronous: the controller enters StateFailed with an inline
// reason and never reaches Pending, and the form stays resubmittable.
func (c *Controller) Submit(p Payload) (int, bool) {
	if c.state != StateIdle && c.state != StateFailed {
		return 0, false
	}
	if err := p.Validate(); err != nil {
		c.state = StateFailed
		c.reason = err.Error()
		return 0, false
	}
	c.gen = nextGen()
	c.state = StatePending
	c.payload = p
	c.reason = ""
	return c.gen, true
}

// Resolve completes the simulated round-trip scheduled under gen. A stale
// generation (cancelled or superseded) applies nothing. On success the
// submission is logged; nothing is persisted.
func (c *Controller) Resolve(gen int) bool {
	if c.state != StatePending || gen != c.gen {
		return false
	}
	c.state = StateSucceeded
	log.Printf("%s submitted: %s", c.payload.Kind(), c.payload.Describe())
	return true
}

// Finish fires the post-success auto-close scheduled under gen, moving the
// controller to StateClosed. The owner closes the form when this returns
// true.
func (c *Controller) Finish(gen int) bool {
	if c.state != StateSucceeded || gen != c.gen {
		return false
	}
	c.state = StateClosed
	return true
}

// Cancel tears down the submission when the form is closed. Any timer still
// in flight holds a stale generation afterwards, so no callback can touch
// the closed form. Safe to call in any state, any number of times.
func (c *Controller) Cancel() {
	c.gen = nextGen()
	c.state = StateClosed
}
