package scheduler

import (
	"time"

	"github.com/pkg/errors"
)

// Policy decides what happens when the loop falls behind its deadline.
type Policy string

const (
	// PolicyStep runs at most one update per loop iteration and moves the
	// deadline forward by exactly one interval. A late loop fires again on
	// the next iteration without sleeping until it has caught up.
	PolicyStep Policy = "step"
	// PolicyCatchUp runs every missed update in the same iteration, up to
	// MaxCatchUp, keeping simulated time in line with wall time.
	PolicyCatchUp Policy = "catch-up"
	// PolicyDrop runs one update and, if still more than an interval
	// behind, throws the missed ticks away and restarts the cadence from
	// now.
	PolicyDrop Policy = "drop"
)

// ParsePolicy converts a flag value into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyStep, PolicyCatchUp, PolicyDrop:
		return p, nil
	}
	return "", errors.Errorf("scheduler: unknown policy %q", s)
}

// Timestep is a fixed-interval deadline counter. The deadline only ever moves
// by whole intervals, so jitter in the loop never accumulates into drift.
type Timestep struct {
	Interval   time.Duration
	Policy     Policy
	MaxCatchUp int

	next time.Time
}

// NewTimestep returns a timestep using the given policy.
func NewTimestep(interval time.Duration, policy Policy, maxCatchUp int) *Timestep {
	return &Timestep{
		Interval:   interval,
		Policy:     policy,
		MaxCatchUp: maxCatchUp,
	}
}

// Reset makes now the first deadline.
func (t *Timestep) Reset(now time.Time) {
	t.next = now
}

// Next returns the upcoming deadline.
func (t *Timestep) Next() time.Time {
	return t.next
}

// Remaining returns how long until the next deadline, zero if it has passed.
func (t *Timestep) Remaining(now time.Time) time.Duration {
	if d := t.next.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Behind returns how far now is past the next deadline, zero if it is not.
func (t *Timestep) Behind(now time.Time) time.Duration {
	if d := now.Sub(t.next); d > 0 {
		return d
	}
	return 0
}

// Due returns the number of updates to run at now and moves the deadline
// past them. Zero means the caller should wait for Next.
func (t *Timestep) Due(now time.Time) int {
	if now.Before(t.next) {
		return 0
	}

	switch t.Policy {
	case PolicyCatchUp:
		max := t.MaxCatchUp
		if max < 1 {
			max = 1
		}
		n := 0
		for n < max && !now.Before(t.next) {
			t.next = t.next.Add(t.Interval)
			n++
		}
		return n
	case PolicyDrop:
		t.next = t.next.Add(t.Interval)
		if !now.Before(t.next) {
			t.next = now.Add(t.Interval)
		}
		return 1
	default:
		t.next = t.next.Add(t.Interval)
		return 1
	}
}
