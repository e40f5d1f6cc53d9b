// Package scheduler decides when the game loop should tick. It owns the
// deadline arithmetic of the fixed timestep so the loop itself only asks
// "how many updates now?" and "how long until the next one?".
package scheduler

import "time"

// Clock is the loop's source of time.
type Clock interface {
	Now() time.Time
	// WaitUntil suspends the caller until deadline has passed. Only the
	// passage of time wakes it.
	WaitUntil(deadline time.Time)
}

// RealClock is the wall clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// WaitUntil sleeps until deadline. It returns at once if deadline is past.
func (RealClock) WaitUntil(deadline time.Time) {
	if d := time.Until(deadline); d > 0 {
		time.Sleep(d)
	}
}
