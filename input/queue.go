package input

import (
	"sync"
)

// Queue is an unbounded FIFO of key events with one producer and one
// consumer. Neither side ever blocks: Push appends, TryReceive and Drain
// return immediately with whatever is queued.
type Queue struct {
	mu     sync.Mutex
	events []Event
	err    error
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event. It is a no-op once the queue has been closed.
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.err != nil {
		return
	}
	q.events = append(q.events, ev)
}

// TryReceive pops the oldest event, if any.
func (q *Queue) TryReceive() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return Event{}, false
	}
	ev := q.events[0]
	q.events[0] = Event{}
	q.events = q.events[1:]
	return ev, true
}

// Drain passes every event queued at the time of the call to fn, oldest
// first, and returns how many were handled. Events pushed while fn runs are
// left for the next Drain. The lock is not held while fn runs.
func (q *Queue) Drain(fn func(Event)) int {
	q.mu.Lock()
	events := q.events
	q.events = nil
	q.mu.Unlock()

	for _, ev := range events {
		fn(ev)
	}
	return len(events)
}

// Len reports the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.events)
}

// CloseWithError records that the producer stopped. Queued events stay
// drainable; further pushes are dropped.
func (q *Queue) CloseWithError(err error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.err == nil {
		q.err = err
	}
}

// Err returns the error the producer stopped with, or nil while it runs.
func (q *Queue) Err() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.err
}
