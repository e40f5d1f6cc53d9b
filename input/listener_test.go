package input

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type scriptedSource struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *scriptedSource) Poll() (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.events) == 0 {
		return Event{}, s.err
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

func TestListener_Run(t *testing.T) {
	eof := errors.New("eof")
	src := &scriptedSource{
		events: []Event{{Key: KeyArrowUp}, {Ch: 'a'}, {Ch: 'q'}},
		err:    eof,
	}
	q := NewQueue()
	l := &Listener{Source: src, Queue: q, BacklogWarn: 1, limiter: rate.NewLimiter(rate.Inf, 1)}

	l.Run()

	require.Equal(t, eof, q.Err())
	var got []Event
	q.Drain(func(ev Event) { got = append(got, ev) })
	require.Equal(t, []Event{{Key: KeyArrowUp}, {Ch: 'a'}, {Ch: 'q'}}, got)
}

func TestListener_StartDoesNotBlockConsumer(t *testing.T) {
	src := &scriptedSource{
		events: []Event{{Ch: 'w'}, {Ch: 'd'}},
		err:    ErrInterrupted,
	}
	q := NewQueue()
	l := &Listener{Source: src, Queue: q}
	l.Start()

	deadline := time.Now().Add(time.Second)
	for q.Err() == nil && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	require.Equal(t, ErrInterrupted, q.Err())

	ev, ok := q.TryReceive()
	require.True(t, ok)
	require.Equal(t, Event{Ch: 'w'}, ev)
}
