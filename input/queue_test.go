package input

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueue_TryReceiveEmpty(t *testing.T) {
	q := NewQueue()
	ev, ok := q.TryReceive()
	require.False(t, ok)
	require.Equal(t, Event{}, ev)
}

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Ch: 'a'})
	q.Push(Event{Ch: 'b'})
	q.Push(Event{Key: KeyArrowUp})
	require.Equal(t, 3, q.Len())

	ev, ok := q.TryReceive()
	require.True(t, ok)
	require.Equal(t, Event{Ch: 'a'}, ev)

	var got []Event
	n := q.Drain(func(ev Event) { got = append(got, ev) })
	require.Equal(t, 2, n)
	require.Equal(t, []Event{{Ch: 'b'}, {Key: KeyArrowUp}}, got)
	require.Equal(t, 0, q.Len())
}

func TestQueue_DrainLeavesLateEventsForNextDrain(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Ch: 'a'})

	n := q.Drain(func(Event) { q.Push(Event{Ch: 'z'}) })
	require.Equal(t, 1, n)
	require.Equal(t, 1, q.Len())

	ev, ok := q.TryReceive()
	require.True(t, ok)
	require.Equal(t, Event{Ch: 'z'}, ev)
}

func TestQueue_ConcurrentProducerKeepsOrder(t *testing.T) {
	const total = 5000
	q := NewQueue()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < total; i++ {
			q.Push(Event{Ch: rune(i)})
		}
	}()

	var got []rune
	for len(got) < total {
		q.Drain(func(ev Event) { got = append(got, ev.Ch) })
	}
	wg.Wait()

	require.Len(t, got, total)
	for i, ch := range got {
		require.Equal(t, rune(i), ch)
	}
}

func TestQueue_CloseWithError(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Ch: 'a'})
	require.NoError(t, q.Err())

	boom := errors.New("boom")
	q.CloseWithError(boom)
	q.CloseWithError(errors.New("second"))
	require.Equal(t, boom, q.Err())

	q.Push(Event{Ch: 'b'})
	require.Equal(t, 1, q.Len())
	ev, ok := q.TryReceive()
	require.True(t, ok)
	require.Equal(t, Event{Ch: 'a'}, ev)
}
