package input

import (
	"errors"
	"testing"

	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
)

const (
	keyArrowLeft = termbox.KeyArrowLeft
	keyCtrlC     = termbox.KeyCtrlC
	keySpace     = termbox.KeySpace
)

func termboxKey(key termbox.Key, ch rune) termbox.Event {
	return termbox.Event{Type: termbox.EventKey, Key: key, Ch: ch}
}

func stubPollEvent(t *testing.T, events ...termbox.Event) func() {
	orig := pollEvent
	pollEvent = func() termbox.Event {
		require.NotEmpty(t, events, "polled past the scripted events")
		ev := events[0]
		events = events[1:]
		return ev
	}
	return func() { pollEvent = orig }
}

func TestTermboxSource_SkipsNonKeyEvents(t *testing.T) {
	defer stubPollEvent(t,
		termbox.Event{Type: termbox.EventResize, Width: 80, Height: 24},
		termbox.Event{Type: termbox.EventMouse},
		termboxKey(termbox.KeyArrowUp, 0),
	)()

	ev, err := TermboxSource{}.Poll()
	require.NoError(t, err)
	require.Equal(t, Event{Key: KeyArrowUp}, ev)
}

func TestTermboxSource_Errors(t *testing.T) {
	boom := errors.New("tty gone")
	defer stubPollEvent(t,
		termbox.Event{Type: termbox.EventError, Err: boom},
		termbox.Event{Type: termbox.EventInterrupt},
	)()

	_, err := TermboxSource{}.Poll()
	require.Equal(t, boom, err)

	_, err = TermboxSource{}.Poll()
	require.Equal(t, ErrInterrupted, err)
}
