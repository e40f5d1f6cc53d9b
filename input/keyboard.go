package input

import (
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

// ErrInterrupted is returned by TermboxSource when termbox.Interrupt was
// called.
var ErrInterrupted = errors.New("input: keyboard interrupted")

// Source is a blocking supplier of key events.
type Source interface {
	Poll() (Event, error)
}

// TermboxSource reads keys from an initialised termbox terminal.
type TermboxSource struct{}

var pollEvent = termbox.PollEvent

// Poll blocks until the next key press. Resize and mouse events are skipped.
func (TermboxSource) Poll() (Event, error) {
	for {
		ev := pollEvent()
		switch ev.Type {
		case termbox.EventKey:
			return fromTermbox(ev), nil
		case termbox.EventError:
			return Event{}, ev.Err
		case termbox.EventInterrupt:
			return Event{}, ErrInterrupted
		}
	}
}

func fromTermbox(ev termbox.Event) Event {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return Event{Key: KeyArrowUp}
	case termbox.KeyArrowDown:
		return Event{Key: KeyArrowDown}
	case termbox.KeyArrowLeft:
		return Event{Key: KeyArrowLeft}
	case termbox.KeyArrowRight:
		return Event{Key: KeyArrowRight}
	case termbox.KeyEsc:
		return Event{Key: KeyEsc}
	case termbox.KeyCtrlC:
		return Event{Key: KeyCtrlC}
	case termbox.KeySpace:
		return Event{Ch: ' '}
	}
	return Event{Ch: ev.Ch}
}
