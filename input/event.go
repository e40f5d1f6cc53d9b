// Package input captures keystrokes on a dedicated goroutine and hands them
// to the game loop through a non-blocking, unbounded queue.
package input

// Key identifies a non-printable key. Printable keys arrive in Event.Ch with
// Key set to KeyNone.
type Key uint16

// Keys the game understands.
const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEsc
	KeyCtrlC
)

// Event is a single captured keystroke.
type Event struct {
	Ch  rune
	Key Key
}

// Command is the game meaning of an Event.
type Command int

// Commands produced by Event.Command.
const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandQuit
)

// Command maps the keystroke to a game command. Arrow keys, WASD and hjkl
// steer; q, Esc and Ctrl-C quit. Anything else is CommandNone.
func (e Event) Command() Command {
	switch e.Key {
	case KeyArrowUp:
		return CommandUp
	case KeyArrowDown:
		return CommandDown
	case KeyArrowLeft:
		return CommandLeft
	case KeyArrowRight:
		return CommandRight
	case KeyEsc, KeyCtrlC:
		return CommandQuit
	}

	switch e.Ch {
	case 'w', 'W', 'k':
		return CommandUp
	case 's', 'S', 'j':
		return CommandDown
	case 'a', 'A', 'h':
		return CommandLeft
	case 'd', 'D', 'l':
		return CommandRight
	case 'q', 'Q':
		return CommandQuit
	}
	return CommandNone
}

func (c Command) String() string {
	switch c {
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandQuit:
		return "quit"
	}
	return "none"
}
