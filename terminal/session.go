// Package terminal owns the process-wide terminal state: raw mode, the
// alternate screen and the cursor. A Session is acquired once before the
// game loop starts and released on every way out of it.
package terminal

import (
	"bytes"
	"io"
	"os"
	"sync"

	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	initTerminal  = termbox.Init
	closeTerminal = termbox.Close
	setInputMode  = termbox.SetInputMode
	hideCursor    = termbox.HideCursor

	logOutput io.Writer = os.Stderr
)

// Session is an open terminal. While it is open, log output is held back so
// it does not scribble over the game, and written out again on Close.
type Session struct {
	mu     sync.Mutex
	closed bool
	logs   bytes.Buffer
}

// Open switches the terminal into raw mode on the alternate screen with the
// cursor hidden.
func Open() (*Session, error) {
	if err := initTerminal(); err != nil {
		return nil, errors.Wrap(err, "terminal: init")
	}
	setInputMode(termbox.InputEsc)
	hideCursor()

	s := &Session{}
	log.SetOutput(&s.logs)
	return s, nil
}

// Close restores the terminal and flushes the logs held back while it was
// open. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	closeTerminal()
	log.SetOutput(logOutput)
	if s.logs.Len() > 0 {
		if _, err := s.logs.WriteTo(logOutput); err != nil {
			log.WithError(err).Warn("unable to flush buffered logs")
		}
	}
}
