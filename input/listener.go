package input

import (
	"github.com/battlesnakeio/termsnake/config"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Listener moves events from a Source onto a Queue on its own goroutine.
type Listener struct {
	Source Source
	Queue  *Queue
	// BacklogWarn is the queue length above which a warning is logged,
	// at most config.BacklogLogRate times per second. Zero disables it.
	BacklogWarn int

	limiter *rate.Limiter
}

// Start launches the capture goroutine. It runs until the source fails and
// is never joined: it is abandoned when the game loop returns.
func (l *Listener) Start() {
	go l.Run()
}

// Run captures events until the source returns an error, which is recorded
// on the queue.
func (l *Listener) Run() {
	if l.limiter == nil {
		l.limiter = rate.NewLimiter(config.BacklogLogRate, 1)
	}
	for {
		ev, err := l.Source.Poll()
		if err != nil {
			log.WithError(err).Debug("keyboard capture stopped")
			l.Queue.CloseWithError(err)
			return
		}
		l.Queue.Push(ev)

		if l.BacklogWarn <= 0 {
			continue
		}
		if n := l.Queue.Len(); n > l.BacklogWarn && l.limiter.Allow() {
			log.WithField("backlog", n).Warn("game loop is falling behind keyboard input")
		}
	}
}
