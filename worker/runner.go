// Package worker runs a game of snake to completion. It is the core loop of
// the program: it drains keyboard input, ticks the game on a fixed timestep
// and hands frames to a renderer, sleeping in between.
package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/termsnake/input"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/scheduler"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Renderer draws a frame. It is called from the loop goroutine only.
type Renderer interface {
	Render(rules.GameFrame) error
}

// Runner owns a game for the lifetime of the loop. Nothing else may touch
// Game while Run is executing.
type Runner struct {
	Game     *rules.Game
	Input    *input.Queue
	Renderer Renderer
	Clock    scheduler.Clock
	Timestep *scheduler.Timestep
}

// Run loops until a quit key clears Game.Running, rendering or input fails,
// or ctx is done. ctx is checked once per iteration; a wait in progress is
// never cut short.
func (r *Runner) Run(ctx context.Context) error {
	g := r.Game
	g.Running = true
	r.Timestep.Reset(r.Clock.Now())

	log.WithFields(log.Fields{
		"game":     g.ID,
		"interval": r.Timestep.Interval,
		"policy":   r.Timestep.Policy,
	}).Info("game loop starting")

	for g.Running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		now := r.Clock.Now()
		behind := r.Timestep.Behind(now)
		due := r.Timestep.Due(now)
		if due == 0 {
			r.Clock.WaitUntil(r.Timestep.Next())
			continue
		}

		ticks.Inc()
		tickLateness.Observe(behind.Seconds())
		if err := r.tick(now, due); err != nil {
			return err
		}
	}

	log.WithFields(log.Fields{
		"game":  g.ID,
		"turn":  g.Turn,
		"score": g.Score,
		"alive": g.Snake.Alive,
	}).Info("game loop stopped")
	return nil
}

// tick handles one deadline: input first, then up to due updates, then a
// frame if there is still time before the next deadline.
func (r *Runner) tick(now time.Time, due int) error {
	g := r.Game

	n := r.Input.Drain(g.HandleInput)
	inputEvents.Add(float64(n))
	if err := r.Input.Err(); err != nil {
		return errors.Wrap(err, "read keyboard")
	}
	if !g.Running {
		return nil
	}

	if !g.Snake.Alive {
		return r.render()
	}

	for i := 0; i < due && g.Snake.Alive; i++ {
		done := instrument("update")
		g.UpdateSnake()
		done()
		updates.Inc()
	}

	if !now.Before(r.Timestep.Next()) {
		skippedFrames.Inc()
		log.WithFields(log.Fields{
			"game": g.ID,
			"turn": g.Turn,
		}).Debug("behind schedule, frame skipped")
		return nil
	}

	log.WithFields(log.Fields{
		"game":  g.ID,
		"turn":  g.Turn,
		"slack": r.Timestep.Remaining(now),
	}).Debug("render")
	return r.render()
}

func (r *Runner) render() error {
	defer instrument("render")()
	if err := r.Renderer.Render(r.Game.Frame()); err != nil {
		return errors.Wrap(err, "render frame")
	}
	return nil
}
