package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/battlesnakeio/termsnake/config"
	"github.com/battlesnakeio/termsnake/input"
	"github.com/battlesnakeio/termsnake/render"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/scheduler"
	"github.com/battlesnakeio/termsnake/terminal"
	"github.com/battlesnakeio/termsnake/worker"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// startColumn is where the head starts unless the snake is too long for it.
const startColumn = 4

// newGame builds the starting game: the snake sits on the middle row heading
// east with its head in column 4, shifted right if its tail would not fit.
func newGame(width, height, length int) (*rules.Game, error) {
	x := startColumn
	if length-1 > x {
		x = length - 1
	}

	snake, err := rules.NewSnake(length, x, height/2, rules.East)
	if err != nil {
		return nil, errors.Wrap(err, "invalid --length")
	}
	game, err := rules.NewGame(width, height, snake)
	if err != nil {
		return nil, errors.Wrap(err, "invalid grid")
	}
	return game, nil
}

func play() error {
	game, err := newGame(width, height, length)
	if err != nil {
		return err
	}

	session, err := terminal.Open()
	if err != nil {
		return err
	}
	defer session.Close()

	queue := input.NewQueue()
	listener := &input.Listener{
		Source:      input.TermboxSource{},
		Queue:       queue,
		BacklogWarn: config.BacklogWarn,
	}
	listener.Start()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cancelOnSignal(ctx, cancel)

	runner := &worker.Runner{
		Game:     game,
		Input:    queue,
		Renderer: render.NewTermbox(),
		Clock:    scheduler.RealClock{},
		Timestep: scheduler.NewTimestep(config.TickInterval(updatesPerSecond), policy, maxCatchUp),
	}
	err = runner.Run(ctx)
	session.Close()

	if err != nil && err != context.Canceled {
		log.WithError(err).WithField("game", game.ID).Error("game ended abnormally")
		return err
	}
	fmt.Printf("Game exited. Score: %d, turns: %d\n", game.Score, game.Turn)
	return nil
}

func cancelOnSignal(ctx context.Context, cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigs)

	select {
	case s := <-sigs:
		log.WithField("signal", s).Info("stopping game")
		cancel()
	case <-ctx.Done():
	}
}
