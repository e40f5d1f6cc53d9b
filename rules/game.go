package rules

import (
	"math/rand"
	"time"

	"github.com/battlesnakeio/termsnake/input"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrInvalidGrid is returned for a grid without any cells.
	ErrInvalidGrid = errors.New("rules: grid width and height must be positive")
	// ErrSnakeOutOfBounds is returned when the starting snake does not fit
	// on the grid.
	ErrSnakeOutOfBounds = errors.New("rules: snake does not fit on the grid")
	// ErrSnakeOverlap is returned when two starting segments share a cell.
	ErrSnakeOverlap = errors.New("rules: snake segments overlap")
)

// Game holds one round of snake: the grid, the snake, the food and the
// process level running flag. Only the game loop may touch it.
type Game struct {
	ID      string
	Width   int
	Height  int
	Snake   *Snake
	Food    Point
	HasFood bool
	Score   int
	Turn    int
	// CrashPoint is the cell the snake tried to enter when it died.
	CrashPoint Point
	// Running is cleared by a quit command and never by the snake dying.
	Running bool

	rng *rand.Rand
}

// NewGame validates that snake fits on a width x height grid and places the
// first food.
func NewGame(width, height int, snake *Snake) (*Game, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidGrid, "got %dx%d", width, height)
	}
	if snake == nil || snake.Len() == 0 {
		return nil, ErrInvalidLength
	}

	seen := make(map[Point]struct{}, snake.Len())
	for _, p := range snake.Body {
		if !p.In(width, height) {
			return nil, errors.Wrapf(ErrSnakeOutOfBounds, "segment (%d,%d) on %dx%d grid", p.X, p.Y, width, height)
		}
		if _, ok := seen[p]; ok {
			return nil, errors.Wrapf(ErrSnakeOverlap, "segment (%d,%d)", p.X, p.Y)
		}
		seen[p] = struct{}{}
	}

	g := &Game{
		ID:     uuid.NewV4().String(),
		Width:  width,
		Height: height,
		Snake:  snake,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	g.placeFood()
	return g, nil
}

// HandleInput applies one keystroke: a steering key buffers a new heading,
// a quit key stops the game. Anything else is ignored.
func (g *Game) HandleInput(ev input.Event) {
	switch ev.Command() {
	case input.CommandUp:
		g.steer(North)
	case input.CommandDown:
		g.steer(South)
	case input.CommandLeft:
		g.steer(West)
	case input.CommandRight:
		g.steer(East)
	case input.CommandQuit:
		log.WithField("game", g.ID).Debug("quit requested")
		g.Running = false
	}
}

func (g *Game) steer(d Direction) {
	if !g.Snake.SetPendingHeading(d) {
		log.WithFields(log.Fields{
			"game":    g.ID,
			"heading": g.Snake.Heading,
			"ignored": d,
		}).Debug("reverse heading ignored")
	}
}

// UpdateSnake runs one tick: it commits the pending heading, moves the snake
// and handles eating. It does nothing once the snake is dead.
func (g *Game) UpdateSnake() Outcome {
	s := g.Snake
	if !s.Alive {
		return s.Cause
	}

	s.CommitHeading()
	next := s.Head().Move(s.Heading)
	ateFood := g.HasFood && next == g.Food

	outcome := s.Advance(g.Width, g.Height, ateFood)
	g.Turn++

	if outcome.Collided() {
		g.CrashPoint = next
		log.WithFields(log.Fields{
			"game":   g.ID,
			"turn":   g.Turn,
			"cause":  outcome,
			"length": s.Len(),
			"score":  g.Score,
		}).Info("snake died")
		return outcome
	}

	if ateFood {
		g.Score++
		g.placeFood()
		log.WithFields(log.Fields{
			"game":   g.ID,
			"turn":   g.Turn,
			"length": s.Len(),
			"food":   g.Food,
		}).Debug("snake ate")
	}
	return outcome
}

// Frame snapshots the game for rendering.
func (g *Game) Frame() GameFrame {
	body := make([]Point, len(g.Snake.Body))
	copy(body, g.Snake.Body)

	return GameFrame{
		Width:      g.Width,
		Height:     g.Height,
		Snake:      body,
		Food:       g.Food,
		HasFood:    g.HasFood,
		Alive:      g.Snake.Alive,
		Running:    g.Running,
		Score:      g.Score,
		Turn:       g.Turn,
		Heading:    g.Snake.Heading,
		Cause:      g.Snake.Cause,
		CrashPoint: g.CrashPoint,
	}
}

func (g *Game) placeFood() {
	g.Food, g.HasFood = getUnoccupiedPoint(g.rng, g.Width, g.Height, g.Snake.Body)
	if !g.HasFood {
		log.WithField("game", g.ID).Info("board is full, no room for food")
	}
}
