package rules

import (
	"github.com/pkg/errors"
)

// ErrInvalidLength is returned when a snake is created with fewer than one
// segment.
var ErrInvalidLength = errors.New("rules: snake length must be at least 1")

// Snake is an ordered body of cells, head first. A dead snake keeps its body
// so the final frame can still be drawn.
type Snake struct {
	Body           []Point
	Heading        Direction
	PendingHeading Direction
	Alive          bool
	// Cause is how the snake died, empty while it is alive.
	Cause Outcome
}

// NewSnake lays out a straight snake of the given length with its head at
// (startX, startY) and the rest of the body trailing opposite to heading.
func NewSnake(length, startX, startY int, heading Direction) (*Snake, error) {
	if length < 1 {
		return nil, errors.Wrapf(ErrInvalidLength, "got %d", length)
	}

	head := Point{X: startX, Y: startY}
	back := heading.Reverse()
	body := make([]Point, 0, length)
	for i := 0; i < length; i++ {
		body = append(body, head)
		head = head.Move(back)
	}

	return &Snake{
		Body:           body,
		Heading:        heading,
		PendingHeading: heading,
		Alive:          true,
	}, nil
}

// Head returns the first point in the body.
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Tail returns the last point in the body.
func (s *Snake) Tail() Point {
	return s.Body[len(s.Body)-1]
}

// Len is the number of body segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

// SetPendingHeading buffers d for the next advance. Turning straight back is
// refused for snakes longer than one segment. It reports whether d was
// accepted.
func (s *Snake) SetPendingHeading(d Direction) bool {
	if s.Len() > 1 && d == s.Heading.Reverse() {
		return false
	}
	s.PendingHeading = d
	return true
}

// CommitHeading applies the pending heading.
func (s *Snake) CommitHeading() {
	s.Heading = s.PendingHeading
}

// Advance moves the snake one cell along its heading on a width x height
// grid. When ateFood is set the tail is kept and the snake grows by one.
// On a collision the snake dies and its body is left untouched. Advancing a
// dead snake does nothing and returns the cause of death.
func (s *Snake) Advance(width, height int, ateFood bool) Outcome {
	if !s.Alive {
		return s.Cause
	}

	next := s.Head().Move(s.Heading)
	if !next.In(width, height) {
		return s.die(OutcomeWallCollision)
	}

	// the tail moves out of the way in the same tick unless we are growing
	body := s.Body
	if !ateFood {
		body = body[:len(body)-1]
	}
	for _, b := range body {
		if b == next {
			return s.die(OutcomeSelfCollision)
		}
	}

	if ateFood {
		s.Body = append(s.Body, Point{})
	}
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = next
	return OutcomeMoved
}

func (s *Snake) die(cause Outcome) Outcome {
	s.Alive = false
	s.Cause = cause
	return cause
}
