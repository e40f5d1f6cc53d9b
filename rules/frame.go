package rules

// GameFrame is a read-only view of one moment of a game, holding everything
// a renderer needs. It shares no memory with the Game it came from.
type GameFrame struct {
	Width   int
	Height  int
	Snake   []Point // head to tail
	Food    Point
	HasFood bool
	Alive   bool
	Running bool

	Score      int
	Turn       int
	Heading    Direction
	Cause      Outcome
	CrashPoint Point
}

// Head returns the snake's head, if it has one.
func (f GameFrame) Head() (Point, bool) {
	if len(f.Snake) == 0 {
		return Point{}, false
	}
	return f.Snake[0], true
}
