package rules

// Outcome is the result of advancing a snake one tick.
type Outcome string

const (
	// OutcomeMoved is when the snake moved without hitting anything.
	OutcomeMoved Outcome = "moved"
	// OutcomeWallCollision is when the snake's head left the board.
	OutcomeWallCollision Outcome = "wall-collision"
	// OutcomeSelfCollision is when the snake's head ran into its own body.
	OutcomeSelfCollision Outcome = "snake-self-collision"
)

// Collided reports whether the outcome ends the round.
func (o Outcome) Collided() bool {
	return o == OutcomeWallCollision || o == OutcomeSelfCollision
}
