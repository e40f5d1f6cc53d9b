package rules

// Point is a cell on the grid. X grows to the right, Y grows downwards.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Move returns the neighbouring point one step in direction d.
func (p Point) Move(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// In reports whether p lies inside a width x height grid.
func (p Point) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}
