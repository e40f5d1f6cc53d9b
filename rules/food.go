package rules

import (
	"math/rand"
)

// getUnoccupiedPoint picks a free cell uniformly at random. It returns false
// when the grid is full.
func getUnoccupiedPoint(rng *rand.Rand, width, height int, occupied []Point) (Point, bool) {
	openPoints := getUnoccupiedPoints(width, height, occupied)
	if len(openPoints) == 0 {
		return Point{}, false
	}
	return openPoints[rng.Intn(len(openPoints))], true
}

// getUnoccupiedPoints lists every cell not in occupied, row by row.
func getUnoccupiedPoints(width, height int, occupied []Point) []Point {
	taken := make(map[Point]struct{}, len(occupied))
	for _, o := range occupied {
		taken[o] = struct{}{}
	}

	candidatePoints := make([]Point, 0, width*height-len(taken))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				candidatePoints = append(candidatePoints, p)
			}
		}
	}
	return candidatePoints
}
