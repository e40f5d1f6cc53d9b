package rules

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetUnoccupiedPoints(t *testing.T) {
	occupied := []Point{{0, 0}, {1, 0}, {1, 0}, {0, 1}}
	points := getUnoccupiedPoints(2, 2, occupied)
	require.Equal(t, []Point{{1, 1}}, points)
}

func TestGetUnoccupiedPoint_FullGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, ok := getUnoccupiedPoint(rng, 2, 1, []Point{{0, 0}, {1, 0}})
	require.False(t, ok)
}

func TestGetUnoccupiedPoint_Uniform(t *testing.T) {
	const draws = 40000
	rng := rand.New(rand.NewSource(42))
	occupied := []Point{{0, 0}, {1, 1}}

	counts := map[Point]int{}
	for i := 0; i < draws; i++ {
		p, ok := getUnoccupiedPoint(rng, 3, 2, occupied)
		require.True(t, ok)
		counts[p]++
	}

	require.Len(t, counts, 4)
	for _, o := range occupied {
		require.Zero(t, counts[o])
	}
	for p, n := range counts {
		// each free cell expects draws/4 = 10000
		require.InDelta(t, draws/4, n, 600, "point %v", p)
	}
}
