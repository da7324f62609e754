package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroRegion collects the cells a reveal from start is expected to open:
// the connected zero cells plus their border.
func zeroRegion(g Grid, start Point) map[Point]bool {
	region := map[Point]bool{}
	queue := []Point{start}
	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if region[p] {
			continue
		}
		region[p] = true
		if g[p.Row][p.Col] != 0 {
			continue
		}
		for r := max(0, p.Row-1); r <= min(len(g)-1, p.Row+1); r++ {
			for c := max(0, p.Col-1); c <= min(len(g[r])-1, p.Col+1); c++ {
				queue = append(queue, Point{r, c})
			}
		}
	}
	return region
}

func TestRevealFloodFill(t *testing.T) {
	params := GameParams{Width: 16, Height: 12, MineCount: 20}
	for seed := range uint64(10) {
		grid, _, err := Generate(params, rand.New(rand.NewPCG(seed, 7)))
		require.NoError(t, err)

		for row := range grid {
			for col := range grid[row] {
				start := Point{row, col}
				vis := newVisibilityGrid(grid.Width(), grid.Height())
				Reveal(grid, vis, start)

				region := zeroRegion(grid, start)
				for r := range vis {
					for c := range vis[r] {
						p := Point{r, c}
						if region[p] {
							require.Equal(t, Revealed, vis.At(p), "start %v cell %v", start, p)
						} else {
							require.Equal(t, Hidden, vis.At(p), "start %v cell %v", start, p)
						}
					}
				}
			}
		}
	}
}

func TestRevealIdempotent(t *testing.T) {
	grid, vis := gridFromRows(
		"*....",
		".....",
		"...*.",
		".....",
	)
	Reveal(grid, vis, Point{3, 0})
	once := make(VisibilityGrid, len(vis))
	for row := range vis {
		once[row] = append([]Visibility(nil), vis[row]...)
	}

	Reveal(grid, vis, Point{3, 0})
	assert.Equal(t, once, vis)
}

func TestRevealNumberDoesNotCascade(t *testing.T) {
	grid, vis := gridFromRows(
		"*..",
		"...",
		"...",
	)
	Reveal(grid, vis, Point{0, 1})
	assert.Equal(t, Revealed, vis.At(Point{0, 1}))
	assert.Equal(t, 1, countVisibility(vis, Revealed))
}

func TestRevealFromCorners(t *testing.T) {
	corners := []Point{{0, 0}, {0, 4}, {3, 0}, {3, 4}}
	for _, corner := range corners {
		grid, vis := gridFromRows(
			".....",
			".....",
			".....",
			".....",
		)
		Reveal(grid, vis, corner)
		assert.Equal(t, 20, countVisibility(vis, Revealed), "corner %v", corner)
	}
}

func TestRevealStopsAtBorder(t *testing.T) {
	grid, vis := gridFromRows(
		"..*..",
		"..*..",
		"..*..",
	)
	Reveal(grid, vis, Point{0, 0})

	want := [][]Visibility{
		{Revealed, Revealed, Hidden, Hidden, Hidden},
		{Revealed, Revealed, Hidden, Hidden, Hidden},
		{Revealed, Revealed, Hidden, Hidden, Hidden},
	}
	assert.Equal(t, VisibilityGrid(want), vis)
}

func TestRevealOverwritesFlags(t *testing.T) {
	grid, vis := gridFromRows(
		"...",
		"...",
		"...",
	)
	vis.set(Point{2, 2}, Flagged)
	vis.set(Point{0, 0}, Flagged)

	Reveal(grid, vis, Point{0, 0})
	assert.Equal(t, 9, countVisibility(vis, Revealed))
}

func TestRevealMine(t *testing.T) {
	grid, vis := gridFromRows(
		"...",
		".*.",
		"...",
	)
	p := Point{1, 1}
	Reveal(grid, vis, p)

	assert.Equal(t, Revealed, vis.At(p))
	assert.Equal(t, 1, countVisibility(vis, Revealed))
	assert.True(t, grid.At(p).IsMine())
	assert.False(t, IsWin(grid, vis))
}

func TestRevealLargeEmptyBoard(t *testing.T) {
	params := GameParams{Width: 500, Height: 500, MineCount: 0}
	grid, vis, err := Generate(params, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	Reveal(grid, vis, Point{250, 250})
	assert.Equal(t, 500*500, countVisibility(vis, Revealed))
}
