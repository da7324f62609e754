package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

func (p GameParams) Validate() error {
	width, height, mineCount := p.Unpack()
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d",
			ErrInvalidParams, width, height)
	}
	if mineCount < 0 {
		return fmt.Errorf("%w: negative mine count %d", ErrInvalidParams, mineCount)
	}
	if mineCount > width*height {
		return fmt.Errorf("%w: %d mines do not fit on a %dx%d board",
			ErrInvalidParams, mineCount, width, height)
	}
	return nil
}

// Generate places p.MineCount mines uniformly at random and fills in the
// neighbor counts. The returned visibility grid is all [Hidden].
func Generate(p GameParams, r *rand.Rand) (Grid, VisibilityGrid, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	width, height, mineCount := p.Unpack()

	grid := newGrid(width, height)
	for range mineCount {
		for {
			pt := Point{Row: r.IntN(height), Col: r.IntN(width)}
			if grid.At(pt).IsMine() {
				continue // occupied, draw again
			}
			grid.placeMine(pt)
			break
		}
	}

	Log.WithFields(logrus.Fields{
		"params": p.String(),
		"mines":  grid.Mines(),
	}).Debug("generated grid")

	return grid, newVisibilityGrid(width, height), nil
}

func (g Grid) placeMine(p Point) {
	g[p.Row][p.Col] = Mine
	for n := range g.Neighbors(p) {
		if !g.At(n).IsMine() {
			g[n.Row][n.Col]++
		}
	}
}
