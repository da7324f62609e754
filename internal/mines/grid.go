package mines

import (
	"iter"
	"strconv"
)

// Cell is either [Mine] or the number of mines among the up to 8
// surrounding cells.
type Cell int8

const Mine Cell = -1

func (c Cell) IsMine() bool {
	return c == Mine
}

func (c Cell) String() string {
	if c.IsMine() {
		return "X"
	}
	return strconv.Itoa(int(c))
}

type Visibility uint8

const (
	Hidden Visibility = iota
	Flagged
	Revealed
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return "Visibility(" + strconv.Itoa(int(v)) + ")"
	}
}

type Point struct {
	Row, Col int
}

// Grid is indexed as grid[row][col].
type Grid [][]Cell

// VisibilityGrid has the same shape as the [Grid] it belongs to.
type VisibilityGrid [][]Visibility

func newGrid(width, height int) Grid {
	g := make(Grid, height)
	for row := range g {
		g[row] = make([]Cell, width)
	}
	return g
}

func newVisibilityGrid(width, height int) VisibilityGrid {
	v := make(VisibilityGrid, height)
	for row := range v {
		v[row] = make([]Visibility, width) // all Hidden
	}
	return v
}

func (g Grid) Height() int {
	return len(g)
}

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) InBounds(p Point) bool {
	return 0 <= p.Row && p.Row < g.Height() && 0 <= p.Col && p.Col < g.Width()
}

func (g Grid) At(p Point) Cell {
	return g[p.Row][p.Col]
}

// Neighbors yields the in-bounds cells at Chebyshev distance 1 from p.
func (g Grid) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				n := Point{p.Row + dr, p.Col + dc}
				if !g.InBounds(n) {
					continue
				}
				if !yield(n) {
					return
				}
			}
		}
	}
}

func (g Grid) Mines() (count int) {
	for _, row := range g {
		for _, c := range row {
			if c.IsMine() {
				count++
			}
		}
	}
	return
}

func (v VisibilityGrid) At(p Point) Visibility {
	return v[p.Row][p.Col]
}

func (v VisibilityGrid) set(p Point, s Visibility) {
	v[p.Row][p.Col] = s
}
