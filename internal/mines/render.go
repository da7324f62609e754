package mines

import (
	"bufio"
	"io"
	"strings"
)

// Render writes one line per row in the form "| ? 1 ! X |".
// With revealAll every cell shows its value.
func Render(w io.Writer, grid Grid, vis VisibilityGrid, revealAll bool) error {
	b := bufio.NewWriter(w)
	for row := range grid {
		b.WriteString("| ")
		for col, c := range grid[row] {
			switch s := vis[row][col]; {
			case s == Hidden && !revealAll:
				b.WriteByte('?')
			case s == Flagged && !revealAll:
				b.WriteByte('!')
			default:
				b.WriteString(c.String())
			}
			b.WriteByte(' ')
		}
		b.WriteString("|\n")
	}
	return b.Flush()
}

func (g Grid) ToString(vis VisibilityGrid, revealAll bool) string {
	var b strings.Builder
	Render(&b, g, vis, revealAll)
	return b.String()
}
