package mines

import "github.com/gammazero/deque"

// Reveal opens p and, while the opened cells have no mined neighbors, keeps
// opening around them. Flags in the way are overwritten. p must be in bounds.
func Reveal(grid Grid, vis VisibilityGrid, p Point) {
	var todo deque.Deque[Point]
	todo.PushBack(p)

	for todo.Len() > 0 {
		cur := todo.PopFront()
		if vis.At(cur) == Revealed {
			continue
		}
		vis.set(cur, Revealed)

		if grid.At(cur) != 0 {
			continue
		}
		for n := range grid.Neighbors(cur) {
			if vis.At(n) != Revealed {
				todo.PushBack(n)
			}
		}
	}
}
