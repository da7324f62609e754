package mines

// IsWin reports whether the flags mark exactly the mines: every mine flagged
// and nothing else.
func IsWin(grid Grid, vis VisibilityGrid) bool {
	for row := range grid {
		for col, c := range grid[row] {
			flagged := vis[row][col] == Flagged
			if flagged != c.IsMine() {
				return false
			}
		}
	}
	return true
}
