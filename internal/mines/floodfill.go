package mines

// floodFill opens the zero region containing start together with its
// numbered border. It uses an explicit stack so depth does not grow with the
// grid. Flagged cells are skipped: they stay covered and keep their flag.
func (b *Board) floodFill(start int) {
	visited := make([]bool, len(b.cells))
	stack := []int{start}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[i] {
			continue
		}
		visited[i] = true

		c := &b.cells[i]
		if c.mine || c.flagged {
			continue
		}
		if !c.revealed {
			c.Reveal()
			b.revealedSafe++
		}
		if c.neighborMines != 0 {
			continue
		}

		for j := range b.neighbors(c.x, c.y) {
			n := b.cells[j]
			if !visited[j] && !n.revealed && !n.mine {
				stack = append(stack, j)
			}
		}
	}
}
