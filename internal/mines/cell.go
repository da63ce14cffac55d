package mines

// Cell is a single square of the grid. Coordinates and the mine bit are fixed
// once the board is set up; the neighbor count stays -1 for mines.
type Cell struct {
	x, y          int
	mine          bool
	revealed      bool
	flagged       bool
	neighborMines int
}

func newCell(x, y int) Cell {
	return Cell{x: x, y: y, neighborMines: -1}
}

func (c Cell) X() int { return c.x }

func (c Cell) Y() int { return c.y }

func (c Cell) Point() Point { return Point{c.x, c.y} }

func (c Cell) IsMine() bool { return c.mine }

func (c Cell) Revealed() bool { return c.revealed }

func (c Cell) Flagged() bool { return c.flagged }

// NeighborMineCount is the number of mines among the Moore neighbors of the
// cell, or -1 for mines.
func (c Cell) NeighborMineCount() int { return c.neighborMines }

// Reveal uncovers the cell. Calling it again has no effect.
func (c *Cell) Reveal() {
	c.revealed = true
}

// ToggleFlag flips the flag. Whether the cell may be flagged at all is
// decided by the [Board].
func (c *Cell) ToggleFlag() {
	c.flagged = !c.flagged
}
