package mines

import (
	"fmt"
	"iter"
	"log/slog"
	"math/rand/v2"
)

var Log *slog.Logger = slog.Default()

// Board owns the grid of a single game. It is not safe for concurrent use;
// callers that share a board must serialize access.
type Board struct {
	params       GameParams
	cells        []Cell // row-major, y*width+x
	gameOver     bool
	exploded     bool
	revealedSafe int
	flags        int
}

func newBoard(params GameParams) *Board {
	cells := make([]Cell, params.CellCount())
	for y := range params.Height {
		for x := range params.Width {
			cells[y*params.Width+x] = newCell(x, y)
		}
	}
	return &Board{params: params, cells: cells}
}

// NewBoard builds a board with params.MineCount mines placed uniformly at
// random using r.
func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfiguration)
	}
	b := newBoard(params)
	b.placeMines(r)
	b.countNeighbors()
	Log.Debug("board generated", slog.String("params", params.Seed()))
	return b, nil
}

// NewBoardWithMines builds a board with mines at exactly the given points.
func NewBoardWithMines(width, height int, mines []Point) (*Board, error) {
	params := GameParams{Width: width, Height: height, MineCount: len(mines)}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := newBoard(params)
	for _, p := range mines {
		if !b.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: mine %s outside %dx%d grid",
				ErrInvalidConfiguration, p, width, height)
		}
		c := &b.cells[b.index(p.X, p.Y)]
		if c.mine {
			return nil, fmt.Errorf("%w: duplicate mine %s", ErrInvalidConfiguration, p)
		}
		c.mine = true
	}
	b.countNeighbors()
	return b, nil
}

func (b *Board) index(x, y int) int {
	return y*b.params.Width + x
}

// neighbors yields the indices of the Moore neighbors of x:y clipped to the
// grid.
func (b *Board) neighbors(x, y int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				xx, yy := x+dx, y+dy
				if (dx == 0 && dy == 0) || !b.InBounds(xx, yy) {
					continue
				}
				if !yield(b.index(xx, yy)) {
					return
				}
			}
		}
	}
}

func (b *Board) Params() GameParams { return b.params }

func (b *Board) Width() int { return b.params.Width }

func (b *Board) Height() int { return b.params.Height }

func (b *Board) MineCount() int { return b.params.MineCount }

func (b *Board) InBounds(x, y int) bool { return b.params.PointInBounds(x, y) }

// GameOver reports whether a mine was revealed or every safe cell is open.
func (b *Board) GameOver() bool { return b.gameOver }

// Solved reports a won game: over, and no mine was revealed.
func (b *Board) Solved() bool { return b.gameOver && !b.exploded }

func (b *Board) FlagCount() int { return b.flags }

// MinesRemaining is the mine count minus the number of flags placed. It goes
// negative when the player over-flags.
func (b *Board) MinesRemaining() int { return b.params.MineCount - b.flags }

func (b *Board) safeCells() int {
	return b.params.CellCount() - b.params.MineCount
}

// Cell returns a copy of the cell at x:y.
func (b *Board) Cell(x, y int) (Cell, error) {
	if !b.InBounds(x, y) {
		return Cell{}, fmt.Errorf("cell %d:%d: %w", x, y, ErrOutOfBounds)
	}
	return b.cells[b.index(x, y)], nil
}

// Cells yields copies of all cells in row-major order.
func (b *Board) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, c := range b.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// Reveal opens the cell at x:y. Revealed and flagged cells are left alone, as
// is every cell once the game is over. A zero cell opens its whole region.
func (b *Board) Reveal(x, y int) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("reveal %d:%d: %w", x, y, ErrOutOfBounds)
	}
	if b.gameOver {
		return nil
	}
	i := b.index(x, y)
	c := &b.cells[i]
	if c.revealed || c.flagged {
		return nil
	}

	c.Reveal()
	if c.mine {
		b.exploded = true
		b.gameOver = true
		Log.Debug("mine revealed", slog.Int("x", x), slog.Int("y", y))
		return nil
	}
	b.revealedSafe++

	if c.neighborMines == 0 {
		b.floodFill(i)
	}

	if b.revealedSafe == b.safeCells() {
		b.gameOver = true
		Log.Debug("board solved", slog.String("params", b.params.Seed()))
	}
	return nil
}

// ToggleFlag flips the flag on an unrevealed cell.
func (b *Board) ToggleFlag(x, y int) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("flag %d:%d: %w", x, y, ErrOutOfBounds)
	}
	if b.gameOver {
		return nil
	}
	c := &b.cells[b.index(x, y)]
	if c.revealed {
		return nil
	}
	c.ToggleFlag()
	if c.flagged {
		b.flags++
	} else {
		b.flags--
	}
	return nil
}

// Chord reveals the unflagged neighbors of an open numbered cell once the
// player has placed as many flags around it as its number.
func (b *Board) Chord(x, y int) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("chord %d:%d: %w", x, y, ErrOutOfBounds)
	}
	if b.gameOver {
		return nil
	}
	c := b.cells[b.index(x, y)]
	if !c.revealed || c.neighborMines <= 0 {
		return nil
	}

	flags := 0
	targets := make([]int, 0, 8)
	for j := range b.neighbors(x, y) {
		n := b.cells[j]
		if n.flagged {
			flags++
		} else if !n.revealed {
			targets = append(targets, j)
		}
	}
	if flags != c.neighborMines {
		return nil
	}

	for _, j := range targets {
		n := b.cells[j]
		if err := b.Reveal(n.x, n.y); err != nil {
			return err
		}
		if b.gameOver {
			break
		}
	}
	return nil
}
