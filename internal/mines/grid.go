package mines

import (
	"strconv"
	"strings"
)

type CellStatus int8

const (
	Unknown CellStatus = -2
	Flag    CellStatus = -1
	// 0-8 for an open cell with the given number of mined neighbors

	CorrectFlag   CellStatus = 64 // post-game-over
	ExplodedMine  CellStatus = 65
	WrongFlag     CellStatus = 66
	UnflaggedMine CellStatus = 67
)

func (s CellStatus) String() string {
	switch s {
	case Unknown:
		return "#"
	case Flag, CorrectFlag:
		return "F"
	case 0:
		return "."
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	case ExplodedMine:
		return "X"
	case UnflaggedMine:
		return "*"
	case WrongFlag:
		return "!"
	default:
		return "?"
	}
}

// Count returns the neighbor count of an open safe cell.
func (s CellStatus) Count() (int, bool) {
	if 0 <= s && s <= 8 {
		return int(s), true
	}
	return 0, false
}

func (s CellStatus) IsMine() bool {
	return s == CorrectFlag || s == ExplodedMine || s == UnflaggedMine
}

func (s CellStatus) IsFlagged() bool {
	return s == Flag || s == CorrectFlag || s == WrongFlag
}

// View is what a player is allowed to see of a board. Mines stay hidden until
// the game is over.
type View struct {
	Width          int
	Height         int
	Grid           []CellStatus // row-major
	MinesRemaining int
	GameOver       bool
	Solved         bool
}

func (b *Board) View() View {
	grid := make([]CellStatus, len(b.cells))
	for i, c := range b.cells {
		grid[i] = b.status(c)
	}
	return View{
		Width:          b.params.Width,
		Height:         b.params.Height,
		Grid:           grid,
		MinesRemaining: b.MinesRemaining(),
		GameOver:       b.gameOver,
		Solved:         b.Solved(),
	}
}

func (b *Board) status(c Cell) CellStatus {
	if !b.gameOver {
		switch {
		case c.revealed:
			return CellStatus(c.neighborMines)
		case c.flagged:
			return Flag
		default:
			return Unknown
		}
	}

	switch {
	case c.revealed && c.mine:
		return ExplodedMine
	case c.revealed:
		return CellStatus(c.neighborMines)
	case c.flagged && c.mine:
		return CorrectFlag
	case c.flagged:
		return WrongFlag
	case c.mine:
		return UnflaggedMine
	default:
		return Unknown
	}
}

func (v View) At(x, y int) CellStatus {
	return v.Grid[y*v.Width+x]
}

// String renders one line per row, one character per cell.
func (v View) String() string {
	var b strings.Builder
	for y := range v.Height {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range v.Width {
			b.WriteString(v.At(x, y).String())
		}
	}
	return b.String()
}
