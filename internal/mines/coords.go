package mines

import "fmt"

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

// CoordinateFromPosition maps a pixel position to the grid cell under it by
// dividing each axis by the cell size. Positions left of or above the origin
// map to negative coordinates. The result is not checked against any grid.
func CoordinateFromPosition(px, py, cellWidth, cellHeight int) (Point, error) {
	if cellWidth <= 0 || cellHeight <= 0 {
		return Point{}, fmt.Errorf(
			"%w: cell size must be positive, got %dx%d",
			ErrInvalidConfiguration, cellWidth, cellHeight,
		)
	}
	return Point{floorDiv(px, cellWidth), floorDiv(py, cellHeight)}, nil
}

// CellSize splits a viewport evenly between the columns and rows of a grid.
func CellSize(viewportWidth, viewportHeight int, p GameParams) (w, h int) {
	if p.Width <= 0 || p.Height <= 0 {
		return 0, 0
	}
	return viewportWidth / p.Width, viewportHeight / p.Height
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// CellAtPosition is [CoordinateFromPosition] followed by a bounds check
// against the board.
func (b *Board) CellAtPosition(px, py, cellWidth, cellHeight int) (Point, error) {
	p, err := CoordinateFromPosition(px, py, cellWidth, cellHeight)
	if err != nil {
		return p, err
	}
	if !b.InBounds(p.X, p.Y) {
		return p, fmt.Errorf("position %d:%d maps to %s: %w", px, py, p, ErrOutOfBounds)
	}
	return p, nil
}
