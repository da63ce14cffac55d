package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateFromPosition(t *testing.T) {
	tests := []struct {
		px, py, cw, ch int
		want           Point
	}{
		{599, 599, 200, 200, Point{2, 2}},
		{0, 0, 200, 200, Point{0, 0}},
		{199, 200, 200, 200, Point{0, 1}},
		{600, 10, 200, 200, Point{3, 0}},
		{-1, 5, 200, 200, Point{-1, 0}},
		{-200, -201, 200, 200, Point{-1, -2}},
		{35, 7, 3, 1, Point{11, 7}},
	}
	for _, test := range tests {
		got, err := CoordinateFromPosition(test.px, test.py, test.cw, test.ch)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "%d:%d / %dx%d", test.px, test.py, test.cw, test.ch)
	}

	_, err := CoordinateFromPosition(1, 1, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestCellSize(t *testing.T) {
	w, h := CellSize(600, 600, GameParams{Width: 3, Height: 3, MineCount: 1})
	assert.Equal(t, 200, w)
	assert.Equal(t, 200, h)

	p, err := CoordinateFromPosition(599, 599, w, h)
	require.NoError(t, err)
	assert.Equal(t, Point{2, 2}, p)
}

func TestCellAtPosition(t *testing.T) {
	b := mustBoard(t, 3, 3, Point{2, 2})

	p, err := b.CellAtPosition(599, 599, 200, 200)
	require.NoError(t, err)
	assert.Equal(t, Point{2, 2}, p)

	// trailing margin of a 601px viewport
	_, err = b.CellAtPosition(600, 100, 200, 200)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = b.CellAtPosition(-1, 100, 200, 200)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
