package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wall() []Point {
	return []Point{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}}
}

func TestFloodFillStopsAtBorder(t *testing.T) {
	b := mustBoard(t, 5, 5, wall()...)

	require.NoError(t, b.Reveal(4, 0))

	assert.False(t, b.GameOver())
	assert.Equal(t, rows(
		"###2.",
		"###3.",
		"###3.",
		"###3.",
		"###2.",
	), b.View().String())

	require.NoError(t, b.Reveal(0, 0))
	assert.True(t, b.Solved())
	assert.Equal(t, rows(
		".2*2.",
		".3*3.",
		".3*3.",
		".3*3.",
		".2*2.",
	), b.View().String())
}

func TestFloodFillLeavesFlagsAlone(t *testing.T) {
	b := mustBoard(t, 5, 5, wall()...)

	require.NoError(t, b.ToggleFlag(4, 2))
	require.NoError(t, b.Reveal(4, 0))

	assert.Equal(t, rows(
		"###2.",
		"###3.",
		"###3F",
		"#####",
		"#####",
	), b.View().String())
	assert.Equal(t, 1, b.FlagCount())
}

func TestFloodFillHandlesLargeOpenBoard(t *testing.T) {
	b := mustBoard(t, 1000, 1000, Point{999, 999})

	require.NoError(t, b.Reveal(0, 0))
	assert.True(t, b.Solved())
	assert.Equal(t, b.safeCells(), b.revealedSafe)
}

// The region opened from a zero cell must be its 8-connected zero component
// plus the safe cells touching it, and nothing else.
func TestFloodFillMatchesComponent(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	params := GameParams{Width: 20, Height: 15, MineCount: 30}

	for range 50 {
		b, err := NewBoard(params, r)
		require.NoError(t, err)

		var start Cell
		found := false
		for c := range b.Cells() {
			if !c.IsMine() && c.NeighborMineCount() == 0 {
				start, found = c, true
				break
			}
		}
		if !found {
			continue
		}

		want := expectedRegion(b, start.X(), start.Y())
		require.NoError(t, b.Reveal(start.X(), start.Y()))

		for c := range b.Cells() {
			_, in := want[c.Point()]
			assert.Equal(t, in, c.Revealed(), "cell %s", c.Point())
			if c.IsMine() {
				assert.False(t, c.Revealed())
			}
		}
	}
}

func expectedRegion(b *Board, x, y int) map[Point]struct{} {
	region := map[Point]struct{}{}
	zeros := map[Point]bool{{x, y}: true}
	queue := []Point{{x, y}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		region[p] = struct{}{}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				n := Point{p.X + dx, p.Y + dy}
				c, err := b.Cell(n.X, n.Y)
				if err != nil || c.IsMine() {
					continue
				}
				region[n] = struct{}{}
				if c.NeighborMineCount() == 0 && !zeros[n] {
					zeros[n] = true
					queue = append(queue, n)
				}
			}
		}
	}
	return region
}
