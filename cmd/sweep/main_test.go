package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func parse(t *testing.T, args ...string) (mines.GameParams, error) {
	t.Helper()
	preset, width, height, mineCount, seed = "", 0, 0, 0, 0
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags(args))
	return resolveParams(cmd)
}

func TestResolveParams(t *testing.T) {
	t.Setenv("BOARD_PRESET", "")

	p, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, mines.Beginner, p)

	p, err = parse(t, "--preset", "Expert")
	require.NoError(t, err)
	assert.Equal(t, mines.Expert, p)

	p, err = parse(t, "-W", "20", "-m", "30")
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 20, Height: 9, MineCount: 30}, p)

	_, err = parse(t, "-W", "2", "-H", "2", "-m", "4")
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)

	_, err = parse(t, "--preset", "huge")
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)
}

func TestResolveParamsFromEnv(t *testing.T) {
	t.Setenv("BOARD_PRESET", "intermediate")

	p, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, mines.Intermediate, p)

	p, err = parse(t, "-m", "50")
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 16, Height: 16, MineCount: 50}, p)
}
