package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRoundTrip(t *testing.T) {
	for _, p := range []GameParams{Beginner, Intermediate, Expert} {
		got, err := ParseSeed(p.Seed())
		require.NoError(t, err)
		assert.Equal(t, p, *got)
	}

	_, err := ParseSeed("9:9")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = ParseSeed("a:b:c")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestPreset(t *testing.T) {
	p, ok := Preset("Expert")
	assert.True(t, ok)
	assert.Equal(t, Expert, p)

	_, ok = Preset("nightmare")
	assert.False(t, ok)
}

func TestPresetsAreValid(t *testing.T) {
	for _, p := range []GameParams{Beginner, Intermediate, Expert} {
		assert.NoError(t, p.Validate(), p.Seed())
	}
}

func TestPresetName(t *testing.T) {
	for _, name := range []string{"beginner", "intermediate", "expert"} {
		p, ok := Preset(name)
		require.True(t, ok)
		assert.Equal(t, name, p.PresetName())
	}
	assert.Equal(t, "custom", GameParams{Width: 9, Height: 9, MineCount: 11}.PresetName())
}

func TestValidateCellLimit(t *testing.T) {
	assert.NoError(t, GameParams{Width: 1024, Height: 1024, MineCount: 1}.Validate())
	assert.NoError(t, GameParams{Width: MaxCells, Height: 1, MineCount: 1}.Validate())
	assert.ErrorIs(t, GameParams{Width: 1025, Height: 1024, MineCount: 1}.Validate(), ErrInvalidConfiguration)
	assert.ErrorIs(t, GameParams{Width: 1 << 62, Height: 1 << 62, MineCount: 1}.Validate(), ErrInvalidConfiguration)
}
