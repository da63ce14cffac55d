package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
}

var (
	Beginner     = GameParams{Width: 9, Height: 9, MineCount: 10}
	Intermediate = GameParams{Width: 16, Height: 16, MineCount: 40}
	Expert       = GameParams{Width: 30, Height: 16, MineCount: 99}
)

// MaxCells bounds Width*Height so a board always fits in memory.
const MaxCells = 1 << 20

// Preset looks up a named difficulty (case-insensitive).
func Preset(name string) (GameParams, bool) {
	switch strings.ToLower(name) {
	case "beginner":
		return Beginner, true
	case "intermediate":
		return Intermediate, true
	case "expert":
		return Expert, true
	}
	return GameParams{}, false
}

// PresetName is the inverse of [Preset]; boards matching no preset are
// "custom".
func (p GameParams) PresetName() string {
	switch p {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Expert:
		return "expert"
	}
	return "custom"
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) CellCount() int {
	return p.Width * p.Height
}

func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf(
			"%w: dimensions must be positive, got %dx%d",
			ErrInvalidConfiguration, p.Width, p.Height,
		)
	}
	if p.Width > MaxCells/p.Height {
		return fmt.Errorf(
			"%w: board %dx%d exceeds %d cells",
			ErrInvalidConfiguration, p.Width, p.Height, MaxCells,
		)
	}
	if p.MineCount < 1 || p.MineCount > p.CellCount()-1 {
		return fmt.Errorf(
			"%w: mine count must be in [1, %d], got %d",
			ErrInvalidConfiguration, p.CellCount()-1, p.MineCount,
		)
	}
	return nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (seed = "%s", n = %d): %w`,
			seed, n, ErrInvalidConfiguration,
		)
	}
	return p, nil
}
