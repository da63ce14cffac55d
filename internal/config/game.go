package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

// GameParams reads the default board from BOARD_PRESET, or from BOARD_WIDTH,
// BOARD_HEIGHT and BOARD_MINES overriding the beginner board.
func GameParams() (mines.GameParams, error) {
	if name, ok := os.LookupEnv("BOARD_PRESET"); ok && name != "" {
		p, ok := mines.Preset(name)
		if !ok {
			return p, fmt.Errorf("unknown BOARD_PRESET %q", name)
		}
		return p, nil
	}

	p := mines.Beginner
	for key, dst := range map[string]*int{
		"BOARD_WIDTH":  &p.Width,
		"BOARD_HEIGHT": &p.Height,
		"BOARD_MINES":  &p.MineCount,
	} {
		n, ok, err := lookupInt(key)
		if err != nil {
			return p, err
		}
		if ok {
			*dst = n
		}
	}
	return p, p.Validate()
}

// Palette reads PALETTE_<HINT>=#rrggbb overrides on top of the default
// palette.
func Palette() (render.Palette, error) {
	p := render.DefaultPalette()
	for _, h := range render.Hints() {
		key := "PALETTE_" + strings.ToUpper(h.String())
		s, ok := os.LookupEnv(key)
		if !ok || s == "" {
			continue
		}
		c, err := render.ParseHexColor(s)
		if err != nil {
			return nil, fmt.Errorf("unable to parse %s: %w", key, err)
		}
		p = p.With(h, c)
	}
	return p, nil
}
