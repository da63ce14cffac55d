package render

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Hint names what a drawn element means; the renderer picks its color.
type Hint uint8

const (
	Default Hint = iota
	Revealed
	Flagged
	Mine
	Text
	Border
)

var hintNames = [...]string{
	Default:  "default",
	Revealed: "revealed",
	Flagged:  "flagged",
	Mine:     "mine",
	Text:     "text",
	Border:   "border",
}

func Hints() []Hint {
	return []Hint{Default, Revealed, Flagged, Mine, Text, Border}
}

func (h Hint) String() string {
	if int(h) < len(hintNames) {
		return hintNames[h]
	}
	return fmt.Sprintf("Hint(%d)", h)
}

func ParseHint(s string) (Hint, bool) {
	s = strings.ToLower(s)
	for _, h := range Hints() {
		if hintNames[h] == s {
			return h, true
		}
	}
	return 0, false
}

type Palette map[Hint]color.RGBA

func DefaultPalette() Palette {
	return Palette{
		Default:  {R: 64, G: 64, B: 64, A: 255},
		Revealed: {R: 0, G: 0, B: 0, A: 255},
		Flagged:  {R: 255, G: 0, B: 0, A: 255},
		Mine:     {R: 0, G: 255, B: 0, A: 255},
		Text:     {R: 0, G: 0, B: 255, A: 255},
		Border:   {R: 100, G: 100, B: 100, A: 255},
	}
}

// Color falls back to the default palette for hints p does not set.
func (p Palette) Color(h Hint) color.RGBA {
	if c, ok := p[h]; ok {
		return c
	}
	return DefaultPalette()[h]
}

// With returns a copy of p with h set to c.
func (p Palette) With(h Hint, c color.RGBA) Palette {
	q := make(Palette, len(p)+1)
	for k, v := range p {
		q[k] = v
	}
	q[h] = c
	return q
}

// [Palette] implements [json.Marshaler]
func (p Palette) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(hintNames))
	for _, h := range Hints() {
		m[h.String()] = HexColor(p.Color(h))
	}
	return json.Marshal(m)
}

func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return c, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	n, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
	if n != 3 || err != nil {
		return c, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// Layers lists the elements to draw for a cell, bottom first: background,
// mine or number, flag, border.
func Layers(s mines.CellStatus) []Hint {
	layers := make([]Hint, 0, 4)
	switch {
	case s == mines.Unknown || s.IsFlagged():
		layers = append(layers, Default)
	default:
		layers = append(layers, Revealed)
	}
	if s.IsMine() {
		layers = append(layers, Mine)
	}
	if n, ok := s.Count(); ok && n > 0 {
		layers = append(layers, Text)
	}
	if s.IsFlagged() {
		layers = append(layers, Flagged)
	}
	return append(layers, Border)
}
