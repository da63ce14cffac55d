package tui

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

// Each grid cell takes cellWidth x cellHeight terminal characters; the grid
// starts below the status line.
const (
	cellWidth  = 3
	cellHeight = 1
	gridTop    = 1
)

// Game drives a board from terminal mouse and key events.
type Game struct {
	screen  tcell.Screen
	logger  *slog.Logger
	params  mines.GameParams
	rnd     *rand.Rand
	palette render.Palette

	board   *mines.Board
	cursor  mines.Point
	buttons tcell.ButtonMask
}

func New(
	screen tcell.Screen,
	logger *slog.Logger,
	params mines.GameParams,
	rnd *rand.Rand,
	palette render.Palette,
) (*Game, error) {
	g := &Game{
		screen:  screen,
		logger:  logger,
		params:  params,
		rnd:     rnd,
		palette: palette,
	}
	if err := g.Restart(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Board() *mines.Board {
	return g.board
}

// Restart replaces the board with a fresh one of the same size.
func (g *Game) Restart() error {
	board, err := mines.NewBoard(g.params, g.rnd)
	if err != nil {
		return err
	}
	g.board = board
	g.cursor = mines.Point{}
	g.logger.Info("new game", slog.String("params", g.params.Seed()))
	return nil
}

// Run draws the board and handles events until the player quits or ctx is
// done. The caller owns the screen.
func (g *Game) Run(ctx context.Context) error {
	g.screen.EnableMouse()
	defer g.screen.DisableMouse()
	g.Draw()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go g.screen.ChannelEvents(events, quit)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if g.HandleEvent(ev) {
				return nil
			}
			g.Draw()
		}
	}
}

// HandleEvent applies ev to the game and reports whether the player asked to
// quit.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.key(ev)
	case *tcell.EventMouse:
		g.mouse(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return false
}

func (g *Game) key(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		g.moveCursor(0, -1)
	case tcell.KeyDown:
		g.moveCursor(0, 1)
	case tcell.KeyLeft:
		g.moveCursor(-1, 0)
	case tcell.KeyRight:
		g.moveCursor(1, 0)
	case tcell.KeyEnter:
		g.apply(g.board.Reveal, g.cursor)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'r':
			if err := g.Restart(); err != nil {
				g.logger.Error("unable to restart", slog.Any("error", err))
			}
		case ' ':
			g.apply(g.board.Reveal, g.cursor)
		case 'f':
			g.apply(g.board.ToggleFlag, g.cursor)
		case 'c':
			g.apply(g.board.Chord, g.cursor)
		}
	}
	return false
}

func (g *Game) moveCursor(dx, dy int) {
	p := mines.Point{X: g.cursor.X + dx, Y: g.cursor.Y + dy}
	if g.board.InBounds(p.X, p.Y) {
		g.cursor = p
	}
}

// mouse acts on buttons going down only, so a held button fires once.
func (g *Game) mouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons() &^ g.buttons
	g.buttons = ev.Buttons()
	if pressed == tcell.ButtonNone {
		return
	}

	mx, my := ev.Position()
	p, err := g.board.CellAtPosition(mx, my-gridTop, cellWidth, cellHeight)
	if err != nil {
		return
	}
	g.cursor = p

	switch {
	case pressed&tcell.ButtonPrimary != 0:
		g.apply(g.board.Reveal, p)
	case pressed&tcell.ButtonSecondary != 0:
		g.apply(g.board.ToggleFlag, p)
	case pressed&tcell.ButtonMiddle != 0:
		g.apply(g.board.Chord, p)
	}
}

func (g *Game) apply(move func(x, y int) error, p mines.Point) {
	if err := move(p.X, p.Y); err != nil {
		g.logger.Warn("move rejected", slog.String("at", p.String()), slog.Any("error", err))
		return
	}
	if g.board.GameOver() {
		g.logger.Info("game finished", slog.Bool("solved", g.board.Solved()))
	}
}

func (g *Game) Draw() {
	g.screen.Clear()
	v := g.board.View()

	g.drawText(0, 0, tcell.StyleDefault, g.status(v))
	for y := range v.Height {
		for x := range v.Width {
			g.drawCell(x, y, v.At(x, y))
		}
	}
	g.screen.Show()
}

func (g *Game) status(v mines.View) string {
	switch {
	case v.Solved:
		return "You win! r: new game, q: quit"
	case v.GameOver:
		return "Game over. r: new game, q: quit"
	default:
		return fmt.Sprintf("Mines: %d", v.MinesRemaining)
	}
}

func (g *Game) drawCell(x, y int, s mines.CellStatus) {
	layers := render.Layers(s)
	style := tcell.StyleDefault.Background(g.color(layers[0]))
	for _, h := range layers[1:] {
		switch h {
		case render.Mine, render.Text, render.Flagged:
			style = style.Foreground(g.color(h))
		}
	}

	left, right := ' ', ' '
	edge := style
	if g.cursor == (mines.Point{X: x, Y: y}) && !g.board.GameOver() {
		left, right = '[', ']'
		edge = style.Foreground(g.color(render.Border))
	}

	sx, sy := x*cellWidth, gridTop+y*cellHeight
	glyph := []rune(s.String())[0]
	if s == mines.Unknown {
		glyph = ' '
	}
	g.screen.SetContent(sx, sy, left, nil, edge)
	g.screen.SetContent(sx+1, sy, glyph, nil, style)
	g.screen.SetContent(sx+2, sy, right, nil, edge)
}

func (g *Game) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (g *Game) color(h render.Hint) tcell.Color {
	return tcellColor(g.palette.Color(h))
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
