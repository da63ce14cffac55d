package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/tui"
)

var (
	preset    string
	width     int
	height    int
	mineCount int
	seed      uint64
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Play Minesweeper in the terminal",
		Long: `Play Minesweeper in the terminal.

Left click or space reveals, right click or f flags, middle click or c
chords. Arrow keys move the cursor, r starts a new game, q quits.

Examples:
  sweep --preset expert
  sweep -W 20 -H 10 -m 30
  sweep --seed 42`,
		SilenceUsage: true,
		RunE:         runSweep,
	}

	cmd.Flags().StringVarP(&preset, "preset", "p", "", "Board preset: beginner, intermediate or expert")
	cmd.Flags().IntVarP(&width, "width", "W", 0, "Board width in cells")
	cmd.Flags().IntVarP(&height, "height", "H", 0, "Board height in cells")
	cmd.Flags().IntVarP(&mineCount, "mines", "m", 0, "Number of mines")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible mine layout")
	cmd.MarkFlagsMutuallyExclusive("preset", "width")
	cmd.MarkFlagsMutuallyExclusive("preset", "height")
	cmd.MarkFlagsMutuallyExclusive("preset", "mines")

	return cmd
}

// resolveParams layers the flags over the board configured in the
// environment.
func resolveParams(cmd *cobra.Command) (mines.GameParams, error) {
	if preset != "" {
		p, ok := mines.Preset(preset)
		if !ok {
			return p, fmt.Errorf("%w: unknown preset %q", mines.ErrInvalidConfiguration, preset)
		}
		return p, nil
	}

	p, err := config.GameParams()
	if err != nil {
		return p, err
	}
	if cmd.Flags().Changed("width") {
		p.Width = width
	}
	if cmd.Flags().Changed("height") {
		p.Height = height
	}
	if cmd.Flags().Changed("mines") {
		p.MineCount = mineCount
	}
	return p, p.Validate()
}

// newLogger writes to LOG_FILE when set; the terminal belongs to the game.
func newLogger() (*slog.Logger, func() error, error) {
	path := config.LogFile()
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open log file: %w", err)
	}
	level := slog.LevelInfo
	if config.Development() {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(f, &tint.Options{Level: level, NoColor: true}))
	return logger, f.Close, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	params, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	palette, err := config.Palette()
	if err != nil {
		return err
	}

	var rnd *rand.Rand
	if cmd.Flags().Changed("seed") {
		rnd = mines.NewSeededRand(seed)
	} else {
		rnd = mines.NewRand()
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	mines.Log = logger

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("unable to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("unable to init screen: %w", err)
	}
	defer screen.Fini()

	game, err := tui.New(screen, logger, params, rnd, palette)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()
	return game.Run(ctx)
}

