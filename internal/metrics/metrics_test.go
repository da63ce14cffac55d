package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := New(reg)

	m.SessionStarted(mines.Beginner)
	m.SessionStarted(mines.Beginner)
	m.SessionEvicted()
	m.MoveApplied("reveal")
	m.MoveApplied("reveal")
	m.MoveApplied("flag")
	m.GameFinished(true)
	m.GameFinished(false)
	m.GameFinished(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.started.WithLabelValues("beginner")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.live))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.moves.WithLabelValues("reveal")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.finished.WithLabelValues("won")))

	err := testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP minesweeper_games_finished_total Games that reached a terminal state, by outcome.
# TYPE minesweeper_games_finished_total counter
minesweeper_games_finished_total{outcome="lost"} 2
minesweeper_games_finished_total{outcome="won"} 1
`), "minesweeper_games_finished_total")
	require.NoError(t, err)
}

func TestCustomBoardsShareASeries(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := New(reg)

	m.SessionStarted(mines.GameParams{Width: 20, Height: 10, MineCount: 30})
	m.SessionStarted(mines.GameParams{Width: 50, Height: 40, MineCount: 300})
	m.SessionStarted(mines.Expert)

	assert.Equal(t, 2, testutil.CollectAndCount(m.started))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.started.WithLabelValues("custom")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.started.WithLabelValues("expert")))

	err := testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP minesweeper_games_started_total Games started, by board preset.
# TYPE minesweeper_games_started_total counter
minesweeper_games_started_total{board="custom"} 2
minesweeper_games_started_total{board="expert"} 1
`), "minesweeper_games_started_total")
	require.NoError(t, err)
}
