package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Metrics counts game sessions. It satisfies session.Observer.
type Metrics struct {
	started  *prometheus.CounterVec
	cells    prometheus.Histogram
	finished *prometheus.CounterVec
	moves    *prometheus.CounterVec
	live     prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		started: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "minesweeper",
			Name:      "games_started_total",
			Help:      "Games started, by board preset.",
		}, []string{"board"}),
		cells: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "minesweeper",
			Name:      "board_cells",
			Help:      "Cell count of started boards.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
		}),
		finished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "minesweeper",
			Name:      "games_finished_total",
			Help:      "Games that reached a terminal state, by outcome.",
		}, []string{"outcome"}),
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "minesweeper",
			Name:      "moves_total",
			Help:      "Moves applied to boards, by kind.",
		}, []string{"move"}),
		live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "minesweeper",
			Name:      "sessions_live",
			Help:      "Sessions currently held in memory.",
		}),
	}
	reg.MustRegister(m.started, m.cells, m.finished, m.moves, m.live)
	return m
}

func (m *Metrics) SessionStarted(p mines.GameParams) {
	m.started.WithLabelValues(p.PresetName()).Inc()
	m.cells.Observe(float64(p.CellCount()))
	m.live.Inc()
}

func (m *Metrics) SessionEvicted() {
	m.live.Dec()
}

func (m *Metrics) MoveApplied(move string) {
	m.moves.WithLabelValues(move).Inc()
}

func (m *Metrics) GameFinished(solved bool) {
	outcome := "lost"
	if solved {
		outcome = "won"
	}
	m.finished.WithLabelValues(outcome).Inc()
}
