package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the simulator

var (
	// Play metrics
	PlaysTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridiron_plays_total",
			Help: "Total number of simulated plays",
		},
		[]string{"type"},
	)

	PlayClockSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridiron_play_game_clock_seconds",
			Help:    "Game clock seconds consumed per play",
			Buckets: []float64{0, 2, 5, 10, 15, 20, 25, 30},
		},
		[]string{"type"},
	)

	// Kickoff metrics
	KickoffOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridiron_kickoff_outcomes_total",
			Help: "Total number of kickoffs by outcome",
		},
		[]string{"outcome"},
	)

	ReturnIterations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gridiron_kickoff_return_iterations",
			Help:    "Defender encounters and free-running stretches per kickoff return",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 50},
		},
	)

	// Scoring metrics
	PointsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridiron_points_total",
			Help: "Total number of points scored",
		},
		[]string{"play"},
	)

	// Game metrics
	GamesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridiron_games_total",
			Help: "Total number of finished games",
		},
		[]string{"result"},
	)

	QuartersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridiron_quarters_total",
			Help: "Total number of periods started",
		},
		[]string{"quarter"},
	)

	SimulationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gridiron_simulation_duration_seconds",
			Help:    "Wall-clock duration of a full game simulation in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	LastGameFinished = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gridiron_last_game_finished_timestamp",
			Help: "Timestamp of the last finished game",
		},
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridiron_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)

// RecordPlay records a simulated play and the clock it consumed
func RecordPlay(playType string, clockSeconds int) {
	PlaysTotal.WithLabelValues(playType).Inc()
	PlayClockSeconds.WithLabelValues(playType).Observe(float64(clockSeconds))
}

// RecordKickoff records a kickoff outcome
func RecordKickoff(outcome string) {
	KickoffOutcomesTotal.WithLabelValues(outcome).Inc()
}

// RecordReturn records the number of loop iterations of a kickoff return
func RecordReturn(iterations int) {
	ReturnIterations.Observe(float64(iterations))
}

// RecordPoints records points scored on a play
func RecordPoints(play string, points int) {
	PointsTotal.WithLabelValues(play).Add(float64(points))
}

// RecordQuarter records the start of a period
func RecordQuarter(quarter string) {
	QuartersTotal.WithLabelValues(quarter).Inc()
}

// RecordGame records a finished game
func RecordGame(result string, duration float64) {
	GamesTotal.WithLabelValues(result).Inc()
	SimulationDuration.Observe(duration)
	LastGameFinished.SetToCurrentTime()
}

// RecordError records an error
func RecordError(component, errorType string) {
	ErrorsTotal.WithLabelValues(component, errorType).Inc()
}
