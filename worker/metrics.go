package worker

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ticks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "loop",
		Name:      "ticks_total",
		Help:      "Tick deadlines handled by the game loop.",
	})
	updates = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "loop",
		Name:      "updates_total",
		Help:      "Snake updates performed.",
	})
	skippedFrames = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "loop",
		Name:      "skipped_frames_total",
		Help:      "Frames not rendered because the loop was behind schedule.",
	})
	inputEvents = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "input",
		Name:      "events_total",
		Help:      "Key events drained from the input queue.",
	})
	tickLateness = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "snake",
		Subsystem: "loop",
		Name:      "tick_lateness_seconds",
		Help:      "How far past its deadline a tick started.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	})
	calls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "loop",
			Name:      "calls",
			Help:      "Time spent updating and rendering.",
		},
		[]string{"method"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(calls.WithLabelValues(method))
	return t.ObserveDuration
}

func init() {
	prometheus.MustRegister(ticks, updates, skippedFrames, inputEvents, tickLateness, calls)
}
