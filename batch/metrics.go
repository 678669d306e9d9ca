package batch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	filesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "segcolor_files_processed_total",
		Help: "Instance files processed, by engine",
	}, []string{"engine"})

	filesFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "segcolor_files_failed_total",
		Help: "Instance files whose run returned an error, by engine",
	}, []string{"engine"})

	colorReductions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "segcolor_color_reductions_total",
		Help: "Colours removed by the engines",
	}, []string{"engine"})

	stuckRestarts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "segcolor_stuck_restarts_total",
		Help: "Restarts after a stuck or stalled attempt",
	}, []string{"engine"})

	improvementsSaved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "segcolor_improvements_saved_total",
		Help: "Files whose final colouring replaced the stored solution",
	}, []string{"engine"})

	fileDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "segcolor_file_duration_seconds",
		Help:    "Wall time spent on one instance file",
		Buckets: []float64{0.01, 0.1, 1, 10, 60, 600, 3600},
	}, []string{"engine"})

	bestColors = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "segcolor_best_colors",
		Help: "Colour count of the best colouring known for an instance",
	}, []string{"instance"})
)

// record feeds one report into the collectors.
func record(rep Report) {
	filesProcessed.WithLabelValues(rep.Engine).Inc()
	fileDuration.WithLabelValues(rep.Engine).Observe(rep.Duration.Seconds())
	if rep.Err != nil {
		filesFailed.WithLabelValues(rep.Engine).Inc()
		return
	}
	if rep.From > rep.To {
		colorReductions.WithLabelValues(rep.Engine).Add(float64(rep.From - rep.To))
	}
	if rep.Restarts > 0 {
		stuckRestarts.WithLabelValues(rep.Engine).Add(float64(rep.Restarts))
	}
	if rep.Saved {
		improvementsSaved.WithLabelValues(rep.Engine).Inc()
	}
	if rep.Instance != "" && rep.Best > 0 {
		bestColors.WithLabelValues(rep.Instance).Set(float64(rep.Best))
	}
}
