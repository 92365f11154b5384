package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	refreshesTotal  *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	sentimentScore  *prometheus.GaugeVec
	historyAppends  *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	instrumentsSeen *prometheus.GaugeVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		refreshesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sentipulse_refreshes_total",
				Help: "Total number of market data refresh cycles",
			},
			[]string{"result"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sentipulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		sentimentScore: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sentipulse_sentiment_score",
				Help: "Last computed sentiment score per index and kind",
			},
			[]string{"index", "kind"},
		),
		historyAppends: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sentipulse_history_appends_total",
				Help: "Total number of history rows appended",
			},
			[]string{"backend", "result"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sentipulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		instrumentsSeen: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sentipulse_instruments_fetched",
				Help: "Number of instruments returned by the last quote fetch",
			},
			[]string{"exchange"},
		),
	}
}

// RecordRefresh records the outcome of a refresh cycle.
func (r *Recorder) RecordRefresh(result string) {
	r.refreshesTotal.WithLabelValues(result).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordScore records a computed sentiment score. Kind is "iss" or "price_action".
func (r *Recorder) RecordScore(index, kind string, score float64) {
	r.sentimentScore.WithLabelValues(index, kind).Set(score)
}

// RecordHistoryAppend records a history append attempt.
func (r *Recorder) RecordHistoryAppend(backend, result string) {
	r.historyAppends.WithLabelValues(backend, result).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordInstrumentCount records how many instruments a fetch returned.
func (r *Recorder) RecordInstrumentCount(exchange string, n int) {
	r.instrumentsSeen.WithLabelValues(exchange).Set(float64(n))
}
