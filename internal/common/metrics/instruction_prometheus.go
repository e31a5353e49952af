package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type InstructionPrometheusMetrics struct {
	processedCounter *prometheus.CounterVec
	processingHist   *prometheus.HistogramVec
}

func newInstructionPrometheusMetrics(reg prometheus.Registerer) *InstructionPrometheusMetrics {
	processedCounter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_instruction_processed_total",
		Help: "count of processed payment instructions by outcome",
	}, []string{"status_code", "type"})

	processingHist := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "payment_instruction_processing_seconds",
		Help:    "processing time of a single payment instruction",
		Buckets: []float64{0, 0.0001, 0.001, 0.010, 0.100, 0.200, 0.500, 1, 2, 5},
	}, []string{"status_code"})

	reg.MustRegister(processedCounter, processingHist)

	return &InstructionPrometheusMetrics{
		processedCounter: processedCounter,
		processingHist:   processingHist,
	}
}

// RecordProcessed records one fully processed instruction. instructionType is
// empty for instructions rejected before the grammar identified a kind.
func (m *InstructionPrometheusMetrics) RecordProcessed(statusCode, instructionType string, elapsed time.Duration) {
	m.processedCounter.WithLabelValues(statusCode, instructionType).Inc()
	m.processingHist.WithLabelValues(statusCode).Observe(elapsed.Seconds())
}
