package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics interface {
	PrometheusRegisterer() prometheus.Registerer
	GetInstructionPrometheus() *InstructionPrometheusMetrics
}

type metrics struct {
	reg                prometheus.Registerer
	instructionMetrics *InstructionPrometheusMetrics
}

// New builds the metrics aggregate on the given registerer. Pass nil to use
// the process-wide default registerer; tests pass their own registry so
// repeated registration does not collide.
func New(reg prometheus.Registerer) Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &metrics{
		reg:                reg,
		instructionMetrics: newInstructionPrometheusMetrics(reg),
	}
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) GetInstructionPrometheus() *InstructionPrometheusMetrics {
	return m.instructionMetrics
}
