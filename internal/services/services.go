package services

import (
	"time"

	"bitbucket.org/Amartha/go-payment-instruction/internal/common/metrics"
	"bitbucket.org/Amartha/go-payment-instruction/internal/config"
)

type service struct {
	srv *Services
}

type Services struct {
	conf    config.Config
	metrics metrics.Metrics

	// now is the single time source for the future/immediate scheduling
	// decision; it is read once per invocation.
	now func() time.Time

	common service

	Instruction *instruction
}

func New(conf config.Config, mtc metrics.Metrics, now func() time.Time) *Services {
	if now == nil {
		now = time.Now
	}
	srv := &Services{
		conf:    conf,
		metrics: mtc,
		now:     now,
	}
	srv.common.srv = srv
	srv.Instruction = (*instruction)(&srv.common)

	return srv
}
