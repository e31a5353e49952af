package middleware

import (
	"bitbucket.org/Amartha/go-payment-instruction/internal/config"
)

type AppMiddleware struct {
	conf config.Config
}

func NewMiddleware(conf config.Config) AppMiddleware {
	return AppMiddleware{
		conf: conf,
	}
}
