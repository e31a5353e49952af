package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"bitbucket.org/Amartha/go-payment-instruction/internal/common/graceful"
	commonhttp "bitbucket.org/Amartha/go-payment-instruction/internal/common/http"
	"bitbucket.org/Amartha/go-payment-instruction/internal/common/http/middleware"
	"bitbucket.org/Amartha/go-payment-instruction/internal/common/metrics"
	"bitbucket.org/Amartha/go-payment-instruction/internal/config"
	"bitbucket.org/Amartha/go-payment-instruction/internal/deliveries/http/health"
	"bitbucket.org/Amartha/go-payment-instruction/internal/services"
	xlog "bitbucket.org/Amartha/go-x/log"

	v1paymentinstruction "bitbucket.org/Amartha/go-payment-instruction/internal/deliveries/http/v1/paymentinstruction"

	"bitbucket.org/Amartha/go-x/log/ctxdata"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/prometheus/client_golang/prometheus"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			xlog.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			xlog.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	nr *newrelic.Application,
	instructionService services.InstructionService,
	mtc metrics.Metrics,
) *svc {
	app := echo.New()

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-correlation-id", ctxdata.GetCorrelationId(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	registerer := prometheus.DefaultRegisterer
	if mtc != nil {
		registerer = mtc.PrometheusRegisterer()
	}
	app.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metrics.FlattenName(conf.App.Name),
		Registerer: registerer,
	}))
	app.GET("/metrics", echoprometheus.NewHandler())

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// v1Group
	v1Group := apiGroup.Group("/v1")
	// v1Group middleware
	v1Group.Use(m.InternalAuth)
	// v1Group register api
	v1paymentinstruction.New(v1Group, instructionService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
