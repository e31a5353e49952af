package setup

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/exp/slices"

	"bitbucket.org/Amartha/go-payment-instruction/internal/common/graceful"
	cMetrics "bitbucket.org/Amartha/go-payment-instruction/internal/common/metrics"
	"bitbucket.org/Amartha/go-payment-instruction/internal/common/validation"
	"bitbucket.org/Amartha/go-payment-instruction/internal/config"
	"bitbucket.org/Amartha/go-payment-instruction/internal/services"

	confLoader "bitbucket.org/Amartha/go-config-loader-library"
	xlog "bitbucket.org/Amartha/go-x/log"

	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type Setup struct {
	Config   config.Config
	NewRelic *newrelic.Application
	Service  *services.Services
	Metrics  cMetrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	var cfg config.Config
	l := confLoader.New(
		"GO_PAYMENT_INSTRUCTION",
		"",
		os.Getenv(""),
		confLoader.WithConfigFileName("config"),
		confLoader.WithConfigFileSearchPaths("/config", "."),
	)
	err = l.Load(&cfg)
	if err != nil {
		return
	}

	if err = validation.ValidateStruct(cfg); err != nil {
		err = fmt.Errorf("invalid configuration: %w", err)
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	logLevel := xlog.DebugLogLevel()
	excludedDebugLevelOnEnvs := []config.Environment{
		config.DEV_ENV,
		config.UAT_ENV,
		config.PROD_ENV,
	}

	if slices.Contains(excludedDebugLevelOnEnvs, config.StringToEnvironment(cfg.App.Env)) {
		logLevel = xlog.InfoLogLevel()
	}

	xlog.Init(cfg.App.Name,
		xlog.WithLogToOption(cfg.App.LogOption),
		xlog.WithLogEnvOption(cfg.App.Env),
		xlog.WithCaller(true),
		xlog.AddCallerSkip(2),
		logLevel)

	stopper = append(stopper, func(ctx context.Context) error {
		xlog.Sync()
		return nil
	})

	newRelic := setupNR(ctx, cfg)

	// metrics
	mtc := cMetrics.New(nil)

	// register service
	srv := services.New(cfg, mtc, time.Now)

	setup.NewRelic = newRelic
	setup.Service = srv
	setup.Metrics = mtc

	return setup, stopper, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if env := config.StringToEnvironment(cfg.App.Env); env == config.PROD_ENV {
		logger, ok := xlog.Loggers.Load(xlog.DefaultLogger)
		if !ok {
			return nil
		}
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.App.Name),
			newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
			func(config *newrelic.Config) {
				config.Logger = nrzap.Transform(logger)
			},
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			xlog.Errorf(ctx, "setupNR.NewApplication - %v", err)
		}
		if err = app.WaitForConnection(15 * time.Second); nil != err {
			xlog.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
		}
		return app
	}
	return nil
}
