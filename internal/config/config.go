package config

import (
	"time"
)

type (
	Config struct {
		App                App    `json:"app"`
		SecretKey          string `json:"secret_key"`
		NewRelicLicenseKey string `json:"new_relic_license_key"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port" validate:"required"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name" validate:"required"`
		LogOption       string        `json:"log_option"`
		LogLevel        string        `json:"log_level"`
	}
)
