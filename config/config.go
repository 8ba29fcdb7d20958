package config

import (
	"github.com/wiretap-io/wiretap/internal/inspect"
	"github.com/wiretap-io/wiretap/util/conf"
)

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// Inspect is the request inspector configuration
	Inspect inspect.Config `conf:",squash"`
}

var DefaultConfig = conf.DefaultConfig{
	"log_level":  "info",
	"log_format": "production",
}
