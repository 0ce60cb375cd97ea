package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "CALC_"

const (
	RateSourceStatic   = "static"
	RateSourcePostgres = "postgres"
)

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Logger   LoggerConfig   `koanf:"logger"`
	Rates    RatesConfig    `koanf:"rates"`
	Database DatabaseConfig `koanf:"database" validate:"-"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
}

type RatesConfig struct {
	Source      string        `koanf:"source" validate:"required,oneof=static postgres"`
	LoadTimeout time.Duration `koanf:"load_timeout" validate:"required"`
}

type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace" validate:"required"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                 "development",
		"server.port":                 "3000",
		"server.read_timeout":         "5s",
		"server.write_timeout":        "10s",
		"server.idle_timeout":         "60s",
		"server.request_timeout":      "5s",
		"logger.level":                "info",
		"logger.format":               "text",
		"rates.source":                RateSourceStatic,
		"rates.load_timeout":          "10s",
		"database.port":               5432,
		"database.ssl_mode":           "disable",
		"database.max_open_conns":     4,
		"database.max_idle_conns":     1,
		"database.conn_max_lifetime":  "1h",
		"database.conn_max_idle_time": "30m",
		"metrics.enabled":             true,
		"metrics.namespace":           "calculator",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	if err := mainConfig.Validate(); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// Validate checks every section. The database section is only checked
// when rates are loaded from Postgres.
func (c *Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.Rates.Source == RateSourcePostgres {
		if err := validate.Struct(&c.Database); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}

	return nil
}
