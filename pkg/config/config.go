package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
)

type Config struct {
	App    AppConfig
	Gemini GeminiConfig
	CORS   CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate collects every configuration problem instead of stopping at the
// first one, so a broken deploy surfaces all of them in a single log line.
func (c *Config) Validate() error {
	var errs error

	if !c.App.IsDev() && !c.App.IsProd() {
		errs = multierr.Append(errs, fmt.Errorf("unknown app env %q", c.App.Env))
	}
	if port, err := strconv.Atoi(c.App.Port); err != nil || port < 1 || port > 65535 {
		errs = multierr.Append(errs, fmt.Errorf("invalid app port %q", c.App.Port))
	}
	if c.Gemini.Timeout <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("gemini timeout must be positive, got %s", c.Gemini.Timeout))
	}
	if len(c.CORS.Origins) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("at least one CORS origin required"))
	}

	return errs
}

type AppConfig struct {
	Env          string `envconfig:"DRILLTRACK_APP_ENV" required:"true"`
	Port         string `envconfig:"DRILLTRACK_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"DRILLTRACK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DRILLTRACK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// GeminiConfig configures the outbound text-generation call. An empty API
// key is allowed; the insight service then answers with its fallback text.
type GeminiConfig struct {
	APIKey  string        `envconfig:"DRILLTRACK_GEMINI_API_KEY"`
	Model   string        `envconfig:"DRILLTRACK_GEMINI_MODEL" default:"gemini-3-flash-preview"`
	BaseURL string        `envconfig:"DRILLTRACK_GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	Timeout time.Duration `envconfig:"DRILLTRACK_GEMINI_TIMEOUT" default:"30s"`
}

type CORSConfig struct {
	Origins []string `envconfig:"DRILLTRACK_CORS_ORIGINS" default:"http://localhost:3000"`
}
