// internal/common/config/config.go
package config

import "time"

const (
	DefaultAPIURL         = "http://localhost:8000/analyze"
	DefaultPlannerTimeout = 180 * time.Second
	DefaultMetricsAddress = ":9090"
)

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Planner PlannerConfig `mapstructure:"planner"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// PlannerConfig points the submission client at the goal-planning service.
// An empty APIURL is accepted here and reported when a submission is made.
type PlannerConfig struct {
	APIURL    string        `mapstructure:"api_url" validate:"omitempty,url"`
	CSRFToken string        `mapstructure:"csrf_token"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
	Output string `mapstructure:"output"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address" validate:"required_if=Enabled true"`
	Path    string `mapstructure:"path"`
}
