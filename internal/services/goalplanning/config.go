// internal/services/goalplanning/config.go
package goalplanning

import (
	"fmt"
	"time"

	"goal-planner/internal/common/config"
)

type Config struct {
	APIURL    string        `mapstructure:"api_url"`
	CSRFToken string        `mapstructure:"csrf_token"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		APIURL:  config.DefaultAPIURL,
		Timeout: config.DefaultPlannerTimeout,
	}
}

// FromAppConfig builds the client config from the loaded application config.
func FromAppConfig(pc config.PlannerConfig) *Config {
	cfg := &Config{
		APIURL:    pc.APIURL,
		CSRFToken: pc.CSRFToken,
		Timeout:   pc.Timeout,
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = config.DefaultPlannerTimeout
	}
	return cfg
}

// Validate checks the settings that must hold at construction. An empty
// APIURL is allowed and reported on the first submission instead.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
