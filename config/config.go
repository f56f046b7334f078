package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type AdvisorConfig struct {
	Enabled bool
	ApiKey  string
	Model   string
	Timeout time.Duration
}

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	Verbose               bool
	Advisor               AdvisorConfig
}

// Load reads the configuration from path, or from config.yaml in the working
// directory when path is empty. A missing ./config.yaml is not an error,
// defaults and SCHEDULER_* environment variables still apply.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 4)
	v.SetDefault("log.verbose", false)
	v.SetDefault("advisor.enabled", false)
	v.SetDefault("advisor.model", "")
	v.SetDefault("advisor.api_key", "")
	v.SetDefault("advisor.timeout", "10s")

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		Verbose:               v.GetBool("log.verbose"),
		Advisor: AdvisorConfig{
			Enabled: v.GetBool("advisor.enabled"),
			ApiKey:  v.GetString("advisor.api_key"),
			Model:   v.GetString("advisor.model"),
			Timeout: v.GetDuration("advisor.timeout"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *SchedulerConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.RoundRobinTimeQuantum < 1 {
		return fmt.Errorf("scheduler.round_robin.time_quantum must be greater than 0")
	}
	if c.Advisor.Timeout <= 0 {
		return fmt.Errorf("advisor.timeout must be greater than 0")
	}
	return nil
}
