// Package config loads and validates the daemon/CLI configuration from YAML
// with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level application configuration.
type Config struct {
	Version   string                    `mapstructure:"version"`
	Providers map[string]ProviderConfig `mapstructure:"providers"`
	Models    map[string]ModelConfig    `mapstructure:"models"`
	Analysis  AnalysisConfig            `mapstructure:"analysis"`
	Logging   LoggingConfig             `mapstructure:"logging"`
	Server    ServerConfig              `mapstructure:"server"`
}

// ProviderConfig describes one upstream LLM endpoint.
type ProviderConfig struct {
	Type    string        `mapstructure:"type"`     // anthropic, openai, openrouter, custom
	BaseURL string        `mapstructure:"base_url"` // API base URL
	APIKey  string        `mapstructure:"api_key"`  // falls back to the provider's env var
	Timeout time.Duration `mapstructure:"timeout"`  // request timeout
}

// ModelConfig binds a logical model name to a provider entry.
type ModelConfig struct {
	Provider    string  `mapstructure:"provider"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Default     bool    `mapstructure:"default"`
}

// AnalysisConfig holds the conversation-driver runtime parameters.
type AnalysisConfig struct {
	MaxToolRounds int           `mapstructure:"max_tool_rounds"`
	MaxTokens     int           `mapstructure:"max_tokens"`
	Temperature   float64       `mapstructure:"temperature"`
	RetryAttempts int           `mapstructure:"retry_attempts"`
	RetryBackoff  time.Duration `mapstructure:"retry_backoff"`
}

// LoggingConfig controls logger behaviour.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // console or json
}

// ServerConfig describes daemon settings.
type ServerConfig struct {
	Addr           string `mapstructure:"addr"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
	Transport      string `mapstructure:"transport"` // connect or json
}

// Load reads configuration from path, or searches ./config.yaml and
// configs/config.yaml (falling back to config.example) when path is empty.
// Environment variables override file values (prefix SITEPROOF_, dots
// replaced with underscores). A provider left without an API key, in file or
// environment, is a configuration error reported before any network call.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SITEPROOF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, path); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.fillKeysFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		return nil
	}

	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("configs")
	for _, name := range []string{"config", "config.example"} {
		v.SetConfigName(name)
		err := v.ReadInConfig()
		if err == nil {
			return nil
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return errors.New("read config: no config.yaml or config.example.yaml found")
}

// fillKeysFromEnv resolves missing provider credentials from the
// conventional environment variable for each provider type.
func (c *Config) fillKeysFromEnv() {
	for name, p := range c.Providers {
		if p.APIKey == "" {
			p.APIKey = os.Getenv(apiKeyEnv(p.Type))
			c.Providers[name] = p
		}
	}
}

func apiKeyEnv(providerType string) string {
	if strings.EqualFold(strings.TrimSpace(providerType), "anthropic") {
		return "ANTHROPIC_API_KEY"
	}
	return "OPENAI_API_KEY"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("analysis.max_tool_rounds", 10)
	v.SetDefault("analysis.max_tokens", 4000)
	v.SetDefault("analysis.temperature", 0.2)
	v.SetDefault("analysis.retry_attempts", 0)
	v.SetDefault("analysis.retry_backoff", 500*time.Millisecond)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.metrics_enabled", true)
	v.SetDefault("server.transport", "connect")
}

// Validate checks the configuration for fatal mistakes.
func (c *Config) Validate() error {
	if err := c.validateProviders(); err != nil {
		return err
	}
	if err := c.validateModels(); err != nil {
		return err
	}
	if err := c.validateAnalysis(); err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(c.Server.Transport)) {
	case "", "connect", "json":
		return nil
	default:
		return fmt.Errorf("server.transport must be one of connect or json, got %q", c.Server.Transport)
	}
}

func (c *Config) validateProviders() error {
	if len(c.Providers) == 0 {
		return errors.New("at least one provider must be configured")
	}
	for name, p := range c.Providers {
		if p.Type == "" {
			return fmt.Errorf("provider %q must define type", name)
		}
		if p.APIKey == "" {
			return fmt.Errorf("provider %q: api key missing (set providers.%s.api_key or %s)",
				name, name, apiKeyEnv(p.Type))
		}
		if p.Timeout < 0 {
			return fmt.Errorf("provider %q timeout cannot be negative", name)
		}
	}
	return nil
}

func (c *Config) validateModels() error {
	if len(c.Models) == 0 {
		return errors.New("at least one model must be defined")
	}

	var haveDefault bool
	for name, m := range c.Models {
		if m.Provider == "" {
			return fmt.Errorf("model %q must reference provider", name)
		}
		if _, ok := c.Providers[m.Provider]; !ok {
			return fmt.Errorf("model %q references unknown provider %q", name, m.Provider)
		}
		if m.Temperature < 0 || m.Temperature > 2 {
			return fmt.Errorf("model %q temperature must be within [0,2]", name)
		}
		if m.MaxTokens < 0 {
			return fmt.Errorf("model %q max_tokens cannot be negative", name)
		}
		haveDefault = haveDefault || m.Default
	}
	if !haveDefault {
		return errors.New("exactly one model should be marked as default")
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	a := c.Analysis
	switch {
	case a.MaxToolRounds <= 0:
		return errors.New("analysis.max_tool_rounds must be > 0")
	case a.Temperature < 0 || a.Temperature > 2:
		return errors.New("analysis.temperature must be within [0,2]")
	case a.MaxTokens < 0:
		return errors.New("analysis.max_tokens must be >= 0")
	case a.RetryAttempts < 0:
		return errors.New("analysis.retry_attempts must be >= 0")
	case a.RetryBackoff < 0:
		return errors.New("analysis.retry_backoff must be >= 0")
	}
	return nil
}
