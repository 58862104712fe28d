// Package config loads server settings from an optional YAML file and
// ANYTHINGLLM_* environment variables.
//
// The API key is deliberately absent: it only ever arrives through the
// initialize_anythingllm tool call.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonwraymond/anythingllm-mcp/anythingllm"
	"github.com/spf13/viper"
)

// AppName names the default config directory.
const AppName = "anythingllm-mcp"

// EnvPrefix prefixes every environment variable, e.g. ANYTHINGLLM_BASE_URL.
const EnvPrefix = "ANYTHINGLLM"

// ErrConfiguration wraps every validation failure.
var ErrConfiguration = errors.New("invalid configuration")

// Config stores all configuration of the server.
type Config struct {
	BaseURL   string        `mapstructure:"base_url"`   // Default AnythingLLM root for initialize
	Timeout   time.Duration `mapstructure:"timeout"`    // Per-request HTTP timeout
	UserAgent string        `mapstructure:"user_agent"` // User-Agent sent to AnythingLLM
	Log       LogConfig     `mapstructure:"log"`
}

// LogConfig configures the stderr logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // trace, debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
}

// Load reads configuration from path, or from config.yaml in the working
// directory or the user config directory when path is empty. A missing
// default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppName))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetDefault("base_url", anythingllm.DefaultBaseURL)
	v.SetDefault("timeout", anythingllm.DefaultTimeout)
	v.SetDefault("user_agent", anythingllm.DefaultUserAgent)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetEnvPrefix(EnvPrefix)
	// log.level becomes ANYTHINGLLM_LOG_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base_url is empty", ErrConfiguration)
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("%w: base_url %q must start with http:// or https://", ErrConfiguration, c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrConfiguration)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.format %q must be json or console", ErrConfiguration, c.Log.Format)
	}
	return nil
}

// ClientOptions returns connector options derived from the configuration.
func (c *Config) ClientOptions() []anythingllm.Option {
	return []anythingllm.Option{
		anythingllm.WithTimeout(c.Timeout),
		anythingllm.WithUserAgent(c.UserAgent),
	}
}
