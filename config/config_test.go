package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonwraymond/anythingllm-mcp/anythingllm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	tempDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.tempDir = s.T().TempDir()
	s.T().Chdir(s.tempDir)
	s.T().Setenv("XDG_CONFIG_HOME", s.tempDir)
	s.T().Setenv("HOME", s.tempDir)
}

func (s *ConfigTestSuite) TestLoadWithDefaults() {
	cfg, err := Load("")
	require.NoError(s.T(), err)

	assert.Equal(s.T(), anythingllm.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(s.T(), anythingllm.DefaultTimeout, cfg.Timeout)
	assert.Equal(s.T(), anythingllm.DefaultUserAgent, cfg.UserAgent)
	assert.Equal(s.T(), "info", cfg.Log.Level)
	assert.Equal(s.T(), "json", cfg.Log.Format)
}

func (s *ConfigTestSuite) TestLoadWithFile() {
	path := filepath.Join(s.tempDir, "custom.yaml")
	content := `
base_url: http://anythingllm.internal:3001
timeout: 15s
log:
  level: debug
  format: console
`
	require.NoError(s.T(), os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "http://anythingllm.internal:3001", cfg.BaseURL)
	assert.Equal(s.T(), 15*time.Second, cfg.Timeout)
	assert.Equal(s.T(), "debug", cfg.Log.Level)
	assert.Equal(s.T(), "console", cfg.Log.Format)
}

func (s *ConfigTestSuite) TestLoadDefaultFileInWorkingDir() {
	require.NoError(s.T(), os.WriteFile(filepath.Join(s.tempDir, "config.yaml"), []byte("base_url: http://wd:1\n"), 0o600))

	cfg, err := Load("")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "http://wd:1", cfg.BaseURL)
}

func (s *ConfigTestSuite) TestEnvOverrides() {
	s.T().Setenv("ANYTHINGLLM_BASE_URL", "https://env.example")
	s.T().Setenv("ANYTHINGLLM_TIMEOUT", "5s")
	s.T().Setenv("ANYTHINGLLM_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "https://env.example", cfg.BaseURL)
	assert.Equal(s.T(), 5*time.Second, cfg.Timeout)
	assert.Equal(s.T(), "warn", cfg.Log.Level)
}

func (s *ConfigTestSuite) TestLoadMissingExplicitFile() {
	_, err := Load(filepath.Join(s.tempDir, "missing.yaml"))
	assert.Error(s.T(), err)
}

func (s *ConfigTestSuite) TestLoadMalformedFile() {
	path := filepath.Join(s.tempDir, "bad.yaml")
	require.NoError(s.T(), os.WriteFile(path, []byte("base_url: [unterminated\n"), 0o600))

	_, err := Load(path)
	assert.Error(s.T(), err)
}

func (s *ConfigTestSuite) TestLoadInvalidValues() {
	s.T().Setenv("ANYTHINGLLM_BASE_URL", "ftp://nope")
	_, err := Load("")
	assert.ErrorIs(s.T(), err, ErrConfiguration)
}

func TestValidate(t *testing.T) {
	valid := Config{BaseURL: "http://h", Timeout: time.Second, Log: LogConfig{Format: "json"}}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base url", func(c *Config) { c.BaseURL = "" }},
		{"bad scheme", func(c *Config) { c.BaseURL = "localhost:3001" }},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrConfiguration)
		})
	}
}

func TestClientOptions(t *testing.T) {
	cfg := Config{BaseURL: "http://h", Timeout: time.Second, UserAgent: "ua"}
	assert.Len(t, cfg.ClientOptions(), 2)
}
