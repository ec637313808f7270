package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "config/config.yml"

	defaultGeminiBaseURL   = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel     = "gemini-2.5-flash-preview-09-2025"
	defaultChessComBaseURL = "https://www.chess.com"
	defaultLichessBaseURL  = "https://lichess.org"
)

type Config struct {
	Server struct {
		Port int    `yaml:"port" envconfig:"PORT"`
		Mode string `yaml:"mode" envconfig:"GIN_MODE"`
	} `yaml:"server"`

	Gemini struct {
		APIKey  string `yaml:"apiKey" envconfig:"GEMINI_API_KEY"`
		Model   string `yaml:"model" envconfig:"GEMINI_MODEL"`
		BaseURL string `yaml:"baseUrl" envconfig:"GEMINI_BASE_URL"`
	} `yaml:"gemini"`

	Upstream struct {
		ChessComBaseURL string `yaml:"chessComBaseUrl" envconfig:"CHESSCOM_BASE_URL"`
		LichessBaseURL  string `yaml:"lichessBaseUrl" envconfig:"LICHESS_BASE_URL"`
	} `yaml:"upstream"`

	HTTP struct {
		Timeout      time.Duration `yaml:"timeout" envconfig:"HTTP_TIMEOUT"`
		MaxBodyBytes int64         `yaml:"maxBodyBytes" envconfig:"HTTP_MAX_BODY_BYTES"`
	} `yaml:"http"`

	Static struct {
		Dir string `yaml:"dir" envconfig:"STATIC_DIR"`
	} `yaml:"static"`

	Log struct {
		Level    string `yaml:"level" envconfig:"LOG_LEVEL"`
		Encoding string `yaml:"encoding" envconfig:"LOG_ENCODING"`
	} `yaml:"log"`

	Metrics struct {
		Addr string `yaml:"addr" envconfig:"METRICS_ADDR"`
	} `yaml:"metrics"`

	// Deployment flags of the hosting platform, env only.
	Platform struct {
		NodeEnv string `yaml:"-" envconfig:"NODE_ENV"`
		Vercel  string `yaml:"-" envconfig:"VERCEL"`
	} `yaml:"-"`
}

// Default returns a config populated with the built-in defaults.
func Default() *Config {
	var cfg Config
	cfg.Server.Port = 3000
	cfg.Server.Mode = "release"
	cfg.Gemini.Model = defaultGeminiModel
	cfg.Gemini.BaseURL = defaultGeminiBaseURL
	cfg.Upstream.ChessComBaseURL = defaultChessComBaseURL
	cfg.Upstream.LichessBaseURL = defaultLichessBaseURL
	cfg.HTTP.Timeout = 30 * time.Second
	cfg.HTTP.MaxBodyBytes = 5 << 20
	cfg.Static.Dir = "public"
	cfg.Log.Level = "info"
	cfg.Log.Encoding = "json"
	return &cfg
}

// LoadConfig reads the configuration file at path on top of the defaults and
// then applies environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
			}
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail on first use.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("http timeout must be positive, got %s", c.HTTP.Timeout)
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		return fmt.Errorf("http max body bytes must be positive, got %d", c.HTTP.MaxBodyBytes)
	}
	for name, raw := range map[string]string{
		"gemini base url":    c.Gemini.BaseURL,
		"chess.com base url": c.Upstream.ChessComBaseURL,
		"lichess base url":   c.Upstream.LichessBaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid %s %q", name, raw)
		}
	}
	if c.Gemini.Model == "" {
		return errors.New("gemini model must not be empty")
	}
	return nil
}

// Serverless reports whether the process runs under a serverless host that
// invokes the exported handler instead of a long-running listener.
func (c *Config) Serverless() bool {
	return c.Platform.NodeEnv == "production" && c.Platform.Vercel != ""
}

// Addr is the listen address for the public HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
