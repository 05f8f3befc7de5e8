// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by LoadConfig.
const EnvPrefix = "RESUME_MATCHER"

// Embedder backends
const (
	EmbedderHash   = "hash"
	EmbedderGemini = "gemini"
)

// Config holds the CLI and server configuration.
// Values come from defaults, an optional JSON or YAML file, then the environment.
type Config struct {
	// Inputs
	Resume string `mapstructure:"resume"`  // Path to the resume text file
	Job    string `mapstructure:"job"`     // Path to the job description file
	JobURL string `mapstructure:"job_url"` // URL to fetch the job description from

	// NLP
	Embedder       string `mapstructure:"embedder"`        // hash or gemini
	HashDimensions int    `mapstructure:"hash_dimensions"` // Vector size of the hash embedder
	EmbeddingModel string `mapstructure:"embedding_model"` // Gemini embedding model
	TaggerModel    string `mapstructure:"tagger_model"`    // Gemini model used for POS tagging
	UsePOSTagger   bool   `mapstructure:"pos_tagger"`      // Tag bullets with the Gemini tagger
	APIKey         string `mapstructure:"api_key"`         // Gemini API key

	// Fetching
	UseBrowser   bool          `mapstructure:"use_browser"`   // Render SPA job pages with headless Chrome
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"` // Timeout for job page fetches

	// Persistence
	DatabaseURL string `mapstructure:"database_url"` // PostgreSQL connection URL

	Verbose bool `mapstructure:"verbose"`

	Server ServerConfig `mapstructure:"server"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           int             `mapstructure:"port"`
	AllowedOrigins []string        `mapstructure:"allowed_origins"`
	RequestTimeout time.Duration   `mapstructure:"request_timeout"`
	RateLimit      RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	DefaultLimit  int           `mapstructure:"default_limit"`
	DefaultWindow time.Duration `mapstructure:"default_window"`
	AnalyzeLimit  int           `mapstructure:"analyze_limit"`
	AnalyzeWindow time.Duration `mapstructure:"analyze_window"`
	Whitelist     []string      `mapstructure:"whitelist"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Embedder:       EmbedderHash,
		HashDimensions: 384,
		EmbeddingModel: "text-embedding-004",
		TaggerModel:    "gemini-2.5-flash-lite",
		FetchTimeout:   30 * time.Second,
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"*"},
			RequestTimeout: 2 * time.Minute,
			RateLimit: RateLimitConfig{
				Enabled:       true,
				DefaultLimit:  1000,
				DefaultWindow: time.Minute,
				AnalyzeLimit:  60,
				AnalyzeWindow: time.Hour,
			},
		},
	}
}

// LoadConfig builds a Config from defaults, the file at path (skipped when empty)
// and RESUME_MATCHER_* environment variables. GEMINI_API_KEY and DATABASE_URL are
// honoured as well.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api_key", EnvPrefix+"_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind api key env: %w", err)
	}
	if err := v.BindEnv("database_url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database url env: %w", err)
	}

	if path != "" {
		// Resolve path relative to current directory if not absolute
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("resume", d.Resume)
	v.SetDefault("job", d.Job)
	v.SetDefault("job_url", d.JobURL)
	v.SetDefault("embedder", d.Embedder)
	v.SetDefault("hash_dimensions", d.HashDimensions)
	v.SetDefault("embedding_model", d.EmbeddingModel)
	v.SetDefault("tagger_model", d.TaggerModel)
	v.SetDefault("pos_tagger", d.UsePOSTagger)
	v.SetDefault("api_key", d.APIKey)
	v.SetDefault("use_browser", d.UseBrowser)
	v.SetDefault("fetch_timeout", d.FetchTimeout)
	v.SetDefault("database_url", d.DatabaseURL)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.allowed_origins", d.Server.AllowedOrigins)
	v.SetDefault("server.request_timeout", d.Server.RequestTimeout)
	v.SetDefault("server.rate_limit.enabled", d.Server.RateLimit.Enabled)
	v.SetDefault("server.rate_limit.default_limit", d.Server.RateLimit.DefaultLimit)
	v.SetDefault("server.rate_limit.default_window", d.Server.RateLimit.DefaultWindow)
	v.SetDefault("server.rate_limit.analyze_limit", d.Server.RateLimit.AnalyzeLimit)
	v.SetDefault("server.rate_limit.analyze_window", d.Server.RateLimit.AnalyzeWindow)
	v.SetDefault("server.rate_limit.whitelist", d.Server.RateLimit.Whitelist)
}

// Validate checks that the configuration has valid values.
// Required inputs are checked by the commands after flags are merged.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return &ValidationError{Field: "job", Message: "'job' and 'job_url' are mutually exclusive"}
	}

	switch c.Embedder {
	case EmbedderHash, EmbedderGemini:
	default:
		return &ValidationError{Field: "embedder", Message: fmt.Sprintf("unknown embedder %q (want %q or %q)", c.Embedder, EmbedderHash, EmbedderGemini)}
	}

	if (c.Embedder == EmbedderGemini || c.UsePOSTagger) && c.APIKey == "" {
		return &ValidationError{Field: "api_key", Message: "a Gemini API key is required for the gemini embedder and the POS tagger"}
	}

	if c.HashDimensions < 0 {
		return &ValidationError{Field: "hash_dimensions", Message: "must be non-negative"}
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return &ValidationError{Field: "server.port", Message: "must be between 0 and 65535"}
	}
	if c.Server.RateLimit.DefaultLimit < 0 || c.Server.RateLimit.AnalyzeLimit < 0 {
		return &ValidationError{Field: "server.rate_limit", Message: "limits must be non-negative"}
	}

	for _, f := range [][2]string{{"resume", c.Resume}, {"job", c.Job}} {
		if f[1] == "" {
			continue
		}
		if _, err := os.Stat(f[1]); os.IsNotExist(err) {
			return &ValidationError{Field: f[0], Message: fmt.Sprintf("file not found: %s", f[1])}
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// Config file values act as defaults for CLI flags this way.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	for _, f := range []struct {
		dst *string
		def string
	}{
		{&result.Resume, defaults.Resume},
		{&result.Job, defaults.Job},
		{&result.JobURL, defaults.JobURL},
		{&result.Embedder, defaults.Embedder},
		{&result.EmbeddingModel, defaults.EmbeddingModel},
		{&result.TaggerModel, defaults.TaggerModel},
		{&result.APIKey, defaults.APIKey},
		{&result.DatabaseURL, defaults.DatabaseURL},
	} {
		if *f.dst == "" {
			*f.dst = f.def
		}
	}

	// Numeric fields: use default if zero
	if result.HashDimensions == 0 {
		result.HashDimensions = defaults.HashDimensions
	}
	if result.FetchTimeout == 0 {
		result.FetchTimeout = defaults.FetchTimeout
	}
	if result.Server.Port == 0 {
		result.Server.Port = defaults.Server.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
