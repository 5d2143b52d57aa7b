// Package config loads and validates the server configuration from YAML with
// environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage drivers.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// LLM backends.
const (
	BackendNone      = "none"
	BackendAnthropic = "anthropic"
	BackendOllama    = "ollama"
	BackendOpenAI    = "openai"
)

// maxFeedbackContext mirrors adformat.MaxFeedbackContext.
const maxFeedbackContext = 3

// Config is the top-level server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	LLM      LLMConfig      `yaml:"llm"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Addr returns host:port.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// StorageConfig selects where feedback and catalog rows live.
type StorageConfig struct {
	Driver string `yaml:"driver"` // postgres, memory
}

// LLMConfig defines the generative backend used for rich ad formatting.
type LLMConfig struct {
	Backend     string          `yaml:"backend"` // none, anthropic, ollama, openai
	Anthropic   AnthropicConfig `yaml:"anthropic"`
	Ollama      OllamaConfig    `yaml:"ollama"`
	OpenAI      OpenAIConfig    `yaml:"openai"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
	Timeout     time.Duration   `yaml:"timeout"`
	Temperature float64         `yaml:"temperature"`
	MaxTokens   int             `yaml:"max_tokens"`
}

// Enabled reports whether a generative backend is configured.
func (l *LLMConfig) Enabled() bool {
	return l.Backend != BackendNone
}

// AnthropicConfig defines Anthropic API settings. The key is read from
// ANTHROPIC_API_KEY.
type AnthropicConfig struct {
	Model string `yaml:"model"`
}

// OllamaConfig defines Ollama settings.
type OllamaConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// OpenAIConfig defines an OpenAI-compatible endpoint. The key is read from
// OPENAI_API_KEY unless set here.
type OpenAIConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
}

// RateLimitConfig caps backend calls. Calls over budget fall back to rules.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// CatalogConfig defines catalog loading.
type CatalogConfig struct {
	ReloadInterval time.Duration `yaml:"reload_interval"`
	SeedFile       string        `yaml:"seed_file"`
}

// FeedbackConfig defines how prior corrections feed the formatter.
type FeedbackConfig struct {
	ContextLimit int `yaml:"context_limit"` // 1..3
	ScanLimit    int `yaml:"scan_limit"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, console
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with every default applied, using
// in-memory storage and no generative backend.
func Default() *Config {
	cfg := &Config{Storage: StorageConfig{Driver: StorageMemory}}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyStorageDefaults(&cfg.Storage)
	applyLLMDefaults(&cfg.LLM)
	applyCatalogDefaults(&cfg.Catalog)
	applyFeedbackDefaults(&cfg.Feedback)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = 10 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyStorageDefaults(s *StorageConfig) {
	if s.Driver == "" {
		s.Driver = StoragePostgres
	}
}

func applyLLMDefaults(l *LLMConfig) {
	if l.Backend == "" {
		l.Backend = BackendNone
	}
	if l.Anthropic.Model == "" {
		l.Anthropic.Model = "claude-3-5-haiku-latest"
	}
	if l.OpenAI.Endpoint == "" {
		l.OpenAI.Endpoint = "https://api.openai.com/v1"
	}
	if l.RateLimit.Burst == 0 {
		l.RateLimit.Burst = 5
	}
	if l.Timeout == 0 {
		l.Timeout = 15 * time.Second
	}
	if l.Temperature == 0 {
		l.Temperature = 0.2
	}
	if l.MaxTokens == 0 {
		l.MaxTokens = 256
	}
}

func applyCatalogDefaults(c *CatalogConfig) {
	if c.ReloadInterval == 0 {
		c.ReloadInterval = 5 * time.Minute
	}
}

func applyFeedbackDefaults(f *FeedbackConfig) {
	if f.ContextLimit == 0 {
		f.ContextLimit = maxFeedbackContext
	}
	if f.ScanLimit == 0 {
		f.ScanLimit = 50
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.Storage.Driver {
	case StoragePostgres:
		if cfg.Database.Host == "" {
			errs = append(errs, errors.New("database.host is required"))
		}
		if cfg.Database.Name == "" {
			errs = append(errs, errors.New("database.name is required"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, errors.New("database.user is required"))
		}
	case StorageMemory:
	default:
		errs = append(errs, fmt.Errorf(
			"storage.driver must be one of: postgres, memory (got %q)", cfg.Storage.Driver,
		))
	}

	switch cfg.LLM.Backend {
	case BackendNone:
	case BackendAnthropic:
		// API key comes from env.
	case BackendOllama:
		if cfg.LLM.Ollama.Endpoint == "" {
			errs = append(errs, errors.New("llm.ollama.endpoint is required when backend is ollama"))
		}
		if cfg.LLM.Ollama.Model == "" {
			errs = append(errs, errors.New("llm.ollama.model is required when backend is ollama"))
		}
	case BackendOpenAI:
		if cfg.LLM.OpenAI.Model == "" {
			errs = append(errs, errors.New("llm.openai.model is required when backend is openai"))
		}
	default:
		errs = append(errs, fmt.Errorf(
			"llm.backend must be one of: none, anthropic, ollama, openai (got %q)",
			cfg.LLM.Backend,
		))
	}

	if cfg.LLM.RateLimit.PerSecond < 0 {
		errs = append(errs, errors.New("llm.rate_limit.per_second must not be negative"))
	}
	if cfg.LLM.Timeout < 0 {
		errs = append(errs, errors.New("llm.timeout must not be negative"))
	}
	if cfg.Catalog.ReloadInterval < time.Second {
		errs = append(errs, errors.New("catalog.reload_interval must be at least 1s"))
	}
	if cfg.Feedback.ContextLimit < 1 || cfg.Feedback.ContextLimit > maxFeedbackContext {
		errs = append(errs, fmt.Errorf(
			"feedback.context_limit must be between 1 and %d (got %d)",
			maxFeedbackContext, cfg.Feedback.ContextLimit,
		))
	}
	if cfg.Feedback.ScanLimit < 1 {
		errs = append(errs, errors.New("feedback.scan_limit must be positive"))
	}

	return errors.Join(errs...)
}
