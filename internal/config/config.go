package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingGeminiKey = errors.New("GOOGLE_API_KEY is required")
	ErrMissingGroqKey   = errors.New("GROQ_API_KEY is required")
)

// Config holds all application configuration.
type Config struct {
	Port            int           `yaml:"port"             env:"SUMMARYAPP_PORT"`
	GeminiAPIKey    string        `yaml:"gemini_api_key"   env:"GOOGLE_API_KEY"`
	GeminiModel     string        `yaml:"gemini_model"     env:"SUMMARYAPP_GEMINI_MODEL"`
	GroqAPIKey      string        `yaml:"groq_api_key"     env:"GROQ_API_KEY"`
	GroqModel       string        `yaml:"groq_model"       env:"SUMMARYAPP_GROQ_MODEL"`
	GroqBaseURL     string        `yaml:"groq_base_url"    env:"SUMMARYAPP_GROQ_BASE_URL"`
	ProviderTimeout time.Duration `yaml:"provider_timeout" env:"SUMMARYAPP_PROVIDER_TIMEOUT"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SUMMARYAPP_MAX_BODY_BYTES"`
	LogLevel        string        `yaml:"log_level"        env:"SUMMARYAPP_LOG_LEVEL"`
}

func defaults() Config {
	return Config{
		Port:            8501,
		GeminiModel:     "gemini-pro",
		GroqModel:       "mixtral-8x7b-32768",
		GroqBaseURL:     "https://api.groq.com/openai/v1/",
		ProviderTimeout: 60 * time.Second,
		MaxBodyBytes:    1 << 20,
		LogLevel:        "info",
	}
}

// Load reads configuration from a YAML file (if path is non-empty), then
// applies environment variable overrides. An empty path returns defaults + env overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	return cfg, nil
}

// Validate reports every missing provider credential at once.
func (c Config) Validate() error {
	var errs []error
	if c.GeminiAPIKey == "" {
		errs = append(errs, ErrMissingGeminiKey)
	}
	if c.GroqAPIKey == "" {
		errs = append(errs, ErrMissingGroqKey)
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d", c.Port))
	}
	return errors.Join(errs...)
}
