package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/gptpipe/gptpipe/internal/prompt"
	"github.com/gptpipe/gptpipe/internal/provider/openrouter"
)

// ErrMissingAPIKey is returned when no credential was configured.
var ErrMissingAPIKey = errors.New("no API key configured: set GPTPIPE_API_KEY, GPTPIPE_KEY or api_key in config.yaml")

type Config struct {
	APIKey         string        `mapstructure:"api_key"`
	EndpointURL    string        `mapstructure:"endpoint_url"`
	SystemPrompt   string        `mapstructure:"system_prompt"`
	SmallModel     string        `mapstructure:"small_model"`
	LargeModel     string        `mapstructure:"large_model"`
	TokenThreshold int           `mapstructure:"token_threshold"`
	Timeout        time.Duration `mapstructure:"timeout"`
	ModelsPath     string        `mapstructure:"models_path"`
	TelemetryURL   string        `mapstructure:"telemetry_url"`
	AppURL         string        `mapstructure:"app_url"`
	AppTitle       string        `mapstructure:"app_title"`
	Verbose        bool          `mapstructure:"verbose"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("endpoint_url", openrouter.DefaultEndpoint)
	v.SetDefault("system_prompt", prompt.DefaultSystemPrompt)
	v.SetDefault("small_model", "google/gemini-flash-1.5-8b")
	v.SetDefault("large_model", "google/gemini-flash-1.5")
	v.SetDefault("token_threshold", 8000)
	v.SetDefault("timeout", "60s")
	v.SetDefault("app_url", "")
	v.SetDefault("app_title", "gptpipe")
	v.SetDefault("models_path", "")
	v.SetDefault("telemetry_url", "")
	v.SetDefault("verbose", false)
}

// Load reads .env, config.yaml and GPTPIPE_* environment variables.
func Load() (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.config/gptpipe")

	// allow environment variables like GPTPIPE_SMALL_MODEL
	v.SetEnvPrefix("GPTPIPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// GPTPIPE_KEY is the historical name of the credential.
	if err := v.BindEnv("api_key", "GPTPIPE_API_KEY", "GPTPIPE_KEY"); err != nil {
		return nil, err
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// don't fail if config file is missing, allow env-only config
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks values the pipeline cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.EndpointURL == "" {
		return errors.New("endpoint_url must not be empty")
	}
	if c.SmallModel == "" || c.LargeModel == "" {
		return errors.New("small_model and large_model must not be empty")
	}
	if c.TokenThreshold < 0 {
		return fmt.Errorf("token_threshold must not be negative, got %d", c.TokenThreshold)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}
