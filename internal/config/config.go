package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/sevigo/triage-warden/internal/logger"
)

var ErrPrivateKeyMissing = errors.New("github app private key is missing")

// Config holds the application's configuration values.
type Config struct {
	ServerPort string
	Logging    logger.Config
	GitHub     GitHubConfig
}

// GitHubConfig holds everything needed to act as the GitHub App.
type GitHubConfig struct {
	AppID          int64
	PrivateKeyPath string
	WebhookSecret  string
	APIURL         string
	TokenCache     bool
	MaxRetries     int
}

// AppCredentials is the app identity loaded once at startup. It is passed by
// value and never mutated afterwards.
type AppCredentials struct {
	AppID      int64
	PrivateKey []byte
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and validates required fields. It uses the Viper
// library to handle configuration loading and precedence.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			slog.Error("failed to read config file", "error", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("GITHUB_PRIVATE_KEY_PATH", "keys/triage-warden.private-key.pem")
	v.SetDefault("GITHUB_TOKEN_CACHE", true)
	v.SetDefault("GITHUB_MAX_RETRIES", 3)
}

func fromViper(v *viper.Viper) (*Config, error) {
	if v.GetInt64("GITHUB_APP_ID") <= 0 {
		return nil, fmt.Errorf("GITHUB_APP_ID must be set")
	}
	if v.GetString("GITHUB_PRIVATE_KEY_PATH") == "" {
		return nil, fmt.Errorf("GITHUB_PRIVATE_KEY_PATH must be set")
	}
	if v.GetInt("GITHUB_MAX_RETRIES") < 0 {
		return nil, fmt.Errorf("GITHUB_MAX_RETRIES must not be negative")
	}

	return &Config{
		ServerPort: v.GetString("SERVER_PORT"),
		Logging: logger.Config{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
			Output: strings.ToLower(v.GetString("LOG_OUTPUT")),
		},
		GitHub: GitHubConfig{
			AppID:          v.GetInt64("GITHUB_APP_ID"),
			PrivateKeyPath: v.GetString("GITHUB_PRIVATE_KEY_PATH"),
			WebhookSecret:  v.GetString("GITHUB_WEBHOOK_SECRET"),
			APIURL:         strings.TrimSpace(v.GetString("GITHUB_API_URL")),
			TokenCache:     v.GetBool("GITHUB_TOKEN_CACHE"),
			MaxRetries:     v.GetInt("GITHUB_MAX_RETRIES"),
		},
	}, nil
}

// LoadAppCredentials reads the private key referenced by the configuration.
func LoadAppCredentials(cfg *Config) (AppCredentials, error) {
	key, err := os.ReadFile(cfg.GitHub.PrivateKeyPath)
	if err != nil {
		return AppCredentials{}, fmt.Errorf("failed to read private key from %s: %w", cfg.GitHub.PrivateKeyPath, err)
	}
	if len(strings.TrimSpace(string(key))) == 0 {
		return AppCredentials{}, fmt.Errorf("%w: %s is empty", ErrPrivateKeyMissing, cfg.GitHub.PrivateKeyPath)
	}
	return AppCredentials{AppID: cfg.GitHub.AppID, PrivateKey: key}, nil
}
