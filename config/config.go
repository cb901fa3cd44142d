package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"form-relay-api/internal/transcode"
	"form-relay-api/internal/util"

	"github.com/joho/godotenv"
)

const (
	DefaultPort            = "8080"
	DefaultBotUsername     = "Form Bot"
	DefaultDeliveryTimeout = 10 * time.Second
)

// Config is built once at start-up and treated as read-only afterwards.
type Config struct {
	Port            string
	AuthToken       string
	AuthTokenHash   string
	BotUsername     string
	AllowedOrigins  []string
	DeliveryTimeout time.Duration
	// RateLimitPerMinute is read but not enforced.
	RateLimitPerMinute int
	LogLevel           string
	LogFormat          string
	GinMode            string
	FormsConfigFile    string

	Webhooks map[string]string
	Display  transcode.Catalog
}

// LoadDotEnv loads a .env file when present. Existing environment values win.
func LoadDotEnv(paths ...string) error {
	return godotenv.Load(paths...)
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", DefaultPort),
		AuthToken:       os.Getenv("WEBHOOK_AUTH_TOKEN"),
		AuthTokenHash:   os.Getenv("WEBHOOK_AUTH_TOKEN_HASH"),
		BotUsername:     getEnv("BOT_USERNAME", DefaultBotUsername),
		AllowedOrigins:  util.SplitCommaList(getEnv("ALLOWED_ORIGINS", "*")),
		DeliveryTimeout: DefaultDeliveryTimeout,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		GinMode:         os.Getenv("GIN_MODE"),
		FormsConfigFile: os.Getenv("FORMS_CONFIG_FILE"),
		Webhooks:        map[string]string{},
		Display:         transcode.Catalog{Forms: map[string]transcode.DisplaySettings{}},
	}

	if raw := strings.TrimSpace(os.Getenv("DELIVERY_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid DELIVERY_TIMEOUT %q", raw)
		}
		cfg.DeliveryTimeout = d
	}

	if raw := strings.TrimSpace(os.Getenv("RATE_LIMIT_PER_MINUTE")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE %q", raw)
		}
		cfg.RateLimitPerMinute = n
	}

	if cfg.FormsConfigFile != "" {
		forms, err := LoadFormsFile(cfg.FormsConfigFile)
		if err != nil {
			return Config{}, err
		}
		cfg.Webhooks = forms.Webhooks
		cfg.Display = forms.Display
	}

	if raw := strings.TrimSpace(os.Getenv("FORM_WEBHOOKS")); raw != "" {
		extra, err := parseWebhooks([]byte(raw))
		if err != nil {
			return Config{}, fmt.Errorf("invalid FORM_WEBHOOKS: %w", err)
		}
		for formID, target := range extra {
			cfg.Webhooks[formID] = target
		}
	}

	return cfg, nil
}

// Validate reports settings the server cannot start without.
func (c Config) Validate() error {
	if c.AuthToken == "" && c.AuthTokenHash == "" {
		return errors.New("WEBHOOK_AUTH_TOKEN or WEBHOOK_AUTH_TOKEN_HASH must be set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
