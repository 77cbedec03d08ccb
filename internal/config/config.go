// Package config загружает настройки процесса из окружения и .env.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"storefront/internal/domain"
)

const (
	envHTTPAddr        = "STOREFRONT_HTTP_ADDR"
	envAPIBaseURL      = "STOREFRONT_API_BASE_URL"
	envAPITimeout      = "STOREFRONT_API_TIMEOUT"
	envAPIDebug        = "STOREFRONT_API_DEBUG"
	envCORSOrigins     = "STOREFRONT_CORS_ORIGINS"
	envLogLevel        = "STOREFRONT_LOG_LEVEL"
	envLogFormat       = "STOREFRONT_LOG_FORMAT"
	envShippingFile    = "STOREFRONT_SHIPPING_FILE"
	envShutdownTimeout = "STOREFRONT_SHUTDOWN_TIMEOUT"
	envSessionIdleTTL  = "STOREFRONT_SESSION_IDLE_TTL"
	envMaxSessions     = "STOREFRONT_MAX_SESSIONS"
)

// Config настройки витрины
type Config struct {
	HTTPAddr        string
	APIBaseURL      string
	APITimeout      time.Duration
	APIDebug        bool
	CORSOrigins     []string
	LogLevel        slog.Level
	LogFormat       string
	Shipping        []domain.ShippingOption
	ShutdownTimeout time.Duration
	// SessionIdleTTL sessions untouched for longer are closed by the sweeper.
	SessionIdleTTL time.Duration
	// MaxSessions caps open sessions; the least recently used one is evicted.
	MaxSessions int

	// Warnings collects values that were invalid and replaced by defaults.
	Warnings []string
}

func Default() Config {
	return Config{
		HTTPAddr:        ":9091",
		APIBaseURL:      "https://api-kjmsports-production.up.railway.app",
		APITimeout:      15 * time.Second,
		CORSOrigins:     []string{"*"},
		LogLevel:        slog.LevelInfo,
		LogFormat:       "json",
		ShutdownTimeout: 5 * time.Second,
		SessionIdleTTL:  30 * time.Minute,
		MaxSessions:     10000,
	}
}

// Load reads files (default ".env") into the environment without overriding
// variables already set, then builds the config. Missing env files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(os.Getenv(envHTTPAddr)); v != "" {
		cfg.HTTPAddr = v
	}
	if v := strings.TrimSpace(os.Getenv(envAPIBaseURL)); v != "" {
		cfg.APIBaseURL = strings.TrimRight(v, "/")
	}
	cfg.APITimeout = cfg.duration(envAPITimeout, cfg.APITimeout)
	cfg.ShutdownTimeout = cfg.duration(envShutdownTimeout, cfg.ShutdownTimeout)
	cfg.SessionIdleTTL = cfg.duration(envSessionIdleTTL, cfg.SessionIdleTTL)

	if v := os.Getenv(envMaxSessions); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			cfg.warn(envMaxSessions, v)
		} else {
			cfg.MaxSessions = n
		}
	}

	if v := os.Getenv(envAPIDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			cfg.warn(envAPIDebug, v)
		} else {
			cfg.APIDebug = b
		}
	}

	if v := os.Getenv(envCORSOrigins); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.CORSOrigins = origins
		}
	}

	if v := os.Getenv(envLogLevel); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err != nil {
			cfg.warn(envLogLevel, v)
		} else {
			cfg.LogLevel = lvl
		}
	}
	if v := strings.ToLower(os.Getenv(envLogFormat)); v != "" {
		if v == "json" || v == "text" {
			cfg.LogFormat = v
		} else {
			cfg.warn(envLogFormat, v)
		}
	}

	if path := os.Getenv(envShippingFile); path != "" {
		opts, err := LoadShipping(path)
		if err != nil {
			return Config{}, err
		}
		cfg.Shipping = opts
	}
	return cfg, nil
}

type shippingFile struct {
	Options []domain.ShippingOption `yaml:"options"`
}

// LoadShipping reads shipping options from a yaml file:
//
//	options:
//	  - id: standard
//	    name: Standard shipping
//	    cost: 1000
func LoadShipping(path string) ([]domain.ShippingOption, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read shipping file: %w", err)
	}
	var f shippingFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse shipping file: %w", err)
	}
	seen := make(map[string]bool, len(f.Options))
	for _, o := range f.Options {
		if o.ID == "" || o.Cost < 0 {
			return nil, fmt.Errorf("shipping option %q: id is required and cost must not be negative", o.ID)
		}
		if seen[o.ID] {
			return nil, fmt.Errorf("shipping option %q: duplicate id", o.ID)
		}
		seen[o.ID] = true
	}
	return f.Options, nil
}

func (c *Config) duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		c.warn(key, v)
		return def
	}
	return d
}

func (c *Config) warn(key, value string) {
	c.Warnings = append(c.Warnings, fmt.Sprintf("%s=%q is invalid, using default", key, value))
}
