package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Version is the triage release version.
const Version = "0.3.0"

// Config holds all triage configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// OutputConfig holds record destination settings.
type OutputConfig struct {
	Format  string        `yaml:"format"` // "json" or "text"
	Pretty  bool          `yaml:"pretty"`
	Webhook WebhookConfig `yaml:"webhook"`
}

// WebhookConfig holds settings for forwarding records over HTTP.
// An empty URL disables the webhook.
type WebhookConfig struct {
	URL           string            `yaml:"url"`
	Headers       map[string]string `yaml:"headers"`
	BatchSize     int               `yaml:"batch_size"`
	FlushInterval time.Duration     `yaml:"flush_interval"`
	Async         bool              `yaml:"async"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":10000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Output: OutputConfig{
			Format: "json",
			Webhook: WebhookConfig{
				BatchSize:     50,
				FlushInterval: 5 * time.Second,
			},
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads configuration from environment variables over the defaults.
func Load() Config {
	cfg := Default()
	applyEnv(&cfg)
	return cfg
}

// LoadFile reads a YAML file over the defaults and then applies environment
// variables, which take precedence. An empty path behaves like Load.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Addr = getenv("TRIAGE_ADDR", addrFromPort(cfg.Server.Addr))
	cfg.Server.ReadTimeout = getenvDuration("TRIAGE_READ_TIMEOUT", cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = getenvDuration("TRIAGE_WRITE_TIMEOUT", cfg.Server.WriteTimeout)
	cfg.Server.ShutdownTimeout = getenvDuration("TRIAGE_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout)

	cfg.Output.Format = getenv("TRIAGE_OUTPUT_FORMAT", cfg.Output.Format)
	cfg.Output.Pretty = getenvBool("TRIAGE_OUTPUT_PRETTY", cfg.Output.Pretty)

	wh := &cfg.Output.Webhook
	wh.URL = getenv("TRIAGE_WEBHOOK_URL", wh.URL)
	wh.BatchSize = getenvInt("TRIAGE_WEBHOOK_BATCH_SIZE", wh.BatchSize)
	wh.FlushInterval = getenvDuration("TRIAGE_WEBHOOK_FLUSH_INTERVAL", wh.FlushInterval)
	wh.Async = getenvBool("TRIAGE_WEBHOOK_ASYNC", wh.Async)
	if h := parseHeaders(os.Getenv("TRIAGE_WEBHOOK_HEADERS")); h != nil {
		wh.Headers = h
	}

	cfg.Log.Level = getenv("TRIAGE_LOG_LEVEL", cfg.Log.Level)
}

// Validate checks the configuration and returns every problem found.
func (c Config) Validate() error {
	var errs []error

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server addr must not be empty (TRIAGE_ADDR)"))
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("server timeouts must not be negative"))
	}

	switch c.Output.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("output format must be json or text, got %q (TRIAGE_OUTPUT_FORMAT)", c.Output.Format))
	}

	if wh := c.Output.Webhook; wh.URL != "" {
		u, err := url.Parse(wh.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("webhook url must be an absolute http(s) URL, got %q (TRIAGE_WEBHOOK_URL)", wh.URL))
		}
		if wh.BatchSize <= 0 {
			errs = append(errs, fmt.Errorf("webhook batch size must be positive, got %d", wh.BatchSize))
		}
		if wh.FlushInterval <= 0 {
			errs = append(errs, fmt.Errorf("webhook flush interval must be positive, got %s", wh.FlushInterval))
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log level must be debug, info, warn or error, got %q (TRIAGE_LOG_LEVEL)", c.Log.Level))
	}

	return errors.Join(errs...)
}

// addrFromPort honours a bare PORT variable, as set by most PaaS hosts.
func addrFromPort(fallback string) string {
	if p := os.Getenv("PORT"); p != "" {
		return ":" + p
	}
	return fallback
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// parseHeaders reads "Key=Value,Key2=Value2". Malformed pairs are skipped.
func parseHeaders(s string) map[string]string {
	if s == "" {
		return nil
	}
	var m map[string]string
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			continue
		}
		if m == nil {
			m = make(map[string]string)
		}
		m[k] = strings.TrimSpace(v)
	}
	return m
}
