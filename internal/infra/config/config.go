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

type Config struct {
	APIURL      string        `yaml:"api_url"`
	HTTPAddr    string        `yaml:"http_addr"`
	DatabaseURL string        `yaml:"database_url"` // opcional: sin esto el cache es solo en memoria
	DBMaxConns  int           `yaml:"db_max_conns"`
	CacheTTL    time.Duration `yaml:"-"`
	HTTPTimeout time.Duration `yaml:"-"`
	Log         LogConfig     `yaml:"log"`

	// yaml.v3 no decodifica "5m" a time.Duration; se leen como texto.
	RawCacheTTL    string `yaml:"cache_ttl"`
	RawHTTPTimeout string `yaml:"http_timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json o console
}

func Default() Config {
	return Config{
		APIURL:      "http://127.0.0.1:8000",
		HTTPAddr:    ":8080",
		CacheTTL:    5 * time.Minute,
		HTTPTimeout: 10 * time.Second,
		DBMaxConns:  4,
		Log:         LogConfig{Level: "info", Format: "json"},
	}
}

// Load parte de Default, aplica el YAML en path (si path no es vacio) y
// despues las variables de entorno, que siempre ganan.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		if err := cfg.resolveDurations(); err != nil {
			return cfg, err
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) resolveDurations() error {
	var err error
	if c.RawCacheTTL != "" {
		if c.CacheTTL, err = time.ParseDuration(c.RawCacheTTL); err != nil {
			return fmt.Errorf("cache_ttl: %w", err)
		}
	}
	if c.RawHTTPTimeout != "" {
		if c.HTTPTimeout, err = time.ParseDuration(c.RawHTTPTimeout); err != nil {
			return fmt.Errorf("http_timeout: %w", err)
		}
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	set := func(dst *string, k string) {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			*dst = v
		}
	}
	set(&c.APIURL, "WHYBOTHER_API_URL")
	set(&c.HTTPAddr, "HTTP_ADDR")
	set(&c.DatabaseURL, "DATABASE_URL")
	set(&c.Log.Level, "LOG_LEVEL")
	set(&c.Log.Format, "LOG_FORMAT")

	var err error
	if v := strings.TrimSpace(os.Getenv("CACHE_TTL")); v != "" {
		if c.CacheTTL, err = time.ParseDuration(v); err != nil {
			return fmt.Errorf("CACHE_TTL: %w", err)
		}
	}
	if v := strings.TrimSpace(os.Getenv("DB_MAX_CONNS")); v != "" {
		if c.DBMaxConns, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("DB_MAX_CONNS: %w", err)
		}
	}
	if v := strings.TrimSpace(os.Getenv("HTTP_TIMEOUT")); v != "" {
		if c.HTTPTimeout, err = time.ParseDuration(v); err != nil {
			return fmt.Errorf("HTTP_TIMEOUT: %w", err)
		}
	}
	return nil
}

// CacheEnabled: CACHE_TTL=0 apaga el cache.
func (c Config) CacheEnabled() bool { return c.CacheTTL > 0 }

func (c Config) Validate() error {
	var errs []error
	if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("api_url %q is not an absolute URL", c.APIURL))
	}
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("http_addr is required"))
	}
	if c.CacheTTL < 0 {
		errs = append(errs, errors.New("cache_ttl must not be negative"))
	}
	if c.DBMaxConns < 1 {
		errs = append(errs, errors.New("db_max_conns must be at least 1"))
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, errors.New("http_timeout must be positive"))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log level %q unknown", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log format %q unknown", c.Log.Format))
	}
	return errors.Join(errs...)
}
