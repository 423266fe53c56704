// Package config loads the statcards service configuration.
//
// Sources are applied in order, each overriding the previous one:
// built-in defaults, the TOML config file, a .env file, then environment
// variables. Command-line flags are applied last by the CLI.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/statcards/pkg/cache"
	"github.com/matzehuels/statcards/pkg/integrations"
	"github.com/matzehuels/statcards/pkg/render/theme"
)

const (
	// DefaultFile is read when no config path is given and it exists.
	DefaultFile = "statcards.toml"

	// EnvFile is the dotenv file loaded from the working directory.
	EnvFile = ".env"

	DefaultHost = "127.0.0.1"
	DefaultPort = 7674
)

// Config is the complete service configuration.
type Config struct {
	Server       ServerConfig   `toml:"server"`
	Cache        CacheConfig    `toml:"cache"`
	Upstream     UpstreamConfig `toml:"upstream"`
	DefaultTheme string         `toml:"default_theme"`
}

// ServerConfig is the HTTP listener.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// CacheConfig bounds the result cache.
type CacheConfig struct {
	TTL      Duration `toml:"ttl"`
	Capacity int      `toml:"capacity"`
}

// UpstreamConfig holds credentials and limits for the upstream APIs.
type UpstreamConfig struct {
	GitHubToken      string   `toml:"github_token"`
	HuggingFaceToken string   `toml:"huggingface_token"`
	UserAgent        string   `toml:"user_agent"`
	RPS              float64  `toml:"rps"`
	Timeout          Duration `toml:"timeout"`
}

// Duration is a time.Duration written as a Go duration string ("2h", "10s").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: DefaultHost, Port: DefaultPort},
		Cache: CacheConfig{
			TTL:      Duration{cache.DefaultTTL},
			Capacity: cache.DefaultCapacity,
		},
		Upstream: UpstreamConfig{
			UserAgent: integrations.DefaultUserAgent,
			RPS:       integrations.DefaultRPS,
			Timeout:   Duration{integrations.DefaultTimeout},
		},
		DefaultTheme: theme.Default,
	}
}

// Load builds the configuration from path (or DefaultFile when path is
// empty), the .env file and the process environment. It does not validate.
func Load(path string) (*Config, error) {
	return load(path, EnvFile, os.LookupEnv)
}

func load(path, envFile string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	if err := applyEnv(cfg, lookup); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides cfg with the environment variables that are set.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("SERVICE_HOST", &cfg.Server.Host)
	str("DEFAULT_THEME", &cfg.DefaultTheme)
	str("GITHUB_TOKEN", &cfg.Upstream.GitHubToken)
	str("HUGGINGFACE_TOKEN", &cfg.Upstream.HuggingFaceToken)
	str("USER_AGENT", &cfg.Upstream.UserAgent)

	if v, ok := lookup("SERVICE_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SERVICE_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if v, ok := lookup("CACHE_CAPACITY"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CACHE_CAPACITY: %w", err)
		}
		cfg.Cache.Capacity = n
	}
	if v, ok := lookup("UPSTREAM_RPS"); ok && v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("UPSTREAM_RPS: %w", err)
		}
		cfg.Upstream.RPS = rps
	}
	for key, dst := range map[string]*Duration{
		"CACHE_TTL":        &cfg.Cache.TTL,
		"UPSTREAM_TIMEOUT": &cfg.Upstream.Timeout,
	} {
		if v, ok := lookup(key); ok && v != "" {
			if err := dst.UnmarshalText([]byte(v)); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
	}
	return nil
}

// Validate checks the values a running server depends on.
func (c *Config) Validate() error {
	var problems []error
	if _, err := theme.Lookup(c.DefaultTheme); err != nil {
		problems = append(problems, fmt.Errorf("default_theme: %w", err))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.Cache.TTL.Duration <= 0 {
		problems = append(problems, fmt.Errorf("cache.ttl must be positive"))
	}
	if c.Cache.Capacity <= 0 {
		problems = append(problems, fmt.Errorf("cache.capacity must be positive"))
	}
	if c.Upstream.RPS <= 0 {
		problems = append(problems, fmt.Errorf("upstream.rps must be positive"))
	}
	if c.Upstream.Timeout.Duration <= 0 {
		problems = append(problems, fmt.Errorf("upstream.timeout must be positive"))
	}
	return errors.Join(problems...)
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// IntegrationOptions converts the upstream settings for the API clients.
func (c *Config) IntegrationOptions() integrations.Options {
	return integrations.Options{
		Timeout:   c.Upstream.Timeout.Duration,
		RPS:       c.Upstream.RPS,
		UserAgent: c.Upstream.UserAgent,
	}
}
