// Package config loads server settings from YAML, a .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bilibili-mcp/go-bilibili-mcp/src/bilibili"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
	TransportSSE   = "sse"
)

// Config holds the top-level server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Bilibili BilibiliConfig `yaml:"bilibili"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig selects how the MCP server is exposed.
type ServerConfig struct {
	Name         string   `yaml:"name"`
	Version      string   `yaml:"version"`
	Transport    string   `yaml:"transport"`     // stdio, http or sse
	Addr         string   `yaml:"addr"`          // listen address for http/sse
	EndpointPath string   `yaml:"endpoint_path"` // streamable HTTP path
	CORSOrigins  []string `yaml:"cors_origins"`
}

// BilibiliConfig configures the outbound API client.
type BilibiliConfig struct {
	Hosts      bilibili.Hosts      `yaml:"hosts"`
	Timeout    time.Duration       `yaml:"timeout"`
	UserAgent  string              `yaml:"user_agent"`
	RateLimit  float64             `yaml:"rate_limit"` // requests per second, 0 = unlimited
	RateBurst  int                 `yaml:"rate_burst"`
	Credential bilibili.Credential `yaml:"credential"`
}

// LogConfig configures the zerolog logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// Defaults returns a Config populated with working values.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Name:         "Bilibili Mcp Server",
			Version:      "1.0.0",
			Transport:    TransportStdio,
			Addr:         ":8000",
			EndpointPath: "/mcp",
			CORSOrigins:  []string{"*"},
		},
		Bilibili: BilibiliConfig{
			Hosts:     bilibili.DefaultHosts(),
			Timeout:   30 * time.Second,
			RateLimit: 5,
			RateBurst: 5,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the YAML file at path (skipped when empty), then applies the
// variables of each source in order, later sources winning.
func Load(path string, sources ...VariablesSource) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	for _, src := range sources {
		vars, err := src.Load()
		if err != nil {
			return nil, fmt.Errorf("loading variables: %w", err)
		}
		if err := cfg.ApplyVariables(vars); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	switch c.Server.Transport {
	case TransportStdio, TransportHTTP, TransportSSE:
	default:
		errs = append(errs, fmt.Errorf("unknown transport %q", c.Server.Transport))
	}
	if c.Server.Transport != TransportStdio && c.Server.Addr == "" {
		errs = append(errs, errors.New("addr is required for network transports"))
	}
	if !strings.HasPrefix(c.Server.EndpointPath, "/") {
		errs = append(errs, fmt.Errorf("endpoint_path %q must start with /", c.Server.EndpointPath))
	}
	if c.Bilibili.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Bilibili.Timeout))
	}
	if c.Bilibili.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("rate_limit must not be negative, got %v", c.Bilibili.RateLimit))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// ClientOptions maps the Bilibili section onto client options.
func (c *Config) ClientOptions(logger func(format string, args ...interface{})) bilibili.Options {
	opts := bilibili.Options{
		Hosts:     c.Bilibili.Hosts,
		Timeout:   c.Bilibili.Timeout,
		UserAgent: c.Bilibili.UserAgent,
		RateLimit: c.Bilibili.RateLimit,
		RateBurst: c.Bilibili.RateBurst,
		Logger:    logger,
	}
	if !c.Bilibili.Credential.IsEmpty() {
		cred := c.Bilibili.Credential
		opts.Credential = &cred
	}
	return opts
}
