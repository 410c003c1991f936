// Package config holds the local client configuration: the YAML file that
// points the app at its remote endpoint, and window preferences kept in the
// Fyne preferences store.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// AppDirName is the directory under the user config dir holding config.yaml
const AppDirName = "comfort-catalogue"

// FileName is the config file name
const FileName = "config.yaml"

// DefaultEndpoint is baked in at build time:
//
//	go build -ldflags "-X github.com/comfort-hq/digital-catalogue/internal/config.DefaultEndpoint=https://..."
var DefaultEndpoint = ""

// Defaults
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
)

// ErrNoEndpoint is returned by Validate when no endpoint is configured anywhere
var ErrNoEndpoint = errors.New("no remote endpoint configured")

// Config is the content of config.yaml
type Config struct {
	Endpoint       string        `yaml:"endpoint,omitempty"`
	RequestTimeout time.Duration `yaml:"request_timeout,omitempty"`
	LogLevel       string        `yaml:"log_level,omitempty"`
	LogFile        string        `yaml:"log_file,omitempty"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Endpoint:       DefaultEndpoint,
		RequestTimeout: DefaultRequestTimeout,
		LogLevel:       DefaultLogLevel,
	}
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, AppDirName, FileName)
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if file.Endpoint != "" {
		cfg.Endpoint = file.Endpoint
	}
	if file.RequestTimeout > 0 {
		cfg.RequestTimeout = file.RequestTimeout
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if file.LogFile != "" {
		cfg.LogFile = file.LogFile
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate checks that the endpoint is an absolute http(s) URL
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return ErrNoEndpoint
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", c.Endpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: want an absolute http or https URL", c.Endpoint)
	}
	return nil
}
