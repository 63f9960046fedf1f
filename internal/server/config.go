// Package server exposes the year fraction calculations over HTTP.
package server

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/iwvelando/yearfrac/internal/config"
	"github.com/iwvelando/yearfrac/pkg/constants"
	"gopkg.in/yaml.v3"
)

const defaultRequestTimeout = 15 * time.Second

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address         string               `yaml:"address"`
	MaxUploadSize   string               `yaml:"maxUploadSize"`
	RequestTimeout  string               `yaml:"requestTimeout"`
	Logging         config.LoggingConfig `yaml:"logging"`
	uploadSizeBytes int64
	requestTimeout  time.Duration
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Address:         constants.DefaultServerAddress,
		MaxUploadSize:   strconv.FormatInt(constants.DefaultMaxUploadSizeBytes, 10),
		RequestTimeout:  defaultRequestTimeout.String(),
		uploadSizeBytes: constants.DefaultMaxUploadSizeBytes,
		requestTimeout:  defaultRequestTimeout,
	}
}

// LoadConfig loads the server configuration from YAML. If the file does not exist,
// defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UploadSizeBytes returns the configured upload size in bytes.
func (c *Config) UploadSizeBytes() int64 {
	return c.uploadSizeBytes
}

// Timeout returns the read and write timeout applied to every request.
func (c *Config) Timeout() time.Duration {
	return c.requestTimeout
}

// NewHTTPServer wraps handler in an http.Server using the configured address
// and timeouts.
func (c *Config) NewHTTPServer(handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         c.Address,
		Handler:      handler,
		ReadTimeout:  c.requestTimeout,
		WriteTimeout: c.requestTimeout,
		IdleTimeout:  4 * c.requestTimeout,
	}
}

func (c *Config) normalize() error {
	if strings.TrimSpace(c.Address) == "" {
		c.Address = constants.DefaultServerAddress
	}

	bytes, err := ParseSize(c.MaxUploadSize)
	if err != nil {
		return err
	}
	if bytes <= 0 {
		bytes = constants.DefaultMaxUploadSizeBytes
	}
	c.uploadSizeBytes = bytes

	timeout := strings.TrimSpace(c.RequestTimeout)
	if timeout == "" {
		c.requestTimeout = defaultRequestTimeout
		return nil
	}
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return fmt.Errorf("invalid request timeout %q: %w", timeout, err)
	}
	if d <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", timeout)
	}
	c.requestTimeout = d
	return nil
}

// ParseSize converts a human-friendly byte string (e.g., "256K", "10M") into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(value))
	if trimmed == "" {
		return constants.DefaultMaxUploadSizeBytes, nil
	}

	idx := len(trimmed)
	for idx > 0 && !unicode.IsDigit(rune(trimmed[idx-1])) {
		idx--
	}
	numPart := strings.TrimSpace(trimmed[:idx])
	unitPart := strings.TrimSpace(trimmed[idx:])
	if numPart == "" {
		return 0, fmt.Errorf("invalid size: %s", value)
	}

	n, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}

	multipliers := map[string]int64{
		"": 1, "B": 1,
		"K": 1 << 10, "KB": 1 << 10,
		"M": 1 << 20, "MB": 1 << 20,
	}
	multiplier, ok := multipliers[unitPart]
	if !ok {
		return 0, fmt.Errorf("unsupported size unit %q", unitPart)
	}

	result := n * multiplier
	if result < 0 || (n != 0 && result/n != multiplier) {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return result, nil
}
