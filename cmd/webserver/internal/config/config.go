package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPort is used when no port is configured.
const DefaultPort = 6789

// Config holds all application configuration
type Config struct {
	// Core
	Debug     bool   `toml:"debug" yaml:"debug"`
	LogFormat string `toml:"log_format" yaml:"log_format"`

	// Server
	Port           int           `toml:"port" yaml:"port"`
	Root           string        `toml:"root" yaml:"root"`
	MaxConnections int           `toml:"max_connections" yaml:"max_connections"`
	ReadTimeout    time.Duration `toml:"-" yaml:"-"`

	// MemoryFiles serves a fixed "name=content,..." set from memory instead
	// of Root when not empty.
	MemoryFiles string `toml:"memory_files" yaml:"memory_files"`

	// Responses
	LegacyContentType bool `toml:"legacy_content_type" yaml:"legacy_content_type"`

	// Health API, disabled when empty
	HealthServerPort string `toml:"health_server_port" yaml:"health_server_port"`
}

// fileConfig mirrors Config for file decoding. Durations are written as
// strings such as "30s".
type fileConfig struct {
	Config      `toml:",inline" yaml:",inline"`
	ReadTimeout string `toml:"read_timeout" yaml:"read_timeout"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Port: DefaultPort,
		Root: ".",
	}
}

// Load builds the configuration from defaults, the optional file at path and
// the environment, in increasing order of precedence.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "unable to load configuration file")
	}

	fc := fileConfig{Config: *c}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		return errors.Errorf("unsupported configuration file extension: %q", ext)
	}
	if err != nil {
		return errors.Wrapf(err, "unable to decode %s", path)
	}

	if fc.ReadTimeout != "" {
		d, err := time.ParseDuration(fc.ReadTimeout)
		if err != nil {
			return errors.Wrap(err, "invalid read_timeout")
		}
		fc.Config.ReadTimeout = d
	}
	*c = fc.Config
	return nil
}

func (c *Config) applyEnv() error {
	c.Debug = getEnvBool("DEBUG", c.Debug)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
	c.Root = getEnv("SERVE_ROOT", c.Root)
	c.MemoryFiles = getEnv("MEMORY_FILES", c.MemoryFiles)
	c.LegacyContentType = getEnvBool("LEGACY_CONTENT_TYPE", c.LegacyContentType)
	c.HealthServerPort = getEnv("HEALTH_SERVER_PORT", c.HealthServerPort)
	c.MaxConnections = getEnvInt("MAX_CONNECTIONS", c.MaxConnections)

	if value := os.Getenv("PORT"); value != "" {
		port, err := ParsePort(value)
		if err != nil {
			return errors.Wrap(err, "invalid PORT")
		}
		c.Port = port
	}

	if value := os.Getenv("READ_TIMEOUT"); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrap(err, "invalid READ_TIMEOUT")
		}
		c.ReadTimeout = d
	}
	return nil
}

// Validate ensures configuration is coherent
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.Errorf("port out of range: %d", c.Port)
	}
	if c.MaxConnections < 0 {
		return errors.Errorf("MAX_CONNECTIONS must not be negative: %d", c.MaxConnections)
	}
	if c.ReadTimeout < 0 {
		return errors.Errorf("READ_TIMEOUT must not be negative: %s", c.ReadTimeout)
	}
	if c.MemoryFiles != "" {
		return nil
	}

	info, err := os.Stat(c.Root)
	if err != nil {
		return errors.Wrap(err, "invalid serving root")
	}
	if !info.IsDir() {
		return errors.Errorf("serving root is not a directory: %s", c.Root)
	}
	return nil
}

// ParsePort parses a listen port given on the command line or in the
// environment.
func ParsePort(value string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.Errorf("invalid port %q", value)
	}
	if port < 1 || port > 65535 {
		return 0, errors.Errorf("port out of range: %d", port)
	}
	return port, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}
