package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hostkit/hostkit/authscan/internal/patterns"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultLogPath    = "/var/log/auth.log"
	DefaultPatternSet = patterns.SetExtended
	DefaultTopN       = 10
	DefaultLogLevel   = "warn"
)

// Config is the top-level authscan configuration.
type Config struct {
	// LogPath is the sshd log to scan.
	LogPath string `yaml:"log_path"`

	// PatternSet selects the classifier: extended | base.
	PatternSet string `yaml:"pattern_set"`

	// TopN is the length of the ip and user leaderboards.
	TopN int `yaml:"top_n"`

	// LogLevel is one of: debug | info | warn | error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogPath:    DefaultLogPath,
		PatternSet: DefaultPatternSet,
		TopN:       DefaultTopN,
		LogLevel:   DefaultLogLevel,
	}
}

// Load reads and parses the YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Validate checks structural constraints.
func (c *Config) Validate() error {
	if c.LogPath == "" {
		return fmt.Errorf("log_path is required")
	}
	if _, err := patterns.Lookup(c.PatternSet); err != nil {
		return fmt.Errorf("pattern_set: %w", err)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
