package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultProcRoot    = "/proc"
	DefaultDiskPath    = "/"
	DefaultSampleDelay = 200 * time.Millisecond
	DefaultWarnPercent = 80.0
	DefaultCritPercent = 95.0
	DefaultLogLevel    = "warn"
)

// Config is the top-level healthcheck configuration.
type Config struct {
	// ProcRoot is the mount point of procfs. Tests point it at a fixture tree.
	ProcRoot string `yaml:"proc_root"`

	// DiskPath is the filesystem path whose usage is reported.
	DiskPath string `yaml:"disk_path"`

	// SampleDelay is the pause between the two /proc/stat reads used to
	// compute CPU utilisation.
	SampleDelay time.Duration `yaml:"sample_delay"`

	// Thresholds holds the warn/crit pair for each check.
	Thresholds Thresholds `yaml:"thresholds"`

	// LogLevel is one of: debug | info | warn | error.
	LogLevel string `yaml:"log_level"`
}

// Thresholds groups the per-check threshold pairs.
type Thresholds struct {
	CPU    Threshold `yaml:"cpu"`
	Memory Threshold `yaml:"memory"`
	Disk   Threshold `yaml:"disk"`
}

// Threshold is a warn/crit pair in percent. A value equal to a bound counts
// as the more severe tier.
type Threshold struct {
	Warn float64 `yaml:"warn"`
	Crit float64 `yaml:"crit"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	pair := Threshold{Warn: DefaultWarnPercent, Crit: DefaultCritPercent}
	return &Config{
		ProcRoot:    DefaultProcRoot,
		DiskPath:    DefaultDiskPath,
		SampleDelay: DefaultSampleDelay,
		Thresholds:  Thresholds{CPU: pair, Memory: pair, Disk: pair},
		LogLevel:    DefaultLogLevel,
	}
}

// Load reads and parses the YAML config file at path.
// Missing optional fields keep their defaults.
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

// Validate checks structural constraints. Load calls it; callers that
// modify a Config after loading (flag overrides) should call it again.
func (c *Config) Validate() error {
	if c.ProcRoot == "" {
		return fmt.Errorf("proc_root is required")
	}
	if c.DiskPath == "" {
		return fmt.Errorf("disk_path is required")
	}
	if c.SampleDelay < 0 {
		return fmt.Errorf("sample_delay must not be negative")
	}
	for name, th := range map[string]Threshold{
		"cpu":    c.Thresholds.CPU,
		"memory": c.Thresholds.Memory,
		"disk":   c.Thresholds.Disk,
	} {
		if th.Warn < 0 || th.Crit < 0 {
			return fmt.Errorf("thresholds.%s: values must not be negative", name)
		}
		if th.Warn > th.Crit {
			return fmt.Errorf("thresholds.%s: warn (%.2f) exceeds crit (%.2f)", name, th.Warn, th.Crit)
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
