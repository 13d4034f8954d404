// Package config holds the healthcheck settings: procfs root, disk path,
// CPU sample delay, the warn/crit thresholds for each check, and the log
// level.
//
// Default() returns the zero-file configuration (proc /proc, disk /, 200ms
// sample delay, warn 80 / crit 95 for cpu, memory and disk, log level warn).
// Load(path) reads an optional YAML file over those defaults and validates
// it. No file is read unless the CLI is given --config.
package config
