package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hostkit/hostkit/healthcheck/internal/compute"
	"github.com/hostkit/hostkit/healthcheck/internal/config"
	"github.com/hostkit/hostkit/healthcheck/internal/probe"
	"github.com/hostkit/hostkit/pkg/exposition"
)

// Report is the full health snapshot written to stdout.
type Report struct {
	TimestampUTC  string         `json:"timestamp_utc"`
	Host          string         `json:"host"`
	OS            probe.OSInfo   `json:"os"`
	UptimeSeconds float64        `json:"uptime_seconds"`
	Metrics       Metrics        `json:"metrics"`
	Checks        Checks         `json:"checks"`
	OverallStatus compute.Status `json:"overall_status"`
}

// Metrics holds the raw readings behind the checks.
type Metrics struct {
	CPUPercent float64           `json:"cpu_percent"`
	Memory     probe.MemoryUsage `json:"memory"`
	Disk       probe.DiskUsage   `json:"disk"`
}

// Checks holds one threshold evaluation per metric.
type Checks struct {
	CPU    compute.Metric `json:"cpu"`
	Memory compute.Metric `json:"memory"`
	Disk   compute.Metric `json:"disk"`
}

// Source is every host reading a report needs. *probe.Probe implements it.
type Source interface {
	compute.CPUReader
	ReadUptimeSeconds() (float64, error)
	ReadDiskUsage(path string) (probe.DiskUsage, error)
	ReadMemoryUsage() (probe.MemoryUsage, error)
	ReadHostname() (string, error)
	ReadOSInfo() (probe.OSInfo, error)
}

// Builder assembles a Report from a Source.
type Builder struct {
	source  Source
	sampler *compute.Sampler
	cfg     *config.Config

	// now is the report clock; tests replace it.
	now func() time.Time
}

// NewBuilder returns a Builder reading from src with the thresholds, disk
// path and sample delay from cfg.
func NewBuilder(src Source, cfg *config.Config) *Builder {
	return &Builder{
		source:  src,
		sampler: &compute.Sampler{Reader: src, Delay: cfg.SampleDelay},
		cfg:     cfg,
		now:     time.Now,
	}
}

// Build collects every reading and evaluates the checks. Any read failure
// aborts the whole snapshot; there is no partial report.
func (b *Builder) Build() (*Report, error) {
	uptime, err := b.source.ReadUptimeSeconds()
	if err != nil {
		return nil, fmt.Errorf("uptime: %w", err)
	}
	disk, err := b.source.ReadDiskUsage(b.cfg.DiskPath)
	if err != nil {
		return nil, fmt.Errorf("disk usage: %w", err)
	}
	cpu, err := b.sampler.ReadCPUUsagePercent()
	if err != nil {
		return nil, fmt.Errorf("cpu usage: %w", err)
	}
	mem, err := b.source.ReadMemoryUsage()
	if err != nil {
		return nil, fmt.Errorf("memory usage: %w", err)
	}

	timestamp := exposition.Timestamp(b.now())

	host, err := b.source.ReadHostname()
	if err != nil {
		return nil, err
	}
	osInfo, err := b.source.ReadOSInfo()
	if err != nil {
		return nil, fmt.Errorf("os info: %w", err)
	}

	th := b.cfg.Thresholds
	checks := Checks{
		CPU:    compute.EvaluateThreshold(cpu, th.CPU.Warn, th.CPU.Crit),
		Memory: compute.EvaluateThreshold(mem.PercentUsed, th.Memory.Warn, th.Memory.Crit),
		Disk:   compute.EvaluateThreshold(disk.PercentUsed, th.Disk.Warn, th.Disk.Crit),
	}
	overall := compute.Overall(checks.CPU.Status, checks.Memory.Status, checks.Disk.Status)

	slog.Debug("report: snapshot built",
		"host", host,
		"cpu", checks.CPU.Status,
		"memory", checks.Memory.Status,
		"disk", checks.Disk.Status,
		"overall", overall,
	)

	return &Report{
		TimestampUTC:  timestamp,
		Host:          host,
		OS:            osInfo,
		UptimeSeconds: uptime,
		Metrics: Metrics{
			CPUPercent: cpu,
			Memory:     mem,
			Disk:       disk,
		},
		Checks:        checks,
		OverallStatus: overall,
	}, nil
}
