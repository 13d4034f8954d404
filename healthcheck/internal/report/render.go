package report

import (
	"io"

	"github.com/hostkit/hostkit/pkg/exposition"
)

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	return exposition.WriteJSON(w, r)
}

// WritePrometheus writes r in the Prometheus text format, suitable for the
// node_exporter textfile collector.
func WritePrometheus(w io.Writer, r *Report) error {
	return Metricset(r).WriteText(w)
}

// Metricset converts r into gauges. Check statuses are encoded as their
// severity: 0 OK, 1 WARNING, 2 CRITICAL.
func Metricset(r *Report) *exposition.Set {
	s := exposition.NewSet()
	label := exposition.L

	s.Gauge("hostkit_host_info", "Host and kernel description; value is always 1.", 1,
		label("host", r.Host),
		label("system", r.OS.System),
		label("release", r.OS.Release),
		label("machine", r.OS.Machine),
	)
	s.Gauge("hostkit_uptime_seconds", "Seconds since boot.", r.UptimeSeconds)
	s.Gauge("hostkit_cpu_usage_percent", "CPU busy share over the sample interval.", r.Metrics.CPUPercent)

	mem := r.Metrics.Memory
	s.Gauge("hostkit_memory_total_bytes", "MemTotal in bytes.", float64(mem.TotalBytes))
	s.Gauge("hostkit_memory_available_bytes", "MemAvailable in bytes.", float64(mem.AvailableBytes))
	s.Gauge("hostkit_memory_used_bytes", "MemTotal minus MemAvailable, floored at zero.", float64(mem.UsedBytes))

	disk := r.Metrics.Disk
	path := label("path", disk.Path)
	s.Gauge("hostkit_disk_total_bytes", "Filesystem size in bytes.", float64(disk.TotalBytes), path)
	s.Gauge("hostkit_disk_used_bytes", "Filesystem bytes in use.", float64(disk.UsedBytes), path)
	s.Gauge("hostkit_disk_free_bytes", "Filesystem bytes available to unprivileged users.", float64(disk.FreeBytes), path)

	const statusHelp = "Check status: 0 OK, 1 WARNING, 2 CRITICAL."
	s.Gauge("hostkit_check_status", statusHelp, float64(r.Checks.CPU.Status.Severity()), label("check", "cpu"))
	s.Gauge("hostkit_check_status", statusHelp, float64(r.Checks.Memory.Status.Severity()), label("check", "memory"))
	s.Gauge("hostkit_check_status", statusHelp, float64(r.Checks.Disk.Status.Severity()), label("check", "disk"))
	s.Gauge("hostkit_overall_status", statusHelp, float64(r.OverallStatus.Severity()))

	return s
}
