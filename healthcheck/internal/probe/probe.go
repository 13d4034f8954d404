package probe

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hostkit/hostkit/pkg/textfile"
)

// kibibyte converts /proc/meminfo "kB" values to bytes.
const kibibyte = 1024

// Probe reads point-in-time counters from a procfs tree.
type Probe struct {
	procRoot string
}

// New returns a Probe reading from procRoot (normally "/proc").
func New(procRoot string) *Probe {
	return &Probe{procRoot: procRoot}
}

func (p *Probe) path(name string) string {
	return filepath.Join(p.procRoot, name)
}

// ReadDiskUsage reports space on the filesystem that holds path. It is not
// affected by the procfs root.
func (p *Probe) ReadDiskUsage(path string) (DiskUsage, error) {
	return statDisk(path)
}

// ReadOSInfo returns the kernel name, release, version and machine.
func (p *Probe) ReadOSInfo() (OSInfo, error) {
	return uname()
}

// ReadHostname returns the kernel's hostname.
func (p *Probe) ReadHostname() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("probe: hostname: %w", err)
	}
	return name, nil
}

// ReadUptimeSeconds returns the first field of <proc>/uptime.
func (p *Probe) ReadUptimeSeconds() (float64, error) {
	path := p.path("uptime")
	line, err := textfile.ReadFirstLine(path)
	if err != nil {
		return 0, err
	}
	return ParseUptime(path, line)
}

// ParseUptime parses a "<uptime> <idle>" line. path is only used in errors.
func ParseUptime(path, line string) (float64, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, textfile.ParseError(path, "empty uptime line")
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, textfile.ParseError(path, "uptime %q: %v", fields[0], err)
	}
	return v, nil
}

// ReadCPUTimes returns the aggregate "cpu" counters from <proc>/stat.
func (p *Probe) ReadCPUTimes() (CPUTimes, error) {
	path := p.path("stat")
	line, err := textfile.ReadFirstLine(path)
	if err != nil {
		return CPUTimes{}, err
	}
	return ParseCPULine(path, line)
}

// ParseCPULine parses the aggregate cpu line of /proc/stat, e.g.
//
//	cpu  3357 0 4313 1362393 0 0 0 0 0 0
//
// Fields after idle were added in later kernels; missing ones count as 0.
func ParseCPULine(path, line string) (CPUTimes, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 || parts[0] != "cpu" {
		return CPUTimes{}, textfile.ParseError(path, "cpu line missing")
	}

	values := make([]uint64, 0, len(parts)-1)
	for _, f := range parts[1:] {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return CPUTimes{}, textfile.ParseError(path, "cpu field %q: %v", f, err)
		}
		values = append(values, v)
	}
	if len(values) < 4 {
		return CPUTimes{}, textfile.ParseError(path, "cpu line has %d fields, want at least 4", len(values))
	}

	field := func(i int) uint64 {
		if i < len(values) {
			return values[i]
		}
		return 0
	}
	return CPUTimes{
		User:    values[0],
		Nice:    values[1],
		System:  values[2],
		Idle:    values[3],
		IOWait:  field(4),
		IRQ:     field(5),
		SoftIRQ: field(6),
		Steal:   field(7),
	}, nil
}

// ReadMemoryUsage derives memory usage from <proc>/meminfo.
func (p *Probe) ReadMemoryUsage() (MemoryUsage, error) {
	path := p.path("meminfo")
	lines, err := textfile.ReadLines(path)
	if err != nil {
		return MemoryUsage{}, err
	}
	info, err := ParseMeminfo(path, lines)
	if err != nil {
		return MemoryUsage{}, err
	}
	return MemoryUsageFrom(info["MemTotal"], info["MemAvailable"]), nil
}

// ParseMeminfo parses "Key:   value kB" lines into a map of raw values (kB
// for sized entries). Blank lines are ignored.
func ParseMeminfo(path string, lines []string) (map[string]uint64, error) {
	info := make(map[string]uint64, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, textfile.ParseError(path, "line %q: missing colon", line)
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return nil, textfile.ParseError(path, "%s: missing value", key)
		}
		v, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, textfile.ParseError(path, "%s: %v", key, err)
		}
		info[key] = v
	}
	return info, nil
}

// MemoryUsageFrom converts kB totals to a MemoryUsage. Used memory is
// clamped at zero because MemAvailable can exceed MemTotal on some kernels.
func MemoryUsageFrom(totalKB, availableKB uint64) MemoryUsage {
	var usedKB uint64
	if totalKB > availableKB {
		usedKB = totalKB - availableKB
	}
	return MemoryUsage{
		TotalBytes:     totalKB * kibibyte,
		AvailableBytes: availableKB * kibibyte,
		UsedBytes:      usedKB * kibibyte,
		PercentUsed:    Percent(usedKB, totalKB),
	}
}

// DiskUsageFrom builds a DiskUsage from statfs block counts, using the same
// accounting as df: used excludes reserved blocks, free is what an
// unprivileged user can still allocate.
func DiskUsageFrom(path string, blockSize, blocks, bfree, bavail uint64) DiskUsage {
	total := blocks * blockSize
	used := (blocks - min(bfree, blocks)) * blockSize
	return DiskUsage{
		Path:        path,
		TotalBytes:  total,
		UsedBytes:   used,
		FreeBytes:   bavail * blockSize,
		PercentUsed: Percent(used, total),
	}
}

// Percent returns part/whole*100 rounded to two decimals, or 0 when whole
// is zero.
func Percent(part, whole uint64) float64 {
	if whole == 0 {
		return 0
	}
	return Round2(float64(part) / float64(whole) * 100)
}

// Round2 rounds v to two decimal places, halves to even on the exact
// decimal value.
func Round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
