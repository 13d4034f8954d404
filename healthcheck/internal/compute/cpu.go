package compute

import (
	"log/slog"
	"time"

	"github.com/hostkit/hostkit/healthcheck/internal/probe"
)

// CPUReader is the part of probe.Probe the Sampler needs.
type CPUReader interface {
	ReadCPUTimes() (probe.CPUTimes, error)
}

// Sampler measures CPU utilisation over a fixed pause.
type Sampler struct {
	Reader CPUReader
	Delay  time.Duration

	// Sleep performs the pause. nil means time.Sleep; tests substitute a
	// no-op or a recorder.
	Sleep func(time.Duration)
}

// ReadCPUUsagePercent reads the counters, pauses for Delay, reads them again
// and returns the busy share of the interval. The pause is not cancellable.
func (s *Sampler) ReadCPUUsagePercent() (float64, error) {
	first, err := s.Reader.ReadCPUTimes()
	if err != nil {
		return 0, err
	}

	sleep := s.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	sleep(s.Delay)

	second, err := s.Reader.ReadCPUTimes()
	if err != nil {
		return 0, err
	}

	usage := CPUUsagePercent(first, second)
	slog.Debug("compute: cpu sampled",
		"delay", s.Delay,
		"total_delta", deltaOf(second.Total(), first.Total()),
		"usage_pct", usage,
	)
	return usage, nil
}

// CPUUsagePercent computes (Δtotal − Δidle) / Δtotal × 100 between two
// snapshots, rounded to two decimals. It returns 0 when Δtotal is zero or the
// counters went backwards (reset or wrap).
func CPUUsagePercent(first, second probe.CPUTimes) float64 {
	if second.Total() <= first.Total() {
		return 0
	}
	totalDelta := second.Total() - first.Total()
	idleDelta := deltaOf(second.IdleAll(), first.IdleAll())
	if idleDelta > totalDelta {
		idleDelta = totalDelta
	}
	return probe.Round2(float64(totalDelta-idleDelta) / float64(totalDelta) * 100)
}

// deltaOf returns the positive counter delta between current and previous.
// If current < previous (counter reset), returns 0.
func deltaOf(current, previous uint64) uint64 {
	if current < previous {
		return 0
	}
	return current - previous
}
