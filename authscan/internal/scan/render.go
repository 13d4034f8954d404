package scan

import (
	"io"

	"github.com/hostkit/hostkit/authscan/internal/patterns"
	"github.com/hostkit/hostkit/pkg/exposition"
)

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r *Result) error {
	return exposition.WriteJSON(w, r)
}

// WritePrometheus writes r in the Prometheus text format.
func WritePrometheus(w io.Writer, r *Result) error {
	return Metricset(r).WriteText(w)
}

// Metricset converts r into counters and leaderboard gauges.
func Metricset(r *Result) *exposition.Set {
	s := exposition.NewSet()
	counts := r.Summary.Counts

	for _, c := range []patterns.Category{
		patterns.FailedPassword,
		patterns.FailedPublickey,
		patterns.FailedPreauth,
		patterns.AcceptedPassword,
		patterns.InvalidUser,
	} {
		s.Counter("authscan_events_total", "Classified sshd events by category.",
			float64(counts.Get(c)), exposition.L("category", string(c)))
	}
	s.Counter("authscan_failed_auth_attempts_total", "Sum of failure category events.",
		float64(counts.FailedAuthAttempts))
	s.Counter("authscan_lines_scanned_total", "Lines read from the log.", float64(r.LinesScanned))

	for _, e := range r.Summary.Top.IPs {
		s.Gauge("authscan_top_source_events", "Events per source address, top entries only.",
			float64(e.Count), exposition.L("ip", e.Key))
	}
	for _, e := range r.Summary.Top.Users {
		s.Gauge("authscan_top_user_events", "Events per user name, top entries only.",
			float64(e.Count), exposition.L("user", e.Key))
	}
	return s
}
