package scan

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/hostkit/hostkit/authscan/internal/patterns"
	"github.com/hostkit/hostkit/pkg/exposition"
	"github.com/hostkit/hostkit/pkg/textfile"
)

// DefaultTopN is the leaderboard length used by the CLI.
const DefaultTopN = 10

// Counts holds the per-category event counters. Categories outside the
// active pattern set stay at zero.
type Counts struct {
	FailedPassword   int `json:"failed_password"`
	FailedPublickey  int `json:"failed_publickey"`
	FailedPreauth    int `json:"failed_preauth"`
	AcceptedPassword int `json:"accepted_password"`
	InvalidUser      int `json:"invalid_user"`

	// FailedAuthAttempts is the sum of every failure category.
	FailedAuthAttempts int `json:"failed_auth_attempts"`
}

// Get returns the counter for c.
func (c Counts) Get(cat patterns.Category) int {
	switch cat {
	case patterns.FailedPassword:
		return c.FailedPassword
	case patterns.FailedPublickey:
		return c.FailedPublickey
	case patterns.FailedPreauth:
		return c.FailedPreauth
	case patterns.AcceptedPassword:
		return c.AcceptedPassword
	case patterns.InvalidUser:
		return c.InvalidUser
	}
	return 0
}

func (c *Counts) inc(cat patterns.Category) {
	switch cat {
	case patterns.FailedPassword:
		c.FailedPassword++
	case patterns.FailedPublickey:
		c.FailedPublickey++
	case patterns.FailedPreauth:
		c.FailedPreauth++
	case patterns.AcceptedPassword:
		c.AcceptedPassword++
	case patterns.InvalidUser:
		c.InvalidUser++
	}
}

// Summary is the outcome of scanning one log.
type Summary struct {
	Counts Counts
	IPs    *FrequencyTable
	Users  *FrequencyTable
}

// Top holds the ip and user leaderboards.
type Top struct {
	IPs   []Entry `json:"ips"`
	Users []Entry `json:"users"`
}

// Top returns both leaderboards truncated to n entries.
func (s *Summary) Top(n int) Top {
	return Top{IPs: s.IPs.TopN(n), Users: s.Users.TopN(n)}
}

// ScanAuthLog classifies every line with set and tallies the events.
func ScanAuthLog(set *patterns.Set, lines []string) *Summary {
	s := &Summary{
		IPs:   NewFrequencyTable(),
		Users: NewFrequencyTable(),
	}
	for _, line := range lines {
		ev, ok := set.ClassifyLine(line)
		if !ok {
			continue
		}
		s.Counts.inc(ev.Category)
		s.IPs.Inc(ev.IP)
		s.Users.Inc(ev.User)
	}
	for _, c := range set.FailureCategories() {
		s.Counts.FailedAuthAttempts += s.Counts.Get(c)
	}
	return s
}

// ReadLines reads the log at path. Errors wrap textfile.ErrNotFound or
// textfile.ErrPermissionDenied so callers can tell them apart.
func ReadLines(path string) ([]string, error) {
	return textfile.ReadLines(path)
}

// Result is the document written to stdout.
type Result struct {
	TimestampUTC string        `json:"timestamp_utc"`
	LogPath      string        `json:"log_path"`
	LinesScanned int           `json:"lines_scanned"`
	Summary      ResultSummary `json:"summary"`
}

// ResultSummary is the serialised form of a Summary.
type ResultSummary struct {
	Counts Counts `json:"counts"`
	Top    Top    `json:"top"`
}

// Options controls Run.
type Options struct {
	LogPath string
	Set     *patterns.Set
	TopN    int

	// Now is the result clock; nil means time.Now.
	Now func() time.Time
}

// Run reads, scans and summarises the log named in opts.
func Run(opts Options) (*Result, error) {
	lines, err := ReadLines(opts.LogPath)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(opts.LogPath)
	if err != nil {
		abs = opts.LogPath
	}

	summary := ScanAuthLog(opts.Set, lines)
	slog.Debug("scan: auth log scanned",
		"path", abs,
		"pattern_set", opts.Set.Name,
		"lines", len(lines),
		"distinct_ips", summary.IPs.Len(),
		"distinct_users", summary.Users.Len(),
	)

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Result{
		TimestampUTC: exposition.Timestamp(now()),
		LogPath:      abs,
		LinesScanned: len(lines),
		Summary: ResultSummary{
			Counts: summary.Counts,
			Top:    summary.Top(opts.TopN),
		},
	}, nil
}
