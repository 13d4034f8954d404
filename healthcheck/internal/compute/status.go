package compute

// Status is a severity tier derived from a value and two thresholds.
type Status string

// Status constants, ordered by increasing severity.
const (
	StatusOK       Status = "OK"
	StatusWarning  Status = "WARNING"
	StatusCritical Status = "CRITICAL"
)

// Severity returns 0 for OK, 1 for WARNING, 2 for CRITICAL. Unknown values
// rank as OK.
func (s Status) Severity() int {
	switch s {
	case StatusCritical:
		return 2
	case StatusWarning:
		return 1
	default:
		return 0
	}
}

// Metric is one evaluated check.
type Metric struct {
	Value  float64 `json:"value"`
	Status Status  `json:"status"`
	WarnAt float64 `json:"warn_at"`
	CritAt float64 `json:"crit_at"`
}

// EvaluateThreshold classifies value against warn and crit. Both bounds are
// inclusive: value == crit is CRITICAL, value == warn is WARNING.
func EvaluateThreshold(value, warn, crit float64) Metric {
	return Metric{
		Value:  value,
		Status: statusFor(value, warn, crit),
		WarnAt: warn,
		CritAt: crit,
	}
}

func statusFor(value, warn, crit float64) Status {
	switch {
	case value >= crit:
		return StatusCritical
	case value >= warn:
		return StatusWarning
	default:
		return StatusOK
	}
}

// Overall returns the most severe status in statuses, scanning in order and
// stopping at the first CRITICAL. An empty list is OK.
func Overall(statuses ...Status) Status {
	overall := StatusOK
	for _, s := range statuses {
		if s == StatusCritical {
			return StatusCritical
		}
		if s == StatusWarning {
			overall = StatusWarning
		}
	}
	return overall
}
