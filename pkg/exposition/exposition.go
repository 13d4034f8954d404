// Package exposition renders hostkit results for machines: pretty-printed
// JSON, or the Prometheus text exposition format understood by the
// node_exporter textfile collector.
package exposition

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

// Format selects how a tool writes its result to stdout.
type Format string

const (
	FormatJSON       Format = "json"
	FormatPrometheus Format = "prometheus"
)

// ParseFormat accepts "json", "prometheus" or the short form "prom".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "prometheus", "prom":
		return FormatPrometheus, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json|prometheus)", s)
	}
}

// TimestampLayout is ISO-8601 with microseconds and a numeric UTC offset,
// e.g. 2024-05-01T09:30:00.123456+00:00.
const TimestampLayout = "2006-01-02T15:04:05.000000-07:00"

// Timestamp formats t in UTC using TimestampLayout.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// WriteJSON encodes v as JSON indented by two spaces, followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// Label is one name="value" pair attached to a sample.
type Label struct {
	Name  string
	Value string
}

// L is shorthand for Label{name, value}.
func L(name, value string) Label {
	return Label{Name: name, Value: value}
}

// Set collects samples and groups them into metric families by name.
// Samples keep the order they were added in; families are written sorted by
// name.
type Set struct {
	families map[string]*dto.MetricFamily
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{families: make(map[string]*dto.MetricFamily)}
}

// Gauge adds a gauge sample.
func (s *Set) Gauge(name, help string, value float64, labels ...Label) {
	s.add(name, help, dto.MetricType_GAUGE, &dto.Metric{
		Label: labelPairs(labels),
		Gauge: &dto.Gauge{Value: proto.Float64(value)},
	})
}

// Counter adds a counter sample.
func (s *Set) Counter(name, help string, value float64, labels ...Label) {
	s.add(name, help, dto.MetricType_COUNTER, &dto.Metric{
		Label:   labelPairs(labels),
		Counter: &dto.Counter{Value: proto.Float64(value)},
	})
}

// Families returns the collected families sorted by name.
func (s *Set) Families() []*dto.MetricFamily {
	out := make([]*dto.MetricFamily, 0, len(s.families))
	for _, mf := range s.families {
		out = append(out, mf)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GetName() < out[j].GetName()
	})
	return out
}

// WriteText writes every family in the Prometheus text format.
func (s *Set) WriteText(w io.Writer) error {
	for _, mf := range s.Families() {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("exposition: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// add appends m to the family called name, creating it on first use.
// The first registration fixes the family's help text and type.
func (s *Set) add(name, help string, typ dto.MetricType, m *dto.Metric) {
	mf, ok := s.families[name]
	if !ok {
		mf = &dto.MetricFamily{
			Name: proto.String(name),
			Help: proto.String(help),
			Type: typ.Enum(),
		}
		s.families[name] = mf
	}
	mf.Metric = append(mf.Metric, m)
}

func labelPairs(labels []Label) []*dto.LabelPair {
	if len(labels) == 0 {
		return nil
	}
	pairs := make([]*dto.LabelPair, 0, len(labels))
	for _, l := range labels {
		pairs = append(pairs, &dto.LabelPair{
			Name:  proto.String(l.Name),
			Value: proto.String(l.Value),
		})
	}
	return pairs
}
