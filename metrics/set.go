// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package metrics

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricNameRe = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)
	labelRe      = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_]*)="((?:[^"\\]|\\.)*)"$`)
)

// Set is a group of metrics registered in one prometheus registry. Metrics are
// addressed by their full name including constant labels, e.g. foo{bar="baz"}.
type Set struct {
	mu       sync.Mutex
	registry *prometheus.Registry
	metrics  map[string]prometheus.Collector
}

var defaultSet = NewSet()

func NewSet() *Set {
	return &Set{
		registry: prometheus.NewRegistry(),
		metrics:  make(map[string]prometheus.Collector),
	}
}

// DefaultRegistry is the registry behind the package level constructors.
func DefaultRegistry() *prometheus.Registry { return defaultSet.registry }

// parseMetric splits foo{bar="baz",aaa="b"} into the name and its labels.
func parseMetric(s string) (string, prometheus.Labels, error) {
	name, rest, hasLabels := strings.Cut(s, "{")
	if !metricNameRe.MatchString(name) {
		return "", nil, fmt.Errorf("invalid metric name %q", s)
	}
	if !hasLabels {
		return name, nil, nil
	}
	if !strings.HasSuffix(rest, "}") {
		return "", nil, fmt.Errorf("missing closing brace in %q", s)
	}
	rest = strings.TrimSuffix(rest, "}")
	labels := prometheus.Labels{}
	if rest == "" {
		return name, labels, nil
	}
	for _, pair := range splitLabelPairs(rest) {
		m := labelRe.FindStringSubmatch(strings.TrimSpace(pair))
		if m == nil {
			return "", nil, fmt.Errorf("invalid label %q in %q", pair, s)
		}
		labels[m[1]] = strings.ReplaceAll(m[2], `\"`, `"`)
	}
	return name, labels, nil
}

// splitLabelPairs splits on commas outside quoted values.
func splitLabelPairs(s string) []string {
	var (
		out     []string
		start   int
		quoted  bool
		escaped bool
	)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			quoted = !quoted
		case c == ',' && !quoted:
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}

// canonicalName orders labels so that equivalent names share one metric.
func canonicalName(name string, labels prometheus.Labels) string {
	if len(labels) == 0 {
		return name
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%s=%q", k, labels[k])
	}
	sb.WriteByte('}')
	return sb.String()
}

func (s *Set) getOrCreate(fullName string, mustBeNew bool, create func(opts prometheus.Opts) prometheus.Collector) (prometheus.Collector, error) {
	name, labels, err := parseMetric(fullName)
	if err != nil {
		return nil, err
	}
	key := canonicalName(name, labels)

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.metrics[key]; ok {
		if mustBeNew {
			return nil, fmt.Errorf("metric %q is already registered", fullName)
		}
		return c, nil
	}
	c := create(prometheus.Opts{Name: name, Help: name, ConstLabels: labels})
	if err := s.registry.Register(c); err != nil {
		return nil, err
	}
	s.metrics[key] = c
	return c, nil
}

func (s *Set) NewCounter(name string) (prometheus.Counter, error) {
	return s.counter(name, true)
}

func (s *Set) GetOrCreateCounter(name string) (prometheus.Counter, error) {
	return s.counter(name, false)
}

func (s *Set) counter(name string, mustBeNew bool) (prometheus.Counter, error) {
	c, err := s.getOrCreate(name, mustBeNew, func(opts prometheus.Opts) prometheus.Collector {
		return prometheus.NewCounter(prometheus.CounterOpts(opts))
	})
	if err != nil {
		return nil, err
	}
	counter, ok := c.(prometheus.Counter)
	if !ok {
		return nil, fmt.Errorf("metric %q is not a counter", name)
	}
	return counter, nil
}

func (s *Set) NewGauge(name string) (prometheus.Gauge, error) {
	return s.gauge(name, true)
}

func (s *Set) GetOrCreateGauge(name string) (prometheus.Gauge, error) {
	return s.gauge(name, false)
}

func (s *Set) gauge(name string, mustBeNew bool) (prometheus.Gauge, error) {
	c, err := s.getOrCreate(name, mustBeNew, func(opts prometheus.Opts) prometheus.Collector {
		return prometheus.NewGauge(prometheus.GaugeOpts(opts))
	})
	if err != nil {
		return nil, err
	}
	gauge, ok := c.(prometheus.Gauge)
	if !ok {
		return nil, fmt.Errorf("metric %q is not a gauge", name)
	}
	return gauge, nil
}

func (s *Set) NewHistogram(name string) (prometheus.Histogram, error) {
	return s.histogram(name, true)
}

func (s *Set) GetOrCreateHistogram(name string) (prometheus.Histogram, error) {
	return s.histogram(name, false)
}

func (s *Set) histogram(name string, mustBeNew bool) (prometheus.Histogram, error) {
	c, err := s.getOrCreate(name, mustBeNew, func(opts prometheus.Opts) prometheus.Collector {
		return prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        opts.Name,
			Help:        opts.Help,
			ConstLabels: opts.ConstLabels,
			Buckets:     prometheus.DefBuckets,
		})
	})
	if err != nil {
		return nil, err
	}
	h, ok := c.(prometheus.Histogram)
	if !ok {
		return nil, fmt.Errorf("metric %q is not a histogram", name)
	}
	return h, nil
}
