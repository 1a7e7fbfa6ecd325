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
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseMetric(t *testing.T) {
	name, labels, err := parseMetric(`engine_calls{method="newPayload",status="VALID"}`)
	require.NoError(t, err)
	require.Equal(t, "engine_calls", name)
	require.Equal(t, "newPayload", labels["method"])
	require.Equal(t, "VALID", labels["status"])

	_, labels, err = parseMetric(`x{v="a,b"}`)
	require.NoError(t, err)
	require.Equal(t, "a,b", labels["v"])

	for _, bad := range []string{"", "1abc", `foo{bar="baz"`, `foo{bar=baz}`, "foo bar"} {
		_, _, err := parseMetric(bad)
		require.Error(t, err, bad)
	}
}

func TestGetOrCreateReturnsSameMetric(t *testing.T) {
	s := NewSet()
	a, err := s.GetOrCreateCounter(`hits{b="2",a="1"}`)
	require.NoError(t, err)
	b, err := s.GetOrCreateCounter(`hits{a="1",b="2"}`)
	require.NoError(t, err)
	a.Inc()
	b.Inc()
	require.Equal(t, 2.0, (&counter{a}).GetValue())

	_, err = s.NewCounter(`hits{a="1",b="2"}`)
	require.Error(t, err)
	_, err = s.GetOrCreateGauge(`hits{a="1",b="2"}`)
	require.Error(t, err)
}

func TestCounterAndGauge(t *testing.T) {
	c := GetOrCreateCounter(`metrics_test_total{kind="a"}`)
	c.AddInt(3)
	c.AddUint64(4)
	require.Equal(t, uint64(7), c.GetValueUint64())

	g := GetOrCreateGauge("metrics_test_gauge")
	g.SetUint64(42)
	require.Equal(t, 42.0, g.GetValue())
	g.SetInt(-1)
	require.Equal(t, -1.0, g.GetValue())

	h := GetOrCreateHistogram("metrics_test_seconds")
	h.UpdateDuration(time.Now().Add(-time.Millisecond))

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", PrometheusPath, nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	out := string(body)
	require.True(t, strings.Contains(out, `metrics_test_total{kind="a"} 7`), out)
	require.True(t, strings.Contains(out, "metrics_test_gauge -1"), out)
	require.True(t, strings.Contains(out, "metrics_test_seconds_count 1"), out)
	require.True(t, strings.Contains(out, "go_goroutines"), out)
}
