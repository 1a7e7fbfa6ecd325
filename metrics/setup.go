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
	"net/http"
	"time"

	"github.com/ledgerwatch/log/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const PrometheusPath = "/debug/metrics/prometheus"

// Handler serves the default set together with the Go runtime and process collectors.
func Handler() http.Handler {
	gatherers := prometheus.Gatherers{defaultSet.registry, runtimeRegistry}
	return promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{})
}

var runtimeRegistry = func() *prometheus.Registry {
	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return r
}()

// Setup starts the metrics http server on address and returns its mux so that
// other debug endpoints can share the listener.
func Setup(address string, logger log.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(PrometheusPath, Handler())
	srv := &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failure in running metrics server", "err", err)
		}
	}()
	logger.Info("Starting metrics server", "addr", "http://"+address+PrometheusPath)
	return mux
}
