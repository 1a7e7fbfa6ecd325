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

package diagnostics

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ledgerwatch/log/v3"
	"github.com/urfave/cli/v2"

	"github.com/erigontech/ethbackend/ethdb/payloaddb"
	"github.com/erigontech/ethbackend/ethdb/privateapi"
)

var (
	DiagnosticsDisabledFlag = cli.BoolFlag{
		Name:  "diagnostics.disabled",
		Usage: "Disable diagnostics endpoints",
	}
	DiagnosticsAddrFlag = cli.StringFlag{
		Name:  "diagnostics.endpoint.addr",
		Usage: "Diagnostics HTTP server listening interface",
		Value: "127.0.0.1",
	}
	DiagnosticsPortFlag = cli.UintFlag{
		Name:  "diagnostics.endpoint.port",
		Usage: "Diagnostics HTTP server listening port",
		Value: 6062,
	}
)

var Flags = []cli.Flag{&DiagnosticsDisabledFlag, &DiagnosticsAddrFlag, &DiagnosticsPortFlag}

// Sources holds what the endpoints report on.
type Sources struct {
	Eth    privateapi.EthBackend
	DB     *payloaddb.DB
	LogDir string
}

// Setup mounts the diagnostics endpoints under /debug/diag, on metricsMux
// when it listens on the diagnostics address or on a dedicated server
// otherwise. It returns nil when diagnostics are disabled.
func Setup(ctx *cli.Context, metricsMux *http.ServeMux, metricsAddress string, src Sources, logger log.Logger) *http.ServeMux {
	if ctx.Bool(DiagnosticsDisabledFlag.Name) {
		return nil
	}

	diagAddress := fmt.Sprintf("%s:%d", ctx.String(DiagnosticsAddrFlag.Name), ctx.Uint(DiagnosticsPortFlag.Name))

	var diagMux *http.ServeMux
	if metricsMux != nil && diagAddress == metricsAddress {
		diagMux = SetupDiagnosticsEndpoint(metricsMux, diagAddress, logger)
	} else {
		diagMux = SetupDiagnosticsEndpoint(nil, diagAddress, logger)
	}

	SetupEndpoints(ctx, diagMux, src)
	return diagMux
}

func SetupDiagnosticsEndpoint(metricsMux *http.ServeMux, address string, logger log.Logger) *http.ServeMux {
	diagMux := http.NewServeMux()

	if metricsMux != nil {
		SetupMiddleMuxHandler(diagMux, metricsMux, "/debug/diag")
	} else {
		middleMux := http.NewServeMux()
		SetupMiddleMuxHandler(diagMux, middleMux, "/debug/diag")

		diagServer := &http.Server{
			Addr:    address,
			Handler: middleMux,
		}

		go func() {
			if err := diagServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("[Diagnostics] Failure in running diagnostics server", "err", err)
			}
		}()
	}

	return diagMux
}

func SetupMiddleMuxHandler(mux *http.ServeMux, middleMux *http.ServeMux, path string) {
	middleMux.HandleFunc(path+"/", func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = strings.TrimPrefix(r.URL.Path, path)
		r.URL.RawPath = strings.TrimPrefix(r.URL.RawPath, path)
		mux.ServeHTTP(w, r)
	})
}

func SetupEndpoints(ctx *cli.Context, diagMux *http.ServeMux, src Sources) {
	SetupLogsAccess(src.LogDir, diagMux)
	SetupCmdLineAccess(diagMux)
	SetupFlagsAccess(ctx, diagMux)
	SetupVersionAccess(diagMux)
	SetupNodeInfoAccess(diagMux, src.Eth)
	SetupPeersAccess(diagMux, src.Eth)
	SetupPayloadsAccess(diagMux, src.DB)
	SetupMemAccess(diagMux)
	SetupProfileAccess(diagMux)
}
