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

package engineapi

import (
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/ledgerwatch/log/v3"
)

// NewHandler serves JSON-RPC over HTTP behind JWT authentication. A nil
// jwtSecret disables authentication.
func NewHandler(srv *rpc.Server, jwtSecret []byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if jwtSecret != nil && !CheckJwtSecret(w, r, jwtSecret) {
			return
		}
		srv.ServeHTTP(w, r)
	})
}

// StartHTTPEndpoint listens on endpoint and serves handler in the background.
func StartHTTPEndpoint(endpoint string, handler http.Handler, logger log.Logger) (*http.Server, net.Addr, error) {
	listener, err := net.Listen("tcp", endpoint)
	if err != nil {
		return nil, nil, fmt.Errorf("could not start engine api on %s: %w", endpoint, err)
	}
	timeouts := rpc.DefaultHTTPTimeouts
	httpSrv := &http.Server{
		Handler:           handler,
		ReadTimeout:       timeouts.ReadTimeout,
		ReadHeaderTimeout: timeouts.ReadHeaderTimeout,
		WriteTimeout:      timeouts.WriteTimeout,
		IdleTimeout:       timeouts.IdleTimeout,
	}
	go func() {
		if err := httpSrv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("engine api server fail", "err", err)
		}
	}()
	logger.Info("HTTP endpoint opened for Engine API", "url", listener.Addr())
	return httpSrv, listener.Addr(), nil
}
