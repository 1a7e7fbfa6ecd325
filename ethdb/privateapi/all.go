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

package privateapi

import (
	"fmt"
	"net"

	"github.com/ledgerwatch/log/v3"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/erigontech/ethbackend/gointerfaces/grpcutil"
	"github.com/erigontech/ethbackend/gointerfaces/remoteproto"
)

func StartGrpc(ethBackendSrv *EthBackendServer, addr string, rateLimit uint32, creds credentials.TransportCredentials,
	healthCheck bool, logger log.Logger) (*grpc.Server, error) {
	logger.Info("Starting private RPC server", "on", addr)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("could not create listener: %w, addr=%s", err, addr)
	}
	return Serve(lis, ethBackendSrv, rateLimit, creds, healthCheck, logger), nil
}

// Serve registers the backend on a new gRPC server and serves lis in the
// background until the returned server is stopped.
func Serve(lis net.Listener, ethBackendSrv *EthBackendServer, rateLimit uint32, creds credentials.TransportCredentials,
	healthCheck bool, logger log.Logger) *grpc.Server {
	grpcServer := grpcutil.NewServer(rateLimit, creds, logger)
	remoteproto.RegisterETHBACKENDServer(grpcServer, ethBackendSrv)

	var healthServer *health.Server
	if healthCheck {
		healthServer = health.NewServer()
		grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	}
	go func() {
		if healthCheck {
			defer healthServer.Shutdown()
		}
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("private RPC server fail", "err", err)
		}
	}()

	return grpcServer
}
