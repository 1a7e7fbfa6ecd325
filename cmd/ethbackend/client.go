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

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/erigontech/ethbackend/cmd/utils"
	"github.com/erigontech/ethbackend/ethdb/privateapi"
	"github.com/erigontech/ethbackend/gointerfaces"
	"github.com/erigontech/ethbackend/gointerfaces/grpcutil"
	"github.com/erigontech/ethbackend/gointerfaces/remoteproto"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const clientTimeout = 10 * time.Second

var nodeInfoLimitFlag = cli.UintFlag{
	Name:  "limit",
	Usage: "Maximum number of nodes to report, 0 for all",
}

func clientCommand() *cli.Command {
	return &cli.Command{
		Name:  "client",
		Usage: "Query a running node over the private api",
		Flags: utils.ClientFlags,
		Subcommands: []*cli.Command{
			{
				Name:   "version",
				Usage:  "Print the private api version of the node",
				Action: withClient(printVersion),
			},
			{
				Name:   "nodeinfo",
				Usage:  "Print the p2p node info",
				Flags:  []cli.Flag{&nodeInfoLimitFlag},
				Action: withClient(printNodeInfo),
			},
			{
				Name:   "peers",
				Usage:  "Print the connected peers",
				Action: withClient(printPeers),
			},
			{
				Name:   "peercount",
				Usage:  "Print the number of connected peers",
				Action: withClient(printPeerCount),
			},
			{
				Name:   "netversion",
				Usage:  "Print the network id",
				Action: withClient(printNetVersion),
			},
			{
				Name:   "etherbase",
				Usage:  "Print the fee recipient of locally built payloads",
				Action: withClient(printEtherbase),
			},
			{
				Name:   "clientversion",
				Usage:  "Print the node name and protocol version",
				Action: withClient(printClientVersion),
			},
		},
	}
}

type clientAction func(ctx context.Context, cliCtx *cli.Context, client remoteproto.ETHBACKENDClient) error

// withClient dials --private.api.addr and refuses to talk to a node whose
// api version is incompatible.
func withClient(action clientAction) cli.ActionFunc {
	return func(cliCtx *cli.Context) error {
		creds, err := utils.TLSCredentials(cliCtx)
		if err != nil {
			return err
		}
		maxRecv, err := utils.MaxRecvMsgSize(cliCtx)
		if err != nil {
			return err
		}
		conn, err := grpcutil.Connect(creds, cliCtx.String(utils.PrivateApiAddr.Name),
			grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(int(maxRecv))))
		if err != nil {
			return fmt.Errorf("could not connect to private api: %w", err)
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(cliCtx.Context, clientTimeout)
		defer cancel()
		client := remoteproto.NewETHBACKENDClient(conn)
		reply, err := client.Version(ctx, &emptypb.Empty{}, grpc.WaitForReady(true))
		if err != nil {
			return fmt.Errorf("version request: %w", err)
		}
		expected := gointerfaces.VersionFromProto(privateapi.EthBackendAPIVersion)
		if !gointerfaces.EnsureVersionCompatibility(reply, expected) {
			return fmt.Errorf("incompatible interface versions: client %s, server %s", expected, gointerfaces.VersionFromProto(reply))
		}
		return action(ctx, cliCtx, client)
	}
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func printVersion(ctx context.Context, cliCtx *cli.Context, client remoteproto.ETHBACKENDClient) error {
	reply, err := client.Version(ctx, &emptypb.Empty{})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cliCtx.App.Writer, gointerfaces.VersionFromProto(reply))
	return err
}

func printNodeInfo(ctx context.Context, cliCtx *cli.Context, client remoteproto.ETHBACKENDClient) error {
	reply, err := client.NodeInfo(ctx, &remoteproto.NodesInfoRequest{Limit: uint32(cliCtx.Uint(nodeInfoLimitFlag.Name))})
	if err != nil {
		return err
	}
	return writeJSON(cliCtx.App.Writer, reply.GetNodesInfo())
}

func printPeers(ctx context.Context, cliCtx *cli.Context, client remoteproto.ETHBACKENDClient) error {
	reply, err := client.Peers(ctx, &emptypb.Empty{})
	if err != nil {
		return err
	}
	return writeJSON(cliCtx.App.Writer, reply.GetPeers())
}

func printPeerCount(ctx context.Context, cliCtx *cli.Context, client remoteproto.ETHBACKENDClient) error {
	reply, err := client.NetPeerCount(ctx, &remoteproto.NetPeerCountRequest{})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cliCtx.App.Writer, reply.GetCount())
	return err
}

func printNetVersion(ctx context.Context, cliCtx *cli.Context, client remoteproto.ETHBACKENDClient) error {
	reply, err := client.NetVersion(ctx, &remoteproto.NetVersionRequest{})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cliCtx.App.Writer, reply.GetId())
	return err
}

func printEtherbase(ctx context.Context, cliCtx *cli.Context, client remoteproto.ETHBACKENDClient) error {
	reply, err := client.Etherbase(ctx, &remoteproto.EtherbaseRequest{})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cliCtx.App.Writer, gointerfaces.ConvertH160toAddress(reply.GetAddress()).Hex())
	return err
}

func printClientVersion(ctx context.Context, cliCtx *cli.Context, client remoteproto.ETHBACKENDClient) error {
	name, err := client.ClientVersion(ctx, &remoteproto.ClientVersionRequest{})
	if err != nil {
		return err
	}
	protocol, err := client.ProtocolVersion(ctx, &remoteproto.ProtocolVersionRequest{})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cliCtx.App.Writer, "%s (protocol %d)\n", name.GetNodeName(), protocol.GetId())
	return err
}
