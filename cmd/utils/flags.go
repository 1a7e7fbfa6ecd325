// Copyright 2015 The go-ethereum Authors
// (original work)
// Copyright 2024 The Erigon Authors
// (modifications)
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

// Package utils contains internal helper functions for ethbackend commands.
package utils

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/c2h5oh/datasize"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v2"
	"google.golang.org/grpc/credentials"

	"github.com/erigontech/ethbackend/gointerfaces/grpcutil"
)

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.
//
// The flags are defined here so their names and help texts
// are the same for all commands.

var (
	// General settings
	DataDirFlag = cli.StringFlag{
		Name:  "datadir",
		Usage: "Data directory for the payload store, node key and jwt secret",
		Value: defaultDataDir(),
	}
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "Sets ethbackend flags from YAML/TOML file",
		Value: "",
	}
	NetworkIdFlag = cli.Uint64Flag{
		Name:  "networkid",
		Usage: "Explicitly set network id (integer), used as the chain id of the default chain config",
		Value: 1,
	}
	ChainConfigFlag = cli.StringFlag{
		Name:  "chain.config",
		Usage: "Path to a JSON chain config (overrides --networkid)",
	}
	OverrideTerminalTotalDifficulty = cli.StringFlag{
		Name:  "override.terminaltotaldifficulty",
		Usage: "Manually specify TerminalTotalDifficulty, overriding the bundled setting",
	}

	// Private API
	PrivateApiAddr = cli.StringFlag{
		Name:  "private.api.addr",
		Usage: "Private api network address, for example: 127.0.0.1:9090, empty string means not to start the listener. Do not expose to public network. Serves remote database interface",
		Value: "127.0.0.1:9090",
	}
	PrivateApiRateLimit = cli.IntFlag{
		Name:  "private.api.ratelimit",
		Usage: "Amount of requests server handle simultaneously - requests over this limit will wait. Increase it - if clients see 'request timeout' while server load is low - it means your 'hot data' is small or have much RAM. ",
		Value: 31872,
	}
	GrpcHealthCheckFlag = cli.BoolFlag{
		Name:  "healthcheck",
		Usage: "Enabling grpc health check",
		Value: true,
	}
	GrpcMaxRecvMsgSizeFlag = cli.StringFlag{
		Name:  "grpc.maxrecvmsgsize",
		Usage: "Maximum message size accepted by clients of the private api",
		Value: grpcutil.MaxRecvMsgSize.String(),
	}
	TLSFlag = cli.BoolFlag{
		Name:  "tls",
		Usage: "Enable TLS handshake",
	}
	TLSCertFlag = cli.StringFlag{
		Name:  "tls.cert",
		Usage: "Specify certificate",
		Value: "",
	}
	TLSKeyFlag = cli.StringFlag{
		Name:  "tls.key",
		Usage: "Specify key file",
		Value: "",
	}
	TLSCACertFlag = cli.StringFlag{
		Name:  "tls.cacert",
		Usage: "Specify certificate authority",
		Value: "",
	}

	// Engine API
	AuthRpcAddr = cli.StringFlag{
		Name:  "authrpc.addr",
		Usage: "HTTP-RPC server listening interface for the Engine API",
		Value: "localhost",
	}
	AuthRpcPort = cli.UintFlag{
		Name:  "authrpc.port",
		Usage: "HTTP-RPC server listening port for the Engine API",
		Value: 8551,
	}
	JWTSecretPath = cli.StringFlag{
		Name:  "authrpc.jwtsecret",
		Usage: "Path to the token that ensures safe connection between CL and EL",
		Value: "",
	}
	ProposingDisableFlag = cli.BoolFlag{
		Name:  "proposer.disable",
		Usage: "Disables PoS proposer",
	}
	PruneDistanceFlag = cli.Uint64Flag{
		Name:  "prune.distance",
		Usage: "Keep payloads this many blocks below the finalized one, 0 disables pruning",
		Value: 90_000,
	}
	MinerEtherbaseFlag = cli.StringFlag{
		Name:  "miner.etherbase",
		Usage: "Public address reported as the etherbase of this node",
	}

	// Network Settings
	MaxPeersFlag = cli.IntFlag{
		Name:  "maxpeers",
		Usage: "Maximum number of network peers (network disabled if set to 0)",
		Value: 32,
	}
	ListenPortFlag = cli.IntFlag{
		Name:  "port",
		Usage: "Network listening port",
		Value: 30303,
	}
	NoDiscoverFlag = cli.BoolFlag{
		Name:  "nodiscover",
		Usage: "Disables the peer discovery mechanism (manual peer addition)",
	}
	NodeKeyFileFlag = cli.StringFlag{
		Name:  "nodekey",
		Usage: "P2P node key file (default: <datadir>/nodekey)",
	}

	// Metrics flags
	MetricsEnabledFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "Enable metrics collection and reporting",
	}
	MetricsHTTPFlag = cli.StringFlag{
		Name:  "metrics.addr",
		Usage: "Enable stand-alone metrics HTTP server listening interface",
		Value: "127.0.0.1",
	}
	MetricsPortFlag = cli.IntFlag{
		Name:  "metrics.port",
		Usage: "Metrics HTTP server listening port",
		Value: 6061,
	}
)

var MetricFlags = []cli.Flag{&MetricsEnabledFlag, &MetricsHTTPFlag, &MetricsPortFlag}

// DefaultFlags are the flags of the daemon command.
var DefaultFlags = []cli.Flag{
	&DataDirFlag,
	&ConfigFlag,
	&NetworkIdFlag,
	&ChainConfigFlag,
	&OverrideTerminalTotalDifficulty,
	&PrivateApiAddr,
	&PrivateApiRateLimit,
	&GrpcHealthCheckFlag,
	&TLSFlag,
	&TLSCertFlag,
	&TLSKeyFlag,
	&TLSCACertFlag,
	&AuthRpcAddr,
	&AuthRpcPort,
	&JWTSecretPath,
	&ProposingDisableFlag,
	&PruneDistanceFlag,
	&MinerEtherbaseFlag,
	&MaxPeersFlag,
	&ListenPortFlag,
	&NoDiscoverFlag,
	&NodeKeyFileFlag,
}

// ClientFlags are the flags shared by the client subcommands.
var ClientFlags = []cli.Flag{
	&PrivateApiAddr,
	&GrpcMaxRecvMsgSizeFlag,
	&TLSFlag,
	&TLSCertFlag,
	&TLSKeyFlag,
	&TLSCACertFlag,
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "ethbackend-data"
	}
	return filepath.Join(home, ".local", "share", "ethbackend")
}

// TLSCredentials builds transport credentials from the --tls.* flags, nil
// when TLS is disabled.
func TLSCredentials(ctx *cli.Context) (credentials.TransportCredentials, error) {
	if !ctx.Bool(TLSFlag.Name) {
		return nil, nil
	}
	return grpcutil.TLS(ctx.String(TLSCACertFlag.Name), ctx.String(TLSCertFlag.Name), ctx.String(TLSKeyFlag.Name))
}

// MaxRecvMsgSize parses --grpc.maxrecvmsgsize.
func MaxRecvMsgSize(ctx *cli.Context) (datasize.ByteSize, error) {
	var size datasize.ByteSize
	if err := size.UnmarshalText([]byte(ctx.String(GrpcMaxRecvMsgSizeFlag.Name))); err != nil {
		return 0, fmt.Errorf("invalid --%s: %w", GrpcMaxRecvMsgSizeFlag.Name, err)
	}
	return size, nil
}

// Etherbase parses --miner.etherbase, the zero address when unset.
func Etherbase(ctx *cli.Context) (common.Address, error) {
	s := ctx.String(MinerEtherbaseFlag.Name)
	if s == "" {
		return common.Address{}, nil
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid --%s %q", MinerEtherbaseFlag.Name, s)
	}
	return common.HexToAddress(s), nil
}

// ChainConfig loads --chain.config, or builds a post-London config for
// --networkid. --override.terminaltotaldifficulty applies to both.
func ChainConfig(ctx *cli.Context) (*params.ChainConfig, error) {
	var config *params.ChainConfig
	if path := ctx.String(ChainConfigFlag.Name); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		config = new(params.ChainConfig)
		if err := jsoniter.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("invalid chain config %s: %w", path, err)
		}
	} else {
		config = DefaultChainConfig(ctx.Uint64(NetworkIdFlag.Name))
	}
	if ctx.IsSet(OverrideTerminalTotalDifficulty.Name) {
		ttd, ok := new(big.Int).SetString(ctx.String(OverrideTerminalTotalDifficulty.Name), 0)
		if !ok {
			return nil, fmt.Errorf("invalid --%s", OverrideTerminalTotalDifficulty.Name)
		}
		config.TerminalTotalDifficulty = ttd
	}
	return config, nil
}

// DefaultChainConfig activates every fork up to London at genesis and
// starts in proof-of-stake.
func DefaultChainConfig(chainID uint64) *params.ChainConfig {
	zero := big.NewInt(0)
	return &params.ChainConfig{
		ChainID:                 new(big.Int).SetUint64(chainID),
		HomesteadBlock:          zero,
		EIP150Block:             zero,
		EIP155Block:             zero,
		EIP158Block:             zero,
		ByzantiumBlock:          zero,
		ConstantinopleBlock:     zero,
		PetersburgBlock:         zero,
		IstanbulBlock:           zero,
		BerlinBlock:             zero,
		LondonBlock:             zero,
		TerminalTotalDifficulty: zero,
	}
}
