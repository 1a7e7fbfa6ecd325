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

// Package node contains classes for running an ethbackend node.
package node

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/p2p"
	"github.com/ethereum/go-ethereum/params"
	"github.com/ledgerwatch/log/v3"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/erigontech/ethbackend/cmd/utils"
	"github.com/erigontech/ethbackend/ethdb/payloaddb"
	"github.com/erigontech/ethbackend/ethdb/privateapi"
	"github.com/erigontech/ethbackend/node/nodecfg/datadir"
	"github.com/erigontech/ethbackend/p2p/sentry"
	ethparams "github.com/erigontech/ethbackend/params"
	"github.com/erigontech/ethbackend/turbo/engineapi"
)

const statsInterval = 30 * time.Second

// Config is everything the node needs to start, built from the command line
// by NewConfigUrfave.
type Config struct {
	Dirs        datadir.Dirs
	InMemory    bool // payload store without disk persistence
	NodeKeyFile string
	P2P         p2p.Config
	Chain       *params.ChainConfig
	NetworkID   uint64
	Etherbase   common.Address // zero when not configured

	PrivateApiAddr      string
	PrivateApiRateLimit uint32
	HealthCheck         bool
	TLS                 credentials.TransportCredentials

	AuthRpcAddr   string // empty disables the Engine API
	JWTSecretPath string

	Proposing     bool
	PruneDistance uint64
}

func NewConfigUrfave(ctx *cli.Context, logger log.Logger) (*Config, error) {
	chain, err := utils.ChainConfig(ctx)
	if err != nil {
		return nil, err
	}
	creds, err := utils.TLSCredentials(ctx)
	if err != nil {
		return nil, err
	}
	etherbase, err := utils.Etherbase(ctx)
	if err != nil {
		return nil, err
	}
	dirs := datadir.New(ctx.String(utils.DataDirFlag.Name))
	cfg := &Config{
		Dirs:        dirs,
		NodeKeyFile: ctx.String(utils.NodeKeyFileFlag.Name),
		P2P: p2p.Config{
			Name:        ethparams.NodeName(),
			MaxPeers:    ctx.Int(utils.MaxPeersFlag.Name),
			ListenAddr:  fmt.Sprintf(":%d", ctx.Int(utils.ListenPortFlag.Name)),
			NoDiscovery: ctx.Bool(utils.NoDiscoverFlag.Name),
		},
		Chain:               chain,
		NetworkID:           ctx.Uint64(utils.NetworkIdFlag.Name),
		Etherbase:           etherbase,
		PrivateApiAddr:      ctx.String(utils.PrivateApiAddr.Name),
		PrivateApiRateLimit: uint32(ctx.Int(utils.PrivateApiRateLimit.Name)),
		HealthCheck:         ctx.Bool(utils.GrpcHealthCheckFlag.Name),
		TLS:                 creds,
		AuthRpcAddr:         net.JoinHostPort(ctx.String(utils.AuthRpcAddr.Name), fmt.Sprint(ctx.Uint(utils.AuthRpcPort.Name))),
		JWTSecretPath:       ctx.String(utils.JWTSecretPath.Name),
		Proposing:           !ctx.Bool(utils.ProposingDisableFlag.Name),
		PruneDistance:       ctx.Uint64(utils.PruneDistanceFlag.Name),
	}
	if cfg.NodeKeyFile == "" {
		cfg.NodeKeyFile = dirs.NodeKey()
	}
	if cfg.JWTSecretPath == "" {
		cfg.JWTSecretPath = dirs.JWTSecret()
	}
	logger.Info("Starting ethbackend", "chainId", chain.ChainID, "networkId", cfg.NetworkID, "ttd", chain.TerminalTotalDifficulty,
		"datadir", dirs.DataDir, "proposing", cfg.Proposing)
	return cfg, nil
}

// EthBackendNode represents a single node: the p2p server, the payload store,
// the private gRPC api and the Engine API.
type EthBackendNode struct {
	cfg    *Config
	logger log.Logger

	p2pServer  *p2p.Server
	db         *payloaddb.DB
	backend    *privateapi.EthBackendServer
	eth        *ethBackend
	grpcServer *grpc.Server
	grpcAddr   net.Addr
	engineHTTP *http.Server
	engineAddr net.Addr

	// cancels Subscribe streams so GracefulStop can return
	stopStreams context.CancelFunc

	quit      chan struct{}
	closeOnce sync.Once
}

// New opens the payload store and starts every server of the node.
func New(cfg *Config, logger log.Logger) (_ *EthBackendNode, err error) {
	n := &EthBackendNode{cfg: cfg, logger: logger, quit: make(chan struct{})}
	defer func() {
		if err != nil {
			n.shutdown()
		}
	}()

	if cfg.InMemory {
		n.db, err = payloaddb.OpenInMem()
	} else {
		if err = cfg.Dirs.MustExist(); err != nil {
			return nil, err
		}
		n.db, err = payloaddb.Open(cfg.Dirs.Payloads)
	}
	if err != nil {
		return nil, fmt.Errorf("open payload store: %w", err)
	}

	p2pCfg := cfg.P2P
	if p2pCfg.PrivateKey, err = loadNodeKey(cfg.NodeKeyFile); err != nil {
		return nil, err
	}
	status := sentry.NewStatusDataProvider(n.db, cfg.NetworkID, logger)
	p2pCfg.Protocols = append(p2pCfg.Protocols, status.Protocol())
	n.p2pServer = &p2p.Server{Config: p2pCfg}
	if err = n.p2pServer.Start(); err != nil {
		n.p2pServer = nil
		return nil, fmt.Errorf("start p2p server: %w", err)
	}
	logger.Info("Started P2P networking", "self", n.p2pServer.Self().URLv4())

	n.eth = &ethBackend{Backend: sentry.NewBackend(logger, n.p2pServer), networkID: cfg.NetworkID, etherbase: cfg.Etherbase}
	var streamsCtx context.Context
	streamsCtx, n.stopStreams = context.WithCancel(context.Background())
	n.backend = privateapi.NewEthBackendServer(streamsCtx, n.eth, n.db, privateapi.NewEvents(), cfg.Chain, cfg.Proposing, cfg.PruneDistance, logger)

	if cfg.PrivateApiAddr != "" {
		lis, lErr := net.Listen("tcp", cfg.PrivateApiAddr)
		if lErr != nil {
			return nil, fmt.Errorf("could not create listener: %w, addr=%s", lErr, cfg.PrivateApiAddr)
		}
		logger.Info("Starting private RPC server", "on", lis.Addr())
		n.grpcAddr = lis.Addr()
		n.grpcServer = privateapi.Serve(lis, n.backend, cfg.PrivateApiRateLimit, cfg.TLS, cfg.HealthCheck, logger)
	}

	if cfg.AuthRpcAddr != "" {
		jwtSecret, jErr := engineapi.ObtainJWTSecret(cfg.JWTSecretPath, logger)
		if jErr != nil {
			return nil, jErr
		}
		rpcSrv, rErr := engineapi.NewRPCServer(n.backend, logger)
		if rErr != nil {
			return nil, rErr
		}
		n.engineHTTP, n.engineAddr, err = engineapi.StartHTTPEndpoint(cfg.AuthRpcAddr, engineapi.NewHandler(rpcSrv, jwtSecret), logger)
		if err != nil {
			rpcSrv.Stop()
			return nil, err
		}
		n.engineHTTP.RegisterOnShutdown(rpcSrv.Stop)
	}
	return n, nil
}

func loadNodeKey(file string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.LoadECDSA(file)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load node key %s: %w", file, err)
	}
	if key, err = crypto.GenerateKey(); err != nil {
		return nil, err
	}
	if err = crypto.SaveECDSA(file, key); err != nil {
		return nil, fmt.Errorf("save node key %s: %w", file, err)
	}
	return key, nil
}

func (n *EthBackendNode) Backend() *privateapi.EthBackendServer { return n.backend }

// Eth answers the node and peer queries.
func (n *EthBackendNode) Eth() privateapi.EthBackend { return n.eth }

func (n *EthBackendNode) DB() *payloaddb.DB { return n.db }

// PrivateApiAddr is the bound address of the gRPC server, nil when disabled.
func (n *EthBackendNode) PrivateApiAddr() net.Addr { return n.grpcAddr }

// EngineAddr is the bound address of the Engine API, nil when disabled.
func (n *EthBackendNode) EngineAddr() net.Addr { return n.engineAddr }

// Serve blocks until ctx is done or the node is closed, logging stats
// periodically, then stops every server.
func (n *EthBackendNode) Serve(ctx context.Context) error {
	defer n.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ticker := time.NewTicker(statsInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-n.quit:
				return nil
			case <-ticker.C:
				n.logStats()
			}
		}
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
		case <-n.quit:
		}
		return nil
	})
	return g.Wait()
}

func (n *EthBackendNode) logStats() {
	peers, _ := n.eth.NetPeerCount()
	count, err := n.db.Count()
	if err != nil {
		n.logger.Warn("payload store stats", "err", err)
		return
	}
	fc, _, err := n.db.ReadForkChoice()
	if err != nil {
		n.logger.Warn("payload store stats", "err", err)
		return
	}
	n.logger.Info("[backend] stats", "peers", peers, "payloads", count, "head", fc.Head)
}

// Close stops every server of the node. It is safe to call more than once.
func (n *EthBackendNode) Close() error {
	n.closeOnce.Do(func() {
		close(n.quit)
		n.shutdown()
	})
	return nil
}

func (n *EthBackendNode) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if n.stopStreams != nil {
		n.stopStreams()
	}
	var g errgroup.Group
	if n.engineHTTP != nil {
		g.Go(func() error { return n.engineHTTP.Shutdown(ctx) })
	}
	if n.grpcServer != nil {
		g.Go(func() error {
			n.grpcServer.GracefulStop()
			return nil
		})
	}
	if n.p2pServer != nil {
		g.Go(func() error {
			n.p2pServer.Stop()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		n.logger.Warn("Engine API shutdown", "err", err)
	}
	if n.backend != nil {
		n.backend.StopBuilders()
	}
	if n.db != nil {
		n.db.Close()
	}
	n.logger.Info("Node stopped")
}
