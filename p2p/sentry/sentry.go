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

// Package sentry exposes the devp2p servers of the node as ETHBACKEND node
// and peer information.
package sentry

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/p2p"
	jsoniter "github.com/json-iterator/go"
	"github.com/ledgerwatch/log/v3"
	"google.golang.org/protobuf/proto"

	"github.com/erigontech/ethbackend/gointerfaces/typesproto"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Server is the subset of *p2p.Server the backend reads from.
type Server interface {
	NodeInfo() *p2p.NodeInfo
	PeersInfo() []*p2p.PeerInfo
	PeerCount() int
}

var _ Server = (*p2p.Server)(nil)

func NodeInfo(srv Server) (*typesproto.NodeInfoReply, error) {
	info := srv.NodeInfo()
	protocols, err := json.Marshal(info.Protocols)
	if err != nil {
		return nil, fmt.Errorf("cannot encode protocols info: %w", err)
	}
	return &typesproto.NodeInfoReply{
		Id:    info.ID,
		Name:  validUTF8(info.Name),
		Enode: info.Enode,
		Enr:   info.ENR,
		Ports: &typesproto.NodeInfoPorts{
			Discovery: uint32(info.Ports.Discovery),
			Listener:  uint32(info.Ports.Listener),
		},
		ListenerAddr: info.ListenAddr,
		Protocols:    protocols,
	}, nil
}

// validUTF8 replaces invalid sequences in names announced by remote peers,
// which would otherwise fail the whole reply on encoding.
func validUTF8(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

func PeersInfo(srv Server) []*typesproto.PeerInfo {
	infos := srv.PeersInfo()
	peers := make([]*typesproto.PeerInfo, 0, len(infos))
	for _, p := range infos {
		caps := make([]string, len(p.Caps))
		for i, c := range p.Caps {
			caps[i] = validUTF8(c)
		}
		peers = append(peers, &typesproto.PeerInfo{
			Id:             p.ID,
			Name:           validUTF8(p.Name),
			Enode:          p.Enode,
			Enr:            p.ENR,
			Caps:           caps,
			ConnLocalAddr:  p.Network.LocalAddress,
			ConnRemoteAddr: p.Network.RemoteAddress,
			ConnIsInbound:  p.Network.Inbound,
			ConnIsTrusted:  p.Network.Trusted,
			ConnIsStatic:   p.Network.Static,
		})
	}
	return peers
}

// Backend answers the node and peer queries of the private API over a set of
// p2p servers.
type Backend struct {
	servers []Server
	logger  log.Logger
}

func NewBackend(logger log.Logger, servers ...Server) *Backend {
	return &Backend{servers: servers, logger: logger}
}

func (b *Backend) NetPeerCount() (uint64, error) {
	var count uint64
	for _, srv := range b.servers {
		count += uint64(srv.PeerCount())
	}
	return count, nil
}

// NodesInfo queries at most limit servers (all when limit is 0). Identical
// replies are merged and the result is ordered by name and enode.
func (b *Backend) NodesInfo(limit int) ([]*typesproto.NodeInfoReply, error) {
	if limit == 0 || limit > len(b.servers) {
		limit = len(b.servers)
	}
	seen := make(map[string]struct{}, limit)
	nodes := make([]*typesproto.NodeInfoReply, 0, limit)
	for _, srv := range b.servers[:limit] {
		info, err := NodeInfo(srv)
		if err != nil {
			b.logger.Error("sentry nodeInfo", "err", err)
			continue
		}
		key, err := proto.MarshalOptions{Deterministic: true}.Marshal(info)
		if err != nil {
			b.logger.Error("sentry nodeInfo", "err", err)
			continue
		}
		if _, ok := seen[string(key)]; ok {
			continue
		}
		seen[string(key)] = struct{}{}
		nodes = append(nodes, info)
	}
	slices.SortStableFunc(nodes, nodeInfoCmp)
	return nodes, nil
}

func nodeInfoCmp(a, b *typesproto.NodeInfoReply) int {
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.Enode, b.Enode)
}

func (b *Backend) Peers() ([]*typesproto.PeerInfo, error) {
	var peers []*typesproto.PeerInfo
	for _, srv := range b.servers {
		peers = append(peers, PeersInfo(srv)...)
	}
	return peers, nil
}
