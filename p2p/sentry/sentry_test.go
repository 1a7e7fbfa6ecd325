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

package sentry

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/p2p"
	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/erigontech/ethbackend/gointerfaces/typesproto"
)

type fakeServer struct {
	node  *p2p.NodeInfo
	peers []*p2p.PeerInfo
}

func (f *fakeServer) NodeInfo() *p2p.NodeInfo     { return f.node }
func (f *fakeServer) PeersInfo() []*p2p.PeerInfo { return f.peers }
func (f *fakeServer) PeerCount() int             { return len(f.peers) }

func node(name, enode string) *fakeServer {
	return &fakeServer{node: &p2p.NodeInfo{Name: name, Enode: enode}}
}

func TestNodesInfo_Deduplication(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		nodes []*fakeServer
		want  []string
	}{
		{
			name:  "one node",
			nodes: []*fakeServer{node("name", "enode")},
			want:  []string{"name"},
		},
		{
			name:  "two different nodes",
			nodes: []*fakeServer{node("name1", "enode1"), node("name", "enode")},
			want:  []string{"name", "name1"},
		},
		{
			name:  "two same nodes",
			nodes: []*fakeServer{node("name", "enode"), node("name", "enode")},
			want:  []string{"name"},
		},
		{
			name:  "three nodes with repeats",
			nodes: []*fakeServer{node("name", "enode"), node("name1", "enode1"), node("name", "enode")},
			want:  []string{"name", "name1"},
		},
		{
			name:  "limit",
			limit: 2,
			nodes: []*fakeServer{node("name2", "enode2"), node("name1", "enode1"), node("name", "enode")},
			want:  []string{"name1", "name2"},
		},
		{
			name:  "limit above server count",
			limit: 10,
			nodes: []*fakeServer{node("name2", "enode2"), node("name", "enode")},
			want:  []string{"name", "name2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			servers := make([]Server, len(tt.nodes))
			for i, n := range tt.nodes {
				servers[i] = n
			}
			got, err := NewBackend(log.New(), servers...).NodesInfo(tt.limit)
			require.NoError(t, err)
			names := make([]string, len(got))
			for i, n := range got {
				names[i] = n.Name
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

// Servers sharing name and enode but differing elsewhere sort next to each
// other, so an exact repeat of the first one is not adjacent to it.
func TestNodesInfo_NonAdjacentDuplicates(t *testing.T) {
	a := node("name", "enode")
	a.node.Ports.Listener = 30303
	b := node("name", "enode")
	b.node.Ports.Listener = 30304
	aCopy := node("name", "enode")
	aCopy.node.Ports.Listener = 30303

	got, err := NewBackend(log.New(), a, b, aCopy).NodesInfo(0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint32(30303), got[0].Ports.Listener)
	assert.Equal(t, uint32(30304), got[1].Ports.Listener)
}

func TestPeerNamesAreMadeValidUTF8(t *testing.T) {
	srv := &fakeServer{
		node:  &p2p.NodeInfo{Name: "node\xff", Enode: "enode"},
		peers: []*p2p.PeerInfo{{ID: "p1", Name: "bad\xfe\xff", Caps: []string{"eth/68", "\xc3\x28"}}},
	}
	b := NewBackend(log.New(), srv)

	peers, err := b.Peers()
	require.NoError(t, err)
	require.Len(t, peers, 1)
	assert.Equal(t, "bad\uFFFD", peers[0].Name)
	assert.Equal(t, []string{"eth/68", "\uFFFD("}, peers[0].Caps)
	_, err = proto.Marshal(peers[0])
	require.NoError(t, err)

	nodes, err := b.NodesInfo(0)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "node\uFFFD", nodes[0].Name)
}

func TestNodeInfoConversion(t *testing.T) {
	srv := &fakeServer{node: &p2p.NodeInfo{
		ID:         "abcd",
		Name:       "ethbackend/v1",
		Enode:      "enode://abcd@127.0.0.1:30303",
		ENR:        "enr:-xyz",
		ListenAddr: "[::]:30303",
		Protocols:  map[string]interface{}{"eth": map[string]interface{}{"network": 1}},
	}}
	srv.node.Ports.Discovery = 30301
	srv.node.Ports.Listener = 30303

	info, err := NodeInfo(srv)
	require.NoError(t, err)
	assert.Equal(t, "abcd", info.Id)
	assert.Equal(t, "enr:-xyz", info.Enr)
	assert.Equal(t, "[::]:30303", info.ListenerAddr)
	assert.Equal(t, uint32(30301), info.Ports.Discovery)
	assert.Equal(t, uint32(30303), info.Ports.Listener)
	assert.JSONEq(t, `{"eth":{"network":1}}`, string(info.Protocols))
}

func TestPeersAndCount(t *testing.T) {
	peer := &p2p.PeerInfo{ID: "p1", Name: "geth", Enode: "enode://p1", ENR: "enr:-p1", Caps: []string{"eth/68", "snap/1"}}
	peer.Network.LocalAddress = "127.0.0.1:30303"
	peer.Network.RemoteAddress = "10.0.0.1:40000"
	peer.Network.Inbound = true
	peer.Network.Static = true

	b := NewBackend(log.New(), &fakeServer{peers: []*p2p.PeerInfo{peer}}, &fakeServer{peers: []*p2p.PeerInfo{{ID: "p2"}}})
	count, err := b.NetPeerCount()
	require.NoError(t, err)
	require.Equal(t, uint64(2), count)

	peers, err := b.Peers()
	require.NoError(t, err)
	require.Len(t, peers, 2)
	assert.True(t, proto.Equal(&typesproto.PeerInfo{
		Id:             "p1",
		Name:           "geth",
		Enode:          "enode://p1",
		Enr:            "enr:-p1",
		Caps:           []string{"eth/68", "snap/1"},
		ConnLocalAddr:  "127.0.0.1:30303",
		ConnRemoteAddr: "10.0.0.1:40000",
		ConnIsInbound:  true,
		ConnIsStatic:   true,
	}, peers[0]))
	assert.Equal(t, "p2", peers[1].Id)
}

func TestRunningServer(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	srv := &p2p.Server{Config: p2p.Config{
		PrivateKey:  key,
		MaxPeers:    1,
		Name:        "ethbackend-test",
		ListenAddr:  "127.0.0.1:0",
		NoDiscovery: true,
	}}
	require.NoError(t, srv.Start())
	defer srv.Stop()

	info, err := NodeInfo(srv)
	require.NoError(t, err)
	assert.Equal(t, "ethbackend-test", info.Name)
	assert.NotEmpty(t, info.Enode)
	assert.NotZero(t, info.Ports.Listener)

	b := NewBackend(log.New(), srv)
	count, err := b.NetPeerCount()
	require.NoError(t, err)
	assert.Zero(t, count)
}
