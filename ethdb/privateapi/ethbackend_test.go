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
	"context"
	"math/big"
	"net"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/erigontech/ethbackend/ethdb/payloaddb"
	"github.com/erigontech/ethbackend/gointerfaces"
	"github.com/erigontech/ethbackend/gointerfaces/grpcutil"
	"github.com/erigontech/ethbackend/gointerfaces/remoteproto"
	"github.com/erigontech/ethbackend/gointerfaces/typesproto"
	"github.com/erigontech/ethbackend/p2p/sentry"
	ethparams "github.com/erigontech/ethbackend/params"
	"github.com/erigontech/ethbackend/turbo/builder"
)

var testChainConfig = &params.ChainConfig{
	ChainID:                 big.NewInt(1),
	LondonBlock:             big.NewInt(0),
	TerminalTotalDifficulty: big.NewInt(0),
}

func newTestServer(t *testing.T, eth EthBackend, proposing bool) *EthBackendServer {
	t.Helper()
	db, err := payloaddb.OpenInMem()
	require.NoError(t, err)
	s := NewEthBackendServer(t.Context(), eth, db, NewEvents(), testChainConfig, proposing, 0, log.New())
	t.Cleanup(func() {
		s.StopBuilders()
		db.Close()
	})
	return s
}

func seal(p *typesproto.ExecutionPayload) *typesproto.ExecutionPayload {
	p.BlockHash = gointerfaces.ConvertHashToH256(builder.HeaderFromPayload(p).Hash())
	return p
}

// child returns a valid payload on top of parent, or a genesis-like one for nil.
func child(parent *typesproto.ExecutionPayload) *typesproto.ExecutionPayload {
	p := &typesproto.ExecutionPayload{
		ParentHash:    gointerfaces.ConvertHashToH256(common.Hash{}),
		Coinbase:      gointerfaces.ConvertAddressToH160(common.HexToAddress("0xc0ffee")),
		StateRoot:     gointerfaces.ConvertHashToH256(common.HexToHash("0x5747e")),
		ReceiptRoot:   gointerfaces.ConvertHashToH256(types.EmptyReceiptsHash),
		LogsBloom:     gointerfaces.ConvertBloomToH2048(types.Bloom{}),
		PrevRandao:    gointerfaces.ConvertHashToH256(common.HexToHash("0x7a")),
		BlockNumber:   1,
		GasLimit:      30_000_000,
		Timestamp:     1_700_000_000,
		BaseFeePerGas: gointerfaces.ConvertUint256IntToH256(uint256.NewInt(params.InitialBaseFee)),
	}
	if parent != nil {
		p.ParentHash = parent.BlockHash
		p.BlockNumber = parent.BlockNumber + 1
		p.Timestamp = parent.Timestamp + 12
	}
	return seal(p)
}

func hashOf(p *typesproto.ExecutionPayload) common.Hash {
	return gointerfaces.ConvertH256ToHash(p.BlockHash)
}

func forkChoice(head, safe, finalized common.Hash) *remoteproto.EngineForkChoiceState {
	return &remoteproto.EngineForkChoiceState{
		HeadBlockHash:      gointerfaces.ConvertHashToH256(head),
		SafeBlockHash:      gointerfaces.ConvertHashToH256(safe),
		FinalizedBlockHash: gointerfaces.ConvertHashToH256(finalized),
	}
}

func TestVersionAndBackendDelegation(t *testing.T) {
	ctrl := gomock.NewController(t)
	eth := NewMockEthBackend(ctrl)
	s := newTestServer(t, eth, false)
	ctx := context.Background()

	v, err := s.Version(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Equal(t, "3.2.0", gointerfaces.VersionFromProto(v).String())

	eth.EXPECT().NetPeerCount().Return(uint64(7), nil)
	count, err := s.NetPeerCount(ctx, &remoteproto.NetPeerCountRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(7), count.Count)

	nodes := []*typesproto.NodeInfoReply{{Name: "a"}, {Name: "b"}}
	eth.EXPECT().NodesInfo(2).Return(nodes, nil)
	info, err := s.NodeInfo(ctx, &remoteproto.NodesInfoRequest{Limit: 2})
	require.NoError(t, err)
	require.Len(t, info.NodesInfo, 2)
	require.Equal(t, "b", info.NodesInfo[1].Name)

	eth.EXPECT().Peers().Return([]*typesproto.PeerInfo{{Id: "p"}}, nil)
	peers, err := s.Peers(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Equal(t, "p", peers.Peers[0].Id)

	eth.EXPECT().NetVersion().Return(uint64(1337), nil)
	netVersion, err := s.NetVersion(ctx, &remoteproto.NetVersionRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(1337), netVersion.Id)

	eth.EXPECT().Etherbase().Return(common.HexToAddress("0xbeef"), nil)
	base, err := s.Etherbase(ctx, &remoteproto.EtherbaseRequest{})
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress("0xbeef"), gointerfaces.ConvertH160toAddress(base.Address))

	eth.EXPECT().Etherbase().Return(common.Address{}, ErrNoEtherbase)
	base, err = s.Etherbase(ctx, &remoteproto.EtherbaseRequest{})
	require.ErrorIs(t, err, ErrNoEtherbase)
	require.Equal(t, common.Address{}, gointerfaces.ConvertH160toAddress(base.Address))

	protocol, err := s.ProtocolVersion(ctx, &remoteproto.ProtocolVersionRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(sentry.ProtocolVersion), protocol.Id)

	client, err := s.ClientVersion(ctx, &remoteproto.ClientVersionRequest{})
	require.NoError(t, err)
	require.Equal(t, ethparams.NodeName(), client.NodeName)
}

func TestNewPayloadStatuses(t *testing.T) {
	s := newTestServer(t, nil, false)
	ctx := context.Background()

	missing := child(nil)
	missing.Coinbase = nil
	st, err := s.EngineNewPayloadV1(ctx, missing)
	require.NoError(t, err)
	require.Equal(t, remoteproto.EngineStatus_INVALID, st.Status)
	require.Equal(t, "missing coinbase", st.ValidationError)

	badHash := child(nil)
	badHash.GasUsed = 1
	st, err = s.EngineNewPayloadV1(ctx, badHash)
	require.NoError(t, err)
	require.Equal(t, remoteproto.EngineStatus_INVALID_BLOCK_HASH, st.Status)

	// the first payload anchors the store
	anchor := child(nil)
	st, err = s.EngineNewPayloadV1(ctx, anchor)
	require.NoError(t, err)
	require.Equal(t, remoteproto.EngineStatus_VALID, st.Status)
	require.Equal(t, hashOf(anchor), gointerfaces.ConvertH256ToHash(st.LatestValidHash))

	// resubmission of a known payload
	st, err = s.EngineNewPayloadV1(ctx, child(nil))
	require.NoError(t, err)
	require.Equal(t, remoteproto.EngineStatus_VALID, st.Status)

	next := child(anchor)
	st, err = s.EngineNewPayloadV1(ctx, next)
	require.NoError(t, err)
	require.Equal(t, remoteproto.EngineStatus_VALID, st.Status)
	require.Equal(t, hashOf(next), gointerfaces.ConvertH256ToHash(st.LatestValidHash))

	wrongNumber := child(next)
	wrongNumber.BlockNumber += 5
	st, err = s.EngineNewPayloadV1(ctx, seal(wrongNumber))
	require.NoError(t, err)
	require.Equal(t, remoteproto.EngineStatus_INVALID, st.Status)
	require.Equal(t, hashOf(next), gointerfaces.ConvertH256ToHash(st.LatestValidHash))
	require.Contains(t, st.ValidationError, "block number")

	stale := child(next)
	stale.Timestamp = next.Timestamp
	st, err = s.EngineNewPayloadV1(ctx, seal(stale))
	require.NoError(t, err)
	require.Equal(t, remoteproto.EngineStatus_INVALID, st.Status)
	require.Contains(t, st.ValidationError, "timestamp")

	orphanParent := child(next)
	orphanParent.ExtraData = []byte("side")
	orphan := child(seal(orphanParent))
	st, err = s.EngineNewPayloadV1(ctx, orphan)
	require.NoError(t, err)
	require.Equal(t, remoteproto.EngineStatus_SYNCING, st.Status)
	require.Nil(t, st.LatestValidHash)
	stored, err := s.db.HasPayload(hashOf(orphan))
	require.NoError(t, err)
	require.True(t, stored)
}

func TestNotProofOfStake(t *testing.T) {
	db, err := payloaddb.OpenInMem()
	require.NoError(t, err)
	defer db.Close()
	s := NewEthBackendServer(t.Context(), nil, db, NewEvents(), &params.ChainConfig{ChainID: big.NewInt(1)}, true, 0, log.New())
	ctx := context.Background()

	_, err = s.EngineNewPayloadV1(ctx, child(nil))
	require.ErrorIs(t, err, ErrNotPoS)
	_, err = s.EngineForkChoiceUpdatedV1(ctx, &remoteproto.EngineForkChoiceUpdatedRequest{ForkchoiceState: forkChoice(common.Hash{}, common.Hash{}, common.Hash{})})
	require.ErrorIs(t, err, ErrNotPoS)
	_, err = s.EngineGetPayloadV1(ctx, &remoteproto.EngineGetPayloadRequest{PayloadId: 1})
	require.ErrorIs(t, err, ErrNotPoS)
}

func TestForkChoiceUpdated(t *testing.T) {
	s := newTestServer(t, nil, false)
	ctx := context.Background()

	genesis := child(nil)
	next := child(genesis)
	for _, p := range []*typesproto.ExecutionPayload{genesis, next} {
		st, err := s.EngineNewPayloadV1(ctx, p)
		require.NoError(t, err)
		require.Equal(t, remoteproto.EngineStatus_VALID, st.Status)
	}

	_, err := s.EngineForkChoiceUpdatedV1(ctx, &remoteproto.EngineForkChoiceUpdatedRequest{})
	require.ErrorIs(t, err, ErrInvalidForkChoiceState)

	reply, err := s.EngineForkChoiceUpdatedV1(ctx, &remoteproto.EngineForkChoiceUpdatedRequest{
		ForkchoiceState: forkChoice(common.HexToHash("0xdead"), common.Hash{}, common.Hash{}),
	})
	require.NoError(t, err)
	require.Equal(t, remoteproto.EngineStatus_SYNCING, reply.PayloadStatus.Status)

	reply, err = s.EngineForkChoiceUpdatedV1(ctx, &remoteproto.EngineForkChoiceUpdatedRequest{
		ForkchoiceState: forkChoice(hashOf(next), hashOf(genesis), common.HexToHash("0xdead")),
	})
	require.NoError(t, err)
	require.Equal(t, remoteproto.EngineStatus_INVALID, reply.PayloadStatus.Status)
	require.Contains(t, reply.PayloadStatus.ValidationError, "finalized")
	_, ok, err := s.db.ReadForkChoice()
	require.NoError(t, err)
	require.False(t, ok)

	reply, err = s.EngineForkChoiceUpdatedV1(ctx, &remoteproto.EngineForkChoiceUpdatedRequest{
		ForkchoiceState: forkChoice(hashOf(next), hashOf(genesis), hashOf(genesis)),
	})
	require.NoError(t, err)
	require.Equal(t, remoteproto.EngineStatus_VALID, reply.PayloadStatus.Status)
	require.Equal(t, hashOf(next), gointerfaces.ConvertH256ToHash(reply.PayloadStatus.LatestValidHash))
	require.Zero(t, reply.PayloadId)

	fc, ok, err := s.db.ReadForkChoice()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, payloaddb.ForkChoice{Head: hashOf(next), Safe: hashOf(genesis), Finalized: hashOf(genesis)}, fc)

	// building requires proposer mode
	_, err = s.EngineForkChoiceUpdatedV1(ctx, &remoteproto.EngineForkChoiceUpdatedRequest{
		ForkchoiceState:   forkChoice(hashOf(next), common.Hash{}, common.Hash{}),
		PayloadAttributes: &remoteproto.EnginePayloadAttributes{Timestamp: next.Timestamp + 12},
	})
	require.ErrorIs(t, err, ErrNotProposer)
	_, err = s.EngineGetPayloadV1(ctx, &remoteproto.EngineGetPayloadRequest{PayloadId: 1})
	require.ErrorIs(t, err, ErrNotProposer)
}

func TestPayloadBuilding(t *testing.T) {
	s := newTestServer(t, nil, true)
	ctx := context.Background()

	head := child(nil)
	_, err := s.EngineNewPayloadV1(ctx, head)
	require.NoError(t, err)

	attributes := &remoteproto.EnginePayloadAttributes{
		Timestamp:             head.Timestamp,
		PrevRandao:            gointerfaces.ConvertHashToH256(common.HexToHash("0xabc")),
		SuggestedFeeRecipient: gointerfaces.ConvertAddressToH160(common.HexToAddress("0xfee")),
	}
	_, err = s.EngineForkChoiceUpdatedV1(ctx, &remoteproto.EngineForkChoiceUpdatedRequest{
		ForkchoiceState:   forkChoice(hashOf(head), common.Hash{}, common.Hash{}),
		PayloadAttributes: attributes,
	})
	require.ErrorIs(t, err, ErrInvalidPayloadAttributes)

	attributes.Timestamp = head.Timestamp + 12
	reply, err := s.EngineForkChoiceUpdatedV1(ctx, &remoteproto.EngineForkChoiceUpdatedRequest{
		ForkchoiceState:   forkChoice(hashOf(head), common.Hash{}, common.Hash{}),
		PayloadAttributes: attributes,
	})
	require.NoError(t, err)
	require.Equal(t, remoteproto.EngineStatus_VALID, reply.PayloadStatus.Status)
	require.Equal(t, uint64(1), reply.PayloadId)

	reply, err = s.EngineForkChoiceUpdatedV1(ctx, &remoteproto.EngineForkChoiceUpdatedRequest{
		ForkchoiceState:   forkChoice(hashOf(head), common.Hash{}, common.Hash{}),
		PayloadAttributes: attributes,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(2), reply.PayloadId)

	built, err := s.EngineGetPayloadV1(ctx, &remoteproto.EngineGetPayloadRequest{PayloadId: 1})
	require.NoError(t, err)
	require.Equal(t, head.BlockNumber+1, built.BlockNumber)
	require.Equal(t, attributes.Timestamp, built.Timestamp)
	require.Equal(t, hashOf(head), gointerfaces.ConvertH256ToHash(built.ParentHash))
	require.Equal(t, common.HexToAddress("0xfee"), gointerfaces.ConvertH160toAddress(built.Coinbase))

	// getting the payload again returns the same result
	again, err := s.EngineGetPayloadV1(ctx, &remoteproto.EngineGetPayloadRequest{PayloadId: 1})
	require.NoError(t, err)
	require.True(t, proto.Equal(built, again))

	_, err = s.EngineGetPayloadV1(ctx, &remoteproto.EngineGetPayloadRequest{PayloadId: 99})
	require.ErrorIs(t, err, ErrUnknownPayload)

	// a built payload is accepted back as the next block
	st, err := s.EngineNewPayloadV1(ctx, built)
	require.NoError(t, err)
	require.Equal(t, remoteproto.EngineStatus_VALID, st.Status)
}

func TestBuildersEviction(t *testing.T) {
	s := newTestServer(t, nil, true)
	ctx := context.Background()

	head := child(nil)
	_, err := s.EngineNewPayloadV1(ctx, head)
	require.NoError(t, err)

	req := &remoteproto.EngineForkChoiceUpdatedRequest{
		ForkchoiceState:   forkChoice(hashOf(head), common.Hash{}, common.Hash{}),
		PayloadAttributes: &remoteproto.EnginePayloadAttributes{Timestamp: head.Timestamp + 1},
	}
	for i := 0; i < MaxBuilders+1; i++ {
		_, err := s.EngineForkChoiceUpdatedV1(ctx, req)
		require.NoError(t, err)
	}
	require.Len(t, s.builders, MaxBuilders)

	_, err = s.EngineGetPayloadV1(ctx, &remoteproto.EngineGetPayloadRequest{PayloadId: 1})
	require.ErrorIs(t, err, ErrUnknownPayload)
	_, err = s.EngineGetPayloadV1(ctx, &remoteproto.EngineGetPayloadRequest{PayloadId: MaxBuilders + 1})
	require.NoError(t, err)
}

func TestPruneOnForkChoice(t *testing.T) {
	db, err := payloaddb.OpenInMem()
	require.NoError(t, err)
	defer db.Close()
	s := NewEthBackendServer(t.Context(), nil, db, NewEvents(), testChainConfig, false, 2, log.New())
	ctx := context.Background()

	chain := []*typesproto.ExecutionPayload{child(nil)}
	for i := 0; i < 5; i++ {
		chain = append(chain, child(chain[len(chain)-1]))
	}
	for _, p := range chain {
		_, err := s.EngineNewPayloadV1(ctx, p)
		require.NoError(t, err)
	}

	// finalized is block 5, so blocks 1 and 2 go
	_, err = s.EngineForkChoiceUpdatedV1(ctx, &remoteproto.EngineForkChoiceUpdatedRequest{
		ForkchoiceState: forkChoice(hashOf(chain[5]), hashOf(chain[4]), hashOf(chain[4])),
	})
	require.NoError(t, err)
	n, err := db.Count()
	require.NoError(t, err)
	require.Equal(t, 4, n)
	has, err := db.HasPayload(hashOf(chain[1]))
	require.NoError(t, err)
	require.False(t, has)
}

func TestServeOverGrpc(t *testing.T) {
	ctrl := gomock.NewController(t)
	eth := NewMockEthBackend(ctrl)
	s := newTestServer(t, eth, true)

	lis := bufconn.Listen(1 << 20)
	srv := Serve(lis, s, 16, nil, true, log.New())
	t.Cleanup(srv.Stop)

	conn, err := grpcutil.Connect(nil, "passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	client := remoteproto.NewETHBACKENDClient(conn)
	ctx := context.Background()

	v, err := client.Version(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.True(t, gointerfaces.EnsureVersionCompatibility(v, gointerfaces.Version{Major: 3, Minor: 0}))

	eth.EXPECT().NetPeerCount().Return(uint64(3), nil)
	count, err := client.NetPeerCount(ctx, &remoteproto.NetPeerCountRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(3), count.Count)

	head := child(nil)
	st, err := client.EngineNewPayloadV1(ctx, head)
	require.NoError(t, err)
	require.Equal(t, remoteproto.EngineStatus_VALID, st.Status)

	reply, err := client.EngineForkChoiceUpdatedV1(ctx, &remoteproto.EngineForkChoiceUpdatedRequest{
		ForkchoiceState:   forkChoice(hashOf(head), common.Hash{}, common.Hash{}),
		PayloadAttributes: &remoteproto.EnginePayloadAttributes{Timestamp: head.Timestamp + 12},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), reply.PayloadId)

	built, err := client.EngineGetPayloadV1(ctx, &remoteproto.EngineGetPayloadRequest{PayloadId: reply.PayloadId})
	require.NoError(t, err)
	require.Equal(t, builder.HeaderFromPayload(built).Hash(), hashOf(built))

	_, err = client.EngineGetPayloadV1(ctx, &remoteproto.EngineGetPayloadRequest{PayloadId: 42})
	require.True(t, grpcutil.ErrIs(err, ErrUnknownPayload))

	health, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	require.NoError(t, err)
	require.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, health.Status)
}

func dialServer(t *testing.T, s *EthBackendServer) remoteproto.ETHBACKENDClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := Serve(lis, s, 16, nil, false, log.New())
	t.Cleanup(srv.Stop)

	conn, err := grpcutil.Connect(nil, "passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return remoteproto.NewETHBACKENDClient(conn)
}

func waitSubscribers(t *testing.T, e *Events, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return e.HeaderSubscribers() == n }, 5*time.Second, 10*time.Millisecond)
}

func TestSubscribeHeaders(t *testing.T) {
	s := newTestServer(t, nil, false)
	client := dialServer(t, s)
	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	genesis := child(nil)
	next := child(genesis)
	for _, p := range []*typesproto.ExecutionPayload{genesis, next} {
		_, err := client.EngineNewPayloadV1(ctx, p)
		require.NoError(t, err)
	}

	stream, err := client.Subscribe(ctx, &remoteproto.SubscribeRequest{Type: remoteproto.Event_HEADER})
	require.NoError(t, err)
	waitSubscribers(t, s.events, 1)

	update := func(head *typesproto.ExecutionPayload) {
		_, err := client.EngineForkChoiceUpdatedV1(ctx, &remoteproto.EngineForkChoiceUpdatedRequest{
			ForkchoiceState: forkChoice(hashOf(head), common.Hash{}, common.Hash{}),
		})
		require.NoError(t, err)
	}
	update(genesis)
	update(genesis) // same head, no event
	update(next)

	for _, want := range []*typesproto.ExecutionPayload{genesis, next} {
		reply, err := stream.Recv()
		require.NoError(t, err)
		require.Equal(t, remoteproto.Event_HEADER, reply.Type)
		var header types.Header
		require.NoError(t, rlp.DecodeBytes(reply.Data, &header))
		require.Equal(t, hashOf(want), header.Hash())
		require.Equal(t, want.BlockNumber, header.Number.Uint64())
	}

	cancel()
	_, err = stream.Recv()
	require.Equal(t, codes.Canceled, status.Code(err))
	waitSubscribers(t, s.events, 0)
}

func TestSubscribeEndsOnServerShutdown(t *testing.T) {
	db, err := payloaddb.OpenInMem()
	require.NoError(t, err)
	defer db.Close()
	serverCtx, stop := context.WithCancel(t.Context())
	s := NewEthBackendServer(serverCtx, nil, db, NewEvents(), testChainConfig, false, 0, log.New())
	client := dialServer(t, s)

	stream, err := client.Subscribe(t.Context(), &remoteproto.SubscribeRequest{})
	require.NoError(t, err)
	waitSubscribers(t, s.events, 1)

	stop()
	_, err = stream.Recv()
	require.Error(t, err)
	waitSubscribers(t, s.events, 0)
}

func TestSubscribeOtherEvents(t *testing.T) {
	s := newTestServer(t, nil, false)
	client := dialServer(t, s)

	stream, err := client.Subscribe(t.Context(), &remoteproto.SubscribeRequest{Type: remoteproto.Event_PENDING_LOGS})
	require.NoError(t, err)
	_, err = stream.Recv()
	require.Equal(t, codes.Unimplemented, status.Code(err))
	require.Zero(t, s.events.HeaderSubscribers())
}

func TestEventsDropOldestForSlowSubscriber(t *testing.T) {
	e := NewEvents()
	ch, clean := e.AddHeaderSubscription()
	for i := 0; i < headerSubscriptionBuffer+1; i++ {
		e.OnNewHeader([]byte{byte(i)})
	}
	require.Len(t, ch, headerSubscriptionBuffer/2+1)
	require.Equal(t, []byte{headerSubscriptionBuffer / 2}, <-ch)

	clean()
	clean()
	require.Zero(t, e.HeaderSubscribers())
	e.OnNewHeader([]byte{0xff})
	n := 0
	for range ch {
		n++
	}
	require.Equal(t, headerSubscriptionBuffer/2, n)
}
