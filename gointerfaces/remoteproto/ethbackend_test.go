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

package remoteproto_test

import (
	"context"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/erigontech/ethbackend/gointerfaces/remoteproto"
	"github.com/erigontech/ethbackend/gointerfaces/typesproto"
)

func hash(lo uint64) *typesproto.H256 {
	return &typesproto.H256{Hi: &typesproto.H128{}, Lo: &typesproto.H128{Lo: lo}}
}

func roundTrip[T any, P interface {
	*T
	proto.Message
}](t *testing.T, in P) P {
	t.Helper()
	enc, err := proto.Marshal(in)
	require.NoError(t, err)
	require.Len(t, enc, proto.Size(in))
	out := P(new(T))
	require.NoError(t, proto.Unmarshal(enc, out))
	return out
}

func TestEngineStatusNames(t *testing.T) {
	assert.Equal(t, "VALID", remoteproto.EngineStatus_VALID.String())
	assert.Equal(t, "INVALID_BLOCK_HASH", remoteproto.EngineStatus_INVALID_BLOCK_HASH.String())
	assert.Equal(t, "17", remoteproto.EngineStatus(17).String())
	for name, v := range remoteproto.EngineStatus_value {
		assert.Equal(t, name, remoteproto.EngineStatus(v).String())
	}
	assert.Equal(t, "HEADER", remoteproto.Event_HEADER.String())
	assert.Equal(t, "NEW_SNAPSHOT", remoteproto.Event_NEW_SNAPSHOT.String())
}

func TestMessageRoundTrips(t *testing.T) {
	st := &remoteproto.EnginePayloadStatus{
		Status:          remoteproto.EngineStatus_INVALID,
		LatestValidHash: hash(3),
		ValidationError: "bad block",
	}
	require.True(t, proto.Equal(st, roundTrip(t, st)))

	req := &remoteproto.EngineForkChoiceUpdatedRequest{
		ForkchoiceState: &remoteproto.EngineForkChoiceState{
			HeadBlockHash:      hash(1),
			SafeBlockHash:      hash(2),
			FinalizedBlockHash: hash(3),
		},
		PayloadAttributes: &remoteproto.EnginePayloadAttributes{
			Timestamp:             1700,
			PrevRandao:            hash(9),
			SuggestedFeeRecipient: &typesproto.H160{Hi: &typesproto.H128{Hi: 1}, Lo: 2},
		},
	}
	require.True(t, proto.Equal(req, roundTrip(t, req)))

	reply := &remoteproto.EngineForkChoiceUpdatedReply{
		PayloadStatus: &remoteproto.EnginePayloadStatus{Status: remoteproto.EngineStatus_VALID},
		PayloadId:     5,
	}
	got := roundTrip(t, reply)
	require.True(t, proto.Equal(reply, got))
	// an all-default status is still present
	require.NotNil(t, got.PayloadStatus)

	nodes := &remoteproto.NodesInfoReply{NodesInfo: []*typesproto.NodeInfoReply{
		{Id: "a", Ports: &typesproto.NodeInfoPorts{Listener: 30303}},
		{Id: "b", Protocols: []byte(`{}`)},
	}}
	require.True(t, proto.Equal(nodes, roundTrip(t, nodes)))

	peers := &remoteproto.PeersReply{Peers: []*typesproto.PeerInfo{{Id: "p", Caps: []string{"eth/68"}, ConnIsInbound: true}}}
	require.True(t, proto.Equal(peers, roundTrip(t, peers)))

	ev := &remoteproto.SubscribeReply{Type: remoteproto.Event_HEADER, Data: []byte{0xc0}}
	require.True(t, proto.Equal(ev, roundTrip(t, ev)))

	require.Equal(t, uint64(11), roundTrip(t, &remoteproto.NetPeerCountReply{Count: 11}).Count)
	require.Equal(t, uint64(5), roundTrip(t, &remoteproto.NetVersionReply{Id: 5}).Id)
	require.Equal(t, "erigon/v3", roundTrip(t, &remoteproto.ClientVersionReply{NodeName: "erigon/v3"}).NodeName)
	require.Equal(t, uint32(4), roundTrip(t, &remoteproto.NodesInfoRequest{Limit: 4}).Limit)
	require.Equal(t, uint64(8), roundTrip(t, &remoteproto.EngineGetPayloadRequest{PayloadId: 8}).PayloadId)
}

func TestFieldNumbers(t *testing.T) {
	marshal := func(m proto.Message) []byte {
		enc, err := proto.MarshalOptions{Deterministic: true}.Marshal(m)
		require.NoError(t, err)
		return enc
	}
	require.Equal(t, []byte{0x10, 0x01}, marshal(&remoteproto.EngineForkChoiceUpdatedReply{PayloadId: 1}))
	require.Equal(t, []byte{0x08, 0x04, 0x1a, 0x01, 'x'},
		marshal(&remoteproto.EnginePayloadStatus{Status: remoteproto.EngineStatus_INVALID_BLOCK_HASH, ValidationError: "x"}))
	require.Equal(t, []byte{0x1a, 0x00}, marshal(&remoteproto.EngineForkChoiceState{FinalizedBlockHash: &typesproto.H256{}}))
	require.Equal(t, []byte{0x0a, 0x00}, marshal(&remoteproto.EtherbaseReply{Address: &typesproto.H160{}}))
	require.Equal(t, []byte{0x08, 0x02, 0x12, 0x01, 0xaa},
		marshal(&remoteproto.SubscribeReply{Type: remoteproto.Event_PENDING_BLOCK, Data: []byte{0xaa}}))
	require.Empty(t, marshal(&remoteproto.NetVersionRequest{}))
}

func TestDescriptorMatchesEncoding(t *testing.T) {
	fd := remoteproto.File_remote_ethbackend_proto
	require.Equal(t, "remote/ethbackend.proto", fd.Path())
	sd := fd.Services().ByName("ETHBACKEND")
	require.NotNil(t, sd)
	require.Equal(t, 12, sd.Methods().Len())
	require.Equal(t, protoreflect.FullName("types.ExecutionPayload"), sd.Methods().ByName("EngineGetPayloadV1").Output().FullName())
	require.True(t, sd.Methods().ByName("Subscribe").IsStreamingServer())
	require.False(t, sd.Methods().ByName("Subscribe").IsStreamingClient())

	md := fd.Messages().ByName("EngineForkChoiceUpdatedRequest")
	in := &remoteproto.EngineForkChoiceUpdatedRequest{
		ForkchoiceState:   &remoteproto.EngineForkChoiceState{HeadBlockHash: hash(7)},
		PayloadAttributes: &remoteproto.EnginePayloadAttributes{Timestamp: 12},
	}
	enc, err := proto.Marshal(in)
	require.NoError(t, err)
	dm := dynamicpb.NewMessage(md)
	require.NoError(t, proto.Unmarshal(enc, dm))
	attrs := dm.Get(md.Fields().ByName("payloadAttributes")).Message()
	assert.Equal(t, uint64(12), attrs.Get(attrs.Descriptor().Fields().ByName("timestamp")).Uint())

	sdm := fd.Messages().ByName("EnginePayloadStatus")
	for _, name := range []protoreflect.Name{"status", "latestValidHash", "validationError"} {
		require.NotNil(t, sdm.Fields().ByName(name), name)
	}
	st := dynamicpb.NewMessage(sdm)
	st.Set(sdm.Fields().ByName("status"), protoreflect.ValueOfEnum(3))
	raw, err := proto.Marshal(st)
	require.NoError(t, err)
	var out remoteproto.EnginePayloadStatus
	require.NoError(t, proto.Unmarshal(raw, &out))
	require.Equal(t, remoteproto.EngineStatus_ACCEPTED, out.Status)

	require.NotNil(t, fd.Messages().ByName("NodesInfoReply").Fields().ByName("nodesInfo"))
	require.NotNil(t, fd.Messages().ByName("ClientVersionReply").Fields().ByName("nodeName"))
}

func TestServiceVersionOptions(t *testing.T) {
	opts, ok := remoteproto.File_remote_ethbackend_proto.Options().(*descriptorpb.FileOptions)
	require.True(t, ok)
	require.Equal(t, uint32(3), proto.GetExtension(opts, typesproto.E_ServiceMajorVersion))
	require.Equal(t, uint32(2), proto.GetExtension(opts, typesproto.E_ServiceMinorVersion))
	require.True(t, proto.HasExtension(opts, typesproto.E_ServicePatchVersion))
	require.Equal(t, uint32(0), proto.GetExtension(opts, typesproto.E_ServicePatchVersion))
	require.Equal(t, "github.com/erigontech/ethbackend/gointerfaces/remoteproto;remoteproto", opts.GetGoPackage())
}

type stubBackend struct {
	remoteproto.UnimplementedETHBACKENDServer
}

func (stubBackend) Version(context.Context, *emptypb.Empty) (*typesproto.VersionReply, error) {
	return &typesproto.VersionReply{Major: 3, Minor: 2}, nil
}

func (stubBackend) EngineGetPayloadV1(_ context.Context, req *remoteproto.EngineGetPayloadRequest) (*typesproto.ExecutionPayload, error) {
	return &typesproto.ExecutionPayload{BlockNumber: req.PayloadId, Transactions: [][]byte{{1}}}, nil
}

func (stubBackend) ClientVersion(context.Context, *remoteproto.ClientVersionRequest) (*remoteproto.ClientVersionReply, error) {
	return &remoteproto.ClientVersionReply{NodeName: "\xff\xfe"}, nil
}

func (stubBackend) Subscribe(req *remoteproto.SubscribeRequest, stream remoteproto.ETHBACKEND_SubscribeServer) error {
	for i := byte(0); i < 3; i++ {
		if err := stream.Send(&remoteproto.SubscribeReply{Type: req.Type, Data: []byte{i}}); err != nil {
			return err
		}
	}
	return nil
}

func dialStub(t *testing.T) remoteproto.ETHBACKENDClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	remoteproto.RegisterETHBACKENDServer(srv, stubBackend{})
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return remoteproto.NewETHBACKENDClient(conn)
}

func TestServiceOverGrpc(t *testing.T) {
	client := dialStub(t)
	ctx := context.Background()

	v, err := client.Version(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Equal(t, uint32(3), v.Major)
	require.Equal(t, uint32(2), v.Minor)

	p, err := client.EngineGetPayloadV1(ctx, &remoteproto.EngineGetPayloadRequest{PayloadId: 77})
	require.NoError(t, err)
	require.Equal(t, uint64(77), p.BlockNumber)
	require.Equal(t, [][]byte{{1}}, p.Transactions)

	_, err = client.Peers(ctx, &emptypb.Empty{})
	require.Equal(t, codes.Unimplemented, status.Code(err))

	// a reply carrying an invalid UTF-8 string fails to encode on the server
	_, err = client.ClientVersion(ctx, &remoteproto.ClientVersionRequest{})
	require.Equal(t, codes.Internal, status.Code(err))
}

func TestSubscribeStream(t *testing.T) {
	client := dialStub(t)
	stream, err := client.Subscribe(context.Background(), &remoteproto.SubscribeRequest{Type: remoteproto.Event_HEADER})
	require.NoError(t, err)

	var got [][]byte
	for {
		ev, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.Equal(t, remoteproto.Event_HEADER, ev.Type)
		got = append(got, ev.Data)
	}
	require.Equal(t, [][]byte{{0}, {1}, {2}}, got)
}
