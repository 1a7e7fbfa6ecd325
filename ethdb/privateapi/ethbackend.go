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
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/ledgerwatch/log/v3"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/erigontech/ethbackend/ethdb/payloaddb"
	"github.com/erigontech/ethbackend/gointerfaces"
	"github.com/erigontech/ethbackend/gointerfaces/remoteproto"
	"github.com/erigontech/ethbackend/gointerfaces/typesproto"
	"github.com/erigontech/ethbackend/metrics"
	"github.com/erigontech/ethbackend/metrics/methelp"
	"github.com/erigontech/ethbackend/p2p/sentry"
	ethparams "github.com/erigontech/ethbackend/params"
	"github.com/erigontech/ethbackend/turbo/builder"
)

// EthBackendAPIVersion
// 2.0.0 - move all mining-related methods to 'txpool/mining' server
// 2.1.0 - add NetPeerCount function
// 2.2.0 - add NodesInfo function
// 3.0.0 - adding PoS interfaces
// 3.1.0 - add Peers function
// 3.2.0 - add Etherbase, NetVersion, ProtocolVersion, ClientVersion and Subscribe
var EthBackendAPIVersion = &typesproto.VersionReply{Major: 3, Minor: 2, Patch: 0}

const MaxBuilders = 128

var (
	ErrNotPoS                   = errors.New("not a proof-of-stake chain")
	ErrNotProposer              = errors.New("execution layer not running as a proposer. enable proposer by taking out the --proposer.disable flag on startup")
	ErrUnknownPayload           = errors.New("unknown payload")
	ErrInvalidForkChoiceState   = errors.New("missing fork choice state")
	ErrInvalidPayloadAttributes = errors.New("invalid payload attributes")
	ErrNoEtherbase              = errors.New("etherbase must be explicitly specified")
)

var (
	headBlockGauge = metrics.GetOrCreateGauge("engine_head_block")
	buildersGauge  = metrics.GetOrCreateGauge("engine_pending_builders")
)

type EthBackendServer struct {
	remoteproto.UnimplementedETHBACKENDServer // must be embedded to have forward compatible implementations.

	ctx    context.Context
	eth    EthBackend
	events *Events
	db     *payloaddb.DB
	config *params.ChainConfig
	// Block proposing for proof-of-stake
	payloadId     uint64
	builders      map[uint64]*builder.BlockBuilder
	builderFunc   builder.BlockBuilderFunc
	proposing     bool
	pruneDistance uint64
	lock          sync.Mutex // Engine API is asynchronous, we want to avoid CL to call different APIs at the same time
	logger        log.Logger
}

//go:generate mockgen -typed=true -source=./ethbackend.go -destination=./ethbackend_mock.go -package=privateapi EthBackend
type EthBackend interface {
	Etherbase() (common.Address, error)
	NetVersion() (uint64, error)
	NetPeerCount() (uint64, error)
	NodesInfo(limit int) ([]*typesproto.NodeInfoReply, error)
	Peers() ([]*typesproto.PeerInfo, error)
}

// NewEthBackendServer serves the backend and Engine API over db. With a
// non-zero pruneDistance, payloads that many blocks below the finalized one
// are dropped on every fork choice update. Subscribe streams end when ctx is
// done.
func NewEthBackendServer(ctx context.Context, eth EthBackend, db *payloaddb.DB, events *Events, config *params.ChainConfig,
	proposing bool, pruneDistance uint64, logger log.Logger,
) *EthBackendServer {
	return &EthBackendServer{ctx: ctx, eth: eth, events: events, db: db, config: config,
		builders:      make(map[uint64]*builder.BlockBuilder),
		builderFunc:   builder.EmptyPayloadBuilder(db.ReadPayload, config),
		proposing:     proposing,
		pruneDistance: pruneDistance,
		logger:        logger,
	}
}

func (s *EthBackendServer) Version(context.Context, *emptypb.Empty) (*typesproto.VersionReply, error) {
	return EthBackendAPIVersion, nil
}

func (s *EthBackendServer) Etherbase(_ context.Context, _ *remoteproto.EtherbaseRequest) (*remoteproto.EtherbaseReply, error) {
	out := &remoteproto.EtherbaseReply{Address: gointerfaces.ConvertAddressToH160(common.Address{})}

	base, err := s.eth.Etherbase()
	if err != nil {
		return out, err
	}

	out.Address = gointerfaces.ConvertAddressToH160(base)
	return out, nil
}

func (s *EthBackendServer) NetVersion(_ context.Context, _ *remoteproto.NetVersionRequest) (*remoteproto.NetVersionReply, error) {
	id, err := s.eth.NetVersion()
	if err != nil {
		return &remoteproto.NetVersionReply{}, err
	}
	return &remoteproto.NetVersionReply{Id: id}, nil
}

func (s *EthBackendServer) NetPeerCount(_ context.Context, _ *remoteproto.NetPeerCountRequest) (*remoteproto.NetPeerCountReply, error) {
	id, err := s.eth.NetPeerCount()
	if err != nil {
		return &remoteproto.NetPeerCountReply{}, err
	}
	return &remoteproto.NetPeerCountReply{Count: id}, nil
}

func (s *EthBackendServer) NodeInfo(_ context.Context, r *remoteproto.NodesInfoRequest) (*remoteproto.NodesInfoReply, error) {
	nodesInfo, err := s.eth.NodesInfo(int(r.GetLimit()))
	if err != nil {
		return nil, err
	}
	return &remoteproto.NodesInfoReply{NodesInfo: nodesInfo}, nil
}

func (s *EthBackendServer) Peers(_ context.Context, _ *emptypb.Empty) (*remoteproto.PeersReply, error) {
	peers, err := s.eth.Peers()
	if err != nil {
		return nil, err
	}
	return &remoteproto.PeersReply{Peers: peers}, nil
}

// Subscribe streams the RLP header of every new fork choice head until the
// client goes away or the server shuts down. Only HEADER events are produced.
func (s *EthBackendServer) Subscribe(r *remoteproto.SubscribeRequest, subscribeServer remoteproto.ETHBACKEND_SubscribeServer) (err error) {
	if r.GetType() != remoteproto.Event_HEADER {
		return status.Errorf(codes.Unimplemented, "event %s is not supported", r.GetType())
	}
	ch, clean := s.events.AddHeaderSubscription()
	defer clean()
	s.logger.Debug("new subscription to newHeaders established")
	defer func() {
		if err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Warn("subscription to newHeaders closed", "reason", err)
		} else {
			s.logger.Debug("subscription to newHeaders closed")
		}
	}()
	for {
		select {
		case <-s.ctx.Done():
			return s.ctx.Err()
		case <-subscribeServer.Context().Done():
			return subscribeServer.Context().Err()
		case headerRLP := <-ch:
			if err = subscribeServer.Send(&remoteproto.SubscribeReply{
				Type: remoteproto.Event_HEADER,
				Data: headerRLP,
			}); err != nil {
				return err
			}
		}
	}
}

func (s *EthBackendServer) ProtocolVersion(_ context.Context, _ *remoteproto.ProtocolVersionRequest) (*remoteproto.ProtocolVersionReply, error) {
	return &remoteproto.ProtocolVersionReply{Id: sentry.ProtocolVersion}, nil
}

func (s *EthBackendServer) ClientVersion(_ context.Context, _ *remoteproto.ClientVersionRequest) (*remoteproto.ClientVersionReply, error) {
	return &remoteproto.ClientVersionReply{NodeName: ethparams.NodeName()}, nil
}

func countStatus(method string, status *remoteproto.EnginePayloadStatus) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`engine_payload_status{method=%q,status=%q}`, method, status.Status)).AddInt(1)
}

func invalid(latestValid *common.Hash, err error) *remoteproto.EnginePayloadStatus {
	reply := &remoteproto.EnginePayloadStatus{Status: remoteproto.EngineStatus_INVALID, ValidationError: err.Error()}
	if latestValid != nil {
		reply.LatestValidHash = gointerfaces.ConvertHashToH256(*latestValid)
	}
	return reply
}

func missingPayloadField(req *typesproto.ExecutionPayload) string {
	switch {
	case req.ParentHash == nil:
		return "parent_hash"
	case req.Coinbase == nil:
		return "coinbase"
	case req.StateRoot == nil:
		return "state_root"
	case req.ReceiptRoot == nil:
		return "receipt_root"
	case req.LogsBloom == nil:
		return "logs_bloom"
	case req.PrevRandao == nil:
		return "prev_randao"
	case req.BaseFeePerGas == nil:
		return "base_fee_per_gas"
	case req.BlockHash == nil:
		return "block_hash"
	}
	return ""
}

// EngineNewPayloadV1 validates the payload against its parent and stores it.
// Transactions are not executed.
func (s *EthBackendServer) EngineNewPayloadV1(ctx context.Context, req *typesproto.ExecutionPayload) (*remoteproto.EnginePayloadStatus, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.config.TerminalTotalDifficulty == nil {
		return nil, ErrNotPoS
	}
	timer := methelp.NewHistTimer("engine_new_payload")
	defer timer.PutSince()

	reply, err := s.newPayload(req)
	if err != nil {
		return nil, err
	}
	countStatus("new_payload", reply)
	s.logger.Debug("[NewPayload] processed", "number", req.GetBlockNumber(), "hash", gointerfaces.ConvertH256ToHash(req.GetBlockHash()), "status", reply.Status)
	return reply, nil
}

func (s *EthBackendServer) newPayload(req *typesproto.ExecutionPayload) (*remoteproto.EnginePayloadStatus, error) {
	if field := missingPayloadField(req); field != "" {
		return invalid(nil, fmt.Errorf("missing %s", field)), nil
	}

	blockHash := gointerfaces.ConvertH256ToHash(req.BlockHash)
	if builder.HeaderFromPayload(req).Hash() != blockHash {
		return &remoteproto.EnginePayloadStatus{Status: remoteproto.EngineStatus_INVALID_BLOCK_HASH}, nil
	}
	valid := &remoteproto.EnginePayloadStatus{Status: remoteproto.EngineStatus_VALID, LatestValidHash: req.BlockHash}

	known, err := s.db.HasPayload(blockHash)
	if err != nil {
		return nil, err
	}
	if known {
		return valid, nil
	}

	empty, err := s.db.Empty()
	if err != nil {
		return nil, err
	}
	if empty {
		s.logger.Info("[NewPayload] anchoring payload store", "number", req.BlockNumber, "hash", blockHash)
		return valid, s.db.WritePayload(req)
	}

	parentHash := gointerfaces.ConvertH256ToHash(req.ParentHash)
	parent, ok, err := s.db.ReadPayload(parentHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		if err := s.db.WritePayload(req); err != nil {
			return nil, err
		}
		return &remoteproto.EnginePayloadStatus{Status: remoteproto.EngineStatus_SYNCING}, nil
	}

	if req.BlockNumber != parent.BlockNumber+1 {
		return invalid(&parentHash, fmt.Errorf("invalid block number %d, parent is %d", req.BlockNumber, parent.BlockNumber)), nil
	}
	if req.Timestamp <= parent.Timestamp {
		return invalid(&parentHash, fmt.Errorf("invalid timestamp %d, parent has %d", req.Timestamp, parent.Timestamp)), nil
	}
	return valid, s.db.WritePayload(req)
}

// EngineForkChoiceUpdatedV1 either states new block head or request the assembling of a new block
func (s *EthBackendServer) EngineForkChoiceUpdatedV1(ctx context.Context, req *remoteproto.EngineForkChoiceUpdatedRequest) (*remoteproto.EngineForkChoiceUpdatedReply, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.config.TerminalTotalDifficulty == nil {
		return nil, ErrNotPoS
	}
	if req.GetForkchoiceState() == nil {
		return nil, ErrInvalidForkChoiceState
	}
	timer := methelp.NewHistTimer("engine_fork_choice_updated")
	defer timer.PutSince()

	fc := payloaddb.ForkChoice{
		Head:      gointerfaces.ConvertH256ToHash(req.ForkchoiceState.HeadBlockHash),
		Safe:      gointerfaces.ConvertH256ToHash(req.ForkchoiceState.SafeBlockHash),
		Finalized: gointerfaces.ConvertH256ToHash(req.ForkchoiceState.FinalizedBlockHash),
	}

	head, ok, err := s.db.ReadPayload(fc.Head)
	if err != nil {
		return nil, err
	}
	if !ok {
		status := &remoteproto.EnginePayloadStatus{Status: remoteproto.EngineStatus_SYNCING}
		countStatus("fork_choice_updated", status)
		return &remoteproto.EngineForkChoiceUpdatedReply{PayloadStatus: status}, nil
	}

	for _, h := range []struct {
		name string
		hash common.Hash
	}{{"safe", fc.Safe}, {"finalized", fc.Finalized}} {
		if h.hash == (common.Hash{}) {
			continue
		}
		known, err := s.db.HasPayload(h.hash)
		if err != nil {
			return nil, err
		}
		if !known {
			status := invalid(nil, fmt.Errorf("unknown %s block %x", h.name, h.hash))
			countStatus("fork_choice_updated", status)
			return &remoteproto.EngineForkChoiceUpdatedReply{PayloadStatus: status}, nil
		}
	}

	prev, hadPrev, err := s.db.ReadForkChoice()
	if err != nil {
		return nil, err
	}
	if err := s.db.WriteForkChoice(fc); err != nil {
		return nil, err
	}
	headBlockGauge.SetUint64(head.BlockNumber)
	if !hadPrev || prev.Head != fc.Head {
		s.publishHead(head)
	}
	s.prune(fc.Finalized)

	status := &remoteproto.EnginePayloadStatus{Status: remoteproto.EngineStatus_VALID, LatestValidHash: req.ForkchoiceState.HeadBlockHash}
	countStatus("fork_choice_updated", status)

	// No need for payload building
	if req.PayloadAttributes == nil {
		return &remoteproto.EngineForkChoiceUpdatedReply{PayloadStatus: status}, nil
	}

	if !s.proposing {
		return nil, ErrNotProposer
	}
	if req.PayloadAttributes.Timestamp <= head.Timestamp {
		return nil, fmt.Errorf("%w: timestamp %d not after head %d", ErrInvalidPayloadAttributes, req.PayloadAttributes.Timestamp, head.Timestamp)
	}

	s.evictOldBuilders()

	// payload IDs start from 1 (0 signifies null)
	s.payloadId++

	param := &builder.Parameters{
		ParentHash:            fc.Head,
		Timestamp:             req.PayloadAttributes.Timestamp,
		PrevRandao:            gointerfaces.ConvertH256ToHash(req.PayloadAttributes.PrevRandao),
		SuggestedFeeRecipient: gointerfaces.ConvertH160toAddress(req.PayloadAttributes.SuggestedFeeRecipient),
	}
	s.builders[s.payloadId] = builder.NewBlockBuilder(s.builderFunc, param, s.logger)
	buildersGauge.SetInt(len(s.builders))
	s.logger.Debug("[ForkChoiceUpdated] BlockBuilder added", "payload", s.payloadId, "parent", fc.Head)

	return &remoteproto.EngineForkChoiceUpdatedReply{PayloadStatus: status, PayloadId: s.payloadId}, nil
}

func (s *EthBackendServer) publishHead(head *typesproto.ExecutionPayload) {
	headerRLP, err := rlp.EncodeToBytes(builder.HeaderFromPayload(head))
	if err != nil {
		s.logger.Warn("[ForkChoiceUpdated] encode head header", "err", err)
		return
	}
	s.events.OnNewHeader(headerRLP)
}

// prune drops payloads far enough below finalized. Failures are logged only,
// the fork choice itself has already been persisted.
func (s *EthBackendServer) prune(finalized common.Hash) {
	if s.pruneDistance == 0 || finalized == (common.Hash{}) {
		return
	}
	p, ok, err := s.db.ReadPayload(finalized)
	if err != nil || !ok || p.BlockNumber <= s.pruneDistance {
		return
	}
	pruned, err := s.db.Prune(p.BlockNumber - s.pruneDistance)
	if err != nil {
		s.logger.Warn("[ForkChoiceUpdated] prune failed", "err", err)
		return
	}
	if pruned > 0 {
		s.logger.Debug("[ForkChoiceUpdated] pruned payloads", "count", pruned, "below", p.BlockNumber-s.pruneDistance)
	}
}

// EngineGetPayloadV1 retrieves previously assembled payload (Validators only)
func (s *EthBackendServer) EngineGetPayloadV1(ctx context.Context, req *remoteproto.EngineGetPayloadRequest) (*typesproto.ExecutionPayload, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.proposing {
		return nil, ErrNotProposer
	}
	if s.config.TerminalTotalDifficulty == nil {
		return nil, ErrNotPoS
	}

	b, ok := s.builders[req.GetPayloadId()]
	if !ok {
		s.logger.Warn("Payload not stored", "payloadId", req.GetPayloadId())
		return nil, ErrUnknownPayload
	}
	return b.Stop()
}

func (s *EthBackendServer) evictOldBuilders() {
	ids := make([]uint64, 0, len(s.builders))
	for id := range s.builders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	// remove old builders so that at most MaxBuilders - 1 remain
	for i := 0; i <= len(ids)-MaxBuilders; i++ {
		s.builders[ids[i]].Stop()
		delete(s.builders, ids[i])
	}
}

// StopBuilders interrupts every pending build, waiting for each to return.
func (s *EthBackendServer) StopBuilders() {
	s.lock.Lock()
	defer s.lock.Unlock()

	for id, b := range s.builders {
		b.Stop()
		delete(s.builders, id)
	}
	buildersGauge.SetInt(0)
}
