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
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/beacon/engine"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/holiman/uint256"
	"github.com/ledgerwatch/log/v3"

	"github.com/erigontech/ethbackend/ethdb/privateapi"
	"github.com/erigontech/ethbackend/gointerfaces"
	"github.com/erigontech/ethbackend/gointerfaces/grpcutil"
	"github.com/erigontech/ethbackend/gointerfaces/remoteproto"
	"github.com/erigontech/ethbackend/gointerfaces/typesproto"
)

// Backend is the part of the private API the Engine API is served from.
type Backend interface {
	EngineNewPayloadV1(context.Context, *typesproto.ExecutionPayload) (*remoteproto.EnginePayloadStatus, error)
	EngineForkChoiceUpdatedV1(context.Context, *remoteproto.EngineForkChoiceUpdatedRequest) (*remoteproto.EngineForkChoiceUpdatedReply, error)
	EngineGetPayloadV1(context.Context, *remoteproto.EngineGetPayloadRequest) (*typesproto.ExecutionPayload, error)
}

var _ Backend = (*privateapi.EthBackendServer)(nil)

var ourCapabilities = []string{
	"engine_forkchoiceUpdatedV1",
	"engine_newPayloadV1",
	"engine_getPayloadV1",
}

// EngineServer exposes the Backend as the "engine" JSON-RPC namespace.
// Every exported method is an RPC method.
type EngineServer struct {
	backend Backend
	logger  log.Logger
}

func NewEngineServer(backend Backend, logger log.Logger) *EngineServer {
	return &EngineServer{backend: backend, logger: logger}
}

// NewRPCServer registers an EngineServer under the "engine" namespace.
func NewRPCServer(backend Backend, logger log.Logger) (*rpc.Server, error) {
	srv := rpc.NewServer()
	if err := srv.RegisterName("engine", NewEngineServer(backend, logger)); err != nil {
		return nil, fmt.Errorf("could not register engine api: %w", err)
	}
	return srv, nil
}

func (e *EngineServer) NewPayloadV1(ctx context.Context, payload engine.ExecutableData) (engine.PayloadStatusV1, error) {
	if payload.Withdrawals != nil {
		return engine.PayloadStatusV1{Status: engine.INVALID}, engine.InvalidParams.With(errors.New("withdrawals not supported in V1"))
	}
	req, err := ConvertExecutableData(&payload)
	if err != nil {
		return engine.PayloadStatusV1{Status: engine.INVALID}, engine.InvalidParams.With(err)
	}
	e.logger.Debug("[NewPayload] received", "number", payload.Number, "hash", payload.BlockHash)

	reply, err := e.backend.EngineNewPayloadV1(ctx, req)
	if err != nil {
		return engine.PayloadStatusV1{Status: engine.INVALID}, engineError(err)
	}
	return convertPayloadStatus(reply), nil
}

func (e *EngineServer) ForkchoiceUpdatedV1(ctx context.Context, update engine.ForkchoiceStateV1, payloadAttributes *engine.PayloadAttributes) (engine.ForkChoiceResponse, error) {
	req := &remoteproto.EngineForkChoiceUpdatedRequest{
		ForkchoiceState: &remoteproto.EngineForkChoiceState{
			HeadBlockHash:      gointerfaces.ConvertHashToH256(update.HeadBlockHash),
			SafeBlockHash:      gointerfaces.ConvertHashToH256(update.SafeBlockHash),
			FinalizedBlockHash: gointerfaces.ConvertHashToH256(update.FinalizedBlockHash),
		},
	}
	if payloadAttributes != nil {
		if payloadAttributes.Withdrawals != nil || payloadAttributes.BeaconRoot != nil {
			return engine.STATUS_INVALID, engine.InvalidPayloadAttributes.With(errors.New("withdrawals and beacon root not supported in V1"))
		}
		req.PayloadAttributes = &remoteproto.EnginePayloadAttributes{
			Timestamp:             payloadAttributes.Timestamp,
			PrevRandao:            gointerfaces.ConvertHashToH256(payloadAttributes.Random),
			SuggestedFeeRecipient: gointerfaces.ConvertAddressToH160(payloadAttributes.SuggestedFeeRecipient),
		}
	}

	reply, err := e.backend.EngineForkChoiceUpdatedV1(ctx, req)
	if err != nil {
		return engine.STATUS_INVALID, engineError(err)
	}
	resp := engine.ForkChoiceResponse{PayloadStatus: convertPayloadStatus(reply.PayloadStatus)}
	if reply.PayloadId != 0 {
		var id engine.PayloadID
		binary.BigEndian.PutUint64(id[:], reply.PayloadId)
		resp.PayloadID = &id
	}
	return resp, nil
}

func (e *EngineServer) GetPayloadV1(ctx context.Context, payloadID engine.PayloadID) (*engine.ExecutableData, error) {
	payload, err := e.backend.EngineGetPayloadV1(ctx, &remoteproto.EngineGetPayloadRequest{
		PayloadId: binary.BigEndian.Uint64(payloadID[:]),
	})
	if err != nil {
		return nil, engineError(err)
	}
	return ConvertPayload(payload), nil
}

// ExchangeCapabilities returns the engine methods served here. The consensus
// client's list is only logged.
func (e *EngineServer) ExchangeCapabilities(fromCl []string) []string {
	missing := map[string]struct{}{}
	for _, m := range fromCl {
		missing[m] = struct{}{}
	}
	for _, m := range ourCapabilities {
		delete(missing, m)
	}
	if len(missing) > 0 {
		e.logger.Debug("[ExchangeCapabilities] consensus client methods not served", "count", len(missing))
	}
	return ourCapabilities
}

// engineError maps private API errors, local or carried over gRPC, to Engine
// API error codes.
func engineError(err error) error {
	switch {
	case grpcutil.ErrIs(err, privateapi.ErrUnknownPayload):
		return engine.UnknownPayload
	case grpcutil.ErrIs(err, privateapi.ErrInvalidForkChoiceState):
		return engine.InvalidForkChoiceState
	case grpcutil.ErrIs(err, privateapi.ErrInvalidPayloadAttributes):
		return engine.InvalidPayloadAttributes.With(err)
	default:
		return engine.GenericServerError.With(err)
	}
}

func convertPayloadStatus(s *remoteproto.EnginePayloadStatus) engine.PayloadStatusV1 {
	out := engine.PayloadStatusV1{Status: s.GetStatus().String()}
	if s.GetLatestValidHash() != nil {
		h := gointerfaces.ConvertH256ToHash(s.LatestValidHash)
		out.LatestValidHash = &h
	}
	if s.GetValidationError() != "" {
		msg := s.ValidationError
		out.ValidationError = &msg
	}
	return out
}

// ConvertExecutableData converts a JSON payload to its wire form.
func ConvertExecutableData(data *engine.ExecutableData) (*typesproto.ExecutionPayload, error) {
	if data.BaseFeePerGas == nil {
		return nil, errors.New("missing base fee")
	}
	baseFee, overflow := uint256.FromBig(data.BaseFeePerGas)
	if overflow {
		return nil, fmt.Errorf("base fee %v overflows 256 bits", data.BaseFeePerGas)
	}
	if len(data.LogsBloom) != 0 && len(data.LogsBloom) != 256 {
		return nil, fmt.Errorf("invalid logs bloom length %d", len(data.LogsBloom))
	}
	return &typesproto.ExecutionPayload{
		ParentHash:    gointerfaces.ConvertHashToH256(data.ParentHash),
		Coinbase:      gointerfaces.ConvertAddressToH160(data.FeeRecipient),
		StateRoot:     gointerfaces.ConvertHashToH256(data.StateRoot),
		ReceiptRoot:   gointerfaces.ConvertHashToH256(data.ReceiptsRoot),
		LogsBloom:     gointerfaces.ConvertBytesToH2048(data.LogsBloom),
		PrevRandao:    gointerfaces.ConvertHashToH256(data.Random),
		BlockNumber:   data.Number,
		GasLimit:      data.GasLimit,
		GasUsed:       data.GasUsed,
		Timestamp:     data.Timestamp,
		ExtraData:     data.ExtraData,
		BaseFeePerGas: gointerfaces.ConvertUint256IntToH256(baseFee),
		BlockHash:     gointerfaces.ConvertHashToH256(data.BlockHash),
		Transactions:  data.Transactions,
	}, nil
}

// ConvertPayload converts a wire payload to its JSON form.
func ConvertPayload(p *typesproto.ExecutionPayload) *engine.ExecutableData {
	txs := p.GetTransactions()
	if txs == nil {
		txs = [][]byte{}
	}
	extra := p.GetExtraData()
	if extra == nil {
		extra = []byte{}
	}
	return &engine.ExecutableData{
		ParentHash:    gointerfaces.ConvertH256ToHash(p.GetParentHash()),
		FeeRecipient:  gointerfaces.ConvertH160toAddress(p.GetCoinbase()),
		StateRoot:     gointerfaces.ConvertH256ToHash(p.GetStateRoot()),
		ReceiptsRoot:  gointerfaces.ConvertH256ToHash(p.GetReceiptRoot()),
		LogsBloom:     gointerfaces.ConvertH2048ToBloom(p.GetLogsBloom()).Bytes(),
		Random:        gointerfaces.ConvertH256ToHash(p.GetPrevRandao()),
		Number:        p.GetBlockNumber(),
		GasLimit:      p.GetGasLimit(),
		GasUsed:       p.GetGasUsed(),
		Timestamp:     p.GetTimestamp(),
		ExtraData:     extra,
		BaseFeePerGas: gointerfaces.ConvertH256ToUint256Int(p.GetBaseFeePerGas()).ToBig(),
		BlockHash:     gointerfaces.ConvertH256ToHash(p.GetBlockHash()),
		Transactions:  txs,
	}
}
