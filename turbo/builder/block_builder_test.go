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

package builder

import (
	"errors"
	"math/big"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/ethereum/go-ethereum/trie"
	"github.com/holiman/uint256"
	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/require"

	"github.com/erigontech/ethbackend/gointerfaces"
	"github.com/erigontech/ethbackend/gointerfaces/typesproto"
)

var testChainConfig = &params.ChainConfig{ChainID: big.NewInt(1), LondonBlock: big.NewInt(0)}

func TestBlockBuilderStopInterrupts(t *testing.T) {
	started := make(chan struct{})
	build := func(param *Parameters, interrupt *atomic.Bool) (*typesproto.ExecutionPayload, error) {
		close(started)
		for !interrupt.Load() {
			time.Sleep(time.Millisecond)
		}
		return &typesproto.ExecutionPayload{Timestamp: param.Timestamp}, nil
	}
	b := NewBlockBuilder(build, &Parameters{Timestamp: 77}, log.New())
	<-started
	require.False(t, b.Interrupted())

	p, err := b.Stop()
	require.NoError(t, err)
	require.Equal(t, uint64(77), p.Timestamp)
	require.True(t, b.Interrupted())

	// repeated stops return the same result
	again, err := b.Stop()
	require.NoError(t, err)
	require.Same(t, p, again)
}

func TestBlockBuilderError(t *testing.T) {
	errBuild := errors.New("no parent")
	b := NewBlockBuilder(func(*Parameters, *atomic.Bool) (*typesproto.ExecutionPayload, error) {
		return nil, errBuild
	}, &Parameters{}, log.New())
	p, err := b.Stop()
	require.ErrorIs(t, err, errBuild)
	require.Nil(t, p)
}

func parentPayload(gasUsed uint64) *typesproto.ExecutionPayload {
	p := &typesproto.ExecutionPayload{
		ParentHash:    gointerfaces.ConvertHashToH256(common.HexToHash("0x11")),
		Coinbase:      gointerfaces.ConvertAddressToH160(common.HexToAddress("0x22")),
		StateRoot:     gointerfaces.ConvertHashToH256(common.HexToHash("0x33")),
		ReceiptRoot:   gointerfaces.ConvertHashToH256(types.EmptyReceiptsHash),
		LogsBloom:     gointerfaces.ConvertBloomToH2048(types.Bloom{}),
		PrevRandao:    gointerfaces.ConvertHashToH256(common.HexToHash("0x44")),
		BlockNumber:   100,
		GasLimit:      30_000_000,
		GasUsed:       gasUsed,
		Timestamp:     1000,
		BaseFeePerGas: gointerfaces.ConvertUint256IntToH256(uint256.NewInt(1000)),
	}
	p.BlockHash = gointerfaces.ConvertHashToH256(HeaderFromPayload(p).Hash())
	return p
}

func TestEmptyPayloadBuilder(t *testing.T) {
	for _, tc := range []struct {
		gasUsed uint64
		baseFee uint64
	}{
		{gasUsed: 0, baseFee: 875},
		{gasUsed: 15_000_000, baseFee: 1000},
	} {
		parent := parentPayload(tc.gasUsed)
		parentHash := gointerfaces.ConvertH256ToHash(parent.BlockHash)
		read := func(hash common.Hash) (*typesproto.ExecutionPayload, bool, error) {
			if hash == parentHash {
				return parent, true, nil
			}
			return nil, false, nil
		}
		param := &Parameters{
			ParentHash:            parentHash,
			Timestamp:             1012,
			PrevRandao:            common.HexToHash("0x55"),
			SuggestedFeeRecipient: common.HexToAddress("0x66"),
		}
		p, err := EmptyPayloadBuilder(read, testChainConfig)(param, new(atomic.Bool))
		require.NoError(t, err)

		require.Equal(t, uint64(101), p.BlockNumber)
		require.Equal(t, uint64(30_000_000), p.GasLimit)
		require.Zero(t, p.GasUsed)
		require.Empty(t, p.Transactions)
		require.Equal(t, uint64(1012), p.Timestamp)
		require.Equal(t, parentHash, gointerfaces.ConvertH256ToHash(p.ParentHash))
		require.Equal(t, common.HexToHash("0x33"), gointerfaces.ConvertH256ToHash(p.StateRoot))
		require.Equal(t, common.HexToAddress("0x66"), gointerfaces.ConvertH160toAddress(p.Coinbase))
		require.Equal(t, common.HexToHash("0x55"), gointerfaces.ConvertH256ToHash(p.PrevRandao))
		require.Equal(t, tc.baseFee, gointerfaces.ConvertH256ToUint256Int(p.BaseFeePerGas).Uint64())
		require.Equal(t, HeaderFromPayload(p).Hash(), gointerfaces.ConvertH256ToHash(p.BlockHash))
	}

	_, err := EmptyPayloadBuilder(func(common.Hash) (*typesproto.ExecutionPayload, bool, error) {
		return nil, false, nil
	}, testChainConfig)(&Parameters{}, new(atomic.Bool))
	require.Error(t, err)
}

func TestHeaderFromPayload(t *testing.T) {
	to := common.HexToAddress("0x77")
	txs := types.Transactions{
		types.NewTx(&types.LegacyTx{Nonce: 1, GasPrice: big.NewInt(7), Gas: 21000, To: &to, Value: big.NewInt(1)}),
		types.NewTx(&types.DynamicFeeTx{ChainID: big.NewInt(1), Nonce: 2, GasTipCap: big.NewInt(1), GasFeeCap: big.NewInt(9), Gas: 21000, To: &to}),
	}
	raw := make([][]byte, len(txs))
	for i, tx := range txs {
		enc, err := tx.MarshalBinary()
		require.NoError(t, err)
		raw[i] = enc
	}

	p := parentPayload(0)
	p.Transactions = raw
	p.ExtraData = []byte("ethbackend")
	h := HeaderFromPayload(p)

	require.Equal(t, types.DeriveSha(txs, trie.NewStackTrie(nil)), h.TxHash)
	require.Equal(t, types.EmptyUncleHash, h.UncleHash)
	require.Zero(t, h.Difficulty.Sign())
	require.Equal(t, types.BlockNonce{}, h.Nonce)
	require.Equal(t, common.HexToHash("0x44"), h.MixDigest)
	require.Equal(t, int64(1000), h.BaseFee.Int64())
	require.Equal(t, uint64(100), h.Number.Uint64())
	require.Equal(t, []byte("ethbackend"), h.Extra)

	require.Equal(t, types.EmptyTxsHash, HeaderFromPayload(parentPayload(0)).TxHash)

	// any change of content changes the hash
	before := h.Hash()
	p.Timestamp++
	require.NotEqual(t, before, HeaderFromPayload(p).Hash())
}
