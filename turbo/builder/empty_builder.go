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
	"bytes"
	"fmt"
	"math/big"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/consensus/misc/eip1559"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/ethereum/go-ethereum/trie"
	"github.com/holiman/uint256"

	"github.com/erigontech/ethbackend/gointerfaces"
	"github.com/erigontech/ethbackend/gointerfaces/typesproto"
)

// PayloadReader looks up a stored payload by block hash.
type PayloadReader func(hash common.Hash) (*typesproto.ExecutionPayload, bool, error)

// EmptyPayloadBuilder builds transaction-free children of known payloads. The
// state root is carried over from the parent as nothing is executed.
func EmptyPayloadBuilder(read PayloadReader, config *params.ChainConfig) BlockBuilderFunc {
	return func(param *Parameters, _ *atomic.Bool) (*typesproto.ExecutionPayload, error) {
		parent, ok, err := read(param.ParentHash)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("unknown parent %x", param.ParentHash)
		}
		parentHeader := HeaderFromPayload(parent)
		baseFee, overflow := uint256.FromBig(eip1559.CalcBaseFee(config, parentHeader))
		if overflow {
			return nil, fmt.Errorf("base fee overflow on top of %x", param.ParentHash)
		}

		var bloom types.Bloom
		payload := &typesproto.ExecutionPayload{
			ParentHash:    gointerfaces.ConvertHashToH256(param.ParentHash),
			Coinbase:      gointerfaces.ConvertAddressToH160(param.SuggestedFeeRecipient),
			StateRoot:     gointerfaces.ConvertHashToH256(parentHeader.Root),
			ReceiptRoot:   gointerfaces.ConvertHashToH256(types.EmptyReceiptsHash),
			LogsBloom:     gointerfaces.ConvertBloomToH2048(bloom),
			PrevRandao:    gointerfaces.ConvertHashToH256(param.PrevRandao),
			BlockNumber:   parent.BlockNumber + 1,
			GasLimit:      parent.GasLimit,
			Timestamp:     param.Timestamp,
			BaseFeePerGas: gointerfaces.ConvertUint256IntToH256(baseFee),
		}
		payload.BlockHash = gointerfaces.ConvertHashToH256(HeaderFromPayload(payload).Hash())
		return payload, nil
	}
}

// rawTransactions feeds already encoded transactions to types.DeriveSha.
type rawTransactions [][]byte

func (r rawTransactions) Len() int { return len(r) }

func (r rawTransactions) EncodeIndex(i int, w *bytes.Buffer) { w.Write(r[i]) }

// HeaderFromPayload rebuilds the post-merge block header a payload describes.
// Absent fields read as zero.
func HeaderFromPayload(p *typesproto.ExecutionPayload) *types.Header {
	return &types.Header{
		ParentHash:  gointerfaces.ConvertH256ToHash(p.GetParentHash()),
		UncleHash:   types.EmptyUncleHash,
		Coinbase:    gointerfaces.ConvertH160toAddress(p.GetCoinbase()),
		Root:        gointerfaces.ConvertH256ToHash(p.GetStateRoot()),
		TxHash:      types.DeriveSha(rawTransactions(p.GetTransactions()), trie.NewStackTrie(nil)),
		ReceiptHash: gointerfaces.ConvertH256ToHash(p.GetReceiptRoot()),
		Bloom:       gointerfaces.ConvertH2048ToBloom(p.GetLogsBloom()),
		Difficulty:  new(big.Int),
		Number:      new(big.Int).SetUint64(p.GetBlockNumber()),
		GasLimit:    p.GetGasLimit(),
		GasUsed:     p.GetGasUsed(),
		Time:        p.GetTimestamp(),
		Extra:       p.GetExtraData(),
		MixDigest:   gointerfaces.ConvertH256ToHash(p.GetPrevRandao()),
		BaseFee:     gointerfaces.ConvertH256ToUint256Int(p.GetBaseFeePerGas()).ToBig(),
	}
}
