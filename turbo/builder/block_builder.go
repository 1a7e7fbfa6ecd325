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
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ledgerwatch/log/v3"

	"github.com/erigontech/ethbackend/gointerfaces/typesproto"
)

// Parameters of a payload build requested through fork choice updates.
type Parameters struct {
	ParentHash            common.Hash
	Timestamp             uint64
	PrevRandao            common.Hash
	SuggestedFeeRecipient common.Address
}

// BlockBuilderFunc builds a payload on top of param.ParentHash. It should
// return early, with the best payload so far, once interrupt is set.
type BlockBuilderFunc func(param *Parameters, interrupt *atomic.Bool) (*typesproto.ExecutionPayload, error)

// BlockBuilder wraps a goroutine that builds Proof-of-Stake payloads (PoS "mining")
type BlockBuilder struct {
	interrupt atomic.Bool
	syncCond  *sync.Cond
	done      bool
	payload   *typesproto.ExecutionPayload
	err       error
	logger    log.Logger
}

func NewBlockBuilder(build BlockBuilderFunc, param *Parameters, logger log.Logger) *BlockBuilder {
	b := &BlockBuilder{syncCond: sync.NewCond(new(sync.Mutex)), logger: logger}

	go func() {
		payload, err := build(param, &b.interrupt)

		b.syncCond.L.Lock()
		defer b.syncCond.L.Unlock()
		b.payload = payload
		b.err = err
		b.done = true
		b.syncCond.Broadcast()
	}()

	return b
}

func (b *BlockBuilder) Interrupted() bool { return b.interrupt.Load() }

// Stop interrupts the build and waits for its result. It may be called more
// than once.
func (b *BlockBuilder) Stop() (*typesproto.ExecutionPayload, error) {
	b.interrupt.Store(true)

	b.syncCond.L.Lock()
	defer b.syncCond.L.Unlock()
	for !b.done {
		b.syncCond.Wait()
	}

	if b.err != nil {
		b.logger.Error("BlockBuilder", "err", b.err)
	}
	return b.payload, b.err
}
