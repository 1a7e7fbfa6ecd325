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

package payloaddb

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/erigontech/ethbackend/gointerfaces"
	"github.com/erigontech/ethbackend/gointerfaces/typesproto"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func payload(number uint64, hash common.Hash) *typesproto.ExecutionPayload {
	return &typesproto.ExecutionPayload{
		BlockNumber:  number,
		Timestamp:    number * 12,
		BlockHash:    gointerfaces.ConvertHashToH256(hash),
		Transactions: [][]byte{{byte(number)}},
	}
}

func TestWriteAndReadPayload(t *testing.T) {
	db := newTestDB(t)
	empty, err := db.Empty()
	require.NoError(t, err)
	require.True(t, empty)

	h := common.HexToHash("0x01")
	require.NoError(t, db.WritePayload(payload(5, h)))

	empty, err = db.Empty()
	require.NoError(t, err)
	require.False(t, empty)

	got, ok, err := db.ReadPayload(h)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(5), got.BlockNumber)

	// bypass the cache
	db.cache.Purge()
	got, ok, err = db.ReadPayload(h)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, proto.Equal(payload(5, h), got))

	has, err := db.HasPayload(h)
	require.NoError(t, err)
	require.True(t, has)

	_, ok, err = db.ReadPayload(common.HexToHash("0x02"))
	require.NoError(t, err)
	require.False(t, ok)

	require.ErrorIs(t, db.WritePayload(&typesproto.ExecutionPayload{BlockNumber: 1}), ErrMissingBlockHash)
}

func TestWritePayloadKeepsOwnCopy(t *testing.T) {
	db := newTestDB(t)
	h := common.HexToHash("0x07")
	p := payload(7, h)
	require.NoError(t, db.WritePayload(p))

	p.BlockNumber = 8
	p.Transactions[0][0] = 0xff
	p.Transactions = append(p.Transactions, []byte{1})

	got, ok, err := db.ReadPayload(h)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, proto.Equal(payload(7, h), got))
}

func TestKeyLayout(t *testing.T) {
	db := newTestDB(t)
	h := common.HexToHash("0x0b")
	require.NoError(t, db.WritePayload(payload(0x0102, h)))
	fc := ForkChoice{Head: h, Safe: common.HexToHash("0x0a"), Finalized: common.HexToHash("0x09")}
	require.NoError(t, db.WriteForkChoice(fc))

	var keys []string
	it := db.db.NewIterator(nil, nil)
	for it.Next() {
		keys = append(keys, string(it.Key()))
	}
	it.Release()
	require.NoError(t, it.Error())

	require.Equal(t, []string{
		"LastForkchoice\x00finalizedBlockHash",
		"LastForkchoice\x00headBlockHash",
		"LastForkchoice\x00safeBlockHash",
		"Payload\x00" + string(h[:]),
		"PayloadNumber\x00\x00\x00\x00\x00\x00\x00\x01\x02" + string(h[:]),
	}, keys)

	head, err := db.db.Get([]byte("LastForkchoice\x00headBlockHash"), nil)
	require.NoError(t, err)
	require.Equal(t, h[:], head)

	// a table prefix never covers a table whose name extends it
	n, err := db.TableCount(Payloads)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	n, err = db.TableCount(PayloadNumber)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	n, err = db.TableCount(LastForkchoice)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	sizes, err := db.TableSizes()
	require.NoError(t, err)
	require.Len(t, sizes, len(Tables))
}

func TestPartialForkChoiceIsAbsent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.db.Put(tableKey(LastForkchoice, headBlockHashKey), make([]byte, common.HashLength), nil))
	_, ok, err := db.ReadForkChoice()
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, db.db.Put(tableKey(LastForkchoice, safeBlockHashKey), []byte{1}, nil))
	require.NoError(t, db.db.Put(tableKey(LastForkchoice, finalizedBlockHashKey), make([]byte, common.HashLength), nil))
	_, _, err = db.ReadForkChoice()
	require.ErrorContains(t, err, "corrupted safeBlockHash")
}

func TestHashesByNumber(t *testing.T) {
	db := newTestDB(t)
	a, b, c := common.HexToHash("0xa"), common.HexToHash("0xb"), common.HexToHash("0xc")
	require.NoError(t, db.WritePayload(payload(10, a)))
	require.NoError(t, db.WritePayload(payload(10, b)))
	require.NoError(t, db.WritePayload(payload(11, c)))

	hashes, err := db.PayloadHashesByNumber(10)
	require.NoError(t, err)
	require.ElementsMatch(t, []common.Hash{a, b}, hashes)

	hashes, err = db.PayloadHashesByNumber(12)
	require.NoError(t, err)
	require.Empty(t, hashes)

	n, err := db.Count()
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestForkChoice(t *testing.T) {
	db := newTestDB(t)
	_, ok, err := db.ReadForkChoice()
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = db.HeadPayload()
	require.NoError(t, err)
	require.False(t, ok)

	head := common.HexToHash("0x03")
	require.NoError(t, db.WritePayload(payload(3, head)))
	fc := ForkChoice{Head: head, Safe: common.HexToHash("0x02"), Finalized: common.HexToHash("0x01")}
	require.NoError(t, db.WriteForkChoice(fc))

	got, ok, err := db.ReadForkChoice()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, fc, got)

	p, ok, err := db.HeadPayload()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(3), p.BlockNumber)
}

func TestPruneKeepsForkChoice(t *testing.T) {
	db := newTestDB(t)
	hashes := make([]common.Hash, 6)
	for i := range hashes {
		hashes[i] = common.BytesToHash([]byte{0xee, byte(i + 1)})
		require.NoError(t, db.WritePayload(payload(uint64(i+1), hashes[i])))
	}
	// finalized sits below the prune point
	require.NoError(t, db.WriteForkChoice(ForkChoice{Head: hashes[5], Safe: hashes[4], Finalized: hashes[1]}))

	pruned, err := db.Prune(5)
	require.NoError(t, err)
	require.Equal(t, 3, pruned) // numbers 1, 3, 4

	for i, h := range hashes {
		has, err := db.HasPayload(h)
		require.NoError(t, err)
		require.Equal(t, i == 1 || i >= 4, has, "payload %d", i+1)
	}
	n, err := db.Count()
	require.NoError(t, err)
	require.Equal(t, 3, n)

	left, err := db.PayloadHashesByNumber(1)
	require.NoError(t, err)
	require.Empty(t, left)
}

func TestReopenFromDisk(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(dir)
	require.NoError(t, err)
	h := common.HexToHash("0x42")
	require.NoError(t, db.WritePayload(payload(42, h)))
	require.NoError(t, db.WriteForkChoice(ForkChoice{Head: h}))
	require.NoError(t, db.Close())

	db, err = Open(dir)
	require.NoError(t, err)
	defer db.Close()
	p, ok, err := db.HeadPayload()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(42), p.BlockNumber)
}
