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

// Package payloaddb persists execution payloads received over the engine API
// together with the last fork choice.
package payloaddb

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
	"google.golang.org/protobuf/proto"

	"github.com/erigontech/ethbackend/gointerfaces"
	"github.com/erigontech/ethbackend/gointerfaces/typesproto"
)

const cacheSize = 256

// Tables. goleveldb has a single keyspace, so every key starts with its
// table name followed by a zero byte.
const (
	Payloads       = "Payload"        // block_hash -> ExecutionPayload (proto)
	PayloadNumber  = "PayloadNumber"  // block_num_u64 + block_hash -> nil
	LastForkchoice = "LastForkchoice" // headBlockHash, safeBlockHash, finalizedBlockHash
)

var Tables = []string{Payloads, PayloadNumber, LastForkchoice}

var (
	headBlockHashKey      = []byte("headBlockHash")
	safeBlockHashKey      = []byte("safeBlockHash")
	finalizedBlockHashKey = []byte("finalizedBlockHash")
)

func tablePrefix(table string) []byte {
	return append([]byte(table), 0)
}

func tableKey(table string, parts ...[]byte) []byte {
	k := tablePrefix(table)
	for _, p := range parts {
		k = append(k, p...)
	}
	return k
}

func encodeBlockNumber(number uint64) []byte {
	enc := make([]byte, 8)
	binary.BigEndian.PutUint64(enc, number)
	return enc
}

var ErrMissingBlockHash = errors.New("payload has no block hash")

type ForkChoice struct {
	Head, Safe, Finalized common.Hash
}

type DB struct {
	db    *leveldb.DB
	cache *lru.Cache[common.Hash, *typesproto.ExecutionPayload]
}

func Open(path string) (*DB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open payload db %s: %w", path, err)
	}
	return newDB(db)
}

func OpenInMem() (*DB, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return newDB(db)
}

func newDB(db *leveldb.DB) (*DB, error) {
	cache, err := lru.New[common.Hash, *typesproto.ExecutionPayload](cacheSize)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &DB{db: db, cache: cache}, nil
}

func (d *DB) Close() error { return d.db.Close() }

func payloadKey(hash common.Hash) []byte {
	return tableKey(Payloads, hash[:])
}

func numberKey(number uint64, hash common.Hash) []byte {
	return tableKey(PayloadNumber, encodeBlockNumber(number), hash[:])
}

// hashFromNumberKey returns the trailing block hash of a PayloadNumber key.
func hashFromNumberKey(k []byte) common.Hash {
	return common.BytesToHash(k[len(k)-common.HashLength:])
}

// WritePayload stores a copy of p under its block hash. Payloads returned by
// ReadPayload are shared with the cache and must not be modified.
func (d *DB) WritePayload(p *typesproto.ExecutionPayload) error {
	if p.GetBlockHash() == nil {
		return ErrMissingBlockHash
	}
	hash := gointerfaces.ConvertH256ToHash(p.BlockHash)
	enc, err := proto.Marshal(p)
	if err != nil {
		return err
	}
	batch := new(leveldb.Batch)
	batch.Put(payloadKey(hash), enc)
	batch.Put(numberKey(p.BlockNumber, hash), nil)
	if err := d.db.Write(batch, nil); err != nil {
		return fmt.Errorf("write payload %x: %w", hash, err)
	}
	d.cache.Add(hash, proto.Clone(p).(*typesproto.ExecutionPayload))
	return nil
}

func (d *DB) ReadPayload(hash common.Hash) (*typesproto.ExecutionPayload, bool, error) {
	if p, ok := d.cache.Get(hash); ok {
		return p, true, nil
	}
	enc, err := d.db.Get(payloadKey(hash), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read payload %x: %w", hash, err)
	}
	p := new(typesproto.ExecutionPayload)
	if err := proto.Unmarshal(enc, p); err != nil {
		return nil, false, fmt.Errorf("decode payload %x: %w", hash, err)
	}
	d.cache.Add(hash, p)
	return p, true, nil
}

func (d *DB) HasPayload(hash common.Hash) (bool, error) {
	if d.cache.Contains(hash) {
		return true, nil
	}
	return d.db.Has(payloadKey(hash), nil)
}

func (d *DB) PayloadHashesByNumber(number uint64) ([]common.Hash, error) {
	it := d.db.NewIterator(util.BytesPrefix(tableKey(PayloadNumber, encodeBlockNumber(number))), nil)
	defer it.Release()
	var hashes []common.Hash
	for it.Next() {
		hashes = append(hashes, hashFromNumberKey(it.Key()))
	}
	return hashes, it.Error()
}

func (d *DB) WriteForkChoice(fc ForkChoice) error {
	batch := new(leveldb.Batch)
	batch.Put(tableKey(LastForkchoice, headBlockHashKey), fc.Head[:])
	batch.Put(tableKey(LastForkchoice, safeBlockHashKey), fc.Safe[:])
	batch.Put(tableKey(LastForkchoice, finalizedBlockHashKey), fc.Finalized[:])
	return d.db.Write(batch, nil)
}

// ReadForkChoice returns false until the first WriteForkChoice.
func (d *DB) ReadForkChoice() (ForkChoice, bool, error) {
	var fc ForkChoice
	for _, f := range []struct {
		key []byte
		out *common.Hash
	}{
		{headBlockHashKey, &fc.Head},
		{safeBlockHashKey, &fc.Safe},
		{finalizedBlockHashKey, &fc.Finalized},
	} {
		v, err := d.db.Get(tableKey(LastForkchoice, f.key), nil)
		if errors.Is(err, leveldb.ErrNotFound) {
			return ForkChoice{}, false, nil
		}
		if err != nil {
			return ForkChoice{}, false, err
		}
		if len(v) != common.HashLength {
			return ForkChoice{}, false, fmt.Errorf("corrupted %s record of %d bytes", f.key, len(v))
		}
		*f.out = common.BytesToHash(v)
	}
	return fc, true, nil
}

// HeadPayload returns the payload of the current fork choice head.
func (d *DB) HeadPayload() (*typesproto.ExecutionPayload, bool, error) {
	fc, ok, err := d.ReadForkChoice()
	if err != nil || !ok {
		return nil, false, err
	}
	return d.ReadPayload(fc.Head)
}

// Prune deletes payloads with a number below belowNumber, except those named
// by the stored fork choice. It returns the number of deleted payloads.
func (d *DB) Prune(belowNumber uint64) (int, error) {
	keep := map[common.Hash]struct{}{}
	if fc, ok, err := d.ReadForkChoice(); err != nil {
		return 0, err
	} else if ok {
		keep[fc.Head], keep[fc.Safe], keep[fc.Finalized] = struct{}{}, struct{}{}, struct{}{}
	}

	it := d.db.NewIterator(&util.Range{
		Start: tablePrefix(PayloadNumber),
		Limit: tableKey(PayloadNumber, encodeBlockNumber(belowNumber)),
	}, nil)
	defer it.Release()

	batch := new(leveldb.Batch)
	var pruned []common.Hash
	for it.Next() {
		hash := hashFromNumberKey(it.Key())
		if _, ok := keep[hash]; ok {
			continue
		}
		batch.Delete(append([]byte(nil), it.Key()...))
		batch.Delete(payloadKey(hash))
		pruned = append(pruned, hash)
	}
	if err := it.Error(); err != nil {
		return 0, err
	}
	if err := d.db.Write(batch, nil); err != nil {
		return 0, err
	}
	for _, h := range pruned {
		d.cache.Remove(h)
	}
	return len(pruned), nil
}

// Empty reports whether no payload has been stored yet.
func (d *DB) Empty() (bool, error) {
	it := d.db.NewIterator(util.BytesPrefix(tablePrefix(Payloads)), nil)
	defer it.Release()
	return !it.First(), it.Error()
}

func (d *DB) Count() (int, error) {
	return d.TableCount(Payloads)
}

// TableCount returns the number of records in table.
func (d *DB) TableCount(table string) (int, error) {
	it := d.db.NewIterator(util.BytesPrefix(tablePrefix(table)), nil)
	defer it.Release()
	n := 0
	for it.Next() {
		n++
	}
	return n, it.Error()
}

// TableSizes returns the approximate on-disk size of every table.
func (d *DB) TableSizes() (map[string]int64, error) {
	sizes := make(map[string]int64, len(Tables))
	for _, table := range Tables {
		prefix := tablePrefix(table)
		s, err := d.db.SizeOf([]util.Range{*util.BytesPrefix(prefix)})
		if err != nil {
			return nil, err
		}
		sizes[table] = s.Sum()
	}
	return sizes, nil
}
