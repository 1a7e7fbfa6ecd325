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

package gointerfaces

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/erigontech/ethbackend/gointerfaces/typesproto"
)

// All conversions are big-endian: the Hi half holds the leading bytes.
// Absent (nil) halves read as zero.

func ConvertH128ToBytes(h128 *typesproto.H128) []byte {
	var b [16]byte
	putH128(b[:], h128)
	return b[:]
}

func ConvertBytesToH128(b []byte) *typesproto.H128 {
	return readH128(pad(b, 16))
}

func ConvertH256ToHash(h256 *typesproto.H256) common.Hash {
	var hash common.Hash
	putH256(hash[:], h256)
	return hash
}

func ConvertHashesToH256(hashes []common.Hash) []*typesproto.H256 {
	res := make([]*typesproto.H256, len(hashes))
	for i := range hashes {
		res[i] = ConvertHashToH256(hashes[i])
	}
	return res
}

func ConvertHashToH256(hash common.Hash) *typesproto.H256 {
	return readH256(hash[:])
}

func ConvertH160toAddress(h160 *typesproto.H160) common.Address {
	var addr common.Address
	putH128(addr[0:16], h160.GetHi())
	binary.BigEndian.PutUint32(addr[16:], h160.GetLo())
	return addr
}

func ConvertAddressToH160(addr common.Address) *typesproto.H160 {
	return &typesproto.H160{
		Lo: binary.BigEndian.Uint32(addr[16:]),
		Hi: readH128(addr[0:16]),
	}
}

func ConvertH256ToUint256Int(h256 *typesproto.H256) *uint256.Int {
	// Note: uint256.Int is an array of 4 uint64 in little-endian order, i.e. most significant word is [3]
	var i uint256.Int
	i[3] = h256.GetHi().GetHi()
	i[2] = h256.GetHi().GetLo()
	i[1] = h256.GetLo().GetHi()
	i[0] = h256.GetLo().GetLo()
	return &i
}

func ConvertUint256IntToH256(i *uint256.Int) *typesproto.H256 {
	// Note: uint256.Int is an array of 4 uint64 in little-endian order, i.e. most significant word is [3]
	return &typesproto.H256{
		Lo: &typesproto.H128{Lo: i[0], Hi: i[1]},
		Hi: &typesproto.H128{Lo: i[2], Hi: i[3]},
	}
}

func ConvertH512ToBytes(h512 *typesproto.H512) []byte {
	var b [64]byte
	putH512(b[:], h512)
	return b[:]
}

func ConvertBytesToH512(b []byte) *typesproto.H512 {
	return readH512(pad(b, 64))
}

func ConvertH1024ToBytes(h1024 *typesproto.H1024) []byte {
	var b [128]byte
	putH1024(b[:], h1024)
	return b[:]
}

func ConvertBytesToH1024(b []byte) *typesproto.H1024 {
	return readH1024(pad(b, 128))
}

func ConvertH2048ToBloom(h2048 *typesproto.H2048) types.Bloom {
	var bloom types.Bloom
	putH1024(bloom[:128], h2048.GetHi())
	putH1024(bloom[128:], h2048.GetLo())
	return bloom
}

func ConvertBloomToH2048(bloom types.Bloom) *typesproto.H2048 {
	return ConvertBytesToH2048(bloom[:])
}

func ConvertBytesToH2048(b []byte) *typesproto.H2048 {
	b = pad(b, 256)
	return &typesproto.H2048{
		Hi: readH1024(b[:128]),
		Lo: readH1024(b[128:]),
	}
}

// pad copies short inputs into a zeroed buffer of the given size, keeping the
// input bytes at the front.
func pad(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	out := make([]byte, size)
	copy(out, b)
	return out
}

func putH128(dst []byte, h *typesproto.H128) {
	binary.BigEndian.PutUint64(dst[0:], h.GetHi())
	binary.BigEndian.PutUint64(dst[8:], h.GetLo())
}

func putH256(dst []byte, h *typesproto.H256) {
	putH128(dst[:16], h.GetHi())
	putH128(dst[16:32], h.GetLo())
}

func putH512(dst []byte, h *typesproto.H512) {
	putH256(dst[:32], h.GetHi())
	putH256(dst[32:64], h.GetLo())
}

func putH1024(dst []byte, h *typesproto.H1024) {
	putH512(dst[:64], h.GetHi())
	putH512(dst[64:128], h.GetLo())
}

func readH128(b []byte) *typesproto.H128 {
	return &typesproto.H128{Hi: binary.BigEndian.Uint64(b[0:]), Lo: binary.BigEndian.Uint64(b[8:])}
}

func readH256(b []byte) *typesproto.H256 {
	return &typesproto.H256{Hi: readH128(b[:16]), Lo: readH128(b[16:32])}
}

func readH512(b []byte) *typesproto.H512 {
	return &typesproto.H512{Hi: readH256(b[:32]), Lo: readH256(b[32:64])}
}

func readH1024(b []byte) *typesproto.H1024 {
	return &typesproto.H1024{Hi: readH512(b[:64]), Lo: readH512(b[64:128])}
}
