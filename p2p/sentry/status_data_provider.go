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

package sentry

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/p2p"
	"github.com/ledgerwatch/log/v3"

	"github.com/erigontech/ethbackend/gointerfaces"
	"github.com/erigontech/ethbackend/gointerfaces/typesproto"
)

// The status protocol lets ethbackend nodes exchange their network id and
// fork choice head right after the devp2p handshake.
const (
	ProtocolName       = "ebk"
	ProtocolVersion    = 1
	ProtocolMaxMsgSize = 1 << 20

	StatusMsg = 0x00
)

var ErrNoHead = errors.New("ReadChainHead: no head payload")

type ChainHead struct {
	HeadHeight uint64
	HeadTime   uint64
	HeadHash   common.Hash
}

// StatusPacket is the first message sent on the status protocol.
type StatusPacket struct {
	ProtocolVersion uint32
	NetworkID       uint64
	Head            common.Hash
	HeadNumber      uint64
	HeadTime        uint64
}

// StatusNodeInfo is reported under the protocol name in the p2p node info.
type StatusNodeInfo struct {
	Network    uint64      `json:"network"`
	Head       common.Hash `json:"head"`
	HeadNumber uint64      `json:"headNumber"`
}

// HeadReader resolves the fork choice head of the payload store.
type HeadReader interface {
	HeadPayload() (*typesproto.ExecutionPayload, bool, error)
}

type StatusDataProvider struct {
	db        HeadReader
	networkId uint64
	logger    log.Logger
}

func NewStatusDataProvider(db HeadReader, networkId uint64, logger log.Logger) *StatusDataProvider {
	return &StatusDataProvider{db: db, networkId: networkId, logger: logger}
}

func ReadChainHead(db HeadReader) (ChainHead, error) {
	p, ok, err := db.HeadPayload()
	if err != nil {
		return ChainHead{}, fmt.Errorf("ReadChainHead: %w", err)
	}
	if !ok {
		return ChainHead{}, ErrNoHead
	}
	return ChainHead{
		HeadHeight: p.BlockNumber,
		HeadTime:   p.Timestamp,
		HeadHash:   gointerfaces.ConvertH256ToHash(p.BlockHash),
	}, nil
}

func (s *StatusDataProvider) makeStatusData(head ChainHead) *StatusPacket {
	return &StatusPacket{
		ProtocolVersion: ProtocolVersion,
		NetworkID:       s.networkId,
		Head:            head.HeadHash,
		HeadNumber:      head.HeadHeight,
		HeadTime:        head.HeadTime,
	}
}

// GetStatusData describes the current head, or an empty head before the
// first fork choice update.
func (s *StatusDataProvider) GetStatusData() (*StatusPacket, error) {
	chainHead, err := ReadChainHead(s.db)
	if err != nil {
		if errors.Is(err, ErrNoHead) {
			return s.makeStatusData(ChainHead{}), nil
		}
		return nil, err
	}
	return s.makeStatusData(chainHead), nil
}

func (s *StatusDataProvider) nodeInfo() interface{} {
	status, err := s.GetStatusData()
	if err != nil {
		s.logger.Warn("sentry.StatusDataProvider: node info", "err", err)
		return nil
	}
	return &StatusNodeInfo{Network: status.NetworkID, Head: status.Head, HeadNumber: status.HeadNumber}
}

// Protocol is the status protocol to register on the p2p server.
func (s *StatusDataProvider) Protocol() p2p.Protocol {
	return p2p.Protocol{
		Name:     ProtocolName,
		Version:  ProtocolVersion,
		Length:   1,
		Run:      s.runPeer,
		NodeInfo: s.nodeInfo,
	}
}

func (s *StatusDataProvider) runPeer(peer *p2p.Peer, rw p2p.MsgReadWriter) error {
	status, err := s.GetStatusData()
	if err != nil {
		return err
	}
	reply, err := handshake(rw, status)
	if err != nil {
		s.logger.Debug("[p2p] status handshake failed", "peer", peer.ID(), "err", err)
		return err
	}
	s.logger.Debug("[p2p] peer status", "peer", peer.ID(), "head", reply.Head, "number", reply.HeadNumber)
	for {
		msg, err := rw.ReadMsg()
		if err != nil {
			return err
		}
		if err := msg.Discard(); err != nil {
			return err
		}
	}
}
