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
	"fmt"

	"github.com/ethereum/go-ethereum/p2p"
)

// handshake sends our status and validates the one received from the peer.
func handshake(rw p2p.MsgReadWriter, status *StatusPacket) (*StatusPacket, error) {
	errc := make(chan error, 1)
	go func() {
		errc <- p2p.Send(rw, StatusMsg, status)
	}()
	reply, err := readAndValidatePeerStatusMessage(rw, status, ProtocolVersion, ProtocolVersion)
	if err != nil {
		return nil, err
	}
	if err := <-errc; err != nil {
		return nil, fmt.Errorf("send status: %w", err)
	}
	return reply, nil
}

func readAndValidatePeerStatusMessage(
	rw p2p.MsgReadWriter,
	status *StatusPacket,
	version uint,
	minVersion uint,
) (*StatusPacket, error) {
	msg, err := rw.ReadMsg()
	if err != nil {
		return nil, fmt.Errorf("readAndValidatePeerStatusMessage rw.ReadMsg error: %w", err)
	}

	reply, err := tryDecodeStatusMessage(&msg)
	msg.Discard()
	if err != nil {
		return nil, fmt.Errorf("readAndValidatePeerStatusMessage tryDecodeStatusMessage error: %w", err)
	}

	err = checkPeerStatusCompatibility(reply, status, version, minVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", p2p.DiscUselessPeer, err)
	}

	return reply, nil
}

func tryDecodeStatusMessage(msg *p2p.Msg) (*StatusPacket, error) {
	if msg.Code != StatusMsg {
		return nil, fmt.Errorf("first msg has code %x (!= %x)", msg.Code, StatusMsg)
	}

	if msg.Size > ProtocolMaxMsgSize {
		return nil, fmt.Errorf("message is too large %d, limit %d", msg.Size, ProtocolMaxMsgSize)
	}

	var reply StatusPacket
	if err := msg.Decode(&reply); err != nil {
		return nil, fmt.Errorf("decode message %v: %w", msg, err)
	}

	return &reply, nil
}

func checkPeerStatusCompatibility(
	reply *StatusPacket,
	status *StatusPacket,
	version uint,
	minVersion uint,
) error {
	networkID := status.NetworkID
	if reply.NetworkID != networkID {
		return fmt.Errorf("network id does not match: theirs %d, ours %d", reply.NetworkID, networkID)
	}

	if uint(reply.ProtocolVersion) > version {
		return fmt.Errorf("version is more than what this node supports: theirs %d, max %d", reply.ProtocolVersion, version)
	}
	if uint(reply.ProtocolVersion) < minVersion {
		return fmt.Errorf("version is less than allowed minimum: theirs %d, min %d", reply.ProtocolVersion, minVersion)
	}
	return nil
}
