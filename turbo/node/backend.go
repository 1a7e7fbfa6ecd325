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


package node

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/erigontech/ethbackend/ethdb/privateapi"
	"github.com/erigontech/ethbackend/p2p/sentry"
)

// ethBackend adds the node identity to the p2p queries of sentry.Backend.
type ethBackend struct {
	*sentry.Backend
	networkID uint64
	etherbase common.Address
}

func (b *ethBackend) Etherbase() (common.Address, error) {
	if b.etherbase != (common.Address{}) {
		return b.etherbase, nil
	}
	return common.Address{}, privateapi.ErrNoEtherbase
}

func (b *ethBackend) NetVersion() (uint64, error) { return b.networkID, nil }
