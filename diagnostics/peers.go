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

package diagnostics

import (
	"encoding/json"
	"net/http"

	"github.com/erigontech/ethbackend/ethdb/privateapi"
)

type PeerNetworkInfo struct {
	LocalAddress  string `json:"localAddress"`  // Local endpoint of the TCP data connection
	RemoteAddress string `json:"remoteAddress"` // Remote endpoint of the TCP data connection
	Inbound       bool   `json:"inbound"`
	Trusted       bool   `json:"trusted"`
	Static        bool   `json:"static"`
}

type PeerResponse struct {
	ENR     string          `json:"enr,omitempty"` // Ethereum Node Record
	Enode   string          `json:"enode"`         // Node URL
	ID      string          `json:"id"`            // Unique node identifier
	Name    string          `json:"name"`          // Name of the node, including client type, version, OS, custom data
	Type    string          `json:"type"`          // Type of connection
	Caps    []string        `json:"caps"`          // Protocols advertised by this peer
	Network PeerNetworkInfo `json:"network"`
}

func SetupPeersAccess(metricsMux *http.ServeMux, eth privateapi.EthBackend) {
	if metricsMux == nil {
		return
	}

	metricsMux.HandleFunc("/peers", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Content-Type", "application/json")
		writePeers(w, eth)
	})
}

func writePeers(w http.ResponseWriter, eth privateapi.EthBackend) {
	if eth == nil {
		http.Error(w, "node is not running", http.StatusServiceUnavailable)
		return
	}
	reply, err := eth.Peers()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	peers := make([]*PeerResponse, 0, len(reply))
	for _, p := range reply {
		caps := p.Caps
		if caps == nil {
			caps = []string{}
		}
		peers = append(peers, &PeerResponse{
			ENR:   p.Enr,
			Enode: p.Enode,
			ID:    p.Id,
			Name:  p.Name,
			Type:  "Sentry",
			Caps:  caps,
			Network: PeerNetworkInfo{
				LocalAddress:  p.ConnLocalAddr,
				RemoteAddress: p.ConnRemoteAddr,
				Inbound:       p.ConnIsInbound,
				Trusted:       p.ConnIsTrusted,
				Static:        p.ConnIsStatic,
			},
		})
	}

	json.NewEncoder(w).Encode(peers)
}
