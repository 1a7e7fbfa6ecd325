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

type NodeInfoPorts struct {
	Discovery uint32 `json:"discovery"`
	Listener  uint32 `json:"listener"`
}

type NodeInfoResponse struct {
	Enode        string          `json:"enode"`
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Enr          string          `json:"enr"`
	ListenerAddr string          `json:"listenerAddr"`
	Ports        NodeInfoPorts   `json:"ports"`
	Protocols    json.RawMessage `json:"protocols,omitempty"`
}

func SetupNodeInfoAccess(metricsMux *http.ServeMux, eth privateapi.EthBackend) {
	if metricsMux == nil {
		return
	}

	metricsMux.HandleFunc("/nodeinfo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Content-Type", "application/json")
		writeNodeInfo(w, eth)
	})
}

func writeNodeInfo(w http.ResponseWriter, eth privateapi.EthBackend) {
	if eth == nil {
		http.Error(w, "node is not running", http.StatusServiceUnavailable)
		return
	}
	reply, err := eth.NodesInfo(0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	infos := make([]*NodeInfoResponse, 0, len(reply))
	for _, n := range reply {
		info := &NodeInfoResponse{
			Enode:        n.Enode,
			ID:           n.Id,
			Name:         n.Name,
			Enr:          n.Enr,
			ListenerAddr: n.ListenerAddr,
		}
		if n.Ports != nil {
			info.Ports = NodeInfoPorts{Discovery: n.Ports.Discovery, Listener: n.Ports.Listener}
		}
		if json.Valid(n.Protocols) {
			info.Protocols = n.Protocols
		}
		infos = append(infos, info)
	}

	json.NewEncoder(w).Encode(infos)
}
