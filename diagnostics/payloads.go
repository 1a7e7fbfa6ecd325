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
	"path"

	"github.com/ethereum/go-ethereum/common"

	"github.com/erigontech/ethbackend/ethdb/payloaddb"
	"github.com/erigontech/ethbackend/gointerfaces"
	"github.com/erigontech/ethbackend/gointerfaces/typesproto"
)

type ForkChoiceResponse struct {
	Head       common.Hash `json:"head"`
	Safe       common.Hash `json:"safe"`
	Finalized  common.Hash `json:"finalized"`
	HeadNumber uint64      `json:"headNumber"`
	Payloads   int         `json:"payloads"`
}

type TableResponse struct {
	Name    string `json:"name"`
	Records int    `json:"records"`
	Size    int64  `json:"size"`
}

type PayloadResponse struct {
	Hash         common.Hash    `json:"hash"`
	ParentHash   common.Hash    `json:"parentHash"`
	Number       uint64         `json:"number"`
	Timestamp    uint64         `json:"timestamp"`
	FeeRecipient common.Address `json:"feeRecipient"`
	GasLimit     uint64         `json:"gasLimit"`
	GasUsed      uint64         `json:"gasUsed"`
	Transactions int            `json:"transactions"`
}

func SetupPayloadsAccess(metricsMux *http.ServeMux, db *payloaddb.DB) {
	if metricsMux == nil || db == nil {
		return
	}

	metricsMux.HandleFunc("/forkchoice", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Content-Type", "application/json")
		writeForkChoice(w, db)
	})
	metricsMux.HandleFunc("/payloaddb", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Content-Type", "application/json")
		writeTables(w, db)
	})
	metricsMux.HandleFunc("/payloads/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Content-Type", "application/json")
		writePayload(w, r, db)
	})
}

func writeForkChoice(w http.ResponseWriter, db *payloaddb.DB) {
	fc, ok, err := db.ReadForkChoice()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "no fork choice yet", http.StatusNotFound)
		return
	}
	count, err := db.Count()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := ForkChoiceResponse{Head: fc.Head, Safe: fc.Safe, Finalized: fc.Finalized, Payloads: count}
	if head, ok, err := db.ReadPayload(fc.Head); err == nil && ok {
		resp.HeadNumber = head.BlockNumber
	}
	json.NewEncoder(w).Encode(resp)
}

func writeTables(w http.ResponseWriter, db *payloaddb.DB) {
	sizes, err := db.TableSizes()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	tables := make([]TableResponse, 0, len(payloaddb.Tables))
	for _, name := range payloaddb.Tables {
		n, err := db.TableCount(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		tables = append(tables, TableResponse{Name: name, Records: n, Size: sizes[name]})
	}
	json.NewEncoder(w).Encode(tables)
}

func writePayload(w http.ResponseWriter, r *http.Request, db *payloaddb.DB) {
	arg := path.Base(r.URL.Path)
	var hash common.Hash
	if err := hash.UnmarshalText([]byte(arg)); err != nil {
		http.Error(w, "block hash is required: "+err.Error(), http.StatusBadRequest)
		return
	}

	p, ok, err := db.ReadPayload(hash)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "unknown payload", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(payloadResponse(p))
}

func payloadResponse(p *typesproto.ExecutionPayload) *PayloadResponse {
	return &PayloadResponse{
		Hash:         gointerfaces.ConvertH256ToHash(p.BlockHash),
		ParentHash:   gointerfaces.ConvertH256ToHash(p.ParentHash),
		Number:       p.BlockNumber,
		Timestamp:    p.Timestamp,
		FeeRecipient: gointerfaces.ConvertH160toAddress(p.Coinbase),
		GasLimit:     p.GasLimit,
		GasUsed:      p.GasUsed,
		Transactions: len(p.Transactions),
	}
}
