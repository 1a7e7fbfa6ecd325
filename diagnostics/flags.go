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
	"cmp"
	"encoding/json"
	"net/http"
	"slices"

	"github.com/urfave/cli/v2"

	"github.com/erigontech/ethbackend/cmd/utils"
)

// redactedFlags hold paths to key material.
var redactedFlags = []string{utils.JWTSecretPath.Name, utils.TLSKeyFlag.Name, utils.NodeKeyFileFlag.Name}

type FlagResponse struct {
	Name    string `json:"name"`
	Value   any    `json:"value,omitempty"`
	Usage   string `json:"usage,omitempty"`
	Default bool   `json:"default"`
}

// SetupFlagsAccess reports the flags of the running command, sorted by name.
func SetupFlagsAccess(ctx *cli.Context, metricsMux *http.ServeMux) {
	if metricsMux == nil || ctx == nil {
		return
	}

	metricsMux.HandleFunc("/flags", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(flagsOf(ctx))
	})
}

func flagsOf(ctx *cli.Context) []FlagResponse {
	flags := ctx.App.Flags
	if ctx.Command != nil && len(ctx.Command.Flags) > 0 {
		flags = ctx.Command.Flags
	}

	out := make([]FlagResponse, 0, len(flags))
	for _, flag := range flags {
		name := flag.Names()[0]
		resp := FlagResponse{Name: name, Default: !ctx.IsSet(name)}
		if docFlag, ok := flag.(cli.DocGenerationFlag); ok {
			resp.Usage = docFlag.GetUsage()
		}
		switch value := ctx.Value(name).(type) {
		case string:
			if value != "" && slices.Contains(redactedFlags, name) {
				resp.Value = "<redacted>"
			} else if value != "" {
				resp.Value = value
			}
		case cli.UintSlice:
			resp.Value = value.Value()
		default:
			resp.Value = value
		}
		out = append(out, resp)
	}
	slices.SortFunc(out, func(a, b FlagResponse) int { return cmp.Compare(a.Name, b.Name) })
	return out
}
