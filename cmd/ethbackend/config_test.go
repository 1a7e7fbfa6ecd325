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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/erigontech/ethbackend/cmd/utils"
)

func runWithConfig(t *testing.T, body string, ext string, args []string, check func(ctx *cli.Context)) error {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config"+ext)
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))

	app := cli.NewApp()
	app.Flags = utils.DefaultFlags
	app.Action = func(ctx *cli.Context) error {
		if err := setFlagsFromConfigFile(ctx, ctx.String(utils.ConfigFlag.Name)); err != nil {
			return err
		}
		check(ctx)
		return nil
	}
	return app.Run(append([]string{"ethbackend", "--config", path}, args...))
}

func TestConfigFileYaml(t *testing.T) {
	body := `
private.api.addr: "127.0.0.1:9999"
maxpeers: 7
nodiscover: true
prune.distance: 64
`
	called := false
	err := runWithConfig(t, body, ".yaml", []string{"--maxpeers", "3"}, func(ctx *cli.Context) {
		called = true
		require.Equal(t, "127.0.0.1:9999", ctx.String(utils.PrivateApiAddr.Name))
		require.Equal(t, 3, ctx.Int(utils.MaxPeersFlag.Name))
		require.True(t, ctx.Bool(utils.NoDiscoverFlag.Name))
		require.Equal(t, uint64(64), ctx.Uint64(utils.PruneDistanceFlag.Name))
	})
	require.NoError(t, err)
	require.True(t, called)
}

func TestConfigFileToml(t *testing.T) {
	body := `
"authrpc.port" = 18551
"proposer.disable" = true
"override.terminaltotaldifficulty" = "0x10"
`
	called := false
	err := runWithConfig(t, body, ".toml", nil, func(ctx *cli.Context) {
		called = true
		require.Equal(t, uint(18551), ctx.Uint(utils.AuthRpcPort.Name))
		require.True(t, ctx.Bool(utils.ProposingDisableFlag.Name))

		config, err := utils.ChainConfig(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(16), config.TerminalTotalDifficulty.Int64())
		require.Equal(t, int64(1), config.ChainID.Int64())
	})
	require.NoError(t, err)
	require.True(t, called)
}

func TestConfigFileErrors(t *testing.T) {
	noop := func(*cli.Context) { t.Fatal("action must fail before the check") }
	require.Error(t, runWithConfig(t, "maxpeers = 1", ".json", nil, noop))
	require.Error(t, runWithConfig(t, "no.such.flag: 1", ".yaml", nil, noop))
	require.Error(t, runWithConfig(t, "maxpeers: many", ".yaml", nil, noop))
}
