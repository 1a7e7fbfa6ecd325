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

package logging

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestTryGetLogLevel(t *testing.T) {
	lvl, err := tryGetLogLevel("debug")
	require.NoError(t, err)
	require.Equal(t, log.LvlDebug, lvl)

	lvl, err = tryGetLogLevel("2")
	require.NoError(t, err)
	require.Equal(t, log.Lvl(2), lvl)

	_, err = tryGetLogLevel("loud")
	require.Error(t, err)
}

func TestFileLoggingHonoursDirLevel(t *testing.T) {
	dir := t.TempDir()
	logger := log.New()
	initSeparatedLogging(logger, "ethbackend", dir, log.LvlCrit, log.LvlInfo, false, true)

	logger.Info("payload stored", "number", 7)
	logger.Debug("hidden detail")

	data, err := os.ReadFile(filepath.Join(dir, "ethbackend.log"))
	require.NoError(t, err)
	out := string(data)
	require.True(t, strings.Contains(out, `"msg":"payload stored"`), out)
	require.False(t, strings.Contains(out, "hidden detail"), out)
}

func TestNoDirMeansConsoleOnly(t *testing.T) {
	logger := log.New()
	initSeparatedLogging(logger, "ethbackend", "", log.LvlInfo, log.LvlInfo, true, false)
	require.NotNil(t, logger.GetHandler())
}

func TestLogDirPath(t *testing.T) {
	ctx := func(args ...string) *cli.Context {
		set := flag.NewFlagSet("test", flag.ContinueOnError)
		set.String(LogDirPathFlag.Name, "", "")
		set.String("datadir", "", "")
		require.NoError(t, set.Parse(args))
		return cli.NewContext(nil, set, nil)
	}
	require.Equal(t, "", LogDirPath(ctx()))
	require.Equal(t, filepath.Join("data", "logs"), LogDirPath(ctx("--datadir", "data")))
	require.Equal(t, "elsewhere", LogDirPath(ctx("--datadir", "data", "--log.dir.path", "elsewhere")))
}
