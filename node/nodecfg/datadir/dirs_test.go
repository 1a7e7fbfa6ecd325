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

package datadir_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erigontech/ethbackend/node/nodecfg/datadir"
)

func TestDirs(t *testing.T) {
	root := t.TempDir()
	dirs := datadir.New(root)
	require.Equal(t, root, dirs.RelativeDataDir)
	require.Equal(t, filepath.Join(root, "payloads"), dirs.Payloads)
	require.Equal(t, filepath.Join(root, "nodes", "nodekey"), dirs.NodeKey())
	require.Equal(t, filepath.Join(root, "jwt.hex"), dirs.JWTSecret())

	require.NoError(t, dirs.MustExist())
	for _, d := range []string{dirs.Payloads, dirs.Nodes} {
		st, err := os.Stat(d)
		require.NoError(t, err)
		require.True(t, st.IsDir())
	}
}

func TestDirsRelative(t *testing.T) {
	dirs := datadir.New("data")
	require.Equal(t, "data", dirs.RelativeDataDir)
	require.True(t, filepath.IsAbs(dirs.DataDir))
}
