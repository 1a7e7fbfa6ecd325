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

package debug

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfiles(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.prof")

	require.NoError(t, Handler.StartCPUProfile(cpu))
	require.Error(t, Handler.StartCPUProfile(cpu))
	require.NoError(t, Handler.StopCPUProfile())
	require.Error(t, Handler.StopCPUProfile())

	tr := filepath.Join(dir, "trace.out")
	require.NoError(t, Handler.StartGoTrace(tr))
	Exit()
	require.Error(t, Handler.StopGoTrace())

	for _, f := range []string{cpu, tr} {
		st, err := os.Stat(f)
		require.NoError(t, err)
		require.Positive(t, st.Size())
	}
}
