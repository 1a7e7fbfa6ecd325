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

package datadir

import (
	"os"
	"path/filepath"
)

// Dirs is the file system folder the node should use for any data storage
// requirements.
type Dirs struct {
	DataDir         string
	RelativeDataDir string // like dataDir, but without filepath.Abs() resolution
	Payloads        string
	Nodes           string
	Logs            string
}

func New(datadir string) Dirs {
	relativeDataDir := datadir
	if datadir != "" {
		var err error
		absdatadir, err := filepath.Abs(datadir)
		if err != nil {
			panic(err)
		}
		datadir = absdatadir
	}

	return Dirs{
		RelativeDataDir: relativeDataDir,
		DataDir:         datadir,
		Payloads:        filepath.Join(datadir, "payloads"),
		Nodes:           filepath.Join(datadir, "nodes"),
		Logs:            filepath.Join(datadir, "logs"),
	}
}

// NodeKey is the default location of the p2p node key.
func (d Dirs) NodeKey() string { return filepath.Join(d.Nodes, "nodekey") }

// JWTSecret is the default location of the Engine API secret.
func (d Dirs) JWTSecret() string { return filepath.Join(d.DataDir, "jwt.hex") }

// MustExist creates the directories that are written to at startup.
func (d Dirs) MustExist() error {
	for _, dir := range []string{d.DataDir, d.Payloads, d.Nodes} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return nil
}
