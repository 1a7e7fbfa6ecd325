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

package gointerfaces

import (
	"fmt"

	"github.com/erigontech/ethbackend/gointerfaces/typesproto"
)

// Version of a gRPC interface, negotiated through VersionReply.
type Version struct {
	Major, Minor, Patch uint32
}

func VersionFromProto(r *typesproto.VersionReply) Version {
	return Version{Major: r.GetMajor(), Minor: r.GetMinor(), Patch: r.GetPatch()}
}

func (v Version) ToProto() *typesproto.VersionReply {
	return &typesproto.VersionReply{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// EnsureVersionCompatibility reports whether a server answering with reply can
// serve a client built against expected: majors must match and the server may
// not be behind in minor. Patch is informational.
func EnsureVersionCompatibility(reply *typesproto.VersionReply, expected Version) bool {
	if reply == nil {
		return false
	}
	if reply.Major != expected.Major {
		return false
	}
	return reply.Minor >= expected.Minor
}
