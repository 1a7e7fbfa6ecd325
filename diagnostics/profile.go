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
	"fmt"
	"net/http"
	"path"
	"runtime/pprof"
	"strconv"
)

// SetupProfileAccess serves runtime profiles as /profile/<name>, for example
// /profile/heap or /profile/goroutine?debug=2.
func SetupProfileAccess(metricsMux *http.ServeMux) {
	if metricsMux == nil {
		return
	}

	metricsMux.HandleFunc("/profile/", writeProfile)
}

func writeProfile(w http.ResponseWriter, r *http.Request) {
	name := path.Base(r.URL.Path)
	p := pprof.Lookup(name)
	if p == nil {
		http.Error(w, fmt.Sprintf("unknown profile %q", name), http.StatusNotFound)
		return
	}
	debug, _ := strconv.Atoi(r.URL.Query().Get("debug"))
	if debug > 0 {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pb.gz"`, name))
	}
	if err := p.WriteTo(w, debug); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write %s profile: %v", name, err), http.StatusInternalServerError)
	}
}
