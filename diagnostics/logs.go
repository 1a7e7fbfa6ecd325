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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
)

type LogFileResponse struct {
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modTime"`
}

// SetupLogsAccess lists the *.log files of dirPath under /logs, newest first,
// and serves byte ranges of one of them under /logs/<name>?offset=&limit=.
func SetupLogsAccess(dirPath string, metricsMux *http.ServeMux) {
	if metricsMux == nil || dirPath == "" {
		return
	}

	metricsMux.HandleFunc("/logs", func(w http.ResponseWriter, r *http.Request) {
		writeLogsList(w, dirPath)
	})
	metricsMux.HandleFunc("/logs/", func(w http.ResponseWriter, r *http.Request) {
		writeLogsRead(w, r, dirPath)
	})
}

func logFiles(dirPath string) ([]LogFileResponse, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}
	files := make([]LogFileResponse, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".log") {
			continue
		}
		info, err := entry.Info()
		if errors.Is(err, fs.ErrNotExist) {
			continue // rotated away
		}
		if err != nil {
			return nil, err
		}
		files = append(files, LogFileResponse{Name: info.Name(), Size: info.Size(), ModTime: info.ModTime()})
	}
	slices.SortFunc(files, func(a, b LogFileResponse) int { return b.ModTime.Compare(a.ModTime) })
	return files, nil
}

func writeLogsList(w http.ResponseWriter, dirPath string) {
	files, err := logFiles(dirPath)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list log directory: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(files)
}

func writeLogsRead(w http.ResponseWriter, r *http.Request, dirPath string) {
	name := path.Base(r.URL.Path)
	if name == "/" || name == "." || !strings.HasSuffix(name, ".log") {
		http.Error(w, "name of a .log file is required", http.StatusBadRequest)
		return
	}

	f, err := os.Open(filepath.Join(dirPath, name))
	if errors.Is(err, fs.ErrNotExist) {
		http.Error(w, "unknown log file "+name, http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if info.IsDir() {
		http.Error(w, name+" is a directory", http.StatusBadRequest)
		return
	}

	offset, limit, err := logRange(r.URL.Query(), info.Size())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.FormatInt(limit, 10))
	w.Header().Set("X-Offset", strconv.FormatInt(offset, 10))
	w.Header().Set("X-Limit", strconv.FormatInt(limit, 10))
	w.Header().Set("X-Size", strconv.FormatInt(info.Size(), 10))
	io.Copy(w, io.NewSectionReader(f, offset, limit))
}

// logRange clamps limit to what remains after offset.
func logRange(values url.Values, size int64) (offset, limit int64, err error) {
	if s := values.Get("offset"); s != "" {
		if offset, err = strconv.ParseInt(s, 10, 64); err != nil {
			return 0, 0, fmt.Errorf("offset %s is not a int64 number: %w", s, err)
		}
	}
	if offset < 0 || offset > size {
		return 0, 0, fmt.Errorf("offset %d out of file range [0, %d]", offset, size)
	}
	limit = size - offset
	if s := values.Get("limit"); s != "" {
		l, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("limit %s is not a int64 number: %w", s, err)
		}
		if l >= 0 {
			limit = min(l, limit)
		}
	}
	return offset, limit, nil
}
