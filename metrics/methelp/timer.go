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

package methelp

import (
	"strings"
	"time"

	"github.com/erigontech/ethbackend/metrics"
)

// HistTimer measures one operation into a histogram named after it.
type HistTimer struct {
	metrics.Histogram

	start time.Time

	name string
}

func NewHistTimer(name string) *HistTimer {
	return &HistTimer{
		Histogram: metrics.GetOrCreateHistogram(name),
		start:     time.Now(),
		name:      name,
	}
}

func (h *HistTimer) PutSince() {
	h.Histogram.UpdateDuration(h.start)
}

// Child starts a timer for a sub-step, named <parent>_<suffix>.
func (h *HistTimer) Child(suffix string) *HistTimer {
	suffix = strings.TrimPrefix(suffix, "_")
	return NewHistTimer(h.name + "_" + suffix)
}
