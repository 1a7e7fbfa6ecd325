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


package privateapi

import (
	"sync"

	"github.com/erigontech/ethbackend/metrics"
)

const headerSubscriptionBuffer = 8

var subscribersGauge = metrics.GetOrCreateGauge("ethbackend_header_subscribers")

// Events fans new head headers out to subscribers. Safe for concurrent use.
type Events struct {
	id                  int
	headerSubscriptions map[int]chan []byte
	lock                sync.Mutex
}

func NewEvents() *Events {
	return &Events{headerSubscriptions: map[int]chan []byte{}}
}

// AddHeaderSubscription returns a channel receiving RLP encoded headers and
// a func that unsubscribes and closes it.
func (e *Events) AddHeaderSubscription() (chan []byte, func()) {
	e.lock.Lock()
	defer e.lock.Unlock()
	ch := make(chan []byte, headerSubscriptionBuffer)
	e.id++
	id := e.id
	e.headerSubscriptions[id] = ch
	subscribersGauge.SetInt(len(e.headerSubscriptions))

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			e.lock.Lock()
			defer e.lock.Unlock()
			delete(e.headerSubscriptions, id)
			subscribersGauge.SetInt(len(e.headerSubscriptions))
			close(ch)
		})
	}
}

// OnNewHeader never blocks: a slow subscriber loses its oldest half of
// queued headers.
func (e *Events) OnNewHeader(headerRLP []byte) {
	e.lock.Lock()
	defer e.lock.Unlock()
	for _, ch := range e.headerSubscriptions {
		select {
		case ch <- headerRLP:
		default:
			for i := 0; i < cap(ch)/2; i++ {
				select {
				case <-ch:
				default:
				}
			}
			ch <- headerRLP
		}
	}
}

func (e *Events) HeaderSubscribers() int {
	e.lock.Lock()
	defer e.lock.Unlock()
	return len(e.headerSubscriptions)
}
