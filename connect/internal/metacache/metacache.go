// Copyright (c) 2026 Palantir Technologies. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metacache holds values for a bounded time in a bounded number of slots.
package metacache

import (
	"container/list"
	"sync"
	"time"
)

// Cache maps keys to values that expire after a retention period. When full, inserting a new
// key evicts the oldest entry. A Cache is safe for concurrent use.
type Cache[K comparable, V any] struct {
	retention time.Duration
	capacity  int
	now       func() time.Time

	mu      sync.Mutex
	order   *list.List
	entries map[K]*list.Element
}

type entry[K comparable, V any] struct {
	key      K
	value    V
	inserted time.Time
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New returns a cache holding at most capacity entries for retention each.
func New[K comparable, V any](retention time.Duration, capacity int, opts ...Option) *Cache[K, V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[K, V]{
		retention: retention,
		capacity:  capacity,
		now:       o.now,
		order:     list.New(),
		entries:   make(map[K]*list.Element),
	}
}

// Put stores value under key, replacing any previous value and resetting its age.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if el, ok := c.entries[key]; ok {
		c.order.Remove(el)
		delete(c.entries, key)
	}
	c.entries[key] = c.order.PushBack(&entry[K, V]{key: key, value: value, inserted: now})
	c.expireLocked(now)
	for c.order.Len() > c.capacity {
		c.removeLocked(c.order.Front())
	}
}

// Get returns the value stored under key if it has not expired.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.expireLocked(c.now())
	el, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return el.Value.(*entry[K, V]).value, true
}

// Len returns the number of unexpired entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.expireLocked(c.now())
	return c.order.Len()
}

// expireLocked drops entries from the front of the list, which is ordered by insertion time.
func (c *Cache[K, V]) expireLocked(now time.Time) {
	for el := c.order.Front(); el != nil; el = c.order.Front() {
		if now.Sub(el.Value.(*entry[K, V]).inserted) < c.retention {
			return
		}
		c.removeLocked(el)
	}
}

func (c *Cache[K, V]) removeLocked(el *list.Element) {
	c.order.Remove(el)
	delete(c.entries, el.Value.(*entry[K, V]).key)
}
