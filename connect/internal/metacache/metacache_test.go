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

package metacache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestCache_Expiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New[string, int](time.Minute, 10, WithClock(clock.Now))

	c.Put("a", 1)
	clock.Advance(30 * time.Second)
	c.Put("b", 2)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	clock.Advance(30 * time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok, "entry at exactly the retention age is expired")
	v, ok = c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())

	clock.Advance(time.Hour)
	assert.Equal(t, 0, c.Len())
}

func TestCache_Capacity(t *testing.T) {
	c := New[int, string](time.Hour, 2)
	c.Put(1, "one")
	c.Put(2, "two")
	c.Put(3, "three")

	_, ok := c.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())

	// Replacing a key moves it to the back of the eviction order.
	c.Put(2, "two again")
	c.Put(4, "four")
	_, ok = c.Get(3)
	assert.False(t, ok)
	v, ok := c.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "two again", v)
}

func TestCache_Missing(t *testing.T) {
	c := New[string, int](time.Minute, 0)
	_, ok := c.Get("missing")
	assert.False(t, ok)
	c.Put("a", 1)
	c.Put("b", 2)
	assert.Equal(t, 1, c.Len())
}

func TestCache_Concurrent(t *testing.T) {
	c := New[int, int](time.Minute, 64)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Put(i*100+j, j)
				c.Get(i*100 + j)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 64, c.Len())
}
