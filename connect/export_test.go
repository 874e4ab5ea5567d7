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

package connect

import (
	"time"

	"github.com/palantir/connect-go-sdk/connect-go-client/httpclient"
	"github.com/palantir/connect-go-sdk/connect/internal/metacache"
)

// NewWithClock is New with response metadata aged by now instead of the wall clock.
func NewWithClock(cfg Config, now func() time.Time, params ...httpclient.ClientParam) (Client, error) {
	c, err := New(cfg, params...)
	if err != nil {
		return nil, err
	}
	resolved, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	impl := c.(*client)
	impl.metadata = metacache.New[any, ResponseMetadata](resolved.retention, resolved.capacity, metacache.WithClock(now))
	return impl, nil
}
