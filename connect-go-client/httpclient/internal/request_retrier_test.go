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

package internal

import (
	"context"
	"net/http"
	"testing"

	"github.com/palantir/pkg/retry"
	werror "github.com/palantir/witchcraft-go-error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ retry.Retrier = &mockRetrier{}

func TestRequestRetrier_AttemptCount(t *testing.T) {
	maxAttempts := 3
	r := NewRequestRetrier(context.Background(), []string{"https://example.com"}, newMockRetrier(), maxAttempts)
	for i := 0; i < maxAttempts; i++ {
		_, ok := r.Next(nil, nil)
		require.True(t, ok, "attempt %d", i)
	}
	_, ok := r.Next(nil, nil)
	require.False(t, ok)
}

func TestRequestRetrier_UnlimitedAttempts(t *testing.T) {
	r := NewRequestRetrier(context.Background(), []string{"https://example.com"}, newMockRetrier(), 0)
	for i := 0; i < 50; i++ {
		_, ok := r.Next(nil, nil)
		require.True(t, ok)
	}
}

func TestRequestRetrier_NoURIs(t *testing.T) {
	r := NewRequestRetrier(context.Background(), nil, newMockRetrier(), 0)
	_, ok := r.Next(nil, nil)
	require.False(t, ok)
}

func TestRequestRetrier_StopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRequestRetrier(ctx, []string{"a"}, newMockRetrier(), 0)
	_, ok := r.Next(nil, nil)
	require.True(t, ok)
	cancel()
	_, ok = r.Next(nil, werror.WrapWithContextParams(ctx, context.Canceled, "request failed"))
	require.False(t, ok)
}

func TestRequestRetrier_UsesLocationHeader(t *testing.T) {
	resp := &http.Response{StatusCode: http.StatusPermanentRedirect, Header: http.Header{}}
	resp.Header.Set("Location", "http://example.com/some/path")
	retrier := newMockRetrier()
	r := NewRequestRetrier(context.Background(), []string{"a"}, retrier, 2)
	_, ok := r.Next(nil, nil)
	require.True(t, ok)
	uri, ok := r.Next(resp, nil)
	require.True(t, ok)
	assert.Equal(t, "http://example.com", uri)
	assert.True(t, retrier.DidReset)
}

func TestRequestRetrier_Next(t *testing.T) {
	for _, tc := range []struct {
		name               string
		resp               *http.Response
		respErr            error
		uris               []string
		shouldRetry        bool
		shouldRetrySameURI bool
		shouldRetryBackoff bool
	}{
		{
			name:        "does not retry a successful response",
			resp:        &http.Response{StatusCode: http.StatusOK},
			uris:        []string{"a", "b"},
			shouldRetry: false,
		},
		{
			name:        "does not retry a non-QoS error code",
			respErr:     werror.ErrorWithContextParams(context.Background(), "404", werror.SafeParam("statusCode", 404)),
			uris:        []string{"a", "b"},
			shouldRetry: false,
		},
		{
			name:        "does not retry an internal server error",
			respErr:     werror.ErrorWithContextParams(context.Background(), "500", werror.SafeParam("statusCode", 500)),
			uris:        []string{"a", "b"},
			shouldRetry: false,
		},
		{
			name:        "returns a new URI if response and error are nil",
			uris:        []string{"a", "b"},
			shouldRetry: true,
		},
		{
			name:               "retries and backs off the single URI on transport failure",
			respErr:            werror.ErrorWithContextParams(context.Background(), "connection refused"),
			uris:               []string{"a"},
			shouldRetry:        true,
			shouldRetrySameURI: true,
			shouldRetryBackoff: true,
		},
		{
			name:        "returns a new URI if unavailable",
			respErr:     werror.ErrorWithContextParams(context.Background(), "503", werror.SafeParam("statusCode", 503)),
			uris:        []string{"a", "b"},
			shouldRetry: true,
		},
		{
			name:               "retries and backs off the single URI if unavailable",
			respErr:            werror.ErrorWithContextParams(context.Background(), "503", werror.SafeParam("statusCode", 503)),
			uris:               []string{"a"},
			shouldRetry:        true,
			shouldRetrySameURI: true,
			shouldRetryBackoff: true,
		},
		{
			name:               "returns a new URI and backs off if throttled",
			respErr:            werror.ErrorWithContextParams(context.Background(), "429", werror.SafeParam("statusCode", 429)),
			uris:               []string{"a", "b"},
			shouldRetry:        true,
			shouldRetryBackoff: true,
		},
		{
			name:               "retries single URI and backs off if throttled",
			resp:               &http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}},
			uris:               []string{"a"},
			shouldRetry:        true,
			shouldRetrySameURI: true,
			shouldRetryBackoff: true,
		},
		{
			name:        "retries another URI if gets retry other response without location",
			resp:        &http.Response{StatusCode: http.StatusPermanentRedirect, Header: http.Header{}},
			uris:        []string{"a", "b"},
			shouldRetry: true,
		},
		{
			name:               "retries single URI and backs off if gets retry other response without location",
			resp:               &http.Response{StatusCode: http.StatusPermanentRedirect, Header: http.Header{}},
			uris:               []string{"a"},
			shouldRetry:        true,
			shouldRetrySameURI: true,
			shouldRetryBackoff: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			retrier := newMockRetrier()
			r := NewRequestRetrier(context.Background(), tc.uris, retrier, 2)
			// first URI isn't a retry
			firstURI, ok := r.Next(nil, nil)
			require.True(t, ok)
			callsBefore := retrier.NextCalls

			retryURI, ok := r.Next(tc.resp, tc.respErr)
			require.Equal(t, tc.shouldRetry, ok)
			if !tc.shouldRetry {
				return
			}
			require.Contains(t, tc.uris, retryURI)
			if tc.shouldRetrySameURI {
				assert.Equal(t, firstURI, retryURI)
			} else {
				assert.NotEqual(t, firstURI, retryURI)
			}
			assert.Equal(t, tc.shouldRetryBackoff, retrier.NextCalls > callsBefore)
		})
	}
}

func newMockRetrier() *mockRetrier {
	return &mockRetrier{}
}

type mockRetrier struct {
	NextCalls int
	DidReset  bool
}

func (m *mockRetrier) Reset() {
	m.DidReset = true
}

func (m *mockRetrier) Next() bool {
	m.NextCalls++
	return true
}

func (m *mockRetrier) CurrentAttempt() int {
	return m.NextCalls
}
