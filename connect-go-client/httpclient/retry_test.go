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

package httpclient_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/palantir/connect-go-sdk/connect-go-client/httpclient"
	"github.com/palantir/connect-go-sdk/connect-go-contract/errors"
	"github.com/palantir/pkg/httpserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetries(maxRetries int) []httpclient.ClientParam {
	return []httpclient.ClientParam{
		httpclient.WithMaxRetries(maxRetries),
		httpclient.WithInitialBackoff(time.Millisecond),
		httpclient.WithMaxBackoff(5 * time.Millisecond),
	}
}

func TestRetry_ThrottledThenSucceeds(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 2 {
			errors.WriteQOSResponse(rw, errors.QOSThrottle{})
			return
		}
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := httpclient.NewClient(append(fastRetries(3), httpclient.WithBaseURLs([]string{server.URL}))...)
	require.NoError(t, err)
	resp, err := client.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestRetry_ThrottleExhausted(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&calls, 1)
		errors.WriteErrorResponse(rw, errors.NewTooManyRequests())
	}))
	defer server.Close()

	client, err := httpclient.NewClient(append(fastRetries(2), httpclient.WithBaseURLs([]string{server.URL}))...)
	require.NoError(t, err)
	_, err = client.Get(context.Background())
	require.Error(t, err)
	code, ok := httpclient.StatusCodeFromError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))

	serviceErr, ok := httpclient.ServiceErrorFromError(err)
	require.True(t, ok)
	assert.Equal(t, "Default:TooManyRequests", serviceErr.Name())
}

func TestRetry_NonQoSErrorsAreNotRetried(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusConflict, http.StatusInternalServerError} {
		t.Run(fmt.Sprint(status), func(t *testing.T) {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
				atomic.AddInt32(&calls, 1)
				rw.WriteHeader(status)
			}))
			defer server.Close()

			client, err := httpclient.NewClient(append(fastRetries(5), httpclient.WithBaseURLs([]string{server.URL}))...)
			require.NoError(t, err)
			_, err = client.Get(context.Background())
			require.Error(t, err)
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		})
	}
}

func TestRetry_FailoverOnUnavailable(t *testing.T) {
	var unavailableCalls, healthyCalls int32
	unavailable := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&unavailableCalls, 1)
		errors.WriteQOSResponse(rw, errors.QOSUnavailable{})
	}))
	defer unavailable.Close()
	healthy := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&healthyCalls, 1)
		rw.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	client, err := httpclient.NewClient(append(fastRetries(3), httpclient.WithBaseURLs([]string{unavailable.URL, healthy.URL}))...)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		resp, err := client.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
	assert.Equal(t, int32(5), atomic.LoadInt32(&healthyCalls))
	assert.LessOrEqual(t, atomic.LoadInt32(&unavailableCalls), int32(5))
}

func TestRetry_FailoverOnConnectionRefused(t *testing.T) {
	port, err := httpserver.AvailablePort()
	require.NoError(t, err)
	healthy := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	client, err := httpclient.NewClient(append(fastRetries(2),
		httpclient.WithBaseURLs([]string{fmt.Sprintf("http://127.0.0.1:%d", port), healthy.URL}))...)
	require.NoError(t, err)
	resp, err := client.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRetry_ConnectionRefusedExhausted(t *testing.T) {
	port, err := httpserver.AvailablePort()
	require.NoError(t, err)
	client, err := httpclient.NewClient(append(fastRetries(1),
		httpclient.WithBaseURLs([]string{fmt.Sprintf("http://127.0.0.1:%d", port)}))...)
	require.NoError(t, err)
	_, err = client.Get(context.Background())
	require.Error(t, err)
	_, ok := httpclient.StatusCodeFromError(err)
	assert.False(t, ok)
}

func TestRetry_RetryOtherUsesLocation(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/v1/DescribeQueue", req.URL.Path)
		rw.WriteHeader(http.StatusOK)
	}))
	defer target.Close()
	redirect := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		errors.WriteQOSResponse(rw, errors.QOSRetryOther{Location: target.URL + "/ignored"})
	}))
	defer redirect.Close()

	client, err := httpclient.NewClient(append(fastRetries(2), httpclient.WithBaseURLs([]string{redirect.URL}))...)
	require.NoError(t, err)
	resp, err := client.Get(context.Background(), httpclient.WithPath("/v1/DescribeQueue"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRetry_RetryOtherExhausted(t *testing.T) {
	redirect := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		errors.WriteQOSResponse(rw, errors.QOSRetryOther{})
	}))
	defer redirect.Close()

	client, err := httpclient.NewClient(append(fastRetries(1), httpclient.WithBaseURLs([]string{redirect.URL}))...)
	require.NoError(t, err)
	_, err = client.Get(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not find live server")
}

func TestRetry_StopsWhenContextCanceled(t *testing.T) {
	var calls int32
	ctx, cancel := context.WithCancel(context.Background())
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&calls, 1)
		cancel()
		errors.WriteQOSResponse(rw, errors.QOSUnavailable{})
	}))
	defer server.Close()

	client, err := httpclient.NewClient(
		httpclient.WithBaseURLs([]string{server.URL}),
		httpclient.WithUnlimitedRetries(),
		httpclient.WithInitialBackoff(time.Millisecond),
	)
	require.NoError(t, err)
	_, err = client.Get(ctx)
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRetry_DefaultAttemptsAreTwicePerURI(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&calls, 1)
		errors.WriteQOSResponse(rw, errors.QOSUnavailable{})
	}))
	defer server.Close()

	client, err := httpclient.NewClient(
		httpclient.WithBaseURLs([]string{server.URL}),
		httpclient.WithInitialBackoff(time.Millisecond),
		httpclient.WithMaxBackoff(time.Millisecond),
	)
	require.NoError(t, err)
	_, err = client.Get(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
