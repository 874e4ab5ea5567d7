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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/palantir/connect-go-sdk/connect-go-client/httpclient"
	"github.com/palantir/connect-go-sdk/connect-go-contract/codecs"
	"github.com/palantir/pkg/bytesbuffers"
	"github.com/palantir/witchcraft-go-tracing/wtracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queue struct {
	Name    string `json:"Name"`
	Enabled bool   `json:"Enabled"`
}

func TestClient_JSONRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/prefix/v1/CreateQueue", req.URL.Path)
		assert.Equal(t, "b", req.URL.Query().Get("a"))
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", req.Header.Get("Accept"))
		assert.Equal(t, "value", req.Header.Get("X-Custom"))

		var in queue
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&in))
		in.Enabled = true
		rw.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(rw).Encode(in))
	}))
	defer server.Close()

	client, err := httpclient.NewClient(
		httpclient.WithBaseURLs([]string{server.URL + "/prefix/"}),
		httpclient.WithBytesBufferPool(bytesbuffers.NewSizedPool(1, 10)),
	)
	require.NoError(t, err)

	var out queue
	resp, err := client.Post(context.Background(),
		httpclient.WithPath("v1/CreateQueue"),
		httpclient.WithQueryValues(url.Values{"a": []string{"b"}}),
		httpclient.WithHeader("X-Custom", "value"),
		httpclient.WithJSONRequest(queue{Name: "support"}),
		httpclient.WithJSONResponse(&out),
	)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, queue{Name: "support", Enabled: true}, out)
}

func TestClient_RequiresMethod(t *testing.T) {
	client, err := httpclient.NewClient(httpclient.WithBaseURLs([]string{"http://localhost"}))
	require.NoError(t, err)
	_, err = client.Do(context.Background(), httpclient.WithPath("/"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WithRequestMethod")
}

func TestClient_NoBaseURLs(t *testing.T) {
	client, err := httpclient.NewClient()
	require.NoError(t, err)
	_, err = client.Get(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no base URIs")
}

func TestClient_EmptyResponseLeavesOutputUnmodified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := httpclient.NewClient(httpclient.WithBaseURLs([]string{server.URL}))
	require.NoError(t, err)
	var out *queue
	_, err = client.Get(context.Background(), httpclient.WithJSONResponse(&out))
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestClient_DecodeFailureIsCodecError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		_, _ = rw.Write([]byte(`{"Name": 12`))
	}))
	defer server.Close()

	client, err := httpclient.NewClient(httpclient.WithBaseURLs([]string{server.URL}))
	require.NoError(t, err)
	var out queue
	_, err = client.Get(context.Background(), httpclient.WithJSONResponse(&out))
	require.Error(t, err)
	assert.True(t, httpclient.IsCodecError(err))
}

func TestClient_EncodeFailureIsCodecError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	client, err := httpclient.NewClient(httpclient.WithBaseURLs([]string{server.URL}))
	require.NoError(t, err)
	_, err = client.Post(context.Background(), httpclient.WithRequestBody(make(chan int), codecs.JSON))
	require.Error(t, err)
	assert.True(t, httpclient.IsCodecError(err))
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestClient_RawBodies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "application/octet-stream", req.Header.Get("Content-Type"))
		rw.Header().Set("Content-Type", "application/octet-stream")
		_, _ = rw.Write([]byte("pong"))
	}))
	defer server.Close()

	client, err := httpclient.NewClient(httpclient.WithBaseURLs([]string{server.URL}))
	require.NoError(t, err)
	resp, err := client.Post(context.Background(),
		httpclient.WithRawRequestBody(readCloser{strings.NewReader("ping")}),
		httpclient.WithRawResponseBody(),
	)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body := new(bytes.Buffer)
	_, err = body.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", body.String())
}

func TestClient_TraceIDHeader(t *testing.T) {
	var traceID atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		traceID.Store(req.Header.Get("X-B3-TraceId"))
	}))
	defer server.Close()

	tracer := mustNewTracer()
	span := tracer.StartSpan("parent")
	defer span.Finish()
	ctx := wtracing.ContextWithSpan(wtracing.ContextWithTracer(context.Background(), tracer), span)

	client, err := httpclient.NewClient(httpclient.WithBaseURLs([]string{server.URL}))
	require.NoError(t, err)
	_, err = client.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(span.Context().TraceID), traceID.Load())
}

func TestClient_RequestMiddlewareObservesRawResponses(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			rw.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		rw.Header().Set(httpclient.RequestIDHeader, "req-2")
	}))
	defer server.Close()

	client, err := httpclient.NewClient(
		httpclient.WithBaseURLs([]string{server.URL}),
		httpclient.WithInitialBackoff(0),
		httpclient.WithMaxBackoff(0),
	)
	require.NoError(t, err)

	var statuses []int
	var requestIDs []string
	_, err = client.Get(context.Background(), httpclient.WithRequestMiddleware(httpclient.MiddlewareFunc(
		func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
			resp, err := next.RoundTrip(req)
			if resp != nil {
				statuses = append(statuses, resp.StatusCode)
				requestIDs = append(requestIDs, httpclient.RequestIDFromHeader(resp.Header))
			}
			return resp, err
		})))
	require.NoError(t, err)
	assert.Equal(t, []int{http.StatusServiceUnavailable, http.StatusOK}, statuses)
	assert.Equal(t, []string{"", "req-2"}, requestIDs)
}

type readCloser struct {
	*strings.Reader
}

func (readCloser) Close() error {
	return nil
}
