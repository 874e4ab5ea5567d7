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
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/palantir/connect-go-sdk/connect-go-client/httpclient"
	"github.com/palantir/witchcraft-go-tracing/wtracing"
	"github.com/palantir/witchcraft-go-tracing/wtracing/propagation/b3"
	"github.com/palantir/witchcraft-go-tracing/wzipkin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracing(t *testing.T) {
	for _, testCase := range []struct {
		name                 string
		clientParams         []httpclient.ClientParam
		requestParams        []httpclient.RequestParam
		ongoingSpanName      string
		shouldPropagateTrace bool
		wantSpanName         string
	}{
		{
			name:                 "no ongoing span, no RPC name",
			shouldPropagateTrace: false,
		},
		{
			name:                 "ongoing span",
			ongoingSpanName:      "operation",
			shouldPropagateTrace: true,
			wantSpanName:         "queues.httpclient",
		},
		{
			name:                 "ongoing span, with RPC name",
			requestParams:        []httpclient.RequestParam{httpclient.WithRPCMethodName("DescribeQueue")},
			ongoingSpanName:      "operation",
			shouldPropagateTrace: true,
			wantSpanName:         "DescribeQueue",
		},
		{
			name:                 "no ongoing span, RPC name",
			requestParams:        []httpclient.RequestParam{httpclient.WithRPCMethodName("ListQueues")},
			shouldPropagateTrace: true,
			wantSpanName:         "ListQueues",
		},
		{
			name:                 "tracing disabled",
			clientParams:         []httpclient.ClientParam{httpclient.WithDisableTracing()},
			requestParams:        []httpclient.RequestParam{httpclient.WithRPCMethodName("ListQueues")},
			shouldPropagateTrace: false,
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			reporter := &testReporter{reporterMap: map[string]interface{}{}}
			tracer, err := wzipkin.NewTracer(reporter)
			require.NoError(t, err)
			ctx := wtracing.ContextWithTracer(context.Background(), tracer)

			if testCase.ongoingSpanName != "" {
				ctx = wtracing.ContextWithSpan(ctx, tracer.StartSpan(testCase.ongoingSpanName))
			}

			server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
				spanCtx := b3.SpanExtractor(req)()
				if testCase.shouldPropagateTrace {
					assert.NoError(t, spanCtx.Err)
				} else {
					assert.Error(t, spanCtx.Err)
				}
				rw.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			params := append([]httpclient.ClientParam{
				httpclient.WithBaseURLs([]string{server.URL}),
				httpclient.WithServiceName("queues"),
				httpclient.WithDisableTraceHeaderPropagation(),
			}, testCase.clientParams...)
			client, err := httpclient.NewClient(params...)
			require.NoError(t, err)

			resp, err := client.Get(ctx, testCase.requestParams...)
			require.NoError(t, err)
			assert.NotNil(t, resp)

			if testCase.wantSpanName != "" {
				assert.Equal(t, testCase.wantSpanName, reporter.get("name"))
				assert.Equal(t, wtracing.Client, reporter.get("kind"))
			}
		})
	}
}

func mustNewTracer() wtracing.Tracer {
	tracer, err := wzipkin.NewTracer(&testReporter{reporterMap: map[string]interface{}{}})
	if err != nil {
		panic(err)
	}
	return tracer
}

type testReporter struct {
	mu          sync.Mutex
	reporterMap map[string]interface{}
}

func (r *testReporter) Send(span wtracing.SpanModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reporterMap["traceID"] = span.TraceID
	r.reporterMap["spanID"] = span.ID
	r.reporterMap["parentID"] = span.ParentID
	r.reporterMap["name"] = span.Name
	r.reporterMap["kind"] = span.Kind
	r.reporterMap["duration"] = span.Duration
}

func (r *testReporter) get(key string) interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reporterMap[key]
}

func (r *testReporter) Close() error {
	return nil
}
