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
	"testing"

	"github.com/palantir/connect-go-sdk/connect-go-client/httpclient"
	"github.com/palantir/pkg/metrics"
	"github.com/palantir/pkg/refreshable"
	"github.com/palantir/pkg/tlsconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseTimerTags(registry metrics.RootRegistry) []map[string]string {
	var out []map[string]string
	registry.Each(func(name string, tags metrics.Tags, value metrics.MetricVal) {
		if name == "client.response" {
			out = append(out, tags.ToMap())
		}
	})
	return out
}

func TestMetrics_ResponseTimer(t *testing.T) {
	for _, tc := range []struct {
		name         string
		status       int
		methodName   string
		clientParams []httpclient.ClientParam
		expectedTags metrics.Tags
	}{
		{
			name:       "success with method name",
			status:     http.StatusOK,
			methodName: "DescribeQueue",
			expectedTags: metrics.Tags{
				metrics.MustNewTag("service-name", "connect"),
				metrics.MustNewTag("method", http.MethodPost),
				metrics.MustNewTag("method-name", "DescribeQueue"),
				metrics.MustNewTag("family", "2xx"),
			},
		},
		{
			name:   "client error without method name",
			status: http.StatusNotFound,
			expectedTags: metrics.Tags{
				metrics.MustNewTag("service-name", "connect"),
				metrics.MustNewTag("method", http.MethodPost),
				metrics.MustNewTag("method-name", "RPCMethodNameMissing"),
				metrics.MustNewTag("family", "4xx"),
			},
		},
		{
			name:         "static tags",
			status:       http.StatusInternalServerError,
			methodName:   "ListQueues",
			clientParams: []httpclient.ClientParam{httpclient.WithMetricsTags(metrics.MustNewTag("region", "us-east-1"))},
			expectedTags: metrics.Tags{
				metrics.MustNewTag("service-name", "connect"),
				metrics.MustNewTag("method", http.MethodPost),
				metrics.MustNewTag("method-name", "ListQueues"),
				metrics.MustNewTag("family", "5xx"),
				metrics.MustNewTag("region", "us-east-1"),
			},
		},
		{
			name:       "tag provider",
			status:     http.StatusOK,
			methodName: "ListQueues",
			clientParams: []httpclient.ClientParam{httpclient.WithMetricsTagProviders(httpclient.TagsProviderFunc(func(req *http.Request, resp *http.Response) metrics.Tags {
				return metrics.Tags{metrics.MustNewTag("provided", "true")}
			}))},
			expectedTags: metrics.Tags{
				metrics.MustNewTag("service-name", "connect"),
				metrics.MustNewTag("method", http.MethodPost),
				metrics.MustNewTag("method-name", "ListQueues"),
				metrics.MustNewTag("family", "2xx"),
				metrics.MustNewTag("provided", "true"),
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rootRegistry := metrics.NewRootMetricsRegistry()
			ctx := metrics.WithRegistry(context.Background(), rootRegistry)

			server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
				rw.WriteHeader(tc.status)
			}))
			defer server.Close()

			client, err := httpclient.NewClient(append(tc.clientParams,
				httpclient.WithServiceName("connect"),
				httpclient.WithBaseURLs([]string{server.URL}))...)
			require.NoError(t, err)

			params := []httpclient.RequestParam{httpclient.WithPath("/v1/listqueues")}
			if tc.methodName != "" {
				params = append(params, httpclient.WithRPCMethodName(tc.methodName))
			}
			_, _ = client.Post(ctx, params...)

			tags := responseTimerTags(rootRegistry)
			require.Len(t, tags, 1)
			assert.Equal(t, tc.expectedTags.ToMap(), tags[0])
		})
	}
}

func TestMetrics_Disabled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	rootRegistry := metrics.NewRootMetricsRegistry()
	ctx := metrics.WithRegistry(context.Background(), rootRegistry)
	disabled := refreshable.NewDefaultRefreshable(true)
	client, err := httpclient.NewClient(
		httpclient.WithServiceName("connect"),
		httpclient.WithRefreshableDisableMetrics(refreshable.NewBool(disabled)),
		httpclient.WithBaseURLs([]string{server.URL}),
	)
	require.NoError(t, err)

	_, err = client.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, responseTimerTags(rootRegistry))

	require.NoError(t, disabled.Update(false))
	_, err = client.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, responseTimerTags(rootRegistry), 1)
}

func TestMetrics_NoServiceName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	rootRegistry := metrics.NewRootMetricsRegistry()
	ctx := metrics.WithRegistry(context.Background(), rootRegistry)
	client, err := httpclient.NewClient(httpclient.WithBaseURLs([]string{server.URL}))
	require.NoError(t, err)
	_, err = client.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, responseTimerTags(rootRegistry))
}

func TestTLSMetrics_SuccessfulHandshake(t *testing.T) {
	srv := httptest.NewTLSServer(http.NotFoundHandler())
	defer srv.Close()

	rootRegistry := metrics.NewRootMetricsRegistry()
	ctx := metrics.WithRegistry(context.Background(), rootRegistry)
	tlsConf, err := tlsconfig.NewClientConfig(tlsconfig.ClientRootCAs(tlsconfig.CertPoolFromCerts(srv.Certificate())))
	require.NoError(t, err)
	client, err := httpclient.NewHTTPClient(httpclient.WithServiceName("connect"), httpclient.WithTLSConfig(tlsConf))
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	req = req.WithContext(httpclient.ContextWithRPCMethodName(ctx, "ListQueues"))

	resp, err := client.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	attempt, success, failure := false, false, false
	rootRegistry.Each(func(name string, tags metrics.Tags, value metrics.MetricVal) {
		switch name {
		case httpclient.MetricTLSHandshakeAttempt:
			attempt = true
		case httpclient.MetricTLSHandshakeFailure:
			failure = true
		case httpclient.MetricTLSHandshake:
			success = true
			tagMap := tags.ToMap()
			_, ok := tagMap[httpclient.CipherTagKey]
			assert.True(t, ok)
			_, ok = tagMap[httpclient.TLSVersionTagKey]
			assert.True(t, ok)
		}
	})
	assert.True(t, attempt, "no tls handshake attempt registered")
	assert.True(t, success, "no successful tls handshake attempt registered")
	assert.False(t, failure, "failed tls handshake attempt registered")
}

func TestTLSMetrics_FailedHandshake(t *testing.T) {
	srv := httptest.NewTLSServer(http.NotFoundHandler())
	defer srv.Close()

	rootRegistry := metrics.NewRootMetricsRegistry()
	ctx := metrics.WithRegistry(context.Background(), rootRegistry)
	client, err := httpclient.NewHTTPClient(httpclient.WithServiceName("connect"))
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	req = req.WithContext(httpclient.ContextWithRPCMethodName(ctx, "ListQueues"))

	_, err = client.Do(req)
	require.Error(t, err)

	attempt, success, failure := false, false, false
	rootRegistry.Each(func(name string, tags metrics.Tags, value metrics.MetricVal) {
		switch name {
		case httpclient.MetricTLSHandshakeAttempt:
			attempt = true
		case httpclient.MetricTLSHandshakeFailure:
			failure = true
		case httpclient.MetricTLSHandshake:
			success = true
		}
	})
	assert.True(t, attempt, "no tls handshake attempt registered")
	assert.False(t, success, "successful tls handshake attempt registered")
	assert.True(t, failure, "no failed tls handshake attempt registered")
}
