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

package httpclient

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/http/httptrace"
	"time"

	"github.com/palantir/pkg/metrics"
	"github.com/palantir/pkg/refreshable"
	werror "github.com/palantir/witchcraft-go-error"
)

const (
	MetricTagServiceName = "service-name"
	metricClientResponse = "client.response"
	metricTagFamily      = "family"
	metricTagMethod      = "method"
	metricRPCMethodName  = "method-name"

	metricTagFamilyOther = "other"
	metricTagFamily1xx   = "1xx"
	metricTagFamily2xx   = "2xx"
	metricTagFamily3xx   = "3xx"
	metricTagFamily4xx   = "4xx"
	metricTagFamily5xx   = "5xx"

	MetricTLSHandshakeAttempt = "tls.handshake.attempt.count"
	MetricTLSHandshakeFailure = "tls.handshake.failure.count"
	MetricTLSHandshake        = "tls.handshake.count"
	CipherTagKey              = "cipher"
	NextProtocolTagKey        = "next_protocol"
	TLSVersionTagKey          = "tls_version"
)

// A TagsProvider returns metrics tags based on an http round trip.
type TagsProvider interface {
	Tags(*http.Request, *http.Response) metrics.Tags
}

// TagsProviderFunc is a convenience type that implements TagsProvider.
type TagsProviderFunc func(*http.Request, *http.Response) metrics.Tags

func (f TagsProviderFunc) Tags(req *http.Request, resp *http.Response) metrics.Tags {
	return f(req, resp)
}

// StaticTagsProvider returns the same set of tags for every round trip.
type StaticTagsProvider metrics.Tags

func (s StaticTagsProvider) Tags(_ *http.Request, _ *http.Response) metrics.Tags {
	return metrics.Tags(s)
}

// MetricsMiddleware updates the "client.response" timer metric on every request.
// By default, metrics are tagged with 'service-name', 'method', 'method-name' and 'family' (of the
// status code). It also marks the TLS handshake meters for new connections.
func MetricsMiddleware(serviceName string, tagProviders ...TagsProvider) (Middleware, error) {
	serviceNameTag, err := metrics.NewTag(MetricTagServiceName, serviceName)
	if err != nil {
		return nil, werror.Wrap(err, "failed to construct service-name metric tag", werror.SafeParam("serviceName", serviceName))
	}
	return newMetricsMiddleware(serviceNameTag, tagProviders, nil), nil
}

func newMetricsMiddleware(serviceNameTag metrics.Tag, tagProviders []TagsProvider, disabled refreshable.Bool) *metricsMiddleware {
	return &metricsMiddleware{
		Disabled:       disabled,
		serviceNameTag: serviceNameTag,
		Tags: append(append([]TagsProvider(nil), tagProviders...),
			TagsProviderFunc(tagStatusFamily),
			TagsProviderFunc(tagRequestMethod),
			TagsProviderFunc(tagRequestMethodName),
			StaticTagsProvider{serviceNameTag},
		),
	}
}

type metricsMiddleware struct {
	Disabled       refreshable.Bool
	serviceNameTag metrics.Tag
	Tags           []TagsProvider
}

// RoundTrip will emit the client.response timer, tagged by the configured providers,
// and the TLS handshake meters.
func (h *metricsMiddleware) RoundTrip(req *http.Request, next http.RoundTripper) (*http.Response, error) {
	if h.Disabled != nil && h.Disabled.CurrentBool() {
		return next.RoundTrip(req)
	}
	start := time.Now()
	resp, err := next.RoundTrip(req.WithContext(h.tlsTraceContext(req.Context())))
	duration := time.Since(start)

	var tags metrics.Tags
	for _, tagProvider := range h.Tags {
		tags = append(tags, tagProvider.Tags(req, resp)...)
	}
	metrics.FromContext(req.Context()).Timer(metricClientResponse, tags...).Update(duration / time.Microsecond)
	return resp, err
}

func tagStatusFamily(_ *http.Request, resp *http.Response) metrics.Tags {
	var tag metrics.Tag
	switch {
	case resp == nil, resp.StatusCode < 100, resp.StatusCode > 599:
		tag = metrics.MustNewTag(metricTagFamily, metricTagFamilyOther)
	case resp.StatusCode < 200:
		tag = metrics.MustNewTag(metricTagFamily, metricTagFamily1xx)
	case resp.StatusCode < 300:
		tag = metrics.MustNewTag(metricTagFamily, metricTagFamily2xx)
	case resp.StatusCode < 400:
		tag = metrics.MustNewTag(metricTagFamily, metricTagFamily3xx)
	case resp.StatusCode < 500:
		tag = metrics.MustNewTag(metricTagFamily, metricTagFamily4xx)
	default:
		tag = metrics.MustNewTag(metricTagFamily, metricTagFamily5xx)
	}
	return metrics.Tags{tag}
}

func tagRequestMethod(req *http.Request, _ *http.Response) metrics.Tags {
	return metrics.Tags{metrics.MustNewTag(metricTagMethod, req.Method)}
}

func tagRequestMethodName(req *http.Request, _ *http.Response) metrics.Tags {
	rpcMethodName := getRPCMethodName(req.Context())
	if rpcMethodName == "" {
		return metrics.Tags{metrics.MustNewTag(metricRPCMethodName, "RPCMethodNameMissing")}
	}
	tag, err := metrics.NewTag(metricRPCMethodName, rpcMethodName)
	if err == nil {
		return metrics.Tags{tag}
	}
	return metrics.Tags{metrics.MustNewTag(metricRPCMethodName, "RPCMethodNameInvalid")}
}

func (h *metricsMiddleware) tlsTraceContext(ctx context.Context) context.Context {
	return httptrace.WithClientTrace(ctx, &httptrace.ClientTrace{
		TLSHandshakeStart: func() {
			metrics.FromContext(ctx).Meter(MetricTLSHandshakeAttempt, h.serviceNameTag).Mark(1)
		},
		TLSHandshakeDone: func(state tls.ConnectionState, err error) {
			tags := metrics.Tags{h.serviceNameTag}
			if cipherSuite := tls.CipherSuiteName(state.CipherSuite); cipherSuite != "" && err == nil {
				tags = append(tags, metrics.MustNewTag(CipherTagKey, cipherSuite))
			}
			if state.NegotiatedProtocol != "" {
				tags = append(tags, metrics.MustNewTag(NextProtocolTagKey, state.NegotiatedProtocol))
			}
			if tlsVersion := tlsVersionString(state.Version); tlsVersion != "" {
				tags = append(tags, metrics.MustNewTag(TLSVersionTagKey, tlsVersion))
			}
			if err != nil {
				metrics.FromContext(ctx).Meter(MetricTLSHandshakeFailure, tags...).Mark(1)
			} else {
				metrics.FromContext(ctx).Meter(MetricTLSHandshake, tags...).Mark(1)
			}
		},
	})
}

func tlsVersionString(version uint16) string {
	switch version {
	case tls.VersionTLS12:
		return "TLS12"
	case tls.VersionTLS13:
		return "TLS13"
	}
	return ""
}
