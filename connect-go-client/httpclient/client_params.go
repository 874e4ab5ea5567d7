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
	"net/url"
	"time"

	"github.com/palantir/connect-go-sdk/connect-go-contract/errors"
	"github.com/palantir/connect-go-sdk/connect-go-contract/useragent"
	"github.com/palantir/pkg/bytesbuffers"
	"github.com/palantir/pkg/metrics"
	"github.com/palantir/pkg/refreshable"
	werror "github.com/palantir/witchcraft-go-error"
)

// ClientParam is a param that can be used to build a Client.
type ClientParam interface {
	apply(builder *clientBuilder) error
}

// HTTPClientParam is a param that can be used to build an *http.Client
// as well as a Client.
type HTTPClientParam interface {
	ClientParam
	applyHTTPClient(builder *httpClientBuilder) error
}

type clientParamFunc func(builder *clientBuilder) error

func (f clientParamFunc) apply(b *clientBuilder) error {
	return f(b)
}

type httpClientParamFunc func(builder *httpClientBuilder) error

func (f httpClientParamFunc) apply(b *clientBuilder) error {
	return f(&b.httpClientBuilder)
}

func (f httpClientParamFunc) applyHTTPClient(b *httpClientBuilder) error {
	return f(b)
}

// WithConfig applies every field of the provided ClientConfig.
func WithConfig(c ClientConfig) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		params, err := configToParams(c)
		if err != nil {
			return err
		}
		for _, p := range params {
			if err := p.apply(b); err != nil {
				return err
			}
		}
		return nil
	})
}

// WithServiceName sets the service name tag on the client's metrics and spans.
func WithServiceName(serviceName string) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.ServiceName = serviceName
		return nil
	})
}

// WithMiddleware will be invoked for custom HTTP behavior after the
// underlying transport is initialized. Each handler added "wraps" the previous
// and will be called in reverse order of invocation. The outermost middleware
// runs once per attempt and sees the decoded error of failed attempts.
func WithMiddleware(h Middleware) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.ClientMiddleware = append(b.ClientMiddleware, h)
		return nil
	})
}

// WithTransportMiddleware adds a middleware directly around the transport, inside metrics and tracing.
// It observes the raw response of each attempt.
func WithTransportMiddleware(h Middleware) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.Middlewares = append(b.Middlewares, h)
		return nil
	})
}

// WithAuthToken sets the Authorization header to a static bearerToken.
func WithAuthToken(bearerToken string) HTTPClientParam {
	return WithAuthTokenProvider(func(context.Context) (string, error) {
		return bearerToken, nil
	})
}

// WithAuthTokenProvider calls provideToken() and sets the Authorization header.
func WithAuthTokenProvider(provideToken TokenProvider) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		if provideToken == nil {
			return werror.Error("auth token provider can not be nil")
		}
		b.Middlewares = append(b.Middlewares, &authTokenMiddleware{provideToken: provideToken})
		return nil
	})
}

// WithBasicAuth sets the request's Authorization header to use HTTP Basic Authentication.
func WithBasicAuth(user, password string) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.Middlewares = append(b.Middlewares, &basicAuthMiddleware{user: user, password: password})
		return nil
	})
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) HTTPClientParam {
	return WithSetHeader("User-Agent", userAgent)
}

// WithUserAgentBuilder sets the User-Agent header from builder, with the runtime's default products appended.
func WithUserAgentBuilder(builder *useragent.Builder) HTTPClientParam {
	ua := useragent.Default.Clone()
	if builder != nil {
		ua = builder.Clone()
	}
	return WithUserAgent(ua.String())
}

// WithSetHeader sets a header on every request sent by the client.
func WithSetHeader(key, value string) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.Middlewares = append(b.Middlewares, headerMiddleware(http.Header{http.CanonicalHeaderKey(key): []string{value}}))
		return nil
	})
}

// WithBaseURLs sets the base URLs for every request. This is meant to be used in conjunction with WithPath.
func WithBaseURLs(urls []string) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.URIs = append([]string(nil), urls...)
		return nil
	})
}

// WithHTTPTimeout sets the timeout on the http client.
// If unset, the client defaults to 1 minute.
func WithHTTPTimeout(timeout time.Duration) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.Timeout = timeout
		return nil
	})
}

// WithDialTimeout sets the timeout on the Dialer.
// If unset, the client defaults to 5 seconds.
func WithDialTimeout(timeout time.Duration) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.DialTimeout = timeout
		return nil
	})
}

// WithKeepAlive sets the keep alive frequency on the Dialer.
// If unset, the client defaults to 30 seconds. If set to 0, keep-alives are disabled.
func WithKeepAlive(keepAlive time.Duration) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.KeepAlive = keepAlive
		return nil
	})
}

// WithIdleConnTimeout sets the timeout for idle connections.
// If unset, the client defaults to 90 seconds.
func WithIdleConnTimeout(timeout time.Duration) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.IdleConnTimeout = timeout
		return nil
	})
}

// WithTLSHandshakeTimeout sets the timeout for TLS handshakes.
// If unset, the client defaults to 10 seconds.
func WithTLSHandshakeTimeout(timeout time.Duration) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.TLSHandshakeTimeout = timeout
		return nil
	})
}

// WithExpectContinueTimeout sets the timeout to receive the server's first response headers after
// fully writing the request headers if the request has an "Expect: 100-continue" header.
// If unset, the client defaults to 1 second.
func WithExpectContinueTimeout(timeout time.Duration) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.ExpectContinueTimeout = timeout
		return nil
	})
}

// WithResponseHeaderTimeout specifies the amount of time to wait for a server's response headers after fully
// writing the request. If unset, there is no such timeout.
func WithResponseHeaderTimeout(timeout time.Duration) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.ResponseHeaderTimeout = timeout
		return nil
	})
}

// WithHTTP2Timeouts sets the HTTP/2 health check interval and the time to wait for its ping response.
func WithHTTP2Timeouts(readIdleTimeout, pingTimeout time.Duration) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.HTTP2ReadIdleTimeout = readIdleTimeout
		b.HTTP2PingTimeout = pingTimeout
		return nil
	})
}

// WithMaxIdleConns sets the number of reusable TCP connections the client will maintain.
// If unset, the client defaults to 200.
func WithMaxIdleConns(conns int) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.MaxIdleConns = conns
		return nil
	})
}

// WithMaxIdleConnsPerHost sets the number of reusable TCP connections the client will maintain per destination.
// If unset, the client defaults to 100.
func WithMaxIdleConnsPerHost(conns int) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.MaxIdleConnsPerHost = conns
		return nil
	})
}

// WithTLSConfig sets the SSL/TLS configuration for the HTTP client's Transport using a copy of the provided config.
// The palantir/pkg/tlsconfig package is recommended to build a tls.Config from sane defaults.
func WithTLSConfig(conf *tls.Config) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		if conf != nil {
			b.TLSConfig = conf.Clone()
		}
		return nil
	})
}

// WithTLSInsecureSkipVerify sets the InsecureSkipVerify field for the HTTP client's tls config.
// This option should only be used in clients that have other ways to establish trust with servers.
func WithTLSInsecureSkipVerify() HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		if b.TLSConfig == nil {
			b.TLSConfig = &tls.Config{}
		}
		b.TLSConfig.InsecureSkipVerify = true
		return nil
	})
}

// WithProxyURL can be used to set a socks5 or HTTP(S) proxy.
func WithProxyURL(proxyURLString string) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		proxyURL, err := url.Parse(proxyURLString)
		if err != nil {
			return werror.Wrap(err, "failed to parse proxy url", werror.UnsafeParam("proxyURL", proxyURLString))
		}
		switch proxyURL.Scheme {
		case "http", "https":
			b.HTTPProxyURL = proxyURL
			b.SocksProxyURL = nil
		case "socks5", "socks5h":
			b.SocksProxyURL = proxyURL
			b.HTTPProxyURL = nil
		default:
			return werror.Error("invalid proxy url: only http(s) and socks5 are supported",
				werror.SafeParam("scheme", proxyURL.Scheme))
		}
		return nil
	})
}

// WithNoProxy nils out the Proxy field of the http.Transport,
// ignoring any proxy set in the process's environment.
// If unset, the default is http.ProxyFromEnvironment.
func WithNoProxy() HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.ProxyFromEnvironment = false
		b.HTTPProxyURL = nil
		b.SocksProxyURL = nil
		return nil
	})
}

// WithDisableHTTP2 skips the default behavior of configuring
// the transport with http2.ConfigureTransport.
func WithDisableHTTP2() HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.DisableHTTP2 = true
		return nil
	})
}

// WithDisableMetrics disables the client.response timer and TLS handshake meters.
func WithDisableMetrics() HTTPClientParam {
	return WithRefreshableDisableMetrics(refreshable.NewBool(refreshable.NewDefaultRefreshable(true)))
}

// WithRefreshableDisableMetrics disables metrics whenever disabled is true.
func WithRefreshableDisableMetrics(disabled refreshable.Bool) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.DisableMetrics = disabled
		return nil
	})
}

// WithMetricsTags adds static tags to the client.response timer.
func WithMetricsTags(tags ...metrics.Tag) HTTPClientParam {
	return WithMetricsTagProviders(StaticTagsProvider(tags))
}

// WithMetricsTagProviders adds tag providers to the client.response timer.
func WithMetricsTagProviders(providers ...TagsProvider) HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.MetricsTagProviders = append(b.MetricsTagProviders, providers...)
		return nil
	})
}

// WithDisableTracing disables the creation of client spans.
func WithDisableTracing() HTTPClientParam {
	return httpClientParamFunc(func(b *httpClientBuilder) error {
		b.DisableTracing = true
		return nil
	})
}

// WithDisableTraceHeaderPropagation disables setting the X-B3-TraceId header from the request context.
func WithDisableTraceHeaderPropagation() ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.DisableTraceHeaderPropagation = refreshable.NewBool(refreshable.NewDefaultRefreshable(true))
		return nil
	})
}

// WithDisableRecovery disables the recovery of panics into errors.
func WithDisableRecovery() ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.DisableRecovery = true
		return nil
	})
}

// WithMaxRetries sets the maximum number of retries on transport errors and QoS responses.
// A request is attempted at most maxTransportRetries+1 times.
// If unset, the client tries each base URI at most twice. If zero, the request is not retried.
func WithMaxRetries(maxTransportRetries int) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		if maxTransportRetries < 0 {
			return werror.Error("max retries can not be negative", werror.SafeParam("maxRetries", maxTransportRetries))
		}
		attempts := maxTransportRetries + 1
		b.MaxAttempts = refreshable.NewIntPtr(refreshable.NewDefaultRefreshable(&attempts))
		return nil
	})
}

// WithUnlimitedRetries allows the client to retry until the request context is done.
func WithUnlimitedRetries() ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		attempts := 0
		b.MaxAttempts = refreshable.NewIntPtr(refreshable.NewDefaultRefreshable(&attempts))
		return nil
	})
}

// WithRefreshableMaxAttempts sets the attempt limit from a refreshable *int. A nil value uses the default.
func WithRefreshableMaxAttempts(maxAttempts refreshable.IntPtr) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.MaxAttempts = maxAttempts
		return nil
	})
}

// WithInitialBackoff sets the initial backoff between retried calls to the same URI.
// If unset, the client defaults to 250ms.
func WithInitialBackoff(initialBackoff time.Duration) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.InitialBackoff = refreshable.NewDuration(refreshable.NewDefaultRefreshable(initialBackoff))
		return nil
	})
}

// WithMaxBackoff sets the maximum backoff between retried calls to the same URI.
// If unset, the client defaults to 2 seconds.
func WithMaxBackoff(maxBackoff time.Duration) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.MaxBackoff = refreshable.NewDuration(refreshable.NewDefaultRefreshable(maxBackoff))
		return nil
	})
}

// WithRefreshableBackoff sets the initial and maximum backoff from refreshable durations.
func WithRefreshableBackoff(initialBackoff, maxBackoff refreshable.Duration) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.InitialBackoff = initialBackoff
		b.MaxBackoff = maxBackoff
		return nil
	})
}

// WithErrorDecoder sets a custom ErrorDecoder to use for responses with unsuccessful status codes.
func WithErrorDecoder(errorDecoder ErrorDecoder) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.ErrorDecoder = errorDecoder
		return nil
	})
}

// WithDisableRestErrors disables the middleware which sets Do()'s returned
// error to a non-nil value in the case of >= 400 HTTP response.
func WithDisableRestErrors() ClientParam {
	return WithErrorDecoder(nil)
}

// WithServiceErrorRegistry sets the registry used by the default error decoder to
// unmarshal serialized service errors into their registered types.
func WithServiceErrorRegistry(registry *errors.Registry) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		if _, ok := b.ErrorDecoder.(restErrorDecoder); ok {
			b.ErrorDecoder = restErrorDecoder{registry: registry}
		}
		return nil
	})
}

// WithErrorLoggers sets the registry used to log notable transport failures.
func WithErrorLoggers(registry ErrorRegistry) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.ErrorLoggers = registry
		return nil
	})
}

// WithBytesBufferPool stores a bytes buffer pool on the client for use in encoding request bodies.
// This prevents allocating a new byte buffer for every request.
func WithBytesBufferPool(pool bytesbuffers.Pool) ClientParam {
	return clientParamFunc(func(b *clientBuilder) error {
		b.BytesBufferPool = pool
		return nil
	})
}
