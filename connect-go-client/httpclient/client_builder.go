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

// Package httpclient provides round trippers/transport wrappers for http clients.
package httpclient

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/palantir/pkg/bytesbuffers"
	"github.com/palantir/pkg/metrics"
	"github.com/palantir/pkg/refreshable"
	"github.com/palantir/pkg/retry"
	"github.com/palantir/pkg/tlsconfig"
	werror "github.com/palantir/witchcraft-go-error"
	"golang.org/x/net/proxy"
)

const (
	defaultDialTimeout           = 5 * time.Second
	defaultHTTPTimeout           = 60 * time.Second
	defaultKeepAlive             = 30 * time.Second
	defaultIdleConnTimeout       = 90 * time.Second
	defaultTLSHandshakeTimeout   = 10 * time.Second
	defaultExpectContinueTimeout = 1 * time.Second
	defaultMaxIdleConns          = 200
	defaultMaxIdleConnsPerHost   = 100
	defaultHTTP2ReadIdleTimeout  = 30 * time.Second
	defaultHTTP2PingTimeout      = 15 * time.Second
	defaultInitialBackoff        = 250 * time.Millisecond
	defaultMaxBackoff            = 2 * time.Second
)

type clientBuilder struct {
	httpClientBuilder

	URIs []string

	ErrorDecoder     ErrorDecoder
	DisableRecovery  bool
	ErrorLoggers     ErrorRegistry
	ClientMiddleware []Middleware

	BytesBufferPool               bytesbuffers.Pool
	MaxAttempts                   refreshable.IntPtr // 0 means no limit. If nil, use 2*len(uris).
	InitialBackoff                refreshable.Duration
	MaxBackoff                    refreshable.Duration
	DisableTraceHeaderPropagation refreshable.Bool
}

type httpClientBuilder struct {
	ServiceName string
	Timeout     time.Duration

	DialTimeout           time.Duration
	KeepAlive             time.Duration
	SocksProxyURL         *url.URL
	HTTPProxyURL          *url.URL
	ProxyFromEnvironment  bool
	MaxIdleConns          int
	MaxIdleConnsPerHost   int
	DisableHTTP2          bool
	IdleConnTimeout       time.Duration
	TLSHandshakeTimeout   time.Duration
	ExpectContinueTimeout time.Duration
	ResponseHeaderTimeout time.Duration
	HTTP2ReadIdleTimeout  time.Duration
	HTTP2PingTimeout      time.Duration
	TLSConfig             *tls.Config

	// Middlewares wrap the base transport, inside metrics and tracing.
	Middlewares         []Middleware
	DisableMetrics      refreshable.Bool
	DisableTracing      bool
	MetricsTagProviders []TagsProvider
}

// NewClient returns a configured client ready for use.
// We apply "sane defaults" before applying the provided params.
func NewClient(params ...ClientParam) (Client, error) {
	return newClient(newClientBuilder(), params...)
}

// NewClientFromRefreshableConfig returns a client configured from the current value of config.
// The transport, URIs and credentials are fixed at construction; the retry count, backoff and
// metrics enablement follow later updates to config.
func NewClientFromRefreshableConfig(ctx context.Context, config RefreshableClientConfig, params ...ClientParam) (Client, error) {
	b := newClientBuilder()
	configParams, err := configToParams(config.CurrentClientConfig())
	if err != nil {
		return nil, werror.WrapWithContextParams(ctx, err, "invalid client configuration")
	}
	live := []ClientParam{
		WithRefreshableMaxAttempts(refreshable.NewIntPtr(config.MapClientConfig(func(c ClientConfig) interface{} {
			if c.MaxNumRetries == nil {
				return (*int)(nil)
			}
			attempts := *c.MaxNumRetries + 1
			return &attempts
		}))),
		WithRefreshableBackoff(
			refreshable.NewDuration(config.MapClientConfig(func(c ClientConfig) interface{} {
				return derefPtr(c.InitialBackoff, defaultInitialBackoff)
			})),
			refreshable.NewDuration(config.MapClientConfig(func(c ClientConfig) interface{} {
				return derefPtr(c.MaxBackoff, defaultMaxBackoff)
			})),
		),
		WithRefreshableDisableMetrics(refreshable.NewBool(config.MapClientConfig(func(c ClientConfig) interface{} {
			return !derefPtr(c.Metrics.Enabled, true)
		}))),
	}
	return newClient(b, append(append(configParams, live...), params...)...)
}

func newClient(b *clientBuilder, params ...ClientParam) (Client, error) {
	for _, p := range params {
		if p == nil {
			continue
		}
		if err := p.apply(b); err != nil {
			return nil, err
		}
	}

	transport, err := b.buildTransport()
	if err != nil {
		return nil, err
	}
	roundTripper, err := b.wrapTransport(transport)
	if err != nil {
		return nil, err
	}

	var edm Middleware
	if b.ErrorDecoder != nil {
		edm = errorDecoderMiddleware{errorDecoder: b.ErrorDecoder}
	}
	var recovery Middleware
	if !b.DisableRecovery {
		recovery = recoveryMiddleware{}
	}
	errorLoggers := b.ErrorLoggers
	if errorLoggers == nil {
		errorLoggers = NewErrorRegistry()
	}
	initialBackoff, maxBackoff := b.InitialBackoff, b.MaxBackoff

	return &clientImpl{
		client: http.Client{
			Transport: roundTripper,
			Timeout:   b.Timeout,
			// 308 responses are handled by the retry loop so the request can move to another URI.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		transport:              transport,
		middlewares:            b.ClientMiddleware,
		errorDecoderMiddleware: edm,
		recoveryMiddleware:     recovery,
		errorLogger:            errorLoggers,
		uris:                   b.URIs,
		maxAttempts:            b.MaxAttempts,
		backoffOptions: func() []retry.Option {
			return []retry.Option{
				retry.WithInitialBackoff(initialBackoff.CurrentDuration()),
				retry.WithMaxBackoff(maxBackoff.CurrentDuration()),
				retry.WithMultiplier(2),
				retry.WithRandomizationFactor(0.15),
			}
		},
		disableTraceHeaderPropagation: b.DisableTraceHeaderPropagation,
		bufferPool:                    b.BytesBufferPool,
	}, nil
}

// NewHTTPClient returns a configured http client ready for use.
// We apply "sane defaults" before applying the provided params.
func NewHTTPClient(params ...HTTPClientParam) (*http.Client, error) {
	b := newClientBuilder()
	for _, p := range params {
		if p == nil {
			continue
		}
		if err := p.applyHTTPClient(&b.httpClientBuilder); err != nil {
			return nil, err
		}
	}
	transport, err := b.buildTransport()
	if err != nil {
		return nil, err
	}
	roundTripper, err := b.wrapTransport(transport)
	if err != nil {
		return nil, err
	}
	return &http.Client{Transport: roundTripper, Timeout: b.Timeout}, nil
}

func newClientBuilder() *clientBuilder {
	defaultTLSConfig, _ := tlsconfig.NewClientConfig()
	return &clientBuilder{
		httpClientBuilder: httpClientBuilder{
			Timeout:               defaultHTTPTimeout,
			DialTimeout:           defaultDialTimeout,
			KeepAlive:             defaultKeepAlive,
			ProxyFromEnvironment:  true,
			MaxIdleConns:          defaultMaxIdleConns,
			MaxIdleConnsPerHost:   defaultMaxIdleConnsPerHost,
			IdleConnTimeout:       defaultIdleConnTimeout,
			TLSHandshakeTimeout:   defaultTLSHandshakeTimeout,
			ExpectContinueTimeout: defaultExpectContinueTimeout,
			HTTP2ReadIdleTimeout:  defaultHTTP2ReadIdleTimeout,
			HTTP2PingTimeout:      defaultHTTP2PingTimeout,
			TLSConfig:             defaultTLSConfig,
			DisableMetrics:        refreshable.NewBool(refreshable.NewDefaultRefreshable(false)),
		},
		ErrorDecoder:                  restErrorDecoder{},
		ErrorLoggers:                  DefaultErrorRegistry(),
		InitialBackoff:                refreshable.NewDuration(refreshable.NewDefaultRefreshable(defaultInitialBackoff)),
		MaxBackoff:                    refreshable.NewDuration(refreshable.NewDefaultRefreshable(defaultMaxBackoff)),
		DisableTraceHeaderPropagation: refreshable.NewBool(refreshable.NewDefaultRefreshable(false)),
	}
}

func (b *httpClientBuilder) buildTransport() (*http.Transport, error) {
	dialer := &net.Dialer{
		Timeout:   b.DialTimeout,
		KeepAlive: b.KeepAlive,
	}
	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		MaxIdleConns:          b.MaxIdleConns,
		MaxIdleConnsPerHost:   b.MaxIdleConnsPerHost,
		DisableKeepAlives:     b.KeepAlive == 0,
		IdleConnTimeout:       b.IdleConnTimeout,
		TLSHandshakeTimeout:   b.TLSHandshakeTimeout,
		ExpectContinueTimeout: b.ExpectContinueTimeout,
		ResponseHeaderTimeout: b.ResponseHeaderTimeout,
		TLSClientConfig:       b.TLSConfig,
	}
	switch {
	case b.SocksProxyURL != nil:
		socksDialer, err := proxy.FromURL(b.SocksProxyURL, dialer)
		if err != nil {
			return nil, werror.Wrap(err, "failed to create socks proxy dialer")
		}
		contextDialer, ok := socksDialer.(proxy.ContextDialer)
		if !ok {
			return nil, werror.Error("socks proxy dialer does not support DialContext")
		}
		transport.DialContext = contextDialer.DialContext
	case b.HTTPProxyURL != nil:
		transport.Proxy = http.ProxyURL(b.HTTPProxyURL)
	case b.ProxyFromEnvironment:
		transport.Proxy = http.ProxyFromEnvironment
	}
	if !b.DisableHTTP2 {
		if err := configureHTTP2(transport, b.HTTP2ReadIdleTimeout, b.HTTP2PingTimeout); err != nil {
			return nil, err
		}
	}
	return transport, nil
}

// wrapTransport applies the default middleware stack: metrics and tracing observe every attempt,
// then the configured transport-level middlewares run closest to the wire.
func (b *httpClientBuilder) wrapTransport(transport http.RoundTripper) (http.RoundTripper, error) {
	serviceNameTag := metrics.Tag{}
	if b.ServiceName != "" {
		tag, err := metrics.NewTag(MetricTagServiceName, b.ServiceName)
		if err != nil {
			return nil, werror.Wrap(err, "failed to construct service-name metric tag", werror.SafeParam("serviceName", b.ServiceName))
		}
		serviceNameTag = tag
	}
	var mm Middleware
	if b.ServiceName != "" {
		mm = newMetricsMiddleware(serviceNameTag, b.MetricsTagProviders, b.DisableMetrics)
	}
	return wrapTransport(transport,
		append(append([]Middleware(nil), b.Middlewares...),
			traceMiddleware{Disabled: b.DisableTracing, ServiceName: b.ServiceName},
			mm,
		)...,
	), nil
}
