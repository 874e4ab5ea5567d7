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
	"net/http"
	"net/url"

	werror "github.com/palantir/witchcraft-go-error"
	"github.com/palantir/witchcraft-go-tracing/wtracing"
)

type requestBuilder struct {
	method                 string
	path                   string
	headers                http.Header
	query                  url.Values
	bodyMiddleware         *bodyMiddleware
	errorDecoderMiddleware Middleware

	middlewares  []Middleware
	configureCtx []func(context.Context) context.Context
}

const (
	traceIDHeaderKey = "X-B3-TraceId"

	// RequestIDHeader is the response header identifying a call on the server.
	RequestIDHeader = "X-Request-Id"
	// AlternateRequestIDHeader is accepted when RequestIDHeader is absent.
	AlternateRequestIDHeader = "X-Amzn-RequestId"
)

// RequestIDFromHeader returns the server's identifier for a call, or "" when none was sent.
func RequestIDFromHeader(h http.Header) string {
	if id := h.Get(RequestIDHeader); id != "" {
		return id
	}
	return h.Get(AlternateRequestIDHeader)
}

type RequestParam interface {
	apply(*requestBuilder) error
}

type requestParamFunc func(*requestBuilder) error

func (f requestParamFunc) apply(b *requestBuilder) error {
	return f(b)
}

// newRequest returns an *http.Request and the builder holding the middlewares which should be
// wrapped around the request during execution.
func (c *clientImpl) newRequest(ctx context.Context, baseURL string, params ...RequestParam) (*http.Request, *requestBuilder, error) {
	b := &requestBuilder{
		headers:        c.initializeRequestHeaders(ctx),
		query:          make(url.Values),
		bodyMiddleware: &bodyMiddleware{bufferPool: c.bufferPool},
	}

	for _, p := range params {
		if p == nil {
			continue
		}
		if err := p.apply(b); err != nil {
			return nil, nil, err
		}
	}
	for _, c := range b.configureCtx {
		ctx = c(ctx)
	}

	if b.method == "" {
		return nil, nil, werror.ErrorWithContextParams(ctx, "httpclient: use WithRequestMethod() to specify HTTP method")
	}

	req, err := http.NewRequestWithContext(ctx, b.method, joinURIAndPath(baseURL, b.path), nil)
	if err != nil {
		return nil, nil, werror.WrapWithContextParams(ctx, err, "failed to build new HTTP request")
	}
	req.Header = b.headers
	if q := b.query.Encode(); q != "" {
		req.URL.RawQuery = q
	}
	return req, b, nil
}

func (c *clientImpl) initializeRequestHeaders(ctx context.Context) http.Header {
	headers := make(http.Header)
	if c.disableTraceHeaderPropagation == nil || !c.disableTraceHeaderPropagation.CurrentBool() {
		traceID := wtracing.TraceIDFromContext(ctx)
		if traceID != "" {
			headers.Set(traceIDHeaderKey, string(traceID))
		}
	}
	return headers
}

func joinURIAndPath(baseURI, reqPath string) string {
	if reqPath == "" {
		return baseURI
	}
	for len(baseURI) > 0 && baseURI[len(baseURI)-1] == '/' {
		baseURI = baseURI[:len(baseURI)-1]
	}
	if reqPath[0] != '/' {
		reqPath = "/" + reqPath
	}
	return baseURI + reqPath
}
