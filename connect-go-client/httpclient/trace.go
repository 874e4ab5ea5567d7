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
	"net/http"

	"github.com/palantir/witchcraft-go-tracing/wtracing"
	"github.com/palantir/witchcraft-go-tracing/wtracing/propagation/b3"
)

// traceMiddleware starts a client span for each attempt and propagates it through B3 headers.
// A span is created only when the request context carries an ongoing span or an RPC method name.
type traceMiddleware struct {
	Disabled    bool
	ServiceName string
}

func (t traceMiddleware) RoundTrip(req *http.Request, next http.RoundTripper) (*http.Response, error) {
	ctx := req.Context()
	if t.Disabled || wtracing.TracerFromContext(ctx) == nil {
		return next.RoundTrip(req)
	}
	methodName := getRPCMethodName(ctx)
	if methodName == "" && wtracing.SpanFromContext(ctx) == nil {
		return next.RoundTrip(req)
	}

	spanName := "httpclient"
	if t.ServiceName != "" {
		spanName = t.ServiceName + "." + spanName
	}
	if methodName != "" {
		spanName = methodName
	}
	span, ctx := wtracing.StartSpanFromTracerInContext(ctx, spanName, wtracing.WithKind(wtracing.Client))
	defer span.Finish()

	req = req.WithContext(ctx)
	b3.SpanInjector(req)(span.Context())
	return next.RoundTrip(req)
}
