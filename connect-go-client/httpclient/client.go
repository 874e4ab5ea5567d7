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
	"sync/atomic"

	"github.com/palantir/connect-go-sdk/connect-go-client/httpclient/internal"
	"github.com/palantir/pkg/bytesbuffers"
	"github.com/palantir/pkg/refreshable"
	"github.com/palantir/pkg/retry"
	werror "github.com/palantir/witchcraft-go-error"
)

// A Client executes requests to a configured service.
//
// The Get and Post methods set the method type and call Do().
type Client interface {
	// Do executes a full request. Any input or output should be specified via params.
	// By the time it is returned, the response's body will be fully read and closed.
	// Use the WithResponse* params to unmarshal the body before Do() returns.
	//
	// In the case of a response with StatusCode >= 400, Do() will return a nil response and a non-nil error.
	// Use StatusCodeFromError(err) to retrieve the code from the error
	// and WithDisableRestErrors() to disable this middleware on your client.
	Do(ctx context.Context, params ...RequestParam) (*http.Response, error)

	Get(ctx context.Context, params ...RequestParam) (*http.Response, error)
	Post(ctx context.Context, params ...RequestParam) (*http.Response, error)

	// Close releases idle connections. Requests issued after Close fail without network I/O.
	// Close is safe to call more than once.
	Close() error
}

type clientImpl struct {
	client    http.Client
	transport *http.Transport

	middlewares            []Middleware
	errorDecoderMiddleware Middleware
	recoveryMiddleware     Middleware
	errorLogger            ErrorRegistry

	uris                          []string
	maxAttempts                   refreshable.IntPtr // 0 means no limit. If nil, use 2*len(uris).
	backoffOptions                func() []retry.Option
	disableTraceHeaderPropagation refreshable.Bool
	bufferPool                    bytesbuffers.Pool

	closed atomic.Bool
}

func (c *clientImpl) Get(ctx context.Context, params ...RequestParam) (*http.Response, error) {
	return c.Do(ctx, append(params, WithRequestMethod(http.MethodGet))...)
}

func (c *clientImpl) Post(ctx context.Context, params ...RequestParam) (*http.Response, error) {
	return c.Do(ctx, append(params, WithRequestMethod(http.MethodPost))...)
}

func (c *clientImpl) Close() error {
	if c.closed.CompareAndSwap(false, true) && c.transport != nil {
		c.transport.CloseIdleConnections()
	}
	return nil
}

func (c *clientImpl) Do(ctx context.Context, params ...RequestParam) (*http.Response, error) {
	if c.closed.Load() {
		return nil, werror.ErrorWithContextParams(ctx, "httpclient: client is closed")
	}
	if len(c.uris) == 0 {
		return nil, werror.ErrorWithContextParams(ctx, "httpclient: no base URIs are configured")
	}

	retrier := internal.NewRequestRetrier(ctx, c.uris, retry.Start(ctx, c.backoffOptions()...), c.currentMaxAttempts())

	var err error
	var resp *http.Response
	for {
		baseURI, ok := retrier.Next(resp, err)
		if !ok {
			break
		}
		resp, err = c.doOnce(ctx, baseURI, params...)
		if err != nil && resp == nil {
			c.errorLogger.LogError(ctx, werror.RootCause(err))
		}
	}
	if err != nil {
		return nil, err
	}
	if isRetryOther, _ := internal.IsRetryOtherResponse(resp); isRetryOther {
		internal.DrainBody(resp)
		return nil, werror.ErrorWithContextParams(ctx, "could not find live server",
			werror.SafeParam("statusCode", resp.StatusCode))
	}
	return resp, nil
}

func (c *clientImpl) currentMaxAttempts() int {
	if c.maxAttempts != nil {
		if attempts := c.maxAttempts.CurrentIntPtr(); attempts != nil {
			return *attempts
		}
	}
	return 2 * len(c.uris)
}

func (c *clientImpl) doOnce(ctx context.Context, baseURI string, params ...RequestParam) (*http.Response, error) {
	req, b, err := c.newRequest(ctx, baseURI, params...)
	if err != nil {
		return nil, err
	}

	// shallow copy so we can overwrite the Transport with a wrapped one.
	clientCopy := c.client
	transport := clientCopy.Transport // start with the client's transport configured with default middleware

	// per-request middlewares observe the raw response, before it is converted into an error.
	transport = wrapTransport(transport, b.middlewares...)
	// must precede the body middleware to read the response body
	transport = wrapTransport(transport, b.errorDecoderMiddleware, c.errorDecoderMiddleware)
	// must precede the body middleware to read the request body
	transport = wrapTransport(transport, c.middlewares...)
	// must wrap inner middlewares to mutate the return values
	transport = wrapTransport(transport, b.bodyMiddleware)
	// must be the outermost middleware to recover panics in the rest of the request flow
	transport = wrapTransport(transport, c.recoveryMiddleware)

	clientCopy.Transport = transport

	resp, respErr := clientCopy.Do(req)
	if respErr != nil {
		return nil, unwrapURLError(ctx, respErr)
	}
	return resp, nil
}

// unwrapURLError converts a *url.Error to a werror. We need this because all
// errors from the stdlib's client.Do are wrapped in *url.Error, and if we
// were to blindly return that we would lose any werror params stored on the
// underlying Err.
func unwrapURLError(ctx context.Context, respErr error) error {
	if respErr == nil {
		return nil
	}

	urlErr, ok := respErr.(*url.Error)
	if !ok {
		// We don't recognize this as a url.Error, just return the original.
		return respErr
	}
	params := []werror.Param{werror.SafeParam("requestMethod", urlErr.Op)}

	if parsedURL, _ := url.Parse(urlErr.URL); parsedURL != nil {
		params = append(params,
			werror.SafeParam("requestHost", parsedURL.Host),
			werror.UnsafeParam("requestPath", parsedURL.Path))
	}

	return werror.WrapWithContextParams(ctx, urlErr.Err, "httpclient request failed", params...)
}
