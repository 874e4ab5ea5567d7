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

	werror "github.com/palantir/witchcraft-go-error"
)

// TokenProvider accepts a context and returns either:
//
// (1) a nonempty token and a nil error, or
//
// (2) an empty string and a non-nil error.
//
// A good implementation will request and cache an credential token
// from an auth service and return it on subsequent calls.
type TokenProvider func(context.Context) (string, error)

// authTokenMiddleware sets the Authorization header of every attempt to a bearer token.
type authTokenMiddleware struct {
	provideToken TokenProvider
}

func (h *authTokenMiddleware) RoundTrip(req *http.Request, next http.RoundTripper) (*http.Response, error) {
	token, err := h.provideToken(req.Context())
	if err != nil {
		return nil, werror.WrapWithContextParams(req.Context(), err, "failed to provide auth token")
	}
	if token == "" {
		return nil, werror.ErrorWithContextParams(req.Context(), "auth token provider returned an empty token")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return next.RoundTrip(req)
}

type basicAuthMiddleware struct {
	user, password string
}

func (h *basicAuthMiddleware) RoundTrip(req *http.Request, next http.RoundTripper) (*http.Response, error) {
	req.SetBasicAuth(h.user, h.password)
	return next.RoundTrip(req)
}

// headerMiddleware sets fixed headers on every attempt.
type headerMiddleware http.Header

func (h headerMiddleware) RoundTrip(req *http.Request, next http.RoundTripper) (*http.Response, error) {
	for k, v := range h {
		req.Header[k] = append([]string(nil), v...)
	}
	return next.RoundTrip(req)
}
