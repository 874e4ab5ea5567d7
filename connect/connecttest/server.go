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

// Package connecttest provides an in-memory implementation of the service for tests.
//
// Every catalogued operation is served generically: create operations store the request as a
// record and answer with its id and ARN, describe/list/search operations read records back,
// update/put/delete operations change them. Required fields and referenced resources are
// checked and reported with the error kinds the operation declares.
package connecttest

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/palantir/connect-go-sdk/connect"
	"github.com/palantir/connect-go-sdk/connect-go-client/httpclient"
	"github.com/palantir/connect-go-sdk/connect-go-contract/errors"
	"github.com/palantir/connect-go-sdk/connect-go-server/httpserver"
	"github.com/palantir/connect-go-sdk/connect/region"
	"github.com/palantir/pkg/uuid"
	"github.com/palantir/witchcraft-go-logging/wlog"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
	wparams "github.com/palantir/witchcraft-go-params"
)

// AccountID is the account of every ARN the backend issues.
const AccountID = "123456789012"

var errUnknownOperation = errors.MustErrorType(errors.NotFound, "Connect:UnknownOperation")

// RequestHook observes every request before it is served. The request body may be read.
type RequestHook func(operation string, r *http.Request)

// Backend is an http.Handler serving the service from memory. It is safe for concurrent use.
type Backend struct {
	router    chi.Router
	behaviors map[string]behavior
	state     *state
	logger    svc1log.Logger
	apiToken  string
	hook      RequestHook

	requests atomic.Int64

	mu        sync.Mutex
	throttled int
	faults    map[string]connect.ErrorKind
}

// Option configures a Backend.
type Option func(*Backend)

// WithThrottle answers the next n requests with a Throttling error.
func WithThrottle(n int) Option {
	return func(b *Backend) {
		b.throttled = n
	}
}

// WithFault answers every call of operation with an error of the given kind.
func WithFault(operation string, kind connect.ErrorKind) Option {
	return func(b *Backend) {
		b.faults[operation] = kind
	}
}

// WithRequestHook registers a hook called for every request, including throttled ones.
func WithRequestHook(hook RequestHook) Option {
	return func(b *Backend) {
		b.hook = hook
	}
}

// WithAPIToken requires every request to carry the bearer token. Other requests are answered
// with AccessDenied.
func WithAPIToken(token string) Option {
	return func(b *Backend) {
		b.apiToken = token
	}
}

// WithRegion sets the region of issued ARNs. Defaults to us-east-1.
func WithRegion(r region.Region) Option {
	return func(b *Backend) {
		b.state.region = r
	}
}

// WithLogOutput writes the backend's service log to w at the given level. By default nothing is logged.
func WithLogOutput(w io.Writer, level wlog.LogLevel) Option {
	return func(b *Backend) {
		b.logger = svc1log.NewFromCreator(w, level, wlog.NewJSONMarshalLoggerProvider().NewLeveledLogger, svc1log.Origin("connecttest"))
	}
}

// NewBackend returns a backend with an empty store.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		behaviors: defaultBehaviors(),
		state:     newState(region.USEast1),
		logger:    svc1log.NewFromCreator(io.Discard, wlog.InfoLevel, wlog.NewJSONMarshalLoggerProvider().NewLeveledLogger),
		faults:    make(map[string]connect.ErrorKind),
	}
	for _, opt := range opts {
		opt(b)
	}
	r := chi.NewRouter()
	r.Use(b.withLogger)
	r.Method(http.MethodPost, "/v1/{operation}", httpserver.NewJSONHandler(b.serve, nil, httpserver.ErrHandler))
	b.router = r
	return b
}

func (b *Backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.router.ServeHTTP(w, r)
}

// Requests returns the number of requests received, including rejected ones.
func (b *Backend) Requests() int {
	return int(b.requests.Load())
}

// Throttle answers the next n requests with a Throttling error.
func (b *Backend) Throttle(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.throttled = n
}

// SetFault answers every call of operation with an error of the given kind.
func (b *Backend) SetFault(operation string, kind connect.ErrorKind) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.faults[operation] = kind
}

// ClearFaults removes every fault set by WithFault or SetFault.
func (b *Backend) ClearFaults() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.faults = make(map[string]connect.ErrorKind)
}

func (b *Backend) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(svc1log.WithLogger(r.Context(), b.logger)))
	})
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) error {
	b.requests.Add(1)
	w.Header().Set(httpclient.RequestIDHeader, uuid.NewUUID().String())

	name := chi.URLParam(r, "operation")
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.WrapWithInvalidArgument(err)
	}
	if b.hook != nil {
		r.Body = io.NopCloser(bytes.NewReader(raw))
		b.hook(name, r)
	}

	op, ok := connect.LookupOperation(name)
	if !ok {
		return errors.NewError(errUnknownOperation, wparams.NewSafeParamStorer(map[string]interface{}{"operation": name}))
	}
	if b.apiToken != "" {
		token, err := httpserver.ParseBearerTokenHeader(r)
		if err != nil || !httpserver.SecretStringEqual(token, b.apiToken) {
			return newKindError(connect.KindAccessDenied, "request is not authorized")
		}
	}
	if kind, ok := b.injectedFault(op.Name); ok {
		return newKindError(kind, fmt.Sprintf("injected %s fault", kind))
	}

	var body map[string]interface{}
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if err := httpserver.ReadJSONRequest(r, &body); err != nil {
		return newKindError(invalidKind(op), "request body is not a JSON object")
	}
	if body == nil {
		body = map[string]interface{}{}
	}

	bh, ok := b.behaviors[op.Name]
	if !ok {
		return errors.NewError(errUnknownOperation, wparams.NewSafeParamStorer(map[string]interface{}{"operation": name}))
	}
	resp, err := b.state.call(op, bh, body)
	if err != nil {
		return err
	}
	if resp == nil {
		resp = map[string]interface{}{}
	}
	return httpserver.WriteJSONResponse(w, resp, http.StatusOK)
}

// injectedFault consumes one throttled request, or returns the fault set for the operation.
func (b *Backend) injectedFault(operation string) (connect.ErrorKind, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.throttled > 0 {
		b.throttled--
		return connect.KindThrottling, true
	}
	kind, ok := b.faults[operation]
	return kind, ok
}

// Server is a Backend listening on a local port.
type Server struct {
	*httptest.Server
	*Backend
}

// NewServer starts a Backend on a local port. Close the server when done.
func NewServer(opts ...Option) *Server {
	backend := NewBackend(opts...)
	return &Server{
		Server:  httptest.NewServer(backend),
		Backend: backend,
	}
}

// ClientConfig returns a client configuration pointing at the server.
func (s *Server) ClientConfig() connect.Config {
	return connect.Config{Endpoint: s.URL, Region: s.state.region}
}
