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

package internal

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/palantir/pkg/retry"
	werror "github.com/palantir/witchcraft-go-error"
)

// RequestRetrier manages the lifecycle of a single request across attempts. It tracks the
// backoff timing between subsequent attempts and decides which base URI the next attempt targets.
//
// Responses are classified as:
//   - success or non-QoS >= 400: no further attempts
//   - 308 with a Location: the next attempt targets the location, backoff is reset
//   - 429: always back off, then move to the next URI
//   - 503, 308 without a location or transport failure: move to the next URI, backing off only when it already failed
type RequestRetrier struct {
	ctx     context.Context
	retrier retry.Retrier
	uris    []string
	offset  int
	failed  map[string]struct{}

	maxAttempts  int
	attemptCount int
}

// NewRequestRetrier creates a new request retrier starting at a random offset in uris.
// A maxAttempts of 0 indicates no limit. The retrier should have been started with ctx.
func NewRequestRetrier(ctx context.Context, uris []string, retrier retry.Retrier, maxAttempts int) *RequestRetrier {
	offset := 0
	if len(uris) > 1 {
		offset = rand.Intn(len(uris))
	}
	return &RequestRetrier{
		ctx:         ctx,
		retrier:     retrier,
		uris:        uris,
		offset:      offset,
		failed:      make(map[string]struct{}),
		maxAttempts: maxAttempts,
	}
}

func (r *RequestRetrier) attemptsRemaining() bool {
	if r.maxAttempts == 0 {
		return true
	}
	return r.attemptCount < r.maxAttempts
}

// Next returns the base URI for the next attempt and true, or false if no attempt should be made.
// The first call always returns a URI. Subsequent calls inspect the previous attempt's response
// and error; when the returned value is true, the retrier will have waited the backoff interval.
func (r *RequestRetrier) Next(prevResp *http.Response, prevErr error) (string, bool) {
	if len(r.uris) == 0 {
		return "", false
	}
	if r.attemptCount == 0 {
		r.attemptCount++
		// the first call to the retrier never waits; consume it so later calls back off
		r.retrier.Next()
		return r.uris[r.offset], true
	}
	if !r.shouldRetry(prevResp, prevErr) || !r.attemptsRemaining() {
		return "", false
	}
	r.attemptCount++

	prevURI := r.uris[r.offset]
	errCode, _ := StatusCodeFromError(prevErr)

	if isRetryOther, location := IsRetryOtherResponse(prevResp); isRetryOther {
		DrainBody(prevResp)
		if location != nil {
			r.retrier.Reset()
			return (&url.URL{Scheme: location.Scheme, Host: location.Host}).String(), true
		}
	}
	if isThrottle, retryAfter := IsThrottleResponse(prevResp, errCode); isThrottle {
		DrainBody(prevResp)
		if retryAfter > 0 {
			if !r.wait(retryAfter) {
				return "", false
			}
		} else if !r.retrier.Next() {
			return "", false
		}
		return r.rotate(), true
	}

	// 503, 308 without a location or transport failure: mark and fail over
	DrainBody(prevResp)
	r.failed[prevURI] = struct{}{}
	nextURI := r.rotate()
	if _, alreadyFailed := r.failed[nextURI]; alreadyFailed {
		if !r.retrier.Next() {
			return "", false
		}
	}
	return nextURI, true
}

func (r *RequestRetrier) shouldRetry(prevResp *http.Response, prevErr error) bool {
	if r.ctx.Err() != nil || isContextError(prevErr) {
		return false
	}
	if isSuccess(prevResp) {
		return false
	}
	errCode, hasCode := StatusCodeFromError(prevErr)
	if isRetryOther, _ := IsRetryOtherResponse(prevResp); isRetryOther {
		return true
	}
	if isThrottle, _ := IsThrottleResponse(prevResp, errCode); isThrottle {
		return true
	}
	if IsUnavailableResponse(prevResp, errCode) {
		return true
	}
	// any other status is final; no status at all is a transport failure
	return !hasCode && prevResp == nil
}

func (r *RequestRetrier) rotate() string {
	r.offset = (r.offset + 1) % len(r.uris)
	return r.uris[r.offset]
}

// wait sleeps for d unless the retrier's context is done first.
func (r *RequestRetrier) wait(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-r.ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func isContextError(err error) bool {
	if err == nil {
		return false
	}
	for _, e := range []error{err, werror.RootCause(err)} {
		if errors.Is(e, context.Canceled) || errors.Is(e, context.DeadlineExceeded) {
			return true
		}
	}
	return false
}
