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

package connect

import (
	"net/http"
	"reflect"
	"time"

	"github.com/palantir/connect-go-sdk/connect-go-client/httpclient"
)

// ResponseMetadata describes the most recent call issued with a request value.
type ResponseMetadata struct {
	// RequestID is the service's identifier for the call, from the X-Request-Id response header.
	RequestID string
	Operation string
	// StatusCode is the status of the last response, or 0 if none was obtained.
	StatusCode int
	// Attempts is the number of HTTP attempts made, including retries.
	Attempts int
	Duration time.Duration
	Recorded time.Time
}

// callRecorder observes every attempt of one call. Attempts of a call are sequential.
type callRecorder struct {
	attempts    int
	lastRequest *http.Request
	statusCode  int
	requestID   string
}

var _ httpclient.Middleware = (*callRecorder)(nil)

func (r *callRecorder) RoundTrip(req *http.Request, next http.RoundTripper) (*http.Response, error) {
	r.attempts++
	r.lastRequest = req
	r.statusCode, r.requestID = 0, ""
	resp, err := next.RoundTrip(req)
	if resp != nil {
		r.statusCode = resp.StatusCode
		r.requestID = httpclient.RequestIDFromHeader(resp.Header)
	}
	return resp, err
}

func (r *callRecorder) metadata(op *Operation, started time.Time) ResponseMetadata {
	now := time.Now()
	return ResponseMetadata{
		RequestID:  r.requestID,
		Operation:  op.Name,
		StatusCode: r.statusCode,
		Attempts:   r.attempts,
		Duration:   now.Sub(started),
		Recorded:   now,
	}
}

// metadataKey returns the cache key of a request value. Only non-nil pointers identify a call.
func metadataKey(request any) (any, bool) {
	if request == nil {
		return nil, false
	}
	v := reflect.ValueOf(request)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return nil, false
	}
	return request, true
}
