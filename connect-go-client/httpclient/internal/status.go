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
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// IsThrottleResponse returns true if the response or status code indicates the server asked the client to slow down.
// The second return value is the Retry-After duration when the server sent one.
func IsThrottleResponse(resp *http.Response, errCode int) (bool, time.Duration) {
	if errCode == http.StatusTooManyRequests {
		return true, 0
	}
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return false, 0
	}
	retryAfter := resp.Header.Get("Retry-After")
	if retryAfter == "" {
		return true, 0
	}
	if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds > 0 {
		return true, time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(retryAfter); err == nil {
		if d := time.Until(t); d > 0 {
			return true, d
		}
	}
	return true, 0
}

// IsRetryOtherResponse returns true if the response is a 308 Permanent Redirect.
// The Location header is parsed when present; a nil URL means the caller should try its next URI.
func IsRetryOtherResponse(resp *http.Response) (bool, *url.URL) {
	if resp == nil || resp.StatusCode != http.StatusPermanentRedirect {
		return false, nil
	}
	locationStr := resp.Header.Get("Location")
	if locationStr == "" {
		return true, nil
	}
	locationURL, err := url.Parse(locationStr)
	if err != nil || locationURL.Host == "" {
		return true, nil
	}
	return true, locationURL
}

// IsUnavailableResponse returns true if the response or status code is a 503 Service Unavailable.
func IsUnavailableResponse(resp *http.Response, errCode int) bool {
	if errCode == http.StatusServiceUnavailable {
		return true
	}
	return resp != nil && resp.StatusCode == http.StatusServiceUnavailable
}

func isSuccess(resp *http.Response) bool {
	return resp != nil && resp.StatusCode >= 200 && resp.StatusCode < 300
}

// DrainBody reads then closes a response's body if it is non-nil.
// This function should be deferred before a response reference is discarded.
func DrainBody(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
}
