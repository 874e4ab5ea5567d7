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

// Package errors holds the error categories the client runtime and the server
// handlers attach to errors as a safe parameter.
package errors

import (
	"net/http"
)

// InternalErrorType provides high-level categories for failed calls.
type InternalErrorType string

const (
	// QOS groups responses that indicate a Quality-of-Service problem,
	// such as HTTP 308, 429 and 503.
	QOS InternalErrorType = "qos"

	// Internal groups failures that happened before a response was obtained.
	Internal InternalErrorType = "internal"

	// ServiceInternal groups server-side failures (5xx) that are not QoS responses.
	ServiceInternal InternalErrorType = "service_internal"

	// RPC groups all remaining remote failures, i.e. errors the caller can fix.
	RPC InternalErrorType = "rpc"

	// Other is the default catch-all.
	Other InternalErrorType = "other"

	InternalErrorTypeParam = "_internalErrorType"
	InternalErrorIDParam   = "_internalErrorIdentifier"
)

// TypeForStatus categorizes a response status code. Success codes map to Other.
func TypeForStatus(statusCode int) InternalErrorType {
	switch {
	case statusCode == 0:
		return Internal
	case statusCode == http.StatusTooManyRequests,
		statusCode == http.StatusServiceUnavailable,
		statusCode == http.StatusPermanentRedirect:
		return QOS
	case statusCode >= http.StatusInternalServerError:
		return ServiceInternal
	case statusCode >= http.StatusBadRequest:
		return RPC
	}
	return Other
}
