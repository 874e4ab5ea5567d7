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

package connect_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/palantir/connect-go-sdk/connect"
	"github.com/palantir/connect-go-sdk/connect-go-contract/errors"
	werror "github.com/palantir/witchcraft-go-error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	kinds := connect.ErrorKinds()
	assert.Len(t, kinds, 22)
	assert.NotContains(t, kinds, connect.KindService)
	assert.True(t, connect.KindService.Known())
	assert.False(t, connect.ErrorKind("Unheard").Known())

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			assert.True(t, kind.Known())
			assert.Equal(t, "Connect:"+string(kind), kind.ErrorName())
			assert.Equal(t, kind.ErrorName(), kind.ErrorType().Name())
		})
	}
}

func TestErrorKind_Category(t *testing.T) {
	for _, tc := range []struct {
		kind     connect.ErrorKind
		category connect.Category
		status   int
	}{
		{kind: connect.KindThrottling, category: connect.Transient, status: http.StatusTooManyRequests},
		{kind: connect.KindInternalService, category: connect.Transient, status: http.StatusInternalServerError},
		{kind: connect.KindResourceNotReady, category: connect.Transient, status: http.StatusInternalServerError},
		{kind: connect.KindIdempotencyConflict, category: connect.Conflict, status: http.StatusConflict},
		{kind: connect.KindResourceConflict, category: connect.Conflict, status: http.StatusConflict},
		{kind: connect.KindAccessDenied, category: connect.CallerFixable, status: http.StatusForbidden},
		{kind: connect.KindResourceNotFound, category: connect.CallerFixable, status: http.StatusNotFound},
		{kind: connect.KindDuplicateResource, category: connect.CallerFixable, status: http.StatusConflict},
		{kind: connect.KindInvalidParameter, category: connect.CallerFixable, status: http.StatusBadRequest},
		{kind: connect.KindLimitExceeded, category: connect.CallerFixable, status: http.StatusBadRequest},
	} {
		t.Run(string(tc.kind), func(t *testing.T) {
			assert.Equal(t, tc.category, tc.kind.Category())
			assert.Equal(t, tc.status, tc.kind.ErrorType().Code().StatusCode())
		})
	}
}

func TestServiceError_Category(t *testing.T) {
	for _, tc := range []struct {
		name      string
		err       *connect.ServiceError
		category  connect.Category
		retryable bool
	}{
		{
			name:      "declared transient",
			err:       &connect.ServiceError{Kind: connect.KindThrottling, StatusCode: http.StatusTooManyRequests},
			category:  connect.Transient,
			retryable: true,
		},
		{
			name:     "declared conflict",
			err:      &connect.ServiceError{Kind: connect.KindResourceConflict, StatusCode: http.StatusConflict},
			category: connect.Conflict,
		},
		{
			name:      "service error with server status",
			err:       &connect.ServiceError{Kind: connect.KindService, StatusCode: http.StatusBadGateway},
			category:  connect.Transient,
			retryable: true,
		},
		{
			name:     "service error with client status",
			err:      &connect.ServiceError{Kind: connect.KindService, StatusCode: http.StatusTooManyRequests},
			category: connect.CallerFixable,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.category, tc.err.Category())
			wrapped := fmt.Errorf("calling: %w", tc.err)
			assert.Equal(t, tc.retryable, connect.IsRetryable(wrapped))
			assert.True(t, connect.IsServiceError(wrapped))
			assert.True(t, connect.IsKind(wrapped, tc.err.Kind))
		})
	}
}

func TestClientError(t *testing.T) {
	cause := werror.ErrorWithContextParams(context.Background(), "dial failed")
	err := &connect.ClientError{Operation: "ListQueues", Reason: connect.ReasonTransport, Cause: cause}
	assert.EqualError(t, err, "connect: ListQueues: transport: dial failed")
	assert.ErrorIs(t, err, cause)
	assert.True(t, connect.IsClientError(err))
	assert.False(t, connect.IsServiceError(err))
	assert.True(t, connect.IsRetryable(err))
	assert.Equal(t, map[string]interface{}{"operation": "ListQueues", "reason": "transport"}, err.SafeParams())

	_, ok := connect.KindOf(err)
	assert.False(t, ok)

	for reason, retryable := range map[connect.Reason]bool{
		connect.ReasonTransport:      true,
		connect.ReasonCanceled:       false,
		connect.ReasonClientClosed:   false,
		connect.ReasonInvalidRequest: false,
		connect.ReasonSerialization:  false,
	} {
		assert.Equal(t, retryable, connect.IsRetryable(&connect.ClientError{Reason: reason}), string(reason))
	}
}

func TestServiceError_Params(t *testing.T) {
	err := &connect.ServiceError{
		Operation:  "DescribeQueue",
		Kind:       connect.KindResourceNotFound,
		StatusCode: http.StatusNotFound,
		RequestID:  "req-1",
		Message:    "queue not found",
		ErrorName:  "Connect:ResourceNotFound",
		Cause:      errors.NewNotFound(),
	}
	assert.EqualError(t, err, "connect: DescribeQueue: ResourceNotFound (404): queue not found")
	assert.Equal(t, map[string]interface{}{
		"operation":  "DescribeQueue",
		"kind":       "ResourceNotFound",
		"statusCode": http.StatusNotFound,
		"requestId":  "req-1",
		"errorName":  "Connect:ResourceNotFound",
	}, err.SafeParams())
	assert.Equal(t, map[string]interface{}{"message": "queue not found"}, err.UnsafeParams())

	wrapped := fmt.Errorf("describing queue: %w", err)
	kind, ok := connect.KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, connect.KindResourceNotFound, kind)
	assert.False(t, connect.IsConfigError(wrapped))
}

func TestConfigError(t *testing.T) {
	err := &connect.ConfigError{Field: "Endpoint", Value: "ftp://x", Reason: `unsupported scheme "ftp"`}
	assert.EqualError(t, err, `connect: invalid config: Endpoint: unsupported scheme "ftp"`)
	assert.True(t, connect.IsConfigError(fmt.Errorf("building client: %w", err)))
	assert.False(t, connect.IsRetryable(err))
}
