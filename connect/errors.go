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
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/palantir/connect-go-sdk/connect-go-contract/errors"
)

// ErrorKind names a service-side failure. Each operation declares the closed set of kinds it
// may return; anything else the service sends is reported as KindService.
type ErrorKind string

const (
	KindAccessDenied                ErrorKind = "AccessDenied"
	KindContactFlowNotPublished     ErrorKind = "ContactFlowNotPublished"
	KindContactNotFound             ErrorKind = "ContactNotFound"
	KindDestinationNotAllowed       ErrorKind = "DestinationNotAllowed"
	KindDuplicateResource           ErrorKind = "DuplicateResource"
	KindIdempotencyConflict         ErrorKind = "IdempotencyConflict"
	KindInternalService             ErrorKind = "InternalService"
	KindInvalidContactFlow          ErrorKind = "InvalidContactFlow"
	KindInvalidContactFlowModule    ErrorKind = "InvalidContactFlowModule"
	KindInvalidParameter            ErrorKind = "InvalidParameter"
	KindInvalidRequest              ErrorKind = "InvalidRequest"
	KindLimitExceeded               ErrorKind = "LimitExceeded"
	KindMaximumResultReturned       ErrorKind = "MaximumResultReturned"
	KindOutboundContactNotPermitted ErrorKind = "OutboundContactNotPermitted"
	KindPropertyValidation          ErrorKind = "PropertyValidation"
	KindResourceConflict            ErrorKind = "ResourceConflict"
	KindResourceInUse               ErrorKind = "ResourceInUse"
	KindResourceNotFound            ErrorKind = "ResourceNotFound"
	KindResourceNotReady            ErrorKind = "ResourceNotReady"
	KindServiceQuotaExceeded        ErrorKind = "ServiceQuotaExceeded"
	KindThrottling                  ErrorKind = "Throttling"
	KindUserNotFound                ErrorKind = "UserNotFound"

	// KindService is the generic remote failure: the service returned an error that is not one of
	// the operation's declared kinds.
	KindService ErrorKind = "Service"
)

// ErrorNamespace prefixes the wire name of every kind ("Connect:ResourceNotFound").
const ErrorNamespace = "Connect"

// Category tells a caller how to react to a service error.
type Category string

const (
	// CallerFixable errors repeat until the request is changed.
	CallerFixable Category = "caller-fixable"
	// Transient errors may succeed when retried with backoff.
	Transient Category = "transient"
	// Conflict errors require the caller to re-read remote state before retrying.
	Conflict Category = "conflict"
)

var errorKinds = map[ErrorKind]struct {
	category Category
	code     errors.ErrorCode
}{
	KindAccessDenied:                {CallerFixable, errors.PermissionDenied},
	KindContactFlowNotPublished:     {CallerFixable, errors.InvalidArgument},
	KindContactNotFound:             {CallerFixable, errors.NotFound},
	KindDestinationNotAllowed:       {CallerFixable, errors.PermissionDenied},
	KindDuplicateResource:           {CallerFixable, errors.Conflict},
	KindIdempotencyConflict:         {Conflict, errors.Conflict},
	KindInternalService:             {Transient, errors.Internal},
	KindInvalidContactFlow:          {CallerFixable, errors.InvalidArgument},
	KindInvalidContactFlowModule:    {CallerFixable, errors.InvalidArgument},
	KindInvalidParameter:            {CallerFixable, errors.InvalidArgument},
	KindInvalidRequest:              {CallerFixable, errors.InvalidArgument},
	KindLimitExceeded:               {CallerFixable, errors.CustomClient},
	KindMaximumResultReturned:       {CallerFixable, errors.CustomClient},
	KindOutboundContactNotPermitted: {CallerFixable, errors.PermissionDenied},
	KindPropertyValidation:          {CallerFixable, errors.InvalidArgument},
	KindResourceConflict:            {Conflict, errors.Conflict},
	KindResourceInUse:               {CallerFixable, errors.Conflict},
	KindResourceNotFound:            {CallerFixable, errors.NotFound},
	KindResourceNotReady:            {Transient, errors.FailedPrecondition},
	KindServiceQuotaExceeded:        {CallerFixable, errors.CustomClient},
	KindThrottling:                  {Transient, errors.TooManyRequests},
	KindUserNotFound:                {CallerFixable, errors.NotFound},
}

// ErrorKinds returns every declared kind, excluding KindService.
func ErrorKinds() []ErrorKind {
	kinds := make([]ErrorKind, 0, len(errorKinds))
	for k := range errorKinds {
		kinds = append(kinds, k)
	}
	return kinds
}

// Known reports whether k is a declared kind or KindService.
func (k ErrorKind) Known() bool {
	_, ok := errorKinds[k]
	return ok || k == KindService
}

// Category returns the category of a declared kind. KindService has no fixed category; use
// (*ServiceError).Category instead.
func (k ErrorKind) Category() Category {
	if info, ok := errorKinds[k]; ok {
		return info.category
	}
	return CallerFixable
}

// ErrorName is the wire name of the kind.
func (k ErrorKind) ErrorName() string {
	return ErrorNamespace + ":" + string(k)
}

// ErrorType is the wire error type of the kind. Servers use it to answer with a kind.
func (k ErrorKind) ErrorType() errors.ErrorType {
	code := errors.CustomServer
	if info, ok := errorKinds[k]; ok {
		code = info.code
	}
	return errors.MustErrorType(code, k.ErrorName())
}

// Reason classifies a failure that happened before an interpretable response was obtained.
type Reason string

const (
	// ReasonTransport means no response was obtained: connection refused, DNS, reset, TLS, timeout.
	ReasonTransport Reason = "transport"
	// ReasonCanceled means the caller's context was canceled or its deadline passed.
	ReasonCanceled Reason = "canceled"
	// ReasonClientClosed means the client was closed before the call.
	ReasonClientClosed Reason = "client-closed"
	// ReasonInvalidRequest means the request value was nil.
	ReasonInvalidRequest Reason = "invalid-request"
	// ReasonSerialization means the request could not be encoded or the response decoded.
	ReasonSerialization Reason = "serialization"
)

// ClientError is the local/transport kind: the call could not be completed.
type ClientError struct {
	Operation string
	Reason    Reason
	Cause     error
}

func (e *ClientError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("connect: %s: %s", e.Operation, e.Reason)
	}
	return fmt.Sprintf("connect: %s: %s: %v", e.Operation, e.Reason, e.Cause)
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

func (e *ClientError) SafeParams() map[string]interface{} {
	return map[string]interface{}{
		"operation": e.Operation,
		"reason":    string(e.Reason),
	}
}

func (e *ClientError) UnsafeParams() map[string]interface{} {
	return map[string]interface{}{}
}

// ServiceError is the remote/service kind: the service answered with an error.
type ServiceError struct {
	Operation string
	// Kind is one of the operation's declared kinds or KindService.
	Kind       ErrorKind
	StatusCode int
	RequestID  string
	Message    string
	// ErrorName is the wire name the service sent, empty when the body held no error.
	ErrorName string
	Cause     error
}

func (e *ServiceError) Error() string {
	msg := fmt.Sprintf("connect: %s: %s (%d)", e.Operation, e.Kind, e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// Category is the category of the kind; for KindService it derives from the status code.
func (e *ServiceError) Category() Category {
	if e.Kind == KindService {
		if e.StatusCode >= http.StatusInternalServerError {
			return Transient
		}
		return CallerFixable
	}
	return e.Kind.Category()
}

func (e *ServiceError) SafeParams() map[string]interface{} {
	params := map[string]interface{}{
		"operation":  e.Operation,
		"kind":       string(e.Kind),
		"statusCode": e.StatusCode,
	}
	if e.RequestID != "" {
		params["requestId"] = e.RequestID
	}
	if e.ErrorName != "" {
		params["errorName"] = e.ErrorName
	}
	return params
}

func (e *ServiceError) UnsafeParams() map[string]interface{} {
	if e.Message == "" {
		return map[string]interface{}{}
	}
	return map[string]interface{}{"message": e.Message}
}

// ConfigError is a local validation error raised by New before any network I/O.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
	Cause  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("connect: invalid config: %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

func (e *ConfigError) SafeParams() map[string]interface{} {
	return map[string]interface{}{"field": e.Field, "reason": e.Reason}
}

func (e *ConfigError) UnsafeParams() map[string]interface{} {
	return map[string]interface{}{"value": e.Value}
}

// KindOf returns the kind of the service error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var serviceErr *ServiceError
	if stderrors.As(err, &serviceErr) {
		return serviceErr.Kind, true
	}
	return "", false
}

// IsKind reports whether err carries a service error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// IsRetryable reports whether retrying the same request may succeed: transport failures and
// transient service errors. A canceled call is not retryable; its context is already done.
func IsRetryable(err error) bool {
	var clientErr *ClientError
	if stderrors.As(err, &clientErr) {
		return clientErr.Reason == ReasonTransport
	}
	var serviceErr *ServiceError
	if stderrors.As(err, &serviceErr) {
		return serviceErr.Category() == Transient
	}
	return false
}

func IsClientError(err error) bool {
	var clientErr *ClientError
	return stderrors.As(err, &clientErr)
}

func IsServiceError(err error) bool {
	var serviceErr *ServiceError
	return stderrors.As(err, &serviceErr)
}

func IsConfigError(err error) bool {
	var configErr *ConfigError
	return stderrors.As(err, &configErr)
}
