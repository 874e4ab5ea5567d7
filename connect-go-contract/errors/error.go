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

package errors

import (
	"github.com/palantir/pkg/uuid"
	wparams "github.com/palantir/witchcraft-go-params"
)

// Error is an error intended for transport through RPC channels such as HTTP responses.
//
// Error is represented by its error code, an error name identifying the type of error and
// an optional set of named parameters detailing the error.
type Error interface {
	error
	// Code returns an enum describing error category.
	Code() ErrorCode
	// Name returns an error name identifying error type.
	Name() string
	// InstanceID returns unique identifier of this particular error instance.
	InstanceID() uuid.UUID

	wparams.ParamStorer
}

// NewError returns new instance of an error of the specified type with provided parameters.
func NewError(errorType ErrorType, parameters ...wparams.ParamStorer) Error {
	return WrapWithNewError(nil, errorType, parameters...)
}

// WrapWithNewError returns new instance of an error of the specified type with provided parameters wrapping an existing error.
func WrapWithNewError(cause error, errorType ErrorType, parameters ...wparams.ParamStorer) Error {
	return newGenericError(cause, errorType, wparams.NewParamStorer(parameters...))
}

// NewPermissionDenied returns new error instance of default permission denied type.
func NewPermissionDenied(parameters ...wparams.ParamStorer) Error {
	return WrapWithNewError(nil, DefaultPermissionDenied, parameters...)
}

// NewInvalidArgument returns new error instance of default invalid argument type.
func NewInvalidArgument(parameters ...wparams.ParamStorer) Error {
	return WrapWithInvalidArgument(nil, parameters...)
}

// WrapWithInvalidArgument returns new error instance of default invalid argument type wrapping an existing error.
func WrapWithInvalidArgument(cause error, parameters ...wparams.ParamStorer) Error {
	return WrapWithNewError(cause, DefaultInvalidArgument, parameters...)
}

// NewNotFound returns new error instance of default not found type.
func NewNotFound(parameters ...wparams.ParamStorer) Error {
	return WrapWithNewError(nil, DefaultNotFound, parameters...)
}

// NewConflict returns new error instance of default conflict type.
func NewConflict(parameters ...wparams.ParamStorer) Error {
	return WrapWithNewError(nil, DefaultConflict, parameters...)
}

// NewInternal returns new error instance of default internal type.
func NewInternal(parameters ...wparams.ParamStorer) Error {
	return WrapWithInternal(nil, parameters...)
}

// WrapWithInternal returns new error instance of default internal type wrapping an existing error.
func WrapWithInternal(cause error, parameters ...wparams.ParamStorer) Error {
	return WrapWithNewError(cause, DefaultInternal, parameters...)
}

// NewTooManyRequests returns new error instance of default too many requests type.
func NewTooManyRequests(parameters ...wparams.ParamStorer) Error {
	return WrapWithNewError(nil, DefaultTooManyRequests, parameters...)
}
