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

// Package httpserver holds the server side of the error contract: handlers that return errors,
// which are logged and written to the client as serialized service errors or QoS responses.
package httpserver

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/palantir/connect-go-sdk/connect-go-contract/errors"
	werror "github.com/palantir/witchcraft-go-error"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
)

// legacyHTTPStatusCodeParamKey sets the status of plain werrors that carry no service error.
const legacyHTTPStatusCodeParamKey = "httpStatusCode"

// StatusMapper returns the response status for an error returned by a handler.
type StatusMapper func(err error) int

// ErrorHandler observes every error returned by a handler before the response is written.
type ErrorHandler func(ctx context.Context, statusCode int, err error)

type handler struct {
	handleFn     func(http.ResponseWriter, *http.Request) error
	statusMapper StatusMapper
	errorHandler ErrorHandler
}

// NewJSONHandler adapts an error-returning handler to http.Handler.
//
// Errors carrying an errors.QOSResponse are written as empty-bodied QoS responses. Errors
// carrying an errors.Error are written as JSON with the status of the error's code.
// Any other error is written as plain text with the status returned by statusFn.
func NewJSONHandler(fn func(http.ResponseWriter, *http.Request) error, statusFn StatusMapper, errorFn ErrorHandler) http.Handler {
	if statusFn == nil {
		statusFn = StatusCodeMapper
	}
	return handler{handleFn: fn, statusMapper: statusFn, errorHandler: errorFn}
}

func (h handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h.handleFn(w, r)
	if err == nil {
		return
	}
	if qos, ok := qosFromError(err); ok {
		h.handleError(r.Context(), qos.Status(), err)
		errors.WriteQOSResponse(w, qos)
		return
	}
	statusCode := h.statusMapper(err)
	h.handleError(r.Context(), statusCode, err)
	if serviceErr, ok := ServiceErrorFromError(err); ok {
		errors.WriteErrorResponse(w, serviceErr)
		return
	}
	http.Error(w, err.Error(), statusCode)
}

func (h handler) handleError(ctx context.Context, statusCode int, err error) {
	if h.errorHandler != nil {
		h.errorHandler(ctx, statusCode, err)
	}
}

// ServiceErrorFromError returns the errors.Error carried by err, if any.
func ServiceErrorFromError(err error) (errors.Error, bool) {
	if serviceErr, ok := werror.RootCause(err).(errors.Error); ok {
		return serviceErr, true
	}
	var serviceErr errors.Error
	if stderrors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}

func qosFromError(err error) (errors.QOSResponse, bool) {
	if qos, ok := werror.RootCause(err).(errors.QOSResponse); ok {
		return qos, true
	}
	var qos errors.QOSResponse
	if stderrors.As(err, &qos) {
		return qos, true
	}
	return nil, false
}

// StatusCodeMapper maps service errors to the status of their code and other errors to their
// "httpStatusCode" parameter, defaulting to 500.
func StatusCodeMapper(err error) int {
	if serviceErr, ok := ServiceErrorFromError(err); ok {
		return serviceErr.Code().StatusCode()
	}
	if statusCode, ok := werror.ParamFromError(err, legacyHTTPStatusCodeParamKey); ok {
		if code, ok := statusCode.(int); ok {
			return code
		}
	}
	return http.StatusInternalServerError
}

// ErrHandler logs server failures at ERROR and everything else at INFO.
func ErrHandler(ctx context.Context, statusCode int, err error) {
	logger := svc1log.FromContext(ctx)
	if statusCode >= http.StatusInternalServerError {
		logger.Error("error handling request", svc1log.Stacktrace(err))
	} else {
		logger.Info("error handling request", svc1log.Stacktrace(err))
	}
}
