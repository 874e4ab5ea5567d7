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

// Package clienterrors names the transport failures of HTTP calls that obtained no response.
package clienterrors

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"syscall"

	"github.com/palantir/connect-go-sdk/connect-go-contract/errors"
	werror "github.com/palantir/witchcraft-go-error"
	wparams "github.com/palantir/witchcraft-go-params"
)

var (
	ConnectionRefused = errors.MustErrorType(errors.Internal, "HttpClient:ConnectionRefused")
	DNSNoSuchHost     = errors.MustErrorType(errors.Internal, "HttpClient:DnsNoSuchHost")
	ConnectionReset   = errors.MustErrorType(errors.Internal, "HttpClient:ConnectionReset")
	Timeout           = errors.MustErrorType(errors.Timeout, "HttpClient:Timeout")
	Unknown           = errors.MustErrorType(errors.Internal, "HttpClient:Unknown")
)

// WrapClientError wraps err, a failure that produced no response, in an errors.Error whose name
// describes the failure. The request, when non-nil, contributes its method and host as safe params.
// A nil err returns nil.
func WrapClientError(req *http.Request, err error) error {
	if err == nil {
		return nil
	}
	safeParams := map[string]interface{}{}
	unsafeParams := map[string]interface{}{}
	if req != nil {
		safeParams["requestMethod"] = req.Method
		if req.URL != nil {
			safeParams["requestHost"] = req.URL.Host
			unsafeParams["requestPath"] = req.URL.Path
		}
	}
	return errors.WrapWithNewError(err, Classify(err), wparams.NewSafeAndUnsafeParamStorer(safeParams, unsafeParams))
}

// Classify returns the error type naming the transport failure err.
func Classify(err error) errors.ErrorType {
	for _, e := range []error{err, werror.RootCause(err)} {
		if e == nil {
			continue
		}
		var dnsErr *net.DNSError
		switch {
		case stderrors.As(e, &dnsErr) && dnsErr.IsNotFound:
			return DNSNoSuchHost
		case stderrors.Is(e, syscall.ECONNREFUSED):
			return ConnectionRefused
		case stderrors.Is(e, syscall.ECONNRESET), stderrors.Is(e, syscall.EPIPE):
			return ConnectionReset
		case stderrors.Is(e, context.DeadlineExceeded), isTimeout(e):
			return Timeout
		}
	}
	return Unknown
}

func isTimeout(err error) bool {
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}
