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

package httpclient

import (
	"context"
	"crypto/x509"
	stderrors "errors"
	"reflect"

	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
)

// ErrorRegistry logs errors of registered types. Transport failures are passed to it after each
// attempt that produced no response.
type ErrorRegistry interface {
	LogError(ctx context.Context, err error)
}

// GenericErrorLogger logs errors of a single concrete type E.
type GenericErrorLogger[E error] interface {
	LogError(ctx context.Context, err E)
}

// AnyErrorLogger is a GenericErrorLogger over the error interface.
type AnyErrorLogger GenericErrorLogger[error]

// GenericErrorLoggerWithType pairs a logger with the concrete error type it handles.
type GenericErrorLoggerWithType struct {
	Type        reflect.Type
	ErrorLogger AnyErrorLogger
}

// GetGenericErrorLoggerWithType returns a registration for the logger's error type.
func GetGenericErrorLoggerWithType[E error](genericErrorLogger GenericErrorLogger[E]) GenericErrorLoggerWithType {
	var e E
	return GenericErrorLoggerWithType{
		Type:        reflect.TypeOf(e),
		ErrorLogger: asAnyErrorLogger(genericErrorLogger),
	}
}

// NewErrorRegistry returns a registry that logs the first error in a chain whose type has a logger.
func NewErrorRegistry(loggersWithTypes ...GenericErrorLoggerWithType) ErrorRegistry {
	registry := make(errorRegistry)
	for _, loggerWithType := range loggersWithTypes {
		registry[loggerWithType.Type] = loggerWithType.ErrorLogger
	}
	return registry
}

// DefaultErrorRegistry logs TLS certificate failures.
func DefaultErrorRegistry() ErrorRegistry {
	return NewErrorRegistry(
		GetGenericErrorLoggerWithType[x509.UnknownAuthorityError](UnknownAuthorityErrorLogger()),
		GetGenericErrorLoggerWithType[x509.HostnameError](HostnameErrorLogger()),
	)
}

type errorRegistry map[reflect.Type]AnyErrorLogger

func (e errorRegistry) LogError(ctx context.Context, err error) {
	for ; err != nil; err = stderrors.Unwrap(err) {
		if handler, ok := e[reflect.TypeOf(err)]; ok {
			handler.LogError(ctx, err)
			return
		}
	}
}

func asAnyErrorLogger[E error](errorLogger GenericErrorLogger[E]) AnyErrorLogger {
	return genericErrorLoggerFn[error](func(ctx context.Context, err error) {
		errorLogger.LogError(ctx, err.(E))
	})
}

type genericErrorLoggerFn[E error] func(ctx context.Context, err E)

func (fn genericErrorLoggerFn[E]) LogError(ctx context.Context, err E) {
	fn(ctx, err)
}

// UnknownAuthorityErrorLogger logs the certificate chain details of a server signed by an unknown authority.
func UnknownAuthorityErrorLogger() GenericErrorLogger[x509.UnknownAuthorityError] {
	return genericErrorLoggerFn[x509.UnknownAuthorityError](func(ctx context.Context, err x509.UnknownAuthorityError) {
		if err.Cert == nil {
			svc1log.FromContext(ctx).Error("Encountered UnknownAuthorityError.", svc1log.Stacktrace(err))
			return
		}
		svc1log.FromContext(ctx).Error("Encountered UnknownAuthorityError.", svc1log.SafeParams(map[string]interface{}{
			"certSANs":     err.Cert.DNSNames,
			"certCN":       err.Cert.Subject.CommonName,
			"issuerCertCN": err.Cert.Issuer.CommonName,
		}), svc1log.Stacktrace(err))
	})
}

// HostnameErrorLogger logs the names a server certificate is valid for when they do not match the requested host.
func HostnameErrorLogger() GenericErrorLogger[x509.HostnameError] {
	return genericErrorLoggerFn[x509.HostnameError](func(ctx context.Context, err x509.HostnameError) {
		params := map[string]interface{}{"host": err.Host}
		if err.Certificate != nil {
			params["certSANs"] = err.Certificate.DNSNames
			params["certCN"] = err.Certificate.Subject.CommonName
		}
		svc1log.FromContext(ctx).Error("Encountered HostnameError.", svc1log.SafeParams(params), svc1log.Stacktrace(err))
	})
}
