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
	"bytes"
	"context"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"testing"

	werror "github.com/palantir/witchcraft-go-error"
	"github.com/palantir/witchcraft-go-logging/wlog"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
	"github.com/stretchr/testify/assert"
)

func TestErrorRegistry_LogError(t *testing.T) {
	myRegistry := NewErrorRegistry(GetGenericErrorLoggerWithType(UnknownAuthorityErrorLogger()))
	notHandledError := fmt.Errorf("i won't get logged")
	handledError := unknownAuthorityError()
	out := &bytes.Buffer{}
	wlog.SetDefaultLoggerProvider(wlog.NewJSONMarshalLoggerProvider())
	ctx := svc1log.WithLogger(context.Background(), svc1log.New(out, wlog.DebugLevel))
	myRegistry.LogError(ctx, notHandledError)
	assert.Empty(t, out.String())
	myRegistry.LogError(ctx, handledError)
	assert.NotEmpty(t, out.String())
	assert.Contains(t, out.String(), "common name")
}

func TestErrorRegistry_LogWrappedError(t *testing.T) {
	out := &bytes.Buffer{}
	wlog.SetDefaultLoggerProvider(wlog.NewJSONMarshalLoggerProvider())
	ctx := svc1log.WithLogger(context.Background(), svc1log.New(out, wlog.DebugLevel))

	DefaultErrorRegistry().LogError(ctx, fmt.Errorf("tls: %w", x509.HostnameError{
		Host:        "connect.example.com",
		Certificate: &x509.Certificate{DNSNames: []string{"other.example.com"}},
	}))
	assert.Contains(t, out.String(), "Encountered HostnameError.")
	assert.Contains(t, out.String(), "other.example.com")

	out.Reset()
	DefaultErrorRegistry().LogError(ctx, werror.Error("not a certificate problem"))
	assert.Empty(t, out.String())
}

func unknownAuthorityError() error {
	return x509.UnknownAuthorityError{
		Cert: &x509.Certificate{
			Subject: pkix.Name{
				CommonName: "common name",
			},
		},
	}
}
