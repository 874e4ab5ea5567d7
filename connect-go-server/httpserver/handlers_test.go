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

package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/palantir/connect-go-sdk/connect-go-contract/codecs"
	"github.com/palantir/connect-go-sdk/connect-go-contract/errors"
	werror "github.com/palantir/witchcraft-go-error"
	"github.com/palantir/witchcraft-go-logging/wlog"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
	wparams "github.com/palantir/witchcraft-go-params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ServeHTTP(t *testing.T) {
	notFoundErr := errors.NewNotFound(wparams.NewSafeParamStorer(map[string]interface{}{"param": "value"}))
	internalErr := errors.NewInternal(wparams.NewSafeParamStorer(map[string]interface{}{"param": "value"}))
	for _, tc := range []struct {
		name       string
		handler    func(http.ResponseWriter, *http.Request) error
		verifyResp func(*testing.T, *http.Response)
		verifyLog  func(*testing.T, []byte)
	}{
		{
			name: "json no error",
			handler: func(rw http.ResponseWriter, req *http.Request) error {
				return WriteJSONResponse(rw, map[string]string{"QueueId": "q-1"}, http.StatusOK)
			},
			verifyResp: func(t *testing.T, resp *http.Response) {
				assert.Equal(t, http.StatusOK, resp.StatusCode)
				body, err := io.ReadAll(resp.Body)
				assert.NoError(t, err)
				assert.JSONEq(t, `{"QueueId":"q-1"}`, string(body))
			},
			verifyLog: func(t *testing.T, i []byte) {
				assert.Empty(t, string(i))
			},
		},
		{
			name: "500 plaintext error",
			handler: func(rw http.ResponseWriter, req *http.Request) error {
				return werror.Error("a bad thing", werror.SafeParam("param", "value"))
			},
			verifyResp: func(t *testing.T, resp *http.Response) {
				assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
				assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
				body, err := io.ReadAll(resp.Body)
				assert.NoError(t, err)
				assert.Equal(t, "a bad thing\n", string(body))
			},
			verifyLog: func(t *testing.T, i []byte) {
				logLine := map[string]interface{}{}
				require.NoError(t, codecs.JSON.Unmarshal(i, &logLine))
				assert.Equal(t, "ERROR", logLine["level"])
				assert.Equal(t, "error handling request: a bad thing", logLine["message"])
				assert.Equal(t, map[string]interface{}{"param": "value"}, logLine["params"])
			},
		},
		{
			name: "404 legacy plaintext error",
			handler: func(rw http.ResponseWriter, req *http.Request) error {
				return werror.Error("a bad thing", werror.SafeParam("param", "value"), werror.SafeParam(legacyHTTPStatusCodeParamKey, http.StatusNotFound))
			},
			verifyResp: func(t *testing.T, resp *http.Response) {
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)
				body, err := io.ReadAll(resp.Body)
				assert.NoError(t, err)
				assert.Equal(t, "a bad thing\n", string(body))
			},
			verifyLog: func(t *testing.T, i []byte) {
				logLine := map[string]interface{}{}
				require.NoError(t, codecs.JSON.Unmarshal(i, &logLine))
				assert.Equal(t, "INFO", logLine["level"])
				assert.Equal(t, map[string]interface{}{"param": "value", "httpStatusCode": json.Number("404")}, logLine["params"])
			},
		},
		{
			name: "500 service error",
			handler: func(rw http.ResponseWriter, req *http.Request) error {
				return internalErr
			},
			verifyResp: func(t *testing.T, resp *http.Response) {
				assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
				assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
				body, err := io.ReadAll(resp.Body)
				assert.NoError(t, err)
				expected, err := internalErr.(json.Marshaler).MarshalJSON()
				assert.NoError(t, err)
				assert.JSONEq(t, string(expected), string(body))
			},
			verifyLog: func(t *testing.T, i []byte) {
				logLine := map[string]interface{}{}
				require.NoError(t, codecs.JSON.Unmarshal(i, &logLine))
				assert.Equal(t, "ERROR", logLine["level"])
				params, ok := logLine["params"].(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, "value", params["param"])
				assert.Equal(t, internalErr.InstanceID().String(), params["errorInstanceId"])
			},
		},
		{
			name: "404 service error, wrapped",
			handler: func(rw http.ResponseWriter, req *http.Request) error {
				return werror.Wrap(notFoundErr, "a bad thing", werror.UnsafeParam("unsafeParam", "unsafeValue"))
			},
			verifyResp: func(t *testing.T, resp *http.Response) {
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)
				body, err := io.ReadAll(resp.Body)
				assert.NoError(t, err)
				expected, err := notFoundErr.(json.Marshaler).MarshalJSON()
				assert.NoError(t, err)
				assert.JSONEq(t, string(expected), string(body))
			},
			verifyLog: func(t *testing.T, i []byte) {
				logLine := map[string]interface{}{}
				require.NoError(t, codecs.JSON.Unmarshal(i, &logLine))
				assert.Equal(t, "INFO", logLine["level"])
				assert.Equal(t, map[string]interface{}{"unsafeParam": "unsafeValue"}, logLine["unsafeParams"])
			},
		},
		{
			name: "throttle",
			handler: func(rw http.ResponseWriter, req *http.Request) error {
				return werror.Wrap(errors.QOSThrottle{RetryAfter: 2 * time.Second}, "slow down")
			},
			verifyResp: func(t *testing.T, resp *http.Response) {
				assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
				assert.Equal(t, "2", resp.Header.Get("Retry-After"))
				body, err := io.ReadAll(resp.Body)
				assert.NoError(t, err)
				assert.Empty(t, body)
			},
			verifyLog: func(t *testing.T, i []byte) {
				logLine := map[string]interface{}{}
				require.NoError(t, codecs.JSON.Unmarshal(i, &logLine))
				assert.Equal(t, "INFO", logLine["level"])
			},
		},
		{
			name: "unavailable",
			handler: func(rw http.ResponseWriter, req *http.Request) error {
				return errors.QOSUnavailable{}
			},
			verifyResp: func(t *testing.T, resp *http.Response) {
				assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
			},
			verifyLog: func(t *testing.T, i []byte) {
				logLine := map[string]interface{}{}
				require.NoError(t, codecs.JSON.Unmarshal(i, &logLine))
				assert.Equal(t, "ERROR", logLine["level"])
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			req, err := http.NewRequest(http.MethodPost, "", nil)
			require.NoError(t, err)
			req = req.WithContext(svc1log.WithLogger(context.Background(),
				svc1log.NewFromCreator(&logBuf, wlog.InfoLevel, wlog.NewJSONMarshalLoggerProvider().NewLeveledLogger, svc1log.Origin("")),
			))

			recorder := httptest.NewRecorder()
			handler := NewJSONHandler(tc.handler, StatusCodeMapper, ErrHandler)
			handler.ServeHTTP(recorder, req)
			tc.verifyResp(t, recorder.Result())
			tc.verifyLog(t, logBuf.Bytes())
		})
	}
}

func TestStatusCodeMapper(t *testing.T) {
	for _, tc := range []struct {
		name         string
		err          error
		expectedCode int
	}{
		{
			name:         "service not found error",
			err:          errors.NewNotFound(),
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "wrapped service not found error",
			err:          werror.Wrap(errors.NewNotFound(), "not found"),
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "wrapped service not found error with legacy code",
			err:          werror.Wrap(errors.NewNotFound(), "not found", werror.SafeParam(legacyHTTPStatusCodeParamKey, http.StatusInternalServerError)),
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "legacy not found error",
			err:          werror.Error("Test error", werror.SafeParam(legacyHTTPStatusCodeParamKey, http.StatusNotFound)),
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "wrapped legacy not found error",
			err:          werror.Wrap(werror.Error("Test error", werror.SafeParam(legacyHTTPStatusCodeParamKey, http.StatusNotFound)), "outer"),
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "throttling service error",
			err:          errors.NewTooManyRequests(),
			expectedCode: http.StatusTooManyRequests,
		},
		{
			name:         "plain error",
			err:          werror.Error("werror"),
			expectedCode: http.StatusInternalServerError,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedCode, StatusCodeMapper(tc.err))
		})
	}
}
