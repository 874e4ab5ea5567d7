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

package errors_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/palantir/connect-go-sdk/connect-go-contract/errors"
	wparams "github.com/palantir/witchcraft-go-params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse_ValidateJSON(t *testing.T) {
	testError := errors.NewError(errors.MustErrorType(errors.Timeout, "MyApplication:Timeout"),
		wparams.NewSafeParamStorer(map[string]interface{}{
			"metadata": struct {
				KeyB int `json:"keyB"`
			}{
				KeyB: 4,
			},
		}))

	testErrorJSON := fmt.Sprintf(`{
  "errorCode": "TIMEOUT",
  "errorName": "MyApplication:Timeout",
  "errorInstanceId": "%s",
  "parameters": {
    "metadata": {
      "keyB": 4
    }
  }
}`, testError.InstanceID())

	recorder := httptest.NewRecorder()
	errors.WriteErrorResponse(recorder, testError)
	response := recorder.Result()

	assert.Equal(t, http.StatusInternalServerError, response.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", response.Header.Get("Content-Type"))
	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	var buffer bytes.Buffer
	require.NoError(t, json.Indent(&buffer, body, "", "  "))
	assert.Equal(t, testErrorJSON, buffer.String())
}

func TestWriteErrorResponse_StatusFromCode(t *testing.T) {
	recorder := httptest.NewRecorder()
	errors.WriteErrorResponse(recorder, errors.NewError(errors.MustErrorType(errors.Conflict, "Connect:DuplicateResource")))
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestWriteQOSResponse(t *testing.T) {
	for _, test := range []struct {
		Name           string
		Response       errors.QOSResponse
		ExpectedStatus int
		ExpectedHeader http.Header
	}{
		{
			Name:           "throttle with retry after",
			Response:       errors.QOSThrottle{RetryAfter: 2 * time.Second},
			ExpectedStatus: http.StatusTooManyRequests,
			ExpectedHeader: http.Header{"Retry-After": []string{"2"}},
		},
		{
			Name:           "throttle",
			Response:       errors.QOSThrottle{},
			ExpectedStatus: http.StatusTooManyRequests,
			ExpectedHeader: http.Header{},
		},
		{
			Name:           "retry other",
			Response:       errors.QOSRetryOther{Location: "https://other.example.com"},
			ExpectedStatus: http.StatusPermanentRedirect,
			ExpectedHeader: http.Header{"Location": []string{"https://other.example.com"}},
		},
		{
			Name:           "unavailable",
			Response:       errors.QOSUnavailable{},
			ExpectedStatus: http.StatusServiceUnavailable,
			ExpectedHeader: http.Header{},
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			errors.WriteQOSResponse(recorder, test.Response)
			assert.Equal(t, test.ExpectedStatus, recorder.Code)
			assert.Equal(t, test.ExpectedHeader, recorder.Header())
			assert.Equal(t, test.ExpectedStatus, test.Response.SafeParams()["statusCode"])
			assert.Empty(t, recorder.Body.Bytes())
		})
	}
}
