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
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/palantir/connect-go-sdk/connect-go-contract/codecs"
	wparams "github.com/palantir/witchcraft-go-params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	err := NewError(
		MustErrorType(Timeout, "MyApplication:DatabaseTimeout"),
		wparams.NewSafeParamStorer(map[string]interface{}{"ttl": "10s"}),
	)
	assert.EqualError(t, err, fmt.Sprintf("TIMEOUT MyApplication:DatabaseTimeout (%s)", err.InstanceID()))
}

func TestError_CodecsJSONDoesNotEscapeHTML(t *testing.T) {
	e := NewError(
		MustErrorType(Timeout, "MyApplication:Timeout"),
		wparams.NewSafeParamStorer(map[string]interface{}{"htmlKey": "something&something"}),
	)

	marshaledError, err := codecs.JSON.Marshal(e)
	assert.NoError(t, err)
	assert.Regexp(t, `something&something`, string(marshaledError))
}

func TestError_Params(t *testing.T) {
	e := NewError(
		MustErrorType(NotFound, "Connect:ResourceNotFound"),
		wparams.NewSafeAndUnsafeParamStorer(
			map[string]interface{}{"operation": "DescribeQueue"},
			map[string]interface{}{"message": "queue not found"},
		),
	)
	assert.Equal(t, map[string]interface{}{
		"operation":       "DescribeQueue",
		"errorInstanceId": e.InstanceID(),
		"errorName":       "Connect:ResourceNotFound",
	}, e.SafeParams())
	assert.Equal(t, map[string]interface{}{"message": "queue not found"}, e.UnsafeParams())
}

func TestError_WrapUnwraps(t *testing.T) {
	cause := fmt.Errorf("storage failure")
	e := WrapWithInternal(cause)
	assert.True(t, stderrors.Is(e, cause))
	assert.Equal(t, Internal, e.Code())
	assert.Equal(t, "Default:Internal", e.Name())
}

func TestError_NewError_Then_MarshalJSON_Then_UnmarshalJSON_And_Unpack(t *testing.T) {
	e := NewError(
		MustErrorType(Timeout, "MyApplication:Timeout"),
		wparams.NewSafeAndUnsafeParamStorer(
			map[string]interface{}{"safeKey": "safeValue"},
			map[string]interface{}{"unsafeKey": "unsafeValue"},
		),
	)
	expectedJSON := fmt.Sprintf(`{
  "errorCode": "TIMEOUT",
  "errorInstanceId": "%s",
  "errorName": "MyApplication:Timeout",
  "parameters": {
    "safeKey": "safeValue",
    "unsafeKey": "unsafeValue"
  }
}`, e.InstanceID().String())

	marshaledError, err := codecs.JSON.Marshal(e)
	require.NoError(t, err)
	require.JSONEq(t, expectedJSON, string(marshaledError))

	unmarshaledError, err := UnmarshalError(marshaledError)
	require.NoError(t, err)

	assert.EqualError(t, unmarshaledError, e.Error())
	assert.Equal(t, e.Name(), unmarshaledError.Name())
	assert.Equal(t, e.Code(), unmarshaledError.Code())
	assert.Equal(t, e.InstanceID(), unmarshaledError.InstanceID())
	assert.Equal(t, mergeParams(e), mergeParams(unmarshaledError))
}

func mergeParams(storer wparams.ParamStorer) map[string]interface{} {
	params := make(map[string]interface{})
	for k, v := range storer.SafeParams() {
		params[k] = v
	}
	for k, v := range storer.UnsafeParams() {
		params[k] = v
	}
	return params
}
