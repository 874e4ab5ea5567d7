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
	"encoding/json"
	"fmt"

	"github.com/palantir/connect-go-sdk/connect-go-contract/codecs"
	"github.com/palantir/pkg/uuid"
	wparams "github.com/palantir/witchcraft-go-params"
)

const (
	errorInstanceIDParamKey = "errorInstanceId"
	errorNameParamKey       = "errorName"
)

func newGenericError(cause error, errorType ErrorType, params wparams.ParamStorer) genericError {
	return genericError{
		errorType:       errorType,
		errorInstanceID: uuid.NewUUID(),
		cause:           cause,
		safeParams:      copyParams(params.SafeParams()),
		unsafeParams:    copyParams(params.UnsafeParams()),
	}
}

// genericError is general purpose implementation of the Error interface.
//
// It can only be created with exported constructors, which guarantee correctness of the data.
type genericError struct {
	errorType       ErrorType
	errorInstanceID uuid.UUID
	cause           error
	safeParams      map[string]interface{}
	unsafeParams    map[string]interface{}
}

var (
	_ fmt.Stringer     = genericError{}
	_ Error            = genericError{}
	_ json.Marshaler   = genericError{}
	_ json.Unmarshaler = &genericError{}
)

// String representation of an error.
//
// For example:
//
//	"NOT_FOUND Connect:ResourceNotFound (00010203-0405-0607-0809-0a0b0c0d0e0f)".
func (e genericError) String() string {
	return fmt.Sprintf("%s (%s)", e.errorType, e.errorInstanceID)
}

func (e genericError) Error() string {
	return e.String()
}

func (e genericError) Unwrap() error {
	return e.cause
}

func (e genericError) Code() ErrorCode {
	return e.errorType.code
}

func (e genericError) Name() string {
	return e.errorType.name
}

func (e genericError) InstanceID() uuid.UUID {
	return e.errorInstanceID
}

func (e genericError) SafeParams() map[string]interface{} {
	params := copyParams(e.safeParams)
	params[errorInstanceIDParamKey] = e.errorInstanceID
	params[errorNameParamKey] = e.errorType.name
	return params
}

func (e genericError) UnsafeParams() map[string]interface{} {
	return copyParams(e.unsafeParams)
}

func (e genericError) MarshalJSON() ([]byte, error) {
	params := copyParams(e.safeParams)
	for k, v := range e.unsafeParams {
		params[k] = v
	}
	marshalledParameters, err := codecs.JSON.Marshal(params)
	if err != nil {
		return nil, err
	}
	return codecs.JSON.Marshal(SerializableError{
		ErrorCode:       e.errorType.code,
		ErrorName:       e.errorType.name,
		ErrorInstanceID: e.errorInstanceID,
		Parameters:      json.RawMessage(marshalledParameters),
	})
}

// UnmarshalJSON populates the error from its serialized form. Parameters received over the wire
// have unknown provenance and are all treated as unsafe.
func (e *genericError) UnmarshalJSON(data []byte) (err error) {
	var se SerializableError
	if err := codecs.JSON.Unmarshal(data, &se); err != nil {
		return err
	}
	if e.errorType, err = NewErrorType(se.ErrorCode, se.ErrorName); err != nil {
		return err
	}
	e.errorInstanceID = se.ErrorInstanceID
	e.safeParams = map[string]interface{}{}
	e.unsafeParams = map[string]interface{}{}
	if len(se.Parameters) > 0 {
		if err := codecs.JSON.Unmarshal(se.Parameters, &e.unsafeParams); err != nil {
			return err
		}
		if e.unsafeParams == nil {
			e.unsafeParams = map[string]interface{}{}
		}
	}
	return nil
}

func copyParams(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
