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

	"github.com/palantir/connect-go-sdk/connect-go-contract/codecs"
	"github.com/palantir/pkg/uuid"
)

// SerializableError is serializable representation of an error, it includes error code, name, instance id
// and parameters. It can be used to implement error marshalling & unmarshalling of concrete
// types implementing an Error interface.
//
// Example wire representation:
//
//	{
//	  "errorCode": "NOT_FOUND",
//	  "errorName": "Connect:ResourceNotFound",
//	  "errorInstanceId": "00010203-0405-0607-0809-0a0b0c0d0e0f",
//	  "parameters": {
//	    "message": "queue not found"
//	  }
//	}
type SerializableError struct {
	ErrorCode       ErrorCode       `json:"errorCode"`
	ErrorName       string          `json:"errorName"`
	ErrorInstanceID uuid.UUID       `json:"errorInstanceId"`
	Parameters      json.RawMessage `json:"parameters,omitempty"`
}

// serializeError converts any Error into its wire form. Parameters that fail to marshal are dropped.
func serializeError(e Error) SerializableError {
	params := make(map[string]interface{})
	for k, v := range e.UnsafeParams() {
		params[k] = v
	}
	for k, v := range e.SafeParams() {
		if k == errorInstanceIDParamKey || k == errorNameParamKey {
			continue
		}
		params[k] = v
	}
	se := SerializableError{
		ErrorCode:       e.Code(),
		ErrorName:       e.Name(),
		ErrorInstanceID: e.InstanceID(),
	}
	if marshaled, err := codecs.JSON.Marshal(params); err == nil {
		se.Parameters = marshaled
	}
	return se
}
