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

package internal

import (
	"github.com/palantir/connect-go-sdk/connect-go-contract/errors"
	werror "github.com/palantir/witchcraft-go-error"
)

// StatusCodeFromError retrieves the 'statusCode' parameter from the provided werror.
// If the statusCode can not be detected from the error, ok is false.
// A 'statusCode' parameter takes precedence. Otherwise, if the error is a
// (potentially wrapped) serialized service error, the status code of its error code is returned.
//
// The default client error decoder sets the statusCode parameter on its returned errors. Note that, if a custom error
// decoder is used, this function will only return a status code for the error if the custom decoder sets a 'statusCode'
// parameter on the error or returns an errors.Error.
func StatusCodeFromError(err error) (statusCode int, ok bool) {
	if err == nil {
		return 0, false
	}
	if statusCodeI, ok := werror.ParamFromError(err, "statusCode"); ok {
		if statusCode, ok := statusCodeI.(int); ok {
			return statusCode, true
		}
	}
	if serviceErr, ok := werror.RootCause(err).(errors.Error); ok {
		return serviceErr.Code().StatusCode(), true
	}
	return 0, false
}
