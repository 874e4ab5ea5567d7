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
	"fmt"
	"regexp"
	"strings"
)

// ErrorType is a combination of error code and name that identifies a kind of error.
type ErrorType struct {
	code ErrorCode
	name string
}

var errorNamePattern = regexp.MustCompile(`^(([A-Z][a-z0-9]+)+):(([A-Z][a-z0-9]+)+)$`)

const defaultNamespace = "Default"

var (
	DefaultPermissionDenied = ErrorType{PermissionDenied, "Default:PermissionDenied"}
	DefaultInvalidArgument  = ErrorType{InvalidArgument, "Default:InvalidArgument"}
	DefaultNotFound         = ErrorType{NotFound, "Default:NotFound"}
	DefaultConflict         = ErrorType{Conflict, "Default:Conflict"}
	DefaultInternal         = ErrorType{Internal, "Default:Internal"}
	DefaultTimeout          = ErrorType{Timeout, "Default:Timeout"}
	DefaultTooManyRequests  = ErrorType{TooManyRequests, "Default:TooManyRequests"}
)

// NewErrorType returns an ErrorType for the provided code and name.
//
// The name must be in the form "Namespace:ErrorName" with both halves in UpperCamelCase.
// The "Default" namespace is reserved for the default types of each code.
func NewErrorType(code ErrorCode, name string) (ErrorType, error) {
	if !code.isValid() {
		return ErrorType{}, fmt.Errorf("errors: invalid error code %d", code)
	}
	if !errorNamePattern.MatchString(name) {
		return ErrorType{}, fmt.Errorf("errors: error name does not match regexp `%s`", errorNamePattern.String())
	}
	if strings.HasPrefix(name, defaultNamespace+":") && name != defaultErrorName(code) {
		return ErrorType{}, fmt.Errorf("errors: invalid combination of default error name and error code")
	}
	return ErrorType{code: code, name: name}, nil
}

// MustErrorType is NewErrorType that panics on error.
func MustErrorType(code ErrorCode, name string) ErrorType {
	errorType, err := NewErrorType(code, name)
	if err != nil {
		panic(err)
	}
	return errorType
}

func defaultErrorName(code ErrorCode) string {
	parts := strings.Split(strings.ToLower(code.String()), "_")
	for i, part := range parts {
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return defaultNamespace + ":" + strings.Join(parts, "")
}

// String representation of an error type.
//
// For example:
//
//	"CONFLICT Connect:DuplicateResource".
func (et ErrorType) String() string {
	return fmt.Sprintf("%s %s", et.code, et.name)
}

// Code returns an error code.
func (et ErrorType) Code() ErrorCode {
	return et.code
}

// Name returns an error name.
func (et ErrorType) Name() string {
	return et.name
}
