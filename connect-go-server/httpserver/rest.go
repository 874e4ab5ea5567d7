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
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/palantir/connect-go-sdk/connect-go-contract/codecs"
	"github.com/palantir/connect-go-sdk/connect-go-contract/errors"
	werror "github.com/palantir/witchcraft-go-error"
	wparams "github.com/palantir/witchcraft-go-params"
)

// ParseBearerTokenHeader returns the token of a "Bearer" Authorization header.
// A missing or malformed header is a PERMISSION_DENIED error.
func ParseBearerTokenHeader(req *http.Request) (string, error) {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.NewPermissionDenied(wparams.NewSafeParamStorer(map[string]interface{}{"reason": "missing Authorization header"}))
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", errors.NewPermissionDenied(wparams.NewSafeParamStorer(map[string]interface{}{"reason": "Authorization header is not a bearer token"}))
	}
	return token, nil
}

// SecretStringEqual compares two secrets in constant time.
func SecretStringEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// ReadJSONRequest decodes the request body into v. Undecodable bodies are INVALID_ARGUMENT errors.
func ReadJSONRequest(req *http.Request, v interface{}) error {
	if err := codecs.JSON.Decode(req.Body, v); err != nil {
		return errors.WrapWithInvalidArgument(err, wparams.NewSafeParamStorer(map[string]interface{}{"reason": "request body is not valid JSON"}))
	}
	return nil
}

// WriteJSONResponse writes v as a JSON body with the provided status.
func WriteJSONResponse(w http.ResponseWriter, v interface{}, statusCode int) error {
	body, err := codecs.JSON.Marshal(v)
	if err != nil {
		return werror.Wrap(err, "failed to marshal response body")
	}
	w.Header().Set("Content-Type", codecs.JSON.ContentType())
	w.WriteHeader(statusCode)
	_, err = w.Write(body)
	return werror.Wrap(err, "failed to write response body")
}
