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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeForStatus(t *testing.T) {
	for _, test := range []struct {
		Status   int
		Expected InternalErrorType
	}{
		{Status: 0, Expected: Internal},
		{Status: http.StatusOK, Expected: Other},
		{Status: http.StatusPermanentRedirect, Expected: QOS},
		{Status: http.StatusTooManyRequests, Expected: QOS},
		{Status: http.StatusServiceUnavailable, Expected: QOS},
		{Status: http.StatusInternalServerError, Expected: ServiceInternal},
		{Status: http.StatusNotFound, Expected: RPC},
		{Status: http.StatusConflict, Expected: RPC},
	} {
		t.Run(http.StatusText(test.Status), func(t *testing.T) {
			assert.Equal(t, test.Expected, TypeForStatus(test.Status))
		})
	}
}
