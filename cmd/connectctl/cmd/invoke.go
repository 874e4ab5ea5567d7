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

package cmd

import (
	"context"
	"reflect"

	"github.com/palantir/connect-go-sdk/connect"
	werror "github.com/palantir/witchcraft-go-error"
)

// invoke calls the client method named after op with request, a pointer to op's request type.
// The response is nil for operations without output.
func invoke(ctx context.Context, client connect.Client, op *connect.Operation, request reflect.Value) (interface{}, error) {
	method := reflect.ValueOf(client).MethodByName(op.Name)
	if !method.IsValid() {
		return nil, werror.ErrorWithContextParams(ctx, "client does not implement operation", werror.SafeParam("operation", op.Name))
	}
	out := method.Call([]reflect.Value{reflect.ValueOf(ctx), request})
	err, _ := out[len(out)-1].Interface().(error)
	if op.Void() || err != nil {
		return nil, err
	}
	return out[0].Interface(), nil
}
