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

package httpclient

import (
	"context"
)

type rpcMethodNameContextKey struct{}

// ContextWithRPCMethodName returns a copy of ctx carrying the name of the RPC being invoked.
// The metrics and tracing middlewares read it to tag and name their output.
func ContextWithRPCMethodName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, rpcMethodNameContextKey{}, name)
}

func getRPCMethodName(ctx context.Context) string {
	if name, ok := ctx.Value(rpcMethodNameContextKey{}).(string); ok {
		return name
	}
	return ""
}

// RPCMethodNameFromContext returns the RPC method name set by ContextWithRPCMethodName or WithRPCMethodName.
func RPCMethodNameFromContext(ctx context.Context) string {
	return getRPCMethodName(ctx)
}
