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

package connect_test

import (
	"context"
	"testing"
	"time"

	"github.com/palantir/connect-go-sdk/connect"
	"github.com/palantir/connect-go-sdk/connect-go-client/httpclient"
	"github.com/palantir/connect-go-sdk/connect/connecttest"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func fastRetries(maxRetries int) []httpclient.ClientParam {
	return []httpclient.ClientParam{
		httpclient.WithMaxRetries(maxRetries),
		httpclient.WithInitialBackoff(time.Millisecond),
		httpclient.WithMaxBackoff(5 * time.Millisecond),
	}
}

func newTestClient(t *testing.T, srv *connecttest.Server, params ...httpclient.ClientParam) connect.Client {
	t.Helper()
	client, err := connect.New(srv.ClientConfig(), append(fastRetries(3), params...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func createInstance(t *testing.T, client connect.InstanceAPI) string {
	t.Helper()
	resp, err := client.CreateInstance(context.Background(), &connect.CreateInstanceRequest{
		IdentityManagementType: "CONNECT_MANAGED",
		InstanceAlias:          "test",
		InboundCallsEnabled:    ptr(true),
		OutboundCallsEnabled:   ptr(false),
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func createQueue(t *testing.T, client connect.QueueAPI, instanceID, name string) *connect.CreateQueueResponse {
	t.Helper()
	resp, err := client.CreateQueue(context.Background(), &connect.CreateQueueRequest{
		InstanceID:         instanceID,
		Name:               name,
		HoursOfOperationID: "hours-1",
		MaxContacts:        ptr(int32(10)),
	})
	require.NoError(t, err)
	return resp
}
