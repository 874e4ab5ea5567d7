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

package connecttest_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/palantir/connect-go-sdk/connect"
	"github.com/palantir/connect-go-sdk/connect-go-client/httpclient"
	"github.com/palantir/connect-go-sdk/connect/connecttest"
	"github.com/palantir/witchcraft-go-logging/wlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type response struct {
	status int
	header http.Header
	body   map[string]interface{}
}

func post(t *testing.T, h http.Handler, operation string, body interface{}, header ...string) response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/v1/"+operation, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	resp := response{status: rec.Code, header: rec.Header()}
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp.body), rec.Body.String())
	}
	return resp
}

func errorName(r response) string {
	name, _ := r.body["errorName"].(string)
	return name
}

func createInstance(t *testing.T, h http.Handler) (string, string) {
	t.Helper()
	resp := post(t, h, "CreateInstance", map[string]interface{}{
		"IdentityManagementType": "CONNECT_MANAGED",
		"InboundCallsEnabled":    true,
		"OutboundCallsEnabled":   true,
	})
	require.Equal(t, http.StatusOK, resp.status, resp.body)
	return resp.body["Id"].(string), resp.body["Arn"].(string)
}

func TestBackend_EveryOperationIsServed(t *testing.T) {
	backend := connecttest.NewBackend()
	for _, op := range connect.Operations() {
		t.Run(op.Name, func(t *testing.T) {
			resp := post(t, backend, op.Name, map[string]interface{}{})
			assert.NotEqual(t, "Connect:UnknownOperation", errorName(resp))
			if resp.status != http.StatusOK {
				name := errorName(resp)
				require.True(t, strings.HasPrefix(name, connect.ErrorNamespace+":"), "%d %v", resp.status, resp.body)
				kind := connect.ErrorKind(strings.TrimPrefix(name, connect.ErrorNamespace+":"))
				assert.True(t, op.Declares(kind), "%s answered with undeclared %s", op.Name, kind)
			}
		})
	}
}

func TestBackend_UnknownOperation(t *testing.T) {
	backend := connecttest.NewBackend()
	resp := post(t, backend, "LaunchRocket", map[string]interface{}{})
	assert.Equal(t, http.StatusNotFound, resp.status)
	assert.Equal(t, "Connect:UnknownOperation", errorName(resp))

	req := httptest.NewRequest(http.MethodGet, "/v1/ListInstances", nil)
	rec := httptest.NewRecorder()
	backend.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestBackend_RequiredFields(t *testing.T) {
	backend := connecttest.NewBackend()
	resp := post(t, backend, "CreateQueue", map[string]interface{}{"InstanceId": "i"})
	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, "Connect:InvalidParameter", errorName(resp))

	resp = post(t, backend, "CreateQueue", map[string]interface{}{"InstanceId": "missing", "Name": "q", "HoursOfOperationId": "h"})
	assert.Equal(t, http.StatusNotFound, resp.status)
	assert.Equal(t, "Connect:ResourceNotFound", errorName(resp))
}

func TestBackend_MalformedBody(t *testing.T) {
	backend := connecttest.NewBackend()
	req := httptest.NewRequest(http.MethodPost, "/v1/ListQueues", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	backend.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Connect:InvalidParameter")
}

func TestBackend_RequestIDs(t *testing.T) {
	backend := connecttest.NewBackend()
	first := post(t, backend, "ListInstances", map[string]interface{}{})
	second := post(t, backend, "DescribeInstance", map[string]interface{}{"InstanceId": "missing"})
	require.NotEmpty(t, first.header.Get(httpclient.RequestIDHeader))
	require.NotEmpty(t, second.header.Get(httpclient.RequestIDHeader))
	assert.NotEqual(t, first.header.Get(httpclient.RequestIDHeader), second.header.Get(httpclient.RequestIDHeader))
	assert.Equal(t, 2, backend.Requests())
}

func TestBackend_InstanceScoping(t *testing.T) {
	backend := connecttest.NewBackend()
	first, _ := createInstance(t, backend)
	second, _ := createInstance(t, backend)

	created := post(t, backend, "CreateQueue", map[string]interface{}{"InstanceId": first, "Name": "q", "HoursOfOperationId": "h"})
	require.Equal(t, http.StatusOK, created.status)
	queueID := created.body["QueueId"].(string)

	resp := post(t, backend, "DescribeQueue", map[string]interface{}{"InstanceId": first, "QueueId": queueID})
	assert.Equal(t, http.StatusOK, resp.status)
	resp = post(t, backend, "DescribeQueue", map[string]interface{}{"InstanceId": second, "QueueId": queueID})
	assert.Equal(t, http.StatusNotFound, resp.status)

	listed := post(t, backend, "ListQueues", map[string]interface{}{"InstanceId": second})
	require.Equal(t, http.StatusOK, listed.status)
	assert.Empty(t, listed.body["QueueSummaryList"])
}

func TestBackend_Search(t *testing.T) {
	backend := connecttest.NewBackend()
	instanceID, _ := createInstance(t, backend)
	for _, name := range []string{"alpha", "alpine", "beta", "gamma"} {
		resp := post(t, backend, "CreateQueue", map[string]interface{}{"InstanceId": instanceID, "Name": name, "HoursOfOperationId": "h"})
		require.Equal(t, http.StatusOK, resp.status)
	}

	names := func(resp response) []string {
		var out []string
		queues, _ := resp.body["Queues"].([]interface{})
		for _, q := range queues {
			out = append(out, q.(map[string]interface{})["Name"].(string))
		}
		return out
	}
	condition := func(comparison, value string) map[string]interface{} {
		return map[string]interface{}{"StringCondition": map[string]interface{}{"FieldName": "name", "Value": value, "ComparisonType": comparison}}
	}

	for _, tc := range []struct {
		name     string
		criteria map[string]interface{}
		want     []string
	}{
		{name: "none", want: []string{"alpha", "alpine", "beta", "gamma"}},
		{name: "exact", criteria: condition("EXACT", "beta"), want: []string{"beta"}},
		{name: "prefix", criteria: condition("STARTS_WITH", "alp"), want: []string{"alpha", "alpine"}},
		{name: "contains", criteria: condition("CONTAINS", "mm"), want: []string{"gamma"}},
		{
			name:     "or",
			criteria: map[string]interface{}{"OrConditions": []interface{}{condition("EXACT", "beta"), condition("EXACT", "gamma")}},
			want:     []string{"beta", "gamma"},
		},
		{
			name:     "and",
			criteria: map[string]interface{}{"AndConditions": []interface{}{condition("STARTS_WITH", "al"), condition("CONTAINS", "ine")}},
			want:     []string{"alpine"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			body := map[string]interface{}{"InstanceId": instanceID}
			if tc.criteria != nil {
				body["SearchCriteria"] = tc.criteria
			}
			resp := post(t, backend, "SearchQueues", body)
			require.Equal(t, http.StatusOK, resp.status, resp.body)
			assert.Equal(t, tc.want, names(resp))
			assert.EqualValues(t, len(tc.want), resp.body["ApproximateTotalCount"])
		})
	}
}

func TestBackend_Paging(t *testing.T) {
	backend := connecttest.NewBackend()
	for i := 0; i < 3; i++ {
		createInstance(t, backend)
	}
	resp := post(t, backend, "ListInstances", map[string]interface{}{"MaxResults": 2})
	require.Equal(t, http.StatusOK, resp.status)
	assert.Len(t, resp.body["InstanceSummaryList"], 2)
	token, _ := resp.body["NextToken"].(string)
	require.NotEmpty(t, token)

	resp = post(t, backend, "ListInstances", map[string]interface{}{"MaxResults": 2, "NextToken": token})
	require.Equal(t, http.StatusOK, resp.status)
	assert.Len(t, resp.body["InstanceSummaryList"], 1)
	assert.Nil(t, resp.body["NextToken"])

	for _, bad := range []map[string]interface{}{{"MaxResults": 0}, {"MaxResults": 1001}, {"NextToken": "-1"}, {"NextToken": "9"}} {
		resp = post(t, backend, "ListInstances", bad)
		assert.Equal(t, http.StatusBadRequest, resp.status, "%v", bad)
		assert.Equal(t, "Connect:InvalidRequest", errorName(resp))
	}
}

func TestBackend_Tags(t *testing.T) {
	backend := connecttest.NewBackend()
	_, arn := createInstance(t, backend)

	resp := post(t, backend, "TagResource", map[string]interface{}{"ResourceArn": arn, "Tags": map[string]string{"team": "support", "env": "dev"}})
	require.Equal(t, http.StatusOK, resp.status)
	resp = post(t, backend, "UntagResource", map[string]interface{}{"ResourceArn": arn, "TagKeys": []string{"env"}})
	require.Equal(t, http.StatusOK, resp.status)

	resp = post(t, backend, "ListTagsForResource", map[string]interface{}{"ResourceArn": arn})
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, map[string]interface{}{"team": "support"}, resp.body["Tags"])

	resp = post(t, backend, "ListTagsForResource", map[string]interface{}{"ResourceArn": "arn:aws:connect:us-east-1:" + connecttest.AccountID + ":instance/missing"})
	assert.Equal(t, http.StatusNotFound, resp.status)
}

func TestBackend_Links(t *testing.T) {
	backend := connecttest.NewBackend()
	instanceID, _ := createInstance(t, backend)

	for _, origin := range []string{"https://b.example.com", "https://a.example.com"} {
		resp := post(t, backend, "AssociateApprovedOrigin", map[string]interface{}{"InstanceId": instanceID, "Origin": origin})
		require.Equal(t, http.StatusOK, resp.status)
	}
	resp := post(t, backend, "ListApprovedOrigins", map[string]interface{}{"InstanceId": instanceID})
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, []interface{}{"https://a.example.com", "https://b.example.com"}, resp.body["Origins"])

	resp = post(t, backend, "DisassociateApprovedOrigin", map[string]interface{}{"InstanceId": instanceID, "Origin": "https://a.example.com"})
	require.Equal(t, http.StatusOK, resp.status)
	resp = post(t, backend, "DisassociateApprovedOrigin", map[string]interface{}{"InstanceId": instanceID, "Origin": "https://a.example.com"})
	assert.Equal(t, http.StatusNotFound, resp.status)
}

func TestBackend_Put(t *testing.T) {
	backend := connecttest.NewBackend()
	instanceID, _ := createInstance(t, backend)

	for _, value := range []string{"true", "false"} {
		resp := post(t, backend, "UpdateInstanceAttribute", map[string]interface{}{"InstanceId": instanceID, "AttributeType": "CONTACTFLOW_LOGS", "Value": value})
		require.Equal(t, http.StatusOK, resp.status)
	}
	resp := post(t, backend, "DescribeInstanceAttribute", map[string]interface{}{"InstanceId": instanceID, "AttributeType": "CONTACTFLOW_LOGS"})
	require.Equal(t, http.StatusOK, resp.status)
	attribute := resp.body["Attribute"].(map[string]interface{})
	assert.Equal(t, "false", attribute["Value"])

	resp = post(t, backend, "ListInstanceAttributes", map[string]interface{}{"InstanceId": instanceID})
	require.Equal(t, http.StatusOK, resp.status)
	assert.Len(t, resp.body["Attributes"], 1)
}

func TestBackend_Idempotency(t *testing.T) {
	backend := connecttest.NewBackend()
	_, arn := createInstance(t, backend)

	claim := map[string]interface{}{"TargetArn": arn, "PhoneNumber": "+12065550100", "ClientToken": "t-1"}
	first := post(t, backend, "ClaimPhoneNumber", claim)
	require.Equal(t, http.StatusOK, first.status)
	second := post(t, backend, "ClaimPhoneNumber", claim)
	require.Equal(t, http.StatusOK, second.status)
	assert.Equal(t, first.body, second.body)

	claim["PhoneNumber"] = "+12065550101"
	conflict := post(t, backend, "ClaimPhoneNumber", claim)
	assert.Equal(t, http.StatusConflict, conflict.status)
	assert.Equal(t, "Connect:IdempotencyConflict", errorName(conflict))

	delete(claim, "ClientToken")
	third := post(t, backend, "ClaimPhoneNumber", claim)
	require.Equal(t, http.StatusOK, third.status)
	assert.NotEqual(t, first.body["PhoneNumberId"], third.body["PhoneNumberId"])
}

func TestBackend_IdempotencyConflictUsesDeclaredKind(t *testing.T) {
	for _, test := range []struct {
		name      string
		operation string
		body      func(t *testing.T, h http.Handler) map[string]interface{}
		change    func(body map[string]interface{})
		status    int
		errorName string
	}{
		{
			name:      "declares idempotency conflict",
			operation: "ClaimPhoneNumber",
			body: func(t *testing.T, h http.Handler) map[string]interface{} {
				_, arn := createInstance(t, h)
				return map[string]interface{}{"TargetArn": arn, "PhoneNumber": "+12065550100"}
			},
			change:    func(body map[string]interface{}) { body["PhoneNumber"] = "+12065550199" },
			status:    http.StatusConflict,
			errorName: "Connect:IdempotencyConflict",
		},
		{
			name:      "declares only invalid request",
			operation: "CreateInstance",
			body: func(t *testing.T, h http.Handler) map[string]interface{} {
				return map[string]interface{}{"IdentityManagementType": "CONNECT_MANAGED", "InboundCallsEnabled": true, "OutboundCallsEnabled": true}
			},
			change:    func(body map[string]interface{}) { body["IdentityManagementType"] = "SAML" },
			status:    http.StatusBadRequest,
			errorName: "Connect:InvalidRequest",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			backend := connecttest.NewBackend()
			body := test.body(t, backend)
			body["ClientToken"] = "t-" + test.operation

			first := post(t, backend, test.operation, body)
			require.Equal(t, http.StatusOK, first.status, first.body)

			test.change(body)
			resp := post(t, backend, test.operation, body)
			assert.Equal(t, test.status, resp.status)
			assert.Equal(t, test.errorName, errorName(resp))

			op, ok := connect.LookupOperation(test.operation)
			require.True(t, ok)
			kind := connect.ErrorKind(strings.TrimPrefix(errorName(resp), connect.ErrorNamespace+":"))
			assert.True(t, op.Declares(kind), "%s does not declare %s", op.Name, kind)
		})
	}
}

func TestBackend_Faults(t *testing.T) {
	backend := connecttest.NewBackend(connecttest.WithThrottle(1), connecttest.WithFault("ListQueues", connect.KindInternalService))

	resp := post(t, backend, "ListInstances", map[string]interface{}{})
	assert.Equal(t, http.StatusTooManyRequests, resp.status)
	assert.Equal(t, "Connect:Throttling", errorName(resp))
	resp = post(t, backend, "ListInstances", map[string]interface{}{})
	assert.Equal(t, http.StatusOK, resp.status)

	resp = post(t, backend, "ListQueues", map[string]interface{}{"InstanceId": "i"})
	assert.Equal(t, http.StatusInternalServerError, resp.status)
	assert.Equal(t, "Connect:InternalService", errorName(resp))

	backend.SetFault("ListInstances", connect.KindInvalidRequest)
	resp = post(t, backend, "ListInstances", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, resp.status)

	backend.ClearFaults()
	resp = post(t, backend, "ListQueues", map[string]interface{}{"InstanceId": "i"})
	assert.Equal(t, http.StatusOK, resp.status)
}

func TestBackend_APIToken(t *testing.T) {
	backend := connecttest.NewBackend(connecttest.WithAPIToken("secret"))

	resp := post(t, backend, "ListInstances", map[string]interface{}{})
	assert.Equal(t, http.StatusForbidden, resp.status)
	assert.Equal(t, "Connect:AccessDenied", errorName(resp))

	resp = post(t, backend, "ListInstances", map[string]interface{}{}, "Authorization", "Bearer nope")
	assert.Equal(t, http.StatusForbidden, resp.status)

	resp = post(t, backend, "ListInstances", map[string]interface{}{}, "Authorization", "Bearer secret")
	assert.Equal(t, http.StatusOK, resp.status)
}

func TestBackend_LogOutput(t *testing.T) {
	var buf bytes.Buffer
	backend := connecttest.NewBackend(connecttest.WithLogOutput(&buf, wlog.DebugLevel))
	post(t, backend, "DescribeInstance", map[string]interface{}{"InstanceId": "missing"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry), buf.String())
	assert.Equal(t, "service.1", entry["type"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "error handling request", entry["message"])
}

func TestServer_ClientConfig(t *testing.T) {
	srv := connecttest.NewServer()
	defer srv.Close()
	cfg := srv.ClientConfig()
	assert.Equal(t, srv.URL, cfg.Endpoint)
	require.NoError(t, cfg.Validate())
}
