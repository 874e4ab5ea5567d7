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
	"reflect"
	"regexp"
	"sort"
	"testing"

	"github.com/palantir/connect-go-sdk/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()

	familyInterfaces = map[connect.Family]reflect.Type{
		connect.FamilyInstance:                 reflect.TypeOf((*connect.InstanceAPI)(nil)).Elem(),
		connect.FamilyFlow:                     reflect.TypeOf((*connect.FlowAPI)(nil)).Elem(),
		connect.FamilyQueue:                    reflect.TypeOf((*connect.QueueAPI)(nil)).Elem(),
		connect.FamilyRoutingProfile:           reflect.TypeOf((*connect.RoutingProfileAPI)(nil)).Elem(),
		connect.FamilyQuickConnect:             reflect.TypeOf((*connect.QuickConnectAPI)(nil)).Elem(),
		connect.FamilyUser:                     reflect.TypeOf((*connect.UserAPI)(nil)).Elem(),
		connect.FamilyUserHierarchy:            reflect.TypeOf((*connect.UserHierarchyAPI)(nil)).Elem(),
		connect.FamilySecurityProfile:          reflect.TypeOf((*connect.SecurityProfileAPI)(nil)).Elem(),
		connect.FamilyPhoneNumber:              reflect.TypeOf((*connect.PhoneNumberAPI)(nil)).Elem(),
		connect.FamilyTrafficDistributionGroup: reflect.TypeOf((*connect.TrafficDistributionGroupAPI)(nil)).Elem(),
		connect.FamilyPrompt:                   reflect.TypeOf((*connect.PromptAPI)(nil)).Elem(),
		connect.FamilyVocabulary:               reflect.TypeOf((*connect.VocabularyAPI)(nil)).Elem(),
		connect.FamilyEvaluationForm:           reflect.TypeOf((*connect.EvaluationFormAPI)(nil)).Elem(),
		connect.FamilyContact:                  reflect.TypeOf((*connect.ContactAPI)(nil)).Elem(),
		connect.FamilyTag:                      reflect.TypeOf((*connect.TagAPI)(nil)).Elem(),
		connect.FamilyIntegration:              reflect.TypeOf((*connect.IntegrationAPI)(nil)).Elem(),
		connect.FamilyHoursOfOperation:         reflect.TypeOf((*connect.HoursOfOperationAPI)(nil)).Elem(),
		connect.FamilyAgentStatus:              reflect.TypeOf((*connect.AgentStatusAPI)(nil)).Elem(),
		connect.FamilyRule:                     reflect.TypeOf((*connect.RuleAPI)(nil)).Elem(),
		connect.FamilyTaskTemplate:             reflect.TypeOf((*connect.TaskTemplateAPI)(nil)).Elem(),
		connect.FamilyMetrics:                  reflect.TypeOf((*connect.MetricsAPI)(nil)).Elem(),
	}
	clientType = reflect.TypeOf((*connect.Client)(nil)).Elem()
	readOnlyName = regexp.MustCompile(`^(Describe|List|Search|Get)[A-Z]`)
)

func TestOperations_MatchClientMethods(t *testing.T) {
	ops := connect.Operations()
	require.Len(t, ops, 192)
	// Every operation plus ResponseMetadata and Close.
	assert.Equal(t, len(ops)+2, clientType.NumMethod())

	familyMethods := 0
	for _, iface := range familyInterfaces {
		familyMethods += iface.NumMethod()
	}
	assert.Equal(t, len(ops), familyMethods, "every operation belongs to exactly one family interface")

	seen := map[string]bool{}
	for _, op := range ops {
		t.Run(op.Name, func(t *testing.T) {
			assert.False(t, seen[op.Name], "duplicate operation")
			seen[op.Name] = true

			iface, ok := familyInterfaces[op.Family]
			require.True(t, ok, "unknown family %s", op.Family)
			method, ok := iface.MethodByName(op.Name)
			require.True(t, ok, "%s has no method %s", iface.Name(), op.Name)
			_, ok = clientType.MethodByName(op.Name)
			assert.True(t, ok)

			mt := method.Type
			require.Equal(t, 2, mt.NumIn())
			assert.Equal(t, contextType, mt.In(0))
			assert.Equal(t, reflect.PointerTo(op.RequestType), mt.In(1))
			assert.Equal(t, op.Name+"Request", op.RequestType.Name())
			assert.Equal(t, reflect.Struct, op.RequestType.Kind())

			if op.Void() {
				require.Equal(t, 1, mt.NumOut())
				assert.Equal(t, errorType, mt.Out(0))
			} else {
				require.Equal(t, 2, mt.NumOut())
				assert.Equal(t, op.Name+"Response", op.ResponseType.Name())
				assert.Equal(t, reflect.PointerTo(op.ResponseType), mt.Out(0))
				assert.Equal(t, errorType, mt.Out(1))
			}

			found, ok := connect.LookupOperation(op.Name)
			assert.True(t, ok)
			assert.Same(t, op, found)
			assert.Equal(t, "/v1/"+op.Name, op.Path())
		})
	}
}

func TestOperations_DeclaredErrorsAreClosed(t *testing.T) {
	for _, op := range connect.Operations() {
		t.Run(op.Name, func(t *testing.T) {
			require.NotEmpty(t, op.Errors)
			assert.True(t, sort.SliceIsSorted(op.Errors, func(i, j int) bool { return op.Errors[i] < op.Errors[j] }))
			for i, kind := range op.Errors {
				assert.True(t, kind.Known(), "unknown kind %s", kind)
				assert.NotEqual(t, connect.KindService, kind)
				assert.True(t, op.Declares(kind))
				if i > 0 {
					assert.NotEqual(t, op.Errors[i-1], kind, "duplicate kind")
				}
			}
			assert.False(t, op.Declares(connect.KindService))
			assert.False(t, op.Declares("NotAKind"))
		})
	}
}

func TestOperations_AccessAndTokens(t *testing.T) {
	for _, op := range connect.Operations() {
		t.Run(op.Name, func(t *testing.T) {
			assert.Equal(t, readOnlyName.MatchString(op.Name), op.Access == connect.ReadOnly, "access %s", op.Access)

			field, hasToken := op.RequestType.FieldByName("ClientToken")
			assert.Equal(t, op.IdempotencyToken, hasToken)
			if hasToken {
				assert.Equal(t, reflect.String, field.Type.Kind())
				assert.NotEqual(t, connect.ReadOnly, op.Access)
			}
		})
	}
}

func TestOperations_ReturnsCopy(t *testing.T) {
	ops := connect.Operations()
	ops[0] = nil
	assert.NotNil(t, connect.Operations()[0])

	_, ok := connect.LookupOperation("DescribeNothing")
	assert.False(t, ok)
}

func TestAccess_String(t *testing.T) {
	assert.Equal(t, "read-only", connect.ReadOnly.String())
	assert.Equal(t, "mutating", connect.Mutating.String())
	assert.Equal(t, "destructive", connect.Destructive.String())
	assert.Equal(t, "unknown", connect.Access(0).String())
}
