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

package connect

import (
	"reflect"
	"sort"
)

// Family groups the operations acting on one kind of managed resource.
type Family string

const (
	FamilyInstance                 Family = "Instance"
	FamilyFlow                     Family = "Flow"
	FamilyQueue                    Family = "Queue"
	FamilyRoutingProfile           Family = "RoutingProfile"
	FamilyQuickConnect             Family = "QuickConnect"
	FamilyUser                     Family = "User"
	FamilyUserHierarchy            Family = "UserHierarchy"
	FamilySecurityProfile          Family = "SecurityProfile"
	FamilyPhoneNumber              Family = "PhoneNumber"
	FamilyTrafficDistributionGroup Family = "TrafficDistributionGroup"
	FamilyPrompt                   Family = "Prompt"
	FamilyVocabulary               Family = "Vocabulary"
	FamilyEvaluationForm           Family = "EvaluationForm"
	FamilyContact                  Family = "Contact"
	FamilyTag                      Family = "Tag"
	FamilyIntegration              Family = "Integration"
	FamilyHoursOfOperation         Family = "HoursOfOperation"
	FamilyAgentStatus              Family = "AgentStatus"
	FamilyRule                     Family = "Rule"
	FamilyTaskTemplate             Family = "TaskTemplate"
	FamilyMetrics                  Family = "Metrics"
)

// Access describes the effect an operation has on remote state.
type Access int

const (
	// ReadOnly operations (describe, list, search, get) never change remote state.
	ReadOnly Access = iota + 1
	// Mutating operations create or change resources.
	Mutating
	// Destructive operations delete, disassociate, release or stop resources.
	Destructive
)

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "read-only"
	case Mutating:
		return "mutating"
	case Destructive:
		return "destructive"
	default:
		return "unknown"
	}
}

// Operation describes one remote procedure of the service.
type Operation struct {
	Name   string
	Family Family
	Access Access
	// IdempotencyToken is true when the request carries a ClientToken field.
	IdempotencyToken bool
	// Errors is the closed set of error kinds the operation declares, sorted.
	Errors []ErrorKind
	// RequestType is the struct type of the request value.
	RequestType reflect.Type
	// ResponseType is the struct type of the response value, or nil for void operations.
	ResponseType reflect.Type
}

func newOperation(name string, family Family, access Access, token bool, request, response any, kinds ...ErrorKind) *Operation {
	op := &Operation{
		Name:             name,
		Family:           family,
		Access:           access,
		IdempotencyToken: token,
		Errors:           append([]ErrorKind(nil), kinds...),
		RequestType:      reflect.TypeOf(request),
	}
	if response != nil {
		op.ResponseType = reflect.TypeOf(response)
	}
	sort.Slice(op.Errors, func(i, j int) bool { return op.Errors[i] < op.Errors[j] })
	return op
}

// Declares reports whether kind is in the operation's declared error set.
func (o *Operation) Declares(kind ErrorKind) bool {
	i := sort.Search(len(o.Errors), func(i int) bool { return o.Errors[i] >= kind })
	return i < len(o.Errors) && o.Errors[i] == kind
}

// Void reports whether the operation returns no response value.
func (o *Operation) Void() bool {
	return o.ResponseType == nil
}

// Path is the request path of the operation relative to the endpoint.
func (o *Operation) Path() string {
	return "/v1/" + o.Name
}

var operationsByName = func() map[string]*Operation {
	m := make(map[string]*Operation, len(catalog))
	for _, op := range catalog {
		m[op.Name] = op
	}
	return m
}()

// Operations returns every operation of the service in catalogue order.
func Operations() []*Operation {
	return append([]*Operation(nil), catalog...)
}

// LookupOperation returns the operation with the given name.
func LookupOperation(name string) (*Operation, bool) {
	op, ok := operationsByName[name]
	return op, ok
}
