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

// Reference is a typed value attached to a contact or task.
type Reference struct {
	Value string `json:"Value,omitempty"`
	Type  string `json:"Type,omitempty"`
}

// ReferenceSummary describes a reference attached to a contact.
type ReferenceSummary struct {
	Name   string `json:"Name,omitempty"`
	Type   string `json:"Type,omitempty"`
	Value  string `json:"Value,omitempty"`
	Status string `json:"Status,omitempty"`
}

// SearchCriteria filters search results by string conditions combined with and/or.
type SearchCriteria struct {
	OrConditions    []SearchCriteria `json:"OrConditions,omitempty"`
	AndConditions   []SearchCriteria `json:"AndConditions,omitempty"`
	StringCondition *StringCondition `json:"StringCondition,omitempty"`
}

// StringCondition matches one string field of a resource.
type StringCondition struct {
	FieldName      string `json:"FieldName,omitempty"`
	Value          string `json:"Value,omitempty"`
	ComparisonType string `json:"ComparisonType,omitempty"`
}

// ControlPlaneTagFilter filters search results by resource tags.
type ControlPlaneTagFilter struct {
	OrConditions  [][]TagCondition `json:"OrConditions,omitempty"`
	AndConditions []TagCondition   `json:"AndConditions,omitempty"`
	TagCondition  *TagCondition    `json:"TagCondition,omitempty"`
}

// TagCondition matches one tag.
type TagCondition struct {
	TagKey   string `json:"TagKey,omitempty"`
	TagValue string `json:"TagValue,omitempty"`
}

// QueueReference identifies a queue.
type QueueReference struct {
	ID  string `json:"Id,omitempty"`
	ARN string `json:"Arn,omitempty"`
}

// RoutingProfileReference identifies a routing profile.
type RoutingProfileReference struct {
	ID  string `json:"Id,omitempty"`
	ARN string `json:"Arn,omitempty"`
}

// UserReference identifies an agent.
type UserReference struct {
	ID  string `json:"Id,omitempty"`
	ARN string `json:"Arn,omitempty"`
}
