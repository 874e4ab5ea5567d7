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

import "time"

// TaskTemplateSummary summarizes a task template.
type TaskTemplateSummary struct {
	ID               string     `json:"Id,omitempty"`
	ARN              string     `json:"Arn,omitempty"`
	Name             string     `json:"Name,omitempty"`
	Description      string     `json:"Description,omitempty"`
	Status           string     `json:"Status,omitempty"`
	LastModifiedTime *time.Time `json:"LastModifiedTime,omitempty"`
	CreatedTime      *time.Time `json:"CreatedTime,omitempty"`
}

// TaskTemplateField is one field of a task template.
type TaskTemplateField struct {
	ID                  TaskTemplateFieldIdentifier `json:"Id,omitempty"`
	Description         string                      `json:"Description,omitempty"`
	Type                string                      `json:"Type,omitempty"`
	SingleSelectOptions []string                    `json:"SingleSelectOptions,omitempty"`
}

// TaskTemplateFieldIdentifier names a task template field.
type TaskTemplateFieldIdentifier struct {
	Name string `json:"Name,omitempty"`
}

// TaskTemplateConstraints marks task template fields required, read-only or invisible.
type TaskTemplateConstraints struct {
	RequiredFields  []TaskTemplateFieldReference `json:"RequiredFields,omitempty"`
	ReadOnlyFields  []TaskTemplateFieldReference `json:"ReadOnlyFields,omitempty"`
	InvisibleFields []TaskTemplateFieldReference `json:"InvisibleFields,omitempty"`
}

// TaskTemplateFieldReference points at a task template field.
type TaskTemplateFieldReference struct {
	ID *TaskTemplateFieldIdentifier `json:"Id,omitempty"`
}

// TaskTemplateDefaults is the default values of task template fields.
type TaskTemplateDefaults struct {
	DefaultFieldValues []TaskTemplateDefaultFieldValue `json:"DefaultFieldValues,omitempty"`
}

// TaskTemplateDefaultFieldValue is the default value of one task template field.
type TaskTemplateDefaultFieldValue struct {
	ID           *TaskTemplateFieldIdentifier `json:"Id,omitempty"`
	DefaultValue string                       `json:"DefaultValue,omitempty"`
}

// CreateTaskTemplateRequest is the input of CreateTaskTemplate. The service requires InstanceID,
// Name and Fields.
type CreateTaskTemplateRequest struct {
	InstanceID    string                   `json:"InstanceId,omitempty"`
	Name          string                   `json:"Name,omitempty"`
	Description   string                   `json:"Description,omitempty"`
	ContactFlowID string                   `json:"ContactFlowId,omitempty"`
	Constraints   *TaskTemplateConstraints `json:"Constraints,omitempty"`
	Defaults      *TaskTemplateDefaults    `json:"Defaults,omitempty"`
	Status        string                   `json:"Status,omitempty"`
	Fields        []TaskTemplateField      `json:"Fields,omitempty"`
	ClientToken   string                   `json:"ClientToken,omitempty"`
}

// CreateTaskTemplateResponse is the output of CreateTaskTemplate.
type CreateTaskTemplateResponse struct {
	ID  string `json:"Id,omitempty"`
	ARN string `json:"Arn,omitempty"`
}

// GetTaskTemplateRequest is the input of GetTaskTemplate. The service requires InstanceID and
// TaskTemplateID.
type GetTaskTemplateRequest struct {
	InstanceID      string `json:"InstanceId,omitempty"`
	TaskTemplateID  string `json:"TaskTemplateId,omitempty"`
	SnapshotVersion string `json:"SnapshotVersion,omitempty"`
}

// GetTaskTemplateResponse is the output of GetTaskTemplate.
type GetTaskTemplateResponse struct {
	InstanceID       string                   `json:"InstanceId,omitempty"`
	ID               string                   `json:"Id,omitempty"`
	ARN              string                   `json:"Arn,omitempty"`
	Name             string                   `json:"Name,omitempty"`
	Description      string                   `json:"Description,omitempty"`
	ContactFlowID    string                   `json:"ContactFlowId,omitempty"`
	Constraints      *TaskTemplateConstraints `json:"Constraints,omitempty"`
	Defaults         *TaskTemplateDefaults    `json:"Defaults,omitempty"`
	Fields           []TaskTemplateField      `json:"Fields,omitempty"`
	Status           string                   `json:"Status,omitempty"`
	LastModifiedTime *time.Time               `json:"LastModifiedTime,omitempty"`
	CreatedTime      *time.Time               `json:"CreatedTime,omitempty"`
	Tags             map[string]string        `json:"Tags,omitempty"`
}

// ListTaskTemplatesRequest is the input of ListTaskTemplates. The service requires InstanceID.
type ListTaskTemplatesRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	Status     string `json:"Status,omitempty"`
	Name       string `json:"Name,omitempty"`
	NextToken  string `json:"NextToken,omitempty"`
	MaxResults *int32 `json:"MaxResults,omitempty"`
}

// ListTaskTemplatesResponse is the output of ListTaskTemplates.
type ListTaskTemplatesResponse struct {
	TaskTemplates []TaskTemplateSummary `json:"TaskTemplates,omitempty"`
	NextToken     string                `json:"NextToken,omitempty"`
}

// UpdateTaskTemplateRequest is the input of UpdateTaskTemplate. The service requires TaskTemplateID
// and InstanceID.
type UpdateTaskTemplateRequest struct {
	TaskTemplateID string                   `json:"TaskTemplateId,omitempty"`
	InstanceID     string                   `json:"InstanceId,omitempty"`
	Name           string                   `json:"Name,omitempty"`
	Description    string                   `json:"Description,omitempty"`
	ContactFlowID  string                   `json:"ContactFlowId,omitempty"`
	Constraints    *TaskTemplateConstraints `json:"Constraints,omitempty"`
	Defaults       *TaskTemplateDefaults    `json:"Defaults,omitempty"`
	Status         string                   `json:"Status,omitempty"`
	Fields         []TaskTemplateField      `json:"Fields,omitempty"`
}

// UpdateTaskTemplateResponse is the output of UpdateTaskTemplate.
type UpdateTaskTemplateResponse struct {
	InstanceID       string                   `json:"InstanceId,omitempty"`
	ID               string                   `json:"Id,omitempty"`
	ARN              string                   `json:"Arn,omitempty"`
	Name             string                   `json:"Name,omitempty"`
	Description      string                   `json:"Description,omitempty"`
	ContactFlowID    string                   `json:"ContactFlowId,omitempty"`
	Constraints      *TaskTemplateConstraints `json:"Constraints,omitempty"`
	Defaults         *TaskTemplateDefaults    `json:"Defaults,omitempty"`
	Fields           []TaskTemplateField      `json:"Fields,omitempty"`
	Status           string                   `json:"Status,omitempty"`
	LastModifiedTime *time.Time               `json:"LastModifiedTime,omitempty"`
	CreatedTime      *time.Time               `json:"CreatedTime,omitempty"`
}

// DeleteTaskTemplateRequest is the input of DeleteTaskTemplate. The service requires InstanceID and
// TaskTemplateID.
type DeleteTaskTemplateRequest struct {
	InstanceID     string `json:"InstanceId,omitempty"`
	TaskTemplateID string `json:"TaskTemplateId,omitempty"`
}

func (r *CreateTaskTemplateRequest) clientToken() string {
	return r.ClientToken
}

func (r *CreateTaskTemplateRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}
