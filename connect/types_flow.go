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

// ContactFlow describes a flow.
type ContactFlow struct {
	ARN         string            `json:"Arn,omitempty"`
	ID          string            `json:"Id,omitempty"`
	Name        string            `json:"Name,omitempty"`
	Type        string            `json:"Type,omitempty"`
	State       string            `json:"State,omitempty"`
	Description string            `json:"Description,omitempty"`
	Content     string            `json:"Content,omitempty"`
	Tags        map[string]string `json:"Tags,omitempty"`
}

// ContactFlowSummary summarizes a flow.
type ContactFlowSummary struct {
	ID               string `json:"Id,omitempty"`
	ARN              string `json:"Arn,omitempty"`
	Name             string `json:"Name,omitempty"`
	ContactFlowType  string `json:"ContactFlowType,omitempty"`
	ContactFlowState string `json:"ContactFlowState,omitempty"`
}

// ContactFlowModule describes a flow module.
type ContactFlowModule struct {
	ARN         string            `json:"Arn,omitempty"`
	ID          string            `json:"Id,omitempty"`
	Name        string            `json:"Name,omitempty"`
	Content     string            `json:"Content,omitempty"`
	Description string            `json:"Description,omitempty"`
	State       string            `json:"State,omitempty"`
	Status      string            `json:"Status,omitempty"`
	Tags        map[string]string `json:"Tags,omitempty"`
}

// ContactFlowModuleSummary summarizes a flow module.
type ContactFlowModuleSummary struct {
	ID    string `json:"Id,omitempty"`
	ARN   string `json:"Arn,omitempty"`
	Name  string `json:"Name,omitempty"`
	State string `json:"State,omitempty"`
}

// CreateContactFlowRequest is the input of CreateContactFlow. The service requires InstanceID,
// Name, Type and Content.
type CreateContactFlowRequest struct {
	InstanceID  string            `json:"InstanceId,omitempty"`
	Name        string            `json:"Name,omitempty"`
	Type        string            `json:"Type,omitempty"`
	Description string            `json:"Description,omitempty"`
	Content     string            `json:"Content,omitempty"`
	Tags        map[string]string `json:"Tags,omitempty"`
}

// CreateContactFlowResponse is the output of CreateContactFlow.
type CreateContactFlowResponse struct {
	ContactFlowID  string `json:"ContactFlowId,omitempty"`
	ContactFlowARN string `json:"ContactFlowArn,omitempty"`
}

// DescribeContactFlowRequest is the input of DescribeContactFlow. The service requires InstanceID
// and ContactFlowID.
type DescribeContactFlowRequest struct {
	InstanceID    string `json:"InstanceId,omitempty"`
	ContactFlowID string `json:"ContactFlowId,omitempty"`
}

// DescribeContactFlowResponse is the output of DescribeContactFlow.
type DescribeContactFlowResponse struct {
	ContactFlow *ContactFlow `json:"ContactFlow,omitempty"`
}

// ListContactFlowsRequest is the input of ListContactFlows. The service requires InstanceID.
type ListContactFlowsRequest struct {
	InstanceID       string   `json:"InstanceId,omitempty"`
	ContactFlowTypes []string `json:"ContactFlowTypes,omitempty"`
	NextToken        string   `json:"NextToken,omitempty"`
	MaxResults       *int32   `json:"MaxResults,omitempty"`
}

// ListContactFlowsResponse is the output of ListContactFlows.
type ListContactFlowsResponse struct {
	ContactFlowSummaryList []ContactFlowSummary `json:"ContactFlowSummaryList,omitempty"`
	NextToken              string               `json:"NextToken,omitempty"`
}

// UpdateContactFlowContentRequest is the input of UpdateContactFlowContent. The service requires
// InstanceID, ContactFlowID and Content.
type UpdateContactFlowContentRequest struct {
	InstanceID    string `json:"InstanceId,omitempty"`
	ContactFlowID string `json:"ContactFlowId,omitempty"`
	Content       string `json:"Content,omitempty"`
}

// UpdateContactFlowMetadataRequest is the input of UpdateContactFlowMetadata. The service requires
// InstanceID and ContactFlowID.
type UpdateContactFlowMetadataRequest struct {
	InstanceID       string `json:"InstanceId,omitempty"`
	ContactFlowID    string `json:"ContactFlowId,omitempty"`
	Name             string `json:"Name,omitempty"`
	Description      string `json:"Description,omitempty"`
	ContactFlowState string `json:"ContactFlowState,omitempty"`
}

// UpdateContactFlowNameRequest is the input of UpdateContactFlowName. The service requires
// InstanceID and ContactFlowID.
type UpdateContactFlowNameRequest struct {
	InstanceID    string `json:"InstanceId,omitempty"`
	ContactFlowID string `json:"ContactFlowId,omitempty"`
	Name          string `json:"Name,omitempty"`
	Description   string `json:"Description,omitempty"`
}

// DeleteContactFlowRequest is the input of DeleteContactFlow. The service requires InstanceID and
// ContactFlowID.
type DeleteContactFlowRequest struct {
	InstanceID    string `json:"InstanceId,omitempty"`
	ContactFlowID string `json:"ContactFlowId,omitempty"`
}

// CreateContactFlowModuleRequest is the input of CreateContactFlowModule. The service requires
// InstanceID, Name and Content.
type CreateContactFlowModuleRequest struct {
	InstanceID  string            `json:"InstanceId,omitempty"`
	Name        string            `json:"Name,omitempty"`
	Description string            `json:"Description,omitempty"`
	Content     string            `json:"Content,omitempty"`
	Tags        map[string]string `json:"Tags,omitempty"`
	ClientToken string            `json:"ClientToken,omitempty"`
}

// CreateContactFlowModuleResponse is the output of CreateContactFlowModule.
type CreateContactFlowModuleResponse struct {
	ID  string `json:"Id,omitempty"`
	ARN string `json:"Arn,omitempty"`
}

// DescribeContactFlowModuleRequest is the input of DescribeContactFlowModule. The service requires
// InstanceID and ContactFlowModuleID.
type DescribeContactFlowModuleRequest struct {
	InstanceID          string `json:"InstanceId,omitempty"`
	ContactFlowModuleID string `json:"ContactFlowModuleId,omitempty"`
}

// DescribeContactFlowModuleResponse is the output of DescribeContactFlowModule.
type DescribeContactFlowModuleResponse struct {
	ContactFlowModule *ContactFlowModule `json:"ContactFlowModule,omitempty"`
}

// ListContactFlowModulesRequest is the input of ListContactFlowModules. The service requires
// InstanceID.
type ListContactFlowModulesRequest struct {
	InstanceID             string `json:"InstanceId,omitempty"`
	ContactFlowModuleState string `json:"ContactFlowModuleState,omitempty"`
	NextToken              string `json:"NextToken,omitempty"`
	MaxResults             *int32 `json:"MaxResults,omitempty"`
}

// ListContactFlowModulesResponse is the output of ListContactFlowModules.
type ListContactFlowModulesResponse struct {
	ContactFlowModulesSummaryList []ContactFlowModuleSummary `json:"ContactFlowModulesSummaryList,omitempty"`
	NextToken                     string                     `json:"NextToken,omitempty"`
}

// UpdateContactFlowModuleContentRequest is the input of UpdateContactFlowModuleContent. The service
// requires InstanceID, ContactFlowModuleID and Content.
type UpdateContactFlowModuleContentRequest struct {
	InstanceID          string `json:"InstanceId,omitempty"`
	ContactFlowModuleID string `json:"ContactFlowModuleId,omitempty"`
	Content             string `json:"Content,omitempty"`
}

// UpdateContactFlowModuleMetadataRequest is the input of UpdateContactFlowModuleMetadata. The
// service requires InstanceID and ContactFlowModuleID.
type UpdateContactFlowModuleMetadataRequest struct {
	InstanceID          string `json:"InstanceId,omitempty"`
	ContactFlowModuleID string `json:"ContactFlowModuleId,omitempty"`
	Name                string `json:"Name,omitempty"`
	Description         string `json:"Description,omitempty"`
	State               string `json:"State,omitempty"`
}

// DeleteContactFlowModuleRequest is the input of DeleteContactFlowModule. The service requires
// InstanceID and ContactFlowModuleID.
type DeleteContactFlowModuleRequest struct {
	InstanceID          string `json:"InstanceId,omitempty"`
	ContactFlowModuleID string `json:"ContactFlowModuleId,omitempty"`
}

func (r *CreateContactFlowModuleRequest) clientToken() string {
	return r.ClientToken
}

func (r *CreateContactFlowModuleRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}
