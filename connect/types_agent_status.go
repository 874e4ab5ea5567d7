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

// AgentStatus describes an agent status.
type AgentStatus struct {
	AgentStatusARN string            `json:"AgentStatusARN,omitempty"`
	AgentStatusID  string            `json:"AgentStatusId,omitempty"`
	Name           string            `json:"Name,omitempty"`
	Description    string            `json:"Description,omitempty"`
	Type           string            `json:"Type,omitempty"`
	DisplayOrder   *int32            `json:"DisplayOrder,omitempty"`
	State          string            `json:"State,omitempty"`
	Tags           map[string]string `json:"Tags,omitempty"`
}

// AgentStatusSummary summarizes an agent status.
type AgentStatusSummary struct {
	ID   string `json:"Id,omitempty"`
	ARN  string `json:"Arn,omitempty"`
	Name string `json:"Name,omitempty"`
	Type string `json:"Type,omitempty"`
}

// CreateAgentStatusRequest is the input of CreateAgentStatus. The service requires InstanceID, Name
// and State.
type CreateAgentStatusRequest struct {
	InstanceID   string            `json:"InstanceId,omitempty"`
	Name         string            `json:"Name,omitempty"`
	Description  string            `json:"Description,omitempty"`
	State        string            `json:"State,omitempty"`
	DisplayOrder *int32            `json:"DisplayOrder,omitempty"`
	Tags         map[string]string `json:"Tags,omitempty"`
}

// CreateAgentStatusResponse is the output of CreateAgentStatus.
type CreateAgentStatusResponse struct {
	AgentStatusARN string `json:"AgentStatusARN,omitempty"`
	AgentStatusID  string `json:"AgentStatusId,omitempty"`
}

// DescribeAgentStatusRequest is the input of DescribeAgentStatus. The service requires InstanceID
// and AgentStatusID.
type DescribeAgentStatusRequest struct {
	InstanceID    string `json:"InstanceId,omitempty"`
	AgentStatusID string `json:"AgentStatusId,omitempty"`
}

// DescribeAgentStatusResponse is the output of DescribeAgentStatus.
type DescribeAgentStatusResponse struct {
	AgentStatus *AgentStatus `json:"AgentStatus,omitempty"`
}

// ListAgentStatusesRequest is the input of ListAgentStatuses. The service requires InstanceID.
type ListAgentStatusesRequest struct {
	InstanceID       string   `json:"InstanceId,omitempty"`
	AgentStatusTypes []string `json:"AgentStatusTypes,omitempty"`
	NextToken        string   `json:"NextToken,omitempty"`
	MaxResults       *int32   `json:"MaxResults,omitempty"`
}

// ListAgentStatusesResponse is the output of ListAgentStatuses.
type ListAgentStatusesResponse struct {
	AgentStatusSummaryList []AgentStatusSummary `json:"AgentStatusSummaryList,omitempty"`
	NextToken              string               `json:"NextToken,omitempty"`
}

// UpdateAgentStatusRequest is the input of UpdateAgentStatus. The service requires InstanceID and
// AgentStatusID.
type UpdateAgentStatusRequest struct {
	InstanceID       string `json:"InstanceId,omitempty"`
	AgentStatusID    string `json:"AgentStatusId,omitempty"`
	Name             string `json:"Name,omitempty"`
	Description      string `json:"Description,omitempty"`
	State            string `json:"State,omitempty"`
	DisplayOrder     *int32 `json:"DisplayOrder,omitempty"`
	ResetOrderNumber bool   `json:"ResetOrderNumber,omitempty"`
}
