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

// QuickConnect describes a quick connect.
type QuickConnect struct {
	QuickConnectARN    string              `json:"QuickConnectARN,omitempty"`
	QuickConnectID     string              `json:"QuickConnectId,omitempty"`
	Name               string              `json:"Name,omitempty"`
	Description        string              `json:"Description,omitempty"`
	QuickConnectConfig *QuickConnectConfig `json:"QuickConnectConfig,omitempty"`
	Tags               map[string]string   `json:"Tags,omitempty"`
}

// QuickConnectConfig is the destination of a quick connect.
type QuickConnectConfig struct {
	QuickConnectType string                         `json:"QuickConnectType,omitempty"`
	UserConfig       *UserQuickConnectConfig        `json:"UserConfig,omitempty"`
	QueueConfig      *QueueQuickConnectConfig       `json:"QueueConfig,omitempty"`
	PhoneConfig      *PhoneNumberQuickConnectConfig `json:"PhoneConfig,omitempty"`
}

// UserQuickConnectConfig transfers to an agent.
type UserQuickConnectConfig struct {
	UserID        string `json:"UserId,omitempty"`
	ContactFlowID string `json:"ContactFlowId,omitempty"`
}

// QueueQuickConnectConfig transfers to a queue.
type QueueQuickConnectConfig struct {
	QueueID       string `json:"QueueId,omitempty"`
	ContactFlowID string `json:"ContactFlowId,omitempty"`
}

// PhoneNumberQuickConnectConfig transfers to an external number.
type PhoneNumberQuickConnectConfig struct {
	PhoneNumber string `json:"PhoneNumber,omitempty"`
}

// QuickConnectSummary summarizes a quick connect.
type QuickConnectSummary struct {
	ID               string `json:"Id,omitempty"`
	ARN              string `json:"Arn,omitempty"`
	Name             string `json:"Name,omitempty"`
	QuickConnectType string `json:"QuickConnectType,omitempty"`
}

// CreateQuickConnectRequest is the input of CreateQuickConnect. The service requires InstanceID,
// Name and QuickConnectConfig.
type CreateQuickConnectRequest struct {
	InstanceID         string              `json:"InstanceId,omitempty"`
	Name               string              `json:"Name,omitempty"`
	Description        string              `json:"Description,omitempty"`
	QuickConnectConfig *QuickConnectConfig `json:"QuickConnectConfig,omitempty"`
	Tags               map[string]string   `json:"Tags,omitempty"`
}

// CreateQuickConnectResponse is the output of CreateQuickConnect.
type CreateQuickConnectResponse struct {
	QuickConnectARN string `json:"QuickConnectARN,omitempty"`
	QuickConnectID  string `json:"QuickConnectId,omitempty"`
}

// DescribeQuickConnectRequest is the input of DescribeQuickConnect. The service requires InstanceID
// and QuickConnectID.
type DescribeQuickConnectRequest struct {
	InstanceID     string `json:"InstanceId,omitempty"`
	QuickConnectID string `json:"QuickConnectId,omitempty"`
}

// DescribeQuickConnectResponse is the output of DescribeQuickConnect.
type DescribeQuickConnectResponse struct {
	QuickConnect *QuickConnect `json:"QuickConnect,omitempty"`
}

// ListQuickConnectsRequest is the input of ListQuickConnects. The service requires InstanceID.
type ListQuickConnectsRequest struct {
	InstanceID        string   `json:"InstanceId,omitempty"`
	QuickConnectTypes []string `json:"QuickConnectTypes,omitempty"`
	NextToken         string   `json:"NextToken,omitempty"`
	MaxResults        *int32   `json:"MaxResults,omitempty"`
}

// ListQuickConnectsResponse is the output of ListQuickConnects.
type ListQuickConnectsResponse struct {
	QuickConnectSummaryList []QuickConnectSummary `json:"QuickConnectSummaryList,omitempty"`
	NextToken               string                `json:"NextToken,omitempty"`
}

// SearchQuickConnectsRequest is the input of SearchQuickConnects. The service requires InstanceID.
type SearchQuickConnectsRequest struct {
	InstanceID     string                 `json:"InstanceId,omitempty"`
	SearchFilter   *ControlPlaneTagFilter `json:"SearchFilter,omitempty"`
	SearchCriteria *SearchCriteria        `json:"SearchCriteria,omitempty"`
	NextToken      string                 `json:"NextToken,omitempty"`
	MaxResults     *int32                 `json:"MaxResults,omitempty"`
}

// SearchQuickConnectsResponse is the output of SearchQuickConnects.
type SearchQuickConnectsResponse struct {
	QuickConnects         []QuickConnect `json:"QuickConnects,omitempty"`
	ApproximateTotalCount *int64         `json:"ApproximateTotalCount,omitempty"`
	NextToken             string         `json:"NextToken,omitempty"`
}

// UpdateQuickConnectConfigRequest is the input of UpdateQuickConnectConfig. The service requires
// InstanceID, QuickConnectID and QuickConnectConfig.
type UpdateQuickConnectConfigRequest struct {
	InstanceID         string              `json:"InstanceId,omitempty"`
	QuickConnectID     string              `json:"QuickConnectId,omitempty"`
	QuickConnectConfig *QuickConnectConfig `json:"QuickConnectConfig,omitempty"`
}

// UpdateQuickConnectNameRequest is the input of UpdateQuickConnectName. The service requires
// InstanceID and QuickConnectID.
type UpdateQuickConnectNameRequest struct {
	InstanceID     string `json:"InstanceId,omitempty"`
	QuickConnectID string `json:"QuickConnectId,omitempty"`
	Name           string `json:"Name,omitempty"`
	Description    string `json:"Description,omitempty"`
}

// DeleteQuickConnectRequest is the input of DeleteQuickConnect. The service requires InstanceID and
// QuickConnectID.
type DeleteQuickConnectRequest struct {
	InstanceID     string `json:"InstanceId,omitempty"`
	QuickConnectID string `json:"QuickConnectId,omitempty"`
}
