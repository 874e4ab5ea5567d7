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

// Queue describes a queue.
type Queue struct {
	Name                 string                `json:"Name,omitempty"`
	QueueARN             string                `json:"QueueArn,omitempty"`
	QueueID              string                `json:"QueueId,omitempty"`
	Description          string                `json:"Description,omitempty"`
	OutboundCallerConfig *OutboundCallerConfig `json:"OutboundCallerConfig,omitempty"`
	HoursOfOperationID   string                `json:"HoursOfOperationId,omitempty"`
	MaxContacts          *int32                `json:"MaxContacts,omitempty"`
	Status               string                `json:"Status,omitempty"`
	Tags                 map[string]string     `json:"Tags,omitempty"`
}

// OutboundCallerConfig is the caller id presented on outbound calls from a queue.
type OutboundCallerConfig struct {
	OutboundCallerIDName     string `json:"OutboundCallerIdName,omitempty"`
	OutboundCallerIDNumberID string `json:"OutboundCallerIdNumberId,omitempty"`
	OutboundFlowID           string `json:"OutboundFlowId,omitempty"`
}

// QueueSummary summarizes a queue.
type QueueSummary struct {
	ID        string `json:"Id,omitempty"`
	ARN       string `json:"Arn,omitempty"`
	Name      string `json:"Name,omitempty"`
	QueueType string `json:"QueueType,omitempty"`
}

// CreateQueueRequest is the input of CreateQueue. The service requires InstanceID, Name and
// HoursOfOperationID.
type CreateQueueRequest struct {
	InstanceID           string                `json:"InstanceId,omitempty"`
	Name                 string                `json:"Name,omitempty"`
	Description          string                `json:"Description,omitempty"`
	OutboundCallerConfig *OutboundCallerConfig `json:"OutboundCallerConfig,omitempty"`
	HoursOfOperationID   string                `json:"HoursOfOperationId,omitempty"`
	MaxContacts          *int32                `json:"MaxContacts,omitempty"`
	QuickConnectIDs      []string              `json:"QuickConnectIds,omitempty"`
	Tags                 map[string]string     `json:"Tags,omitempty"`
}

// CreateQueueResponse is the output of CreateQueue.
type CreateQueueResponse struct {
	QueueARN string `json:"QueueArn,omitempty"`
	QueueID  string `json:"QueueId,omitempty"`
}

// DescribeQueueRequest is the input of DescribeQueue. The service requires InstanceID and QueueID.
type DescribeQueueRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	QueueID    string `json:"QueueId,omitempty"`
}

// DescribeQueueResponse is the output of DescribeQueue.
type DescribeQueueResponse struct {
	Queue *Queue `json:"Queue,omitempty"`
}

// ListQueuesRequest is the input of ListQueues. The service requires InstanceID.
type ListQueuesRequest struct {
	InstanceID string   `json:"InstanceId,omitempty"`
	QueueTypes []string `json:"QueueTypes,omitempty"`
	NextToken  string   `json:"NextToken,omitempty"`
	MaxResults *int32   `json:"MaxResults,omitempty"`
}

// ListQueuesResponse is the output of ListQueues.
type ListQueuesResponse struct {
	QueueSummaryList []QueueSummary `json:"QueueSummaryList,omitempty"`
	NextToken        string         `json:"NextToken,omitempty"`
}

// SearchQueuesRequest is the input of SearchQueues. The service requires InstanceID.
type SearchQueuesRequest struct {
	InstanceID     string                 `json:"InstanceId,omitempty"`
	SearchFilter   *ControlPlaneTagFilter `json:"SearchFilter,omitempty"`
	SearchCriteria *SearchCriteria        `json:"SearchCriteria,omitempty"`
	NextToken      string                 `json:"NextToken,omitempty"`
	MaxResults     *int32                 `json:"MaxResults,omitempty"`
}

// SearchQueuesResponse is the output of SearchQueues.
type SearchQueuesResponse struct {
	Queues                []Queue `json:"Queues,omitempty"`
	ApproximateTotalCount *int64  `json:"ApproximateTotalCount,omitempty"`
	NextToken             string  `json:"NextToken,omitempty"`
}

// UpdateQueueHoursOfOperationRequest is the input of UpdateQueueHoursOfOperation. The service
// requires InstanceID, QueueID and HoursOfOperationID.
type UpdateQueueHoursOfOperationRequest struct {
	InstanceID         string `json:"InstanceId,omitempty"`
	QueueID            string `json:"QueueId,omitempty"`
	HoursOfOperationID string `json:"HoursOfOperationId,omitempty"`
}

// UpdateQueueMaxContactsRequest is the input of UpdateQueueMaxContacts. The service requires
// InstanceID and QueueID.
type UpdateQueueMaxContactsRequest struct {
	InstanceID  string `json:"InstanceId,omitempty"`
	QueueID     string `json:"QueueId,omitempty"`
	MaxContacts *int32 `json:"MaxContacts,omitempty"`
}

// UpdateQueueNameRequest is the input of UpdateQueueName. The service requires InstanceID and
// QueueID.
type UpdateQueueNameRequest struct {
	InstanceID  string `json:"InstanceId,omitempty"`
	QueueID     string `json:"QueueId,omitempty"`
	Name        string `json:"Name,omitempty"`
	Description string `json:"Description,omitempty"`
}

// UpdateQueueOutboundCallerConfigRequest is the input of UpdateQueueOutboundCallerConfig. The
// service requires InstanceID, QueueID and OutboundCallerConfig.
type UpdateQueueOutboundCallerConfigRequest struct {
	InstanceID           string                `json:"InstanceId,omitempty"`
	QueueID              string                `json:"QueueId,omitempty"`
	OutboundCallerConfig *OutboundCallerConfig `json:"OutboundCallerConfig,omitempty"`
}

// UpdateQueueStatusRequest is the input of UpdateQueueStatus. The service requires InstanceID,
// QueueID and Status.
type UpdateQueueStatusRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	QueueID    string `json:"QueueId,omitempty"`
	Status     string `json:"Status,omitempty"`
}

// AssociateQueueQuickConnectsRequest is the input of AssociateQueueQuickConnects. The service
// requires InstanceID, QueueID and QuickConnectIDs.
type AssociateQueueQuickConnectsRequest struct {
	InstanceID      string   `json:"InstanceId,omitempty"`
	QueueID         string   `json:"QueueId,omitempty"`
	QuickConnectIDs []string `json:"QuickConnectIds,omitempty"`
}

// DisassociateQueueQuickConnectsRequest is the input of DisassociateQueueQuickConnects. The service
// requires InstanceID, QueueID and QuickConnectIDs.
type DisassociateQueueQuickConnectsRequest struct {
	InstanceID      string   `json:"InstanceId,omitempty"`
	QueueID         string   `json:"QueueId,omitempty"`
	QuickConnectIDs []string `json:"QuickConnectIds,omitempty"`
}

// ListQueueQuickConnectsRequest is the input of ListQueueQuickConnects. The service requires
// InstanceID and QueueID.
type ListQueueQuickConnectsRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	QueueID    string `json:"QueueId,omitempty"`
	NextToken  string `json:"NextToken,omitempty"`
	MaxResults *int32 `json:"MaxResults,omitempty"`
}

// ListQueueQuickConnectsResponse is the output of ListQueueQuickConnects.
type ListQueueQuickConnectsResponse struct {
	QuickConnectSummaryList []QuickConnectSummary `json:"QuickConnectSummaryList,omitempty"`
	NextToken               string                `json:"NextToken,omitempty"`
}
