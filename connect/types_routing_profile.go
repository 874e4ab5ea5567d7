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

// RoutingProfile describes a routing profile.
type RoutingProfile struct {
	InstanceID               string             `json:"InstanceId,omitempty"`
	Name                     string             `json:"Name,omitempty"`
	RoutingProfileARN        string             `json:"RoutingProfileArn,omitempty"`
	RoutingProfileID         string             `json:"RoutingProfileId,omitempty"`
	Description              string             `json:"Description,omitempty"`
	MediaConcurrencies       []MediaConcurrency `json:"MediaConcurrencies,omitempty"`
	DefaultOutboundQueueID   string             `json:"DefaultOutboundQueueId,omitempty"`
	Tags                     map[string]string  `json:"Tags,omitempty"`
	NumberOfAssociatedQueues *int64             `json:"NumberOfAssociatedQueues,omitempty"`
	NumberOfAssociatedUsers  *int64             `json:"NumberOfAssociatedUsers,omitempty"`
}

// MediaConcurrency is the number of contacts an agent handles at once on a channel.
type MediaConcurrency struct {
	Channel              string                `json:"Channel,omitempty"`
	Concurrency          int32                 `json:"Concurrency,omitempty"`
	CrossChannelBehavior *CrossChannelBehavior `json:"CrossChannelBehavior,omitempty"`
}

// CrossChannelBehavior controls routing across channels.
type CrossChannelBehavior struct {
	BehaviorType string `json:"BehaviorType,omitempty"`
}

// RoutingProfileSummary summarizes a routing profile.
type RoutingProfileSummary struct {
	ID   string `json:"Id,omitempty"`
	ARN  string `json:"Arn,omitempty"`
	Name string `json:"Name,omitempty"`
}

// RoutingProfileQueueConfig places a queue in a routing profile.
type RoutingProfileQueueConfig struct {
	QueueReference RoutingProfileQueueReference `json:"QueueReference,omitempty"`
	Priority       int32                        `json:"Priority,omitempty"`
	Delay          int32                        `json:"Delay,omitempty"`
}

// RoutingProfileQueueReference identifies a queue and channel in a routing profile.
type RoutingProfileQueueReference struct {
	QueueID string `json:"QueueId,omitempty"`
	Channel string `json:"Channel,omitempty"`
}

// RoutingProfileQueueConfigSummary summarizes a queue of a routing profile.
type RoutingProfileQueueConfigSummary struct {
	QueueID   string `json:"QueueId,omitempty"`
	QueueARN  string `json:"QueueArn,omitempty"`
	QueueName string `json:"QueueName,omitempty"`
	Priority  int32  `json:"Priority,omitempty"`
	Delay     int32  `json:"Delay,omitempty"`
	Channel   string `json:"Channel,omitempty"`
}

// CreateRoutingProfileRequest is the input of CreateRoutingProfile. The service requires
// InstanceID, Name, Description, DefaultOutboundQueueID and MediaConcurrencies.
type CreateRoutingProfileRequest struct {
	InstanceID             string                      `json:"InstanceId,omitempty"`
	Name                   string                      `json:"Name,omitempty"`
	Description            string                      `json:"Description,omitempty"`
	DefaultOutboundQueueID string                      `json:"DefaultOutboundQueueId,omitempty"`
	QueueConfigs           []RoutingProfileQueueConfig `json:"QueueConfigs,omitempty"`
	MediaConcurrencies     []MediaConcurrency          `json:"MediaConcurrencies,omitempty"`
	Tags                   map[string]string           `json:"Tags,omitempty"`
}

// CreateRoutingProfileResponse is the output of CreateRoutingProfile.
type CreateRoutingProfileResponse struct {
	RoutingProfileARN string `json:"RoutingProfileArn,omitempty"`
	RoutingProfileID  string `json:"RoutingProfileId,omitempty"`
}

// DescribeRoutingProfileRequest is the input of DescribeRoutingProfile. The service requires
// InstanceID and RoutingProfileID.
type DescribeRoutingProfileRequest struct {
	InstanceID       string `json:"InstanceId,omitempty"`
	RoutingProfileID string `json:"RoutingProfileId,omitempty"`
}

// DescribeRoutingProfileResponse is the output of DescribeRoutingProfile.
type DescribeRoutingProfileResponse struct {
	RoutingProfile *RoutingProfile `json:"RoutingProfile,omitempty"`
}

// ListRoutingProfilesRequest is the input of ListRoutingProfiles. The service requires InstanceID.
type ListRoutingProfilesRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	NextToken  string `json:"NextToken,omitempty"`
	MaxResults *int32 `json:"MaxResults,omitempty"`
}

// ListRoutingProfilesResponse is the output of ListRoutingProfiles.
type ListRoutingProfilesResponse struct {
	RoutingProfileSummaryList []RoutingProfileSummary `json:"RoutingProfileSummaryList,omitempty"`
	NextToken                 string                  `json:"NextToken,omitempty"`
}

// SearchRoutingProfilesRequest is the input of SearchRoutingProfiles. The service requires
// InstanceID.
type SearchRoutingProfilesRequest struct {
	InstanceID     string                 `json:"InstanceId,omitempty"`
	SearchFilter   *ControlPlaneTagFilter `json:"SearchFilter,omitempty"`
	SearchCriteria *SearchCriteria        `json:"SearchCriteria,omitempty"`
	NextToken      string                 `json:"NextToken,omitempty"`
	MaxResults     *int32                 `json:"MaxResults,omitempty"`
}

// SearchRoutingProfilesResponse is the output of SearchRoutingProfiles.
type SearchRoutingProfilesResponse struct {
	RoutingProfiles       []RoutingProfile `json:"RoutingProfiles,omitempty"`
	ApproximateTotalCount *int64           `json:"ApproximateTotalCount,omitempty"`
	NextToken             string           `json:"NextToken,omitempty"`
}

// UpdateRoutingProfileConcurrencyRequest is the input of UpdateRoutingProfileConcurrency. The
// service requires InstanceID, RoutingProfileID and MediaConcurrencies.
type UpdateRoutingProfileConcurrencyRequest struct {
	InstanceID         string             `json:"InstanceId,omitempty"`
	RoutingProfileID   string             `json:"RoutingProfileId,omitempty"`
	MediaConcurrencies []MediaConcurrency `json:"MediaConcurrencies,omitempty"`
}

// UpdateRoutingProfileDefaultOutboundQueueRequest is the input of
// UpdateRoutingProfileDefaultOutboundQueue. The service requires InstanceID, RoutingProfileID and
// DefaultOutboundQueueID.
type UpdateRoutingProfileDefaultOutboundQueueRequest struct {
	InstanceID             string `json:"InstanceId,omitempty"`
	RoutingProfileID       string `json:"RoutingProfileId,omitempty"`
	DefaultOutboundQueueID string `json:"DefaultOutboundQueueId,omitempty"`
}

// UpdateRoutingProfileNameRequest is the input of UpdateRoutingProfileName. The service requires
// InstanceID and RoutingProfileID.
type UpdateRoutingProfileNameRequest struct {
	InstanceID       string `json:"InstanceId,omitempty"`
	RoutingProfileID string `json:"RoutingProfileId,omitempty"`
	Name             string `json:"Name,omitempty"`
	Description      string `json:"Description,omitempty"`
}

// UpdateRoutingProfileQueuesRequest is the input of UpdateRoutingProfileQueues. The service
// requires InstanceID, RoutingProfileID and QueueConfigs.
type UpdateRoutingProfileQueuesRequest struct {
	InstanceID       string                      `json:"InstanceId,omitempty"`
	RoutingProfileID string                      `json:"RoutingProfileId,omitempty"`
	QueueConfigs     []RoutingProfileQueueConfig `json:"QueueConfigs,omitempty"`
}

// AssociateRoutingProfileQueuesRequest is the input of AssociateRoutingProfileQueues. The service
// requires InstanceID, RoutingProfileID and QueueConfigs.
type AssociateRoutingProfileQueuesRequest struct {
	InstanceID       string                      `json:"InstanceId,omitempty"`
	RoutingProfileID string                      `json:"RoutingProfileId,omitempty"`
	QueueConfigs     []RoutingProfileQueueConfig `json:"QueueConfigs,omitempty"`
}

// DisassociateRoutingProfileQueuesRequest is the input of DisassociateRoutingProfileQueues. The
// service requires InstanceID, RoutingProfileID and QueueReferences.
type DisassociateRoutingProfileQueuesRequest struct {
	InstanceID       string                         `json:"InstanceId,omitempty"`
	RoutingProfileID string                         `json:"RoutingProfileId,omitempty"`
	QueueReferences  []RoutingProfileQueueReference `json:"QueueReferences,omitempty"`
}

// ListRoutingProfileQueuesRequest is the input of ListRoutingProfileQueues. The service requires
// InstanceID and RoutingProfileID.
type ListRoutingProfileQueuesRequest struct {
	InstanceID       string `json:"InstanceId,omitempty"`
	RoutingProfileID string `json:"RoutingProfileId,omitempty"`
	NextToken        string `json:"NextToken,omitempty"`
	MaxResults       *int32 `json:"MaxResults,omitempty"`
}

// ListRoutingProfileQueuesResponse is the output of ListRoutingProfileQueues.
type ListRoutingProfileQueuesResponse struct {
	RoutingProfileQueueConfigSummaryList []RoutingProfileQueueConfigSummary `json:"RoutingProfileQueueConfigSummaryList,omitempty"`
	NextToken                            string                             `json:"NextToken,omitempty"`
}
