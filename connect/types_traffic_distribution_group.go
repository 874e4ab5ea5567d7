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

// TrafficDistributionGroup describes a traffic distribution group.
type TrafficDistributionGroup struct {
	ID          string            `json:"Id,omitempty"`
	ARN         string            `json:"Arn,omitempty"`
	Name        string            `json:"Name,omitempty"`
	Description string            `json:"Description,omitempty"`
	InstanceARN string            `json:"InstanceArn,omitempty"`
	Status      string            `json:"Status,omitempty"`
	Tags        map[string]string `json:"Tags,omitempty"`
}

// TrafficDistributionGroupSummary summarizes a traffic distribution group.
type TrafficDistributionGroupSummary struct {
	ID          string `json:"Id,omitempty"`
	ARN         string `json:"Arn,omitempty"`
	Name        string `json:"Name,omitempty"`
	InstanceARN string `json:"InstanceArn,omitempty"`
	Status      string `json:"Status,omitempty"`
}

// TelephonyConfig is the split of telephony traffic across regions.
type TelephonyConfig struct {
	Distributions []Distribution `json:"Distributions,omitempty"`
}

// Distribution is the share of traffic sent to one region.
type Distribution struct {
	Region     string `json:"Region,omitempty"`
	Percentage int32  `json:"Percentage,omitempty"`
}

// CreateTrafficDistributionGroupRequest is the input of CreateTrafficDistributionGroup. The service
// requires Name and InstanceID.
type CreateTrafficDistributionGroupRequest struct {
	Name        string            `json:"Name,omitempty"`
	Description string            `json:"Description,omitempty"`
	InstanceID  string            `json:"InstanceId,omitempty"`
	Tags        map[string]string `json:"Tags,omitempty"`
	ClientToken string            `json:"ClientToken,omitempty"`
}

// CreateTrafficDistributionGroupResponse is the output of CreateTrafficDistributionGroup.
type CreateTrafficDistributionGroupResponse struct {
	ID  string `json:"Id,omitempty"`
	ARN string `json:"Arn,omitempty"`
}

// DescribeTrafficDistributionGroupRequest is the input of DescribeTrafficDistributionGroup. The
// service requires TrafficDistributionGroupID.
type DescribeTrafficDistributionGroupRequest struct {
	TrafficDistributionGroupID string `json:"TrafficDistributionGroupId,omitempty"`
}

// DescribeTrafficDistributionGroupResponse is the output of DescribeTrafficDistributionGroup.
type DescribeTrafficDistributionGroupResponse struct {
	TrafficDistributionGroup *TrafficDistributionGroup `json:"TrafficDistributionGroup,omitempty"`
}

// ListTrafficDistributionGroupsRequest is the input of ListTrafficDistributionGroups.
type ListTrafficDistributionGroupsRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	NextToken  string `json:"NextToken,omitempty"`
	MaxResults *int32 `json:"MaxResults,omitempty"`
}

// ListTrafficDistributionGroupsResponse is the output of ListTrafficDistributionGroups.
type ListTrafficDistributionGroupsResponse struct {
	TrafficDistributionGroupSummaryList []TrafficDistributionGroupSummary `json:"TrafficDistributionGroupSummaryList,omitempty"`
	NextToken                           string                            `json:"NextToken,omitempty"`
}

// DeleteTrafficDistributionGroupRequest is the input of DeleteTrafficDistributionGroup. The service
// requires TrafficDistributionGroupID.
type DeleteTrafficDistributionGroupRequest struct {
	TrafficDistributionGroupID string `json:"TrafficDistributionGroupId,omitempty"`
}

// GetTrafficDistributionRequest is the input of GetTrafficDistribution. The service requires ID.
type GetTrafficDistributionRequest struct {
	ID string `json:"Id,omitempty"`
}

// GetTrafficDistributionResponse is the output of GetTrafficDistribution.
type GetTrafficDistributionResponse struct {
	TelephonyConfig *TelephonyConfig `json:"TelephonyConfig,omitempty"`
	ID              string           `json:"Id,omitempty"`
	ARN             string           `json:"Arn,omitempty"`
}

// UpdateTrafficDistributionRequest is the input of UpdateTrafficDistribution. The service requires
// ID.
type UpdateTrafficDistributionRequest struct {
	ID              string           `json:"Id,omitempty"`
	TelephonyConfig *TelephonyConfig `json:"TelephonyConfig,omitempty"`
}

func (r *CreateTrafficDistributionGroupRequest) clientToken() string {
	return r.ClientToken
}

func (r *CreateTrafficDistributionGroupRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}
