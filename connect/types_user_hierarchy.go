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

// HierarchyGroup describes an agent hierarchy group.
type HierarchyGroup struct {
	ID            string            `json:"Id,omitempty"`
	ARN           string            `json:"Arn,omitempty"`
	Name          string            `json:"Name,omitempty"`
	LevelID       string            `json:"LevelId,omitempty"`
	HierarchyPath *HierarchyPath    `json:"HierarchyPath,omitempty"`
	Tags          map[string]string `json:"Tags,omitempty"`
}

// HierarchyPath is the chain of groups above a hierarchy group.
type HierarchyPath struct {
	LevelOne   *HierarchyGroupSummary `json:"LevelOne,omitempty"`
	LevelTwo   *HierarchyGroupSummary `json:"LevelTwo,omitempty"`
	LevelThree *HierarchyGroupSummary `json:"LevelThree,omitempty"`
	LevelFour  *HierarchyGroupSummary `json:"LevelFour,omitempty"`
	LevelFive  *HierarchyGroupSummary `json:"LevelFive,omitempty"`
}

// HierarchyGroupSummary summarizes an agent hierarchy group.
type HierarchyGroupSummary struct {
	ID   string `json:"Id,omitempty"`
	ARN  string `json:"Arn,omitempty"`
	Name string `json:"Name,omitempty"`
}

// HierarchyStructure is the named levels of the agent hierarchy.
type HierarchyStructure struct {
	LevelOne   *HierarchyLevel `json:"LevelOne,omitempty"`
	LevelTwo   *HierarchyLevel `json:"LevelTwo,omitempty"`
	LevelThree *HierarchyLevel `json:"LevelThree,omitempty"`
	LevelFour  *HierarchyLevel `json:"LevelFour,omitempty"`
	LevelFive  *HierarchyLevel `json:"LevelFive,omitempty"`
}

// HierarchyLevel is one level of the agent hierarchy.
type HierarchyLevel struct {
	ID   string `json:"Id,omitempty"`
	ARN  string `json:"Arn,omitempty"`
	Name string `json:"Name,omitempty"`
}

// HierarchyStructureUpdate renames levels of the agent hierarchy.
type HierarchyStructureUpdate struct {
	LevelOne   *HierarchyLevelUpdate `json:"LevelOne,omitempty"`
	LevelTwo   *HierarchyLevelUpdate `json:"LevelTwo,omitempty"`
	LevelThree *HierarchyLevelUpdate `json:"LevelThree,omitempty"`
	LevelFour  *HierarchyLevelUpdate `json:"LevelFour,omitempty"`
	LevelFive  *HierarchyLevelUpdate `json:"LevelFive,omitempty"`
}

// HierarchyLevelUpdate is the new name of a hierarchy level.
type HierarchyLevelUpdate struct {
	Name string `json:"Name,omitempty"`
}

// CreateUserHierarchyGroupRequest is the input of CreateUserHierarchyGroup. The service requires
// Name and InstanceID.
type CreateUserHierarchyGroupRequest struct {
	Name          string            `json:"Name,omitempty"`
	ParentGroupID string            `json:"ParentGroupId,omitempty"`
	InstanceID    string            `json:"InstanceId,omitempty"`
	Tags          map[string]string `json:"Tags,omitempty"`
}

// CreateUserHierarchyGroupResponse is the output of CreateUserHierarchyGroup.
type CreateUserHierarchyGroupResponse struct {
	HierarchyGroupID  string `json:"HierarchyGroupId,omitempty"`
	HierarchyGroupARN string `json:"HierarchyGroupArn,omitempty"`
}

// DescribeUserHierarchyGroupRequest is the input of DescribeUserHierarchyGroup. The service
// requires HierarchyGroupID and InstanceID.
type DescribeUserHierarchyGroupRequest struct {
	HierarchyGroupID string `json:"HierarchyGroupId,omitempty"`
	InstanceID       string `json:"InstanceId,omitempty"`
}

// DescribeUserHierarchyGroupResponse is the output of DescribeUserHierarchyGroup.
type DescribeUserHierarchyGroupResponse struct {
	HierarchyGroup *HierarchyGroup `json:"HierarchyGroup,omitempty"`
}

// ListUserHierarchyGroupsRequest is the input of ListUserHierarchyGroups. The service requires
// InstanceID.
type ListUserHierarchyGroupsRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	NextToken  string `json:"NextToken,omitempty"`
	MaxResults *int32 `json:"MaxResults,omitempty"`
}

// ListUserHierarchyGroupsResponse is the output of ListUserHierarchyGroups.
type ListUserHierarchyGroupsResponse struct {
	UserHierarchyGroupSummaryList []HierarchyGroupSummary `json:"UserHierarchyGroupSummaryList,omitempty"`
	NextToken                     string                  `json:"NextToken,omitempty"`
}

// UpdateUserHierarchyGroupNameRequest is the input of UpdateUserHierarchyGroupName. The service
// requires Name, HierarchyGroupID and InstanceID.
type UpdateUserHierarchyGroupNameRequest struct {
	Name             string `json:"Name,omitempty"`
	HierarchyGroupID string `json:"HierarchyGroupId,omitempty"`
	InstanceID       string `json:"InstanceId,omitempty"`
}

// DeleteUserHierarchyGroupRequest is the input of DeleteUserHierarchyGroup. The service requires
// HierarchyGroupID and InstanceID.
type DeleteUserHierarchyGroupRequest struct {
	HierarchyGroupID string `json:"HierarchyGroupId,omitempty"`
	InstanceID       string `json:"InstanceId,omitempty"`
}

// DescribeUserHierarchyStructureRequest is the input of DescribeUserHierarchyStructure. The service
// requires InstanceID.
type DescribeUserHierarchyStructureRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
}

// DescribeUserHierarchyStructureResponse is the output of DescribeUserHierarchyStructure.
type DescribeUserHierarchyStructureResponse struct {
	HierarchyStructure *HierarchyStructure `json:"HierarchyStructure,omitempty"`
}

// UpdateUserHierarchyStructureRequest is the input of UpdateUserHierarchyStructure. The service
// requires HierarchyStructure and InstanceID.
type UpdateUserHierarchyStructureRequest struct {
	HierarchyStructure *HierarchyStructureUpdate `json:"HierarchyStructure,omitempty"`
	InstanceID         string                    `json:"InstanceId,omitempty"`
}
