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

// User describes an agent account.
type User struct {
	ID                 string            `json:"Id,omitempty"`
	ARN                string            `json:"Arn,omitempty"`
	Username           string            `json:"Username,omitempty"`
	IdentityInfo       *UserIdentityInfo `json:"IdentityInfo,omitempty"`
	PhoneConfig        *UserPhoneConfig  `json:"PhoneConfig,omitempty"`
	DirectoryUserID    string            `json:"DirectoryUserId,omitempty"`
	SecurityProfileIDs []string          `json:"SecurityProfileIds,omitempty"`
	RoutingProfileID   string            `json:"RoutingProfileId,omitempty"`
	HierarchyGroupID   string            `json:"HierarchyGroupId,omitempty"`
	Tags               map[string]string `json:"Tags,omitempty"`
}

// UserIdentityInfo is the name and contact details of an agent.
type UserIdentityInfo struct {
	FirstName      string `json:"FirstName,omitempty"`
	LastName       string `json:"LastName,omitempty"`
	Email          string `json:"Email,omitempty"`
	SecondaryEmail string `json:"SecondaryEmail,omitempty"`
	Mobile         string `json:"Mobile,omitempty"`
}

// UserPhoneConfig is the phone settings of an agent.
type UserPhoneConfig struct {
	PhoneType                 string `json:"PhoneType,omitempty"`
	AutoAccept                bool   `json:"AutoAccept,omitempty"`
	AfterContactWorkTimeLimit int32  `json:"AfterContactWorkTimeLimit,omitempty"`
	DeskPhoneNumber           string `json:"DeskPhoneNumber,omitempty"`
}

// UserSummary summarizes an agent account.
type UserSummary struct {
	ID       string `json:"Id,omitempty"`
	ARN      string `json:"Arn,omitempty"`
	Username string `json:"Username,omitempty"`
}

// UserDataFilters selects the agents whose real-time state is returned.
type UserDataFilters struct {
	Queues              []string       `json:"Queues,omitempty"`
	ContactFilter       *ContactFilter `json:"ContactFilter,omitempty"`
	RoutingProfiles     []string       `json:"RoutingProfiles,omitempty"`
	Agents              []string       `json:"Agents,omitempty"`
	UserHierarchyGroups []string       `json:"UserHierarchyGroups,omitempty"`
}

// ContactFilter selects contacts by state.
type ContactFilter struct {
	ContactStates []string `json:"ContactStates,omitempty"`
}

// UserData is the real-time state of one agent.
type UserData struct {
	User                    *UserReference           `json:"User,omitempty"`
	RoutingProfile          *RoutingProfileReference `json:"RoutingProfile,omitempty"`
	Status                  *AgentStatusReference    `json:"Status,omitempty"`
	AvailableSlotsByChannel map[string]int32         `json:"AvailableSlotsByChannel,omitempty"`
	MaxSlotsByChannel       map[string]int32         `json:"MaxSlotsByChannel,omitempty"`
	ActiveSlotsByChannel    map[string]int32         `json:"ActiveSlotsByChannel,omitempty"`
	Contacts                []AgentContactReference  `json:"Contacts,omitempty"`
}

// AgentStatusReference is the current status of an agent.
type AgentStatusReference struct {
	StatusStartTimestamp *time.Time `json:"StatusStartTimestamp,omitempty"`
	StatusARN            string     `json:"StatusArn,omitempty"`
	StatusName           string     `json:"StatusName,omitempty"`
}

// AgentContactReference is a contact an agent is handling.
type AgentContactReference struct {
	ContactID                 string          `json:"ContactId,omitempty"`
	Channel                   string          `json:"Channel,omitempty"`
	InitiationMethod          string          `json:"InitiationMethod,omitempty"`
	AgentContactState         string          `json:"AgentContactState,omitempty"`
	StateStartTimestamp       *time.Time      `json:"StateStartTimestamp,omitempty"`
	ConnectedToAgentTimestamp *time.Time      `json:"ConnectedToAgentTimestamp,omitempty"`
	Queue                     *QueueReference `json:"Queue,omitempty"`
}

// Credentials is a short-lived federation token.
type Credentials struct {
	AccessToken            string     `json:"AccessToken,omitempty"`
	AccessTokenExpiration  *time.Time `json:"AccessTokenExpiration,omitempty"`
	RefreshToken           string     `json:"RefreshToken,omitempty"`
	RefreshTokenExpiration *time.Time `json:"RefreshTokenExpiration,omitempty"`
}

// CreateUserRequest is the input of CreateUser. The service requires Username, PhoneConfig,
// SecurityProfileIDs, RoutingProfileID and InstanceID.
type CreateUserRequest struct {
	Username           string            `json:"Username,omitempty"`
	Password           string            `json:"Password,omitempty"`
	IdentityInfo       *UserIdentityInfo `json:"IdentityInfo,omitempty"`
	PhoneConfig        *UserPhoneConfig  `json:"PhoneConfig,omitempty"`
	DirectoryUserID    string            `json:"DirectoryUserId,omitempty"`
	SecurityProfileIDs []string          `json:"SecurityProfileIds,omitempty"`
	RoutingProfileID   string            `json:"RoutingProfileId,omitempty"`
	HierarchyGroupID   string            `json:"HierarchyGroupId,omitempty"`
	InstanceID         string            `json:"InstanceId,omitempty"`
	Tags               map[string]string `json:"Tags,omitempty"`
}

// CreateUserResponse is the output of CreateUser.
type CreateUserResponse struct {
	UserID  string `json:"UserId,omitempty"`
	UserARN string `json:"UserArn,omitempty"`
}

// DescribeUserRequest is the input of DescribeUser. The service requires InstanceID and UserID.
type DescribeUserRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	UserID     string `json:"UserId,omitempty"`
}

// DescribeUserResponse is the output of DescribeUser.
type DescribeUserResponse struct {
	User *User `json:"User,omitempty"`
}

// ListUsersRequest is the input of ListUsers. The service requires InstanceID.
type ListUsersRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	NextToken  string `json:"NextToken,omitempty"`
	MaxResults *int32 `json:"MaxResults,omitempty"`
}

// ListUsersResponse is the output of ListUsers.
type ListUsersResponse struct {
	UserSummaryList []UserSummary `json:"UserSummaryList,omitempty"`
	NextToken       string        `json:"NextToken,omitempty"`
}

// SearchUsersRequest is the input of SearchUsers.
type SearchUsersRequest struct {
	InstanceID     string                 `json:"InstanceId,omitempty"`
	SearchFilter   *ControlPlaneTagFilter `json:"SearchFilter,omitempty"`
	SearchCriteria *SearchCriteria        `json:"SearchCriteria,omitempty"`
	NextToken      string                 `json:"NextToken,omitempty"`
	MaxResults     *int32                 `json:"MaxResults,omitempty"`
}

// SearchUsersResponse is the output of SearchUsers.
type SearchUsersResponse struct {
	Users                 []User `json:"Users,omitempty"`
	ApproximateTotalCount *int64 `json:"ApproximateTotalCount,omitempty"`
	NextToken             string `json:"NextToken,omitempty"`
}

// DeleteUserRequest is the input of DeleteUser. The service requires InstanceID and UserID.
type DeleteUserRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	UserID     string `json:"UserId,omitempty"`
}

// UpdateUserIdentityInfoRequest is the input of UpdateUserIdentityInfo. The service requires
// InstanceID, UserID and IdentityInfo.
type UpdateUserIdentityInfoRequest struct {
	InstanceID   string            `json:"InstanceId,omitempty"`
	UserID       string            `json:"UserId,omitempty"`
	IdentityInfo *UserIdentityInfo `json:"IdentityInfo,omitempty"`
}

// UpdateUserPhoneConfigRequest is the input of UpdateUserPhoneConfig. The service requires
// InstanceID, UserID and PhoneConfig.
type UpdateUserPhoneConfigRequest struct {
	InstanceID  string           `json:"InstanceId,omitempty"`
	UserID      string           `json:"UserId,omitempty"`
	PhoneConfig *UserPhoneConfig `json:"PhoneConfig,omitempty"`
}

// UpdateUserRoutingProfileRequest is the input of UpdateUserRoutingProfile. The service requires
// InstanceID, UserID and RoutingProfileID.
type UpdateUserRoutingProfileRequest struct {
	InstanceID       string `json:"InstanceId,omitempty"`
	UserID           string `json:"UserId,omitempty"`
	RoutingProfileID string `json:"RoutingProfileId,omitempty"`
}

// UpdateUserSecurityProfilesRequest is the input of UpdateUserSecurityProfiles. The service
// requires InstanceID, UserID and SecurityProfileIDs.
type UpdateUserSecurityProfilesRequest struct {
	InstanceID         string   `json:"InstanceId,omitempty"`
	UserID             string   `json:"UserId,omitempty"`
	SecurityProfileIDs []string `json:"SecurityProfileIds,omitempty"`
}

// UpdateUserHierarchyRequest is the input of UpdateUserHierarchy. The service requires InstanceID
// and UserID.
type UpdateUserHierarchyRequest struct {
	InstanceID       string `json:"InstanceId,omitempty"`
	UserID           string `json:"UserId,omitempty"`
	HierarchyGroupID string `json:"HierarchyGroupId,omitempty"`
}

// PutUserStatusRequest is the input of PutUserStatus. The service requires InstanceID, UserID and
// AgentStatusID.
type PutUserStatusRequest struct {
	InstanceID    string `json:"InstanceId,omitempty"`
	UserID        string `json:"UserId,omitempty"`
	AgentStatusID string `json:"AgentStatusId,omitempty"`
}

// PutUserStatusResponse is the output of PutUserStatus.
type PutUserStatusResponse struct {
	UserID string `json:"UserId,omitempty"`
}

// DismissUserContactRequest is the input of DismissUserContact. The service requires InstanceID,
// UserID and ContactID.
type DismissUserContactRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	UserID     string `json:"UserId,omitempty"`
	ContactID  string `json:"ContactId,omitempty"`
}

// DismissUserContactResponse is the output of DismissUserContact.
type DismissUserContactResponse struct{}

// GetCurrentUserDataRequest is the input of GetCurrentUserData. The service requires InstanceID and
// Filters.
type GetCurrentUserDataRequest struct {
	InstanceID string           `json:"InstanceId,omitempty"`
	Filters    *UserDataFilters `json:"Filters,omitempty"`
	NextToken  string           `json:"NextToken,omitempty"`
	MaxResults *int32           `json:"MaxResults,omitempty"`
}

// GetCurrentUserDataResponse is the output of GetCurrentUserData.
type GetCurrentUserDataResponse struct {
	UserDataList          []UserData `json:"UserDataList,omitempty"`
	ApproximateTotalCount *int64     `json:"ApproximateTotalCount,omitempty"`
	NextToken             string     `json:"NextToken,omitempty"`
}

// GetFederationTokenRequest is the input of GetFederationToken. The service requires InstanceID.
type GetFederationTokenRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
}

// GetFederationTokenResponse is the output of GetFederationToken.
type GetFederationTokenResponse struct {
	Credentials *Credentials `json:"Credentials,omitempty"`
	SignInURL   string       `json:"SignInUrl,omitempty"`
	UserARN     string       `json:"UserArn,omitempty"`
	UserID      string       `json:"UserId,omitempty"`
}
