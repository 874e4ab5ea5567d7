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

import (
	"context"
)

func (c *client) CreateInstance(ctx context.Context, request *CreateInstanceRequest) (*CreateInstanceResponse, error) {
	response := new(CreateInstanceResponse)
	if err := c.invoke(ctx, opCreateInstance, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DeleteInstance(ctx context.Context, request *DeleteInstanceRequest) error {
	return c.invoke(ctx, opDeleteInstance, request, nil)
}

func (c *client) DescribeInstance(ctx context.Context, request *DescribeInstanceRequest) (*DescribeInstanceResponse, error) {
	response := new(DescribeInstanceResponse)
	if err := c.invoke(ctx, opDescribeInstance, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListInstances(ctx context.Context, request *ListInstancesRequest) (*ListInstancesResponse, error) {
	response := new(ListInstancesResponse)
	if err := c.invoke(ctx, opListInstances, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribeInstanceAttribute(ctx context.Context, request *DescribeInstanceAttributeRequest) (*DescribeInstanceAttributeResponse, error) {
	response := new(DescribeInstanceAttributeResponse)
	if err := c.invoke(ctx, opDescribeInstanceAttribute, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateInstanceAttribute(ctx context.Context, request *UpdateInstanceAttributeRequest) error {
	return c.invoke(ctx, opUpdateInstanceAttribute, request, nil)
}

func (c *client) ListInstanceAttributes(ctx context.Context, request *ListInstanceAttributesRequest) (*ListInstanceAttributesResponse, error) {
	response := new(ListInstanceAttributesResponse)
	if err := c.invoke(ctx, opListInstanceAttributes, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) AssociateInstanceStorageConfig(ctx context.Context, request *AssociateInstanceStorageConfigRequest) (*AssociateInstanceStorageConfigResponse, error) {
	response := new(AssociateInstanceStorageConfigResponse)
	if err := c.invoke(ctx, opAssociateInstanceStorageConfig, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribeInstanceStorageConfig(ctx context.Context, request *DescribeInstanceStorageConfigRequest) (*DescribeInstanceStorageConfigResponse, error) {
	response := new(DescribeInstanceStorageConfigResponse)
	if err := c.invoke(ctx, opDescribeInstanceStorageConfig, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateInstanceStorageConfig(ctx context.Context, request *UpdateInstanceStorageConfigRequest) error {
	return c.invoke(ctx, opUpdateInstanceStorageConfig, request, nil)
}

func (c *client) DisassociateInstanceStorageConfig(ctx context.Context, request *DisassociateInstanceStorageConfigRequest) error {
	return c.invoke(ctx, opDisassociateInstanceStorageConfig, request, nil)
}

func (c *client) ListInstanceStorageConfigs(ctx context.Context, request *ListInstanceStorageConfigsRequest) (*ListInstanceStorageConfigsResponse, error) {
	response := new(ListInstanceStorageConfigsResponse)
	if err := c.invoke(ctx, opListInstanceStorageConfigs, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) AssociateApprovedOrigin(ctx context.Context, request *AssociateApprovedOriginRequest) error {
	return c.invoke(ctx, opAssociateApprovedOrigin, request, nil)
}

func (c *client) DisassociateApprovedOrigin(ctx context.Context, request *DisassociateApprovedOriginRequest) error {
	return c.invoke(ctx, opDisassociateApprovedOrigin, request, nil)
}

func (c *client) ListApprovedOrigins(ctx context.Context, request *ListApprovedOriginsRequest) (*ListApprovedOriginsResponse, error) {
	response := new(ListApprovedOriginsResponse)
	if err := c.invoke(ctx, opListApprovedOrigins, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) AssociateSecurityKey(ctx context.Context, request *AssociateSecurityKeyRequest) (*AssociateSecurityKeyResponse, error) {
	response := new(AssociateSecurityKeyResponse)
	if err := c.invoke(ctx, opAssociateSecurityKey, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DisassociateSecurityKey(ctx context.Context, request *DisassociateSecurityKeyRequest) error {
	return c.invoke(ctx, opDisassociateSecurityKey, request, nil)
}

func (c *client) ListSecurityKeys(ctx context.Context, request *ListSecurityKeysRequest) (*ListSecurityKeysResponse, error) {
	response := new(ListSecurityKeysResponse)
	if err := c.invoke(ctx, opListSecurityKeys, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) AssociateLambdaFunction(ctx context.Context, request *AssociateLambdaFunctionRequest) error {
	return c.invoke(ctx, opAssociateLambdaFunction, request, nil)
}

func (c *client) DisassociateLambdaFunction(ctx context.Context, request *DisassociateLambdaFunctionRequest) error {
	return c.invoke(ctx, opDisassociateLambdaFunction, request, nil)
}

func (c *client) ListLambdaFunctions(ctx context.Context, request *ListLambdaFunctionsRequest) (*ListLambdaFunctionsResponse, error) {
	response := new(ListLambdaFunctionsResponse)
	if err := c.invoke(ctx, opListLambdaFunctions, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) AssociateLexBot(ctx context.Context, request *AssociateLexBotRequest) error {
	return c.invoke(ctx, opAssociateLexBot, request, nil)
}

func (c *client) DisassociateLexBot(ctx context.Context, request *DisassociateLexBotRequest) error {
	return c.invoke(ctx, opDisassociateLexBot, request, nil)
}

func (c *client) ListLexBots(ctx context.Context, request *ListLexBotsRequest) (*ListLexBotsResponse, error) {
	response := new(ListLexBotsResponse)
	if err := c.invoke(ctx, opListLexBots, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) AssociateBot(ctx context.Context, request *AssociateBotRequest) error {
	return c.invoke(ctx, opAssociateBot, request, nil)
}

func (c *client) DisassociateBot(ctx context.Context, request *DisassociateBotRequest) error {
	return c.invoke(ctx, opDisassociateBot, request, nil)
}

func (c *client) ListBots(ctx context.Context, request *ListBotsRequest) (*ListBotsResponse, error) {
	response := new(ListBotsResponse)
	if err := c.invoke(ctx, opListBots, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ReplicateInstance(ctx context.Context, request *ReplicateInstanceRequest) (*ReplicateInstanceResponse, error) {
	response := new(ReplicateInstanceResponse)
	if err := c.invoke(ctx, opReplicateInstance, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) CreateContactFlow(ctx context.Context, request *CreateContactFlowRequest) (*CreateContactFlowResponse, error) {
	response := new(CreateContactFlowResponse)
	if err := c.invoke(ctx, opCreateContactFlow, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribeContactFlow(ctx context.Context, request *DescribeContactFlowRequest) (*DescribeContactFlowResponse, error) {
	response := new(DescribeContactFlowResponse)
	if err := c.invoke(ctx, opDescribeContactFlow, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListContactFlows(ctx context.Context, request *ListContactFlowsRequest) (*ListContactFlowsResponse, error) {
	response := new(ListContactFlowsResponse)
	if err := c.invoke(ctx, opListContactFlows, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateContactFlowContent(ctx context.Context, request *UpdateContactFlowContentRequest) error {
	return c.invoke(ctx, opUpdateContactFlowContent, request, nil)
}

func (c *client) UpdateContactFlowMetadata(ctx context.Context, request *UpdateContactFlowMetadataRequest) error {
	return c.invoke(ctx, opUpdateContactFlowMetadata, request, nil)
}

func (c *client) UpdateContactFlowName(ctx context.Context, request *UpdateContactFlowNameRequest) error {
	return c.invoke(ctx, opUpdateContactFlowName, request, nil)
}

func (c *client) DeleteContactFlow(ctx context.Context, request *DeleteContactFlowRequest) error {
	return c.invoke(ctx, opDeleteContactFlow, request, nil)
}

func (c *client) CreateContactFlowModule(ctx context.Context, request *CreateContactFlowModuleRequest) (*CreateContactFlowModuleResponse, error) {
	response := new(CreateContactFlowModuleResponse)
	if err := c.invoke(ctx, opCreateContactFlowModule, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribeContactFlowModule(ctx context.Context, request *DescribeContactFlowModuleRequest) (*DescribeContactFlowModuleResponse, error) {
	response := new(DescribeContactFlowModuleResponse)
	if err := c.invoke(ctx, opDescribeContactFlowModule, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListContactFlowModules(ctx context.Context, request *ListContactFlowModulesRequest) (*ListContactFlowModulesResponse, error) {
	response := new(ListContactFlowModulesResponse)
	if err := c.invoke(ctx, opListContactFlowModules, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateContactFlowModuleContent(ctx context.Context, request *UpdateContactFlowModuleContentRequest) error {
	return c.invoke(ctx, opUpdateContactFlowModuleContent, request, nil)
}

func (c *client) UpdateContactFlowModuleMetadata(ctx context.Context, request *UpdateContactFlowModuleMetadataRequest) error {
	return c.invoke(ctx, opUpdateContactFlowModuleMetadata, request, nil)
}

func (c *client) DeleteContactFlowModule(ctx context.Context, request *DeleteContactFlowModuleRequest) error {
	return c.invoke(ctx, opDeleteContactFlowModule, request, nil)
}

func (c *client) CreateQueue(ctx context.Context, request *CreateQueueRequest) (*CreateQueueResponse, error) {
	response := new(CreateQueueResponse)
	if err := c.invoke(ctx, opCreateQueue, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribeQueue(ctx context.Context, request *DescribeQueueRequest) (*DescribeQueueResponse, error) {
	response := new(DescribeQueueResponse)
	if err := c.invoke(ctx, opDescribeQueue, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListQueues(ctx context.Context, request *ListQueuesRequest) (*ListQueuesResponse, error) {
	response := new(ListQueuesResponse)
	if err := c.invoke(ctx, opListQueues, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) SearchQueues(ctx context.Context, request *SearchQueuesRequest) (*SearchQueuesResponse, error) {
	response := new(SearchQueuesResponse)
	if err := c.invoke(ctx, opSearchQueues, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateQueueHoursOfOperation(ctx context.Context, request *UpdateQueueHoursOfOperationRequest) error {
	return c.invoke(ctx, opUpdateQueueHoursOfOperation, request, nil)
}

func (c *client) UpdateQueueMaxContacts(ctx context.Context, request *UpdateQueueMaxContactsRequest) error {
	return c.invoke(ctx, opUpdateQueueMaxContacts, request, nil)
}

func (c *client) UpdateQueueName(ctx context.Context, request *UpdateQueueNameRequest) error {
	return c.invoke(ctx, opUpdateQueueName, request, nil)
}

func (c *client) UpdateQueueOutboundCallerConfig(ctx context.Context, request *UpdateQueueOutboundCallerConfigRequest) error {
	return c.invoke(ctx, opUpdateQueueOutboundCallerConfig, request, nil)
}

func (c *client) UpdateQueueStatus(ctx context.Context, request *UpdateQueueStatusRequest) error {
	return c.invoke(ctx, opUpdateQueueStatus, request, nil)
}

func (c *client) AssociateQueueQuickConnects(ctx context.Context, request *AssociateQueueQuickConnectsRequest) error {
	return c.invoke(ctx, opAssociateQueueQuickConnects, request, nil)
}

func (c *client) DisassociateQueueQuickConnects(ctx context.Context, request *DisassociateQueueQuickConnectsRequest) error {
	return c.invoke(ctx, opDisassociateQueueQuickConnects, request, nil)
}

func (c *client) ListQueueQuickConnects(ctx context.Context, request *ListQueueQuickConnectsRequest) (*ListQueueQuickConnectsResponse, error) {
	response := new(ListQueueQuickConnectsResponse)
	if err := c.invoke(ctx, opListQueueQuickConnects, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) CreateRoutingProfile(ctx context.Context, request *CreateRoutingProfileRequest) (*CreateRoutingProfileResponse, error) {
	response := new(CreateRoutingProfileResponse)
	if err := c.invoke(ctx, opCreateRoutingProfile, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribeRoutingProfile(ctx context.Context, request *DescribeRoutingProfileRequest) (*DescribeRoutingProfileResponse, error) {
	response := new(DescribeRoutingProfileResponse)
	if err := c.invoke(ctx, opDescribeRoutingProfile, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListRoutingProfiles(ctx context.Context, request *ListRoutingProfilesRequest) (*ListRoutingProfilesResponse, error) {
	response := new(ListRoutingProfilesResponse)
	if err := c.invoke(ctx, opListRoutingProfiles, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) SearchRoutingProfiles(ctx context.Context, request *SearchRoutingProfilesRequest) (*SearchRoutingProfilesResponse, error) {
	response := new(SearchRoutingProfilesResponse)
	if err := c.invoke(ctx, opSearchRoutingProfiles, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateRoutingProfileConcurrency(ctx context.Context, request *UpdateRoutingProfileConcurrencyRequest) error {
	return c.invoke(ctx, opUpdateRoutingProfileConcurrency, request, nil)
}

func (c *client) UpdateRoutingProfileDefaultOutboundQueue(ctx context.Context, request *UpdateRoutingProfileDefaultOutboundQueueRequest) error {
	return c.invoke(ctx, opUpdateRoutingProfileDefaultOutboundQueue, request, nil)
}

func (c *client) UpdateRoutingProfileName(ctx context.Context, request *UpdateRoutingProfileNameRequest) error {
	return c.invoke(ctx, opUpdateRoutingProfileName, request, nil)
}

func (c *client) UpdateRoutingProfileQueues(ctx context.Context, request *UpdateRoutingProfileQueuesRequest) error {
	return c.invoke(ctx, opUpdateRoutingProfileQueues, request, nil)
}

func (c *client) AssociateRoutingProfileQueues(ctx context.Context, request *AssociateRoutingProfileQueuesRequest) error {
	return c.invoke(ctx, opAssociateRoutingProfileQueues, request, nil)
}

func (c *client) DisassociateRoutingProfileQueues(ctx context.Context, request *DisassociateRoutingProfileQueuesRequest) error {
	return c.invoke(ctx, opDisassociateRoutingProfileQueues, request, nil)
}

func (c *client) ListRoutingProfileQueues(ctx context.Context, request *ListRoutingProfileQueuesRequest) (*ListRoutingProfileQueuesResponse, error) {
	response := new(ListRoutingProfileQueuesResponse)
	if err := c.invoke(ctx, opListRoutingProfileQueues, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) CreateQuickConnect(ctx context.Context, request *CreateQuickConnectRequest) (*CreateQuickConnectResponse, error) {
	response := new(CreateQuickConnectResponse)
	if err := c.invoke(ctx, opCreateQuickConnect, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribeQuickConnect(ctx context.Context, request *DescribeQuickConnectRequest) (*DescribeQuickConnectResponse, error) {
	response := new(DescribeQuickConnectResponse)
	if err := c.invoke(ctx, opDescribeQuickConnect, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListQuickConnects(ctx context.Context, request *ListQuickConnectsRequest) (*ListQuickConnectsResponse, error) {
	response := new(ListQuickConnectsResponse)
	if err := c.invoke(ctx, opListQuickConnects, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) SearchQuickConnects(ctx context.Context, request *SearchQuickConnectsRequest) (*SearchQuickConnectsResponse, error) {
	response := new(SearchQuickConnectsResponse)
	if err := c.invoke(ctx, opSearchQuickConnects, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateQuickConnectConfig(ctx context.Context, request *UpdateQuickConnectConfigRequest) error {
	return c.invoke(ctx, opUpdateQuickConnectConfig, request, nil)
}

func (c *client) UpdateQuickConnectName(ctx context.Context, request *UpdateQuickConnectNameRequest) error {
	return c.invoke(ctx, opUpdateQuickConnectName, request, nil)
}

func (c *client) DeleteQuickConnect(ctx context.Context, request *DeleteQuickConnectRequest) error {
	return c.invoke(ctx, opDeleteQuickConnect, request, nil)
}

func (c *client) CreateUser(ctx context.Context, request *CreateUserRequest) (*CreateUserResponse, error) {
	response := new(CreateUserResponse)
	if err := c.invoke(ctx, opCreateUser, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribeUser(ctx context.Context, request *DescribeUserRequest) (*DescribeUserResponse, error) {
	response := new(DescribeUserResponse)
	if err := c.invoke(ctx, opDescribeUser, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListUsers(ctx context.Context, request *ListUsersRequest) (*ListUsersResponse, error) {
	response := new(ListUsersResponse)
	if err := c.invoke(ctx, opListUsers, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) SearchUsers(ctx context.Context, request *SearchUsersRequest) (*SearchUsersResponse, error) {
	response := new(SearchUsersResponse)
	if err := c.invoke(ctx, opSearchUsers, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DeleteUser(ctx context.Context, request *DeleteUserRequest) error {
	return c.invoke(ctx, opDeleteUser, request, nil)
}

func (c *client) UpdateUserIdentityInfo(ctx context.Context, request *UpdateUserIdentityInfoRequest) error {
	return c.invoke(ctx, opUpdateUserIdentityInfo, request, nil)
}

func (c *client) UpdateUserPhoneConfig(ctx context.Context, request *UpdateUserPhoneConfigRequest) error {
	return c.invoke(ctx, opUpdateUserPhoneConfig, request, nil)
}

func (c *client) UpdateUserRoutingProfile(ctx context.Context, request *UpdateUserRoutingProfileRequest) error {
	return c.invoke(ctx, opUpdateUserRoutingProfile, request, nil)
}

func (c *client) UpdateUserSecurityProfiles(ctx context.Context, request *UpdateUserSecurityProfilesRequest) error {
	return c.invoke(ctx, opUpdateUserSecurityProfiles, request, nil)
}

func (c *client) UpdateUserHierarchy(ctx context.Context, request *UpdateUserHierarchyRequest) error {
	return c.invoke(ctx, opUpdateUserHierarchy, request, nil)
}

func (c *client) PutUserStatus(ctx context.Context, request *PutUserStatusRequest) (*PutUserStatusResponse, error) {
	response := new(PutUserStatusResponse)
	if err := c.invoke(ctx, opPutUserStatus, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DismissUserContact(ctx context.Context, request *DismissUserContactRequest) (*DismissUserContactResponse, error) {
	response := new(DismissUserContactResponse)
	if err := c.invoke(ctx, opDismissUserContact, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) GetCurrentUserData(ctx context.Context, request *GetCurrentUserDataRequest) (*GetCurrentUserDataResponse, error) {
	response := new(GetCurrentUserDataResponse)
	if err := c.invoke(ctx, opGetCurrentUserData, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) GetFederationToken(ctx context.Context, request *GetFederationTokenRequest) (*GetFederationTokenResponse, error) {
	response := new(GetFederationTokenResponse)
	if err := c.invoke(ctx, opGetFederationToken, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) CreateUserHierarchyGroup(ctx context.Context, request *CreateUserHierarchyGroupRequest) (*CreateUserHierarchyGroupResponse, error) {
	response := new(CreateUserHierarchyGroupResponse)
	if err := c.invoke(ctx, opCreateUserHierarchyGroup, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribeUserHierarchyGroup(ctx context.Context, request *DescribeUserHierarchyGroupRequest) (*DescribeUserHierarchyGroupResponse, error) {
	response := new(DescribeUserHierarchyGroupResponse)
	if err := c.invoke(ctx, opDescribeUserHierarchyGroup, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListUserHierarchyGroups(ctx context.Context, request *ListUserHierarchyGroupsRequest) (*ListUserHierarchyGroupsResponse, error) {
	response := new(ListUserHierarchyGroupsResponse)
	if err := c.invoke(ctx, opListUserHierarchyGroups, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateUserHierarchyGroupName(ctx context.Context, request *UpdateUserHierarchyGroupNameRequest) error {
	return c.invoke(ctx, opUpdateUserHierarchyGroupName, request, nil)
}

func (c *client) DeleteUserHierarchyGroup(ctx context.Context, request *DeleteUserHierarchyGroupRequest) error {
	return c.invoke(ctx, opDeleteUserHierarchyGroup, request, nil)
}

func (c *client) DescribeUserHierarchyStructure(ctx context.Context, request *DescribeUserHierarchyStructureRequest) (*DescribeUserHierarchyStructureResponse, error) {
	response := new(DescribeUserHierarchyStructureResponse)
	if err := c.invoke(ctx, opDescribeUserHierarchyStructure, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateUserHierarchyStructure(ctx context.Context, request *UpdateUserHierarchyStructureRequest) error {
	return c.invoke(ctx, opUpdateUserHierarchyStructure, request, nil)
}

func (c *client) CreateSecurityProfile(ctx context.Context, request *CreateSecurityProfileRequest) (*CreateSecurityProfileResponse, error) {
	response := new(CreateSecurityProfileResponse)
	if err := c.invoke(ctx, opCreateSecurityProfile, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribeSecurityProfile(ctx context.Context, request *DescribeSecurityProfileRequest) (*DescribeSecurityProfileResponse, error) {
	response := new(DescribeSecurityProfileResponse)
	if err := c.invoke(ctx, opDescribeSecurityProfile, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListSecurityProfiles(ctx context.Context, request *ListSecurityProfilesRequest) (*ListSecurityProfilesResponse, error) {
	response := new(ListSecurityProfilesResponse)
	if err := c.invoke(ctx, opListSecurityProfiles, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) SearchSecurityProfiles(ctx context.Context, request *SearchSecurityProfilesRequest) (*SearchSecurityProfilesResponse, error) {
	response := new(SearchSecurityProfilesResponse)
	if err := c.invoke(ctx, opSearchSecurityProfiles, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListSecurityProfilePermissions(ctx context.Context, request *ListSecurityProfilePermissionsRequest) (*ListSecurityProfilePermissionsResponse, error) {
	response := new(ListSecurityProfilePermissionsResponse)
	if err := c.invoke(ctx, opListSecurityProfilePermissions, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateSecurityProfile(ctx context.Context, request *UpdateSecurityProfileRequest) error {
	return c.invoke(ctx, opUpdateSecurityProfile, request, nil)
}

func (c *client) DeleteSecurityProfile(ctx context.Context, request *DeleteSecurityProfileRequest) error {
	return c.invoke(ctx, opDeleteSecurityProfile, request, nil)
}

func (c *client) ClaimPhoneNumber(ctx context.Context, request *ClaimPhoneNumberRequest) (*ClaimPhoneNumberResponse, error) {
	response := new(ClaimPhoneNumberResponse)
	if err := c.invoke(ctx, opClaimPhoneNumber, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribePhoneNumber(ctx context.Context, request *DescribePhoneNumberRequest) (*DescribePhoneNumberResponse, error) {
	response := new(DescribePhoneNumberResponse)
	if err := c.invoke(ctx, opDescribePhoneNumber, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListPhoneNumbers(ctx context.Context, request *ListPhoneNumbersRequest) (*ListPhoneNumbersResponse, error) {
	response := new(ListPhoneNumbersResponse)
	if err := c.invoke(ctx, opListPhoneNumbers, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListPhoneNumbersV2(ctx context.Context, request *ListPhoneNumbersV2Request) (*ListPhoneNumbersV2Response, error) {
	response := new(ListPhoneNumbersV2Response)
	if err := c.invoke(ctx, opListPhoneNumbersV2, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) SearchAvailablePhoneNumbers(ctx context.Context, request *SearchAvailablePhoneNumbersRequest) (*SearchAvailablePhoneNumbersResponse, error) {
	response := new(SearchAvailablePhoneNumbersResponse)
	if err := c.invoke(ctx, opSearchAvailablePhoneNumbers, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdatePhoneNumber(ctx context.Context, request *UpdatePhoneNumberRequest) (*UpdatePhoneNumberResponse, error) {
	response := new(UpdatePhoneNumberResponse)
	if err := c.invoke(ctx, opUpdatePhoneNumber, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ReleasePhoneNumber(ctx context.Context, request *ReleasePhoneNumberRequest) error {
	return c.invoke(ctx, opReleasePhoneNumber, request, nil)
}

func (c *client) AssociatePhoneNumberContactFlow(ctx context.Context, request *AssociatePhoneNumberContactFlowRequest) error {
	return c.invoke(ctx, opAssociatePhoneNumberContactFlow, request, nil)
}

func (c *client) DisassociatePhoneNumberContactFlow(ctx context.Context, request *DisassociatePhoneNumberContactFlowRequest) error {
	return c.invoke(ctx, opDisassociatePhoneNumberContactFlow, request, nil)
}

func (c *client) CreateTrafficDistributionGroup(ctx context.Context, request *CreateTrafficDistributionGroupRequest) (*CreateTrafficDistributionGroupResponse, error) {
	response := new(CreateTrafficDistributionGroupResponse)
	if err := c.invoke(ctx, opCreateTrafficDistributionGroup, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribeTrafficDistributionGroup(ctx context.Context, request *DescribeTrafficDistributionGroupRequest) (*DescribeTrafficDistributionGroupResponse, error) {
	response := new(DescribeTrafficDistributionGroupResponse)
	if err := c.invoke(ctx, opDescribeTrafficDistributionGroup, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListTrafficDistributionGroups(ctx context.Context, request *ListTrafficDistributionGroupsRequest) (*ListTrafficDistributionGroupsResponse, error) {
	response := new(ListTrafficDistributionGroupsResponse)
	if err := c.invoke(ctx, opListTrafficDistributionGroups, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DeleteTrafficDistributionGroup(ctx context.Context, request *DeleteTrafficDistributionGroupRequest) error {
	return c.invoke(ctx, opDeleteTrafficDistributionGroup, request, nil)
}

func (c *client) GetTrafficDistribution(ctx context.Context, request *GetTrafficDistributionRequest) (*GetTrafficDistributionResponse, error) {
	response := new(GetTrafficDistributionResponse)
	if err := c.invoke(ctx, opGetTrafficDistribution, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateTrafficDistribution(ctx context.Context, request *UpdateTrafficDistributionRequest) error {
	return c.invoke(ctx, opUpdateTrafficDistribution, request, nil)
}

func (c *client) CreatePrompt(ctx context.Context, request *CreatePromptRequest) (*CreatePromptResponse, error) {
	response := new(CreatePromptResponse)
	if err := c.invoke(ctx, opCreatePrompt, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribePrompt(ctx context.Context, request *DescribePromptRequest) (*DescribePromptResponse, error) {
	response := new(DescribePromptResponse)
	if err := c.invoke(ctx, opDescribePrompt, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListPrompts(ctx context.Context, request *ListPromptsRequest) (*ListPromptsResponse, error) {
	response := new(ListPromptsResponse)
	if err := c.invoke(ctx, opListPrompts, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) GetPromptFile(ctx context.Context, request *GetPromptFileRequest) (*GetPromptFileResponse, error) {
	response := new(GetPromptFileResponse)
	if err := c.invoke(ctx, opGetPromptFile, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdatePrompt(ctx context.Context, request *UpdatePromptRequest) (*UpdatePromptResponse, error) {
	response := new(UpdatePromptResponse)
	if err := c.invoke(ctx, opUpdatePrompt, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DeletePrompt(ctx context.Context, request *DeletePromptRequest) error {
	return c.invoke(ctx, opDeletePrompt, request, nil)
}

func (c *client) CreateVocabulary(ctx context.Context, request *CreateVocabularyRequest) (*CreateVocabularyResponse, error) {
	response := new(CreateVocabularyResponse)
	if err := c.invoke(ctx, opCreateVocabulary, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribeVocabulary(ctx context.Context, request *DescribeVocabularyRequest) (*DescribeVocabularyResponse, error) {
	response := new(DescribeVocabularyResponse)
	if err := c.invoke(ctx, opDescribeVocabulary, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) SearchVocabularies(ctx context.Context, request *SearchVocabulariesRequest) (*SearchVocabulariesResponse, error) {
	response := new(SearchVocabulariesResponse)
	if err := c.invoke(ctx, opSearchVocabularies, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DeleteVocabulary(ctx context.Context, request *DeleteVocabularyRequest) (*DeleteVocabularyResponse, error) {
	response := new(DeleteVocabularyResponse)
	if err := c.invoke(ctx, opDeleteVocabulary, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) AssociateDefaultVocabulary(ctx context.Context, request *AssociateDefaultVocabularyRequest) (*AssociateDefaultVocabularyResponse, error) {
	response := new(AssociateDefaultVocabularyResponse)
	if err := c.invoke(ctx, opAssociateDefaultVocabulary, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListDefaultVocabularies(ctx context.Context, request *ListDefaultVocabulariesRequest) (*ListDefaultVocabulariesResponse, error) {
	response := new(ListDefaultVocabulariesResponse)
	if err := c.invoke(ctx, opListDefaultVocabularies, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) CreateEvaluationForm(ctx context.Context, request *CreateEvaluationFormRequest) (*CreateEvaluationFormResponse, error) {
	response := new(CreateEvaluationFormResponse)
	if err := c.invoke(ctx, opCreateEvaluationForm, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribeEvaluationForm(ctx context.Context, request *DescribeEvaluationFormRequest) (*DescribeEvaluationFormResponse, error) {
	response := new(DescribeEvaluationFormResponse)
	if err := c.invoke(ctx, opDescribeEvaluationForm, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListEvaluationForms(ctx context.Context, request *ListEvaluationFormsRequest) (*ListEvaluationFormsResponse, error) {
	response := new(ListEvaluationFormsResponse)
	if err := c.invoke(ctx, opListEvaluationForms, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListEvaluationFormVersions(ctx context.Context, request *ListEvaluationFormVersionsRequest) (*ListEvaluationFormVersionsResponse, error) {
	response := new(ListEvaluationFormVersionsResponse)
	if err := c.invoke(ctx, opListEvaluationFormVersions, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateEvaluationForm(ctx context.Context, request *UpdateEvaluationFormRequest) (*UpdateEvaluationFormResponse, error) {
	response := new(UpdateEvaluationFormResponse)
	if err := c.invoke(ctx, opUpdateEvaluationForm, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DeleteEvaluationForm(ctx context.Context, request *DeleteEvaluationFormRequest) error {
	return c.invoke(ctx, opDeleteEvaluationForm, request, nil)
}

func (c *client) ActivateEvaluationForm(ctx context.Context, request *ActivateEvaluationFormRequest) (*ActivateEvaluationFormResponse, error) {
	response := new(ActivateEvaluationFormResponse)
	if err := c.invoke(ctx, opActivateEvaluationForm, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DeactivateEvaluationForm(ctx context.Context, request *DeactivateEvaluationFormRequest) (*DeactivateEvaluationFormResponse, error) {
	response := new(DeactivateEvaluationFormResponse)
	if err := c.invoke(ctx, opDeactivateEvaluationForm, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) StartContactEvaluation(ctx context.Context, request *StartContactEvaluationRequest) (*StartContactEvaluationResponse, error) {
	response := new(StartContactEvaluationResponse)
	if err := c.invoke(ctx, opStartContactEvaluation, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribeContactEvaluation(ctx context.Context, request *DescribeContactEvaluationRequest) (*DescribeContactEvaluationResponse, error) {
	response := new(DescribeContactEvaluationResponse)
	if err := c.invoke(ctx, opDescribeContactEvaluation, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListContactEvaluations(ctx context.Context, request *ListContactEvaluationsRequest) (*ListContactEvaluationsResponse, error) {
	response := new(ListContactEvaluationsResponse)
	if err := c.invoke(ctx, opListContactEvaluations, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateContactEvaluation(ctx context.Context, request *UpdateContactEvaluationRequest) (*UpdateContactEvaluationResponse, error) {
	response := new(UpdateContactEvaluationResponse)
	if err := c.invoke(ctx, opUpdateContactEvaluation, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) SubmitContactEvaluation(ctx context.Context, request *SubmitContactEvaluationRequest) (*SubmitContactEvaluationResponse, error) {
	response := new(SubmitContactEvaluationResponse)
	if err := c.invoke(ctx, opSubmitContactEvaluation, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DeleteContactEvaluation(ctx context.Context, request *DeleteContactEvaluationRequest) error {
	return c.invoke(ctx, opDeleteContactEvaluation, request, nil)
}

func (c *client) StartChatContact(ctx context.Context, request *StartChatContactRequest) (*StartChatContactResponse, error) {
	response := new(StartChatContactResponse)
	if err := c.invoke(ctx, opStartChatContact, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) StartTaskContact(ctx context.Context, request *StartTaskContactRequest) (*StartTaskContactResponse, error) {
	response := new(StartTaskContactResponse)
	if err := c.invoke(ctx, opStartTaskContact, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) StartOutboundVoiceContact(ctx context.Context, request *StartOutboundVoiceContactRequest) (*StartOutboundVoiceContactResponse, error) {
	response := new(StartOutboundVoiceContactResponse)
	if err := c.invoke(ctx, opStartOutboundVoiceContact, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) StopContact(ctx context.Context, request *StopContactRequest) (*StopContactResponse, error) {
	response := new(StopContactResponse)
	if err := c.invoke(ctx, opStopContact, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) TransferContact(ctx context.Context, request *TransferContactRequest) (*TransferContactResponse, error) {
	response := new(TransferContactResponse)
	if err := c.invoke(ctx, opTransferContact, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) MonitorContact(ctx context.Context, request *MonitorContactRequest) (*MonitorContactResponse, error) {
	response := new(MonitorContactResponse)
	if err := c.invoke(ctx, opMonitorContact, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribeContact(ctx context.Context, request *DescribeContactRequest) (*DescribeContactResponse, error) {
	response := new(DescribeContactResponse)
	if err := c.invoke(ctx, opDescribeContact, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateContact(ctx context.Context, request *UpdateContactRequest) (*UpdateContactResponse, error) {
	response := new(UpdateContactResponse)
	if err := c.invoke(ctx, opUpdateContact, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateContactAttributes(ctx context.Context, request *UpdateContactAttributesRequest) (*UpdateContactAttributesResponse, error) {
	response := new(UpdateContactAttributesResponse)
	if err := c.invoke(ctx, opUpdateContactAttributes, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) GetContactAttributes(ctx context.Context, request *GetContactAttributesRequest) (*GetContactAttributesResponse, error) {
	response := new(GetContactAttributesResponse)
	if err := c.invoke(ctx, opGetContactAttributes, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateContactSchedule(ctx context.Context, request *UpdateContactScheduleRequest) (*UpdateContactScheduleResponse, error) {
	response := new(UpdateContactScheduleResponse)
	if err := c.invoke(ctx, opUpdateContactSchedule, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListContactReferences(ctx context.Context, request *ListContactReferencesRequest) (*ListContactReferencesResponse, error) {
	response := new(ListContactReferencesResponse)
	if err := c.invoke(ctx, opListContactReferences, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) StartContactRecording(ctx context.Context, request *StartContactRecordingRequest) (*StartContactRecordingResponse, error) {
	response := new(StartContactRecordingResponse)
	if err := c.invoke(ctx, opStartContactRecording, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) StopContactRecording(ctx context.Context, request *StopContactRecordingRequest) (*StopContactRecordingResponse, error) {
	response := new(StopContactRecordingResponse)
	if err := c.invoke(ctx, opStopContactRecording, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) SuspendContactRecording(ctx context.Context, request *SuspendContactRecordingRequest) (*SuspendContactRecordingResponse, error) {
	response := new(SuspendContactRecordingResponse)
	if err := c.invoke(ctx, opSuspendContactRecording, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ResumeContactRecording(ctx context.Context, request *ResumeContactRecordingRequest) (*ResumeContactRecordingResponse, error) {
	response := new(ResumeContactRecordingResponse)
	if err := c.invoke(ctx, opResumeContactRecording, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) StartContactStreaming(ctx context.Context, request *StartContactStreamingRequest) (*StartContactStreamingResponse, error) {
	response := new(StartContactStreamingResponse)
	if err := c.invoke(ctx, opStartContactStreaming, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) StopContactStreaming(ctx context.Context, request *StopContactStreamingRequest) (*StopContactStreamingResponse, error) {
	response := new(StopContactStreamingResponse)
	if err := c.invoke(ctx, opStopContactStreaming, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) CreateParticipant(ctx context.Context, request *CreateParticipantRequest) (*CreateParticipantResponse, error) {
	response := new(CreateParticipantResponse)
	if err := c.invoke(ctx, opCreateParticipant, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateParticipantRoleConfig(ctx context.Context, request *UpdateParticipantRoleConfigRequest) (*UpdateParticipantRoleConfigResponse, error) {
	response := new(UpdateParticipantRoleConfigResponse)
	if err := c.invoke(ctx, opUpdateParticipantRoleConfig, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) TagResource(ctx context.Context, request *TagResourceRequest) error {
	return c.invoke(ctx, opTagResource, request, nil)
}

func (c *client) UntagResource(ctx context.Context, request *UntagResourceRequest) error {
	return c.invoke(ctx, opUntagResource, request, nil)
}

func (c *client) ListTagsForResource(ctx context.Context, request *ListTagsForResourceRequest) (*ListTagsForResourceResponse, error) {
	response := new(ListTagsForResourceResponse)
	if err := c.invoke(ctx, opListTagsForResource, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) SearchResourceTags(ctx context.Context, request *SearchResourceTagsRequest) (*SearchResourceTagsResponse, error) {
	response := new(SearchResourceTagsResponse)
	if err := c.invoke(ctx, opSearchResourceTags, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) CreateIntegrationAssociation(ctx context.Context, request *CreateIntegrationAssociationRequest) (*CreateIntegrationAssociationResponse, error) {
	response := new(CreateIntegrationAssociationResponse)
	if err := c.invoke(ctx, opCreateIntegrationAssociation, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DeleteIntegrationAssociation(ctx context.Context, request *DeleteIntegrationAssociationRequest) error {
	return c.invoke(ctx, opDeleteIntegrationAssociation, request, nil)
}

func (c *client) ListIntegrationAssociations(ctx context.Context, request *ListIntegrationAssociationsRequest) (*ListIntegrationAssociationsResponse, error) {
	response := new(ListIntegrationAssociationsResponse)
	if err := c.invoke(ctx, opListIntegrationAssociations, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) CreateUseCase(ctx context.Context, request *CreateUseCaseRequest) (*CreateUseCaseResponse, error) {
	response := new(CreateUseCaseResponse)
	if err := c.invoke(ctx, opCreateUseCase, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DeleteUseCase(ctx context.Context, request *DeleteUseCaseRequest) error {
	return c.invoke(ctx, opDeleteUseCase, request, nil)
}

func (c *client) ListUseCases(ctx context.Context, request *ListUseCasesRequest) (*ListUseCasesResponse, error) {
	response := new(ListUseCasesResponse)
	if err := c.invoke(ctx, opListUseCases, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) CreateHoursOfOperation(ctx context.Context, request *CreateHoursOfOperationRequest) (*CreateHoursOfOperationResponse, error) {
	response := new(CreateHoursOfOperationResponse)
	if err := c.invoke(ctx, opCreateHoursOfOperation, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribeHoursOfOperation(ctx context.Context, request *DescribeHoursOfOperationRequest) (*DescribeHoursOfOperationResponse, error) {
	response := new(DescribeHoursOfOperationResponse)
	if err := c.invoke(ctx, opDescribeHoursOfOperation, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListHoursOfOperations(ctx context.Context, request *ListHoursOfOperationsRequest) (*ListHoursOfOperationsResponse, error) {
	response := new(ListHoursOfOperationsResponse)
	if err := c.invoke(ctx, opListHoursOfOperations, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateHoursOfOperation(ctx context.Context, request *UpdateHoursOfOperationRequest) error {
	return c.invoke(ctx, opUpdateHoursOfOperation, request, nil)
}

func (c *client) DeleteHoursOfOperation(ctx context.Context, request *DeleteHoursOfOperationRequest) error {
	return c.invoke(ctx, opDeleteHoursOfOperation, request, nil)
}

func (c *client) CreateAgentStatus(ctx context.Context, request *CreateAgentStatusRequest) (*CreateAgentStatusResponse, error) {
	response := new(CreateAgentStatusResponse)
	if err := c.invoke(ctx, opCreateAgentStatus, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribeAgentStatus(ctx context.Context, request *DescribeAgentStatusRequest) (*DescribeAgentStatusResponse, error) {
	response := new(DescribeAgentStatusResponse)
	if err := c.invoke(ctx, opDescribeAgentStatus, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListAgentStatuses(ctx context.Context, request *ListAgentStatusesRequest) (*ListAgentStatusesResponse, error) {
	response := new(ListAgentStatusesResponse)
	if err := c.invoke(ctx, opListAgentStatuses, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateAgentStatus(ctx context.Context, request *UpdateAgentStatusRequest) error {
	return c.invoke(ctx, opUpdateAgentStatus, request, nil)
}

func (c *client) CreateRule(ctx context.Context, request *CreateRuleRequest) (*CreateRuleResponse, error) {
	response := new(CreateRuleResponse)
	if err := c.invoke(ctx, opCreateRule, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DescribeRule(ctx context.Context, request *DescribeRuleRequest) (*DescribeRuleResponse, error) {
	response := new(DescribeRuleResponse)
	if err := c.invoke(ctx, opDescribeRule, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListRules(ctx context.Context, request *ListRulesRequest) (*ListRulesResponse, error) {
	response := new(ListRulesResponse)
	if err := c.invoke(ctx, opListRules, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateRule(ctx context.Context, request *UpdateRuleRequest) error {
	return c.invoke(ctx, opUpdateRule, request, nil)
}

func (c *client) DeleteRule(ctx context.Context, request *DeleteRuleRequest) error {
	return c.invoke(ctx, opDeleteRule, request, nil)
}

func (c *client) CreateTaskTemplate(ctx context.Context, request *CreateTaskTemplateRequest) (*CreateTaskTemplateResponse, error) {
	response := new(CreateTaskTemplateResponse)
	if err := c.invoke(ctx, opCreateTaskTemplate, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) GetTaskTemplate(ctx context.Context, request *GetTaskTemplateRequest) (*GetTaskTemplateResponse, error) {
	response := new(GetTaskTemplateResponse)
	if err := c.invoke(ctx, opGetTaskTemplate, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) ListTaskTemplates(ctx context.Context, request *ListTaskTemplatesRequest) (*ListTaskTemplatesResponse, error) {
	response := new(ListTaskTemplatesResponse)
	if err := c.invoke(ctx, opListTaskTemplates, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) UpdateTaskTemplate(ctx context.Context, request *UpdateTaskTemplateRequest) (*UpdateTaskTemplateResponse, error) {
	response := new(UpdateTaskTemplateResponse)
	if err := c.invoke(ctx, opUpdateTaskTemplate, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) DeleteTaskTemplate(ctx context.Context, request *DeleteTaskTemplateRequest) error {
	return c.invoke(ctx, opDeleteTaskTemplate, request, nil)
}

func (c *client) GetCurrentMetricData(ctx context.Context, request *GetCurrentMetricDataRequest) (*GetCurrentMetricDataResponse, error) {
	response := new(GetCurrentMetricDataResponse)
	if err := c.invoke(ctx, opGetCurrentMetricData, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) GetMetricData(ctx context.Context, request *GetMetricDataRequest) (*GetMetricDataResponse, error) {
	response := new(GetMetricDataResponse)
	if err := c.invoke(ctx, opGetMetricData, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *client) GetMetricDataV2(ctx context.Context, request *GetMetricDataV2Request) (*GetMetricDataV2Response, error) {
	response := new(GetMetricDataV2Response)
	if err := c.invoke(ctx, opGetMetricDataV2, request, response); err != nil {
		return nil, err
	}
	return response, nil
}
