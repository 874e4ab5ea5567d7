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

var (
	opCreateInstance                           = newOperation("CreateInstance", FamilyInstance, Mutating, true, CreateInstanceRequest{}, CreateInstanceResponse{}, KindInternalService, KindInvalidRequest, KindResourceNotFound, KindServiceQuotaExceeded, KindThrottling)
	opDeleteInstance                           = newOperation("DeleteInstance", FamilyInstance, Destructive, false, DeleteInstanceRequest{}, nil, KindInternalService, KindInvalidRequest, KindResourceNotFound)
	opDescribeInstance                         = newOperation("DescribeInstance", FamilyInstance, ReadOnly, false, DescribeInstanceRequest{}, DescribeInstanceResponse{}, KindInternalService, KindInvalidRequest, KindResourceNotFound)
	opListInstances                            = newOperation("ListInstances", FamilyInstance, ReadOnly, false, ListInstancesRequest{}, ListInstancesResponse{}, KindInternalService, KindInvalidRequest)
	opDescribeInstanceAttribute                = newOperation("DescribeInstanceAttribute", FamilyInstance, ReadOnly, false, DescribeInstanceAttributeRequest{}, DescribeInstanceAttributeResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateInstanceAttribute                  = newOperation("UpdateInstanceAttribute", FamilyInstance, Mutating, false, UpdateInstanceAttributeRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListInstanceAttributes                   = newOperation("ListInstanceAttributes", FamilyInstance, ReadOnly, false, ListInstanceAttributesRequest{}, ListInstanceAttributesResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opAssociateInstanceStorageConfig           = newOperation("AssociateInstanceStorageConfig", FamilyInstance, Mutating, false, AssociateInstanceStorageConfigRequest{}, AssociateInstanceStorageConfigResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceConflict, KindResourceNotFound, KindThrottling)
	opDescribeInstanceStorageConfig            = newOperation("DescribeInstanceStorageConfig", FamilyInstance, ReadOnly, false, DescribeInstanceStorageConfigRequest{}, DescribeInstanceStorageConfigResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateInstanceStorageConfig              = newOperation("UpdateInstanceStorageConfig", FamilyInstance, Mutating, false, UpdateInstanceStorageConfigRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opDisassociateInstanceStorageConfig        = newOperation("DisassociateInstanceStorageConfig", FamilyInstance, Destructive, false, DisassociateInstanceStorageConfigRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListInstanceStorageConfigs               = newOperation("ListInstanceStorageConfigs", FamilyInstance, ReadOnly, false, ListInstanceStorageConfigsRequest{}, ListInstanceStorageConfigsResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opAssociateApprovedOrigin                  = newOperation("AssociateApprovedOrigin", FamilyInstance, Mutating, false, AssociateApprovedOriginRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceConflict, KindResourceNotFound, KindServiceQuotaExceeded, KindThrottling)
	opDisassociateApprovedOrigin               = newOperation("DisassociateApprovedOrigin", FamilyInstance, Destructive, false, DisassociateApprovedOriginRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListApprovedOrigins                      = newOperation("ListApprovedOrigins", FamilyInstance, ReadOnly, false, ListApprovedOriginsRequest{}, ListApprovedOriginsResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opAssociateSecurityKey                     = newOperation("AssociateSecurityKey", FamilyInstance, Mutating, false, AssociateSecurityKeyRequest{}, AssociateSecurityKeyResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceConflict, KindResourceNotFound, KindServiceQuotaExceeded, KindThrottling)
	opDisassociateSecurityKey                  = newOperation("DisassociateSecurityKey", FamilyInstance, Destructive, false, DisassociateSecurityKeyRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListSecurityKeys                         = newOperation("ListSecurityKeys", FamilyInstance, ReadOnly, false, ListSecurityKeysRequest{}, ListSecurityKeysResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opAssociateLambdaFunction                  = newOperation("AssociateLambdaFunction", FamilyInstance, Mutating, false, AssociateLambdaFunctionRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceConflict, KindResourceNotFound, KindServiceQuotaExceeded, KindThrottling)
	opDisassociateLambdaFunction               = newOperation("DisassociateLambdaFunction", FamilyInstance, Destructive, false, DisassociateLambdaFunctionRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListLambdaFunctions                      = newOperation("ListLambdaFunctions", FamilyInstance, ReadOnly, false, ListLambdaFunctionsRequest{}, ListLambdaFunctionsResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opAssociateLexBot                          = newOperation("AssociateLexBot", FamilyInstance, Mutating, false, AssociateLexBotRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceConflict, KindResourceNotFound, KindServiceQuotaExceeded, KindThrottling)
	opDisassociateLexBot                       = newOperation("DisassociateLexBot", FamilyInstance, Destructive, false, DisassociateLexBotRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListLexBots                              = newOperation("ListLexBots", FamilyInstance, ReadOnly, false, ListLexBotsRequest{}, ListLexBotsResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opAssociateBot                             = newOperation("AssociateBot", FamilyInstance, Mutating, false, AssociateBotRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindLimitExceeded, KindResourceConflict, KindResourceNotFound, KindServiceQuotaExceeded, KindThrottling)
	opDisassociateBot                          = newOperation("DisassociateBot", FamilyInstance, Destructive, false, DisassociateBotRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListBots                                 = newOperation("ListBots", FamilyInstance, ReadOnly, false, ListBotsRequest{}, ListBotsResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opReplicateInstance                        = newOperation("ReplicateInstance", FamilyInstance, Mutating, true, ReplicateInstanceRequest{}, ReplicateInstanceResponse{}, KindAccessDenied, KindInternalService, KindInvalidRequest, KindResourceConflict, KindResourceNotFound, KindResourceNotReady, KindServiceQuotaExceeded, KindThrottling)
	opCreateContactFlow                        = newOperation("CreateContactFlow", FamilyFlow, Mutating, false, CreateContactFlowRequest{}, CreateContactFlowResponse{}, KindDuplicateResource, KindInternalService, KindInvalidContactFlow, KindInvalidParameter, KindInvalidRequest, KindLimitExceeded, KindResourceNotFound, KindThrottling)
	opDescribeContactFlow                      = newOperation("DescribeContactFlow", FamilyFlow, ReadOnly, false, DescribeContactFlowRequest{}, DescribeContactFlowResponse{}, KindContactFlowNotPublished, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListContactFlows                         = newOperation("ListContactFlows", FamilyFlow, ReadOnly, false, ListContactFlowsRequest{}, ListContactFlowsResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateContactFlowContent                 = newOperation("UpdateContactFlowContent", FamilyFlow, Mutating, false, UpdateContactFlowContentRequest{}, nil, KindInternalService, KindInvalidContactFlow, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateContactFlowMetadata                = newOperation("UpdateContactFlowMetadata", FamilyFlow, Mutating, false, UpdateContactFlowMetadataRequest{}, nil, KindDuplicateResource, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateContactFlowName                    = newOperation("UpdateContactFlowName", FamilyFlow, Mutating, false, UpdateContactFlowNameRequest{}, nil, KindDuplicateResource, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opDeleteContactFlow                        = newOperation("DeleteContactFlow", FamilyFlow, Destructive, false, DeleteContactFlowRequest{}, nil, KindAccessDenied, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opCreateContactFlowModule                  = newOperation("CreateContactFlowModule", FamilyFlow, Mutating, true, CreateContactFlowModuleRequest{}, CreateContactFlowModuleResponse{}, KindAccessDenied, KindDuplicateResource, KindIdempotencyConflict, KindInternalService, KindInvalidContactFlowModule, KindInvalidParameter, KindInvalidRequest, KindLimitExceeded, KindResourceNotFound, KindThrottling)
	opDescribeContactFlowModule                = newOperation("DescribeContactFlowModule", FamilyFlow, ReadOnly, false, DescribeContactFlowModuleRequest{}, DescribeContactFlowModuleResponse{}, KindAccessDenied, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListContactFlowModules                   = newOperation("ListContactFlowModules", FamilyFlow, ReadOnly, false, ListContactFlowModulesRequest{}, ListContactFlowModulesResponse{}, KindAccessDenied, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateContactFlowModuleContent           = newOperation("UpdateContactFlowModuleContent", FamilyFlow, Mutating, false, UpdateContactFlowModuleContentRequest{}, nil, KindAccessDenied, KindInternalService, KindInvalidContactFlowModule, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateContactFlowModuleMetadata          = newOperation("UpdateContactFlowModuleMetadata", FamilyFlow, Mutating, false, UpdateContactFlowModuleMetadataRequest{}, nil, KindAccessDenied, KindDuplicateResource, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opDeleteContactFlowModule                  = newOperation("DeleteContactFlowModule", FamilyFlow, Destructive, false, DeleteContactFlowModuleRequest{}, nil, KindAccessDenied, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opCreateQueue                              = newOperation("CreateQueue", FamilyQueue, Mutating, false, CreateQueueRequest{}, CreateQueueResponse{}, KindDuplicateResource, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindLimitExceeded, KindResourceNotFound, KindThrottling)
	opDescribeQueue                            = newOperation("DescribeQueue", FamilyQueue, ReadOnly, false, DescribeQueueRequest{}, DescribeQueueResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListQueues                               = newOperation("ListQueues", FamilyQueue, ReadOnly, false, ListQueuesRequest{}, ListQueuesResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opSearchQueues                             = newOperation("SearchQueues", FamilyQueue, ReadOnly, false, SearchQueuesRequest{}, SearchQueuesResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateQueueHoursOfOperation              = newOperation("UpdateQueueHoursOfOperation", FamilyQueue, Mutating, false, UpdateQueueHoursOfOperationRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateQueueMaxContacts                   = newOperation("UpdateQueueMaxContacts", FamilyQueue, Mutating, false, UpdateQueueMaxContactsRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateQueueName                          = newOperation("UpdateQueueName", FamilyQueue, Mutating, false, UpdateQueueNameRequest{}, nil, KindDuplicateResource, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateQueueOutboundCallerConfig          = newOperation("UpdateQueueOutboundCallerConfig", FamilyQueue, Mutating, false, UpdateQueueOutboundCallerConfigRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateQueueStatus                        = newOperation("UpdateQueueStatus", FamilyQueue, Mutating, false, UpdateQueueStatusRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opAssociateQueueQuickConnects              = newOperation("AssociateQueueQuickConnects", FamilyQueue, Mutating, false, AssociateQueueQuickConnectsRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindLimitExceeded, KindResourceNotFound, KindThrottling)
	opDisassociateQueueQuickConnects           = newOperation("DisassociateQueueQuickConnects", FamilyQueue, Destructive, false, DisassociateQueueQuickConnectsRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListQueueQuickConnects                   = newOperation("ListQueueQuickConnects", FamilyQueue, ReadOnly, false, ListQueueQuickConnectsRequest{}, ListQueueQuickConnectsResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opCreateRoutingProfile                     = newOperation("CreateRoutingProfile", FamilyRoutingProfile, Mutating, false, CreateRoutingProfileRequest{}, CreateRoutingProfileResponse{}, KindDuplicateResource, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindLimitExceeded, KindResourceNotFound, KindThrottling)
	opDescribeRoutingProfile                   = newOperation("DescribeRoutingProfile", FamilyRoutingProfile, ReadOnly, false, DescribeRoutingProfileRequest{}, DescribeRoutingProfileResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListRoutingProfiles                      = newOperation("ListRoutingProfiles", FamilyRoutingProfile, ReadOnly, false, ListRoutingProfilesRequest{}, ListRoutingProfilesResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opSearchRoutingProfiles                    = newOperation("SearchRoutingProfiles", FamilyRoutingProfile, ReadOnly, false, SearchRoutingProfilesRequest{}, SearchRoutingProfilesResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateRoutingProfileConcurrency          = newOperation("UpdateRoutingProfileConcurrency", FamilyRoutingProfile, Mutating, false, UpdateRoutingProfileConcurrencyRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateRoutingProfileDefaultOutboundQueue = newOperation("UpdateRoutingProfileDefaultOutboundQueue", FamilyRoutingProfile, Mutating, false, UpdateRoutingProfileDefaultOutboundQueueRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateRoutingProfileName                 = newOperation("UpdateRoutingProfileName", FamilyRoutingProfile, Mutating, false, UpdateRoutingProfileNameRequest{}, nil, KindDuplicateResource, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateRoutingProfileQueues               = newOperation("UpdateRoutingProfileQueues", FamilyRoutingProfile, Mutating, false, UpdateRoutingProfileQueuesRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opAssociateRoutingProfileQueues            = newOperation("AssociateRoutingProfileQueues", FamilyRoutingProfile, Mutating, false, AssociateRoutingProfileQueuesRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opDisassociateRoutingProfileQueues         = newOperation("DisassociateRoutingProfileQueues", FamilyRoutingProfile, Destructive, false, DisassociateRoutingProfileQueuesRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListRoutingProfileQueues                 = newOperation("ListRoutingProfileQueues", FamilyRoutingProfile, ReadOnly, false, ListRoutingProfileQueuesRequest{}, ListRoutingProfileQueuesResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opCreateQuickConnect                       = newOperation("CreateQuickConnect", FamilyQuickConnect, Mutating, false, CreateQuickConnectRequest{}, CreateQuickConnectResponse{}, KindDuplicateResource, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindLimitExceeded, KindResourceNotFound, KindThrottling)
	opDescribeQuickConnect                     = newOperation("DescribeQuickConnect", FamilyQuickConnect, ReadOnly, false, DescribeQuickConnectRequest{}, DescribeQuickConnectResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListQuickConnects                        = newOperation("ListQuickConnects", FamilyQuickConnect, ReadOnly, false, ListQuickConnectsRequest{}, ListQuickConnectsResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opSearchQuickConnects                      = newOperation("SearchQuickConnects", FamilyQuickConnect, ReadOnly, false, SearchQuickConnectsRequest{}, SearchQuickConnectsResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateQuickConnectConfig                 = newOperation("UpdateQuickConnectConfig", FamilyQuickConnect, Mutating, false, UpdateQuickConnectConfigRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateQuickConnectName                   = newOperation("UpdateQuickConnectName", FamilyQuickConnect, Mutating, false, UpdateQuickConnectNameRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opDeleteQuickConnect                       = newOperation("DeleteQuickConnect", FamilyQuickConnect, Destructive, false, DeleteQuickConnectRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opCreateUser                               = newOperation("CreateUser", FamilyUser, Mutating, false, CreateUserRequest{}, CreateUserResponse{}, KindDuplicateResource, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindLimitExceeded, KindResourceNotFound, KindThrottling)
	opDescribeUser                             = newOperation("DescribeUser", FamilyUser, ReadOnly, false, DescribeUserRequest{}, DescribeUserResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListUsers                                = newOperation("ListUsers", FamilyUser, ReadOnly, false, ListUsersRequest{}, ListUsersResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opSearchUsers                              = newOperation("SearchUsers", FamilyUser, ReadOnly, false, SearchUsersRequest{}, SearchUsersResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opDeleteUser                               = newOperation("DeleteUser", FamilyUser, Destructive, false, DeleteUserRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateUserIdentityInfo                   = newOperation("UpdateUserIdentityInfo", FamilyUser, Mutating, false, UpdateUserIdentityInfoRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateUserPhoneConfig                    = newOperation("UpdateUserPhoneConfig", FamilyUser, Mutating, false, UpdateUserPhoneConfigRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateUserRoutingProfile                 = newOperation("UpdateUserRoutingProfile", FamilyUser, Mutating, false, UpdateUserRoutingProfileRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateUserSecurityProfiles               = newOperation("UpdateUserSecurityProfiles", FamilyUser, Mutating, false, UpdateUserSecurityProfilesRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateUserHierarchy                      = newOperation("UpdateUserHierarchy", FamilyUser, Mutating, false, UpdateUserHierarchyRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opPutUserStatus                            = newOperation("PutUserStatus", FamilyUser, Mutating, false, PutUserStatusRequest{}, PutUserStatusResponse{}, KindAccessDenied, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opDismissUserContact                       = newOperation("DismissUserContact", FamilyUser, Mutating, false, DismissUserContactRequest{}, DismissUserContactResponse{}, KindAccessDenied, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opGetCurrentUserData                       = newOperation("GetCurrentUserData", FamilyUser, ReadOnly, false, GetCurrentUserDataRequest{}, GetCurrentUserDataResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opGetFederationToken                       = newOperation("GetFederationToken", FamilyUser, ReadOnly, false, GetFederationTokenRequest{}, GetFederationTokenResponse{}, KindDuplicateResource, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindUserNotFound)
	opCreateUserHierarchyGroup                 = newOperation("CreateUserHierarchyGroup", FamilyUserHierarchy, Mutating, false, CreateUserHierarchyGroupRequest{}, CreateUserHierarchyGroupResponse{}, KindDuplicateResource, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindLimitExceeded, KindResourceNotFound, KindThrottling)
	opDescribeUserHierarchyGroup               = newOperation("DescribeUserHierarchyGroup", FamilyUserHierarchy, ReadOnly, false, DescribeUserHierarchyGroupRequest{}, DescribeUserHierarchyGroupResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListUserHierarchyGroups                  = newOperation("ListUserHierarchyGroups", FamilyUserHierarchy, ReadOnly, false, ListUserHierarchyGroupsRequest{}, ListUserHierarchyGroupsResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateUserHierarchyGroupName             = newOperation("UpdateUserHierarchyGroupName", FamilyUserHierarchy, Mutating, false, UpdateUserHierarchyGroupNameRequest{}, nil, KindDuplicateResource, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opDeleteUserHierarchyGroup                 = newOperation("DeleteUserHierarchyGroup", FamilyUserHierarchy, Destructive, false, DeleteUserHierarchyGroupRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceInUse, KindResourceNotFound, KindThrottling)
	opDescribeUserHierarchyStructure           = newOperation("DescribeUserHierarchyStructure", FamilyUserHierarchy, ReadOnly, false, DescribeUserHierarchyStructureRequest{}, DescribeUserHierarchyStructureResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateUserHierarchyStructure             = newOperation("UpdateUserHierarchyStructure", FamilyUserHierarchy, Mutating, false, UpdateUserHierarchyStructureRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceInUse, KindResourceNotFound, KindThrottling)
	opCreateSecurityProfile                    = newOperation("CreateSecurityProfile", FamilySecurityProfile, Mutating, false, CreateSecurityProfileRequest{}, CreateSecurityProfileResponse{}, KindDuplicateResource, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindLimitExceeded, KindResourceNotFound, KindThrottling)
	opDescribeSecurityProfile                  = newOperation("DescribeSecurityProfile", FamilySecurityProfile, ReadOnly, false, DescribeSecurityProfileRequest{}, DescribeSecurityProfileResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListSecurityProfiles                     = newOperation("ListSecurityProfiles", FamilySecurityProfile, ReadOnly, false, ListSecurityProfilesRequest{}, ListSecurityProfilesResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opSearchSecurityProfiles                   = newOperation("SearchSecurityProfiles", FamilySecurityProfile, ReadOnly, false, SearchSecurityProfilesRequest{}, SearchSecurityProfilesResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListSecurityProfilePermissions           = newOperation("ListSecurityProfilePermissions", FamilySecurityProfile, ReadOnly, false, ListSecurityProfilePermissionsRequest{}, ListSecurityProfilePermissionsResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateSecurityProfile                    = newOperation("UpdateSecurityProfile", FamilySecurityProfile, Mutating, false, UpdateSecurityProfileRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opDeleteSecurityProfile                    = newOperation("DeleteSecurityProfile", FamilySecurityProfile, Destructive, false, DeleteSecurityProfileRequest{}, nil, KindAccessDenied, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceInUse, KindResourceNotFound, KindThrottling)
	opClaimPhoneNumber                         = newOperation("ClaimPhoneNumber", FamilyPhoneNumber, Mutating, true, ClaimPhoneNumberRequest{}, ClaimPhoneNumberResponse{}, KindAccessDenied, KindIdempotencyConflict, KindInternalService, KindInvalidParameter, KindResourceNotFound, KindThrottling)
	opDescribePhoneNumber                      = newOperation("DescribePhoneNumber", FamilyPhoneNumber, ReadOnly, false, DescribePhoneNumberRequest{}, DescribePhoneNumberResponse{}, KindAccessDenied, KindInternalService, KindInvalidParameter, KindResourceNotFound, KindThrottling)
	opListPhoneNumbers                         = newOperation("ListPhoneNumbers", FamilyPhoneNumber, ReadOnly, false, ListPhoneNumbersRequest{}, ListPhoneNumbersResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListPhoneNumbersV2                       = newOperation("ListPhoneNumbersV2", FamilyPhoneNumber, ReadOnly, false, ListPhoneNumbersV2Request{}, ListPhoneNumbersV2Response{}, KindAccessDenied, KindInternalService, KindInvalidParameter, KindResourceNotFound, KindThrottling)
	opSearchAvailablePhoneNumbers              = newOperation("SearchAvailablePhoneNumbers", FamilyPhoneNumber, ReadOnly, false, SearchAvailablePhoneNumbersRequest{}, SearchAvailablePhoneNumbersResponse{}, KindAccessDenied, KindInternalService, KindInvalidParameter, KindThrottling)
	opUpdatePhoneNumber                        = newOperation("UpdatePhoneNumber", FamilyPhoneNumber, Mutating, true, UpdatePhoneNumberRequest{}, UpdatePhoneNumberResponse{}, KindAccessDenied, KindIdempotencyConflict, KindInternalService, KindInvalidParameter, KindResourceInUse, KindResourceNotFound, KindThrottling)
	opReleasePhoneNumber                       = newOperation("ReleasePhoneNumber", FamilyPhoneNumber, Destructive, true, ReleasePhoneNumberRequest{}, nil, KindAccessDenied, KindIdempotencyConflict, KindInternalService, KindInvalidParameter, KindResourceInUse, KindResourceNotFound, KindThrottling)
	opAssociatePhoneNumberContactFlow          = newOperation("AssociatePhoneNumberContactFlow", FamilyPhoneNumber, Mutating, false, AssociatePhoneNumberContactFlowRequest{}, nil, KindAccessDenied, KindInternalService, KindInvalidParameter, KindResourceNotFound, KindThrottling)
	opDisassociatePhoneNumberContactFlow       = newOperation("DisassociatePhoneNumberContactFlow", FamilyPhoneNumber, Destructive, false, DisassociatePhoneNumberContactFlowRequest{}, nil, KindAccessDenied, KindInternalService, KindInvalidParameter, KindResourceNotFound, KindThrottling)
	opCreateTrafficDistributionGroup           = newOperation("CreateTrafficDistributionGroup", FamilyTrafficDistributionGroup, Mutating, true, CreateTrafficDistributionGroupRequest{}, CreateTrafficDistributionGroupResponse{}, KindAccessDenied, KindInternalService, KindInvalidRequest, KindResourceConflict, KindResourceNotFound, KindResourceNotReady, KindServiceQuotaExceeded, KindThrottling)
	opDescribeTrafficDistributionGroup         = newOperation("DescribeTrafficDistributionGroup", FamilyTrafficDistributionGroup, ReadOnly, false, DescribeTrafficDistributionGroupRequest{}, DescribeTrafficDistributionGroupResponse{}, KindAccessDenied, KindInternalService, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListTrafficDistributionGroups            = newOperation("ListTrafficDistributionGroups", FamilyTrafficDistributionGroup, ReadOnly, false, ListTrafficDistributionGroupsRequest{}, ListTrafficDistributionGroupsResponse{}, KindAccessDenied, KindInternalService, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opDeleteTrafficDistributionGroup           = newOperation("DeleteTrafficDistributionGroup", FamilyTrafficDistributionGroup, Destructive, false, DeleteTrafficDistributionGroupRequest{}, nil, KindAccessDenied, KindInternalService, KindInvalidRequest, KindResourceInUse, KindResourceNotFound, KindThrottling)
	opGetTrafficDistribution                   = newOperation("GetTrafficDistribution", FamilyTrafficDistributionGroup, ReadOnly, false, GetTrafficDistributionRequest{}, GetTrafficDistributionResponse{}, KindAccessDenied, KindInternalService, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateTrafficDistribution                = newOperation("UpdateTrafficDistribution", FamilyTrafficDistributionGroup, Mutating, false, UpdateTrafficDistributionRequest{}, nil, KindAccessDenied, KindInternalService, KindInvalidRequest, KindResourceConflict, KindResourceNotFound, KindThrottling)
	opCreatePrompt                             = newOperation("CreatePrompt", FamilyPrompt, Mutating, false, CreatePromptRequest{}, CreatePromptResponse{}, KindDuplicateResource, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindLimitExceeded, KindResourceNotFound, KindThrottling)
	opDescribePrompt                           = newOperation("DescribePrompt", FamilyPrompt, ReadOnly, false, DescribePromptRequest{}, DescribePromptResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListPrompts                              = newOperation("ListPrompts", FamilyPrompt, ReadOnly, false, ListPromptsRequest{}, ListPromptsResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opGetPromptFile                            = newOperation("GetPromptFile", FamilyPrompt, ReadOnly, false, GetPromptFileRequest{}, GetPromptFileResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdatePrompt                             = newOperation("UpdatePrompt", FamilyPrompt, Mutating, false, UpdatePromptRequest{}, UpdatePromptResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opDeletePrompt                             = newOperation("DeletePrompt", FamilyPrompt, Destructive, false, DeletePromptRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opCreateVocabulary                         = newOperation("CreateVocabulary", FamilyVocabulary, Mutating, true, CreateVocabularyRequest{}, CreateVocabularyResponse{}, KindAccessDenied, KindInternalService, KindInvalidRequest, KindResourceConflict, KindResourceNotFound, KindServiceQuotaExceeded, KindThrottling)
	opDescribeVocabulary                       = newOperation("DescribeVocabulary", FamilyVocabulary, ReadOnly, false, DescribeVocabularyRequest{}, DescribeVocabularyResponse{}, KindAccessDenied, KindInternalService, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opSearchVocabularies                       = newOperation("SearchVocabularies", FamilyVocabulary, ReadOnly, false, SearchVocabulariesRequest{}, SearchVocabulariesResponse{}, KindAccessDenied, KindInternalService, KindInvalidRequest, KindThrottling)
	opDeleteVocabulary                         = newOperation("DeleteVocabulary", FamilyVocabulary, Destructive, false, DeleteVocabularyRequest{}, DeleteVocabularyResponse{}, KindAccessDenied, KindInternalService, KindInvalidRequest, KindResourceInUse, KindResourceNotFound, KindThrottling)
	opAssociateDefaultVocabulary               = newOperation("AssociateDefaultVocabulary", FamilyVocabulary, Mutating, false, AssociateDefaultVocabularyRequest{}, AssociateDefaultVocabularyResponse{}, KindAccessDenied, KindInternalService, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListDefaultVocabularies                  = newOperation("ListDefaultVocabularies", FamilyVocabulary, ReadOnly, false, ListDefaultVocabulariesRequest{}, ListDefaultVocabulariesResponse{}, KindAccessDenied, KindInternalService, KindInvalidRequest, KindThrottling)
	opCreateEvaluationForm                     = newOperation("CreateEvaluationForm", FamilyEvaluationForm, Mutating, true, CreateEvaluationFormRequest{}, CreateEvaluationFormResponse{}, KindInternalService, KindInvalidParameter, KindResourceConflict, KindResourceNotFound, KindServiceQuotaExceeded, KindThrottling)
	opDescribeEvaluationForm                   = newOperation("DescribeEvaluationForm", FamilyEvaluationForm, ReadOnly, false, DescribeEvaluationFormRequest{}, DescribeEvaluationFormResponse{}, KindInternalService, KindInvalidParameter, KindResourceNotFound, KindThrottling)
	opListEvaluationForms                      = newOperation("ListEvaluationForms", FamilyEvaluationForm, ReadOnly, false, ListEvaluationFormsRequest{}, ListEvaluationFormsResponse{}, KindInternalService, KindInvalidParameter, KindResourceNotFound, KindThrottling)
	opListEvaluationFormVersions               = newOperation("ListEvaluationFormVersions", FamilyEvaluationForm, ReadOnly, false, ListEvaluationFormVersionsRequest{}, ListEvaluationFormVersionsResponse{}, KindInternalService, KindInvalidParameter, KindResourceNotFound, KindThrottling)
	opUpdateEvaluationForm                     = newOperation("UpdateEvaluationForm", FamilyEvaluationForm, Mutating, true, UpdateEvaluationFormRequest{}, UpdateEvaluationFormResponse{}, KindInternalService, KindInvalidParameter, KindResourceConflict, KindResourceNotFound, KindServiceQuotaExceeded, KindThrottling)
	opDeleteEvaluationForm                     = newOperation("DeleteEvaluationForm", FamilyEvaluationForm, Destructive, false, DeleteEvaluationFormRequest{}, nil, KindInternalService, KindInvalidParameter, KindResourceConflict, KindResourceNotFound, KindThrottling)
	opActivateEvaluationForm                   = newOperation("ActivateEvaluationForm", FamilyEvaluationForm, Mutating, false, ActivateEvaluationFormRequest{}, ActivateEvaluationFormResponse{}, KindInternalService, KindInvalidParameter, KindResourceConflict, KindResourceNotFound, KindThrottling)
	opDeactivateEvaluationForm                 = newOperation("DeactivateEvaluationForm", FamilyEvaluationForm, Mutating, false, DeactivateEvaluationFormRequest{}, DeactivateEvaluationFormResponse{}, KindInternalService, KindInvalidParameter, KindResourceConflict, KindResourceNotFound, KindThrottling)
	opStartContactEvaluation                   = newOperation("StartContactEvaluation", FamilyEvaluationForm, Mutating, true, StartContactEvaluationRequest{}, StartContactEvaluationResponse{}, KindInternalService, KindInvalidParameter, KindResourceConflict, KindResourceNotFound, KindServiceQuotaExceeded, KindThrottling)
	opDescribeContactEvaluation                = newOperation("DescribeContactEvaluation", FamilyEvaluationForm, ReadOnly, false, DescribeContactEvaluationRequest{}, DescribeContactEvaluationResponse{}, KindInternalService, KindInvalidParameter, KindResourceNotFound, KindThrottling)
	opListContactEvaluations                   = newOperation("ListContactEvaluations", FamilyEvaluationForm, ReadOnly, false, ListContactEvaluationsRequest{}, ListContactEvaluationsResponse{}, KindInternalService, KindInvalidParameter, KindResourceNotFound, KindThrottling)
	opUpdateContactEvaluation                  = newOperation("UpdateContactEvaluation", FamilyEvaluationForm, Mutating, false, UpdateContactEvaluationRequest{}, UpdateContactEvaluationResponse{}, KindInternalService, KindInvalidParameter, KindResourceConflict, KindResourceNotFound, KindThrottling)
	opSubmitContactEvaluation                  = newOperation("SubmitContactEvaluation", FamilyEvaluationForm, Mutating, false, SubmitContactEvaluationRequest{}, SubmitContactEvaluationResponse{}, KindInternalService, KindInvalidParameter, KindResourceConflict, KindResourceNotFound, KindThrottling)
	opDeleteContactEvaluation                  = newOperation("DeleteContactEvaluation", FamilyEvaluationForm, Destructive, false, DeleteContactEvaluationRequest{}, nil, KindInternalService, KindInvalidParameter, KindResourceConflict, KindResourceNotFound, KindThrottling)
	opStartChatContact                         = newOperation("StartChatContact", FamilyContact, Mutating, true, StartChatContactRequest{}, StartChatContactResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindLimitExceeded, KindResourceNotFound)
	opStartTaskContact                         = newOperation("StartTaskContact", FamilyContact, Mutating, true, StartTaskContactRequest{}, StartTaskContactResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindServiceQuotaExceeded, KindThrottling)
	opStartOutboundVoiceContact                = newOperation("StartOutboundVoiceContact", FamilyContact, Mutating, true, StartOutboundVoiceContactRequest{}, StartOutboundVoiceContactResponse{}, KindDestinationNotAllowed, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindLimitExceeded, KindOutboundContactNotPermitted, KindResourceNotFound)
	opStopContact                              = newOperation("StopContact", FamilyContact, Destructive, false, StopContactRequest{}, StopContactResponse{}, KindContactNotFound, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound)
	opTransferContact                          = newOperation("TransferContact", FamilyContact, Mutating, true, TransferContactRequest{}, TransferContactResponse{}, KindAccessDenied, KindIdempotencyConflict, KindInternalService, KindInvalidRequest, KindResourceNotFound, KindServiceQuotaExceeded, KindThrottling)
	opMonitorContact                           = newOperation("MonitorContact", FamilyContact, Mutating, true, MonitorContactRequest{}, MonitorContactResponse{}, KindAccessDenied, KindIdempotencyConflict, KindInternalService, KindInvalidRequest, KindResourceNotFound, KindServiceQuotaExceeded, KindThrottling)
	opDescribeContact                          = newOperation("DescribeContact", FamilyContact, ReadOnly, false, DescribeContactRequest{}, DescribeContactResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateContact                            = newOperation("UpdateContact", FamilyContact, Mutating, false, UpdateContactRequest{}, UpdateContactResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateContactAttributes                  = newOperation("UpdateContactAttributes", FamilyContact, Mutating, false, UpdateContactAttributesRequest{}, UpdateContactAttributesResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound)
	opGetContactAttributes                     = newOperation("GetContactAttributes", FamilyContact, ReadOnly, false, GetContactAttributesRequest{}, GetContactAttributesResponse{}, KindInternalService, KindInvalidRequest, KindResourceNotFound)
	opUpdateContactSchedule                    = newOperation("UpdateContactSchedule", FamilyContact, Mutating, false, UpdateContactScheduleRequest{}, UpdateContactScheduleResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindLimitExceeded, KindResourceNotFound, KindThrottling)
	opListContactReferences                    = newOperation("ListContactReferences", FamilyContact, ReadOnly, false, ListContactReferencesRequest{}, ListContactReferencesResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opStartContactRecording                    = newOperation("StartContactRecording", FamilyContact, Mutating, false, StartContactRecordingRequest{}, StartContactRecordingResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound)
	opStopContactRecording                     = newOperation("StopContactRecording", FamilyContact, Mutating, false, StopContactRecordingRequest{}, StopContactRecordingResponse{}, KindInternalService, KindInvalidRequest, KindResourceNotFound)
	opSuspendContactRecording                  = newOperation("SuspendContactRecording", FamilyContact, Mutating, false, SuspendContactRecordingRequest{}, SuspendContactRecordingResponse{}, KindInternalService, KindInvalidRequest, KindResourceNotFound)
	opResumeContactRecording                   = newOperation("ResumeContactRecording", FamilyContact, Mutating, false, ResumeContactRecordingRequest{}, ResumeContactRecordingResponse{}, KindInternalService, KindInvalidRequest, KindResourceNotFound)
	opStartContactStreaming                    = newOperation("StartContactStreaming", FamilyContact, Mutating, true, StartContactStreamingRequest{}, StartContactStreamingResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindLimitExceeded, KindResourceNotFound)
	opStopContactStreaming                     = newOperation("StopContactStreaming", FamilyContact, Mutating, false, StopContactStreamingRequest{}, StopContactStreamingResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound)
	opCreateParticipant                        = newOperation("CreateParticipant", FamilyContact, Mutating, true, CreateParticipantRequest{}, CreateParticipantResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindServiceQuotaExceeded, KindThrottling)
	opUpdateParticipantRoleConfig              = newOperation("UpdateParticipantRoleConfig", FamilyContact, Mutating, false, UpdateParticipantRoleConfigRequest{}, UpdateParticipantRoleConfigResponse{}, KindAccessDenied, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opTagResource                              = newOperation("TagResource", FamilyTag, Mutating, false, TagResourceRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUntagResource                            = newOperation("UntagResource", FamilyTag, Destructive, false, UntagResourceRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListTagsForResource                      = newOperation("ListTagsForResource", FamilyTag, ReadOnly, false, ListTagsForResourceRequest{}, ListTagsForResourceResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opSearchResourceTags                       = newOperation("SearchResourceTags", FamilyTag, ReadOnly, false, SearchResourceTagsRequest{}, SearchResourceTagsResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindMaximumResultReturned, KindResourceNotFound, KindThrottling)
	opCreateIntegrationAssociation             = newOperation("CreateIntegrationAssociation", FamilyIntegration, Mutating, false, CreateIntegrationAssociationRequest{}, CreateIntegrationAssociationResponse{}, KindDuplicateResource, KindInternalService, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opDeleteIntegrationAssociation             = newOperation("DeleteIntegrationAssociation", FamilyIntegration, Destructive, false, DeleteIntegrationAssociationRequest{}, nil, KindInternalService, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListIntegrationAssociations              = newOperation("ListIntegrationAssociations", FamilyIntegration, ReadOnly, false, ListIntegrationAssociationsRequest{}, ListIntegrationAssociationsResponse{}, KindInternalService, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opCreateUseCase                            = newOperation("CreateUseCase", FamilyIntegration, Mutating, false, CreateUseCaseRequest{}, CreateUseCaseResponse{}, KindDuplicateResource, KindInternalService, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opDeleteUseCase                            = newOperation("DeleteUseCase", FamilyIntegration, Destructive, false, DeleteUseCaseRequest{}, nil, KindInternalService, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListUseCases                             = newOperation("ListUseCases", FamilyIntegration, ReadOnly, false, ListUseCasesRequest{}, ListUseCasesResponse{}, KindInternalService, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opCreateHoursOfOperation                   = newOperation("CreateHoursOfOperation", FamilyHoursOfOperation, Mutating, false, CreateHoursOfOperationRequest{}, CreateHoursOfOperationResponse{}, KindDuplicateResource, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindLimitExceeded, KindResourceNotFound, KindThrottling)
	opDescribeHoursOfOperation                 = newOperation("DescribeHoursOfOperation", FamilyHoursOfOperation, ReadOnly, false, DescribeHoursOfOperationRequest{}, DescribeHoursOfOperationResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListHoursOfOperations                    = newOperation("ListHoursOfOperations", FamilyHoursOfOperation, ReadOnly, false, ListHoursOfOperationsRequest{}, ListHoursOfOperationsResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateHoursOfOperation                   = newOperation("UpdateHoursOfOperation", FamilyHoursOfOperation, Mutating, false, UpdateHoursOfOperationRequest{}, nil, KindDuplicateResource, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opDeleteHoursOfOperation                   = newOperation("DeleteHoursOfOperation", FamilyHoursOfOperation, Destructive, false, DeleteHoursOfOperationRequest{}, nil, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opCreateAgentStatus                        = newOperation("CreateAgentStatus", FamilyAgentStatus, Mutating, false, CreateAgentStatusRequest{}, CreateAgentStatusResponse{}, KindDuplicateResource, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindLimitExceeded, KindResourceNotFound, KindThrottling)
	opDescribeAgentStatus                      = newOperation("DescribeAgentStatus", FamilyAgentStatus, ReadOnly, false, DescribeAgentStatusRequest{}, DescribeAgentStatusResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListAgentStatuses                        = newOperation("ListAgentStatuses", FamilyAgentStatus, ReadOnly, false, ListAgentStatusesRequest{}, ListAgentStatusesResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateAgentStatus                        = newOperation("UpdateAgentStatus", FamilyAgentStatus, Mutating, false, UpdateAgentStatusRequest{}, nil, KindDuplicateResource, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindLimitExceeded, KindResourceNotFound, KindThrottling)
	opCreateRule                               = newOperation("CreateRule", FamilyRule, Mutating, true, CreateRuleRequest{}, CreateRuleResponse{}, KindAccessDenied, KindInternalService, KindInvalidRequest, KindResourceConflict, KindResourceNotFound, KindServiceQuotaExceeded, KindThrottling)
	opDescribeRule                             = newOperation("DescribeRule", FamilyRule, ReadOnly, false, DescribeRuleRequest{}, DescribeRuleResponse{}, KindAccessDenied, KindInternalService, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opListRules                                = newOperation("ListRules", FamilyRule, ReadOnly, false, ListRulesRequest{}, ListRulesResponse{}, KindAccessDenied, KindInternalService, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opUpdateRule                               = newOperation("UpdateRule", FamilyRule, Mutating, false, UpdateRuleRequest{}, nil, KindAccessDenied, KindInternalService, KindInvalidRequest, KindResourceConflict, KindResourceNotFound, KindThrottling)
	opDeleteRule                               = newOperation("DeleteRule", FamilyRule, Destructive, false, DeleteRuleRequest{}, nil, KindAccessDenied, KindInternalService, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opCreateTaskTemplate                       = newOperation("CreateTaskTemplate", FamilyTaskTemplate, Mutating, true, CreateTaskTemplateRequest{}, CreateTaskTemplateResponse{}, KindInternalService, KindInvalidParameter, KindPropertyValidation, KindResourceNotFound, KindServiceQuotaExceeded, KindThrottling)
	opGetTaskTemplate                          = newOperation("GetTaskTemplate", FamilyTaskTemplate, ReadOnly, false, GetTaskTemplateRequest{}, GetTaskTemplateResponse{}, KindInternalService, KindInvalidParameter, KindResourceNotFound, KindThrottling)
	opListTaskTemplates                        = newOperation("ListTaskTemplates", FamilyTaskTemplate, ReadOnly, false, ListTaskTemplatesRequest{}, ListTaskTemplatesResponse{}, KindInternalService, KindInvalidParameter, KindResourceNotFound, KindThrottling)
	opUpdateTaskTemplate                       = newOperation("UpdateTaskTemplate", FamilyTaskTemplate, Mutating, false, UpdateTaskTemplateRequest{}, UpdateTaskTemplateResponse{}, KindInternalService, KindInvalidParameter, KindPropertyValidation, KindResourceNotFound, KindServiceQuotaExceeded, KindThrottling)
	opDeleteTaskTemplate                       = newOperation("DeleteTaskTemplate", FamilyTaskTemplate, Destructive, false, DeleteTaskTemplateRequest{}, nil, KindInternalService, KindInvalidParameter, KindResourceNotFound, KindThrottling)
	opGetCurrentMetricData                     = newOperation("GetCurrentMetricData", FamilyMetrics, ReadOnly, false, GetCurrentMetricDataRequest{}, GetCurrentMetricDataResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opGetMetricData                            = newOperation("GetMetricData", FamilyMetrics, ReadOnly, false, GetMetricDataRequest{}, GetMetricDataResponse{}, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
	opGetMetricDataV2                          = newOperation("GetMetricDataV2", FamilyMetrics, ReadOnly, false, GetMetricDataV2Request{}, GetMetricDataV2Response{}, KindAccessDenied, KindInternalService, KindInvalidParameter, KindInvalidRequest, KindResourceNotFound, KindThrottling)
)

var catalog = []*Operation{
	opCreateInstance,
	opDeleteInstance,
	opDescribeInstance,
	opListInstances,
	opDescribeInstanceAttribute,
	opUpdateInstanceAttribute,
	opListInstanceAttributes,
	opAssociateInstanceStorageConfig,
	opDescribeInstanceStorageConfig,
	opUpdateInstanceStorageConfig,
	opDisassociateInstanceStorageConfig,
	opListInstanceStorageConfigs,
	opAssociateApprovedOrigin,
	opDisassociateApprovedOrigin,
	opListApprovedOrigins,
	opAssociateSecurityKey,
	opDisassociateSecurityKey,
	opListSecurityKeys,
	opAssociateLambdaFunction,
	opDisassociateLambdaFunction,
	opListLambdaFunctions,
	opAssociateLexBot,
	opDisassociateLexBot,
	opListLexBots,
	opAssociateBot,
	opDisassociateBot,
	opListBots,
	opReplicateInstance,
	opCreateContactFlow,
	opDescribeContactFlow,
	opListContactFlows,
	opUpdateContactFlowContent,
	opUpdateContactFlowMetadata,
	opUpdateContactFlowName,
	opDeleteContactFlow,
	opCreateContactFlowModule,
	opDescribeContactFlowModule,
	opListContactFlowModules,
	opUpdateContactFlowModuleContent,
	opUpdateContactFlowModuleMetadata,
	opDeleteContactFlowModule,
	opCreateQueue,
	opDescribeQueue,
	opListQueues,
	opSearchQueues,
	opUpdateQueueHoursOfOperation,
	opUpdateQueueMaxContacts,
	opUpdateQueueName,
	opUpdateQueueOutboundCallerConfig,
	opUpdateQueueStatus,
	opAssociateQueueQuickConnects,
	opDisassociateQueueQuickConnects,
	opListQueueQuickConnects,
	opCreateRoutingProfile,
	opDescribeRoutingProfile,
	opListRoutingProfiles,
	opSearchRoutingProfiles,
	opUpdateRoutingProfileConcurrency,
	opUpdateRoutingProfileDefaultOutboundQueue,
	opUpdateRoutingProfileName,
	opUpdateRoutingProfileQueues,
	opAssociateRoutingProfileQueues,
	opDisassociateRoutingProfileQueues,
	opListRoutingProfileQueues,
	opCreateQuickConnect,
	opDescribeQuickConnect,
	opListQuickConnects,
	opSearchQuickConnects,
	opUpdateQuickConnectConfig,
	opUpdateQuickConnectName,
	opDeleteQuickConnect,
	opCreateUser,
	opDescribeUser,
	opListUsers,
	opSearchUsers,
	opDeleteUser,
	opUpdateUserIdentityInfo,
	opUpdateUserPhoneConfig,
	opUpdateUserRoutingProfile,
	opUpdateUserSecurityProfiles,
	opUpdateUserHierarchy,
	opPutUserStatus,
	opDismissUserContact,
	opGetCurrentUserData,
	opGetFederationToken,
	opCreateUserHierarchyGroup,
	opDescribeUserHierarchyGroup,
	opListUserHierarchyGroups,
	opUpdateUserHierarchyGroupName,
	opDeleteUserHierarchyGroup,
	opDescribeUserHierarchyStructure,
	opUpdateUserHierarchyStructure,
	opCreateSecurityProfile,
	opDescribeSecurityProfile,
	opListSecurityProfiles,
	opSearchSecurityProfiles,
	opListSecurityProfilePermissions,
	opUpdateSecurityProfile,
	opDeleteSecurityProfile,
	opClaimPhoneNumber,
	opDescribePhoneNumber,
	opListPhoneNumbers,
	opListPhoneNumbersV2,
	opSearchAvailablePhoneNumbers,
	opUpdatePhoneNumber,
	opReleasePhoneNumber,
	opAssociatePhoneNumberContactFlow,
	opDisassociatePhoneNumberContactFlow,
	opCreateTrafficDistributionGroup,
	opDescribeTrafficDistributionGroup,
	opListTrafficDistributionGroups,
	opDeleteTrafficDistributionGroup,
	opGetTrafficDistribution,
	opUpdateTrafficDistribution,
	opCreatePrompt,
	opDescribePrompt,
	opListPrompts,
	opGetPromptFile,
	opUpdatePrompt,
	opDeletePrompt,
	opCreateVocabulary,
	opDescribeVocabulary,
	opSearchVocabularies,
	opDeleteVocabulary,
	opAssociateDefaultVocabulary,
	opListDefaultVocabularies,
	opCreateEvaluationForm,
	opDescribeEvaluationForm,
	opListEvaluationForms,
	opListEvaluationFormVersions,
	opUpdateEvaluationForm,
	opDeleteEvaluationForm,
	opActivateEvaluationForm,
	opDeactivateEvaluationForm,
	opStartContactEvaluation,
	opDescribeContactEvaluation,
	opListContactEvaluations,
	opUpdateContactEvaluation,
	opSubmitContactEvaluation,
	opDeleteContactEvaluation,
	opStartChatContact,
	opStartTaskContact,
	opStartOutboundVoiceContact,
	opStopContact,
	opTransferContact,
	opMonitorContact,
	opDescribeContact,
	opUpdateContact,
	opUpdateContactAttributes,
	opGetContactAttributes,
	opUpdateContactSchedule,
	opListContactReferences,
	opStartContactRecording,
	opStopContactRecording,
	opSuspendContactRecording,
	opResumeContactRecording,
	opStartContactStreaming,
	opStopContactStreaming,
	opCreateParticipant,
	opUpdateParticipantRoleConfig,
	opTagResource,
	opUntagResource,
	opListTagsForResource,
	opSearchResourceTags,
	opCreateIntegrationAssociation,
	opDeleteIntegrationAssociation,
	opListIntegrationAssociations,
	opCreateUseCase,
	opDeleteUseCase,
	opListUseCases,
	opCreateHoursOfOperation,
	opDescribeHoursOfOperation,
	opListHoursOfOperations,
	opUpdateHoursOfOperation,
	opDeleteHoursOfOperation,
	opCreateAgentStatus,
	opDescribeAgentStatus,
	opListAgentStatuses,
	opUpdateAgentStatus,
	opCreateRule,
	opDescribeRule,
	opListRules,
	opUpdateRule,
	opDeleteRule,
	opCreateTaskTemplate,
	opGetTaskTemplate,
	opListTaskTemplates,
	opUpdateTaskTemplate,
	opDeleteTaskTemplate,
	opGetCurrentMetricData,
	opGetMetricData,
	opGetMetricDataV2,
}
