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

//go:generate mockgen -source=api.go -destination=connectmock/queue_api.go -package=connectmock QueueAPI

import (
	"context"
)

// InstanceAPI manages contact-center instances and their account-level associations.
type InstanceAPI interface {
	// CreateInstance creates a contact-center instance.
	CreateInstance(ctx context.Context, request *CreateInstanceRequest) (*CreateInstanceResponse, error)

	// DeleteInstance deletes a contact-center instance.
	DeleteInstance(ctx context.Context, request *DeleteInstanceRequest) error

	// DescribeInstance returns the current state of an instance.
	DescribeInstance(ctx context.Context, request *DescribeInstanceRequest) (*DescribeInstanceResponse, error)

	// ListInstances lists the instances in the account.
	ListInstances(ctx context.Context, request *ListInstancesRequest) (*ListInstancesResponse, error)

	// DescribeInstanceAttribute returns one attribute of an instance.
	DescribeInstanceAttribute(ctx context.Context, request *DescribeInstanceAttributeRequest) (*DescribeInstanceAttributeResponse, error)

	// UpdateInstanceAttribute sets one attribute of an instance.
	UpdateInstanceAttribute(ctx context.Context, request *UpdateInstanceAttributeRequest) error

	// ListInstanceAttributes lists the attributes of an instance.
	ListInstanceAttributes(ctx context.Context, request *ListInstanceAttributesRequest) (*ListInstanceAttributesResponse, error)

	// AssociateInstanceStorageConfig attaches a storage destination to an instance.
	AssociateInstanceStorageConfig(ctx context.Context, request *AssociateInstanceStorageConfigRequest) (*AssociateInstanceStorageConfigResponse, error)

	// DescribeInstanceStorageConfig returns a storage destination attached to an instance.
	DescribeInstanceStorageConfig(ctx context.Context, request *DescribeInstanceStorageConfigRequest) (*DescribeInstanceStorageConfigResponse, error)

	// UpdateInstanceStorageConfig replaces a storage destination attached to an instance.
	UpdateInstanceStorageConfig(ctx context.Context, request *UpdateInstanceStorageConfigRequest) error

	// DisassociateInstanceStorageConfig detaches a storage destination from an instance.
	DisassociateInstanceStorageConfig(ctx context.Context, request *DisassociateInstanceStorageConfigRequest) error

	// ListInstanceStorageConfigs lists the storage destinations of one resource type.
	ListInstanceStorageConfigs(ctx context.Context, request *ListInstanceStorageConfigsRequest) (*ListInstanceStorageConfigsResponse, error)

	// AssociateApprovedOrigin allows an origin to embed the contact control panel.
	AssociateApprovedOrigin(ctx context.Context, request *AssociateApprovedOriginRequest) error

	// DisassociateApprovedOrigin revokes an approved origin.
	DisassociateApprovedOrigin(ctx context.Context, request *DisassociateApprovedOriginRequest) error

	// ListApprovedOrigins lists the approved origins of an instance.
	ListApprovedOrigins(ctx context.Context, request *ListApprovedOriginsRequest) (*ListApprovedOriginsResponse, error)

	// AssociateSecurityKey adds a signing key to an instance.
	AssociateSecurityKey(ctx context.Context, request *AssociateSecurityKeyRequest) (*AssociateSecurityKeyResponse, error)

	// DisassociateSecurityKey removes a signing key from an instance.
	DisassociateSecurityKey(ctx context.Context, request *DisassociateSecurityKeyRequest) error

	// ListSecurityKeys lists the signing keys of an instance.
	ListSecurityKeys(ctx context.Context, request *ListSecurityKeysRequest) (*ListSecurityKeysResponse, error)

	// AssociateLambdaFunction allows flows of an instance to invoke a function.
	AssociateLambdaFunction(ctx context.Context, request *AssociateLambdaFunctionRequest) error

	// DisassociateLambdaFunction revokes access to a function.
	DisassociateLambdaFunction(ctx context.Context, request *DisassociateLambdaFunctionRequest) error

	// ListLambdaFunctions lists the functions flows of an instance may invoke.
	ListLambdaFunctions(ctx context.Context, request *ListLambdaFunctionsRequest) (*ListLambdaFunctionsResponse, error)

	// AssociateLexBot allows flows of an instance to use a classic chat bot.
	AssociateLexBot(ctx context.Context, request *AssociateLexBotRequest) error

	// DisassociateLexBot revokes access to a classic chat bot.
	DisassociateLexBot(ctx context.Context, request *DisassociateLexBotRequest) error

	// ListLexBots lists the classic chat bots associated with an instance.
	ListLexBots(ctx context.Context, request *ListLexBotsRequest) (*ListLexBotsResponse, error)

	// AssociateBot allows flows of an instance to use a chat bot.
	AssociateBot(ctx context.Context, request *AssociateBotRequest) error

	// DisassociateBot revokes access to a chat bot.
	DisassociateBot(ctx context.Context, request *DisassociateBotRequest) error

	// ListBots lists the chat bots associated with an instance.
	ListBots(ctx context.Context, request *ListBotsRequest) (*ListBotsResponse, error)

	// ReplicateInstance replicates an instance into another region.
	ReplicateInstance(ctx context.Context, request *ReplicateInstanceRequest) (*ReplicateInstanceResponse, error)
}

// FlowAPI manages flows and flow modules.
type FlowAPI interface {
	// CreateContactFlow creates a flow.
	CreateContactFlow(ctx context.Context, request *CreateContactFlowRequest) (*CreateContactFlowResponse, error)

	// DescribeContactFlow returns a flow including its content.
	DescribeContactFlow(ctx context.Context, request *DescribeContactFlowRequest) (*DescribeContactFlowResponse, error)

	// ListContactFlows lists the flows of an instance.
	ListContactFlows(ctx context.Context, request *ListContactFlowsRequest) (*ListContactFlowsResponse, error)

	// UpdateContactFlowContent replaces the content of a flow.
	UpdateContactFlowContent(ctx context.Context, request *UpdateContactFlowContentRequest) error

	// UpdateContactFlowMetadata updates the name, description or state of a flow.
	UpdateContactFlowMetadata(ctx context.Context, request *UpdateContactFlowMetadataRequest) error

	// UpdateContactFlowName renames a flow.
	UpdateContactFlowName(ctx context.Context, request *UpdateContactFlowNameRequest) error

	// DeleteContactFlow deletes a flow.
	DeleteContactFlow(ctx context.Context, request *DeleteContactFlowRequest) error

	// CreateContactFlowModule creates a flow module.
	CreateContactFlowModule(ctx context.Context, request *CreateContactFlowModuleRequest) (*CreateContactFlowModuleResponse, error)

	// DescribeContactFlowModule returns a flow module including its content.
	DescribeContactFlowModule(ctx context.Context, request *DescribeContactFlowModuleRequest) (*DescribeContactFlowModuleResponse, error)

	// ListContactFlowModules lists the flow modules of an instance.
	ListContactFlowModules(ctx context.Context, request *ListContactFlowModulesRequest) (*ListContactFlowModulesResponse, error)

	// UpdateContactFlowModuleContent replaces the content of a flow module.
	UpdateContactFlowModuleContent(ctx context.Context, request *UpdateContactFlowModuleContentRequest) error

	// UpdateContactFlowModuleMetadata updates the name, description or state of a flow module.
	UpdateContactFlowModuleMetadata(ctx context.Context, request *UpdateContactFlowModuleMetadataRequest) error

	// DeleteContactFlowModule deletes a flow module.
	DeleteContactFlowModule(ctx context.Context, request *DeleteContactFlowModuleRequest) error
}

// QueueAPI manages queues.
type QueueAPI interface {
	// CreateQueue creates a queue.
	CreateQueue(ctx context.Context, request *CreateQueueRequest) (*CreateQueueResponse, error)

	// DescribeQueue returns a queue.
	DescribeQueue(ctx context.Context, request *DescribeQueueRequest) (*DescribeQueueResponse, error)

	// ListQueues lists the queues of an instance.
	ListQueues(ctx context.Context, request *ListQueuesRequest) (*ListQueuesResponse, error)

	// SearchQueues searches the queues of an instance.
	SearchQueues(ctx context.Context, request *SearchQueuesRequest) (*SearchQueuesResponse, error)

	// UpdateQueueHoursOfOperation changes the hours of operation of a queue.
	UpdateQueueHoursOfOperation(ctx context.Context, request *UpdateQueueHoursOfOperationRequest) error

	// UpdateQueueMaxContacts changes the maximum number of contacts in a queue.
	UpdateQueueMaxContacts(ctx context.Context, request *UpdateQueueMaxContactsRequest) error

	// UpdateQueueName renames a queue.
	UpdateQueueName(ctx context.Context, request *UpdateQueueNameRequest) error

	// UpdateQueueOutboundCallerConfig changes the outbound caller id settings of a queue.
	UpdateQueueOutboundCallerConfig(ctx context.Context, request *UpdateQueueOutboundCallerConfigRequest) error

	// UpdateQueueStatus enables or disables a queue.
	UpdateQueueStatus(ctx context.Context, request *UpdateQueueStatusRequest) error

	// AssociateQueueQuickConnects adds quick connects to a queue.
	AssociateQueueQuickConnects(ctx context.Context, request *AssociateQueueQuickConnectsRequest) error

	// DisassociateQueueQuickConnects removes quick connects from a queue.
	DisassociateQueueQuickConnects(ctx context.Context, request *DisassociateQueueQuickConnectsRequest) error

	// ListQueueQuickConnects lists the quick connects of a queue.
	ListQueueQuickConnects(ctx context.Context, request *ListQueueQuickConnectsRequest) (*ListQueueQuickConnectsResponse, error)
}

// RoutingProfileAPI manages routing profiles.
type RoutingProfileAPI interface {
	// CreateRoutingProfile creates a routing profile.
	CreateRoutingProfile(ctx context.Context, request *CreateRoutingProfileRequest) (*CreateRoutingProfileResponse, error)

	// DescribeRoutingProfile returns a routing profile.
	DescribeRoutingProfile(ctx context.Context, request *DescribeRoutingProfileRequest) (*DescribeRoutingProfileResponse, error)

	// ListRoutingProfiles lists the routing profiles of an instance.
	ListRoutingProfiles(ctx context.Context, request *ListRoutingProfilesRequest) (*ListRoutingProfilesResponse, error)

	// SearchRoutingProfiles searches the routing profiles of an instance.
	SearchRoutingProfiles(ctx context.Context, request *SearchRoutingProfilesRequest) (*SearchRoutingProfilesResponse, error)

	// UpdateRoutingProfileConcurrency changes the channel concurrency of a routing profile.
	UpdateRoutingProfileConcurrency(ctx context.Context, request *UpdateRoutingProfileConcurrencyRequest) error

	// UpdateRoutingProfileDefaultOutboundQueue changes the default outbound queue of a routing profile.
	UpdateRoutingProfileDefaultOutboundQueue(ctx context.Context, request *UpdateRoutingProfileDefaultOutboundQueueRequest) error

	// UpdateRoutingProfileName renames a routing profile.
	UpdateRoutingProfileName(ctx context.Context, request *UpdateRoutingProfileNameRequest) error

	// UpdateRoutingProfileQueues changes the priority and delay of queues in a routing profile.
	UpdateRoutingProfileQueues(ctx context.Context, request *UpdateRoutingProfileQueuesRequest) error

	// AssociateRoutingProfileQueues adds queues to a routing profile.
	AssociateRoutingProfileQueues(ctx context.Context, request *AssociateRoutingProfileQueuesRequest) error

	// DisassociateRoutingProfileQueues removes queues from a routing profile.
	DisassociateRoutingProfileQueues(ctx context.Context, request *DisassociateRoutingProfileQueuesRequest) error

	// ListRoutingProfileQueues lists the queues of a routing profile.
	ListRoutingProfileQueues(ctx context.Context, request *ListRoutingProfileQueuesRequest) (*ListRoutingProfileQueuesResponse, error)
}

// QuickConnectAPI manages quick connects.
type QuickConnectAPI interface {
	// CreateQuickConnect creates a quick connect.
	CreateQuickConnect(ctx context.Context, request *CreateQuickConnectRequest) (*CreateQuickConnectResponse, error)

	// DescribeQuickConnect returns a quick connect.
	DescribeQuickConnect(ctx context.Context, request *DescribeQuickConnectRequest) (*DescribeQuickConnectResponse, error)

	// ListQuickConnects lists the quick connects of an instance.
	ListQuickConnects(ctx context.Context, request *ListQuickConnectsRequest) (*ListQuickConnectsResponse, error)

	// SearchQuickConnects searches the quick connects of an instance.
	SearchQuickConnects(ctx context.Context, request *SearchQuickConnectsRequest) (*SearchQuickConnectsResponse, error)

	// UpdateQuickConnectConfig changes the destination of a quick connect.
	UpdateQuickConnectConfig(ctx context.Context, request *UpdateQuickConnectConfigRequest) error

	// UpdateQuickConnectName renames a quick connect.
	UpdateQuickConnectName(ctx context.Context, request *UpdateQuickConnectNameRequest) error

	// DeleteQuickConnect deletes a quick connect.
	DeleteQuickConnect(ctx context.Context, request *DeleteQuickConnectRequest) error
}

// UserAPI manages agents and their real-time state.
type UserAPI interface {
	// CreateUser creates an agent account.
	CreateUser(ctx context.Context, request *CreateUserRequest) (*CreateUserResponse, error)

	// DescribeUser returns an agent account.
	DescribeUser(ctx context.Context, request *DescribeUserRequest) (*DescribeUserResponse, error)

	// ListUsers lists the agent accounts of an instance.
	ListUsers(ctx context.Context, request *ListUsersRequest) (*ListUsersResponse, error)

	// SearchUsers searches the agent accounts of an instance.
	SearchUsers(ctx context.Context, request *SearchUsersRequest) (*SearchUsersResponse, error)

	// DeleteUser deletes an agent account.
	DeleteUser(ctx context.Context, request *DeleteUserRequest) error

	// UpdateUserIdentityInfo changes the name and contact details of an agent.
	UpdateUserIdentityInfo(ctx context.Context, request *UpdateUserIdentityInfoRequest) error

	// UpdateUserPhoneConfig changes the phone settings of an agent.
	UpdateUserPhoneConfig(ctx context.Context, request *UpdateUserPhoneConfigRequest) error

	// UpdateUserRoutingProfile assigns a routing profile to an agent.
	UpdateUserRoutingProfile(ctx context.Context, request *UpdateUserRoutingProfileRequest) error

	// UpdateUserSecurityProfiles assigns security profiles to an agent.
	UpdateUserSecurityProfiles(ctx context.Context, request *UpdateUserSecurityProfilesRequest) error

	// UpdateUserHierarchy places an agent in a hierarchy group.
	UpdateUserHierarchy(ctx context.Context, request *UpdateUserHierarchyRequest) error

	// PutUserStatus changes the current status of an agent.
	PutUserStatus(ctx context.Context, request *PutUserStatusRequest) (*PutUserStatusResponse, error)

	// DismissUserContact dismisses a missed or rejected contact from an agent.
	DismissUserContact(ctx context.Context, request *DismissUserContactRequest) (*DismissUserContactResponse, error)

	// GetCurrentUserData returns the real-time state of agents.
	GetCurrentUserData(ctx context.Context, request *GetCurrentUserDataRequest) (*GetCurrentUserDataResponse, error)

	// GetFederationToken returns a short-lived federation token for the calling agent.
	GetFederationToken(ctx context.Context, request *GetFederationTokenRequest) (*GetFederationTokenResponse, error)
}

// UserHierarchyAPI manages the agent hierarchy.
type UserHierarchyAPI interface {
	// CreateUserHierarchyGroup creates an agent hierarchy group.
	CreateUserHierarchyGroup(ctx context.Context, request *CreateUserHierarchyGroupRequest) (*CreateUserHierarchyGroupResponse, error)

	// DescribeUserHierarchyGroup returns an agent hierarchy group.
	DescribeUserHierarchyGroup(ctx context.Context, request *DescribeUserHierarchyGroupRequest) (*DescribeUserHierarchyGroupResponse, error)

	// ListUserHierarchyGroups lists the agent hierarchy groups of an instance.
	ListUserHierarchyGroups(ctx context.Context, request *ListUserHierarchyGroupsRequest) (*ListUserHierarchyGroupsResponse, error)

	// UpdateUserHierarchyGroupName renames an agent hierarchy group.
	UpdateUserHierarchyGroupName(ctx context.Context, request *UpdateUserHierarchyGroupNameRequest) error

	// DeleteUserHierarchyGroup deletes an agent hierarchy group.
	DeleteUserHierarchyGroup(ctx context.Context, request *DeleteUserHierarchyGroupRequest) error

	// DescribeUserHierarchyStructure returns the level names of the agent hierarchy.
	DescribeUserHierarchyStructure(ctx context.Context, request *DescribeUserHierarchyStructureRequest) (*DescribeUserHierarchyStructureResponse, error)

	// UpdateUserHierarchyStructure renames the levels of the agent hierarchy.
	UpdateUserHierarchyStructure(ctx context.Context, request *UpdateUserHierarchyStructureRequest) error
}

// SecurityProfileAPI manages security profiles.
type SecurityProfileAPI interface {
	// CreateSecurityProfile creates a security profile.
	CreateSecurityProfile(ctx context.Context, request *CreateSecurityProfileRequest) (*CreateSecurityProfileResponse, error)

	// DescribeSecurityProfile returns a security profile.
	DescribeSecurityProfile(ctx context.Context, request *DescribeSecurityProfileRequest) (*DescribeSecurityProfileResponse, error)

	// ListSecurityProfiles lists the security profiles of an instance.
	ListSecurityProfiles(ctx context.Context, request *ListSecurityProfilesRequest) (*ListSecurityProfilesResponse, error)

	// SearchSecurityProfiles searches the security profiles of an instance.
	SearchSecurityProfiles(ctx context.Context, request *SearchSecurityProfilesRequest) (*SearchSecurityProfilesResponse, error)

	// ListSecurityProfilePermissions lists the permissions granted by a security profile.
	ListSecurityProfilePermissions(ctx context.Context, request *ListSecurityProfilePermissionsRequest) (*ListSecurityProfilePermissionsResponse, error)

	// UpdateSecurityProfile changes the permissions and description of a security profile.
	UpdateSecurityProfile(ctx context.Context, request *UpdateSecurityProfileRequest) error

	// DeleteSecurityProfile deletes a security profile.
	DeleteSecurityProfile(ctx context.Context, request *DeleteSecurityProfileRequest) error
}

// PhoneNumberAPI claims, configures and releases phone numbers.
type PhoneNumberAPI interface {
	// ClaimPhoneNumber claims a phone number into an instance or traffic distribution group.
	ClaimPhoneNumber(ctx context.Context, request *ClaimPhoneNumberRequest) (*ClaimPhoneNumberResponse, error)

	// DescribePhoneNumber returns a claimed phone number.
	DescribePhoneNumber(ctx context.Context, request *DescribePhoneNumberRequest) (*DescribePhoneNumberResponse, error)

	// ListPhoneNumbers lists the phone numbers of an instance.
	ListPhoneNumbers(ctx context.Context, request *ListPhoneNumbersRequest) (*ListPhoneNumbersResponse, error)

	// ListPhoneNumbersV2 lists the phone numbers claimed into a target.
	ListPhoneNumbersV2(ctx context.Context, request *ListPhoneNumbersV2Request) (*ListPhoneNumbersV2Response, error)

	// SearchAvailablePhoneNumbers searches the phone numbers available to claim.
	SearchAvailablePhoneNumbers(ctx context.Context, request *SearchAvailablePhoneNumbersRequest) (*SearchAvailablePhoneNumbersResponse, error)

	// UpdatePhoneNumber moves a claimed phone number to another target.
	UpdatePhoneNumber(ctx context.Context, request *UpdatePhoneNumberRequest) (*UpdatePhoneNumberResponse, error)

	// ReleasePhoneNumber releases a claimed phone number.
	ReleasePhoneNumber(ctx context.Context, request *ReleasePhoneNumberRequest) error

	// AssociatePhoneNumberContactFlow routes a phone number to a flow.
	AssociatePhoneNumberContactFlow(ctx context.Context, request *AssociatePhoneNumberContactFlowRequest) error

	// DisassociatePhoneNumberContactFlow removes the flow routing of a phone number.
	DisassociatePhoneNumberContactFlow(ctx context.Context, request *DisassociatePhoneNumberContactFlowRequest) error
}

// TrafficDistributionGroupAPI manages traffic distribution groups.
type TrafficDistributionGroupAPI interface {
	// CreateTrafficDistributionGroup creates a traffic distribution group.
	CreateTrafficDistributionGroup(ctx context.Context, request *CreateTrafficDistributionGroupRequest) (*CreateTrafficDistributionGroupResponse, error)

	// DescribeTrafficDistributionGroup returns a traffic distribution group.
	DescribeTrafficDistributionGroup(ctx context.Context, request *DescribeTrafficDistributionGroupRequest) (*DescribeTrafficDistributionGroupResponse, error)

	// ListTrafficDistributionGroups lists traffic distribution groups.
	ListTrafficDistributionGroups(ctx context.Context, request *ListTrafficDistributionGroupsRequest) (*ListTrafficDistributionGroupsResponse, error)

	// DeleteTrafficDistributionGroup deletes a traffic distribution group.
	DeleteTrafficDistributionGroup(ctx context.Context, request *DeleteTrafficDistributionGroupRequest) error

	// GetTrafficDistribution returns how traffic is split across regions.
	GetTrafficDistribution(ctx context.Context, request *GetTrafficDistributionRequest) (*GetTrafficDistributionResponse, error)

	// UpdateTrafficDistribution changes how traffic is split across regions.
	UpdateTrafficDistribution(ctx context.Context, request *UpdateTrafficDistributionRequest) error
}

// PromptAPI manages prompts.
type PromptAPI interface {
	// CreatePrompt creates a prompt from an audio file.
	CreatePrompt(ctx context.Context, request *CreatePromptRequest) (*CreatePromptResponse, error)

	// DescribePrompt returns a prompt.
	DescribePrompt(ctx context.Context, request *DescribePromptRequest) (*DescribePromptResponse, error)

	// ListPrompts lists the prompts of an instance.
	ListPrompts(ctx context.Context, request *ListPromptsRequest) (*ListPromptsResponse, error)

	// GetPromptFile returns a pre-signed URL for the audio of a prompt.
	GetPromptFile(ctx context.Context, request *GetPromptFileRequest) (*GetPromptFileResponse, error)

	// UpdatePrompt changes a prompt.
	UpdatePrompt(ctx context.Context, request *UpdatePromptRequest) (*UpdatePromptResponse, error)

	// DeletePrompt deletes a prompt.
	DeletePrompt(ctx context.Context, request *DeletePromptRequest) error
}

// VocabularyAPI manages custom vocabularies.
type VocabularyAPI interface {
	// CreateVocabulary creates a custom vocabulary.
	CreateVocabulary(ctx context.Context, request *CreateVocabularyRequest) (*CreateVocabularyResponse, error)

	// DescribeVocabulary returns a custom vocabulary.
	DescribeVocabulary(ctx context.Context, request *DescribeVocabularyRequest) (*DescribeVocabularyResponse, error)

	// SearchVocabularies searches the custom vocabularies of an instance.
	SearchVocabularies(ctx context.Context, request *SearchVocabulariesRequest) (*SearchVocabulariesResponse, error)

	// DeleteVocabulary deletes a custom vocabulary.
	DeleteVocabulary(ctx context.Context, request *DeleteVocabularyRequest) (*DeleteVocabularyResponse, error)

	// AssociateDefaultVocabulary makes a vocabulary the default for a language.
	AssociateDefaultVocabulary(ctx context.Context, request *AssociateDefaultVocabularyRequest) (*AssociateDefaultVocabularyResponse, error)

	// ListDefaultVocabularies lists the default vocabularies of an instance.
	ListDefaultVocabularies(ctx context.Context, request *ListDefaultVocabulariesRequest) (*ListDefaultVocabulariesResponse, error)
}

// EvaluationFormAPI manages evaluation forms and contact evaluations.
type EvaluationFormAPI interface {
	// CreateEvaluationForm creates an evaluation form.
	CreateEvaluationForm(ctx context.Context, request *CreateEvaluationFormRequest) (*CreateEvaluationFormResponse, error)

	// DescribeEvaluationForm returns a version of an evaluation form.
	DescribeEvaluationForm(ctx context.Context, request *DescribeEvaluationFormRequest) (*DescribeEvaluationFormResponse, error)

	// ListEvaluationForms lists the evaluation forms of an instance.
	ListEvaluationForms(ctx context.Context, request *ListEvaluationFormsRequest) (*ListEvaluationFormsResponse, error)

	// ListEvaluationFormVersions lists the versions of an evaluation form.
	ListEvaluationFormVersions(ctx context.Context, request *ListEvaluationFormVersionsRequest) (*ListEvaluationFormVersionsResponse, error)

	// UpdateEvaluationForm creates a new draft version of an evaluation form.
	UpdateEvaluationForm(ctx context.Context, request *UpdateEvaluationFormRequest) (*UpdateEvaluationFormResponse, error)

	// DeleteEvaluationForm deletes an evaluation form or one of its versions.
	DeleteEvaluationForm(ctx context.Context, request *DeleteEvaluationFormRequest) error

	// ActivateEvaluationForm activates a version of an evaluation form.
	ActivateEvaluationForm(ctx context.Context, request *ActivateEvaluationFormRequest) (*ActivateEvaluationFormResponse, error)

	// DeactivateEvaluationForm deactivates a version of an evaluation form.
	DeactivateEvaluationForm(ctx context.Context, request *DeactivateEvaluationFormRequest) (*DeactivateEvaluationFormResponse, error)

	// StartContactEvaluation starts an evaluation of a contact.
	StartContactEvaluation(ctx context.Context, request *StartContactEvaluationRequest) (*StartContactEvaluationResponse, error)

	// DescribeContactEvaluation returns a contact evaluation and the form it uses.
	DescribeContactEvaluation(ctx context.Context, request *DescribeContactEvaluationRequest) (*DescribeContactEvaluationResponse, error)

	// ListContactEvaluations lists the evaluations of a contact.
	ListContactEvaluations(ctx context.Context, request *ListContactEvaluationsRequest) (*ListContactEvaluationsResponse, error)

	// UpdateContactEvaluation saves answers and notes on a draft contact evaluation.
	UpdateContactEvaluation(ctx context.Context, request *UpdateContactEvaluationRequest) (*UpdateContactEvaluationResponse, error)

	// SubmitContactEvaluation submits a contact evaluation.
	SubmitContactEvaluation(ctx context.Context, request *SubmitContactEvaluationRequest) (*SubmitContactEvaluationResponse, error)

	// DeleteContactEvaluation deletes a contact evaluation.
	DeleteContactEvaluation(ctx context.Context, request *DeleteContactEvaluationRequest) error
}

// ContactAPI starts, controls and inspects contacts.
type ContactAPI interface {
	// StartChatContact starts a chat contact.
	StartChatContact(ctx context.Context, request *StartChatContactRequest) (*StartChatContactResponse, error)

	// StartTaskContact starts a task contact.
	StartTaskContact(ctx context.Context, request *StartTaskContactRequest) (*StartTaskContactResponse, error)

	// StartOutboundVoiceContact places an outbound call.
	StartOutboundVoiceContact(ctx context.Context, request *StartOutboundVoiceContactRequest) (*StartOutboundVoiceContactResponse, error)

	// StopContact ends a contact.
	StopContact(ctx context.Context, request *StopContactRequest) (*StopContactResponse, error)

	// TransferContact transfers a contact to a queue or agent.
	TransferContact(ctx context.Context, request *TransferContactRequest) (*TransferContactResponse, error)

	// MonitorContact starts silent monitoring or barge-in on a contact.
	MonitorContact(ctx context.Context, request *MonitorContactRequest) (*MonitorContactResponse, error)

	// DescribeContact returns a contact.
	DescribeContact(ctx context.Context, request *DescribeContactRequest) (*DescribeContactResponse, error)

	// UpdateContact changes the name, description or references of a contact.
	UpdateContact(ctx context.Context, request *UpdateContactRequest) (*UpdateContactResponse, error)

	// UpdateContactAttributes creates or updates user-defined contact attributes.
	UpdateContactAttributes(ctx context.Context, request *UpdateContactAttributesRequest) (*UpdateContactAttributesResponse, error)

	// GetContactAttributes returns the user-defined attributes of a contact.
	GetContactAttributes(ctx context.Context, request *GetContactAttributesRequest) (*GetContactAttributesResponse, error)

	// UpdateContactSchedule reschedules a scheduled task contact.
	UpdateContactSchedule(ctx context.Context, request *UpdateContactScheduleRequest) (*UpdateContactScheduleResponse, error)

	// ListContactReferences lists the references attached to a contact.
	ListContactReferences(ctx context.Context, request *ListContactReferencesRequest) (*ListContactReferencesResponse, error)

	// StartContactRecording starts recording a contact.
	StartContactRecording(ctx context.Context, request *StartContactRecordingRequest) (*StartContactRecordingResponse, error)

	// StopContactRecording stops recording a contact.
	StopContactRecording(ctx context.Context, request *StopContactRecordingRequest) (*StopContactRecordingResponse, error)

	// SuspendContactRecording pauses recording of a contact.
	SuspendContactRecording(ctx context.Context, request *SuspendContactRecordingRequest) (*SuspendContactRecordingResponse, error)

	// ResumeContactRecording resumes a paused recording.
	ResumeContactRecording(ctx context.Context, request *ResumeContactRecordingRequest) (*ResumeContactRecordingResponse, error)

	// StartContactStreaming starts streaming chat messages to a streaming endpoint.
	StartContactStreaming(ctx context.Context, request *StartContactStreamingRequest) (*StartContactStreamingResponse, error)

	// StopContactStreaming stops streaming chat messages.
	StopContactStreaming(ctx context.Context, request *StopContactStreamingRequest) (*StopContactStreamingResponse, error)

	// CreateParticipant adds a participant to a chat contact.
	CreateParticipant(ctx context.Context, request *CreateParticipantRequest) (*CreateParticipantResponse, error)

	// UpdateParticipantRoleConfig changes timers for a participant role on a chat contact.
	UpdateParticipantRoleConfig(ctx context.Context, request *UpdateParticipantRoleConfigRequest) (*UpdateParticipantRoleConfigResponse, error)
}

// TagAPI tags resources.
type TagAPI interface {
	// TagResource adds tags to a resource.
	TagResource(ctx context.Context, request *TagResourceRequest) error

	// UntagResource removes tags from a resource.
	UntagResource(ctx context.Context, request *UntagResourceRequest) error

	// ListTagsForResource lists the tags of a resource.
	ListTagsForResource(ctx context.Context, request *ListTagsForResourceRequest) (*ListTagsForResourceResponse, error)

	// SearchResourceTags searches the tags used in an instance.
	SearchResourceTags(ctx context.Context, request *SearchResourceTagsRequest) (*SearchResourceTagsResponse, error)
}

// IntegrationAPI manages integration associations and use cases.
type IntegrationAPI interface {
	// CreateIntegrationAssociation associates an external application with an instance.
	CreateIntegrationAssociation(ctx context.Context, request *CreateIntegrationAssociationRequest) (*CreateIntegrationAssociationResponse, error)

	// DeleteIntegrationAssociation removes an integration association and its use cases.
	DeleteIntegrationAssociation(ctx context.Context, request *DeleteIntegrationAssociationRequest) error

	// ListIntegrationAssociations lists the integration associations of an instance.
	ListIntegrationAssociations(ctx context.Context, request *ListIntegrationAssociationsRequest) (*ListIntegrationAssociationsResponse, error)

	// CreateUseCase creates a use case for an integration association.
	CreateUseCase(ctx context.Context, request *CreateUseCaseRequest) (*CreateUseCaseResponse, error)

	// DeleteUseCase deletes a use case.
	DeleteUseCase(ctx context.Context, request *DeleteUseCaseRequest) error

	// ListUseCases lists the use cases of an integration association.
	ListUseCases(ctx context.Context, request *ListUseCasesRequest) (*ListUseCasesResponse, error)
}

// HoursOfOperationAPI manages hours of operation.
type HoursOfOperationAPI interface {
	// CreateHoursOfOperation creates hours of operation.
	CreateHoursOfOperation(ctx context.Context, request *CreateHoursOfOperationRequest) (*CreateHoursOfOperationResponse, error)

	// DescribeHoursOfOperation returns hours of operation.
	DescribeHoursOfOperation(ctx context.Context, request *DescribeHoursOfOperationRequest) (*DescribeHoursOfOperationResponse, error)

	// ListHoursOfOperations lists the hours of operation of an instance.
	ListHoursOfOperations(ctx context.Context, request *ListHoursOfOperationsRequest) (*ListHoursOfOperationsResponse, error)

	// UpdateHoursOfOperation changes hours of operation.
	UpdateHoursOfOperation(ctx context.Context, request *UpdateHoursOfOperationRequest) error

	// DeleteHoursOfOperation deletes hours of operation.
	DeleteHoursOfOperation(ctx context.Context, request *DeleteHoursOfOperationRequest) error
}

// AgentStatusAPI manages agent statuses.
type AgentStatusAPI interface {
	// CreateAgentStatus creates an agent status.
	CreateAgentStatus(ctx context.Context, request *CreateAgentStatusRequest) (*CreateAgentStatusResponse, error)

	// DescribeAgentStatus returns an agent status.
	DescribeAgentStatus(ctx context.Context, request *DescribeAgentStatusRequest) (*DescribeAgentStatusResponse, error)

	// ListAgentStatuses lists the agent statuses of an instance.
	ListAgentStatuses(ctx context.Context, request *ListAgentStatusesRequest) (*ListAgentStatusesResponse, error)

	// UpdateAgentStatus changes an agent status.
	UpdateAgentStatus(ctx context.Context, request *UpdateAgentStatusRequest) error
}

// RuleAPI manages rules.
type RuleAPI interface {
	// CreateRule creates a rule.
	CreateRule(ctx context.Context, request *CreateRuleRequest) (*CreateRuleResponse, error)

	// DescribeRule returns a rule.
	DescribeRule(ctx context.Context, request *DescribeRuleRequest) (*DescribeRuleResponse, error)

	// ListRules lists the rules of an instance.
	ListRules(ctx context.Context, request *ListRulesRequest) (*ListRulesResponse, error)

	// UpdateRule changes a rule.
	UpdateRule(ctx context.Context, request *UpdateRuleRequest) error

	// DeleteRule deletes a rule.
	DeleteRule(ctx context.Context, request *DeleteRuleRequest) error
}

// TaskTemplateAPI manages task templates.
type TaskTemplateAPI interface {
	// CreateTaskTemplate creates a task template.
	CreateTaskTemplate(ctx context.Context, request *CreateTaskTemplateRequest) (*CreateTaskTemplateResponse, error)

	// GetTaskTemplate returns a task template.
	GetTaskTemplate(ctx context.Context, request *GetTaskTemplateRequest) (*GetTaskTemplateResponse, error)

	// ListTaskTemplates lists the task templates of an instance.
	ListTaskTemplates(ctx context.Context, request *ListTaskTemplatesRequest) (*ListTaskTemplatesResponse, error)

	// UpdateTaskTemplate changes a task template.
	UpdateTaskTemplate(ctx context.Context, request *UpdateTaskTemplateRequest) (*UpdateTaskTemplateResponse, error)

	// DeleteTaskTemplate deletes a task template.
	DeleteTaskTemplate(ctx context.Context, request *DeleteTaskTemplateRequest) error
}

// MetricsAPI reads real-time and historical metrics.
type MetricsAPI interface {
	// GetCurrentMetricData returns real-time queue metrics.
	GetCurrentMetricData(ctx context.Context, request *GetCurrentMetricDataRequest) (*GetCurrentMetricDataResponse, error)

	// GetMetricData returns historical queue metrics.
	GetMetricData(ctx context.Context, request *GetMetricDataRequest) (*GetMetricDataResponse, error)

	// GetMetricDataV2 returns historical metrics for any resource.
	GetMetricDataV2(ctx context.Context, request *GetMetricDataV2Request) (*GetMetricDataV2Response, error)
}
