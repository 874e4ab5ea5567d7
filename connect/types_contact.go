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

// Contact describes a contact.
type Contact struct {
	ARN                 string     `json:"Arn,omitempty"`
	ID                  string     `json:"Id,omitempty"`
	InitialContactID    string     `json:"InitialContactId,omitempty"`
	PreviousContactID   string     `json:"PreviousContactId,omitempty"`
	InitiationMethod    string     `json:"InitiationMethod,omitempty"`
	Name                string     `json:"Name,omitempty"`
	Description         string     `json:"Description,omitempty"`
	Channel             string     `json:"Channel,omitempty"`
	QueueInfo           *QueueInfo `json:"QueueInfo,omitempty"`
	AgentInfo           *AgentInfo `json:"AgentInfo,omitempty"`
	InitiationTimestamp *time.Time `json:"InitiationTimestamp,omitempty"`
	DisconnectTimestamp *time.Time `json:"DisconnectTimestamp,omitempty"`
	LastUpdateTimestamp *time.Time `json:"LastUpdateTimestamp,omitempty"`
	ScheduledTimestamp  *time.Time `json:"ScheduledTimestamp,omitempty"`
	RelatedContactID    string     `json:"RelatedContactId,omitempty"`
}

// QueueInfo is the queue a contact was placed in.
type QueueInfo struct {
	ID               string     `json:"Id,omitempty"`
	EnqueueTimestamp *time.Time `json:"EnqueueTimestamp,omitempty"`
}

// AgentInfo is the agent a contact was routed to.
type AgentInfo struct {
	ID                        string     `json:"Id,omitempty"`
	ConnectedToAgentTimestamp *time.Time `json:"ConnectedToAgentTimestamp,omitempty"`
}

// ChatMessage is the first message of a chat.
type ChatMessage struct {
	ContentType string `json:"ContentType,omitempty"`
	Content     string `json:"Content,omitempty"`
}

// ParticipantDetails names the customer on a chat.
type ParticipantDetails struct {
	DisplayName string `json:"DisplayName,omitempty"`
}

// ParticipantDetailsToAdd names a participant added to a chat.
type ParticipantDetailsToAdd struct {
	ParticipantRole string `json:"ParticipantRole,omitempty"`
	DisplayName     string `json:"DisplayName,omitempty"`
}

// ParticipantTokenCredentials authenticates a chat participant.
type ParticipantTokenCredentials struct {
	ParticipantToken string `json:"ParticipantToken,omitempty"`
	Expiry           string `json:"Expiry,omitempty"`
}

// PersistentChat continues a previous chat.
type PersistentChat struct {
	RehydrationType string `json:"RehydrationType,omitempty"`
	SourceContactID string `json:"SourceContactId,omitempty"`
}

// ChatStreamingConfiguration is the endpoint chat messages are streamed to.
type ChatStreamingConfiguration struct {
	StreamingEndpointARN string `json:"StreamingEndpointArn,omitempty"`
}

// VoiceRecordingConfiguration selects which audio tracks are recorded.
type VoiceRecordingConfiguration struct {
	VoiceRecordingTrack string `json:"VoiceRecordingTrack,omitempty"`
}

// AnswerMachineDetectionConfig controls answering machine detection.
type AnswerMachineDetectionConfig struct {
	EnableAnswerMachineDetection bool `json:"EnableAnswerMachineDetection,omitempty"`
	AwaitAnswerMachinePrompt     bool `json:"AwaitAnswerMachinePrompt,omitempty"`
}

// UpdateParticipantRoleConfigChannelInfo is the per-channel participant role configuration.
type UpdateParticipantRoleConfigChannelInfo struct {
	Chat *ChatParticipantRoleConfig `json:"Chat,omitempty"`
}

// ChatParticipantRoleConfig configures timers for chat participants.
type ChatParticipantRoleConfig struct {
	ParticipantTimerConfigList []ParticipantTimerConfiguration `json:"ParticipantTimerConfigList,omitempty"`
}

// ParticipantTimerConfiguration configures one participant timer.
type ParticipantTimerConfiguration struct {
	ParticipantRole string                 `json:"ParticipantRole,omitempty"`
	TimerType       string                 `json:"TimerType,omitempty"`
	TimerValue      *ParticipantTimerValue `json:"TimerValue,omitempty"`
}

// ParticipantTimerValue is the action or duration of a participant timer.
type ParticipantTimerValue struct {
	ParticipantTimerAction            string `json:"ParticipantTimerAction,omitempty"`
	ParticipantTimerDurationInMinutes *int32 `json:"ParticipantTimerDurationInMinutes,omitempty"`
}

// StartChatContactRequest is the input of StartChatContact. The service requires InstanceID,
// ContactFlowID and ParticipantDetails.
type StartChatContactRequest struct {
	InstanceID                     string              `json:"InstanceId,omitempty"`
	ContactFlowID                  string              `json:"ContactFlowId,omitempty"`
	Attributes                     map[string]string   `json:"Attributes,omitempty"`
	ParticipantDetails             *ParticipantDetails `json:"ParticipantDetails,omitempty"`
	InitialMessage                 *ChatMessage        `json:"InitialMessage,omitempty"`
	ChatDurationInMinutes          *int32              `json:"ChatDurationInMinutes,omitempty"`
	SupportedMessagingContentTypes []string            `json:"SupportedMessagingContentTypes,omitempty"`
	PersistentChat                 *PersistentChat     `json:"PersistentChat,omitempty"`
	RelatedContactID               string              `json:"RelatedContactId,omitempty"`
	ClientToken                    string              `json:"ClientToken,omitempty"`
}

// StartChatContactResponse is the output of StartChatContact.
type StartChatContactResponse struct {
	ContactID              string `json:"ContactId,omitempty"`
	ParticipantID          string `json:"ParticipantId,omitempty"`
	ParticipantToken       string `json:"ParticipantToken,omitempty"`
	ContinuedFromContactID string `json:"ContinuedFromContactId,omitempty"`
}

// StartTaskContactRequest is the input of StartTaskContact. The service requires InstanceID and
// Name.
type StartTaskContactRequest struct {
	InstanceID        string               `json:"InstanceId,omitempty"`
	PreviousContactID string               `json:"PreviousContactId,omitempty"`
	ContactFlowID     string               `json:"ContactFlowId,omitempty"`
	Attributes        map[string]string    `json:"Attributes,omitempty"`
	Name              string               `json:"Name,omitempty"`
	References        map[string]Reference `json:"References,omitempty"`
	Description       string               `json:"Description,omitempty"`
	ScheduledTime     *time.Time           `json:"ScheduledTime,omitempty"`
	TaskTemplateID    string               `json:"TaskTemplateId,omitempty"`
	QuickConnectID    string               `json:"QuickConnectId,omitempty"`
	RelatedContactID  string               `json:"RelatedContactId,omitempty"`
	ClientToken       string               `json:"ClientToken,omitempty"`
}

// StartTaskContactResponse is the output of StartTaskContact.
type StartTaskContactResponse struct {
	ContactID string `json:"ContactId,omitempty"`
}

// StartOutboundVoiceContactRequest is the input of StartOutboundVoiceContact. The service requires
// DestinationPhoneNumber, ContactFlowID and InstanceID.
type StartOutboundVoiceContactRequest struct {
	DestinationPhoneNumber       string                        `json:"DestinationPhoneNumber,omitempty"`
	ContactFlowID                string                        `json:"ContactFlowId,omitempty"`
	InstanceID                   string                        `json:"InstanceId,omitempty"`
	SourcePhoneNumber            string                        `json:"SourcePhoneNumber,omitempty"`
	QueueID                      string                        `json:"QueueId,omitempty"`
	Attributes                   map[string]string             `json:"Attributes,omitempty"`
	AnswerMachineDetectionConfig *AnswerMachineDetectionConfig `json:"AnswerMachineDetectionConfig,omitempty"`
	CampaignID                   string                        `json:"CampaignId,omitempty"`
	TrafficType                  string                        `json:"TrafficType,omitempty"`
	ClientToken                  string                        `json:"ClientToken,omitempty"`
}

// StartOutboundVoiceContactResponse is the output of StartOutboundVoiceContact.
type StartOutboundVoiceContactResponse struct {
	ContactID string `json:"ContactId,omitempty"`
}

// StopContactRequest is the input of StopContact. The service requires ContactID and InstanceID.
type StopContactRequest struct {
	ContactID  string `json:"ContactId,omitempty"`
	InstanceID string `json:"InstanceId,omitempty"`
}

// StopContactResponse is the output of StopContact.
type StopContactResponse struct{}

// TransferContactRequest is the input of TransferContact. The service requires InstanceID,
// ContactID and ContactFlowID.
type TransferContactRequest struct {
	InstanceID    string `json:"InstanceId,omitempty"`
	ContactID     string `json:"ContactId,omitempty"`
	QueueID       string `json:"QueueId,omitempty"`
	UserID        string `json:"UserId,omitempty"`
	ContactFlowID string `json:"ContactFlowId,omitempty"`
	ClientToken   string `json:"ClientToken,omitempty"`
}

// TransferContactResponse is the output of TransferContact.
type TransferContactResponse struct {
	ContactID  string `json:"ContactId,omitempty"`
	ContactARN string `json:"ContactArn,omitempty"`
}

// MonitorContactRequest is the input of MonitorContact. The service requires InstanceID, ContactID
// and UserID.
type MonitorContactRequest struct {
	InstanceID                 string   `json:"InstanceId,omitempty"`
	ContactID                  string   `json:"ContactId,omitempty"`
	UserID                     string   `json:"UserId,omitempty"`
	AllowedMonitorCapabilities []string `json:"AllowedMonitorCapabilities,omitempty"`
	ClientToken                string   `json:"ClientToken,omitempty"`
}

// MonitorContactResponse is the output of MonitorContact.
type MonitorContactResponse struct {
	ContactID  string `json:"ContactId,omitempty"`
	ContactARN string `json:"ContactArn,omitempty"`
}

// DescribeContactRequest is the input of DescribeContact. The service requires InstanceID and
// ContactID.
type DescribeContactRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	ContactID  string `json:"ContactId,omitempty"`
}

// DescribeContactResponse is the output of DescribeContact.
type DescribeContactResponse struct {
	Contact *Contact `json:"Contact,omitempty"`
}

// UpdateContactRequest is the input of UpdateContact. The service requires InstanceID and
// ContactID.
type UpdateContactRequest struct {
	InstanceID  string               `json:"InstanceId,omitempty"`
	ContactID   string               `json:"ContactId,omitempty"`
	Name        string               `json:"Name,omitempty"`
	Description string               `json:"Description,omitempty"`
	References  map[string]Reference `json:"References,omitempty"`
}

// UpdateContactResponse is the output of UpdateContact.
type UpdateContactResponse struct{}

// UpdateContactAttributesRequest is the input of UpdateContactAttributes. The service requires
// InitialContactID, InstanceID and Attributes.
type UpdateContactAttributesRequest struct {
	InitialContactID string            `json:"InitialContactId,omitempty"`
	InstanceID       string            `json:"InstanceId,omitempty"`
	Attributes       map[string]string `json:"Attributes,omitempty"`
}

// UpdateContactAttributesResponse is the output of UpdateContactAttributes.
type UpdateContactAttributesResponse struct{}

// GetContactAttributesRequest is the input of GetContactAttributes. The service requires InstanceID
// and InitialContactID.
type GetContactAttributesRequest struct {
	InstanceID       string `json:"InstanceId,omitempty"`
	InitialContactID string `json:"InitialContactId,omitempty"`
}

// GetContactAttributesResponse is the output of GetContactAttributes.
type GetContactAttributesResponse struct {
	Attributes map[string]string `json:"Attributes,omitempty"`
}

// UpdateContactScheduleRequest is the input of UpdateContactSchedule. The service requires
// InstanceID, ContactID and ScheduledTime.
type UpdateContactScheduleRequest struct {
	InstanceID    string     `json:"InstanceId,omitempty"`
	ContactID     string     `json:"ContactId,omitempty"`
	ScheduledTime *time.Time `json:"ScheduledTime,omitempty"`
}

// UpdateContactScheduleResponse is the output of UpdateContactSchedule.
type UpdateContactScheduleResponse struct{}

// ListContactReferencesRequest is the input of ListContactReferences. The service requires
// InstanceID, ContactID and ReferenceTypes.
type ListContactReferencesRequest struct {
	InstanceID     string   `json:"InstanceId,omitempty"`
	ContactID      string   `json:"ContactId,omitempty"`
	ReferenceTypes []string `json:"ReferenceTypes,omitempty"`
	NextToken      string   `json:"NextToken,omitempty"`
	MaxResults     *int32   `json:"MaxResults,omitempty"`
}

// ListContactReferencesResponse is the output of ListContactReferences.
type ListContactReferencesResponse struct {
	ReferenceSummaryList []ReferenceSummary `json:"ReferenceSummaryList,omitempty"`
	NextToken            string             `json:"NextToken,omitempty"`
}

// StartContactRecordingRequest is the input of StartContactRecording. The service requires
// InstanceID, ContactID, InitialContactID and VoiceRecordingConfiguration.
type StartContactRecordingRequest struct {
	InstanceID                  string                       `json:"InstanceId,omitempty"`
	ContactID                   string                       `json:"ContactId,omitempty"`
	InitialContactID            string                       `json:"InitialContactId,omitempty"`
	VoiceRecordingConfiguration *VoiceRecordingConfiguration `json:"VoiceRecordingConfiguration,omitempty"`
}

// StartContactRecordingResponse is the output of StartContactRecording.
type StartContactRecordingResponse struct{}

// StopContactRecordingRequest is the input of StopContactRecording. The service requires
// InstanceID, ContactID and InitialContactID.
type StopContactRecordingRequest struct {
	InstanceID       string `json:"InstanceId,omitempty"`
	ContactID        string `json:"ContactId,omitempty"`
	InitialContactID string `json:"InitialContactId,omitempty"`
}

// StopContactRecordingResponse is the output of StopContactRecording.
type StopContactRecordingResponse struct{}

// SuspendContactRecordingRequest is the input of SuspendContactRecording. The service requires
// InstanceID, ContactID and InitialContactID.
type SuspendContactRecordingRequest struct {
	InstanceID       string `json:"InstanceId,omitempty"`
	ContactID        string `json:"ContactId,omitempty"`
	InitialContactID string `json:"InitialContactId,omitempty"`
}

// SuspendContactRecordingResponse is the output of SuspendContactRecording.
type SuspendContactRecordingResponse struct{}

// ResumeContactRecordingRequest is the input of ResumeContactRecording. The service requires
// InstanceID, ContactID and InitialContactID.
type ResumeContactRecordingRequest struct {
	InstanceID       string `json:"InstanceId,omitempty"`
	ContactID        string `json:"ContactId,omitempty"`
	InitialContactID string `json:"InitialContactId,omitempty"`
}

// ResumeContactRecordingResponse is the output of ResumeContactRecording.
type ResumeContactRecordingResponse struct{}

// StartContactStreamingRequest is the input of StartContactStreaming. The service requires
// InstanceID, ContactID and ChatStreamingConfiguration.
type StartContactStreamingRequest struct {
	InstanceID                 string                      `json:"InstanceId,omitempty"`
	ContactID                  string                      `json:"ContactId,omitempty"`
	ChatStreamingConfiguration *ChatStreamingConfiguration `json:"ChatStreamingConfiguration,omitempty"`
	ClientToken                string                      `json:"ClientToken,omitempty"`
}

// StartContactStreamingResponse is the output of StartContactStreaming.
type StartContactStreamingResponse struct {
	StreamingID string `json:"StreamingId,omitempty"`
}

// StopContactStreamingRequest is the input of StopContactStreaming. The service requires
// InstanceID, ContactID and StreamingID.
type StopContactStreamingRequest struct {
	InstanceID  string `json:"InstanceId,omitempty"`
	ContactID   string `json:"ContactId,omitempty"`
	StreamingID string `json:"StreamingId,omitempty"`
}

// StopContactStreamingResponse is the output of StopContactStreaming.
type StopContactStreamingResponse struct{}

// CreateParticipantRequest is the input of CreateParticipant. The service requires InstanceID,
// ContactID and ParticipantDetails.
type CreateParticipantRequest struct {
	InstanceID         string                   `json:"InstanceId,omitempty"`
	ContactID          string                   `json:"ContactId,omitempty"`
	ParticipantDetails *ParticipantDetailsToAdd `json:"ParticipantDetails,omitempty"`
	ClientToken        string                   `json:"ClientToken,omitempty"`
}

// CreateParticipantResponse is the output of CreateParticipant.
type CreateParticipantResponse struct {
	ParticipantCredentials *ParticipantTokenCredentials `json:"ParticipantCredentials,omitempty"`
	ParticipantID          string                       `json:"ParticipantId,omitempty"`
}

// UpdateParticipantRoleConfigRequest is the input of UpdateParticipantRoleConfig. The service
// requires InstanceID, ContactID and ChannelConfiguration.
type UpdateParticipantRoleConfigRequest struct {
	InstanceID           string                                  `json:"InstanceId,omitempty"`
	ContactID            string                                  `json:"ContactId,omitempty"`
	ChannelConfiguration *UpdateParticipantRoleConfigChannelInfo `json:"ChannelConfiguration,omitempty"`
}

// UpdateParticipantRoleConfigResponse is the output of UpdateParticipantRoleConfig.
type UpdateParticipantRoleConfigResponse struct{}

func (r *StartChatContactRequest) clientToken() string {
	return r.ClientToken
}

func (r *StartChatContactRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}

func (r *StartTaskContactRequest) clientToken() string {
	return r.ClientToken
}

func (r *StartTaskContactRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}

func (r *StartOutboundVoiceContactRequest) clientToken() string {
	return r.ClientToken
}

func (r *StartOutboundVoiceContactRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}

func (r *TransferContactRequest) clientToken() string {
	return r.ClientToken
}

func (r *TransferContactRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}

func (r *MonitorContactRequest) clientToken() string {
	return r.ClientToken
}

func (r *MonitorContactRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}

func (r *StartContactStreamingRequest) clientToken() string {
	return r.ClientToken
}

func (r *StartContactStreamingRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}

func (r *CreateParticipantRequest) clientToken() string {
	return r.ClientToken
}

func (r *CreateParticipantRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}
