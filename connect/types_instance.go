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

// Instance describes a contact-center instance.
type Instance struct {
	ID                     string                `json:"Id,omitempty"`
	ARN                    string                `json:"Arn,omitempty"`
	IdentityManagementType string                `json:"IdentityManagementType,omitempty"`
	InstanceAlias          string                `json:"InstanceAlias,omitempty"`
	CreatedTime            *time.Time            `json:"CreatedTime,omitempty"`
	ServiceRole            string                `json:"ServiceRole,omitempty"`
	InstanceStatus         string                `json:"InstanceStatus,omitempty"`
	StatusReason           *InstanceStatusReason `json:"StatusReason,omitempty"`
	InboundCallsEnabled    *bool                 `json:"InboundCallsEnabled,omitempty"`
	OutboundCallsEnabled   *bool                 `json:"OutboundCallsEnabled,omitempty"`
	Tags                   map[string]string     `json:"Tags,omitempty"`
}

// InstanceStatusReason explains why an instance failed to create.
type InstanceStatusReason struct {
	Message string `json:"Message,omitempty"`
}

// InstanceSummary summarizes a contact-center instance.
type InstanceSummary struct {
	ID                     string     `json:"Id,omitempty"`
	ARN                    string     `json:"Arn,omitempty"`
	IdentityManagementType string     `json:"IdentityManagementType,omitempty"`
	InstanceAlias          string     `json:"InstanceAlias,omitempty"`
	CreatedTime            *time.Time `json:"CreatedTime,omitempty"`
	ServiceRole            string     `json:"ServiceRole,omitempty"`
	InstanceStatus         string     `json:"InstanceStatus,omitempty"`
	InboundCallsEnabled    *bool      `json:"InboundCallsEnabled,omitempty"`
	OutboundCallsEnabled   *bool      `json:"OutboundCallsEnabled,omitempty"`
}

// Attribute is one feature toggle of an instance.
type Attribute struct {
	AttributeType string `json:"AttributeType,omitempty"`
	Value         string `json:"Value,omitempty"`
}

// InstanceStorageConfig describes where an instance stores one kind of data.
type InstanceStorageConfig struct {
	AssociationID            string                    `json:"AssociationId,omitempty"`
	StorageType              string                    `json:"StorageType,omitempty"`
	S3Config                 *S3Config                 `json:"S3Config,omitempty"`
	KinesisVideoStreamConfig *KinesisVideoStreamConfig `json:"KinesisVideoStreamConfig,omitempty"`
	KinesisStreamConfig      *KinesisStreamConfig      `json:"KinesisStreamConfig,omitempty"`
	KinesisFirehoseConfig    *KinesisFirehoseConfig    `json:"KinesisFirehoseConfig,omitempty"`
}

// S3Config is an object storage destination.
type S3Config struct {
	BucketName       string            `json:"BucketName,omitempty"`
	BucketPrefix     string            `json:"BucketPrefix,omitempty"`
	EncryptionConfig *EncryptionConfig `json:"EncryptionConfig,omitempty"`
}

// KinesisVideoStreamConfig is a video stream destination.
type KinesisVideoStreamConfig struct {
	Prefix               string            `json:"Prefix,omitempty"`
	RetentionPeriodHours int32             `json:"RetentionPeriodHours,omitempty"`
	EncryptionConfig     *EncryptionConfig `json:"EncryptionConfig,omitempty"`
}

// KinesisStreamConfig is a data stream destination.
type KinesisStreamConfig struct {
	StreamARN string `json:"StreamArn,omitempty"`
}

// KinesisFirehoseConfig is a delivery stream destination.
type KinesisFirehoseConfig struct {
	FirehoseARN string `json:"FirehoseArn,omitempty"`
}

// EncryptionConfig names the key used to encrypt stored data.
type EncryptionConfig struct {
	EncryptionType string `json:"EncryptionType,omitempty"`
	KeyID          string `json:"KeyId,omitempty"`
}

// SecurityKey is a signing key associated with an instance.
type SecurityKey struct {
	AssociationID string     `json:"AssociationId,omitempty"`
	Key           string     `json:"Key,omitempty"`
	CreationTime  *time.Time `json:"CreationTime,omitempty"`
}

// LexBot identifies a classic chat bot.
type LexBot struct {
	Name      string `json:"Name,omitempty"`
	LexRegion string `json:"LexRegion,omitempty"`
}

// LexV2Bot identifies a chat bot alias.
type LexV2Bot struct {
	AliasARN string `json:"AliasArn,omitempty"`
}

// LexBotConfig is one chat bot associated with an instance.
type LexBotConfig struct {
	LexBot   *LexBot   `json:"LexBot,omitempty"`
	LexV2Bot *LexV2Bot `json:"LexV2Bot,omitempty"`
}

// CreateInstanceRequest is the input of CreateInstance. The service requires
// IdentityManagementType, InboundCallsEnabled and OutboundCallsEnabled.
type CreateInstanceRequest struct {
	IdentityManagementType string            `json:"IdentityManagementType,omitempty"`
	InstanceAlias          string            `json:"InstanceAlias,omitempty"`
	DirectoryID            string            `json:"DirectoryId,omitempty"`
	InboundCallsEnabled    *bool             `json:"InboundCallsEnabled,omitempty"`
	OutboundCallsEnabled   *bool             `json:"OutboundCallsEnabled,omitempty"`
	Tags                   map[string]string `json:"Tags,omitempty"`
	ClientToken            string            `json:"ClientToken,omitempty"`
}

// CreateInstanceResponse is the output of CreateInstance.
type CreateInstanceResponse struct {
	ID  string `json:"Id,omitempty"`
	ARN string `json:"Arn,omitempty"`
}

// DeleteInstanceRequest is the input of DeleteInstance. The service requires InstanceID.
type DeleteInstanceRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
}

// DescribeInstanceRequest is the input of DescribeInstance. The service requires InstanceID.
type DescribeInstanceRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
}

// DescribeInstanceResponse is the output of DescribeInstance.
type DescribeInstanceResponse struct {
	Instance *Instance `json:"Instance,omitempty"`
}

// ListInstancesRequest is the input of ListInstances.
type ListInstancesRequest struct {
	NextToken  string `json:"NextToken,omitempty"`
	MaxResults *int32 `json:"MaxResults,omitempty"`
}

// ListInstancesResponse is the output of ListInstances.
type ListInstancesResponse struct {
	InstanceSummaryList []InstanceSummary `json:"InstanceSummaryList,omitempty"`
	NextToken           string            `json:"NextToken,omitempty"`
}

// DescribeInstanceAttributeRequest is the input of DescribeInstanceAttribute. The service requires
// InstanceID and AttributeType.
type DescribeInstanceAttributeRequest struct {
	InstanceID    string `json:"InstanceId,omitempty"`
	AttributeType string `json:"AttributeType,omitempty"`
}

// DescribeInstanceAttributeResponse is the output of DescribeInstanceAttribute.
type DescribeInstanceAttributeResponse struct {
	Attribute *Attribute `json:"Attribute,omitempty"`
}

// UpdateInstanceAttributeRequest is the input of UpdateInstanceAttribute. The service requires
// InstanceID, AttributeType and Value.
type UpdateInstanceAttributeRequest struct {
	InstanceID    string `json:"InstanceId,omitempty"`
	AttributeType string `json:"AttributeType,omitempty"`
	Value         string `json:"Value,omitempty"`
}

// ListInstanceAttributesRequest is the input of ListInstanceAttributes. The service requires
// InstanceID.
type ListInstanceAttributesRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	NextToken  string `json:"NextToken,omitempty"`
	MaxResults *int32 `json:"MaxResults,omitempty"`
}

// ListInstanceAttributesResponse is the output of ListInstanceAttributes.
type ListInstanceAttributesResponse struct {
	Attributes []Attribute `json:"Attributes,omitempty"`
	NextToken  string      `json:"NextToken,omitempty"`
}

// AssociateInstanceStorageConfigRequest is the input of AssociateInstanceStorageConfig. The service
// requires InstanceID, ResourceType and StorageConfig.
type AssociateInstanceStorageConfigRequest struct {
	InstanceID    string                 `json:"InstanceId,omitempty"`
	ResourceType  string                 `json:"ResourceType,omitempty"`
	StorageConfig *InstanceStorageConfig `json:"StorageConfig,omitempty"`
}

// AssociateInstanceStorageConfigResponse is the output of AssociateInstanceStorageConfig.
type AssociateInstanceStorageConfigResponse struct {
	AssociationID string `json:"AssociationId,omitempty"`
}

// DescribeInstanceStorageConfigRequest is the input of DescribeInstanceStorageConfig. The service
// requires InstanceID, AssociationID and ResourceType.
type DescribeInstanceStorageConfigRequest struct {
	InstanceID    string `json:"InstanceId,omitempty"`
	AssociationID string `json:"AssociationId,omitempty"`
	ResourceType  string `json:"ResourceType,omitempty"`
}

// DescribeInstanceStorageConfigResponse is the output of DescribeInstanceStorageConfig.
type DescribeInstanceStorageConfigResponse struct {
	StorageConfig *InstanceStorageConfig `json:"StorageConfig,omitempty"`
}

// UpdateInstanceStorageConfigRequest is the input of UpdateInstanceStorageConfig. The service
// requires InstanceID, AssociationID, ResourceType and StorageConfig.
type UpdateInstanceStorageConfigRequest struct {
	InstanceID    string                 `json:"InstanceId,omitempty"`
	AssociationID string                 `json:"AssociationId,omitempty"`
	ResourceType  string                 `json:"ResourceType,omitempty"`
	StorageConfig *InstanceStorageConfig `json:"StorageConfig,omitempty"`
}

// DisassociateInstanceStorageConfigRequest is the input of DisassociateInstanceStorageConfig. The
// service requires InstanceID, AssociationID and ResourceType.
type DisassociateInstanceStorageConfigRequest struct {
	InstanceID    string `json:"InstanceId,omitempty"`
	AssociationID string `json:"AssociationId,omitempty"`
	ResourceType  string `json:"ResourceType,omitempty"`
}

// ListInstanceStorageConfigsRequest is the input of ListInstanceStorageConfigs. The service
// requires InstanceID and ResourceType.
type ListInstanceStorageConfigsRequest struct {
	InstanceID   string `json:"InstanceId,omitempty"`
	ResourceType string `json:"ResourceType,omitempty"`
	NextToken    string `json:"NextToken,omitempty"`
	MaxResults   *int32 `json:"MaxResults,omitempty"`
}

// ListInstanceStorageConfigsResponse is the output of ListInstanceStorageConfigs.
type ListInstanceStorageConfigsResponse struct {
	StorageConfigs []InstanceStorageConfig `json:"StorageConfigs,omitempty"`
	NextToken      string                  `json:"NextToken,omitempty"`
}

// AssociateApprovedOriginRequest is the input of AssociateApprovedOrigin. The service requires
// InstanceID and Origin.
type AssociateApprovedOriginRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	Origin     string `json:"Origin,omitempty"`
}

// DisassociateApprovedOriginRequest is the input of DisassociateApprovedOrigin. The service
// requires InstanceID and Origin.
type DisassociateApprovedOriginRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	Origin     string `json:"Origin,omitempty"`
}

// ListApprovedOriginsRequest is the input of ListApprovedOrigins. The service requires InstanceID.
type ListApprovedOriginsRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	NextToken  string `json:"NextToken,omitempty"`
	MaxResults *int32 `json:"MaxResults,omitempty"`
}

// ListApprovedOriginsResponse is the output of ListApprovedOrigins.
type ListApprovedOriginsResponse struct {
	Origins   []string `json:"Origins,omitempty"`
	NextToken string   `json:"NextToken,omitempty"`
}

// AssociateSecurityKeyRequest is the input of AssociateSecurityKey. The service requires InstanceID
// and Key.
type AssociateSecurityKeyRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	Key        string `json:"Key,omitempty"`
}

// AssociateSecurityKeyResponse is the output of AssociateSecurityKey.
type AssociateSecurityKeyResponse struct {
	AssociationID string `json:"AssociationId,omitempty"`
}

// DisassociateSecurityKeyRequest is the input of DisassociateSecurityKey. The service requires
// InstanceID and AssociationID.
type DisassociateSecurityKeyRequest struct {
	InstanceID    string `json:"InstanceId,omitempty"`
	AssociationID string `json:"AssociationId,omitempty"`
}

// ListSecurityKeysRequest is the input of ListSecurityKeys. The service requires InstanceID.
type ListSecurityKeysRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	NextToken  string `json:"NextToken,omitempty"`
	MaxResults *int32 `json:"MaxResults,omitempty"`
}

// ListSecurityKeysResponse is the output of ListSecurityKeys.
type ListSecurityKeysResponse struct {
	SecurityKeys []SecurityKey `json:"SecurityKeys,omitempty"`
	NextToken    string        `json:"NextToken,omitempty"`
}

// AssociateLambdaFunctionRequest is the input of AssociateLambdaFunction. The service requires
// InstanceID and FunctionARN.
type AssociateLambdaFunctionRequest struct {
	InstanceID  string `json:"InstanceId,omitempty"`
	FunctionARN string `json:"FunctionArn,omitempty"`
}

// DisassociateLambdaFunctionRequest is the input of DisassociateLambdaFunction. The service
// requires InstanceID and FunctionARN.
type DisassociateLambdaFunctionRequest struct {
	InstanceID  string `json:"InstanceId,omitempty"`
	FunctionARN string `json:"FunctionArn,omitempty"`
}

// ListLambdaFunctionsRequest is the input of ListLambdaFunctions. The service requires InstanceID.
type ListLambdaFunctionsRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	NextToken  string `json:"NextToken,omitempty"`
	MaxResults *int32 `json:"MaxResults,omitempty"`
}

// ListLambdaFunctionsResponse is the output of ListLambdaFunctions.
type ListLambdaFunctionsResponse struct {
	LambdaFunctions []string `json:"LambdaFunctions,omitempty"`
	NextToken       string   `json:"NextToken,omitempty"`
}

// AssociateLexBotRequest is the input of AssociateLexBot. The service requires InstanceID and
// LexBot.
type AssociateLexBotRequest struct {
	InstanceID string  `json:"InstanceId,omitempty"`
	LexBot     *LexBot `json:"LexBot,omitempty"`
}

// DisassociateLexBotRequest is the input of DisassociateLexBot. The service requires InstanceID,
// BotName and LexRegion.
type DisassociateLexBotRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	BotName    string `json:"BotName,omitempty"`
	LexRegion  string `json:"LexRegion,omitempty"`
}

// ListLexBotsRequest is the input of ListLexBots. The service requires InstanceID.
type ListLexBotsRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	NextToken  string `json:"NextToken,omitempty"`
	MaxResults *int32 `json:"MaxResults,omitempty"`
}

// ListLexBotsResponse is the output of ListLexBots.
type ListLexBotsResponse struct {
	LexBots   []LexBot `json:"LexBots,omitempty"`
	NextToken string   `json:"NextToken,omitempty"`
}

// AssociateBotRequest is the input of AssociateBot. The service requires InstanceID.
type AssociateBotRequest struct {
	InstanceID string    `json:"InstanceId,omitempty"`
	LexBot     *LexBot   `json:"LexBot,omitempty"`
	LexV2Bot   *LexV2Bot `json:"LexV2Bot,omitempty"`
}

// DisassociateBotRequest is the input of DisassociateBot. The service requires InstanceID.
type DisassociateBotRequest struct {
	InstanceID string    `json:"InstanceId,omitempty"`
	LexBot     *LexBot   `json:"LexBot,omitempty"`
	LexV2Bot   *LexV2Bot `json:"LexV2Bot,omitempty"`
}

// ListBotsRequest is the input of ListBots. The service requires InstanceID and LexVersion.
type ListBotsRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	LexVersion string `json:"LexVersion,omitempty"`
	NextToken  string `json:"NextToken,omitempty"`
	MaxResults *int32 `json:"MaxResults,omitempty"`
}

// ListBotsResponse is the output of ListBots.
type ListBotsResponse struct {
	LexBots   []LexBotConfig `json:"LexBots,omitempty"`
	NextToken string         `json:"NextToken,omitempty"`
}

// ReplicateInstanceRequest is the input of ReplicateInstance. The service requires InstanceID,
// ReplicaRegion and ReplicaAlias.
type ReplicateInstanceRequest struct {
	InstanceID    string `json:"InstanceId,omitempty"`
	ReplicaRegion string `json:"ReplicaRegion,omitempty"`
	ReplicaAlias  string `json:"ReplicaAlias,omitempty"`
	ClientToken   string `json:"ClientToken,omitempty"`
}

// ReplicateInstanceResponse is the output of ReplicateInstance.
type ReplicateInstanceResponse struct {
	ID  string `json:"Id,omitempty"`
	ARN string `json:"Arn,omitempty"`
}

func (r *CreateInstanceRequest) clientToken() string {
	return r.ClientToken
}

func (r *CreateInstanceRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}

func (r *ReplicateInstanceRequest) clientToken() string {
	return r.ClientToken
}

func (r *ReplicateInstanceRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}
