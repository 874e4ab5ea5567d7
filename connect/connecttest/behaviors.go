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

package connecttest

var collections = map[string]collection{
	"instance":                   {idKey: "Id", arnKey: "Arn", arnSegment: "instance"},
	"flow":                       {idKey: "Id", arnKey: "Arn", arnSegment: "contact-flow"},
	"flow-module":                {idKey: "Id", arnKey: "Arn", arnSegment: "flow-module"},
	"queue":                      {idKey: "QueueId", arnKey: "QueueArn", arnSegment: "queue"},
	"routing-profile":            {idKey: "RoutingProfileId", arnKey: "RoutingProfileArn", arnSegment: "routing-profile"},
	"quick-connect":              {idKey: "QuickConnectId", arnKey: "QuickConnectARN", arnSegment: "transfer-destination"},
	"user":                       {idKey: "Id", arnKey: "Arn", arnSegment: "agent"},
	"hierarchy-group":            {idKey: "Id", arnKey: "Arn", arnSegment: "agent-group"},
	"hierarchy-structure":        {idKey: "", arnKey: "", arnSegment: ""},
	"security-profile":           {idKey: "Id", arnKey: "Arn", arnSegment: "security-profile"},
	"phone-number":               {idKey: "PhoneNumberId", arnKey: "PhoneNumberArn", arnSegment: "phone-number"},
	"traffic-distribution-group": {idKey: "Id", arnKey: "Arn", arnSegment: "traffic-distribution-group"},
	"traffic-distribution":       {idKey: "", arnKey: "", arnSegment: ""},
	"prompt":                     {idKey: "PromptId", arnKey: "PromptARN", arnSegment: "prompt"},
	"vocabulary":                 {idKey: "Id", arnKey: "Arn", arnSegment: "vocabulary"},
	"default-vocabulary":         {idKey: "", arnKey: "", arnSegment: ""},
	"evaluation-form":            {idKey: "EvaluationFormId", arnKey: "EvaluationFormArn", arnSegment: "evaluation-form"},
	"evaluation":                 {idKey: "EvaluationId", arnKey: "EvaluationArn", arnSegment: "contact-evaluation"},
	"contact":                    {idKey: "Id", arnKey: "Arn", arnSegment: "contact"},
	"contact-attributes":         {idKey: "", arnKey: "", arnSegment: ""},
	"integration-association":    {idKey: "IntegrationAssociationId", arnKey: "IntegrationAssociationArn", arnSegment: "integration-association"},
	"use-case":                   {idKey: "UseCaseId", arnKey: "UseCaseArn", arnSegment: "use-case"},
	"hours-of-operation":         {idKey: "HoursOfOperationId", arnKey: "HoursOfOperationArn", arnSegment: "operating-hours"},
	"agent-status":               {idKey: "AgentStatusId", arnKey: "AgentStatusARN", arnSegment: "agent-state"},
	"rule":                       {idKey: "RuleId", arnKey: "RuleArn", arnSegment: "rule"},
	"task-template":              {idKey: "Id", arnKey: "Arn", arnSegment: "task-template"},
	"storage-config":             {idKey: "AssociationId", arnKey: "", arnSegment: ""},
	"security-key":               {idKey: "AssociationId", arnKey: "", arnSegment: ""},
	"instance-attribute":         {idKey: "", arnKey: "", arnSegment: ""},
	"approved-origin":            {idKey: "", arnKey: "", arnSegment: ""},
	"lambda-function":            {idKey: "", arnKey: "", arnSegment: ""},
	"lex-bot":                    {idKey: "", arnKey: "", arnSegment: ""},
}

func defaultBehaviors() map[string]behavior {
	b := make(map[string]behavior)
	b["CreateInstance"] = create("instance", "Id", "Arn").require("IdentityManagementType", "InboundCallsEnabled", "OutboundCallsEnabled")
	b["DeleteInstance"] = remove("instance", "InstanceId").require("InstanceId")
	b["DescribeInstance"] = describe("instance", "InstanceId", "Instance").require("InstanceId")
	b["ListInstances"] = list("instance", "InstanceSummaryList")
	b["DescribeInstanceAttribute"] = describe("instance-attribute", "InstanceId+AttributeType", "Attribute").require("InstanceId", "AttributeType")
	b["UpdateInstanceAttribute"] = put("instance-attribute", "InstanceId+AttributeType").require("InstanceId", "AttributeType", "Value")
	b["ListInstanceAttributes"] = list("instance-attribute", "Attributes").require("InstanceId")
	b["AssociateInstanceStorageConfig"] = create("storage-config", "AssociationId", "").require("InstanceId", "ResourceType", "StorageConfig")
	b["DescribeInstanceStorageConfig"] = describe("storage-config", "AssociationId", "StorageConfig").require("InstanceId", "AssociationId", "ResourceType")
	b["UpdateInstanceStorageConfig"] = update("storage-config", "AssociationId").require("InstanceId", "AssociationId", "ResourceType", "StorageConfig")
	b["DisassociateInstanceStorageConfig"] = remove("storage-config", "AssociationId").require("InstanceId", "AssociationId", "ResourceType")
	b["ListInstanceStorageConfigs"] = list("storage-config", "StorageConfigs").require("InstanceId", "ResourceType")
	b["AssociateApprovedOrigin"] = link("approved-origin", "Origin").require("InstanceId", "Origin")
	b["DisassociateApprovedOrigin"] = unlink("approved-origin", "Origin").require("InstanceId", "Origin")
	b["ListApprovedOrigins"] = links("approved-origin", "Origins").require("InstanceId")
	b["AssociateSecurityKey"] = create("security-key", "AssociationId", "").require("InstanceId", "Key")
	b["DisassociateSecurityKey"] = remove("security-key", "AssociationId").require("InstanceId", "AssociationId")
	b["ListSecurityKeys"] = list("security-key", "SecurityKeys").require("InstanceId")
	b["AssociateLambdaFunction"] = link("lambda-function", "FunctionArn").require("InstanceId", "FunctionArn")
	b["DisassociateLambdaFunction"] = unlink("lambda-function", "FunctionArn").require("InstanceId", "FunctionArn")
	b["ListLambdaFunctions"] = links("lambda-function", "LambdaFunctions").require("InstanceId")
	b["AssociateLexBot"] = touch("instance", "InstanceId").require("InstanceId", "LexBot")
	b["DisassociateLexBot"] = touch("instance", "InstanceId").require("InstanceId", "BotName", "LexRegion")
	b["ListLexBots"] = touch("instance", "InstanceId").require("InstanceId")
	b["AssociateBot"] = touch("instance", "InstanceId").require("InstanceId")
	b["DisassociateBot"] = touch("instance", "InstanceId").require("InstanceId")
	b["ListBots"] = touch("instance", "InstanceId").require("InstanceId", "LexVersion")
	b["ReplicateInstance"] = touch("instance", "InstanceId").require("InstanceId", "ReplicaRegion", "ReplicaAlias")
	b["CreateContactFlow"] = create("flow", "ContactFlowId", "ContactFlowArn").require("InstanceId", "Name", "Type", "Content")
	b["DescribeContactFlow"] = describe("flow", "ContactFlowId", "ContactFlow").require("InstanceId", "ContactFlowId")
	b["ListContactFlows"] = list("flow", "ContactFlowSummaryList").require("InstanceId")
	b["UpdateContactFlowContent"] = update("flow", "ContactFlowId").require("InstanceId", "ContactFlowId", "Content")
	b["UpdateContactFlowMetadata"] = update("flow", "ContactFlowId").require("InstanceId", "ContactFlowId")
	b["UpdateContactFlowName"] = update("flow", "ContactFlowId").require("InstanceId", "ContactFlowId")
	b["DeleteContactFlow"] = remove("flow", "ContactFlowId").require("InstanceId", "ContactFlowId")
	b["CreateContactFlowModule"] = create("flow-module", "Id", "Arn").require("InstanceId", "Name", "Content")
	b["DescribeContactFlowModule"] = describe("flow-module", "ContactFlowModuleId", "ContactFlowModule").require("InstanceId", "ContactFlowModuleId")
	b["ListContactFlowModules"] = list("flow-module", "ContactFlowModulesSummaryList").require("InstanceId")
	b["UpdateContactFlowModuleContent"] = update("flow-module", "ContactFlowModuleId").require("InstanceId", "ContactFlowModuleId", "Content")
	b["UpdateContactFlowModuleMetadata"] = update("flow-module", "ContactFlowModuleId").require("InstanceId", "ContactFlowModuleId")
	b["DeleteContactFlowModule"] = remove("flow-module", "ContactFlowModuleId").require("InstanceId", "ContactFlowModuleId")
	b["CreateQueue"] = create("queue", "QueueId", "QueueArn").require("InstanceId", "Name", "HoursOfOperationId")
	b["DescribeQueue"] = describe("queue", "QueueId", "Queue").require("InstanceId", "QueueId")
	b["ListQueues"] = list("queue", "QueueSummaryList").require("InstanceId")
	b["SearchQueues"] = search("queue", "Queues").require("InstanceId")
	b["UpdateQueueHoursOfOperation"] = update("queue", "QueueId").require("InstanceId", "QueueId", "HoursOfOperationId")
	b["UpdateQueueMaxContacts"] = update("queue", "QueueId").require("InstanceId", "QueueId")
	b["UpdateQueueName"] = update("queue", "QueueId").require("InstanceId", "QueueId")
	b["UpdateQueueOutboundCallerConfig"] = update("queue", "QueueId").require("InstanceId", "QueueId", "OutboundCallerConfig")
	b["UpdateQueueStatus"] = update("queue", "QueueId").require("InstanceId", "QueueId", "Status")
	b["AssociateQueueQuickConnects"] = touch("queue", "QueueId").require("InstanceId", "QueueId", "QuickConnectIds")
	b["DisassociateQueueQuickConnects"] = touch("queue", "QueueId").require("InstanceId", "QueueId", "QuickConnectIds")
	b["ListQueueQuickConnects"] = touch("queue", "QueueId").require("InstanceId", "QueueId")
	b["CreateRoutingProfile"] = create("routing-profile", "RoutingProfileId", "RoutingProfileArn").require("InstanceId", "Name", "Description", "DefaultOutboundQueueId", "MediaConcurrencies")
	b["DescribeRoutingProfile"] = describe("routing-profile", "RoutingProfileId", "RoutingProfile").require("InstanceId", "RoutingProfileId")
	b["ListRoutingProfiles"] = list("routing-profile", "RoutingProfileSummaryList").require("InstanceId")
	b["SearchRoutingProfiles"] = search("routing-profile", "RoutingProfiles").require("InstanceId")
	b["UpdateRoutingProfileConcurrency"] = update("routing-profile", "RoutingProfileId").require("InstanceId", "RoutingProfileId", "MediaConcurrencies")
	b["UpdateRoutingProfileDefaultOutboundQueue"] = update("routing-profile", "RoutingProfileId").require("InstanceId", "RoutingProfileId", "DefaultOutboundQueueId")
	b["UpdateRoutingProfileName"] = update("routing-profile", "RoutingProfileId").require("InstanceId", "RoutingProfileId")
	b["UpdateRoutingProfileQueues"] = touch("routing-profile", "RoutingProfileId").require("InstanceId", "RoutingProfileId", "QueueConfigs")
	b["AssociateRoutingProfileQueues"] = touch("routing-profile", "RoutingProfileId").require("InstanceId", "RoutingProfileId", "QueueConfigs")
	b["DisassociateRoutingProfileQueues"] = touch("routing-profile", "RoutingProfileId").require("InstanceId", "RoutingProfileId", "QueueReferences")
	b["ListRoutingProfileQueues"] = touch("routing-profile", "RoutingProfileId").require("InstanceId", "RoutingProfileId")
	b["CreateQuickConnect"] = create("quick-connect", "QuickConnectId", "QuickConnectARN").require("InstanceId", "Name", "QuickConnectConfig")
	b["DescribeQuickConnect"] = describe("quick-connect", "QuickConnectId", "QuickConnect").require("InstanceId", "QuickConnectId")
	b["ListQuickConnects"] = list("quick-connect", "QuickConnectSummaryList").require("InstanceId")
	b["SearchQuickConnects"] = search("quick-connect", "QuickConnects").require("InstanceId")
	b["UpdateQuickConnectConfig"] = update("quick-connect", "QuickConnectId").require("InstanceId", "QuickConnectId", "QuickConnectConfig")
	b["UpdateQuickConnectName"] = update("quick-connect", "QuickConnectId").require("InstanceId", "QuickConnectId")
	b["DeleteQuickConnect"] = remove("quick-connect", "QuickConnectId").require("InstanceId", "QuickConnectId")
	b["CreateUser"] = create("user", "UserId", "UserArn").require("Username", "PhoneConfig", "SecurityProfileIds", "RoutingProfileId", "InstanceId")
	b["DescribeUser"] = describe("user", "UserId", "User").require("InstanceId", "UserId")
	b["ListUsers"] = list("user", "UserSummaryList").require("InstanceId")
	b["SearchUsers"] = search("user", "Users")
	b["DeleteUser"] = remove("user", "UserId").require("InstanceId", "UserId")
	b["UpdateUserIdentityInfo"] = update("user", "UserId").require("InstanceId", "UserId", "IdentityInfo")
	b["UpdateUserPhoneConfig"] = update("user", "UserId").require("InstanceId", "UserId", "PhoneConfig")
	b["UpdateUserRoutingProfile"] = update("user", "UserId").require("InstanceId", "UserId", "RoutingProfileId")
	b["UpdateUserSecurityProfiles"] = update("user", "UserId").require("InstanceId", "UserId", "SecurityProfileIds")
	b["UpdateUserHierarchy"] = update("user", "UserId").require("InstanceId", "UserId")
	b["PutUserStatus"] = touch("user", "UserId").require("InstanceId", "UserId", "AgentStatusId")
	b["DismissUserContact"] = touch("user", "UserId").require("InstanceId", "UserId", "ContactId")
	b["GetCurrentUserData"] = noop().require("InstanceId", "Filters")
	b["GetFederationToken"] = touch("instance", "InstanceId").require("InstanceId")
	b["CreateUserHierarchyGroup"] = create("hierarchy-group", "HierarchyGroupId", "HierarchyGroupArn").require("Name", "InstanceId")
	b["DescribeUserHierarchyGroup"] = describe("hierarchy-group", "HierarchyGroupId", "HierarchyGroup").require("HierarchyGroupId", "InstanceId")
	b["ListUserHierarchyGroups"] = list("hierarchy-group", "UserHierarchyGroupSummaryList").require("InstanceId")
	b["UpdateUserHierarchyGroupName"] = update("hierarchy-group", "HierarchyGroupId").require("Name", "HierarchyGroupId", "InstanceId")
	b["DeleteUserHierarchyGroup"] = remove("hierarchy-group", "HierarchyGroupId").require("HierarchyGroupId", "InstanceId")
	b["DescribeUserHierarchyStructure"] = describe("hierarchy-structure", "InstanceId", "").require("InstanceId")
	b["UpdateUserHierarchyStructure"] = put("hierarchy-structure", "InstanceId").require("HierarchyStructure", "InstanceId")
	b["CreateSecurityProfile"] = create("security-profile", "SecurityProfileId", "SecurityProfileArn").require("SecurityProfileName", "InstanceId")
	b["DescribeSecurityProfile"] = describe("security-profile", "SecurityProfileId", "SecurityProfile").require("SecurityProfileId", "InstanceId")
	b["ListSecurityProfiles"] = list("security-profile", "SecurityProfileSummaryList").require("InstanceId")
	b["SearchSecurityProfiles"] = search("security-profile", "SecurityProfiles").require("InstanceId")
	b["ListSecurityProfilePermissions"] = touch("security-profile", "SecurityProfileId").require("SecurityProfileId", "InstanceId")
	b["UpdateSecurityProfile"] = update("security-profile", "SecurityProfileId").require("SecurityProfileId", "InstanceId")
	b["DeleteSecurityProfile"] = remove("security-profile", "SecurityProfileId").require("InstanceId", "SecurityProfileId")
	b["ClaimPhoneNumber"] = create("phone-number", "PhoneNumberId", "PhoneNumberArn").require("TargetArn", "PhoneNumber")
	b["DescribePhoneNumber"] = describe("phone-number", "PhoneNumberId", "ClaimedPhoneNumberSummary").require("PhoneNumberId")
	b["ListPhoneNumbers"] = list("phone-number", "PhoneNumberSummaryList").require("InstanceId")
	b["ListPhoneNumbersV2"] = list("phone-number", "ListPhoneNumbersSummaryList")
	b["SearchAvailablePhoneNumbers"] = noop().require("TargetArn", "PhoneNumberCountryCode", "PhoneNumberType")
	b["UpdatePhoneNumber"] = update("phone-number", "PhoneNumberId").require("PhoneNumberId", "TargetArn")
	b["ReleasePhoneNumber"] = remove("phone-number", "PhoneNumberId").require("PhoneNumberId")
	b["AssociatePhoneNumberContactFlow"] = touch("phone-number", "PhoneNumberId").require("PhoneNumberId", "InstanceId", "ContactFlowId")
	b["DisassociatePhoneNumberContactFlow"] = touch("phone-number", "PhoneNumberId").require("PhoneNumberId", "InstanceId")
	b["CreateTrafficDistributionGroup"] = create("traffic-distribution-group", "Id", "Arn").require("Name", "InstanceId")
	b["DescribeTrafficDistributionGroup"] = describe("traffic-distribution-group", "TrafficDistributionGroupId", "TrafficDistributionGroup").require("TrafficDistributionGroupId")
	b["ListTrafficDistributionGroups"] = list("traffic-distribution-group", "TrafficDistributionGroupSummaryList")
	b["DeleteTrafficDistributionGroup"] = remove("traffic-distribution-group", "TrafficDistributionGroupId").require("TrafficDistributionGroupId")
	b["GetTrafficDistribution"] = describe("traffic-distribution", "Id", "").require("Id")
	b["UpdateTrafficDistribution"] = put("traffic-distribution", "Id").require("Id")
	b["CreatePrompt"] = create("prompt", "PromptId", "PromptARN").require("InstanceId", "Name", "S3Uri")
	b["DescribePrompt"] = describe("prompt", "PromptId", "Prompt").require("InstanceId", "PromptId")
	b["ListPrompts"] = list("prompt", "PromptSummaryList").require("InstanceId")
	b["GetPromptFile"] = touch("prompt", "PromptId").require("InstanceId", "PromptId")
	b["UpdatePrompt"] = update("prompt", "PromptId").require("InstanceId", "PromptId")
	b["DeletePrompt"] = remove("prompt", "PromptId").require("InstanceId", "PromptId")
	b["CreateVocabulary"] = create("vocabulary", "VocabularyId", "VocabularyArn").require("InstanceId", "VocabularyName", "LanguageCode", "Content")
	b["DescribeVocabulary"] = describe("vocabulary", "VocabularyId", "Vocabulary").require("InstanceId", "VocabularyId")
	b["SearchVocabularies"] = search("vocabulary", "VocabularySummaryList").require("InstanceId")
	b["DeleteVocabulary"] = remove("vocabulary", "VocabularyId").require("InstanceId", "VocabularyId")
	b["AssociateDefaultVocabulary"] = put("default-vocabulary", "InstanceId+LanguageCode").require("InstanceId", "LanguageCode")
	b["ListDefaultVocabularies"] = list("default-vocabulary", "DefaultVocabularyList").require("InstanceId")
	b["CreateEvaluationForm"] = create("evaluation-form", "EvaluationFormId", "EvaluationFormArn").require("InstanceId", "Title", "Items")
	b["DescribeEvaluationForm"] = describe("evaluation-form", "EvaluationFormId", "EvaluationForm").require("InstanceId", "EvaluationFormId")
	b["ListEvaluationForms"] = list("evaluation-form", "EvaluationFormSummaryList").require("InstanceId")
	b["ListEvaluationFormVersions"] = touch("evaluation-form", "EvaluationFormId").require("InstanceId", "EvaluationFormId")
	b["UpdateEvaluationForm"] = update("evaluation-form", "EvaluationFormId").require("InstanceId", "EvaluationFormId", "EvaluationFormVersion", "Title", "Items")
	b["DeleteEvaluationForm"] = remove("evaluation-form", "EvaluationFormId").require("InstanceId", "EvaluationFormId")
	b["ActivateEvaluationForm"] = update("evaluation-form", "EvaluationFormId").require("InstanceId", "EvaluationFormId", "EvaluationFormVersion")
	b["DeactivateEvaluationForm"] = update("evaluation-form", "EvaluationFormId").require("InstanceId", "EvaluationFormId", "EvaluationFormVersion")
	b["StartContactEvaluation"] = create("evaluation", "EvaluationId", "EvaluationArn").require("InstanceId", "ContactId", "EvaluationFormId")
	b["DescribeContactEvaluation"] = describe("evaluation", "EvaluationId", "Evaluation").require("InstanceId", "EvaluationId")
	b["ListContactEvaluations"] = list("evaluation", "EvaluationSummaryList").require("InstanceId", "ContactId")
	b["UpdateContactEvaluation"] = update("evaluation", "EvaluationId").require("InstanceId", "EvaluationId")
	b["SubmitContactEvaluation"] = update("evaluation", "EvaluationId").require("InstanceId", "EvaluationId")
	b["DeleteContactEvaluation"] = remove("evaluation", "EvaluationId").require("InstanceId", "EvaluationId")
	b["StartChatContact"] = create("contact", "ContactId", "").require("InstanceId", "ContactFlowId", "ParticipantDetails")
	b["StartTaskContact"] = create("contact", "ContactId", "").require("InstanceId", "Name")
	b["StartOutboundVoiceContact"] = create("contact", "ContactId", "").require("DestinationPhoneNumber", "ContactFlowId", "InstanceId")
	b["StopContact"] = touch("contact", "ContactId").require("ContactId", "InstanceId")
	b["TransferContact"] = touch("contact", "ContactId").require("InstanceId", "ContactId", "ContactFlowId")
	b["MonitorContact"] = touch("contact", "ContactId").require("InstanceId", "ContactId", "UserId")
	b["DescribeContact"] = describe("contact", "ContactId", "Contact").require("InstanceId", "ContactId")
	b["UpdateContact"] = update("contact", "ContactId").require("InstanceId", "ContactId")
	b["UpdateContactAttributes"] = put("contact-attributes", "InitialContactId").require("InitialContactId", "InstanceId", "Attributes")
	b["GetContactAttributes"] = describe("contact-attributes", "InitialContactId", "").require("InstanceId", "InitialContactId")
	b["UpdateContactSchedule"] = update("contact", "ContactId").require("InstanceId", "ContactId", "ScheduledTime")
	b["ListContactReferences"] = touch("contact", "ContactId").require("InstanceId", "ContactId", "ReferenceTypes")
	b["StartContactRecording"] = touch("contact", "ContactId").require("InstanceId", "ContactId", "InitialContactId", "VoiceRecordingConfiguration")
	b["StopContactRecording"] = touch("contact", "ContactId").require("InstanceId", "ContactId", "InitialContactId")
	b["SuspendContactRecording"] = touch("contact", "ContactId").require("InstanceId", "ContactId", "InitialContactId")
	b["ResumeContactRecording"] = touch("contact", "ContactId").require("InstanceId", "ContactId", "InitialContactId")
	b["StartContactStreaming"] = touch("contact", "ContactId").require("InstanceId", "ContactId", "ChatStreamingConfiguration")
	b["StopContactStreaming"] = touch("contact", "ContactId").require("InstanceId", "ContactId", "StreamingId")
	b["CreateParticipant"] = touch("contact", "ContactId").require("InstanceId", "ContactId", "ParticipantDetails")
	b["UpdateParticipantRoleConfig"] = touch("contact", "ContactId").require("InstanceId", "ContactId", "ChannelConfiguration")
	b["TagResource"] = tag().require("ResourceArn", "Tags")
	b["UntagResource"] = untag().require("ResourceArn", "TagKeys")
	b["ListTagsForResource"] = listtags().require("ResourceArn")
	b["SearchResourceTags"] = touch("instance", "InstanceId").require("InstanceId")
	b["CreateIntegrationAssociation"] = create("integration-association", "IntegrationAssociationId", "IntegrationAssociationArn").require("InstanceId", "IntegrationType", "IntegrationArn")
	b["DeleteIntegrationAssociation"] = remove("integration-association", "IntegrationAssociationId").require("InstanceId", "IntegrationAssociationId")
	b["ListIntegrationAssociations"] = list("integration-association", "IntegrationAssociationSummaryList").require("InstanceId")
	b["CreateUseCase"] = create("use-case", "UseCaseId", "UseCaseArn").require("InstanceId", "IntegrationAssociationId", "UseCaseType")
	b["DeleteUseCase"] = remove("use-case", "UseCaseId").require("InstanceId", "IntegrationAssociationId", "UseCaseId")
	b["ListUseCases"] = list("use-case", "UseCaseSummaryList").require("InstanceId", "IntegrationAssociationId")
	b["CreateHoursOfOperation"] = create("hours-of-operation", "HoursOfOperationId", "HoursOfOperationArn").require("InstanceId", "Name", "TimeZone", "Config")
	b["DescribeHoursOfOperation"] = describe("hours-of-operation", "HoursOfOperationId", "HoursOfOperation").require("InstanceId", "HoursOfOperationId")
	b["ListHoursOfOperations"] = list("hours-of-operation", "HoursOfOperationSummaryList").require("InstanceId")
	b["UpdateHoursOfOperation"] = update("hours-of-operation", "HoursOfOperationId").require("InstanceId", "HoursOfOperationId")
	b["DeleteHoursOfOperation"] = remove("hours-of-operation", "HoursOfOperationId").require("InstanceId", "HoursOfOperationId")
	b["CreateAgentStatus"] = create("agent-status", "AgentStatusId", "AgentStatusARN").require("InstanceId", "Name", "State")
	b["DescribeAgentStatus"] = describe("agent-status", "AgentStatusId", "AgentStatus").require("InstanceId", "AgentStatusId")
	b["ListAgentStatuses"] = list("agent-status", "AgentStatusSummaryList").require("InstanceId")
	b["UpdateAgentStatus"] = update("agent-status", "AgentStatusId").require("InstanceId", "AgentStatusId")
	b["CreateRule"] = create("rule", "RuleId", "RuleArn").require("InstanceId", "Name", "TriggerEventSource", "Function", "Actions", "PublishStatus")
	b["DescribeRule"] = describe("rule", "RuleId", "Rule").require("InstanceId", "RuleId")
	b["ListRules"] = list("rule", "RuleSummaryList").require("InstanceId")
	b["UpdateRule"] = update("rule", "RuleId").require("RuleId", "InstanceId", "Name", "Function", "Actions", "PublishStatus")
	b["DeleteRule"] = remove("rule", "RuleId").require("InstanceId", "RuleId")
	b["CreateTaskTemplate"] = create("task-template", "Id", "Arn").require("InstanceId", "Name", "Fields")
	b["GetTaskTemplate"] = describe("task-template", "TaskTemplateId", "").require("InstanceId", "TaskTemplateId")
	b["ListTaskTemplates"] = list("task-template", "TaskTemplates").require("InstanceId")
	b["UpdateTaskTemplate"] = update("task-template", "TaskTemplateId").require("TaskTemplateId", "InstanceId")
	b["DeleteTaskTemplate"] = remove("task-template", "TaskTemplateId").require("InstanceId", "TaskTemplateId")
	b["GetCurrentMetricData"] = touch("instance", "InstanceId").require("InstanceId", "Filters", "CurrentMetrics")
	b["GetMetricData"] = touch("instance", "InstanceId").require("InstanceId", "StartTime", "EndTime", "Filters", "HistoricalMetrics")
	b["GetMetricDataV2"] = noop().require("ResourceArn", "StartTime", "EndTime", "Filters", "Metrics")
	return b
}
