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

// Rule describes a rule.
type Rule struct {
	Name               string                  `json:"Name,omitempty"`
	RuleID             string                  `json:"RuleId,omitempty"`
	RuleARN            string                  `json:"RuleArn,omitempty"`
	TriggerEventSource *RuleTriggerEventSource `json:"TriggerEventSource,omitempty"`
	Function           string                  `json:"Function,omitempty"`
	Actions            []RuleAction            `json:"Actions,omitempty"`
	PublishStatus      string                  `json:"PublishStatus,omitempty"`
	CreatedTime        *time.Time              `json:"CreatedTime,omitempty"`
	LastUpdatedTime    *time.Time              `json:"LastUpdatedTime,omitempty"`
	LastUpdatedBy      string                  `json:"LastUpdatedBy,omitempty"`
	Tags               map[string]string       `json:"Tags,omitempty"`
}

// RuleTriggerEventSource is the event that triggers a rule.
type RuleTriggerEventSource struct {
	EventSourceName          string `json:"EventSourceName,omitempty"`
	IntegrationAssociationID string `json:"IntegrationAssociationId,omitempty"`
}

// RuleAction is one action a rule performs.
type RuleAction struct {
	ActionType                  string                                 `json:"ActionType,omitempty"`
	TaskAction                  *TaskActionDefinition                  `json:"TaskAction,omitempty"`
	EventBridgeAction           *EventBridgeActionDefinition           `json:"EventBridgeAction,omitempty"`
	AssignContactCategoryAction *AssignContactCategoryActionDefinition `json:"AssignContactCategoryAction,omitempty"`
}

// TaskActionDefinition creates a task when a rule fires.
type TaskActionDefinition struct {
	Name          string               `json:"Name,omitempty"`
	Description   string               `json:"Description,omitempty"`
	ContactFlowID string               `json:"ContactFlowId,omitempty"`
	References    map[string]Reference `json:"References,omitempty"`
}

// EventBridgeActionDefinition publishes an event when a rule fires.
type EventBridgeActionDefinition struct {
	Name string `json:"Name,omitempty"`
}

// AssignContactCategoryActionDefinition assigns a category when a rule fires.
type AssignContactCategoryActionDefinition struct{}

// RuleSummary summarizes a rule.
type RuleSummary struct {
	Name            string          `json:"Name,omitempty"`
	RuleID          string          `json:"RuleId,omitempty"`
	RuleARN         string          `json:"RuleArn,omitempty"`
	EventSourceName string          `json:"EventSourceName,omitempty"`
	PublishStatus   string          `json:"PublishStatus,omitempty"`
	ActionSummaries []ActionSummary `json:"ActionSummaries,omitempty"`
	CreatedTime     *time.Time      `json:"CreatedTime,omitempty"`
	LastUpdatedTime *time.Time      `json:"LastUpdatedTime,omitempty"`
}

// ActionSummary names the type of one rule action.
type ActionSummary struct {
	ActionType string `json:"ActionType,omitempty"`
}

// CreateRuleRequest is the input of CreateRule. The service requires InstanceID, Name,
// TriggerEventSource, Function, Actions and PublishStatus.
type CreateRuleRequest struct {
	InstanceID         string                  `json:"InstanceId,omitempty"`
	Name               string                  `json:"Name,omitempty"`
	TriggerEventSource *RuleTriggerEventSource `json:"TriggerEventSource,omitempty"`
	Function           string                  `json:"Function,omitempty"`
	Actions            []RuleAction            `json:"Actions,omitempty"`
	PublishStatus      string                  `json:"PublishStatus,omitempty"`
	ClientToken        string                  `json:"ClientToken,omitempty"`
}

// CreateRuleResponse is the output of CreateRule.
type CreateRuleResponse struct {
	RuleARN string `json:"RuleArn,omitempty"`
	RuleID  string `json:"RuleId,omitempty"`
}

// DescribeRuleRequest is the input of DescribeRule. The service requires InstanceID and RuleID.
type DescribeRuleRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	RuleID     string `json:"RuleId,omitempty"`
}

// DescribeRuleResponse is the output of DescribeRule.
type DescribeRuleResponse struct {
	Rule *Rule `json:"Rule,omitempty"`
}

// ListRulesRequest is the input of ListRules. The service requires InstanceID.
type ListRulesRequest struct {
	InstanceID      string `json:"InstanceId,omitempty"`
	PublishStatus   string `json:"PublishStatus,omitempty"`
	EventSourceName string `json:"EventSourceName,omitempty"`
	NextToken       string `json:"NextToken,omitempty"`
	MaxResults      *int32 `json:"MaxResults,omitempty"`
}

// ListRulesResponse is the output of ListRules.
type ListRulesResponse struct {
	RuleSummaryList []RuleSummary `json:"RuleSummaryList,omitempty"`
	NextToken       string        `json:"NextToken,omitempty"`
}

// UpdateRuleRequest is the input of UpdateRule. The service requires RuleID, InstanceID, Name,
// Function, Actions and PublishStatus.
type UpdateRuleRequest struct {
	RuleID        string       `json:"RuleId,omitempty"`
	InstanceID    string       `json:"InstanceId,omitempty"`
	Name          string       `json:"Name,omitempty"`
	Function      string       `json:"Function,omitempty"`
	Actions       []RuleAction `json:"Actions,omitempty"`
	PublishStatus string       `json:"PublishStatus,omitempty"`
}

// DeleteRuleRequest is the input of DeleteRule. The service requires InstanceID and RuleID.
type DeleteRuleRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	RuleID     string `json:"RuleId,omitempty"`
}

func (r *CreateRuleRequest) clientToken() string {
	return r.ClientToken
}

func (r *CreateRuleRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}
