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

// EvaluationForm describes a version of an evaluation form.
type EvaluationForm struct {
	EvaluationFormID      string                         `json:"EvaluationFormId,omitempty"`
	EvaluationFormVersion int32                          `json:"EvaluationFormVersion,omitempty"`
	Locked                bool                           `json:"Locked,omitempty"`
	EvaluationFormARN     string                         `json:"EvaluationFormArn,omitempty"`
	Title                 string                         `json:"Title,omitempty"`
	Description           string                         `json:"Description,omitempty"`
	Status                string                         `json:"Status,omitempty"`
	Items                 []EvaluationFormItem           `json:"Items,omitempty"`
	ScoringStrategy       *EvaluationFormScoringStrategy `json:"ScoringStrategy,omitempty"`
	CreatedTime           *time.Time                     `json:"CreatedTime,omitempty"`
	CreatedBy             string                         `json:"CreatedBy,omitempty"`
	LastModifiedTime      *time.Time                     `json:"LastModifiedTime,omitempty"`
	LastModifiedBy        string                         `json:"LastModifiedBy,omitempty"`
	Tags                  map[string]string              `json:"Tags,omitempty"`
}

// EvaluationFormContent is the content of an evaluation form used by an evaluation.
type EvaluationFormContent struct {
	EvaluationFormVersion int32                          `json:"EvaluationFormVersion,omitempty"`
	EvaluationFormID      string                         `json:"EvaluationFormId,omitempty"`
	EvaluationFormARN     string                         `json:"EvaluationFormArn,omitempty"`
	Title                 string                         `json:"Title,omitempty"`
	Description           string                         `json:"Description,omitempty"`
	Items                 []EvaluationFormItem           `json:"Items,omitempty"`
	ScoringStrategy       *EvaluationFormScoringStrategy `json:"ScoringStrategy,omitempty"`
}

// EvaluationFormItem is either a section or a question of an evaluation form.
type EvaluationFormItem struct {
	Section  *EvaluationFormSection  `json:"Section,omitempty"`
	Question *EvaluationFormQuestion `json:"Question,omitempty"`
}

// EvaluationFormSection groups evaluation form items.
type EvaluationFormSection struct {
	Title        string               `json:"Title,omitempty"`
	RefID        string               `json:"RefId,omitempty"`
	Instructions string               `json:"Instructions,omitempty"`
	Items        []EvaluationFormItem `json:"Items,omitempty"`
	Weight       float64              `json:"Weight,omitempty"`
}

// EvaluationFormQuestion is one question of an evaluation form.
type EvaluationFormQuestion struct {
	Title                string  `json:"Title,omitempty"`
	Instructions         string  `json:"Instructions,omitempty"`
	RefID                string  `json:"RefId,omitempty"`
	NotApplicableEnabled bool    `json:"NotApplicableEnabled,omitempty"`
	QuestionType         string  `json:"QuestionType,omitempty"`
	Weight               float64 `json:"Weight,omitempty"`
}

// EvaluationFormScoringStrategy controls how an evaluation form is scored.
type EvaluationFormScoringStrategy struct {
	Mode   string `json:"Mode,omitempty"`
	Status string `json:"Status,omitempty"`
}

// EvaluationFormSummary summarizes an evaluation form.
type EvaluationFormSummary struct {
	EvaluationFormID  string     `json:"EvaluationFormId,omitempty"`
	EvaluationFormARN string     `json:"EvaluationFormArn,omitempty"`
	Title             string     `json:"Title,omitempty"`
	CreatedTime       *time.Time `json:"CreatedTime,omitempty"`
	CreatedBy         string     `json:"CreatedBy,omitempty"`
	LastModifiedTime  *time.Time `json:"LastModifiedTime,omitempty"`
	LastModifiedBy    string     `json:"LastModifiedBy,omitempty"`
	LastActivatedTime *time.Time `json:"LastActivatedTime,omitempty"`
	LastActivatedBy   string     `json:"LastActivatedBy,omitempty"`
	LatestVersion     int32      `json:"LatestVersion,omitempty"`
	ActiveVersion     *int32     `json:"ActiveVersion,omitempty"`
}

// EvaluationFormVersionSummary summarizes a version of an evaluation form.
type EvaluationFormVersionSummary struct {
	EvaluationFormARN     string     `json:"EvaluationFormArn,omitempty"`
	EvaluationFormID      string     `json:"EvaluationFormId,omitempty"`
	EvaluationFormVersion int32      `json:"EvaluationFormVersion,omitempty"`
	Locked                bool       `json:"Locked,omitempty"`
	Status                string     `json:"Status,omitempty"`
	CreatedTime           *time.Time `json:"CreatedTime,omitempty"`
	CreatedBy             string     `json:"CreatedBy,omitempty"`
	LastModifiedTime      *time.Time `json:"LastModifiedTime,omitempty"`
	LastModifiedBy        string     `json:"LastModifiedBy,omitempty"`
}

// Evaluation describes a contact evaluation.
type Evaluation struct {
	EvaluationID     string                            `json:"EvaluationId,omitempty"`
	EvaluationARN    string                            `json:"EvaluationArn,omitempty"`
	Metadata         *EvaluationMetadata               `json:"Metadata,omitempty"`
	Answers          map[string]EvaluationAnswerOutput `json:"Answers,omitempty"`
	Notes            map[string]EvaluationNote         `json:"Notes,omitempty"`
	Status           string                            `json:"Status,omitempty"`
	Scores           map[string]EvaluationScore        `json:"Scores,omitempty"`
	CreatedTime      *time.Time                        `json:"CreatedTime,omitempty"`
	LastModifiedTime *time.Time                        `json:"LastModifiedTime,omitempty"`
	Tags             map[string]string                 `json:"Tags,omitempty"`
}

// EvaluationMetadata identifies the contact and evaluator of an evaluation.
type EvaluationMetadata struct {
	ContactID      string           `json:"ContactId,omitempty"`
	EvaluatorARN   string           `json:"EvaluatorArn,omitempty"`
	ContactAgentID string           `json:"ContactAgentId,omitempty"`
	Score          *EvaluationScore `json:"Score,omitempty"`
}

// EvaluationAnswerInput is an answer to one evaluation question.
type EvaluationAnswerInput struct {
	Value *EvaluationAnswerData `json:"Value,omitempty"`
}

// EvaluationAnswerOutput is a recorded answer to one evaluation question.
type EvaluationAnswerOutput struct {
	Value                *EvaluationAnswerData `json:"Value,omitempty"`
	SystemSuggestedValue *EvaluationAnswerData `json:"SystemSuggestedValue,omitempty"`
}

// EvaluationAnswerData holds exactly one kind of answer value.
type EvaluationAnswerData struct {
	StringValue   *string  `json:"StringValue,omitempty"`
	NumericValue  *float64 `json:"NumericValue,omitempty"`
	NotApplicable *bool    `json:"NotApplicable,omitempty"`
}

// EvaluationNote is a free-form note on an evaluation item.
type EvaluationNote struct {
	Value string `json:"Value,omitempty"`
}

// EvaluationScore is the score of an evaluation or one of its items.
type EvaluationScore struct {
	Percentage    float64 `json:"Percentage,omitempty"`
	NotApplicable bool    `json:"NotApplicable,omitempty"`
	AutomaticFail bool    `json:"AutomaticFail,omitempty"`
}

// EvaluationSummary summarizes a contact evaluation.
type EvaluationSummary struct {
	EvaluationID        string           `json:"EvaluationId,omitempty"`
	EvaluationARN       string           `json:"EvaluationArn,omitempty"`
	EvaluationFormTitle string           `json:"EvaluationFormTitle,omitempty"`
	EvaluationFormID    string           `json:"EvaluationFormId,omitempty"`
	Status              string           `json:"Status,omitempty"`
	EvaluatorARN        string           `json:"EvaluatorArn,omitempty"`
	Score               *EvaluationScore `json:"Score,omitempty"`
	CreatedTime         *time.Time       `json:"CreatedTime,omitempty"`
	LastModifiedTime    *time.Time       `json:"LastModifiedTime,omitempty"`
}

// CreateEvaluationFormRequest is the input of CreateEvaluationForm. The service requires
// InstanceID, Title and Items.
type CreateEvaluationFormRequest struct {
	InstanceID      string                         `json:"InstanceId,omitempty"`
	Title           string                         `json:"Title,omitempty"`
	Description     string                         `json:"Description,omitempty"`
	Items           []EvaluationFormItem           `json:"Items,omitempty"`
	ScoringStrategy *EvaluationFormScoringStrategy `json:"ScoringStrategy,omitempty"`
	ClientToken     string                         `json:"ClientToken,omitempty"`
}

// CreateEvaluationFormResponse is the output of CreateEvaluationForm.
type CreateEvaluationFormResponse struct {
	EvaluationFormID  string `json:"EvaluationFormId,omitempty"`
	EvaluationFormARN string `json:"EvaluationFormArn,omitempty"`
}

// DescribeEvaluationFormRequest is the input of DescribeEvaluationForm. The service requires
// InstanceID and EvaluationFormID.
type DescribeEvaluationFormRequest struct {
	InstanceID            string `json:"InstanceId,omitempty"`
	EvaluationFormID      string `json:"EvaluationFormId,omitempty"`
	EvaluationFormVersion *int32 `json:"EvaluationFormVersion,omitempty"`
}

// DescribeEvaluationFormResponse is the output of DescribeEvaluationForm.
type DescribeEvaluationFormResponse struct {
	EvaluationForm *EvaluationForm `json:"EvaluationForm,omitempty"`
}

// ListEvaluationFormsRequest is the input of ListEvaluationForms. The service requires InstanceID.
type ListEvaluationFormsRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	NextToken  string `json:"NextToken,omitempty"`
	MaxResults *int32 `json:"MaxResults,omitempty"`
}

// ListEvaluationFormsResponse is the output of ListEvaluationForms.
type ListEvaluationFormsResponse struct {
	EvaluationFormSummaryList []EvaluationFormSummary `json:"EvaluationFormSummaryList,omitempty"`
	NextToken                 string                  `json:"NextToken,omitempty"`
}

// ListEvaluationFormVersionsRequest is the input of ListEvaluationFormVersions. The service
// requires InstanceID and EvaluationFormID.
type ListEvaluationFormVersionsRequest struct {
	InstanceID       string `json:"InstanceId,omitempty"`
	EvaluationFormID string `json:"EvaluationFormId,omitempty"`
	NextToken        string `json:"NextToken,omitempty"`
	MaxResults       *int32 `json:"MaxResults,omitempty"`
}

// ListEvaluationFormVersionsResponse is the output of ListEvaluationFormVersions.
type ListEvaluationFormVersionsResponse struct {
	EvaluationFormVersionSummaryList []EvaluationFormVersionSummary `json:"EvaluationFormVersionSummaryList,omitempty"`
	NextToken                        string                         `json:"NextToken,omitempty"`
}

// UpdateEvaluationFormRequest is the input of UpdateEvaluationForm. The service requires
// InstanceID, EvaluationFormID, EvaluationFormVersion, Title and Items.
type UpdateEvaluationFormRequest struct {
	InstanceID            string                         `json:"InstanceId,omitempty"`
	EvaluationFormID      string                         `json:"EvaluationFormId,omitempty"`
	EvaluationFormVersion int32                          `json:"EvaluationFormVersion,omitempty"`
	CreateNewVersion      *bool                          `json:"CreateNewVersion,omitempty"`
	Title                 string                         `json:"Title,omitempty"`
	Description           string                         `json:"Description,omitempty"`
	Items                 []EvaluationFormItem           `json:"Items,omitempty"`
	ScoringStrategy       *EvaluationFormScoringStrategy `json:"ScoringStrategy,omitempty"`
	ClientToken           string                         `json:"ClientToken,omitempty"`
}

// UpdateEvaluationFormResponse is the output of UpdateEvaluationForm.
type UpdateEvaluationFormResponse struct {
	EvaluationFormID      string `json:"EvaluationFormId,omitempty"`
	EvaluationFormARN     string `json:"EvaluationFormArn,omitempty"`
	EvaluationFormVersion int32  `json:"EvaluationFormVersion,omitempty"`
}

// DeleteEvaluationFormRequest is the input of DeleteEvaluationForm. The service requires InstanceID
// and EvaluationFormID.
type DeleteEvaluationFormRequest struct {
	InstanceID            string `json:"InstanceId,omitempty"`
	EvaluationFormID      string `json:"EvaluationFormId,omitempty"`
	EvaluationFormVersion *int32 `json:"EvaluationFormVersion,omitempty"`
}

// ActivateEvaluationFormRequest is the input of ActivateEvaluationForm. The service requires
// InstanceID, EvaluationFormID and EvaluationFormVersion.
type ActivateEvaluationFormRequest struct {
	InstanceID            string `json:"InstanceId,omitempty"`
	EvaluationFormID      string `json:"EvaluationFormId,omitempty"`
	EvaluationFormVersion int32  `json:"EvaluationFormVersion,omitempty"`
}

// ActivateEvaluationFormResponse is the output of ActivateEvaluationForm.
type ActivateEvaluationFormResponse struct {
	EvaluationFormID      string `json:"EvaluationFormId,omitempty"`
	EvaluationFormARN     string `json:"EvaluationFormArn,omitempty"`
	EvaluationFormVersion int32  `json:"EvaluationFormVersion,omitempty"`
}

// DeactivateEvaluationFormRequest is the input of DeactivateEvaluationForm. The service requires
// InstanceID, EvaluationFormID and EvaluationFormVersion.
type DeactivateEvaluationFormRequest struct {
	InstanceID            string `json:"InstanceId,omitempty"`
	EvaluationFormID      string `json:"EvaluationFormId,omitempty"`
	EvaluationFormVersion int32  `json:"EvaluationFormVersion,omitempty"`
}

// DeactivateEvaluationFormResponse is the output of DeactivateEvaluationForm.
type DeactivateEvaluationFormResponse struct {
	EvaluationFormID      string `json:"EvaluationFormId,omitempty"`
	EvaluationFormARN     string `json:"EvaluationFormArn,omitempty"`
	EvaluationFormVersion int32  `json:"EvaluationFormVersion,omitempty"`
}

// StartContactEvaluationRequest is the input of StartContactEvaluation. The service requires
// InstanceID, ContactID and EvaluationFormID.
type StartContactEvaluationRequest struct {
	InstanceID       string `json:"InstanceId,omitempty"`
	ContactID        string `json:"ContactId,omitempty"`
	EvaluationFormID string `json:"EvaluationFormId,omitempty"`
	ClientToken      string `json:"ClientToken,omitempty"`
}

// StartContactEvaluationResponse is the output of StartContactEvaluation.
type StartContactEvaluationResponse struct {
	EvaluationID  string `json:"EvaluationId,omitempty"`
	EvaluationARN string `json:"EvaluationArn,omitempty"`
}

// DescribeContactEvaluationRequest is the input of DescribeContactEvaluation. The service requires
// InstanceID and EvaluationID.
type DescribeContactEvaluationRequest struct {
	InstanceID   string `json:"InstanceId,omitempty"`
	EvaluationID string `json:"EvaluationId,omitempty"`
}

// DescribeContactEvaluationResponse is the output of DescribeContactEvaluation.
type DescribeContactEvaluationResponse struct {
	Evaluation     *Evaluation            `json:"Evaluation,omitempty"`
	EvaluationForm *EvaluationFormContent `json:"EvaluationForm,omitempty"`
}

// ListContactEvaluationsRequest is the input of ListContactEvaluations. The service requires
// InstanceID and ContactID.
type ListContactEvaluationsRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	ContactID  string `json:"ContactId,omitempty"`
	NextToken  string `json:"NextToken,omitempty"`
	MaxResults *int32 `json:"MaxResults,omitempty"`
}

// ListContactEvaluationsResponse is the output of ListContactEvaluations.
type ListContactEvaluationsResponse struct {
	EvaluationSummaryList []EvaluationSummary `json:"EvaluationSummaryList,omitempty"`
	NextToken             string              `json:"NextToken,omitempty"`
}

// UpdateContactEvaluationRequest is the input of UpdateContactEvaluation. The service requires
// InstanceID and EvaluationID.
type UpdateContactEvaluationRequest struct {
	InstanceID   string                           `json:"InstanceId,omitempty"`
	EvaluationID string                           `json:"EvaluationId,omitempty"`
	Answers      map[string]EvaluationAnswerInput `json:"Answers,omitempty"`
	Notes        map[string]EvaluationNote        `json:"Notes,omitempty"`
}

// UpdateContactEvaluationResponse is the output of UpdateContactEvaluation.
type UpdateContactEvaluationResponse struct {
	EvaluationID  string `json:"EvaluationId,omitempty"`
	EvaluationARN string `json:"EvaluationArn,omitempty"`
}

// SubmitContactEvaluationRequest is the input of SubmitContactEvaluation. The service requires
// InstanceID and EvaluationID.
type SubmitContactEvaluationRequest struct {
	InstanceID   string                           `json:"InstanceId,omitempty"`
	EvaluationID string                           `json:"EvaluationId,omitempty"`
	Answers      map[string]EvaluationAnswerInput `json:"Answers,omitempty"`
	Notes        map[string]EvaluationNote        `json:"Notes,omitempty"`
}

// SubmitContactEvaluationResponse is the output of SubmitContactEvaluation.
type SubmitContactEvaluationResponse struct {
	EvaluationID  string `json:"EvaluationId,omitempty"`
	EvaluationARN string `json:"EvaluationArn,omitempty"`
}

// DeleteContactEvaluationRequest is the input of DeleteContactEvaluation. The service requires
// InstanceID and EvaluationID.
type DeleteContactEvaluationRequest struct {
	InstanceID   string `json:"InstanceId,omitempty"`
	EvaluationID string `json:"EvaluationId,omitempty"`
}

func (r *CreateEvaluationFormRequest) clientToken() string {
	return r.ClientToken
}

func (r *CreateEvaluationFormRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}

func (r *UpdateEvaluationFormRequest) clientToken() string {
	return r.ClientToken
}

func (r *UpdateEvaluationFormRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}

func (r *StartContactEvaluationRequest) clientToken() string {
	return r.ClientToken
}

func (r *StartContactEvaluationRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}
