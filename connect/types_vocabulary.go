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

// Vocabulary describes a custom vocabulary.
type Vocabulary struct {
	Name             string            `json:"Name,omitempty"`
	ID               string            `json:"Id,omitempty"`
	ARN              string            `json:"Arn,omitempty"`
	LanguageCode     string            `json:"LanguageCode,omitempty"`
	State            string            `json:"State,omitempty"`
	LastModifiedTime *time.Time        `json:"LastModifiedTime,omitempty"`
	FailureReason    string            `json:"FailureReason,omitempty"`
	Content          string            `json:"Content,omitempty"`
	Tags             map[string]string `json:"Tags,omitempty"`
}

// VocabularySummary summarizes a custom vocabulary.
type VocabularySummary struct {
	Name             string     `json:"Name,omitempty"`
	ID               string     `json:"Id,omitempty"`
	ARN              string     `json:"Arn,omitempty"`
	LanguageCode     string     `json:"LanguageCode,omitempty"`
	State            string     `json:"State,omitempty"`
	LastModifiedTime *time.Time `json:"LastModifiedTime,omitempty"`
	FailureReason    string     `json:"FailureReason,omitempty"`
}

// DefaultVocabulary is the default vocabulary for one language.
type DefaultVocabulary struct {
	InstanceID     string `json:"InstanceId,omitempty"`
	LanguageCode   string `json:"LanguageCode,omitempty"`
	VocabularyID   string `json:"VocabularyId,omitempty"`
	VocabularyName string `json:"VocabularyName,omitempty"`
}

// CreateVocabularyRequest is the input of CreateVocabulary. The service requires InstanceID,
// VocabularyName, LanguageCode and Content.
type CreateVocabularyRequest struct {
	InstanceID     string            `json:"InstanceId,omitempty"`
	VocabularyName string            `json:"VocabularyName,omitempty"`
	LanguageCode   string            `json:"LanguageCode,omitempty"`
	Content        string            `json:"Content,omitempty"`
	Tags           map[string]string `json:"Tags,omitempty"`
	ClientToken    string            `json:"ClientToken,omitempty"`
}

// CreateVocabularyResponse is the output of CreateVocabulary.
type CreateVocabularyResponse struct {
	VocabularyARN string `json:"VocabularyArn,omitempty"`
	VocabularyID  string `json:"VocabularyId,omitempty"`
	State         string `json:"State,omitempty"`
}

// DescribeVocabularyRequest is the input of DescribeVocabulary. The service requires InstanceID and
// VocabularyID.
type DescribeVocabularyRequest struct {
	InstanceID   string `json:"InstanceId,omitempty"`
	VocabularyID string `json:"VocabularyId,omitempty"`
}

// DescribeVocabularyResponse is the output of DescribeVocabulary.
type DescribeVocabularyResponse struct {
	Vocabulary *Vocabulary `json:"Vocabulary,omitempty"`
}

// SearchVocabulariesRequest is the input of SearchVocabularies. The service requires InstanceID.
type SearchVocabulariesRequest struct {
	InstanceID     string `json:"InstanceId,omitempty"`
	State          string `json:"State,omitempty"`
	NameStartsWith string `json:"NameStartsWith,omitempty"`
	LanguageCode   string `json:"LanguageCode,omitempty"`
	NextToken      string `json:"NextToken,omitempty"`
	MaxResults     *int32 `json:"MaxResults,omitempty"`
}

// SearchVocabulariesResponse is the output of SearchVocabularies.
type SearchVocabulariesResponse struct {
	VocabularySummaryList []VocabularySummary `json:"VocabularySummaryList,omitempty"`
	NextToken             string              `json:"NextToken,omitempty"`
}

// DeleteVocabularyRequest is the input of DeleteVocabulary. The service requires InstanceID and
// VocabularyID.
type DeleteVocabularyRequest struct {
	InstanceID   string `json:"InstanceId,omitempty"`
	VocabularyID string `json:"VocabularyId,omitempty"`
}

// DeleteVocabularyResponse is the output of DeleteVocabulary.
type DeleteVocabularyResponse struct {
	VocabularyARN string `json:"VocabularyArn,omitempty"`
	VocabularyID  string `json:"VocabularyId,omitempty"`
	State         string `json:"State,omitempty"`
}

// AssociateDefaultVocabularyRequest is the input of AssociateDefaultVocabulary. The service
// requires InstanceID and LanguageCode.
type AssociateDefaultVocabularyRequest struct {
	InstanceID   string `json:"InstanceId,omitempty"`
	LanguageCode string `json:"LanguageCode,omitempty"`
	VocabularyID string `json:"VocabularyId,omitempty"`
}

// AssociateDefaultVocabularyResponse is the output of AssociateDefaultVocabulary.
type AssociateDefaultVocabularyResponse struct{}

// ListDefaultVocabulariesRequest is the input of ListDefaultVocabularies. The service requires
// InstanceID.
type ListDefaultVocabulariesRequest struct {
	InstanceID   string `json:"InstanceId,omitempty"`
	LanguageCode string `json:"LanguageCode,omitempty"`
	NextToken    string `json:"NextToken,omitempty"`
	MaxResults   *int32 `json:"MaxResults,omitempty"`
}

// ListDefaultVocabulariesResponse is the output of ListDefaultVocabularies.
type ListDefaultVocabulariesResponse struct {
	DefaultVocabularyList []DefaultVocabulary `json:"DefaultVocabularyList,omitempty"`
	NextToken             string              `json:"NextToken,omitempty"`
}

func (r *CreateVocabularyRequest) clientToken() string {
	return r.ClientToken
}

func (r *CreateVocabularyRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}
