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

// Prompt describes a prompt.
type Prompt struct {
	PromptARN   string            `json:"PromptARN,omitempty"`
	PromptID    string            `json:"PromptId,omitempty"`
	Name        string            `json:"Name,omitempty"`
	Description string            `json:"Description,omitempty"`
	Tags        map[string]string `json:"Tags,omitempty"`
}

// PromptSummary summarizes a prompt.
type PromptSummary struct {
	ID   string `json:"Id,omitempty"`
	ARN  string `json:"Arn,omitempty"`
	Name string `json:"Name,omitempty"`
}

// CreatePromptRequest is the input of CreatePrompt. The service requires InstanceID, Name and
// S3URI.
type CreatePromptRequest struct {
	InstanceID  string            `json:"InstanceId,omitempty"`
	Name        string            `json:"Name,omitempty"`
	Description string            `json:"Description,omitempty"`
	S3URI       string            `json:"S3Uri,omitempty"`
	Tags        map[string]string `json:"Tags,omitempty"`
}

// CreatePromptResponse is the output of CreatePrompt.
type CreatePromptResponse struct {
	PromptARN string `json:"PromptARN,omitempty"`
	PromptID  string `json:"PromptId,omitempty"`
}

// DescribePromptRequest is the input of DescribePrompt. The service requires InstanceID and
// PromptID.
type DescribePromptRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	PromptID   string `json:"PromptId,omitempty"`
}

// DescribePromptResponse is the output of DescribePrompt.
type DescribePromptResponse struct {
	Prompt *Prompt `json:"Prompt,omitempty"`
}

// ListPromptsRequest is the input of ListPrompts. The service requires InstanceID.
type ListPromptsRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	NextToken  string `json:"NextToken,omitempty"`
	MaxResults *int32 `json:"MaxResults,omitempty"`
}

// ListPromptsResponse is the output of ListPrompts.
type ListPromptsResponse struct {
	PromptSummaryList []PromptSummary `json:"PromptSummaryList,omitempty"`
	NextToken         string          `json:"NextToken,omitempty"`
}

// GetPromptFileRequest is the input of GetPromptFile. The service requires InstanceID and PromptID.
type GetPromptFileRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	PromptID   string `json:"PromptId,omitempty"`
}

// GetPromptFileResponse is the output of GetPromptFile.
type GetPromptFileResponse struct {
	PromptPresignedURL string `json:"PromptPresignedUrl,omitempty"`
}

// UpdatePromptRequest is the input of UpdatePrompt. The service requires InstanceID and PromptID.
type UpdatePromptRequest struct {
	InstanceID  string `json:"InstanceId,omitempty"`
	PromptID    string `json:"PromptId,omitempty"`
	Name        string `json:"Name,omitempty"`
	Description string `json:"Description,omitempty"`
	S3URI       string `json:"S3Uri,omitempty"`
}

// UpdatePromptResponse is the output of UpdatePrompt.
type UpdatePromptResponse struct {
	PromptARN string `json:"PromptARN,omitempty"`
	PromptID  string `json:"PromptId,omitempty"`
}

// DeletePromptRequest is the input of DeletePrompt. The service requires InstanceID and PromptID.
type DeletePromptRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	PromptID   string `json:"PromptId,omitempty"`
}
