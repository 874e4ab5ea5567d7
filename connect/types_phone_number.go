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

// ClaimedPhoneNumberSummary describes a claimed phone number.
type ClaimedPhoneNumberSummary struct {
	PhoneNumberID          string             `json:"PhoneNumberId,omitempty"`
	PhoneNumberARN         string             `json:"PhoneNumberArn,omitempty"`
	PhoneNumber            string             `json:"PhoneNumber,omitempty"`
	PhoneNumberCountryCode string             `json:"PhoneNumberCountryCode,omitempty"`
	PhoneNumberType        string             `json:"PhoneNumberType,omitempty"`
	PhoneNumberDescription string             `json:"PhoneNumberDescription,omitempty"`
	TargetARN              string             `json:"TargetArn,omitempty"`
	Tags                   map[string]string  `json:"Tags,omitempty"`
	PhoneNumberStatus      *PhoneNumberStatus `json:"PhoneNumberStatus,omitempty"`
}

// PhoneNumberStatus is the claim status of a phone number.
type PhoneNumberStatus struct {
	Status  string `json:"Status,omitempty"`
	Message string `json:"Message,omitempty"`
}

// PhoneNumberSummary summarizes a phone number of an instance.
type PhoneNumberSummary struct {
	ID                     string `json:"Id,omitempty"`
	ARN                    string `json:"Arn,omitempty"`
	PhoneNumber            string `json:"PhoneNumber,omitempty"`
	PhoneNumberType        string `json:"PhoneNumberType,omitempty"`
	PhoneNumberCountryCode string `json:"PhoneNumberCountryCode,omitempty"`
}

// ListPhoneNumbersSummary summarizes a claimed phone number.
type ListPhoneNumbersSummary struct {
	PhoneNumberID          string `json:"PhoneNumberId,omitempty"`
	PhoneNumberARN         string `json:"PhoneNumberArn,omitempty"`
	PhoneNumber            string `json:"PhoneNumber,omitempty"`
	PhoneNumberCountryCode string `json:"PhoneNumberCountryCode,omitempty"`
	PhoneNumberType        string `json:"PhoneNumberType,omitempty"`
	TargetARN              string `json:"TargetArn,omitempty"`
}

// AvailableNumberSummary is a phone number available to claim.
type AvailableNumberSummary struct {
	PhoneNumber            string `json:"PhoneNumber,omitempty"`
	PhoneNumberCountryCode string `json:"PhoneNumberCountryCode,omitempty"`
	PhoneNumberType        string `json:"PhoneNumberType,omitempty"`
}

// ClaimPhoneNumberRequest is the input of ClaimPhoneNumber. The service requires TargetARN and
// PhoneNumber.
type ClaimPhoneNumberRequest struct {
	TargetARN              string            `json:"TargetArn,omitempty"`
	PhoneNumber            string            `json:"PhoneNumber,omitempty"`
	PhoneNumberDescription string            `json:"PhoneNumberDescription,omitempty"`
	Tags                   map[string]string `json:"Tags,omitempty"`
	ClientToken            string            `json:"ClientToken,omitempty"`
}

// ClaimPhoneNumberResponse is the output of ClaimPhoneNumber.
type ClaimPhoneNumberResponse struct {
	PhoneNumberID  string `json:"PhoneNumberId,omitempty"`
	PhoneNumberARN string `json:"PhoneNumberArn,omitempty"`
}

// DescribePhoneNumberRequest is the input of DescribePhoneNumber. The service requires
// PhoneNumberID.
type DescribePhoneNumberRequest struct {
	PhoneNumberID string `json:"PhoneNumberId,omitempty"`
}

// DescribePhoneNumberResponse is the output of DescribePhoneNumber.
type DescribePhoneNumberResponse struct {
	ClaimedPhoneNumberSummary *ClaimedPhoneNumberSummary `json:"ClaimedPhoneNumberSummary,omitempty"`
}

// ListPhoneNumbersRequest is the input of ListPhoneNumbers. The service requires InstanceID.
type ListPhoneNumbersRequest struct {
	InstanceID              string   `json:"InstanceId,omitempty"`
	PhoneNumberTypes        []string `json:"PhoneNumberTypes,omitempty"`
	PhoneNumberCountryCodes []string `json:"PhoneNumberCountryCodes,omitempty"`
	NextToken               string   `json:"NextToken,omitempty"`
	MaxResults              *int32   `json:"MaxResults,omitempty"`
}

// ListPhoneNumbersResponse is the output of ListPhoneNumbers.
type ListPhoneNumbersResponse struct {
	PhoneNumberSummaryList []PhoneNumberSummary `json:"PhoneNumberSummaryList,omitempty"`
	NextToken              string               `json:"NextToken,omitempty"`
}

// ListPhoneNumbersV2Request is the input of ListPhoneNumbersV2.
type ListPhoneNumbersV2Request struct {
	TargetARN               string   `json:"TargetArn,omitempty"`
	PhoneNumberCountryCodes []string `json:"PhoneNumberCountryCodes,omitempty"`
	PhoneNumberTypes        []string `json:"PhoneNumberTypes,omitempty"`
	PhoneNumberPrefix       string   `json:"PhoneNumberPrefix,omitempty"`
	NextToken               string   `json:"NextToken,omitempty"`
	MaxResults              *int32   `json:"MaxResults,omitempty"`
}

// ListPhoneNumbersV2Response is the output of ListPhoneNumbersV2.
type ListPhoneNumbersV2Response struct {
	ListPhoneNumbersSummaryList []ListPhoneNumbersSummary `json:"ListPhoneNumbersSummaryList,omitempty"`
	NextToken                   string                    `json:"NextToken,omitempty"`
}

// SearchAvailablePhoneNumbersRequest is the input of SearchAvailablePhoneNumbers. The service
// requires TargetARN, PhoneNumberCountryCode and PhoneNumberType.
type SearchAvailablePhoneNumbersRequest struct {
	TargetARN              string `json:"TargetArn,omitempty"`
	PhoneNumberCountryCode string `json:"PhoneNumberCountryCode,omitempty"`
	PhoneNumberType        string `json:"PhoneNumberType,omitempty"`
	PhoneNumberPrefix      string `json:"PhoneNumberPrefix,omitempty"`
	NextToken              string `json:"NextToken,omitempty"`
	MaxResults             *int32 `json:"MaxResults,omitempty"`
}

// SearchAvailablePhoneNumbersResponse is the output of SearchAvailablePhoneNumbers.
type SearchAvailablePhoneNumbersResponse struct {
	AvailableNumbersList []AvailableNumberSummary `json:"AvailableNumbersList,omitempty"`
	NextToken            string                   `json:"NextToken,omitempty"`
}

// UpdatePhoneNumberRequest is the input of UpdatePhoneNumber. The service requires PhoneNumberID
// and TargetARN.
type UpdatePhoneNumberRequest struct {
	PhoneNumberID string `json:"PhoneNumberId,omitempty"`
	TargetARN     string `json:"TargetArn,omitempty"`
	ClientToken   string `json:"ClientToken,omitempty"`
}

// UpdatePhoneNumberResponse is the output of UpdatePhoneNumber.
type UpdatePhoneNumberResponse struct {
	PhoneNumberID  string `json:"PhoneNumberId,omitempty"`
	PhoneNumberARN string `json:"PhoneNumberArn,omitempty"`
}

// ReleasePhoneNumberRequest is the input of ReleasePhoneNumber. The service requires PhoneNumberID.
type ReleasePhoneNumberRequest struct {
	PhoneNumberID string `json:"PhoneNumberId,omitempty"`
	ClientToken   string `json:"ClientToken,omitempty"`
}

// AssociatePhoneNumberContactFlowRequest is the input of AssociatePhoneNumberContactFlow. The
// service requires PhoneNumberID, InstanceID and ContactFlowID.
type AssociatePhoneNumberContactFlowRequest struct {
	PhoneNumberID string `json:"PhoneNumberId,omitempty"`
	InstanceID    string `json:"InstanceId,omitempty"`
	ContactFlowID string `json:"ContactFlowId,omitempty"`
}

// DisassociatePhoneNumberContactFlowRequest is the input of DisassociatePhoneNumberContactFlow. The
// service requires PhoneNumberID and InstanceID.
type DisassociatePhoneNumberContactFlowRequest struct {
	PhoneNumberID string `json:"PhoneNumberId,omitempty"`
	InstanceID    string `json:"InstanceId,omitempty"`
}

func (r *ClaimPhoneNumberRequest) clientToken() string {
	return r.ClientToken
}

func (r *ClaimPhoneNumberRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}

func (r *UpdatePhoneNumberRequest) clientToken() string {
	return r.ClientToken
}

func (r *UpdatePhoneNumberRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}

func (r *ReleasePhoneNumberRequest) clientToken() string {
	return r.ClientToken
}

func (r *ReleasePhoneNumberRequest) withClientToken(token string) any {
	clone := *r
	clone.ClientToken = token
	return &clone
}
