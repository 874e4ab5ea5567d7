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

// HoursOfOperation describes hours of operation.
type HoursOfOperation struct {
	HoursOfOperationID  string                   `json:"HoursOfOperationId,omitempty"`
	HoursOfOperationARN string                   `json:"HoursOfOperationArn,omitempty"`
	Name                string                   `json:"Name,omitempty"`
	Description         string                   `json:"Description,omitempty"`
	TimeZone            string                   `json:"TimeZone,omitempty"`
	Config              []HoursOfOperationConfig `json:"Config,omitempty"`
	Tags                map[string]string        `json:"Tags,omitempty"`
}

// HoursOfOperationConfig is the open hours of one day.
type HoursOfOperationConfig struct {
	Day       string                    `json:"Day,omitempty"`
	StartTime HoursOfOperationTimeSlice `json:"StartTime,omitempty"`
	EndTime   HoursOfOperationTimeSlice `json:"EndTime,omitempty"`
}

// HoursOfOperationTimeSlice is a time of day.
type HoursOfOperationTimeSlice struct {
	Hours   int32 `json:"Hours,omitempty"`
	Minutes int32 `json:"Minutes,omitempty"`
}

// HoursOfOperationSummary summarizes hours of operation.
type HoursOfOperationSummary struct {
	ID   string `json:"Id,omitempty"`
	ARN  string `json:"Arn,omitempty"`
	Name string `json:"Name,omitempty"`
}

// CreateHoursOfOperationRequest is the input of CreateHoursOfOperation. The service requires
// InstanceID, Name, TimeZone and Config.
type CreateHoursOfOperationRequest struct {
	InstanceID  string                   `json:"InstanceId,omitempty"`
	Name        string                   `json:"Name,omitempty"`
	Description string                   `json:"Description,omitempty"`
	TimeZone    string                   `json:"TimeZone,omitempty"`
	Config      []HoursOfOperationConfig `json:"Config,omitempty"`
	Tags        map[string]string        `json:"Tags,omitempty"`
}

// CreateHoursOfOperationResponse is the output of CreateHoursOfOperation.
type CreateHoursOfOperationResponse struct {
	HoursOfOperationID  string `json:"HoursOfOperationId,omitempty"`
	HoursOfOperationARN string `json:"HoursOfOperationArn,omitempty"`
}

// DescribeHoursOfOperationRequest is the input of DescribeHoursOfOperation. The service requires
// InstanceID and HoursOfOperationID.
type DescribeHoursOfOperationRequest struct {
	InstanceID         string `json:"InstanceId,omitempty"`
	HoursOfOperationID string `json:"HoursOfOperationId,omitempty"`
}

// DescribeHoursOfOperationResponse is the output of DescribeHoursOfOperation.
type DescribeHoursOfOperationResponse struct {
	HoursOfOperation *HoursOfOperation `json:"HoursOfOperation,omitempty"`
}

// ListHoursOfOperationsRequest is the input of ListHoursOfOperations. The service requires
// InstanceID.
type ListHoursOfOperationsRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	NextToken  string `json:"NextToken,omitempty"`
	MaxResults *int32 `json:"MaxResults,omitempty"`
}

// ListHoursOfOperationsResponse is the output of ListHoursOfOperations.
type ListHoursOfOperationsResponse struct {
	HoursOfOperationSummaryList []HoursOfOperationSummary `json:"HoursOfOperationSummaryList,omitempty"`
	NextToken                   string                    `json:"NextToken,omitempty"`
}

// UpdateHoursOfOperationRequest is the input of UpdateHoursOfOperation. The service requires
// InstanceID and HoursOfOperationID.
type UpdateHoursOfOperationRequest struct {
	InstanceID         string                   `json:"InstanceId,omitempty"`
	HoursOfOperationID string                   `json:"HoursOfOperationId,omitempty"`
	Name               string                   `json:"Name,omitempty"`
	Description        string                   `json:"Description,omitempty"`
	Config             []HoursOfOperationConfig `json:"Config,omitempty"`
	TimeZone           string                   `json:"TimeZone,omitempty"`
}

// DeleteHoursOfOperationRequest is the input of DeleteHoursOfOperation. The service requires
// InstanceID and HoursOfOperationID.
type DeleteHoursOfOperationRequest struct {
	InstanceID         string `json:"InstanceId,omitempty"`
	HoursOfOperationID string `json:"HoursOfOperationId,omitempty"`
}
