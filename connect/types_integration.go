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

// IntegrationAssociationSummary summarizes an integration association.
type IntegrationAssociationSummary struct {
	IntegrationAssociationID  string `json:"IntegrationAssociationId,omitempty"`
	IntegrationAssociationARN string `json:"IntegrationAssociationArn,omitempty"`
	InstanceID                string `json:"InstanceId,omitempty"`
	IntegrationType           string `json:"IntegrationType,omitempty"`
	IntegrationARN            string `json:"IntegrationArn,omitempty"`
	SourceApplicationURL      string `json:"SourceApplicationUrl,omitempty"`
	SourceApplicationName     string `json:"SourceApplicationName,omitempty"`
	SourceType                string `json:"SourceType,omitempty"`
}

// UseCase describes a use case of an integration association.
type UseCase struct {
	UseCaseID   string `json:"UseCaseId,omitempty"`
	UseCaseARN  string `json:"UseCaseArn,omitempty"`
	UseCaseType string `json:"UseCaseType,omitempty"`
}

// CreateIntegrationAssociationRequest is the input of CreateIntegrationAssociation. The service
// requires InstanceID, IntegrationType and IntegrationARN.
type CreateIntegrationAssociationRequest struct {
	InstanceID            string            `json:"InstanceId,omitempty"`
	IntegrationType       string            `json:"IntegrationType,omitempty"`
	IntegrationARN        string            `json:"IntegrationArn,omitempty"`
	SourceApplicationURL  string            `json:"SourceApplicationUrl,omitempty"`
	SourceApplicationName string            `json:"SourceApplicationName,omitempty"`
	SourceType            string            `json:"SourceType,omitempty"`
	Tags                  map[string]string `json:"Tags,omitempty"`
}

// CreateIntegrationAssociationResponse is the output of CreateIntegrationAssociation.
type CreateIntegrationAssociationResponse struct {
	IntegrationAssociationID  string `json:"IntegrationAssociationId,omitempty"`
	IntegrationAssociationARN string `json:"IntegrationAssociationArn,omitempty"`
}

// DeleteIntegrationAssociationRequest is the input of DeleteIntegrationAssociation. The service
// requires InstanceID and IntegrationAssociationID.
type DeleteIntegrationAssociationRequest struct {
	InstanceID               string `json:"InstanceId,omitempty"`
	IntegrationAssociationID string `json:"IntegrationAssociationId,omitempty"`
}

// ListIntegrationAssociationsRequest is the input of ListIntegrationAssociations. The service
// requires InstanceID.
type ListIntegrationAssociationsRequest struct {
	InstanceID      string `json:"InstanceId,omitempty"`
	IntegrationType string `json:"IntegrationType,omitempty"`
	IntegrationARN  string `json:"IntegrationArn,omitempty"`
	NextToken       string `json:"NextToken,omitempty"`
	MaxResults      *int32 `json:"MaxResults,omitempty"`
}

// ListIntegrationAssociationsResponse is the output of ListIntegrationAssociations.
type ListIntegrationAssociationsResponse struct {
	IntegrationAssociationSummaryList []IntegrationAssociationSummary `json:"IntegrationAssociationSummaryList,omitempty"`
	NextToken                         string                          `json:"NextToken,omitempty"`
}

// CreateUseCaseRequest is the input of CreateUseCase. The service requires InstanceID,
// IntegrationAssociationID and UseCaseType.
type CreateUseCaseRequest struct {
	InstanceID               string            `json:"InstanceId,omitempty"`
	IntegrationAssociationID string            `json:"IntegrationAssociationId,omitempty"`
	UseCaseType              string            `json:"UseCaseType,omitempty"`
	Tags                     map[string]string `json:"Tags,omitempty"`
}

// CreateUseCaseResponse is the output of CreateUseCase.
type CreateUseCaseResponse struct {
	UseCaseID  string `json:"UseCaseId,omitempty"`
	UseCaseARN string `json:"UseCaseArn,omitempty"`
}

// DeleteUseCaseRequest is the input of DeleteUseCase. The service requires InstanceID,
// IntegrationAssociationID and UseCaseID.
type DeleteUseCaseRequest struct {
	InstanceID               string `json:"InstanceId,omitempty"`
	IntegrationAssociationID string `json:"IntegrationAssociationId,omitempty"`
	UseCaseID                string `json:"UseCaseId,omitempty"`
}

// ListUseCasesRequest is the input of ListUseCases. The service requires InstanceID and
// IntegrationAssociationID.
type ListUseCasesRequest struct {
	InstanceID               string `json:"InstanceId,omitempty"`
	IntegrationAssociationID string `json:"IntegrationAssociationId,omitempty"`
	NextToken                string `json:"NextToken,omitempty"`
	MaxResults               *int32 `json:"MaxResults,omitempty"`
}

// ListUseCasesResponse is the output of ListUseCases.
type ListUseCasesResponse struct {
	UseCaseSummaryList []UseCase `json:"UseCaseSummaryList,omitempty"`
	NextToken          string    `json:"NextToken,omitempty"`
}
