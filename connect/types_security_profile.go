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

// SecurityProfile describes a security profile.
type SecurityProfile struct {
	ID                       string            `json:"Id,omitempty"`
	OrganizationResourceID   string            `json:"OrganizationResourceId,omitempty"`
	ARN                      string            `json:"Arn,omitempty"`
	SecurityProfileName      string            `json:"SecurityProfileName,omitempty"`
	Description              string            `json:"Description,omitempty"`
	Tags                     map[string]string `json:"Tags,omitempty"`
	AllowedAccessControlTags map[string]string `json:"AllowedAccessControlTags,omitempty"`
	TagRestrictedResources   []string          `json:"TagRestrictedResources,omitempty"`
}

// SecurityProfileSummary summarizes a security profile.
type SecurityProfileSummary struct {
	ID   string `json:"Id,omitempty"`
	ARN  string `json:"Arn,omitempty"`
	Name string `json:"Name,omitempty"`
}

// CreateSecurityProfileRequest is the input of CreateSecurityProfile. The service requires
// SecurityProfileName and InstanceID.
type CreateSecurityProfileRequest struct {
	SecurityProfileName      string            `json:"SecurityProfileName,omitempty"`
	Description              string            `json:"Description,omitempty"`
	Permissions              []string          `json:"Permissions,omitempty"`
	InstanceID               string            `json:"InstanceId,omitempty"`
	Tags                     map[string]string `json:"Tags,omitempty"`
	AllowedAccessControlTags map[string]string `json:"AllowedAccessControlTags,omitempty"`
	TagRestrictedResources   []string          `json:"TagRestrictedResources,omitempty"`
}

// CreateSecurityProfileResponse is the output of CreateSecurityProfile.
type CreateSecurityProfileResponse struct {
	SecurityProfileID  string `json:"SecurityProfileId,omitempty"`
	SecurityProfileARN string `json:"SecurityProfileArn,omitempty"`
}

// DescribeSecurityProfileRequest is the input of DescribeSecurityProfile. The service requires
// SecurityProfileID and InstanceID.
type DescribeSecurityProfileRequest struct {
	SecurityProfileID string `json:"SecurityProfileId,omitempty"`
	InstanceID        string `json:"InstanceId,omitempty"`
}

// DescribeSecurityProfileResponse is the output of DescribeSecurityProfile.
type DescribeSecurityProfileResponse struct {
	SecurityProfile *SecurityProfile `json:"SecurityProfile,omitempty"`
}

// ListSecurityProfilesRequest is the input of ListSecurityProfiles. The service requires
// InstanceID.
type ListSecurityProfilesRequest struct {
	InstanceID string `json:"InstanceId,omitempty"`
	NextToken  string `json:"NextToken,omitempty"`
	MaxResults *int32 `json:"MaxResults,omitempty"`
}

// ListSecurityProfilesResponse is the output of ListSecurityProfiles.
type ListSecurityProfilesResponse struct {
	SecurityProfileSummaryList []SecurityProfileSummary `json:"SecurityProfileSummaryList,omitempty"`
	NextToken                  string                   `json:"NextToken,omitempty"`
}

// SearchSecurityProfilesRequest is the input of SearchSecurityProfiles. The service requires
// InstanceID.
type SearchSecurityProfilesRequest struct {
	InstanceID     string                 `json:"InstanceId,omitempty"`
	SearchFilter   *ControlPlaneTagFilter `json:"SearchFilter,omitempty"`
	SearchCriteria *SearchCriteria        `json:"SearchCriteria,omitempty"`
	NextToken      string                 `json:"NextToken,omitempty"`
	MaxResults     *int32                 `json:"MaxResults,omitempty"`
}

// SearchSecurityProfilesResponse is the output of SearchSecurityProfiles.
type SearchSecurityProfilesResponse struct {
	SecurityProfiles      []SecurityProfile `json:"SecurityProfiles,omitempty"`
	ApproximateTotalCount *int64            `json:"ApproximateTotalCount,omitempty"`
	NextToken             string            `json:"NextToken,omitempty"`
}

// ListSecurityProfilePermissionsRequest is the input of ListSecurityProfilePermissions. The service
// requires SecurityProfileID and InstanceID.
type ListSecurityProfilePermissionsRequest struct {
	SecurityProfileID string `json:"SecurityProfileId,omitempty"`
	InstanceID        string `json:"InstanceId,omitempty"`
	NextToken         string `json:"NextToken,omitempty"`
	MaxResults        *int32 `json:"MaxResults,omitempty"`
}

// ListSecurityProfilePermissionsResponse is the output of ListSecurityProfilePermissions.
type ListSecurityProfilePermissionsResponse struct {
	Permissions []string `json:"Permissions,omitempty"`
	NextToken   string   `json:"NextToken,omitempty"`
}

// UpdateSecurityProfileRequest is the input of UpdateSecurityProfile. The service requires
// SecurityProfileID and InstanceID.
type UpdateSecurityProfileRequest struct {
	Description              string            `json:"Description,omitempty"`
	Permissions              []string          `json:"Permissions,omitempty"`
	SecurityProfileID        string            `json:"SecurityProfileId,omitempty"`
	InstanceID               string            `json:"InstanceId,omitempty"`
	AllowedAccessControlTags map[string]string `json:"AllowedAccessControlTags,omitempty"`
	TagRestrictedResources   []string          `json:"TagRestrictedResources,omitempty"`
}

// DeleteSecurityProfileRequest is the input of DeleteSecurityProfile. The service requires
// InstanceID and SecurityProfileID.
type DeleteSecurityProfileRequest struct {
	InstanceID        string `json:"InstanceId,omitempty"`
	SecurityProfileID string `json:"SecurityProfileId,omitempty"`
}
