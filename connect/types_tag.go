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

// TagSet is one tag key and value.
type TagSet struct {
	Key   string `json:"Key,omitempty"`
	Value string `json:"Value,omitempty"`
}

// ResourceTagsSearchCriteria filters tags returned by a tag search.
type ResourceTagsSearchCriteria struct {
	TagSearchCondition *TagSearchCondition `json:"TagSearchCondition,omitempty"`
}

// TagSearchCondition matches tags by key and value.
type TagSearchCondition struct {
	TagKey                 string `json:"TagKey,omitempty"`
	TagValue               string `json:"TagValue,omitempty"`
	TagKeyComparisonType   string `json:"TagKeyComparisonType,omitempty"`
	TagValueComparisonType string `json:"TagValueComparisonType,omitempty"`
}

// TagResourceRequest is the input of TagResource. The service requires ResourceARN and Tags.
type TagResourceRequest struct {
	ResourceARN string            `json:"ResourceArn,omitempty"`
	Tags        map[string]string `json:"Tags,omitempty"`
}

// UntagResourceRequest is the input of UntagResource. The service requires ResourceARN and TagKeys.
type UntagResourceRequest struct {
	ResourceARN string   `json:"ResourceArn,omitempty"`
	TagKeys     []string `json:"TagKeys,omitempty"`
}

// ListTagsForResourceRequest is the input of ListTagsForResource. The service requires ResourceARN.
type ListTagsForResourceRequest struct {
	ResourceARN string `json:"ResourceArn,omitempty"`
}

// ListTagsForResourceResponse is the output of ListTagsForResource.
type ListTagsForResourceResponse struct {
	Tags map[string]string `json:"Tags,omitempty"`
}

// SearchResourceTagsRequest is the input of SearchResourceTags. The service requires InstanceID.
type SearchResourceTagsRequest struct {
	InstanceID     string                      `json:"InstanceId,omitempty"`
	ResourceTypes  []string                    `json:"ResourceTypes,omitempty"`
	SearchCriteria *ResourceTagsSearchCriteria `json:"SearchCriteria,omitempty"`
	NextToken      string                      `json:"NextToken,omitempty"`
	MaxResults     *int32                      `json:"MaxResults,omitempty"`
}

// SearchResourceTagsResponse is the output of SearchResourceTags.
type SearchResourceTagsResponse struct {
	Tags      []TagSet `json:"Tags,omitempty"`
	NextToken string   `json:"NextToken,omitempty"`
}
