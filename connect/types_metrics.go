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

// Filters selects the queues, channels and routing profiles metrics are computed for.
type Filters struct {
	Queues          []string `json:"Queues,omitempty"`
	Channels        []string `json:"Channels,omitempty"`
	RoutingProfiles []string `json:"RoutingProfiles,omitempty"`
}

// CurrentMetric names a real-time metric.
type CurrentMetric struct {
	Name string `json:"Name,omitempty"`
	Unit string `json:"Unit,omitempty"`
}

// CurrentMetricSortCriteria orders real-time metric results.
type CurrentMetricSortCriteria struct {
	SortByMetric string `json:"SortByMetric,omitempty"`
	SortOrder    string `json:"SortOrder,omitempty"`
}

// CurrentMetricResult is the real-time metrics of one grouping.
type CurrentMetricResult struct {
	Dimensions  *Dimensions         `json:"Dimensions,omitempty"`
	Collections []CurrentMetricData `json:"Collections,omitempty"`
}

// CurrentMetricData is the value of one real-time metric.
type CurrentMetricData struct {
	Metric *CurrentMetric `json:"Metric,omitempty"`
	Value  *float64       `json:"Value,omitempty"`
}

// Dimensions is the grouping of a metric result.
type Dimensions struct {
	Queue          *QueueReference          `json:"Queue,omitempty"`
	Channel        string                   `json:"Channel,omitempty"`
	RoutingProfile *RoutingProfileReference `json:"RoutingProfile,omitempty"`
}

// HistoricalMetric names a historical metric.
type HistoricalMetric struct {
	Name      string     `json:"Name,omitempty"`
	Threshold *Threshold `json:"Threshold,omitempty"`
	Statistic string     `json:"Statistic,omitempty"`
	Unit      string     `json:"Unit,omitempty"`
}

// Threshold is the service level threshold of a historical metric.
type Threshold struct {
	Comparison     string   `json:"Comparison,omitempty"`
	ThresholdValue *float64 `json:"ThresholdValue,omitempty"`
}

// HistoricalMetricResult is the historical metrics of one grouping.
type HistoricalMetricResult struct {
	Dimensions  *Dimensions            `json:"Dimensions,omitempty"`
	Collections []HistoricalMetricData `json:"Collections,omitempty"`
}

// HistoricalMetricData is the value of one historical metric.
type HistoricalMetricData struct {
	Metric *HistoricalMetric `json:"Metric,omitempty"`
	Value  *float64          `json:"Value,omitempty"`
}

// MetricV2 names a metric and its thresholds.
type MetricV2 struct {
	Name      string        `json:"Name,omitempty"`
	Threshold []ThresholdV2 `json:"Threshold,omitempty"`
}

// ThresholdV2 is one threshold of a metric.
type ThresholdV2 struct {
	Comparison     string   `json:"Comparison,omitempty"`
	ThresholdValue *float64 `json:"ThresholdValue,omitempty"`
}

// FilterV2 filters metrics by one dimension.
type FilterV2 struct {
	FilterKey    string   `json:"FilterKey,omitempty"`
	FilterValues []string `json:"FilterValues,omitempty"`
}

// MetricResultV2 is the metrics of one grouping.
type MetricResultV2 struct {
	Dimensions  map[string]string `json:"Dimensions,omitempty"`
	Collections []MetricDataV2    `json:"Collections,omitempty"`
}

// MetricDataV2 is the value of one metric.
type MetricDataV2 struct {
	Metric *MetricV2 `json:"Metric,omitempty"`
	Value  *float64  `json:"Value,omitempty"`
}

// GetCurrentMetricDataRequest is the input of GetCurrentMetricData. The service requires
// InstanceID, Filters and CurrentMetrics.
type GetCurrentMetricDataRequest struct {
	InstanceID     string                      `json:"InstanceId,omitempty"`
	Filters        *Filters                    `json:"Filters,omitempty"`
	Groupings      []string                    `json:"Groupings,omitempty"`
	CurrentMetrics []CurrentMetric             `json:"CurrentMetrics,omitempty"`
	SortCriteria   []CurrentMetricSortCriteria `json:"SortCriteria,omitempty"`
	NextToken      string                      `json:"NextToken,omitempty"`
	MaxResults     *int32                      `json:"MaxResults,omitempty"`
}

// GetCurrentMetricDataResponse is the output of GetCurrentMetricData.
type GetCurrentMetricDataResponse struct {
	MetricResults         []CurrentMetricResult `json:"MetricResults,omitempty"`
	DataSnapshotTime      *time.Time            `json:"DataSnapshotTime,omitempty"`
	ApproximateTotalCount *int64                `json:"ApproximateTotalCount,omitempty"`
	NextToken             string                `json:"NextToken,omitempty"`
}

// GetMetricDataRequest is the input of GetMetricData. The service requires InstanceID, StartTime,
// EndTime, Filters and HistoricalMetrics.
type GetMetricDataRequest struct {
	InstanceID        string             `json:"InstanceId,omitempty"`
	StartTime         *time.Time         `json:"StartTime,omitempty"`
	EndTime           *time.Time         `json:"EndTime,omitempty"`
	Filters           *Filters           `json:"Filters,omitempty"`
	Groupings         []string           `json:"Groupings,omitempty"`
	HistoricalMetrics []HistoricalMetric `json:"HistoricalMetrics,omitempty"`
	NextToken         string             `json:"NextToken,omitempty"`
	MaxResults        *int32             `json:"MaxResults,omitempty"`
}

// GetMetricDataResponse is the output of GetMetricData.
type GetMetricDataResponse struct {
	MetricResults []HistoricalMetricResult `json:"MetricResults,omitempty"`
	NextToken     string                   `json:"NextToken,omitempty"`
}

// GetMetricDataV2Request is the input of GetMetricDataV2. The service requires ResourceARN,
// StartTime, EndTime, Filters and Metrics.
type GetMetricDataV2Request struct {
	ResourceARN string     `json:"ResourceArn,omitempty"`
	StartTime   *time.Time `json:"StartTime,omitempty"`
	EndTime     *time.Time `json:"EndTime,omitempty"`
	Filters     []FilterV2 `json:"Filters,omitempty"`
	Groupings   []string   `json:"Groupings,omitempty"`
	Metrics     []MetricV2 `json:"Metrics,omitempty"`
	NextToken   string     `json:"NextToken,omitempty"`
	MaxResults  *int32     `json:"MaxResults,omitempty"`
}

// GetMetricDataV2Response is the output of GetMetricDataV2.
type GetMetricDataV2Response struct {
	MetricResults []MetricResultV2 `json:"MetricResults,omitempty"`
	NextToken     string           `json:"NextToken,omitempty"`
}
