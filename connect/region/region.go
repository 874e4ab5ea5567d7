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

// Package region enumerates the deployment regions of the service.
package region

import (
	"sort"

	werror "github.com/palantir/witchcraft-go-error"
)

// Region is a deployment region identifier such as "us-east-1".
type Region string

const (
	USEast1      Region = "us-east-1"
	USEast2      Region = "us-east-2"
	USWest1      Region = "us-west-1"
	USWest2      Region = "us-west-2"
	CACentral1   Region = "ca-central-1"
	SAEast1      Region = "sa-east-1"
	EUWest1      Region = "eu-west-1"
	EUWest2      Region = "eu-west-2"
	EUWest3      Region = "eu-west-3"
	EUCentral1   Region = "eu-central-1"
	EUNorth1     Region = "eu-north-1"
	EUSouth1     Region = "eu-south-1"
	APSouth1     Region = "ap-south-1"
	APSoutheast1 Region = "ap-southeast-1"
	APSoutheast2 Region = "ap-southeast-2"
	APNortheast1 Region = "ap-northeast-1"
	APNortheast2 Region = "ap-northeast-2"
	APNortheast3 Region = "ap-northeast-3"
	APEast1      Region = "ap-east-1"
	MESouth1     Region = "me-south-1"
	AFSouth1     Region = "af-south-1"
	ILCentral1   Region = "il-central-1"
	USGovWest1   Region = "us-gov-west-1"
	USGovEast1   Region = "us-gov-east-1"
	CNNorth1     Region = "cn-north-1"
	CNNorthwest1 Region = "cn-northwest-1"
)

type info struct {
	partition string
	offered   bool
}

var regions = map[Region]info{
	USEast1:      {partition: "aws", offered: true},
	USEast2:      {partition: "aws"},
	USWest1:      {partition: "aws"},
	USWest2:      {partition: "aws", offered: true},
	CACentral1:   {partition: "aws", offered: true},
	SAEast1:      {partition: "aws"},
	EUWest1:      {partition: "aws"},
	EUWest2:      {partition: "aws", offered: true},
	EUWest3:      {partition: "aws"},
	EUCentral1:   {partition: "aws", offered: true},
	EUNorth1:     {partition: "aws"},
	EUSouth1:     {partition: "aws"},
	APSouth1:     {partition: "aws"},
	APSoutheast1: {partition: "aws", offered: true},
	APSoutheast2: {partition: "aws", offered: true},
	APNortheast1: {partition: "aws", offered: true},
	APNortheast2: {partition: "aws", offered: true},
	APNortheast3: {partition: "aws"},
	APEast1:      {partition: "aws"},
	MESouth1:     {partition: "aws"},
	AFSouth1:     {partition: "aws", offered: true},
	ILCentral1:   {partition: "aws"},
	USGovWest1:   {partition: "aws-us-gov", offered: true},
	USGovEast1:   {partition: "aws-us-gov"},
	CNNorth1:     {partition: "aws-cn"},
	CNNorthwest1: {partition: "aws-cn"},
}

// IsKnown reports whether r is a region of any partition.
func (r Region) IsKnown() bool {
	_, ok := regions[r]
	return ok
}

// IsOffered reports whether the service runs in r.
func (r Region) IsOffered() bool {
	return regions[r].offered
}

// Partition returns the partition of r ("aws", "aws-us-gov", "aws-cn"), or "" for unknown regions.
func (r Region) Partition() string {
	return regions[r].partition
}

// DNSSuffix is the domain under which the service's regional endpoints live.
func (r Region) DNSSuffix() string {
	if r.Partition() == "aws-cn" {
		return "amazonaws.com.cn"
	}
	return "amazonaws.com"
}

// Endpoint returns the default endpoint URL of the service in r.
func (r Region) Endpoint() string {
	return "https://connect." + string(r) + "." + r.DNSSuffix()
}

func (r Region) String() string {
	return string(r)
}

// Validate returns an error unless r is known and the service is offered there.
func (r Region) Validate() error {
	if r == "" {
		return werror.Error("region is empty")
	}
	if !r.IsKnown() {
		return werror.Error("unknown region", werror.UnsafeParam("region", string(r)))
	}
	if !r.IsOffered() {
		return werror.Error("service is not offered in region", werror.SafeParam("region", string(r)))
	}
	return nil
}

// Known returns every known region, sorted.
func Known() []Region {
	return filter(func(info) bool { return true })
}

// Offered returns the regions in which the service runs, sorted.
func Offered() []Region {
	return filter(func(i info) bool { return i.offered })
}

func filter(keep func(info) bool) []Region {
	var out []Region
	for r, i := range regions {
		if keep(i) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
