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

package region_test

import (
	"testing"

	"github.com/palantir/connect-go-sdk/connect/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegion_Validate(t *testing.T) {
	for _, tc := range []struct {
		name    string
		region  region.Region
		wantErr string
	}{
		{name: "offered", region: region.USEast1},
		{name: "gov cloud", region: region.USGovWest1},
		{name: "empty", region: "", wantErr: "region is empty"},
		{name: "unknown", region: "mars-north-1", wantErr: "unknown region"},
		{name: "known not offered", region: region.SAEast1, wantErr: "service is not offered in region"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.region.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestRegion_Endpoint(t *testing.T) {
	assert.Equal(t, "https://connect.us-west-2.amazonaws.com", region.USWest2.Endpoint())
	assert.Equal(t, "https://connect.cn-north-1.amazonaws.com.cn", region.CNNorth1.Endpoint())
	assert.Equal(t, "aws-us-gov", region.USGovWest1.Partition())
	assert.Equal(t, "", region.Region("nowhere").Partition())
}

func TestOffered(t *testing.T) {
	offered := region.Offered()
	assert.Contains(t, offered, region.USEast1)
	assert.NotContains(t, offered, region.SAEast1)
	assert.IsIncreasing(t, offered)
	for _, r := range offered {
		assert.True(t, r.IsKnown(), r)
	}
	assert.Greater(t, len(region.Known()), len(offered))
}
