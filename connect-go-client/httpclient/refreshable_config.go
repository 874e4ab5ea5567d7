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

package httpclient

import (
	"github.com/palantir/pkg/refreshable"
)

// RefreshableClientConfig is a refreshable.Refreshable whose current value is a ClientConfig.
type RefreshableClientConfig interface {
	refreshable.Refreshable
	CurrentClientConfig() ClientConfig
	MapClientConfig(func(ClientConfig) interface{}) refreshable.Refreshable
}

// RefreshableServicesConfig is a refreshable.Refreshable whose current value is a ServicesConfig.
type RefreshableServicesConfig interface {
	refreshable.Refreshable
	CurrentServicesConfig() ServicesConfig
	MapServicesConfig(func(ServicesConfig) interface{}) refreshable.Refreshable
}

type refreshingClientConfig struct {
	refreshable.Refreshable
}

// NewRefreshingClientConfig wraps in, which must always hold a ClientConfig.
func NewRefreshingClientConfig(in refreshable.Refreshable) RefreshableClientConfig {
	return refreshingClientConfig{Refreshable: in}
}

func (r refreshingClientConfig) CurrentClientConfig() ClientConfig {
	return r.Current().(ClientConfig)
}

func (r refreshingClientConfig) MapClientConfig(mapFn func(ClientConfig) interface{}) refreshable.Refreshable {
	return r.Map(func(i interface{}) interface{} {
		return mapFn(i.(ClientConfig))
	})
}

type refreshingServicesConfig struct {
	refreshable.Refreshable
}

// NewRefreshingServicesConfig wraps in, which must always hold a ServicesConfig.
func NewRefreshingServicesConfig(in refreshable.Refreshable) RefreshableServicesConfig {
	return refreshingServicesConfig{Refreshable: in}
}

func (r refreshingServicesConfig) CurrentServicesConfig() ServicesConfig {
	return r.Current().(ServicesConfig)
}

func (r refreshingServicesConfig) MapServicesConfig(mapFn func(ServicesConfig) interface{}) refreshable.Refreshable {
	return r.Map(func(i interface{}) interface{} {
		return mapFn(i.(ServicesConfig))
	})
}

// RefreshableClientConfigFromServiceConfig returns the merged configuration of serviceName, updated with servicesConfig.
func RefreshableClientConfigFromServiceConfig(servicesConfig RefreshableServicesConfig, serviceName string) RefreshableClientConfig {
	return NewRefreshingClientConfig(servicesConfig.MapServicesConfig(func(servicesConfig ServicesConfig) interface{} {
		return servicesConfig.ClientConfig(serviceName)
	}))
}
