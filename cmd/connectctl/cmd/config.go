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

package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/palantir/connect-go-sdk/connect"
	"github.com/palantir/connect-go-sdk/connect-go-client/httpclient"
	"github.com/palantir/connect-go-sdk/connect-go-contract/codecs"
	"github.com/palantir/connect-go-sdk/connect/region"
	"github.com/palantir/pkg/refreshable"
	werror "github.com/palantir/witchcraft-go-error"
)

// clientConfig reads the configuration file, if any, and applies the flag overrides. The same
// document is also read as an httpclient.ServicesConfig, so a "services.connect" block tunes the
// transport of this client the way it would in a shared services configuration.
func (o *options) clientConfig() (connect.Config, httpclient.ServicesConfig, error) {
	var cfg connect.Config
	var services httpclient.ServicesConfig
	if o.configFile != "" {
		decoder, err := configDecoder(o.configFile)
		if err != nil {
			return connect.Config{}, services, err
		}
		data, err := os.ReadFile(o.configFile)
		if err != nil {
			return connect.Config{}, services, werror.Wrap(err, "failed to read configuration file", werror.SafeParam("path", o.configFile))
		}
		if err := decoder.Unmarshal(data, &cfg); err != nil {
			return connect.Config{}, services, werror.Wrap(err, "failed to parse configuration file", werror.SafeParam("path", o.configFile))
		}
		if err := decoder.Unmarshal(data, &services); err != nil {
			return connect.Config{}, services, werror.Wrap(err, "failed to parse services configuration", werror.SafeParam("path", o.configFile))
		}
	}
	if o.endpoint != "" {
		cfg.Endpoint = o.endpoint
	}
	if o.region != "" {
		cfg.Region = region.Region(o.region)
	}
	if o.token != "" {
		cfg.APIToken = o.token
	}
	return cfg, services, nil
}

// newClient builds a client from the configuration file and flags.
func (o *options) newClient(ctx context.Context) (connect.Client, error) {
	cfg, services, err := o.clientConfig()
	if err != nil {
		return nil, err
	}
	return connect.NewFromServicesConfig(ctx, cfg, httpclient.NewRefreshingServicesConfig(refreshable.NewDefaultRefreshable(services)))
}

func configDecoder(path string) (codecs.Decoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return codecs.YAML, nil
	case ".toml":
		return codecs.TOML, nil
	default:
		return nil, werror.Error("unsupported configuration file extension", werror.SafeParam("extension", ext))
	}
}
