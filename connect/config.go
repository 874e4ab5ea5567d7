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

import (
	stderrors "errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/palantir/connect-go-sdk/connect-go-client/httpclient"
	"github.com/palantir/connect-go-sdk/connect/region"
	werror "github.com/palantir/witchcraft-go-error"
)

const (
	// ServiceName names the service in client metrics and configuration.
	ServiceName = "connect"

	DefaultMetadataRetention = 5 * time.Minute
	DefaultMetadataCapacity  = 256
)

// Config is supplied once to New. The client keeps a copy; later changes to the caller's value
// have no effect.
type Config struct {
	// Endpoint is a raw host ("connect.example.com", "host:8443") or a full URL
	// ("https://host/prefix"). When empty, the endpoint of Region is used.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" toml:"endpoint" validate:"required_without=Region"`
	// Region is the deployment region. It is sent with every request when set.
	Region region.Region `json:"region,omitempty" yaml:"region,omitempty" toml:"region" validate:"required_without=Endpoint"`
	// APIToken is sent as a bearer token when set.
	APIToken string `json:"api-token,omitempty" yaml:"api-token,omitempty" toml:"api-token" validate:"omitempty,printascii"`
	// HTTP tunes the transport. Its URIs and api-token are ignored in favor of Endpoint and APIToken.
	HTTP httpclient.ClientConfig `json:"http,omitempty" yaml:"http,omitempty" toml:"http"`
	// MetadataRetention is how long response metadata stays retrievable. Defaults to 5m.
	MetadataRetention time.Duration `json:"metadata-retention,omitempty" yaml:"metadata-retention,omitempty" toml:"metadata-retention" validate:"gte=0"`
	// MetadataCapacity bounds the number of retained metadata entries. Defaults to 256.
	MetadataCapacity int `json:"metadata-capacity,omitempty" yaml:"metadata-capacity,omitempty" toml:"metadata-capacity" validate:"gte=0"`
}

var validate = validator.New()

// Validate checks the configuration without performing any network I/O.
func (c Config) Validate() error {
	_, err := c.resolve()
	return err
}

// resolvedConfig is a validated Config with defaults applied.
type resolvedConfig struct {
	endpoint  string
	region    region.Region
	apiToken  string
	retention time.Duration
	capacity  int
}

func (c Config) resolve() (resolvedConfig, error) {
	if err := validate.Struct(c); err != nil {
		return resolvedConfig{}, configErrorFromValidation(err)
	}
	r := resolvedConfig{
		region:    c.Region,
		apiToken:  c.APIToken,
		retention: c.MetadataRetention,
		capacity:  c.MetadataCapacity,
	}
	if c.Region != "" {
		if err := c.Region.Validate(); err != nil {
			return resolvedConfig{}, &ConfigError{Field: "Region", Value: string(c.Region), Reason: err.Error(), Cause: err}
		}
	}
	if c.Endpoint == "" {
		r.endpoint = c.Region.Endpoint()
	} else {
		endpoint, err := normalizeEndpoint(c.Endpoint)
		if err != nil {
			return resolvedConfig{}, &ConfigError{Field: "Endpoint", Value: c.Endpoint, Reason: err.Error(), Cause: err}
		}
		r.endpoint = endpoint
	}
	if r.retention == 0 {
		r.retention = DefaultMetadataRetention
	}
	if r.capacity == 0 {
		r.capacity = DefaultMetadataCapacity
	}
	return r, nil
}

// clientConfig overlays the resolved endpoint and token on the transport configuration.
func (r resolvedConfig) clientConfig(c httpclient.ClientConfig) httpclient.ClientConfig {
	c.ServiceName = ServiceName
	c.URIs = []string{r.endpoint}
	c.APITokenFile = nil
	c.APIToken = nil
	if r.apiToken != "" {
		token := r.apiToken
		c.APIToken = &token
	}
	return c
}

// normalizeEndpoint turns a raw host or URL into a base URL without a trailing slash.
func normalizeEndpoint(endpoint string) (string, error) {
	if strings.IndexFunc(endpoint, unicode.IsSpace) >= 0 {
		return "", werror.Error("must not contain whitespace")
	}
	raw := endpoint
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", werror.Error("not a valid URL", werror.UnsafeParam("parseError", err.Error()))
	}
	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return "", werror.Error("unsupported scheme", werror.SafeParam("scheme", u.Scheme))
	case u.Hostname() == "":
		return "", werror.Error("missing host")
	case u.RawQuery != "" || u.ForceQuery:
		return "", werror.Error("must not contain a query")
	case u.Fragment != "":
		return "", werror.Error("must not contain a fragment")
	case u.User != nil:
		return "", werror.Error("must not contain credentials")
	}
	if port := u.Port(); port != "" {
		if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
			return "", werror.Error("invalid port", werror.SafeParam("port", port))
		}
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	return u.String(), nil
}

func configErrorFromValidation(err error) error {
	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		reason := fmt.Sprintf("failed %q validation", fe.Tag())
		if fe.Tag() == "required_without" {
			reason = "one of Endpoint or Region is required"
		}
		return &ConfigError{Field: fe.Field(), Value: fmt.Sprint(fe.Value()), Reason: reason}
	}
	return &ConfigError{Field: "Config", Reason: err.Error()}
}
