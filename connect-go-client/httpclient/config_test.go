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
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/palantir/pkg/refreshable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestServicesConfig(t *testing.T) {
	for _, test := range []struct {
		Name           string
		ServiceName    string
		Config         ServicesConfig
		ExpectedConfig ClientConfig
	}{
		{
			Name:        "defaults",
			ServiceName: "connect",
			Config: ServicesConfig{
				Default: ClientConfig{
					ReadTimeout: &[]time.Duration{time.Minute}[0],
				},
				Services: map[string]ClientConfig{
					"connect": {
						APIToken: &[]string{"so-secret"}[0],
					},
				},
			},
			ExpectedConfig: ClientConfig{
				ServiceName: "connect",
				APIToken:    &[]string{"so-secret"}[0],
				ReadTimeout: &[]time.Duration{time.Minute}[0],
			},
		},
		{
			Name:        "service overrides default",
			ServiceName: "connect",
			Config: ServicesConfig{
				Default: ClientConfig{
					URIs:          []string{"https://default.example.com"},
					MaxNumRetries: &[]int{5}[0],
				},
				Services: map[string]ClientConfig{
					"connect": {
						URIs:          []string{"https://connect.example.com"},
						MaxNumRetries: &[]int{1}[0],
					},
				},
			},
			ExpectedConfig: ClientConfig{
				ServiceName:   "connect",
				URIs:          []string{"https://connect.example.com"},
				MaxNumRetries: &[]int{1}[0],
			},
		},
		{
			Name:        "metric tags merge",
			ServiceName: "connect",
			Config: ServicesConfig{
				Default: ClientConfig{
					Metrics: MetricsConfig{Tags: map[string]string{"env": "prod", "team": "default"}},
				},
				Services: map[string]ClientConfig{
					"connect": {
						Metrics: MetricsConfig{Tags: map[string]string{"team": "contact-center"}},
					},
				},
			},
			ExpectedConfig: ClientConfig{
				ServiceName: "connect",
				Metrics:     MetricsConfig{Tags: map[string]string{"env": "prod", "team": "contact-center"}},
			},
		},
		{
			Name:        "unknown service gets defaults",
			ServiceName: "other",
			Config: ServicesConfig{
				Default: ClientConfig{
					URIs: []string{"https://default.example.com"},
				},
			},
			ExpectedConfig: ClientConfig{
				ServiceName: "other",
				URIs:        []string{"https://default.example.com"},
			},
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			actual := test.Config.ClientConfig(test.ServiceName)
			require.Equal(t, test.ExpectedConfig, actual)
		})
	}
}

func TestServicesConfig_Unmarshal(t *testing.T) {
	expected := ServicesConfig{
		Default: ClientConfig{
			ReadTimeout: &[]time.Duration{30 * time.Second}[0],
		},
		Services: map[string]ClientConfig{
			"connect": {
				URIs:           []string{"https://connect.us-east-1.amazonaws.com"},
				MaxNumRetries:  &[]int{3}[0],
				InitialBackoff: &[]time.Duration{100 * time.Millisecond}[0],
				Metrics:        MetricsConfig{Enabled: &[]bool{false}[0]},
			},
		},
	}
	t.Run("yaml", func(t *testing.T) {
		var actual ServicesConfig
		require.NoError(t, yaml.Unmarshal([]byte(`
read-timeout: 30s
services:
  connect:
    uris:
      - https://connect.us-east-1.amazonaws.com
    max-num-retries: 3
    initial-backoff: 100ms
    metrics:
      enabled: false
`), &actual))
		assert.Equal(t, expected, actual)
	})
	t.Run("toml", func(t *testing.T) {
		var actual ServicesConfig
		_, err := toml.Decode(`
[default]
read-timeout = "30s"

[services.connect]
uris = ["https://connect.us-east-1.amazonaws.com"]
max-num-retries = 3
initial-backoff = "100ms"

[services.connect.metrics]
enabled = false
`, &actual)
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})
}

func TestWithConfigParam(t *testing.T) {
	conf := ServicesConfig{
		Services: map[string]ClientConfig{
			"connect": {
				ReadTimeout:  &[]time.Duration{2 * time.Second}[0],
				WriteTimeout: &[]time.Duration{3 * time.Second}[0],
				URIs:         []string{"https://localhost"},
			},
		},
	}
	client, err := NewClient(WithConfig(conf.ClientConfig("connect")))
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, client.(*clientImpl).client.Timeout)
}

func TestConfigToParams_Errors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		config  ClientConfig
		wantErr string
	}{
		{
			name:    "invalid uri",
			config:  ClientConfig{URIs: []string{"not a uri"}},
			wantErr: "invalid url",
		},
		{
			name:    "missing token file",
			config:  ClientConfig{APITokenFile: &[]string{filepath.Join(t.TempDir(), "missing")}[0]},
			wantErr: "failed to read api-token-file",
		},
		{
			name:    "missing ca file",
			config:  ClientConfig{Security: SecurityConfig{CAFiles: []string{filepath.Join(t.TempDir(), "ca.pem")}}},
			wantErr: "failed to build tls config from security configuration",
		},
		{
			name:    "invalid proxy scheme",
			config:  ClientConfig{URIs: []string{"https://localhost"}, ProxyURL: &[]string{"ftp://proxy"}[0]},
			wantErr: "invalid proxy url",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewClient(WithConfig(tc.config))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestConfigToParams_TokenFile(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(tokenFile, []byte("file-token\n"), 0600))

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(WithConfig(ClientConfig{
		URIs:         []string{server.URL},
		APITokenFile: &tokenFile,
	}))
	require.NoError(t, err)
	_, err = client.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer file-token", gotAuth)
}

func TestNewClientFromRefreshableConfig(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&calls, 1)
		rw.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	conf := ClientConfig{
		ServiceName:    "connect",
		URIs:           []string{server.URL},
		MaxNumRetries:  &[]int{0}[0],
		InitialBackoff: &[]time.Duration{time.Millisecond}[0],
		MaxBackoff:     &[]time.Duration{time.Millisecond}[0],
	}
	r := refreshable.NewDefaultRefreshable(conf)
	client, err := NewClientFromRefreshableConfig(context.Background(), NewRefreshingClientConfig(r))
	require.NoError(t, err)

	_, err = client.Get(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.SwapInt32(&calls, 0))

	conf.MaxNumRetries = &[]int{2}[0]
	require.NoError(t, r.Update(conf))
	_, err = client.Get(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.SwapInt32(&calls, 0))

	conf.MaxNumRetries = nil
	require.NoError(t, r.Update(conf))
	_, err = client.Get(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestNewClientFromRefreshableConfig_Invalid(t *testing.T) {
	r := refreshable.NewDefaultRefreshable(ClientConfig{URIs: []string{"::invalid"}})
	_, err := NewClientFromRefreshableConfig(context.Background(), NewRefreshingClientConfig(r))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid client configuration"), err.Error())
}

func TestRefreshableClientConfigFromServiceConfig(t *testing.T) {
	r := refreshable.NewDefaultRefreshable(ServicesConfig{
		Services: map[string]ClientConfig{"connect": {URIs: []string{"https://a.example.com"}}},
	})
	clientConf := RefreshableClientConfigFromServiceConfig(NewRefreshingServicesConfig(r), "connect")
	assert.Equal(t, []string{"https://a.example.com"}, clientConf.CurrentClientConfig().URIs)

	require.NoError(t, r.Update(ServicesConfig{
		Services: map[string]ClientConfig{"connect": {URIs: []string{"https://b.example.com"}}},
	}))
	assert.Equal(t, []string{"https://b.example.com"}, clientConf.CurrentClientConfig().URIs)
	assert.Equal(t, "connect", clientConf.CurrentClientConfig().ServiceName)
}
