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
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/palantir/pkg/metrics"
	"github.com/palantir/pkg/tlsconfig"
	werror "github.com/palantir/witchcraft-go-error"
)

// ServicesConfig is the top-level configuration struct for all HTTP clients. It supports
// setting default values and overriding those values per-service. Use ClientConfig(serviceName)
// to retrieve a specific service's configuration, and the httpclient.WithConfig() param to
// construct a Client using that configuration.
type ServicesConfig struct {
	// Default values will be used for any field which is not set for a specific client.
	// TOML has no inline tables, so TOML documents set defaults under a [default] table.
	Default ClientConfig `json:",inline" yaml:",inline" toml:"default"`
	// Services is a map of serviceName (e.g. "connect") to service-specific configuration.
	Services map[string]ClientConfig `json:"services,omitempty" yaml:"services,omitempty" toml:"services"`
}

// ClientConfig represents the configuration for a single REST client.
type ClientConfig struct {
	ServiceName string `json:"-" yaml:"-" toml:"-"`
	// URIs is a list of fully specified base URIs for the service. These can optionally include a path
	// which will be prepended to the request path specified when invoking the client.
	URIs []string `json:"uris,omitempty" yaml:"uris,omitempty" toml:"uris"`
	// APIToken is a string which, if provided, will be used as a Bearer token in the Authorization header.
	// This takes precedence over APITokenFile.
	APIToken *string `json:"api-token,omitempty" yaml:"api-token,omitempty" toml:"api-token"`
	// APITokenFile is an on-disk location containing a Bearer token. If APITokenFile is provided and APIToken
	// is not, the content of the file will be used as the APIToken.
	APITokenFile *string `json:"api-token-file,omitempty" yaml:"api-token-file,omitempty" toml:"api-token-file"`
	// BasicAuth is a user/password combination used when neither APIToken nor APITokenFile is set.
	BasicAuth *BasicAuth `json:"basic-auth,omitempty" yaml:"basic-auth,omitempty" toml:"basic-auth"`
	// DisableHTTP2, if true, will prevent the client from modifying the *tls.Config object to support H2 connections.
	DisableHTTP2 *bool `json:"disable-http2,omitempty" yaml:"disable-http2,omitempty" toml:"disable-http2"`
	// ProxyFromEnvironment enables reading HTTP proxy information from environment variables.
	// See 'http.ProxyFromEnvironment' documentation for specific behavior.
	ProxyFromEnvironment *bool `json:"proxy-from-environment,omitempty" yaml:"proxy-from-environment,omitempty" toml:"proxy-from-environment"`
	// ProxyURL uses the provided URL for proxying the request. Schemes http, https, and socks5 are supported.
	ProxyURL *string `json:"proxy-url,omitempty" yaml:"proxy-url,omitempty" toml:"proxy-url"`

	// MaxNumRetries controls the number of times the client will retry retryable failures.
	// If unset, this defaults to twice the number of URIs provided.
	MaxNumRetries *int `json:"max-num-retries,omitempty" yaml:"max-num-retries,omitempty" toml:"max-num-retries"`
	// InitialBackoff controls the duration of the first backoff interval. This delay will double for each
	// subsequent backoff, capped at the MaxBackoff value.
	InitialBackoff *time.Duration `json:"initial-backoff,omitempty" yaml:"initial-backoff,omitempty" toml:"initial-backoff"`
	// MaxBackoff controls the maximum duration the client will sleep before retrying a request.
	MaxBackoff *time.Duration `json:"max-backoff,omitempty" yaml:"max-backoff,omitempty" toml:"max-backoff"`

	// ConnectTimeout is the maximum time for the net.Dialer to connect to the remote host.
	ConnectTimeout *time.Duration `json:"connect-timeout,omitempty" yaml:"connect-timeout,omitempty" toml:"connect-timeout"`
	// ReadTimeout is the maximum timeout for non-mutating requests.
	// The http.Client timeout is max(ReadTimeout, WriteTimeout).
	ReadTimeout *time.Duration `json:"read-timeout,omitempty" yaml:"read-timeout,omitempty" toml:"read-timeout"`
	// WriteTimeout is the maximum timeout for mutating requests.
	// The http.Client timeout is max(ReadTimeout, WriteTimeout).
	WriteTimeout *time.Duration `json:"write-timeout,omitempty" yaml:"write-timeout,omitempty" toml:"write-timeout"`
	// IdleConnTimeout sets the timeout for idle connections.
	IdleConnTimeout *time.Duration `json:"idle-conn-timeout,omitempty" yaml:"idle-conn-timeout,omitempty" toml:"idle-conn-timeout"`
	// TLSHandshakeTimeout sets the timeout for TLS handshakes
	TLSHandshakeTimeout *time.Duration `json:"tls-handshake-timeout,omitempty" yaml:"tls-handshake-timeout,omitempty" toml:"tls-handshake-timeout"`
	// ExpectContinueTimeout sets the timeout to receive the server's first response headers after
	// fully writing the request headers if the request has an "Expect: 100-continue" header.
	ExpectContinueTimeout *time.Duration `json:"expect-continue-timeout,omitempty" yaml:"expect-continue-timeout,omitempty" toml:"expect-continue-timeout"`
	// ResponseHeaderTimeout, if non-zero, specifies the amount of time to wait for a server's response headers after fully
	// writing the request (including its body, if any). This time does not include the time to read the response body.
	ResponseHeaderTimeout *time.Duration `json:"response-header-timeout,omitempty" yaml:"response-header-timeout,omitempty" toml:"response-header-timeout"`
	// KeepAlive sets the time to keep idle connections alive.
	// If unset, the client defaults to 30s. If set to 0, the client will not keep connections alive.
	KeepAlive *time.Duration `json:"keep-alive,omitempty" yaml:"keep-alive,omitempty" toml:"keep-alive"`

	// HTTP2ReadIdleTimeout sets the maximum time to wait before sending periodic health checks (pings) for an HTTP/2 connection.
	// If unset, the client defaults to 30s for HTTP/2 clients.
	HTTP2ReadIdleTimeout *time.Duration `json:"http2-read-idle-timeout,omitempty" yaml:"http2-read-idle-timeout,omitempty" toml:"http2-read-idle-timeout"`
	// HTTP2PingTimeout is the maximum time to wait for a ping response in an HTTP/2 connection.
	// If unset, the client defaults to 15s.
	HTTP2PingTimeout *time.Duration `json:"http2-ping-timeout,omitempty" yaml:"http2-ping-timeout,omitempty" toml:"http2-ping-timeout"`

	// MaxIdleConns sets the number of reusable TCP connections the client will maintain.
	// If unset, the client defaults to 200.
	MaxIdleConns *int `json:"max-idle-conns,omitempty" yaml:"max-idle-conns,omitempty" toml:"max-idle-conns"`
	// MaxIdleConnsPerHost sets the number of reusable TCP connections the client will maintain per destination.
	// If unset, the client defaults to 100.
	MaxIdleConnsPerHost *int `json:"max-idle-conns-per-host,omitempty" yaml:"max-idle-conns-per-host,omitempty" toml:"max-idle-conns-per-host"`

	// Metrics allows disabling metric emission or adding additional static tags to the client metrics.
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty" toml:"metrics"`
	// Security configures the TLS configuration for the client. It accepts file paths which should be
	// absolute paths or relative to the process's current working directory.
	Security SecurityConfig `json:"security,omitempty" yaml:"security,omitempty" toml:"security"`
}

// BasicAuth represents the configuration for HTTP Basic Authorization
type BasicAuth struct {
	User     string `json:"user,omitempty" yaml:"user,omitempty" toml:"user"`
	Password string `json:"password,omitempty" yaml:"password,omitempty" toml:"password"`
}

type MetricsConfig struct {
	// Enabled can be used to disable metrics with an explicit 'false'. Metrics are enabled if this is unset.
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty" toml:"enabled"`
	// Tags allows setting arbitrary additional tags on the metrics emitted by the client.
	Tags map[string]string `json:"tags,omitempty" yaml:"tags,omitempty" toml:"tags"`
}

type SecurityConfig struct {
	CAFiles  []string `json:"ca-files,omitempty" yaml:"ca-files,omitempty" toml:"ca-files"`
	CertFile string   `json:"cert-file,omitempty" yaml:"cert-file,omitempty" toml:"cert-file"`
	KeyFile  string   `json:"key-file,omitempty" yaml:"key-file,omitempty" toml:"key-file"`

	// InsecureSkipVerify sets the InsecureSkipVerify field for the HTTP client's tls config.
	// This option should only be used in clients that have other ways to establish trust with servers.
	InsecureSkipVerify *bool `json:"insecure-skip-verify,omitempty" yaml:"insecure-skip-verify,omitempty" toml:"insecure-skip-verify"`
}

// ClientConfig returns the default configuration merged with service-specific configuration.
// If the serviceName is not in the service map, an empty configuration (plus defaults) is used.
func (c ServicesConfig) ClientConfig(serviceName string) ClientConfig {
	conf := c.Services[serviceName]
	conf.ServiceName = serviceName
	return MergeClientConfig(conf, c.Default)
}

// MergeClientConfig merges two instances of ClientConfig, preferring values from conf over defaults.
// The ServiceName field is not affected, and is expected to be set in the config before building a Client.
func MergeClientConfig(conf, defaults ClientConfig) ClientConfig {
	if len(conf.URIs) == 0 {
		conf.URIs = defaults.URIs
	}
	mergePtr(&conf.APIToken, defaults.APIToken)
	mergePtr(&conf.APITokenFile, defaults.APITokenFile)
	mergePtr(&conf.BasicAuth, defaults.BasicAuth)
	mergePtr(&conf.DisableHTTP2, defaults.DisableHTTP2)
	mergePtr(&conf.ProxyFromEnvironment, defaults.ProxyFromEnvironment)
	mergePtr(&conf.ProxyURL, defaults.ProxyURL)
	mergePtr(&conf.MaxNumRetries, defaults.MaxNumRetries)
	mergePtr(&conf.InitialBackoff, defaults.InitialBackoff)
	mergePtr(&conf.MaxBackoff, defaults.MaxBackoff)
	mergePtr(&conf.ConnectTimeout, defaults.ConnectTimeout)
	mergePtr(&conf.ReadTimeout, defaults.ReadTimeout)
	mergePtr(&conf.WriteTimeout, defaults.WriteTimeout)
	mergePtr(&conf.IdleConnTimeout, defaults.IdleConnTimeout)
	mergePtr(&conf.TLSHandshakeTimeout, defaults.TLSHandshakeTimeout)
	mergePtr(&conf.ExpectContinueTimeout, defaults.ExpectContinueTimeout)
	mergePtr(&conf.ResponseHeaderTimeout, defaults.ResponseHeaderTimeout)
	mergePtr(&conf.KeepAlive, defaults.KeepAlive)
	mergePtr(&conf.HTTP2ReadIdleTimeout, defaults.HTTP2ReadIdleTimeout)
	mergePtr(&conf.HTTP2PingTimeout, defaults.HTTP2PingTimeout)
	mergePtr(&conf.MaxIdleConns, defaults.MaxIdleConns)
	mergePtr(&conf.MaxIdleConnsPerHost, defaults.MaxIdleConnsPerHost)
	mergePtr(&conf.Metrics.Enabled, defaults.Metrics.Enabled)

	if len(defaults.Metrics.Tags) != 0 {
		tags := make(map[string]string, len(defaults.Metrics.Tags)+len(conf.Metrics.Tags))
		for k, v := range defaults.Metrics.Tags {
			tags[k] = v
		}
		for k, v := range conf.Metrics.Tags {
			tags[k] = v
		}
		conf.Metrics.Tags = tags
	}
	if conf.Security.CAFiles == nil {
		conf.Security.CAFiles = defaults.Security.CAFiles
	}
	if conf.Security.CertFile == "" {
		conf.Security.CertFile = defaults.Security.CertFile
	}
	if conf.Security.KeyFile == "" {
		conf.Security.KeyFile = defaults.Security.KeyFile
	}
	mergePtr(&conf.Security.InsecureSkipVerify, defaults.Security.InsecureSkipVerify)
	return conf
}

func mergePtr[T any](dst **T, defaultVal *T) {
	if *dst == nil {
		*dst = defaultVal
	}
}

func derefPtr[T any](ptr *T, defaultVal T) T {
	if ptr == nil {
		return defaultVal
	}
	return *ptr
}

// configToParams translates a ClientConfig into the equivalent ClientParams.
// It validates URIs, the proxy URL and the TLS files, and reads APITokenFile.
func configToParams(c ClientConfig) ([]ClientParam, error) {
	var params []ClientParam

	if c.ServiceName != "" {
		params = append(params, WithServiceName(c.ServiceName))
	}

	var uris []string
	for _, uriStr := range c.URIs {
		if uriStr == "" {
			continue
		}
		if _, err := url.ParseRequestURI(uriStr); err != nil {
			return nil, werror.Wrap(err, "invalid url", werror.UnsafeParam("uri", uriStr))
		}
		uris = append(uris, uriStr)
	}
	if len(uris) > 0 {
		sort.Strings(uris)
		params = append(params, WithBaseURLs(uris))
	}

	switch {
	case c.APIToken != nil:
		params = append(params, WithAuthToken(*c.APIToken))
	case c.APITokenFile != nil:
		file := *c.APITokenFile
		token, err := os.ReadFile(file)
		if err != nil {
			return nil, werror.Wrap(err, "failed to read api-token-file", werror.SafeParam("file", file))
		}
		params = append(params, WithAuthToken(strings.TrimSpace(string(token))))
	case c.BasicAuth != nil && c.BasicAuth.User != "" && c.BasicAuth.Password != "":
		params = append(params, WithBasicAuth(c.BasicAuth.User, c.BasicAuth.Password))
	}

	if c.ProxyURL != nil {
		params = append(params, WithProxyURL(*c.ProxyURL))
	} else if !derefPtr(c.ProxyFromEnvironment, true) {
		params = append(params, WithNoProxy())
	}
	if derefPtr(c.DisableHTTP2, false) {
		params = append(params, WithDisableHTTP2())
	}

	if c.MaxNumRetries != nil {
		params = append(params, WithMaxRetries(*c.MaxNumRetries))
	}
	if c.InitialBackoff != nil {
		params = append(params, WithInitialBackoff(*c.InitialBackoff))
	}
	if c.MaxBackoff != nil {
		params = append(params, WithMaxBackoff(*c.MaxBackoff))
	}

	if c.ReadTimeout != nil || c.WriteTimeout != nil {
		timeout := derefPtr(c.ReadTimeout, 0)
		if w := derefPtr(c.WriteTimeout, 0); w > timeout {
			timeout = w
		}
		params = append(params, WithHTTPTimeout(timeout))
	}
	if c.ConnectTimeout != nil {
		params = append(params, WithDialTimeout(*c.ConnectTimeout))
	}
	if c.KeepAlive != nil {
		params = append(params, WithKeepAlive(*c.KeepAlive))
	}
	if c.IdleConnTimeout != nil {
		params = append(params, WithIdleConnTimeout(*c.IdleConnTimeout))
	}
	if c.TLSHandshakeTimeout != nil {
		params = append(params, WithTLSHandshakeTimeout(*c.TLSHandshakeTimeout))
	}
	if c.ExpectContinueTimeout != nil {
		params = append(params, WithExpectContinueTimeout(*c.ExpectContinueTimeout))
	}
	if c.ResponseHeaderTimeout != nil {
		params = append(params, WithResponseHeaderTimeout(*c.ResponseHeaderTimeout))
	}
	if c.HTTP2ReadIdleTimeout != nil || c.HTTP2PingTimeout != nil {
		params = append(params, WithHTTP2Timeouts(
			derefPtr(c.HTTP2ReadIdleTimeout, defaultHTTP2ReadIdleTimeout),
			derefPtr(c.HTTP2PingTimeout, defaultHTTP2PingTimeout)))
	}
	if c.MaxIdleConns != nil {
		params = append(params, WithMaxIdleConns(*c.MaxIdleConns))
	}
	if c.MaxIdleConnsPerHost != nil {
		params = append(params, WithMaxIdleConnsPerHost(*c.MaxIdleConnsPerHost))
	}

	if !derefPtr(c.Metrics.Enabled, true) {
		params = append(params, WithDisableMetrics())
	}
	if len(c.Metrics.Tags) > 0 {
		tags, err := metrics.NewTags(c.Metrics.Tags)
		if err != nil {
			return nil, werror.Wrap(err, "invalid metrics tags")
		}
		params = append(params, WithMetricsTags(tags...))
	}

	if len(c.Security.CAFiles) > 0 || c.Security.CertFile != "" || c.Security.KeyFile != "" {
		var tlsParams []tlsconfig.ClientParam
		if len(c.Security.CAFiles) > 0 {
			tlsParams = append(tlsParams, tlsconfig.ClientRootCAFiles(c.Security.CAFiles...))
		}
		if c.Security.CertFile != "" || c.Security.KeyFile != "" {
			tlsParams = append(tlsParams, tlsconfig.ClientKeyPairFiles(c.Security.CertFile, c.Security.KeyFile))
		}
		tlsConfig, err := tlsconfig.NewClientConfig(tlsParams...)
		if err != nil {
			return nil, werror.Wrap(err, "failed to build tls config from security configuration")
		}
		params = append(params, WithTLSConfig(tlsConfig))
	}
	if derefPtr(c.Security.InsecureSkipVerify, false) {
		params = append(params, WithTLSInsecureSkipVerify())
	}
	return params, nil
}
