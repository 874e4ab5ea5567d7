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
	"context"
	stderrors "errors"
	"net/http"
	"reflect"
	"strings"
	"sync/atomic"
	"time"

	"github.com/palantir/connect-go-sdk/connect-go-client/clienterrors"
	"github.com/palantir/connect-go-sdk/connect-go-client/httpclient"
	"github.com/palantir/connect-go-sdk/connect/internal/metacache"
	"github.com/palantir/connect-go-sdk/connect/region"
	"github.com/palantir/pkg/metrics"
	"github.com/palantir/pkg/refreshable"
	"github.com/palantir/pkg/uuid"
	werror "github.com/palantir/witchcraft-go-error"
)

// RegionHeader carries the configured region on every request.
const RegionHeader = "X-Connect-Region"

// Client is the complete service contract: every family interface plus response metadata
// retrieval and shutdown. Operations are safe for concurrent use.
type Client interface {
	InstanceAPI
	FlowAPI
	QueueAPI
	RoutingProfileAPI
	QuickConnectAPI
	UserAPI
	UserHierarchyAPI
	SecurityProfileAPI
	PhoneNumberAPI
	TrafficDistributionGroupAPI
	PromptAPI
	VocabularyAPI
	EvaluationFormAPI
	ContactAPI
	TagAPI
	IntegrationAPI
	HoursOfOperationAPI
	AgentStatusAPI
	RuleAPI
	TaskTemplateAPI
	MetricsAPI

	// ResponseMetadata returns the metadata of the most recent call issued with request, which must
	// be the pointer passed to the operation. It returns false for requests never issued and for
	// entries older than the configured retention.
	ResponseMetadata(request any) (ResponseMetadata, bool)

	// Close releases idle connections. Operations invoked after Close fail with ReasonClientClosed
	// without network I/O; calls already in flight complete. Close is idempotent.
	Close() error
}

type client struct {
	http     httpclient.Client
	region   region.Region
	metadata *metacache.Cache[any, ResponseMetadata]
	closed   atomic.Bool
}

var _ Client = (*client)(nil)

// New validates cfg and returns a client for it. Invalid configuration is reported as a
// *ConfigError before any network I/O. params are applied after the configuration and may
// override it.
func New(cfg Config, params ...httpclient.ClientParam) (Client, error) {
	resolved, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	base := append(defaultParams(), httpclient.WithConfig(resolved.clientConfig(cfg.HTTP)))
	httpClient, err := httpclient.NewClient(append(base, params...)...)
	if err != nil {
		return nil, &ConfigError{Field: "HTTP", Reason: "invalid transport configuration", Cause: err}
	}
	return newClient(httpClient, resolved), nil
}

// NewFromRefreshable returns a client whose retry count, backoff and metrics enablement follow
// updates to cfg, whose current value must be a Config. The endpoint, region, token and
// transport are fixed by the value current at construction.
func NewFromRefreshable(ctx context.Context, cfg refreshable.Refreshable, params ...httpclient.ClientParam) (Client, error) {
	initial, ok := cfg.Current().(Config)
	if !ok {
		return nil, &ConfigError{Field: "Config", Reason: "refreshable does not hold a connect.Config"}
	}
	resolved, err := initial.resolve()
	if err != nil {
		return nil, err
	}
	live := httpclient.NewRefreshingClientConfig(cfg.Map(func(v interface{}) interface{} {
		c, ok := v.(Config)
		if !ok {
			c = initial
		}
		return resolved.clientConfig(c.HTTP)
	}))
	httpClient, err := httpclient.NewClientFromRefreshableConfig(ctx, live, append(defaultParams(), params...)...)
	if err != nil {
		return nil, &ConfigError{Field: "HTTP", Reason: "invalid transport configuration", Cause: err}
	}
	return newClient(httpClient, resolved), nil
}

// NewFromServicesConfig returns a client whose transport settings are the "connect" entry of
// services merged over cfg.HTTP. Retry count, backoff and metrics enablement follow updates to
// services; the endpoint, region and token come from cfg.
func NewFromServicesConfig(ctx context.Context, cfg Config, services httpclient.RefreshableServicesConfig, params ...httpclient.ClientParam) (Client, error) {
	resolved, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	serviceConfig := httpclient.RefreshableClientConfigFromServiceConfig(services, ServiceName)
	live := httpclient.NewRefreshingClientConfig(serviceConfig.MapClientConfig(func(c httpclient.ClientConfig) interface{} {
		return resolved.clientConfig(httpclient.MergeClientConfig(c, cfg.HTTP))
	}))
	httpClient, err := httpclient.NewClientFromRefreshableConfig(ctx, live, append(defaultParams(), params...)...)
	if err != nil {
		return nil, &ConfigError{Field: "HTTP", Reason: "invalid transport configuration", Cause: err}
	}
	return newClient(httpClient, resolved), nil
}

func newClient(httpClient httpclient.Client, resolved resolvedConfig) *client {
	return &client{
		http:     httpClient,
		region:   resolved.region,
		metadata: metacache.New[any, ResponseMetadata](resolved.retention, resolved.capacity),
	}
}

func defaultParams() []httpclient.ClientParam {
	return []httpclient.ClientParam{
		httpclient.WithUserAgentBuilder(nil),
		httpclient.WithMetricsTagProviders(httpclient.TagsProviderFunc(resourceFamilyTags)),
	}
}

const metricTagResourceFamily = "resource-family"

// resourceFamilyTags tags client metrics with the family of the operation being invoked.
func resourceFamilyTags(req *http.Request, _ *http.Response) metrics.Tags {
	op, ok := LookupOperation(httpclient.RPCMethodNameFromContext(req.Context()))
	if !ok {
		return nil
	}
	return metrics.Tags{metrics.MustNewTag(metricTagResourceFamily, string(op.Family))}
}

func (c *client) Close() error {
	if c.closed.CompareAndSwap(false, true) {
		return c.http.Close()
	}
	return nil
}

func (c *client) ResponseMetadata(request any) (ResponseMetadata, bool) {
	key, ok := metadataKey(request)
	if !ok {
		return ResponseMetadata{}, false
	}
	return c.metadata.Get(key)
}

// idempotentRequest is implemented by requests that carry a ClientToken.
type idempotentRequest interface {
	clientToken() string
	// withClientToken returns a copy of the request carrying token.
	withClientToken(token string) any
}

// invoke issues one operation. response is nil for void operations.
func (c *client) invoke(ctx context.Context, op *Operation, request, response any) error {
	if c.closed.Load() {
		return &ClientError{Operation: op.Name, Reason: ReasonClientClosed}
	}
	if isNilRequest(request) {
		return &ClientError{
			Operation: op.Name,
			Reason:    ReasonInvalidRequest,
			Cause:     werror.ErrorWithContextParams(ctx, "request is nil", werror.SafeParam("operation", op.Name)),
		}
	}

	body := request
	if tokenRequest, ok := request.(idempotentRequest); ok && op.IdempotencyToken && tokenRequest.clientToken() == "" {
		body = tokenRequest.withClientToken(uuid.NewUUID().String())
	}

	recorder := &callRecorder{}
	params := []httpclient.RequestParam{
		httpclient.WithRPCMethodName(op.Name),
		httpclient.WithPath(op.Path()),
		httpclient.WithJSONRequest(body),
		httpclient.WithRequestMiddleware(recorder),
	}
	if response != nil {
		params = append(params, httpclient.WithJSONResponse(response))
	}
	if c.region != "" {
		params = append(params, httpclient.WithHeader(RegionHeader, string(c.region)))
	}

	started := time.Now()
	_, err := c.http.Post(ctx, params...)
	if recorder.statusCode != 0 {
		key, _ := metadataKey(request)
		c.metadata.Put(key, recorder.metadata(op, started))
	}
	if err != nil {
		return newOperationError(ctx, op, recorder, err)
	}
	return nil
}

func isNilRequest(request any) bool {
	if request == nil {
		return true
	}
	v := reflect.ValueOf(request)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// newOperationError converts a runtime failure into a *ClientError or a *ServiceError whose kind
// is declared by op or is KindService.
func newOperationError(ctx context.Context, op *Operation, recorder *callRecorder, err error) error {
	if httpclient.IsCodecError(err) {
		return &ClientError{Operation: op.Name, Reason: ReasonSerialization, Cause: err}
	}
	statusCode, ok := httpclient.StatusCodeFromError(err)
	if !ok {
		if ctx.Err() != nil || stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
			return &ClientError{Operation: op.Name, Reason: ReasonCanceled, Cause: err}
		}
		return &ClientError{Operation: op.Name, Reason: ReasonTransport, Cause: clienterrors.WrapClientError(recorder.lastRequest, err)}
	}

	serviceErr := &ServiceError{
		Operation:  op.Name,
		StatusCode: statusCode,
		RequestID:  recorder.requestID,
		Cause:      err,
	}
	if remote, ok := httpclient.ServiceErrorFromError(err); ok {
		serviceErr.ErrorName = remote.Name()
		serviceErr.Message = messageParam(remote.UnsafeParams(), remote.SafeParams())
		if namespace, name, found := strings.Cut(remote.Name(), ":"); found && namespace == ErrorNamespace {
			serviceErr.Kind = KindService
			if kind := ErrorKind(name); op.Declares(kind) {
				serviceErr.Kind = kind
			}
			return serviceErr
		}
	}
	serviceErr.Kind = kindForStatus(op, statusCode)
	return serviceErr
}

// kindForStatus names failures that carry no service error name, such as exhausted QoS responses.
func kindForStatus(op *Operation, statusCode int) ErrorKind {
	var kind ErrorKind
	switch statusCode {
	case http.StatusTooManyRequests:
		kind = KindThrottling
	case http.StatusServiceUnavailable, http.StatusPermanentRedirect:
		kind = KindInternalService
	}
	if kind != "" && op.Declares(kind) {
		return kind
	}
	return KindService
}

func messageParam(storers ...map[string]interface{}) string {
	for _, params := range storers {
		if msg, ok := params["message"].(string); ok {
			return msg
		}
	}
	return ""
}
