// Package api implements the gateway to the storefront REST backend.
// It wraps the outbound HTTP verbs against a single base URL, attaches the
// bearer token when one is available, and unwraps the uniform
// {success, message, data} envelope shared by every endpoint.
//
// Package api 实现通向店面REST后端的网关。
// 它针对单一基础URL包装出站HTTP动词，在可用时附加bearer令牌，
// 并解开每个端点共享的统一{success, message, data}信封。
package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/yourusername/storefront/internal/metrics"
	"github.com/yourusername/storefront/pkg/errors"
	"github.com/yourusername/storefront/pkg/model"
)

// Validatable is implemented by the tagged request structs in pkg/model.
// Bodies are validated at the gateway boundary; an invalid body is rejected
// locally and no request is issued.
//
// Validatable 由pkg/model中带标签的请求结构实现。
// 请求体在网关边界进行验证；无效的请求体在本地被拒绝，不会发出请求。
type Validatable interface {
	Validate() error
}

// TokenSource supplies the current bearer token, or "" when the session is
// anonymous. It is consulted on every request.
//
// TokenSource 提供当前bearer令牌，会话匿名时为""。每个请求都会查询它。
type TokenSource func() string

// Client is the API gateway. All methods are safe for concurrent use; the
// client performs no request sequencing of its own, so concurrent callers
// observe responses in arrival order.
//
// Client 是API网关。所有方法都可以安全地并发使用；
// 客户端本身不进行请求排序，因此并发调用者按到达顺序观察响应。
type Client struct {
	config  *Config
	http    *http.Client
	metrics *metrics.Metrics
}

// New creates a gateway client for the given base URL.
//
// New 为给定的基础URL创建网关客户端。
//
// Parameters:
//   - baseURL: The backend base URL, e.g. "http://localhost:8080"
//   - options: A list of configuration options
//
// Returns:
//   - *Client: The created client
//   - error: An error if the configuration is invalid
func New(baseURL string, options ...Option) (*Client, error) {
	config := NewDefaultConfig()
	config.BaseURL = baseURL

	// Apply all options
	// 应用所有选项
	for _, option := range options {
		option(config)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	level := metrics.Disabled
	if config.EnableMetrics {
		level = metrics.Basic
	}

	return &Client{
		config:  config,
		http:    httpClient,
		metrics: metrics.New(level),
	}, nil
}

// Get issues a GET request and decodes the envelope data into out.
// Pass nil for out when the endpoint returns no data.
//
// Get 发出GET请求并将信封数据解码到out中。
// 当端点不返回数据时，out传nil。
//
// Parameters:
//   - ctx: Context for the request, can be used for cancellation
//   - path: Path relative to the base URL, e.g. "/api/products"
//   - out: Pointer to the decode target, or nil
//
// Returns:
//   - error: A transport, envelope, or validation failure
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with the given body and decodes the envelope
// data into out.
//
// Post 发出带有给定请求体的POST请求，并将信封数据解码到out中。
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with the given body and decodes the envelope
// data into out.
//
// Put 发出带有给定请求体的PUT请求，并将信封数据解码到out中。
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request and decodes the envelope data into out.
//
// Delete 发出DELETE请求并将信封数据解码到out中。
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// Stats returns a snapshot of the request metrics.
//
// Stats 返回请求指标的快照。
//
// Returns:
//   - metrics.Stats: The snapshot
func (c *Client) Stats() metrics.Stats {
	return c.metrics.Snapshot()
}

// BaseURL returns the configured backend base URL.
// BaseURL 返回配置的后端基础URL。
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// do builds, sends, and unwraps one request. Any success=false envelope is a
// failure regardless of the transport status code.
//
// do 构建、发送并解开一个请求。任何success=false的信封都是失败，
// 与传输状态码无关。
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	// Validate tagged request bodies at the boundary
	// 在边界验证带标签的请求体
	if v, ok := body.(Validatable); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := c.config.Codec.Marshal(body)
		if err != nil {
			return errors.NewTransport("encode request body", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return errors.NewTransport("build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.config.TokenSource != nil {
		if token := c.config.TokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.Record(metrics.OutcomeTransport, time.Since(start))
		return errors.NewTransport(method+" "+path+" failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.Record(metrics.OutcomeTransport, time.Since(start))
		return errors.NewTransport("read response for "+method+" "+path, err)
	}

	var envelope model.Envelope
	if err := c.config.Codec.Unmarshal(raw, &envelope); err != nil {
		c.metrics.Record(metrics.OutcomeTransport, time.Since(start))
		return errors.NewTransport("decode envelope for "+method+" "+path, err)
	}

	if !envelope.Success {
		c.metrics.Record(metrics.OutcomeEnvelope, time.Since(start))
		c.config.Logger.WithField("path", path).WithField("message", envelope.Message).
			Debug("backend rejected request")
		return errors.NewEnvelope(envelope.Message)
	}

	if out != nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		if err := c.config.Codec.Unmarshal(envelope.Data, out); err != nil {
			c.metrics.Record(metrics.OutcomeTransport, time.Since(start))
			return errors.NewTransport("decode data for "+method+" "+path, err)
		}
	}

	c.metrics.Record(metrics.OutcomeSuccess, time.Since(start))
	return nil
}
