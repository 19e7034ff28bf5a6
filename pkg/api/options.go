package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/storefront/pkg/codec"
	"github.com/yourusername/storefront/pkg/errors"
)

// Config holds the gateway client configuration.
// Config 保存网关客户端配置。
type Config struct {
	// BaseURL is the backend base URL without a trailing slash.
	// BaseURL 是不带尾部斜杠的后端基础URL。
	BaseURL string

	// Timeout applies to the default HTTP client only; a custom HTTPClient
	// keeps its own timeout.
	// Timeout 仅适用于默认HTTP客户端；自定义HTTPClient保留自己的超时。
	Timeout time.Duration

	// HTTPClient overrides the transport when non-nil.
	// HTTPClient 非nil时覆盖传输层。
	HTTPClient *http.Client

	// Codec serializes request and response bodies.
	// Codec 序列化请求和响应体。
	Codec codec.Codec

	// TokenSource supplies the bearer token per request.
	// TokenSource 按请求提供bearer令牌。
	TokenSource TokenSource

	// Logger receives debug-level request logging.
	// Logger 接收调试级别的请求日志。
	Logger logrus.FieldLogger

	// EnableMetrics turns on request metrics collection.
	// EnableMetrics 开启请求指标采集。
	EnableMetrics bool
}

// NewDefaultConfig returns a Config with sensible defaults.
//
// NewDefaultConfig 返回具有合理默认值的Config。
func NewDefaultConfig() *Config {
	return &Config{
		Timeout:       30 * time.Second,
		Codec:         codec.DefaultCodec(),
		Logger:        logrus.StandardLogger(),
		EnableMetrics: true,
	}
}

// Validate checks the configuration for construction-time errors.
//
// Validate 检查配置的构造时错误。
func (c *Config) Validate() error {
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.BaseURL == "" {
		return errors.NewValidation("api: base URL is required")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return errors.NewValidation("api: base URL must start with http:// or https://")
	}
	if c.Timeout <= 0 {
		return errors.NewValidation("api: timeout must be positive")
	}
	if c.Codec == nil {
		return errors.NewValidation("api: codec is required")
	}
	if c.Logger == nil {
		return errors.NewValidation("api: logger is required")
	}
	return nil
}

// Option is a function that configures a Config.
// This pattern allows for flexible and readable configuration of the client.
//
// Option 是一个配置Config的函数。
// 这种模式允许灵活且可读地配置客户端。
type Option func(*Config)

// WithTimeout sets the request timeout for the default HTTP client.
//
// WithTimeout 设置默认HTTP客户端的请求超时。
//
// Parameters:
//   - timeout: The request timeout
//
// Returns:
//   - Option: A configuration option
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client, replacing the default transport.
//
// WithHTTPClient 设置自定义HTTP客户端，替换默认传输层。
//
// Parameters:
//   - client: The HTTP client to use
//
// Returns:
//   - Option: A configuration option
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithCodec sets the serialization codec for request and response bodies.
//
// WithCodec 设置请求和响应体的序列化编解码器。
//
// Parameters:
//   - codec: The codec to use
//
// Returns:
//   - Option: A configuration option
func WithCodec(codec codec.Codec) Option {
	return func(c *Config) {
		c.Codec = codec
	}
}

// WithTokenSource sets the bearer token source consulted on every request.
//
// WithTokenSource 设置每个请求查询的bearer令牌来源。
//
// Parameters:
//   - source: The token source
//
// Returns:
//   - Option: A configuration option
func WithTokenSource(source TokenSource) Option {
	return func(c *Config) {
		c.TokenSource = source
	}
}

// WithLogger sets the logger used for debug-level request logging.
//
// WithLogger 设置用于调试级别请求日志的记录器。
//
// Parameters:
//   - logger: The logger to use
//
// Returns:
//   - Option: A configuration option
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithMetricsEnabled enables or disables request metrics collection.
//
// WithMetricsEnabled 启用或禁用请求指标采集。
//
// Parameters:
//   - enabled: Whether to collect metrics
//
// Returns:
//   - Option: A configuration option
func WithMetricsEnabled(enabled bool) Option {
	return func(c *Config) {
		c.EnableMetrics = enabled
	}
}
