// Package configs provides configuration structures and utilities for the
// storefront client. It offers mechanisms for loading, validating, and saving
// configuration from various sources including JSON and YAML files and
// environment variables. The package defines a configuration structure that
// controls the API gateway, local storage, and the view-facing defaults.
//
// Package configs 提供店面客户端的配置结构和工具。
// 它提供从各种来源（包括JSON和YAML文件及环境变量）加载、验证和保存配置的机制。
// 该包定义了控制API网关、本地存储和面向视图默认值的配置结构。
package configs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for the storefront client.
// It contains all settings needed by the gateway, the state holders, and the
// view layer, organized into logical sections.
//
// Config 表示店面客户端的完整配置。
// 它包含网关、状态持有者和视图层所需的所有设置，按逻辑部分组织。
type Config struct {
	// API configures the gateway to the backend.
	// API 配置通向后端的网关。
	API APIConfig `json:"api" yaml:"api" mapstructure:"api"`

	// Storage configures the localStorage stand-in.
	// Storage 配置localStorage替身。
	Storage StorageConfig `json:"storage" yaml:"storage" mapstructure:"storage"`

	// Catalog configures catalog browsing defaults.
	// Catalog 配置目录浏览默认值。
	Catalog CatalogConfig `json:"catalog" yaml:"catalog" mapstructure:"catalog"`

	// Session configures auth-flow behavior.
	// Session 配置认证流程行为。
	Session SessionConfig `json:"session" yaml:"session" mapstructure:"session"`

	// Log configures logging output.
	// Log 配置日志输出。
	Log LogConfig `json:"log" yaml:"log" mapstructure:"log"`

	// HotReload configures configuration hot reloading.
	// HotReload 配置配置热重载。
	HotReload HotReloadConfig `json:"hot_reload" yaml:"hot_reload" mapstructure:"hot_reload"`
}

// APIConfig contains gateway settings.
// APIConfig 包含网关设置。
type APIConfig struct {
	// BaseURL is the backend base URL.
	// BaseURL 是后端基础URL。
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url" envconfig:"API_BASE_URL"`

	// Timeout is the per-request timeout.
	// Timeout 是每个请求的超时。
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" envconfig:"API_TIMEOUT"`

	// EnableMetrics turns on gateway request metrics.
	// EnableMetrics 开启网关请求指标。
	EnableMetrics bool `json:"enable_metrics" yaml:"enable_metrics" mapstructure:"enable_metrics" envconfig:"API_ENABLE_METRICS"`
}

// StorageConfig contains local storage settings.
// StorageConfig 包含本地存储设置。
type StorageConfig struct {
	// Path is the location of the persisted storage document.
	// Path 是持久化存储文档的位置。
	Path string `json:"path" yaml:"path" mapstructure:"path" envconfig:"STORAGE_PATH"`
}

// CatalogConfig contains catalog browsing defaults.
// CatalogConfig 包含目录浏览默认值。
type CatalogConfig struct {
	// PageSize is the default page size for paginated queries.
	// PageSize 是分页查询的默认页面大小。
	PageSize int `json:"page_size" yaml:"page_size" mapstructure:"page_size" envconfig:"CATALOG_PAGE_SIZE"`

	// CarouselInterval is the auto-advance interval of the product carousel.
	// CarouselInterval 是产品轮播的自动前进间隔。
	CarouselInterval time.Duration `json:"carousel_interval" yaml:"carousel_interval" mapstructure:"carousel_interval" envconfig:"CATALOG_CAROUSEL_INTERVAL"`
}

// SessionConfig contains auth-flow settings.
// SessionConfig 包含认证流程设置。
type SessionConfig struct {
	// ResetCountdownTicks is the number of countdown ticks after a
	// successful password reset before navigating away.
	// ResetCountdownTicks 是密码重置成功后导航离开之前的倒计时滴答数。
	ResetCountdownTicks int `json:"reset_countdown_ticks" yaml:"reset_countdown_ticks" mapstructure:"reset_countdown_ticks" envconfig:"SESSION_RESET_COUNTDOWN_TICKS"`

	// ResetCountdownInterval is the duration of one countdown tick.
	// ResetCountdownInterval 是一个倒计时滴答的持续时间。
	ResetCountdownInterval time.Duration `json:"reset_countdown_interval" yaml:"reset_countdown_interval" mapstructure:"reset_countdown_interval" envconfig:"SESSION_RESET_COUNTDOWN_INTERVAL"`
}

// LogConfig contains logging settings.
// LogConfig 包含日志设置。
type LogConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	// Level 是最低日志级别："debug"、"info"、"warn"、"error"。
	Level string `json:"level" yaml:"level" mapstructure:"level" envconfig:"LOG_LEVEL"`

	// Format is the log output format: "text" or "json".
	// Format 是日志输出格式："text"或"json"。
	Format string `json:"format" yaml:"format" mapstructure:"format" envconfig:"LOG_FORMAT"`
}

// HotReloadConfig controls configuration hot reloading.
// HotReloadConfig 控制配置热重载。
type HotReloadConfig struct {
	// Enable turns on file-watch based reloading.
	// Enable 开启基于文件监视的重载。
	Enable bool `json:"enable" yaml:"enable" mapstructure:"enable" envconfig:"HOT_RELOAD_ENABLE"`

	// WatchInterval is the polling interval of the fallback watcher.
	// WatchInterval 是后备监视器的轮询间隔。
	WatchInterval time.Duration `json:"watch_interval" yaml:"watch_interval" mapstructure:"watch_interval" envconfig:"HOT_RELOAD_WATCH_INTERVAL"`
}

// DefaultConfig returns a new configuration instance with default values.
//
// DefaultConfig 返回具有默认值的新配置实例。
//
// Returns:
//   - *Config: A new configuration instance with default values
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:       "http://localhost:8080",
			Timeout:       30 * time.Second,
			EnableMetrics: true,
		},
		Storage: StorageConfig{
			Path: filepath.Join(".storefront", "storage.json"),
		},
		Catalog: CatalogConfig{
			PageSize:         10,
			CarouselInterval: 5 * time.Second,
		},
		Session: SessionConfig{
			ResetCountdownTicks:    3,
			ResetCountdownInterval: time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		HotReload: HotReloadConfig{
			Enable:        false,
			WatchInterval: 30 * time.Second,
		},
	}
}

// LoadFromFile loads configuration from a file.
// It supports both YAML and JSON formats, automatically
// detecting the format based on the file extension.
//
// LoadFromFile 从文件加载配置。
// 它支持YAML和JSON格式，根据文件扩展名自动检测格式。
//
// Parameters:
//   - filename: Path to the configuration file
//
// Returns:
//   - *Config: The loaded configuration
//   - error: An error if loading fails
func LoadFromFile(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration file: %w", err)
	}
	defer file.Close()

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	return LoadFromReader(file, ext)
}

// LoadFromReader loads configuration from an io.Reader.
// This allows loading configuration from sources other than files,
// such as network streams or in-memory data.
//
// LoadFromReader 从io.Reader加载配置。
// 这允许从文件以外的源加载配置，如网络流或内存中的数据。
//
// Parameters:
//   - r: The reader providing the configuration data
//   - format: The format of the data ("json", "yaml", or "yml")
//
// Returns:
//   - *Config: The loaded configuration
//   - error: An error if loading fails
func LoadFromReader(r io.Reader, format string) (*Config, error) {
	config := DefaultConfig()
	var err error

	switch strings.ToLower(format) {
	case "yaml", "yml":
		err = yaml.NewDecoder(r).Decode(config)
	case "json":
		err = json.NewDecoder(r).Decode(config)
	default:
		return nil, fmt.Errorf("unsupported configuration format: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return config, nil
}

// FromEnv returns the default configuration overridden by environment
// variables with the STOREFRONT_ prefix, e.g. STOREFRONT_API_BASE_URL.
//
// FromEnv 返回被以STOREFRONT_为前缀的环境变量覆盖的默认配置，
// 例如STOREFRONT_API_BASE_URL。
//
// Returns:
//   - *Config: The resulting configuration
//   - error: An error if an environment value cannot be parsed
func FromEnv() (*Config, error) {
	config := DefaultConfig()
	if err := envconfig.Process("storefront", config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	return config, nil
}

// SaveToFile saves configuration to a file.
// It supports both YAML and JSON formats, automatically
// selecting the format based on the file extension.
//
// SaveToFile 将配置保存到文件。
// 它支持YAML和JSON格式，根据文件扩展名自动选择格式。
//
// Parameters:
//   - filename: Path where the configuration will be saved
//
// Returns:
//   - error: An error if saving fails
func (c *Config) SaveToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create configuration file: %w", err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".yaml", ".yml":
		encoder := yaml.NewEncoder(file)
		defer encoder.Close()
		if err := encoder.Encode(c); err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
	case ".json":
		encoder := json.NewEncoder(file)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(c); err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
	default:
		return fmt.Errorf("unsupported configuration file format: %s", ext)
	}

	return nil
}

// Validate checks the configuration for invalid values.
//
// Validate 检查配置中的无效值。
//
// Returns:
//   - error: An error describing the first invalid value found
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must start with http:// or https://")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path must not be empty")
	}
	if c.Catalog.PageSize < 1 {
		return fmt.Errorf("catalog.page_size must be at least 1")
	}
	if c.Catalog.CarouselInterval <= 0 {
		return fmt.Errorf("catalog.carousel_interval must be positive")
	}
	if c.Session.ResetCountdownTicks < 1 {
		return fmt.Errorf("session.reset_countdown_ticks must be at least 1")
	}
	if c.Session.ResetCountdownInterval <= 0 {
		return fmt.Errorf("session.reset_countdown_interval must be positive")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json")
	}
	if c.HotReload.Enable && c.HotReload.WatchInterval <= 0 {
		return fmt.Errorf("hot_reload.watch_interval must be positive when hot reload is enabled")
	}
	return nil
}
