// Package configs provides configuration structures and utilities for the
// storefront client. This file contains tests for the configuration
// functionality.
//
// Package configs 提供店面客户端的配置结构和工具。
// 本文件包含配置功能的测试。
package configs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies that DefaultConfig returns a properly initialized Config
// with the expected default values for important settings.
//
// TestDefaultConfig 验证DefaultConfig返回一个正确初始化的Config，
// 包含重要设置的预期默认值。
func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	// Test default values
	// 测试默认值
	if config.API.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected API.BaseURL to be 'http://localhost:8080', got '%s'", config.API.BaseURL)
	}
	if config.API.Timeout != 30*time.Second {
		t.Errorf("Expected API.Timeout to be 30s, got %v", config.API.Timeout)
	}
	if config.Catalog.PageSize != 10 {
		t.Errorf("Expected Catalog.PageSize to be 10, got %d", config.Catalog.PageSize)
	}
	if config.Session.ResetCountdownTicks != 3 {
		t.Errorf("Expected Session.ResetCountdownTicks to be 3, got %d", config.Session.ResetCountdownTicks)
	}
	if config.Log.Level != "info" {
		t.Errorf("Expected Log.Level to be 'info', got '%s'", config.Log.Level)
	}
}

// TestLoadAndSaveConfig tests the ability to save and load configuration
// to and from files in both YAML and JSON formats.
//
// TestLoadAndSaveConfig 测试将配置保存到文件和从文件加载配置的能力，
// 包括YAML和JSON两种格式。
func TestLoadAndSaveConfig(t *testing.T) {
	// Create a temporary directory for test files
	// 创建测试文件的临时目录
	tempDir, err := os.MkdirTemp("", "storefront-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	// Test YAML
	// 测试YAML
	yamlPath := filepath.Join(tempDir, "config.yaml")
	config := DefaultConfig()
	config.API.BaseURL = "https://shop.example.com"
	config.Catalog.PageSize = 25
	config.Log.Level = "debug"

	// Save config
	// 保存配置
	if err := config.SaveToFile(yamlPath); err != nil {
		t.Fatalf("Failed to save YAML config: %v", err)
	}

	// Load config
	// 加载配置
	loadedConfig, err := LoadFromFile(yamlPath)
	if err != nil {
		t.Fatalf("Failed to load YAML config: %v", err)
	}

	// Verify loaded config
	// 验证加载的配置
	if loadedConfig.API.BaseURL != "https://shop.example.com" {
		t.Errorf("Expected API.BaseURL to be 'https://shop.example.com', got '%s'", loadedConfig.API.BaseURL)
	}
	if loadedConfig.Catalog.PageSize != 25 {
		t.Errorf("Expected Catalog.PageSize to be 25, got %d", loadedConfig.Catalog.PageSize)
	}
	if loadedConfig.Log.Level != "debug" {
		t.Errorf("Expected Log.Level to be 'debug', got '%s'", loadedConfig.Log.Level)
	}

	// Test JSON
	// 测试JSON
	jsonPath := filepath.Join(tempDir, "config.json")
	config.API.BaseURL = "http://127.0.0.1:9090"
	config.Catalog.PageSize = 50
	config.Session.ResetCountdownTicks = 5

	// Save config
	// 保存配置
	if err := config.SaveToFile(jsonPath); err != nil {
		t.Fatalf("Failed to save JSON config: %v", err)
	}

	// Load config
	// 加载配置
	loadedConfig, err = LoadFromFile(jsonPath)
	if err != nil {
		t.Fatalf("Failed to load JSON config: %v", err)
	}

	// Verify loaded config
	// 验证加载的配置
	if loadedConfig.API.BaseURL != "http://127.0.0.1:9090" {
		t.Errorf("Expected API.BaseURL to be 'http://127.0.0.1:9090', got '%s'", loadedConfig.API.BaseURL)
	}
	if loadedConfig.Catalog.PageSize != 50 {
		t.Errorf("Expected Catalog.PageSize to be 50, got %d", loadedConfig.Catalog.PageSize)
	}
	if loadedConfig.Session.ResetCountdownTicks != 5 {
		t.Errorf("Expected Session.ResetCountdownTicks to be 5, got %d", loadedConfig.Session.ResetCountdownTicks)
	}
}

// TestFromEnv tests that environment variables with the STOREFRONT_ prefix
// override the default configuration values.
//
// TestFromEnv 测试以STOREFRONT_为前缀的环境变量覆盖默认配置值。
func TestFromEnv(t *testing.T) {
	t.Setenv("STOREFRONT_API_BASE_URL", "https://env.example.com")
	t.Setenv("STOREFRONT_CATALOG_PAGE_SIZE", "20")
	t.Setenv("STOREFRONT_LOG_FORMAT", "json")

	config, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() failed: %v", err)
	}

	if config.API.BaseURL != "https://env.example.com" {
		t.Errorf("Expected API.BaseURL to be 'https://env.example.com', got '%s'", config.API.BaseURL)
	}
	if config.Catalog.PageSize != 20 {
		t.Errorf("Expected Catalog.PageSize to be 20, got %d", config.Catalog.PageSize)
	}
	if config.Log.Format != "json" {
		t.Errorf("Expected Log.Format to be 'json', got '%s'", config.Log.Format)
	}

	// Untouched values keep their defaults
	// 未触及的值保持默认值
	if config.Session.ResetCountdownTicks != 3 {
		t.Errorf("Expected Session.ResetCountdownTicks to be 3, got %d", config.Session.ResetCountdownTicks)
	}
}

// TestValidate tests the Validate method to ensure it correctly identifies
// valid and invalid configurations according to the defined constraints.
//
// TestValidate 测试Validate方法，确保它能根据定义的约束
// 正确识别有效和无效的配置。
func TestValidate(t *testing.T) {
	tests := []struct {
		name        string        // Test case name / 测试用例名称
		modifyFunc  func(*Config) // Function to modify config / 修改配置的函数
		expectError bool          // Whether validation should fail / 验证是否应该失败
	}{
		{
			name:        "Valid default config",
			modifyFunc:  func(c *Config) {},
			expectError: false,
		},
		{
			name: "Empty api.base_url",
			modifyFunc: func(c *Config) {
				c.API.BaseURL = ""
			},
			expectError: true,
		},
		{
			name: "api.base_url without scheme",
			modifyFunc: func(c *Config) {
				c.API.BaseURL = "localhost:8080"
			},
			expectError: true,
		},
		{
			name: "Non-positive api.timeout",
			modifyFunc: func(c *Config) {
				c.API.Timeout = 0
			},
			expectError: true,
		},
		{
			name: "Empty storage.path",
			modifyFunc: func(c *Config) {
				c.Storage.Path = ""
			},
			expectError: true,
		},
		{
			name: "Invalid catalog.page_size",
			modifyFunc: func(c *Config) {
				c.Catalog.PageSize = 0
			},
			expectError: true,
		},
		{
			name: "Invalid session.reset_countdown_ticks",
			modifyFunc: func(c *Config) {
				c.Session.ResetCountdownTicks = 0
			},
			expectError: true,
		},
		{
			name: "Invalid log.level",
			modifyFunc: func(c *Config) {
				c.Log.Level = "invalid"
			},
			expectError: true,
		},
		{
			name: "Invalid log.format",
			modifyFunc: func(c *Config) {
				c.Log.Format = "xml"
			},
			expectError: true,
		},
		{
			name: "Hot reload enabled without watch interval",
			modifyFunc: func(c *Config) {
				c.HotReload.Enable = true
				c.HotReload.WatchInterval = 0
			},
			expectError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := DefaultConfig()
			test.modifyFunc(config)
			err := config.Validate()
			if test.expectError && err == nil {
				t.Error("Expected validation error, but got nil")
			}
			if !test.expectError && err != nil {
				t.Errorf("Expected no validation error, but got: %v", err)
			}
		})
	}
}

// TestLoadFromReaderUnsupportedFormat verifies that an unknown format is
// rejected with a descriptive error.
//
// TestLoadFromReaderUnsupportedFormat 验证未知格式被拒绝并返回描述性错误。
func TestLoadFromReaderUnsupportedFormat(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("whatever"), "toml")
	if err == nil {
		t.Fatal("Expected error for unsupported format, got nil")
	}
}
