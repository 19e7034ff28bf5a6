// Package codec provides interfaces and implementations for data serialization
// and deserialization used by the API gateway for request/response bodies and
// by the local store for persisted browser-style state.
//
// Package codec 提供数据序列化和反序列化的接口及实现，
// 供API网关的请求/响应体和本地存储的持久化状态使用。
package codec

import (
	"encoding/json"
	"fmt"
)

// Codec defines the interface for encoding and decoding values.
// Implementations of this interface can be used to customize how request
// bodies and persisted entries are serialized.
//
// Codec 定义了编码和解码值的接口。
// 此接口的实现可用于自定义请求体和持久化条目的序列化方式。
type Codec interface {
	// Marshal serializes a value into bytes.
	//
	// Marshal 将值序列化为字节。
	//
	// Parameters:
	//   - value: The value to serialize
	//
	// Returns:
	//   - []byte: The serialized bytes
	//   - error: An error if serialization fails
	Marshal(value interface{}) ([]byte, error)

	// Unmarshal deserializes bytes into a value.
	// The value parameter should be a pointer to the target type.
	//
	// Unmarshal 将字节反序列化为值。
	// value参数应该是目标类型的指针。
	//
	// Parameters:
	//   - data: The bytes to deserialize
	//   - value: A pointer to the target value
	//
	// Returns:
	//   - error: An error if deserialization fails
	Unmarshal(data []byte, value interface{}) error

	// Name returns the name of this codec.
	// This is useful for identification and debugging.
	//
	// Name 返回此编解码器的名称。这对于标识和调试很有用。
	//
	// Returns:
	//   - string: The codec name
	Name() string
}

// JSONCodec implements Codec using JSON serialization.
// It is the wire format of the backend and the default everywhere.
//
// JSONCodec 使用JSON序列化实现Codec。
// 它是后端的传输格式，也是各处的默认值。
type JSONCodec struct {
	// Pretty determines whether to use indented JSON encoding.
	// When true, the JSON output will be formatted with indentation.
	//
	// Pretty 决定是否使用缩进的JSON编码。
	// 当为true时，JSON输出将使用缩进格式化。
	Pretty bool
}

// Marshal serializes a value into JSON bytes.
// If Pretty is true, the output will be indented.
//
// Marshal 将值序列化为JSON字节。
// 如果Pretty为true，输出将带有缩进。
func (c *JSONCodec) Marshal(value interface{}) ([]byte, error) {
	if c.Pretty {
		return json.MarshalIndent(value, "", "  ")
	}
	return json.Marshal(value)
}

// Unmarshal deserializes JSON bytes into a value.
// The value parameter must be a pointer to the target type.
//
// Unmarshal 将JSON字节反序列化为值。
// value参数必须是目标类型的指针。
func (c *JSONCodec) Unmarshal(data []byte, value interface{}) error {
	return json.Unmarshal(data, value)
}

// Name returns the name of this codec.
//
// Name 返回此编解码器的名称。
//
// Returns:
//   - string: Always returns "json"
func (c *JSONCodec) Name() string {
	return "json"
}

// NewJSONCodec creates a new JSONCodec.
//
// NewJSONCodec 创建一个新的JSONCodec。
//
// Parameters:
//   - pretty: Whether to use indented JSON encoding
//
// Returns:
//   - *JSONCodec: A new JSON codec instance
func NewJSONCodec(pretty bool) *JSONCodec {
	return &JSONCodec{Pretty: pretty}
}

// DefaultCodec returns the default codec (JSON).
// This is used when no specific codec is specified.
//
// DefaultCodec 返回默认编解码器（JSON）。当未指定特定编解码器时使用。
func DefaultCodec() Codec {
	return NewJSONCodec(false)
}

// GetCodec returns a codec by name.
// Supported names: "json", "json-pretty".
//
// GetCodec 通过名称返回编解码器。支持的名称："json"、"json-pretty"。
//
// Parameters:
//   - name: The codec name
//
// Returns:
//   - Codec: The requested codec
//   - error: An error if the codec name is unknown
func GetCodec(name string) (Codec, error) {
	switch name {
	case "json":
		return NewJSONCodec(false), nil
	case "json-pretty":
		return NewJSONCodec(true), nil
	default:
		return nil, fmt.Errorf("unknown codec: %s", name)
	}
}
