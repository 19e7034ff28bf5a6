// Package errors provides standardized error types for the storefront client.
// It defines the failure taxonomy shared by the API gateway and the state
// holders, error wrapping, and helper functions for error classification.
//
// Package errors 提供店面客户端的标准化错误类型。
// 它定义了API网关和状态持有者共享的失败分类、错误包装以及用于错误分类的辅助函数。
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying every failure the client can surface.
// Transport, envelope, and local validation failures normalize to one of these.
//
// 对客户端可能出现的每种失败进行分类的标准错误。
var (
	// ErrTransport is returned when the backend could not be reached or
	// the response could not be read or decoded.
	// 当无法访问后端或无法读取/解码响应时返回ErrTransport。
	ErrTransport = errors.New("storefront: transport failure")

	// ErrEnvelope is returned when the backend envelope reports success=false.
	// 当后端信封报告success=false时返回ErrEnvelope。
	ErrEnvelope = errors.New("storefront: request rejected by backend")

	// ErrValidation is returned when a request fails local validation and
	// is never sent to the backend.
	// 当请求未通过本地验证且从未发送到后端时返回ErrValidation。
	ErrValidation = errors.New("storefront: validation failed")

	// ErrResetToken is returned when a password-reset failure message
	// indicates the reset token itself is expired or invalid.
	// 当密码重置失败消息表明重置令牌本身已过期或无效时返回ErrResetToken。
	ErrResetToken = errors.New("storefront: reset token invalid or expired")
)

// Failure is the single error value all failures are normalized to.
// It carries a human-readable message, the sentinel that classifies it,
// and (for transport failures) the underlying cause.
//
// Failure 是所有失败都被规范化为的单一错误值。
// 它携带人类可读的消息、对其分类的标准错误，以及（对于传输失败）底层原因。
type Failure struct {
	Kind    error  // Classifying sentinel / 分类标准错误
	Message string // Human-readable message / 人类可读的消息
	Cause   error  // Underlying error, may be nil / 底层错误，可能为nil
}

// Error returns the error message.
// It implements the error interface.
//
// Error 返回错误消息。它实现了error接口。
func (f *Failure) Error() string {
	if f.Cause != nil {
		return fmt.Sprintf("%s: %v", f.Message, f.Cause)
	}
	return f.Message
}

// Unwrap exposes both the classifying sentinel and the underlying cause,
// so errors.Is works against either.
//
// Unwrap 同时暴露分类标准错误和底层原因，使errors.Is对两者都有效。
func (f *Failure) Unwrap() []error {
	if f.Cause != nil {
		return []error{f.Kind, f.Cause}
	}
	return []error{f.Kind}
}

// NewTransport creates a transport failure wrapping the underlying cause.
//
// NewTransport 创建一个包装底层原因的传输失败。
//
// Parameters:
//   - message: Description of the failed operation
//   - cause: The underlying error
//
// Returns:
//   - *Failure: A new transport failure
func NewTransport(message string, cause error) *Failure {
	return &Failure{Kind: ErrTransport, Message: message, Cause: cause}
}

// NewEnvelope creates a failure from an envelope that reported success=false.
// The message is the backend's human-readable message, verbatim.
//
// NewEnvelope 从报告success=false的信封创建失败。
// 消息是后端的人类可读消息，逐字保留。
func NewEnvelope(message string) *Failure {
	return &Failure{Kind: ErrEnvelope, Message: message}
}

// NewValidation creates a local validation failure. No request is associated
// with it; callers return it before any network activity.
//
// NewValidation 创建本地验证失败。没有请求与之关联；调用者在任何网络活动之前返回它。
func NewValidation(message string) *Failure {
	return &Failure{Kind: ErrValidation, Message: message}
}

// NewResetToken creates a token-level password-reset failure.
//
// NewResetToken 创建令牌级别的密码重置失败。
func NewResetToken(message string) *Failure {
	return &Failure{Kind: ErrResetToken, Message: message}
}

// IsTransport returns true if the error is or wraps ErrTransport.
//
// IsTransport 如果错误是或包装了ErrTransport，则返回true。
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsEnvelope returns true if the error is or wraps ErrEnvelope.
//
// IsEnvelope 如果错误是或包装了ErrEnvelope，则返回true。
func IsEnvelope(err error) bool {
	return errors.Is(err, ErrEnvelope)
}

// IsValidation returns true if the error is or wraps ErrValidation.
//
// IsValidation 如果错误是或包装了ErrValidation，则返回true。
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsResetToken returns true if the error is or wraps ErrResetToken.
//
// IsResetToken 如果错误是或包装了ErrResetToken，则返回true。
func IsResetToken(err error) bool {
	return errors.Is(err, ErrResetToken)
}

// MessageOf extracts the human-readable message from a failure.
// For non-Failure errors it falls back to Error().
//
// MessageOf 从失败中提取人类可读的消息。
// 对于非Failure错误，它回退到Error()。
func MessageOf(err error) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
