package model

import (
	"strings"
	"time"
)

// Role distinguishes customers from admins.
// Role 区分客户和管理员。
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// User is the profile of an authenticated user.
// User 是已认证用户的个人资料。
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest is the body for POST /api/auth/login.
// LoginRequest 是POST /api/auth/login的请求体。
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the request before it is sent to the backend.
// Validate 在请求发送到后端之前对其进行检查。
func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errValidation("email is required")
	}
	if r.Password == "" {
		return errValidation("password is required")
	}
	return nil
}

// LoginResponse carries the token and a profile snapshot, persisted by the
// session holder on successful login.
//
// LoginResponse 携带令牌和个人资料快照，登录成功后由会话持有者持久化。
type LoginResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
}

// RegisterRequest is the body for POST /api/auth/register.
// RegisterRequest 是POST /api/auth/register的请求体。
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Validate checks the request before it is sent to the backend.
// Validate 在请求发送到后端之前对其进行检查。
func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errValidation("email is required")
	}
	if len(r.Password) < 6 {
		return errValidation("password must be at least 6 characters")
	}
	if strings.TrimSpace(r.FirstName) == "" {
		return errValidation("first name is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return errValidation("last name is required")
	}
	return nil
}

// ForgotPasswordRequest is the body for POST /api/auth/forgot-password.
// ForgotPasswordRequest 是POST /api/auth/forgot-password的请求体。
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// Validate checks the request before it is sent to the backend.
// Validate 在请求发送到后端之前对其进行检查。
func (r ForgotPasswordRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errValidation("email is required")
	}
	return nil
}

// ResetPasswordRequest is the body for POST /api/auth/reset-password.
// ResetPasswordRequest 是POST /api/auth/reset-password的请求体。
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// Validate checks the request before it is sent to the backend.
// Validate 在请求发送到后端之前对其进行检查。
func (r ResetPasswordRequest) Validate() error {
	if r.Token == "" {
		return errValidation("reset token is required")
	}
	if len(r.NewPassword) < 6 {
		return errValidation("password must be at least 6 characters")
	}
	return nil
}

// UpdateProfileRequest is the body for PUT /api/users/profile.
// Nil fields are left unchanged by the backend.
//
// UpdateProfileRequest 是PUT /api/users/profile的请求体。
// 为nil的字段后端保持不变。
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// Validate checks the request before it is sent to the backend.
// Validate 在请求发送到后端之前对其进行检查。
func (r UpdateProfileRequest) Validate() error {
	if r.FirstName != nil && strings.TrimSpace(*r.FirstName) == "" {
		return errValidation("first name must not be blank")
	}
	if r.LastName != nil && strings.TrimSpace(*r.LastName) == "" {
		return errValidation("last name must not be blank")
	}
	return nil
}
