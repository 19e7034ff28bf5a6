// Package mockapi implements an in-memory mock of the storefront backend.
// This file implements the auth endpoints and JWT issuance.
//
// Package mockapi 实现店面后端的内存模拟。
// 本文件实现认证端点和JWT签发。
package mockapi

import (
	stderrors "errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/yourusername/storefront/pkg/model"
)

// tokenTTL is the lifetime of issued bearer tokens.
// tokenTTL 是签发的承载令牌的生命周期。
const tokenTTL = 24 * time.Hour

// failureMessage converts a store error into the message failed envelopes
// carry. Token failures keep the "expired"/"invalid" wording clients
// classify on.
//
// failureMessage 将存储错误转换为失败信封携带的消息。
// 令牌失败保留客户端用于分类的"expired"/"invalid"措辞。
func failureMessage(err error) string {
	switch {
	case stderrors.Is(err, ErrTokenExpired):
		return "Reset token has expired"
	case stderrors.Is(err, ErrTokenInvalid):
		return "Invalid reset token"
	case stderrors.Is(err, ErrEmailTaken):
		return "Email is already registered"
	case stderrors.Is(err, ErrBadCredentials):
		return "Invalid email or password"
	case stderrors.Is(err, ErrInsufficientStock):
		return "Insufficient stock"
	case stderrors.Is(err, ErrEmptyCart):
		return "Cart is empty"
	case stderrors.Is(err, ErrBadTransition):
		return "Illegal status transition"
	case stderrors.Is(err, ErrNotFound):
		return "Resource not found"
	default:
		return err.Error()
	}
}

// authClaims are the JWT claims carried by issued tokens.
// authClaims 是签发令牌携带的JWT声明。
type authClaims struct {
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
	jwt.RegisteredClaims
}

// issueToken signs a bearer token for the given account.
// issueToken 为给定账户签署承载令牌。
func (s *Server) issueToken(user model.User) (string, error) {
	now := time.Now()
	claims := authClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// parseToken verifies a bearer token and returns its claims.
// parseToken 验证承载令牌并返回其声明。
func (s *Server) parseToken(raw string) (*authClaims, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}

// handleRegister creates a new customer account.
// POST /api/auth/register
//
// handleRegister 创建新的客户账户。
func (s *Server) handleRegister(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondFail(c, err.Error())
		return
	}
	user, err := s.store.CreateUser(req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Registration successful", user)
}

// handleLogin authenticates an account and returns a token with a profile
// snapshot.
// POST /api/auth/login
//
// handleLogin 认证账户并返回带有个人资料快照的令牌。
func (s *Server) handleLogin(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, "Invalid request body")
		return
	}
	user, err := s.store.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := s.issueToken(user)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Login successful", model.LoginResponse{
		Token:     token,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	})
}

// handleForgotPassword issues a reset token. The token is logged rather
// than mailed; unknown emails succeed silently.
// POST /api/auth/forgot-password
//
// handleForgotPassword 签发重置令牌。令牌被记录而不是邮寄；未知电子邮件静默成功。
func (s *Server) handleForgotPassword(c *gin.Context) {
	var req model.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, "Invalid request body")
		return
	}
	token, issued := s.store.IssueResetToken(req.Email)
	if issued {
		s.logger.WithField("email", req.Email).WithField("token", token).Info("issued reset token")
	}
	respondOK(c, "If the account exists, a reset link has been sent", nil)
}

// handleResetPassword consumes a reset token and sets a new password.
// POST /api/auth/reset-password
//
// handleResetPassword 消费重置令牌并设置新密码。
func (s *Server) handleResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondFail(c, err.Error())
		return
	}
	if err := s.store.ResetPassword(req.Token, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Password reset successful", nil)
}

// handleProfile returns the authenticated user's profile.
// GET /api/users/profile
//
// handleProfile 返回已认证用户的个人资料。
func (s *Server) handleProfile(c *gin.Context) {
	user, err := s.store.UserByID(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "ok", user)
}

// handleUpdateProfile applies a profile update.
// PUT /api/users/profile
//
// handleUpdateProfile 应用个人资料更新。
func (s *Server) handleUpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondFail(c, err.Error())
		return
	}
	user, err := s.store.UpdateUser(currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Profile updated", user)
}
