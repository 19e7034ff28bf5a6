// Package session implements authentication state. It persists the bearer
// token and a profile snapshot in local storage, exposes login state as a
// signal, and wraps the auth and profile endpoints. Logout is purely local:
// it drops the persisted credentials without a network round trip.
//
// Package session 实现认证状态。它将承载令牌和个人资料快照持久化到本地存储，
// 将登录状态作为信号暴露，并包装认证和个人资料端点。
// 登出是纯本地的：它丢弃持久化的凭据而不进行网络往返。
package session

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/storefront/internal/localstore"
	"github.com/yourusername/storefront/internal/reactive"
	"github.com/yourusername/storefront/pkg/api"
	"github.com/yourusername/storefront/pkg/errors"
	"github.com/yourusername/storefront/pkg/model"
)

// Local storage keys for the persisted credentials.
// 持久化凭据的本地存储键。
const (
	tokenKey   = "token"
	profileKey = "user_profile"
)

// Session holds the authentication state of the storefront client.
// Construction restores any persisted token, so a restarted client resumes
// its previous session without logging in again.
//
// Session 持有店面客户端的认证状态。
// 构造时恢复任何持久化的令牌，因此重启的客户端无需再次登录即可恢复其先前的会话。
type Session struct {
	client   *api.Client
	store    *localstore.Store
	loggedIn *reactive.Signal[bool]
	logger   logrus.FieldLogger
}

// New creates a Session over the given client and store.
// The initial login state reflects whether a token is already persisted.
//
// New 在给定的客户端和存储上创建Session。
// 初始登录状态反映是否已持久化令牌。
func New(client *api.Client, store *localstore.Store, logger logrus.FieldLogger) *Session {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	_, hasToken := store.Get(tokenKey)
	return &Session{
		client:   client,
		store:    store,
		loggedIn: reactive.NewSignal(hasToken),
		logger:   logger,
	}
}

// LoggedIn returns the signal carrying the current login state.
//
// LoggedIn 返回携带当前登录状态的信号。
func (s *Session) LoggedIn() *reactive.Signal[bool] {
	return s.loggedIn
}

// Token returns the persisted bearer token, or the empty string when logged
// out. Suitable as the client's token source.
//
// Token 返回持久化的承载令牌，登出时返回空字符串。适合作为客户端的令牌源。
func (s *Session) Token() string {
	token, _ := s.store.Get(tokenKey)
	return token
}

// CurrentProfile returns the persisted profile snapshot from the last login.
// The second return value is false when no snapshot is stored.
//
// CurrentProfile 返回上次登录持久化的个人资料快照。
// 未存储快照时第二个返回值为false。
func (s *Session) CurrentProfile() (model.User, bool) {
	var user model.User
	found, err := s.store.GetJSON(profileKey, &user)
	if err != nil {
		s.logger.WithError(err).Warn("failed to load profile snapshot")
		return model.User{}, false
	}
	return user, found
}

// Login authenticates against the backend. On success it persists the token
// and a profile snapshot and flips the login signal.
//
// Login 针对后端进行认证。成功时持久化令牌和个人资料快照并翻转登录信号。
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - email: Account email
//   - password: Account password
//
// Returns:
//   - *model.LoginResponse: The token and profile returned by the backend
//   - error: An error if validation or the request fails
func (s *Session) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	req := &model.LoginRequest{Email: email, Password: password}
	var out model.LoginResponse
	if err := s.client.Post(ctx, "/api/auth/login", req, &out); err != nil {
		return nil, err
	}

	if err := s.store.Set(tokenKey, out.Token); err != nil {
		s.logger.WithError(err).Warn("failed to persist token")
	}
	snapshot := model.User{
		Email:     out.Email,
		FirstName: out.FirstName,
		LastName:  out.LastName,
		Role:      out.Role,
	}
	if err := s.store.SetJSON(profileKey, snapshot); err != nil {
		s.logger.WithError(err).Warn("failed to persist profile snapshot")
	}

	s.loggedIn.Set(true)
	return &out, nil
}

// Register creates a new account. It does not log the new account in; the
// caller follows up with Login.
//
// Register 创建新账户。它不会登录新账户；调用者随后调用Login。
func (s *Session) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	var out model.User
	if err := s.client.Post(ctx, "/api/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout drops the persisted credentials and flips the login signal.
// It is synchronous, unconditional, and performs no network request.
//
// Logout 丢弃持久化的凭据并翻转登录信号。它是同步的、无条件的，不执行网络请求。
func (s *Session) Logout() {
	if err := s.store.Remove(tokenKey); err != nil {
		s.logger.WithError(err).Warn("failed to remove token")
	}
	if err := s.store.Remove(profileKey); err != nil {
		s.logger.WithError(err).Warn("failed to remove profile snapshot")
	}
	s.loggedIn.Set(false)
}

// ForgotPassword asks the backend to mail a reset link.
//
// ForgotPassword 请求后端邮寄重置链接。
func (s *Session) ForgotPassword(ctx context.Context, email string) error {
	req := &model.ForgotPasswordRequest{Email: email}
	return s.client.Post(ctx, "/api/auth/forgot-password", req, nil)
}

// ResetPassword submits a new password under a reset token. Backend
// rejections whose message mentions an expired or invalid token are
// classified as token failures so the reset flow can route the user back to
// requesting a fresh link.
//
// ResetPassword 在重置令牌下提交新密码。
// 消息提及过期或无效令牌的后端拒绝被归类为令牌失败，
// 以便重置流程将用户引导回请求新链接。
func (s *Session) ResetPassword(ctx context.Context, token, newPassword string) error {
	req := &model.ResetPasswordRequest{Token: token, NewPassword: newPassword}
	err := s.client.Post(ctx, "/api/auth/reset-password", req, nil)
	if err == nil {
		return nil
	}
	if errors.IsEnvelope(err) && isTokenMessage(errors.MessageOf(err)) {
		return errors.NewResetToken(errors.MessageOf(err))
	}
	return err
}

// Profile fetches the authenticated user's profile from the backend.
//
// Profile 从后端获取已认证用户的个人资料。
func (s *Session) Profile(ctx context.Context) (*model.User, error) {
	var out model.User
	if err := s.client.Get(ctx, "/api/users/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile modifies the authenticated user's profile and refreshes the
// persisted snapshot on success.
//
// UpdateProfile 修改已认证用户的个人资料，成功时刷新持久化的快照。
func (s *Session) UpdateProfile(ctx context.Context, req *model.UpdateProfileRequest) (*model.User, error) {
	var out model.User
	if err := s.client.Put(ctx, "/api/users/profile", req, &out); err != nil {
		return nil, err
	}
	if err := s.store.SetJSON(profileKey, out); err != nil {
		s.logger.WithError(err).Warn("failed to persist profile snapshot")
	}
	return &out, nil
}

// isTokenMessage reports whether a backend failure message describes a bad
// reset token.
//
// isTokenMessage 报告后端失败消息是否描述了错误的重置令牌。
func isTokenMessage(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "expired") || strings.Contains(lower, "invalid")
}
