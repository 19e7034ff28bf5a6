// Package session implements authentication state. This file implements the
// password reset flow: token intake, local validation, submission, and the
// post-success countdown before navigating back to login.
//
// Package session 实现认证状态。本文件实现密码重置流程：
// 令牌接收、本地验证、提交，以及成功后导航回登录之前的倒计时。
package session

import (
	"context"
	"sync"
	"time"

	"github.com/yourusername/storefront/internal/reactive"
	"github.com/yourusername/storefront/pkg/errors"
	"github.com/yourusername/storefront/pkg/model"
)

// FlowState is the phase of the password reset flow.
// FlowState 是密码重置流程的阶段。
type FlowState int

const (
	// FlowAwaitingToken means no reset token was supplied; the form cannot
	// be submitted.
	// FlowAwaitingToken 表示未提供重置令牌；表单无法提交。
	FlowAwaitingToken FlowState = iota

	// FlowReady means a token is present and the form accepts input.
	// FlowReady 表示令牌存在且表单接受输入。
	FlowReady

	// FlowSubmitting means a reset request is in flight.
	// FlowSubmitting 表示重置请求正在进行中。
	FlowSubmitting

	// FlowSucceeded means the password was reset; the countdown is running.
	// FlowSucceeded 表示密码已重置；倒计时正在运行。
	FlowSucceeded

	// FlowFailed means the last submission was rejected.
	// FlowFailed 表示上次提交被拒绝。
	FlowFailed
)

// String returns a readable name for the state.
// String 返回状态的可读名称。
func (s FlowState) String() string {
	switch s {
	case FlowAwaitingToken:
		return "awaiting-token"
	case FlowReady:
		return "ready"
	case FlowSubmitting:
		return "submitting"
	case FlowSucceeded:
		return "succeeded"
	case FlowFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ResetFlow drives the password reset form. It validates input locally,
// submits through the session, classifies token failures, and after a
// successful reset counts down a fixed number of ticks before invoking the
// completion callback.
//
// ResetFlow 驱动密码重置表单。它在本地验证输入，通过会话提交，归类令牌失败，
// 并在成功重置后倒计固定数量的滴答，然后调用完成回调。
type ResetFlow struct {
	mu           sync.Mutex
	session      *Session
	token        string
	ticks        int
	interval     time.Duration
	state        *reactive.Signal[FlowState]
	countdown    *reactive.Signal[int]
	tokenInvalid bool
	message      string
	onComplete   func()
}

// NewResetFlow creates a flow for the given reset token. An empty token
// puts the flow in the awaiting-token state with the token marked invalid.
//
// NewResetFlow 为给定的重置令牌创建流程。
// 空令牌使流程进入等待令牌状态，并将令牌标记为无效。
func NewResetFlow(session *Session, token string, ticks int, interval time.Duration) *ResetFlow {
	if ticks < 1 {
		ticks = 3
	}
	if interval <= 0 {
		interval = time.Second
	}
	f := &ResetFlow{
		session:   session,
		token:     token,
		ticks:     ticks,
		interval:  interval,
		state:     reactive.NewSignal(FlowReady),
		countdown: reactive.NewSignal(ticks),
	}
	if token == "" {
		f.tokenInvalid = true
		f.state.Set(FlowAwaitingToken)
	}
	return f
}

// State returns the signal carrying the flow phase.
//
// State 返回携带流程阶段的信号。
func (f *ResetFlow) State() *reactive.Signal[FlowState] {
	return f.state
}

// Countdown returns the signal carrying the remaining ticks after success.
//
// Countdown 返回携带成功后剩余滴答数的信号。
func (f *ResetFlow) Countdown() *reactive.Signal[int] {
	return f.countdown
}

// TokenInvalid reports whether the flow has concluded its token is missing,
// expired, or otherwise unusable.
//
// TokenInvalid 报告流程是否已断定其令牌缺失、过期或以其他方式不可用。
func (f *ResetFlow) TokenInvalid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokenInvalid
}

// Message returns the failure message from the last rejected submission.
//
// Message 返回上次被拒绝提交的失败消息。
func (f *ResetFlow) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// OnComplete registers the callback invoked when the post-success countdown
// reaches zero. Typically used to navigate back to the login view.
//
// OnComplete 注册成功后倒计时到零时调用的回调。通常用于导航回登录视图。
func (f *ResetFlow) OnComplete(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onComplete = fn
}

// Validate checks the form input locally: the token must be present, the
// password at least six characters, and the confirmation must match.
//
// Validate 在本地检查表单输入：令牌必须存在，密码至少六个字符，确认必须匹配。
func (f *ResetFlow) Validate(newPassword, confirm string) error {
	if f.token == "" {
		return errors.NewResetToken("reset token is missing")
	}
	if len(newPassword) < 6 {
		return errors.NewValidation("password must be at least 6 characters")
	}
	if newPassword != confirm {
		return errors.NewValidation("passwords do not match")
	}
	return (&model.ResetPasswordRequest{Token: f.token, NewPassword: newPassword}).Validate()
}

// Submit validates the input and sends the reset request. Invalid input
// never reaches the backend. On success the flow enters FlowSucceeded and
// the countdown starts; a token rejection marks the token invalid and
// disables further submissions.
//
// Submit 验证输入并发送重置请求。无效输入永远不会到达后端。
// 成功时流程进入FlowSucceeded并开始倒计时；令牌拒绝将令牌标记为无效并禁止再次提交。
func (f *ResetFlow) Submit(ctx context.Context, newPassword, confirm string) error {
	f.mu.Lock()
	invalid := f.tokenInvalid
	f.mu.Unlock()
	if invalid {
		return errors.NewResetToken("reset token is no longer usable")
	}

	if err := f.Validate(newPassword, confirm); err != nil {
		return err
	}

	f.state.Set(FlowSubmitting)
	err := f.session.ResetPassword(ctx, f.token, newPassword)
	if err != nil {
		f.mu.Lock()
		f.message = errors.MessageOf(err)
		if errors.IsResetToken(err) {
			f.tokenInvalid = true
		}
		f.mu.Unlock()
		f.state.Set(FlowFailed)
		return err
	}

	f.state.Set(FlowSucceeded)
	go f.runCountdown()
	return nil
}

// runCountdown decrements the countdown once per interval and fires the
// completion callback when it reaches zero.
//
// runCountdown 每个间隔递减一次倒计时，到零时触发完成回调。
func (f *ResetFlow) runCountdown() {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	remaining := f.countdown.Get()
	for remaining > 0 {
		<-ticker.C
		remaining--
		f.countdown.Set(remaining)
	}

	f.mu.Lock()
	done := f.onComplete
	f.mu.Unlock()
	if done != nil {
		done()
	}
}
