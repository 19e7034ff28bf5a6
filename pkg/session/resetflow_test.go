// Package session implements authentication state.
// This file contains tests for the password reset flow.
//
// Package session 实现认证状态。
// 本文件包含密码重置流程的测试。
package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/storefront/pkg/errors"
)

func newFlowSession(t *testing.T, backend *authBackend) *Session {
	t.Helper()
	s, _, _ := newTestSession(t, backend)
	return s
}

// TestFlowValidate covers the local form validation rules: token present,
// password length, and matching confirmation.
//
// TestFlowValidate 覆盖本地表单验证规则：令牌存在、密码长度和确认匹配。
func TestFlowValidate(t *testing.T) {
	s := newFlowSession(t, &authBackend{})

	tests := []struct {
		name     string
		token    string
		password string
		confirm  string
		wantErr  bool
	}{
		{"valid input", "t1", "abc123", "abc123", false},
		{"too short", "t1", "abc12", "abc12", true},
		{"mismatch", "t1", "abc123", "abc124", true},
		{"missing token", "", "abc123", "abc123", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := NewResetFlow(s, test.token, 3, time.Second)
			err := f.Validate(test.password, test.confirm)
			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestFlowMissingToken verifies that an absent token puts the flow in the
// awaiting-token state and blocks submission before any request.
//
// TestFlowMissingToken 验证缺失令牌使流程进入等待令牌状态并在任何请求之前阻止提交。
func TestFlowMissingToken(t *testing.T) {
	backend := &authBackend{}
	s := newFlowSession(t, backend)

	f := NewResetFlow(s, "", 3, time.Second)
	assert.Equal(t, FlowAwaitingToken, f.State().Get())
	assert.True(t, f.TokenInvalid())

	err := f.Submit(context.Background(), "abc123", "abc123")
	require.Error(t, err)
	assert.True(t, errors.IsResetToken(err))
	assert.Zero(t, backend.requests)
}

// TestFlowInvalidInputNeverSubmits verifies that a failing local validation
// leaves the flow state untouched and sends nothing.
//
// TestFlowInvalidInputNeverSubmits 验证本地验证失败时流程状态不变且不发送任何内容。
func TestFlowInvalidInputNeverSubmits(t *testing.T) {
	backend := &authBackend{}
	s := newFlowSession(t, backend)

	f := NewResetFlow(s, "t1", 3, time.Second)
	err := f.Submit(context.Background(), "abc12", "abc12")
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Equal(t, FlowReady, f.State().Get())
	assert.Zero(t, backend.requests)
}

// TestFlowSubmitSuccessRunsCountdown verifies the success path: the flow
// enters FlowSucceeded, the countdown ticks down to zero, and the
// completion callback fires.
//
// TestFlowSubmitSuccessRunsCountdown 验证成功路径：流程进入FlowSucceeded，
// 倒计时递减到零，并触发完成回调。
func TestFlowSubmitSuccessRunsCountdown(t *testing.T) {
	s := newFlowSession(t, &authBackend{})

	f := NewResetFlow(s, "t1", 3, 5*time.Millisecond)
	done := make(chan struct{})
	f.OnComplete(func() { close(done) })

	var ticks []int
	cancel := f.Countdown().Subscribe(func(n int) { ticks = append(ticks, n) })
	defer cancel()

	require.NoError(t, f.Submit(context.Background(), "abc123", "abc123"))
	assert.Equal(t, FlowSucceeded, f.State().Get())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("completion callback never fired")
	}

	assert.Equal(t, []int{2, 1, 0}, ticks)
	assert.Equal(t, 0, f.Countdown().Get())
}

// TestFlowTokenRejectionMarksInvalid verifies that a backend token rejection
// moves the flow to FlowFailed with the token marked invalid.
//
// TestFlowTokenRejectionMarksInvalid 验证后端令牌拒绝使流程进入FlowFailed
// 并将令牌标记为无效。
func TestFlowTokenRejectionMarksInvalid(t *testing.T) {
	s := newFlowSession(t, &authBackend{resetMessage: "Reset token has expired"})

	f := NewResetFlow(s, "t1", 3, time.Second)
	err := f.Submit(context.Background(), "abc123", "abc123")
	require.Error(t, err)

	assert.Equal(t, FlowFailed, f.State().Get())
	assert.True(t, f.TokenInvalid())
	assert.Equal(t, "Reset token has expired", f.Message())
}

// TestFlowInvalidTokenBlocksResubmit verifies that once the backend rejects
// the token, later submissions are refused locally without another request.
//
// TestFlowInvalidTokenBlocksResubmit 验证一旦后端拒绝令牌，
// 后续提交将在本地被拒绝，不会发出新的请求。
func TestFlowInvalidTokenBlocksResubmit(t *testing.T) {
	backend := &authBackend{resetMessage: "Invalid reset token"}
	s := newFlowSession(t, backend)

	f := NewResetFlow(s, "t1", 3, time.Second)
	err := f.Submit(context.Background(), "abc123", "abc123")
	require.Error(t, err)
	require.True(t, f.TokenInvalid())
	requestsAfterRejection := backend.requests

	err = f.Submit(context.Background(), "abc123", "abc123")
	require.Error(t, err)
	assert.True(t, errors.IsResetToken(err))
	assert.Equal(t, requestsAfterRejection, backend.requests)
}

// TestFlowOtherRejection verifies that a non-token rejection fails the flow
// without invalidating the token.
//
// TestFlowOtherRejection 验证非令牌拒绝使流程失败而不使令牌无效。
func TestFlowOtherRejection(t *testing.T) {
	s := newFlowSession(t, &authBackend{resetMessage: "Account is locked"})

	f := NewResetFlow(s, "t1", 3, time.Second)
	err := f.Submit(context.Background(), "abc123", "abc123")
	require.Error(t, err)

	assert.Equal(t, FlowFailed, f.State().Get())
	assert.False(t, f.TokenInvalid())
}
