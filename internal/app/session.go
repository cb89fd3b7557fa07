package app

import (
	"context"
	"sync"
	"time"

	"github.com/ayxworxfr/go_admin_client/internal/domain/vo"
	"github.com/ayxworxfr/go_admin_client/pkg/jwtauth"
	"github.com/ayxworxfr/go_admin_client/pkg/logger"
	"go.uber.org/zap"
)

// Session 保存当前访问令牌，作为 httpclient 的 TokenSource
type Session struct {
	mu        sync.RWMutex
	token     string
	claims    *jwtauth.Claims
	expiresAt time.Time
	skew      time.Duration
	now       func() time.Time
}

func NewSession(skew time.Duration) *Session {
	return &Session{skew: skew, now: time.Now}
}

// SetToken 设置访问令牌，非 JWT 格式的令牌同样接受，只是无法得知过期时间
func (s *Session) SetToken(ctx context.Context, token string) {
	claims, err := jwtauth.Inspect(token)
	if err != nil {
		logger.Debug(ctx, "Token is not an inspectable JWT", zap.Error(err))
		claims = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.claims = claims
	s.expiresAt = time.Time{}
	if claims != nil {
		s.expiresAt = claims.Expiry()
	}
}

// Apply 使用登录接口的返回更新会话
func (s *Session) Apply(ctx context.Context, data vo.LoginData) {
	s.SetToken(ctx, data.Token.AccessToken)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.expiresAt.IsZero() || data.Token.ExpiresIn == "" {
		return
	}
	ttl, err := jwtauth.ParseExpiresIn(data.Token.ExpiresIn)
	if err != nil {
		logger.Warn(ctx, "Invalid expiresIn in login response", zap.String("expires_in", data.Token.ExpiresIn), zap.Error(err))
		return
	}
	s.expiresAt = s.now().Add(ttl)
}

// Clear 退出登录
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.claims = nil
	s.expiresAt = time.Time{}
}

// Claims 当前令牌的载荷，令牌不是 JWT 时返回 nil
func (s *Session) Claims() *jwtauth.Claims {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.claims
}

// ExpiresAt 令牌过期时间，未知时为零值
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// Expired 是否已过期（提前 skew 判定）
func (s *Session) Expired() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.expiresAt.IsZero() {
		return false
	}
	return !s.now().Add(s.skew).Before(s.expiresAt)
}

// Token 实现 httpclient.TokenSource，过期的令牌照常发送，由服务端决定是否拒绝
func (s *Session) Token(ctx context.Context) (string, error) {
	if s.Expired() {
		logger.Warn(ctx, "Access token is expired or about to expire", zap.Time("expires_at", s.ExpiresAt()))
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}
