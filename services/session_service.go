// file: services/session_service.go
package services

import (
	"context"
	"time"

	"PracticeCTF/models"
	"PracticeCTF/repositories"
	"PracticeCTF/utils"

	"github.com/google/uuid"
)

// SessionService 签发和回收登录会话。cookie 里是签名过的 JWT，
// 其中的 session_id 必须还在 Redis 注册表里才算有效。
type SessionService struct {
	sessions repositories.SessionRepository
	tokens   *utils.TokenManager
	ttl      time.Duration
}

func NewSessionService(sessions repositories.SessionRepository, tokens *utils.TokenManager, ttl time.Duration) *SessionService {
	return &SessionService{sessions: sessions, tokens: tokens, ttl: ttl}
}

// Issue 建立会话并返回放入 cookie 的令牌
func (s *SessionService) Issue(ctx context.Context, user *models.User) (string, error) {
	session := &repositories.Session{
		ID:     uuid.New().String(),
		UserID: user.ID,
	}
	if err := s.sessions.Create(ctx, session, s.ttl); err != nil {
		return "", err
	}
	return s.tokens.Generate(user.ID, user.Username, session.ID)
}

// Resolve 校验令牌并确认会话仍在注册表中
func (s *SessionService) Resolve(ctx context.Context, token string) (*utils.Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, ErrNotAuthenticated
	}
	session, err := s.sessions.Find(ctx, claims.SessionID)
	if err != nil || session.UserID != claims.UserID {
		return nil, ErrNotAuthenticated
	}
	return claims, nil
}

// Revoke 注销会话，对已失效的会话也不报错
func (s *SessionService) Revoke(ctx context.Context, token string) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return
	}
	s.sessions.Delete(ctx, claims.SessionID)
}
