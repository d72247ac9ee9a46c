// file: repositories/repositories.go
package repositories

import (
	"context"
	"time"

	"PracticeCTF/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, userID uint32) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	ListByScoreDesc(ctx context.Context) ([]models.User, error)
}

type ChallengeRepository interface {
	Create(ctx context.Context, challenge *models.Challenge) error
	FindByID(ctx context.Context, challengeID uint32) (*models.Challenge, error)
	FindAll(ctx context.Context) ([]models.Challenge, error)
}

// Session 是登录会话注册表里的一条记录，只存在于 Redis
type Session struct {
	ID     string
	UserID uint32
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session, ttl time.Duration) error
	Find(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// Cache 排行榜等只读视图的短期缓存
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Delete(ctx context.Context, key string)
}
