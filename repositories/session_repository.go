// file: repositories/session_repository.go
package repositories

import (
	"context"
	"errors"
	"strconv"

	"time"

	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

const sessionKeyPrefix = "session:"

// RedisSessionRepository 把有效会话保存在 Redis，注销即删除，
// 令牌里的 session_id 再合法也会立即失效
type RedisSessionRepository struct {
	rdb *redis.Client
}

func NewRedisSessionRepository(rdb *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{rdb: rdb}
}

func (r *RedisSessionRepository) Create(ctx context.Context, session *Session, ttl time.Duration) error {
	key := sessionKeyPrefix + session.ID
	return r.rdb.Set(ctx, key, strconv.FormatUint(uint64(session.UserID), 10), ttl).Err()
}

func (r *RedisSessionRepository) Find(ctx context.Context, sessionID string) (*Session, error) {
	val, err := r.rdb.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	userID, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return &Session{ID: sessionID, UserID: uint32(userID)}, nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
