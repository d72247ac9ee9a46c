// file: services/leaderboard_service.go
package services

import (
	"context"
	"encoding/json"
	"time"

	"PracticeCTF/dto"
	"PracticeCTF/repositories"
)

const (
	leaderboardCacheKey = "leaderboard:top"
	// 缓存 15 秒，保证排行榜的准实时性
	leaderboardCacheTTL = 15 * time.Second
)

type LeaderboardService struct {
	users repositories.UserRepository
	cache repositories.Cache
}

func NewLeaderboardService(users repositories.UserRepository, cache repositories.Cache) *LeaderboardService {
	return &LeaderboardService{users: users, cache: cache}
}

// RankedUsers 全部用户按分数降序，平分按注册先后
func (s *LeaderboardService) RankedUsers(ctx context.Context) ([]dto.LeaderboardEntryResp, error) {
	if s.cache != nil {
		if val, ok := s.cache.Get(ctx, leaderboardCacheKey); ok {
			var entries []dto.LeaderboardEntryResp
			if json.Unmarshal([]byte(val), &entries) == nil {
				return entries, nil
			}
		}
	}

	users, err := s.users.ListByScoreDesc(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntryResp, 0, len(users))
	for i, u := range users {
		entries = append(entries, dto.LeaderboardEntryResp{
			Rank:     uint(i + 1),
			Username: u.Username,
			Score:    u.Score,
		})
	}

	if s.cache != nil {
		if data, err := json.Marshal(entries); err == nil {
			s.cache.Set(ctx, leaderboardCacheKey, string(data), leaderboardCacheTTL)
		}
	}
	return entries, nil
}
