// file: controllers/fakes_test.go
package controllers

import (
	"context"
	"sort"
	"time"

	"PracticeCTF/models"
	"PracticeCTF/repositories"

	"gorm.io/gorm"
)

// 内存版仓库桩，行为对齐 GORM/Redis 实现

type memUserRepo struct {
	nextID uint32
	users  map[uint32]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uint32]*models.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if err := user.BeforeSave(nil); err != nil {
		return err
	}
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByID(ctx context.Context, userID uint32) (*models.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) ListByScoreDesc(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type memSessionRepo struct {
	sessions map[string]*repositories.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*repositories.Session)}
}

func (r *memSessionRepo) Create(ctx context.Context, s *repositories.Session, ttl time.Duration) error {
	cp := *s
	r.sessions[s.ID] = &cp
	return nil
}

func (r *memSessionRepo) Find(ctx context.Context, id string) (*repositories.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, repositories.ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memSessionRepo) Delete(ctx context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

type memChallengeRepo struct {
	nextID     uint32
	challenges map[uint32]*models.Challenge
}

func newMemChallengeRepo() *memChallengeRepo {
	return &memChallengeRepo{challenges: make(map[uint32]*models.Challenge)}
}

func (r *memChallengeRepo) Create(ctx context.Context, challenge *models.Challenge) error {
	r.nextID++
	challenge.ID = r.nextID
	cp := *challenge
	r.challenges[challenge.ID] = &cp
	return nil
}

func (r *memChallengeRepo) FindByID(ctx context.Context, challengeID uint32) (*models.Challenge, error) {
	c, ok := r.challenges[challengeID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memChallengeRepo) FindAll(ctx context.Context) ([]models.Challenge, error) {
	out := make([]models.Challenge, 0, len(r.challenges))
	for id := uint32(1); id <= r.nextID; id++ {
		if c, ok := r.challenges[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}
