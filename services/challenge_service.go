// file: services/challenge_service.go
package services

import (
	"context"

	"PracticeCTF/models"
	"PracticeCTF/repositories"
)

// ChallengeService 题目目录：列表、详情、创建。
// 创建只要求已登录，未加更高权限（保留原有行为，见 DESIGN.md）。
type ChallengeService struct {
	challenges repositories.ChallengeRepository
}

func NewChallengeService(challenges repositories.ChallengeRepository) *ChallengeService {
	return &ChallengeService{challenges: challenges}
}

func (s *ChallengeService) List(ctx context.Context) ([]models.Challenge, error) {
	return s.challenges.FindAll(ctx)
}

func (s *ChallengeService) Get(ctx context.Context, challengeID uint32) (*models.Challenge, error) {
	challenge, err := s.challenges.FindByID(ctx, challengeID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrChallengeNotFound
		}
		return nil, err
	}
	return challenge, nil
}

// Create 字段校验已在 DTO 完成，这里只负责落库
func (s *ChallengeService) Create(ctx context.Context, name, description, flag string, points uint) (*models.Challenge, error) {
	challenge := &models.Challenge{
		ChallengeName: name,
		Description:   description,
		Flag:          flag,
		Points:        points,
	}
	if err := s.challenges.Create(ctx, challenge); err != nil {
		return nil, err
	}
	return challenge, nil
}
