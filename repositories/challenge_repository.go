// file: repositories/challenge_repository.go
package repositories

import (
	"context"

	"PracticeCTF/models"

	"gorm.io/gorm"
)

type GormChallengeRepository struct {
	db *gorm.DB
}

func NewGormChallengeRepository(db *gorm.DB) *GormChallengeRepository {
	return &GormChallengeRepository{db: db}
}

func (r *GormChallengeRepository) Create(ctx context.Context, challenge *models.Challenge) error {
	return r.db.WithContext(ctx).Create(challenge).Error
}

func (r *GormChallengeRepository) FindByID(ctx context.Context, challengeID uint32) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := r.db.WithContext(ctx).First(&challenge, challengeID).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

// FindAll 按插入顺序返回全部题目
func (r *GormChallengeRepository) FindAll(ctx context.Context) ([]models.Challenge, error) {
	var challenges []models.Challenge
	if err := r.db.WithContext(ctx).Order("id asc").Find(&challenges).Error; err != nil {
		return nil, err
	}
	return challenges, nil
}
