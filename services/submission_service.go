// file: services/submission_service.go
package services

import (
	"context"
	"errors"

	"PracticeCTF/models"
	"PracticeCTF/repositories"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubmitOutcome 一次提交的三种结局
type SubmitOutcome string

const (
	OutcomeCorrect   SubmitOutcome = "correct"
	OutcomeWrong     SubmitOutcome = "wrong"
	OutcomeDuplicate SubmitOutcome = "duplicate"
)

// FlagSubmitter 供 controller 注入，便于用桩替换
type FlagSubmitter interface {
	Submit(ctx context.Context, userID, challengeID uint32, guess string) (SubmitOutcome, error)
}

// SubmissionService 判题与计分。整个流程在一个事务里完成，
// 写提交记录和加分要么都发生要么都不发生。
type SubmissionService struct {
	db    *gorm.DB
	cache repositories.Cache
}

func NewSubmissionService(db *gorm.DB, cache repositories.Cache) *SubmissionService {
	return &SubmissionService{db: db, cache: cache}
}

func (s *SubmissionService) Submit(ctx context.Context, userID, challengeID uint32, guess string) (SubmitOutcome, error) {
	var outcome SubmitOutcome

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var challenge models.Challenge
		if err := tx.First(&challenge, challengeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrChallengeNotFound
			}
			return err
		}

		// 同一用户重复解题判定
		var existing models.Submission
		err := tx.Where("challenge_id = ? AND user_id = ? AND is_correct = ?", challengeID, userID, true).
			First(&existing).Error
		if err == nil {
			outcome = OutcomeDuplicate
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// flag 精确比较
		if guess != challenge.Flag {
			outcome = OutcomeWrong
			return nil
		}

		// 对用户行加锁，避免并发加分
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, userID).Error; err != nil {
			return err
		}

		submission := models.Submission{
			ChallengeID: challengeID,
			UserID:      userID,
			IsCorrect:   true,
		}
		if err := tx.Create(&submission).Error; err != nil {
			return err
		}

		if err := tx.Model(&user).
			UpdateColumn("score", gorm.Expr("score + ?", challenge.Points)).Error; err != nil {
			return err
		}

		outcome = OutcomeCorrect
		return nil
	})

	if err != nil {
		// 两个并发的正确提交赛跑时，后写入的撞上唯一索引，等价于重复解题
		if repositories.IsDuplicate(err) {
			return OutcomeDuplicate, nil
		}
		return "", err
	}

	if outcome == OutcomeCorrect && s.cache != nil {
		s.cache.Delete(ctx, leaderboardCacheKey)
	}
	return outcome, nil
}
